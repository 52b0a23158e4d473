package usecase

import (
	"fmt"
	"regexp"

	"jewelbot-srv/internal/dialogue"
	"jewelbot-srv/internal/model"
)

// showMorePattern matches a continuation intent: "show more", or the bare
// keywords as whole words.
var showMorePattern = regexp.MustCompile(`(?i)\bshow\s+more\b|\b(more|next|continue|additional)\b`)

func isShowMoreIntent(message string) bool {
	return showMorePattern.MatchString(message)
}

// serveNextBatch serves the next page of the stored result set and advances
// the cursor. An exhausted cursor yields an exhaustion notice and no records.
func (uc *implUseCase) serveNextBatch(c *model.Conversation) dialogue.TurnOutput {
	cursor := c.Cursor
	if cursor.Remaining() == 0 {
		return dialogue.TurnOutput{
			Reply: "You've seen all the results for this search. Send a new search to see something else.",
		}
	}

	end := cursor.NextOffset + dialogue.PageSize
	if end > len(cursor.Results) {
		end = len(cursor.Results)
	}
	batch := cursor.Results[cursor.NextOffset:end]
	cursor.NextOffset = end

	if remaining := cursor.Remaining(); remaining > 0 {
		return dialogue.TurnOutput{
			Reply:    fmt.Sprintf("Here you go! %d more available - say \"show more\" to see them.", remaining),
			Products: batch,
		}
	}
	return dialogue.TurnOutput{
		Reply:    "Here you go! That's all the results for this search.",
		Products: batch,
	}
}
