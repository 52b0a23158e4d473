package usecase

import (
	"jewelbot-srv/internal/catalog"
	"jewelbot-srv/internal/dialogue"
	"jewelbot-srv/internal/dialogue/repository"
	"jewelbot-srv/pkg/gemini"
	"jewelbot-srv/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	catalog  catalog.UseCase
	gemini   gemini.IGemini
	producer dialogue.Producer // optional, may be nil
}

// New - Factory function. producer may be nil when analytics events are
// not configured.
func New(
	l log.Logger,
	repo repository.Repository,
	catalogUC catalog.UseCase,
	geminiClient gemini.IGemini,
	producer dialogue.Producer,
) dialogue.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		catalog:  catalogUC,
		gemini:   geminiClient,
		producer: producer,
	}
}
