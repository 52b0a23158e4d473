package usecase

import (
	"testing"

	"jewelbot-srv/internal/dialogue"
	"jewelbot-srv/internal/model"
	"jewelbot-srv/pkg/gemini"
)

func TestIsShowMoreIntent(t *testing.T) {
	positive := []string{
		"show more",
		"Show    More please",
		"more",
		"next",
		"continue",
		"any additional options?",
	}
	for _, msg := range positive {
		if !isShowMoreIntent(msg) {
			t.Errorf("isShowMoreIntent(%q): got false, want true", msg)
		}
	}

	negative := []string{
		"show me rings",
		"morello cherry pendant",
		"nextdoor",
		"I want something shiny",
	}
	for _, msg := range negative {
		if isShowMoreIntent(msg) {
			t.Errorf("isShowMoreIntent(%q): got true, want false", msg)
		}
	}
}

func TestShowMoreWithoutCursor(t *testing.T) {
	fx := newFixture(ringCatalog(5), &fakeGemini{})

	out := handle(t, fx, "u1", "show more")
	if out.Reply != dialogue.SearchFirstReply {
		t.Errorf("reply: got %q, want search-first guidance", out.Reply)
	}
	if len(out.Products) != 0 {
		t.Errorf("products: got %d, want 0", len(out.Products))
	}
	// No model call happened.
	if len(fx.gemini.inputs) != 0 {
		t.Errorf("model calls: got %d, want 0", len(fx.gemini.inputs))
	}
	if len(fx.producer.events) != 1 || fx.producer.events[0].Path != dialogue.PathGuidance {
		t.Errorf("events: %+v", fx.producer.events)
	}
}

func TestPaginationScenario(t *testing.T) {
	// 8 matches: first turn serves R1-R3, then two continuation batches.
	fx := newFixture(ringCatalog(8), &fakeGemini{script: []func(gemini.ChatInput) (gemini.ChatResult, error){
		callResult(fnGetProducts, `{"query":"ring"}`),
		textResult("Found 8 rings!"),
	}})

	first := handle(t, fx, "u1", "rings for a wedding")
	if got := productCodes(first.Products); len(got) != 3 || got[0] != "R1" || got[2] != "R3" {
		t.Fatalf("first page: got %v, want [R1 R2 R3]", got)
	}

	second := handle(t, fx, "u1", "show more")
	if got := productCodes(second.Products); len(got) != 3 || got[0] != "R4" || got[2] != "R6" {
		t.Fatalf("second page: got %v, want [R4 R5 R6]", got)
	}
	if second.Reply != `Here you go! 2 more available - say "show more" to see them.` {
		t.Errorf("second page reply: got %q", second.Reply)
	}

	third := handle(t, fx, "u1", "show more")
	if got := productCodes(third.Products); len(got) != 2 || got[0] != "R7" || got[1] != "R8" {
		t.Fatalf("third page: got %v, want [R7 R8]", got)
	}
	if third.Reply != "Here you go! That's all the results for this search." {
		t.Errorf("third page reply: got %q", third.Reply)
	}

	// Exhausted cursor: notice only, no records, cursor retained.
	fourth := handle(t, fx, "u1", "show more")
	if len(fourth.Products) != 0 {
		t.Errorf("exhausted page products: got %d, want 0", len(fourth.Products))
	}
	if fourth.Reply == "" || fourth.Reply == third.Reply {
		t.Errorf("exhausted page reply: got %q", fourth.Reply)
	}

	// Only the initial search hit the model (two round-trips).
	if len(fx.gemini.inputs) != 2 {
		t.Errorf("model calls: got %d, want 2", len(fx.gemini.inputs))
	}

	// Continuation turns do not grow the history.
	if turns := fx.history(t, "u1"); len(turns) != 2 {
		t.Errorf("history length: got %d, want 2", len(turns))
	}

	// Each continuation published an event with path=continuation.
	continuations := 0
	for _, ev := range fx.producer.events {
		if ev.Path == dialogue.PathContinuation {
			continuations++
		}
	}
	if continuations != 3 {
		t.Errorf("continuation events: got %d, want 3", continuations)
	}
}

func TestNewSearchResetsCursor(t *testing.T) {
	fx := newFixture(ringCatalog(8), &fakeGemini{script: []func(gemini.ChatInput) (gemini.ChatResult, error){
		callResult(fnGetProducts, `{"query":"ring"}`),
		textResult("Found 8 rings!"),
		callResult(fnGetProducts, `{"query":"ring under 2000"}`),
		textResult("Two budget rings!"),
	}})

	handle(t, fx, "u1", "rings")
	handle(t, fx, "u1", "show more")

	// A fresh search replaces the cursor mid-pagination.
	handle(t, fx, "u1", "rings under 2000")
	cursor := fx.cursor(t, "u1")
	if cursor == nil {
		t.Fatal("cursor missing after new search")
	}
	if len(cursor.Results) != 2 || cursor.NextOffset != 2 {
		t.Errorf("cursor: got %d results at offset %d, want 2 at 2", len(cursor.Results), cursor.NextOffset)
	}
}

func productCodes(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Code
	}
	return out
}
