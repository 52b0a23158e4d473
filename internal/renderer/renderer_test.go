package renderer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"jewelbot-srv/internal/model"
	"jewelbot-srv/pkg/log"
)

type sentMessage struct {
	kind string // "text" | "image"
	to   string
	body string
	link string
}

type fakeWhatsApp struct {
	sent       []sentMessage
	failTextAt int // 1-based index of the text send that fails, 0 = never
	failImages bool
	textSends  int
}

func (f *fakeWhatsApp) SendText(ctx context.Context, to, body string) error {
	f.textSends++
	if f.failTextAt != 0 && f.textSends == f.failTextAt {
		return errors.New("text send failed")
	}
	f.sent = append(f.sent, sentMessage{kind: "text", to: to, body: body})
	return nil
}

func (f *fakeWhatsApp) SendImage(ctx context.Context, to, link, caption string) error {
	if f.failImages {
		return errors.New("image send failed")
	}
	f.sent = append(f.sent, sentMessage{kind: "image", to: to, link: link, body: caption})
	return nil
}

func price(v float64) *float64 { return &v }

func TestRender(t *testing.T) {
	ctx := context.Background()

	products := []model.Product{
		{Code: "R1", Category: "Ring", SubCategory: "Engagement", SalePrice: price(3000), ImageURL: "https://example.com/r1.jpg"},
		{Code: "N1", Category: "Necklace"},
	}

	t.Run("reply text goes first, then product fragments in order", func(t *testing.T) {
		wa := &fakeWhatsApp{}
		if err := New(log.NewNop(), wa).Render(ctx, "user-1", "Here you go!", products); err != nil {
			t.Fatalf("Render: %v", err)
		}

		// reply, R1 fragment, R1 image, N1 fragment
		if len(wa.sent) != 4 {
			t.Fatalf("sent count: got %d, want 4", len(wa.sent))
		}
		if wa.sent[0].kind != "text" || wa.sent[0].body != "Here you go!" {
			t.Errorf("first send: %+v", wa.sent[0])
		}
		if !strings.Contains(wa.sent[1].body, "Code: R1") {
			t.Errorf("R1 fragment: %q", wa.sent[1].body)
		}
		if wa.sent[2].kind != "image" || wa.sent[2].link != "https://example.com/r1.jpg" {
			t.Errorf("R1 image: %+v", wa.sent[2])
		}
		if !strings.Contains(wa.sent[3].body, "Code: N1") {
			t.Errorf("N1 fragment: %q", wa.sent[3].body)
		}
	})

	t.Run("image failures are swallowed", func(t *testing.T) {
		wa := &fakeWhatsApp{failImages: true}
		if err := New(log.NewNop(), wa).Render(ctx, "user-1", "Here you go!", products); err != nil {
			t.Fatalf("Render with failing images: %v", err)
		}
		// reply + 2 fragments, no image
		if len(wa.sent) != 3 {
			t.Errorf("sent count: got %d, want 3", len(wa.sent))
		}
	})

	t.Run("text failure aborts and propagates", func(t *testing.T) {
		wa := &fakeWhatsApp{failTextAt: 2} // first product fragment
		err := New(log.NewNop(), wa).Render(ctx, "user-1", "Here you go!", products)
		if err == nil {
			t.Fatal("Render: expected error")
		}
		if len(wa.sent) != 1 {
			t.Errorf("sent count after failure: got %d, want 1", len(wa.sent))
		}
	})
}

func TestFormatProduct(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		weight := 4.5
		got := formatProduct(model.Product{
			Code:        "R1",
			Category:    "Ring",
			SubCategory: "Engagement",
			Collection:  "Classic",
			Style:       "Solitaire",
			Purity:      "18K",
			Gender:      "Women",
			SalePrice:   price(35000),
			GrossWeight: &weight,
		})

		wantLines := []string{
			"Ring - Engagement",
			"Price: ₹35000",
			"Code: R1",
			"Style: Solitaire",
			"Purity: 18K",
			"Gender: Women",
			"Collection: Classic",
			"Weight: 4.5g",
		}
		gotLines := strings.Split(got, "\n")
		if len(gotLines) != len(wantLines) {
			t.Fatalf("line count: got %d, want %d\n%s", len(gotLines), len(wantLines), got)
		}
		for i := range wantLines {
			if gotLines[i] != wantLines[i] {
				t.Errorf("line %d: got %q, want %q", i, gotLines[i], wantLines[i])
			}
		}
	})

	t.Run("missing price", func(t *testing.T) {
		got := formatProduct(model.Product{Code: "N1", Category: "Necklace"})
		if !strings.Contains(got, "Price not available") {
			t.Errorf("missing price line:\n%s", got)
		}
	})

	t.Run("caption falls back to code", func(t *testing.T) {
		got := formatProduct(model.Product{Code: "X9"})
		if !strings.HasPrefix(got, "X9\n") {
			t.Errorf("caption: got %q", strings.SplitN(got, "\n", 2)[0])
		}
	})
}
