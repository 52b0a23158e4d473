package renderer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"jewelbot-srv/internal/model"
)

// Render dispatches the reply text, then each product fragment in order.
func (r *implRenderer) Render(ctx context.Context, userID, replyText string, products []model.Product) error {
	if err := r.wa.SendText(ctx, userID, replyText); err != nil {
		return fmt.Errorf("send reply text: %w", err)
	}

	for _, p := range products {
		if err := r.wa.SendText(ctx, userID, formatProduct(p)); err != nil {
			return fmt.Errorf("send product %s: %w", p.Code, err)
		}
		if p.ImageURL == "" {
			continue
		}
		if err := r.wa.SendImage(ctx, userID, p.ImageURL, productCaption(p)); err != nil {
			// Image failures must not abort the remaining product loop.
			r.l.Warnf(ctx, "renderer.Render: image send failed for %s: %v", p.Code, err)
		}
	}
	return nil
}

// formatProduct composes the product fragment from present fields in a
// fixed order. The price line is always present.
func formatProduct(p model.Product) string {
	var lines []string

	lines = append(lines, productCaption(p))
	if p.SalePrice != nil {
		lines = append(lines, "Price: ₹"+formatAmount(*p.SalePrice))
	} else {
		lines = append(lines, "Price not available")
	}
	lines = append(lines, "Code: "+p.Code)
	if p.Style != "" {
		lines = append(lines, "Style: "+p.Style)
	}
	if p.Purity != "" {
		lines = append(lines, "Purity: "+p.Purity)
	}
	if p.Gender != "" {
		lines = append(lines, "Gender: "+p.Gender)
	}
	if p.Collection != "" {
		lines = append(lines, "Collection: "+p.Collection)
	}
	if p.GrossWeight != nil {
		lines = append(lines, "Weight: "+formatAmount(*p.GrossWeight)+"g")
	}

	return strings.Join(lines, "\n")
}

// productCaption is "Category - SubCategory", falling back to the code when
// the category is absent.
func productCaption(p model.Product) string {
	switch {
	case p.Category != "" && p.SubCategory != "":
		return p.Category + " - " + p.SubCategory
	case p.Category != "":
		return p.Category
	default:
		return p.Code
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
