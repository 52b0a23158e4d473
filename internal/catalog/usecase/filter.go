package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"jewelbot-srv/internal/model"
)

// rangePattern matches "under 5000", "over ₹5000" and similar.
var rangePattern = regexp.MustCompile(`(under|over)\s*[₹$€£]?\s*(\d+)`)

// Filter returns the products matching the free-text query, preserving
// catalog order. A record matches when the lower-cased query contains one
// of its lower-cased textual attributes (query-contains-attribute
// direction). Empty attribute values never match, so an empty query yields
// an empty result. An "under/over N" pattern additionally constrains the
// sale price; a missing price compares as 0.
func (uc *implUseCase) Filter(query string) []model.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	keyword, threshold, hasRange := parseRange(q)

	var matched []model.Product
	for _, p := range uc.products {
		if !matchesText(q, p) {
			continue
		}
		if hasRange && !matchesRange(keyword, threshold, p) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func matchesText(query string, p model.Product) bool {
	attrs := []string{
		p.Category,
		p.SubCategory,
		p.Collection,
		p.Style,
		p.Purity,
		p.Gender,
		p.Code,
	}
	for _, attr := range attrs {
		if attr == "" {
			continue
		}
		if strings.Contains(query, strings.ToLower(attr)) {
			return true
		}
	}
	return false
}

func parseRange(query string) (keyword string, threshold float64, ok bool) {
	m := rangePattern.FindStringSubmatch(query)
	if m == nil {
		return "", 0, false
	}
	v, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return "", 0, false
	}
	return m[1], v, true
}

func matchesRange(keyword string, threshold float64, p model.Product) bool {
	price := p.PriceOrZero()
	if keyword == "under" {
		return price <= threshold
	}
	return price >= threshold
}

// TopN returns the first n products in load order.
func (uc *implUseCase) TopN(n int) []model.Product {
	if n > len(uc.products) {
		n = len(uc.products)
	}
	if n <= 0 {
		return nil
	}
	return uc.products[:n]
}

// Size returns the catalog size.
func (uc *implUseCase) Size() int {
	return len(uc.products)
}
