package excel

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"jewelbot-srv/internal/catalog"
	"jewelbot-srv/internal/model"
)

// Column header aliases, matched after lower-casing and trimming.
var columnAliases = map[string]string{
	"sku":            "code",
	"code":           "code",
	"design code":    "code",
	"category":       "category",
	"sub category":   "sub_category",
	"subcategory":    "sub_category",
	"sub-category":   "sub_category",
	"collection":     "collection",
	"style":          "style",
	"purity":         "purity",
	"gender":         "gender",
	"sale price":     "sale_price",
	"price":          "sale_price",
	"gross weight":   "gross_weight",
	"gross wt":       "gross_weight",
	"net weight":     "net_weight",
	"net wt":         "net_weight",
	"diamond weight": "diamond_weight",
	"dia wt":         "diamond_weight",
	"image":          "image_url",
	"image url":      "image_url",
}

// Load reads the workbook into an ordered product slice. A missing file is
// not a failure: the service stays up with an empty catalog.
func (r *implRepository) Load(ctx context.Context) ([]model.Product, error) {
	if _, err := os.Stat(r.filePath); err != nil {
		r.l.Warnf(ctx, "catalog.repository.excel.Load: catalog file %s not found, starting with empty catalog", r.filePath)
		return nil, nil
	}

	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		r.l.Warnf(ctx, "catalog.repository.excel.Load: failed to open %s: %v, starting with empty catalog", r.filePath, err)
		return nil, nil
	}
	defer f.Close()

	sheet := r.sheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		r.l.Warnf(ctx, "catalog.repository.excel.Load: failed to read sheet %s: %v, starting with empty catalog", sheet, err)
		return nil, nil
	}
	if len(rows) == 0 {
		return nil, catalog.ErrMissingHeader
	}

	columns := mapColumns(rows[0])
	if _, ok := columns["code"]; !ok {
		return nil, catalog.ErrMissingCodeColumn
	}

	products := make([]model.Product, 0, len(rows)-1)
	for _, row := range rows[1:] {
		p := newProduct(row, columns)
		if p.Code == "" {
			continue
		}
		products = append(products, p)
	}

	r.l.Infof(ctx, "catalog.repository.excel.Load: loaded %d products from %s", len(products), r.filePath)
	return products, nil
}

func mapColumns(header []string) map[string]int {
	columns := make(map[string]int)
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if field, ok := columnAliases[key]; ok {
			columns[field] = i
		}
	}
	return columns
}

func newProduct(row []string, columns map[string]int) model.Product {
	cell := func(field string) string {
		i, ok := columns[field]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	return model.Product{
		Code:          cell("code"),
		Category:      cell("category"),
		SubCategory:   cell("sub_category"),
		Collection:    cell("collection"),
		Style:         cell("style"),
		Purity:        cell("purity"),
		Gender:        cell("gender"),
		SalePrice:     parseNumber(cell("sale_price")),
		GrossWeight:   parseNumber(cell("gross_weight")),
		NetWeight:     parseNumber(cell("net_weight")),
		DiamondWeight: parseNumber(cell("diamond_weight")),
		ImageURL:      cell("image_url"),
	}
}

// parseNumber parses a numeric cell, tolerating currency glyphs and
// thousands separators. Unparsable values stay nil.
func parseNumber(s string) *float64 {
	s = strings.NewReplacer(",", "", "₹", "", "$", "", " ", "").Replace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
