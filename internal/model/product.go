package model

// Product is one catalog row loaded from the spreadsheet.
// Code is the only required field; everything else may be absent.
// Products are immutable after load.
type Product struct {
	Code          string
	Category      string
	SubCategory   string
	Collection    string
	Style         string
	Purity        string
	Gender        string
	SalePrice     *float64
	GrossWeight   *float64
	NetWeight     *float64
	DiamondWeight *float64
	ImageURL      string
}

// PriceOrZero returns the sale price, treating a missing price as 0
// for range comparisons.
func (p Product) PriceOrZero() float64 {
	if p.SalePrice == nil {
		return 0
	}
	return *p.SalePrice
}
