package catalog

// ProjectedProduct is the reduced product view exposed to the language model
// and to user-facing rendering. Missing fields pass through empty.
type ProjectedProduct struct {
	Code          string   `json:"code"`
	Category      string   `json:"category,omitempty"`
	SubCategory   string   `json:"sub_category,omitempty"`
	Collection    string   `json:"collection,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	GrossWeight   *float64 `json:"gross_weight,omitempty"`
	NetWeight     *float64 `json:"net_weight,omitempty"`
	DiamondWeight *float64 `json:"diamond_weight,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
}
