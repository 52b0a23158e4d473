package usecase

import (
	"jewelbot-srv/internal/catalog"
	"jewelbot-srv/internal/model"
)

// Project trims products to the model-visible attribute set.
// Pure 1:1 mapping; missing fields pass through empty.
func (uc *implUseCase) Project(products []model.Product) []catalog.ProjectedProduct {
	projected := make([]catalog.ProjectedProduct, len(products))
	for i, p := range products {
		projected[i] = catalog.ProjectedProduct{
			Code:          p.Code,
			Category:      p.Category,
			SubCategory:   p.SubCategory,
			Collection:    p.Collection,
			Price:         p.SalePrice,
			GrossWeight:   p.GrossWeight,
			NetWeight:     p.NetWeight,
			DiamondWeight: p.DiamondWeight,
			ImageURL:      p.ImageURL,
		}
	}
	return projected
}
