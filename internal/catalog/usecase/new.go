package usecase

import (
	"jewelbot-srv/internal/catalog"
	"jewelbot-srv/internal/model"
	"jewelbot-srv/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	products []model.Product
}

// New - Factory function. Takes ownership of the loaded product slice,
// which must not be mutated afterwards.
func New(l log.Logger, products []model.Product) catalog.UseCase {
	return &implUseCase{
		l:        l,
		products: products,
	}
}
