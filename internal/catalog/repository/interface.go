package repository

import (
	"context"

	"jewelbot-srv/internal/model"
)

// Repository loads the product catalog once at startup.
type Repository interface {
	Load(ctx context.Context) ([]model.Product, error)
}
