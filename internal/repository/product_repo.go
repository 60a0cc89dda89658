package repository

import (
	"go-products-api/internal/model"

	"gorm.io/gorm"
)

// ProductRepository only persists; there is no update or delete path
// for products in this service.
type ProductRepository interface {
	Create(product *model.Product) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}
