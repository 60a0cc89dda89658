package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"go-products-api/internal/model"
	"go-products-api/internal/repository"
	"go-products-api/internal/ws"
	"go-products-api/pkg/validator"
)

type ProductService interface {
	CreateProduct(product *model.Product, userID uuid.UUID, username string) error
}

type productService struct {
	productRepo repository.ProductRepository
	wsHub       *ws.Hub
}

func NewProductService(pRepo repository.ProductRepository, hub *ws.Hub) ProductService {
	return &productService{
		productRepo: pRepo,
		wsHub:       hub,
	}
}

// CreateProduct stamps the audit fields with the requesting user and
// persists the entity. The form has already validated the submission;
// the struct check here guards the entity constraints on any caller.
func (s *productService) CreateProduct(product *model.Product, userID uuid.UUID, username string) error {
	product.CreatedByID = userID
	product.UpdatedByID = userID
	product.Active = true

	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	if err := s.productRepo.Create(product); err != nil {
		return errors.New("failed to save product")
	}

	// Push the new entry to connected clients
	go s.wsHub.Publish(ws.Event{
		Type: "product_created",
		Data: map[string]interface{}{
			"id":     product.ID,
			"nombre": product.Nombre,
			"precio": product.Precio,
		},
		User: map[string]interface{}{
			"id":       userID.String(),
			"username": username,
		},
	})

	return nil
}
