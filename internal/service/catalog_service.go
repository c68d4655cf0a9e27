package service

import (
	"errors"

	"go-stockme/internal/authz"
	"go-stockme/internal/model"
	"go-stockme/internal/repository"
	"go-stockme/pkg/apperror"
	"go-stockme/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CatalogService interface {
	List(viewer authz.Role) ([]model.Product, error)
	Get(id uuid.UUID) (*model.Product, error)
	Create(product *model.Product) error
	Update(id uuid.UUID, input *ProductUpdateInput) (*model.Product, error)
	SoftDelete(id uuid.UUID) error
	SetStock(id uuid.UUID, quantity int) (*model.Product, error)
}

// ProductUpdateInput carries a partial update. Only supplied fields are
// validated and written; required-field rules are deliberately not re-applied
// so a single field (e.g. is_active) can be toggled on its own.
type ProductUpdateInput struct {
	Name          *string  `json:"name" validate:"omitempty,max=100"`
	SKU           *string  `json:"sku" validate:"omitempty,max=50"`
	Description   *string  `json:"description" validate:"omitempty,max=500"`
	Category      *string  `json:"category" validate:"omitempty,max=50"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	StockQuantity *int     `json:"stock_quantity" validate:"omitempty,gte=0"`
	Unit          *string  `json:"unit" validate:"omitempty,max=20"`
	Picture       *string  `json:"picture" validate:"omitempty,url"`
	IsActive      *bool    `json:"is_active"`
}

type catalogService struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogService{productRepo: productRepo}
}

func (s *catalogService) List(viewer authz.Role) ([]model.Product, error) {
	return s.productRepo.FindAll(authz.SeesInactiveProducts(viewer))
}

func (s *catalogService) Get(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Product not found")
		}
		return nil, err
	}
	return product, nil
}

func (s *catalogService) Create(product *model.Product) error {
	// 1. Full struct validation
	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		return apperror.Validation(validator.Message(errs))
	}

	// 2. Name and SKU uniqueness probes
	if existing, _ := s.productRepo.FindByName(product.Name); existing != nil && existing.ID != uuid.Nil {
		return apperror.Validation("Product name already exists")
	}
	if existing, _ := s.productRepo.FindBySKU(product.SKU); existing != nil && existing.ID != uuid.Nil {
		return apperror.Validation("SKU already exists")
	}

	// 3. New products always start visible
	product.IsActive = true

	return s.productRepo.Create(product)
}

func (s *catalogService) Update(id uuid.UUID, input *ProductUpdateInput) (*model.Product, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return nil, apperror.Validation(validator.Message(errs))
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.SKU != nil {
		fields["sku"] = *input.SKU
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.StockQuantity != nil {
		fields["stock_quantity"] = *input.StockQuantity
	}
	if input.Unit != nil {
		fields["unit"] = *input.Unit
	}
	if input.Picture != nil {
		fields["picture"] = *input.Picture
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}

	if len(fields) > 0 {
		if err := s.productRepo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}

	return s.Get(id)
}

func (s *catalogService) SoftDelete(id uuid.UUID) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	// Soft delete keeps the record; it only disappears from non-admin listings.
	return s.productRepo.UpdateFields(id, map[string]interface{}{"is_active": false})
}

func (s *catalogService) SetStock(id uuid.UUID, quantity int) (*model.Product, error) {
	if quantity < 0 {
		return nil, apperror.Validation("Stock quantity cannot be negative")
	}

	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	if err := s.productRepo.SetStock(id, quantity); err != nil {
		return nil, err
	}

	return s.Get(id)
}
