package repository

import (
	"go-stockme/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(includeInactive bool) ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	FindByName(name string) (*model.Product, error)
	UpdateFields(id uuid.UUID, fields map[string]interface{}) error
	SetStock(id uuid.UUID, quantity int) error
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

func (r *productRepo) FindAll(includeInactive bool) ([]model.Product, error) {
	var products []model.Product
	query := r.db.Order("created_at DESC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "sku = ?", sku).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByName(name string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateFields applies a partial update; only the supplied columns change.
func (r *productRepo) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&model.Product{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// SetStock writes the quantity as one UPDATE so concurrent admin adjustments
// never interleave with partial effect.
func (r *productRepo) SetStock(id uuid.UUID, quantity int) error {
	return r.db.Model(&model.Product{}).
		Where("id = ?", id).
		Update("stock_quantity", quantity).Error
}
