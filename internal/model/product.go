package model

type Product struct {
	BaseModel
	Name          string  `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required,max=100"`
	SKU           string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required,max=50"`
	Description   string  `gorm:"type:varchar(500);not null" json:"description" validate:"required,max=500"`
	Category      string  `gorm:"type:varchar(50);not null" json:"category" validate:"required,max=50"`
	Price         float64 `gorm:"not null" json:"price" validate:"gte=0"`
	StockQuantity int     `gorm:"not null;default:0" json:"stock_quantity" validate:"gte=0"`
	Unit          string  `gorm:"type:varchar(20);not null" json:"unit" validate:"required,max=20"`
	Picture       string  `gorm:"type:text;not null" json:"picture" validate:"required,url"`
	IsActive      bool    `gorm:"default:true" json:"is_active"`

	// Relasi
	Requests []Request `json:"requests,omitempty" validate:"-"`
}

// ProductSummary is the read-side projection embedded in enriched request
// responses. Kept separate from the stored entity so the join stays on the
// read path only.
type ProductSummary struct {
	Name          string `json:"name"`
	SKU           string `json:"sku"`
	Category      string `json:"category"`
	StockQuantity int    `json:"stock_quantity"`
}

func (p *Product) ToSummary() ProductSummary {
	return ProductSummary{
		Name:          p.Name,
		SKU:           p.SKU,
		Category:      p.Category,
		StockQuantity: p.StockQuantity,
	}
}
