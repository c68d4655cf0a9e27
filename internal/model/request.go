package model

import (
	"time"

	"go-stockme/internal/authz"

	"github.com/google/uuid"
)

type TransactionType string

const (
	StockIn  TransactionType = "stockIn"
	StockOut TransactionType = "stockOut"
)

type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusApproved  RequestStatus = "approved"
	StatusRejected  RequestStatus = "rejected"
	StatusCancelled RequestStatus = "cancelled"
)

// MaxStockOutAmount is the upper bound a single stock-out request may ask for.
const MaxStockOutAmount = 50

// Request is a stock-in/stock-out request raised by staff against the catalog.
// Requestor and Product are non-owning references resolved on the read path.
type Request struct {
	BaseModel
	TransactionDate time.Time       `gorm:"not null" json:"transaction_date"`
	TransactionType TransactionType `gorm:"type:varchar(10);not null" json:"transaction_type" validate:"required,oneof=stockIn stockOut"`
	ItemAmount      int             `gorm:"not null" json:"item_amount" validate:"required,gte=1"`

	RequestorID uuid.UUID `gorm:"type:uuid;not null;index" json:"requestor_id" validate:"uuid_required"`
	Requestor   *User     `gorm:"foreignKey:RequestorID" json:"requestor,omitempty" validate:"-"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product     *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`

	Status          RequestStatus `gorm:"type:varchar(10);not null;default:'pending';index" json:"status"`
	ApprovedByID    *uuid.UUID    `gorm:"type:uuid" json:"approved_by_id,omitempty"`
	ApprovedBy      *User         `gorm:"foreignKey:ApprovedByID" json:"approved_by,omitempty" validate:"-"`
	ApprovedAt      *time.Time    `json:"approved_at,omitempty"`
	RejectionReason string        `gorm:"type:text" json:"rejection_reason,omitempty"`
}

// IsTerminal reports whether the request has left the pending state. Terminal
// requests accept no further status transitions.
func (r *Request) IsTerminal() bool {
	return r.Status != StatusPending
}

// RequestorSummary is the read-side projection of the requesting user.
type RequestorSummary struct {
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  authz.Role `json:"role"`
}

// RequestResponse is the enriched read model: the request plus summary views
// of its requestor and product references.
type RequestResponse struct {
	Request
	RequestorInfo *RequestorSummary `json:"requestor_info,omitempty"`
	ProductInfo   *ProductSummary   `json:"product_info,omitempty"`
}

// ToResponse builds the enriched view from preloaded associations.
func (r *Request) ToResponse() RequestResponse {
	resp := RequestResponse{Request: *r}
	if r.Requestor != nil {
		resp.RequestorInfo = &RequestorSummary{
			Name:  r.Requestor.Name,
			Email: r.Requestor.Email,
			Role:  r.Requestor.Role,
		}
	}
	if r.Product != nil {
		summary := r.Product.ToSummary()
		resp.ProductInfo = &summary
	}
	// The stored entities stay out of the wire shape, only the summaries go out.
	resp.Requestor = nil
	resp.Product = nil
	return resp
}
