package service

import (
	"errors"
	"strings"
	"time"

	"go-stockme/internal/authz"
	"go-stockme/internal/model"
	"go-stockme/internal/repository"
	"go-stockme/pkg/apperror"
	"go-stockme/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RequestService interface {
	List(role authz.Role, requestorID uuid.UUID) ([]model.RequestResponse, error)
	Get(id uuid.UUID, role authz.Role, requestorID uuid.UUID) (*model.RequestResponse, error)
	Create(requestorID uuid.UUID, role authz.Role, input *CreateRequestInput) (*model.Request, error)
	Update(id uuid.UUID, role authz.Role, requestorID uuid.UUID, input *UpdateRequestInput) (*model.Request, error)
	Delete(id uuid.UUID, role authz.Role, requestorID uuid.UUID) error
	Cancel(id uuid.UUID, role authz.Role, requestorID uuid.UUID) (*model.Request, error)
	Approve(id uuid.UUID, role authz.Role, approverID uuid.UUID) (*model.Request, error)
	Reject(id uuid.UUID, role authz.Role, approverID uuid.UUID, reason string) (*model.Request, error)
}

type CreateRequestInput struct {
	TransactionDate *time.Time            `json:"transaction_date"`
	TransactionType model.TransactionType `json:"transaction_type" validate:"required,oneof=stockIn stockOut"`
	ItemAmount      int                   `json:"item_amount" validate:"required,gte=1"`
	ProductID       uuid.UUID             `json:"product_id" validate:"uuid_required"`
}

// UpdateRequestInput is a partial update. The requestor and product
// references are immutable after creation and therefore absent here.
type UpdateRequestInput struct {
	TransactionDate *time.Time             `json:"transaction_date"`
	TransactionType *model.TransactionType `json:"transaction_type" validate:"omitempty,oneof=stockIn stockOut"`
	ItemAmount      *int                   `json:"item_amount" validate:"omitempty,gte=1"`
}

type requestService struct {
	requestRepo repository.RequestRepository
	productRepo repository.ProductRepository
}

func NewRequestService(requestRepo repository.RequestRepository, productRepo repository.ProductRepository) RequestService {
	return &requestService{
		requestRepo: requestRepo,
		productRepo: productRepo,
	}
}

// validateAmount is the single home of the stock-out amount rule, shared by
// create and update so the two entry points cannot drift.
func validateAmount(txType model.TransactionType, amount int) error {
	if amount < 1 {
		return apperror.Validation("Item amount must be at least 1")
	}
	if txType == model.StockOut && amount > model.MaxStockOutAmount {
		return apperror.Validation("Stock-out amount cannot exceed 50 items")
	}
	return nil
}

func (s *requestService) findRequest(id uuid.UUID) (*model.Request, error) {
	request, err := s.requestRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Request not found")
		}
		return nil, err
	}
	return request, nil
}

func (s *requestService) List(role authz.Role, requestorID uuid.UUID) ([]model.RequestResponse, error) {
	var (
		requests []model.Request
		err      error
	)
	if role == authz.RoleAdmin {
		requests, err = s.requestRepo.FindAll()
	} else {
		requests, err = s.requestRepo.FindByRequestor(requestorID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]model.RequestResponse, len(requests))
	for i := range requests {
		responses[i] = requests[i].ToResponse()
	}
	return responses, nil
}

func (s *requestService) Get(id uuid.UUID, role authz.Role, requestorID uuid.UUID) (*model.RequestResponse, error) {
	request, err := s.findRequest(id)
	if err != nil {
		return nil, err
	}

	if !authz.Allowed(role, authz.RequestRead, request.RequestorID == requestorID) {
		return nil, apperror.Forbidden("Not authorized to view this request")
	}

	resp := request.ToResponse()
	return &resp, nil
}

func (s *requestService) Create(requestorID uuid.UUID, role authz.Role, input *CreateRequestInput) (*model.Request, error) {
	if !authz.Allowed(role, authz.RequestCreate, false) {
		return nil, apperror.Forbidden("Only staff can create requests")
	}

	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return nil, apperror.Validation(validator.Message(errs))
	}

	if err := validateAmount(input.TransactionType, input.ItemAmount); err != nil {
		return nil, err
	}

	// The referenced product must exist and be visible.
	product, err := s.productRepo.FindByID(input.ProductID)
	if err != nil || !product.IsActive {
		return nil, apperror.Validation("Product not found or inactive")
	}

	// Availability is checked against the current catalog field only; pending
	// requests hold no reservation against each other.
	if input.TransactionType == model.StockOut && product.StockQuantity < input.ItemAmount {
		return nil, apperror.Validation("Insufficient stock available")
	}

	transactionDate := time.Now()
	if input.TransactionDate != nil {
		transactionDate = *input.TransactionDate
	}

	request := &model.Request{
		TransactionDate: transactionDate,
		TransactionType: input.TransactionType,
		ItemAmount:      input.ItemAmount,
		RequestorID:     requestorID,
		ProductID:       input.ProductID,
		Status:          model.StatusPending,
	}

	if err := s.requestRepo.Create(request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *requestService) Update(id uuid.UUID, role authz.Role, requestorID uuid.UUID, input *UpdateRequestInput) (*model.Request, error) {
	request, err := s.findRequest(id)
	if err != nil {
		return nil, err
	}

	if !authz.Allowed(role, authz.RequestUpdate, request.RequestorID == requestorID) {
		return nil, apperror.Forbidden("Not authorized to edit this request")
	}

	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return nil, apperror.Validation(validator.Message(errs))
	}

	// Re-check the amount rule against the effective values. Stock
	// availability is not re-checked on update.
	txType := request.TransactionType
	if input.TransactionType != nil {
		txType = *input.TransactionType
	}
	amount := request.ItemAmount
	if input.ItemAmount != nil {
		amount = *input.ItemAmount
	}
	if err := validateAmount(txType, amount); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.TransactionDate != nil {
		fields["transaction_date"] = *input.TransactionDate
	}
	if input.TransactionType != nil {
		fields["transaction_type"] = *input.TransactionType
	}
	if input.ItemAmount != nil {
		fields["item_amount"] = *input.ItemAmount
	}

	if len(fields) > 0 {
		if err := s.requestRepo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}

	return s.findRequest(id)
}

func (s *requestService) Delete(id uuid.UUID, role authz.Role, requestorID uuid.UUID) error {
	request, err := s.findRequest(id)
	if err != nil {
		return err
	}

	if !authz.Allowed(role, authz.RequestDelete, request.RequestorID == requestorID) {
		return apperror.Forbidden("Not authorized to delete this request")
	}

	return s.requestRepo.Delete(id)
}

func (s *requestService) Cancel(id uuid.UUID, role authz.Role, requestorID uuid.UUID) (*model.Request, error) {
	request, err := s.findRequest(id)
	if err != nil {
		return nil, err
	}

	if !authz.Allowed(role, authz.RequestCancel, request.RequestorID == requestorID) {
		return nil, apperror.Forbidden("Not authorized to cancel this request")
	}

	changed, err := s.requestRepo.UpdateStatusIf(id, model.StatusPending, map[string]interface{}{
		"status": model.StatusCancelled,
	})
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, apperror.Validation("Only pending requests can be cancelled")
	}

	return s.findRequest(id)
}

func (s *requestService) Approve(id uuid.UUID, role authz.Role, approverID uuid.UUID) (*model.Request, error) {
	if _, err := s.findRequest(id); err != nil {
		return nil, err
	}

	if !authz.Allowed(role, authz.RequestApprove, false) {
		return nil, apperror.Forbidden("Only admin can approve requests")
	}

	// Single conditional update keyed on the pending status. Two concurrent
	// approvals race on the same row; exactly one flips it.
	now := time.Now()
	changed, err := s.requestRepo.UpdateStatusIf(id, model.StatusPending, map[string]interface{}{
		"status":         model.StatusApproved,
		"approved_by_id": approverID,
		"approved_at":    now,
	})
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, apperror.Validation("Only pending requests can be approved")
	}

	// Approval does not touch Product.StockQuantity; stock moves only through
	// the admin stock update.
	return s.findRequest(id)
}

func (s *requestService) Reject(id uuid.UUID, role authz.Role, approverID uuid.UUID, reason string) (*model.Request, error) {
	// Input shape first, then existence, then authorization, then state guard.
	if strings.TrimSpace(reason) == "" {
		return nil, apperror.Validation("Rejection reason is required")
	}

	if _, err := s.findRequest(id); err != nil {
		return nil, err
	}

	if !authz.Allowed(role, authz.RequestReject, false) {
		return nil, apperror.Forbidden("Only admin can reject requests")
	}

	now := time.Now()
	changed, err := s.requestRepo.UpdateStatusIf(id, model.StatusPending, map[string]interface{}{
		"status":           model.StatusRejected,
		"rejection_reason": reason,
		"approved_by_id":   approverID,
		"approved_at":      now,
	})
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, apperror.Validation("Only pending requests can be rejected")
	}

	return s.findRequest(id)
}
