package repository

import (
	"go-stockme/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RequestRepository interface {
	Create(request *model.Request) error
	FindAll() ([]model.Request, error)
	FindByRequestor(requestorID uuid.UUID) ([]model.Request, error)
	FindByID(id uuid.UUID) (*model.Request, error)
	UpdateFields(id uuid.UUID, fields map[string]interface{}) error
	Delete(id uuid.UUID) error
	UpdateStatusIf(id uuid.UUID, current model.RequestStatus, fields map[string]interface{}) (bool, error)
}

type requestRepo struct {
	db *gorm.DB
}

func NewRequestRepo(db *gorm.DB) RequestRepository {
	return &requestRepo{db}
}

func (r *requestRepo) Create(request *model.Request) error {
	return r.db.Create(request).Error
}

func (r *requestRepo) FindAll() ([]model.Request, error) {
	var requests []model.Request
	err := r.db.Preload("Requestor").Preload("Product").Preload("ApprovedBy").
		Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *requestRepo) FindByRequestor(requestorID uuid.UUID) ([]model.Request, error) {
	var requests []model.Request
	err := r.db.Preload("Requestor").Preload("Product").Preload("ApprovedBy").
		Where("requestor_id = ?", requestorID).
		Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *requestRepo) FindByID(id uuid.UUID) (*model.Request, error) {
	var request model.Request
	err := r.db.Preload("Requestor").Preload("Product").Preload("ApprovedBy").
		First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepo) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&model.Request{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *requestRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Request{}, "id = ?", id).Error
}

// UpdateStatusIf performs the status transition as a single conditional
// UPDATE keyed on the current status. The boolean result reports whether a
// row actually changed; false means another caller won the transition first
// or the request already left the expected state.
func (r *requestRepo) UpdateStatusIf(id uuid.UUID, current model.RequestStatus, fields map[string]interface{}) (bool, error) {
	result := r.db.Model(&model.Request{}).
		Where("id = ? AND status = ?", id, current).
		Updates(fields)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
