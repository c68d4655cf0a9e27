package service

import (
	"time"

	"go-stockme/internal/authz"
	"go-stockme/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type mockProductRepo struct {
	store map[uuid.UUID]*model.Product
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{store: make(map[uuid.UUID]*model.Product)}
}

func (m *mockProductRepo) Create(product *model.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	product.CreatedAt = time.Now()
	clone := *product
	m.store[product.ID] = &clone
	return nil
}

func (m *mockProductRepo) FindAll(includeInactive bool) ([]model.Product, error) {
	var products []model.Product
	for _, p := range m.store {
		if !includeInactive && !p.IsActive {
			continue
		}
		products = append(products, *p)
	}
	return products, nil
}

func (m *mockProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	p, ok := m.store[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *p
	return &clone, nil
}

func (m *mockProductRepo) FindBySKU(sku string) (*model.Product, error) {
	for _, p := range m.store {
		if p.SKU == sku {
			clone := *p
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProductRepo) FindByName(name string) (*model.Product, error) {
	for _, p := range m.store {
		if p.Name == name {
			clone := *p
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProductRepo) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	p, ok := m.store[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for key, value := range fields {
		switch key {
		case "name":
			p.Name = value.(string)
		case "sku":
			p.SKU = value.(string)
		case "description":
			p.Description = value.(string)
		case "category":
			p.Category = value.(string)
		case "price":
			p.Price = value.(float64)
		case "stock_quantity":
			p.StockQuantity = value.(int)
		case "unit":
			p.Unit = value.(string)
		case "picture":
			p.Picture = value.(string)
		case "is_active":
			p.IsActive = value.(bool)
		}
	}
	return nil
}

func (m *mockProductRepo) SetStock(id uuid.UUID, quantity int) error {
	p, ok := m.store[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.StockQuantity = quantity
	return nil
}

type mockRequestRepo struct {
	store map[uuid.UUID]*model.Request
	users map[uuid.UUID]*model.User
	prods *mockProductRepo
}

func newMockRequestRepo(prods *mockProductRepo) *mockRequestRepo {
	return &mockRequestRepo{
		store: make(map[uuid.UUID]*model.Request),
		users: make(map[uuid.UUID]*model.User),
		prods: prods,
	}
}

// enrich mimics the Preload joins of the real repository.
func (m *mockRequestRepo) enrich(r model.Request) model.Request {
	if u, ok := m.users[r.RequestorID]; ok {
		clone := *u
		r.Requestor = &clone
	}
	if m.prods != nil {
		if p, ok := m.prods.store[r.ProductID]; ok {
			clone := *p
			r.Product = &clone
		}
	}
	return r
}

func (m *mockRequestRepo) Create(request *model.Request) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	request.CreatedAt = time.Now()
	clone := *request
	m.store[request.ID] = &clone
	return nil
}

func (m *mockRequestRepo) FindAll() ([]model.Request, error) {
	var requests []model.Request
	for _, r := range m.store {
		requests = append(requests, m.enrich(*r))
	}
	return requests, nil
}

func (m *mockRequestRepo) FindByRequestor(requestorID uuid.UUID) ([]model.Request, error) {
	var requests []model.Request
	for _, r := range m.store {
		if r.RequestorID == requestorID {
			requests = append(requests, m.enrich(*r))
		}
	}
	return requests, nil
}

func (m *mockRequestRepo) FindByID(id uuid.UUID) (*model.Request, error) {
	r, ok := m.store[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := m.enrich(*r)
	return &clone, nil
}

func (m *mockRequestRepo) applyFields(r *model.Request, fields map[string]interface{}) {
	for key, value := range fields {
		switch key {
		case "status":
			r.Status = value.(model.RequestStatus)
		case "approved_by_id":
			id := value.(uuid.UUID)
			r.ApprovedByID = &id
		case "approved_at":
			at := value.(time.Time)
			r.ApprovedAt = &at
		case "rejection_reason":
			r.RejectionReason = value.(string)
		case "transaction_date":
			r.TransactionDate = value.(time.Time)
		case "transaction_type":
			r.TransactionType = value.(model.TransactionType)
		case "item_amount":
			r.ItemAmount = value.(int)
		}
	}
}

func (m *mockRequestRepo) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	r, ok := m.store[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.applyFields(r, fields)
	return nil
}

func (m *mockRequestRepo) Delete(id uuid.UUID) error {
	delete(m.store, id)
	return nil
}

func (m *mockRequestRepo) UpdateStatusIf(id uuid.UUID, current model.RequestStatus, fields map[string]interface{}) (bool, error) {
	r, ok := m.store[id]
	if !ok || r.Status != current {
		return false, nil
	}
	m.applyFields(r, fields)
	return true, nil
}

type mockUserRepo struct {
	store map[uuid.UUID]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{store: make(map[uuid.UUID]*model.User)}
}

func (m *mockUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range m.store {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	u, ok := m.store[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *u
	return &clone, nil
}

func (m *mockUserRepo) Create(user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	clone := *user
	m.store[user.ID] = &clone
	return nil
}

func (m *mockUserRepo) Update(user *model.User) error {
	clone := *user
	m.store[user.ID] = &clone
	return nil
}

func (m *mockUserRepo) ExistsAdmin() (bool, error) {
	for _, u := range m.store {
		if u.Role == authz.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}
