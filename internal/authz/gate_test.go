package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	cases := []struct {
		name   string
		role   Role
		action Action
		owns   bool
		want   bool
	}{
		{"guest lists products", RoleGuest, ProductList, false, true},
		{"guest reads product", RoleGuest, ProductGet, false, true},
		{"guest may not create product", RoleGuest, ProductCreate, false, false},
		{"staff may not create product", RoleStaff, ProductCreate, false, false},
		{"admin creates product", RoleAdmin, ProductCreate, false, true},
		{"admin sets stock", RoleAdmin, ProductSetStock, false, true},
		{"staff may not set stock", RoleStaff, ProductSetStock, false, false},
		{"staff may not delete product", RoleStaff, ProductDelete, false, false},
		{"admin deletes product", RoleAdmin, ProductDelete, false, true},

		{"staff lists requests", RoleStaff, RequestList, false, true},
		{"admin lists requests", RoleAdmin, RequestList, false, true},
		{"guest may not list requests", RoleGuest, RequestList, false, false},

		{"staff creates request", RoleStaff, RequestCreate, false, true},
		{"admin may not create request", RoleAdmin, RequestCreate, false, false},
		{"guest may not create request", RoleGuest, RequestCreate, false, false},

		{"staff reads own request", RoleStaff, RequestRead, true, true},
		{"staff may not read foreign request", RoleStaff, RequestRead, false, false},
		{"admin reads any request", RoleAdmin, RequestRead, false, true},
		{"staff updates own request", RoleStaff, RequestUpdate, true, true},
		{"staff may not update foreign request", RoleStaff, RequestUpdate, false, false},
		{"staff deletes own request", RoleStaff, RequestDelete, true, true},
		{"staff cancels own request", RoleStaff, RequestCancel, true, true},
		{"staff may not cancel foreign request", RoleStaff, RequestCancel, false, false},
		{"admin cancels any request", RoleAdmin, RequestCancel, false, true},

		{"staff may not approve", RoleStaff, RequestApprove, true, false},
		{"admin approves", RoleAdmin, RequestApprove, false, true},
		{"staff may not reject", RoleStaff, RequestReject, true, false},
		{"admin rejects", RoleAdmin, RequestReject, false, true},

		{"unknown action denied", RoleAdmin, Action("bogus"), false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Allowed(tc.role, tc.action, tc.owns))
		})
	}
}

func TestSeesInactiveProducts(t *testing.T) {
	assert.True(t, SeesInactiveProducts(RoleAdmin))
	assert.False(t, SeesInactiveProducts(RoleStaff))
	assert.False(t, SeesInactiveProducts(RoleGuest))
}
