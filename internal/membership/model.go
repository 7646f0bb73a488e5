package membership

import (
	"encoding/json"
	"time"

	"github.com/OmarZuritaEC/vitalgym/internal/pricing"
)

// MembershipType is a catalog plan with its recurring price in cents.
// Rows referenced by sold memberships are never updated or deleted, so
// historical payments keep the price they were sold at.
type MembershipType struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Price     int64     `db:"price" json:"price"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// PriceInDollars renders the unit price for display, e.g. 461 -> "4.61".
func (mt *MembershipType) PriceInDollars() string {
	return pricing.FormatCents(mt.Price)
}

// Membership is a purchased subscription period. It is written once by the
// order flow and never mutated afterwards.
type Membership struct {
	ID               int       `db:"id" json:"id"`
	CustomerID       int       `db:"customer_id" json:"customer_id"`
	MembershipTypeID int       `db:"membership_type_id" json:"membership_type_id"`
	DateStart        time.Time `db:"date_start" json:"date_start"`
	DateEnd          time.Time `db:"date_end" json:"date_end"`
	TotalDays        int       `db:"total_days" json:"total_days"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// ExpiringMembership is a membership joined with the contact details of the
// customer it belongs to, as returned by FindEndingOn.
type ExpiringMembership struct {
	Membership
	CustomerName     string `db:"customer_name" json:"customer_name"`
	CustomerLastName string `db:"customer_last_name" json:"customer_last_name"`
	CustomerEmail    string `db:"customer_email" json:"customer_email"`
}

// OrderRequest is the raw POST /admin/memberships body. Numeric fields stay
// raw JSON so a wrongly-typed value surfaces as an error on its own field
// instead of failing the whole bind.
type OrderRequest struct {
	DateStart          json.RawMessage `json:"date_start"`
	DateEnd            json.RawMessage `json:"date_end"`
	TotalDays          json.RawMessage `json:"total_days"`
	MembershipTypeID   json.RawMessage `json:"membership_type_id"`
	CustomerID         json.RawMessage `json:"customer_id"`
	MembershipQuantity json.RawMessage `json:"membership_quantity"`
}

// OrderInput is a validated, normalized order request.
type OrderInput struct {
	DateStart          time.Time
	DateEnd            time.Time
	TotalDays          int
	MembershipTypeID   int
	CustomerID         int
	MembershipQuantity int
}

// OrderCustomer is the customer block nested in an order response.
type OrderCustomer struct {
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
}

// OrderResult is the 201 response for a created membership order.
type OrderResult struct {
	ID                 int           `json:"id"`
	DateStart          string        `json:"date_start"`
	DateEnd            string        `json:"date_end"`
	TotalDays          int           `json:"total_days"`
	Name               string        `json:"name"`
	UnitPrice          int64         `json:"unit_price"`
	TotalPrice         int64         `json:"total_price"`
	MembershipQuantity int           `json:"membership_quantity"`
	CreatedBy          string        `json:"created_by"`
	Customer           OrderCustomer `json:"customer"`
}

type CreateMembershipTypeRequest struct {
	Name  string `json:"name" binding:"required,max=80"`
	Price int64  `json:"price" binding:"required,min=1"`
}
