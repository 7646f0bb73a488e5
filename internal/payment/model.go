package payment

import (
	"time"

	"github.com/OmarZuritaEC/vitalgym/internal/pricing"
)

// Payment records the money side of one membership order. It is created in
// the same transaction as its membership.
type Payment struct {
	ID                 int       `db:"id" json:"id"`
	MembershipID       int       `db:"membership_id" json:"membership_id"`
	CustomerID         int       `db:"customer_id" json:"customer_id"`
	UserID             int       `db:"user_id" json:"user_id"`
	MembershipQuantity int       `db:"membership_quantity" json:"membership_quantity"`
	TotalPrice         int64     `db:"total_price" json:"total_price"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

func (p *Payment) TotalPriceInDollars() string {
	return pricing.FormatCents(p.TotalPrice)
}

// PaymentWithDetails is a payment row joined with the customer it belongs
// to and the staff member who recorded it, for the payment history listing.
type PaymentWithDetails struct {
	Payment
	CustomerName string `db:"customer_name" json:"customer_name"`
	CreatedBy    string `db:"created_by" json:"created_by"`
}
