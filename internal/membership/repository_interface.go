package membership

import (
	"context"
	"time"

	"github.com/OmarZuritaEC/vitalgym/internal/payment"
)

// NewOrder carries everything the repository needs to persist a membership
// together with its payment in one transaction.
type NewOrder struct {
	CustomerID         int
	MembershipTypeID   int
	DateStart          time.Time
	DateEnd            time.Time
	TotalDays          int
	MembershipQuantity int
	TotalPrice         int64
	CreatedByUserID    int
}

type Repository interface {
	TypeByID(ctx context.Context, id int) (*MembershipType, error)
	TypeExists(ctx context.Context, id int) (bool, error)
	ListTypes(ctx context.Context) ([]MembershipType, error)
	CreateType(ctx context.Context, name string, price int64) (*MembershipType, error)
	DeleteType(ctx context.Context, id int) error
	CreateOrder(ctx context.Context, order NewOrder) (*Membership, *payment.Payment, error)
	FindEndingOn(ctx context.Context, day time.Time) ([]ExpiringMembership, error)
}
