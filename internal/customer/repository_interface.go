package customer

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, nc NewCustomer) (*Customer, error)
	FindByID(ctx context.Context, id int) (*Customer, error)
	Exists(ctx context.Context, id int) (bool, error)
	List(ctx context.Context) ([]Customer, error)
}

// NewCustomer carries the insertable fields for Create.
type NewCustomer struct {
	UserID    int
	CI        *string
	Phone     string
	CellPhone string
	Address   string
	Birthdate time.Time
	Gender    string
	Avatar    *string
}
