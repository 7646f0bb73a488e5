package payment

import "context"

type Repository interface {
	ListByCustomer(ctx context.Context, customerID int) ([]PaymentWithDetails, error)
	ListRecent(ctx context.Context, limit int) ([]PaymentWithDetails, error)
}
