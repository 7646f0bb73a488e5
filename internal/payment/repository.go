package payment

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const paymentSelect = `
	SELECT p.id, p.membership_id, p.customer_id, p.user_id,
	       p.membership_quantity, p.total_price, p.created_at,
	       TRIM(cu.name || ' ' || cu.last_name) AS customer_name,
	       TRIM(su.name || ' ' || su.last_name) AS created_by
	FROM payments p
	JOIN customers c ON c.id = p.customer_id
	JOIN users cu ON cu.id = c.user_id
	JOIN users su ON su.id = p.user_id
`

type sqlRepository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &sqlRepository{db: database}
}

func (r *sqlRepository) ListByCustomer(ctx context.Context, customerID int) ([]PaymentWithDetails, error) {
	payments := []PaymentWithDetails{}
	err := r.db.SelectContext(ctx, &payments, paymentSelect+`
		WHERE p.customer_id = $1
		ORDER BY p.created_at DESC
	`, customerID)
	return payments, err
}

func (r *sqlRepository) ListRecent(ctx context.Context, limit int) ([]PaymentWithDetails, error) {
	payments := []PaymentWithDetails{}
	err := r.db.SelectContext(ctx, &payments, paymentSelect+`
		ORDER BY p.created_at DESC
		LIMIT $1
	`, limit)
	return payments, err
}
