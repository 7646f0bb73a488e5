package membership

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/OmarZuritaEC/vitalgym/internal/db"
	"github.com/OmarZuritaEC/vitalgym/internal/payment"
)

var (
	ErrTypeNotFound = errors.New("membership type not found")
	ErrTypeInUse    = errors.New("membership type is referenced by memberships")
)

const pqForeignKeyViolation = "23503"

type sqlRepository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &sqlRepository{db: database}
}

func (r *sqlRepository) TypeByID(ctx context.Context, id int) (*MembershipType, error) {
	mt := &MembershipType{}
	err := r.db.GetContext(ctx, mt, `
		SELECT id, name, price, created_at
		FROM membership_types
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	return mt, nil
}

func (r *sqlRepository) TypeExists(ctx context.Context, id int) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM membership_types WHERE id = $1)`, id)
}

func (r *sqlRepository) ListTypes(ctx context.Context) ([]MembershipType, error) {
	types := []MembershipType{}
	err := r.db.SelectContext(ctx, &types, `
		SELECT id, name, price, created_at
		FROM membership_types
		ORDER BY price ASC
	`)
	return types, err
}

func (r *sqlRepository) CreateType(ctx context.Context, name string, price int64) (*MembershipType, error) {
	mt := &MembershipType{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO membership_types (name, price)
		VALUES ($1, $2)
		RETURNING id, name, price, created_at
	`, name, price).StructScan(mt)
	return mt, err
}

func (r *sqlRepository) DeleteType(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM membership_types WHERE id = $1`, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqForeignKeyViolation {
			return ErrTypeInUse
		}
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTypeNotFound
	}
	return nil
}

// CreateOrder writes the membership and its payment atomically. Either both
// rows land or neither does.
func (r *sqlRepository) CreateOrder(ctx context.Context, order NewOrder) (*Membership, *payment.Payment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	m := &Membership{}
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO memberships (customer_id, membership_type_id, date_start, date_end, total_days)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, customer_id, membership_type_id, date_start, date_end, total_days, created_at
	`, order.CustomerID, order.MembershipTypeID, order.DateStart, order.DateEnd, order.TotalDays).StructScan(m)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to insert membership: %w", err)
	}

	p := &payment.Payment{}
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO payments (membership_id, customer_id, user_id, membership_quantity, total_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, membership_id, customer_id, user_id, membership_quantity, total_price, created_at
	`, m.ID, order.CustomerID, order.CreatedByUserID, order.MembershipQuantity, order.TotalPrice).StructScan(p)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to insert payment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit order: %w", err)
	}

	return m, p, nil
}

// FindEndingOn returns memberships whose end date is exactly the given day,
// joined with the owning customer's contact details. Memberships already
// past due are not included.
func (r *sqlRepository) FindEndingOn(ctx context.Context, day time.Time) ([]ExpiringMembership, error) {
	rows := []ExpiringMembership{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT m.id, m.customer_id, m.membership_type_id, m.date_start, m.date_end,
		       m.total_days, m.created_at,
		       u.name AS customer_name,
		       u.last_name AS customer_last_name,
		       u.email AS customer_email
		FROM memberships m
		JOIN customers c ON c.id = m.customer_id
		JOIN users u ON u.id = c.user_id
		WHERE m.date_end = $1
		ORDER BY m.customer_id, m.id
	`, day.Format(dateLayout))
	return rows, err
}
