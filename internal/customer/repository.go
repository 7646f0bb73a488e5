package customer

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/OmarZuritaEC/vitalgym/internal/db"
)

var ErrCustomerNotFound = errors.New("customer not found")

const customerSelect = `
	SELECT c.id, c.user_id, c.ci, c.phone, c.cell_phone, c.address, c.birthdate,
	       c.gender, c.avatar, c.created_at,
	       u.name, u.last_name, u.email
	FROM customers c
	JOIN users u ON u.id = c.user_id
`

type sqlRepository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &sqlRepository{db: database}
}

func (r *sqlRepository) Create(ctx context.Context, nc NewCustomer) (*Customer, error) {
	var id int
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO customers (user_id, ci, phone, cell_phone, address, birthdate, gender, avatar)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, nc.UserID, nc.CI, nc.Phone, nc.CellPhone, nc.Address, nc.Birthdate, nc.Gender, nc.Avatar).Scan(&id)
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

func (r *sqlRepository) FindByID(ctx context.Context, id int) (*Customer, error) {
	c := &Customer{}
	err := r.db.GetContext(ctx, c, customerSelect+` WHERE c.id = $1`, id)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *sqlRepository) Exists(ctx context.Context, id int) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`, id)
}

func (r *sqlRepository) List(ctx context.Context) ([]Customer, error) {
	customers := []Customer{}
	err := r.db.SelectContext(ctx, &customers, customerSelect+` ORDER BY c.id DESC`)
	return customers, err
}
