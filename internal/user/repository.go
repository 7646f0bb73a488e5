package user

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/OmarZuritaEC/vitalgym/internal/db"
)

var ErrUserNotFound = errors.New("user not found")

type sqlRepository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &sqlRepository{db: database}
}

func (r *sqlRepository) Create(ctx context.Context, name, lastName, email, passwordHash, role string) (*User, error) {
	query := `
		INSERT INTO users (name, last_name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, last_name, email, password_hash, role, created_at
	`

	var user User
	err := r.db.GetContext(ctx, &user, query, name, lastName, email, passwordHash, role)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *sqlRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, name, last_name, email, password_hash, role, created_at
		FROM users
		WHERE email = $1
	`

	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *sqlRepository) FindByID(ctx context.Context, id int) (*User, error) {
	query := `
		SELECT id, name, last_name, email, password_hash, role, created_at
		FROM users
		WHERE id = $1
	`

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *sqlRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
}

func (r *sqlRepository) Exists(ctx context.Context, id int) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id)
}

// List returns one page of users, newest first, optionally filtered by name.
// The second return value is the total match count before paging.
func (r *sqlRepository) List(ctx context.Context, filter string, page, perPage int) ([]User, int, error) {
	pattern := "%" + filter + "%"

	var total int
	err := r.db.GetContext(ctx, &total, `
		SELECT COUNT(*)
		FROM users
		WHERE ($1 = '' OR name ILIKE $2 OR last_name ILIKE $2)
	`, filter, pattern)
	if err != nil {
		return nil, 0, err
	}

	users := []User{}
	err = r.db.SelectContext(ctx, &users, `
		SELECT id, name, last_name, email, password_hash, role, created_at
		FROM users
		WHERE ($1 = '' OR name ILIKE $2 OR last_name ILIKE $2)
		ORDER BY id DESC
		LIMIT $3 OFFSET $4
	`, filter, pattern, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
