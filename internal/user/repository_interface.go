package user

import "context"

type Repository interface {
	Create(ctx context.Context, name, lastName, email, passwordHash, role string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Exists(ctx context.Context, id int) (bool, error)
	List(ctx context.Context, filter string, page, perPage int) ([]User, int, error)
}
