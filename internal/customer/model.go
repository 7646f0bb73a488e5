package customer

import (
	"strings"
	"time"
)

// Customer is a gym client. Identity fields (name, email) live on the owning
// user account and are joined in by the repository, so a customer always
// resolves to exactly one user for display purposes.
type Customer struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	CI        *string   `db:"ci" json:"ci,omitempty"`
	Phone     string    `db:"phone" json:"phone"`
	CellPhone string    `db:"cell_phone" json:"cell_phone"`
	Address   string    `db:"address" json:"address"`
	Birthdate time.Time `db:"birthdate" json:"birthdate"`
	Gender    string    `db:"gender" json:"gender"`
	Avatar    *string   `db:"avatar" json:"avatar,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	Name     string `db:"name" json:"name"`
	LastName string `db:"last_name" json:"last_name"`
	Email    string `db:"email" json:"email"`
}

func (c *Customer) FullName() string {
	return strings.TrimSpace(c.Name + " " + c.LastName)
}

type CreateCustomerRequest struct {
	UserID    int     `json:"user_id" binding:"required"`
	CI        *string `json:"ci"`
	Phone     string  `json:"phone" binding:"required,max=10"`
	CellPhone string  `json:"cell_phone" binding:"required,max=10"`
	Address   string  `json:"address" binding:"required,max=255"`
	Birthdate string  `json:"birthdate" binding:"required,datetime=2006-01-02"`
	Gender    string  `json:"gender" binding:"required,max=60"`
	Avatar    *string `json:"avatar"`
}
