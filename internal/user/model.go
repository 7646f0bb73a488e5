package user

import (
	"strings"
	"time"
)

type User struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	LastName     string    `db:"last_name" json:"last_name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// FullName is the display name used on payments and order confirmations.
func (u *User) FullName() string {
	return strings.TrimSpace(u.Name + " " + u.LastName)
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=80"`
	LastName string `json:"last_name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// UserPage mirrors the paginated listing the back office renders: newest
// users first, fifteen per page.
type UserPage struct {
	CurrentPage int     `json:"current_page"`
	Total       int     `json:"total"`
	PerPage     int     `json:"per_page"`
	LastPage    int     `json:"last_page"`
	From        *int    `json:"from"`
	To          *int    `json:"to"`
	NextPageURL *string `json:"next_page_url"`
	PrevPageURL *string `json:"prev_page_url"`
	Data        []User  `json:"data"`
}
