package users

import (
	"time"

	"github.com/blogapp/blog-server/internal/auth"
	"github.com/blogapp/blog-server/internal/db/sqlc"
)

type User struct {
	ID        string
	Name      string
	Email     string
	Role      auth.Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     auth.Role
}

// ProfileUpdate carries optional fields; nil leaves the stored value untouched.
type ProfileUpdate struct {
	Name     *string
	Email    *string
	Password *string
}

type ListFilter struct {
	Name  string
	Email string
	Role  auth.Role
}

func fromRow(u sqlc.User) User {
	return User{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      auth.Role(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
