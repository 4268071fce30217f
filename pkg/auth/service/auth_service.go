package service

import (
	"fmt"

	"cultivos/entities"
	"cultivos/pkg/apperr"
)

var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", apperr.ErrUnauthorized)
	ErrProtectedUser      = fmt.Errorf("%w: the administrator account cannot be modified", apperr.ErrForbidden)
)

type CreateUserInput struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Role     string  `json:"role"`
	Email    *string `json:"email"`
}

// UpdateUserInput replaces username and email. An empty Password keeps the
// current one.
type UpdateUserInput struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    *string `json:"email"`
}

// Recovery carries a freshly issued temporary password.
type Recovery struct {
	Username          string `json:"username"`
	TemporaryPassword string `json:"temporary_password"`
}

type AuthService interface {
	Login(username, password string) (*entities.User, error)
	ListUsers() ([]entities.User, error)
	CreateUser(in CreateUserInput) (*entities.User, error)
	UpdateUser(username string, in UpdateUserInput) (*entities.User, error)
	DeleteUser(username string) error
	RecoverByEmail(email string) (*Recovery, error)
	EnsureAdmin(password string) error
}
