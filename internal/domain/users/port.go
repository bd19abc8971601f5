package users

import (
	"context"
	"errors"
)

// ErrNotFound indicates no account for the given email
var ErrNotFound = errors.New("user not found")

// Repository port for account lookup
type Repository interface {
	ByEmail(ctx context.Context, email string) (*User, error)
}
