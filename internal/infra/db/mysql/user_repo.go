package mysql

import (
	"context"
	"database/sql"

	"github.com/kaizen-center/backend/internal/domain/users"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) ByEmail(ctx context.Context, email string) (*users.User, error) {
	const q = `
SELECT id, email, password_hash, role, created_at
FROM app_users
WHERE email=?;
`
	var u users.User
	if err := r.db.QueryRowContext(ctx, q, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, users.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
