package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/feldhop/the-album-club-app/internal/models"
	"github.com/feldhop/the-album-club-app/internal/shared"
)

// UserRepository reads the user roster. The HTTP surface is read-only for
// users; Create exists for the CLI provisioning path.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository with the given database connection
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List returns all user rows in id order.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	users, err := FetchAll(ctx, r.db,
		"SELECT id, first_name, last_name, email FROM users ORDER BY id", scanUser)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Get retrieves a user by id.
func (r *UserRepository) Get(ctx context.Context, id int64) (models.User, error) {
	user, ok, err := FetchOne(ctx, r.db,
		"SELECT id, first_name, last_name, email FROM users WHERE id = ?", scanUser, id)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !ok {
		return models.User{}, fmt.Errorf("user %d: %w", id, shared.ErrNotFound)
	}
	return user, nil
}

// Create inserts a new user row. Email is unique.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if strings.TrimSpace(user.FirstName) == "" {
		return &shared.ValidationError{Field: "first_name", Message: "must not be empty"}
	}
	if strings.TrimSpace(user.Email) == "" {
		return &shared.ValidationError{Field: "email", Message: "must not be empty"}
	}

	id, err := ExecuteWrite(ctx, r.db,
		"INSERT INTO users (first_name, last_name, email) VALUES (?, ?, ?)",
		user.FirstName, user.LastName, user.Email)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	user.ID = id
	return nil
}

func scanUser(row RowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email)
	return u, err
}
