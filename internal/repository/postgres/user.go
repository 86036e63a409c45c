package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"olms-backend/internal/domain"
	"olms-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	query := `INSERT INTO users (id, username, email, password_hash, name, role, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	now := time.Now().Format("2006-01-02")
	u.CreatedOn = now
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Username, u.Email, u.PasswordHash, u.Name, u.Role, u.Status, u.CreatedOn)
	return err
}

func (r *userRepository) get(ctx context.Context, where string, arg any) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, username, COALESCE(email, ''), password_hash, name, role, status, created_on FROM users WHERE ` + where
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status, &createdOn)
	if err != nil {
		return nil, notFound(err)
	}
	u.CreatedOn = createdOn.Format("2006-01-02")
	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.get(ctx, `id = $1`, id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.get(ctx, `LOWER(username) = LOWER($1)`, username)
}
