package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"olms-backend/internal/domain"
	"olms-backend/internal/repository"
)

type branchRepository struct {
	db *sql.DB
}

func NewBranchRepository(db *sql.DB) repository.BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) Create(ctx context.Context, b *domain.Branch) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	query := `INSERT INTO branches (id, name, address, phone, email, status, created_at) VALUES ($1, $2, $3, $4, $5, $6, NOW())`
	_, err := r.db.ExecContext(ctx, query, b.ID, b.Name, b.Address, b.Phone, b.Email, b.Status)
	return err
}

func (r *branchRepository) First(ctx context.Context) (*domain.Branch, error) {
	b := &domain.Branch{}
	query := `SELECT id, name, COALESCE(address, ''), COALESCE(phone, ''), COALESCE(email, ''), status FROM branches ORDER BY created_at LIMIT 1`
	err := r.db.QueryRowContext(ctx, query).Scan(&b.ID, &b.Name, &b.Address, &b.Phone, &b.Email, &b.Status)
	if err != nil {
		return nil, notFound(err)
	}
	return b, nil
}
