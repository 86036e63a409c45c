package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"olms-backend/internal/domain"
	"olms-backend/internal/repository"
)

type metalRateRepository struct {
	db *sql.DB
}

func NewMetalRateRepository(db *sql.DB) repository.MetalRateRepository {
	return &metalRateRepository{db: db}
}

func (r *metalRateRepository) Create(ctx context.Context, m *domain.MetalRate) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `INSERT INTO metal_rates (id, metal_type, karat, rate_per_gram, rate_date, source) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, m.ID, m.MetalType, m.Karat, m.RatePerGram, m.RateDate.Format("2006-01-02"), m.Source)
	return err
}

func (r *metalRateRepository) FindForDay(ctx context.Context, metalType domain.MetalType, karat decimal.Decimal, day time.Time) (*domain.MetalRate, error) {
	m := &domain.MetalRate{}
	query := `SELECT id, metal_type, karat, rate_per_gram, rate_date, source FROM metal_rates
	          WHERE metal_type = $1 AND karat = $2 AND rate_date = $3`
	err := r.db.QueryRowContext(ctx, query, metalType, karat, day.Format("2006-01-02")).
		Scan(&m.ID, &m.MetalType, &m.Karat, &m.RatePerGram, &m.RateDate, &m.Source)
	if err != nil {
		return nil, notFound(err)
	}
	return m, nil
}
