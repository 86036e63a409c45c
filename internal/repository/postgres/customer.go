package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"olms-backend/internal/domain"
	"olms-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

const customerSelect = `SELECT c.id, c.customer_id, c.first_name, c.last_name, c.phone, COALESCE(c.alternate_phone, ''),
	COALESCE(c.email, ''), COALESCE(c.address, ''), COALESCE(c.city, ''), COALESCE(c.state, ''), COALESCE(c.pincode, ''),
	c.status, c.branch_id, COALESCE(b.name, ''), c.created_at
	FROM customers c LEFT JOIN branches b ON b.id = c.branch_id`

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	c := &domain.Customer{}
	var branchID sql.NullString
	err := row.Scan(&c.ID, &c.CustomerID, &c.FirstName, &c.LastName, &c.Phone, &c.AlternatePhone,
		&c.Email, &c.Address, &c.City, &c.State, &c.Pincode,
		&c.Status, &branchID, &c.BranchName, &c.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	c.BranchID = nullStringPtr(branchID)
	return c, nil
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Status == "" {
		c.Status = domain.CustomerStatusActive
	}
	c.CreatedAt = time.Now().UTC()
	query := `INSERT INTO customers (id, customer_id, first_name, last_name, phone, alternate_phone, email, address, city, state, pincode, status, branch_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.CustomerID, c.FirstName, c.LastName, c.Phone, c.AlternatePhone,
		c.Email, c.Address, c.City, c.State, c.Pincode, c.Status, c.BranchID, c.CreatedAt)
	return err
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	return scanCustomer(r.db.QueryRowContext(ctx, customerSelect+` WHERE c.id = $1`, id))
}

func (r *customerRepository) GetByCustomerCode(ctx context.Context, code string) (*domain.Customer, error) {
	return scanCustomer(r.db.QueryRowContext(ctx, customerSelect+` WHERE c.customer_id = $1`, code))
}
