package service_test

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"olms-backend/internal/domain"
	"olms-backend/internal/repository"
	"olms-backend/internal/storage"
)

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) GetByCustomerCode(ctx context.Context, code string) (*domain.Customer, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// MockLoanRepo
type MockLoanRepo struct {
	mock.Mock
}

func (m *MockLoanRepo) Create(ctx context.Context, l *domain.Loan) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockLoanRepo) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Loan, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListActive(ctx context.Context) ([]domain.Loan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) MarkOverdue(ctx context.Context, asOf time.Time) ([]domain.Loan, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) UpdateRiskZone(ctx context.Context, id string, zone domain.RiskZone) error {
	args := m.Called(ctx, id, zone)
	return args.Error(0)
}

// MockOrnamentRepo
type MockOrnamentRepo struct {
	mock.Mock
}

func (m *MockOrnamentRepo) Create(ctx context.Context, o *domain.Ornament) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrnamentRepo) GetByOrnamentCode(ctx context.Context, code string) (*domain.Ornament, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ornament), args.Error(1)
}
func (m *MockOrnamentRepo) ListByLoan(ctx context.Context, loanID string) ([]domain.Ornament, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ornament), args.Error(1)
}
func (m *MockOrnamentRepo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Ornament, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ornament), args.Error(1)
}
func (m *MockOrnamentRepo) LinkToLoan(ctx context.Context, ornamentID, loanID string) error {
	args := m.Called(ctx, ornamentID, loanID)
	return args.Error(0)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) ListByLoan(ctx context.Context, loanID string, limit int) ([]domain.Payment, error) {
	args := m.Called(ctx, loanID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// MockNoteRepo
type MockNoteRepo struct {
	mock.Mock
}

func (m *MockNoteRepo) ListByCustomer(ctx context.Context, customerID string, limit int) ([]domain.Note, error) {
	args := m.Called(ctx, customerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Note), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockBranchRepo
type MockBranchRepo struct {
	mock.Mock
}

func (m *MockBranchRepo) Create(ctx context.Context, b *domain.Branch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBranchRepo) First(ctx context.Context) (*domain.Branch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

// MockMetalRateRepo
type MockMetalRateRepo struct {
	mock.Mock
}

func (m *MockMetalRateRepo) Create(ctx context.Context, r *domain.MetalRate) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockMetalRateRepo) FindForDay(ctx context.Context, metalType domain.MetalType, karat decimal.Decimal, day time.Time) (*domain.MetalRate, error) {
	args := m.Called(ctx, metalType, karat, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MetalRate), args.Error(1)
}

// fakeSettings is an in-memory settings table.
type fakeSettings struct {
	values  map[string]string
	err     error
	created []string
}

func newFakeSettings(kv ...string) *fakeSettings {
	f := &fakeSettings{values: map[string]string{}}
	for i := 0; i+1 < len(kv); i += 2 {
		f.values[kv[i]] = kv[i+1]
	}
	return f
}

func (f *fakeSettings) Get(ctx context.Context, key string) (*domain.Setting, error) {
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.values[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &domain.Setting{Key: key, Value: v}, nil
}
func (f *fakeSettings) List(ctx context.Context) ([]domain.Setting, error) {
	var out []domain.Setting
	for k, v := range f.values {
		out = append(out, domain.Setting{Key: k, Value: v})
	}
	return out, f.err
}
func (f *fakeSettings) Create(ctx context.Context, s *domain.Setting) error {
	if f.err != nil {
		return f.err
	}
	f.values[s.Key] = s.Value
	f.created = append(f.created, s.Key)
	return nil
}
func (f *fakeSettings) Upsert(ctx context.Context, key, value string) error {
	if f.err != nil {
		return f.err
	}
	f.values[key] = value
	return nil
}

// memStore is an in-memory storage backend.
type memStore struct {
	objects map[string][]byte
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}}
}

func (s *memStore) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.objects[key] = data
	return nil
}
func (s *memStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	data, ok := s.objects[key]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
func (s *memStore) Exists(ctx context.Context, key string) (bool, int64, error) {
	data, ok := s.objects[key]
	return ok, int64(len(data)), nil
}
func (s *memStore) Delete(ctx context.Context, key string) error {
	delete(s.objects, key)
	return nil
}
