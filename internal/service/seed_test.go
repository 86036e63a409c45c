package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"olms-backend/internal/domain"
	"olms-backend/internal/repository"
	"olms-backend/internal/service"
)

func TestSeedService_Seed(t *testing.T) {
	ctx := context.Background()
	customers, ornaments := new(MockCustomerRepo), new(MockOrnamentRepo)
	loans, payments, rates := new(MockLoanRepo), new(MockPaymentRepo), new(MockMetalRateRepo)

	customers.On("GetByCustomerCode", ctx, "CUS000001").Return(&domain.Customer{ID: "c-existing", CustomerID: "CUS000001"}, nil)
	customers.On("GetByCustomerCode", ctx, mock.Anything).Return(nil, repository.ErrNotFound)
	customers.On("Create", ctx, mock.AnythingOfType("*domain.Customer")).Run(func(args mock.Arguments) {
		c := args.Get(1).(*domain.Customer)
		c.ID = "c-" + c.CustomerID
	}).Return(nil)

	ornaments.On("GetByOrnamentCode", ctx, mock.Anything).Return(nil, repository.ErrNotFound)
	ornaments.On("Create", ctx, mock.AnythingOfType("*domain.Ornament")).Run(func(args mock.Arguments) {
		o := args.Get(1).(*domain.Ornament)
		o.ID = "o-" + o.OrnamentID
	}).Return(nil)
	ornaments.On("LinkToLoan", ctx, mock.Anything, mock.Anything).Return(nil)

	var created []*domain.Loan
	loans.On("Create", ctx, mock.AnythingOfType("*domain.Loan")).Run(func(args mock.Arguments) {
		l := args.Get(1).(*domain.Loan)
		l.ID = l.LoanReferenceNumber
		created = append(created, l)
	}).Return(nil)
	payments.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil)

	rates.On("FindForDay", ctx, domain.MetalTypeGold, mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound)
	rates.On("FindForDay", ctx, domain.MetalTypeSilver, mock.Anything, mock.Anything).Return(&domain.MetalRate{ID: "r1"}, nil)
	rates.On("Create", ctx, mock.AnythingOfType("*domain.MetalRate")).Return(nil)

	report, err := service.NewSeedService(customers, ornaments, loans, payments, rates).Seed(ctx)
	require.NoError(t, err)

	assert.Equal(t, service.SeedReport{Customers: 4, Ornaments: 5, Loans: 5, Payments: 3, MetalRates: 3}, *report)
	require.Len(t, created, 5)
	assert.Equal(t, "c-existing", created[0].CustomerID)

	for _, l := range created {
		require.NotNil(t, l.MaturityDate)
		switch l.Status {
		case domain.LoanStatusOverdue:
			assert.Equal(t, l.DisbursementDate.AddDate(0, 0, 30), *l.MaturityDate)
		default:
			assert.Equal(t, l.DisbursementDate.AddDate(0, 6, 0), *l.MaturityDate)
		}
		assert.True(t, l.OutstandingPrincipal.Equal(l.PrincipalAmount))
	}
	ornaments.AssertNumberOfCalls(t, "LinkToLoan", 5)
	rates.AssertNumberOfCalls(t, "Create", 3)
}

func TestSeedService_CustomerLookupFailure(t *testing.T) {
	ctx := context.Background()
	customers := new(MockCustomerRepo)
	customers.On("GetByCustomerCode", ctx, "CUS000001").Return(nil, errors.New("connection refused"))

	_, err := service.NewSeedService(customers, new(MockOrnamentRepo), new(MockLoanRepo), new(MockPaymentRepo), new(MockMetalRateRepo)).Seed(ctx)
	assert.ErrorContains(t, err, "connection refused")
}
