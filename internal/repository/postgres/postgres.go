package postgres

import (
	"database/sql"

	"olms-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CustomerRepository
	repository.LoanRepository
	repository.OrnamentRepository
	repository.PaymentRepository
	repository.NoteRepository
	repository.UserRepository
	repository.BranchRepository
	repository.SettingRepository
	repository.MetalRateRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		CustomerRepository:  NewCustomerRepository(db),
		LoanRepository:      NewLoanRepository(db),
		OrnamentRepository:  NewOrnamentRepository(db),
		PaymentRepository:   NewPaymentRepository(db),
		NoteRepository:      NewNoteRepository(db),
		UserRepository:      NewUserRepository(db),
		BranchRepository:    NewBranchRepository(db),
		SettingRepository:   NewSettingRepository(db),
		MetalRateRepository: NewMetalRateRepository(db),
	}
}
