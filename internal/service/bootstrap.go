package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"olms-backend/internal/domain"
	"olms-backend/internal/logger"
	"olms-backend/internal/repository"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin"
)

// DefaultSettings are written by Initialize when missing.
var DefaultSettings = []domain.Setting{
	{Key: domain.SettingDefaultInterestRate, Value: "12", Description: "Default annual interest rate (%)"},
	{Key: domain.SettingLoanToValueRatio, Value: "75", Description: "Maximum loan to value ratio (%)"},
	{Key: domain.SettingMaxLTVRatio, Value: "75", Description: "Maximum LTV used for available credit (%)"},
	{Key: domain.SettingPenaltyRate, Value: "2", Description: "Penalty interest rate for overdue (%)"},
	{Key: domain.SettingYellowZoneThreshold, Value: "80", Description: "LTV threshold for yellow zone (%)"},
	{Key: domain.SettingRedZoneThreshold, Value: "90", Description: "LTV threshold for red zone (%)"},
	{Key: domain.SettingOverdueDaysRed, Value: "15", Description: "Days overdue for red zone"},
}

type bootstrapService struct {
	userRepo    repository.UserRepository
	branchRepo  repository.BranchRepository
	settingRepo repository.SettingRepository
}

func NewBootstrapService(userRepo repository.UserRepository, branchRepo repository.BranchRepository, settingRepo repository.SettingRepository) BootstrapService {
	return &bootstrapService{
		userRepo:    userRepo,
		branchRepo:  branchRepo,
		settingRepo: settingRepo,
	}
}

// Initialize creates the admin user, a default branch and the default
// settings. Rows that already exist are left as they are.
func (s *bootstrapService) Initialize(ctx context.Context) error {
	if err := s.ensureAdmin(ctx); err != nil {
		return err
	}
	if err := s.ensureBranch(ctx); err != nil {
		return err
	}
	for _, setting := range DefaultSettings {
		if err := s.ensureSetting(ctx, setting); err != nil {
			return err
		}
	}
	logger.InfoContext(ctx, "System initialized")
	return nil
}

func (s *bootstrapService) ensureAdmin(ctx context.Context) error {
	_, err := s.userRepo.GetByUsername(ctx, defaultAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := &domain.User{
		Username:     defaultAdminUsername,
		Email:        "admin@olms.com",
		PasswordHash: string(hash),
		Name:         "Administrator",
		Role:         domain.UserRoleAdmin,
		Status:       domain.UserStatusActive,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	logger.InfoContext(ctx, "Created admin user", "user_id", admin.ID)
	return nil
}

func (s *bootstrapService) ensureBranch(ctx context.Context) error {
	_, err := s.branchRepo.First(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to look up branches: %w", err)
	}

	branch := &domain.Branch{
		Name:    "Main Branch",
		Address: "Default Branch Address",
		Phone:   "+91 1234567890",
		Email:   "main@olms.com",
		Status:  domain.BranchStatusActive,
	}
	if err := s.branchRepo.Create(ctx, branch); err != nil {
		return fmt.Errorf("failed to create default branch: %w", err)
	}
	logger.InfoContext(ctx, "Created default branch", "branch_id", branch.ID)
	return nil
}

func (s *bootstrapService) ensureSetting(ctx context.Context, setting domain.Setting) error {
	_, err := s.settingRepo.Get(ctx, setting.Key)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to read setting %s: %w", setting.Key, err)
	}
	if err := s.settingRepo.Create(ctx, &setting); err != nil {
		return fmt.Errorf("failed to create setting %s: %w", setting.Key, err)
	}
	logger.DebugContext(ctx, "Created setting", "key", setting.Key)
	return nil
}
