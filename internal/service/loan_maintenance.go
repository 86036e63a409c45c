package service

import (
	"context"
	"fmt"
	"time"

	"olms-backend/internal/domain"
	"olms-backend/internal/logger"
	"olms-backend/internal/repository"
	"olms-backend/internal/utils"
)

type loanMaintenanceService struct {
	loanRepo repository.LoanRepository
	settings settingReader
}

func NewLoanMaintenanceService(loanRepo repository.LoanRepository, settingRepo repository.SettingRepository) LoanMaintenanceService {
	return &loanMaintenanceService{
		loanRepo: loanRepo,
		settings: settingReader{repo: settingRepo},
	}
}

// MarkOverdueLoans moves ACTIVE loans whose maturity date is before asOf's
// day to OVERDUE.
func (s *loanMaintenanceService) MarkOverdueLoans(ctx context.Context, asOf time.Time) (int, error) {
	loans, err := s.loanRepo.MarkOverdue(ctx, utils.StartOfDay(asOf))
	if err != nil {
		return 0, fmt.Errorf("failed to mark overdue loans: %w", err)
	}
	for _, l := range loans {
		logger.DebugContext(ctx, "Loan marked overdue", "loan_id", l.ID, "reference", l.LoanReferenceNumber)
	}
	return len(loans), nil
}

// RefreshRiskZones reclassifies every active loan. A failed update is
// counted and logged; the remaining loans are still processed.
func (s *loanMaintenanceService) RefreshRiskZones(ctx context.Context, asOf time.Time) (*RiskZoneReport, error) {
	thresholds, err := s.settings.zoneThresholds(ctx)
	if err != nil {
		return nil, err
	}
	loans, err := s.loanRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active loans: %w", err)
	}

	report := &RiskZoneReport{}
	for _, l := range loans {
		report.Evaluated++

		days := 0
		if l.Status == domain.LoanStatusOverdue {
			days = utils.DaysPastMaturity(l.MaturityDate, asOf)
		}
		zone := utils.ClassifyRiskZone(l.OutstandingPrincipal, l.TotalOrnamentValue, days, thresholds)
		if zone == l.RiskZone {
			continue
		}

		if err := s.loanRepo.UpdateRiskZone(ctx, l.ID, zone); err != nil {
			report.Failed++
			logger.ErrorContext(ctx, "Failed to update risk zone", "loan_id", l.ID, "zone", zone, "error", err)
			continue
		}
		report.Changed++
		riskZoneChanges.WithLabelValues(string(zone)).Inc()
		logger.InfoContext(ctx, "Risk zone changed", "loan_id", l.ID, "from", l.RiskZone, "to", zone)
	}
	return report, nil
}
