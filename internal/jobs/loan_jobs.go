package jobs

import (
	"context"

	"olms-backend/internal/logger"
)

// MarkOverdueLoans moves ACTIVE loans past their maturity date to OVERDUE.
func (jr *JobRunner) MarkOverdueLoans() {
	jr.runWithRecovery("MarkOverdueLoans", func(ctx context.Context) {
		count, err := jr.loans.MarkOverdueLoans(ctx, jr.now())
		if err != nil {
			logger.ErrorContext(ctx, "Failed to mark overdue loans", "error", err)
			return
		}
		logger.InfoContext(ctx, "Marked loans as overdue", "count", count)
	})
}

// RefreshRiskZones reclassifies every active loan's risk zone.
func (jr *JobRunner) RefreshRiskZones() {
	jr.runWithRecovery("RefreshRiskZones", func(ctx context.Context) {
		report, err := jr.loans.RefreshRiskZones(ctx, jr.now())
		if err != nil {
			logger.ErrorContext(ctx, "Failed to refresh risk zones", "error", err)
			return
		}
		if report.Failed > 0 {
			logger.WarnContext(ctx, "Some risk zone updates failed", "failed", report.Failed)
		}
		logger.InfoContext(ctx, "Refreshed risk zones", "evaluated", report.Evaluated, "changed", report.Changed)
	})
}
