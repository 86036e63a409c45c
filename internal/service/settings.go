package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"olms-backend/internal/domain"
	"olms-backend/internal/logger"
	"olms-backend/internal/receipt"
	"olms-backend/internal/repository"
	"olms-backend/internal/utils"
)

// settingReader reads typed values from the settings table. Missing keys
// are not errors; callers supply the default.
type settingReader struct {
	repo repository.SettingRepository
}

func (r settingReader) lookup(ctx context.Context, key string) (string, bool, error) {
	s, err := r.repo.Get(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	return s.Value, true, nil
}

func (r settingReader) stringOr(ctx context.Context, key, def string) (string, error) {
	v, ok, err := r.lookup(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok || v == "" {
		return def, nil
	}
	return v, nil
}

func (r settingReader) decimalOr(ctx context.Context, key string, def decimal.Decimal) (decimal.Decimal, error) {
	v, ok, err := r.lookup(ctx, key)
	if err != nil || !ok {
		return def, err
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		logger.WarnContext(ctx, "Ignoring malformed numeric setting", "key", key, "value", v, "default", def.String())
		return def, nil
	}
	return d, nil
}

func (r settingReader) intOr(ctx context.Context, key string, def int) (int, error) {
	v, ok, err := r.lookup(ctx, key)
	if err != nil || !ok {
		return def, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logger.WarnContext(ctx, "Ignoring malformed integer setting", "key", key, "value", v, "default", def)
		return def, nil
	}
	return n, nil
}

// maxLTV prefers max_ltv_ratio, then loan_to_value_ratio, then 75.
func (r settingReader) maxLTV(ctx context.Context) (decimal.Decimal, error) {
	for _, key := range []string{domain.SettingMaxLTVRatio, domain.SettingLoanToValueRatio} {
		v, ok, err := r.lookup(ctx, key)
		if err != nil {
			return decimal.Zero, err
		}
		if !ok {
			continue
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			logger.WarnContext(ctx, "Malformed LTV setting, using default", "key", key, "value", v, "default", utils.DefaultMaxLTV.String())
			return utils.DefaultMaxLTV, nil
		}
		return d, nil
	}
	return utils.DefaultMaxLTV, nil
}

func (r settingReader) zoneThresholds(ctx context.Context) (utils.ZoneThresholds, error) {
	t := utils.DefaultZoneThresholds()
	var err error
	if t.YellowLTV, err = r.decimalOr(ctx, domain.SettingYellowZoneThreshold, t.YellowLTV); err != nil {
		return t, err
	}
	if t.RedLTV, err = r.decimalOr(ctx, domain.SettingRedZoneThreshold, t.RedLTV); err != nil {
		return t, err
	}
	if t.OverdueDaysRed, err = r.intOr(ctx, domain.SettingOverdueDaysRed, t.OverdueDaysRed); err != nil {
		return t, err
	}
	return t, nil
}

func (r settingReader) company(ctx context.Context) (receipt.Company, error) {
	var c receipt.Company
	fields := []struct {
		key string
		def string
		dst *string
	}{
		{domain.SettingCompanyName, "OLMS Gold Loan", &c.Name},
		{domain.SettingCompanyAddress, "", &c.Address},
		{domain.SettingCompanyPhone, "", &c.Phone},
		{domain.SettingCompanyEmail, "", &c.Email},
		{domain.SettingCompanyGSTIN, "", &c.GSTIN},
	}
	for _, f := range fields {
		v, err := r.stringOr(ctx, f.key, f.def)
		if err != nil {
			return c, err
		}
		*f.dst = v
	}
	return c, nil
}
