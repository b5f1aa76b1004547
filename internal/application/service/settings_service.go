package service

import (
	"context"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	"github.com/ahmadfaris/kasirku-api/internal/domain/repository"
	"github.com/ahmadfaris/kasirku-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// SettingsService handles the store settings singleton
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the store settings, creating the default row when
// none exists yet
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.StoreSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultStoreSettings()
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

// UpdateSettingsInput represents the update settings input. Nil fields are
// left unchanged. Changes only affect transactions computed afterwards;
// stored transactions keep the figures they were sealed with.
type UpdateSettingsInput struct {
	StoreName      *string
	Address        *string
	Phone          *string
	TaxPercentage  *decimal.Decimal
	PointsDivisor  *int64
	LowStockLevel  *int
	ExpiryWarnDays *int
	CurrencyCode   *string
	ReceiptFooter  *string
}

// UpdateSettings updates the store settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.StoreSettings, error) {
	var fieldErrors []apperror.FieldError
	if input.TaxPercentage != nil && (input.TaxPercentage.IsNegative() || input.TaxPercentage.GreaterThan(decimal.NewFromInt(100))) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "tax_percentage", Message: "Tax percentage must be between 0 and 100"})
	}
	if input.PointsDivisor != nil && *input.PointsDivisor <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "points_divisor", Message: "Points divisor must be greater than zero"})
	}
	if input.LowStockLevel != nil && *input.LowStockLevel < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "low_stock_level", Message: "Low stock level must not be negative"})
	}
	if input.ExpiryWarnDays != nil && *input.ExpiryWarnDays < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "expiry_warn_days", Message: "Expiry warn days must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if input.StoreName != nil {
		settings.StoreName = *input.StoreName
	}
	if input.Address != nil {
		settings.Address = *input.Address
	}
	if input.Phone != nil {
		settings.Phone = *input.Phone
	}
	if input.TaxPercentage != nil {
		settings.TaxPercentage = *input.TaxPercentage
	}
	if input.PointsDivisor != nil {
		settings.PointsDivisor = *input.PointsDivisor
	}
	if input.LowStockLevel != nil {
		settings.LowStockLevel = *input.LowStockLevel
	}
	if input.ExpiryWarnDays != nil {
		settings.ExpiryWarnDays = *input.ExpiryWarnDays
	}
	if input.CurrencyCode != nil {
		settings.CurrencyCode = *input.CurrencyCode
	}
	if input.ReceiptFooter != nil {
		settings.ReceiptFooter = *input.ReceiptFooter
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
