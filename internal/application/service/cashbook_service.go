package service

import (
	"context"
	"strings"
	"time"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
	"github.com/ahmadfaris/kasirku-api/internal/domain/enum"
	"github.com/ahmadfaris/kasirku-api/internal/domain/repository"
	"github.com/ahmadfaris/kasirku-api/pkg/apperror"
	"github.com/ahmadfaris/kasirku-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashbookService handles the manual cash ledger. Entries are immutable
// once written; corrections happen by deleting and re-entering, and every
// report recomputes from whatever entries remain.
type CashbookService struct {
	cashEntryRepo repository.CashEntryRepository
}

// NewCashbookService creates a new cashbook service
func NewCashbookService(cashEntryRepo repository.CashEntryRepository) *CashbookService {
	return &CashbookService{cashEntryRepo: cashEntryRepo}
}

// CreateCashEntryInput represents the create cash entry input
type CreateCashEntryInput struct {
	Type     enum.CashEntryType
	Category string
	Amount   decimal.Decimal
	Note     string
	UserID   uuid.UUID
	UserName string
}

// CreateCashEntry appends a manual movement to the ledger
func (s *CashbookService) CreateCashEntry(ctx context.Context, input *CreateCashEntryInput) (*entity.CashEntry, error) {
	var fieldErrors []apperror.FieldError
	if input.Type != enum.CashEntryTypeIn && input.Type != enum.CashEntryTypeOut {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "type", Message: "Type must be IN or OUT"})
	}
	if !input.Amount.IsPositive() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "amount", Message: "Amount must be greater than zero"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	entry := &entity.CashEntry{
		Type:     input.Type,
		Category: strings.TrimSpace(input.Category),
		Amount:   input.Amount,
		Note:     strings.TrimSpace(input.Note),
		UserID:   input.UserID,
		UserName: input.UserName,
	}

	if err := s.cashEntryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// GetCashEntry retrieves a ledger entry by ID
func (s *CashbookService) GetCashEntry(ctx context.Context, id uuid.UUID) (*entity.CashEntry, error) {
	entry, err := s.cashEntryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NewNotFoundError("Cash entry")
	}
	return entry, nil
}

// ListCashEntries lists ledger entries with filtering and pagination
func (s *CashbookService) ListCashEntries(ctx context.Context, params *repository.CashEntryFilterParams) (*pagination.PaginatedResult[entity.CashEntry], error) {
	entries, total, err := s.cashEntryRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(entries, pag), nil
}

// CashbookSummary holds the IN/OUT totals for a window of the ledger
type CashbookSummary struct {
	TotalIn    decimal.Decimal `json:"total_in"`
	TotalOut   decimal.Decimal `json:"total_out"`
	Net        decimal.Decimal `json:"net"`
	EntryCount int             `json:"entry_count"`
}

// Summary totals the ledger between start and end. Nil bounds leave that
// side of the window open.
func (s *CashbookService) Summary(ctx context.Context, start, end *time.Time) (*CashbookSummary, error) {
	entries, err := s.cashEntryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &CashbookSummary{
		TotalIn:  decimal.Zero,
		TotalOut: decimal.Zero,
	}
	for _, entry := range entries {
		if start != nil && entry.CreatedAt.Before(*start) {
			continue
		}
		if end != nil && entry.CreatedAt.After(*end) {
			continue
		}
		if entry.Type == enum.CashEntryTypeIn {
			summary.TotalIn = summary.TotalIn.Add(entry.Amount)
		} else {
			summary.TotalOut = summary.TotalOut.Add(entry.Amount)
		}
		summary.EntryCount++
	}
	summary.Net = summary.TotalIn.Sub(summary.TotalOut)
	return summary, nil
}

// DeleteCashEntry removes a ledger entry. Reports recompute on the next
// request, so the deletion simply stops counting the entry.
func (s *CashbookService) DeleteCashEntry(ctx context.Context, id uuid.UUID) error {
	entry, err := s.cashEntryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return apperror.NewNotFoundError("Cash entry")
	}
	return s.cashEntryRepo.Delete(ctx, id)
}
