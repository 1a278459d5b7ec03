package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"modular_homes/internal/domain/entities"
	"modular_homes/internal/domain/ledger"
	"modular_homes/internal/domain/money"
	"modular_homes/internal/domain/pricing"
	"modular_homes/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidServiceKey  = errors.New("invalid service key")
	ErrServiceNotTracked  = errors.New("service is not tracked on this contract")
	ErrInvalidActualCost  = errors.New("invalid actual cost")
	ErrInvalidPermitEntry = errors.New("invalid permit entry")
)

// IScrubbUseCase records actual-cost ("scrubb") updates against contract
// services. Each update appends an immutable history entry carrying the
// variance at that moment; corrections append again, they never edit.
//
// Permits get their own log: each RecordPermit call appends a PermitEntry,
// and when the permits allowance is on the contract its actual cost is
// re-scrubbed to the running permit total.
type IScrubbUseCase interface {
	RecordActualCost(ctx context.Context, quoteID, serviceKey string, newCost float64, updatedBy string) (entities.ScrubbHistoryEntry, error)
	History(ctx context.Context, quoteID string) ([]entities.ScrubbHistoryEntry, error)
	RecordPermit(ctx context.Context, quoteID, description string, amount float64, createdBy string) (entities.PermitEntry, error)
	Permits(ctx context.Context, quoteID string) ([]entities.PermitEntry, error)
}

type ScrubbUseCase struct {
	repo   interfaces.IQuoteRepository
	tables pricing.PricingTables
}

var _ IScrubbUseCase = (*ScrubbUseCase)(nil)

func NewScrubbUseCase(repo interfaces.IQuoteRepository, tables pricing.PricingTables) *ScrubbUseCase {
	return &ScrubbUseCase{repo: repo, tables: tables}
}

func (u *ScrubbUseCase) RecordActualCost(ctx context.Context, quoteID, serviceKey string, newCost float64, updatedBy string) (entities.ScrubbHistoryEntry, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.ScrubbHistoryEntry{}, ErrInvalidQuoteID
	}
	serviceKey = strings.TrimSpace(serviceKey)
	if serviceKey == "" {
		return entities.ScrubbHistoryEntry{}, ErrInvalidServiceKey
	}
	if newCost < 0 {
		return entities.ScrubbHistoryEntry{}, ErrInvalidActualCost
	}

	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.ScrubbHistoryEntry{}, err
	}
	if q.ID == "" {
		return entities.ScrubbHistoryEntry{}, ErrQuoteNotFound
	}
	if !q.Status.IsContract() {
		return entities.ScrubbHistoryEntry{}, ErrNotAContract
	}

	totals := pricing.ComputeTotals(q, u.tables)
	item, ok := findTrackingItem(ledger.BuildTrackingItems(q, totals), serviceKey)
	if !ok {
		return entities.ScrubbHistoryEntry{}, ErrServiceNotTracked
	}

	entry := entities.ScrubbHistoryEntry{
		ServiceKey:            serviceKey,
		PreviousCost:          item.ActualCost,
		NewCost:               money.Num(newCost),
		ContractPrice:         item.ContractPrice,
		Variance:              money.Variance(item.ContractPrice, newCost),
		IsAllowance:           item.IsAllowance,
		IsChangeOrderAddition: item.IsChangeOrderAddition,
		UpdatedAt:             time.Now().UTC(),
		UpdatedBy:             strings.TrimSpace(updatedBy),
	}

	updated, err := u.repo.AppendScrubbEntry(ctx, q.ID, entry)
	if err != nil {
		return entities.ScrubbHistoryEntry{}, err
	}
	if len(updated.ScrubbHistory) == 0 {
		return entry, nil
	}
	return updated.ScrubbHistory[len(updated.ScrubbHistory)-1], nil
}

func (u *ScrubbUseCase) History(ctx context.Context, quoteID string) ([]entities.ScrubbHistoryEntry, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if q.ID == "" {
		return nil, ErrQuoteNotFound
	}
	return q.ScrubbHistory, nil
}

// RecordPermit appends a permit cost to the quote's permit log. When the
// permits allowance is tracked on the contract, the allowance's actual cost
// is re-scrubbed to the new permit total so variances stay current.
func (u *ScrubbUseCase) RecordPermit(ctx context.Context, quoteID, description string, amount float64, createdBy string) (entities.PermitEntry, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.PermitEntry{}, ErrInvalidQuoteID
	}
	description = strings.TrimSpace(description)
	if description == "" || amount <= 0 {
		return entities.PermitEntry{}, ErrInvalidPermitEntry
	}

	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.PermitEntry{}, err
	}
	if q.ID == "" {
		return entities.PermitEntry{}, ErrQuoteNotFound
	}
	if !q.Status.IsContract() {
		return entities.PermitEntry{}, ErrNotAContract
	}

	now := time.Now().UTC()
	entry := entities.PermitEntry{
		ID:          uuid.NewString(),
		Description: description,
		Amount:      money.Num(amount),
		IssuedAt:    now,
		CreatedAt:   now,
		CreatedBy:   strings.TrimSpace(createdBy),
	}

	updated, err := u.repo.AppendPermitEntry(ctx, q.ID, entry)
	if err != nil {
		return entities.PermitEntry{}, err
	}

	total := 0.0
	for _, p := range updated.PermitEntries {
		total += money.Num(p.Amount)
	}
	if _, err := u.RecordActualCost(ctx, quoteID, entities.ServicePermits, total, createdBy); err != nil {
		if !errors.Is(err, ErrServiceNotTracked) {
			return entities.PermitEntry{}, err
		}
		log.Printf("[scrubb][usecase] permits allowance not on contract, skipping rollup quote_id=%q", quoteID)
	}
	return entry, nil
}

func (u *ScrubbUseCase) Permits(ctx context.Context, quoteID string) ([]entities.PermitEntry, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if q.ID == "" {
		return nil, ErrQuoteNotFound
	}
	return q.PermitEntries, nil
}

func findTrackingItem(items []ledger.TrackingItem, serviceKey string) (ledger.TrackingItem, bool) {
	for _, item := range items {
		if item.ServiceKey == serviceKey {
			return item, true
		}
	}
	return ledger.TrackingItem{}, false
}
