package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"modular_homes/internal/domain/entities"
	"modular_homes/internal/domain/ledger"
	"modular_homes/internal/domain/money"
	"modular_homes/internal/domain/pricing"
	"modular_homes/internal/usecase/interfaces"
)

var (
	ErrNotAContract           = errors.New("change orders require an accepted contract")
	ErrChangeOrderNotFound    = errors.New("change order not found")
	ErrChangeOrderVoided      = errors.New("change order is voided")
	ErrEmptyChangeOrder       = errors.New("change order has no additions, deletions or adjustments")
	ErrInvalidChangeOrderMove = errors.New("invalid change order status transition")
	ErrContingencyOverdrawn   = errors.New("contingency fund is overdrawn")
)

// ChangeOrderInput is the caller-supplied content of a new change order.
type ChangeOrderInput struct {
	Additions   []entities.ChangeOrderLine
	Deletions   []entities.ChangeOrderLine
	Adjustments map[string]entities.Adjustment
	CreatedBy   string
}

// IChangeOrderUseCase is the only mutation path into a contract's priced
// selections. Every operation appends to or toggles status within the
// change-order history; nothing here ever deletes an entry.
type IChangeOrderUseCase interface {
	Create(ctx context.Context, quoteID string, in ChangeOrderInput) (entities.ChangeOrderEntry, error)
	Send(ctx context.Context, quoteID string, num int) (entities.ChangeOrderEntry, error)
	Sign(ctx context.Context, quoteID string, num int, force bool) (entities.ChangeOrderEntry, error)
	Unsign(ctx context.Context, quoteID string, num int) (entities.ChangeOrderEntry, error)
	Void(ctx context.Context, quoteID string, num int, voidedBy string) (entities.ChangeOrderEntry, error)
}

type ChangeOrderUseCase struct {
	repo   interfaces.IQuoteRepository
	tables pricing.PricingTables
}

var _ IChangeOrderUseCase = (*ChangeOrderUseCase)(nil)

func NewChangeOrderUseCase(repo interfaces.IQuoteRepository, tables pricing.PricingTables) *ChangeOrderUseCase {
	return &ChangeOrderUseCase{repo: repo, tables: tables}
}

// Create appends a new draft change order. Additions are paid entirely from
// the contingency fund, so the entry's draw is the sum of its addition
// amounts. The frozen balance snapshot is draws-only: starting fund minus
// every draw up to and including this one, deliberately excluding allowance
// variances and contingency payments. The reconciliation walk re-applies
// those from the live logs, and recovers the starting fund from the first
// entry's used + balance; folding variances or payments into the snapshot
// would count them twice.
func (u *ChangeOrderUseCase) Create(ctx context.Context, quoteID string, in ChangeOrderInput) (entities.ChangeOrderEntry, error) {
	q, err := u.loadContract(ctx, quoteID)
	if err != nil {
		return entities.ChangeOrderEntry{}, err
	}
	if len(in.Additions) == 0 && len(in.Deletions) == 0 && len(in.Adjustments) == 0 {
		return entities.ChangeOrderEntry{}, ErrEmptyChangeOrder
	}

	var added, deleted, adjusted float64
	for _, line := range in.Additions {
		added += money.Num(line.Amount)
	}
	for _, line := range in.Deletions {
		deleted += money.Num(line.Amount)
	}
	for _, adj := range in.Adjustments {
		adjusted += money.Num(adj.Amount)
	}

	rec := u.reconcile(q)

	entry := entities.ChangeOrderEntry{
		ChangeOrderNum:     q.NextChangeOrderNum(),
		Version:            1,
		Status:             entities.ChangeOrderStatusDraft,
		Additions:          in.Additions,
		Deletions:          in.Deletions,
		Adjustments:        in.Adjustments,
		TotalChange:        added - deleted + adjusted,
		ContingencyUsed:    added,
		ContingencyBalance: rec.Starting - rec.Draws - added,
		CreatedAt:          time.Now().UTC(),
		CreatedBy:          strings.TrimSpace(in.CreatedBy),
	}

	updated, err := u.repo.AppendChangeOrder(ctx, q.ID, entry)
	if err != nil {
		return entities.ChangeOrderEntry{}, err
	}
	return lastEntry(updated), nil
}

func (u *ChangeOrderUseCase) Send(ctx context.Context, quoteID string, num int) (entities.ChangeOrderEntry, error) {
	return u.toggle(ctx, quoteID, num, entities.ChangeOrderStatusSent, false)
}

// Sign marks the change order customer-signed. While the fund is overdrawn
// the customer owes the overdraft, so signing is refused unless the caller
// explicitly forces it past the warning.
func (u *ChangeOrderUseCase) Sign(ctx context.Context, quoteID string, num int, force bool) (entities.ChangeOrderEntry, error) {
	return u.toggle(ctx, quoteID, num, entities.ChangeOrderStatusSigned, force)
}

func (u *ChangeOrderUseCase) Unsign(ctx context.Context, quoteID string, num int) (entities.ChangeOrderEntry, error) {
	return u.toggle(ctx, quoteID, num, entities.ChangeOrderStatusDraft, false)
}

// Void appends a compensating reversal entry: same change order number,
// total change and contingency draw pre-negated so the pair sums to zero.
// The original entry is left untouched for the audit trail.
func (u *ChangeOrderUseCase) Void(ctx context.Context, quoteID string, num int, voidedBy string) (entities.ChangeOrderEntry, error) {
	q, err := u.loadContract(ctx, quoteID)
	if err != nil {
		return entities.ChangeOrderEntry{}, err
	}

	idx := findChangeOrder(q.ChangeOrderHistory, num)
	if idx < 0 {
		return entities.ChangeOrderEntry{}, ErrChangeOrderNotFound
	}
	if entities.Reversed(q.ChangeOrderHistory, num) {
		return entities.ChangeOrderEntry{}, ErrChangeOrderVoided
	}
	orig := q.ChangeOrderHistory[idx]

	rec := u.reconcile(q)
	reversal := entities.ChangeOrderEntry{
		ChangeOrderNum:     orig.ChangeOrderNum,
		Version:            orig.Version,
		Status:             entities.ChangeOrderStatusVoided,
		TotalChange:        -orig.TotalChange,
		ContingencyUsed:    -orig.ContingencyUsed,
		ContingencyBalance: rec.Starting - rec.Draws + orig.ContingencyUsed,
		IsReversal:         true,
		CreatedAt:          time.Now().UTC(),
		CreatedBy:          strings.TrimSpace(voidedBy),
	}

	updated, err := u.repo.AppendChangeOrder(ctx, q.ID, reversal)
	if err != nil {
		return entities.ChangeOrderEntry{}, err
	}
	return lastEntry(updated), nil
}

func (u *ChangeOrderUseCase) toggle(ctx context.Context, quoteID string, num int, next entities.ChangeOrderStatus, force bool) (entities.ChangeOrderEntry, error) {
	q, err := u.loadContract(ctx, quoteID)
	if err != nil {
		return entities.ChangeOrderEntry{}, err
	}

	idx := findChangeOrder(q.ChangeOrderHistory, num)
	if idx < 0 {
		return entities.ChangeOrderEntry{}, ErrChangeOrderNotFound
	}
	if entities.Reversed(q.ChangeOrderHistory, num) {
		return entities.ChangeOrderEntry{}, ErrChangeOrderVoided
	}
	entry := q.ChangeOrderHistory[idx]
	if !entry.Status.CanTransitionTo(next) {
		return entities.ChangeOrderEntry{}, ErrInvalidChangeOrderMove
	}

	if next == entities.ChangeOrderStatusSigned && !force {
		if rec := u.reconcile(q); rec.Overdraft {
			return entities.ChangeOrderEntry{}, ErrContingencyOverdrawn
		}
	}

	updated, err := u.repo.SetChangeOrderStatus(ctx, q.ID, idx, next)
	if err != nil {
		return entities.ChangeOrderEntry{}, err
	}
	if idx >= len(updated.ChangeOrderHistory) {
		return entities.ChangeOrderEntry{}, ErrChangeOrderNotFound
	}
	return updated.ChangeOrderHistory[idx], nil
}

func (u *ChangeOrderUseCase) loadContract(ctx context.Context, quoteID string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if !q.Status.IsContract() {
		return entities.Quote{}, ErrNotAContract
	}
	return q, nil
}

func (u *ChangeOrderUseCase) reconcile(q entities.Quote) ledger.Reconciliation {
	totals := pricing.ComputeTotals(q, u.tables)
	items := ledger.BuildTrackingItems(q, totals)
	return ledger.ComputeContingencyBalance(q, totals.Contingency, items)
}

// findChangeOrder returns the index of the original (non-reversal) entry
// for num, or -1.
func findChangeOrder(history []entities.ChangeOrderEntry, num int) int {
	for i, e := range history {
		if !e.IsReversal && e.ChangeOrderNum == num {
			return i
		}
	}
	return -1
}

func lastEntry(q entities.Quote) entities.ChangeOrderEntry {
	if len(q.ChangeOrderHistory) == 0 {
		return entities.ChangeOrderEntry{}
	}
	return q.ChangeOrderHistory[len(q.ChangeOrderHistory)-1]
}
