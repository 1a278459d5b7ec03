package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"modular_homes/internal/domain/entities"
	"modular_homes/internal/domain/ledger"
	"modular_homes/internal/domain/pricing"
	"modular_homes/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrInvalidQuoteID    = errors.New("invalid quote id")
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrInvalidTransition = errors.New("invalid quote status transition")
	ErrQuoteLocked       = errors.New("quote selections are locked; use a change order")
)

// QuoteInput carries the priceable fields of a quote. The use case owns
// identity, status and the history logs; callers never write those.
type QuoteInput struct {
	CustomerID    string
	HomeModelID   string
	HomeBasePrice float64
	Dimensions    entities.HomeDimensions
	DriveMiles    float64

	SelectedServices  map[string]bool
	PriceOverrides    map[string]float64
	ServiceQuantities map[string]float64
	ServiceDays       map[string]float64

	MarkupRate      float64
	ContingencyRate float64

	RemovedMaterials map[string]bool
	CustomMaterials  []entities.CustomMaterial
}

// IQuoteUseCase exposes quote/contract lifecycle and the two derived reads
// the UI and document generators consume: the itemized totals and the
// reconciled contingency fund.
type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, in QuoteInput) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	UpdateSelections(ctx context.Context, id string, in QuoteInput) (entities.Quote, error)

	Send(ctx context.Context, id string) (entities.Quote, error)
	Accept(ctx context.Context, id string) (entities.Quote, error)
	Decline(ctx context.Context, id string) (entities.Quote, error)
	StartContract(ctx context.Context, id string) (entities.Quote, error)
	Complete(ctx context.Context, id string) (entities.Quote, error)
	Cancel(ctx context.Context, id string) (entities.Quote, error)

	Totals(ctx context.Context, id string) (pricing.Totals, error)
	Contingency(ctx context.Context, id string) (ledger.Reconciliation, error)
}

type QuoteUseCase struct {
	repo   interfaces.IQuoteRepository
	tables pricing.PricingTables
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, tables pricing.PricingTables) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, tables: tables}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, in QuoteInput) (entities.Quote, error) {
	customerID := strings.TrimSpace(in.CustomerID)
	if customerID == "" {
		return entities.Quote{}, ErrInvalidCustomerID
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Status:     entities.QuoteStatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	applyInput(&q, in)
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.load(ctx, id)
}

// UpdateSelections replaces the priced selections. Only drafts are
// editable: once the customer has seen or accepted a price, changes go
// through the change-order path.
func (u *QuoteUseCase) UpdateSelections(ctx context.Context, id string, in QuoteInput) (entities.Quote, error) {
	q, err := u.load(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status != entities.QuoteStatusDraft {
		return entities.Quote{}, ErrQuoteLocked
	}

	applyInput(&q, in)
	q.UpdatedAt = time.Now().UTC()
	return u.repo.UpdateSelections(ctx, q)
}

func (u *QuoteUseCase) Send(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusSent)
}

func (u *QuoteUseCase) Accept(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusAccepted)
}

func (u *QuoteUseCase) Decline(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusDeclined)
}

func (u *QuoteUseCase) StartContract(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusUnderContract)
}

func (u *QuoteUseCase) Complete(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusCompleted)
}

func (u *QuoteUseCase) Cancel(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusCancelled)
}

// Totals reprices the quote from scratch. Nothing caches this output; every
// display calls it fresh.
func (u *QuoteUseCase) Totals(ctx context.Context, id string) (pricing.Totals, error) {
	q, err := u.load(ctx, id)
	if err != nil {
		return pricing.Totals{}, err
	}
	return pricing.ComputeTotals(q, u.tables), nil
}

// Contingency reconciles the contingency fund from the quote's logs.
func (u *QuoteUseCase) Contingency(ctx context.Context, id string) (ledger.Reconciliation, error) {
	q, err := u.load(ctx, id)
	if err != nil {
		return ledger.Reconciliation{}, err
	}
	totals := pricing.ComputeTotals(q, u.tables)
	items := ledger.BuildTrackingItems(q, totals)
	return ledger.ComputeContingencyBalance(q, totals.Contingency, items), nil
}

func (u *QuoteUseCase) transition(ctx context.Context, id string, next entities.QuoteStatus) (entities.Quote, error) {
	q, err := u.load(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if !q.Status.CanTransitionTo(next) {
		return entities.Quote{}, ErrInvalidTransition
	}
	return u.repo.UpdateStatus(ctx, q.ID, next)
}

func (u *QuoteUseCase) load(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func applyInput(q *entities.Quote, in QuoteInput) {
	q.HomeModelID = strings.TrimSpace(in.HomeModelID)
	q.HomeBasePrice = in.HomeBasePrice
	q.Dimensions = in.Dimensions
	q.DriveMiles = in.DriveMiles
	q.SelectedServices = in.SelectedServices
	q.PriceOverrides = in.PriceOverrides
	q.ServiceQuantities = in.ServiceQuantities
	q.ServiceDays = in.ServiceDays
	q.MarkupRate = in.MarkupRate
	q.ContingencyRate = in.ContingencyRate
	q.RemovedMaterials = in.RemovedMaterials
	q.CustomMaterials = in.CustomMaterials

	if q.SelectedServices == nil {
		q.SelectedServices = map[string]bool{}
	}
}
