package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"modular_homes/internal/domain/entities"
	"modular_homes/internal/domain/ledger"
	"modular_homes/internal/domain/pricing"
	mock_interfaces "modular_homes/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// contractQuote builds an under-contract quote priced to a $100,000
// subtotal, which yields a $2,300 contingency fund. No services are
// selected so the project command adds nothing on top.
func contractQuote() entities.Quote {
	return entities.Quote{
		ID:            "q-1",
		CustomerID:    "cust-1",
		Status:        entities.QuoteStatusUnderContract,
		HomeBasePrice: 100000,
	}
}

func TestChangeOrderUseCase_Create(t *testing.T) {
	t.Run("requires a contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewChangeOrderUseCase(repo, pricing.DefaultTables())

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusDraft}, nil)

		_, err := uc.Create(context.Background(), "q-1", ChangeOrderInput{
			Additions: []entities.ChangeOrderLine{{ServiceKey: "deck", Name: "Deck", Amount: 800}},
		})
		if !errors.Is(err, ErrNotAContract) {
			t.Fatalf("expected ErrNotAContract, got %v", err)
		}
	})

	t.Run("empty change order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewChangeOrderUseCase(repo, pricing.DefaultTables())

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(contractQuote(), nil)

		_, err := uc.Create(context.Background(), "q-1", ChangeOrderInput{})
		if !errors.Is(err, ErrEmptyChangeOrder) {
			t.Fatalf("expected ErrEmptyChangeOrder, got %v", err)
		}
	})

	t.Run("freezes draw and balance snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewChangeOrderUseCase(repo, pricing.DefaultTables())

		q := contractQuote()
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		repo.EXPECT().AppendChangeOrder(gomock.Any(), "q-1", gomock.AssignableToTypeOf(entities.ChangeOrderEntry{})).DoAndReturn(
			func(_ context.Context, _ string, e entities.ChangeOrderEntry) (entities.Quote, error) {
				if e.ChangeOrderNum != 1 || e.Version != 1 || e.Status != entities.ChangeOrderStatusDraft {
					t.Fatalf("unexpected entry: %+v", e)
				}
				if e.TotalChange != 600 {
					t.Fatalf("total change: expected 600, got %v", e.TotalChange)
				}
				if e.ContingencyUsed != 800 {
					t.Fatalf("contingency used: expected 800, got %v", e.ContingencyUsed)
				}
				// Fund starts at 2300 (2% of the 115000 contract total).
				if e.ContingencyBalance != 1500 {
					t.Fatalf("balance snapshot: expected 1500, got %v", e.ContingencyBalance)
				}
				if e.CreatedBy != "pm" {
					t.Fatalf("created by: got %q", e.CreatedBy)
				}
				updated := q
				updated.ChangeOrderHistory = append(updated.ChangeOrderHistory, e)
				return updated, nil
			},
		)

		entry, err := uc.Create(context.Background(), "q-1", ChangeOrderInput{
			Additions: []entities.ChangeOrderLine{{ServiceKey: "deck", Name: "Deck", Amount: 800}},
			Deletions: []entities.ChangeOrderLine{{ServiceKey: "skirting", Name: "Skirting", Amount: 200}},
			CreatedBy: " pm ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.ChangeOrderNum != 1 {
			t.Fatalf("unexpected entry returned: %+v", entry)
		}
	})

	t.Run("snapshot excludes variances and payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewChangeOrderUseCase(repo, pricing.DefaultTables())

		// The fund has already moved before the first change order: the
		// well allowance ran over and a refill payment came in. Neither may
		// leak into the frozen snapshot, or the reconciliation walk counts
		// them twice after recovering the starting fund from
		// used + balance of the first entry.
		q := contractQuote()
		q.SelectedServices = map[string]bool{entities.ServiceWell: true}
		q.ScrubbHistory = []entities.ScrubbHistoryEntry{
			{ServiceKey: entities.ServiceWell, NewCost: 11500},
		}
		q.ScrubbPayments = []entities.Payment{
			{ID: "pay-1", Amount: 400, IsContingencyPayment: true},
		}
		totals := pricing.ComputeTotals(q, pricing.DefaultTables())

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		repo.EXPECT().AppendChangeOrder(gomock.Any(), "q-1", gomock.AssignableToTypeOf(entities.ChangeOrderEntry{})).DoAndReturn(
			func(_ context.Context, _ string, e entities.ChangeOrderEntry) (entities.Quote, error) {
				recovered := e.ContingencyUsed + e.ContingencyBalance
				if math.Abs(recovered-totals.Contingency) > 1e-6 {
					t.Fatalf("first entry must recover the starting fund: used=%v balance=%v starting=%v",
						e.ContingencyUsed, e.ContingencyBalance, totals.Contingency)
				}

				updated := q
				updated.ChangeOrderHistory = append(updated.ChangeOrderHistory, e)
				rec := ledger.ComputeContingencyBalance(updated, totals.Contingency, ledger.BuildTrackingItems(updated, totals))
				if math.Abs(rec.Starting-totals.Contingency) > 1e-6 {
					t.Fatalf("reconciled starting %v disagrees with the live fund %v", rec.Starting, totals.Contingency)
				}
				want := totals.Contingency - e.ContingencyUsed - 2000 + 400
				if math.Abs(rec.CurrentBalance-want) > 1e-6 {
					t.Fatalf("reconciled balance: expected %v, got %v", want, rec.CurrentBalance)
				}
				return updated, nil
			},
		)

		_, err := uc.Create(context.Background(), "q-1", ChangeOrderInput{
			Additions: []entities.ChangeOrderLine{{ServiceKey: "deck", Name: "Deck", Amount: 800}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("numbers skip reversals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewChangeOrderUseCase(repo, pricing.DefaultTables())

		q := contractQuote()
		q.ChangeOrderHistory = []entities.ChangeOrderEntry{
			{ChangeOrderNum: 1, Status: entities.ChangeOrderStatusSigned, ContingencyUsed: 500, ContingencyBalance: 1800},
			{ChangeOrderNum: 1, Status: entities.ChangeOrderStatusVoided, ContingencyUsed: -500, IsReversal: true},
		}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		repo.EXPECT().AppendChangeOrder(gomock.Any(), "q-1", gomock.AssignableToTypeOf(entities.ChangeOrderEntry{})).DoAndReturn(
			func(_ context.Context, _ string, e entities.ChangeOrderEntry) (entities.Quote, error) {
				if e.ChangeOrderNum != 2 {
					t.Fatalf("expected change order 2, got %d", e.ChangeOrderNum)
				}
				updated := q
				updated.ChangeOrderHistory = append(updated.ChangeOrderHistory, e)
				return updated, nil
			},
		)

		_, err := uc.Create(context.Background(), "q-1", ChangeOrderInput{
			Adjustments: map[string]entities.Adjustment{"electrical": {Amount: 150}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestChangeOrderUseCase_Toggle(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewChangeOrderUseCase(repo, pricing.DefaultTables())

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(contractQuote(), nil)

		_, err := uc.Send(context.Background(), "q-1", 3)
		if !errors.Is(err, ErrChangeOrderNotFound) {
			t.Fatalf("expected ErrChangeOrderNotFound, got %v", err)
		}
	})

	t.Run("voided entries are frozen", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewChangeOrderUseCase(repo, pricing.DefaultTables())

		q := contractQuote()
		q.ChangeOrderHistory = []entities.ChangeOrderEntry{
			{ChangeOrderNum: 1, Status: entities.ChangeOrderStatusDraft, ContingencyBalance: 2300},
			{ChangeOrderNum: 1, Status: entities.ChangeOrderStatusVoided, IsReversal: true},
		}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.Send(context.Background(), "q-1", 1)
		if !errors.Is(err, ErrChangeOrderVoided) {
			t.Fatalf("expected ErrChangeOrderVoided, got %v", err)
		}
	})

	t.Run("invalid move", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewChangeOrderUseCase(repo, pricing.DefaultTables())

		q := contractQuote()
		q.ChangeOrderHistory = []entities.ChangeOrderEntry{
			{ChangeOrderNum: 1, Status: entities.ChangeOrderStatusSigned, ContingencyUsed: 0, ContingencyBalance: 2300},
		}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.Send(context.Background(), "q-1", 1)
		if !errors.Is(err, ErrInvalidChangeOrderMove) {
			t.Fatalf("expected ErrInvalidChangeOrderMove, got %v", err)
		}
	})

	t.Run("sign success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewChangeOrderUseCase(repo, pricing.DefaultTables())

		q := contractQuote()
		q.ChangeOrderHistory = []entities.ChangeOrderEntry{
			{ChangeOrderNum: 1, Status: entities.ChangeOrderStatusSent, ContingencyUsed: 800, ContingencyBalance: 1500,
				Additions: []entities.ChangeOrderLine{{ServiceKey: "deck", Name: "Deck", Amount: 800}}},
		}
		signed := q
		signed.ChangeOrderHistory = []entities.ChangeOrderEntry{
			{ChangeOrderNum: 1, Status: entities.ChangeOrderStatusSigned, ContingencyUsed: 800, ContingencyBalance: 1500},
		}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		repo.EXPECT().SetChangeOrderStatus(gomock.Any(), "q-1", 0, entities.ChangeOrderStatusSigned).Return(signed, nil)

		entry, err := uc.Sign(context.Background(), "q-1", 1, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.Status != entities.ChangeOrderStatusSigned {
			t.Fatalf("unexpected status: %s", entry.Status)
		}
	})

	t.Run("sign refused while overdrawn", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewChangeOrderUseCase(repo, pricing.DefaultTables())

		// One active addition larger than the whole fund overdraws it.
		q := contractQuote()
		q.ChangeOrderHistory = []entities.ChangeOrderEntry{
			{ChangeOrderNum: 1, Status: entities.ChangeOrderStatusSent, ContingencyUsed: 5000, ContingencyBalance: -2700,
				Additions: []entities.ChangeOrderLine{{ServiceKey: "well", Name: "Well", Amount: 5000}}},
		}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.Sign(context.Background(), "q-1", 1, false)
		if !errors.Is(err, ErrContingencyOverdrawn) {
			t.Fatalf("expected ErrContingencyOverdrawn, got %v", err)
		}
	})

	t.Run("force signs past overdraft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewChangeOrderUseCase(repo, pricing.DefaultTables())

		q := contractQuote()
		q.ChangeOrderHistory = []entities.ChangeOrderEntry{
			{ChangeOrderNum: 1, Status: entities.ChangeOrderStatusSent, ContingencyUsed: 5000, ContingencyBalance: -2700,
				Additions: []entities.ChangeOrderLine{{ServiceKey: "well", Name: "Well", Amount: 5000}}},
		}
		signed := q
		signed.ChangeOrderHistory = []entities.ChangeOrderEntry{
			{ChangeOrderNum: 1, Status: entities.ChangeOrderStatusSigned, ContingencyUsed: 5000, ContingencyBalance: -2700},
		}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		repo.EXPECT().SetChangeOrderStatus(gomock.Any(), "q-1", 0, entities.ChangeOrderStatusSigned).Return(signed, nil)

		entry, err := uc.Sign(context.Background(), "q-1", 1, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.Status != entities.ChangeOrderStatusSigned {
			t.Fatalf("unexpected status: %s", entry.Status)
		}
	})

	t.Run("unsign back to draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewChangeOrderUseCase(repo, pricing.DefaultTables())

		q := contractQuote()
		q.ChangeOrderHistory = []entities.ChangeOrderEntry{
			{ChangeOrderNum: 1, Status: entities.ChangeOrderStatusSigned, ContingencyUsed: 0, ContingencyBalance: 2300},
		}
		back := q
		back.ChangeOrderHistory = []entities.ChangeOrderEntry{
			{ChangeOrderNum: 1, Status: entities.ChangeOrderStatusDraft, ContingencyUsed: 0, ContingencyBalance: 2300},
		}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		repo.EXPECT().SetChangeOrderStatus(gomock.Any(), "q-1", 0, entities.ChangeOrderStatusDraft).Return(back, nil)

		entry, err := uc.Unsign(context.Background(), "q-1", 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.Status != entities.ChangeOrderStatusDraft {
			t.Fatalf("unexpected status: %s", entry.Status)
		}
	})
}

func TestChangeOrderUseCase_Void(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewChangeOrderUseCase(repo, pricing.DefaultTables())

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(contractQuote(), nil)

		_, err := uc.Void(context.Background(), "q-1", 1, "pm")
		if !errors.Is(err, ErrChangeOrderNotFound) {
			t.Fatalf("expected ErrChangeOrderNotFound, got %v", err)
		}
	})

	t.Run("double void refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewChangeOrderUseCase(repo, pricing.DefaultTables())

		q := contractQuote()
		q.ChangeOrderHistory = []entities.ChangeOrderEntry{
			{ChangeOrderNum: 1, Status: entities.ChangeOrderStatusSigned, ContingencyBalance: 2300},
			{ChangeOrderNum: 1, Status: entities.ChangeOrderStatusVoided, IsReversal: true},
		}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

		_, err := uc.Void(context.Background(), "q-1", 1, "pm")
		if !errors.Is(err, ErrChangeOrderVoided) {
			t.Fatalf("expected ErrChangeOrderVoided, got %v", err)
		}
	})

	t.Run("appends a pre-negated reversal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewChangeOrderUseCase(repo, pricing.DefaultTables())

		q := contractQuote()
		q.ChangeOrderHistory = []entities.ChangeOrderEntry{
			{ChangeOrderNum: 1, Version: 1, Status: entities.ChangeOrderStatusSigned,
				Additions:       []entities.ChangeOrderLine{{ServiceKey: "deck", Name: "Deck", Amount: 800}},
				TotalChange:     800,
				ContingencyUsed: 800, ContingencyBalance: 1500},
		}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)
		repo.EXPECT().AppendChangeOrder(gomock.Any(), "q-1", gomock.AssignableToTypeOf(entities.ChangeOrderEntry{})).DoAndReturn(
			func(_ context.Context, _ string, e entities.ChangeOrderEntry) (entities.Quote, error) {
				if !e.IsReversal || e.ChangeOrderNum != 1 || e.Status != entities.ChangeOrderStatusVoided {
					t.Fatalf("unexpected reversal: %+v", e)
				}
				if e.TotalChange != -800 || e.ContingencyUsed != -800 {
					t.Fatalf("reversal must pre-negate: %+v", e)
				}
				// Live balance is 1500 with the draw active; refunding it
				// restores the full fund.
				if e.ContingencyBalance != 2300 {
					t.Fatalf("balance after refund: expected 2300, got %v", e.ContingencyBalance)
				}
				updated := q
				updated.ChangeOrderHistory = append(updated.ChangeOrderHistory, e)
				return updated, nil
			},
		)

		entry, err := uc.Void(context.Background(), "q-1", 1, " pm ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !entry.IsReversal || entry.CreatedBy != "pm" {
			t.Fatalf("unexpected entry: %+v", entry)
		}
	})
}
