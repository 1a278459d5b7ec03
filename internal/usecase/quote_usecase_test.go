package usecase

import (
	"context"
	"errors"
	"testing"

	"modular_homes/internal/domain/entities"
	"modular_homes/internal/domain/pricing"
	mock_interfaces "modular_homes/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuoteUseCase_CreateQuote(t *testing.T) {
	t.Run("invalid customer id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, pricing.DefaultTables())
		_, err := uc.CreateQuote(context.Background(), QuoteInput{CustomerID: "   "})
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, pricing.DefaultTables())

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.CustomerID != "cust-1" || q.Status != entities.QuoteStatusDraft {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if q.CreatedAt.IsZero() || q.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				if q.SelectedServices == nil {
					t.Fatalf("expected non-nil selections map")
				}
				return q, nil
			},
		)

		res, err := uc.CreateQuote(context.Background(), QuoteInput{
			CustomerID:    " cust-1 ",
			HomeModelID:   " model-a ",
			HomeBasePrice: 85000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.HomeModelID != "model-a" || res.HomeBasePrice != 85000 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	t.Run("invalid quote id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, pricing.DefaultTables())
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, pricing.DefaultTables())

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.GetByID(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, pricing.DefaultTables())

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "q-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success trims id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, pricing.DefaultTables())

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)

		res, err := uc.GetByID(context.Background(), " q-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "q-1" {
			t.Fatalf("unexpected quote: %+v", res)
		}
	})
}

func TestQuoteUseCase_UpdateSelections(t *testing.T) {
	t.Run("locked after draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, pricing.DefaultTables())

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSent}, nil)

		_, err := uc.UpdateSelections(context.Background(), "q-1", QuoteInput{})
		if !errors.Is(err, ErrQuoteLocked) {
			t.Fatalf("expected ErrQuoteLocked, got %v", err)
		}
	})

	t.Run("replaces selections on a draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, pricing.DefaultTables())

		existing := entities.Quote{
			ID:         "q-1",
			CustomerID: "cust-1",
			Status:     entities.QuoteStatusDraft,
			DriveMiles: 10,
		}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(existing, nil)
		repo.EXPECT().UpdateSelections(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID != "q-1" || q.CustomerID != "cust-1" {
					t.Fatalf("identity must be preserved: %+v", q)
				}
				if q.DriveMiles != 45 || !q.SelectedServices["delivery"] {
					t.Fatalf("unexpected selections: %+v", q)
				}
				return q, nil
			},
		)

		_, err := uc.UpdateSelections(context.Background(), "q-1", QuoteInput{
			DriveMiles:       45,
			SelectedServices: map[string]bool{"delivery": true},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_Transitions(t *testing.T) {
	t.Run("send a draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, pricing.DefaultTables())

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusDraft}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusSent).
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSent}, nil)

		res, err := uc.Send(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.QuoteStatusSent {
			t.Fatalf("unexpected status: %s", res.Status)
		}
	})

	t.Run("accept requires sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, pricing.DefaultTables())

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusDraft}, nil)

		_, err := uc.Accept(context.Background(), "q-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("complete requires under contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, pricing.DefaultTables())

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusAccepted}, nil)

		_, err := uc.Complete(context.Background(), "q-1")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("cancel a contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, pricing.DefaultTables())

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusUnderContract}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusCancelled).
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusCancelled}, nil)

		_, err := uc.Cancel(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_Totals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := NewQuoteUseCase(repo, pricing.DefaultTables())

	q := entities.Quote{
		ID:     "q-1",
		Status: entities.QuoteStatusDraft,
		SelectedServices: map[string]bool{
			"electrical": true,
		},
		PriceOverrides: map[string]float64{"electrical": 100000},
	}
	repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

	totals, err := uc.Totals(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals.GrandTotal <= totals.Total || totals.Total <= totals.Subtotal {
		t.Fatalf("rate stack missing: %+v", totals)
	}
}

func TestQuoteUseCase_Contingency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := NewQuoteUseCase(repo, pricing.DefaultTables())

	q := entities.Quote{
		ID:     "q-1",
		Status: entities.QuoteStatusUnderContract,
		SelectedServices: map[string]bool{
			"electrical": true,
		},
		PriceOverrides: map[string]float64{"electrical": 100000},
		ChangeOrderHistory: []entities.ChangeOrderEntry{
			{
				ChangeOrderNum:     1,
				Status:             entities.ChangeOrderStatusSigned,
				Additions:          []entities.ChangeOrderLine{{ServiceKey: "deck", Name: "Deck", Amount: 800}},
				TotalChange:        800,
				ContingencyUsed:    800,
				ContingencyBalance: 1500,
			},
		},
	}
	repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(q, nil)

	rec, err := uc.Contingency(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Starting fund recovered from the first entry's snapshot, not the live
	// contingency, which the change order has already inflated.
	if rec.Starting != 2300 {
		t.Fatalf("starting: expected 2300, got %v", rec.Starting)
	}
	if rec.Draws != 800 {
		t.Fatalf("draws: expected 800, got %v", rec.Draws)
	}
	if rec.CurrentBalance != 1500 {
		t.Fatalf("balance: expected 1500, got %v", rec.CurrentBalance)
	}
}
