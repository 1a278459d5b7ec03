package usecase

import (
	"context"
	"errors"
	"testing"

	"modular_homes/internal/domain/entities"
	mock_interfaces "modular_homes/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCustomerUseCase_Create(t *testing.T) {
	t.Run("invalid customer", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		if _, err := uc.Create(context.Background(), "  ", "jo@example.com", "", ""); !errors.Is(err, ErrInvalidCustomer) {
			t.Fatalf("expected ErrInvalidCustomer, got %v", err)
		}
		if _, err := uc.Create(context.Background(), "Jo", "  ", "", ""); !errors.Is(err, ErrInvalidCustomer) {
			t.Fatalf("expected ErrInvalidCustomer, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.ID == "" || c.Name != "Jo Site" || c.Email != "jo@example.com" {
					t.Fatalf("unexpected customer: %+v", c)
				}
				if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return c, nil
			},
		)

		res, err := uc.Create(context.Background(), " Jo Site ", " jo@example.com ", " 555-0100 ", " 12 Ridge Rd ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Phone != "555-0100" || res.Address != "12 Ridge Rd" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestCustomerUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidCustomer) {
			t.Fatalf("expected ErrInvalidCustomer, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{}, nil)

		_, err := uc.GetByID(context.Background(), "cust-1")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{ID: "cust-1", Name: "Jo Site"}, nil)

		res, err := uc.GetByID(context.Background(), " cust-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Jo Site" {
			t.Fatalf("unexpected customer: %+v", res)
		}
	})
}
