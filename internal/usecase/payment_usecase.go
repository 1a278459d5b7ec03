package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"modular_homes/internal/domain/entities"
	"modular_homes/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
	ErrInvalidGatewayInput  = errors.New("invalid payment gateway payload")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrGatewayDeclined      = errors.New("payment gateway declined the charge")
)

// PaymentInput describes a payment to record on a contract.
//
// IsContingencyPayment marks a contingency-fund refill; the reconciliation
// engine reads the flag verbatim, so getting it right here is what keeps
// the fund honest. ChargeGateway routes the amount through Mercado Pago
// first; otherwise the payment is recorded as received out of band (check,
// wire).
type PaymentInput struct {
	Amount               float64
	IsContingencyPayment bool
	ChargeGateway        bool
	GatewayPayload       json.RawMessage
	CreatedBy            string
}

// IPaymentUseCase is the only caller-initiated mutation path into the
// payment log.
type IPaymentUseCase interface {
	RecordPayment(ctx context.Context, quoteID string, in PaymentInput) (entities.Payment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo    interfaces.IQuoteRepository
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, gateway: gateway}
}

func (u *PaymentUseCase) RecordPayment(ctx context.Context, quoteID string, in PaymentInput) (entities.Payment, error) {
	log.Printf("[payment][usecase] record start quote_id=%q amount=%.2f contingency=%t gateway=%t", quoteID, in.Amount, in.IsContingencyPayment, in.ChargeGateway)
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Payment{}, ErrInvalidQuoteID
	}
	if in.Amount <= 0 {
		return entities.Payment{}, ErrInvalidPaymentAmount
	}

	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Payment{}, err
	}
	if q.ID == "" {
		return entities.Payment{}, ErrQuoteNotFound
	}
	if !q.Status.IsContract() {
		return entities.Payment{}, ErrNotAContract
	}

	now := time.Now().UTC()
	p := entities.Payment{
		ID:                   uuid.NewString(),
		Amount:               in.Amount,
		Date:                 now,
		IsContingencyPayment: in.IsContingencyPayment,
		CreatedAt:            now,
		CreatedBy:            strings.TrimSpace(in.CreatedBy),
	}

	if in.ChargeGateway {
		if u.gateway == nil {
			log.Printf("[payment][usecase] gateway not configured quote_id=%s", quoteID)
			return entities.Payment{}, ErrGatewayNotConfigured
		}
		providerID, providerStatus, providerResp, err := u.charge(ctx, q, in)
		if err != nil {
			log.Printf("[payment][usecase] gateway charge failed quote_id=%s err=%v", quoteID, err)
			return entities.Payment{}, err
		}
		if providerStatus != "approved" {
			log.Printf("[payment][usecase] gateway declined quote_id=%s provider_status=%s", quoteID, providerStatus)
			return entities.Payment{}, ErrGatewayDeclined
		}
		p.ProviderPaymentID = providerID
		p.ProviderPayloadRaw = providerResp
	}

	updated, err := u.repo.AppendPayment(ctx, q.ID, p)
	if err != nil {
		log.Printf("[payment][usecase] append failed quote_id=%s payment_id=%s err=%v", quoteID, p.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] record success quote_id=%s payment_id=%s", quoteID, p.ID)
	if len(updated.ScrubbPayments) == 0 {
		return p, nil
	}
	return updated.ScrubbPayments[len(updated.ScrubbPayments)-1], nil
}

// charge enriches the raw provider payload with the quote linkage and the
// amount being recorded, then runs it through the gateway. The quote is the
// source of truth for the amount, never the caller payload.
func (u *PaymentUseCase) charge(ctx context.Context, q entities.Quote, in PaymentInput) (string, string, json.RawMessage, error) {
	payload := in.GatewayPayload
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return "", "", nil, ErrInvalidGatewayInput
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return "", "", nil, ErrInvalidGatewayInput
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = q.ID
	}
	if _, ok := reqMap["description"]; !ok {
		if in.IsContingencyPayment {
			reqMap["description"] = fmt.Sprintf("Contingency refill for contract %s", q.ID)
		} else {
			reqMap["description"] = fmt.Sprintf("Contract payment %s", q.ID)
		}
	}
	reqMap["transaction_amount"] = in.Amount
	if b, err := json.Marshal(reqMap); err == nil {
		payload = b
	}

	return u.gateway.CreatePayment(ctx, payload)
}

func (u *PaymentUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Payment, error) {
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
	return q.ScrubbPayments, nil
}
