package interfaces

import (
	"context"

	"modular_homes/internal/domain/entities"
)

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/quote_repository_mock.go -package=mock_interfaces

// IQuoteRepository abstracts DynamoDB persistence for the Quote aggregate.
//
// Contract with the domain engines:
//   - the four history lists are append-only: Append* operations add to the
//     end and nothing ever deletes or rewrites an existing entry
//   - list order is preserved exactly (insertion order)
//   - SetChangeOrderStatus touches only the status field of one entry;
//     financial fields stay frozen
//
// Not-found resolves to a zero-value entity, not an error; callers check
// for an empty ID and translate it into their own not-found sentinel.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	UpdateSelections(ctx context.Context, q entities.Quote) (entities.Quote, error)

	AppendChangeOrder(ctx context.Context, id string, e entities.ChangeOrderEntry) (entities.Quote, error)
	SetChangeOrderStatus(ctx context.Context, id string, index int, status entities.ChangeOrderStatus) (entities.Quote, error)
	AppendScrubbEntry(ctx context.Context, id string, e entities.ScrubbHistoryEntry) (entities.Quote, error)
	AppendPayment(ctx context.Context, id string, p entities.Payment) (entities.Quote, error)
	AppendPermitEntry(ctx context.Context, id string, p entities.PermitEntry) (entities.Quote, error)
}
