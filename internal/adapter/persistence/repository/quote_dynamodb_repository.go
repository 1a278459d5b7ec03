package repository

import (
	"context"
	"errors"
	"fmt"

	"modular_homes/internal/domain/entities"
	"modular_homes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

// QuoteDynamoRepository persists the Quote aggregate in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The whole aggregate lives in one item. The four history attributes are
// DynamoDB lists written exclusively through list_append, so insertion
// order is preserved and existing entries are never rewritten; the one
// sanctioned in-place edit is the status field of a change-order entry
// (draft<->signed toggles never touch financial fields).

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) UpdateSelections(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	sel, err := attributevalue.MarshalMap(toQuoteItem(q).Selections)
	if err != nil {
		return entities.Quote{}, err
	}

	return r.update(ctx, q.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #selections = :selections, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":selections": &types.AttributeValueMemberM{Value: sel},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#selections": "selections",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) AppendChangeOrder(ctx context.Context, id string, e entities.ChangeOrderEntry) (entities.Quote, error) {
	return r.appendToList(ctx, id, "change_order_history", toChangeOrderItem(e))
}

// SetChangeOrderStatus edits exactly one field of one history entry.
// Everything else in the entry stays frozen by construction: the update
// expression cannot reach it.
func (r *QuoteDynamoRepository) SetChangeOrderStatus(ctx context.Context, id string, index int, status entities.ChangeOrderStatus) (entities.Quote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := fmt.Sprintf("SET #coh[%d].#status = :status, #updated_at = :updated_at", index)
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#coh":        "change_order_history",
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) AppendScrubbEntry(ctx context.Context, id string, e entities.ScrubbHistoryEntry) (entities.Quote, error) {
	return r.appendToList(ctx, id, "scrubb_history", toScrubbItem(e))
}

func (r *QuoteDynamoRepository) AppendPayment(ctx context.Context, id string, p entities.Payment) (entities.Quote, error) {
	return r.appendToList(ctx, id, "scrubb_payments", toPaymentItem(p))
}

func (r *QuoteDynamoRepository) AppendPermitEntry(ctx context.Context, id string, p entities.PermitEntry) (entities.Quote, error) {
	return r.appendToList(ctx, id, "permit_entries", toPermitItem(p))
}

// appendToList appends one entry to a history attribute. list_append over
// if_not_exists keeps the operation valid on a quote that has no entries
// yet and guarantees the new entry lands at the end.
func (r *QuoteDynamoRepository) appendToList(ctx context.Context, id, attr string, entry any) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return entities.Quote{}, err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #log = list_append(if_not_exists(#log, :empty), :entry), #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":entry":      &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberM{Value: av}}},
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#log":        attr,
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Quote, error) {
	now := nowString()
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}
