package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"distribuidora_xpto/internal/domain/entities"
	"distribuidora_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotationsTableName = "quotations"

type quotationItem struct {
	ID          string                 `dynamodbav:"id"`
	CustomerRef string                 `dynamodbav:"customer_ref"`
	ValidUntil  string                 `dynamodbav:"valid_until"`
	Total       string                 `dynamodbav:"total"`
	LineItems   string                 `dynamodbav:"line_items,omitempty"`
	Status      string                 `dynamodbav:"status"`
	CreatedAt   string                 `dynamodbav:"created_at"`
	CreatedBy   string                 `dynamodbav:"created_by"`
	UpdatedAt   string                 `dynamodbav:"updated_at"`
	History     []transitionRecordItem `dynamodbav:"history,omitempty"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The put is conditional on the id not existing, which makes the store the
// authoritative uniqueness check; ApplyTransition is conditional on the
// stored status, which makes each status change atomic at the document grain.
type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	it := toQuotationItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quotation{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, interfaces.ErrDuplicateKey
		}
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) List(ctx context.Context, status entities.Status) ([]entities.Quotation, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	}

	out, err := r.ddb.Scan(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Quotation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quotationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuotationItem(it))
	}
	return items, nil
}

func (r *QuotationDynamoRepository) GetSummary(ctx context.Context, id string) (entities.DocumentSummary, error) {
	q, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.DocumentSummary{}, err
	}
	if q.ID == "" {
		return entities.DocumentSummary{}, nil
	}
	return q.Summary(), nil
}

func (r *QuotationDynamoRepository) ApplyTransition(ctx context.Context, id string, from, to entities.Status, rec entities.TransitionRecord) (entities.DocumentSummary, error) {
	recValue, err := appendRecordValue(rec)
	if err != nil {
		return entities.DocumentSummary{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at, #history = list_append(if_not_exists(#history, :empty), :rec)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(rec.At)},
			":rec":        recValue,
			":empty":      emptyListValue(),
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
			"#history":    "history",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.DocumentSummary{}, nil
		}
		return entities.DocumentSummary{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.DocumentSummary{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.DocumentSummary{}, err
	}
	return fromQuotationItem(it).Summary(), nil
}

func (r *QuotationDynamoRepository) ListRefs(ctx context.Context) ([]entities.DocumentRef, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		ProjectionExpression:     aws.String("#id, #status"),
		ExpressionAttributeNames: map[string]string{"#id": "id", "#status": "status"},
	})
	if err != nil {
		return nil, err
	}

	refs := make([]entities.DocumentRef, 0, len(out.Items))
	for _, raw := range out.Items {
		var it struct {
			ID     string `dynamodbav:"id"`
			Status string `dynamodbav:"status"`
		}
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		refs = append(refs, entities.DocumentRef{ID: it.ID, Active: entities.Status(it.Status).Active()})
	}
	return refs, nil
}

func toQuotationItem(q entities.Quotation) quotationItem {
	items := make([]transitionRecordItem, 0, len(q.History))
	for _, rec := range q.History {
		items = append(items, toTransitionRecordItem(rec))
	}
	return quotationItem{
		ID:          q.ID,
		CustomerRef: q.CustomerRef,
		ValidUntil:  formatTime(q.ValidUntil),
		Total:       floatToString(q.Total),
		LineItems:   string(q.LineItems),
		Status:      string(q.Status),
		CreatedAt:   formatTime(q.CreatedAt),
		CreatedBy:   q.CreatedBy,
		UpdatedAt:   formatTime(q.UpdatedAt),
		History:     items,
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	total, _ := strconv.ParseFloat(it.Total, 64)
	var lineItems json.RawMessage
	if it.LineItems != "" {
		lineItems = json.RawMessage(it.LineItems)
	}
	return entities.Quotation{
		ID:          it.ID,
		CustomerRef: it.CustomerRef,
		ValidUntil:  parseTime(it.ValidUntil),
		Total:       total,
		LineItems:   lineItems,
		Status:      entities.Status(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
		CreatedBy:   it.CreatedBy,
		UpdatedAt:   parseTime(it.UpdatedAt),
		History:     fromTransitionRecordItems(it.History),
	}
}
