package repository

import (
	"context"
	"errors"

	"distribuidora_xpto/internal/domain/entities"
	"distribuidora_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTransfersTableName = "transfers"

type transferItem struct {
	ID           string                 `dynamodbav:"id"`
	FromBranchID string                 `dynamodbav:"from_branch_id"`
	ToBranchID   string                 `dynamodbav:"to_branch_id"`
	ProductRef   string                 `dynamodbav:"product_ref"`
	Quantity     int                    `dynamodbav:"quantity"`
	Remark       string                 `dynamodbav:"remark,omitempty"`
	Status       string                 `dynamodbav:"status"`
	CreatedAt    string                 `dynamodbav:"created_at"`
	CreatedBy    string                 `dynamodbav:"created_by"`
	UpdatedAt    string                 `dynamodbav:"updated_at"`
	History      []transitionRecordItem `dynamodbav:"history,omitempty"`
}

// TransferDynamoRepository persists Transfer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Same conditional-write discipline as the quotation repository.
type TransferDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransferRepository = (*TransferDynamoRepository)(nil)

func NewTransferDynamoRepository(ddb *dynamodb.Client) *TransferDynamoRepository {
	return &TransferDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSFERS_TABLE", defaultTransfersTableName),
	}
}

func (r *TransferDynamoRepository) Create(ctx context.Context, tr entities.Transfer) (entities.Transfer, error) {
	it := toTransferItem(tr)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Transfer{}, err
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
			return entities.Transfer{}, interfaces.ErrDuplicateKey
		}
		return entities.Transfer{}, err
	}
	return tr, nil
}

func (r *TransferDynamoRepository) GetByID(ctx context.Context, id string) (entities.Transfer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transfer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transfer{}, nil
	}

	var it transferItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transfer{}, err
	}
	return fromTransferItem(it), nil
}

func (r *TransferDynamoRepository) List(ctx context.Context, status entities.Status) ([]entities.Transfer, error) {
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

	items := make([]entities.Transfer, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transferItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTransferItem(it))
	}
	return items, nil
}

func (r *TransferDynamoRepository) GetSummary(ctx context.Context, id string) (entities.DocumentSummary, error) {
	tr, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.DocumentSummary{}, err
	}
	if tr.ID == "" {
		return entities.DocumentSummary{}, nil
	}
	return tr.Summary(), nil
}

func (r *TransferDynamoRepository) ApplyTransition(ctx context.Context, id string, from, to entities.Status, rec entities.TransitionRecord) (entities.DocumentSummary, error) {
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

	var it transferItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.DocumentSummary{}, err
	}
	return fromTransferItem(it).Summary(), nil
}

func (r *TransferDynamoRepository) ListRefs(ctx context.Context) ([]entities.DocumentRef, error) {
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

func toTransferItem(tr entities.Transfer) transferItem {
	items := make([]transitionRecordItem, 0, len(tr.History))
	for _, rec := range tr.History {
		items = append(items, toTransitionRecordItem(rec))
	}
	return transferItem{
		ID:           tr.ID,
		FromBranchID: tr.FromBranchID,
		ToBranchID:   tr.ToBranchID,
		ProductRef:   tr.ProductRef,
		Quantity:     tr.Quantity,
		Remark:       tr.Remark,
		Status:       string(tr.Status),
		CreatedAt:    formatTime(tr.CreatedAt),
		CreatedBy:    tr.CreatedBy,
		UpdatedAt:    formatTime(tr.UpdatedAt),
		History:      items,
	}
}

func fromTransferItem(it transferItem) entities.Transfer {
	return entities.Transfer{
		ID:           it.ID,
		FromBranchID: it.FromBranchID,
		ToBranchID:   it.ToBranchID,
		ProductRef:   it.ProductRef,
		Quantity:     it.Quantity,
		Remark:       it.Remark,
		Status:       entities.Status(it.Status),
		CreatedAt:    parseTime(it.CreatedAt),
		CreatedBy:    it.CreatedBy,
		UpdatedAt:    parseTime(it.UpdatedAt),
		History:      fromTransitionRecordItems(it.History),
	}
}
