package repository

import (
	"os"
	"strconv"
	"time"

	"distribuidora_xpto/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// transitionRecordItem is the audit entry as stored in the document's
// history list attribute.
type transitionRecordItem struct {
	ActorID   string `dynamodbav:"actor_id"`
	ActorRole string `dynamodbav:"actor_role"`
	From      string `dynamodbav:"from"`
	To        string `dynamodbav:"to"`
	At        string `dynamodbav:"at"`
}

func toTransitionRecordItem(rec entities.TransitionRecord) transitionRecordItem {
	return transitionRecordItem{
		ActorID:   rec.ActorID,
		ActorRole: rec.ActorRole,
		From:      string(rec.From),
		To:        string(rec.To),
		At:        formatTime(rec.At),
	}
}

func fromTransitionRecordItems(items []transitionRecordItem) []entities.TransitionRecord {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.TransitionRecord, 0, len(items))
	for _, it := range items {
		out = append(out, entities.TransitionRecord{
			ActorID:   it.ActorID,
			ActorRole: it.ActorRole,
			From:      entities.Status(it.From),
			To:        entities.Status(it.To),
			At:        parseTime(it.At),
		})
	}
	return out
}

// appendRecordValue marshals one audit record as a single-element list, ready
// for a list_append update expression.
func appendRecordValue(rec entities.TransitionRecord) (types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(toTransitionRecordItem(rec))
	if err != nil {
		return nil, err
	}
	return &types.AttributeValueMemberL{
		Value: []types.AttributeValue{&types.AttributeValueMemberM{Value: av}},
	}, nil
}

func emptyListValue() types.AttributeValue {
	return &types.AttributeValueMemberL{Value: []types.AttributeValue{}}
}
