package repository

import (
	"fmt"

	"agenthub-backend/internal/keys"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type opKind int

const (
	opCreate opKind = iota
	opPut
	opUpdate
	opDelete
)

// TransactOp is one operation inside a TransactWrite batch.
type TransactOp struct {
	kind       opKind
	key        keys.Projected
	entityType string
	item       interface{}
	fields     map[string]interface{}
}

// TransactCreate adds a conditional create: the batch fails when a document
// already exists at the key.
func TransactCreate(key keys.Projected, entityType string, item interface{}) TransactOp {
	return TransactOp{kind: opCreate, key: key, entityType: entityType, item: item}
}

// TransactPut adds an unconditional write.
func TransactPut(key keys.Projected, entityType string, item interface{}) TransactOp {
	return TransactOp{kind: opPut, key: key, entityType: entityType, item: item}
}

// TransactUpdate adds a partial field update of an existing document. A nil
// field value removes the attribute; the batch fails when the document is
// missing.
func TransactUpdate(key keys.Primary, fields map[string]interface{}) TransactOp {
	return TransactOp{kind: opUpdate, key: keys.Projected{PK: key.PK, SK: key.SK}, fields: fields}
}

// TransactDelete adds a delete.
func TransactDelete(key keys.Primary) TransactOp {
	return TransactOp{kind: opDelete, key: keys.Projected{PK: key.PK, SK: key.SK}}
}

// Key returns the primary key the operation addresses.
func (op TransactOp) Key() keys.Primary {
	return keys.Primary{PK: op.key.PK, SK: op.key.SK}
}

// EntityType returns the document type written by a create/put operation.
func (op TransactOp) EntityType() string {
	return op.entityType
}

// Item returns the document written by a create/put operation.
func (op TransactOp) Item() interface{} {
	return op.item
}

// Fields returns the partial-field map of an update operation.
func (op TransactOp) Fields() map[string]interface{} {
	return op.fields
}

// IsCreate reports whether the operation is a conditional create.
func (op TransactOp) IsCreate() bool { return op.kind == opCreate }

// IsUpdate reports whether the operation is a partial update.
func (op TransactOp) IsUpdate() bool { return op.kind == opUpdate }

// IsDelete reports whether the operation is a delete.
func (op TransactOp) IsDelete() bool { return op.kind == opDelete }

func (op TransactOp) transactItem(table string) (types.TransactWriteItem, error) {
	switch op.kind {
	case opCreate, opPut:
		attrs, err := itemAttrs(op.key, op.entityType, op.item)
		if err != nil {
			return types.TransactWriteItem{}, err
		}
		put := &types.Put{
			TableName: aws.String(table),
			Item:      attrs,
		}
		if op.kind == opCreate {
			put.ConditionExpression = aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)")
		}
		return types.TransactWriteItem{Put: put}, nil

	case opUpdate:
		expr, names, values, err := buildUpdateExpression(op.fields)
		if err != nil {
			return types.TransactWriteItem{}, err
		}
		update := &types.Update{
			TableName:                aws.String(table),
			Key:                      primaryKeyAttrs(op.Key()),
			UpdateExpression:         aws.String(expr),
			ConditionExpression:      aws.String("attribute_exists(PK)"),
			ExpressionAttributeNames: names,
		}
		if len(values) > 0 {
			update.ExpressionAttributeValues = values
		}
		return types.TransactWriteItem{Update: update}, nil

	case opDelete:
		return types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(table),
				Key:       primaryKeyAttrs(op.Key()),
			},
		}, nil
	}

	return types.TransactWriteItem{}, fmt.Errorf("unknown transact operation kind %d", op.kind)
}
