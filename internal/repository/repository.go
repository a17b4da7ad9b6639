package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	apperrors "agenthub-backend/internal/errors"
	"agenthub-backend/internal/keys"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Repository is the generic document access object over the single DynamoDB
// table. It treats the table as an opaque key-value store addressed by
// (partition key, sort key) with two secondary-index projections; it knows
// nothing about the entities stored in it.
type Repository struct {
	client *dynamodb.Client
	table  string
}

// NewRepository creates a repository bound to a table
func NewRepository(client *dynamodb.Client, table string) *Repository {
	return &Repository{client: client, table: table}
}

// Get loads a single document into out. Returns a NotFoundError when no
// document exists at the key.
func (r *Repository) Get(ctx context.Context, key keys.Primary, out interface{}) error {
	resp, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       primaryKeyAttrs(key),
	})
	if err != nil {
		return fmt.Errorf("failed to get item %s/%s: %w", key.PK, key.SK, err)
	}
	if resp.Item == nil {
		return apperrors.NewNotFoundError("item " + key.PK + "/" + key.SK)
	}
	if err := attributevalue.UnmarshalMap(resp.Item, out); err != nil {
		return fmt.Errorf("failed to unmarshal item %s/%s: %w", key.PK, key.SK, err)
	}
	return nil
}

// Create writes a new document, failing with a ConflictError when a document
// already exists at the key.
func (r *Repository) Create(ctx context.Context, key keys.Projected, entityType string, item interface{}) error {
	attrs, err := itemAttrs(key, entityType, item)
	if err != nil {
		return err
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                attrs,
		ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return apperrors.ErrItemExists
		}
		return fmt.Errorf("failed to create item %s/%s: %w", key.PK, key.SK, err)
	}
	return nil
}

// Put writes a document unconditionally, replacing any existing one.
func (r *Repository) Put(ctx context.Context, key keys.Projected, entityType string, item interface{}) error {
	attrs, err := itemAttrs(key, entityType, item)
	if err != nil {
		return err
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      attrs,
	})
	if err != nil {
		return fmt.Errorf("failed to put item %s/%s: %w", key.PK, key.SK, err)
	}
	return nil
}

// Update applies a partial field update to an existing document. A nil field
// value removes the attribute. Returns a NotFoundError when the document does
// not exist.
func (r *Repository) Update(ctx context.Context, key keys.Primary, fields map[string]interface{}) error {
	expr, names, values, err := buildUpdateExpression(fields)
	if err != nil {
		return err
	}
	input := &dynamodb.UpdateItemInput{
		TableName:                aws.String(r.table),
		Key:                      primaryKeyAttrs(key),
		UpdateExpression:         aws.String(expr),
		ExpressionAttributeNames: names,
		ConditionExpression:      aws.String("attribute_exists(PK)"),
	}
	if len(values) > 0 {
		input.ExpressionAttributeValues = values
	}
	_, err = r.client.UpdateItem(ctx, input)
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return apperrors.NewNotFoundError("item " + key.PK + "/" + key.SK)
		}
		return fmt.Errorf("failed to update item %s/%s: %w", key.PK, key.SK, err)
	}
	return nil
}

// Delete removes a document. Deleting a missing document is not an error.
func (r *Repository) Delete(ctx context.Context, key keys.Primary) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       primaryKeyAttrs(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete item %s/%s: %w", key.PK, key.SK, err)
	}
	return nil
}

// Query loads all documents under a partition key whose sort key begins with
// skPrefix into out (a pointer to a slice). An empty skPrefix loads the whole
// partition.
func (r *Repository) Query(ctx context.Context, pk, skPrefix string, out interface{}) error {
	return r.query(ctx, "", "PK", "SK", pk, skPrefix, out)
}

// QueryIndex is Query against one of the secondary indexes.
func (r *Repository) QueryIndex(ctx context.Context, index, pk, skPrefix string, out interface{}) error {
	return r.query(ctx, index, index+"PK", index+"SK", pk, skPrefix, out)
}

func (r *Repository) query(ctx context.Context, index, pkAttr, skAttr, pk, skPrefix string, out interface{}) error {
	keyCond := "#pk = :pk"
	names := map[string]string{"#pk": pkAttr}
	values := map[string]types.AttributeValue{
		":pk": &types.AttributeValueMemberS{Value: pk},
	}
	if skPrefix != "" {
		keyCond += " AND begins_with(#sk, :sk)"
		names["#sk"] = skAttr
		values[":sk"] = &types.AttributeValueMemberS{Value: skPrefix}
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		KeyConditionExpression:    aws.String(keyCond),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}
	if index != "" {
		input.IndexName = aws.String(index)
	}

	var items []map[string]types.AttributeValue
	for {
		resp, err := r.client.Query(ctx, input)
		if err != nil {
			return fmt.Errorf("failed to query %s: %w", pk, err)
		}
		items = append(items, resp.Items...)
		if resp.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = resp.LastEvaluatedKey
	}

	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return fmt.Errorf("failed to unmarshal query results for %s: %w", pk, err)
	}
	return nil
}

// Scan loads every document of the given entity type into out. Full-table
// scans are reserved for low-volume admin surfaces.
func (r *Repository) Scan(ctx context.Context, entityType string, out interface{}) error {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(r.table),
		FilterExpression: aws.String("EntityType = :t"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t": &types.AttributeValueMemberS{Value: entityType},
		},
	}

	var items []map[string]types.AttributeValue
	for {
		resp, err := r.client.Scan(ctx, input)
		if err != nil {
			return fmt.Errorf("failed to scan %s: %w", entityType, err)
		}
		items = append(items, resp.Items...)
		if resp.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = resp.LastEvaluatedKey
	}

	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return fmt.Errorf("failed to unmarshal scan results for %s: %w", entityType, err)
	}
	return nil
}

// GetBatch loads up to 100 documents per round trip in a single BatchGetItem
// call, retrying unprocessed keys. Missing keys are silently skipped; the
// order of results is not guaranteed.
func (r *Repository) GetBatch(ctx context.Context, ks []keys.Primary, out interface{}) error {
	var items []map[string]types.AttributeValue

	const chunkSize = 100
	for start := 0; start < len(ks); start += chunkSize {
		end := start + chunkSize
		if end > len(ks) {
			end = len(ks)
		}

		keyAttrs := make([]map[string]types.AttributeValue, 0, end-start)
		for _, k := range ks[start:end] {
			keyAttrs = append(keyAttrs, primaryKeyAttrs(k))
		}

		request := map[string]types.KeysAndAttributes{
			r.table: {Keys: keyAttrs},
		}
		for len(request) > 0 {
			resp, err := r.client.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
				RequestItems: request,
			})
			if err != nil {
				return fmt.Errorf("failed to batch get items: %w", err)
			}
			items = append(items, resp.Responses[r.table]...)
			if len(resp.UnprocessedKeys) == 0 {
				break
			}
			request = resp.UnprocessedKeys
		}
	}

	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return fmt.Errorf("failed to unmarshal batch results: %w", err)
	}
	return nil
}

// TransactWrite applies all operations atomically. Multi-document sequences
// (organization creation, member removal, invitation acceptance) go through
// here so a crash can never leave them partially applied. A failed create
// condition surfaces as a ConflictError; a failed update existence guard as a
// NotFoundError.
func (r *Repository) TransactWrite(ctx context.Context, ops ...TransactOp) error {
	items := make([]types.TransactWriteItem, 0, len(ops))
	for _, op := range ops {
		item, err := op.transactItem(r.table)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	_, err := r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			for i, reason := range canceled.CancellationReasons {
				if reason.Code == nil || *reason.Code != "ConditionalCheckFailed" {
					continue
				}
				// an update's existence guard failed: the document is missing
				if i < len(ops) && ops[i].IsUpdate() {
					return apperrors.NewNotFoundError("item")
				}
				return apperrors.ErrItemExists
			}
		}
		return fmt.Errorf("failed to apply transactional write: %w", err)
	}
	return nil
}

// primaryKeyAttrs builds the key attribute map for a primary key.
func primaryKeyAttrs(key keys.Primary) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: key.PK},
		"SK": &types.AttributeValueMemberS{Value: key.SK},
	}
}

// itemAttrs marshals item and overlays the key, index and type attributes.
func itemAttrs(key keys.Projected, entityType string, item interface{}) (map[string]types.AttributeValue, error) {
	attrs, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item %s/%s: %w", key.PK, key.SK, err)
	}
	attrs["PK"] = &types.AttributeValueMemberS{Value: key.PK}
	attrs["SK"] = &types.AttributeValueMemberS{Value: key.SK}
	attrs["EntityType"] = &types.AttributeValueMemberS{Value: entityType}
	if key.GSI1PK != "" {
		attrs["GSI1PK"] = &types.AttributeValueMemberS{Value: key.GSI1PK}
		attrs["GSI1SK"] = &types.AttributeValueMemberS{Value: key.GSI1SK}
	}
	if key.GSI2PK != "" {
		attrs["GSI2PK"] = &types.AttributeValueMemberS{Value: key.GSI2PK}
		attrs["GSI2SK"] = &types.AttributeValueMemberS{Value: key.GSI2SK}
	}
	return attrs, nil
}

// buildUpdateExpression turns a partial-field map into an update expression.
// Field names are sorted so the expression is deterministic.
func buildUpdateExpression(fields map[string]interface{}) (string, map[string]string, map[string]types.AttributeValue, error) {
	if len(fields) == 0 {
		return "", nil, nil, apperrors.NewValidationError("fields", "no fields to update")
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	exprNames := make(map[string]string, len(fields))
	exprValues := make(map[string]types.AttributeValue)
	var setParts, removeParts []string

	for i, name := range names {
		placeholder := fmt.Sprintf("#f%d", i)
		exprNames[placeholder] = name
		if fields[name] == nil {
			removeParts = append(removeParts, placeholder)
			continue
		}
		value, err := attributevalue.Marshal(fields[name])
		if err != nil {
			return "", nil, nil, fmt.Errorf("failed to marshal field %s: %w", name, err)
		}
		valuePlaceholder := fmt.Sprintf(":v%d", i)
		exprValues[valuePlaceholder] = value
		setParts = append(setParts, placeholder+" = "+valuePlaceholder)
	}

	expr := ""
	if len(setParts) > 0 {
		expr = "SET " + strings.Join(setParts, ", ")
	}
	if len(removeParts) > 0 {
		if expr != "" {
			expr += " "
		}
		expr += "REMOVE " + strings.Join(removeParts, ", ")
	}
	return expr, exprNames, exprValues, nil
}
