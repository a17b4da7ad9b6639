package repository

import (
	"context"

	"agenthub-backend/internal/keys"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// Store defines the generic key-value access interface the action layer
// depends on. The concrete implementation is backed by DynamoDB; callers must
// not assume anything beyond per-key ordering plus the atomicity of
// TransactWrite.
type Store interface {
	Get(ctx context.Context, key keys.Primary, out interface{}) error
	Create(ctx context.Context, key keys.Projected, entityType string, item interface{}) error
	Put(ctx context.Context, key keys.Projected, entityType string, item interface{}) error
	Update(ctx context.Context, key keys.Primary, fields map[string]interface{}) error
	Delete(ctx context.Context, key keys.Primary) error
	Query(ctx context.Context, pk, skPrefix string, out interface{}) error
	QueryIndex(ctx context.Context, index, pk, skPrefix string, out interface{}) error
	Scan(ctx context.Context, entityType string, out interface{}) error
	GetBatch(ctx context.Context, ks []keys.Primary, out interface{}) error
	TransactWrite(ctx context.Context, ops ...TransactOp) error
}

var _ Store = (*Repository)(nil)
