package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"carwash/internal/cache"
	"carwash/internal/model"
)

const (
	grantKeyPrefix = "grants:role:"
	grantTTL       = time.Hour
)

// GrantStoreInterface caches the operations granted to each role.
type GrantStoreInterface interface {
	GetOperations(ctx context.Context, roleID uint) ([]model.Operation, bool)
	StoreOperations(ctx context.Context, roleID uint, ops []model.Operation) error
	InvalidateRole(ctx context.Context, roleID uint) error
	InvalidateAll(ctx context.Context) error
}

// GrantStore handles storage and retrieval of role grants in Redis.
type GrantStore struct {
	cache *cache.Client
}

var _ GrantStoreInterface = (*GrantStore)(nil)

// NewGrantStore creates a new grant store.
func NewGrantStore(cache *cache.Client) *GrantStore {
	return &GrantStore{cache: cache}
}

func grantKey(roleID uint) string {
	return grantKeyPrefix + strconv.FormatUint(uint64(roleID), 10)
}

// GetOperations reports a miss when the key is absent, unreadable or redis is down.
func (s *GrantStore) GetOperations(ctx context.Context, roleID uint) ([]model.Operation, bool) {
	data, err := s.cache.Get(ctx, grantKey(roleID))
	if err != nil || data == nil {
		return nil, false
	}
	var ops []model.Operation
	if err := json.Unmarshal(data, &ops); err != nil {
		return nil, false
	}
	return ops, true
}

func (s *GrantStore) StoreOperations(ctx context.Context, roleID uint, ops []model.Operation) error {
	if ops == nil {
		ops = []model.Operation{}
	}
	payload, err := json.Marshal(ops)
	if err != nil {
		return fmt.Errorf("marshal grants: %w", err)
	}
	return s.cache.Set(ctx, grantKey(roleID), payload, grantTTL)
}

func (s *GrantStore) InvalidateRole(ctx context.Context, roleID uint) error {
	return s.cache.Delete(ctx, grantKey(roleID))
}

// InvalidateAll drops every cached role; used when an operation itself changes.
func (s *GrantStore) InvalidateAll(ctx context.Context) error {
	return s.cache.DeletePrefix(ctx, grantKeyPrefix)
}
