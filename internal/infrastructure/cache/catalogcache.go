// Package cache provides Redis-backed caches layered in front of storage.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/shared/logger"
)

const (
	ticketTypesKey = "catalog:tipos_chamado"
	userTypesKey   = "catalog:status_usuario"
)

// CachedCatalogRepository decorates a catalog repository with a Redis cache.
// The reference data is immutable at runtime, so a stale read can only
// happen across deployments; the TTL bounds that window.
type CachedCatalogRepository struct {
	inner  catalog.Repository
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewCachedCatalogRepository(inner catalog.Repository, client *redis.Client, ttl time.Duration, logger logger.Interface) *CachedCatalogRepository {
	return &CachedCatalogRepository{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *CachedCatalogRepository) ListTicketTypes(ctx context.Context) ([]*catalog.TicketType, error) {
	var cached []*catalog.TicketType
	if r.readCache(ctx, ticketTypesKey, &cached) {
		return cached, nil
	}

	ticketTypes, err := r.inner.ListTicketTypes(ctx)
	if err != nil {
		return nil, err
	}

	r.writeCache(ctx, ticketTypesKey, ticketTypes)
	return ticketTypes, nil
}

func (r *CachedCatalogRepository) ListUserTypes(ctx context.Context) ([]*catalog.UserType, error) {
	var cached []*catalog.UserType
	if r.readCache(ctx, userTypesKey, &cached) {
		return cached, nil
	}

	userTypes, err := r.inner.ListUserTypes(ctx)
	if err != nil {
		return nil, err
	}

	r.writeCache(ctx, userTypesKey, userTypes)
	return userTypes, nil
}

func (r *CachedCatalogRepository) GetTicketType(ctx context.Context, id uint) (*catalog.TicketType, error) {
	ticketTypes, err := r.ListTicketTypes(ctx)
	if err == nil {
		for _, tt := range ticketTypes {
			if tt.ID == id {
				return tt, nil
			}
		}
	}
	return r.inner.GetTicketType(ctx, id)
}

func (r *CachedCatalogRepository) GetUserType(ctx context.Context, id uint) (*catalog.UserType, error) {
	userTypes, err := r.ListUserTypes(ctx)
	if err == nil {
		for _, ut := range userTypes {
			if ut.ID == id {
				return ut, nil
			}
		}
	}
	return r.inner.GetUserType(ctx, id)
}

// readCache reports whether the key was present and decoded. Redis being
// down degrades to a plain storage read.
func (r *CachedCatalogRepository) readCache(ctx context.Context, key string, dest interface{}) bool {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warnw("catalog cache read failed", "error", err, "key", key)
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		r.logger.Warnw("catalog cache entry corrupt", "error", err, "key", key)
		return false
	}
	return true
}

func (r *CachedCatalogRepository) writeCache(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.logger.Warnw("catalog cache write failed", "error", err, "key", key)
	}
}
