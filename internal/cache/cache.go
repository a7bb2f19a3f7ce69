// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache keeps the spot list in Redis in front of a
// [store.SpotRepository]. The cache is best effort: Redis failures are logged
// and the request falls through to the repository.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/study-spots/internal/config"
	"github.com/MKhiriev/study-spots/internal/logger"
	"github.com/MKhiriev/study-spots/internal/metrics"
	"github.com/MKhiriev/study-spots/internal/store"
	"github.com/MKhiriev/study-spots/models"
)

const (
	// ListKey is the Redis key holding the JSON encoded spot list.
	ListKey = "study_spots:list"

	// GenerationKey is bumped by every mutation. A list read from the
	// repository is only cached when the generation did not move meanwhile.
	GenerationKey = "study_spots:list:generation"
)

var errStaleList = errors.New("spot list changed while it was read")

// NewRedisClient connects to cfg.RedisAddress and pings it.
func NewRedisClient(ctx context.Context, cfg config.Cache) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddress, err)
	}

	return client, nil
}

type cachedSpotRepository struct {
	inner  store.SpotRepository
	client redis.UniversalClient
	ttl    time.Duration

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewCachedSpotRepository wraps inner so List is served from Redis for ttl.
// Every successful mutation drops the cached list and bumps the generation,
// so a list read concurrently with the mutation is never written back.
func NewCachedSpotRepository(inner store.SpotRepository, client redis.UniversalClient, ttl time.Duration, m *metrics.Metrics, log *logger.Logger) store.SpotRepository {
	return &cachedSpotRepository{
		inner:   inner,
		client:  client,
		ttl:     ttl,
		metrics: m,
		logger:  log,
	}
}

func (c *cachedSpotRepository) List(ctx context.Context) ([]models.Spot, error) {
	log := logger.FromContext(ctx)

	raw, err := c.client.Get(ctx, ListKey).Bytes()
	switch {
	case err == nil:
		var spots []models.Spot
		jsonErr := json.Unmarshal(raw, &spots)
		if jsonErr == nil {
			c.metrics.ObserveCache(metrics.CacheHit)
			return spots, nil
		}
		log.Err(jsonErr).Str("func", "cachedSpotRepository.List").Msg("ignoring unreadable cached list")
		c.metrics.ObserveCache(metrics.CacheError)
	case errors.Is(err, redis.Nil):
		c.metrics.ObserveCache(metrics.CacheMiss)
	default:
		log.Err(err).Str("func", "cachedSpotRepository.List").Msg("redis get failed")
		c.metrics.ObserveCache(metrics.CacheError)
	}

	gen, genErr := generation(ctx, c.client)

	spots, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if genErr == nil {
		c.store(ctx, gen, spots)
	}
	return spots, nil
}

func (c *cachedSpotRepository) Get(ctx context.Context, id models.SpotID) (models.Spot, error) {
	return c.inner.Get(ctx, id)
}

func (c *cachedSpotRepository) Create(ctx context.Context, spot models.Spot) (models.Spot, error) {
	created, err := c.inner.Create(ctx, spot)
	if err != nil {
		return models.Spot{}, err
	}
	c.invalidate(ctx)
	return created, nil
}

func (c *cachedSpotRepository) Update(ctx context.Context, spot models.Spot) (models.Spot, error) {
	updated, err := c.inner.Update(ctx, spot)
	if err != nil {
		return models.Spot{}, err
	}
	c.invalidate(ctx)
	return updated, nil
}

func (c *cachedSpotRepository) Delete(ctx context.Context, id models.SpotID) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// store caches spots unless a mutation bumped the generation after gen was
// read. The generation key is watched so a mutation racing the write aborts
// it too.
func (c *cachedSpotRepository) store(ctx context.Context, gen int64, spots []models.Spot) {
	raw, err := json.Marshal(spots)
	if err != nil {
		return
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := generation(ctx, tx)
		if err != nil {
			return err
		}
		if current != gen {
			return errStaleList
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, ListKey, raw, c.ttl)
			return nil
		})
		return err
	}, GenerationKey)

	switch {
	case err == nil:
		c.metrics.ObserveCache(metrics.CacheSet)
	case errors.Is(err, errStaleList), errors.Is(err, redis.TxFailedErr):
		c.metrics.ObserveCache(metrics.CacheStale)
	default:
		logger.FromContext(ctx).Err(err).Str("func", "cachedSpotRepository.store").Msg("redis set failed")
		c.metrics.ObserveCache(metrics.CacheError)
	}
}

func (c *cachedSpotRepository) invalidate(ctx context.Context) {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, GenerationKey)
		pipe.Del(ctx, ListKey)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "cachedSpotRepository.invalidate").Msg("redis del failed")
		c.metrics.ObserveCache(metrics.CacheError)
		return
	}
	c.metrics.ObserveCache(metrics.CacheDel)
}

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func generation(ctx context.Context, client stringGetter) (int64, error) {
	gen, err := client.Get(ctx, GenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}
