package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/axellelanca/linkbundles/internal/logger"
	"github.com/axellelanca/linkbundles/internal/models"
)

// ConnectOptions defines how to reach Redis.
type ConnectOptions struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
	PingTimeout time.Duration
}

// Connect creates a client and checks it answers a PING.
func Connect(ctx context.Context, opts ConnectOptions) (*redis.Client, error) {
	if opts.PingTimeout <= 0 {
		opts.PingTimeout = 2 * time.Second
	}
	client := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: opts.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, opts.PingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", opts.Addr, err)
	}

	logger.New().WithField("addr", opts.Addr).Info("connected to redis")
	return client, nil
}

// RedisBundleCache caches bundles by vanity URL.
type RedisBundleCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisBundleCache returns a cache whose entries expire after ttl.
func NewRedisBundleCache(client redis.Cmdable, ttl time.Duration) *RedisBundleCache {
	return &RedisBundleCache{client: client, ttl: ttl}
}

// Get returns the cached bundle; ok is false on a cache miss.
func (c *RedisBundleCache) Get(ctx context.Context, vanityURL string) (*models.LinkBundle, bool, error) {
	raw, err := c.client.Get(ctx, VanityKey(vanityURL)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cached bundle: %w", err)
	}

	var bundle models.LinkBundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached bundle: %w", err)
	}
	return &bundle, true, nil
}

// Set stores the bundle and its id index in one transaction.
func (c *RedisBundleCache) Set(ctx context.Context, bundle *models.LinkBundle) error {
	raw, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("failed to encode bundle: %w", err)
	}

	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, VanityKey(bundle.VanityURL), raw, c.ttl)
		pipe.Set(ctx, IDKey(bundle.ID), bundle.VanityURL, c.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to cache bundle: %w", err)
	}
	return nil
}

// Invalidate drops every entry belonging to the bundle, including the one
// stored under a previous vanity URL.
func (c *RedisBundleCache) Invalidate(ctx context.Context, bundle *models.LinkBundle) error {
	keys := []string{VanityKey(bundle.VanityURL), IDKey(bundle.ID)}

	previous, err := c.client.Get(ctx, IDKey(bundle.ID)).Result()
	switch {
	case err == nil && previous != bundle.VanityURL:
		keys = append(keys, VanityKey(previous))
	case err != nil && !errors.Is(err, redis.Nil):
		return fmt.Errorf("failed to read cache index: %w", err)
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}
	return nil
}
