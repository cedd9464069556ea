package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vellaperfumeria/storefront/internal/domain/cart"
)

// RedisCartStore implements CartStore on Redis. This is the durable
// client-storage analogue for server-held sessions: one key per session
// under the versioned cart namespace
type RedisCartStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisCartStore creates a Redis-backed cart store and verifies the
// connection
func NewRedisCartStore(cfg RedisConfig) (*RedisCartStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCartStore{
		client:    client,
		keyPrefix: CartKeyPrefix,
		ttl:       DefaultSnapshotTTL,
	}, nil
}

// NewRedisCartStoreWithClient creates a store over an existing client.
// Useful for testing or when sharing a client across components
func NewRedisCartStoreWithClient(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisCartStore {
	if keyPrefix == "" {
		keyPrefix = CartKeyPrefix
	}
	if ttl <= 0 {
		ttl = DefaultSnapshotTTL
	}
	return &RedisCartStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

// Load implements CartStore. A missing key or an undecodable snapshot
// both yield an empty cart
func (s *RedisCartStore) Load(ctx context.Context, sessionID string) (cart.Cart, error) {
	raw, err := s.client.Get(ctx, s.keyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return cart.New(), nil
		}
		return cart.New(), fmt.Errorf("failed to load cart snapshot: %w", err)
	}

	var c cart.Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		// Corrupted snapshot: recover with an empty cart, the next
		// mutation overwrites it
		return cart.New(), nil
	}
	return c, nil
}

// Save implements CartStore
func (s *RedisCartStore) Save(ctx context.Context, sessionID string, c cart.Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize cart snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.keyPrefix+sessionID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart snapshot: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (s *RedisCartStore) Close() error {
	return s.client.Close()
}

// Ensure RedisCartStore implements CartStore
var _ CartStore = (*RedisCartStore)(nil)
