package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/mverdi/wallplan/internal/model"
)

// redisKeyPrefix namespaces all project keys in a shared Redis instance.
const redisKeyPrefix = "wallplan:project:"

// RedisStore persists projects in Redis, one JSON value per key.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis at addr and verifies the connection.
func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
	}
	return &RedisStore{client: client}, nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Load returns the stored project or a default for an unknown key.
func (s *RedisStore) Load(ctx context.Context, key string) (model.Project, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return model.DefaultProject(key), nil
	}
	if err != nil {
		return model.Project{}, fmt.Errorf("load project: %w", err)
	}
	var p model.Project
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return model.Project{}, fmt.Errorf("decode project: %w", err)
	}
	return p, nil
}

// Save stores the project for key with no expiration.
func (s *RedisStore) Save(ctx context.Context, key string, p model.Project) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("save project: %w", err)
	}
	return nil
}

// List returns all saved keys in sorted order.
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), redisKeyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	sort.Strings(keys)
	return keys, nil
}

// Delete removes a project. Deleting an absent key is a no-op.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
