package credstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/localspot/directory-gateway/internal/core/domain"
)

const (
	defaultPrefix = "credentials:"
	tokenKey      = "token"
	userKey       = "user"
)

// RedisStore keeps the pair under two keys: <prefix>token holds the raw
// string, <prefix>user the user JSON.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a RedisStore with the default key prefix.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: defaultPrefix}
}

// NewRedisStoreWithPrefix creates a RedisStore under a custom key prefix.
func NewRedisStoreWithPrefix(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) Load(ctx context.Context) (*domain.Credentials, error) {
	vals, err := r.client.MGet(ctx, r.prefix+tokenKey, r.prefix+userKey).Result()
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}

	token, tokenOK := vals[0].(string)
	rawUser, userOK := vals[1].(string)
	if !tokenOK && !userOK {
		return nil, nil
	}

	var user domain.User
	if !tokenOK || !userOK || json.Unmarshal([]byte(rawUser), &user) != nil {
		// One key without the other, or an unparsable user record: wipe
		// both and start anonymous.
		_ = r.Clear(ctx)
		return nil, nil
	}

	creds := &domain.Credentials{Token: token, User: &user}
	if !creds.Complete() {
		_ = r.Clear(ctx)
		return nil, nil
	}
	return creds, nil
}

func (r *RedisStore) Save(ctx context.Context, token string, user *domain.User) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	// Both keys land in one transaction so no reader sees half a pair.
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.prefix+tokenKey, token, 0)
	pipe.Set(ctx, r.prefix+userKey, rawUser, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.prefix+tokenKey, r.prefix+userKey).Err(); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}
