package codes

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "gophauth:code:"

const (
	fieldCode     = "code"
	fieldIssuedAt = "issued_at"
)

// RedisRepository keeps one hash per identifier. Both fields are written by
// a single HSET, so readers never see a code paired with another issue time.
type RedisRepository struct {
	redis *redis.Client
}

func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{redis: client}
}

func (r *RedisRepository) key(identifier string) string {
	return redisKeyPrefix + identifier
}

func (r *RedisRepository) Upsert(ctx context.Context, identifier string, code uint32, issuedAt time.Time) error {
	err := r.redis.HSet(ctx, r.key(identifier),
		fieldCode, strconv.FormatUint(uint64(code), 10),
		fieldIssuedAt, strconv.FormatInt(issuedAt.UTC().UnixNano(), 10),
	).Err()
	if err != nil {
		return fmt.Errorf("redis error: %w", err)
	}
	return nil
}

func (r *RedisRepository) GetLatest(ctx context.Context, identifier string) (*models.VerificationCode, error) {
	values, err := r.redis.HGetAll(ctx, r.key(identifier)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}
	if len(values) == 0 {
		return nil, nil
	}

	code, err := strconv.ParseUint(values[fieldCode], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("decode code for %s: %w", identifier, err)
	}
	issued, err := strconv.ParseInt(values[fieldIssuedAt], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("decode issued_at for %s: %w", identifier, err)
	}

	return &models.VerificationCode{
		Identifier: identifier,
		Code:       uint32(code),
		IssuedAt:   time.Unix(0, issued).UTC(),
	}, nil
}
