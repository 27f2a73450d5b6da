package cache

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/kleandaily/klean-daily-api/internal/config"
	"github.com/kleandaily/klean-daily-api/internal/domain"
	redis "github.com/redis/go-redis/v9"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type RedisRankingCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisRankingCache(cfg config.Redis) *RedisRankingCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return newRedisRankingCache(client, cfg.RankingTTL)
}

func newRedisRankingCache(client redis.Cmdable, ttl time.Duration) *RedisRankingCache {
	return &RedisRankingCache{client: client, ttl: ttl}
}

func (c *RedisRankingCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisRankingCache) Close() error {
	if closer, ok := c.client.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

func (c *RedisRankingCache) Get(ctx context.Context, period string) (*domain.SellerRanking, bool, error) {
	val, err := c.client.Get(ctx, rankingKey(period)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var ranking domain.SellerRanking
	if err := json.Unmarshal(val, &ranking); err != nil {
		return nil, false, err
	}
	return &ranking, true, nil
}

func (c *RedisRankingCache) Set(ctx context.Context, period string, value *domain.SellerRanking) error {
	if value == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, rankingKey(period), payload, c.ttl).Err()
}

func (c *RedisRankingCache) Delete(ctx context.Context, period string) error {
	return c.client.Del(ctx, rankingKey(period)).Err()
}
