package redis

import (
	"context"
	"errors"
	"time"

	"github.com/JMURv/attendance-guard/internal/cache"
	"github.com/JMURv/attendance-guard/internal/config"
	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type Redis struct {
	cli *redis.Client
}

func New(conf config.Config) *Redis {
	cli := redis.NewClient(
		&redis.Options{
			Addr:     conf.Redis.Addr,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		},
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := cli.Ping(ctx).Result(); err != nil {
		zap.L().Fatal("failed to connect to Redis", zap.String("addr", conf.Redis.Addr), zap.Error(err))
	}

	return &Redis{cli: cli}
}

func NewWithClient(cli *redis.Client) *Redis {
	return &Redis{cli: cli}
}

func (r *Redis) Close() error {
	return r.cli.Close()
}

func (r *Redis) GetToStruct(ctx context.Context, key string, dest any) error {
	const op = "cache.GetToStruct.redis"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	val, err := r.cli.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return cache.ErrNotFoundInCache
		}

		zap.L().Debug("failed to get from cache", zap.String("op", op), zap.String("key", key), zap.Error(err))
		return err
	}

	if err = json.Unmarshal(val, dest); err != nil {
		zap.L().Debug("failed to unmarshal cached value", zap.String("op", op), zap.String("key", key), zap.Error(err))
		return err
	}

	return nil
}

func (r *Redis) Set(ctx context.Context, t time.Duration, key string, val any) {
	const op = "cache.Set.redis"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := r.cli.Set(ctx, key, val, t).Err(); err != nil {
		zap.L().Debug("failed to set to cache", zap.String("op", op), zap.String("key", key), zap.Error(err))
	}
}

func (r *Redis) Delete(ctx context.Context, key string) {
	const op = "cache.Delete.redis"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := r.cli.Del(ctx, key).Err(); err != nil {
		zap.L().Debug("failed to delete from cache", zap.String("op", op), zap.String("key", key), zap.Error(err))
	}
}

func (r *Redis) InvalidateKeysByPattern(ctx context.Context, pattern string) {
	const op = "cache.InvalidateKeysByPattern.redis"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var cursor uint64
	for {
		keys, next, err := r.cli.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			zap.L().Debug("failed to scan keys", zap.String("op", op), zap.String("pattern", pattern), zap.Error(err))
			return
		}

		if len(keys) > 0 {
			if err = r.cli.Del(ctx, keys...).Err(); err != nil {
				zap.L().Debug("failed to delete keys", zap.String("op", op), zap.String("pattern", pattern), zap.Error(err))
			}
		}

		cursor = next
		if cursor == 0 {
			return
		}
	}
}
