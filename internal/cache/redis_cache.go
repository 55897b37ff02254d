package cache

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	errorvalues "github.com/limbo/studystreak/internal/error_values"
	"github.com/limbo/studystreak/pkg/cleanup"
)

type RedisCfg struct {
	Address  string
	Password string
	DB       int
}

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(cfg RedisCfg) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("error while pinging redis for tracking cache: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return &RedisCache{
		client: client,
	}
}

func NewRedisCacheWithClient(client *redis.Client) *RedisCache {
	return &RedisCache{
		client: client,
	}
}

func (rc *RedisCache) SetIfAbsent(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	ok, err := rc.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, errors.Join(errorvalues.ErrCacheUnavailable, errors.New("cache setnx error: "+err.Error()))
	}
	return ok, nil
}

func (rc *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := rc.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errors.Join(errorvalues.ErrCacheUnavailable, errors.New("cache get error: "+err.Error()))
	}
	return b, true, nil
}

func (rc *RedisCache) GetDel(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := rc.client.GetDel(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errors.Join(errorvalues.ErrCacheUnavailable, errors.New("cache getdel error: "+err.Error()))
	}
	return b, true, nil
}

func (rc *RedisCache) Delete(ctx context.Context, key string) error {
	if err := rc.client.Del(ctx, key).Err(); err != nil {
		return errors.Join(errorvalues.ErrCacheUnavailable, errors.New("cache del error: "+err.Error()))
	}
	return nil
}
