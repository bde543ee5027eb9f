package database

import (
	"context"
	"fmt"
	"log"

	"thanawya_backend/internal/config"

	"github.com/go-redis/redis/v8"
)

// InitRedis 连接Redis，用作礼拜时刻的当日缓存。
// 本地单用户部署大多没有Redis，连不上不算致命错误，调用方以nil降级
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	log.Println("Redis connection established")
	return rdb, nil
}
