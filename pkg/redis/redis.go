package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"classannouncement/backend/config"
)

// Client Redis 客户端封装
// 当前用于登录令牌缓存；后续可扩展其他缓存场景
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── 登录令牌缓存 ──
// 缓存 key → user_id 映射，减少认证中间件对数据库的往返。
// 令牌本身持久有效，TTL 仅控制缓存新鲜度。

const tokenCachePrefix = "auth:token:"

// CacheToken 写入令牌缓存
func (c *Client) CacheToken(ctx context.Context, key string, userID int64, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.rdb.Set(ctx, tokenCachePrefix+key, strconv.FormatInt(userID, 10), ttl).Err()
}

// LookupToken 查询令牌缓存，未命中时返回 (0, false, nil)
func (c *Client) LookupToken(ctx context.Context, key string) (int64, bool, error) {
	val, err := c.rdb.Get(ctx, tokenCachePrefix+key).Result()
	if err == goredis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("令牌缓存值无效: %w", err)
	}
	return userID, true, nil
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
