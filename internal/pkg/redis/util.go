package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// The helpers tolerate a nil client: cache reads miss and cache writes become
// no-ops, so code paths stay usable when redis is not configured (tests).

// SetWithExpiration 设置键值对并设置过期时间
func SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if Rdb == nil {
		return nil
	}
	return Rdb.Set(ctx, key, value, expiration).Err()
}

// GetValue 获取字符串类型的值
func GetValue(ctx context.Context, key string) (string, error) {
	if Rdb == nil {
		return "", nil
	}
	value, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// GetInt64 获取整数值，缓存未命中返回 redis.Nil
func GetInt64(ctx context.Context, key string) (int64, error) {
	if Rdb == nil {
		return 0, redis.Nil
	}
	return Rdb.Get(ctx, key).Int64()
}

// DeleteKey 删除键
func DeleteKey(ctx context.Context, keys ...string) error {
	if Rdb == nil || len(keys) == 0 {
		return nil
	}
	return Rdb.Del(ctx, keys...).Err()
}

// SAdd 向集合添加成员
func SAdd(ctx context.Context, key string, members ...interface{}) error {
	if Rdb == nil {
		return nil
	}
	return Rdb.SAdd(ctx, key, members...).Err()
}

// GetSet 获取集合
func GetSet(ctx context.Context, key string) ([]string, error) {
	if Rdb == nil {
		return nil, nil
	}
	value, err := Rdb.SMembers(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Rename 重命名键，源键不存在时返回错误
func Rename(ctx context.Context, key, newKey string) error {
	if Rdb == nil {
		return redis.Nil
	}
	return Rdb.Rename(ctx, key, newKey).Err()
}
