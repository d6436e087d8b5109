package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Mọi key cache đều nằm dưới namespace này để tránh đụng key của app khác
// dùng chung Redis.
const cacheKeyPrefix = "rentmate:"

// ErrCacheMiss báo key không có trong cache. Danh sách rỗng đã cache vẫn là
// cache hit, caller không được dùng độ dài kết quả để đoán hit/miss.
var ErrCacheMiss = errors.New("cache miss")

// Hàm lấy data từ Redis
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) error {
	cachedData, err := rdb.Get(ctx, cacheKeyPrefix+key).Result()
	if err == redis.Nil {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}

	// Parse JSON thành object
	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return err
	}
	return nil
}

// Hàm lưu dữ liệu vào Redis
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := rdb.Set(ctx, cacheKeyPrefix+key, dataJSON, ttl).Err(); err != nil {
		return err
	}
	return nil
}

// Hàm xóa cache Redis
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	if err := rdb.Del(ctx, cacheKeyPrefix+key).Err(); err != nil {
		return err
	}
	return nil
}

// DeleteManyFromRedis xóa nhiều key cache trong một lệnh
func DeleteManyFromRedis(ctx context.Context, rdb *redis.Client, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, 0, len(keys))
	for _, key := range keys {
		prefixed = append(prefixed, cacheKeyPrefix+key)
	}
	return rdb.Del(ctx, prefixed...).Err()
}
