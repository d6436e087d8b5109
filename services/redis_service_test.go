package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestGetFromRedisMiss(t *testing.T) {
	rdb := newTestRedis(t)

	var out []string
	if err := GetFromRedis(context.Background(), rdb, "items:all", &out); err != ErrCacheMiss {
		t.Fatalf("err = %v, muốn ErrCacheMiss", err)
	}
}

func TestGetFromRedisCachedEmptyListIsHit(t *testing.T) {
	// Item chưa có booking nào vẫn phải được cache: danh sách rỗng đã lưu là
	// cache hit, không được rơi về DB mỗi request.
	rdb := newTestRedis(t)
	ctx := context.Background()

	if err := SetToRedis(ctx, rdb, "items:1:bookings", []string{}, time.Minute); err != nil {
		t.Fatalf("SetToRedis: %v", err)
	}

	var out []string
	if err := GetFromRedis(ctx, rdb, "items:1:bookings", &out); err != nil {
		t.Fatalf("GetFromRedis = %v, muốn nil", err)
	}
	if len(out) != 0 {
		t.Errorf("out = %v, muốn danh sách rỗng", out)
	}
}

func TestRedisRoundTrip(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()

	want := []string{"2024-03-10", "2024-03-11"}
	if err := SetToRedis(ctx, rdb, "items:2:bookings", want, time.Minute); err != nil {
		t.Fatalf("SetToRedis: %v", err)
	}

	var got []string
	if err := GetFromRedis(ctx, rdb, "items:2:bookings", &got); err != nil {
		t.Fatalf("GetFromRedis: %v", err)
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got = %v, muốn %v", got, want)
	}
}

func TestDeleteManyFromRedis(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()

	for _, key := range []string{"items:all", "bookings:user:a@example.com"} {
		if err := SetToRedis(ctx, rdb, key, []string{"x"}, time.Minute); err != nil {
			t.Fatalf("SetToRedis(%s): %v", key, err)
		}
	}

	if err := DeleteManyFromRedis(ctx, rdb, "items:all", "bookings:user:a@example.com"); err != nil {
		t.Fatalf("DeleteManyFromRedis: %v", err)
	}

	var out []string
	if err := GetFromRedis(ctx, rdb, "items:all", &out); err != ErrCacheMiss {
		t.Errorf("sau khi xóa, err = %v, muốn ErrCacheMiss", err)
	}
}
