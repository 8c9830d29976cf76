package guard

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"post-catering/common/constant"
)

// RedisStore shares guard state across replicas. IP events and blocked
// events live in sorted sets scored by unix time; duplicate keys are plain
// keys whose TTL is the duplicate window.
type RedisStore struct {
	Client *redis.Client
}

func (s *RedisStore) IPEventCounts(ctx context.Context, clientIP string, now time.Time) (int, int, error) {
	key := fmt.Sprintf(constant.AbuseIPWindowKey, hashValue(clientIP))
	hourCutoff := strconv.FormatInt(now.Add(-time.Hour).UnixNano(), 10)
	minuteCutoff := strconv.FormatInt(now.Add(-time.Minute).UnixNano(), 10)

	pipe := s.Client.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "-inf", "("+hourCutoff)
	minuteCmd := pipe.ZCount(ctx, key, minuteCutoff, "+inf")
	hourCmd := pipe.ZCard(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, err
	}
	return int(minuteCmd.Val()), int(hourCmd.Val()), nil
}

func (s *RedisStore) RecordIPEvent(ctx context.Context, clientIP string, now time.Time) error {
	key := fmt.Sprintf(constant.AbuseIPWindowKey, hashValue(clientIP))
	member := strconv.FormatInt(now.UnixNano(), 10)

	pipe := s.Client.Pipeline()
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixNano()), Member: member})
	pipe.Expire(ctx, key, stateRetention)

	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) IsDuplicate(ctx context.Context, key string, _ time.Duration, _ time.Time) (bool, error) {
	exists, err := s.Client.Exists(ctx, fmt.Sprintf(constant.AbuseDuplicateKey, hashValue(key))).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (s *RedisStore) RecordDuplicate(ctx context.Context, key string, window time.Duration, _ time.Time) error {
	if window <= 0 {
		return nil
	}
	return s.Client.Set(ctx, fmt.Sprintf(constant.AbuseDuplicateKey, hashValue(key)), 1, window).Err()
}

func (s *RedisStore) RecordBlocked(ctx context.Context, window time.Duration, now time.Time) (int, error) {
	cutoff := strconv.FormatInt(now.Add(-window).UnixNano(), 10)
	member := strconv.FormatInt(now.UnixNano(), 10)

	pipe := s.Client.Pipeline()
	pipe.ZAdd(ctx, constant.AbuseBlockedKey, redis.Z{Score: float64(now.UnixNano()), Member: member})
	pipe.ZRemRangeByScore(ctx, constant.AbuseBlockedKey, "-inf", "("+cutoff)
	countCmd := pipe.ZCard(ctx, constant.AbuseBlockedKey)
	pipe.Expire(ctx, constant.AbuseBlockedKey, time.Hour)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return int(countCmd.Val()), nil
}
