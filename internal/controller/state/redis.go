package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore хранит черновики в Redis, чтобы они переживали перезапуск бота
type RedisStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisStore{rdb: rdb, ttl: ttl, prefix: "draft"}
}

func (s *RedisStore) key(telegramID int64) string {
	return s.prefix + ":" + strconv.FormatInt(telegramID, 10)
}

func (s *RedisStore) submitKey(telegramID int64) string {
	return s.key(telegramID) + ":submit"
}

// Get читает черновик, nil если ключа нет
func (s *RedisStore) Get(ctx context.Context, telegramID int64) (*Draft, error) {
	raw, err := s.rdb.Get(ctx, s.key(telegramID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get draft: %w", err)
	}

	var draft Draft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &draft, nil
}

// Save записывает черновик и продлевает TTL
func (s *RedisStore) Save(ctx context.Context, telegramID int64, draft *Draft) error {
	cp := *draft
	cp.UpdatedAt = time.Now()

	raw, err := json.Marshal(&cp)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}

	if err := s.rdb.Set(ctx, s.key(telegramID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Clear удаляет черновик
func (s *RedisStore) Clear(ctx context.Context, telegramID int64) error {
	if err := s.rdb.Del(ctx, s.key(telegramID)).Err(); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}

// AcquireSubmit занимает право на отправку через SET NX с TTL.
// Ключ истекает сам, если процесс упал посреди отправки.
func (s *RedisStore) AcquireSubmit(ctx context.Context, telegramID int64, ttl time.Duration) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, s.submitKey(telegramID), time.Now().Unix(), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire submit guard: %w", err)
	}
	return ok, nil
}

// ReleaseSubmit освобождает право на отправку
func (s *RedisStore) ReleaseSubmit(ctx context.Context, telegramID int64) error {
	if err := s.rdb.Del(ctx, s.submitKey(telegramID)).Err(); err != nil {
		return fmt.Errorf("release submit guard: %w", err)
	}
	return nil
}
