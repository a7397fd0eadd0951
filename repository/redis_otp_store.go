package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/trustkeyper/Backend/entity"
	"github.com/trustkeyper/Backend/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// RedisOTPStore stores OTP records in Redis with the expiry carried by the
// key TTL, so expired codes disappear without a sweep.
type RedisOTPStore struct {
	client *redis.Client
	ctx    context.Context
	logger *logger.Logger
}

// NewRedisOTPStore creates a Redis-backed OTP store
func NewRedisOTPStore(client *redis.Client, logger *logger.Logger) *RedisOTPStore {
	return &RedisOTPStore{
		client: client,
		ctx:    context.Background(),
		logger: logger,
	}
}

func otpKey(identifier string) string {
	return fmt.Sprintf("otp:%s", identifier)
}

// Issue stores a code for the identifier with a TTL, overwriting any
// existing record
func (r *RedisOTPStore) Issue(identifier, code string, expiresAt time.Time) error {
	rec := entity.OTP{
		Identifier: identifier,
		Code:       code,
		ExpiresAt:  expiresAt,
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP record: %w", err)
	}

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return fmt.Errorf("expiry %s is already in the past", expiresAt.Format(time.RFC3339))
	}

	if err := r.client.Set(r.ctx, otpKey(identifier), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	r.logger.Debugw("OTP stored", "identifier", identifier, "ttl_seconds", int(ttl.Seconds()))
	return nil
}

// Verify checks the candidate code and consumes the record on success
func (r *RedisOTPStore) Verify(identifier, code string) (bool, error) {
	data, err := r.client.Get(r.ctx, otpKey(identifier)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get OTP: %w", err)
	}

	var rec entity.OTP
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return false, fmt.Errorf("failed to unmarshal OTP record: %w", err)
	}

	if rec.Code != code || rec.Expired(time.Now()) {
		return false, nil
	}

	if err := r.client.Del(r.ctx, otpKey(identifier)).Err(); err != nil {
		return false, fmt.Errorf("failed to consume OTP: %w", err)
	}

	return true, nil
}

// Revoke removes the record for an identifier, if any
func (r *RedisOTPStore) Revoke(identifier string) error {
	if err := r.client.Del(r.ctx, otpKey(identifier)).Err(); err != nil {
		return fmt.Errorf("failed to revoke OTP: %w", err)
	}
	return nil
}

// DeleteExpired is a no-op: Redis evicts expired keys via TTL
func (r *RedisOTPStore) DeleteExpired() error {
	return nil
}
