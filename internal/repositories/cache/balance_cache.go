package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/pix_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/pix_wallet/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	keyPrefix        = "pix-wallet:balance:"
	generationPrefix = "pix-wallet:balance-gen:"
)

// fillScript writes KEYS[1] only while KEYS[2] still holds the generation the
// reader saw. A missing generation key counts as 0.
var fillScript = redis.NewScript(`
local gen = redis.call('GET', KEYS[2]) or '0'
if gen ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

// RedisBalanceCache stores live balances as decimal strings with a TTL.
// Generation keys carry no TTL.
type RedisBalanceCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisBalanceCache creates a cache on top of an open client.
func NewRedisBalanceCache(client redis.Cmdable, ttl time.Duration) *RedisBalanceCache {
	return &RedisBalanceCache{client: client, ttl: ttl}
}

var _ portsrepo.BalanceCache = (*RedisBalanceCache)(nil)

// Both keys of a wallet share a hash tag so the fill script stays on one cluster slot.
func balanceKey(walletID string) string {
	return keyPrefix + "{" + walletID + "}"
}

func generationKey(walletID string) string {
	return generationPrefix + "{" + walletID + "}"
}

// Get reports a miss as (zero, false, nil).
func (c *RedisBalanceCache) Get(ctx context.Context, walletID string) (domain.Money, bool, error) {
	val, err := c.client.Get(ctx, balanceKey(walletID)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.ZeroMoney(), false, nil
	}
	if err != nil {
		return domain.ZeroMoney(), false, fmt.Errorf("balance cache get %s: %w", walletID, err)
	}

	d, err := decimal.NewFromString(val)
	if err != nil {
		return domain.ZeroMoney(), false, fmt.Errorf("balance cache holds malformed value for %s: %w", walletID, err)
	}
	m, err := domain.NewMoney(d)
	if err != nil {
		return domain.ZeroMoney(), false, fmt.Errorf("balance cache holds invalid value for %s: %w", walletID, err)
	}
	return m, true, nil
}

func (c *RedisBalanceCache) Generation(ctx context.Context, walletID string) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(walletID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("balance cache generation %s: %w", walletID, err)
	}
	return gen, nil
}

func (c *RedisBalanceCache) Fill(ctx context.Context, walletID string, generation int64, balance domain.Money) error {
	err := fillScript.Run(ctx, c.client,
		[]string{balanceKey(walletID), generationKey(walletID)},
		strconv.FormatInt(generation, 10), balance.String(), strconv.FormatInt(c.ttl.Milliseconds(), 10),
	).Err()
	if err != nil {
		return fmt.Errorf("balance cache fill %s: %w", walletID, err)
	}
	return nil
}

// Invalidate bumps the generation before deleting, so a fill that read the
// row before the write can no longer land.
func (c *RedisBalanceCache) Invalidate(ctx context.Context, walletIDs ...string) error {
	for _, id := range walletIDs {
		if err := c.client.Incr(ctx, generationKey(id)).Err(); err != nil {
			return fmt.Errorf("balance cache invalidate %s: %w", id, err)
		}
		if err := c.client.Del(ctx, balanceKey(id)).Err(); err != nil {
			return fmt.Errorf("balance cache invalidate %s: %w", id, err)
		}
	}
	return nil
}

// NoopBalanceCache is used when no Redis is configured. Every lookup misses.
type NoopBalanceCache struct{}

var _ portsrepo.BalanceCache = NoopBalanceCache{}

func (NoopBalanceCache) Get(context.Context, string) (domain.Money, bool, error) {
	return domain.ZeroMoney(), false, nil
}

func (NoopBalanceCache) Generation(context.Context, string) (int64, error) { return 0, nil }

func (NoopBalanceCache) Fill(context.Context, string, int64, domain.Money) error { return nil }

func (NoopBalanceCache) Invalidate(context.Context, ...string) error { return nil }
