package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/shop-sync/internal/core/domain"
	"github.com/rl1809/shop-sync/internal/port"
)

const stockKeyPrefix = "stock:"

// reserveStockScript atomically takes quantity units from a stock counter.
// Returns 1 on success, 0 when the counter is too low, -1 when no counter
// exists for the key.
var reserveStockScript = redis.NewScript(`
local key = KEYS[1]
local quantity = tonumber(ARGV[1])

local current = redis.call('GET', key)
if not current then
	return -1
end

current = tonumber(current)
if current >= quantity then
	redis.call('DECRBY', key, quantity)
	return 1
end

return 0
`)

// RedisAdapter fronts another ServerRepository with atomic stock counters, so
// concurrent cart inserts fail fast before touching the backing store. When a
// delegated call fails after a reservation, the reserved units are returned.
type RedisAdapter struct {
	client *redis.Client
	next   port.ServerRepository
}

func NewRedisAdapter(client *redis.Client, next port.ServerRepository) *RedisAdapter {
	return &RedisAdapter{client: client, next: next}
}

func (r *RedisAdapter) ListInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	return r.next.ListInventory(ctx)
}

func (r *RedisAdapter) ListCart(ctx context.Context) ([]domain.CartItem, error) {
	return r.next.ListCart(ctx)
}

func (r *RedisAdapter) InsertCartEntry(ctx context.Context, item domain.CartItem) (domain.CartItem, error) {
	reserved, err := r.reserve(ctx, item.ID, item.Amount)
	if err != nil {
		return domain.CartItem{}, err
	}

	entry, err := r.next.InsertCartEntry(ctx, item)
	if err != nil {
		if reserved {
			r.release(ctx, item.ID, item.Amount)
		}
		return domain.CartItem{}, err
	}
	return entry, nil
}

func (r *RedisAdapter) UpdateCartAmount(ctx context.Context, id, amount int) (domain.CartItem, error) {
	current, ok, err := r.currentAmount(ctx, id)
	if err != nil {
		return domain.CartItem{}, err
	}
	if !ok {
		// Let the backing store produce the not-found error.
		return r.next.UpdateCartAmount(ctx, id, amount)
	}

	delta := amount - current
	reserved := false
	if delta > 0 {
		if reserved, err = r.reserve(ctx, id, delta); err != nil {
			return domain.CartItem{}, err
		}
	}

	entry, err := r.next.UpdateCartAmount(ctx, id, amount)
	if err != nil {
		if reserved {
			r.release(ctx, id, delta)
		}
		return domain.CartItem{}, err
	}
	if delta < 0 {
		r.release(ctx, id, -delta)
	}
	return entry, nil
}

func (r *RedisAdapter) DeleteCartEntry(ctx context.Context, id int) error {
	current, ok, err := r.currentAmount(ctx, id)
	if err != nil {
		return err
	}

	if err := r.next.DeleteCartEntry(ctx, id); err != nil {
		return err
	}
	if ok {
		r.release(ctx, id, current)
	}
	return nil
}

func (r *RedisAdapter) ClearCart(ctx context.Context) error {
	cart, err := r.next.ListCart(ctx)
	if err != nil {
		return err
	}

	if err := r.next.ClearCart(ctx); err != nil {
		return err
	}
	for _, it := range cart {
		r.release(ctx, it.ID, it.Amount)
	}
	return nil
}

func (r *RedisAdapter) SeedInventory(ctx context.Context, items []domain.InventoryItem) error {
	if err := r.next.SeedInventory(ctx, items); err != nil {
		return err
	}
	for _, it := range items {
		if err := r.client.Set(ctx, stockKey(it.ID), it.Count, 0).Err(); err != nil {
			return fmt.Errorf("set stock counter %d: %w", it.ID, err)
		}
	}
	return nil
}

// reserve returns (true, nil) when units were taken from the counter and
// (false, nil) when no counter exists for the id.
func (r *RedisAdapter) reserve(ctx context.Context, id, quantity int) (bool, error) {
	result, err := reserveStockScript.Run(ctx, r.client, []string{stockKey(id)}, quantity).Int()
	if err != nil {
		return false, fmt.Errorf("reserve stock: %w", err)
	}
	switch result {
	case 1:
		return true, nil
	case -1:
		return false, nil
	default:
		return false, fmt.Errorf("stock counter %d: %w", id, port.ErrInsufficientStock)
	}
}

func (r *RedisAdapter) release(ctx context.Context, id, quantity int) {
	// Counter drift self-heals on the next seed; a failed release is not a
	// reason to fail the already-committed mutation.
	r.client.IncrBy(ctx, stockKey(id), int64(quantity))
}

func (r *RedisAdapter) currentAmount(ctx context.Context, id int) (int, bool, error) {
	cart, err := r.next.ListCart(ctx)
	if err != nil {
		return 0, false, err
	}
	for _, it := range cart {
		if it.ID == id {
			return it.Amount, true, nil
		}
	}
	return 0, false, nil
}

func stockKey(id int) string {
	return stockKeyPrefix + fmt.Sprint(id)
}

var _ port.ServerRepository = (*RedisAdapter)(nil)
