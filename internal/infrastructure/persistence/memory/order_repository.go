package memory

import (
	"context"
	"fmt"
	"sync"

	"weblarek/internal/domain/order"
)

// OrderRepository keeps accepted orders for the lifetime of the process.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]order.Placed
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]order.Placed)}
}

func (r *OrderRepository) Save(_ context.Context, placed *order.Placed) error {
	if placed == nil {
		return fmt.Errorf("order is nil")
	}
	stored := *placed
	stored.Order = placed.Order.Clone()

	r.mu.Lock()
	r.orders[placed.ID] = stored
	r.mu.Unlock()
	return nil
}

func (r *OrderRepository) FindByID(_ context.Context, id string) (*order.Placed, error) {
	r.mu.RLock()
	stored, ok := r.orders[id]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	stored.Order = stored.Order.Clone()
	return &stored, nil
}

func (r *OrderRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
