package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain "weblarek/internal/domain/order"
	"weblarek/internal/domain/product"
	"weblarek/internal/domain/repository"
	"weblarek/pkg/logger"
)

// Publisher hands accepted orders to the order event stream.
type Publisher interface {
	PublishOrder(ctx context.Context, placed *domain.Placed) error
}

type Service struct {
	products  repository.ProductRepository
	repo      repository.OrderRepository
	publisher Publisher
	log       logger.Logger
}

// NewService wires the order use cases. With a nil publisher accepted orders
// are saved directly; otherwise the stream consumer saves them.
func NewService(products repository.ProductRepository, repo repository.OrderRepository, publisher Publisher, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		products:  products,
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

// PlaceOrder checks o against the catalog and the checkout rules and accepts it.
func (s *Service) PlaceOrder(ctx context.Context, o domain.Order) (*domain.Result, error) {
	total, err := s.priceItems(ctx, o.Items)
	if err != nil {
		return nil, err
	}
	if !total.Equal(o.Total) {
		return nil, fmt.Errorf("%w: expected %s, got %s", domain.ErrInvalidTotal, total, o.Total)
	}
	if !domain.ValidatePayment(o.Payment) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPayment, o.Payment)
	}
	if errs := domain.Validate(o); !errs.Valid() {
		return nil, &domain.ValidationError{Errors: errs}
	}
	o.Phone = domain.NormalizePhone(o.Phone)

	placed, err := domain.NewPlaced(uuid.NewString(), o)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrder(ctx, placed); err != nil {
			return nil, fmt.Errorf("publish order: %w", err)
		}
	} else if err := s.repo.Save(ctx, placed); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	s.log.WithContext(ctx).Info("order accepted",
		logger.String("order_id", placed.ID),
		logger.String("total", total.String()),
		logger.Int("items", len(o.Items)),
	)
	return &domain.Result{ID: placed.ID, Total: total}, nil
}

// GetOrder returns a stored order or nil when the id is unknown.
func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Placed, error) {
	placed, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	return placed, nil
}

// HandleConsumedOrder stores an order read back from the event stream.
func (s *Service) HandleConsumedOrder(ctx context.Context, placed *domain.Placed) error {
	if placed == nil {
		return fmt.Errorf("order is nil")
	}
	if err := s.repo.Save(ctx, placed); err != nil {
		return fmt.Errorf("save order: %w", err)
	}
	return nil
}

func (s *Service) priceItems(ctx context.Context, ids []string) (decimal.Decimal, error) {
	if len(ids) == 0 {
		return decimal.Zero, domain.ErrEmptyOrder
	}

	total := decimal.Zero
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrDuplicateItem, id)
		}
		seen[id] = struct{}{}

		p, err := s.products.FindByID(ctx, id)
		if errors.Is(err, product.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrUnknownItem, id)
		}
		if err != nil {
			return decimal.Zero, fmt.Errorf("find product %s: %w", id, err)
		}
		if !p.Purchasable() {
			return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrPricelessItem, id)
		}
		total = total.Add(p.Price.Value())
	}
	return total, nil
}
