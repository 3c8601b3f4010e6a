package orders

import (
	"context"
	"fmt"

	"github.com/Ijilanmax/printing-shop-tracker/internal/tracker"
	pkgerrors "github.com/Ijilanmax/printing-shop-tracker/pkg/errors"
	"github.com/Ijilanmax/printing-shop-tracker/pkg/logger"
	"github.com/Ijilanmax/printing-shop-tracker/pkg/metrics"
)

// CreateOrderInput carries the fields a caller supplies for a new order.
type CreateOrderInput struct {
	CustomerName string
	Phone        string
	Details      string
}

// Service owns the order book and keeps the durable archive in sync after
// every mutation.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (tracker.Order, error)
	Get(ctx context.Context, id string) (tracker.Order, error)
	SetCompleted(ctx context.Context, id string, completed bool) (tracker.Order, error)
	SetPickedUp(ctx context.Context, id string, pickedUp bool) (tracker.Order, error)
	Remove(ctx context.Context, id string) bool
	List(ctx context.Context, filter tracker.Filter, query string) []tracker.Order
	Summary(ctx context.Context) tracker.Summary
	Customer(ctx context.Context, phone string) (tracker.Customer, error)
	Analytics(ctx context.Context) tracker.AnalyticsSnapshot
}

type service struct {
	store   *tracker.Store
	archive Archive
	logg    *logger.Logger
	metrics *metrics.TrackerMetrics
}

// NewService hydrates the order book from the archive and returns the service.
func NewService(ctx context.Context, archive Archive, logg *logger.Logger, m *metrics.TrackerMetrics) (Service, error) {
	if archive == nil {
		return nil, fmt.Errorf("order archive required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}

	seed, err := archive.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading order archive: %w", err)
	}

	s := &service{
		store:   tracker.NewStore(seed),
		archive: archive,
		logg:    logg,
		metrics: m,
	}
	s.metrics.SetOrderCount(s.store.Len())
	logg.Info(logg.WithField(ctx, "orders", len(seed)), "order book hydrated from archive")
	return s, nil
}

func (s *service) Create(ctx context.Context, input CreateOrderInput) (tracker.Order, error) {
	order, err := s.store.Create(tracker.CreateOrder{
		CustomerName: input.CustomerName,
		Phone:        input.Phone,
		Details:      input.Details,
	})
	if err != nil {
		return tracker.Order{}, err
	}
	s.afterMutation(ctx, "create")
	return order, nil
}

func (s *service) Get(ctx context.Context, id string) (tracker.Order, error) {
	return s.store.Get(id)
}

func (s *service) SetCompleted(ctx context.Context, id string, completed bool) (tracker.Order, error) {
	order, err := s.store.SetCompleted(id, completed)
	if err != nil {
		return tracker.Order{}, err
	}
	s.afterMutation(ctx, "set_completed")
	return order, nil
}

func (s *service) SetPickedUp(ctx context.Context, id string, pickedUp bool) (tracker.Order, error) {
	order, err := s.store.SetPickedUp(id, pickedUp)
	if err != nil {
		return tracker.Order{}, err
	}
	s.afterMutation(ctx, "set_picked_up")
	return order, nil
}

func (s *service) Remove(ctx context.Context, id string) bool {
	removed := s.store.Remove(id)
	if removed {
		s.afterMutation(ctx, "remove")
	}
	return removed
}

func (s *service) List(ctx context.Context, filter tracker.Filter, query string) []tracker.Order {
	return s.store.List(filter, query)
}

func (s *service) Summary(ctx context.Context) tracker.Summary {
	return s.store.Summary()
}

func (s *service) Customer(ctx context.Context, phone string) (tracker.Customer, error) {
	customer, ok := tracker.LookupCustomer(s.store.Snapshot(), phone)
	if !ok {
		return tracker.Customer{}, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found").
			WithDetails(map[string]any{"phone": phone})
	}
	return customer, nil
}

func (s *service) Analytics(ctx context.Context) tracker.AnalyticsSnapshot {
	return tracker.Aggregate(s.store.Snapshot())
}

// afterMutation mirrors the book to the archive and refreshes metrics. A
// failed mirror write is logged and retried implicitly by the next mutation,
// since every write carries the full book.
func (s *service) afterMutation(ctx context.Context, op string) {
	s.metrics.IncMutation(op)
	s.metrics.SetOrderCount(s.store.Len())

	if err := s.archive.Replace(ctx, s.store.Snapshot()); err != nil {
		s.logg.Error(s.logg.WithField(ctx, "op", op), "archiving order book failed", err)
	}
}
