package tracker

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/Ijilanmax/printing-shop-tracker/pkg/errors"
)

// CreateOrder carries the fields a caller supplies for a new order.
type CreateOrder struct {
	CustomerName string
	Phone        string
	Details      string
}

// Summary holds the order book counters.
type Summary struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Completed int `json:"completed"`
	OnShelf   int `json:"onShelf"`
	PickedUp  int `json:"pickedUp"`
}

// Store is the in-memory order book. Orders are kept most recent first; every
// mutation happens under the lock and callers only ever see copies.
type Store struct {
	mu     sync.Mutex
	orders []*Order

	now   func() time.Time
	newID func() string
}

// NewStore builds a store seeded with existing orders, newest first.
func NewStore(orders []Order) *Store {
	s := &Store{
		now:   time.Now,
		newID: uuid.NewString,
	}
	s.orders = make([]*Order, 0, len(orders))
	for i := range orders {
		o := orders[i]
		s.orders = append(s.orders, &o)
	}
	return s
}

// Create validates the input and prepends a new order to the book.
func (s *Store) Create(input CreateOrder) (Order, error) {
	name := strings.TrimSpace(input.CustomerName)
	phone := strings.TrimSpace(input.Phone)
	details := strings.TrimSpace(input.Details)

	if phone == "" {
		return Order{}, pkgerrors.New(pkgerrors.CodeValidation, "customer phone is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order := &Order{
		ID:           s.newID(),
		CustomerName: name,
		Phone:        phone,
		Details:      details,
		DateReceived: s.now(),
	}
	s.orders = append([]*Order{order}, s.orders...)
	return *order, nil
}

// SetCompleted toggles the completion flag on an order. Un-completing an order
// also clears its pickup state.
func (s *Store) SetCompleted(id string, completed bool) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.find(id)
	if order == nil {
		return Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found").
			WithDetails(map[string]any{"orderId": id})
	}
	order.setCompleted(completed, s.now())
	return *order, nil
}

// SetPickedUp toggles the pickup flag on an order. Requests to pick up an
// incomplete order leave it unchanged.
func (s *Store) SetPickedUp(id string, pickedUp bool) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.find(id)
	if order == nil {
		return Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found").
			WithDetails(map[string]any{"orderId": id})
	}
	order.setPickedUp(pickedUp, s.now())
	return *order, nil
}

// Remove deletes an order from the book. Removing an unknown ID is a no-op;
// the bool reports whether anything was deleted.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, order := range s.orders {
		if order.ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns a single order by ID.
func (s *Store) Get(id string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := s.find(id)
	if order == nil {
		return Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found").
			WithDetails(map[string]any{"orderId": id})
	}
	return *order, nil
}

// List returns the orders matching the filter and free-text query, newest
// first. The query is a case-insensitive substring match against the customer
// name, phone, and details.
func (s *Store) List(filter Filter, query string) []Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]Order, 0, len(s.orders))
	for _, order := range s.orders {
		if !filter.matches(order) {
			continue
		}
		if needle != "" && !matchesQuery(order, needle) {
			continue
		}
		out = append(out, *order)
	}
	return out
}

// Snapshot returns a copy of the full order book, newest first.
func (s *Store) Snapshot() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Order, 0, len(s.orders))
	for _, order := range s.orders {
		out = append(out, *order)
	}
	return out
}

// Len reports the number of orders in the book.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

// Summary counts the order book by lifecycle state.
func (s *Store) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum Summary
	sum.Total = len(s.orders)
	for _, order := range s.orders {
		switch {
		case order.PickedUp:
			sum.Completed++
			sum.PickedUp++
		case order.Completed:
			sum.Completed++
			sum.OnShelf++
		default:
			sum.New++
		}
	}
	return sum
}

// find must be called with the lock held.
func (s *Store) find(id string) *Order {
	for _, order := range s.orders {
		if order.ID == id {
			return order
		}
	}
	return nil
}

func matchesQuery(o *Order, needle string) bool {
	return strings.Contains(strings.ToLower(o.CustomerName), needle) ||
		strings.Contains(strings.ToLower(o.Phone), needle) ||
		strings.Contains(strings.ToLower(o.Details), needle)
}
