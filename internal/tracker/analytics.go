package tracker

import (
	"math"
	"sort"
)

// Segment buckets a customer by how many orders they have placed.
type Segment string

const (
	SegmentNew       Segment = "new"
	SegmentReturning Segment = "returning"
	SegmentFrequent  Segment = "frequent"
	SegmentVIP       Segment = "vip"
)

// LoyaltyPointsPerCompletedOrder is the flat rate a customer earns per
// finished order.
const LoyaltyPointsPerCompletedOrder = 5

// Segment thresholds, inclusive on total order count.
const (
	returningThreshold = 2
	frequentThreshold  = 5
	vipThreshold       = 12
)

// Customer is the per-phone view derived from the order book. It is never
// stored; it exists only as long as at least one order with the phone does.
type Customer struct {
	Phone          string  `json:"phone"`
	Name           string  `json:"name"`
	History        []Order `json:"history"`
	TotalOrders    int     `json:"totalOrders"`
	CompletedCount int     `json:"completedCount"`
	LoyaltyPoints  int     `json:"loyaltyPoints"`
	Segment        Segment `json:"segment"`
}

// TopCustomer is one row of the most-active-customers ranking.
type TopCustomer struct {
	Phone      string `json:"phone"`
	Name       string `json:"name"`
	OrderCount int    `json:"orderCount"`
}

// AnalyticsSnapshot is the aggregate view over the whole order book,
// recomputed fresh on every request.
type AnalyticsSnapshot struct {
	TotalOrders       int           `json:"totalOrders"`
	UniqueCustomers   int           `json:"uniqueCustomers"`
	RepeatCustomers   int           `json:"repeatCustomers"`
	RepeatRatePercent int           `json:"repeatRatePercent"`
	TopCustomers      []TopCustomer `json:"topCustomers"`
}

// LookupCustomer derives the per-customer view for one phone number. Orders
// must be newest first; the reported name comes from the customer's most
// recent order. The second return is false when the phone has no orders.
func LookupCustomer(orders []Order, phone string) (Customer, bool) {
	customer := Customer{Phone: phone, Segment: SegmentNew}
	for i := range orders {
		o := orders[i]
		if o.Phone != phone {
			continue
		}
		if len(customer.History) == 0 {
			customer.Name = o.CustomerName
		}
		customer.History = append(customer.History, o)
		if o.Completed {
			customer.CompletedCount++
		}
	}
	if len(customer.History) == 0 {
		return Customer{}, false
	}
	customer.TotalOrders = len(customer.History)
	customer.LoyaltyPoints = customer.CompletedCount * LoyaltyPointsPerCompletedOrder
	customer.Segment = segmentFor(customer.TotalOrders)
	return customer, true
}

// Aggregate derives the shop-wide snapshot. Orders must be newest first. The
// ranking is descending by order count with ties kept in encounter order; it
// is returned in full, truncation is left to the caller.
func Aggregate(orders []Order) AnalyticsSnapshot {
	type bucket struct {
		phone string
		name  string
		count int
	}

	index := map[string]*bucket{}
	encounter := []*bucket{}
	for i := range orders {
		o := &orders[i]
		b, ok := index[o.Phone]
		if !ok {
			b = &bucket{phone: o.Phone, name: o.CustomerName}
			index[o.Phone] = b
			encounter = append(encounter, b)
		}
		b.count++
	}

	snap := AnalyticsSnapshot{
		TotalOrders:     len(orders),
		UniqueCustomers: len(encounter),
		TopCustomers:    make([]TopCustomer, 0, len(encounter)),
	}
	for _, b := range encounter {
		if b.count >= returningThreshold {
			snap.RepeatCustomers++
		}
	}
	if snap.UniqueCustomers > 0 {
		ratio := float64(snap.RepeatCustomers) / float64(snap.UniqueCustomers)
		snap.RepeatRatePercent = int(math.Round(ratio * 100))
	}

	ranked := make([]*bucket, len(encounter))
	copy(ranked, encounter)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].count > ranked[j].count
	})
	for _, b := range ranked {
		snap.TopCustomers = append(snap.TopCustomers, TopCustomer{
			Phone:      b.phone,
			Name:       b.name,
			OrderCount: b.count,
		})
	}
	return snap
}

func segmentFor(totalOrders int) Segment {
	switch {
	case totalOrders >= vipThreshold:
		return SegmentVIP
	case totalOrders >= frequentThreshold:
		return SegmentFrequent
	case totalOrders >= returningThreshold:
		return SegmentReturning
	default:
		return SegmentNew
	}
}
