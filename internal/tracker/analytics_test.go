package tracker

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSegmentThresholds(t *testing.T) {
	cases := []struct {
		totalOrders int
		want        Segment
	}{
		{0, SegmentNew},
		{1, SegmentNew},
		{2, SegmentReturning},
		{4, SegmentReturning},
		{5, SegmentFrequent},
		{11, SegmentFrequent},
		{12, SegmentVIP},
		{13, SegmentVIP},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, segmentFor(tc.totalOrders), "totalOrders=%d", tc.totalOrders)
	}
}

func TestLookupCustomerLoyaltyScenario(t *testing.T) {
	s := newTestStore(t)

	var created []Order
	for i := 0; i < 3; i++ {
		o, err := s.Create(CreateOrder{CustomerName: "Ada Lovelace", Phone: "555-0001"})
		require.NoError(t, err)
		created = append(created, o)
	}

	customer, ok := LookupCustomer(s.Snapshot(), "555-0001")
	require.True(t, ok)
	require.Equal(t, 3, customer.TotalOrders)
	require.Equal(t, 0, customer.LoyaltyPoints)
	require.Equal(t, SegmentReturning, customer.Segment)
	require.Len(t, customer.History, 3)

	_, err := s.SetCompleted(created[0].ID, true)
	require.NoError(t, err)

	customer, ok = LookupCustomer(s.Snapshot(), "555-0001")
	require.True(t, ok)
	require.Equal(t, 1, customer.CompletedCount)
	require.Equal(t, 5, customer.LoyaltyPoints)
}

func TestLookupCustomerLoyaltyRate(t *testing.T) {
	s := newTestStore(t)

	var created []Order
	for i := 0; i < 3; i++ {
		o, err := s.Create(CreateOrder{CustomerName: "Ben", Phone: "555-0002"})
		require.NoError(t, err)
		created = append(created, o)
	}
	for _, o := range created[:2] {
		_, err := s.SetCompleted(o.ID, true)
		require.NoError(t, err)
	}

	customer, ok := LookupCustomer(s.Snapshot(), "555-0002")
	require.True(t, ok)
	require.Equal(t, 3, customer.TotalOrders)
	require.Equal(t, 2, customer.CompletedCount)
	require.Equal(t, 10, customer.LoyaltyPoints)
}

func TestLookupCustomerNameFollowsNewestOrder(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Create(CreateOrder{CustomerName: "A. Lovelace", Phone: "555-0001"})
	require.NoError(t, err)
	_, err = s.Create(CreateOrder{CustomerName: "Ada Lovelace", Phone: "555-0001"})
	require.NoError(t, err)

	customer, ok := LookupCustomer(s.Snapshot(), "555-0001")
	require.True(t, ok)
	require.Equal(t, "Ada Lovelace", customer.Name)
}

func TestLookupCustomerNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Create(CreateOrder{CustomerName: "Ada", Phone: "555-0001"})
	require.NoError(t, err)

	_, ok := LookupCustomer(s.Snapshot(), "555-9999")
	require.False(t, ok)
}

func TestAggregateEmptyCollection(t *testing.T) {
	snap := Aggregate(nil)
	require.Equal(t, 0, snap.TotalOrders)
	require.Equal(t, 0, snap.UniqueCustomers)
	require.Equal(t, 0, snap.RepeatCustomers)
	require.Equal(t, 0, snap.RepeatRatePercent)
	require.NotNil(t, snap.TopCustomers)
	require.Empty(t, snap.TopCustomers)
}

func TestAggregateRepeatRateScenario(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 5; i++ {
		_, err := s.Create(CreateOrder{CustomerName: "A", Phone: "555-0001"})
		require.NoError(t, err)
	}
	_, err := s.Create(CreateOrder{CustomerName: "B", Phone: "555-0002"})
	require.NoError(t, err)

	snap := Aggregate(s.Snapshot())
	require.Equal(t, 6, snap.TotalOrders)
	require.Equal(t, 2, snap.UniqueCustomers)
	require.Equal(t, 1, snap.RepeatCustomers)
	require.Equal(t, 50, snap.RepeatRatePercent)
	require.Equal(t, []TopCustomer{
		{Phone: "555-0001", Name: "A", OrderCount: 5},
		{Phone: "555-0002", Name: "B", OrderCount: 1},
	}, snap.TopCustomers)
}

func TestAggregateRepeatRateRounds(t *testing.T) {
	s := newTestStore(t)

	// Two of three customers repeat: 66.66...% rounds to 67.
	for i, phone := range []string{"555-0001", "555-0001", "555-0002", "555-0002", "555-0003"} {
		_, err := s.Create(CreateOrder{CustomerName: fmt.Sprintf("c%d", i), Phone: phone})
		require.NoError(t, err)
	}

	snap := Aggregate(s.Snapshot())
	require.Equal(t, 3, snap.UniqueCustomers)
	require.Equal(t, 2, snap.RepeatCustomers)
	require.Equal(t, 67, snap.RepeatRatePercent)
}

func TestAggregateRankingTiesKeepEncounterOrder(t *testing.T) {
	s := newTestStore(t)

	// Equal counts; the customer encountered first in the newest-first walk
	// must rank first.
	for _, in := range []CreateOrder{
		{CustomerName: "A", Phone: "555-0001"},
		{CustomerName: "B", Phone: "555-0002"},
		{CustomerName: "A", Phone: "555-0001"},
		{CustomerName: "B", Phone: "555-0002"},
	} {
		_, err := s.Create(in)
		require.NoError(t, err)
	}

	snap := Aggregate(s.Snapshot())
	require.Equal(t, []TopCustomer{
		{Phone: "555-0002", Name: "B", OrderCount: 2},
		{Phone: "555-0001", Name: "A", OrderCount: 2},
	}, snap.TopCustomers)
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 3; i++ {
		_, err := s.Create(CreateOrder{CustomerName: "Ada", Phone: "555-0001"})
		require.NoError(t, err)
	}

	before := s.Snapshot()
	_ = Aggregate(before)
	require.Equal(t, before, s.Snapshot())
}
