package tracker

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	pkgerrors "github.com/Ijilanmax/printing-shop-tracker/pkg/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(nil)
	seq := 0
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	s.newID = func() string {
		seq++
		return fmt.Sprintf("order-%03d", seq)
	}
	s.now = func() time.Time {
		seq++
		return base.Add(time.Duration(seq) * time.Minute)
	}
	return s
}

func requireInvariants(t *testing.T, o Order) {
	t.Helper()
	if o.PickedUp {
		require.True(t, o.Completed, "picked up order %s must be completed", o.ID)
	}
	require.Equal(t, o.Completed, o.CompletedAt != nil, "completedAt presence must track completed for %s", o.ID)
	require.Equal(t, o.PickedUp, o.PickedAt != nil, "pickedAt presence must track pickedUp for %s", o.ID)
}

func TestCreateRequiresPhone(t *testing.T) {
	s := newTestStore(t)

	for _, phone := range []string{"", "   ", "\t"} {
		_, err := s.Create(CreateOrder{CustomerName: "Ada", Phone: phone})
		require.Error(t, err)
		require.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
	}

	// Name is allowed to be empty; phone is the identity key.
	order, err := s.Create(CreateOrder{Phone: "555-0001"})
	require.NoError(t, err)
	require.Empty(t, order.CustomerName)
	require.Equal(t, "555-0001", order.Phone)
	require.False(t, order.Completed)
	require.False(t, order.PickedUp)
	require.Nil(t, order.CompletedAt)
	require.Nil(t, order.PickedAt)
	require.False(t, order.DateReceived.IsZero())
}

func TestCreatePrependsNewestFirst(t *testing.T) {
	s := newTestStore(t)

	first, err := s.Create(CreateOrder{CustomerName: "Ada", Phone: "555-0001"})
	require.NoError(t, err)
	second, err := s.Create(CreateOrder{CustomerName: "Ben", Phone: "555-0002"})
	require.NoError(t, err)

	snapshot := s.Snapshot()
	require.Len(t, snapshot, 2)
	require.Equal(t, second.ID, snapshot[0].ID)
	require.Equal(t, first.ID, snapshot[1].ID)
}

func TestCompletionLifecycle(t *testing.T) {
	s := newTestStore(t)
	created, err := s.Create(CreateOrder{CustomerName: "Ada", Phone: "555-0001"})
	require.NoError(t, err)

	completed, err := s.SetCompleted(created.ID, true)
	require.NoError(t, err)
	require.True(t, completed.Completed)
	require.NotNil(t, completed.CompletedAt)
	require.Equal(t, StatusCompleted, completed.Status())

	// Completing an already-completed order keeps the original timestamp.
	again, err := s.SetCompleted(created.ID, true)
	require.NoError(t, err)
	require.Equal(t, *completed.CompletedAt, *again.CompletedAt)

	picked, err := s.SetPickedUp(created.ID, true)
	require.NoError(t, err)
	require.True(t, picked.PickedUp)
	require.NotNil(t, picked.PickedAt)
	require.Equal(t, StatusPickedUp, picked.Status())
}

func TestRevokingCompletionClearsPickup(t *testing.T) {
	s := newTestStore(t)
	created, err := s.Create(CreateOrder{CustomerName: "Ada", Phone: "555-0001"})
	require.NoError(t, err)

	_, err = s.SetCompleted(created.ID, true)
	require.NoError(t, err)
	_, err = s.SetPickedUp(created.ID, true)
	require.NoError(t, err)

	// One call walks the order all the way back to new.
	reverted, err := s.SetCompleted(created.ID, false)
	require.NoError(t, err)
	require.False(t, reverted.Completed)
	require.False(t, reverted.PickedUp)
	require.Nil(t, reverted.CompletedAt)
	require.Nil(t, reverted.PickedAt)
	require.Equal(t, StatusNew, reverted.Status())
}

func TestPickupRequiresCompletion(t *testing.T) {
	s := newTestStore(t)
	created, err := s.Create(CreateOrder{CustomerName: "Ada", Phone: "555-0001"})
	require.NoError(t, err)

	order, err := s.SetPickedUp(created.ID, true)
	require.NoError(t, err)
	require.False(t, order.PickedUp)
	require.Nil(t, order.PickedAt)
	require.Equal(t, StatusNew, order.Status())
}

func TestPickupRevocationKeepsCompletion(t *testing.T) {
	s := newTestStore(t)
	created, err := s.Create(CreateOrder{CustomerName: "Ada", Phone: "555-0001"})
	require.NoError(t, err)
	_, err = s.SetCompleted(created.ID, true)
	require.NoError(t, err)
	_, err = s.SetPickedUp(created.ID, true)
	require.NoError(t, err)

	order, err := s.SetPickedUp(created.ID, false)
	require.NoError(t, err)
	require.True(t, order.Completed)
	require.False(t, order.PickedUp)
	require.Nil(t, order.PickedAt)
	require.Equal(t, StatusCompleted, order.Status())
}

func TestMutationsOnUnknownOrder(t *testing.T) {
	s := newTestStore(t)

	_, err := s.SetCompleted("missing", true)
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())

	_, err = s.SetPickedUp("missing", true)
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())

	_, err = s.Get("missing")
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	created, err := s.Create(CreateOrder{CustomerName: "Ada", Phone: "555-0001"})
	require.NoError(t, err)

	require.True(t, s.Remove(created.ID))
	require.False(t, s.Remove(created.ID))
	require.False(t, s.Remove("never-existed"))
	require.Equal(t, 0, s.Len())
}

func TestListFiltersAndQuery(t *testing.T) {
	s := newTestStore(t)

	ada, err := s.Create(CreateOrder{CustomerName: "Ada Lovelace", Phone: "555-0001", Details: "50 glossy flyers"})
	require.NoError(t, err)
	ben, err := s.Create(CreateOrder{CustomerName: "Ben Okri", Phone: "555-0002", Details: "business cards"})
	require.NoError(t, err)
	cho, err := s.Create(CreateOrder{CustomerName: "Cho Sang-woo", Phone: "555-0003", Details: "wedding invites"})
	require.NoError(t, err)

	_, err = s.SetCompleted(ben.ID, true)
	require.NoError(t, err)
	_, err = s.SetCompleted(cho.ID, true)
	require.NoError(t, err)
	_, err = s.SetPickedUp(cho.ID, true)
	require.NoError(t, err)

	ids := func(orders []Order) []string {
		out := make([]string, 0, len(orders))
		for _, o := range orders {
			out = append(out, o.ID)
		}
		return out
	}

	require.Equal(t, []string{cho.ID, ben.ID, ada.ID}, ids(s.List(FilterAll, "")))
	require.Equal(t, []string{ada.ID}, ids(s.List(FilterNew, "")))
	require.Equal(t, []string{cho.ID, ben.ID}, ids(s.List(FilterCompleted, "")))
	require.Equal(t, []string{cho.ID}, ids(s.List(FilterPicked, "")))
	require.Equal(t, []string{ben.ID}, ids(s.List(FilterOnShelf, "")))

	// Query is case-insensitive and matches name, phone, or details.
	require.Equal(t, []string{ada.ID}, ids(s.List(FilterAll, "LOVELACE")))
	require.Equal(t, []string{ben.ID}, ids(s.List(FilterAll, "0002")))
	require.Equal(t, []string{cho.ID}, ids(s.List(FilterAll, "wedding")))
	require.Empty(t, ids(s.List(FilterAll, "no such thing")))
	require.Equal(t, []string{ben.ID}, ids(s.List(FilterCompleted, "cards")))
}

func TestSummaryCounters(t *testing.T) {
	s := newTestStore(t)

	var created []Order
	for i := 0; i < 4; i++ {
		o, err := s.Create(CreateOrder{CustomerName: "Ada", Phone: "555-0001"})
		require.NoError(t, err)
		created = append(created, o)
	}
	_, err := s.SetCompleted(created[0].ID, true)
	require.NoError(t, err)
	_, err = s.SetCompleted(created[1].ID, true)
	require.NoError(t, err)
	_, err = s.SetPickedUp(created[1].ID, true)
	require.NoError(t, err)

	sum := s.Summary()
	require.Equal(t, Summary{Total: 4, New: 2, Completed: 2, OnShelf: 1, PickedUp: 1}, sum)
}

func TestRandomOperationSequencesKeepInvariants(t *testing.T) {
	s := newTestStore(t)
	rng := rand.New(rand.NewSource(42))

	var ids []string
	pickID := func() string {
		if len(ids) == 0 || rng.Intn(10) == 0 {
			return "missing"
		}
		return ids[rng.Intn(len(ids))]
	}

	for i := 0; i < 500; i++ {
		switch rng.Intn(6) {
		case 0, 1:
			o, err := s.Create(CreateOrder{
				CustomerName: fmt.Sprintf("customer-%d", rng.Intn(5)),
				Phone:        fmt.Sprintf("555-%04d", rng.Intn(5)),
			})
			require.NoError(t, err)
			ids = append(ids, o.ID)
		case 2:
			_, _ = s.SetCompleted(pickID(), rng.Intn(2) == 0)
		case 3:
			_, _ = s.SetPickedUp(pickID(), rng.Intn(2) == 0)
		case 4:
			s.Remove(pickID())
		case 5:
			_ = s.List(FilterAll, "")
		}

		for _, o := range s.Snapshot() {
			requireInvariants(t, o)
		}
	}
}

func TestNewStoreSeedsExistingOrders(t *testing.T) {
	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	seed := []Order{
		{ID: "b", CustomerName: "Ben", Phone: "555-0002", DateReceived: now},
		{ID: "a", CustomerName: "Ada", Phone: "555-0001", DateReceived: now.Add(-time.Hour)},
	}

	s := NewStore(seed)
	snapshot := s.Snapshot()
	require.Len(t, snapshot, 2)
	require.Equal(t, "b", snapshot[0].ID)
	require.Equal(t, "a", snapshot[1].ID)

	// The store holds its own copies; mutating the seed slice changes nothing.
	seed[0].CustomerName = "changed"
	require.Equal(t, "Ben", s.Snapshot()[0].CustomerName)
}
