package tracker

import "fmt"

// Filter selects a slice of the order book by lifecycle state.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterNew       Filter = "new"
	FilterCompleted Filter = "completed"
	FilterPicked    Filter = "picked"
	// FilterOnShelf selects completed orders still waiting for pickup.
	FilterOnShelf Filter = "onshelf"
)

var validFilters = []Filter{
	FilterAll,
	FilterNew,
	FilterCompleted,
	FilterPicked,
	FilterOnShelf,
}

// String implements fmt.Stringer.
func (f Filter) String() string {
	return string(f)
}

// IsValid reports whether the value is a known Filter.
func (f Filter) IsValid() bool {
	for _, candidate := range validFilters {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFilter converts raw input into a Filter. Empty input means all orders.
func ParseFilter(value string) (Filter, error) {
	if value == "" {
		return FilterAll, nil
	}
	for _, candidate := range validFilters {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order filter %q", value)
}

// matches reports whether the order belongs to the filtered view.
func (f Filter) matches(o *Order) bool {
	switch f {
	case FilterNew:
		return !o.Completed
	case FilterCompleted:
		return o.Completed
	case FilterPicked:
		return o.PickedUp
	case FilterOnShelf:
		return o.Completed && !o.PickedUp
	default:
		return true
	}
}
