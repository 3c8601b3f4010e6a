package tracker

import "time"

// Status is the derived lifecycle state of an order.
type Status string

const (
	StatusNew       Status = "new"
	StatusCompleted Status = "completed"
	StatusPickedUp  Status = "picked_up"
)

// Order is a single print job moving through the shop.
//
// Lifecycle is tracked by two flags. PickedUp implies Completed, and each
// timestamp is set exactly when its flag is.
type Order struct {
	ID           string     `json:"id"`
	CustomerName string     `json:"customerName"`
	Phone        string     `json:"phone"`
	Details      string     `json:"details"`
	DateReceived time.Time  `json:"dateReceived"`
	Completed    bool       `json:"completed"`
	PickedUp     bool       `json:"pickedUp"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	PickedAt     *time.Time `json:"pickedAt,omitempty"`
}

// Status derives the lifecycle state from the flags.
func (o *Order) Status() Status {
	switch {
	case o.PickedUp:
		return StatusPickedUp
	case o.Completed:
		return StatusCompleted
	default:
		return StatusNew
	}
}

// setCompleted applies the completion flag and keeps the flag/timestamp pairs
// consistent. Clearing completion also clears pickup, since an order cannot be
// picked up before it is done.
func (o *Order) setCompleted(completed bool, at time.Time) {
	if completed {
		if !o.Completed {
			o.Completed = true
			ts := at
			o.CompletedAt = &ts
		}
		return
	}
	o.Completed = false
	o.CompletedAt = nil
	o.PickedUp = false
	o.PickedAt = nil
}

// setPickedUp applies the pickup flag. Marking an incomplete order as picked
// up is ignored; completion must come first.
func (o *Order) setPickedUp(pickedUp bool, at time.Time) {
	if pickedUp {
		if !o.Completed || o.PickedUp {
			return
		}
		o.PickedUp = true
		ts := at
		o.PickedAt = &ts
		return
	}
	o.PickedUp = false
	o.PickedAt = nil
}
