package domain

// CapacitySnapshot is the derived occupancy of an event at one point in a transaction.
// It is never cached.
type CapacitySnapshot struct {
	EventID        int64
	ConfirmedCount int
	Limit          int
}

// Unlimited reports whether the event has no participant limit.
func (c CapacitySnapshot) Unlimited() bool {
	return c.Limit == 0
}

// OpenSlots returns Limit - ConfirmedCount. It may be negative; use Available
// when the value feeds an admission count. Meaningless when Unlimited.
func (c CapacitySnapshot) OpenSlots() int {
	return c.Limit - c.ConfirmedCount
}

// Available returns the number of requests that can still be admitted, clamped at zero.
func (c CapacitySnapshot) Available() int {
	if n := c.OpenSlots(); n > 0 {
		return n
	}
	return 0
}

// HasRoom reports whether one more participant can be admitted.
func (c CapacitySnapshot) HasRoom() bool {
	return c.Unlimited() || c.OpenSlots() > 0
}
