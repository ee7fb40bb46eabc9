package ports

// OrderLock admits at most one label run per order at a time.
type OrderLock interface {
	// TryLock returns ok=false when a run for orderID is already in flight.
	// The returned unlock func must be called exactly once.
	TryLock(orderID int64) (unlock func(), ok bool)
}
