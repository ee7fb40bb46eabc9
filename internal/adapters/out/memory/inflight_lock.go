// Package memory holds in-process adapters.
package memory

import "sync"

// InflightLock tracks orders with a label run in progress. It only guards a
// single process.
type InflightLock struct {
	mu       sync.Mutex
	inflight map[int64]struct{}
}

func NewInflightLock() *InflightLock {
	return &InflightLock{inflight: make(map[int64]struct{})}
}

// TryLock marks orderID as in flight. It returns ok=false without blocking when
// it already is. Calling unlock more than once has no further effect.
func (l *InflightLock) TryLock(orderID int64) (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, held := l.inflight[orderID]; held {
		return nil, false
	}
	l.inflight[orderID] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.inflight, orderID)
			l.mu.Unlock()
		})
	}, true
}

// Len reports how many orders are in flight.
func (l *InflightLock) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.inflight)
}
