package hal

import (
	"sync"
	"time"
)

type hostTime struct {
	mu      sync.Mutex
	virtual bool
	now     time.Time
}

func newWallTime() *hostTime {
	return &hostTime{}
}

// newVirtualTime starts a clock that only moves when step is called.
func newVirtualTime(start time.Time) *hostTime {
	return &hostTime{virtual: true, now: start}
}

func (t *hostTime) Now() time.Time {
	if !t.virtual {
		return time.Now()
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.now
}

func (t *hostTime) step(d time.Duration) {
	if !t.virtual {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.now = t.now.Add(d)
}
