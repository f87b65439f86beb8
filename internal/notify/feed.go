package notify

import (
	"sync"

	"github.com/promontazh/landing-api/internal/core/domain"
)

const defaultFeedSize = 100

// Feed retains the most recent notifications for the admin panel. Old
// entries fall off once the capacity is reached.
type Feed struct {
	mu    sync.RWMutex
	buf   []domain.Notification
	limit int
}

func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = defaultFeedSize
	}
	return &Feed{limit: capacity}
}

func (f *Feed) Deliver(n domain.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.buf = append(f.buf, n)
	if len(f.buf) > f.limit {
		f.buf = f.buf[len(f.buf)-f.limit:]
	}
}

// Recent returns retained notifications, newest first.
func (f *Feed) Recent() []domain.Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]domain.Notification, len(f.buf))
	for i, n := range f.buf {
		out[len(f.buf)-1-i] = n
	}
	return out
}
