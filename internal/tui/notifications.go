package tui

import (
	"sync"

	"github.com/Veraticus/contractor-evaluation/internal/service"
)

// notificationQueue collects notifications raised while a command runs so
// they can be delivered with the command's result message.
type notificationQueue struct {
	items []service.Notification
	mu    sync.Mutex
}

// Notify implements service.Notifier.
func (q *notificationQueue) Notify(n service.Notification) {
	q.mu.Lock()
	q.items = append(q.items, n)
	q.mu.Unlock()
}

// drain returns and clears the pending notifications.
func (q *notificationQueue) drain() []service.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.items
	q.items = nil
	return items
}
