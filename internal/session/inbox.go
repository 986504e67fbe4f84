package session

import (
	"sync"

	"github.com/rsinnovationhub/hub/internal/workflow"
)

// Inbox collects notifications until the next page render drains them.
type Inbox struct {
	mu    sync.Mutex
	items []workflow.Notification
}

// Notify appends n. It implements workflow.Notifier.
func (i *Inbox) Notify(n workflow.Notification) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.items = append(i.items, n)
}

// Drain returns the pending notifications in arrival order and empties the inbox.
func (i *Inbox) Drain() []workflow.Notification {
	i.mu.Lock()
	defer i.mu.Unlock()
	items := i.items
	i.items = nil
	return items
}

// Len returns the number of pending notifications.
func (i *Inbox) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.items)
}
