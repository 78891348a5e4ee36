package notify

import "sync"

// Mock records notifications for tests.
type Mock struct {
	mu     sync.Mutex
	sent   []Notification
	closed []uint32
	nextID uint32
}

func (m *Mock) Notify(n Notification) (uint32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, n)
	if n.ReplacesID != 0 {
		return n.ReplacesID, nil
	}
	m.nextID++
	return m.nextID, nil
}

func (m *Mock) Close(id uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = append(m.closed, id)
	return nil
}

// Sent returns every notification passed to Notify.
func (m *Mock) Sent() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Notification(nil), m.sent...)
}

var _ Notifier = (*Mock)(nil)
