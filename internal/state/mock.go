package state

import "sync"

// Mock is a test double for Manager.
type Mock struct {
	mu         sync.Mutex
	queueState *QueueState
	saved      []QueueState
	closed     bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SaveQueue(state QueueState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, state)
	m.queueState = &state
}

func (m *Mock) GetQueue() (*QueueState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queueState, nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetQueue(state *QueueState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queueState = state
}

// Saved returns every queue passed to SaveQueue.
func (m *Mock) Saved() []QueueState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]QueueState(nil), m.saved...)
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
