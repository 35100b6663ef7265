package timer

import "sync"

// Manual is a tick source driven by the caller. Fire invokes the
// callback synchronously, which makes animation tests deterministic.
type Manual struct {
	mu   sync.Mutex
	tick func()
}

// NewManual creates a stopped manual clock.
func NewManual() *Manual { return &Manual{} }

// Start records the callback.
func (m *Manual) Start(tick func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tick = tick
}

// Stop forgets the callback. Fire becomes a no-op.
func (m *Manual) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tick = nil
}

// Running reports whether a callback is registered.
func (m *Manual) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tick != nil
}

// Fire invokes the callback n times and returns how many ticks ran.
func (m *Manual) Fire(n int) int {
	ran := 0
	for i := 0; i < n; i++ {
		m.mu.Lock()
		tick := m.tick
		m.mu.Unlock()
		if tick == nil {
			break
		}
		tick()
		ran++
	}
	return ran
}
