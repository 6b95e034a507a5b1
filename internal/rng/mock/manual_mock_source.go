package mockrng

import (
	"sync"

	"github.com/KirkDiggler/storyforge/internal/rng"
)

// ManualMockSource implements rng.Source for testing with predetermined draws
type ManualMockSource struct {
	mu    sync.Mutex
	draws []float64
	index int
}

var _ rng.Source = (*ManualMockSource)(nil)

// NewManualMockSource creates a new mock randomness source
func NewManualMockSource() *ManualMockSource {
	return &ManualMockSource{
		draws: []float64{},
	}
}

// SetNextDraw appends the next value Float64 will return
func (m *ManualMockSource) SetNextDraw(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draws = append(m.draws, v)
}

// SetDraws replaces the scripted draws and resets the index
func (m *ManualMockSource) SetDraws(draws []float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draws = draws
	m.index = 0
}

// Reset clears all draws and resets the index
func (m *ManualMockSource) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draws = m.draws[:0]
	m.index = 0
}

// Float64 implements rng.Source. Once the script is exhausted it
// returns 0, which keeps test failures deterministic rather than flaky.
func (m *ManualMockSource) Float64() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.index >= len(m.draws) {
		return 0
	}

	v := m.draws[m.index]
	m.index++
	return v
}
