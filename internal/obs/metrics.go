package obs

import "sync"

// Label is a key/value pair attached to measurements.
type Label struct {
	Key   string
	Value string
}

// Meter is a very small interface for emitting counters/histograms.
// Implementations may no-op or bridge to a metrics system.
type Meter interface {
	Counter(name string, value float64, labels ...Label)
	Histogram(name string, value float64, labels ...Label)
}

// NopMeter is a Meter that discards all measurements.
type NopMeter struct{}

func (NopMeter) Counter(name string, value float64, labels ...Label)   {}
func (NopMeter) Histogram(name string, value float64, labels ...Label) {}

// Sample is one recorded measurement.
type Sample struct {
	Name   string
	Value  float64
	Labels []Label
}

// MemMeter keeps every measurement in memory. It is safe for
// concurrent use.
type MemMeter struct {
	mu         sync.Mutex
	counters   []Sample
	histograms []Sample
}

func (m *MemMeter) Counter(name string, value float64, labels ...Label) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters = append(m.counters, Sample{Name: name, Value: value, Labels: labels})
}

func (m *MemMeter) Histogram(name string, value float64, labels ...Label) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.histograms = append(m.histograms, Sample{Name: name, Value: value, Labels: labels})
}

// Total sums the counter named name across samples whose labels include
// every label in match.
func (m *MemMeter) Total(name string, match ...Label) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var sum float64
	for _, s := range m.counters {
		if s.Name == name && hasLabels(s.Labels, match) {
			sum += s.Value
		}
	}
	return sum
}

// Observations returns the values recorded for histogram name.
func (m *MemMeter) Observations(name string) []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []float64
	for _, s := range m.histograms {
		if s.Name == name {
			out = append(out, s.Value)
		}
	}
	return out
}

func hasLabels(have, want []Label) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
