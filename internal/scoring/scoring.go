package scoring

import (
	"fmt"
	"math"
	"strings"
)

// Map is an ordered, immutable mapping from phase name to a non-negative score.
// Every update returns a new Map; the receiver is never modified.
type Map struct {
	keys   []string
	values map[string]int
}

// New creates a Map with the given phases, all scored zero.
func New(phases ...string) Map {
	values := make(map[string]int, len(phases))
	keys := make([]string, 0, len(phases))
	for _, p := range phases {
		if _, dup := values[p]; dup {
			continue
		}
		keys = append(keys, p)
		values[p] = 0
	}
	return Map{keys: keys, values: values}
}

// Get returns the score for a phase (zero if unknown).
func (m Map) Get(phase string) int {
	return m.values[phase]
}

// Has reports whether the phase is tracked by the map.
func (m Map) Has(phase string) bool {
	_, ok := m.values[phase]
	return ok
}

// Keys returns the phases in declaration order.
func (m Map) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Increment returns a copy of m with the phase score raised by one.
func (m Map) Increment(phase string) Map {
	return m.With(phase, m.values[phase]+1)
}

// With returns a copy of m with one phase replaced. Negative values clamp to
// zero. Unknown phases are appended.
func (m Map) With(phase string, value int) Map {
	if value < 0 {
		value = 0
	}
	out := Map{
		keys:   append([]string(nil), m.keys...),
		values: make(map[string]int, len(m.values)+1),
	}
	for k, v := range m.values {
		out.values[k] = v
	}
	if _, ok := out.values[phase]; !ok {
		out.keys = append(out.keys, phase)
	}
	out.values[phase] = value
	return out
}

// Total returns the sum of all phase scores.
func (m Map) Total() int {
	total := 0
	for _, v := range m.values {
		total += v
	}
	return total
}

// String renders "phase=score" pairs in order.
func (m Map) String() string {
	parts := make([]string, 0, len(m.keys))
	for _, k := range m.keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, m.values[k]))
	}
	return strings.Join(parts, " ")
}

// Percent returns round(100 * part / whole). A zero whole yields zero.
func Percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}
