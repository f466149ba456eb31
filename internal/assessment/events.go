package assessment

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/abhisek/mindscan/internal/scoring"
)

// EventKind classifies a session event.
type EventKind string

const (
	EventStart    EventKind = "start"
	EventPhase    EventKind = "phase"
	EventResponse EventKind = "response"
	EventComplete EventKind = "complete"
	EventAbandon  EventKind = "abandon"
)

// Event is one observable step of a test session.
type Event struct {
	SessionID string
	Test      TestKind
	Kind      EventKind
	Phase     string
	Item      int
	Correct   bool
	Detail    string
	At        time.Time
}

// EventSink receives session events. Implementations must not block.
type EventSink interface {
	Record(e Event)
}

// Result is the final score snapshot of a session.
type Result struct {
	SessionID   string
	Test        TestKind
	Scores      scoring.Map
	Lines       []ScoreLine
	Completed   bool
	CompletedAt time.Time
}

// MemoryLog keeps events and results for the lifetime of the process. It is
// the results board behind the profile screen; nothing is written to disk.
type MemoryLog struct {
	mu      sync.Mutex
	events  []Event
	results []Result
}

var _ EventSink = (*MemoryLog)(nil)

// NewMemoryLog creates an empty log.
func NewMemoryLog() *MemoryLog {
	return &MemoryLog{}
}

// Record appends an event.
func (m *MemoryLog) Record(e Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, e)
}

// Events returns a copy of the recorded events.
func (m *MemoryLog) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Event(nil), m.events...)
}

// AddResult stores a session result, replacing an earlier result of the same
// session.
func (m *MemoryLog) AddResult(r Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.results {
		if m.results[i].SessionID == r.SessionID {
			m.results[i] = r
			return
		}
	}
	m.results = append(m.results, r)
}

// Results returns results in insertion order.
func (m *MemoryLog) Results() []Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Result(nil), m.results...)
}

// LogSink writes every event through the standard logger before passing it on.
type LogSink struct {
	inner EventSink
}

// WithLogging wraps a sink with event logging. inner may be nil.
func WithLogging(inner EventSink) EventSink {
	return &LogSink{inner: inner}
}

func (l *LogSink) Record(e Event) {
	log.Printf("%s %s %s phase=%s item=%d correct=%t %s",
		e.Test, shortID(e.SessionID), e.Kind, e.Phase, e.Item, e.Correct, e.Detail)
	if l.inner != nil {
		l.inner.Record(e)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// discard drops events.
type discard struct{}

func (discard) Record(Event) {}

func sinkOrDiscard(s EventSink) EventSink {
	if s == nil {
		return discard{}
	}
	return s
}

func describeInput(input string) string {
	return fmt.Sprintf("input=%q", input)
}
