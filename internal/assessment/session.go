// Package assessment implements the phase state machines of the three
// cognitive tests and the scoring rules applied on every response.
//
// Sessions are plain values driven synchronously by the caller. Random
// stimuli are generated only when a phase is entered. Every change of phase or
// item bumps the session epoch, which timers use to discard stale deadlines.
package assessment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mindscan/internal/scoring"
	"github.com/abhisek/mindscan/internal/stimgen"
)

// TestKind identifies one of the three tests.
type TestKind string

const (
	TestAttention      TestKind = "attention"
	TestLanguage       TestKind = "language"
	TestProblemSolving TestKind = "problem-solving"
)

// PhaseDone is the terminal phase shared by all tests.
const PhaseDone = "done"

// AllTests lists the tests in menu order.
func AllTests() []TestKind {
	return []TestKind{TestAttention, TestLanguage, TestProblemSolving}
}

// ParseTestKind accepts a test name as typed on the command line.
func ParseTestKind(s string) (TestKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "attention":
		return TestAttention, nil
	case "language":
		return TestLanguage, nil
	case "problem-solving", "problemsolving", "problem":
		return TestProblemSolving, nil
	}
	return "", fmt.Errorf("unknown test %q (want attention, language or problem-solving)", s)
}

// Title returns the display name of the test.
func (k TestKind) Title() string {
	switch k {
	case TestAttention:
		return "Attention Test"
	case TestLanguage:
		return "Language Test"
	case TestProblemSolving:
		return "Problem-Solving Test"
	}
	return string(k)
}

// Options are the collaborators shared by every session type.
type Options struct {
	// ID identifies the session. A random UUID is used when empty.
	ID string

	// Sink receives session events. Nil discards them.
	Sink EventSink

	// OnComplete is the host's completion callback. It fires at most once.
	OnComplete func()

	// Generator produces randomized stimuli. A time-seeded one is used when nil.
	Generator *stimgen.Generator

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Deadline is a timer request: expire epoch after the given duration.
type Deadline struct {
	Epoch int
	After time.Duration
}

// Timed is implemented by sessions with time-driven transitions.
type Timed interface {
	Epoch() int
	Deadline() (Deadline, bool)
	Expire(epoch int) bool
}

// base carries the state every test session shares.
type base struct {
	id       string
	test     TestKind
	sink     EventSink
	notifier *Notifier
	gen      *stimgen.Generator
	now      func() time.Time

	phase    string
	item     int
	epoch    int
	scores   scoring.Map
	finished bool
	endedAt  time.Time
}

func newBase(test TestKind, opts Options, phases ...string) base {
	id := opts.ID
	if id == "" {
		id = uuid.New().String()
	}
	gen := opts.Generator
	if gen == nil {
		gen = stimgen.New()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	b := base{
		id:       id,
		test:     test,
		sink:     sinkOrDiscard(opts.Sink),
		notifier: NewNotifier(opts.OnComplete),
		gen:      gen,
		now:      now,
		scores:   scoring.New(phases...),
	}
	b.record(EventStart, false, "")
	return b
}

// ID returns the session identifier.
func (b *base) ID() string { return b.id }

// Test returns the test kind.
func (b *base) Test() TestKind { return b.test }

// Phase returns the current phase name.
func (b *base) Phase() string { return b.phase }

// Item returns the index of the current item within the phase.
func (b *base) Item() int { return b.item }

// Epoch changes whenever the phase or the current item changes.
func (b *base) Epoch() int { return b.epoch }

// Scores returns the current score map.
func (b *base) Scores() scoring.Map { return b.scores }

// Finished reports whether the test reached its terminal condition.
func (b *base) Finished() bool { return b.finished }

// Notified reports whether the completion callback has fired.
func (b *base) Notified() bool { return b.notifier.Fired() }

// enter performs the common part of a phase transition.
func (b *base) enter(phase string) {
	b.phase = phase
	b.item = 0
	b.epoch++
	b.record(EventPhase, false, "")
}

func (b *base) nextItem() {
	b.item++
	b.epoch++
}

func (b *base) bump() {
	b.epoch++
}

// finish marks the terminal condition; notify additionally fires the callback.
func (b *base) finish(notify bool) {
	if b.finished {
		return
	}
	b.finished = true
	b.endedAt = b.now()
	b.record(EventComplete, false, b.scores.String())
	if notify {
		b.notifier.Fire()
	}
}

func (b *base) record(kind EventKind, correct bool, detail string) {
	b.sink.Record(Event{
		SessionID: b.id,
		Test:      b.test,
		Kind:      kind,
		Phase:     b.phase,
		Item:      b.item,
		Correct:   correct,
		Detail:    detail,
		At:        b.now(),
	})
}

func (b *base) result(lines []ScoreLine) Result {
	return Result{
		SessionID:   b.id,
		Test:        b.test,
		Scores:      b.scores,
		Lines:       lines,
		Completed:   b.finished,
		CompletedAt: b.endedAt,
	}
}

// Abandon records that the host left the test before it finished.
func (b *base) Abandon() {
	if b.finished {
		return
	}
	b.record(EventAbandon, false, b.scores.String())
}
