package assessment

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/mindscan/internal/stimgen"
	"github.com/abhisek/mindscan/internal/stimuli"
)

// Problem-solving test phases, in order.
const (
	PhaseTrail    = "trail"
	PhasePattern  = "pattern"
	PhaseSequence = "sequence"
)

// ProblemSolving is the trail making, pattern and number sequence test.
type ProblemSolving struct {
	base
	cfg ProblemSolvingConfig
	set stimuli.ProblemSolving

	circles   []stimgen.Circle
	expected  int
	path      []stimgen.Point
	exhausted bool
}

// NewProblemSolving starts a session in the trail phase.
func NewProblemSolving(set stimuli.ProblemSolving, cfg ProblemSolvingConfig, opts Options) *ProblemSolving {
	p := &ProblemSolving{
		base: newBase(TestProblemSolving, opts, PhaseTrail, PhasePattern, PhaseSequence),
		cfg:  cfg,
		set:  set,
	}
	p.enterTrail()
	return p
}

// Config returns the surface geometry.
func (p *ProblemSolving) Config() ProblemSolvingConfig { return p.cfg }

// Circles returns the trail targets generated for this activation.
func (p *ProblemSolving) Circles() []stimgen.Circle {
	return append([]stimgen.Circle(nil), p.circles...)
}

// Expected is the number of the next circle to click.
func (p *ProblemSolving) Expected() int { return p.expected }

// Path returns the centres of accepted clicks in order.
func (p *ProblemSolving) Path() []stimgen.Point {
	return append([]stimgen.Point(nil), p.path...)
}

// ClickAt resolves a click on the surface to the first circle whose centre is
// closer than the hit radius and clicks it.
func (p *ProblemSolving) ClickAt(pt stimgen.Point) bool {
	if p.phase != PhaseTrail {
		return false
	}
	for _, c := range p.circles {
		if math.Hypot(pt.X-c.Center.X, pt.Y-c.Center.Y) < p.cfg.Radius {
			return p.ClickCircle(c.Number)
		}
	}
	return false
}

// ClickCircle accepts the circle when it is the expected one. Any other
// number leaves the state unchanged.
func (p *ProblemSolving) ClickCircle(number int) bool {
	if p.phase != PhaseTrail || number != p.expected {
		return false
	}
	c := p.circles[number-1]
	p.path = append(p.path, c.Center)
	p.record(EventResponse, true, fmt.Sprintf("circle=%d", number))

	if number == len(p.circles) {
		p.scores = p.scores.Increment(PhaseTrail)
		p.enterPattern()
		return true
	}
	p.expected++
	p.bump()
	return true
}

// CurrentPattern returns the visible part of the current pattern.
func (p *ProblemSolving) CurrentPattern() ([]int, bool) {
	if p.phase != PhasePattern || p.item >= len(p.set.Patterns) {
		return nil, false
	}
	pat := p.set.Patterns[p.item]
	return append([]int(nil), pat[:len(pat)-1]...), true
}

// CurrentSequence returns the current number sequence.
func (p *ProblemSolving) CurrentSequence() ([]int, bool) {
	if p.phase != PhaseSequence || p.exhausted || p.item >= len(p.set.Sequences) {
		return nil, false
	}
	return append([]int(nil), p.set.Sequences[p.item].Values...), true
}

// Exhausted reports that every sequence item has been answered.
func (p *ProblemSolving) Exhausted() bool { return p.exhausted }

// ItemCount returns the number of items in a phase.
func (p *ProblemSolving) ItemCount(phase string) int {
	switch phase {
	case PhaseTrail:
		return 1
	case PhasePattern:
		return len(p.set.Patterns)
	case PhaseSequence:
		return len(p.set.Sequences)
	}
	return 0
}

// ParseAnswer reads a numeric answer. Surrounding whitespace is ignored.
// Trailing junk such as "12abc" is rejected; the answer inputs only accept
// digits and '-', so this matters only to direct callers.
func ParseAnswer(input string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Submit scores a numeric answer in the pattern or sequence phase.
// Unparsable input counts as incorrect.
func (p *ProblemSolving) Submit(input string) (correct, ok bool) {
	var want int
	switch {
	case p.phase == PhasePattern:
		pat := p.set.Patterns[p.item]
		want = pat[len(pat)-1]
	case p.phase == PhaseSequence && !p.exhausted:
		want = p.set.Sequences[p.item].Next
	default:
		return false, false
	}

	got, parsed := ParseAnswer(input)
	correct = parsed && got == want
	if correct {
		p.scores = p.scores.Increment(p.phase)
	}
	p.record(EventResponse, correct, describeInput(input))

	switch {
	case p.item < p.ItemCount(p.phase)-1:
		p.nextItem()
	case p.phase == PhasePattern:
		p.enterSequence()
	default:
		p.finishSequence()
	}
	return correct, true
}

// Result returns the score snapshot.
func (p *ProblemSolving) Result() Result {
	return p.result(p.Lines())
}

// Lines returns the score panel rows.
func (p *ProblemSolving) Lines() []ScoreLine {
	return []ScoreLine{
		{Phase: PhaseTrail, Label: "Trail Making", Value: p.scores.Get(PhaseTrail), Max: 1, Unit: UnitCount},
		{Phase: PhasePattern, Label: "Pattern Recognition", Value: p.scores.Get(PhasePattern), Max: len(p.set.Patterns), Unit: UnitCount},
		{Phase: PhaseSequence, Label: "Number Sequences", Value: p.scores.Get(PhaseSequence), Max: len(p.set.Sequences), Unit: UnitCount},
	}
}

// enterTrail generates the circles for this activation of the phase.
func (p *ProblemSolving) enterTrail() {
	p.enter(PhaseTrail)
	p.circles = p.gen.Circles(p.cfg.Circles, p.cfg.Width, p.cfg.Height, p.cfg.Margin)
	p.path = nil
	p.expected = 1
	if len(p.circles) == 0 {
		p.enterPattern()
	}
}

func (p *ProblemSolving) enterPattern() {
	p.enter(PhasePattern)
	p.expected = 0
	if len(p.set.Patterns) == 0 {
		p.enterSequence()
	}
}

func (p *ProblemSolving) enterSequence() {
	p.enter(PhaseSequence)
	if len(p.set.Sequences) == 0 {
		p.finishSequence()
	}
}

// finishSequence keeps the phase at sequence. Only CompleteAfterSequence
// moves the test to done and notifies the host.
func (p *ProblemSolving) finishSequence() {
	p.exhausted = true
	p.bump()
	if !p.cfg.CompleteAfterSequence {
		return
	}
	p.enter(PhaseDone)
	p.finish(true)
}
