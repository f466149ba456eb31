package assessment

import (
	"fmt"
	"slices"
	"time"

	"github.com/abhisek/mindscan/internal/scoring"
	"github.com/abhisek/mindscan/internal/stimgen"
	"github.com/abhisek/mindscan/internal/stimuli"
)

// Attention test phases, in order.
const (
	PhaseForward  = "forward"
	PhaseBackward = "backward"
	PhaseCPT      = "cpt"
	PhaseVisual   = "visual"
)

// CPTResponse records one detection made during the CPT phase.
type CPTResponse struct {
	Index   int
	Symbol  string
	Correct bool
}

type cptRun struct {
	symbols   []string
	index     int
	visible   bool
	detected  bool
	responses []CPTResponse
}

// Attention is the digit span, CPT and visual search test.
type Attention struct {
	base
	cfg AttentionConfig
	set stimuli.Attention

	revealing bool
	cpt       cptRun
	grid      stimgen.Grid
	selected  []int
}

var _ Timed = (*Attention)(nil)

// NewAttention starts an attention session in the forward phase.
func NewAttention(set stimuli.Attention, cfg AttentionConfig, opts Options) *Attention {
	a := &Attention{
		base: newBase(TestAttention, opts, PhaseForward, PhaseBackward, PhaseCPT, PhaseVisual),
		cfg:  cfg,
		set:  set,
	}
	a.enterSpan(PhaseForward)
	return a
}

// Revealing reports whether the current digit sequence is still on screen.
func (a *Attention) Revealing() bool {
	return a.inSpan() && a.revealing
}

// CurrentSpan returns the digit sequence of the current item.
func (a *Attention) CurrentSpan() (string, bool) {
	spans := a.spans()
	if spans == nil || a.item >= len(spans) {
		return "", false
	}
	return spans[a.item], true
}

// SpanCount returns the number of items in the phase.
func (a *Attention) SpanCount(phase string) int {
	switch phase {
	case PhaseForward:
		return len(a.set.Forward)
	case PhaseBackward:
		return len(a.set.Backward)
	}
	return 0
}

// SubmitSpan checks a digit span answer. The answer must equal the stored
// string exactly. ok is false when no answer is expected right now.
func (a *Attention) SubmitSpan(input string) (correct, ok bool) {
	if !a.inSpan() || a.revealing {
		return false, false
	}
	spans := a.spans()
	correct = input == spans[a.item]
	if correct {
		a.scores = a.scores.Increment(a.phase)
	}
	a.record(EventResponse, correct, describeInput(input))

	switch {
	case a.item < len(spans)-1:
		a.nextItem()
		a.revealing = true
	case a.phase == PhaseForward:
		a.enterSpan(PhaseBackward)
	default:
		a.enterCPT()
	}
	return correct, true
}

// CPTSymbol returns the visible symbol, if any.
func (a *Attention) CPTSymbol() (string, bool) {
	if a.phase != PhaseCPT || !a.cpt.visible {
		return "", false
	}
	return a.cpt.symbols[a.cpt.index], true
}

// CPTProgress returns the index of the current symbol and the run length.
func (a *Attention) CPTProgress() (index, length int) {
	return a.cpt.index, len(a.cpt.symbols)
}

// CPTSymbols returns the generated symbol stream.
func (a *Attention) CPTSymbols() []string {
	return append([]string(nil), a.cpt.symbols...)
}

// Target returns the symbol the user must detect.
func (a *Attention) Target() string { return a.set.Target }

// CanDetect reports whether the detect action is enabled.
func (a *Attention) CanDetect() bool {
	return a.phase == PhaseCPT && a.cpt.visible && !a.cpt.detected
}

// Detect registers a detection on the visible symbol. A detection is correct
// when the symbol is the target. Detecting on the final symbol ends the run.
func (a *Attention) Detect() bool {
	if !a.CanDetect() {
		return false
	}
	symbol := a.cpt.symbols[a.cpt.index]
	resp := CPTResponse{Index: a.cpt.index, Symbol: symbol, Correct: symbol == a.set.Target}
	a.cpt.responses = append(a.cpt.responses, resp)
	a.cpt.detected = true
	a.record(EventResponse, resp.Correct, fmt.Sprintf("symbol=%s index=%d", symbol, resp.Index))

	if a.cpt.index == len(a.cpt.symbols)-1 {
		a.finishCPT()
	}
	return true
}

// CPTResponses returns the detections made so far.
func (a *Attention) CPTResponses() []CPTResponse {
	return append([]CPTResponse(nil), a.cpt.responses...)
}

// CPTMetrics summarises detections against the presented stream.
func (a *Attention) CPTMetrics() CPTMetrics {
	presented := a.cpt.index + 1
	if a.phase != PhaseCPT {
		presented = len(a.cpt.symbols)
	}
	return ComputeCPTMetrics(a.cpt.symbols[:min(presented, len(a.cpt.symbols))], a.set.Target, a.cpt.responses)
}

// Grid returns the visual search board.
func (a *Attention) Grid() stimgen.Grid { return a.grid }

// Selected reports whether a grid cell is selected.
func (a *Attention) Selected(index int) bool {
	return slices.Contains(a.selected, index)
}

// SelectedCount returns the number of selected cells.
func (a *Attention) SelectedCount() int { return len(a.selected) }

// ToggleCell flips the selection of a grid cell. Once the number of selected
// cells equals the number of targets the visual score is computed and the
// test completes.
func (a *Attention) ToggleCell(index int) bool {
	if a.phase != PhaseVisual || index < 0 || index >= len(a.grid.Cells) {
		return false
	}
	if i := slices.Index(a.selected, index); i >= 0 {
		a.selected = slices.Delete(a.selected, i, i+1)
	} else {
		a.selected = append(a.selected, index)
	}
	a.checkVisual()
	return true
}

// Deadline implements Timed.
func (a *Attention) Deadline() (Deadline, bool) {
	switch {
	case a.inSpan() && a.revealing:
		return Deadline{Epoch: a.epoch, After: a.cfg.Reveal}, true
	case a.phase == PhaseCPT && a.cpt.visible:
		return Deadline{Epoch: a.epoch, After: a.cfg.CPTDisplay}, true
	}
	return Deadline{}, false
}

// Expire implements Timed. Deadlines armed for an earlier epoch are ignored.
func (a *Attention) Expire(epoch int) bool {
	if epoch != a.epoch {
		return false
	}
	switch {
	case a.inSpan() && a.revealing:
		a.revealing = false
		a.bump()
		return true
	case a.phase == PhaseCPT && a.cpt.visible:
		a.symbolElapsed()
		return true
	}
	return false
}

// Result returns the score snapshot.
func (a *Attention) Result() Result {
	return a.result(a.Lines())
}

// Lines returns the score panel rows.
func (a *Attention) Lines() []ScoreLine {
	return []ScoreLine{
		{Phase: PhaseForward, Label: "Digit Span (Forward)", Value: a.scores.Get(PhaseForward), Max: len(a.set.Forward), Unit: UnitCount},
		{Phase: PhaseBackward, Label: "Digit Span (Backward)", Value: a.scores.Get(PhaseBackward), Max: len(a.set.Backward), Unit: UnitCount},
		{Phase: PhaseCPT, Label: "CPT Accuracy", Value: a.scores.Get(PhaseCPT), Max: 100, Unit: UnitPercent},
		{Phase: PhaseVisual, Label: "Visual Search", Value: a.scores.Get(PhaseVisual), Max: 100, Unit: UnitPercent},
	}
}

// RevealDuration returns how long a digit sequence stays visible.
func (a *Attention) RevealDuration() time.Duration { return a.cfg.Reveal }

func (a *Attention) inSpan() bool {
	return a.phase == PhaseForward || a.phase == PhaseBackward
}

func (a *Attention) spans() []string {
	switch a.phase {
	case PhaseForward:
		return a.set.Forward
	case PhaseBackward:
		return a.set.Backward
	}
	return nil
}

func (a *Attention) enterSpan(phase string) {
	a.enter(phase)
	a.revealing = true
	if len(a.spans()) == 0 {
		a.revealing = false
		if phase == PhaseForward {
			a.enterSpan(PhaseBackward)
			return
		}
		a.enterCPT()
	}
}

// enterCPT generates the symbol stream for this activation of the phase.
func (a *Attention) enterCPT() {
	a.enter(PhaseCPT)
	a.revealing = false
	a.cpt = cptRun{symbols: a.gen.Symbols(a.set.Symbols, a.cfg.CPTLength)}
	if len(a.cpt.symbols) == 0 {
		a.finishCPT()
		return
	}
	a.cpt.visible = true
}

func (a *Attention) symbolElapsed() {
	a.cpt.visible = false
	if a.cpt.index >= len(a.cpt.symbols)-1 {
		a.finishCPT()
		return
	}
	a.cpt.index++
	a.cpt.detected = false
	a.cpt.visible = true
	a.bump()
}

func (a *Attention) finishCPT() {
	correct := 0
	for _, r := range a.cpt.responses {
		if r.Correct {
			correct++
		}
	}
	a.cpt.visible = false
	a.scores = a.scores.With(PhaseCPT, scoring.Percent(correct, len(a.cpt.symbols)))
	a.enterVisual()
}

// enterVisual generates the grid for this activation of the phase.
func (a *Attention) enterVisual() {
	a.enter(PhaseVisual)
	a.grid = a.gen.GridWithMinTargets(a.cfg.GridSize, a.cfg.TargetProbability, a.set.Target, a.set.Neutral, a.cfg.MinTargets)
	a.selected = nil
	a.checkVisual()
}

func (a *Attention) checkVisual() {
	if len(a.selected) != len(a.grid.Targets) {
		return
	}
	hits := 0
	for _, idx := range a.selected {
		if a.grid.IsTarget(idx) {
			hits++
		}
	}
	accuracy := 100
	if len(a.grid.Targets) > 0 {
		accuracy = scoring.Percent(hits, len(a.grid.Targets))
	}
	a.scores = a.scores.With(PhaseVisual, accuracy)
	a.enter(PhaseDone)
	a.finish(true)
}
