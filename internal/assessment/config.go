package assessment

import "time"

// AttentionConfig tunes the attention test.
type AttentionConfig struct {
	// Reveal is how long each digit sequence stays on screen.
	Reveal time.Duration

	// CPTLength is the number of symbols in the continuous performance run.
	CPTLength int

	// CPTDisplay is how long each CPT symbol is visible.
	CPTDisplay time.Duration

	// GridSize is the side length of the visual search grid.
	GridSize int

	// TargetProbability is the chance that a grid cell holds the target.
	TargetProbability float64

	// MinTargets regenerates grids with fewer targets. Zero allows an empty
	// grid, which completes immediately.
	MinTargets int
}

// DefaultAttentionConfig returns the standard timings.
func DefaultAttentionConfig() AttentionConfig {
	return AttentionConfig{
		Reveal:            2000 * time.Millisecond,
		CPTLength:         30,
		CPTDisplay:        1500 * time.Millisecond,
		GridSize:          6,
		TargetProbability: 0.3,
		MinTargets:        1,
	}
}

// LanguageConfig tunes the language test.
type LanguageConfig struct {
	// FluencyLetter overrides the stimulus set's letter when non-empty.
	FluencyLetter string
}

// DefaultLanguageConfig keeps the stimulus set's letter.
func DefaultLanguageConfig() LanguageConfig {
	return LanguageConfig{}
}

// ProblemSolvingConfig tunes the problem-solving test.
type ProblemSolvingConfig struct {
	// Circles is the number of trail-making targets.
	Circles int

	// Width and Height are the drawing surface size in surface units.
	Width  float64
	Height float64

	// Margin keeps circle centres away from the edges.
	Margin float64

	// Radius is the hit radius of a circle.
	Radius float64

	// CompleteAfterSequence ends the test and fires the completion callback
	// after the last sequence item. When false the test stays in the
	// sequence phase and never notifies the host.
	CompleteAfterSequence bool
}

// DefaultProblemSolvingConfig returns the standard trail-making surface.
func DefaultProblemSolvingConfig() ProblemSolvingConfig {
	return ProblemSolvingConfig{
		Circles: 12,
		Width:   400,
		Height:  400,
		Margin:  50,
		Radius:  25,
	}
}
