package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/abhisek/mindscan/internal/assessment"
)

// Settings are the resolved values used to build sessions.
type Settings struct {
	Seed           *int64
	LogFile        string
	Attention      assessment.AttentionConfig
	Language       assessment.LanguageConfig
	ProblemSolving assessment.ProblemSolvingConfig
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Attention:      assessment.DefaultAttentionConfig(),
		Language:       assessment.DefaultLanguageConfig(),
		ProblemSolving: assessment.DefaultProblemSolvingConfig(),
	}
}

// Resolve overlays the keys present in fc on the defaults.
func Resolve(fc FileConfig) Settings {
	s := Defaults()
	if fc.App.Seed != nil {
		seed := *fc.App.Seed
		s.Seed = &seed
	}
	setString(&s.LogFile, fc.App.LogFile)

	a := fc.Attention
	setMillis(&s.Attention.Reveal, a.RevealMS)
	setInt(&s.Attention.CPTLength, a.CPTLength)
	setMillis(&s.Attention.CPTDisplay, a.CPTDisplayMS)
	setInt(&s.Attention.GridSize, a.GridSize)
	setFloat(&s.Attention.TargetProbability, a.TargetProbability)
	setInt(&s.Attention.MinTargets, a.MinTargets)

	setString(&s.Language.FluencyLetter, fc.Language.FluencyLetter)

	p := fc.ProblemSolving
	setInt(&s.ProblemSolving.Circles, p.Circles)
	setFloat(&s.ProblemSolving.Width, p.SurfaceWidth)
	setFloat(&s.ProblemSolving.Height, p.SurfaceHeight)
	setFloat(&s.ProblemSolving.Margin, p.SurfaceMargin)
	setFloat(&s.ProblemSolving.Radius, p.CircleRadius)
	if p.CompleteAfterSequence != nil {
		s.ProblemSolving.CompleteAfterSequence = *p.CompleteAfterSequence
	}
	return s
}

// Load reads path and resolves it.
func Load(path string) (Settings, error) {
	fc, err := LoadConfig(path)
	if err != nil {
		return Settings{}, err
	}
	s := Resolve(fc)
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return s, nil
}

// Validate reports every out-of-range value.
func (s Settings) Validate() error {
	var errs []error
	a := s.Attention
	if a.Reveal <= 0 {
		errs = append(errs, errors.New("attention.reveal-ms must be positive"))
	}
	if a.CPTLength < 1 {
		errs = append(errs, errors.New("attention.cpt-length must be at least 1"))
	}
	if a.CPTDisplay <= 0 {
		errs = append(errs, errors.New("attention.cpt-display-ms must be positive"))
	}
	if a.GridSize < 1 || a.GridSize > 12 {
		errs = append(errs, errors.New("attention.grid-size must be between 1 and 12"))
	}
	if a.TargetProbability < 0 || a.TargetProbability > 1 {
		errs = append(errs, errors.New("attention.target-probability must be within [0, 1]"))
	}
	if a.MinTargets < 0 || a.MinTargets > a.GridSize*a.GridSize {
		errs = append(errs, errors.New("attention.min-targets must fit in the grid"))
	}
	if a.MinTargets > 0 && a.TargetProbability == 0 {
		errs = append(errs, errors.New("attention.min-targets needs a non-zero target-probability"))
	}

	if l := s.Language.FluencyLetter; l != "" && utf8.RuneCountInString(l) != 1 {
		errs = append(errs, fmt.Errorf("language.fluency-letter %q must be a single letter", l))
	}

	p := s.ProblemSolving
	if p.Circles < 1 || p.Circles > 99 {
		errs = append(errs, errors.New("problem-solving.circles must be between 1 and 99"))
	}
	if p.Width <= 2*p.Margin || p.Height <= 2*p.Margin {
		errs = append(errs, errors.New("problem-solving surface must be larger than twice the margin"))
	}
	if p.Margin < 0 {
		errs = append(errs, errors.New("problem-solving.surface-margin must not be negative"))
	}
	if p.Radius <= 0 {
		errs = append(errs, errors.New("problem-solving.circle-radius must be positive"))
	}
	return errors.Join(errs...)
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setMillis(dst *time.Duration, v *int) {
	if v != nil {
		*dst = time.Duration(*v) * time.Millisecond
	}
}
