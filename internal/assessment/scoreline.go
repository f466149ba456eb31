package assessment

import "fmt"

// Unit selects how a score is displayed.
type Unit int

const (
	UnitCount   Unit = iota // "3/4"
	UnitPercent             // "73%"
	UnitWords               // "5 words"
)

// ScoreLine is one row of a score panel.
type ScoreLine struct {
	Phase string
	Label string
	Value int
	Max   int
	Unit  Unit
}

// Display formats the value with its unit.
func (l ScoreLine) Display() string {
	switch l.Unit {
	case UnitPercent:
		return fmt.Sprintf("%d%%", l.Value)
	case UnitWords:
		if l.Value == 1 {
			return "1 word"
		}
		return fmt.Sprintf("%d words", l.Value)
	default:
		return fmt.Sprintf("%d/%d", l.Value, l.Max)
	}
}

// Fraction returns the score as a value in [0,1] for progress bars. Word
// counts have no maximum and return -1.
func (l ScoreLine) Fraction() float64 {
	switch l.Unit {
	case UnitPercent:
		return float64(l.Value) / 100
	case UnitWords:
		return -1
	default:
		if l.Max <= 0 {
			return 0
		}
		return float64(l.Value) / float64(l.Max)
	}
}
