package launch

import (
	"testing"

	"github.com/abhisek/mindscan/internal/assessment"
	"github.com/abhisek/mindscan/internal/config"
	"github.com/abhisek/mindscan/internal/screens/testkit"
	"github.com/abhisek/mindscan/internal/stimuli"
)

func TestScreenForEveryTest(t *testing.T) {
	deps := testkit.Deps{Stimuli: stimuli.MustDefault(), Settings: config.Defaults()}
	for _, kind := range assessment.AllTests() {
		s := Screen(kind, deps)
		if s.Title() != kind.Title() {
			t.Errorf("Screen(%s).Title() = %q, want %q", kind, s.Title(), kind.Title())
		}
	}
}
