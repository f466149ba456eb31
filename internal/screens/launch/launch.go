// Package launch builds the screen that runs a given test.
package launch

import (
	"github.com/abhisek/mindscan/internal/assessment"
	"github.com/abhisek/mindscan/internal/screen"
	"github.com/abhisek/mindscan/internal/screens/attention"
	"github.com/abhisek/mindscan/internal/screens/language"
	"github.com/abhisek/mindscan/internal/screens/problemsolving"
	"github.com/abhisek/mindscan/internal/screens/testkit"
)

// Screen returns a fresh test screen for kind.
func Screen(kind assessment.TestKind, deps testkit.Deps) screen.Screen {
	switch kind {
	case assessment.TestLanguage:
		return language.New(deps)
	case assessment.TestProblemSolving:
		return problemsolving.New(deps)
	}
	return attention.New(deps)
}
