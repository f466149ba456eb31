// Package nav defines the four top-level routes and renders them as a tab bar.
package nav

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindscan/internal/ui/theme"
)

// Route paths.
const (
	PathHome       = "/"
	PathAssessment = "/assessment"
	PathProfile    = "/profile"
	PathAbout      = "/about"
)

// Route is one navigation target.
type Route struct {
	Path  string
	Label string
	Icon  string
	Key   string
}

var routes = []Route{
	{Path: PathHome, Label: "Home", Icon: "◎", Key: "f1"},
	{Path: PathAssessment, Label: "Assessment", Icon: "∿", Key: "f2"},
	{Path: PathProfile, Label: "Profile", Icon: "☺", Key: "f3"},
	{Path: PathAbout, Label: "About", Icon: "ⓘ", Key: "f4"},
}

// Routes returns the routes in bar order.
func Routes() []Route {
	return append([]Route(nil), routes...)
}

// Lookup finds a route by path.
func Lookup(path string) (Route, bool) {
	for _, r := range routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// ForKey maps a function key ("f1".."f4") to its route.
func ForKey(key string) (Route, bool) {
	for _, r := range routes {
		if r.Key == key {
			return r, true
		}
	}
	return Route{}, false
}

const (
	barIndent = 2
	separator = "  "
)

func (r Route) tab(active bool) string {
	text := fmt.Sprintf("%s %s %s", r.Icon, r.Label, strings.ToUpper(r.Key))
	if active {
		return theme.TabActive.Render(text)
	}
	return theme.TabInactive.Render(text)
}

func (r Route) tabWidth(active string) int {
	return lipgloss.Width(r.tab(r.Path == active))
}

// Bar renders the tab bar with the active route highlighted.
func Bar(active string, width int) string {
	tabs := make([]string, len(routes))
	for i, r := range routes {
		tabs[i] = r.tab(r.Path == active)
	}
	line := strings.Repeat(" ", barIndent) + strings.Join(tabs, separator)
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(line)
}

// HitTest returns the route whose tab covers column x.
func HitTest(active string, x int) (Route, bool) {
	pos := barIndent
	for _, r := range routes {
		w := r.tabWidth(active)
		if x >= pos && x < pos+w {
			return r, true
		}
		pos += w + len(separator)
	}
	return Route{}, false
}

// NavigateMsg asks the app to switch to the route at Path, discarding the
// current screen stack.
type NavigateMsg struct {
	Path string
}
