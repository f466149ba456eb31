// Package timer provides cancellable deadline tasks for Bubble Tea screens.
//
// A Scope arms at most one live deadline at a time. Rearming or closing the
// scope cancels whatever was outstanding: the pending command returns no
// message, and an ExpiredMsg that was already in flight fails Live because its
// epoch no longer matches.
package timer

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
)

// ExpiredMsg is delivered when an armed deadline elapses.
type ExpiredMsg struct {
	Owner string
	Epoch int
}

// Scope owns the deadlines of one screen.
type Scope struct {
	owner  string
	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc
	epoch  int
	armed  bool
	closed bool
}

// NewScope creates a scope whose messages are tagged with owner.
func NewScope(parent context.Context, owner string) *Scope {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return &Scope{owner: owner, parent: parent, ctx: ctx, cancel: cancel, epoch: -1}
}

// Owner returns the tag carried by this scope's messages.
func (s *Scope) Owner() string { return s.owner }

// Arm cancels any outstanding deadline and schedules a new one for epoch.
// It returns nil once the scope is closed.
func (s *Scope) Arm(epoch int, d time.Duration) tea.Cmd {
	if s.closed {
		return nil
	}
	s.Cancel()
	s.epoch = epoch
	s.armed = true

	ctx := s.ctx
	owner := s.owner
	return func() tea.Msg {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			return ExpiredMsg{Owner: owner, Epoch: epoch}
		}
	}
}

// Cancel drops the outstanding deadline, if any. The scope stays usable.
func (s *Scope) Cancel() {
	if s.closed {
		return
	}
	s.cancel()
	s.ctx, s.cancel = context.WithCancel(s.parent)
	s.armed = false
}

// Live reports whether msg belongs to this scope's current deadline. A live
// message disarms the scope.
func (s *Scope) Live(msg ExpiredMsg) bool {
	if s.closed || !s.armed || msg.Owner != s.owner || msg.Epoch != s.epoch {
		return false
	}
	s.armed = false
	return true
}

// Armed reports whether a deadline is outstanding.
func (s *Scope) Armed() bool { return s.armed }

// Close cancels everything; later Arm calls are no-ops.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.cancel()
	s.armed = false
	s.closed = true
}
