package assessment

// Notifier invokes the host's completion callback at most once.
type Notifier struct {
	fn    func()
	fired bool
}

// NewNotifier wraps fn. A nil fn is allowed; Fire still records completion.
func NewNotifier(fn func()) *Notifier {
	return &Notifier{fn: fn}
}

// Fire calls the callback on the first invocation only. It reports whether
// this call was the one that fired.
func (n *Notifier) Fire() bool {
	if n == nil || n.fired {
		return false
	}
	n.fired = true
	if n.fn != nil {
		n.fn()
	}
	return true
}

// Fired reports whether the notifier has already fired.
func (n *Notifier) Fired() bool {
	return n != nil && n.fired
}
