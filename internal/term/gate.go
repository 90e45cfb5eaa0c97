package term

// tickGate lets at most one tick wait in the gui event queue.
type tickGate chan struct{}

func newTickGate() tickGate { return make(tickGate, 1) }

// acquire reports whether the caller may queue a tick. It fails while a
// previously queued tick has not run yet.
func (g tickGate) acquire() bool {
	select {
	case g <- struct{}{}:
		return true
	default:
		return false
	}
}

// release frees the slot; the queued tick calls it when it starts running.
func (g tickGate) release() {
	select {
	case <-g:
	default:
	}
}
