package summary

import "context"

// Pending is a handle on one in-flight generation. The caller may wait for
// the result or drop the handle entirely; a dropped handle never faults and
// the late-arriving result is simply discarded with the goroutine.
type Pending struct {
	done   chan struct{}
	result string
}

// Go runs fn on its own goroutine and returns a handle on the eventual
// result. fn follows the collaborator contract: it must resolve to a string,
// never panic or block forever.
func Go(fn func() string) *Pending {
	p := &Pending{done: make(chan struct{})}
	go func() {
		p.result = fn()
		close(p.done)
	}()
	return p
}

// Done returns a channel closed once the result is available.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the result is available or ctx is cancelled. The boolean
// is false when the caller stopped waiting first; the generation itself keeps
// running and its result is discarded.
func (p *Pending) Wait(ctx context.Context) (string, bool) {
	select {
	case <-p.done:
		return p.result, true
	case <-ctx.Done():
		return "", false
	}
}
