package tasks

import "sync"

// Subscription is a live view of one owner's task set. Changes delivers the
// full current snapshot after every store change, coalescing bursts; the
// channel is closed by Unsubscribe. Unsubscribe is idempotent.
type Subscription struct {
	changes chan []Task
	dirty   chan struct{}
	done    chan struct{}
	unsub   func()
	once    sync.Once
}

// Changes returns the snapshot stream. It is closed after Unsubscribe.
func (s *Subscription) Changes() <-chan []Task {
	return s.changes
}

// Done is closed when the subscription ends.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Unsubscribe ends the subscription and releases its fanout registration.
// Calling it more than once is a no-op.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.unsub()
		close(s.done)
	})
}

// markDirty requests a fresh snapshot delivery. The dirty channel carries
// at most one pending request, so bursts collapse into one delivery.
func (s *Subscription) markDirty() {
	select {
	case s.dirty <- struct{}{}:
	default:
	}
}

func (s *Subscription) loop(list func() []Task) {
	defer close(s.changes)
	for {
		select {
		case <-s.done:
			return
		case <-s.dirty:
		}

		snapshot := list()
		select {
		case <-s.done:
			return
		case s.changes <- snapshot:
		}
	}
}
