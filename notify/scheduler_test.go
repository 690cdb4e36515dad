package notify_test

import (
	"sync"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/require"

	"github.com/lucasmrqs/go-tarefas-server/notify"
)

type recordingSink struct {
	mu        sync.Mutex
	delivered []notify.Notification
}

func (s *recordingSink) Deliver(n notify.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delivered = append(s.delivered, n)
}

func (s *recordingSink) snapshot() []notify.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]notify.Notification(nil), s.delivered...)
}

func TestScheduler_FiresAfterDelay(t *testing.T) {
	clk := testclock.NewClock(time.Time{})
	sink := &recordingSink{}
	s := notify.NewScheduler(sink, time.Second, notify.WithClock(clk))

	s.ScheduleCreationAlert("comprar pão")

	// Nothing may fire before the delay elapses.
	err := clk.WaitAdvance(500*time.Millisecond, time.Second, 1)
	require.NoError(t, err)
	require.Empty(t, sink.snapshot())

	err = clk.WaitAdvance(500*time.Millisecond, time.Second, 1)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		got := sink.snapshot()
		return len(got) == 1 &&
			got[0].Title == notify.CreationTitle &&
			got[0].Body == "comprar pão"
	}, time.Second, 10*time.Millisecond)
}

func TestScheduler_EachCreateGetsItsOwnAlert(t *testing.T) {
	clk := testclock.NewClock(time.Time{})
	sink := &recordingSink{}
	s := notify.NewScheduler(sink, time.Second, notify.WithClock(clk))

	s.ScheduleCreationAlert("primeira")
	s.ScheduleCreationAlert("segunda")

	err := clk.WaitAdvance(time.Second, time.Second, 2)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return len(sink.snapshot()) == 2
	}, time.Second, 10*time.Millisecond)

	bodies := map[string]bool{}
	for _, n := range sink.snapshot() {
		require.Equal(t, notify.CreationTitle, n.Title)
		bodies[n.Body] = true
	}
	require.True(t, bodies["primeira"])
	require.True(t, bodies["segunda"])
}
