package tasks_test

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lucasmrqs/go-tarefas-server/internal/errors"
	"github.com/lucasmrqs/go-tarefas-server/tasks"
	"github.com/lucasmrqs/go-tarefas-server/tasks/memstore"
)

const ownerID = "owner-1"

type recordingNotifier struct {
	mu    sync.Mutex
	texts []string
}

func (n *recordingNotifier) ScheduleCreationAlert(text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.texts = append(n.texts, text)
}

func (n *recordingNotifier) recorded() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.texts...)
}

type testFixture struct {
	repo     *tasks.Repository
	notifier *recordingNotifier
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()
	notifier := &recordingNotifier{}
	repo, err := tasks.NewRepository(memstore.New(), notifier, zerolog.Nop())
	require.NoError(t, err)
	return &testFixture{repo: repo, notifier: notifier}
}

// waitForSnapshot reads delivered snapshots until one satisfies ok or the
// timeout elapses.
func waitForSnapshot(t *testing.T, sub *tasks.Subscription, ok func([]tasks.Task) bool) []tasks.Task {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case snapshot, open := <-sub.Changes():
			require.True(t, open, "subscription closed before expected snapshot")
			if ok(snapshot) {
				return snapshot
			}
		case <-deadline:
			t.Fatal("timed out waiting for snapshot")
		}
	}
}

func TestRepository_WatchDeliversInitialSnapshot(t *testing.T) {
	f := setupTestFixture(t)

	sub, err := f.repo.Watch(ownerID)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	snapshot := waitForSnapshot(t, sub, func([]tasks.Task) bool { return true })
	require.Empty(t, snapshot)
}

func TestRepository_WatchObservesCreate(t *testing.T) {
	f := setupTestFixture(t)

	sub, err := f.repo.Watch(ownerID)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	created, err := f.repo.Create(ownerID, "comprar pão")
	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotEmpty(t, created.ID)
	require.False(t, created.Done)

	snapshot := waitForSnapshot(t, sub, func(s []tasks.Task) bool { return len(s) == 1 })
	require.Equal(t, "comprar pão", snapshot[0].Text)
}

func TestRepository_WatchRequiresOwner(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.repo.Watch("")
	require.True(t, apperrors.Is(err, apperrors.ErrNoActiveSession))
}

func TestRepository_CreateBlankTextIsNoOp(t *testing.T) {
	f := setupTestFixture(t)

	created, err := f.repo.Create(ownerID, "   ")
	require.NoError(t, err)
	require.Nil(t, created)

	list, err := f.repo.List(ownerID)
	require.NoError(t, err)
	require.Empty(t, list)
	require.Empty(t, f.notifier.recorded())
}

func TestRepository_CreateSchedulesNotification(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.repo.Create(ownerID, "regar as plantas")
	require.NoError(t, err)
	require.Equal(t, []string{"regar as plantas"}, f.notifier.recorded())
}

func TestRepository_UpdateTextPreservesDoneFlag(t *testing.T) {
	f := setupTestFixture(t)

	created, err := f.repo.Create(ownerID, "lavar o carro")
	require.NoError(t, err)
	require.NoError(t, f.repo.SetDone(created.ID, true))

	require.NoError(t, f.repo.UpdateText(created.ID, "lavar a moto"))

	list, err := f.repo.List(ownerID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "lavar a moto", list[0].Text)
	require.True(t, list[0].Done)
}

func TestRepository_UpdateUnknownID(t *testing.T) {
	f := setupTestFixture(t)

	err := f.repo.UpdateText("missing", "whatever")
	require.True(t, apperrors.Is(err, apperrors.ErrTaskNotFound))
}

func TestRepository_SetDoneToggle(t *testing.T) {
	f := setupTestFixture(t)

	created, err := f.repo.Create(ownerID, "estudar")
	require.NoError(t, err)

	require.NoError(t, f.repo.SetDone(created.ID, true))
	list, err := f.repo.List(ownerID)
	require.NoError(t, err)
	require.True(t, list[0].Done)

	require.NoError(t, f.repo.SetDone(created.ID, false))
	list, err = f.repo.List(ownerID)
	require.NoError(t, err)
	require.False(t, list[0].Done)
}

func TestRepository_DeleteUnknownIDDoesNotPanic(t *testing.T) {
	f := setupTestFixture(t)

	require.NotPanics(t, func() {
		err := f.repo.Delete("missing")
		require.True(t, apperrors.Is(err, apperrors.ErrTaskNotFound))
	})
}

func TestRepository_DeleteObservedByWatcher(t *testing.T) {
	f := setupTestFixture(t)

	created, err := f.repo.Create(ownerID, "passear com o cachorro")
	require.NoError(t, err)

	sub, err := f.repo.Watch(ownerID)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	waitForSnapshot(t, sub, func(s []tasks.Task) bool { return len(s) == 1 })

	require.NoError(t, f.repo.Delete(created.ID))
	waitForSnapshot(t, sub, func(s []tasks.Task) bool { return len(s) == 0 })
}

func TestRepository_ListIsOwnerScoped(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.repo.Create(ownerID, "minha tarefa")
	require.NoError(t, err)
	_, err = f.repo.Create("owner-2", "tarefa alheia")
	require.NoError(t, err)

	list, err := f.repo.List(ownerID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "minha tarefa", list[0].Text)
}

func TestSubscription_UnsubscribeTwice(t *testing.T) {
	f := setupTestFixture(t)

	sub, err := f.repo.Watch(ownerID)
	require.NoError(t, err)

	require.NotPanics(t, func() {
		sub.Unsubscribe()
		sub.Unsubscribe()
	})

	// The loop owns the channel and closes it on unsubscribe; drain until
	// that happens.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, open := <-sub.Changes():
			if !open {
				return
			}
		case <-deadline:
			t.Fatal("changes channel never closed after unsubscribe")
		}
	}
}

func TestSubscription_NoDeliveryAfterUnsubscribe(t *testing.T) {
	f := setupTestFixture(t)

	sub, err := f.repo.Watch(ownerID)
	require.NoError(t, err)
	sub.Unsubscribe()
	for range sub.Changes() {
	}

	_, err = f.repo.Create(ownerID, "depois do cancelamento")
	require.NoError(t, err)

	select {
	case _, open := <-sub.Changes():
		require.False(t, open)
	case <-time.After(100 * time.Millisecond):
	}
}
