package tasks

import (
	"strings"

	"github.com/juju/pubsub/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	apperrors "github.com/lucasmrqs/go-tarefas-server/internal/errors"
)

// CreationNotifier schedules the local "new task" alert after a create.
type CreationNotifier interface {
	ScheduleCreationAlert(text string)
}

// Repository owns the task collection: mutations write through the store
// seam and publish a change to the owner's fanout topic; Watch subscribes
// to that topic and re-reads the snapshot on every change. Consistency is
// eventual — a mutation does not synchronously guarantee the next delivery
// reflects it.
type Repository struct {
	store    Store
	hub      *pubsub.SimpleHub
	notifier CreationNotifier
	log      zerolog.Logger
}

func NewRepository(store Store, notifier CreationNotifier, log zerolog.Logger) (*Repository, error) {
	if store == nil {
		return nil, errors.New("[NewRepository] store is required")
	}
	return &Repository{
		store:    store,
		hub:      pubsub.NewSimpleHub(nil),
		notifier: notifier,
		log:      log,
	}, nil
}

func changeTopic(ownerID string) string {
	return "tasks.changed." + ownerID
}

// Watch opens a live subscription over the owner's task set. The initial
// snapshot is delivered first, then one snapshot per observed change. The
// caller must Unsubscribe when done.
func (r *Repository) Watch(ownerID string) (*Subscription, error) {
	if ownerID == "" {
		return nil, apperrors.Wrapf(apperrors.ErrNoActiveSession, "[Repository.Watch]")
	}

	s := &Subscription{
		changes: make(chan []Task, 1),
		dirty:   make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	s.unsub = r.hub.Subscribe(changeTopic(ownerID), func(string, interface{}) {
		s.markDirty()
	})
	s.markDirty()
	go s.loop(func() []Task { return r.snapshot(ownerID) })
	return s, nil
}

// List returns a one-shot snapshot of the owner's tasks in arrival order.
func (r *Repository) List(ownerID string) ([]Task, error) {
	if ownerID == "" {
		return nil, apperrors.Wrapf(apperrors.ErrNoActiveSession, "[Repository.List]")
	}
	list, err := r.store.ListByOwner(ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "[Repository.List] ListByOwner")
	}
	return list, nil
}

// Create inserts a new task with the completion flag unset. Whitespace-only
// text is a local no-op returning (nil, nil). On success the creation
// notifier is triggered with the task text.
func (r *Repository) Create(ownerID, text string) (*Task, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if ownerID == "" {
		return nil, apperrors.Wrapf(apperrors.ErrNoActiveSession, "[Repository.Create]")
	}

	t := &Task{OwnerID: ownerID, Text: text, Done: false}
	if err := r.store.Insert(t); err != nil {
		return nil, errors.Wrap(err, "[Repository.Create] Insert")
	}
	r.publish(ownerID)

	if r.notifier != nil {
		r.notifier.ScheduleCreationAlert(t.Text)
	}
	return t, nil
}

// UpdateText rewrites the text of the identified task. The completion flag
// is untouched.
func (r *Repository) UpdateText(taskID, text string) error {
	t, err := r.store.Get(taskID)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrTaskNotFound, "[Repository.UpdateText] %s", taskID)
	}
	if err := r.store.UpdateText(taskID, text); err != nil {
		return errors.Wrap(err, "[Repository.UpdateText] UpdateText")
	}
	r.publish(t.OwnerID)
	return nil
}

// SetDone flips the completion flag of the identified task.
func (r *Repository) SetDone(taskID string, done bool) error {
	t, err := r.store.Get(taskID)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrTaskNotFound, "[Repository.SetDone] %s", taskID)
	}
	if err := r.store.SetDone(taskID, done); err != nil {
		return errors.Wrap(err, "[Repository.SetDone] SetDone")
	}
	r.publish(t.OwnerID)
	return nil
}

// Delete removes the identified task. A missing ID is reported as
// ErrTaskNotFound and leaves delivered snapshots unchanged.
func (r *Repository) Delete(taskID string) error {
	t, err := r.store.Get(taskID)
	if err != nil {
		return apperrors.Wrapf(apperrors.ErrTaskNotFound, "[Repository.Delete] %s", taskID)
	}
	if err := r.store.Delete(taskID); err != nil {
		return errors.Wrap(err, "[Repository.Delete] Delete")
	}
	r.publish(t.OwnerID)
	return nil
}

func (r *Repository) publish(ownerID string) {
	r.hub.Publish(changeTopic(ownerID), nil)
}

func (r *Repository) snapshot(ownerID string) []Task {
	list, err := r.store.ListByOwner(ownerID)
	if err != nil {
		r.log.Error().Err(err).Str("owner_id", ownerID).Msg("snapshot read failed")
		return nil
	}
	return list
}
