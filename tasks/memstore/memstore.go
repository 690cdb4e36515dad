// Package memstore is an in-memory tasks.Store keeping arrival order. It
// stands in for the hosted document store in tests and the dev server.
package memstore

import (
	"sync"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/lucasmrqs/go-tarefas-server/internal/errors"
	"github.com/lucasmrqs/go-tarefas-server/tasks"
)

var _ tasks.Store = (*Store)(nil)

type Store struct {
	docs []*tasks.Task // arrival order
	ids  map[string]*tasks.Task
	lock sync.RWMutex
}

func New() *Store {
	return &Store{ids: make(map[string]*tasks.Task)}
}

func (s *Store) Insert(t *tasks.Task) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	stored := *t
	s.docs = append(s.docs, &stored)
	s.ids[stored.ID] = &stored
	return nil
}

func (s *Store) Get(id string) (*tasks.Task, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	doc, ok := s.ids[id]
	if !ok {
		return nil, apperrors.ErrTaskNotFound
	}
	copied := *doc
	return &copied, nil
}

func (s *Store) UpdateText(id, text string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	doc, ok := s.ids[id]
	if !ok {
		return apperrors.ErrTaskNotFound
	}
	doc.Text = text
	return nil
}

func (s *Store) SetDone(id string, done bool) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	doc, ok := s.ids[id]
	if !ok {
		return apperrors.ErrTaskNotFound
	}
	doc.Done = done
	return nil
}

func (s *Store) Delete(id string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.ids[id]; !ok {
		return apperrors.ErrTaskNotFound
	}
	delete(s.ids, id)
	for i, doc := range s.docs {
		if doc.ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) ListByOwner(ownerID string) ([]tasks.Task, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	list := make([]tasks.Task, 0)
	for _, doc := range s.docs {
		if doc.OwnerID == ownerID {
			list = append(list, *doc)
		}
	}
	return list, nil
}
