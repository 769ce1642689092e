package store

import (
	"sync"
)

// Listener вызывается после применения действия.
// prev и next неизменяемые снимки состояния до и после действия.
type Listener func(action Action, prev, next State)

// Store единственная точка изменения состояния кейсов.
type Store struct {
	state     State
	listeners []listenerEntry
	nextID    int
	mu        sync.Mutex
	subMu     sync.RWMutex
}

type listenerEntry struct {
	fn Listener
	id int
}

// New создает хранилище с начальным состоянием initial.
func New(initial State) *Store {
	if initial.Cases == nil {
		initial.Cases = InitialState().Cases
	}
	if initial.Deleted == nil {
		initial.Deleted = InitialState().Deleted
	}
	if initial.PendingDeletes == nil {
		initial.PendingDeletes = map[string]struct{}{}
	}
	return &Store{state: initial}
}

// State возвращает текущий снимок состояния.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch применяет действие и уведомляет подписчиков.
// Подписчики вызываются вне блокировки и могут сами вызывать Dispatch.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	prev := s.state
	next := Reduce(prev, a)
	s.state = next
	s.mu.Unlock()

	s.subMu.RLock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l.fn)
	}
	s.subMu.RUnlock()

	for _, l := range listeners {
		l(a, prev, next)
	}
	return next
}

// Subscribe регистрирует подписчика и возвращает функцию отписки.
func (s *Store) Subscribe(l Listener) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: l})

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		for i, entry := range s.listeners {
			if entry.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}
