package anyon

import (
	"sync"
	"time"
)

// space hands job results to whoever awaits them. Every result is delivered
// once and then dropped.
type space struct {
	mu      sync.Mutex
	values  map[string]Result
	waiting map[string][]chan Result
}

func newSpace() *space {
	return &space{
		values:  make(map[string]Result),
		waiting: make(map[string][]chan Result),
	}
}

// Store records the result of job id and notifies any waiting channels.
func (s *space) Store(id string, value any, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := Result{
		Value:     value,
		Error:     err,
		CreatedAt: time.Now(),
	}

	channels, ok := s.waiting[id]
	if !ok {
		s.values[id] = result
		return
	}

	for _, ch := range channels {
		ch <- result
		close(ch)
	}
	delete(s.waiting, id)
}

// Await returns a channel that will receive the result when it's available
func (s *space) Await(id string) chan Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Result, 1)

	if result, ok := s.values[id]; ok {
		delete(s.values, id)
		ch <- result
		close(ch)
		return ch
	}

	s.waiting[id] = append(s.waiting[id], ch)
	return ch
}

// Pending returns the number of results stored but not yet awaited.
func (s *space) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}
