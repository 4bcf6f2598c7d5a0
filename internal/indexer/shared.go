package indexer

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/Adithya-Monish-Kumar-K/ftsearch/internal/indexer/index"
	"golang.org/x/sync/singleflight"
)

// Shared serializes access to an Engine for hosts with concurrent callers.
// Mutations take the write lock and bump a generation counter; searches run
// under the read lock, and identical searches issued against the same
// generation share one evaluation.
type Shared struct {
	mu         sync.RWMutex
	engine     *Engine
	generation uint64
	group      singleflight.Group
	logger     *slog.Logger
}

func NewShared(engine *Engine) *Shared {
	return &Shared{
		engine: engine,
		logger: slog.Default().With("component", "shared-engine"),
	}
}

func (s *Shared) Index(id string, text string, payload any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.engine.Index(id, text, payload)
}

func (s *Shared) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.engine.Delete(id)
}

func (s *Shared) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.engine.Clear()
}

func (s *Shared) SetIgnoreCase(ignore bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.engine.SetIgnoreCase(ignore)
}

// Search returns a result slice owned by the caller.
func (s *Shared) Search(query string) ([]Result, error) {
	s.mu.RLock()
	key := fmt.Sprintf("%d:%s", s.generation, query)
	s.mu.RUnlock()

	val, err, shared := s.group.Do(key, func() (interface{}, error) {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return s.engine.Search(query)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("search shared with concurrent caller", "query", query)
	}
	return slices.Clone(val.([]Result)), nil
}

func (s *Shared) Lookup(word string) (index.Posting, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.Lookup(word)
}

func (s *Shared) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.Count()
}
