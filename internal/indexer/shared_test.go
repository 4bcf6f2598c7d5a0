package indexer

import (
	"fmt"
	"sync"
	"testing"

	"github.com/Adithya-Monish-Kumar-K/ftsearch/pkg/config"
	fterrors "github.com/Adithya-Monish-Kumar-K/ftsearch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedConcurrentSearch(t *testing.T) {
	s := NewShared(newTestEngine(t, config.EngineConfig{IgnoreCase: true}))
	for i := 0; i < 50; i++ {
		require.NoError(t, s.Index(fmt.Sprintf("doc-%d", i), "Concurrent search engine", i))
	}

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results, err := s.Search("concurrent and engine")
			if err != nil {
				errs <- err
				return
			}
			if len(results) != 50 {
				errs <- fmt.Errorf("got %d results, want 50", len(results))
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestSharedSearchReturnsCallerOwnedSlice(t *testing.T) {
	s := NewShared(newTestEngine(t, config.EngineConfig{}))
	require.NoError(t, s.Index("1", "word", nil))
	require.NoError(t, s.Index("2", "word", nil))

	first, err := s.Search("word")
	require.NoError(t, err)
	first[0].ID = "mutated"

	second, err := s.Search("word")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids(second))
}

func TestSharedMutationsAreVisible(t *testing.T) {
	s := NewShared(newTestEngine(t, config.EngineConfig{}))
	require.NoError(t, s.Index("1", "Alpha", nil))

	results, err := s.Search("alpha")
	require.NoError(t, err)
	assert.Empty(t, results)

	s.SetIgnoreCase(true)
	require.NoError(t, s.Index("2", "Alpha", nil))
	results, err = s.Search("alpha")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids(results))

	s.Delete("2")
	results, err = s.Search("alpha")
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 1, s.Count())

	_, ok := s.Lookup("Alpha")
	assert.False(t, ok)

	s.Clear()
	assert.Equal(t, 0, s.Count())
}

func TestSharedConcurrentWriters(t *testing.T) {
	s := NewShared(newTestEngine(t, config.EngineConfig{}))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				id := fmt.Sprintf("w%d-%d", worker, j)
				if err := s.Index(id, "shared body", nil); err != nil {
					t.Error(err)
				}
				if _, err := s.Search("shared"); err != nil {
					t.Error(err)
				}
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 200, s.Count())
	posting, ok := s.Lookup("body")
	require.True(t, ok)
	assert.Len(t, posting.Documents, 200)
}

func TestSharedPropagatesErrors(t *testing.T) {
	s := NewShared(newTestEngine(t, config.EngineConfig{StrictQueries: true}))
	_, err := s.Search("or")
	assert.ErrorIs(t, err, fterrors.ErrMalformedQuery)
	assert.ErrorIs(t, s.Index("", "x", nil), fterrors.ErrEmptyID)
}
