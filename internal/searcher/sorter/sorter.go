// Package sorter orders search results by a key projected from each result.
package sorter

import (
	"cmp"
	"slices"

	"github.com/Adithya-Monish-Kumar-K/ftsearch/internal/indexer"
)

// Searcher is satisfied by *indexer.Engine and *indexer.Shared.
type Searcher interface {
	Search(query string) ([]indexer.Result, error)
}

// By sorts results in place by key, keeping the index order of results
// with equal keys.
func By[K cmp.Ordered](results []indexer.Result, key func(indexer.Result) K) {
	slices.SortStableFunc(results, func(a, b indexer.Result) int {
		return cmp.Compare(key(a), key(b))
	})
}

// Search runs query on s and sorts the results by key.
func Search[K cmp.Ordered](s Searcher, query string, key func(indexer.Result) K) ([]indexer.Result, error) {
	results, err := s.Search(query)
	if err != nil {
		return nil, err
	}
	By(results, key)
	return results, nil
}

// ByID orders results by document id.
func ByID(r indexer.Result) string {
	return r.ID
}
