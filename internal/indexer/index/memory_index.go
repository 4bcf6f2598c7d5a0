// Package index maintains the inverted index: for every word, the set of
// document ordinals whose word list contains it.
package index

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// MemoryIndex is not safe for concurrent mutation.
type MemoryIndex struct {
	postings map[string]*roaring.Bitmap
}

func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		postings: make(map[string]*roaring.Bitmap),
	}
}

// Add records ord under word. Adding an existing member is a no-op.
func (m *MemoryIndex) Add(word string, ord uint32) {
	bm, exists := m.postings[word]
	if !exists {
		bm = roaring.New()
		m.postings[word] = bm
	}
	bm.Add(ord)
}

// Remove drops ord from word's posting list. The word itself is dropped
// once its list is empty.
func (m *MemoryIndex) Remove(word string, ord uint32) {
	bm, exists := m.postings[word]
	if !exists {
		return
	}
	bm.Remove(ord)
	if bm.IsEmpty() {
		delete(m.postings, word)
	}
}

// Lookup returns a copy of word's posting list.
func (m *MemoryIndex) Lookup(word string) (*roaring.Bitmap, bool) {
	bm, exists := m.postings[word]
	if !exists {
		return nil, false
	}
	return bm.Clone(), true
}

// Postings implements executor.PostingSource. Unknown words yield an empty
// bitmap.
func (m *MemoryIndex) Postings(word string) *roaring.Bitmap {
	if bm, ok := m.Lookup(word); ok {
		return bm
	}
	return roaring.New()
}

func (m *MemoryIndex) Contains(word string, ord uint32) bool {
	bm, exists := m.postings[word]
	return exists && bm.Contains(ord)
}

// Terms returns the number of words with a non-empty posting list.
func (m *MemoryIndex) Terms() int {
	return len(m.postings)
}

// Snapshot lists every word and its document frequency, sorted by word.
func (m *MemoryIndex) Snapshot() []TermEntry {
	entries := make([]TermEntry, 0, len(m.postings))
	for word, bm := range m.postings {
		entries = append(entries, TermEntry{
			Word:    word,
			DocFreq: bm.GetCardinality(),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Word < entries[j].Word
	})
	return entries
}

// Size is the approximate in-memory size of the posting lists in bytes.
func (m *MemoryIndex) Size() uint64 {
	var size uint64
	for word, bm := range m.postings {
		size += uint64(len(word)) + bm.GetSizeInBytes()
	}
	return size
}

func (m *MemoryIndex) Reset() {
	m.postings = make(map[string]*roaring.Bitmap)
}
