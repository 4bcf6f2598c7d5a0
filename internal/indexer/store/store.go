package store

import (
	"math"

	fterrors "github.com/Adithya-Monish-Kumar-K/ftsearch/pkg/errors"
	"github.com/RoaringBitmap/roaring/v2"
)

// Document is a stored document record. Words is the deduplicated word list
// in first-occurrence order.
type Document struct {
	ID      string
	Ordinal uint32
	Words   []string
	Payload any
}

// Store maps document ids to their records and assigns each record a
// fresh ordinal, so ordinals grow with index order.
type Store struct {
	byID  map[string]*Document
	byOrd map[uint32]*Document
	next  uint32
	limit uint32
}

func New() *Store {
	return NewLimited(math.MaxUint32)
}

// NewLimited returns a store that hands out at most limit ordinals between
// resets.
func NewLimited(limit uint32) *Store {
	return &Store{
		byID:  make(map[string]*Document),
		byOrd: make(map[uint32]*Document),
		limit: limit,
	}
}

// Full reports whether the next Put would fail with ErrIndexFull.
func (s *Store) Full() bool {
	return s.next >= s.limit
}

// Put stores a new record for id. The caller removes any existing record
// for id first. Ordinals are not reused until Reset.
func (s *Store) Put(id string, words []string, payload any) (*Document, error) {
	if s.Full() {
		return nil, fterrors.ErrIndexFull
	}
	doc := &Document{
		ID:      id,
		Ordinal: s.next,
		Words:   words,
		Payload: payload,
	}
	s.next++
	s.byID[id] = doc
	s.byOrd[doc.Ordinal] = doc
	return doc, nil
}

func (s *Store) Get(id string) (*Document, bool) {
	doc, ok := s.byID[id]
	return doc, ok
}

func (s *Store) ByOrdinal(ord uint32) (*Document, bool) {
	doc, ok := s.byOrd[ord]
	return doc, ok
}

func (s *Store) Remove(id string) (*Document, bool) {
	doc, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	delete(s.byID, id)
	delete(s.byOrd, doc.Ordinal)
	return doc, true
}

// Resolve maps a set of ordinals to their records in ordinal order,
// skipping ordinals without a record.
func (s *Store) Resolve(ords *roaring.Bitmap) []*Document {
	docs := make([]*Document, 0, ords.GetCardinality())
	it := ords.Iterator()
	for it.HasNext() {
		if doc, ok := s.ByOrdinal(it.Next()); ok {
			docs = append(docs, doc)
		}
	}
	return docs
}

// IDs maps a set of ordinals to document ids in ordinal order.
func (s *Store) IDs(ords *roaring.Bitmap) []string {
	docs := s.Resolve(ords)
	ids := make([]string, len(docs))
	for i, doc := range docs {
		ids[i] = doc.ID
	}
	return ids
}

func (s *Store) Len() int {
	return len(s.byID)
}

func (s *Store) Reset() {
	s.byID = make(map[string]*Document)
	s.byOrd = make(map[uint32]*Document)
	s.next = 0
}
