package indexer

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Adithya-Monish-Kumar-K/ftsearch/internal/indexer/index"
	"github.com/Adithya-Monish-Kumar-K/ftsearch/internal/indexer/store"
	"github.com/Adithya-Monish-Kumar-K/ftsearch/internal/indexer/tokenizer"
	"github.com/Adithya-Monish-Kumar-K/ftsearch/internal/query/ast"
	"github.com/Adithya-Monish-Kumar-K/ftsearch/internal/query/parser"
	"github.com/Adithya-Monish-Kumar-K/ftsearch/internal/searcher/executor"
	"github.com/Adithya-Monish-Kumar-K/ftsearch/pkg/config"
	fterrors "github.com/Adithya-Monish-Kumar-K/ftsearch/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/ftsearch/pkg/metrics"
)

// Result is one search hit.
type Result struct {
	ID      string
	Payload any
}

// Engine is an in-memory full-text index. It is not safe for concurrent
// use; see Shared.
type Engine struct {
	memIndex   *index.MemoryIndex
	docs       *store.Store
	splitter   *tokenizer.Splitter
	ignoreCase bool
	strict     bool
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

type Option func(*Engine)

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

func NewEngine(cfg config.EngineConfig, opts ...Option) (*Engine, error) {
	e := &Engine{
		memIndex:   index.NewMemoryIndex(),
		docs:       store.New(),
		ignoreCase: cfg.IgnoreCase,
		strict:     cfg.StrictQueries,
		logger:     slog.Default().With("component", "indexer"),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.SetDelimiter(cfg.Delimiters...); err != nil {
		return nil, fmt.Errorf("configuring delimiters: %w", err)
	}
	return e, nil
}

// Index stores text under id, replacing any document already indexed
// under id.
func (e *Engine) Index(id string, text string, payload any) error {
	if id == "" {
		return fterrors.ErrEmptyID
	}
	if e.docs.Full() {
		return fmt.Errorf("indexing document %s: %w", id, fterrors.ErrIndexFull)
	}
	e.Delete(id)

	words := e.tokenize(e.fold(text))
	doc, err := e.docs.Put(id, words, payload)
	if err != nil {
		return fmt.Errorf("indexing document %s: %w", id, err)
	}
	for _, word := range words {
		e.memIndex.Add(word, doc.Ordinal)
	}
	e.metrics.ObserveIndex(e.docs.Len(), e.memIndex.Terms())
	e.logger.Debug("document indexed",
		"doc_id", id,
		"word_count", len(words),
		"terms", e.memIndex.Terms(),
	)
	return nil
}

// Delete removes id from the index. Unknown ids are ignored.
func (e *Engine) Delete(id string) {
	doc, ok := e.docs.Remove(id)
	if !ok {
		return
	}
	for _, word := range doc.Words {
		e.memIndex.Remove(word, doc.Ordinal)
	}
	e.metrics.ObserveDelete(e.docs.Len(), e.memIndex.Terms())
	e.logger.Debug("document deleted", "doc_id", id, "word_count", len(doc.Words))
}

// Search returns the documents matching query in index order. Malformed
// fragments are dropped unless the engine was configured with strict
// queries, in which case they are reported as errors.
func (e *Engine) Search(query string) ([]Result, error) {
	start := time.Now()
	node, err := e.Parse(query)
	if err != nil {
		e.metrics.ObserveSearch(time.Since(start), 0, err)
		return nil, fmt.Errorf("parsing query %q: %w", query, err)
	}
	exec := executor.New(e.memIndex)
	docs := e.docs.Resolve(exec.Execute(node))
	results := make([]Result, len(docs))
	for i, doc := range docs {
		results[i] = Result{ID: doc.ID, Payload: doc.Payload}
	}
	elapsed := time.Since(start)
	e.metrics.ObserveSearch(elapsed, len(results), nil)
	stats := exec.Stats()
	e.logger.Debug("query executed",
		"query", query,
		"ast", ast.String(node),
		"lookups", stats.Lookups,
		"short_circuits", stats.ShortCircuit,
		"results", len(results),
		"elapsed", elapsed,
	)
	return results, nil
}

// Parse folds query according to the engine's case policy and parses it.
func (e *Engine) Parse(query string) (ast.Node, error) {
	query = e.fold(query)
	if e.strict {
		return parser.ParseStrict(query)
	}
	return parser.Parse(query), nil
}

// Lookup returns the posting list for word.
func (e *Engine) Lookup(word string) (index.Posting, bool) {
	word = e.fold(word)
	bm, ok := e.memIndex.Lookup(word)
	if !ok {
		return index.Posting{}, false
	}
	return index.Posting{Word: word, Documents: e.docs.IDs(bm)}, true
}

// Words returns the indexed word list of id.
func (e *Engine) Words(id string) ([]string, bool) {
	doc, ok := e.docs.Get(id)
	if !ok {
		return nil, false
	}
	return append([]string(nil), doc.Words...), true
}

func (e *Engine) Count() int {
	return e.docs.Len()
}

// Terms returns the number of distinct indexed words.
func (e *Engine) Terms() int {
	return e.memIndex.Terms()
}

// Vocabulary lists every indexed word with its document frequency.
func (e *Engine) Vocabulary() []index.TermEntry {
	return e.memIndex.Snapshot()
}

func (e *Engine) Clear() {
	released := e.memIndex.Size()
	e.memIndex.Reset()
	e.docs.Reset()
	e.metrics.ObserveClear()
	e.logger.Debug("index cleared", "released_bytes", released)
}

// SetIgnoreCase toggles case folding. Documents already indexed keep the
// words they were indexed with.
func (e *Engine) SetIgnoreCase(ignore bool) {
	e.ignoreCase = ignore
}

func (e *Engine) IgnoreCase() bool {
	return e.ignoreCase
}

// SetStrict toggles strict query parsing.
func (e *Engine) SetStrict(strict bool) {
	e.strict = strict
}

// SetDelimiter makes Index split text on runs of the given delimiter
// characters instead of query words. With no delimiters, Index goes back to
// splitting text the way queries are lexed.
func (e *Engine) SetDelimiter(delimiters ...string) error {
	if len(delimiters) == 0 {
		e.splitter = nil
		return nil
	}
	s, err := tokenizer.New(delimiters...)
	if err != nil {
		return err
	}
	e.splitter = s
	e.logger.Debug("delimiter policy set", "delimiters", s.Delimiters())
	return nil
}

func (e *Engine) fold(text string) string {
	if e.ignoreCase {
		return strings.ToLower(text)
	}
	return text
}

func (e *Engine) tokenize(text string) []string {
	if e.splitter != nil {
		return e.splitter.Split(text)
	}
	return tokenizer.Dedup(parser.Split(text))
}
