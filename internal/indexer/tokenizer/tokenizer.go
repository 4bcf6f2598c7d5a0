// Package tokenizer provides the index-time text splitting helpers: the
// delimiter policy splitter and order-preserving deduplication of words.
package tokenizer

import (
	"fmt"
	"regexp"
	"strings"

	fterrors "github.com/Adithya-Monish-Kumar-K/ftsearch/pkg/errors"
)

// DefaultDelimiter is used when a Splitter is built without delimiters.
const DefaultDelimiter = " "

// Splitter splits text on runs of delimiter characters. The delimiters are
// concatenated into a regexp character class, so entries such as `\s` or
// `a-z` keep their class meaning.
type Splitter struct {
	delimiters []string
	re         *regexp.Regexp
}

func New(delimiters ...string) (*Splitter, error) {
	class := strings.Join(delimiters, "")
	if class == "" {
		class = DefaultDelimiter
		delimiters = []string{DefaultDelimiter}
	}
	re, err := regexp.Compile("[" + class + "]+")
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", fterrors.ErrInvalidDelimiter, class, err)
	}
	return &Splitter{
		delimiters: append([]string(nil), delimiters...),
		re:         re,
	}, nil
}

// Delimiters returns the delimiter fragments the splitter was built from.
func (s *Splitter) Delimiters() []string {
	return append([]string(nil), s.delimiters...)
}

// Split returns the distinct non-empty fragments of text in order of first
// occurrence.
func (s *Splitter) Split(text string) []string {
	return Dedup(s.re.Split(text, -1))
}

// Dedup removes empty strings and repeated words, keeping the first
// occurrence of each.
func Dedup(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, word := range words {
		if word == "" {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}
	return out
}
