// Package corpus loads documents from YAML files and bulk indexes them.
package corpus

import (
	"fmt"
	"io"
	"os"

	fterrors "github.com/Adithya-Monish-Kumar-K/ftsearch/pkg/errors"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// Document is one corpus entry.
type Document struct {
	ID      string `yaml:"id"`
	Text    string `yaml:"text"`
	Payload any    `yaml:"payload"`
}

// Indexer is implemented by indexer.Engine and indexer.Shared.
type Indexer interface {
	Index(id string, text string, payload any) error
}

// Load reads the YAML document list stored at path.
func Load(path string) ([]Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus %s: %w", path, err)
	}
	defer f.Close()

	docs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loading corpus %s: %w", path, err)
	}
	return docs, nil
}

// Decode reads a YAML sequence of documents. An empty input yields no
// documents.
func Decode(r io.Reader) ([]Document, error) {
	var docs []Document
	if err := yaml.NewDecoder(r).Decode(&docs); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: decoding corpus: %v", fterrors.ErrInvalidInput, err)
	}
	return docs, nil
}

// IndexAll validates and indexes every document in order. Documents that
// fail are skipped; their errors are collected and returned together once
// the whole list has been processed.
func IndexAll(ix Indexer, docs []Document) error {
	var errs error
	for i, doc := range docs {
		if err := Validate(doc); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("document %d: %w", i, err))
			continue
		}
		if err := ix.Index(doc.ID, doc.Text, doc.Payload); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("document %d (%q): %w", i, doc.ID, err))
		}
	}
	return errs
}
