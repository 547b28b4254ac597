// Package store owns the portal's single JSON document.  The exported
// contract is whole-document Load and Save; Update wraps the two in a
// serialized read-modify-write cycle so concurrent requests inside this
// process cannot interleave between a check and the write that depends on
// it.  Nothing here protects against a second process writing the same
// file; the deployment is single-writer.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/iliyamo/student-portal/internal/model"
)

// ErrUnavailable wraps any failure of the backing file read or write.
// Callers must treat it as "storage unavailable", distinct from a lookup
// that found nothing.
var ErrUnavailable = errors.New("storage unavailable")

// Store reads and writes the portal document at a fixed path.
type Store struct {
	path string
	mu   sync.Mutex
}

// Open prepares a store backed by the file at path, creating the parent
// directory and an empty default document if the file does not exist yet.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty store path", ErrUnavailable)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: create data dir: %v", ErrUnavailable, err)
		}
	}
	s := &Store{path: path}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := s.write(model.NewDocument()); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %v", ErrUnavailable, path, err)
	}
	return s, nil
}

// Load returns the current document.  A missing file yields the default
// empty document, which is also persisted so later saves find the file in
// place.
func (s *Store) Load(ctx context.Context) (*model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Save replaces the persisted document with doc.
func (s *Store) Save(ctx context.Context, doc *model.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(doc)
}

// Update runs fn against the current document under the store lock and
// persists the result when fn returns nil.  An error from fn aborts the
// cycle without writing, so repositories use fn both to mutate and to
// report conflicts detected against fresh data.
func (s *Store) Update(ctx context.Context, fn func(doc *model.Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.write(doc)
}

func (s *Store) read() (*model.Document, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		doc := model.NewDocument()
		if err := s.write(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, s.path, err)
	}
	doc := model.NewDocument()
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrUnavailable, s.path, err)
	}
	return doc, nil
}

// write marshals doc to a temp file in the same directory and renames it
// over the target so readers never observe a half-written document.
func (s *Store) write(doc *model.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode document: %v", ErrUnavailable, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".portal-*.json")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrUnavailable, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", ErrUnavailable, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %v", ErrUnavailable, tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: replace %s: %v", ErrUnavailable, s.path, err)
	}
	return nil
}
