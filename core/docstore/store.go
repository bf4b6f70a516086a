package docstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	// ErrNotFound indicates the named document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrConflict indicates the document changed between read and write.
	ErrConflict = errors.New("document was modified concurrently")

	// ErrInvalidName indicates a document name that cannot be stored.
	ErrInvalidName = errors.New("invalid document name")
)

// Store persists whole named JSON documents.
type Store interface {
	// Load returns the raw body of the named document, or ErrNotFound.
	Load(ctx context.Context, name string) ([]byte, error)

	// Save replaces the named document with data.
	Save(ctx context.Context, name string, data []byte) error

	// Update reads the current body, passes it to fn and persists fn's result.
	// Writers to the same name are serialized. If fn returns an error nothing
	// is written and that error is returned.
	Update(ctx context.Context, name string, fn func(current []byte) ([]byte, error)) error
}

// Encode renders v the way dataset files are written: UTF-8, two-space
// indentation, no HTML escaping, trailing newline.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadJSON loads the named document and decodes it into v.
func LoadJSON(ctx context.Context, s Store, name string, v any) error {
	data, err := s.Load(ctx, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}
	return nil
}

// SaveJSON encodes v and saves it under name.
func SaveJSON(ctx context.Context, s Store, name string, v any) error {
	data, err := Encode(v)
	if err != nil {
		return err
	}
	return s.Save(ctx, name, data)
}

// UpdateJSON performs a typed read-modify-write of the named document.
func UpdateJSON[T any](ctx context.Context, s Store, name string, fn func(doc *T) error) error {
	return s.Update(ctx, name, func(current []byte) ([]byte, error) {
		var doc T
		if err := json.Unmarshal(current, &doc); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", name, err)
		}
		if err := fn(&doc); err != nil {
			return nil, err
		}
		return Encode(&doc)
	})
}

func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// keyedMutex hands out one mutex per document name.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(name string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	l, ok := k.locks[name]
	if !ok {
		l = &sync.Mutex{}
		k.locks[name] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
