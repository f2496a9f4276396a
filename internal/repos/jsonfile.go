package repos

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// jsonFile is a whole-file JSON collection. Every mutation is a full
// read-parse-modify-rewrite under a mutex, with the rewrite done through
// a temp file + rename so readers never see a partial write.
//
// wrapKey preserves the historical on-disk shapes: products live under
// {"products": [...]} while users are a bare array.
type jsonFile[T any] struct {
	mu      sync.Mutex
	path    string
	wrapKey string
}

func (f *jsonFile[T]) read() ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

// mutate runs fn over the decoded collection and persists whatever it
// returns. fn runs under the file lock.
func (f *jsonFile[T]) mutate(fn func(items []T) ([]T, error)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.load()
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	return f.save(items)
}

func (f *jsonFile[T]) load() ([]T, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		// Missing file means an empty collection, not an error.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var items []T
	if f.wrapKey != "" {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(raw, &wrapper); err != nil {
			return nil, err
		}
		inner, ok := wrapper[f.wrapKey]
		if !ok {
			return nil, nil
		}
		raw = inner
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (f *jsonFile[T]) save(items []T) error {
	if items == nil {
		items = []T{}
	}
	var payload any = items
	if f.wrapKey != "" {
		payload = map[string]any{f.wrapKey: items}
	}
	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".tienda-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}

// nextID returns max(numeric ids) + 1 as a string. Unlike a plain
// count+1, a deleted record can never cause a freshly created one to
// collide with a surviving id.
func nextID(ids []string) string {
	max := 0
	for _, id := range ids {
		if n, err := strconv.Atoi(id); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
