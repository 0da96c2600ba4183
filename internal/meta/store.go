// Package meta manages the JSON sidecar files that record what toc
// knows about an upload: who owns it, when it expires, whether the
// blob is fully written yet. One sidecar lives per upload, named by
// its tarhash storage key, alongside the upload's encrypted blob.
package meta

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/postalsys/toc/internal/tarhash"
)

const (
	metaSuffix = ".meta.json"
	blobSuffix = ".blob"
)

// Entry is the persisted state of one upload.
type Entry struct {
	OwnerToken  string `json:"owner_token"`
	DeleteAt    int64  `json:"delete_at_unix"`
	CreatedAt   int64  `json:"created_at_unix"`
	Finished    bool   `json:"finished"`
	Size        int64  `json:"size,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	Filename    string `json:"filename,omitempty"`
}

// Store manages sidecar files under a single data directory.
type Store struct {
	dir string
}

// New returns a Store rooted at dir. dir must already exist.
func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) metaPath(id tarhash.Hash) string {
	return filepath.Join(s.dir, id.String()+metaSuffix)
}

// BlobPath returns the path of the encrypted blob belonging to id.
func (s *Store) BlobPath(id tarhash.Hash) string {
	return filepath.Join(s.dir, id.String()+blobSuffix)
}

// Get returns the entry for id, or (nil, nil) if it doesn't exist.
func (s *Store) Get(id tarhash.Hash) (*Entry, error) {
	data, err := os.ReadFile(s.metaPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("meta: read %s: %w", id, err)
	}
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("meta: parse %s: %w", id, err)
	}
	return &e, nil
}

// Set writes (or overwrites) the entry for id atomically, via a
// temp-file-then-rename so a reader never observes a half-written
// sidecar.
func (s *Store) Set(id tarhash.Hash, e *Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("meta: marshal %s: %w", id, err)
	}
	path := s.metaPath(id)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("meta: write %s: %w", id, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("meta: rename %s: %w", id, err)
	}
	return nil
}

// Delete removes the entry and blob for id. It is not an error if
// either is already gone.
func (s *Store) Delete(id tarhash.Hash) error {
	if err := os.Remove(s.metaPath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("meta: delete %s: %w", id, err)
	}
	if err := os.Remove(s.BlobPath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("meta: delete blob %s: %w", id, err)
	}
	return nil
}

// List returns every stored entry, keyed by storage key.
func (s *Store) List() (map[tarhash.Hash]*Entry, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("meta: list %s: %w", s.dir, err)
	}
	out := make(map[tarhash.Hash]*Entry)
	for _, de := range entries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), metaSuffix) {
			continue
		}
		stem := strings.TrimSuffix(de.Name(), metaSuffix)
		id, err := tarhash.Parse(stem)
		if err != nil {
			continue
		}
		e, err := s.Get(id)
		if err != nil || e == nil {
			continue
		}
		out[id] = e
	}
	return out, nil
}

// SweepStats summarizes one completed GC pass, so a caller can update
// both deletion counters and point-in-time storage gauges from a
// single callback.
type SweepStats struct {
	Deleted        int
	StoredEntries  int
	StoredBytes    int64
}

// RunGC sweeps for expired entries once per interval until stop is
// closed. onExpired fires per deleted entry (for logging); onSweep
// fires once per tick, deletions or not, so a caller can track that a
// sweep ran at all and refresh storage gauges on the same cadence.
func (s *Store) RunGC(stop <-chan struct{}, interval time.Duration, onExpired func(tarhash.Hash, *Entry), onSweep func(SweepStats)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.sweep(onExpired, onSweep)
		}
	}
}

func (s *Store) sweep(onExpired func(tarhash.Hash, *Entry), onSweep func(SweepStats)) {
	entries, err := s.List()
	if err != nil {
		return
	}
	now := time.Now().Unix()
	stats := SweepStats{}
	for id, e := range entries {
		if e.DeleteAt != 0 && e.DeleteAt <= now {
			if err := s.Delete(id); err == nil {
				stats.Deleted++
				if onExpired != nil {
					onExpired(id, e)
				}
				continue
			}
		}
		stats.StoredEntries++
		stats.StoredBytes += e.Size
	}
	if onSweep != nil {
		onSweep(stats)
	}
}
