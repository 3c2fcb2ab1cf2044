// cmd/credlens/history.go
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// HistoryStore is the append-only record of past analysis results,
// persisted as a JSON file. It is a collaborator of the pipeline, not
// part of the scoring contract.
type HistoryStore struct {
	path    string
	mutex   sync.RWMutex
	records []AnalysisResult
}

// NewHistoryStore opens (or creates) the history file.
func NewHistoryStore(path string) (*HistoryStore, error) {
	store := &HistoryStore{path: path}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %v", err)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history file: %v", err)
	}
	if len(data) == 0 {
		return store, nil
	}

	if err := json.Unmarshal(data, &store.records); err != nil {
		// A corrupt history file should not take the service down.
		Logger().Warning("History file unreadable, starting fresh: %v", err)
		store.records = nil
	}
	return store, nil
}

// Append adds a result to the history and persists it.
func (h *HistoryStore) Append(result AnalysisResult) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.records = append(h.records, result)
	return h.save()
}

// List returns results newest first.
func (h *HistoryStore) List() []AnalysisResult {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	out := make([]AnalysisResult, len(h.records))
	copy(out, h.records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Get returns the record with the given id.
func (h *HistoryStore) Get(id string) (AnalysisResult, bool) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for _, r := range h.records {
		if r.ID == id {
			return r, true
		}
	}
	return AnalysisResult{}, false
}

// Prune drops records older than the retention window and persists
// the survivors. Returns the number removed.
func (h *HistoryStore) Prune(retention time.Duration) (int, error) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	cutoff := time.Now().Add(-retention)
	kept := h.records[:0]
	removed := 0
	for _, r := range h.records {
		if r.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	h.records = kept

	if removed == 0 {
		return 0, nil
	}
	return removed, h.save()
}

// save writes the records atomically. Caller holds the lock.
func (h *HistoryStore) save() error {
	data, err := json.MarshalIndent(h.records, "", "  ")
	if err != nil {
		return err
	}

	tmp := h.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, h.path)
}
