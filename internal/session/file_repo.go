package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

type state struct {
	RecordsByID map[string]Record `json:"recordsById"`
}

func newState() state {
	return state{RecordsByID: map[string]Record{}}
}

// FileRepo persists browser sessions as a single JSON document. Writes are
// serialized per process; concurrent processes are last-write-wins with no
// conflict detection.
type FileRepo struct {
	mu   sync.RWMutex
	path string
	s    state
}

func NewFileRepo(dataDir string) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	r := &FileRepo{
		path: filepath.Join(dataDir, "sessions.json"),
		s:    newState(),
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileRepo) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.s = newState()
			return nil
		}
		return err
	}
	var loaded state
	if err := json.Unmarshal(b, &loaded); err != nil {
		return err
	}
	if loaded.RecordsByID == nil {
		loaded.RecordsByID = map[string]Record{}
	}
	r.s = loaded
	return nil
}

func (r *FileRepo) saveLocked() error {
	b, err := json.MarshalIndent(r.s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}

func (r *FileRepo) Put(rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.s.RecordsByID[rec.ID] = rec
	return r.saveLocked()
}

func (r *FileRepo) Get(id string) (Record, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.s.RecordsByID[id]
	return rec, ok
}

func (r *FileRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.s.RecordsByID, id)
	return r.saveLocked()
}
