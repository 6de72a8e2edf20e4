package stats

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"
)

// MemoryStore keeps records in memory. The zero value is ready to use.
type MemoryStore struct {
	mu      sync.Mutex
	records []Record
	now     func() time.Time
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

// Create appends a record with the next sequential ID.
func (m *MemoryStore) Create(_ context.Context, iterations int) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := Record{ID: int64(len(m.records) + 1), Iterations: iterations, CreatedAt: stamp(m.now)}
	m.records = append(m.records, rec)
	return rec, nil
}

// List returns a copy of all records in insertion order.
func (m *MemoryStore) List(context.Context) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Record(nil), m.records...), nil
}

// FileStore appends records to a JSON-lines file, one object per line.
type FileStore struct {
	mu     sync.Mutex
	path   string
	nextID int64
	now    func() time.Time
}

// OpenFileStore opens path, creating it when missing, and continues the ID
// sequence of any records already there.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, nextID: 1}
	recs, err := s.read()
	if err != nil {
		return nil, err
	}
	for _, r := range recs {
		if r.ID >= s.nextID {
			s.nextID = r.ID + 1
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("stats: open %s: %w", path, err)
	}
	return s, f.Close()
}

// Create appends a record as one JSON line and advances the ID sequence.
func (s *FileStore) Create(_ context.Context, iterations int) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Record{ID: s.nextID, Iterations: iterations, CreatedAt: stamp(s.now)}
	line, err := json.Marshal(rec)
	if err != nil {
		return Record{}, fmt.Errorf("stats: encode record: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return Record{}, fmt.Errorf("stats: open %s: %w", s.path, err)
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		f.Close()
		return Record{}, fmt.Errorf("stats: append %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return Record{}, fmt.Errorf("stats: close %s: %w", s.path, err)
	}
	s.nextID++
	return rec, nil
}

// List reads every record back from the file.
func (s *FileStore) List(context.Context) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *FileStore) read() ([]Record, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stats: open %s: %w", s.path, err)
	}
	defer f.Close()

	var out []Record
	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		if len(sc.Bytes()) == 0 {
			continue
		}
		var r Record
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			return nil, fmt.Errorf("stats: %s line %d: %w", s.path, line, err)
		}
		out = append(out, r)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("stats: read %s: %w", s.path, err)
	}
	return out, nil
}

func stamp(now func() time.Time) time.Time {
	if now == nil {
		return time.Now().UTC().Truncate(time.Second)
	}
	return now()
}
