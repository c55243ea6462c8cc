package blob

import (
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrEmpty = errors.New("empty blob")

// Blob is a file kept for the lifetime of the process.
type Blob struct {
	Data        []byte
	ContentType string
	Filename    string
	CreatedAt   time.Time
}

// Store is an in-memory blob store keyed by random ids.
type Store struct {
	mu    sync.RWMutex
	blobs map[string]Blob
}

func NewStore() *Store {
	return &Store{blobs: make(map[string]Blob)}
}

// Put stores a copy of data and returns its id.
func (s *Store) Put(data []byte, filename string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmpty
	}
	b := Blob{
		Data:        append([]byte(nil), data...),
		ContentType: mimetype.Detect(data).String(),
		Filename:    filename,
		CreatedAt:   time.Now().UTC(),
	}
	id := uuid.New().String()

	s.mu.Lock()
	s.blobs[id] = b
	s.mu.Unlock()
	return id, nil
}

// Get returns a copy of the blob's bytes and its content type.
func (s *Store) Get(id string) ([]byte, string, bool) {
	s.mu.RLock()
	b, ok := s.blobs[id]
	s.mu.RUnlock()
	if !ok {
		return nil, "", false
	}
	return append([]byte(nil), b.Data...), b.ContentType, true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}
