package docstore

import (
	"context"
	"sync"
)

// MemoryStore keeps the encoded document in memory. Each Load decodes a
// fresh copy, so callers never share slices with the stored state.
type MemoryStore struct {
	mu  sync.Mutex
	raw []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	raw := s.raw
	s.mu.Unlock()
	return decodeDocument(raw)
}

func (s *MemoryStore) Save(ctx context.Context, doc *Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.raw = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Exists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw != nil, nil
}

var _ Store = (*MemoryStore)(nil)
