package memory

import (
	"context"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"github.com/youruser/newscard/internal/core"
)

type memStore struct {
	mu      sync.RWMutex
	outputs map[string][]byte
}

// NewStore creates a new in-memory store.
func NewStore() *memStore {
	return &memStore{outputs: make(map[string][]byte)}
}

func (s *memStore) Save(ctx context.Context, data []byte) (string, error) {
	id := ulid.Make().String()
	cp := make([]byte, len(data))
	copy(cp, data)

	s.mu.Lock()
	s.outputs[id] = cp
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"output_id":   id,
		"data_length": len(data),
	}).Info("Output saved")
	return id, nil
}

func (s *memStore) Get(ctx context.Context, id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.outputs[id]
	if !ok {
		return nil, core.ErrOutputNotFound
	}
	return data, nil
}
