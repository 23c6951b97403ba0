package inmemorystore

import (
	"context"
	"sync"

	"github.com/AlexZinkM/walletd/internal/kvstore"
)

type inmemoryStore struct {
	data   map[string]string
	closed bool
	lock   *sync.RWMutex
}

func NewStore() (kvstore.Store, error) {
	return &inmemoryStore{
		data: make(map[string]string),
		lock: &sync.RWMutex{},
	}, nil
}

func (s *inmemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if s.closed {
		return "", false, kvstore.ErrClosed
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *inmemoryStore) Set(_ context.Context, key, value string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.closed {
		return kvstore.ErrClosed
	}
	s.data[key] = value
	return nil
}

func (s *inmemoryStore) Delete(_ context.Context, key string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.closed {
		return kvstore.ErrClosed
	}
	delete(s.data, key)
	return nil
}

func (s *inmemoryStore) Close() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.closed = true
	s.data = nil
	return nil
}
