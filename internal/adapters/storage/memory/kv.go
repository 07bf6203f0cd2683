package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"petcare-registry/internal/ports/kv"
)

type kvStore struct {
	mu   sync.RWMutex
	byNS map[string]map[string][]byte
}

// NewKVStore devuelve un kv.Store en memoria (modo dev / tests).
func NewKVStore() kv.Store {
	return &kvStore{
		byNS: make(map[string]map[string][]byte),
	}
}

func (s *kvStore) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byNS[namespace][key]
	if !ok {
		return nil, kv.ErrNotFound
	}
	// copia para que el caller no pueda mutar el valor guardado
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *kvStore) Set(ctx context.Context, namespace, key string, value []byte) error {
	if strings.TrimSpace(namespace) == "" || strings.TrimSpace(key) == "" {
		return errors.New("namespace and key required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.byNS[namespace]
	if !ok {
		ns = make(map[string][]byte)
		s.byNS[namespace] = ns
	}
	v := make([]byte, len(value))
	copy(v, value)
	ns[key] = v
	return nil
}

func (s *kvStore) Delete(ctx context.Context, namespace, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.byNS[namespace]
	if !ok {
		return nil
	}
	delete(ns, key)
	if len(ns) == 0 {
		delete(s.byNS, namespace)
	}
	return nil
}
