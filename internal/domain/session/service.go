package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"petcare-registry/internal/platform/logger"
	"petcare-registry/internal/ports/kv"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	kv  kv.Store
	log logger.Logger
}

func NewService(store kv.Store, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{kv: store, log: log}
}

// Get devuelve la sesión del dispositivo. Un valor ilegible se trata como "sin sesión".
func (s *Service) Get(ctx context.Context, device string) (Session, bool, error) {
	if strings.TrimSpace(device) == "" {
		return Session{}, false, nil
	}

	raw, err := s.kv.Get(ctx, device, StorageKey)
	if errors.Is(err, kv.ErrNotFound) {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, fmt.Errorf("session: read: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		s.log.Warn("failed to parse user session", map[string]any{"device": device, "err": err})
		return Session{}, false, nil
	}
	if !sess.LoggedIn || strings.TrimSpace(sess.Name) == "" {
		return Session{}, false, nil
	}
	return sess, true, nil
}

// Set abre sesión con un nombre visible (no vacío).
func (s *Service) Set(ctx context.Context, device, name string) (Session, error) {
	name = strings.TrimSpace(name)
	if strings.TrimSpace(device) == "" || name == "" {
		return Session{}, ErrInvalidInput
	}

	sess := Session{Name: name, LoggedIn: true}
	b, err := json.Marshal(sess)
	if err != nil {
		return Session{}, err
	}
	if err := s.kv.Set(ctx, device, StorageKey, b); err != nil {
		return Session{}, fmt.Errorf("session: write: %w", err)
	}

	s.log.Info("session started", map[string]any{"device": device})
	return sess, nil
}

func (s *Service) Clear(ctx context.Context, device string) error {
	if strings.TrimSpace(device) == "" {
		return ErrInvalidInput
	}
	if err := s.kv.Delete(ctx, device, StorageKey); err != nil {
		return fmt.Errorf("session: delete: %w", err)
	}
	s.log.Info("session cleared", map[string]any{"device": device})
	return nil
}
