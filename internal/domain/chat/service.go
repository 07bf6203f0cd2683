// Package chat es el asistente "veterinario" de demo: responde frases
// enlatadas después de una pausa que simula que está pensando.
package chat

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"petcare-registry/internal/platform/logger"
)

var ErrEmptyMessage = errors.New("message is required")

// Responses son las respuestas posibles; se elige una al azar.
var Responses = []string{
	"That sounds like normal behavior, but keep an eye on it.",
	"Please make sure your pet has plenty of fresh water.",
	"If symptoms persist for more than 24 hours, please consult a real veterinarian.",
	"Regular exercise is key to a happy pet!",
	"A balanced diet will help with that issue.",
	"I'm just a demo AI, but I think your pet is adorable!",
	"Make sure to keep vaccinations up to date.",
}

type Service struct {
	delay time.Duration
	pick  func(n int) int
	log   logger.Logger
}

type Option func(*Service)

// WithPicker fija la elección de respuesta (tests).
func WithPicker(pick func(n int) int) Option {
	return func(s *Service) { s.pick = pick }
}

func WithLogger(l logger.Logger) Option {
	return func(s *Service) { s.log = l }
}

func NewService(delay time.Duration, opts ...Option) *Service {
	s := &Service{
		delay: delay,
		pick:  rand.IntN,
		log:   logger.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reply espera el delay configurado (cancelable) y devuelve una respuesta.
// No guarda nada: la conversación vive solo en el cliente.
func (s *Service) Reply(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-t.C:
		}
	}

	resp := Responses[s.pick(len(Responses))]
	s.log.Debug("chat reply", map[string]any{"message_len": len(message)})
	return resp, nil
}
