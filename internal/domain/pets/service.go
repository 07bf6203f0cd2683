package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"petcare-registry/internal/platform/idgen"
	"petcare-registry/internal/platform/logger"
	"petcare-registry/internal/ports/events"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound también cubre el caso de editar con un id que ya no existe:
	// se rechaza en vez de crear o descartar datos en silencio.
	ErrNotFound = errors.New("pet not found")
)

type Service struct {
	repo  Repository
	newID idgen.Func
	pub   events.Publisher
	log   logger.Logger
	delay time.Duration
}

type Option func(*Service)

// WithIDFunc reemplaza el generador de ids (tests).
func WithIDFunc(f idgen.Func) Option {
	return func(s *Service) { s.newID = f }
}

func WithPublisher(p events.Publisher) Option {
	return func(s *Service) { s.pub = p }
}

func WithLogger(l logger.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithSubmitDelay simula la latencia de red que tenía el guardado original.
func WithSubmitDelay(d time.Duration) Option {
	return func(s *Service) { s.delay = d }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		newID: idgen.RecordID,
		pub:   events.NoopPublisher{},
		log:   logger.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitResult devuelve la colección nueva y el id afectado, para que la UI
// decida si sale del modo edición.
type SubmitResult struct {
	Pets       []Pet
	AffectedID string
	Created    bool
}

func (s *Service) List(ctx context.Context, device string) ([]Pet, error) {
	if strings.TrimSpace(device) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.Load(ctx, device)
}

func (s *Service) GetByID(ctx context.Context, device, id string) (Pet, error) {
	items, err := s.List(ctx, device)
	if err != nil {
		return Pet{}, err
	}
	for _, p := range items {
		if p.ID == id {
			return p, nil
		}
	}
	return Pet{}, ErrNotFound
}

// Submit crea (editingID vacío) o reemplaza por id (editingID seteado).
// Alta: id nuevo y append al final. Edición: conserva el id original.
func (s *Service) Submit(ctx context.Context, device string, in PetInput, editingID string) (SubmitResult, error) {
	if strings.TrimSpace(device) == "" {
		return SubmitResult{}, ErrInvalidInput
	}
	editingID = strings.TrimSpace(editingID)

	if err := s.wait(ctx); err != nil {
		return SubmitResult{}, err
	}

	affected := editingID
	created := editingID == ""
	if created {
		id, err := s.newID()
		if err != nil {
			return SubmitResult{}, fmt.Errorf("pets: generate id: %w", err)
		}
		affected = id
	}

	record := in.toPet(affected)
	if err := CheckRecord(record); err != nil {
		return SubmitResult{}, ErrInvalidInput
	}

	items, err := s.repo.Update(ctx, device, func(current []Pet) ([]Pet, error) {
		if created {
			return append(current, record), nil
		}
		for i := range current {
			if current[i].ID == editingID {
				current[i] = record
				return current, nil
			}
		}
		return nil, ErrNotFound
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Warn("edit target not found", map[string]any{"device": device, "pet_id": editingID})
		}
		return SubmitResult{}, err
	}

	s.log.Info("pet saved", map[string]any{
		"device":  device,
		"pet_id":  affected,
		"created": created,
		"count":   len(items),
	})
	s.publish(ctx, events.SubjectPetSaved, events.Change{Device: device, RecordID: affected, Count: len(items)})

	return SubmitResult{Pets: items, AffectedID: affected, Created: created}, nil
}

// Remove filtra el id. Si no existe la colección queda igual (no es error).
func (s *Service) Remove(ctx context.Context, device, id string) ([]Pet, error) {
	if strings.TrimSpace(device) == "" {
		return nil, ErrInvalidInput
	}
	id = strings.TrimSpace(id)

	removed := false
	items, err := s.repo.Update(ctx, device, func(current []Pet) ([]Pet, error) {
		out := current[:0]
		for _, p := range current {
			if p.ID == id {
				removed = true
				continue
			}
			out = append(out, p)
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	if removed {
		s.log.Info("pet removed", map[string]any{"device": device, "pet_id": id, "count": len(items)})
		s.publish(ctx, events.SubjectPetRemoved, events.Change{Device: device, RecordID: id, Count: len(items)})
	}
	return items, nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *Service) publish(ctx context.Context, subject string, change events.Change) {
	if err := s.pub.Publish(ctx, subject, change); err != nil {
		s.log.Warn("publish failed", map[string]any{"subject": subject, "err": err})
	}
}
