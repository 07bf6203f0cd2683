package bookings

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

var ErrInvalidInput = errors.New("invalid input")

// confirmationDateLayout es como se muestra la fecha en la confirmación.
const confirmationDateLayout = "January 2, 2006"

type Service struct {
	repo  Repository
	newID idgen.Func
	pub   events.Publisher
	log   logger.Logger
	delay time.Duration
	now   func() time.Time
}

type Option func(*Service)

func WithIDFunc(f idgen.Func) Option {
	return func(s *Service) { s.newID = f }
}

func WithPublisher(p events.Publisher) Option {
	return func(s *Service) { s.pub = p }
}

func WithLogger(l logger.Logger) Option {
	return func(s *Service) { s.log = l }
}

func WithSubmitDelay(d time.Duration) Option {
	return func(s *Service) { s.delay = d }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		newID: idgen.BookingID,
		pub:   events.NoopPublisher{},
		log:   logger.NewNop(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today es la fecha de referencia para validar (UTC).
func (s *Service) Today() time.Time {
	return s.now().UTC()
}

type BookResult struct {
	Booking      Booking
	Bookings     []Booking
	Confirmation string
}

func (s *Service) List(ctx context.Context, device string) ([]Booking, error) {
	if strings.TrimSpace(device) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.Load(ctx, device)
}

// Book agrega un turno al final de la lista del dispositivo.
func (s *Service) Book(ctx context.Context, device string, in BookingInput) (BookResult, error) {
	if strings.TrimSpace(device) == "" {
		return BookResult{}, ErrInvalidInput
	}
	vet, ok := FindVet(in.VetID)
	if !ok || !validSlot(in.Time) || in.Date == "" {
		return BookResult{}, ErrInvalidInput
	}

	if err := s.wait(ctx); err != nil {
		return BookResult{}, err
	}

	id, err := s.newID()
	if err != nil {
		return BookResult{}, fmt.Errorf("bookings: generate id: %w", err)
	}
	b := Booking{
		ID:        id,
		VetID:     vet.ID,
		Date:      in.Date,
		Time:      in.Time,
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}

	items, err := s.repo.Update(ctx, device, func(current []Booking) ([]Booking, error) {
		return append(current, b), nil
	})
	if err != nil {
		return BookResult{}, err
	}

	s.log.Info("booking created", map[string]any{
		"device":     device,
		"booking_id": b.ID,
		"vet_id":     b.VetID,
		"count":      len(items),
	})
	if err := s.pub.Publish(ctx, events.SubjectBookingCreated, events.Change{Device: device, RecordID: b.ID, Count: len(items)}); err != nil {
		s.log.Warn("publish failed", map[string]any{"subject": events.SubjectBookingCreated, "err": err})
	}

	return BookResult{Booking: b, Bookings: items, Confirmation: Confirmation(vet, b)}, nil
}

// Confirmation arma el texto que ve el usuario al reservar.
func Confirmation(vet Vet, b Booking) string {
	date := b.Date
	if d, err := time.Parse(DateLayout, b.Date); err == nil {
		date = d.Format(confirmationDateLayout)
	}
	return fmt.Sprintf("Booked with %s on %s at %s", vet.Name, date, b.Time)
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
