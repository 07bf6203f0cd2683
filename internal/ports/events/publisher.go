package events

import "context"

// Subjects publicados cuando cambia el estado persistido de un dispositivo.
const (
	SubjectPetSaved       = "petcare.pets.saved"
	SubjectPetRemoved     = "petcare.pets.removed"
	SubjectBookingCreated = "petcare.bookings.created"
)

// Publisher notifica cambios a quien le interese (p.ej. otra pestaña o un worker).
// Un fallo al publicar nunca debe revertir una escritura ya persistida.
type Publisher interface {
	Publish(ctx context.Context, subject string, event any) error
	Close() error
}

// Change es el payload común de las notificaciones.
type Change struct {
	Device   string `json:"device"`
	RecordID string `json:"record_id"`
	Count    int    `json:"count"`
}

// NoopPublisher descarta todo; se usa cuando no hay NATS configurado.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, any) error { return nil }
func (NoopPublisher) Close() error                               { return nil }
