package bookings

import (
	"context"

	"petcare-registry/internal/localstore"
	"petcare-registry/internal/platform/logger"
	"petcare-registry/internal/ports/kv"
)

type Repository interface {
	Load(ctx context.Context, device string) ([]Booking, error)
	Update(ctx context.Context, device string, fn func(current []Booking) ([]Booking, error)) ([]Booking, error)
}

// NewRepository arma el store local de turnos. No hay formato legado que migrar.
func NewRepository(store kv.Store, log logger.Logger) *localstore.Store[Booking] {
	return localstore.New(store, localstore.Options[Booking]{
		Key:    StorageKey,
		Check:  CheckCollection,
		Logger: log,
	})
}
