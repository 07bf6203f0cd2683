package pets

import (
	"context"
	"encoding/json"
	"errors"

	"petcare-registry/internal/localstore"
	"petcare-registry/internal/platform/idgen"
	"petcare-registry/internal/platform/logger"
	"petcare-registry/internal/ports/kv"
)

// Repository persiste la colección completa de mascotas de un dispositivo.
type Repository interface {
	Load(ctx context.Context, device string) ([]Pet, error)
	Save(ctx context.Context, device string, items []Pet) error
	Update(ctx context.Context, device string, fn func(current []Pet) ([]Pet, error)) ([]Pet, error)
}

// NewRepository arma el store local de mascotas, incluida la migración desde
// el perfil único legado (petcare_profile).
func NewRepository(store kv.Store, log logger.Logger, newID idgen.Func) *localstore.Store[Pet] {
	if newID == nil {
		newID = idgen.RecordID
	}
	return localstore.New(store, localstore.Options[Pet]{
		Key: StorageKey,
		Migration: &localstore.Migration[Pet]{
			LegacyKey: LegacyProfileKey,
			Convert:   legacyProfileConverter(newID),
		},
		Check:  CheckCollection,
		Logger: log,
	})
}

// legacyProfileConverter decodifica el perfil viejo ({petName, breed, age, history}, sin id),
// lo valida con las mismas reglas del formulario y le asigna un id nuevo.
func legacyProfileConverter(newID idgen.Func) func(raw []byte) (Pet, error) {
	return func(raw []byte) (Pet, error) {
		var m map[string]any
		if err := json.Unmarshal(raw, &m); err != nil {
			return Pet{}, err
		}
		if m == nil {
			return Pet{}, errors.New("legacy profile is null")
		}

		res := Validate(m)
		if first, failed := res.First(); failed {
			return Pet{}, errors.New(first.Field + ": " + first.Message)
		}

		id, err := newID()
		if err != nil {
			return Pet{}, err
		}
		return res.Input.toPet(id), nil
	}
}
