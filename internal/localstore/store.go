// Package localstore persiste colecciones ordenadas de registros como un único
// blob JSON por key, dentro del namespace de cada dispositivo.
//
// Es el equivalente server-side del localStorage del navegador: Save reemplaza
// la colección entera (no hay parches incrementales) y Load nunca falla por
// ausencia de datos. Un valor ilegible se trata como colección vacía y se
// registra como warning; el valor queda en su lugar hasta la próxima escritura.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"petcare-registry/internal/platform/logger"
	"petcare-registry/internal/ports/kv"
)

// ErrInvalidCollection se devuelve cuando Save recibe una colección que no pasa Check.
var ErrInvalidCollection = errors.New("localstore: invalid collection")

// Migration describe cómo poblar la key principal a partir de una key legada
// que guardaba un solo registro.
type Migration[T any] struct {
	LegacyKey string
	// Convert decodifica el valor legado y devuelve el registro ya migrado
	// (incluido su identificador nuevo).
	Convert func(raw []byte) (T, error)
}

type Options[T any] struct {
	Key       string
	Migration *Migration[T]
	// Check valida la colección completa (forma de cada registro, unicidad de ids).
	// Se aplica al leer y antes de escribir.
	Check  func([]T) error
	Logger logger.Logger
}

type Store[T any] struct {
	kv        kv.Store
	key       string
	migration *Migration[T]
	check     func([]T) error
	log       logger.Logger
	locks     *namespaceLocks
}

func New[T any](store kv.Store, opts Options[T]) *Store[T] {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	if opts.Migration != nil && (opts.Migration.Convert == nil || strings.TrimSpace(opts.Migration.LegacyKey) == "") {
		panic("localstore: migration requires LegacyKey and Convert")
	}
	return &Store[T]{
		kv:        store,
		key:       opts.Key,
		migration: opts.Migration,
		check:     opts.Check,
		log:       log.With(map[string]any{"key": opts.Key}),
		locks:     newNamespaceLocks(),
	}
}

func (s *Store[T]) Key() string { return s.key }

// Load devuelve la colección guardada en el namespace. Si la key principal no
// existe intenta la migración (una sola vez: después la key principal ya existe).
func (s *Store[T]) Load(ctx context.Context, namespace string) ([]T, error) {
	unlock := s.locks.lock(namespace)
	defer unlock()

	return s.load(ctx, namespace)
}

// Save reemplaza la colección completa.
func (s *Store[T]) Save(ctx context.Context, namespace string, items []T) error {
	unlock := s.locks.lock(namespace)
	defer unlock()

	return s.save(ctx, namespace, items)
}

// Update hace read-modify-write con el namespace bloqueado, así dos submits
// concurrentes del mismo dispositivo no se pisan. Si fn falla no se escribe nada.
func (s *Store[T]) Update(ctx context.Context, namespace string, fn func(current []T) ([]T, error)) ([]T, error) {
	unlock := s.locks.lock(namespace)
	defer unlock()

	current, err := s.load(ctx, namespace)
	if err != nil {
		return nil, err
	}

	next, err := fn(clone(current))
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, namespace, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *Store[T]) load(ctx context.Context, namespace string) ([]T, error) {
	raw, err := s.kv.Get(ctx, namespace, s.key)
	switch {
	case err == nil:
		return s.decode(namespace, raw), nil
	case errors.Is(err, kv.ErrNotFound):
		if s.migration == nil {
			return []T{}, nil
		}
		return s.migrate(ctx, namespace)
	default:
		return nil, fmt.Errorf("localstore: read %s: %w", s.key, err)
	}
}

func (s *Store[T]) decode(namespace string, raw []byte) []T {
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.Warn("stored collection is not valid json, treating as empty", map[string]any{
			"namespace": namespace,
			"err":       err,
		})
		return []T{}
	}
	if items == nil {
		// "null" o vacío: colección vacía
		return []T{}
	}
	if s.check != nil {
		if err := s.check(items); err != nil {
			s.log.Warn("stored collection failed validation, treating as empty", map[string]any{
				"namespace": namespace,
				"err":       err,
			})
			return []T{}
		}
	}
	return items
}

func (s *Store[T]) migrate(ctx context.Context, namespace string) ([]T, error) {
	m := s.migration

	raw, err := s.kv.Get(ctx, namespace, m.LegacyKey)
	if errors.Is(err, kv.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("localstore: read legacy %s: %w", m.LegacyKey, err)
	}

	rec, err := m.Convert(raw)
	if err != nil {
		// No hay datos de recuperación: dejamos la key legada intacta y seguimos vacíos.
		s.log.Warn("legacy value unreadable, skipping migration", map[string]any{
			"namespace":  namespace,
			"legacy_key": m.LegacyKey,
			"err":        err,
		})
		return []T{}, nil
	}

	items := []T{rec}
	if err := s.save(ctx, namespace, items); err != nil {
		return nil, fmt.Errorf("localstore: migrate %s: %w", m.LegacyKey, err)
	}

	// Si falla el borrado la migración igual quedó hecha: la key principal ya existe.
	if err := s.kv.Delete(ctx, namespace, m.LegacyKey); err != nil {
		s.log.Error("failed to delete legacy key after migration", map[string]any{
			"namespace":  namespace,
			"legacy_key": m.LegacyKey,
			"err":        err,
		})
	}

	s.log.Info("migrated legacy record", map[string]any{
		"namespace":  namespace,
		"legacy_key": m.LegacyKey,
	})
	return items, nil
}

func (s *Store[T]) save(ctx context.Context, namespace string, items []T) error {
	if items == nil {
		items = []T{}
	}
	if s.check != nil {
		if err := s.check(items); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCollection, err)
		}
	}

	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("localstore: encode %s: %w", s.key, err)
	}
	if err := s.kv.Set(ctx, namespace, s.key, b); err != nil {
		return fmt.Errorf("localstore: write %s: %w", s.key, err)
	}
	return nil
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
