package kv

import (
	"context"
	"errors"
)

// ErrNotFound indica que la key no existe en el namespace.
var ErrNotFound = errors.New("kv: key not found")

// Store es un almacenamiento key-value particionado por namespace (un namespace por dispositivo).
// Cada Set reemplaza el valor completo de forma atómica: nunca se observan escrituras parciales.
type Store interface {
	Get(ctx context.Context, namespace, key string) ([]byte, error)
	Set(ctx context.Context, namespace, key string, value []byte) error
	Delete(ctx context.Context, namespace, key string) error
}
