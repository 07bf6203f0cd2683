// Package idgen genera los identificadores opacos de registros y reservas.
package idgen

import (
	"fmt"

	"github.com/google/uuid"
	nanoid "github.com/matoous/go-nanoid/v2"
)

// BookingPrefix va delante de cada código de reserva.
const BookingPrefix = "bk-"

// Alphabet es el set de caracteres de la parte aleatoria (URL-safe, sin símbolos).
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// BookingLength es la cantidad de caracteres aleatorios del código de reserva.
const BookingLength = 12

// Func produce un id nuevo; los servicios lo reciben inyectado para poder fijarlo en tests.
type Func func() (string, error)

// RecordID devuelve un UUID v4 para registros de mascotas.
func RecordID() (string, error) {
	return uuid.NewString(), nil
}

// BookingID devuelve un código corto tipo "bk-Xy3...".
func BookingID() (string, error) {
	id, err := nanoid.Generate(Alphabet, BookingLength)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return BookingPrefix + id, nil
}
