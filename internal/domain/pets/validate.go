package pets

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Mensajes que muestra la UI junto a cada campo.
const (
	MsgPetNameRequired = "Pet name is required"
	MsgBreedRequired   = "Breed is required"
	MsgAgeInvalid      = "Age must be valid"
	MsgHistoryInvalid  = "History must be text"

	MsgEditingIDInvalid = "Editing id must be text"
)

// FieldError describe un campo rechazado.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult es el resultado etiquetado de Validate: o Input es válido
// (Errors vacío) o Errors enumera todos los campos rechazados, en orden fijo
// petName, breed, age, history.
type ValidationResult struct {
	Input  PetInput
	Errors []FieldError
}

func (r ValidationResult) OK() bool { return len(r.Errors) == 0 }

// First devuelve el primer campo rechazado (el que la UI enfoca).
func (r ValidationResult) First() (FieldError, bool) {
	if len(r.Errors) == 0 {
		return FieldError{}, false
	}
	return r.Errors[0], true
}

// Validate convierte input crudo (formulario / JSON sin tipar) en un PetInput.
// Es total: nunca paniquea ni devuelve error, cualquier problema queda en Errors.
func Validate(raw map[string]any) ValidationResult {
	var res ValidationResult

	name, ok := requiredText(raw["petName"])
	if !ok {
		res.Errors = append(res.Errors, FieldError{Field: "petName", Message: MsgPetNameRequired})
	}
	breed, ok := requiredText(raw["breed"])
	if !ok {
		res.Errors = append(res.Errors, FieldError{Field: "breed", Message: MsgBreedRequired})
	}
	age, ok := coerceAge(raw["age"])
	if !ok {
		res.Errors = append(res.Errors, FieldError{Field: "age", Message: MsgAgeInvalid})
	}
	history, ok := optionalText(raw["history"])
	if !ok {
		res.Errors = append(res.Errors, FieldError{Field: "history", Message: MsgHistoryInvalid})
	}

	if len(res.Errors) > 0 {
		return res
	}

	res.Input = PetInput{
		PetName: name,
		Breed:   breed,
		Age:     age,
		History: history,
	}
	return res
}

func requiredText(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

func optionalText(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return strings.TrimSpace(t), true
	default:
		return "", false
	}
}

// coerceAge imita la coerción numérica del formulario original:
// números tal cual, texto numérico parseado, "" vale 0. Ausente, null,
// booleanos, NaN e infinitos no son edades.
func coerceAge(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, true
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}
	return f, true
}

// CheckRecord valida un registro ya persistido (o a punto de persistirse).
func CheckRecord(p Pet) error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("id is required")
	}
	if strings.TrimSpace(p.PetName) == "" {
		return errors.New(MsgPetNameRequired)
	}
	if strings.TrimSpace(p.Breed) == "" {
		return errors.New(MsgBreedRequired)
	}
	if math.IsNaN(p.Age) || math.IsInf(p.Age, 0) || p.Age < 0 {
		return errors.New(MsgAgeInvalid)
	}
	return nil
}

// CheckCollection exige registros válidos e ids únicos.
func CheckCollection(items []Pet) error {
	seen := make(map[string]struct{}, len(items))
	for i, p := range items {
		if err := CheckRecord(p); err != nil {
			return fmt.Errorf("pet %d: %w", i, err)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("pet %d: duplicate id %s", i, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
