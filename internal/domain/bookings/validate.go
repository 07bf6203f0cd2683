package bookings

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	MsgVetRequired  = "Please select a veterinarian"
	MsgDateRequired = "A date is required"
	MsgTimeRequired = "Please select a time"
	MsgDatePast     = "Date must not be in the past"
	MsgDateFormat   = "Date must be YYYY-MM-DD"
	MsgVetUnknown   = "Unknown veterinarian"
	MsgTimeUnknown  = "Time slot not available"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// BookingInput son los campos del formulario ya validados.
type BookingInput struct {
	VetID string
	Date  string // normalizada a YYYY-MM-DD
	Time  string
}

type ValidationResult struct {
	Input  BookingInput
	Errors []FieldError
}

func (r ValidationResult) OK() bool { return len(r.Errors) == 0 }

func (r ValidationResult) First() (FieldError, bool) {
	if len(r.Errors) == 0 {
		return FieldError{}, false
	}
	return r.Errors[0], true
}

// Validate revisa vetId, date y time en ese orden. today es la fecha de
// referencia para rechazar turnos en el pasado (solo importa el día).
func Validate(raw map[string]any, today time.Time) ValidationResult {
	var res ValidationResult

	vetID := text(raw["vetId"])
	switch {
	case vetID == "":
		res.Errors = append(res.Errors, FieldError{Field: "vetId", Message: MsgVetRequired})
	default:
		if _, ok := FindVet(vetID); !ok {
			res.Errors = append(res.Errors, FieldError{Field: "vetId", Message: MsgVetUnknown})
		}
	}

	date, dateErr := parseDate(raw["date"], today)
	if dateErr != "" {
		res.Errors = append(res.Errors, FieldError{Field: "date", Message: dateErr})
	}

	slot := text(raw["time"])
	switch {
	case slot == "":
		res.Errors = append(res.Errors, FieldError{Field: "time", Message: MsgTimeRequired})
	case !validSlot(slot):
		res.Errors = append(res.Errors, FieldError{Field: "time", Message: MsgTimeUnknown})
	}

	if len(res.Errors) > 0 {
		return res
	}
	res.Input = BookingInput{VetID: vetID, Date: date, Time: slot}
	return res
}

func text(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// parseDate acepta solo YYYY-MM-DD: la fecha local que eligió el usuario.
// Un timestamp (toISOString) ya viene corrido a UTC y puede caer un día antes.
func parseDate(v any, today time.Time) (string, string) {
	s := text(v)
	if s == "" {
		return "", MsgDateRequired
	}

	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", MsgDateFormat
	}

	y, m, dd := today.Date()
	if d.Before(time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)) {
		return "", MsgDatePast
	}
	return d.Format(DateLayout), ""
}

// CheckCollection exige ids únicos y turnos completos.
func CheckCollection(items []Booking) error {
	seen := make(map[string]struct{}, len(items))
	for i, b := range items {
		if strings.TrimSpace(b.ID) == "" {
			return fmt.Errorf("booking %d: id is required", i)
		}
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("booking %d: duplicate id %s", i, b.ID)
		}
		seen[b.ID] = struct{}{}
		if b.VetID == "" || b.Date == "" || b.Time == "" {
			return fmt.Errorf("booking %d: %w", i, errors.New("incomplete booking"))
		}
	}
	return nil
}
