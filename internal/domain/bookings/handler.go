package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"petcare-registry/internal/domain/session"
	"petcare-registry/internal/middleware"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 16 << 10

func RegisterRoutes(r chi.Router, svc *Service, sessions *session.Service) {
	r.Get("/vets", listVetsHandler())

	r.Route("/bookings", func(br chi.Router) {
		br.Get("/", listBookingsHandler(svc, sessions))
		br.Post("/", bookHandler(svc, sessions))
	})
}

type vetsResponse struct {
	Vets      []Vet    `json:"vets"`
	TimeSlots []string `json:"timeSlots"`
}

type bookingResponse struct {
	ID        string `json:"id"`
	VetID     string `json:"vetId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	CreatedAt string `json:"createdAt"`
}

type bookRequest struct {
	VetID string `json:"vetId" example:"1"`
	Date  string `json:"date" example:"2026-11-02"`
	Time  string `json:"time" example:"09:00 AM"`
}

type bookResponse struct {
	Booking      bookingResponse   `json:"booking"`
	Bookings     []bookingResponse `json:"bookings"`
	Confirmation string            `json:"confirmation"`
}

type validationErrorResponse struct {
	Message string       `json:"message"`
	Field   string       `json:"field"`
	Errors  []FieldError `json:"errors"`
}

// listVetsHandler godoc
// @Summary Veterinarios y horarios
// @Description Plantel fijo y franjas horarias disponibles. No requiere sesión.
// @Tags bookings
// @Produce json
// @Success 200 {object} vetsResponse
// @Router /vets [get]
func listVetsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, vetsResponse{Vets: Vets, TimeSlots: TimeSlots})
	}
}

// listBookingsHandler godoc
// @Summary Turnos del dispositivo
// @Tags bookings
// @Produce json
// @Param X-Device-ID header string true "Identificador del dispositivo"
// @Success 200 {array} bookingResponse
// @Failure 401 {string} string "unauthorized"
// @Router /bookings [get]
func listBookingsHandler(svc *Service, sessions *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		device, ok := requireSession(w, r, sessions)
		if !ok {
			return
		}

		items, err := svc.List(r.Context(), device)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toBookingResponses(items))
	}
}

// bookHandler godoc
// @Summary Reservar turno
// @Description Valida veterinario, fecha (no pasada) y horario, y agrega el turno al final de la lista.
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Device-ID header string true "Identificador del dispositivo"
// @Param payload body bookRequest true "Turno"
// @Success 201 {object} bookResponse
// @Failure 400 {object} validationErrorResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 413 {string} string "request body too large"
// @Router /bookings [post]
func bookHandler(svc *Service, sessions *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		device, ok := requireSession(w, r, sessions)
		if !ok {
			return
		}

		var raw map[string]any
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&raw); err != nil || raw == nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res := Validate(raw, svc.Today())
		if first, failed := res.First(); failed {
			writeJSON(w, http.StatusBadRequest, validationErrorResponse{
				Message: first.Message,
				Field:   first.Field,
				Errors:  res.Errors,
			})
			return
		}

		out, err := svc.Book(r.Context(), device, res.Input)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, bookResponse{
			Booking:      bookingResponse(out.Booking),
			Bookings:     toBookingResponses(out.Bookings),
			Confirmation: out.Confirmation,
		})
	}
}

func requireSession(w http.ResponseWriter, r *http.Request, sessions *session.Service) (string, bool) {
	device, ok := middleware.GetDevice(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}

	_, active, err := sessions.Get(r.Context(), device)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return "", false
	}
	if !active {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return device, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, "request canceled", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toBookingResponses(items []Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(items))
	for _, b := range items {
		out = append(out, bookingResponse(b))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
