package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const (
	msgMessageRequired = "Message is required"
	msgInternal        = "Internal server error"
	msgTooLarge        = "Message is too long"
)

const maxBodyBytes = 16 << 10

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/api/chat", sendHandler(svc))
}

type sendRequest struct {
	Message string `json:"message" example:"My dog keeps scratching"`
}

type sendResponse struct {
	Response string `json:"response"`
}

// errorResponse es el formato de error del endpoint de chat.
type errorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// sendHandler godoc
// @Summary Consultar al asistente
// @Description Devuelve una respuesta enlatada al azar después de una pausa. No requiere sesión.
// @Tags chat
// @Accept json
// @Produce json
// @Param payload body sendRequest true "Mensaje"
// @Success 200 {object} sendResponse
// @Failure 400 {object} errorResponse
// @Failure 413 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/chat [post]
func sendHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&raw); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Message: msgTooLarge, Field: "message"})
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: msgMessageRequired, Field: "message"})
			return
		}
		message, _ := raw["message"].(string)

		resp, err := svc.Reply(r.Context(), message)
		if err != nil {
			if errors.Is(err, ErrEmptyMessage) {
				writeJSON(w, http.StatusBadRequest, errorResponse{Message: msgMessageRequired, Field: "message"})
				return
			}
			writeJSON(w, http.StatusInternalServerError, errorResponse{Message: msgInternal})
			return
		}

		writeJSON(w, http.StatusOK, sendResponse{Response: resp})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
