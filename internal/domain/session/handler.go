package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"petcare-registry/internal/middleware"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 4 << 10

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/session", func(sr chi.Router) {
		sr.Get("/", getSessionHandler(svc))
		sr.Post("/", loginHandler(svc))
		sr.Delete("/", logoutHandler(svc))
	})
}

type sessionResponse struct {
	Name     string `json:"name"`
	LoggedIn bool   `json:"loggedIn"`
}

// loginRequest acepta "name" o "username" (el formulario de login usa el segundo).
type loginRequest struct {
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
}

// getSessionHandler godoc
// @Summary Sesión actual del dispositivo
// @Tags session
// @Produce json
// @Param X-Device-ID header string true "Identificador del dispositivo"
// @Success 200 {object} sessionResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "no session"
// @Router /session [get]
func getSessionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		device, ok := middleware.GetDevice(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		sess, active, err := svc.Get(r.Context(), device)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !active {
			http.Error(w, "no session", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, sessionResponse(sess))
	}
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Description Guarda `{name, loggedIn:true}` en el dispositivo. No hay credenciales.
// @Tags session
// @Accept json
// @Produce json
// @Param X-Device-ID header string true "Identificador del dispositivo"
// @Param payload body loginRequest true "Nombre visible"
// @Success 201 {object} sessionResponse
// @Failure 400 {string} string "name is required"
// @Failure 401 {string} string "unauthorized"
// @Failure 413 {string} string "request body too large"
// @Router /session [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		device, ok := middleware.GetDevice(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req loginRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		name := req.Name
		if strings.TrimSpace(name) == "" {
			name = req.Username
		}

		sess, err := svc.Set(r.Context(), device, name)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "name is required", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, sessionResponse(sess))
	}
}

// logoutHandler godoc
// @Summary Cerrar sesión
// @Tags session
// @Param X-Device-ID header string true "Identificador del dispositivo"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Router /session [delete]
func logoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		device, ok := middleware.GetDevice(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Clear(r.Context(), device); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
