package pets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"petcare-registry/internal/domain/session"
	"petcare-registry/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, sessions *session.Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc, sessions))
		pr.Post("/", submitPetHandler(svc, sessions))

		pr.Get("/{petID}", getPetHandler(svc, sessions))
		pr.Put("/{petID}", updatePetHandler(svc, sessions))
		pr.Delete("/{petID}", removePetHandler(svc, sessions))
	})
}

// petResponse es una mascota tal como la guarda el dispositivo.
type petResponse struct {
	ID      string  `json:"id"`
	PetName string  `json:"petName"`
	Breed   string  `json:"breed"`
	Age     float64 `json:"age"`
	History string  `json:"history"`
}

// submitPetRequest documenta el cuerpo del formulario. Se decodifica como map
// sin tipar para que la validación coercione igual que el formulario original.
type submitPetRequest struct {
	PetName   string `json:"petName"`
	Breed     string `json:"breed"`
	Age       any    `json:"age" swaggertype:"string" example:"3"`
	History   string `json:"history"`
	EditingID string `json:"editingId,omitempty"` // si viene, edita en vez de crear
}

// submitPetResponse devuelve la colección nueva y el id afectado.
type submitPetResponse struct {
	Pets       []petResponse `json:"pets"`
	AffectedID string        `json:"affectedId"`
}

type removePetResponse struct {
	Pets []petResponse `json:"pets"`
}

// validationErrorResponse: message/field del primer error (como el endpoint de chat)
// y la lista completa para pintar cada campo.
type validationErrorResponse struct {
	Message string       `json:"message"`
	Field   string       `json:"field"`
	Errors  []FieldError `json:"errors"`
}

// listPetsHandler godoc
// @Summary Listar mascotas del dispositivo
// @Description Devuelve la colección ordenada por alta. Si no existe y hay un perfil legado, lo migra primero. Requiere `X-Device-ID` y sesión abierta.
// @Tags pets
// @Produce json
// @Param X-Device-ID header string true "Identificador del dispositivo"
// @Success 200 {array} petResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /pets [get]
func listPetsHandler(svc *Service, sessions *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		device, ok := requireSession(w, r, sessions)
		if !ok {
			return
		}

		items, err := svc.List(r.Context(), device)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponses(items))
	}
}

// getPetHandler godoc
// @Summary Obtener una mascota
// @Tags pets
// @Produce json
// @Param X-Device-ID header string true "Identificador del dispositivo"
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service, sessions *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		device, ok := requireSession(w, r, sessions)
		if !ok {
			return
		}

		p, err := svc.GetByID(r.Context(), device, chi.URLParam(r, "petID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// submitPetHandler godoc
// @Summary Guardar mascota (alta o edición)
// @Description Sin `editingId` agrega una mascota nueva al final. Con `editingId` reemplaza esa mascota conservando su id; si el id no existe responde 404 y no toca nada.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Device-ID header string true "Identificador del dispositivo"
// @Param payload body submitPetRequest true "Formulario de mascota"
// @Success 201 {object} submitPetResponse "alta"
// @Success 200 {object} submitPetResponse "edición"
// @Failure 400 {object} validationErrorResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Failure 413 {string} string "request body too large"
// @Router /pets [post]
func submitPetHandler(svc *Service, sessions *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		device, ok := requireSession(w, r, sessions)
		if !ok {
			return
		}

		raw, ok := decodeForm(w, r)
		if !ok {
			return
		}

		editingID, ok := editingIDFrom(raw)
		if !ok {
			writeJSON(w, http.StatusBadRequest, validationErrorResponse{
				Message: MsgEditingIDInvalid,
				Field:   "editingId",
				Errors:  []FieldError{{Field: "editingId", Message: MsgEditingIDInvalid}},
			})
			return
		}
		delete(raw, "editingId")

		submit(r.Context(), w, svc, device, raw, editingID)
	}
}

// updatePetHandler godoc
// @Summary Editar mascota
// @Description Igual que POST /pets con `editingId` = petID.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Device-ID header string true "Identificador del dispositivo"
// @Param petID path string true "ID de la mascota"
// @Param payload body submitPetRequest true "Formulario de mascota"
// @Success 200 {object} submitPetResponse
// @Failure 400 {object} validationErrorResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service, sessions *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		device, ok := requireSession(w, r, sessions)
		if !ok {
			return
		}

		raw, ok := decodeForm(w, r)
		if !ok {
			return
		}
		delete(raw, "editingId")

		submit(r.Context(), w, svc, device, raw, chi.URLParam(r, "petID"))
	}
}

// removePetHandler godoc
// @Summary Borrar mascota
// @Description Quita la mascota de la colección. Borrar un id inexistente no es error.
// @Tags pets
// @Produce json
// @Param X-Device-ID header string true "Identificador del dispositivo"
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} removePetResponse
// @Failure 401 {string} string "unauthorized"
// @Router /pets/{petID} [delete]
func removePetHandler(svc *Service, sessions *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		device, ok := requireSession(w, r, sessions)
		if !ok {
			return
		}

		items, err := svc.Remove(r.Context(), device, chi.URLParam(r, "petID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, removePetResponse{Pets: toPetResponses(items)})
	}
}

func submit(ctx context.Context, w http.ResponseWriter, svc *Service, device string, raw map[string]any, editingID string) {
	res := Validate(raw)
	if first, failed := res.First(); failed {
		writeJSON(w, http.StatusBadRequest, validationErrorResponse{
			Message: first.Message,
			Field:   first.Field,
			Errors:  res.Errors,
		})
		return
	}

	out, err := svc.Submit(ctx, device, res.Input, editingID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	status := http.StatusOK
	if out.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, submitPetResponse{
		Pets:       toPetResponses(out.Pets),
		AffectedID: out.AffectedID,
	})
}

// maxBodyBytes acota el formulario; una mascota ocupa unos pocos cientos de bytes.
const maxBodyBytes = 64 << 10

// decodeForm deja los números como json.Number para que coerceAge reporte
// valores fuera de rango como error del campo age y no como JSON inválido.
func decodeForm(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil || raw == nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return nil, false
		}
		http.Error(w, "invalid json", http.StatusBadRequest)
		return nil, false
	}
	return raw, true
}

// editingIDFrom lee editingId del formulario. Ausente, null o "" es alta;
// cualquier otro tipo se rechaza para no convertir una edición en un alta.
func editingIDFrom(raw map[string]any) (string, bool) {
	v, present := raw["editingId"]
	if !present || v == nil {
		return "", true
	}
	id, ok := v.(string)
	return id, ok
}

// requireSession exige dispositivo identificado y sesión abierta en él.
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
	case errors.Is(err, ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, "request canceled", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:      p.ID,
		PetName: p.PetName,
		Breed:   p.Breed,
		Age:     p.Age,
		History: p.History,
	}
}

func toPetResponses(items []Pet) []petResponse {
	out := make([]petResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPetResponse(p))
	}
	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos (pets/bookings)
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
