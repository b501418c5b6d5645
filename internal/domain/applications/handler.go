package applications

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes: POST es público (con limiter), GET requiere admin.
func RegisterRoutes(r chi.Router, svc *Service, requireAuth, limit func(http.Handler) http.Handler, log logger.Logger, m *metrics.Metrics) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(map[string]any{"module": "applications"})

	r.Route("/api/applications", func(ar chi.Router) {
		ar.With(limit).Post("/", submitHandler(svc, log, m))
		ar.With(requireAuth).Get("/", listHandler(svc, log))
	})
}

type submitRequest struct {
	PetID   string `json:"petId"`
	PetName string `json:"petName"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type applicationResponse struct {
	ID        string    `json:"_id"`
	PetID     string    `json:"petId"`
	PetName   string    `json:"petName"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type messageResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// submitHandler godoc
// @Summary Enviar solicitud de adopción
// @Description Formulario público. petId es opcional y no se valida contra el catálogo.
// @Tags applications
// @Accept json
// @Produce json
// @Param payload body submitRequest true "Datos del solicitante"
// @Success 201 {object} messageResponse
// @Failure 400 {object} messageResponse
// @Failure 429 {object} messageResponse
// @Failure 500 {object} messageResponse
// @Router /api/applications [post]
func submitHandler(svc *Service, log logger.Logger, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid json"})
			return
		}

		a, err := svc.Submit(r.Context(), SubmitInput{
			PetID:   req.PetID,
			PetName: req.PetName,
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Message: req.Message,
		})
		if err != nil {
			writeError(w, log, err)
			return
		}

		m.ApplicationSubmitted()
		log.Info("application submitted", map[string]any{
			"application_id": a.ID,
			"pet_id":         a.PetID,
			"email":          a.Email,
		})
		writeJSON(w, http.StatusCreated, messageResponse{Message: "Application submitted successfully"})
	}
}

// listHandler godoc
// @Summary Listar solicitudes
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} applicationResponse
// @Failure 401 {object} messageResponse
// @Failure 500 {object} messageResponse
// @Router /api/applications [get]
func listHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, log, err)
			return
		}

		out := make([]applicationResponse, 0, len(items))
		for _, a := range items {
			out = append(out, applicationResponse{
				ID:        a.ID,
				PetID:     a.PetID,
				PetName:   a.PetName,
				Name:      a.Name,
				Email:     a.Email,
				Phone:     a.Phone,
				Message:   a.Message,
				CreatedAt: a.CreatedAt,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: verr.Error(), Errors: verr.Fields})
	case errors.Is(err, ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
	default:
		log.Error("applications store error", map[string]any{"error": err})
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
