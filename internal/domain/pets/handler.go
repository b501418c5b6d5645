package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el catálogo público y las rutas de admin.
// requireAuth es el gate Bearer; log y m pueden ser nil.
func RegisterRoutes(r chi.Router, svc *Service, requireAuth func(http.Handler) http.Handler, log logger.Logger, m *metrics.Metrics) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(map[string]any{"module": "pets"})

	r.Route("/api/pets", func(pr chi.Router) {
		// Público
		pr.Get("/", listAvailableHandler(svc, log))
		pr.Get("/{petID}", getPetHandler(svc, log))

		// Admin
		pr.Group(func(ar chi.Router) {
			ar.Use(requireAuth)
			ar.Post("/", createPetHandler(svc, log, m))
			ar.Put("/{petID}", updatePetHandler(svc, log, m))
			ar.Delete("/{petID}", deletePetHandler(svc, log, m))
		})
	})

	r.With(requireAuth).Get("/api/admin/pets", listAllHandler(svc, log))
}

type petRequest struct {
	Name           *string `json:"name"`
	Type           *string `json:"type"`
	Breed          *string `json:"breed"`
	Age            *string `json:"age"`
	Location       *string `json:"location"`
	Bio            *string `json:"bio"`
	Image          *string `json:"image"`
	Gender         *string `json:"gender"`
	Size           *string `json:"size"`
	AdoptionStatus *string `json:"adoptionStatus"`
}

type petResponse struct {
	ID             string         `json:"_id"`
	Name           string         `json:"name"`
	Type           string         `json:"type"`
	Breed          string         `json:"breed"`
	Age            string         `json:"age"`
	Location       string         `json:"location"`
	Bio            string         `json:"bio"`
	Image          string         `json:"image"`
	Gender         Gender         `json:"gender"`
	Size           Size           `json:"size"`
	AdoptionStatus AdoptionStatus `json:"adoptionStatus"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

type messageResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// listAvailableHandler godoc
// @Summary Listar mascotas disponibles
// @Description Catálogo público. Solo devuelve mascotas con adoptionStatus=Available.
// @Tags pets
// @Produce json
// @Param type query string false "Especie exacta (Dog, Cat, ...)"
// @Param q query string false "Texto libre sobre nombre/raza"
// @Success 200 {array} petResponse
// @Failure 500 {object} messageResponse
// @Router /api/pets [get]
func listAvailableHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items, err := svc.ListAvailable(r.Context(), q.Get("type"), q.Get("q"))
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponses(items))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota (UUID)"
// @Success 200 {object} petResponse
// @Failure 400 {object} messageResponse "id inválido"
// @Failure 404 {object} messageResponse "Pet not found"
// @Failure 500 {object} messageResponse
// @Router /api/pets/{petID} [get]
func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description gender, size y adoptionStatus son opcionales (Unknown, Medium, Available).
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body petRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {object} messageResponse
// @Failure 401 {object} messageResponse
// @Router /api/pets [post]
func createPetHandler(svc *Service, log logger.Logger, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid json"})
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:           deref(req.Name),
			Type:           deref(req.Type),
			Breed:          deref(req.Breed),
			Age:            deref(req.Age),
			Location:       deref(req.Location),
			Bio:            deref(req.Bio),
			Image:          deref(req.Image),
			Gender:         deref(req.Gender),
			Size:           deref(req.Size),
			AdoptionStatus: deref(req.AdoptionStatus),
		})
		if err != nil {
			writeError(w, log, err)
			return
		}

		m.PetChanged("create")
		log.Info("pet created", map[string]any{"pet_id": p.ID, "admin_id": adminID(r)})
		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Update parcial: solo se tocan los campos presentes en el body.
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param petID path string true "ID de la mascota (UUID)"
// @Param payload body petRequest true "Campos a modificar"
// @Success 200 {object} petResponse
// @Failure 400 {object} messageResponse
// @Failure 401 {object} messageResponse
// @Failure 404 {object} messageResponse
// @Failure 500 {object} messageResponse
// @Router /api/pets/{petID} [put]
func updatePetHandler(svc *Service, log logger.Logger, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid json"})
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), UpdateInput{
			Name:           req.Name,
			Type:           req.Type,
			Breed:          req.Breed,
			Age:            req.Age,
			Location:       req.Location,
			Bio:            req.Bio,
			Image:          req.Image,
			Gender:         req.Gender,
			Size:           req.Size,
			AdoptionStatus: req.AdoptionStatus,
		})
		if err != nil {
			writeError(w, log, err)
			return
		}

		m.PetChanged("update")
		log.Info("pet updated", map[string]any{"pet_id": p.ID, "admin_id": adminID(r)})
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param petID path string true "ID de la mascota (UUID)"
// @Success 200 {object} messageResponse
// @Failure 400 {object} messageResponse
// @Failure 401 {object} messageResponse
// @Failure 404 {object} messageResponse
// @Failure 500 {object} messageResponse
// @Router /api/pets/{petID} [delete]
func deletePetHandler(svc *Service, log logger.Logger, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Delete(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeError(w, log, err)
			return
		}

		m.PetChanged("delete")
		log.Info("pet deleted", map[string]any{"pet_id": p.ID, "admin_id": adminID(r)})
		writeJSON(w, http.StatusOK, messageResponse{Message: "Pet deleted successfully"})
	}
}

// listAllHandler godoc
// @Summary Listar todas las mascotas (admin)
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param status query string false "CSV de estados (ej: Available,Pending)"
// @Success 200 {array} petResponse
// @Failure 400 {object} messageResponse
// @Failure 401 {object} messageResponse
// @Failure 500 {object} messageResponse
// @Router /api/admin/pets [get]
func listAllHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statuses, err := ParseStatuses(r.URL.Query().Get("status"))
		if err != nil {
			writeError(w, log, err)
			return
		}
		items, err := svc.ListAll(r.Context(), statuses)
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponses(items))
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:             p.ID,
		Name:           p.Name,
		Type:           p.Type,
		Breed:          p.Breed,
		Age:            p.Age,
		Location:       p.Location,
		Bio:            p.Bio,
		Image:          p.Image,
		Gender:         p.Gender,
		Size:           p.Size,
		AdoptionStatus: p.AdoptionStatus,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toPetResponses(items []Pet) []petResponse {
	out := make([]petResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPetResponse(p))
	}
	return out
}

// adminID sale de los claims que deja RequireAuth.
func adminID(r *http.Request) string {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		return ""
	}
	return claims.UserID
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// writeError traduce errores de dominio a status. Lo que no es de dominio es 500 y se loguea.
func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: verr.Error(), Errors: verr.Fields})
	case errors.Is(err, ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, messageResponse{Message: "Pet not found"})
	default:
		log.Error("pets store error", map[string]any{"error": err})
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
