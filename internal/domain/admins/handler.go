package admins

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /api/auth. limit se aplica a register y login.
func RegisterRoutes(r chi.Router, svc *Service, limit func(http.Handler) http.Handler, log logger.Logger, m *metrics.Metrics) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(map[string]any{"module": "admins"})

	r.Route("/api/auth", func(ar chi.Router) {
		ar.Use(limit)
		ar.Post("/register", registerHandler(svc, log))
		ar.Post("/login", loginHandler(svc, log, m))
	})
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// registerHandler godoc
// @Summary Registrar admin
// @Description Endpoint de bootstrap; se puede deshabilitar con ALLOW_REGISTRATION=false.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body credentialsRequest true "Credenciales"
// @Success 201 {object} messageResponse
// @Failure 400 {object} messageResponse "faltan campos / password > 72 bytes / username tomado"
// @Failure 403 {object} messageResponse "registro deshabilitado"
// @Failure 429 {object} messageResponse
// @Router /api/auth/register [post]
func registerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid json"})
			return
		}

		u, err := svc.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrPasswordTooLong), errors.Is(err, ErrUsernameTaken):
				writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
			case errors.Is(err, ErrRegistrationDisabled):
				writeJSON(w, http.StatusForbidden, messageResponse{Message: err.Error()})
			default:
				log.Error("register admin failed", map[string]any{"error": err})
				writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "internal error"})
			}
			return
		}

		log.Info("admin registered", map[string]any{"admin_id": u.ID, "username": u.Username})
		writeJSON(w, http.StatusCreated, messageResponse{Message: "Admin user created successfully"})
	}
}

// loginHandler godoc
// @Summary Login de admin
// @Description Devuelve un Bearer token válido por 1 hora.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body credentialsRequest true "Credenciales"
// @Success 200 {object} tokenResponse
// @Failure 400 {object} messageResponse "Invalid credentials"
// @Failure 429 {object} messageResponse
// @Router /api/auth/login [post]
func loginHandler(svc *Service, log logger.Logger, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid json"})
			return
		}

		tok, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				m.Login("invalid")
				writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
			case errors.Is(err, ErrInvalidCredentials):
				m.Login("invalid")
				log.Warn("login rejected", map[string]any{"username": req.Username})
				writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid credentials"})
			default:
				m.Login("error")
				log.Error("login failed", map[string]any{"error": err})
				writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "internal error"})
			}
			return
		}

		m.Login("ok")
		writeJSON(w, http.StatusOK, tokenResponse{Token: tok})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
