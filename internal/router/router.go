package router

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	_ "pet-adoption/docs"

	"pet-adoption/internal/adapters/auth/bcrypthash"
	"pet-adoption/internal/adapters/auth/jwttoken"
	mem "pet-adoption/internal/adapters/storage/memory"
	pg "pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/domain/admins"
	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	JWTSecret         string
	BcryptCost        int
	AllowRegistration bool

	CORSAllowedOrigins []string

	// RateLimitPerMinute <= 0 deshabilita el limiter.
	RateLimitPerMinute int
	RateLimitBurst     int

	Logger  logger.Logger
	Metrics *metrics.Metrics

	// BaseContext corta la limpieza del limiter. nil = sin limpieza periódica.
	BaseContext context.Context
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	signer, err := jwttoken.NewSigner(opts.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("token signer: %w", err)
	}
	hasher := bcrypthash.New(opts.BcryptCost)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log, m))
	r.Use(chimw.Recoverer)

	origins := opts.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		petRepo   pets.Repository
		appRepo   applications.Repository
		adminRepo admins.Repository
	)

	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		appRepo = pg.NewApplicationsRepo(opts.DB)
		adminRepo = pg.NewAdminsRepo(opts.DB)
	} else {
		petRepo = mem.NewPetRepo()
		appRepo = mem.NewApplicationRepo()
		adminRepo = mem.NewAdminRepo()
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	appsSvc := applications.NewService(appRepo)
	adminsSvc := admins.NewService(adminRepo, hasher, signer, opts.AllowRegistration)

	requireAuth := middleware.RequireAuth(signer, log)
	// Buckets separados: el formulario público no consume el cupo de login.
	authLimiter := middleware.NewRateLimiter(opts.RateLimitPerMinute, opts.RateLimitBurst, log)
	applyLimiter := middleware.NewRateLimiter(opts.RateLimitPerMinute, opts.RateLimitBurst, log)
	if opts.BaseContext != nil {
		authLimiter.StartCleanup(opts.BaseContext, 10*time.Minute)
		applyLimiter.StartCleanup(opts.BaseContext, 10*time.Minute)
	}

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc, requireAuth, log, m)
	applications.RegisterRoutes(r, appsSvc, requireAuth, applyLimiter.Handler, log, m)
	admins.RegisterRoutes(r, adminsSvc, authLimiter.Handler, log, m)

	return r, nil
}
