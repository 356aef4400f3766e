package api

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/Harshitk-cp/emgine/internal/api/handlers"
	mw "github.com/Harshitk-cp/emgine/internal/api/middleware"
	"github.com/Harshitk-cp/emgine/internal/buildconfig"
	"github.com/Harshitk-cp/emgine/internal/config"
	"github.com/Harshitk-cp/emgine/internal/domain"
	"github.com/Harshitk-cp/emgine/internal/service"
	"github.com/Harshitk-cp/emgine/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const limiterCleanupInterval = 10 * time.Minute

// App holds the router and the rate limiter's cleanup loop.
type App struct {
	Router       *chi.Mux
	limiter      *mw.RateLimiter
	done         chan struct{}
	startTime    time.Time
	requestCount atomic.Int64
	clientErrors atomic.Int64
	serverErrors atomic.Int64
}

func NewApp(db *pgxpool.Pool, logger *zap.Logger) *App {
	// Stores
	tenantStore := store.NewTenantStore(db)
	agentStore := store.NewAgentStore(db)
	goalStore := store.NewGoalStore(db)
	affectStore := store.NewAffectStore(db)
	appraisalStore := store.NewAppraisalStore(db)

	// Services. Appraisal and affect updates share one lock per agent.
	locks := service.NewAgentLocks()
	agentSvc := service.NewAgentService(agentStore, config.DefaultSlots(), logger)
	goalSvc := service.NewGoalService(goalStore, affectStore, logger)
	appraisalSvc := service.NewAppraisalService(goalStore, affectStore, appraisalStore, config.AppraisalThresholds(), locks, logger)
	affectSvc := service.NewAffectService(affectStore, locks, logger)

	// Handlers
	tenantHandler := handlers.NewTenantHandler(tenantStore)
	agentHandler := handlers.NewAgentHandler(agentSvc)
	goalHandler := handlers.NewGoalHandler(goalSvc)
	appraisalHandler := handlers.NewAppraisalHandler(appraisalSvc)
	affectHandler := handlers.NewAffectHandler(affectSvc)

	r := chi.NewRouter()
	app := &App{
		Router:    r,
		limiter:   mw.NewRateLimiter(config.RateLimitRPS(), config.RateLimitBurst()),
		done:      make(chan struct{}),
		startTime: time.Now(),
	}
	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.clientErrors, &app.serverErrors)

	// Order matters: the request ID must exist before logging, and the
	// limiter keys on the address RealIP resolves.
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(app.limiter.Middleware)

	r.Get("/health", healthHandler(db))
	r.Get("/metrics", app.metricsHandler())

	// Bootstrap endpoint, no auth.
	r.Post("/v1/tenants", tenantHandler.Create)

	r.Route("/v1", func(r chi.Router) {
		r.Use(mw.APIKeyAuth(tenantStore))

		r.Route("/agents", func(r chi.Router) {
			r.Post("/", agentHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", agentHandler.GetByID)

				r.Get("/goals", goalHandler.List)
				r.Post("/goals", goalHandler.Create)

				r.Post("/events", appraisalHandler.Event)
				r.Get("/appraisals", appraisalHandler.List)
				r.Get("/appraisals/similar", appraisalHandler.Similar)

				r.Get("/affect", affectHandler.Get)
				r.Post("/attention", affectHandler.Attention)
				r.Post("/attachment", affectHandler.Attachment)
			})
		})
	})

	return app
}

// Start runs background maintenance until Stop.
func (app *App) Start() {
	go app.limiter.RunCleanup(limiterCleanupInterval, app.done)
}

func (app *App) Stop() {
	close(app.done)
}

type pinger interface {
	Ping(ctx context.Context) error
}

func healthHandler(db pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := db.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds":  uptime.Seconds(),
			"uptime_human":    uptime.Round(time.Second).String(),
			"request_count":   app.requestCount.Load(),
			"client_errors":   app.clientErrors.Load(),
			"server_errors":   app.serverErrors.Load(),
			"tracked_clients": app.limiter.Len(),
			"goroutines":      runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb": float64(memStats.Alloc) / 1024 / 1024,
				"sys_mb":   float64(memStats.Sys) / 1024 / 1024,
				"num_gc":   memStats.NumGC,
			},
			"go_version": runtime.Version(),
			"build":      buildconfig.VersionInfo(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores satisfy interfaces at compile time.
var (
	_ domain.TenantStore    = (*store.TenantStore)(nil)
	_ domain.AgentStore     = (*store.AgentStore)(nil)
	_ domain.GoalStore      = (*store.GoalStore)(nil)
	_ domain.AffectStore    = (*store.AffectStore)(nil)
	_ domain.AppraisalStore = (*store.AppraisalStore)(nil)

	_ handlers.AgentService     = (*service.AgentService)(nil)
	_ handlers.GoalService      = (*service.GoalService)(nil)
	_ handlers.AppraisalService = (*service.AppraisalService)(nil)
	_ handlers.AffectService    = (*service.AffectService)(nil)
)
