package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "personal-calendar/docs"
	mem "personal-calendar/internal/adapters/storage/memory"
	pg "personal-calendar/internal/adapters/storage/postgres"
	"personal-calendar/internal/domain/calendarview"
	"personal-calendar/internal/domain/events"
	"personal-calendar/internal/live"
	"personal-calendar/internal/middleware"
	"personal-calendar/internal/platform/logger"
	"personal-calendar/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// DBNotifications indica que los avisos de cambio llegan por LISTEN/NOTIFY
	// (postgres.Listener) y el servicio no debe publicarlos directo.
	DBNotifications bool

	Logger   logger.Logger  // nil => no loguea
	Location *time.Location // nil => time.Local

	// Mutaciones por minuto y usuario. 0 => sin límite.
	RateLimitPerMin int
}

// App expone lo que main necesita además del handler.
type App struct {
	Handler http.Handler
	Hub     *live.Hub
	Events  *events.Service
}

func NewRouter(opts Options) http.Handler {
	return New(opts).Handler
}

func New(opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier, log))
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.NewRateLimiter(opts.RateLimitPerMin).Middleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var eventRepo events.Repository

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := openAndMigrate(dsn)
			if err != nil {
				log.Warn("postgres unavailable, using memory store", map[string]any{"error": err.Error()})
			} else {
				db = opened
			}
		}
	}

	if db != nil {
		eventRepo = pg.NewEventsRepo(db)
	} else {
		eventRepo = mem.NewEventRepo()
	}

	// Services por módulo
	eventsSvc := events.NewService(eventRepo, loc)
	hub := live.NewHub(eventsSvc.QueryRange, log.With(map[string]any{"component": "live"}))
	if !opts.DBNotifications {
		eventsSvc.SetPublisher(hub)
	}
	viewSvc := calendarview.NewService(eventsSvc)

	// Rutas por módulo
	live.RegisterRoutes(r, hub, eventsSvc)
	events.RegisterRoutes(r, eventsSvc)
	calendarview.RegisterRoutes(r, viewSvc)

	return &App{Handler: r, Hub: hub, Events: eventsSvc}
}

func openAndMigrate(dsn string) (*sql.DB, error) {
	db, err := pg.Open(dsn)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := pg.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
