package cli

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/alexanderramin/healthbot/internal/bot"
	"github.com/alexanderramin/healthbot/internal/config"
	"github.com/alexanderramin/healthbot/internal/db"
	"github.com/alexanderramin/healthbot/internal/llm"
	"github.com/alexanderramin/healthbot/internal/nutrition"
	"github.com/alexanderramin/healthbot/internal/repository"
	"github.com/alexanderramin/healthbot/internal/service"
	"github.com/alexanderramin/healthbot/internal/session"
	"github.com/alexanderramin/healthbot/internal/weather"
	"github.com/alexanderramin/healthbot/internal/wizard"
)

// App holds the wired services used by CLI commands.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	DB     *sql.DB

	Profiles   service.ProfileService
	Logs       service.LogService
	Progress   service.ProgressService
	Sessions   session.Store
	Dispatcher *bot.Dispatcher
	Registry   *prometheus.Registry

	Now           func() time.Time
	IsInteractive func() bool
}

// NewApp wires repositories, services and the dispatcher on top of an open
// database and a session store.
func NewApp(cfg *config.Config, logger *slog.Logger, database *sql.DB, store session.Store) *App {
	profileRepo := repository.NewSQLiteProfileRepo(database)
	logRepo := repository.NewSQLiteLogRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	observer := service.NewLogUseCaseObserver(logger)

	temps := weather.NewClient(cfg.WeatherAPIKey,
		weather.WithEndpoint(cfg.WeatherEndpoint),
		weather.WithTimeout(cfg.WeatherTimeout),
	)

	var llmObserver llm.Observer = llm.NoopObserver{}
	if cfg.LLM.LogCalls {
		llmObserver = llm.NewLogObserver(logger)
	}
	llmClient, err := llm.NewClient(cfg.LLM, llmObserver)
	if err != nil {
		logger.Warn("calorie estimator disabled", "error", err)
		llmClient = nil
	}

	profiles := service.NewProfileService(profileRepo, observer)
	logs := service.NewLogService(logRepo, uow, observer)
	progress := service.NewProgressService(profileRepo, logRepo, temps, observer)
	engine := wizard.NewEngine(store, profiles, logs, nutrition.NewEstimator(llmClient))

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &App{
		Config:     cfg,
		Logger:     logger,
		DB:         database,
		Profiles:   profiles,
		Logs:       logs,
		Progress:   progress,
		Sessions:   store,
		Dispatcher: bot.NewDispatcher(profiles, logs, progress, engine, bot.WithMetrics(bot.NewMetrics(reg)), bot.WithLogger(logger)),
		Registry:   reg,
		Now:        time.Now,
		IsInteractive: func() bool {
			return false
		},
	}
}

// OpenSessionStore returns a Redis-backed store when an address is
// configured, otherwise an in-memory one. The close func is always non-nil.
func OpenSessionStore(ctx context.Context, cfg *config.Config) (session.Store, func() error, error) {
	if cfg.RedisAddr == "" {
		return session.NewMemoryStore(cfg.SessionTTL), func() error { return nil }, nil
	}
	client, err := session.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, err
	}
	return session.NewRedisStore(client, cfg.SessionTTL), client.Close, nil
}
