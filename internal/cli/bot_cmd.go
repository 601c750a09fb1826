package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/healthbot/internal/session"
	"github.com/alexanderramin/healthbot/internal/telegram"
)

const sweepInterval = 5 * time.Minute

func newBotCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Config.ValidateBot(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			api, err := telegram.NewAPI(app.Config.BotToken, app.Config.TelegramDebug)
			if err != nil {
				return err
			}

			if app.Config.MetricsAddr != "" {
				go serveMetrics(ctx, app)
			}
			if mem, ok := app.Sessions.(*session.MemoryStore); ok {
				go sweepSessions(ctx, app, mem)
			}

			app.Logger.Info("bot started", "workers", app.Config.TelegramWorkers)
			b := telegram.New(api, app.Dispatcher, app.Config.TelegramWorkers, app.Logger)
			err = b.Run(ctx)
			app.Logger.Info("bot stopped")
			return err
		},
	}
}

func metricsHandler(app *App) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(app.Registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := app.DB.PingContext(r.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

func serveMetrics(ctx context.Context, app *App) {
	srv := &http.Server{
		Addr:              app.Config.MetricsAddr,
		Handler:           metricsHandler(app),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	app.Logger.Info("metrics server listening", "addr", app.Config.MetricsAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.Logger.Error("metrics server error", "error", err)
	}
}

func sweepSessions(ctx context.Context, app *App, store *session.MemoryStore) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Sweep(); n > 0 {
				app.Logger.Debug("expired sessions removed", "count", n)
			}
		}
	}
}
