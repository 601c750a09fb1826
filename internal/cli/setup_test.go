package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alexanderramin/healthbot/internal/config"
	"github.com/alexanderramin/healthbot/internal/llm"
	"github.com/alexanderramin/healthbot/internal/session"
	"github.com/alexanderramin/healthbot/internal/testutil"
)

var testNow = time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := &config.Config{
		AppEnv:          "development",
		WeatherEndpoint: "http://127.0.0.1:0",
		WeatherTimeout:  time.Second,
		SessionTTL:      time.Minute,
		LLM:             llm.DefaultConfig(),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := NewApp(cfg, logger, testutil.NewTestDB(t), session.NewMemoryStore(cfg.SessionTTL))
	app.Now = func() time.Time { return testNow }
	return app
}

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetIn(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func saveProfile(t *testing.T, app *App, userID string) {
	t.Helper()
	_, err := execute(t, app, "profile", "--user", userID,
		"--weight", "70", "--height", "175", "--age", "30", "--activity", "45", "--city", "Moscow")
	if err != nil {
		t.Fatalf("saving profile: %v", err)
	}
}
