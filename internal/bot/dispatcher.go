// Package bot turns incoming chat messages into replies. It knows nothing
// about any particular chat transport.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/healthbot/internal/formatter"
	"github.com/alexanderramin/healthbot/internal/service"
	"github.com/alexanderramin/healthbot/internal/session"
	"github.com/alexanderramin/healthbot/internal/wizard"
)

// Message is one incoming text message.
type Message struct {
	UserID int64
	Text   string
}

// Reply is the answer to a Message. ShowMenu asks the transport to attach
// the static menu keyboard.
type Reply struct {
	Text     string
	ShowMenu bool
}

const (
	msgProfileRequired = "Create a profile first: /set_profile"
	msgUnknown         = "I didn't get that. Pick an action from the menu or send /help."
	msgFailure         = "Something went wrong, please try again later."
)

var wizardFor = map[Action]wizard.Name{
	ActionProfile: wizard.Profile,
	ActionWater:   wizard.Water,
	ActionFood:    wizard.Food,
	ActionWorkout: wizard.Workout,
}

// Dispatcher routes messages to commands and wizards.
type Dispatcher struct {
	profiles service.ProfileService
	logs     service.LogService
	progress service.ProgressService
	wizards  *wizard.Engine
	metrics  *Metrics
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithMetrics records Prometheus metrics for every handled message.
func WithMetrics(m *Metrics) Option {
	return func(d *Dispatcher) { d.metrics = m }
}

// WithLogger sets the logger. It defaults to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithClock overrides the time source used for progress windows.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

func NewDispatcher(profiles service.ProfileService, logs service.LogService, progress service.ProgressService, wizards *wizard.Engine, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		profiles: profiles,
		logs:     logs,
		progress: progress,
		wizards:  wizards,
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Handle processes one message. Failures never escape: they are logged and
// turned into a user-visible reply.
func (d *Dispatcher) Handle(ctx context.Context, msg Message) Reply {
	start := time.Now()
	log := d.logger.With("request_id", uuid.NewString(), "user_id", msg.UserID)

	action, isCommand := Route(msg.Text)
	route := string(action)
	if !isCommand {
		route = "text"
	}
	log.InfoContext(ctx, "incoming message", "route", route)

	var (
		reply Reply
		err   error
	)
	if isCommand {
		reply, err = d.command(ctx, msg.UserID, action)
	} else {
		reply, err = d.text(ctx, msg.UserID, msg.Text)
	}

	if err != nil {
		reply = d.failure(ctx, log, route, err)
	}
	d.metrics.observe(route, time.Since(start).Seconds())
	return reply
}

func (d *Dispatcher) failure(ctx context.Context, log *slog.Logger, route string, err error) Reply {
	if errors.Is(err, service.ErrProfileRequired) {
		return Reply{Text: msgProfileRequired}
	}
	d.metrics.failed()
	log.ErrorContext(ctx, "handling message failed", "route", route, "error", err)
	return Reply{Text: msgFailure, ShowMenu: true}
}

func (d *Dispatcher) command(ctx context.Context, userID int64, action Action) (Reply, error) {
	if name, ok := wizardFor[action]; ok {
		prompt, err := d.wizards.Start(ctx, userID, name)
		if err != nil {
			return Reply{}, err
		}
		return Reply{Text: prompt}, nil
	}

	switch action {
	case ActionUnknown:
		return Reply{Text: msgUnknown, ShowMenu: true}, nil

	case ActionStart:
		if _, err := d.profiles.Get(ctx, userID); err != nil {
			return Reply{}, err
		}
		return Reply{Text: "Menu:", ShowMenu: true}, nil

	case ActionHelp:
		return Reply{Text: helpText, ShowMenu: true}, nil

	case ActionCancel:
		active, err := d.wizards.Cancel(ctx, userID)
		if err != nil {
			return Reply{}, err
		}
		if !active {
			return Reply{Text: "Nothing to cancel.", ShowMenu: true}, nil
		}
		return Reply{Text: "Cancelled.", ShowMenu: true}, nil

	case ActionToday:
		p, err := d.progress.Today(ctx, userID, d.now())
		if err != nil {
			return Reply{}, err
		}
		return Reply{Text: formatter.Today(p), ShowMenu: true}, nil

	case ActionWeek:
		w, err := d.progress.Week(ctx, userID, d.now())
		if err != nil {
			return Reply{}, err
		}
		return Reply{Text: formatter.Week(w), ShowMenu: true}, nil

	case ActionReset:
		n, err := d.logs.ClearHistory(ctx, userID)
		if err != nil {
			return Reply{}, err
		}
		return Reply{Text: fmt.Sprintf("🧹 History cleared.\nEntries deleted: %d", n), ShowMenu: true}, nil

	case ActionSeed:
		n, err := d.logs.SeedWeek(ctx, userID, d.now())
		if err != nil {
			return Reply{}, err
		}
		return Reply{Text: fmt.Sprintf("🧪 Test week generated: %d entries", n), ShowMenu: true}, nil
	}
	return Reply{}, fmt.Errorf("unhandled action %q", action)
}

func (d *Dispatcher) text(ctx context.Context, userID int64, text string) (Reply, error) {
	s, err := d.wizards.Active(ctx, userID)
	if errors.Is(err, session.ErrNoSession) {
		return Reply{Text: msgUnknown, ShowMenu: true}, nil
	}
	if err != nil {
		return Reply{}, err
	}

	res, err := d.wizards.Handle(ctx, userID, text)
	if errors.Is(err, session.ErrNoSession) {
		return Reply{Text: msgUnknown, ShowMenu: true}, nil
	}
	if err != nil {
		return Reply{}, err
	}
	if res.Done {
		d.metrics.wizardDone(s.Wizard)
	}
	return Reply{Text: res.Text, ShowMenu: res.Done}, nil
}
