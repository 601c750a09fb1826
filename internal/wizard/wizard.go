// Package wizard runs the linear prompt sequences that collect a profile or
// a log entry one field at a time. Progress lives in a session.Store.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/healthbot/internal/domain"
	"github.com/alexanderramin/healthbot/internal/service"
	"github.com/alexanderramin/healthbot/internal/session"
)

// Name identifies a wizard.
type Name string

const (
	Profile Name = "profile"
	Water   Name = "water"
	Food    Name = "food"
	Workout Name = "workout"
)

// Field keys stored in the session buffer.
const (
	FieldWeight        = "weight"
	FieldHeight        = "height"
	FieldAge           = "age"
	FieldActivity      = "activity"
	FieldCity          = "city"
	FieldCalorieTarget = "calorie_target"
	FieldVolume        = "volume"
	FieldProduct       = "product"
	FieldKcalPerGram   = "kcal_per_gram"
	FieldGrams         = "grams"
	FieldKind          = "kind"
	FieldMinutes       = "minutes"
)

// Step is one prompt of a wizard. Parse validates the reply and writes the
// normalized value(s) into fields; it must leave fields untouched on error.
type Step struct {
	Key    string
	Prompt string
	Parse  func(ctx context.Context, input string, fields map[string]string) error
}

// Definition is an ordered list of steps plus the action run once every
// step has a value.
type Definition struct {
	Name   Name
	Steps  []Step
	Finish func(ctx context.Context, userID int64, fields map[string]string) (string, error)
}

// CalorieEstimator resolves the calorie density of a food name.
type CalorieEstimator interface {
	CaloriesPerGram(ctx context.Context, food string) (float64, error)
}

// Result is the engine's answer to one message.
type Result struct {
	Text string
	// Done is set when the wizard completed and the buffer was cleared.
	Done bool
	// Retry is set when the same step was prompted again.
	Retry bool
}

// Engine advances wizards for many users.
type Engine struct {
	store     session.Store
	profiles  service.ProfileService
	logs      service.LogService
	estimator CalorieEstimator
	defs      map[Name]*Definition
}

// NewEngine wires the four wizards to their persistence.
func NewEngine(store session.Store, profiles service.ProfileService, logs service.LogService, estimator CalorieEstimator) *Engine {
	e := &Engine{
		store:     store,
		profiles:  profiles,
		logs:      logs,
		estimator: estimator,
	}
	e.defs = map[Name]*Definition{
		Profile: e.profileWizard(),
		Water:   e.waterWizard(),
		Food:    e.foodWizard(),
		Workout: e.workoutWizard(),
	}
	return e
}

// Start discards any in-progress buffer, opens a fresh one and returns the
// first prompt.
func (e *Engine) Start(ctx context.Context, userID int64, name Name) (string, error) {
	def, ok := e.defs[name]
	if !ok {
		return "", fmt.Errorf("unknown wizard %q", name)
	}
	if err := e.store.Delete(ctx, userID); err != nil {
		return "", err
	}
	if err := e.store.Put(ctx, session.New(userID, string(name))); err != nil {
		return "", err
	}
	return def.Steps[0].Prompt, nil
}

// Cancel drops the user's buffer and reports whether one was active.
func (e *Engine) Cancel(ctx context.Context, userID int64) (bool, error) {
	_, err := e.store.Get(ctx, userID)
	if errors.Is(err, session.ErrNoSession) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, e.store.Delete(ctx, userID)
}

// Active returns the user's buffer or session.ErrNoSession.
func (e *Engine) Active(ctx context.Context, userID int64) (*session.Session, error) {
	return e.store.Get(ctx, userID)
}

// Handle feeds one reply to the user's active wizard. It returns
// session.ErrNoSession when no wizard is running.
//
// An invalid or unresolvable reply re-prompts the same step and leaves the
// stored buffer exactly as it was.
func (e *Engine) Handle(ctx context.Context, userID int64, input string) (Result, error) {
	s, err := e.store.Get(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	def, ok := e.defs[Name(s.Wizard)]
	if !ok || s.Step < 0 || s.Step >= len(def.Steps) {
		_ = e.store.Delete(ctx, userID)
		return Result{}, session.ErrNoSession
	}
	step := def.Steps[s.Step]

	next := s.Clone()
	if err := step.Parse(ctx, input, next.Fields); err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			return Result{Text: reasonOf(err) + "\n" + step.Prompt, Retry: true}, nil
		case errors.Is(err, ErrUnrecognized):
			return Result{Text: "I couldn't recognize that, try wording it differently.\n" + step.Prompt, Retry: true}, nil
		default:
			return Result{}, err
		}
	}
	next.Step++

	if next.Step < len(def.Steps) {
		if err := e.store.Put(ctx, next); err != nil {
			return Result{}, err
		}
		return Result{Text: def.Steps[next.Step].Prompt}, nil
	}

	text, err := def.Finish(ctx, userID, next.Fields)
	if err != nil {
		return Result{}, fmt.Errorf("finishing %s wizard: %w", def.Name, err)
	}
	if err := e.store.Delete(ctx, userID); err != nil {
		return Result{}, err
	}
	return Result{Text: text, Done: true}, nil
}

func floatStep(key, prompt string, parse func(string) (float64, error)) Step {
	return Step{Key: key, Prompt: prompt, Parse: func(_ context.Context, in string, f map[string]string) error {
		v, err := parse(in)
		if err != nil {
			return err
		}
		f[key] = strconv.FormatFloat(v, 'f', -1, 64)
		return nil
	}}
}

func intStep(key, prompt string, parse func(string) (int, error)) Step {
	return Step{Key: key, Prompt: prompt, Parse: func(_ context.Context, in string, f map[string]string) error {
		v, err := parse(in)
		if err != nil {
			return err
		}
		f[key] = strconv.Itoa(v)
		return nil
	}}
}

func textStep(key, prompt string) Step {
	return Step{Key: key, Prompt: prompt, Parse: func(_ context.Context, in string, f map[string]string) error {
		v, err := ParseText(in)
		if err != nil {
			return err
		}
		f[key] = v
		return nil
	}}
}

func (e *Engine) profileWizard() *Definition {
	return &Definition{
		Name: Profile,
		Steps: []Step{
			floatStep(FieldWeight, "Enter your weight (kg):", ParseWeight),
			floatStep(FieldHeight, "Enter your height (cm):", ParseHeight),
			intStep(FieldAge, "Enter your age:", ParseAge),
			intStep(FieldActivity, "How many minutes of activity do you get per day?", ParseNonNegativeInt),
			textStep(FieldCity, "Which city do you live in?"),
			{
				Key:    FieldCalorieTarget,
				Prompt: "Daily calorie target (kcal), or 'skip' to calculate it:",
				Parse: func(_ context.Context, in string, f map[string]string) error {
					v, err := ParseOptionalTarget(in)
					if err != nil {
						return err
					}
					if v == nil {
						f[FieldCalorieTarget] = ""
					} else {
						f[FieldCalorieTarget] = strconv.Itoa(*v)
					}
					return nil
				},
			},
		},
		Finish: func(ctx context.Context, userID int64, f map[string]string) (string, error) {
			p := &domain.Profile{
				UserID:      userID,
				WeightKg:    floatField(f, FieldWeight),
				HeightCm:    floatField(f, FieldHeight),
				Age:         intField(f, FieldAge),
				ActivityMin: intField(f, FieldActivity),
				City:        f[FieldCity],
			}
			if f[FieldCalorieTarget] != "" {
				t := intField(f, FieldCalorieTarget)
				p.CalorieTarget = &t
			}
			if err := e.profiles.Save(ctx, p); err != nil {
				return "", err
			}
			return "Profile saved ✅", nil
		},
	}
}

func (e *Engine) waterWizard() *Definition {
	return &Definition{
		Name:  Water,
		Steps: []Step{intStep(FieldVolume, "How much water did you drink (ml)?", ParsePositiveInt)},
		Finish: func(ctx context.Context, userID int64, f map[string]string) (string, error) {
			l, err := e.logs.LogWater(ctx, userID, intField(f, FieldVolume))
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("💧 Logged %d ml", l.VolumeML), nil
		},
	}
}

func (e *Engine) foodWizard() *Definition {
	product := Step{
		Key:    FieldProduct,
		Prompt: "What did you eat?",
		Parse: func(ctx context.Context, in string, f map[string]string) error {
			name, err := ParseText(in)
			if err != nil {
				return err
			}
			if e.estimator == nil {
				return fmt.Errorf("%w: no calorie estimator", ErrUnrecognized)
			}
			kcal, err := e.estimator.CaloriesPerGram(ctx, name)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrUnrecognized, err)
			}
			f[FieldProduct] = name
			f[FieldKcalPerGram] = strconv.FormatFloat(kcal, 'f', -1, 64)
			return nil
		},
	}
	return &Definition{
		Name:  Food,
		Steps: []Step{product, intStep(FieldGrams, "How many grams?", ParsePositiveInt)},
		Finish: func(ctx context.Context, userID int64, f map[string]string) (string, error) {
			l, err := e.logs.LogFood(ctx, userID, f[FieldProduct], intField(f, FieldGrams), floatField(f, FieldKcalPerGram))
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("🍎 Logged %s, %d g: %.0f kcal", l.Product, l.Grams, l.Calories), nil
		},
	}
}

func (e *Engine) workoutWizard() *Definition {
	return &Definition{
		Name: Workout,
		Steps: []Step{
			textStep(FieldKind, "What kind of workout?"),
			intStep(FieldMinutes, "How many minutes?", ParsePositiveInt),
		},
		Finish: func(ctx context.Context, userID int64, f map[string]string) (string, error) {
			l, err := e.logs.LogWorkout(ctx, userID, f[FieldKind], intField(f, FieldMinutes))
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("🏃 Workout logged: %s, %d min, %.0f kcal burned. Drink an extra %d ml of water.",
				l.Kind, l.Minutes, l.Calories, l.WaterML), nil
		},
	}
}

// Values were normalized by the step parsers, so conversion cannot fail.
func floatField(f map[string]string, key string) float64 {
	v, _ := strconv.ParseFloat(f[key], 64)
	return v
}

func intField(f map[string]string, key string) int {
	v, _ := strconv.Atoi(f[key])
	return v
}
