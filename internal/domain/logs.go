package domain

import (
	"errors"
	"strings"
	"time"
)

// WaterLog records one drink.
type WaterLog struct {
	ID       int64
	UserID   int64
	LoggedAt time.Time
	VolumeML int
}

// FoodLog records one meal. Calories are computed at logging time from the
// estimated calorie density and never recomputed.
type FoodLog struct {
	ID       int64
	UserID   int64
	LoggedAt time.Time
	Product  string
	Grams    int
	Calories float64
}

// WorkoutLog records one training session.
type WorkoutLog struct {
	ID       int64
	UserID   int64
	LoggedAt time.Time
	Kind     string
	Minutes  int
	Calories float64
	WaterML  int
}

func (w *WaterLog) Validate() error {
	if w.UserID == 0 {
		return errors.New("user id is required")
	}
	if w.VolumeML <= 0 {
		return errors.New("volume must be positive")
	}
	return nil
}

func (f *FoodLog) Validate() error {
	if f.UserID == 0 {
		return errors.New("user id is required")
	}
	if strings.TrimSpace(f.Product) == "" {
		return errors.New("product is required")
	}
	if f.Grams <= 0 {
		return errors.New("grams must be positive")
	}
	if f.Calories < 0 {
		return errors.New("calories cannot be negative")
	}
	return nil
}

func (w *WorkoutLog) Validate() error {
	if w.UserID == 0 {
		return errors.New("user id is required")
	}
	if strings.TrimSpace(w.Kind) == "" {
		return errors.New("workout type is required")
	}
	if w.Minutes <= 0 {
		return errors.New("minutes must be positive")
	}
	return nil
}

// LogRange bounds a log query. Zero values leave that side open; both bounds
// are inclusive.
type LogRange struct {
	From time.Time
	To   time.Time
}

// Since returns a range from t (inclusive) with an open upper bound.
func Since(t time.Time) LogRange {
	return LogRange{From: t}
}

// Between returns a range covering [from, to].
func Between(from, to time.Time) LogRange {
	return LogRange{From: from, To: to}
}

// Contains reports whether t falls inside the range.
func (r LogRange) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && t.After(r.To) {
		return false
	}
	return true
}

// StartOfDay returns UTC midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
