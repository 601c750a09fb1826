package service

import (
	"context"
	"time"

	"github.com/alexanderramin/healthbot/internal/domain"
)

type ProfileService interface {
	// Get returns the user's profile or ErrProfileRequired.
	Get(ctx context.Context, userID int64) (*domain.Profile, error)
	// Save validates and replaces the user's profile as a whole.
	Save(ctx context.Context, p *domain.Profile) error
}

type LogService interface {
	LogWater(ctx context.Context, userID int64, volumeML int) (*domain.WaterLog, error)
	LogFood(ctx context.Context, userID int64, product string, grams int, kcalPerGram float64) (*domain.FoodLog, error)
	LogWorkout(ctx context.Context, userID int64, kind string, minutes int) (*domain.WorkoutLog, error)
	// ClearHistory deletes every log entry for the user in one transaction
	// and returns the number of rows removed.
	ClearHistory(ctx context.Context, userID int64) (int64, error)
	// SeedWeek inserts random sample logs across the seven days before now
	// and returns the number of entries written.
	SeedWeek(ctx context.Context, userID int64, now time.Time) (int, error)
}

type ProgressService interface {
	Today(ctx context.Context, userID int64, now time.Time) (*DailyProgress, error)
	Week(ctx context.Context, userID int64, now time.Time) (*WeeklyProgress, error)
}

// TemperatureSource resolves the current temperature of a city in Celsius.
type TemperatureSource interface {
	CurrentTemperature(ctx context.Context, city string) (float64, error)
}
