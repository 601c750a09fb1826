package repository

import (
	"context"

	"github.com/alexanderramin/healthbot/internal/domain"
)

type ProfileRepo interface {
	Get(ctx context.Context, userID int64) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}

// LogRepo stores the append-only water, food and workout logs. List methods
// return entries in insertion order.
type LogRepo interface {
	AppendWater(ctx context.Context, l *domain.WaterLog) error
	AppendFood(ctx context.Context, l *domain.FoodLog) error
	AppendWorkout(ctx context.Context, l *domain.WorkoutLog) error

	ListWater(ctx context.Context, userID int64, r domain.LogRange) ([]*domain.WaterLog, error)
	ListFood(ctx context.Context, userID int64, r domain.LogRange) ([]*domain.FoodLog, error)
	ListWorkouts(ctx context.Context, userID int64, r domain.LogRange) ([]*domain.WorkoutLog, error)

	// DeleteAll removes every log entry of every kind for a user and returns
	// the number of rows removed.
	DeleteAll(ctx context.Context, userID int64) (int64, error)
}
