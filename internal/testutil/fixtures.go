package testutil

import (
	"time"

	"github.com/alexanderramin/healthbot/internal/domain"
)

// ProfileOption customises a fixture profile.
type ProfileOption func(*domain.Profile)

func WithWeight(kg float64) ProfileOption {
	return func(p *domain.Profile) { p.WeightKg = kg }
}

func WithAge(years int) ProfileOption {
	return func(p *domain.Profile) { p.Age = years }
}

func WithCity(city string) ProfileOption {
	return func(p *domain.Profile) { p.City = city }
}

func WithCalorieTarget(kcal int) ProfileOption {
	return func(p *domain.Profile) { p.CalorieTarget = &kcal }
}

// NewTestProfile returns a valid profile: 70 kg, 175 cm, 30 y, 45 min/day, Moscow.
func NewTestProfile(userID int64, opts ...ProfileOption) *domain.Profile {
	p := &domain.Profile{
		UserID:      userID,
		WeightKg:    70,
		HeightCm:    175,
		Age:         30,
		ActivityMin: 45,
		City:        "Moscow",
		UpdatedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func NewTestWater(userID int64, ml int, at time.Time) *domain.WaterLog {
	return &domain.WaterLog{UserID: userID, VolumeML: ml, LoggedAt: at}
}

func NewTestFood(userID int64, product string, grams int, kcal float64, at time.Time) *domain.FoodLog {
	return &domain.FoodLog{UserID: userID, Product: product, Grams: grams, Calories: kcal, LoggedAt: at}
}

func NewTestWorkout(userID int64, kind string, minutes int, at time.Time) *domain.WorkoutLog {
	return &domain.WorkoutLog{
		UserID:   userID,
		Kind:     kind,
		Minutes:  minutes,
		Calories: float64(minutes * 10),
		WaterML:  minutes * 10,
		LoggedAt: at,
	}
}
