package service

import (
	"time"

	"github.com/alexanderramin/healthbot/internal/domain"
)

// WeekWindow is the trailing window covered by a weekly summary.
const WeekWindow = 7 * 24 * time.Hour

// Totals sums logged activity over a window.
type Totals struct {
	WaterML        int
	FoodKcal       float64
	BurnedKcal     float64
	WorkoutMin     int
	WorkoutWaterML int
	Entries        int
}

// Balance is calories consumed minus calories burned.
func (t Totals) Balance() float64 {
	return t.FoodKcal - t.BurnedKcal
}

func (t *Totals) addWater(l *domain.WaterLog) {
	t.WaterML += l.VolumeML
	t.Entries++
}

func (t *Totals) addFood(l *domain.FoodLog) {
	t.FoodKcal += l.Calories
	t.Entries++
}

func (t *Totals) addWorkout(l *domain.WorkoutLog) {
	t.BurnedKcal += l.Calories
	t.WorkoutMin += l.Minutes
	t.WorkoutWaterML += l.WaterML
	t.Entries++
}

// DailyProgress is today's state against the computed goals.
type DailyProgress struct {
	Profile *domain.Profile
	From    time.Time
	To      time.Time

	// TemperatureC is nil when the city's weather could not be resolved.
	TemperatureC *float64
	WaterGoalML  int
	WaterMode    domain.WaterMode
	CalorieGoal  int

	Totals            Totals
	WaterRemainingML  float64
	CaloriesRemaining float64
}

// Balance is calories consumed minus calories burned today.
func (d *DailyProgress) Balance() float64 {
	return d.Totals.Balance()
}

// DayTotals holds the totals of one UTC calendar day.
type DayTotals struct {
	Date time.Time
	Totals
}

// WeeklyProgress aggregates the trailing seven days.
type WeeklyProgress struct {
	Profile *domain.Profile
	From    time.Time
	To      time.Time
	Totals  Totals
	// Days holds only days with at least one entry, newest first.
	Days []DayTotals
}
