package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/healthbot/internal/domain"
	"github.com/alexanderramin/healthbot/internal/goals"
	"github.com/alexanderramin/healthbot/internal/repository"
)

type progressService struct {
	profiles repository.ProfileRepo
	logs     repository.LogRepo
	weather  TemperatureSource
	observer UseCaseObserver
}

// NewProgressService builds the summary use cases. weather may be nil, in
// which case the temperature is always reported unknown.
func NewProgressService(profiles repository.ProfileRepo, logs repository.LogRepo, weather TemperatureSource, observers ...UseCaseObserver) ProgressService {
	return &progressService{
		profiles: profiles,
		logs:     logs,
		weather:  weather,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *progressService) Today(ctx context.Context, userID int64, now time.Time) (_ *DailyProgress, err error) {
	start := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "progress.today", userID, start, fields, err) }()

	p, err := NewProfileService(s.profiles).Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	now = now.UTC()
	window := domain.Between(domain.StartOfDay(now), now)
	totals, err := s.collect(ctx, userID, window, nil)
	if err != nil {
		return nil, err
	}

	temp := s.temperature(ctx, p.City)
	if temp == nil {
		fields["temperature"] = "unknown"
	}

	waterGoal, mode := goals.WaterGoal(p, temp, totals.WorkoutMin)
	calorieGoal := goals.CalorieGoal(p)

	return &DailyProgress{
		Profile:           p,
		From:              window.From,
		To:                window.To,
		TemperatureC:      temp,
		WaterGoalML:       waterGoal,
		WaterMode:         mode,
		CalorieGoal:       calorieGoal,
		Totals:            totals,
		WaterRemainingML:  goals.Remaining(float64(waterGoal), float64(totals.WaterML)),
		CaloriesRemaining: goals.Remaining(float64(calorieGoal), totals.FoodKcal),
	}, nil
}

func (s *progressService) Week(ctx context.Context, userID int64, now time.Time) (_ *WeeklyProgress, err error) {
	start := time.Now()
	defer func() { observe(ctx, s.observer, "progress.week", userID, start, nil, err) }()

	p, err := NewProfileService(s.profiles).Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	now = now.UTC()
	window := domain.Between(now.Add(-WeekWindow), now)
	byDay := map[time.Time]*Totals{}
	totals, err := s.collect(ctx, userID, window, byDay)
	if err != nil {
		return nil, err
	}

	days := make([]DayTotals, 0, len(byDay))
	for d, t := range byDay {
		days = append(days, DayTotals{Date: d, Totals: *t})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.After(days[j].Date) })

	return &WeeklyProgress{
		Profile: p,
		From:    window.From,
		To:      window.To,
		Totals:  totals,
		Days:    days,
	}, nil
}

// collect sums every log kind in window. When byDay is non-nil it also
// buckets entries by UTC calendar day.
func (s *progressService) collect(ctx context.Context, userID int64, window domain.LogRange, byDay map[time.Time]*Totals) (Totals, error) {
	var total Totals
	bucket := func(t time.Time) *Totals {
		if byDay == nil {
			return nil
		}
		d := domain.StartOfDay(t)
		if byDay[d] == nil {
			byDay[d] = &Totals{}
		}
		return byDay[d]
	}

	water, err := s.logs.ListWater(ctx, userID, window)
	if err != nil {
		return Totals{}, fmt.Errorf("listing water: %w", err)
	}
	for _, l := range water {
		total.addWater(l)
		if b := bucket(l.LoggedAt); b != nil {
			b.addWater(l)
		}
	}

	food, err := s.logs.ListFood(ctx, userID, window)
	if err != nil {
		return Totals{}, fmt.Errorf("listing food: %w", err)
	}
	for _, l := range food {
		total.addFood(l)
		if b := bucket(l.LoggedAt); b != nil {
			b.addFood(l)
		}
	}

	workouts, err := s.logs.ListWorkouts(ctx, userID, window)
	if err != nil {
		return Totals{}, fmt.Errorf("listing workouts: %w", err)
	}
	for _, l := range workouts {
		total.addWorkout(l)
		if b := bucket(l.LoggedAt); b != nil {
			b.addWorkout(l)
		}
	}
	return total, nil
}

// temperature is best-effort: any lookup failure yields nil.
func (s *progressService) temperature(ctx context.Context, city string) *float64 {
	if s.weather == nil {
		return nil
	}
	t, err := s.weather.CurrentTemperature(ctx, city)
	if err != nil {
		return nil
	}
	return &t
}
