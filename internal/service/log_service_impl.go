package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/alexanderramin/healthbot/internal/db"
	"github.com/alexanderramin/healthbot/internal/domain"
	"github.com/alexanderramin/healthbot/internal/goals"
	"github.com/alexanderramin/healthbot/internal/repository"
)

type logService struct {
	logs     repository.LogRepo
	uow      db.UnitOfWork
	observer UseCaseObserver

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewLogService(logs repository.LogRepo, uow db.UnitOfWork, observers ...UseCaseObserver) LogService {
	return &logService{
		logs:     logs,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

func (s *logService) LogWater(ctx context.Context, userID int64, volumeML int) (_ *domain.WaterLog, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "log.water", userID, start, map[string]any{"volume_ml": volumeML}, err)
	}()

	l := &domain.WaterLog{UserID: userID, VolumeML: volumeML, LoggedAt: time.Now().UTC()}
	if vErr := l.Validate(); vErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, vErr)
	}
	if err := s.logs.AppendWater(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *logService) LogFood(ctx context.Context, userID int64, product string, grams int, kcalPerGram float64) (_ *domain.FoodLog, err error) {
	start := time.Now()
	defer func() { observe(ctx, s.observer, "log.food", userID, start, map[string]any{"grams": grams}, err) }()

	l := &domain.FoodLog{
		UserID:   userID,
		LoggedAt: time.Now().UTC(),
		Product:  strings.TrimSpace(product),
		Grams:    grams,
		Calories: float64(grams) * kcalPerGram,
	}
	if vErr := l.Validate(); vErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, vErr)
	}
	if err := s.logs.AppendFood(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *logService) LogWorkout(ctx context.Context, userID int64, kind string, minutes int) (_ *domain.WorkoutLog, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "log.workout", userID, start, map[string]any{"minutes": minutes}, err)
	}()

	l := &domain.WorkoutLog{
		UserID:   userID,
		LoggedAt: time.Now().UTC(),
		Kind:     strings.TrimSpace(kind),
		Minutes:  minutes,
		Calories: goals.WorkoutCalories(minutes),
		WaterML:  goals.WorkoutWater(minutes),
	}
	if vErr := l.Validate(); vErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, vErr)
	}
	if err := s.logs.AppendWorkout(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *logService) ClearHistory(ctx context.Context, userID int64) (deleted int64, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "log.clear_history", userID, start, map[string]any{"deleted": deleted}, err)
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		n, err := repository.NewSQLiteLogRepo(tx).DeleteAll(ctx, userID)
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	return deleted, nil
}

type sampleFood struct {
	product     string
	kcalPerGram float64
}

var (
	sampleFoods = []sampleFood{
		{"oatmeal", 0.68},
		{"chicken breast", 1.65},
		{"buckwheat", 0.92},
		{"apple", 0.52},
		{"greek salad", 1.1},
		{"cottage cheese", 1.21},
		{"salmon", 2.08},
		{"banana", 0.89},
	}
	sampleWorkouts = []string{"running", "cycling", "swimming", "strength", "yoga"}
)

func (s *logService) SeedWeek(ctx context.Context, userID int64, now time.Time) (written int, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "log.seed_week", userID, start, map[string]any{"written": written}, err)
	}()

	water, food, workouts := s.sampleWeek(userID, now.UTC())

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteLogRepo(tx)
		for _, l := range water {
			if err := repo.AppendWater(ctx, l); err != nil {
				return err
			}
		}
		for _, l := range food {
			if err := repo.AppendFood(ctx, l); err != nil {
				return err
			}
		}
		for _, l := range workouts {
			if err := repo.AppendWorkout(ctx, l); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("seeding week: %w", err)
	}
	return len(water) + len(food) + len(workouts), nil
}

// sampleWeek builds random logs for each of the seven days ending at now.
// Every timestamp lies in (now-7d, now].
func (s *logService) sampleWeek(userID int64, now time.Time) ([]*domain.WaterLog, []*domain.FoodLog, []*domain.WorkoutLog) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	r := s.rng

	at := func(day int) time.Time {
		offset := time.Duration(r.IntN(8*60)) * time.Minute
		return now.Add(-time.Duration(day)*24*time.Hour - offset).Truncate(time.Millisecond)
	}

	var (
		water    []*domain.WaterLog
		food     []*domain.FoodLog
		workouts []*domain.WorkoutLog
	)
	for day := 0; day < 7; day++ {
		for i := 0; i < 3+r.IntN(4); i++ {
			water = append(water, &domain.WaterLog{
				UserID:   userID,
				LoggedAt: at(day),
				VolumeML: 150 + 50*r.IntN(8),
			})
		}
		for i := 0; i < 2+r.IntN(3); i++ {
			f := sampleFoods[r.IntN(len(sampleFoods))]
			grams := 100 + 10*r.IntN(31)
			food = append(food, &domain.FoodLog{
				UserID:   userID,
				LoggedAt: at(day),
				Product:  f.product,
				Grams:    grams,
				Calories: float64(grams) * f.kcalPerGram,
			})
		}
		if r.IntN(2) == 0 {
			minutes := 20 + 5*r.IntN(9)
			workouts = append(workouts, &domain.WorkoutLog{
				UserID:   userID,
				LoggedAt: at(day),
				Kind:     sampleWorkouts[r.IntN(len(sampleWorkouts))],
				Minutes:  minutes,
				Calories: goals.WorkoutCalories(minutes),
				WaterML:  goals.WorkoutWater(minutes),
			})
		}
	}
	return water, food, workouts
}
