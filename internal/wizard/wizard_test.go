package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/healthbot/internal/domain"
	"github.com/alexanderramin/healthbot/internal/service"
	"github.com/alexanderramin/healthbot/internal/session"
)

type fakeProfiles struct {
	saved []*domain.Profile
}

func (f *fakeProfiles) Get(_ context.Context, userID int64) (*domain.Profile, error) {
	for i := len(f.saved) - 1; i >= 0; i-- {
		if f.saved[i].UserID == userID {
			return f.saved[i], nil
		}
	}
	return nil, service.ErrProfileRequired
}

func (f *fakeProfiles) Save(_ context.Context, p *domain.Profile) error {
	f.saved = append(f.saved, p)
	return nil
}

type fakeLogs struct {
	water    []int
	food     []*domain.FoodLog
	workouts []*domain.WorkoutLog
	err      error
}

func (f *fakeLogs) LogWater(_ context.Context, userID int64, ml int) (*domain.WaterLog, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.water = append(f.water, ml)
	return &domain.WaterLog{UserID: userID, VolumeML: ml}, nil
}

func (f *fakeLogs) LogFood(_ context.Context, userID int64, product string, grams int, kcal float64) (*domain.FoodLog, error) {
	l := &domain.FoodLog{UserID: userID, Product: product, Grams: grams, Calories: float64(grams) * kcal}
	f.food = append(f.food, l)
	return l, nil
}

func (f *fakeLogs) LogWorkout(_ context.Context, userID int64, kind string, minutes int) (*domain.WorkoutLog, error) {
	l := &domain.WorkoutLog{UserID: userID, Kind: kind, Minutes: minutes, Calories: float64(minutes * 10), WaterML: minutes * 10}
	f.workouts = append(f.workouts, l)
	return l, nil
}

func (f *fakeLogs) ClearHistory(context.Context, int64) (int64, error) { return 0, nil }

func (f *fakeLogs) SeedWeek(context.Context, int64, time.Time) (int, error) { return 0, nil }

type fakeEstimator map[string]float64

func (f fakeEstimator) CaloriesPerGram(_ context.Context, food string) (float64, error) {
	if v, ok := f[food]; ok {
		return v, nil
	}
	return 0, errors.New("unresolved")
}

type fixture struct {
	engine   *Engine
	store    *session.MemoryStore
	profiles *fakeProfiles
	logs     *fakeLogs
}

func newFixture() *fixture {
	f := &fixture{
		store:    session.NewMemoryStore(time.Minute),
		profiles: &fakeProfiles{},
		logs:     &fakeLogs{},
	}
	f.engine = NewEngine(f.store, f.profiles, f.logs, fakeEstimator{"apple": 0.52})
	return f
}

func (f *fixture) say(t *testing.T, userID int64, text string) Result {
	t.Helper()
	res, err := f.engine.Handle(context.Background(), userID, text)
	require.NoError(t, err)
	return res
}

func TestProfileWizard_FullRun(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	prompt, err := f.engine.Start(ctx, 1, Profile)
	require.NoError(t, err)
	assert.Equal(t, "Enter your weight (kg):", prompt)

	assert.Equal(t, "Enter your height (cm):", f.say(t, 1, "70,5").Text)
	f.say(t, 1, "175")
	f.say(t, 1, "30")
	f.say(t, 1, "0")
	f.say(t, 1, "  Moscow ")
	res := f.say(t, 1, "skip")

	assert.True(t, res.Done)
	require.Len(t, f.profiles.saved, 1)
	p := f.profiles.saved[0]
	assert.Equal(t, int64(1), p.UserID)
	assert.Equal(t, 70.5, p.WeightKg)
	assert.Equal(t, 175.0, p.HeightCm)
	assert.Equal(t, 30, p.Age)
	assert.Equal(t, 0, p.ActivityMin)
	assert.Equal(t, "Moscow", p.City)
	assert.Nil(t, p.CalorieTarget)

	_, err = f.engine.Active(ctx, 1)
	assert.ErrorIs(t, err, session.ErrNoSession, "buffer cleared on completion")
}

func TestProfileWizard_CalorieTarget(t *testing.T) {
	f := newFixture()
	_, err := f.engine.Start(context.Background(), 1, Profile)
	require.NoError(t, err)
	for _, in := range []string{"80", "180", "40", "60", "Kazan", "2100"} {
		f.say(t, 1, in)
	}
	require.Len(t, f.profiles.saved, 1)
	require.NotNil(t, f.profiles.saved[0].CalorieTarget)
	assert.Equal(t, 2100, *f.profiles.saved[0].CalorieTarget)
}

func TestProfileWizard_RestartDiscardsFirstAttempt(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.engine.Start(ctx, 1, Profile)
	require.NoError(t, err)
	f.say(t, 1, "99")
	f.say(t, 1, "199")

	_, err = f.engine.Start(ctx, 1, Profile)
	require.NoError(t, err)
	s, err := f.engine.Active(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Step)
	assert.Empty(t, s.Fields)

	for _, in := range []string{"65", "170", "25", "30", "Sochi", "-"} {
		f.say(t, 1, in)
	}
	require.Len(t, f.profiles.saved, 1)
	assert.Equal(t, 65.0, f.profiles.saved[0].WeightKg)
	assert.Equal(t, 170.0, f.profiles.saved[0].HeightCm)
}

func TestProfileWizard_InvalidNumberKeepsStep(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.engine.Start(ctx, 1, Profile)
	require.NoError(t, err)

	res := f.say(t, 1, "heavy")
	assert.True(t, res.Retry)
	assert.Contains(t, res.Text, "Enter your weight (kg):")

	res = f.say(t, 1, "-70")
	assert.True(t, res.Retry)
	assert.Contains(t, res.Text, "greater than zero")

	res = f.say(t, 1, "1e300")
	assert.True(t, res.Retry)
	assert.Contains(t, res.Text, "Enter your weight (kg):")

	s, err := f.engine.Active(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Step)
}

func TestFoodWizard_NonNumericGramsLeavesBufferUnchanged(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.engine.Start(ctx, 1, Food)
	require.NoError(t, err)

	assert.Equal(t, "How many grams?", f.say(t, 1, "apple").Text)
	before, err := f.engine.Active(ctx, 1)
	require.NoError(t, err)

	res := f.say(t, 1, "a handful")
	assert.True(t, res.Retry)
	assert.Contains(t, res.Text, "How many grams?")

	after, err := f.engine.Active(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, before.Step, after.Step)
	assert.Equal(t, before.Fields, after.Fields)

	done := f.say(t, 1, "200")
	assert.True(t, done.Done)
	require.Len(t, f.logs.food, 1)
	assert.InDelta(t, 104.0, f.logs.food[0].Calories, 1e-9)
	assert.Contains(t, done.Text, "104 kcal")
}

func TestFoodWizard_UnknownProductRetries(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.engine.Start(ctx, 1, Food)
	require.NoError(t, err)

	res := f.say(t, 1, "qwerty")
	assert.True(t, res.Retry)
	assert.Contains(t, res.Text, "try wording it differently")

	s, err := f.engine.Active(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Step)
	assert.Empty(t, s.Fields)
}

func TestFoodWizard_NoEstimator(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	e := NewEngine(store, &fakeProfiles{}, &fakeLogs{}, nil)
	_, err := e.Start(context.Background(), 1, Food)
	require.NoError(t, err)

	res, err := e.Handle(context.Background(), 1, "apple")
	require.NoError(t, err)
	assert.True(t, res.Retry)
}

func TestWaterWizard(t *testing.T) {
	f := newFixture()
	_, err := f.engine.Start(context.Background(), 1, Water)
	require.NoError(t, err)

	res := f.say(t, 1, "250")
	assert.True(t, res.Done)
	assert.Equal(t, "💧 Logged 250 ml", res.Text)
	assert.Equal(t, []int{250}, f.logs.water)
}

func TestWaterWizard_StorageFailureKeepsBuffer(t *testing.T) {
	f := newFixture()
	f.logs.err = errors.New("db locked")
	ctx := context.Background()
	_, err := f.engine.Start(ctx, 1, Water)
	require.NoError(t, err)

	_, err = f.engine.Handle(ctx, 1, "250")
	require.Error(t, err)

	s, err := f.engine.Active(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Step)
}

func TestWorkoutWizard(t *testing.T) {
	f := newFixture()
	_, err := f.engine.Start(context.Background(), 1, Workout)
	require.NoError(t, err)

	f.say(t, 1, "cycling")
	res := f.say(t, 1, "40")
	assert.True(t, res.Done)
	assert.Contains(t, res.Text, "400 kcal")
	assert.Contains(t, res.Text, "400 ml")
}

func TestHandle_NoSession(t *testing.T) {
	f := newFixture()
	_, err := f.engine.Handle(context.Background(), 1, "hello")
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestCancel(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	active, err := f.engine.Cancel(ctx, 1)
	require.NoError(t, err)
	assert.False(t, active)

	_, err = f.engine.Start(ctx, 1, Water)
	require.NoError(t, err)
	active, err = f.engine.Cancel(ctx, 1)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestStart_UnknownWizard(t *testing.T) {
	_, err := newFixture().engine.Start(context.Background(), 1, "sleep")
	assert.Error(t, err)
}

func TestUsersAreIndependent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.engine.Start(ctx, 1, Water)
	require.NoError(t, err)
	_, err = f.engine.Start(ctx, 2, Workout)
	require.NoError(t, err)

	assert.True(t, f.say(t, 1, "300").Done)
	assert.Equal(t, "How many minutes?", f.say(t, 2, "yoga").Text)
}
