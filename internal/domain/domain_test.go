package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() *Profile {
	return &Profile{UserID: 42, WeightKg: 70, HeightCm: 175, Age: 30, ActivityMin: 45, City: "Moscow"}
}

func TestProfileValidate_Valid(t *testing.T) {
	assert.NoError(t, validProfile().Validate())
}

func TestProfileValidate_Rejects(t *testing.T) {
	cases := map[string]func(p *Profile){
		"missing user": func(p *Profile) { p.UserID = 0 },
		"zero weight":  func(p *Profile) { p.WeightKg = 0 },
		"zero height":  func(p *Profile) { p.HeightCm = 0 },
		"zero age":     func(p *Profile) { p.Age = 0 },
		"huge weight":  func(p *Profile) { p.WeightKg = 1e300 },
		"huge height":  func(p *Profile) { p.HeightCm = MaxHeightCm },
		"huge age":     func(p *Profile) { p.Age = MaxAge },
		"negative act": func(p *Profile) { p.ActivityMin = -1 },
		"blank city":   func(p *Profile) { p.City = "  " },
		"negative target": func(p *Profile) {
			v := -5
			p.CalorieTarget = &v
		},
	}
	for name, mutate := range cases {
		p := validProfile()
		mutate(p)
		assert.Error(t, p.Validate(), name)
	}
}

func TestProfileHasCalorieTarget(t *testing.T) {
	p := validProfile()
	assert.False(t, p.HasCalorieTarget())

	zero := 0
	p.CalorieTarget = &zero
	assert.False(t, p.HasCalorieTarget(), "zero target means computed")

	target := 2000
	p.CalorieTarget = &target
	assert.True(t, p.HasCalorieTarget())
}

func TestLogValidate(t *testing.T) {
	require.NoError(t, (&WaterLog{UserID: 1, VolumeML: 250}).Validate())
	assert.Error(t, (&WaterLog{UserID: 1}).Validate())

	require.NoError(t, (&FoodLog{UserID: 1, Product: "apple", Grams: 100, Calories: 52}).Validate())
	assert.Error(t, (&FoodLog{UserID: 1, Product: "", Grams: 100}).Validate())
	assert.Error(t, (&FoodLog{UserID: 1, Product: "apple", Grams: 0}).Validate())

	require.NoError(t, (&WorkoutLog{UserID: 1, Kind: "run", Minutes: 30}).Validate())
	assert.Error(t, (&WorkoutLog{UserID: 1, Kind: "run"}).Validate())
}

func TestLogRange_Contains(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	r := Between(from, to)

	assert.True(t, r.Contains(from), "lower bound is inclusive")
	assert.True(t, r.Contains(to), "upper bound is inclusive")
	assert.False(t, r.Contains(from.Add(-time.Second)))
	assert.False(t, r.Contains(to.Add(time.Second)))
	assert.True(t, LogRange{}.Contains(from), "empty range is unbounded")
	assert.True(t, Since(from).Contains(to.Add(time.Hour)))
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	in := time.Date(2025, 6, 15, 1, 30, 0, 0, loc) // 2025-06-14 22:30 UTC
	assert.Equal(t, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), StartOfDay(in))
}
