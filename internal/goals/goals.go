// Package goals derives daily water and calorie targets from a profile.
// Everything here is pure: no I/O, no clock.
package goals

import "github.com/alexanderramin/healthbot/internal/domain"

const (
	// HotWeatherThresholdC is the temperature above which the water bonus applies.
	HotWeatherThresholdC = 25.0
	// HotWeatherBonusML is added to the water goal on hot days.
	HotWeatherBonusML = 700

	waterPerKgML          = 30
	waterPerActivityBlock = 500
	activityBlockMin      = 30
	waterPerWorkoutMinML  = 10
	kcalPerWorkoutMin     = 10
	kcalPerActivityMin    = 5
)

// CalorieGoal returns the explicit override when set, otherwise
// 10*weight + 6.25*height - 5*age + 5*activity truncated to an integer.
func CalorieGoal(p *domain.Profile) int {
	if p.HasCalorieTarget() {
		return *p.CalorieTarget
	}
	base := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	return int(base + float64(p.ActivityMin*kcalPerActivityMin))
}

// WaterGoal returns the daily water target in ml and the reason tag.
// A nil temperature means the reading is unknown and no bonus applies.
func WaterGoal(p *domain.Profile, tempC *float64, workoutMin int) (int, domain.WaterMode) {
	goal := int(p.WeightKg*waterPerKgML + float64((p.ActivityMin/activityBlockMin)*waterPerActivityBlock))
	goal += workoutMin * waterPerWorkoutMinML

	if tempC != nil && *tempC > HotWeatherThresholdC {
		return goal + HotWeatherBonusML, domain.WaterElevated
	}
	return goal, domain.WaterStandard
}

// WorkoutCalories estimates calories burned by a workout of the given length.
func WorkoutCalories(minutes int) float64 {
	return float64(minutes * kcalPerWorkoutMin)
}

// WorkoutWater is the extra water in ml recommended for a workout.
func WorkoutWater(minutes int) int {
	return minutes * waterPerWorkoutMinML
}

// Remaining returns goal-done, floored at zero.
func Remaining(goal, done float64) float64 {
	if done >= goal {
		return 0
	}
	return goal - done
}
