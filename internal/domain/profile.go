package domain

import (
	"errors"
	"strings"
	"time"
)

// Upper bounds for body measurements.
const (
	MaxWeightKg = 1000
	MaxHeightCm = 300
	MaxAge      = 150
)

// Profile holds the physiological and context inputs a user's goals derive from.
// One profile exists per user; it is replaced wholesale, never patched.
type Profile struct {
	UserID        int64
	WeightKg      float64
	HeightCm      float64
	Age           int
	ActivityMin   int
	City          string
	CalorieTarget *int // nil: computed from the other fields
	UpdatedAt     time.Time
}

// HasCalorieTarget reports whether the user set an explicit calorie override.
func (p *Profile) HasCalorieTarget() bool {
	return p.CalorieTarget != nil && *p.CalorieTarget > 0
}

// Validate checks the invariants enforced before a profile is stored.
func (p *Profile) Validate() error {
	if p.UserID == 0 {
		return errors.New("user id is required")
	}
	if p.WeightKg <= 0 {
		return errors.New("weight must be positive")
	}
	if p.WeightKg >= MaxWeightKg {
		return errors.New("weight is out of range")
	}
	if p.HeightCm <= 0 {
		return errors.New("height must be positive")
	}
	if p.HeightCm >= MaxHeightCm {
		return errors.New("height is out of range")
	}
	if p.Age <= 0 {
		return errors.New("age must be positive")
	}
	if p.Age >= MaxAge {
		return errors.New("age is out of range")
	}
	if p.ActivityMin < 0 {
		return errors.New("activity minutes cannot be negative")
	}
	if strings.TrimSpace(p.City) == "" {
		return errors.New("city is required")
	}
	if p.CalorieTarget != nil && *p.CalorieTarget < 0 {
		return errors.New("calorie target cannot be negative")
	}
	return nil
}
