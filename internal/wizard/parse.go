package wizard

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/healthbot/internal/domain"
)

// ErrInvalidInput marks a reply that does not fit the current step.
var ErrInvalidInput = errors.New("invalid input")

// ErrUnrecognized marks a reply that was well-formed but could not be
// resolved upstream, such as an unknown food.
var ErrUnrecognized = errors.New("input not recognized")

// inputError carries a user-facing reason for ErrInvalidInput.
type inputError struct {
	reason string
}

func (e *inputError) Error() string { return "invalid input: " + e.reason }
func (e *inputError) Unwrap() error { return ErrInvalidInput }

func invalid(reason string) error {
	return &inputError{reason: reason}
}

// reasonOf returns the user-facing reason of an input error.
func reasonOf(err error) string {
	var ie *inputError
	if errors.As(err, &ie) {
		return ie.reason
	}
	return "I didn't understand that."
}

// skipWords leave an optional numeric field unset. An empty reply counts as
// a skip so a blank form field means "calculate it".
var skipWords = map[string]bool{"": true, "skip": true, "-": true, "0": true, "no": true}

func normalizeNumber(input string) string {
	return strings.ReplaceAll(strings.TrimSpace(input), ",", ".")
}

// ParsePositiveFloat accepts "70", "70.5" or "70,5".
func ParsePositiveFloat(input string) (float64, error) {
	v, err := strconv.ParseFloat(normalizeNumber(input), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalid("Please enter a number, for example 72.5.")
	}
	if v <= 0 {
		return 0, invalid("The number must be greater than zero.")
	}
	return v, nil
}

// ParseWeight accepts a weight in kg below domain.MaxWeightKg.
func ParseWeight(input string) (float64, error) {
	return parseBelow(input, domain.MaxWeightKg, "That weight doesn't look right, enter kilograms.")
}

// ParseHeight accepts a height in cm below domain.MaxHeightCm.
func ParseHeight(input string) (float64, error) {
	return parseBelow(input, domain.MaxHeightCm, "That height doesn't look right, enter centimeters.")
}

// ParseAge accepts a whole age below domain.MaxAge.
func ParseAge(input string) (int, error) {
	v, err := ParsePositiveInt(input)
	if err != nil {
		return 0, err
	}
	if v >= domain.MaxAge {
		return 0, invalid("That age doesn't look right.")
	}
	return v, nil
}

func parseBelow(input string, limit float64, reason string) (float64, error) {
	v, err := ParsePositiveFloat(input)
	if err != nil {
		return 0, err
	}
	if v >= limit {
		return 0, invalid(reason)
	}
	return v, nil
}

// ParsePositiveInt accepts whole numbers greater than zero.
func ParsePositiveInt(input string) (int, error) {
	v, err := parseWhole(input)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, invalid("The number must be greater than zero.")
	}
	return v, nil
}

// ParseNonNegativeInt accepts whole numbers including zero.
func ParseNonNegativeInt(input string) (int, error) {
	v, err := parseWhole(input)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, invalid("The number cannot be negative.")
	}
	return v, nil
}

// ParseOptionalTarget returns nil for a blank reply or a skip word, otherwise
// a positive int.
func ParseOptionalTarget(input string) (*int, error) {
	if skipWords[strings.ToLower(strings.TrimSpace(input))] {
		return nil, nil
	}
	v, err := ParsePositiveInt(input)
	if err != nil {
		return nil, invalid("Enter a whole number of kcal, or 'skip' to calculate it.")
	}
	return &v, nil
}

// ParseText requires a non-empty reply of reasonable length.
func ParseText(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", invalid("Please type something.")
	}
	if len([]rune(s)) > 100 {
		return "", invalid("That's too long, keep it under 100 characters.")
	}
	return s, nil
}

func parseWhole(input string) (int, error) {
	s := normalizeNumber(input)
	// "250.0" is fine, "250.5" is not.
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) && math.Abs(f) < math.MaxInt32 {
		return int(f), nil
	}
	return 0, invalid("Please enter a whole number, for example 30.")
}
