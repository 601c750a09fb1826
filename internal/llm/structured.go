package llm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseNumber parses raw model output that must consist of a single decimal
// number. Code fences, surrounding quotes, a trailing period and a decimal
// comma are tolerated; any other text makes the output invalid.
func ParseNumber(raw string) (float64, error) {
	cleaned := strings.TrimSpace(stripCodeFences(raw))
	cleaned = strings.Trim(cleaned, "\"'` ")
	cleaned = strings.TrimSuffix(cleaned, ".")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: not a number: %q", ErrInvalidOutput, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: not a finite number", ErrInvalidOutput)
	}
	return v, nil
}

// stripCodeFences drops markdown fence lines (``` or ```lang).
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
