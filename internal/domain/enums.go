package domain

// LogKind names one of the append-only log tables.
type LogKind string

const (
	LogWater   LogKind = "water"
	LogFood    LogKind = "food"
	LogWorkout LogKind = "workout"
)

// AllLogKinds lists every log kind in a stable order.
var AllLogKinds = []LogKind{LogWater, LogFood, LogWorkout}

// WaterMode is the reason tag attached to a computed water goal.
type WaterMode string

const (
	WaterStandard WaterMode = "standard"
	WaterElevated WaterMode = "elevated"
)
