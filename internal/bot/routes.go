package bot

import "strings"

// Action is a routable chat operation.
type Action string

const (
	ActionStart   Action = "start"
	ActionHelp    Action = "help"
	ActionProfile Action = "set_profile"
	ActionWater   Action = "log_water"
	ActionFood    Action = "log_food"
	ActionWorkout Action = "log_workout"
	ActionToday   Action = "check_progress"
	ActionWeek    Action = "week_progress"
	ActionReset   Action = "reset_history"
	ActionSeed    Action = "seed_week"
	ActionCancel  Action = "cancel"

	// ActionUnknown is any slash command not listed above. It never reaches
	// an active wizard.
	ActionUnknown Action = "unknown"
)

// Menu button labels. A message whose text equals a label is routed exactly
// like the matching command.
const (
	LabelWater   = "💧 Water"
	LabelFood    = "🍎 Meal"
	LabelWorkout = "🏃 Workout"
	LabelToday   = "📊 Today's progress"
	LabelSeed    = "🧪 Generate test week"
	LabelWeek    = "📈 Weekly progress"
	LabelProfile = "⚙️ Edit profile"
	LabelReset   = "🧹 Reset history"
)

var commands = map[string]Action{
	"/start":          ActionStart,
	"/help":           ActionHelp,
	"/set_profile":    ActionProfile,
	"/log_water":      ActionWater,
	"/log_food":       ActionFood,
	"/log_workout":    ActionWorkout,
	"/check_progress": ActionToday,
	"/week_progress":  ActionWeek,
	"/reset_history":  ActionReset,
	"/seed_week":      ActionSeed,
	"/cancel":         ActionCancel,
}

var labels = map[string]Action{
	LabelWater:   ActionWater,
	LabelFood:    ActionFood,
	LabelWorkout: ActionWorkout,
	LabelToday:   ActionToday,
	LabelSeed:    ActionSeed,
	LabelWeek:    ActionWeek,
	LabelProfile: ActionProfile,
	LabelReset:   ActionReset,
}

// MenuRows is the static reply keyboard, one button per row.
func MenuRows() [][]string {
	return [][]string{
		{LabelWater},
		{LabelFood},
		{LabelWorkout},
		{LabelToday},
		{LabelSeed},
		{LabelWeek},
		{LabelProfile},
		{LabelReset},
	}
}

// Route resolves text to an action by command keyword or exact menu label.
// Commands may carry a "@botname" suffix and trailing arguments. Text that
// starts with "/" is always a command; unlisted ones map to ActionUnknown.
func Route(text string) (Action, bool) {
	text = strings.TrimSpace(text)
	if a, ok := labels[text]; ok {
		return a, true
	}
	if !strings.HasPrefix(text, "/") {
		return "", false
	}
	cmd := strings.Fields(text)[0]
	if at := strings.IndexByte(cmd, '@'); at > 0 {
		cmd = cmd[:at]
	}
	if a, ok := commands[strings.ToLower(cmd)]; ok {
		return a, true
	}
	return ActionUnknown, true
}

const helpText = `Track water, meals and workouts against your daily goals.

/set_profile  create or replace your profile
/log_water    log a drink
/log_food     log a meal
/log_workout  log a workout
/check_progress  today's progress
/week_progress   last 7 days
/seed_week    generate a test week
/reset_history   delete all your logs
/cancel       abort the current input`
