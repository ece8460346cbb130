package clinical

// Level represents a shift difficulty level. Levels are strictly ordered:
// a level can only be unlocked once every level below it is unlocked.
type Level int

const (
	LevelIntern Level = iota
	LevelResident
	LevelAttending
)

// AllLevels returns every difficulty level in ascending order.
func AllLevels() []Level {
	return []Level{LevelIntern, LevelResident, LevelAttending}
}

// String returns the display name for a level.
func (l Level) String() string {
	switch l {
	case LevelIntern:
		return "Intern"
	case LevelResident:
		return "Resident"
	case LevelAttending:
		return "Attending"
	default:
		return "Unknown"
	}
}

// TimeLimitSecs returns the per-question time limit for a level.
func (l Level) TimeLimitSecs() int {
	switch l {
	case LevelIntern:
		return 45
	case LevelResident:
		return 35
	case LevelAttending:
		return 25
	default:
		return 0
	}
}

// ParseLevel resolves a display name back to a Level.
func ParseLevel(s string) (Level, bool) {
	switch s {
	case "Intern":
		return LevelIntern, true
	case "Resident":
		return LevelResident, true
	case "Attending":
		return LevelAttending, true
	default:
		return LevelIntern, false
	}
}
