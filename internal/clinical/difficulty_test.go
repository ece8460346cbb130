package clinical

import "testing"

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelIntern, "Intern"},
		{LevelResident, "Resident"},
		{LevelAttending, "Attending"},
		{Level(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevelTimeLimit(t *testing.T) {
	tests := []struct {
		level Level
		want  int
	}{
		{LevelIntern, 45},
		{LevelResident, 35},
		{LevelAttending, 25},
		{Level(99), 0},
	}

	for _, tt := range tests {
		if got := tt.level.TimeLimitSecs(); got != tt.want {
			t.Errorf("%s.TimeLimitSecs() = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, l := range AllLevels() {
		got, ok := ParseLevel(l.String())
		if !ok || got != l {
			t.Errorf("ParseLevel(%q) = %v, %v, want %v, true", l.String(), got, ok, l)
		}
	}

	if _, ok := ParseLevel("Chief"); ok {
		t.Error("ParseLevel(\"Chief\") ok = true, want false")
	}
	if _, ok := ParseLevel(""); ok {
		t.Error("ParseLevel(\"\") ok = true, want false")
	}
}

func TestAllLevelsAscending(t *testing.T) {
	levels := AllLevels()
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			t.Errorf("AllLevels()[%d] = %v not above %v", i, levels[i], levels[i-1])
		}
	}
}
