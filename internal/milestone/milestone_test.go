package milestone

import "testing"

func TestEvaluateFirstShift(t *testing.T) {
	e := NewEvaluator(Defaults(), nil)

	fired := e.Evaluate(1, 0.5, 0)
	if len(fired) != 1 || fired[0].ID != "first_shift" {
		t.Fatalf("Evaluate(1, 0.5, 0) = %v", ids(fired))
	}

	// Once fired, never again.
	if again := e.Evaluate(1, 0.5, 0); len(again) != 0 {
		t.Errorf("second Evaluate = %v, want none", ids(again))
	}
}

func TestEvaluateMultipleAtOnce(t *testing.T) {
	e := NewEvaluator(Defaults(), nil)

	// 10 shifts at 0.9 accuracy with a 12 streak: first_shift, shift_regular,
	// sharp_eye, and hot_streak all fire in one pass.
	fired := e.Evaluate(10, 0.9, 12)
	want := map[string]bool{
		"first_shift":   true,
		"shift_regular": true,
		"sharp_eye":     true,
		"hot_streak":    true,
	}
	if len(fired) != len(want) {
		t.Fatalf("Evaluate fired %v, want %d milestones", ids(fired), len(want))
	}
	for _, m := range fired {
		if !want[m.ID] {
			t.Errorf("unexpected milestone %q", m.ID)
		}
	}
}

func TestEvaluateAccuracyGate(t *testing.T) {
	e := NewEvaluator(Defaults(), nil)

	// sharp_eye needs both 5 shifts and 0.85 accuracy.
	fired := e.Evaluate(5, 0.84, 0)
	for _, m := range fired {
		if m.ID == "sharp_eye" {
			t.Error("sharp_eye fired below accuracy gate")
		}
	}

	fired = e.Evaluate(5, 0.85, 0)
	found := false
	for _, m := range fired {
		if m.ID == "sharp_eye" {
			found = true
		}
	}
	if !found {
		t.Error("sharp_eye did not fire at 5 shifts, 0.85 accuracy")
	}
}

func TestRestoredAchievements(t *testing.T) {
	e := NewEvaluator(Defaults(), map[string]bool{"first_shift": true, "hot_streak": false})

	fired := e.Evaluate(1, 0, 10)
	for _, m := range fired {
		if m.ID == "first_shift" {
			t.Error("restored milestone fired again")
		}
	}

	// A false flag in the restore map does not count as achieved.
	found := false
	for _, m := range fired {
		if m.ID == "hot_streak" {
			found = true
		}
	}
	if !found {
		t.Error("hot_streak suppressed by false restore flag")
	}
}

func TestAchievedCopy(t *testing.T) {
	e := NewEvaluator(Defaults(), nil)
	e.Evaluate(1, 0, 0)

	achieved := e.Achieved()
	if !achieved["first_shift"] {
		t.Fatal("Achieved() missing first_shift")
	}

	achieved["shift_veteran"] = true
	if e.Achieved()["shift_veteran"] {
		t.Error("mutating the returned map leaked into the evaluator")
	}
}

func ids(ms []Milestone) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}
	return out
}
