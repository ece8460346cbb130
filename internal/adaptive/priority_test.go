package adaptive

import (
	"testing"
	"time"
)

func TestScoreTopicsNeverSeen(t *testing.T) {
	w := NewWeights([]string{"Pneumonia"})
	now := time.Now()

	// A never-seen topic has lastSeen 0, which puts recency on the cap:
	// 1.0 * 1.0 * 2.0 * 1.0 * 1.0 = 2.0.
	scores := ScoreTopics(w, []string{"Pneumonia"}, nil, now)
	if got := scores["Pneumonia"]; !almostEqual(got, 2.0) {
		t.Errorf("score = %v, want 2.0", got)
	}
}

func TestScoreTopicsJustSeen(t *testing.T) {
	w := NewWeights([]string{"Pneumonia"})
	now := time.Now()
	w.LastSeenMs["Pneumonia"] = now.UnixMilli()

	scores := ScoreTopics(w, []string{"Pneumonia"}, nil, now)
	if got := scores["Pneumonia"]; !almostEqual(got, 1.0) {
		t.Errorf("score = %v, want 1.0", got)
	}
}

func TestScoreTopicsMultipliers(t *testing.T) {
	w := NewWeights([]string{"Pneumonia"})
	now := time.Now()

	// 12 hours since last seen: recency 1.5; error 0.4: error mult 1.4;
	// weak: 1.5; scaling 1.2. Product = 1.4 * 1.5 * 1.5 * 1.2 = 3.78.
	w.LastSeenMs["Pneumonia"] = now.Add(-12 * time.Hour).UnixMilli()
	w.ErrorFreq["Pneumonia"] = 0.4
	w.Scaling = 1.2

	weak := func(topic string) bool { return topic == "Pneumonia" }
	scores := ScoreTopics(w, []string{"Pneumonia"}, weak, now)
	if got := scores["Pneumonia"]; !almostEqual(got, 3.78) {
		t.Errorf("score = %v, want 3.78", got)
	}
}

func TestScoreTopicsRecencyCap(t *testing.T) {
	w := NewWeights([]string{"Pneumonia"})
	now := time.Now()

	// 10 days out: uncapped recency would be 11, cap holds it at 2.
	w.LastSeenMs["Pneumonia"] = now.Add(-240 * time.Hour).UnixMilli()

	scores := ScoreTopics(w, []string{"Pneumonia"}, nil, now)
	if got := scores["Pneumonia"]; !almostEqual(got, 2.0) {
		t.Errorf("score = %v, want 2.0", got)
	}
}

func TestScoreTopicsPure(t *testing.T) {
	w := NewWeights([]string{"Pneumonia"})
	now := time.Now()
	w.ErrorFreq["Pneumonia"] = 0.3
	w.LastSeenMs["Pneumonia"] = now.Add(-6 * time.Hour).UnixMilli()

	first := ScoreTopics(w, []string{"Pneumonia"}, nil, now)
	second := ScoreTopics(w, []string{"Pneumonia"}, nil, now)

	if first["Pneumonia"] != second["Pneumonia"] {
		t.Errorf("scores differ across calls: %v vs %v", first["Pneumonia"], second["Pneumonia"])
	}
	if w.ErrorFreq["Pneumonia"] != 0.3 {
		t.Errorf("ErrorFreq mutated to %v", w.ErrorFreq["Pneumonia"])
	}
}
