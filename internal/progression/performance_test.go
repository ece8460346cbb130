package progression

import (
	"math"
	"testing"
	"time"
)

func TestSpecialtyAccuracy(t *testing.T) {
	p := newSpecialtyPerformance()
	if got := p.Accuracy(); got != 0 {
		t.Errorf("Accuracy() with no questions = %v, want 0", got)
	}

	p.record(20, 15, nil, time.Now())
	if got := p.Accuracy(); got != 0.75 {
		t.Errorf("Accuracy() = %v, want 0.75", got)
	}
}

func TestSpecialtyMastery(t *testing.T) {
	tests := []struct {
		name    string
		seen    int
		correct int
		want    float64
	}{
		{"no practice", 0, 0, 0},
		{"half volume", 25, 25, 0.5},
		{"full volume", 50, 40, 0.8},
		{"volume capped", 500, 400, 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newSpecialtyPerformance()
			p.QuestionsSeen = tt.seen
			p.CorrectAnswers = tt.correct
			if got := p.Mastery(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Mastery() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecordUnionsWeakTopics(t *testing.T) {
	p := newSpecialtyPerformance()
	now := time.Now()

	p.record(10, 8, []string{"Pneumonia"}, now)
	p.record(10, 9, []string{"COPD Exacerbation", "Pneumonia"}, now.Add(time.Hour))

	if len(p.WeakTopics) != 2 {
		t.Errorf("len(WeakTopics) = %d, want 2", len(p.WeakTopics))
	}
	if !p.LastPracticed.Equal(now.Add(time.Hour)) {
		t.Errorf("LastPracticed = %v, want latest record time", p.LastPracticed)
	}
	if p.QuestionsSeen != 20 || p.CorrectAnswers != 17 {
		t.Errorf("totals = %d/%d, want 20/17", p.QuestionsSeen, p.CorrectAnswers)
	}
}
