package adaptive

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestNewWeights(t *testing.T) {
	w := NewWeights([]string{"Pneumonia", "COPD Exacerbation"})

	if w.Scaling != DefaultScaling {
		t.Errorf("Scaling = %v, want %v", w.Scaling, DefaultScaling)
	}
	for _, topic := range []string{"Pneumonia", "COPD Exacerbation"} {
		if w.TopicWeight[topic] != DefaultTopicWeight {
			t.Errorf("TopicWeight[%s] = %v, want %v", topic, w.TopicWeight[topic], DefaultTopicWeight)
		}
		if w.LastSeenMs[topic] != 0 {
			t.Errorf("LastSeenMs[%s] = %v, want 0", topic, w.LastSeenMs[topic])
		}
		if w.ErrorFreq[topic] != 0 {
			t.Errorf("ErrorFreq[%s] = %v, want 0", topic, w.ErrorFreq[topic])
		}
	}
}

func TestRecordAnswerMiss(t *testing.T) {
	w := NewWeights([]string{"Pneumonia"})
	now := time.Now()

	// Two misses in a row: 1.0 * 1.5 * 1.5 = 2.25, error 0.1 + 0.1 = 0.2.
	w.RecordAnswer("Pneumonia", false, now)
	w.RecordAnswer("Pneumonia", false, now)

	if got := w.TopicWeight["Pneumonia"]; !almostEqual(got, 2.25) {
		t.Errorf("TopicWeight = %v, want 2.25", got)
	}
	if got := w.ErrorFreq["Pneumonia"]; !almostEqual(got, 0.2) {
		t.Errorf("ErrorFreq = %v, want 0.2", got)
	}
	if got := w.LastSeenMs["Pneumonia"]; got != now.UnixMilli() {
		t.Errorf("LastSeenMs = %v, want %v", got, now.UnixMilli())
	}
}

func TestRecordAnswerHit(t *testing.T) {
	w := NewWeights([]string{"Pneumonia"})
	now := time.Now()

	w.RecordAnswer("Pneumonia", false, now) // weight 1.5, error 0.1
	w.RecordAnswer("Pneumonia", true, now)  // weight 1.425, error 0.09

	if got := w.TopicWeight["Pneumonia"]; !almostEqual(got, 1.425) {
		t.Errorf("TopicWeight = %v, want 1.425", got)
	}
	if got := w.ErrorFreq["Pneumonia"]; !almostEqual(got, 0.09) {
		t.Errorf("ErrorFreq = %v, want 0.09", got)
	}
}

func TestRecordAnswerClamps(t *testing.T) {
	w := NewWeights([]string{"Pneumonia"})
	now := time.Now()

	for i := 0; i < 50; i++ {
		w.RecordAnswer("Pneumonia", false, now)
	}
	if got := w.TopicWeight["Pneumonia"]; got != MaxTopicWeight {
		t.Errorf("TopicWeight after 50 misses = %v, want %v", got, MaxTopicWeight)
	}
	if got := w.ErrorFreq["Pneumonia"]; got != MaxErrorFrequency {
		t.Errorf("ErrorFreq after 50 misses = %v, want %v", got, MaxErrorFrequency)
	}

	for i := 0; i < 200; i++ {
		w.RecordAnswer("Pneumonia", true, now)
	}
	if got := w.TopicWeight["Pneumonia"]; got != MinTopicWeight {
		t.Errorf("TopicWeight after 200 hits = %v, want %v", got, MinTopicWeight)
	}
	if got := w.ErrorFreq["Pneumonia"]; got < 0 {
		t.Errorf("ErrorFreq = %v, want >= 0", got)
	}
}

func TestRecordAnswerUnknownTopic(t *testing.T) {
	w := NewWeights([]string{"Pneumonia"})
	w.RecordAnswer("Astral Projection", false, time.Now())

	if w.Knows("Astral Projection") {
		t.Error("unknown topic was registered")
	}
	if len(w.TopicWeight) != 1 {
		t.Errorf("len(TopicWeight) = %d, want 1", len(w.TopicWeight))
	}
}
