package adaptive

import "time"

const (
	// MinTopicWeight and MaxTopicWeight bound per-topic weights.
	MinTopicWeight = 0.1
	MaxTopicWeight = 5.0

	// MaxErrorFrequency bounds the per-topic error frequency.
	MaxErrorFrequency = 2.0

	// DefaultTopicWeight is the weight every topic starts at.
	DefaultTopicWeight = 1.0

	missWeightFactor = 1.5
	hitWeightFactor  = 0.95
	missErrorStep    = 0.1
	hitErrorDecay    = 0.9
)

// Weights holds the per-topic adaptive state plus the global difficulty
// scaling scalar. The topic key set is fixed at construction; answers for
// topics outside it are ignored.
type Weights struct {
	TopicWeight map[string]float64
	LastSeenMs  map[string]int64
	ErrorFreq   map[string]float64
	Scaling     float64
}

// NewWeights seeds adaptive state for the given topic universe.
func NewWeights(topics []string) *Weights {
	w := &Weights{
		TopicWeight: make(map[string]float64, len(topics)),
		LastSeenMs:  make(map[string]int64, len(topics)),
		ErrorFreq:   make(map[string]float64, len(topics)),
		Scaling:     DefaultScaling,
	}
	for _, t := range topics {
		w.TopicWeight[t] = DefaultTopicWeight
		w.LastSeenMs[t] = 0
		w.ErrorFreq[t] = 0.0
	}
	return w
}

// Knows reports whether a topic is in the adaptive table.
func (w *Weights) Knows(topic string) bool {
	_, ok := w.TopicWeight[topic]
	return ok
}

// RecordAnswer updates a topic's weight and error frequency after one
// answered question. Topics not present in the table are skipped.
func (w *Weights) RecordAnswer(topic string, correct bool, now time.Time) {
	if !w.Knows(topic) {
		return
	}

	w.LastSeenMs[topic] = now.UnixMilli()

	if correct {
		w.TopicWeight[topic] *= hitWeightFactor
		w.ErrorFreq[topic] *= hitErrorDecay
	} else {
		w.TopicWeight[topic] *= missWeightFactor
		w.ErrorFreq[topic] += missErrorStep
	}

	w.TopicWeight[topic] = clamp(w.TopicWeight[topic], MinTopicWeight, MaxTopicWeight)
	w.ErrorFreq[topic] = clamp(w.ErrorFreq[topic], 0.0, MaxErrorFrequency)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
