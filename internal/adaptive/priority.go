package adaptive

import "time"

const (
	maxRecencyMultiplier = 2.0
	weakTopicMultiplier  = 1.5
	hoursPerRecencyStep  = 24.0
)

// ScoreTopics computes a priority score per candidate topic. Higher scores
// mean the topic more urgently needs practice. The function is pure: it
// reads the weights but never mutates them, so identical inputs always
// produce identical output.
//
// Each score is the product of four multipliers:
//   - error: 1 + errorFrequency (1.0 for unknown topics)
//   - recency: 1 + hoursSinceLastSeen/24, capped at 2.0 (a never-seen topic
//     has lastSeen 0, which lands on the cap)
//   - weak-topic: 1.5 when the owning specialty flagged the topic weak
//   - the global difficulty scaling scalar
func ScoreTopics(w *Weights, topics []string, weak func(topic string) bool, now time.Time) map[string]float64 {
	scores := make(map[string]float64, len(topics))
	for _, topic := range topics {
		errorMult := 1.0 + w.ErrorFreq[topic]

		lastSeen := time.UnixMilli(w.LastSeenMs[topic])
		recencyMult := 1.0 + now.Sub(lastSeen).Hours()/hoursPerRecencyStep
		if recencyMult > maxRecencyMultiplier {
			recencyMult = maxRecencyMultiplier
		}

		specialtyMult := 1.0
		if weak != nil && weak(topic) {
			specialtyMult = weakTopicMultiplier
		}

		scores[topic] = 1.0 * errorMult * recencyMult * specialtyMult * w.Scaling
	}
	return scores
}
