package progression

import (
	"sort"
	"time"

	"github.com/devaun0506/blackstar/internal/adaptive"
	"github.com/devaun0506/blackstar/internal/clinical"
	"github.com/devaun0506/blackstar/internal/milestone"
	"github.com/devaun0506/blackstar/internal/store"
	"github.com/devaun0506/blackstar/internal/unlock"
)

// Store is the progression aggregate for one player profile. It owns all
// progression state (difficulty and specialty unlocks, cumulative stats,
// per-specialty performance, adaptive weights) and is mutated only through
// CompleteShift and SetCurrentDifficulty. It is not safe for concurrent
// use; a profile is owned by one game session at a time.
type Store struct {
	catalog   *clinical.Catalog
	eventRepo store.EventRepo

	currentDifficulty    clinical.Level
	unlockedDifficulties map[clinical.Level]bool
	unlockedSpecialties  map[string]bool

	shiftsCompleted int
	totalQuestions  int
	overallAccuracy float64
	currentStreak   int
	bestStreak      int

	specialties map[string]*SpecialtyPerformance
	weights     *adaptive.Weights
	milestones  *milestone.Evaluator
}

// NewStore creates a progression store for a profile, seeding specialty
// and topic tables from the catalog and then overlaying the snapshot if
// one is provided. eventRepo may be nil; event logging is best-effort.
func NewStore(catalog *clinical.Catalog, snap *store.SnapshotData, eventRepo store.EventRepo) *Store {
	s := &Store{
		catalog:   catalog,
		eventRepo: eventRepo,

		currentDifficulty:    clinical.LevelIntern,
		unlockedDifficulties: map[clinical.Level]bool{clinical.LevelIntern: true},
		unlockedSpecialties:  map[string]bool{catalog.StartingSpecialty(): true},

		specialties: make(map[string]*SpecialtyPerformance),
		weights:     adaptive.NewWeights(catalog.Topics()),
	}

	for _, sp := range catalog.Specialties() {
		s.specialties[sp.Name] = newSpecialtyPerformance()
	}

	var achieved map[string]bool
	if snap != nil && snap.Progression != nil {
		achieved = snap.Progression.Milestones
	}
	s.milestones = milestone.NewEvaluator(milestone.Defaults(), achieved)

	if snap != nil {
		s.loadSnapshot(snap.Progression)
	}

	return s
}

// CurrentDifficulty returns the active difficulty level.
func (s *Store) CurrentDifficulty() clinical.Level {
	return s.currentDifficulty
}

// SetCurrentDifficulty switches the active difficulty level. It reports
// whether the switch happened: a locked level is refused and the call is
// a no-op returning false.
func (s *Store) SetCurrentDifficulty(level clinical.Level) bool {
	if !s.unlockedDifficulties[level] {
		return false
	}
	s.currentDifficulty = level
	return true
}

// UnlockedDifficulties returns the unlocked levels in ascending order.
// The result is always a prefix of AllLevels.
func (s *Store) UnlockedDifficulties() []clinical.Level {
	var levels []clinical.Level
	for _, l := range clinical.AllLevels() {
		if s.unlockedDifficulties[l] {
			levels = append(levels, l)
		}
	}
	return levels
}

// UnlockedSpecialties returns the unlocked specialty names in catalog order.
func (s *Store) UnlockedSpecialties() []string {
	var names []string
	for _, sp := range s.catalog.Specialties() {
		if s.unlockedSpecialties[sp.Name] {
			names = append(names, sp.Name)
		}
	}
	return names
}

// IsSpecialtyUnlocked reports whether a specialty is unlocked.
func (s *Store) IsSpecialtyUnlocked(name string) bool {
	return s.unlockedSpecialties[name]
}

// ShiftsCompleted returns the lifetime shift count.
func (s *Store) ShiftsCompleted() int { return s.shiftsCompleted }

// TotalQuestions returns the lifetime answered-question count.
func (s *Store) TotalQuestions() int { return s.totalQuestions }

// OverallAccuracy returns the recency-weighted running accuracy in [0,1].
func (s *Store) OverallAccuracy() float64 { return s.overallAccuracy }

// CurrentStreak returns the streak reported by the most recent shift.
func (s *Store) CurrentStreak() int { return s.currentStreak }

// BestStreak returns the historical maximum streak.
func (s *Store) BestStreak() int { return s.bestStreak }

// Performance returns the performance record for a specialty.
func (s *Store) Performance(specialty string) (*SpecialtyPerformance, bool) {
	p, ok := s.specialties[specialty]
	return p, ok
}

// SpecialtyMastery returns the mastery score for a specialty, 0 if unknown.
func (s *Store) SpecialtyMastery(specialty string) float64 {
	p, ok := s.specialties[specialty]
	if !ok {
		return 0
	}
	return p.Mastery()
}

// TopicWeight returns the adaptive weight for a topic, 0 if unknown.
func (s *Store) TopicWeight(topic string) (float64, bool) {
	w, ok := s.weights.TopicWeight[topic]
	return w, ok
}

// DifficultyScaling returns the global difficulty scaling scalar.
func (s *Store) DifficultyScaling() float64 {
	return s.weights.Scaling
}

// ScoreTopics computes priority scores for candidate topics. Pure: no
// store state is mutated.
func (s *Store) ScoreTopics(topics []string, now time.Time) map[string]float64 {
	return adaptive.ScoreTopics(s.weights, topics, s.isWeakTopic, now)
}

// isWeakTopic reports whether a topic sits in its owning specialty's
// weak-topic set.
func (s *Store) isWeakTopic(topic string) bool {
	owner, ok := s.catalog.TopicSpecialty(topic)
	if !ok {
		return false
	}
	p, ok := s.specialties[owner]
	return ok && p.WeakTopics[topic]
}

// stats packages cumulative state for the unlock evaluators.
func (s *Store) stats() unlock.Stats {
	return unlock.Stats{
		Shifts:     s.shiftsCompleted,
		Accuracy:   s.overallAccuracy,
		Questions:  s.totalQuestions,
		BestStreak: s.bestStreak,
	}
}

// sortedWeakTopics returns a specialty's weak topics sorted for stable
// persistence and display.
func sortedWeakTopics(p *SpecialtyPerformance) []string {
	topics := make([]string, 0, len(p.WeakTopics))
	for t := range p.WeakTopics {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return topics
}
