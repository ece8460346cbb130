package progression

import (
	"context"
	"time"

	"github.com/devaun0506/blackstar/internal/adaptive"
	"github.com/devaun0506/blackstar/internal/clinical"
	"github.com/devaun0506/blackstar/internal/milestone"
	"github.com/devaun0506/blackstar/internal/store"
	"github.com/devaun0506/blackstar/internal/unlock"
)

// ShiftResult is the payload the game-flow controller hands over when a
// shift ends. Every field is optional: absent fields simply skip their
// update step. Pointer fields distinguish "absent" from a legitimate zero.
type ShiftResult struct {
	ShiftID           string                     `json:"shift_id,omitempty"`
	QuestionsAnswered int                        `json:"questions_answered,omitempty"`
	Accuracy          *float64                   `json:"accuracy,omitempty"`
	Streak            *int                       `json:"streak,omitempty"`
	Specialties       map[string]SpecialtyResult `json:"specialties,omitempty"`
	Questions         []QuestionResult           `json:"questions,omitempty"`
}

// SpecialtyResult is the per-specialty breakdown within a shift.
type SpecialtyResult struct {
	Questions    int      `json:"questions"`
	Correct      int      `json:"correct"`
	MissedTopics []string `json:"missed_topics,omitempty"`
}

// QuestionResult is one answered question for adaptive weighting.
type QuestionResult struct {
	Topic   string `json:"topic"`
	Correct bool   `json:"correct"`
}

// ShiftOutcome reports everything a shift changed beyond plain accumulation:
// unlocks, milestones, and difficulty scaling adjustments. Collaborators
// (UI, audio, telemetry) read it instead of subscribing to a broadcast.
type ShiftOutcome struct {
	DifficultyUnlocks []clinical.Level
	SpecialtyUnlocks  []string
	Milestones        []milestone.Milestone
	Adjustment        *adaptive.Adjustment
}

// CompleteShift folds one finished shift into the profile. Updates happen
// in a fixed order: shift count, question count, running accuracy, streaks,
// per-specialty performance, adaptive weights, difficulty unlocks, specialty
// unlocks, milestones, and finally difficulty scaling. Specialty unlocks run
// after difficulty unlocks because a specialty gate may depend on a level
// unlocked this very shift.
//
// There are no error paths: malformed or missing fields degrade to "no
// update". Event-log appends are best-effort and never affect the
// in-memory result.
func (s *Store) CompleteShift(ctx context.Context, result ShiftResult, now time.Time) *ShiftOutcome {
	outcome := &ShiftOutcome{}

	// 1-2. Counters.
	s.shiftsCompleted++
	s.totalQuestions += result.QuestionsAnswered

	// 3. Running accuracy: weighted moving average with w = (n-1)/n, which
	// gives each later shift geometrically less influence. Intentional
	// recency-flavored estimator, not a lifetime mean.
	if result.Accuracy != nil {
		w := float64(s.shiftsCompleted-1) / float64(s.shiftsCompleted)
		s.overallAccuracy = s.overallAccuracy*w + *result.Accuracy*(1-w)
	}

	// 4. Streaks.
	if result.Streak != nil {
		s.currentStreak = *result.Streak
		if s.currentStreak > s.bestStreak {
			s.bestStreak = s.currentStreak
		}
	}

	// 5. Per-specialty breakdown. Unknown specialties are skipped.
	for name, sr := range result.Specialties {
		if p, ok := s.specialties[name]; ok {
			p.record(sr.Questions, sr.Correct, sr.MissedTopics, now)
		}
	}

	// 6. Adaptive weights from per-question results.
	for _, q := range result.Questions {
		s.weights.RecordAnswer(q.Topic, q.Correct, now)
	}

	// 7. Unlock and milestone checks.
	s.evaluateDifficultyUnlocks(ctx, result.ShiftID, outcome)
	s.evaluateSpecialtyUnlocks(ctx, result.ShiftID, outcome)
	s.evaluateMilestones(ctx, result.ShiftID, outcome)

	// 8. Difficulty scaling.
	if result.Accuracy != nil {
		outcome.Adjustment = s.weights.AdjustScaling(*result.Accuracy)
	}

	if s.eventRepo != nil && result.ShiftID != "" {
		data := store.ShiftEventData{
			ShiftID:   result.ShiftID,
			Questions: result.QuestionsAnswered,
		}
		if result.Accuracy != nil {
			data.Accuracy = *result.Accuracy
		}
		if result.Streak != nil {
			data.Streak = *result.Streak
		}
		_ = s.eventRepo.AppendShiftEvent(ctx, data)
	}

	return outcome
}

// evaluateDifficultyUnlocks walks the requirement table in ascending order.
// Each level is gated on the one below already being unlocked, so the set
// stays a prefix of the level ordering; a lower level unlocked in this pass
// is visible to the next check.
func (s *Store) evaluateDifficultyUnlocks(ctx context.Context, shiftID string, outcome *ShiftOutcome) {
	stats := s.stats()
	for _, req := range unlock.DifficultyRequirements() {
		if s.unlockedDifficulties[req.Level] {
			continue
		}
		if !s.unlockedDifficulties[req.Level-1] {
			break
		}
		if !unlock.MeetsDifficulty(req, stats) {
			continue
		}
		s.unlockedDifficulties[req.Level] = true
		outcome.DifficultyUnlocks = append(outcome.DifficultyUnlocks, req.Level)
		if s.eventRepo != nil {
			_ = s.eventRepo.AppendUnlockEvent(ctx, store.UnlockEventData{
				ShiftID: shiftID,
				Kind:    "difficulty",
				Name:    req.Level.String(),
			})
		}
	}
}

func (s *Store) evaluateSpecialtyUnlocks(ctx context.Context, shiftID string, outcome *ShiftOutcome) {
	stats := s.stats()
	for _, sp := range s.catalog.Specialties() {
		if s.unlockedSpecialties[sp.Name] {
			continue
		}
		if !unlock.MeetsSpecialty(sp.Requirement, stats, s.unlockedDifficulties, s.SpecialtyMastery) {
			continue
		}
		s.unlockedSpecialties[sp.Name] = true
		outcome.SpecialtyUnlocks = append(outcome.SpecialtyUnlocks, sp.Name)
		if s.eventRepo != nil {
			_ = s.eventRepo.AppendUnlockEvent(ctx, store.UnlockEventData{
				ShiftID: shiftID,
				Kind:    "specialty",
				Name:    sp.Name,
			})
		}
	}
}

func (s *Store) evaluateMilestones(ctx context.Context, shiftID string, outcome *ShiftOutcome) {
	fired := s.milestones.Evaluate(s.shiftsCompleted, s.overallAccuracy, s.bestStreak)
	for _, m := range fired {
		outcome.Milestones = append(outcome.Milestones, m)
		if s.eventRepo != nil {
			_ = s.eventRepo.AppendMilestoneEvent(ctx, store.MilestoneEventData{
				ShiftID:     shiftID,
				MilestoneID: m.ID,
				Reward:      m.Reward,
			})
		}
	}
}
