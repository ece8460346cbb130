package adaptive

const (
	// MinScaling and MaxScaling bound the global difficulty scaling scalar.
	MinScaling = 0.5
	MaxScaling = 2.0

	// DefaultScaling is the neutral scaling value.
	DefaultScaling = 1.0

	// TargetAccuracy is the accuracy the scaling loop steers toward.
	TargetAccuracy = 0.75

	// The thresholds are asymmetric on purpose: scaling rises when the
	// learner is more than 10 points above target but only falls when they
	// are more than 15 points below, which keeps the loop from oscillating
	// around the target.
	raiseDeadband = 0.10
	lowerDeadband = -0.15

	scaleUpFactor   = 1.05
	scaleDownFactor = 0.95
)

// Adjustment kinds reported when the scaling scalar moves.
const (
	AdjustIncrease = "increase_difficulty"
	AdjustDecrease = "decrease_difficulty"
)

// Adjustment records a difficulty scaling change made after a shift.
type Adjustment struct {
	Kind    string
	Scaling float64
}

// AdjustScaling nudges the global scaling scalar toward TargetAccuracy
// based on one shift's accuracy. Returns nil when accuracy sits inside
// the deadband and no change was made.
func (w *Weights) AdjustScaling(shiftAccuracy float64) *Adjustment {
	diff := shiftAccuracy - TargetAccuracy

	switch {
	case diff > raiseDeadband:
		w.Scaling = clamp(w.Scaling*scaleUpFactor, MinScaling, MaxScaling)
		return &Adjustment{Kind: AdjustIncrease, Scaling: w.Scaling}
	case diff < lowerDeadband:
		w.Scaling = clamp(w.Scaling*scaleDownFactor, MinScaling, MaxScaling)
		return &Adjustment{Kind: AdjustDecrease, Scaling: w.Scaling}
	default:
		return nil
	}
}
