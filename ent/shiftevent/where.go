// Code generated by ent, DO NOT EDIT.

package shiftevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/devaun0506/blackstar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ShiftID applies equality check predicate on the "shift_id" field. It's identical to ShiftIDEQ.
func ShiftID(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldShiftID, v))
}

// Questions applies equality check predicate on the "questions" field. It's identical to QuestionsEQ.
func Questions(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldQuestions, v))
}

// Accuracy applies equality check predicate on the "accuracy" field. It's identical to AccuracyEQ.
func Accuracy(v float64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldAccuracy, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldStreak, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ShiftIDEQ applies the EQ predicate on the "shift_id" field.
func ShiftIDEQ(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldShiftID, v))
}

// ShiftIDNEQ applies the NEQ predicate on the "shift_id" field.
func ShiftIDNEQ(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNEQ(FieldShiftID, v))
}

// ShiftIDIn applies the In predicate on the "shift_id" field.
func ShiftIDIn(vs ...string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldIn(FieldShiftID, vs...))
}

// ShiftIDNotIn applies the NotIn predicate on the "shift_id" field.
func ShiftIDNotIn(vs ...string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNotIn(FieldShiftID, vs...))
}

// ShiftIDGT applies the GT predicate on the "shift_id" field.
func ShiftIDGT(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGT(FieldShiftID, v))
}

// ShiftIDGTE applies the GTE predicate on the "shift_id" field.
func ShiftIDGTE(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGTE(FieldShiftID, v))
}

// ShiftIDLT applies the LT predicate on the "shift_id" field.
func ShiftIDLT(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLT(FieldShiftID, v))
}

// ShiftIDLTE applies the LTE predicate on the "shift_id" field.
func ShiftIDLTE(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLTE(FieldShiftID, v))
}

// ShiftIDContains applies the Contains predicate on the "shift_id" field.
func ShiftIDContains(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldContains(FieldShiftID, v))
}

// ShiftIDHasPrefix applies the HasPrefix predicate on the "shift_id" field.
func ShiftIDHasPrefix(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldHasPrefix(FieldShiftID, v))
}

// ShiftIDHasSuffix applies the HasSuffix predicate on the "shift_id" field.
func ShiftIDHasSuffix(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldHasSuffix(FieldShiftID, v))
}

// ShiftIDEqualFold applies the EqualFold predicate on the "shift_id" field.
func ShiftIDEqualFold(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEqualFold(FieldShiftID, v))
}

// ShiftIDContainsFold applies the ContainsFold predicate on the "shift_id" field.
func ShiftIDContainsFold(v string) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldContainsFold(FieldShiftID, v))
}

// QuestionsEQ applies the EQ predicate on the "questions" field.
func QuestionsEQ(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldQuestions, v))
}

// QuestionsNEQ applies the NEQ predicate on the "questions" field.
func QuestionsNEQ(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNEQ(FieldQuestions, v))
}

// QuestionsIn applies the In predicate on the "questions" field.
func QuestionsIn(vs ...int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldIn(FieldQuestions, vs...))
}

// QuestionsNotIn applies the NotIn predicate on the "questions" field.
func QuestionsNotIn(vs ...int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNotIn(FieldQuestions, vs...))
}

// QuestionsGT applies the GT predicate on the "questions" field.
func QuestionsGT(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGT(FieldQuestions, v))
}

// QuestionsGTE applies the GTE predicate on the "questions" field.
func QuestionsGTE(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGTE(FieldQuestions, v))
}

// QuestionsLT applies the LT predicate on the "questions" field.
func QuestionsLT(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLT(FieldQuestions, v))
}

// QuestionsLTE applies the LTE predicate on the "questions" field.
func QuestionsLTE(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLTE(FieldQuestions, v))
}

// AccuracyEQ applies the EQ predicate on the "accuracy" field.
func AccuracyEQ(v float64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldAccuracy, v))
}

// AccuracyNEQ applies the NEQ predicate on the "accuracy" field.
func AccuracyNEQ(v float64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNEQ(FieldAccuracy, v))
}

// AccuracyIn applies the In predicate on the "accuracy" field.
func AccuracyIn(vs ...float64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldIn(FieldAccuracy, vs...))
}

// AccuracyNotIn applies the NotIn predicate on the "accuracy" field.
func AccuracyNotIn(vs ...float64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNotIn(FieldAccuracy, vs...))
}

// AccuracyGT applies the GT predicate on the "accuracy" field.
func AccuracyGT(v float64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGT(FieldAccuracy, v))
}

// AccuracyGTE applies the GTE predicate on the "accuracy" field.
func AccuracyGTE(v float64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGTE(FieldAccuracy, v))
}

// AccuracyLT applies the LT predicate on the "accuracy" field.
func AccuracyLT(v float64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLT(FieldAccuracy, v))
}

// AccuracyLTE applies the LTE predicate on the "accuracy" field.
func AccuracyLTE(v float64) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLTE(FieldAccuracy, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.FieldLTE(FieldStreak, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ShiftEvent) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ShiftEvent) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ShiftEvent) predicate.ShiftEvent {
	return predicate.ShiftEvent(sql.NotPredicates(p))
}
