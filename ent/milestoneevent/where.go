// Code generated by ent, DO NOT EDIT.

package milestoneevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/devaun0506/blackstar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldEQ(FieldTimestamp, v))
}

// MilestoneID applies equality check predicate on the "milestone_id" field. It's identical to MilestoneIDEQ.
func MilestoneID(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldEQ(FieldMilestoneID, v))
}

// Reward applies equality check predicate on the "reward" field. It's identical to RewardEQ.
func Reward(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldEQ(FieldReward, v))
}

// ShiftID applies equality check predicate on the "shift_id" field. It's identical to ShiftIDEQ.
func ShiftID(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldEQ(FieldShiftID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldLTE(FieldTimestamp, v))
}

// MilestoneIDEQ applies the EQ predicate on the "milestone_id" field.
func MilestoneIDEQ(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldEQ(FieldMilestoneID, v))
}

// MilestoneIDNEQ applies the NEQ predicate on the "milestone_id" field.
func MilestoneIDNEQ(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldNEQ(FieldMilestoneID, v))
}

// MilestoneIDIn applies the In predicate on the "milestone_id" field.
func MilestoneIDIn(vs ...string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldIn(FieldMilestoneID, vs...))
}

// MilestoneIDNotIn applies the NotIn predicate on the "milestone_id" field.
func MilestoneIDNotIn(vs ...string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldNotIn(FieldMilestoneID, vs...))
}

// MilestoneIDGT applies the GT predicate on the "milestone_id" field.
func MilestoneIDGT(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldGT(FieldMilestoneID, v))
}

// MilestoneIDGTE applies the GTE predicate on the "milestone_id" field.
func MilestoneIDGTE(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldGTE(FieldMilestoneID, v))
}

// MilestoneIDLT applies the LT predicate on the "milestone_id" field.
func MilestoneIDLT(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldLT(FieldMilestoneID, v))
}

// MilestoneIDLTE applies the LTE predicate on the "milestone_id" field.
func MilestoneIDLTE(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldLTE(FieldMilestoneID, v))
}

// MilestoneIDContains applies the Contains predicate on the "milestone_id" field.
func MilestoneIDContains(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldContains(FieldMilestoneID, v))
}

// MilestoneIDHasPrefix applies the HasPrefix predicate on the "milestone_id" field.
func MilestoneIDHasPrefix(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldHasPrefix(FieldMilestoneID, v))
}

// MilestoneIDHasSuffix applies the HasSuffix predicate on the "milestone_id" field.
func MilestoneIDHasSuffix(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldHasSuffix(FieldMilestoneID, v))
}

// MilestoneIDEqualFold applies the EqualFold predicate on the "milestone_id" field.
func MilestoneIDEqualFold(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldEqualFold(FieldMilestoneID, v))
}

// MilestoneIDContainsFold applies the ContainsFold predicate on the "milestone_id" field.
func MilestoneIDContainsFold(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldContainsFold(FieldMilestoneID, v))
}

// RewardEQ applies the EQ predicate on the "reward" field.
func RewardEQ(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldEQ(FieldReward, v))
}

// RewardNEQ applies the NEQ predicate on the "reward" field.
func RewardNEQ(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldNEQ(FieldReward, v))
}

// RewardIn applies the In predicate on the "reward" field.
func RewardIn(vs ...string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldIn(FieldReward, vs...))
}

// RewardNotIn applies the NotIn predicate on the "reward" field.
func RewardNotIn(vs ...string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldNotIn(FieldReward, vs...))
}

// RewardGT applies the GT predicate on the "reward" field.
func RewardGT(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldGT(FieldReward, v))
}

// RewardGTE applies the GTE predicate on the "reward" field.
func RewardGTE(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldGTE(FieldReward, v))
}

// RewardLT applies the LT predicate on the "reward" field.
func RewardLT(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldLT(FieldReward, v))
}

// RewardLTE applies the LTE predicate on the "reward" field.
func RewardLTE(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldLTE(FieldReward, v))
}

// RewardContains applies the Contains predicate on the "reward" field.
func RewardContains(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldContains(FieldReward, v))
}

// RewardHasPrefix applies the HasPrefix predicate on the "reward" field.
func RewardHasPrefix(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldHasPrefix(FieldReward, v))
}

// RewardHasSuffix applies the HasSuffix predicate on the "reward" field.
func RewardHasSuffix(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldHasSuffix(FieldReward, v))
}

// RewardEqualFold applies the EqualFold predicate on the "reward" field.
func RewardEqualFold(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldEqualFold(FieldReward, v))
}

// RewardContainsFold applies the ContainsFold predicate on the "reward" field.
func RewardContainsFold(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldContainsFold(FieldReward, v))
}

// ShiftIDEQ applies the EQ predicate on the "shift_id" field.
func ShiftIDEQ(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldEQ(FieldShiftID, v))
}

// ShiftIDNEQ applies the NEQ predicate on the "shift_id" field.
func ShiftIDNEQ(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldNEQ(FieldShiftID, v))
}

// ShiftIDIn applies the In predicate on the "shift_id" field.
func ShiftIDIn(vs ...string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldIn(FieldShiftID, vs...))
}

// ShiftIDNotIn applies the NotIn predicate on the "shift_id" field.
func ShiftIDNotIn(vs ...string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldNotIn(FieldShiftID, vs...))
}

// ShiftIDGT applies the GT predicate on the "shift_id" field.
func ShiftIDGT(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldGT(FieldShiftID, v))
}

// ShiftIDGTE applies the GTE predicate on the "shift_id" field.
func ShiftIDGTE(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldGTE(FieldShiftID, v))
}

// ShiftIDLT applies the LT predicate on the "shift_id" field.
func ShiftIDLT(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldLT(FieldShiftID, v))
}

// ShiftIDLTE applies the LTE predicate on the "shift_id" field.
func ShiftIDLTE(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldLTE(FieldShiftID, v))
}

// ShiftIDContains applies the Contains predicate on the "shift_id" field.
func ShiftIDContains(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldContains(FieldShiftID, v))
}

// ShiftIDHasPrefix applies the HasPrefix predicate on the "shift_id" field.
func ShiftIDHasPrefix(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldHasPrefix(FieldShiftID, v))
}

// ShiftIDHasSuffix applies the HasSuffix predicate on the "shift_id" field.
func ShiftIDHasSuffix(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldHasSuffix(FieldShiftID, v))
}

// ShiftIDIsNil applies the IsNil predicate on the "shift_id" field.
func ShiftIDIsNil() predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldIsNull(FieldShiftID))
}

// ShiftIDNotNil applies the NotNil predicate on the "shift_id" field.
func ShiftIDNotNil() predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldNotNull(FieldShiftID))
}

// ShiftIDEqualFold applies the EqualFold predicate on the "shift_id" field.
func ShiftIDEqualFold(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldEqualFold(FieldShiftID, v))
}

// ShiftIDContainsFold applies the ContainsFold predicate on the "shift_id" field.
func ShiftIDContainsFold(v string) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.FieldContainsFold(FieldShiftID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MilestoneEvent) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MilestoneEvent) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MilestoneEvent) predicate.MilestoneEvent {
	return predicate.MilestoneEvent(sql.NotPredicates(p))
}
