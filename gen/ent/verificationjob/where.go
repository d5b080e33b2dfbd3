// Code generated by ent, DO NOT EDIT.

package verificationjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/greenmap-app/greenmap-verify/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldID, id))
}

// MemberID applies equality check predicate on the "member_id" field. It's identical to MemberIDEQ.
func MemberID(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldMemberID, v))
}

// ActivityType applies equality check predicate on the "activity_type" field. It's identical to ActivityTypeEQ.
func ActivityType(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldActivityType, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldStatus, v))
}

// ImagePath applies equality check predicate on the "image_path" field. It's identical to ImagePathEQ.
func ImagePath(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldImagePath, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldFinishedAt, v))
}

// RecognizedText applies equality check predicate on the "recognized_text" field. It's identical to RecognizedTextEQ.
func RecognizedText(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldRecognizedText, v))
}

// OcrConfidence applies equality check predicate on the "ocr_confidence" field. It's identical to OcrConfidenceEQ.
func OcrConfidence(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldOcrConfidence, v))
}

// DetectedCategory applies equality check predicate on the "detected_category" field. It's identical to DetectedCategoryEQ.
func DetectedCategory(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldDetectedCategory, v))
}

// KeywordsMatched applies equality check predicate on the "keywords_matched" field. It's identical to KeywordsMatchedEQ.
func KeywordsMatched(v bool) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldKeywordsMatched, v))
}

// MemberChallengeID applies equality check predicate on the "member_challenge_id" field. It's identical to MemberChallengeIDEQ.
func MemberChallengeID(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldMemberChallengeID, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldErrorMessage, v))
}

// MemberIDEQ applies the EQ predicate on the "member_id" field.
func MemberIDEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldMemberID, v))
}

// MemberIDNEQ applies the NEQ predicate on the "member_id" field.
func MemberIDNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldMemberID, v))
}

// MemberIDIn applies the In predicate on the "member_id" field.
func MemberIDIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldMemberID, vs...))
}

// MemberIDNotIn applies the NotIn predicate on the "member_id" field.
func MemberIDNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldMemberID, vs...))
}

// MemberIDGT applies the GT predicate on the "member_id" field.
func MemberIDGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldMemberID, v))
}

// MemberIDGTE applies the GTE predicate on the "member_id" field.
func MemberIDGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldMemberID, v))
}

// MemberIDLT applies the LT predicate on the "member_id" field.
func MemberIDLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldMemberID, v))
}

// MemberIDLTE applies the LTE predicate on the "member_id" field.
func MemberIDLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldMemberID, v))
}

// MemberIDContains applies the Contains predicate on the "member_id" field.
func MemberIDContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldMemberID, v))
}

// MemberIDHasPrefix applies the HasPrefix predicate on the "member_id" field.
func MemberIDHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldMemberID, v))
}

// MemberIDHasSuffix applies the HasSuffix predicate on the "member_id" field.
func MemberIDHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldMemberID, v))
}

// MemberIDIsNil applies the IsNil predicate on the "member_id" field.
func MemberIDIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldMemberID))
}

// MemberIDNotNil applies the NotNil predicate on the "member_id" field.
func MemberIDNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldMemberID))
}

// MemberIDEqualFold applies the EqualFold predicate on the "member_id" field.
func MemberIDEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldMemberID, v))
}

// MemberIDContainsFold applies the ContainsFold predicate on the "member_id" field.
func MemberIDContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldMemberID, v))
}

// ActivityTypeEQ applies the EQ predicate on the "activity_type" field.
func ActivityTypeEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldActivityType, v))
}

// ActivityTypeNEQ applies the NEQ predicate on the "activity_type" field.
func ActivityTypeNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldActivityType, v))
}

// ActivityTypeIn applies the In predicate on the "activity_type" field.
func ActivityTypeIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldActivityType, vs...))
}

// ActivityTypeNotIn applies the NotIn predicate on the "activity_type" field.
func ActivityTypeNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldActivityType, vs...))
}

// ActivityTypeGT applies the GT predicate on the "activity_type" field.
func ActivityTypeGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldActivityType, v))
}

// ActivityTypeGTE applies the GTE predicate on the "activity_type" field.
func ActivityTypeGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldActivityType, v))
}

// ActivityTypeLT applies the LT predicate on the "activity_type" field.
func ActivityTypeLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldActivityType, v))
}

// ActivityTypeLTE applies the LTE predicate on the "activity_type" field.
func ActivityTypeLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldActivityType, v))
}

// ActivityTypeContains applies the Contains predicate on the "activity_type" field.
func ActivityTypeContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldActivityType, v))
}

// ActivityTypeHasPrefix applies the HasPrefix predicate on the "activity_type" field.
func ActivityTypeHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldActivityType, v))
}

// ActivityTypeHasSuffix applies the HasSuffix predicate on the "activity_type" field.
func ActivityTypeHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldActivityType, v))
}

// ActivityTypeEqualFold applies the EqualFold predicate on the "activity_type" field.
func ActivityTypeEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldActivityType, v))
}

// ActivityTypeContainsFold applies the ContainsFold predicate on the "activity_type" field.
func ActivityTypeContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldActivityType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldStatus, v))
}

// ImagePathEQ applies the EQ predicate on the "image_path" field.
func ImagePathEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldImagePath, v))
}

// ImagePathNEQ applies the NEQ predicate on the "image_path" field.
func ImagePathNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldImagePath, v))
}

// ImagePathIn applies the In predicate on the "image_path" field.
func ImagePathIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldImagePath, vs...))
}

// ImagePathNotIn applies the NotIn predicate on the "image_path" field.
func ImagePathNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldImagePath, vs...))
}

// ImagePathGT applies the GT predicate on the "image_path" field.
func ImagePathGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldImagePath, v))
}

// ImagePathGTE applies the GTE predicate on the "image_path" field.
func ImagePathGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldImagePath, v))
}

// ImagePathLT applies the LT predicate on the "image_path" field.
func ImagePathLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldImagePath, v))
}

// ImagePathLTE applies the LTE predicate on the "image_path" field.
func ImagePathLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldImagePath, v))
}

// ImagePathContains applies the Contains predicate on the "image_path" field.
func ImagePathContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldImagePath, v))
}

// ImagePathHasPrefix applies the HasPrefix predicate on the "image_path" field.
func ImagePathHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldImagePath, v))
}

// ImagePathHasSuffix applies the HasSuffix predicate on the "image_path" field.
func ImagePathHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldImagePath, v))
}

// ImagePathEqualFold applies the EqualFold predicate on the "image_path" field.
func ImagePathEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldImagePath, v))
}

// ImagePathContainsFold applies the ContainsFold predicate on the "image_path" field.
func ImagePathContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldImagePath, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldFinishedAt))
}

// RecognizedTextEQ applies the EQ predicate on the "recognized_text" field.
func RecognizedTextEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldRecognizedText, v))
}

// RecognizedTextNEQ applies the NEQ predicate on the "recognized_text" field.
func RecognizedTextNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldRecognizedText, v))
}

// RecognizedTextIn applies the In predicate on the "recognized_text" field.
func RecognizedTextIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldRecognizedText, vs...))
}

// RecognizedTextNotIn applies the NotIn predicate on the "recognized_text" field.
func RecognizedTextNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldRecognizedText, vs...))
}

// RecognizedTextGT applies the GT predicate on the "recognized_text" field.
func RecognizedTextGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldRecognizedText, v))
}

// RecognizedTextGTE applies the GTE predicate on the "recognized_text" field.
func RecognizedTextGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldRecognizedText, v))
}

// RecognizedTextLT applies the LT predicate on the "recognized_text" field.
func RecognizedTextLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldRecognizedText, v))
}

// RecognizedTextLTE applies the LTE predicate on the "recognized_text" field.
func RecognizedTextLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldRecognizedText, v))
}

// RecognizedTextContains applies the Contains predicate on the "recognized_text" field.
func RecognizedTextContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldRecognizedText, v))
}

// RecognizedTextHasPrefix applies the HasPrefix predicate on the "recognized_text" field.
func RecognizedTextHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldRecognizedText, v))
}

// RecognizedTextHasSuffix applies the HasSuffix predicate on the "recognized_text" field.
func RecognizedTextHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldRecognizedText, v))
}

// RecognizedTextIsNil applies the IsNil predicate on the "recognized_text" field.
func RecognizedTextIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldRecognizedText))
}

// RecognizedTextNotNil applies the NotNil predicate on the "recognized_text" field.
func RecognizedTextNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldRecognizedText))
}

// RecognizedTextEqualFold applies the EqualFold predicate on the "recognized_text" field.
func RecognizedTextEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldRecognizedText, v))
}

// RecognizedTextContainsFold applies the ContainsFold predicate on the "recognized_text" field.
func RecognizedTextContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldRecognizedText, v))
}

// OcrConfidenceEQ applies the EQ predicate on the "ocr_confidence" field.
func OcrConfidenceEQ(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldOcrConfidence, v))
}

// OcrConfidenceNEQ applies the NEQ predicate on the "ocr_confidence" field.
func OcrConfidenceNEQ(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldOcrConfidence, v))
}

// OcrConfidenceIn applies the In predicate on the "ocr_confidence" field.
func OcrConfidenceIn(vs ...float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldOcrConfidence, vs...))
}

// OcrConfidenceNotIn applies the NotIn predicate on the "ocr_confidence" field.
func OcrConfidenceNotIn(vs ...float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldOcrConfidence, vs...))
}

// OcrConfidenceGT applies the GT predicate on the "ocr_confidence" field.
func OcrConfidenceGT(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldOcrConfidence, v))
}

// OcrConfidenceGTE applies the GTE predicate on the "ocr_confidence" field.
func OcrConfidenceGTE(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldOcrConfidence, v))
}

// OcrConfidenceLT applies the LT predicate on the "ocr_confidence" field.
func OcrConfidenceLT(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldOcrConfidence, v))
}

// OcrConfidenceLTE applies the LTE predicate on the "ocr_confidence" field.
func OcrConfidenceLTE(v float32) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldOcrConfidence, v))
}

// OcrConfidenceIsNil applies the IsNil predicate on the "ocr_confidence" field.
func OcrConfidenceIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldOcrConfidence))
}

// OcrConfidenceNotNil applies the NotNil predicate on the "ocr_confidence" field.
func OcrConfidenceNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldOcrConfidence))
}

// ExtractedFieldsIsNil applies the IsNil predicate on the "extracted_fields" field.
func ExtractedFieldsIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldExtractedFields))
}

// ExtractedFieldsNotNil applies the NotNil predicate on the "extracted_fields" field.
func ExtractedFieldsNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldExtractedFields))
}

// DetectedCategoryEQ applies the EQ predicate on the "detected_category" field.
func DetectedCategoryEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldDetectedCategory, v))
}

// DetectedCategoryNEQ applies the NEQ predicate on the "detected_category" field.
func DetectedCategoryNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldDetectedCategory, v))
}

// DetectedCategoryIn applies the In predicate on the "detected_category" field.
func DetectedCategoryIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldDetectedCategory, vs...))
}

// DetectedCategoryNotIn applies the NotIn predicate on the "detected_category" field.
func DetectedCategoryNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldDetectedCategory, vs...))
}

// DetectedCategoryGT applies the GT predicate on the "detected_category" field.
func DetectedCategoryGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldDetectedCategory, v))
}

// DetectedCategoryGTE applies the GTE predicate on the "detected_category" field.
func DetectedCategoryGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldDetectedCategory, v))
}

// DetectedCategoryLT applies the LT predicate on the "detected_category" field.
func DetectedCategoryLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldDetectedCategory, v))
}

// DetectedCategoryLTE applies the LTE predicate on the "detected_category" field.
func DetectedCategoryLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldDetectedCategory, v))
}

// DetectedCategoryContains applies the Contains predicate on the "detected_category" field.
func DetectedCategoryContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldDetectedCategory, v))
}

// DetectedCategoryHasPrefix applies the HasPrefix predicate on the "detected_category" field.
func DetectedCategoryHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldDetectedCategory, v))
}

// DetectedCategoryHasSuffix applies the HasSuffix predicate on the "detected_category" field.
func DetectedCategoryHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldDetectedCategory, v))
}

// DetectedCategoryIsNil applies the IsNil predicate on the "detected_category" field.
func DetectedCategoryIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldDetectedCategory))
}

// DetectedCategoryNotNil applies the NotNil predicate on the "detected_category" field.
func DetectedCategoryNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldDetectedCategory))
}

// DetectedCategoryEqualFold applies the EqualFold predicate on the "detected_category" field.
func DetectedCategoryEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldDetectedCategory, v))
}

// DetectedCategoryContainsFold applies the ContainsFold predicate on the "detected_category" field.
func DetectedCategoryContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldDetectedCategory, v))
}

// KeywordsMatchedEQ applies the EQ predicate on the "keywords_matched" field.
func KeywordsMatchedEQ(v bool) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldKeywordsMatched, v))
}

// KeywordsMatchedNEQ applies the NEQ predicate on the "keywords_matched" field.
func KeywordsMatchedNEQ(v bool) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldKeywordsMatched, v))
}

// MissingFieldsIsNil applies the IsNil predicate on the "missing_fields" field.
func MissingFieldsIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldMissingFields))
}

// MissingFieldsNotNil applies the NotNil predicate on the "missing_fields" field.
func MissingFieldsNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldMissingFields))
}

// MemberChallengeIDEQ applies the EQ predicate on the "member_challenge_id" field.
func MemberChallengeIDEQ(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldMemberChallengeID, v))
}

// MemberChallengeIDNEQ applies the NEQ predicate on the "member_challenge_id" field.
func MemberChallengeIDNEQ(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldMemberChallengeID, v))
}

// MemberChallengeIDIn applies the In predicate on the "member_challenge_id" field.
func MemberChallengeIDIn(vs ...int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldMemberChallengeID, vs...))
}

// MemberChallengeIDNotIn applies the NotIn predicate on the "member_challenge_id" field.
func MemberChallengeIDNotIn(vs ...int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldMemberChallengeID, vs...))
}

// MemberChallengeIDGT applies the GT predicate on the "member_challenge_id" field.
func MemberChallengeIDGT(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldMemberChallengeID, v))
}

// MemberChallengeIDGTE applies the GTE predicate on the "member_challenge_id" field.
func MemberChallengeIDGTE(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldMemberChallengeID, v))
}

// MemberChallengeIDLT applies the LT predicate on the "member_challenge_id" field.
func MemberChallengeIDLT(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldMemberChallengeID, v))
}

// MemberChallengeIDLTE applies the LTE predicate on the "member_challenge_id" field.
func MemberChallengeIDLTE(v int) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldMemberChallengeID, v))
}

// MemberChallengeIDIsNil applies the IsNil predicate on the "member_challenge_id" field.
func MemberChallengeIDIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldMemberChallengeID))
}

// MemberChallengeIDNotNil applies the NotNil predicate on the "member_challenge_id" field.
func MemberChallengeIDNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldMemberChallengeID))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.VerificationJob {
	return predicate.VerificationJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasSubmissions applies the HasEdge predicate on the "submissions" edge.
func HasSubmissions() predicate.VerificationJob {
	return predicate.VerificationJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubmissionsTable, SubmissionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmissionsWith applies the HasEdge predicate on the "submissions" edge with a given conditions (other predicates).
func HasSubmissionsWith(preds ...predicate.Submission) predicate.VerificationJob {
	return predicate.VerificationJob(func(s *sql.Selector) {
		step := newSubmissionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VerificationJob) predicate.VerificationJob {
	return predicate.VerificationJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VerificationJob) predicate.VerificationJob {
	return predicate.VerificationJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VerificationJob) predicate.VerificationJob {
	return predicate.VerificationJob(sql.NotPredicates(p))
}
