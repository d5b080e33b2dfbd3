// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/greenmap-app/greenmap-verify/gen/ent/predicate"
	"github.com/greenmap-app/greenmap-verify/gen/ent/submission"
	"github.com/greenmap-app/greenmap-verify/gen/ent/verificationjob"
)

// VerificationJobUpdate is the builder for updating VerificationJob entities.
type VerificationJobUpdate struct {
	config
	hooks    []Hook
	mutation *VerificationJobMutation
}

// Where appends a list predicates to the VerificationJobUpdate builder.
func (_u *VerificationJobUpdate) Where(ps ...predicate.VerificationJob) *VerificationJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMemberID sets the "member_id" field.
func (_u *VerificationJobUpdate) SetMemberID(v string) *VerificationJobUpdate {
	_u.mutation.SetMemberID(v)
	return _u
}

// SetNillableMemberID sets the "member_id" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableMemberID(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetMemberID(*v)
	}
	return _u
}

// ClearMemberID clears the value of the "member_id" field.
func (_u *VerificationJobUpdate) ClearMemberID() *VerificationJobUpdate {
	_u.mutation.ClearMemberID()
	return _u
}

// SetActivityType sets the "activity_type" field.
func (_u *VerificationJobUpdate) SetActivityType(v string) *VerificationJobUpdate {
	_u.mutation.SetActivityType(v)
	return _u
}

// SetNillableActivityType sets the "activity_type" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableActivityType(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetActivityType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *VerificationJobUpdate) SetStatus(v string) *VerificationJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableStatus(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetImagePath sets the "image_path" field.
func (_u *VerificationJobUpdate) SetImagePath(v string) *VerificationJobUpdate {
	_u.mutation.SetImagePath(v)
	return _u
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableImagePath(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetImagePath(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *VerificationJobUpdate) SetStartedAt(v time.Time) *VerificationJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableStartedAt(v *time.Time) *VerificationJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *VerificationJobUpdate) SetFinishedAt(v time.Time) *VerificationJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableFinishedAt(v *time.Time) *VerificationJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *VerificationJobUpdate) ClearFinishedAt() *VerificationJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetRecognizedText sets the "recognized_text" field.
func (_u *VerificationJobUpdate) SetRecognizedText(v string) *VerificationJobUpdate {
	_u.mutation.SetRecognizedText(v)
	return _u
}

// SetNillableRecognizedText sets the "recognized_text" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableRecognizedText(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetRecognizedText(*v)
	}
	return _u
}

// ClearRecognizedText clears the value of the "recognized_text" field.
func (_u *VerificationJobUpdate) ClearRecognizedText() *VerificationJobUpdate {
	_u.mutation.ClearRecognizedText()
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *VerificationJobUpdate) SetOcrConfidence(v float32) *VerificationJobUpdate {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableOcrConfidence(v *float32) *VerificationJobUpdate {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *VerificationJobUpdate) AddOcrConfidence(v float32) *VerificationJobUpdate {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *VerificationJobUpdate) ClearOcrConfidence() *VerificationJobUpdate {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetExtractedFields sets the "extracted_fields" field.
func (_u *VerificationJobUpdate) SetExtractedFields(v json.RawMessage) *VerificationJobUpdate {
	_u.mutation.SetExtractedFields(v)
	return _u
}

// AppendExtractedFields appends value to the "extracted_fields" field.
func (_u *VerificationJobUpdate) AppendExtractedFields(v json.RawMessage) *VerificationJobUpdate {
	_u.mutation.AppendExtractedFields(v)
	return _u
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (_u *VerificationJobUpdate) ClearExtractedFields() *VerificationJobUpdate {
	_u.mutation.ClearExtractedFields()
	return _u
}

// SetDetectedCategory sets the "detected_category" field.
func (_u *VerificationJobUpdate) SetDetectedCategory(v string) *VerificationJobUpdate {
	_u.mutation.SetDetectedCategory(v)
	return _u
}

// SetNillableDetectedCategory sets the "detected_category" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableDetectedCategory(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetDetectedCategory(*v)
	}
	return _u
}

// ClearDetectedCategory clears the value of the "detected_category" field.
func (_u *VerificationJobUpdate) ClearDetectedCategory() *VerificationJobUpdate {
	_u.mutation.ClearDetectedCategory()
	return _u
}

// SetKeywordsMatched sets the "keywords_matched" field.
func (_u *VerificationJobUpdate) SetKeywordsMatched(v bool) *VerificationJobUpdate {
	_u.mutation.SetKeywordsMatched(v)
	return _u
}

// SetNillableKeywordsMatched sets the "keywords_matched" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableKeywordsMatched(v *bool) *VerificationJobUpdate {
	if v != nil {
		_u.SetKeywordsMatched(*v)
	}
	return _u
}

// SetMissingFields sets the "missing_fields" field.
func (_u *VerificationJobUpdate) SetMissingFields(v []string) *VerificationJobUpdate {
	_u.mutation.SetMissingFields(v)
	return _u
}

// AppendMissingFields appends value to the "missing_fields" field.
func (_u *VerificationJobUpdate) AppendMissingFields(v []string) *VerificationJobUpdate {
	_u.mutation.AppendMissingFields(v)
	return _u
}

// ClearMissingFields clears the value of the "missing_fields" field.
func (_u *VerificationJobUpdate) ClearMissingFields() *VerificationJobUpdate {
	_u.mutation.ClearMissingFields()
	return _u
}

// SetMemberChallengeID sets the "member_challenge_id" field.
func (_u *VerificationJobUpdate) SetMemberChallengeID(v int) *VerificationJobUpdate {
	_u.mutation.ResetMemberChallengeID()
	_u.mutation.SetMemberChallengeID(v)
	return _u
}

// SetNillableMemberChallengeID sets the "member_challenge_id" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableMemberChallengeID(v *int) *VerificationJobUpdate {
	if v != nil {
		_u.SetMemberChallengeID(*v)
	}
	return _u
}

// AddMemberChallengeID adds value to the "member_challenge_id" field.
func (_u *VerificationJobUpdate) AddMemberChallengeID(v int) *VerificationJobUpdate {
	_u.mutation.AddMemberChallengeID(v)
	return _u
}

// ClearMemberChallengeID clears the value of the "member_challenge_id" field.
func (_u *VerificationJobUpdate) ClearMemberChallengeID() *VerificationJobUpdate {
	_u.mutation.ClearMemberChallengeID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *VerificationJobUpdate) SetErrorMessage(v string) *VerificationJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *VerificationJobUpdate) SetNillableErrorMessage(v *string) *VerificationJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *VerificationJobUpdate) ClearErrorMessage() *VerificationJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_u *VerificationJobUpdate) AddSubmissionIDs(ids ...uuid.UUID) *VerificationJobUpdate {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_u *VerificationJobUpdate) AddSubmissions(v ...*Submission) *VerificationJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// Mutation returns the VerificationJobMutation object of the builder.
func (_u *VerificationJobUpdate) Mutation() *VerificationJobMutation {
	return _u.mutation
}

// ClearSubmissions clears all "submissions" edges to the Submission entity.
func (_u *VerificationJobUpdate) ClearSubmissions() *VerificationJobUpdate {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to Submission entities by IDs.
func (_u *VerificationJobUpdate) RemoveSubmissionIDs(ids ...uuid.UUID) *VerificationJobUpdate {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to Submission entities.
func (_u *VerificationJobUpdate) RemoveSubmissions(v ...*Submission) *VerificationJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerificationJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerificationJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationJobUpdate) check() error {
	if v, ok := _u.mutation.ActivityType(); ok {
		if err := verificationjob.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.activity_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := verificationjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImagePath(); ok {
		if err := verificationjob.ImagePathValidator(v); err != nil {
			return &ValidationError{Name: "image_path", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.image_path": %w`, err)}
		}
	}
	return nil
}

func (_u *VerificationJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationjob.Table, verificationjob.Columns, sqlgraph.NewFieldSpec(verificationjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MemberID(); ok {
		_spec.SetField(verificationjob.FieldMemberID, field.TypeString, value)
	}
	if _u.mutation.MemberIDCleared() {
		_spec.ClearField(verificationjob.FieldMemberID, field.TypeString)
	}
	if value, ok := _u.mutation.ActivityType(); ok {
		_spec.SetField(verificationjob.FieldActivityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(verificationjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImagePath(); ok {
		_spec.SetField(verificationjob.FieldImagePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(verificationjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(verificationjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(verificationjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RecognizedText(); ok {
		_spec.SetField(verificationjob.FieldRecognizedText, field.TypeString, value)
	}
	if _u.mutation.RecognizedTextCleared() {
		_spec.ClearField(verificationjob.FieldRecognizedText, field.TypeString)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(verificationjob.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(verificationjob.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(verificationjob.FieldOcrConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ExtractedFields(); ok {
		_spec.SetField(verificationjob.FieldExtractedFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationjob.FieldExtractedFields, value)
		})
	}
	if _u.mutation.ExtractedFieldsCleared() {
		_spec.ClearField(verificationjob.FieldExtractedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.DetectedCategory(); ok {
		_spec.SetField(verificationjob.FieldDetectedCategory, field.TypeString, value)
	}
	if _u.mutation.DetectedCategoryCleared() {
		_spec.ClearField(verificationjob.FieldDetectedCategory, field.TypeString)
	}
	if value, ok := _u.mutation.KeywordsMatched(); ok {
		_spec.SetField(verificationjob.FieldKeywordsMatched, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MissingFields(); ok {
		_spec.SetField(verificationjob.FieldMissingFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMissingFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationjob.FieldMissingFields, value)
		})
	}
	if _u.mutation.MissingFieldsCleared() {
		_spec.ClearField(verificationjob.FieldMissingFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.MemberChallengeID(); ok {
		_spec.SetField(verificationjob.FieldMemberChallengeID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemberChallengeID(); ok {
		_spec.AddField(verificationjob.FieldMemberChallengeID, field.TypeInt, value)
	}
	if _u.mutation.MemberChallengeIDCleared() {
		_spec.ClearField(verificationjob.FieldMemberChallengeID, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(verificationjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(verificationjob.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   verificationjob.SubmissionsTable,
			Columns: []string{verificationjob.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   verificationjob.SubmissionsTable,
			Columns: []string{verificationjob.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   verificationjob.SubmissionsTable,
			Columns: []string{verificationjob.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerificationJobUpdateOne is the builder for updating a single VerificationJob entity.
type VerificationJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerificationJobMutation
}

// SetMemberID sets the "member_id" field.
func (_u *VerificationJobUpdateOne) SetMemberID(v string) *VerificationJobUpdateOne {
	_u.mutation.SetMemberID(v)
	return _u
}

// SetNillableMemberID sets the "member_id" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableMemberID(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetMemberID(*v)
	}
	return _u
}

// ClearMemberID clears the value of the "member_id" field.
func (_u *VerificationJobUpdateOne) ClearMemberID() *VerificationJobUpdateOne {
	_u.mutation.ClearMemberID()
	return _u
}

// SetActivityType sets the "activity_type" field.
func (_u *VerificationJobUpdateOne) SetActivityType(v string) *VerificationJobUpdateOne {
	_u.mutation.SetActivityType(v)
	return _u
}

// SetNillableActivityType sets the "activity_type" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableActivityType(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetActivityType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *VerificationJobUpdateOne) SetStatus(v string) *VerificationJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableStatus(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetImagePath sets the "image_path" field.
func (_u *VerificationJobUpdateOne) SetImagePath(v string) *VerificationJobUpdateOne {
	_u.mutation.SetImagePath(v)
	return _u
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableImagePath(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetImagePath(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *VerificationJobUpdateOne) SetStartedAt(v time.Time) *VerificationJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableStartedAt(v *time.Time) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *VerificationJobUpdateOne) SetFinishedAt(v time.Time) *VerificationJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableFinishedAt(v *time.Time) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *VerificationJobUpdateOne) ClearFinishedAt() *VerificationJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetRecognizedText sets the "recognized_text" field.
func (_u *VerificationJobUpdateOne) SetRecognizedText(v string) *VerificationJobUpdateOne {
	_u.mutation.SetRecognizedText(v)
	return _u
}

// SetNillableRecognizedText sets the "recognized_text" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableRecognizedText(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetRecognizedText(*v)
	}
	return _u
}

// ClearRecognizedText clears the value of the "recognized_text" field.
func (_u *VerificationJobUpdateOne) ClearRecognizedText() *VerificationJobUpdateOne {
	_u.mutation.ClearRecognizedText()
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *VerificationJobUpdateOne) SetOcrConfidence(v float32) *VerificationJobUpdateOne {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableOcrConfidence(v *float32) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *VerificationJobUpdateOne) AddOcrConfidence(v float32) *VerificationJobUpdateOne {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *VerificationJobUpdateOne) ClearOcrConfidence() *VerificationJobUpdateOne {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetExtractedFields sets the "extracted_fields" field.
func (_u *VerificationJobUpdateOne) SetExtractedFields(v json.RawMessage) *VerificationJobUpdateOne {
	_u.mutation.SetExtractedFields(v)
	return _u
}

// AppendExtractedFields appends value to the "extracted_fields" field.
func (_u *VerificationJobUpdateOne) AppendExtractedFields(v json.RawMessage) *VerificationJobUpdateOne {
	_u.mutation.AppendExtractedFields(v)
	return _u
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (_u *VerificationJobUpdateOne) ClearExtractedFields() *VerificationJobUpdateOne {
	_u.mutation.ClearExtractedFields()
	return _u
}

// SetDetectedCategory sets the "detected_category" field.
func (_u *VerificationJobUpdateOne) SetDetectedCategory(v string) *VerificationJobUpdateOne {
	_u.mutation.SetDetectedCategory(v)
	return _u
}

// SetNillableDetectedCategory sets the "detected_category" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableDetectedCategory(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetDetectedCategory(*v)
	}
	return _u
}

// ClearDetectedCategory clears the value of the "detected_category" field.
func (_u *VerificationJobUpdateOne) ClearDetectedCategory() *VerificationJobUpdateOne {
	_u.mutation.ClearDetectedCategory()
	return _u
}

// SetKeywordsMatched sets the "keywords_matched" field.
func (_u *VerificationJobUpdateOne) SetKeywordsMatched(v bool) *VerificationJobUpdateOne {
	_u.mutation.SetKeywordsMatched(v)
	return _u
}

// SetNillableKeywordsMatched sets the "keywords_matched" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableKeywordsMatched(v *bool) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetKeywordsMatched(*v)
	}
	return _u
}

// SetMissingFields sets the "missing_fields" field.
func (_u *VerificationJobUpdateOne) SetMissingFields(v []string) *VerificationJobUpdateOne {
	_u.mutation.SetMissingFields(v)
	return _u
}

// AppendMissingFields appends value to the "missing_fields" field.
func (_u *VerificationJobUpdateOne) AppendMissingFields(v []string) *VerificationJobUpdateOne {
	_u.mutation.AppendMissingFields(v)
	return _u
}

// ClearMissingFields clears the value of the "missing_fields" field.
func (_u *VerificationJobUpdateOne) ClearMissingFields() *VerificationJobUpdateOne {
	_u.mutation.ClearMissingFields()
	return _u
}

// SetMemberChallengeID sets the "member_challenge_id" field.
func (_u *VerificationJobUpdateOne) SetMemberChallengeID(v int) *VerificationJobUpdateOne {
	_u.mutation.ResetMemberChallengeID()
	_u.mutation.SetMemberChallengeID(v)
	return _u
}

// SetNillableMemberChallengeID sets the "member_challenge_id" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableMemberChallengeID(v *int) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetMemberChallengeID(*v)
	}
	return _u
}

// AddMemberChallengeID adds value to the "member_challenge_id" field.
func (_u *VerificationJobUpdateOne) AddMemberChallengeID(v int) *VerificationJobUpdateOne {
	_u.mutation.AddMemberChallengeID(v)
	return _u
}

// ClearMemberChallengeID clears the value of the "member_challenge_id" field.
func (_u *VerificationJobUpdateOne) ClearMemberChallengeID() *VerificationJobUpdateOne {
	_u.mutation.ClearMemberChallengeID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *VerificationJobUpdateOne) SetErrorMessage(v string) *VerificationJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *VerificationJobUpdateOne) SetNillableErrorMessage(v *string) *VerificationJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *VerificationJobUpdateOne) ClearErrorMessage() *VerificationJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_u *VerificationJobUpdateOne) AddSubmissionIDs(ids ...uuid.UUID) *VerificationJobUpdateOne {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_u *VerificationJobUpdateOne) AddSubmissions(v ...*Submission) *VerificationJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// Mutation returns the VerificationJobMutation object of the builder.
func (_u *VerificationJobUpdateOne) Mutation() *VerificationJobMutation {
	return _u.mutation
}

// ClearSubmissions clears all "submissions" edges to the Submission entity.
func (_u *VerificationJobUpdateOne) ClearSubmissions() *VerificationJobUpdateOne {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to Submission entities by IDs.
func (_u *VerificationJobUpdateOne) RemoveSubmissionIDs(ids ...uuid.UUID) *VerificationJobUpdateOne {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to Submission entities.
func (_u *VerificationJobUpdateOne) RemoveSubmissions(v ...*Submission) *VerificationJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// Where appends a list predicates to the VerificationJobUpdate builder.
func (_u *VerificationJobUpdateOne) Where(ps ...predicate.VerificationJob) *VerificationJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerificationJobUpdateOne) Select(field string, fields ...string) *VerificationJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VerificationJob entity.
func (_u *VerificationJobUpdateOne) Save(ctx context.Context) (*VerificationJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationJobUpdateOne) SaveX(ctx context.Context) *VerificationJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerificationJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationJobUpdateOne) check() error {
	if v, ok := _u.mutation.ActivityType(); ok {
		if err := verificationjob.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.activity_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := verificationjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImagePath(); ok {
		if err := verificationjob.ImagePathValidator(v); err != nil {
			return &ValidationError{Name: "image_path", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.image_path": %w`, err)}
		}
	}
	return nil
}

func (_u *VerificationJobUpdateOne) sqlSave(ctx context.Context) (_node *VerificationJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationjob.Table, verificationjob.Columns, sqlgraph.NewFieldSpec(verificationjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VerificationJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verificationjob.FieldID)
		for _, f := range fields {
			if !verificationjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verificationjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MemberID(); ok {
		_spec.SetField(verificationjob.FieldMemberID, field.TypeString, value)
	}
	if _u.mutation.MemberIDCleared() {
		_spec.ClearField(verificationjob.FieldMemberID, field.TypeString)
	}
	if value, ok := _u.mutation.ActivityType(); ok {
		_spec.SetField(verificationjob.FieldActivityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(verificationjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImagePath(); ok {
		_spec.SetField(verificationjob.FieldImagePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(verificationjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(verificationjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(verificationjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RecognizedText(); ok {
		_spec.SetField(verificationjob.FieldRecognizedText, field.TypeString, value)
	}
	if _u.mutation.RecognizedTextCleared() {
		_spec.ClearField(verificationjob.FieldRecognizedText, field.TypeString)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(verificationjob.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(verificationjob.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(verificationjob.FieldOcrConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ExtractedFields(); ok {
		_spec.SetField(verificationjob.FieldExtractedFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationjob.FieldExtractedFields, value)
		})
	}
	if _u.mutation.ExtractedFieldsCleared() {
		_spec.ClearField(verificationjob.FieldExtractedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.DetectedCategory(); ok {
		_spec.SetField(verificationjob.FieldDetectedCategory, field.TypeString, value)
	}
	if _u.mutation.DetectedCategoryCleared() {
		_spec.ClearField(verificationjob.FieldDetectedCategory, field.TypeString)
	}
	if value, ok := _u.mutation.KeywordsMatched(); ok {
		_spec.SetField(verificationjob.FieldKeywordsMatched, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MissingFields(); ok {
		_spec.SetField(verificationjob.FieldMissingFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMissingFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, verificationjob.FieldMissingFields, value)
		})
	}
	if _u.mutation.MissingFieldsCleared() {
		_spec.ClearField(verificationjob.FieldMissingFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.MemberChallengeID(); ok {
		_spec.SetField(verificationjob.FieldMemberChallengeID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemberChallengeID(); ok {
		_spec.AddField(verificationjob.FieldMemberChallengeID, field.TypeInt, value)
	}
	if _u.mutation.MemberChallengeIDCleared() {
		_spec.ClearField(verificationjob.FieldMemberChallengeID, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(verificationjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(verificationjob.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   verificationjob.SubmissionsTable,
			Columns: []string{verificationjob.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   verificationjob.SubmissionsTable,
			Columns: []string{verificationjob.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   verificationjob.SubmissionsTable,
			Columns: []string{verificationjob.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &VerificationJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
