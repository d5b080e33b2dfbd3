// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/greenmap-app/greenmap-verify/gen/ent/submission"
	"github.com/greenmap-app/greenmap-verify/gen/ent/verificationjob"
)

// VerificationJobCreate is the builder for creating a VerificationJob entity.
type VerificationJobCreate struct {
	config
	mutation *VerificationJobMutation
	hooks    []Hook
}

// SetMemberID sets the "member_id" field.
func (_c *VerificationJobCreate) SetMemberID(v string) *VerificationJobCreate {
	_c.mutation.SetMemberID(v)
	return _c
}

// SetNillableMemberID sets the "member_id" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableMemberID(v *string) *VerificationJobCreate {
	if v != nil {
		_c.SetMemberID(*v)
	}
	return _c
}

// SetActivityType sets the "activity_type" field.
func (_c *VerificationJobCreate) SetActivityType(v string) *VerificationJobCreate {
	_c.mutation.SetActivityType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *VerificationJobCreate) SetStatus(v string) *VerificationJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetImagePath sets the "image_path" field.
func (_c *VerificationJobCreate) SetImagePath(v string) *VerificationJobCreate {
	_c.mutation.SetImagePath(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *VerificationJobCreate) SetStartedAt(v time.Time) *VerificationJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableStartedAt(v *time.Time) *VerificationJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *VerificationJobCreate) SetFinishedAt(v time.Time) *VerificationJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableFinishedAt(v *time.Time) *VerificationJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetRecognizedText sets the "recognized_text" field.
func (_c *VerificationJobCreate) SetRecognizedText(v string) *VerificationJobCreate {
	_c.mutation.SetRecognizedText(v)
	return _c
}

// SetNillableRecognizedText sets the "recognized_text" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableRecognizedText(v *string) *VerificationJobCreate {
	if v != nil {
		_c.SetRecognizedText(*v)
	}
	return _c
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_c *VerificationJobCreate) SetOcrConfidence(v float32) *VerificationJobCreate {
	_c.mutation.SetOcrConfidence(v)
	return _c
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableOcrConfidence(v *float32) *VerificationJobCreate {
	if v != nil {
		_c.SetOcrConfidence(*v)
	}
	return _c
}

// SetExtractedFields sets the "extracted_fields" field.
func (_c *VerificationJobCreate) SetExtractedFields(v json.RawMessage) *VerificationJobCreate {
	_c.mutation.SetExtractedFields(v)
	return _c
}

// SetDetectedCategory sets the "detected_category" field.
func (_c *VerificationJobCreate) SetDetectedCategory(v string) *VerificationJobCreate {
	_c.mutation.SetDetectedCategory(v)
	return _c
}

// SetNillableDetectedCategory sets the "detected_category" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableDetectedCategory(v *string) *VerificationJobCreate {
	if v != nil {
		_c.SetDetectedCategory(*v)
	}
	return _c
}

// SetKeywordsMatched sets the "keywords_matched" field.
func (_c *VerificationJobCreate) SetKeywordsMatched(v bool) *VerificationJobCreate {
	_c.mutation.SetKeywordsMatched(v)
	return _c
}

// SetNillableKeywordsMatched sets the "keywords_matched" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableKeywordsMatched(v *bool) *VerificationJobCreate {
	if v != nil {
		_c.SetKeywordsMatched(*v)
	}
	return _c
}

// SetMissingFields sets the "missing_fields" field.
func (_c *VerificationJobCreate) SetMissingFields(v []string) *VerificationJobCreate {
	_c.mutation.SetMissingFields(v)
	return _c
}

// SetMemberChallengeID sets the "member_challenge_id" field.
func (_c *VerificationJobCreate) SetMemberChallengeID(v int) *VerificationJobCreate {
	_c.mutation.SetMemberChallengeID(v)
	return _c
}

// SetNillableMemberChallengeID sets the "member_challenge_id" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableMemberChallengeID(v *int) *VerificationJobCreate {
	if v != nil {
		_c.SetMemberChallengeID(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *VerificationJobCreate) SetErrorMessage(v string) *VerificationJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableErrorMessage(v *string) *VerificationJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VerificationJobCreate) SetID(v uuid.UUID) *VerificationJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VerificationJobCreate) SetNillableID(v *uuid.UUID) *VerificationJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_c *VerificationJobCreate) AddSubmissionIDs(ids ...uuid.UUID) *VerificationJobCreate {
	_c.mutation.AddSubmissionIDs(ids...)
	return _c
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_c *VerificationJobCreate) AddSubmissions(v ...*Submission) *VerificationJobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubmissionIDs(ids...)
}

// Mutation returns the VerificationJobMutation object of the builder.
func (_c *VerificationJobCreate) Mutation() *VerificationJobMutation {
	return _c.mutation
}

// Save creates the VerificationJob in the database.
func (_c *VerificationJobCreate) Save(ctx context.Context) (*VerificationJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerificationJobCreate) SaveX(ctx context.Context) *VerificationJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerificationJobCreate) defaults() {
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := verificationjob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.KeywordsMatched(); !ok {
		v := verificationjob.DefaultKeywordsMatched
		_c.mutation.SetKeywordsMatched(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := verificationjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerificationJobCreate) check() error {
	if _, ok := _c.mutation.ActivityType(); !ok {
		return &ValidationError{Name: "activity_type", err: errors.New(`ent: missing required field "VerificationJob.activity_type"`)}
	}
	if v, ok := _c.mutation.ActivityType(); ok {
		if err := verificationjob.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.activity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "VerificationJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := verificationjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ImagePath(); !ok {
		return &ValidationError{Name: "image_path", err: errors.New(`ent: missing required field "VerificationJob.image_path"`)}
	}
	if v, ok := _c.mutation.ImagePath(); ok {
		if err := verificationjob.ImagePathValidator(v); err != nil {
			return &ValidationError{Name: "image_path", err: fmt.Errorf(`ent: validator failed for field "VerificationJob.image_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "VerificationJob.started_at"`)}
	}
	if _, ok := _c.mutation.KeywordsMatched(); !ok {
		return &ValidationError{Name: "keywords_matched", err: errors.New(`ent: missing required field "VerificationJob.keywords_matched"`)}
	}
	return nil
}

func (_c *VerificationJobCreate) sqlSave(ctx context.Context) (*VerificationJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VerificationJobCreate) createSpec() (*VerificationJob, *sqlgraph.CreateSpec) {
	var (
		_node = &VerificationJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verificationjob.Table, sqlgraph.NewFieldSpec(verificationjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.MemberID(); ok {
		_spec.SetField(verificationjob.FieldMemberID, field.TypeString, value)
		_node.MemberID = &value
	}
	if value, ok := _c.mutation.ActivityType(); ok {
		_spec.SetField(verificationjob.FieldActivityType, field.TypeString, value)
		_node.ActivityType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(verificationjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ImagePath(); ok {
		_spec.SetField(verificationjob.FieldImagePath, field.TypeString, value)
		_node.ImagePath = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(verificationjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(verificationjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.RecognizedText(); ok {
		_spec.SetField(verificationjob.FieldRecognizedText, field.TypeString, value)
		_node.RecognizedText = &value
	}
	if value, ok := _c.mutation.OcrConfidence(); ok {
		_spec.SetField(verificationjob.FieldOcrConfidence, field.TypeFloat32, value)
		_node.OcrConfidence = &value
	}
	if value, ok := _c.mutation.ExtractedFields(); ok {
		_spec.SetField(verificationjob.FieldExtractedFields, field.TypeJSON, value)
		_node.ExtractedFields = value
	}
	if value, ok := _c.mutation.DetectedCategory(); ok {
		_spec.SetField(verificationjob.FieldDetectedCategory, field.TypeString, value)
		_node.DetectedCategory = &value
	}
	if value, ok := _c.mutation.KeywordsMatched(); ok {
		_spec.SetField(verificationjob.FieldKeywordsMatched, field.TypeBool, value)
		_node.KeywordsMatched = value
	}
	if value, ok := _c.mutation.MissingFields(); ok {
		_spec.SetField(verificationjob.FieldMissingFields, field.TypeJSON, value)
		_node.MissingFields = value
	}
	if value, ok := _c.mutation.MemberChallengeID(); ok {
		_spec.SetField(verificationjob.FieldMemberChallengeID, field.TypeInt, value)
		_node.MemberChallengeID = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(verificationjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.SubmissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VerificationJobCreateBulk is the builder for creating many VerificationJob entities in bulk.
type VerificationJobCreateBulk struct {
	config
	err      error
	builders []*VerificationJobCreate
}

// Save creates the VerificationJob entities in the database.
func (_c *VerificationJobCreateBulk) Save(ctx context.Context) ([]*VerificationJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VerificationJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerificationJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *VerificationJobCreateBulk) SaveX(ctx context.Context) []*VerificationJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
