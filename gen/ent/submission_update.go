// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/greenmap-app/greenmap-verify/gen/ent/predicate"
	"github.com/greenmap-app/greenmap-verify/gen/ent/submission"
	"github.com/greenmap-app/greenmap-verify/gen/ent/verificationjob"
)

// SubmissionUpdate is the builder for updating Submission entities.
type SubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionMutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdate) Where(ps ...predicate.Submission) *SubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *SubmissionUpdate) SetJobID(v uuid.UUID) *SubmissionUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableJobID(v *uuid.UUID) *SubmissionUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetEndpoint sets the "endpoint" field.
func (_u *SubmissionUpdate) SetEndpoint(v string) *SubmissionUpdate {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableEndpoint(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *SubmissionUpdate) SetPayload(v json.RawMessage) *SubmissionUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *SubmissionUpdate) AppendPayload(v json.RawMessage) *SubmissionUpdate {
	_u.mutation.AppendPayload(v)
	return _u
}

// SetHTTPStatus sets the "http_status" field.
func (_u *SubmissionUpdate) SetHTTPStatus(v int) *SubmissionUpdate {
	_u.mutation.ResetHTTPStatus()
	_u.mutation.SetHTTPStatus(v)
	return _u
}

// SetNillableHTTPStatus sets the "http_status" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableHTTPStatus(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetHTTPStatus(*v)
	}
	return _u
}

// AddHTTPStatus adds value to the "http_status" field.
func (_u *SubmissionUpdate) AddHTTPStatus(v int) *SubmissionUpdate {
	_u.mutation.AddHTTPStatus(v)
	return _u
}

// SetDuplicate sets the "duplicate" field.
func (_u *SubmissionUpdate) SetDuplicate(v bool) *SubmissionUpdate {
	_u.mutation.SetDuplicate(v)
	return _u
}

// SetNillableDuplicate sets the "duplicate" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableDuplicate(v *bool) *SubmissionUpdate {
	if v != nil {
		_u.SetDuplicate(*v)
	}
	return _u
}

// SetResponseMessage sets the "response_message" field.
func (_u *SubmissionUpdate) SetResponseMessage(v string) *SubmissionUpdate {
	_u.mutation.SetResponseMessage(v)
	return _u
}

// SetNillableResponseMessage sets the "response_message" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableResponseMessage(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetResponseMessage(*v)
	}
	return _u
}

// ClearResponseMessage clears the value of the "response_message" field.
func (_u *SubmissionUpdate) ClearResponseMessage() *SubmissionUpdate {
	_u.mutation.ClearResponseMessage()
	return _u
}

// SetJob sets the "job" edge to the VerificationJob entity.
func (_u *SubmissionUpdate) SetJob(v *VerificationJob) *SubmissionUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdate) Mutation() *SubmissionMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the VerificationJob entity.
func (_u *SubmissionUpdate) ClearJob() *SubmissionUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdate) check() error {
	if v, ok := _u.mutation.Endpoint(); ok {
		if err := submission.EndpointValidator(v); err != nil {
			return &ValidationError{Name: "endpoint", err: fmt.Errorf(`ent: validator failed for field "Submission.endpoint": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.job"`)
	}
	return nil
}

func (_u *SubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(submission.FieldEndpoint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(submission.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submission.FieldPayload, value)
		})
	}
	if value, ok := _u.mutation.HTTPStatus(); ok {
		_spec.SetField(submission.FieldHTTPStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHTTPStatus(); ok {
		_spec.AddField(submission.FieldHTTPStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Duplicate(); ok {
		_spec.SetField(submission.FieldDuplicate, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseMessage(); ok {
		_spec.SetField(submission.FieldResponseMessage, field.TypeString, value)
	}
	if _u.mutation.ResponseMessageCleared() {
		_spec.ClearField(submission.FieldResponseMessage, field.TypeString)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.JobTable,
			Columns: []string{submission.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.JobTable,
			Columns: []string{submission.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionUpdateOne is the builder for updating a single Submission entity.
type SubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionMutation
}

// SetJobID sets the "job_id" field.
func (_u *SubmissionUpdateOne) SetJobID(v uuid.UUID) *SubmissionUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableJobID(v *uuid.UUID) *SubmissionUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetEndpoint sets the "endpoint" field.
func (_u *SubmissionUpdateOne) SetEndpoint(v string) *SubmissionUpdateOne {
	_u.mutation.SetEndpoint(v)
	return _u
}

// SetNillableEndpoint sets the "endpoint" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableEndpoint(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetEndpoint(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *SubmissionUpdateOne) SetPayload(v json.RawMessage) *SubmissionUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *SubmissionUpdateOne) AppendPayload(v json.RawMessage) *SubmissionUpdateOne {
	_u.mutation.AppendPayload(v)
	return _u
}

// SetHTTPStatus sets the "http_status" field.
func (_u *SubmissionUpdateOne) SetHTTPStatus(v int) *SubmissionUpdateOne {
	_u.mutation.ResetHTTPStatus()
	_u.mutation.SetHTTPStatus(v)
	return _u
}

// SetNillableHTTPStatus sets the "http_status" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableHTTPStatus(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetHTTPStatus(*v)
	}
	return _u
}

// AddHTTPStatus adds value to the "http_status" field.
func (_u *SubmissionUpdateOne) AddHTTPStatus(v int) *SubmissionUpdateOne {
	_u.mutation.AddHTTPStatus(v)
	return _u
}

// SetDuplicate sets the "duplicate" field.
func (_u *SubmissionUpdateOne) SetDuplicate(v bool) *SubmissionUpdateOne {
	_u.mutation.SetDuplicate(v)
	return _u
}

// SetNillableDuplicate sets the "duplicate" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableDuplicate(v *bool) *SubmissionUpdateOne {
	if v != nil {
		_u.SetDuplicate(*v)
	}
	return _u
}

// SetResponseMessage sets the "response_message" field.
func (_u *SubmissionUpdateOne) SetResponseMessage(v string) *SubmissionUpdateOne {
	_u.mutation.SetResponseMessage(v)
	return _u
}

// SetNillableResponseMessage sets the "response_message" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableResponseMessage(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetResponseMessage(*v)
	}
	return _u
}

// ClearResponseMessage clears the value of the "response_message" field.
func (_u *SubmissionUpdateOne) ClearResponseMessage() *SubmissionUpdateOne {
	_u.mutation.ClearResponseMessage()
	return _u
}

// SetJob sets the "job" edge to the VerificationJob entity.
func (_u *SubmissionUpdateOne) SetJob(v *VerificationJob) *SubmissionUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdateOne) Mutation() *SubmissionMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the VerificationJob entity.
func (_u *SubmissionUpdateOne) ClearJob() *SubmissionUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdateOne) Where(ps ...predicate.Submission) *SubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionUpdateOne) Select(field string, fields ...string) *SubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Submission entity.
func (_u *SubmissionUpdateOne) Save(ctx context.Context) (*Submission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdateOne) SaveX(ctx context.Context) *Submission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdateOne) check() error {
	if v, ok := _u.mutation.Endpoint(); ok {
		if err := submission.EndpointValidator(v); err != nil {
			return &ValidationError{Name: "endpoint", err: fmt.Errorf(`ent: validator failed for field "Submission.endpoint": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.job"`)
	}
	return nil
}

func (_u *SubmissionUpdateOne) sqlSave(ctx context.Context) (_node *Submission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Submission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submission.FieldID)
		for _, f := range fields {
			if !submission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submission.FieldID {
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
	if value, ok := _u.mutation.Endpoint(); ok {
		_spec.SetField(submission.FieldEndpoint, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(submission.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submission.FieldPayload, value)
		})
	}
	if value, ok := _u.mutation.HTTPStatus(); ok {
		_spec.SetField(submission.FieldHTTPStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHTTPStatus(); ok {
		_spec.AddField(submission.FieldHTTPStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Duplicate(); ok {
		_spec.SetField(submission.FieldDuplicate, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseMessage(); ok {
		_spec.SetField(submission.FieldResponseMessage, field.TypeString, value)
	}
	if _u.mutation.ResponseMessageCleared() {
		_spec.ClearField(submission.FieldResponseMessage, field.TypeString)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.JobTable,
			Columns: []string{submission.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.JobTable,
			Columns: []string{submission.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Submission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
