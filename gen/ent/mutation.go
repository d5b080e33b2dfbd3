// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/greenmap-app/greenmap-verify/gen/ent/predicate"
	"github.com/greenmap-app/greenmap-verify/gen/ent/submission"
	"github.com/greenmap-app/greenmap-verify/gen/ent/verificationjob"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeSubmission      = "Submission"
	TypeVerificationJob = "VerificationJob"
)

// SubmissionMutation represents an operation that mutates the Submission nodes in the graph.
type SubmissionMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	endpoint         *string
	payload          *json.RawMessage
	appendpayload    json.RawMessage
	http_status      *int
	addhttp_status   *int
	duplicate        *bool
	response_message *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	job              *uuid.UUID
	clearedjob       bool
	done             bool
	oldValue         func(context.Context) (*Submission, error)
	predicates       []predicate.Submission
}

var _ ent.Mutation = (*SubmissionMutation)(nil)

// submissionOption allows management of the mutation configuration using functional options.
type submissionOption func(*SubmissionMutation)

// newSubmissionMutation creates new mutation for the Submission entity.
func newSubmissionMutation(c config, op Op, opts ...submissionOption) *SubmissionMutation {
	m := &SubmissionMutation{
		config:        c,
		op:            op,
		typ:           TypeSubmission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubmissionID sets the ID field of the mutation.
func withSubmissionID(id uuid.UUID) submissionOption {
	return func(m *SubmissionMutation) {
		var (
			err   error
			once  sync.Once
			value *Submission
		)
		m.oldValue = func(ctx context.Context) (*Submission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Submission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubmission sets the old Submission of the mutation.
func withSubmission(node *Submission) submissionOption {
	return func(m *SubmissionMutation) {
		m.oldValue = func(context.Context) (*Submission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubmissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubmissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Submission entities.
func (m *SubmissionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubmissionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubmissionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Submission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *SubmissionMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *SubmissionMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *SubmissionMutation) ResetJobID() {
	m.job = nil
}

// SetEndpoint sets the "endpoint" field.
func (m *SubmissionMutation) SetEndpoint(s string) {
	m.endpoint = &s
}

// Endpoint returns the value of the "endpoint" field in the mutation.
func (m *SubmissionMutation) Endpoint() (r string, exists bool) {
	v := m.endpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpoint returns the old "endpoint" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldEndpoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpoint: %w", err)
	}
	return oldValue.Endpoint, nil
}

// ResetEndpoint resets all changes to the "endpoint" field.
func (m *SubmissionMutation) ResetEndpoint() {
	m.endpoint = nil
}

// SetPayload sets the "payload" field.
func (m *SubmissionMutation) SetPayload(jm json.RawMessage) {
	m.payload = &jm
	m.appendpayload = nil
}

// Payload returns the value of the "payload" field in the mutation.
func (m *SubmissionMutation) Payload() (r json.RawMessage, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldPayload(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// AppendPayload adds jm to the "payload" field.
func (m *SubmissionMutation) AppendPayload(jm json.RawMessage) {
	m.appendpayload = append(m.appendpayload, jm...)
}

// AppendedPayload returns the list of values that were appended to the "payload" field in this mutation.
func (m *SubmissionMutation) AppendedPayload() (json.RawMessage, bool) {
	if len(m.appendpayload) == 0 {
		return nil, false
	}
	return m.appendpayload, true
}

// ResetPayload resets all changes to the "payload" field.
func (m *SubmissionMutation) ResetPayload() {
	m.payload = nil
	m.appendpayload = nil
}

// SetHTTPStatus sets the "http_status" field.
func (m *SubmissionMutation) SetHTTPStatus(i int) {
	m.http_status = &i
	m.addhttp_status = nil
}

// HTTPStatus returns the value of the "http_status" field in the mutation.
func (m *SubmissionMutation) HTTPStatus() (r int, exists bool) {
	v := m.http_status
	if v == nil {
		return
	}
	return *v, true
}

// OldHTTPStatus returns the old "http_status" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldHTTPStatus(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHTTPStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHTTPStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHTTPStatus: %w", err)
	}
	return oldValue.HTTPStatus, nil
}

// AddHTTPStatus adds i to the "http_status" field.
func (m *SubmissionMutation) AddHTTPStatus(i int) {
	if m.addhttp_status != nil {
		*m.addhttp_status += i
	} else {
		m.addhttp_status = &i
	}
}

// AddedHTTPStatus returns the value that was added to the "http_status" field in this mutation.
func (m *SubmissionMutation) AddedHTTPStatus() (r int, exists bool) {
	v := m.addhttp_status
	if v == nil {
		return
	}
	return *v, true
}

// ResetHTTPStatus resets all changes to the "http_status" field.
func (m *SubmissionMutation) ResetHTTPStatus() {
	m.http_status = nil
	m.addhttp_status = nil
}

// SetDuplicate sets the "duplicate" field.
func (m *SubmissionMutation) SetDuplicate(b bool) {
	m.duplicate = &b
}

// Duplicate returns the value of the "duplicate" field in the mutation.
func (m *SubmissionMutation) Duplicate() (r bool, exists bool) {
	v := m.duplicate
	if v == nil {
		return
	}
	return *v, true
}

// OldDuplicate returns the old "duplicate" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldDuplicate(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuplicate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuplicate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuplicate: %w", err)
	}
	return oldValue.Duplicate, nil
}

// ResetDuplicate resets all changes to the "duplicate" field.
func (m *SubmissionMutation) ResetDuplicate() {
	m.duplicate = nil
}

// SetResponseMessage sets the "response_message" field.
func (m *SubmissionMutation) SetResponseMessage(s string) {
	m.response_message = &s
}

// ResponseMessage returns the value of the "response_message" field in the mutation.
func (m *SubmissionMutation) ResponseMessage() (r string, exists bool) {
	v := m.response_message
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseMessage returns the old "response_message" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldResponseMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseMessage: %w", err)
	}
	return oldValue.ResponseMessage, nil
}

// ClearResponseMessage clears the value of the "response_message" field.
func (m *SubmissionMutation) ClearResponseMessage() {
	m.response_message = nil
	m.clearedFields[submission.FieldResponseMessage] = struct{}{}
}

// ResponseMessageCleared returns if the "response_message" field was cleared in this mutation.
func (m *SubmissionMutation) ResponseMessageCleared() bool {
	_, ok := m.clearedFields[submission.FieldResponseMessage]
	return ok
}

// ResetResponseMessage resets all changes to the "response_message" field.
func (m *SubmissionMutation) ResetResponseMessage() {
	m.response_message = nil
	delete(m.clearedFields, submission.FieldResponseMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *SubmissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubmissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubmissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearJob clears the "job" edge to the VerificationJob entity.
func (m *SubmissionMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[submission.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the VerificationJob entity was cleared.
func (m *SubmissionMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *SubmissionMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *SubmissionMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the SubmissionMutation builder.
func (m *SubmissionMutation) Where(ps ...predicate.Submission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubmissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubmissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Submission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubmissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubmissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Submission).
func (m *SubmissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubmissionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.job != nil {
		fields = append(fields, submission.FieldJobID)
	}
	if m.endpoint != nil {
		fields = append(fields, submission.FieldEndpoint)
	}
	if m.payload != nil {
		fields = append(fields, submission.FieldPayload)
	}
	if m.http_status != nil {
		fields = append(fields, submission.FieldHTTPStatus)
	}
	if m.duplicate != nil {
		fields = append(fields, submission.FieldDuplicate)
	}
	if m.response_message != nil {
		fields = append(fields, submission.FieldResponseMessage)
	}
	if m.created_at != nil {
		fields = append(fields, submission.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubmissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case submission.FieldJobID:
		return m.JobID()
	case submission.FieldEndpoint:
		return m.Endpoint()
	case submission.FieldPayload:
		return m.Payload()
	case submission.FieldHTTPStatus:
		return m.HTTPStatus()
	case submission.FieldDuplicate:
		return m.Duplicate()
	case submission.FieldResponseMessage:
		return m.ResponseMessage()
	case submission.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubmissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case submission.FieldJobID:
		return m.OldJobID(ctx)
	case submission.FieldEndpoint:
		return m.OldEndpoint(ctx)
	case submission.FieldPayload:
		return m.OldPayload(ctx)
	case submission.FieldHTTPStatus:
		return m.OldHTTPStatus(ctx)
	case submission.FieldDuplicate:
		return m.OldDuplicate(ctx)
	case submission.FieldResponseMessage:
		return m.OldResponseMessage(ctx)
	case submission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Submission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case submission.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case submission.FieldEndpoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpoint(v)
		return nil
	case submission.FieldPayload:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case submission.FieldHTTPStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHTTPStatus(v)
		return nil
	case submission.FieldDuplicate:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuplicate(v)
		return nil
	case submission.FieldResponseMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseMessage(v)
		return nil
	case submission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Submission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubmissionMutation) AddedFields() []string {
	var fields []string
	if m.addhttp_status != nil {
		fields = append(fields, submission.FieldHTTPStatus)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubmissionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case submission.FieldHTTPStatus:
		return m.AddedHTTPStatus()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case submission.FieldHTTPStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHTTPStatus(v)
		return nil
	}
	return fmt.Errorf("unknown Submission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubmissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(submission.FieldResponseMessage) {
		fields = append(fields, submission.FieldResponseMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubmissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubmissionMutation) ClearField(name string) error {
	switch name {
	case submission.FieldResponseMessage:
		m.ClearResponseMessage()
		return nil
	}
	return fmt.Errorf("unknown Submission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubmissionMutation) ResetField(name string) error {
	switch name {
	case submission.FieldJobID:
		m.ResetJobID()
		return nil
	case submission.FieldEndpoint:
		m.ResetEndpoint()
		return nil
	case submission.FieldPayload:
		m.ResetPayload()
		return nil
	case submission.FieldHTTPStatus:
		m.ResetHTTPStatus()
		return nil
	case submission.FieldDuplicate:
		m.ResetDuplicate()
		return nil
	case submission.FieldResponseMessage:
		m.ResetResponseMessage()
		return nil
	case submission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Submission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubmissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, submission.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubmissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case submission.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubmissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubmissionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubmissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, submission.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubmissionMutation) EdgeCleared(name string) bool {
	switch name {
	case submission.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubmissionMutation) ClearEdge(name string) error {
	switch name {
	case submission.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown Submission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubmissionMutation) ResetEdge(name string) error {
	switch name {
	case submission.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown Submission edge %s", name)
}

// VerificationJobMutation represents an operation that mutates the VerificationJob nodes in the graph.
type VerificationJobMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	member_id              *string
	activity_type          *string
	status                 *string
	image_path             *string
	started_at             *time.Time
	finished_at            *time.Time
	recognized_text        *string
	ocr_confidence         *float32
	addocr_confidence      *float32
	extracted_fields       *json.RawMessage
	appendextracted_fields json.RawMessage
	detected_category      *string
	keywords_matched       *bool
	missing_fields         *[]string
	appendmissing_fields   []string
	member_challenge_id    *int
	addmember_challenge_id *int
	error_message          *string
	clearedFields          map[string]struct{}
	submissions            map[uuid.UUID]struct{}
	removedsubmissions     map[uuid.UUID]struct{}
	clearedsubmissions     bool
	done                   bool
	oldValue               func(context.Context) (*VerificationJob, error)
	predicates             []predicate.VerificationJob
}

var _ ent.Mutation = (*VerificationJobMutation)(nil)

// verificationjobOption allows management of the mutation configuration using functional options.
type verificationjobOption func(*VerificationJobMutation)

// newVerificationJobMutation creates new mutation for the VerificationJob entity.
func newVerificationJobMutation(c config, op Op, opts ...verificationjobOption) *VerificationJobMutation {
	m := &VerificationJobMutation{
		config:        c,
		op:            op,
		typ:           TypeVerificationJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerificationJobID sets the ID field of the mutation.
func withVerificationJobID(id uuid.UUID) verificationjobOption {
	return func(m *VerificationJobMutation) {
		var (
			err   error
			once  sync.Once
			value *VerificationJob
		)
		m.oldValue = func(ctx context.Context) (*VerificationJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VerificationJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerificationJob sets the old VerificationJob of the mutation.
func withVerificationJob(node *VerificationJob) verificationjobOption {
	return func(m *VerificationJobMutation) {
		m.oldValue = func(context.Context) (*VerificationJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerificationJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerificationJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VerificationJob entities.
func (m *VerificationJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerificationJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerificationJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VerificationJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMemberID sets the "member_id" field.
func (m *VerificationJobMutation) SetMemberID(s string) {
	m.member_id = &s
}

// MemberID returns the value of the "member_id" field in the mutation.
func (m *VerificationJobMutation) MemberID() (r string, exists bool) {
	v := m.member_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMemberID returns the old "member_id" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldMemberID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemberID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemberID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemberID: %w", err)
	}
	return oldValue.MemberID, nil
}

// ClearMemberID clears the value of the "member_id" field.
func (m *VerificationJobMutation) ClearMemberID() {
	m.member_id = nil
	m.clearedFields[verificationjob.FieldMemberID] = struct{}{}
}

// MemberIDCleared returns if the "member_id" field was cleared in this mutation.
func (m *VerificationJobMutation) MemberIDCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldMemberID]
	return ok
}

// ResetMemberID resets all changes to the "member_id" field.
func (m *VerificationJobMutation) ResetMemberID() {
	m.member_id = nil
	delete(m.clearedFields, verificationjob.FieldMemberID)
}

// SetActivityType sets the "activity_type" field.
func (m *VerificationJobMutation) SetActivityType(s string) {
	m.activity_type = &s
}

// ActivityType returns the value of the "activity_type" field in the mutation.
func (m *VerificationJobMutation) ActivityType() (r string, exists bool) {
	v := m.activity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActivityType returns the old "activity_type" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldActivityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivityType: %w", err)
	}
	return oldValue.ActivityType, nil
}

// ResetActivityType resets all changes to the "activity_type" field.
func (m *VerificationJobMutation) ResetActivityType() {
	m.activity_type = nil
}

// SetStatus sets the "status" field.
func (m *VerificationJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *VerificationJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *VerificationJobMutation) ResetStatus() {
	m.status = nil
}

// SetImagePath sets the "image_path" field.
func (m *VerificationJobMutation) SetImagePath(s string) {
	m.image_path = &s
}

// ImagePath returns the value of the "image_path" field in the mutation.
func (m *VerificationJobMutation) ImagePath() (r string, exists bool) {
	v := m.image_path
	if v == nil {
		return
	}
	return *v, true
}

// OldImagePath returns the old "image_path" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldImagePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImagePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImagePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImagePath: %w", err)
	}
	return oldValue.ImagePath, nil
}

// ResetImagePath resets all changes to the "image_path" field.
func (m *VerificationJobMutation) ResetImagePath() {
	m.image_path = nil
}

// SetStartedAt sets the "started_at" field.
func (m *VerificationJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *VerificationJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *VerificationJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *VerificationJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *VerificationJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *VerificationJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[verificationjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *VerificationJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *VerificationJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, verificationjob.FieldFinishedAt)
}

// SetRecognizedText sets the "recognized_text" field.
func (m *VerificationJobMutation) SetRecognizedText(s string) {
	m.recognized_text = &s
}

// RecognizedText returns the value of the "recognized_text" field in the mutation.
func (m *VerificationJobMutation) RecognizedText() (r string, exists bool) {
	v := m.recognized_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRecognizedText returns the old "recognized_text" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldRecognizedText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecognizedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecognizedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecognizedText: %w", err)
	}
	return oldValue.RecognizedText, nil
}

// ClearRecognizedText clears the value of the "recognized_text" field.
func (m *VerificationJobMutation) ClearRecognizedText() {
	m.recognized_text = nil
	m.clearedFields[verificationjob.FieldRecognizedText] = struct{}{}
}

// RecognizedTextCleared returns if the "recognized_text" field was cleared in this mutation.
func (m *VerificationJobMutation) RecognizedTextCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldRecognizedText]
	return ok
}

// ResetRecognizedText resets all changes to the "recognized_text" field.
func (m *VerificationJobMutation) ResetRecognizedText() {
	m.recognized_text = nil
	delete(m.clearedFields, verificationjob.FieldRecognizedText)
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (m *VerificationJobMutation) SetOcrConfidence(f float32) {
	m.ocr_confidence = &f
	m.addocr_confidence = nil
}

// OcrConfidence returns the value of the "ocr_confidence" field in the mutation.
func (m *VerificationJobMutation) OcrConfidence() (r float32, exists bool) {
	v := m.ocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrConfidence returns the old "ocr_confidence" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldOcrConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrConfidence: %w", err)
	}
	return oldValue.OcrConfidence, nil
}

// AddOcrConfidence adds f to the "ocr_confidence" field.
func (m *VerificationJobMutation) AddOcrConfidence(f float32) {
	if m.addocr_confidence != nil {
		*m.addocr_confidence += f
	} else {
		m.addocr_confidence = &f
	}
}

// AddedOcrConfidence returns the value that was added to the "ocr_confidence" field in this mutation.
func (m *VerificationJobMutation) AddedOcrConfidence() (r float32, exists bool) {
	v := m.addocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (m *VerificationJobMutation) ClearOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	m.clearedFields[verificationjob.FieldOcrConfidence] = struct{}{}
}

// OcrConfidenceCleared returns if the "ocr_confidence" field was cleared in this mutation.
func (m *VerificationJobMutation) OcrConfidenceCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldOcrConfidence]
	return ok
}

// ResetOcrConfidence resets all changes to the "ocr_confidence" field.
func (m *VerificationJobMutation) ResetOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	delete(m.clearedFields, verificationjob.FieldOcrConfidence)
}

// SetExtractedFields sets the "extracted_fields" field.
func (m *VerificationJobMutation) SetExtractedFields(jm json.RawMessage) {
	m.extracted_fields = &jm
	m.appendextracted_fields = nil
}

// ExtractedFields returns the value of the "extracted_fields" field in the mutation.
func (m *VerificationJobMutation) ExtractedFields() (r json.RawMessage, exists bool) {
	v := m.extracted_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedFields returns the old "extracted_fields" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldExtractedFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedFields: %w", err)
	}
	return oldValue.ExtractedFields, nil
}

// AppendExtractedFields adds jm to the "extracted_fields" field.
func (m *VerificationJobMutation) AppendExtractedFields(jm json.RawMessage) {
	m.appendextracted_fields = append(m.appendextracted_fields, jm...)
}

// AppendedExtractedFields returns the list of values that were appended to the "extracted_fields" field in this mutation.
func (m *VerificationJobMutation) AppendedExtractedFields() (json.RawMessage, bool) {
	if len(m.appendextracted_fields) == 0 {
		return nil, false
	}
	return m.appendextracted_fields, true
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (m *VerificationJobMutation) ClearExtractedFields() {
	m.extracted_fields = nil
	m.appendextracted_fields = nil
	m.clearedFields[verificationjob.FieldExtractedFields] = struct{}{}
}

// ExtractedFieldsCleared returns if the "extracted_fields" field was cleared in this mutation.
func (m *VerificationJobMutation) ExtractedFieldsCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldExtractedFields]
	return ok
}

// ResetExtractedFields resets all changes to the "extracted_fields" field.
func (m *VerificationJobMutation) ResetExtractedFields() {
	m.extracted_fields = nil
	m.appendextracted_fields = nil
	delete(m.clearedFields, verificationjob.FieldExtractedFields)
}

// SetDetectedCategory sets the "detected_category" field.
func (m *VerificationJobMutation) SetDetectedCategory(s string) {
	m.detected_category = &s
}

// DetectedCategory returns the value of the "detected_category" field in the mutation.
func (m *VerificationJobMutation) DetectedCategory() (r string, exists bool) {
	v := m.detected_category
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedCategory returns the old "detected_category" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldDetectedCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedCategory: %w", err)
	}
	return oldValue.DetectedCategory, nil
}

// ClearDetectedCategory clears the value of the "detected_category" field.
func (m *VerificationJobMutation) ClearDetectedCategory() {
	m.detected_category = nil
	m.clearedFields[verificationjob.FieldDetectedCategory] = struct{}{}
}

// DetectedCategoryCleared returns if the "detected_category" field was cleared in this mutation.
func (m *VerificationJobMutation) DetectedCategoryCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldDetectedCategory]
	return ok
}

// ResetDetectedCategory resets all changes to the "detected_category" field.
func (m *VerificationJobMutation) ResetDetectedCategory() {
	m.detected_category = nil
	delete(m.clearedFields, verificationjob.FieldDetectedCategory)
}

// SetKeywordsMatched sets the "keywords_matched" field.
func (m *VerificationJobMutation) SetKeywordsMatched(b bool) {
	m.keywords_matched = &b
}

// KeywordsMatched returns the value of the "keywords_matched" field in the mutation.
func (m *VerificationJobMutation) KeywordsMatched() (r bool, exists bool) {
	v := m.keywords_matched
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywordsMatched returns the old "keywords_matched" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldKeywordsMatched(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywordsMatched is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywordsMatched requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywordsMatched: %w", err)
	}
	return oldValue.KeywordsMatched, nil
}

// ResetKeywordsMatched resets all changes to the "keywords_matched" field.
func (m *VerificationJobMutation) ResetKeywordsMatched() {
	m.keywords_matched = nil
}

// SetMissingFields sets the "missing_fields" field.
func (m *VerificationJobMutation) SetMissingFields(s []string) {
	m.missing_fields = &s
	m.appendmissing_fields = nil
}

// MissingFields returns the value of the "missing_fields" field in the mutation.
func (m *VerificationJobMutation) MissingFields() (r []string, exists bool) {
	v := m.missing_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldMissingFields returns the old "missing_fields" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldMissingFields(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMissingFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMissingFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMissingFields: %w", err)
	}
	return oldValue.MissingFields, nil
}

// AppendMissingFields adds s to the "missing_fields" field.
func (m *VerificationJobMutation) AppendMissingFields(s []string) {
	m.appendmissing_fields = append(m.appendmissing_fields, s...)
}

// AppendedMissingFields returns the list of values that were appended to the "missing_fields" field in this mutation.
func (m *VerificationJobMutation) AppendedMissingFields() ([]string, bool) {
	if len(m.appendmissing_fields) == 0 {
		return nil, false
	}
	return m.appendmissing_fields, true
}

// ClearMissingFields clears the value of the "missing_fields" field.
func (m *VerificationJobMutation) ClearMissingFields() {
	m.missing_fields = nil
	m.appendmissing_fields = nil
	m.clearedFields[verificationjob.FieldMissingFields] = struct{}{}
}

// MissingFieldsCleared returns if the "missing_fields" field was cleared in this mutation.
func (m *VerificationJobMutation) MissingFieldsCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldMissingFields]
	return ok
}

// ResetMissingFields resets all changes to the "missing_fields" field.
func (m *VerificationJobMutation) ResetMissingFields() {
	m.missing_fields = nil
	m.appendmissing_fields = nil
	delete(m.clearedFields, verificationjob.FieldMissingFields)
}

// SetMemberChallengeID sets the "member_challenge_id" field.
func (m *VerificationJobMutation) SetMemberChallengeID(i int) {
	m.member_challenge_id = &i
	m.addmember_challenge_id = nil
}

// MemberChallengeID returns the value of the "member_challenge_id" field in the mutation.
func (m *VerificationJobMutation) MemberChallengeID() (r int, exists bool) {
	v := m.member_challenge_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMemberChallengeID returns the old "member_challenge_id" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldMemberChallengeID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemberChallengeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemberChallengeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemberChallengeID: %w", err)
	}
	return oldValue.MemberChallengeID, nil
}

// AddMemberChallengeID adds i to the "member_challenge_id" field.
func (m *VerificationJobMutation) AddMemberChallengeID(i int) {
	if m.addmember_challenge_id != nil {
		*m.addmember_challenge_id += i
	} else {
		m.addmember_challenge_id = &i
	}
}

// AddedMemberChallengeID returns the value that was added to the "member_challenge_id" field in this mutation.
func (m *VerificationJobMutation) AddedMemberChallengeID() (r int, exists bool) {
	v := m.addmember_challenge_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearMemberChallengeID clears the value of the "member_challenge_id" field.
func (m *VerificationJobMutation) ClearMemberChallengeID() {
	m.member_challenge_id = nil
	m.addmember_challenge_id = nil
	m.clearedFields[verificationjob.FieldMemberChallengeID] = struct{}{}
}

// MemberChallengeIDCleared returns if the "member_challenge_id" field was cleared in this mutation.
func (m *VerificationJobMutation) MemberChallengeIDCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldMemberChallengeID]
	return ok
}

// ResetMemberChallengeID resets all changes to the "member_challenge_id" field.
func (m *VerificationJobMutation) ResetMemberChallengeID() {
	m.member_challenge_id = nil
	m.addmember_challenge_id = nil
	delete(m.clearedFields, verificationjob.FieldMemberChallengeID)
}

// SetErrorMessage sets the "error_message" field.
func (m *VerificationJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *VerificationJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the VerificationJob entity.
// If the VerificationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *VerificationJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[verificationjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *VerificationJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[verificationjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *VerificationJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, verificationjob.FieldErrorMessage)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by ids.
func (m *VerificationJobMutation) AddSubmissionIDs(ids ...uuid.UUID) {
	if m.submissions == nil {
		m.submissions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.submissions[ids[i]] = struct{}{}
	}
}

// ClearSubmissions clears the "submissions" edge to the Submission entity.
func (m *VerificationJobMutation) ClearSubmissions() {
	m.clearedsubmissions = true
}

// SubmissionsCleared reports if the "submissions" edge to the Submission entity was cleared.
func (m *VerificationJobMutation) SubmissionsCleared() bool {
	return m.clearedsubmissions
}

// RemoveSubmissionIDs removes the "submissions" edge to the Submission entity by IDs.
func (m *VerificationJobMutation) RemoveSubmissionIDs(ids ...uuid.UUID) {
	if m.removedsubmissions == nil {
		m.removedsubmissions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.submissions, ids[i])
		m.removedsubmissions[ids[i]] = struct{}{}
	}
}

// RemovedSubmissions returns the removed IDs of the "submissions" edge to the Submission entity.
func (m *VerificationJobMutation) RemovedSubmissionsIDs() (ids []uuid.UUID) {
	for id := range m.removedsubmissions {
		ids = append(ids, id)
	}
	return
}

// SubmissionsIDs returns the "submissions" edge IDs in the mutation.
func (m *VerificationJobMutation) SubmissionsIDs() (ids []uuid.UUID) {
	for id := range m.submissions {
		ids = append(ids, id)
	}
	return
}

// ResetSubmissions resets all changes to the "submissions" edge.
func (m *VerificationJobMutation) ResetSubmissions() {
	m.submissions = nil
	m.clearedsubmissions = false
	m.removedsubmissions = nil
}

// Where appends a list predicates to the VerificationJobMutation builder.
func (m *VerificationJobMutation) Where(ps ...predicate.VerificationJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerificationJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerificationJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VerificationJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerificationJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerificationJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VerificationJob).
func (m *VerificationJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerificationJobMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.member_id != nil {
		fields = append(fields, verificationjob.FieldMemberID)
	}
	if m.activity_type != nil {
		fields = append(fields, verificationjob.FieldActivityType)
	}
	if m.status != nil {
		fields = append(fields, verificationjob.FieldStatus)
	}
	if m.image_path != nil {
		fields = append(fields, verificationjob.FieldImagePath)
	}
	if m.started_at != nil {
		fields = append(fields, verificationjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, verificationjob.FieldFinishedAt)
	}
	if m.recognized_text != nil {
		fields = append(fields, verificationjob.FieldRecognizedText)
	}
	if m.ocr_confidence != nil {
		fields = append(fields, verificationjob.FieldOcrConfidence)
	}
	if m.extracted_fields != nil {
		fields = append(fields, verificationjob.FieldExtractedFields)
	}
	if m.detected_category != nil {
		fields = append(fields, verificationjob.FieldDetectedCategory)
	}
	if m.keywords_matched != nil {
		fields = append(fields, verificationjob.FieldKeywordsMatched)
	}
	if m.missing_fields != nil {
		fields = append(fields, verificationjob.FieldMissingFields)
	}
	if m.member_challenge_id != nil {
		fields = append(fields, verificationjob.FieldMemberChallengeID)
	}
	if m.error_message != nil {
		fields = append(fields, verificationjob.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerificationJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verificationjob.FieldMemberID:
		return m.MemberID()
	case verificationjob.FieldActivityType:
		return m.ActivityType()
	case verificationjob.FieldStatus:
		return m.Status()
	case verificationjob.FieldImagePath:
		return m.ImagePath()
	case verificationjob.FieldStartedAt:
		return m.StartedAt()
	case verificationjob.FieldFinishedAt:
		return m.FinishedAt()
	case verificationjob.FieldRecognizedText:
		return m.RecognizedText()
	case verificationjob.FieldOcrConfidence:
		return m.OcrConfidence()
	case verificationjob.FieldExtractedFields:
		return m.ExtractedFields()
	case verificationjob.FieldDetectedCategory:
		return m.DetectedCategory()
	case verificationjob.FieldKeywordsMatched:
		return m.KeywordsMatched()
	case verificationjob.FieldMissingFields:
		return m.MissingFields()
	case verificationjob.FieldMemberChallengeID:
		return m.MemberChallengeID()
	case verificationjob.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerificationJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verificationjob.FieldMemberID:
		return m.OldMemberID(ctx)
	case verificationjob.FieldActivityType:
		return m.OldActivityType(ctx)
	case verificationjob.FieldStatus:
		return m.OldStatus(ctx)
	case verificationjob.FieldImagePath:
		return m.OldImagePath(ctx)
	case verificationjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case verificationjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case verificationjob.FieldRecognizedText:
		return m.OldRecognizedText(ctx)
	case verificationjob.FieldOcrConfidence:
		return m.OldOcrConfidence(ctx)
	case verificationjob.FieldExtractedFields:
		return m.OldExtractedFields(ctx)
	case verificationjob.FieldDetectedCategory:
		return m.OldDetectedCategory(ctx)
	case verificationjob.FieldKeywordsMatched:
		return m.OldKeywordsMatched(ctx)
	case verificationjob.FieldMissingFields:
		return m.OldMissingFields(ctx)
	case verificationjob.FieldMemberChallengeID:
		return m.OldMemberChallengeID(ctx)
	case verificationjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown VerificationJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verificationjob.FieldMemberID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemberID(v)
		return nil
	case verificationjob.FieldActivityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivityType(v)
		return nil
	case verificationjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case verificationjob.FieldImagePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImagePath(v)
		return nil
	case verificationjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case verificationjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case verificationjob.FieldRecognizedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecognizedText(v)
		return nil
	case verificationjob.FieldOcrConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrConfidence(v)
		return nil
	case verificationjob.FieldExtractedFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedFields(v)
		return nil
	case verificationjob.FieldDetectedCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedCategory(v)
		return nil
	case verificationjob.FieldKeywordsMatched:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywordsMatched(v)
		return nil
	case verificationjob.FieldMissingFields:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMissingFields(v)
		return nil
	case verificationjob.FieldMemberChallengeID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemberChallengeID(v)
		return nil
	case verificationjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerificationJobMutation) AddedFields() []string {
	var fields []string
	if m.addocr_confidence != nil {
		fields = append(fields, verificationjob.FieldOcrConfidence)
	}
	if m.addmember_challenge_id != nil {
		fields = append(fields, verificationjob.FieldMemberChallengeID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerificationJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case verificationjob.FieldOcrConfidence:
		return m.AddedOcrConfidence()
	case verificationjob.FieldMemberChallengeID:
		return m.AddedMemberChallengeID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case verificationjob.FieldOcrConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOcrConfidence(v)
		return nil
	case verificationjob.FieldMemberChallengeID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMemberChallengeID(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerificationJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(verificationjob.FieldMemberID) {
		fields = append(fields, verificationjob.FieldMemberID)
	}
	if m.FieldCleared(verificationjob.FieldFinishedAt) {
		fields = append(fields, verificationjob.FieldFinishedAt)
	}
	if m.FieldCleared(verificationjob.FieldRecognizedText) {
		fields = append(fields, verificationjob.FieldRecognizedText)
	}
	if m.FieldCleared(verificationjob.FieldOcrConfidence) {
		fields = append(fields, verificationjob.FieldOcrConfidence)
	}
	if m.FieldCleared(verificationjob.FieldExtractedFields) {
		fields = append(fields, verificationjob.FieldExtractedFields)
	}
	if m.FieldCleared(verificationjob.FieldDetectedCategory) {
		fields = append(fields, verificationjob.FieldDetectedCategory)
	}
	if m.FieldCleared(verificationjob.FieldMissingFields) {
		fields = append(fields, verificationjob.FieldMissingFields)
	}
	if m.FieldCleared(verificationjob.FieldMemberChallengeID) {
		fields = append(fields, verificationjob.FieldMemberChallengeID)
	}
	if m.FieldCleared(verificationjob.FieldErrorMessage) {
		fields = append(fields, verificationjob.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerificationJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerificationJobMutation) ClearField(name string) error {
	switch name {
	case verificationjob.FieldMemberID:
		m.ClearMemberID()
		return nil
	case verificationjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case verificationjob.FieldRecognizedText:
		m.ClearRecognizedText()
		return nil
	case verificationjob.FieldOcrConfidence:
		m.ClearOcrConfidence()
		return nil
	case verificationjob.FieldExtractedFields:
		m.ClearExtractedFields()
		return nil
	case verificationjob.FieldDetectedCategory:
		m.ClearDetectedCategory()
		return nil
	case verificationjob.FieldMissingFields:
		m.ClearMissingFields()
		return nil
	case verificationjob.FieldMemberChallengeID:
		m.ClearMemberChallengeID()
		return nil
	case verificationjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown VerificationJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerificationJobMutation) ResetField(name string) error {
	switch name {
	case verificationjob.FieldMemberID:
		m.ResetMemberID()
		return nil
	case verificationjob.FieldActivityType:
		m.ResetActivityType()
		return nil
	case verificationjob.FieldStatus:
		m.ResetStatus()
		return nil
	case verificationjob.FieldImagePath:
		m.ResetImagePath()
		return nil
	case verificationjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case verificationjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case verificationjob.FieldRecognizedText:
		m.ResetRecognizedText()
		return nil
	case verificationjob.FieldOcrConfidence:
		m.ResetOcrConfidence()
		return nil
	case verificationjob.FieldExtractedFields:
		m.ResetExtractedFields()
		return nil
	case verificationjob.FieldDetectedCategory:
		m.ResetDetectedCategory()
		return nil
	case verificationjob.FieldKeywordsMatched:
		m.ResetKeywordsMatched()
		return nil
	case verificationjob.FieldMissingFields:
		m.ResetMissingFields()
		return nil
	case verificationjob.FieldMemberChallengeID:
		m.ResetMemberChallengeID()
		return nil
	case verificationjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown VerificationJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerificationJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.submissions != nil {
		edges = append(edges, verificationjob.EdgeSubmissions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerificationJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case verificationjob.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.submissions))
		for id := range m.submissions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerificationJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsubmissions != nil {
		edges = append(edges, verificationjob.EdgeSubmissions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerificationJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case verificationjob.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.removedsubmissions))
		for id := range m.removedsubmissions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerificationJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsubmissions {
		edges = append(edges, verificationjob.EdgeSubmissions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerificationJobMutation) EdgeCleared(name string) bool {
	switch name {
	case verificationjob.EdgeSubmissions:
		return m.clearedsubmissions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerificationJobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown VerificationJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerificationJobMutation) ResetEdge(name string) error {
	switch name {
	case verificationjob.EdgeSubmissions:
		m.ResetSubmissions()
		return nil
	}
	return fmt.Errorf("unknown VerificationJob edge %s", name)
}
