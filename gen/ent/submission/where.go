// Code generated by ent, DO NOT EDIT.

package submission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/greenmap-app/greenmap-verify/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldJobID, v))
}

// Endpoint applies equality check predicate on the "endpoint" field. It's identical to EndpointEQ.
func Endpoint(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldEndpoint, v))
}

// HTTPStatus applies equality check predicate on the "http_status" field. It's identical to HTTPStatusEQ.
func HTTPStatus(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldHTTPStatus, v))
}

// Duplicate applies equality check predicate on the "duplicate" field. It's identical to DuplicateEQ.
func Duplicate(v bool) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldDuplicate, v))
}

// ResponseMessage applies equality check predicate on the "response_message" field. It's identical to ResponseMessageEQ.
func ResponseMessage(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldResponseMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldJobID, vs...))
}

// EndpointEQ applies the EQ predicate on the "endpoint" field.
func EndpointEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldEndpoint, v))
}

// EndpointNEQ applies the NEQ predicate on the "endpoint" field.
func EndpointNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldEndpoint, v))
}

// EndpointIn applies the In predicate on the "endpoint" field.
func EndpointIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldEndpoint, vs...))
}

// EndpointNotIn applies the NotIn predicate on the "endpoint" field.
func EndpointNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldEndpoint, vs...))
}

// EndpointGT applies the GT predicate on the "endpoint" field.
func EndpointGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldEndpoint, v))
}

// EndpointGTE applies the GTE predicate on the "endpoint" field.
func EndpointGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldEndpoint, v))
}

// EndpointLT applies the LT predicate on the "endpoint" field.
func EndpointLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldEndpoint, v))
}

// EndpointLTE applies the LTE predicate on the "endpoint" field.
func EndpointLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldEndpoint, v))
}

// EndpointContains applies the Contains predicate on the "endpoint" field.
func EndpointContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldEndpoint, v))
}

// EndpointHasPrefix applies the HasPrefix predicate on the "endpoint" field.
func EndpointHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldEndpoint, v))
}

// EndpointHasSuffix applies the HasSuffix predicate on the "endpoint" field.
func EndpointHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldEndpoint, v))
}

// EndpointEqualFold applies the EqualFold predicate on the "endpoint" field.
func EndpointEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldEndpoint, v))
}

// EndpointContainsFold applies the ContainsFold predicate on the "endpoint" field.
func EndpointContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldEndpoint, v))
}

// HTTPStatusEQ applies the EQ predicate on the "http_status" field.
func HTTPStatusEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldHTTPStatus, v))
}

// HTTPStatusNEQ applies the NEQ predicate on the "http_status" field.
func HTTPStatusNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldHTTPStatus, v))
}

// HTTPStatusIn applies the In predicate on the "http_status" field.
func HTTPStatusIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldHTTPStatus, vs...))
}

// HTTPStatusNotIn applies the NotIn predicate on the "http_status" field.
func HTTPStatusNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldHTTPStatus, vs...))
}

// HTTPStatusGT applies the GT predicate on the "http_status" field.
func HTTPStatusGT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldHTTPStatus, v))
}

// HTTPStatusGTE applies the GTE predicate on the "http_status" field.
func HTTPStatusGTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldHTTPStatus, v))
}

// HTTPStatusLT applies the LT predicate on the "http_status" field.
func HTTPStatusLT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldHTTPStatus, v))
}

// HTTPStatusLTE applies the LTE predicate on the "http_status" field.
func HTTPStatusLTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldHTTPStatus, v))
}

// DuplicateEQ applies the EQ predicate on the "duplicate" field.
func DuplicateEQ(v bool) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldDuplicate, v))
}

// DuplicateNEQ applies the NEQ predicate on the "duplicate" field.
func DuplicateNEQ(v bool) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldDuplicate, v))
}

// ResponseMessageEQ applies the EQ predicate on the "response_message" field.
func ResponseMessageEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldResponseMessage, v))
}

// ResponseMessageNEQ applies the NEQ predicate on the "response_message" field.
func ResponseMessageNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldResponseMessage, v))
}

// ResponseMessageIn applies the In predicate on the "response_message" field.
func ResponseMessageIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldResponseMessage, vs...))
}

// ResponseMessageNotIn applies the NotIn predicate on the "response_message" field.
func ResponseMessageNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldResponseMessage, vs...))
}

// ResponseMessageGT applies the GT predicate on the "response_message" field.
func ResponseMessageGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldResponseMessage, v))
}

// ResponseMessageGTE applies the GTE predicate on the "response_message" field.
func ResponseMessageGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldResponseMessage, v))
}

// ResponseMessageLT applies the LT predicate on the "response_message" field.
func ResponseMessageLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldResponseMessage, v))
}

// ResponseMessageLTE applies the LTE predicate on the "response_message" field.
func ResponseMessageLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldResponseMessage, v))
}

// ResponseMessageContains applies the Contains predicate on the "response_message" field.
func ResponseMessageContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldResponseMessage, v))
}

// ResponseMessageHasPrefix applies the HasPrefix predicate on the "response_message" field.
func ResponseMessageHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldResponseMessage, v))
}

// ResponseMessageHasSuffix applies the HasSuffix predicate on the "response_message" field.
func ResponseMessageHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldResponseMessage, v))
}

// ResponseMessageIsNil applies the IsNil predicate on the "response_message" field.
func ResponseMessageIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldResponseMessage))
}

// ResponseMessageNotNil applies the NotNil predicate on the "response_message" field.
func ResponseMessageNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldResponseMessage))
}

// ResponseMessageEqualFold applies the EqualFold predicate on the "response_message" field.
func ResponseMessageEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldResponseMessage, v))
}

// ResponseMessageContainsFold applies the ContainsFold predicate on the "response_message" field.
func ResponseMessageContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldResponseMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.VerificationJob) predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.NotPredicates(p))
}
