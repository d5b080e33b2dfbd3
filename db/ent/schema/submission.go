package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Submission is one payload posted to the external verification API.
type Submission struct{ ent.Schema }

func (Submission) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "submission"},
	}
}

func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}),
		field.String("endpoint").NotEmpty(),
		field.JSON("payload", json.RawMessage{}),
		field.Int("http_status").Default(0),
		field.Bool("duplicate").Default(false),
		field.String("response_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Submission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", VerificationJob.Type).
			Ref("submissions").
			Field("job_id").
			Unique().
			Required(),
	}
}
