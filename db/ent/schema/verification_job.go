package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/greenmap-app/greenmap-verify/constants"
	"github.com/greenmap-app/greenmap-verify/db/ent/schema/utils"
)

// VerificationJob is one OCR verification attempt over a single photo.
type VerificationJob struct{ ent.Schema }

func (VerificationJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "verification_job"},
	}
}

func (VerificationJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("member_id").Optional().Nillable(),
		field.String("activity_type").NotEmpty().
			Validate(utils.EnumValidator(constants.ActivityIDs()...)),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("image_path").NotEmpty(),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("recognized_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float32("ocr_confidence").Optional().Nillable(),
		field.JSON("extracted_fields", json.RawMessage{}).Optional(),
		field.String("detected_category").Optional().Nillable(),
		field.Bool("keywords_matched").Default(false),
		field.JSON("missing_fields", []string{}).Optional(),
		field.Int("member_challenge_id").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
	}
}

func (VerificationJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("submissions", Submission.Type),
	}
}

func (VerificationJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("activity_type", "started_at"),
	}
}
