// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SubmissionColumns holds the columns for the "submission" table.
	SubmissionColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "endpoint", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "http_status", Type: field.TypeInt, Default: 0},
		{Name: "duplicate", Type: field.TypeBool, Default: false},
		{Name: "response_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// SubmissionTable holds the schema information for the "submission" table.
	SubmissionTable = &schema.Table{
		Name:       "submission",
		Columns:    SubmissionColumns,
		PrimaryKey: []*schema.Column{SubmissionColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "submission_verification_job_submissions",
				Columns:    []*schema.Column{SubmissionColumns[7]},
				RefColumns: []*schema.Column{VerificationJobColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// VerificationJobColumns holds the columns for the "verification_job" table.
	VerificationJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "member_id", Type: field.TypeString, Nullable: true},
		{Name: "activity_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "image_path", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "recognized_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "ocr_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "extracted_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "detected_category", Type: field.TypeString, Nullable: true},
		{Name: "keywords_matched", Type: field.TypeBool, Default: false},
		{Name: "missing_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "member_challenge_id", Type: field.TypeInt, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// VerificationJobTable holds the schema information for the "verification_job" table.
	VerificationJobTable = &schema.Table{
		Name:       "verification_job",
		Columns:    VerificationJobColumns,
		PrimaryKey: []*schema.Column{VerificationJobColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "verificationjob_status",
				Unique:  false,
				Columns: []*schema.Column{VerificationJobColumns[3]},
			},
			{
				Name:    "verificationjob_activity_type_started_at",
				Unique:  false,
				Columns: []*schema.Column{VerificationJobColumns[2], VerificationJobColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SubmissionTable,
		VerificationJobTable,
	}
)

func init() {
	SubmissionTable.ForeignKeys[0].RefTable = VerificationJobTable
	SubmissionTable.Annotation = &entsql.Annotation{
		Table: "submission",
	}
	VerificationJobTable.Annotation = &entsql.Annotation{
		Table: "verification_job",
	}
}
