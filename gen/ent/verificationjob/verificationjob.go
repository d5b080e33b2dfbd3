// Code generated by ent, DO NOT EDIT.

package verificationjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the verificationjob type in the database.
	Label = "verification_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMemberID holds the string denoting the member_id field in the database.
	FieldMemberID = "member_id"
	// FieldActivityType holds the string denoting the activity_type field in the database.
	FieldActivityType = "activity_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldImagePath holds the string denoting the image_path field in the database.
	FieldImagePath = "image_path"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldRecognizedText holds the string denoting the recognized_text field in the database.
	FieldRecognizedText = "recognized_text"
	// FieldOcrConfidence holds the string denoting the ocr_confidence field in the database.
	FieldOcrConfidence = "ocr_confidence"
	// FieldExtractedFields holds the string denoting the extracted_fields field in the database.
	FieldExtractedFields = "extracted_fields"
	// FieldDetectedCategory holds the string denoting the detected_category field in the database.
	FieldDetectedCategory = "detected_category"
	// FieldKeywordsMatched holds the string denoting the keywords_matched field in the database.
	FieldKeywordsMatched = "keywords_matched"
	// FieldMissingFields holds the string denoting the missing_fields field in the database.
	FieldMissingFields = "missing_fields"
	// FieldMemberChallengeID holds the string denoting the member_challenge_id field in the database.
	FieldMemberChallengeID = "member_challenge_id"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// EdgeSubmissions holds the string denoting the submissions edge name in mutations.
	EdgeSubmissions = "submissions"
	// Table holds the table name of the verificationjob in the database.
	Table = "verification_job"
	// SubmissionsTable is the table that holds the submissions relation/edge.
	SubmissionsTable = "submission"
	// SubmissionsInverseTable is the table name for the Submission entity.
	// It exists in this package in order to avoid circular dependency with the "submission" package.
	SubmissionsInverseTable = "submission"
	// SubmissionsColumn is the table column denoting the submissions relation/edge.
	SubmissionsColumn = "job_id"
)

// Columns holds all SQL columns for verificationjob fields.
var Columns = []string{
	FieldID,
	FieldMemberID,
	FieldActivityType,
	FieldStatus,
	FieldImagePath,
	FieldStartedAt,
	FieldFinishedAt,
	FieldRecognizedText,
	FieldOcrConfidence,
	FieldExtractedFields,
	FieldDetectedCategory,
	FieldKeywordsMatched,
	FieldMissingFields,
	FieldMemberChallengeID,
	FieldErrorMessage,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ActivityTypeValidator is a validator for the "activity_type" field. It is called by the builders before save.
	ActivityTypeValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// ImagePathValidator is a validator for the "image_path" field. It is called by the builders before save.
	ImagePathValidator func(string) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultKeywordsMatched holds the default value on creation for the "keywords_matched" field.
	DefaultKeywordsMatched bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the VerificationJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMemberID orders the results by the member_id field.
func ByMemberID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemberID, opts...).ToFunc()
}

// ByActivityType orders the results by the activity_type field.
func ByActivityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivityType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByImagePath orders the results by the image_path field.
func ByImagePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImagePath, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByRecognizedText orders the results by the recognized_text field.
func ByRecognizedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecognizedText, opts...).ToFunc()
}

// ByOcrConfidence orders the results by the ocr_confidence field.
func ByOcrConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrConfidence, opts...).ToFunc()
}

// ByDetectedCategory orders the results by the detected_category field.
func ByDetectedCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectedCategory, opts...).ToFunc()
}

// ByKeywordsMatched orders the results by the keywords_matched field.
func ByKeywordsMatched(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeywordsMatched, opts...).ToFunc()
}

// ByMemberChallengeID orders the results by the member_challenge_id field.
func ByMemberChallengeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemberChallengeID, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// BySubmissionsCount orders the results by submissions count.
func BySubmissionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubmissionsStep(), opts...)
	}
}

// BySubmissions orders the results by submissions terms.
func BySubmissions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubmissionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSubmissionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubmissionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubmissionsTable, SubmissionsColumn),
	)
}
