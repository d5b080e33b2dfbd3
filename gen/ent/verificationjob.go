// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/greenmap-app/greenmap-verify/gen/ent/verificationjob"
)

// VerificationJob is the model entity for the VerificationJob schema.
type VerificationJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// MemberID holds the value of the "member_id" field.
	MemberID *string `json:"member_id,omitempty"`
	// ActivityType holds the value of the "activity_type" field.
	ActivityType string `json:"activity_type,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ImagePath holds the value of the "image_path" field.
	ImagePath string `json:"image_path,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// RecognizedText holds the value of the "recognized_text" field.
	RecognizedText *string `json:"recognized_text,omitempty"`
	// OcrConfidence holds the value of the "ocr_confidence" field.
	OcrConfidence *float32 `json:"ocr_confidence,omitempty"`
	// ExtractedFields holds the value of the "extracted_fields" field.
	ExtractedFields json.RawMessage `json:"extracted_fields,omitempty"`
	// DetectedCategory holds the value of the "detected_category" field.
	DetectedCategory *string `json:"detected_category,omitempty"`
	// KeywordsMatched holds the value of the "keywords_matched" field.
	KeywordsMatched bool `json:"keywords_matched,omitempty"`
	// MissingFields holds the value of the "missing_fields" field.
	MissingFields []string `json:"missing_fields,omitempty"`
	// MemberChallengeID holds the value of the "member_challenge_id" field.
	MemberChallengeID *int `json:"member_challenge_id,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VerificationJobQuery when eager-loading is set.
	Edges        VerificationJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VerificationJobEdges holds the relations/edges for other nodes in the graph.
type VerificationJobEdges struct {
	// Submissions holds the value of the submissions edge.
	Submissions []*Submission `json:"submissions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SubmissionsOrErr returns the Submissions value or an error if the edge
// was not loaded in eager-loading.
func (e VerificationJobEdges) SubmissionsOrErr() ([]*Submission, error) {
	if e.loadedTypes[0] {
		return e.Submissions, nil
	}
	return nil, &NotLoadedError{edge: "submissions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VerificationJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verificationjob.FieldExtractedFields, verificationjob.FieldMissingFields:
			values[i] = new([]byte)
		case verificationjob.FieldKeywordsMatched:
			values[i] = new(sql.NullBool)
		case verificationjob.FieldOcrConfidence:
			values[i] = new(sql.NullFloat64)
		case verificationjob.FieldMemberChallengeID:
			values[i] = new(sql.NullInt64)
		case verificationjob.FieldMemberID, verificationjob.FieldActivityType, verificationjob.FieldStatus, verificationjob.FieldImagePath, verificationjob.FieldRecognizedText, verificationjob.FieldDetectedCategory, verificationjob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case verificationjob.FieldStartedAt, verificationjob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case verificationjob.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VerificationJob fields.
func (_m *VerificationJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verificationjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case verificationjob.FieldMemberID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field member_id", values[i])
			} else if value.Valid {
				_m.MemberID = new(string)
				*_m.MemberID = value.String
			}
		case verificationjob.FieldActivityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field activity_type", values[i])
			} else if value.Valid {
				_m.ActivityType = value.String
			}
		case verificationjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case verificationjob.FieldImagePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_path", values[i])
			} else if value.Valid {
				_m.ImagePath = value.String
			}
		case verificationjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case verificationjob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case verificationjob.FieldRecognizedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recognized_text", values[i])
			} else if value.Valid {
				_m.RecognizedText = new(string)
				*_m.RecognizedText = value.String
			}
		case verificationjob.FieldOcrConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_confidence", values[i])
			} else if value.Valid {
				_m.OcrConfidence = new(float32)
				*_m.OcrConfidence = float32(value.Float64)
			}
		case verificationjob.FieldExtractedFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedFields); err != nil {
					return fmt.Errorf("unmarshal field extracted_fields: %w", err)
				}
			}
		case verificationjob.FieldDetectedCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detected_category", values[i])
			} else if value.Valid {
				_m.DetectedCategory = new(string)
				*_m.DetectedCategory = value.String
			}
		case verificationjob.FieldKeywordsMatched:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field keywords_matched", values[i])
			} else if value.Valid {
				_m.KeywordsMatched = value.Bool
			}
		case verificationjob.FieldMissingFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field missing_fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MissingFields); err != nil {
					return fmt.Errorf("unmarshal field missing_fields: %w", err)
				}
			}
		case verificationjob.FieldMemberChallengeID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field member_challenge_id", values[i])
			} else if value.Valid {
				_m.MemberChallengeID = new(int)
				*_m.MemberChallengeID = int(value.Int64)
			}
		case verificationjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VerificationJob.
// This includes values selected through modifiers, order, etc.
func (_m *VerificationJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubmissions queries the "submissions" edge of the VerificationJob entity.
func (_m *VerificationJob) QuerySubmissions() *SubmissionQuery {
	return NewVerificationJobClient(_m.config).QuerySubmissions(_m)
}

// Update returns a builder for updating this VerificationJob.
// Note that you need to call VerificationJob.Unwrap() before calling this method if this VerificationJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VerificationJob) Update() *VerificationJobUpdateOne {
	return NewVerificationJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VerificationJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VerificationJob) Unwrap() *VerificationJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VerificationJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VerificationJob) String() string {
	var builder strings.Builder
	builder.WriteString("VerificationJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.MemberID; v != nil {
		builder.WriteString("member_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("activity_type=")
	builder.WriteString(_m.ActivityType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("image_path=")
	builder.WriteString(_m.ImagePath)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RecognizedText; v != nil {
		builder.WriteString("recognized_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OcrConfidence; v != nil {
		builder.WriteString("ocr_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("extracted_fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedFields))
	builder.WriteString(", ")
	if v := _m.DetectedCategory; v != nil {
		builder.WriteString("detected_category=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("keywords_matched=")
	builder.WriteString(fmt.Sprintf("%v", _m.KeywordsMatched))
	builder.WriteString(", ")
	builder.WriteString("missing_fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.MissingFields))
	builder.WriteString(", ")
	if v := _m.MemberChallengeID; v != nil {
		builder.WriteString("member_challenge_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// VerificationJobs is a parsable slice of VerificationJob.
type VerificationJobs []*VerificationJob
