// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/greenmap-app/greenmap-verify/db/ent/schema"
	"github.com/greenmap-app/greenmap-verify/gen/ent/submission"
	"github.com/greenmap-app/greenmap-verify/gen/ent/verificationjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescEndpoint is the schema descriptor for endpoint field.
	submissionDescEndpoint := submissionFields[2].Descriptor()
	// submission.EndpointValidator is a validator for the "endpoint" field. It is called by the builders before save.
	submission.EndpointValidator = submissionDescEndpoint.Validators[0].(func(string) error)
	// submissionDescHTTPStatus is the schema descriptor for http_status field.
	submissionDescHTTPStatus := submissionFields[4].Descriptor()
	// submission.DefaultHTTPStatus holds the default value on creation for the http_status field.
	submission.DefaultHTTPStatus = submissionDescHTTPStatus.Default.(int)
	// submissionDescDuplicate is the schema descriptor for duplicate field.
	submissionDescDuplicate := submissionFields[5].Descriptor()
	// submission.DefaultDuplicate holds the default value on creation for the duplicate field.
	submission.DefaultDuplicate = submissionDescDuplicate.Default.(bool)
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionFields[7].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
	// submissionDescID is the schema descriptor for id field.
	submissionDescID := submissionFields[0].Descriptor()
	// submission.DefaultID holds the default value on creation for the id field.
	submission.DefaultID = submissionDescID.Default.(func() uuid.UUID)
	verificationjobFields := schema.VerificationJob{}.Fields()
	_ = verificationjobFields
	// verificationjobDescActivityType is the schema descriptor for activity_type field.
	verificationjobDescActivityType := verificationjobFields[2].Descriptor()
	// verificationjob.ActivityTypeValidator is a validator for the "activity_type" field. It is called by the builders before save.
	verificationjob.ActivityTypeValidator = func() func(string) error {
		validators := verificationjobDescActivityType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(activity_type string) error {
			for _, fn := range fns {
				if err := fn(activity_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// verificationjobDescStatus is the schema descriptor for status field.
	verificationjobDescStatus := verificationjobFields[3].Descriptor()
	// verificationjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	verificationjob.StatusValidator = func() func(string) error {
		validators := verificationjobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// verificationjobDescImagePath is the schema descriptor for image_path field.
	verificationjobDescImagePath := verificationjobFields[4].Descriptor()
	// verificationjob.ImagePathValidator is a validator for the "image_path" field. It is called by the builders before save.
	verificationjob.ImagePathValidator = verificationjobDescImagePath.Validators[0].(func(string) error)
	// verificationjobDescStartedAt is the schema descriptor for started_at field.
	verificationjobDescStartedAt := verificationjobFields[5].Descriptor()
	// verificationjob.DefaultStartedAt holds the default value on creation for the started_at field.
	verificationjob.DefaultStartedAt = verificationjobDescStartedAt.Default.(func() time.Time)
	// verificationjobDescKeywordsMatched is the schema descriptor for keywords_matched field.
	verificationjobDescKeywordsMatched := verificationjobFields[11].Descriptor()
	// verificationjob.DefaultKeywordsMatched holds the default value on creation for the keywords_matched field.
	verificationjob.DefaultKeywordsMatched = verificationjobDescKeywordsMatched.Default.(bool)
	// verificationjobDescID is the schema descriptor for id field.
	verificationjobDescID := verificationjobFields[0].Descriptor()
	// verificationjob.DefaultID holds the default value on creation for the id field.
	verificationjob.DefaultID = verificationjobDescID.Default.(func() uuid.UUID)
}
