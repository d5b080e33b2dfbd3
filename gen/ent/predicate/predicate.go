// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Submission is the predicate function for submission builders.
type Submission func(*sql.Selector)

// VerificationJob is the predicate function for verificationjob builders.
type VerificationJob func(*sql.Selector)
