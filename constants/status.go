package constants

// JobStatus is the canonical status for rows in verification_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued      JobStatus = "QUEUED"      // accepted, not yet recognizing
	JobStatusRecognizing JobStatus = "RECOGNIZING" // OCR in flight
	JobStatusRecognized  JobStatus = "RECOGNIZED"  // text + fields extracted (possibly partial)
	JobStatusNoCategory  JobStatus = "NO_CATEGORY" // keywords not found in recognized text
	JobStatusSubmitting  JobStatus = "SUBMITTING"  // payload sent to verification API
	JobStatusSucceeded   JobStatus = "SUCCEEDED"   // verification API accepted
	JobStatusFailed      JobStatus = "FAILED"      // terminal failure (OCR or rejection)
)

// JobStatuses holds the allowed values for the status field in VerificationJob.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRecognizing),
	string(JobStatusRecognized),
	string(JobStatusNoCategory),
	string(JobStatusSubmitting),
	string(JobStatusSucceeded),
	string(JobStatusFailed),
}
