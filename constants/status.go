package constants

// TaskStatus is the canonical status for rows in task.
type TaskStatus string

// Stable values (store these exact strings in DB).
const (
	TaskQueued       TaskStatus = "queued"        // waiting for a recognition worker
	TaskProcessing   TaskStatus = "processing"    // recognition/extraction in progress
	TaskPendingAudit TaskStatus = "pending_audit" // failed the quality gate, waiting on a reviewer
	TaskCompleted    TaskStatus = "completed"     // extraction accepted (STP or reviewer approval)
	TaskRejected     TaskStatus = "rejected"      // reviewer rejected; operator may resubmit
	TaskPushing      TaskStatus = "pushing"       // delivery in flight
	TaskPushSuccess  TaskStatus = "push_success"  // all active receivers acknowledged
	TaskPushFailed   TaskStatus = "push_failed"   // at least one receiver dead-lettered
)

// Outcome is the classification of a single delivery attempt.
type Outcome string

const (
	OutcomeSuccess      Outcome = "success"
	OutcomeClientError  Outcome = "client_error" // 4xx except 429; terminal
	OutcomeRateLimited  Outcome = "rate_limited"
	OutcomeServerError  Outcome = "server_error"
	OutcomeTimeout      Outcome = "timeout"
	OutcomeNetworkError Outcome = "network_error"
	OutcomeDeadLetter   Outcome = "dead_letter" // recorded when retries are exhausted or the outcome is terminal
)

// Logical queue names backing the worker pools.
const (
	QueueRecognition = "recognition"
	QueueDelivery    = "delivery"
	QueuePostProcess = "postprocess"
)

// Audit reason kinds. Every task that lands in pending_audit, rejected or
// push_failed carries an enumerable list of these, never a bare error string.
const (
	ReasonRequiredMissing = "required_missing"
	ReasonCoerceFailed    = "coerce_failed"
	ReasonFormatInvalid   = "format_invalid"
	ReasonRangeViolation  = "range_violation"
	ReasonRuleFailed      = "rule_failed"
	ReasonConfidenceLow   = "confidence_low"
	ReasonPageFailed      = "page_failed"
	ReasonTimeout         = "processing_timeout"
	ReasonDeliveryFailed  = "delivery_failed"
	ReasonRejected        = "rejected"
)
