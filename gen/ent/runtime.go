// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/docflowhq/docflow/db/ent/schema"
	"github.com/docflowhq/docflow/gen/ent/fingerprint"
	"github.com/docflowhq/docflow/gen/ent/pageresult"
	"github.com/docflowhq/docflow/gen/ent/pushattempt"
	"github.com/docflowhq/docflow/gen/ent/queuemessage"
	"github.com/docflowhq/docflow/gen/ent/receiver"
	"github.com/docflowhq/docflow/gen/ent/rule"
	"github.com/docflowhq/docflow/gen/ent/task"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	fingerprintFields := schema.Fingerprint{}.Fields()
	_ = fingerprintFields
	// fingerprintDescFingerprint is the schema descriptor for fingerprint field.
	fingerprintDescFingerprint := fingerprintFields[1].Descriptor()
	// fingerprint.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	fingerprint.FingerprintValidator = fingerprintDescFingerprint.Validators[0].(func(string) error)
	// fingerprintDescSourceTaskID is the schema descriptor for source_task_id field.
	fingerprintDescSourceTaskID := fingerprintFields[2].Descriptor()
	// fingerprint.SourceTaskIDValidator is a validator for the "source_task_id" field. It is called by the builders before save.
	fingerprint.SourceTaskIDValidator = fingerprintDescSourceTaskID.Validators[0].(func(string) error)
	// fingerprintDescPageCount is the schema descriptor for page_count field.
	fingerprintDescPageCount := fingerprintFields[5].Descriptor()
	// fingerprint.DefaultPageCount holds the default value on creation for the page_count field.
	fingerprint.DefaultPageCount = fingerprintDescPageCount.Default.(int)
	// fingerprintDescRecordedAt is the schema descriptor for recorded_at field.
	fingerprintDescRecordedAt := fingerprintFields[6].Descriptor()
	// fingerprint.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	fingerprint.DefaultRecordedAt = fingerprintDescRecordedAt.Default.(func() time.Time)
	// fingerprintDescID is the schema descriptor for id field.
	fingerprintDescID := fingerprintFields[0].Descriptor()
	// fingerprint.DefaultID holds the default value on creation for the id field.
	fingerprint.DefaultID = fingerprintDescID.Default.(func() uuid.UUID)
	pageresultFields := schema.PageResult{}.Fields()
	_ = pageresultFields
	// pageresultDescTaskID is the schema descriptor for task_id field.
	pageresultDescTaskID := pageresultFields[1].Descriptor()
	// pageresult.TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	pageresult.TaskIDValidator = pageresultDescTaskID.Validators[0].(func(string) error)
	// pageresultDescEngine is the schema descriptor for engine field.
	pageresultDescEngine := pageresultFields[6].Descriptor()
	// pageresult.DefaultEngine holds the default value on creation for the engine field.
	pageresult.DefaultEngine = pageresultDescEngine.Default.(string)
	// pageresultDescFallback is the schema descriptor for fallback field.
	pageresultDescFallback := pageresultFields[7].Descriptor()
	// pageresult.DefaultFallback holds the default value on creation for the fallback field.
	pageresult.DefaultFallback = pageresultDescFallback.Default.(bool)
	// pageresultDescFailureReason is the schema descriptor for failure_reason field.
	pageresultDescFailureReason := pageresultFields[8].Descriptor()
	// pageresult.DefaultFailureReason holds the default value on creation for the failure_reason field.
	pageresult.DefaultFailureReason = pageresultDescFailureReason.Default.(string)
	// pageresultDescCreatedAt is the schema descriptor for created_at field.
	pageresultDescCreatedAt := pageresultFields[9].Descriptor()
	// pageresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	pageresult.DefaultCreatedAt = pageresultDescCreatedAt.Default.(func() time.Time)
	// pageresultDescID is the schema descriptor for id field.
	pageresultDescID := pageresultFields[0].Descriptor()
	// pageresult.DefaultID holds the default value on creation for the id field.
	pageresult.DefaultID = pageresultDescID.Default.(func() uuid.UUID)
	pushattemptFields := schema.PushAttempt{}.Fields()
	_ = pushattemptFields
	// pushattemptDescTaskID is the schema descriptor for task_id field.
	pushattemptDescTaskID := pushattemptFields[1].Descriptor()
	// pushattempt.TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	pushattempt.TaskIDValidator = pushattemptDescTaskID.Validators[0].(func(string) error)
	// pushattemptDescCycle is the schema descriptor for cycle field.
	pushattemptDescCycle := pushattemptFields[3].Descriptor()
	// pushattempt.DefaultCycle holds the default value on creation for the cycle field.
	pushattempt.DefaultCycle = pushattemptDescCycle.Default.(int)
	// pushattemptDescHTTPStatus is the schema descriptor for http_status field.
	pushattemptDescHTTPStatus := pushattemptFields[5].Descriptor()
	// pushattempt.DefaultHTTPStatus holds the default value on creation for the http_status field.
	pushattempt.DefaultHTTPStatus = pushattemptDescHTTPStatus.Default.(int)
	// pushattemptDescOutcome is the schema descriptor for outcome field.
	pushattemptDescOutcome := pushattemptFields[6].Descriptor()
	// pushattempt.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	pushattempt.OutcomeValidator = func() func(string) error {
		validators := pushattemptDescOutcome.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(outcome string) error {
			for _, fn := range fns {
				if err := fn(outcome); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// pushattemptDescDurationMs is the schema descriptor for duration_ms field.
	pushattemptDescDurationMs := pushattemptFields[7].Descriptor()
	// pushattempt.DefaultDurationMs holds the default value on creation for the duration_ms field.
	pushattempt.DefaultDurationMs = pushattemptDescDurationMs.Default.(int64)
	// pushattemptDescError is the schema descriptor for error field.
	pushattemptDescError := pushattemptFields[8].Descriptor()
	// pushattempt.DefaultError holds the default value on creation for the error field.
	pushattempt.DefaultError = pushattemptDescError.Default.(string)
	// pushattemptDescCreatedAt is the schema descriptor for created_at field.
	pushattemptDescCreatedAt := pushattemptFields[9].Descriptor()
	// pushattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	pushattempt.DefaultCreatedAt = pushattemptDescCreatedAt.Default.(func() time.Time)
	// pushattemptDescID is the schema descriptor for id field.
	pushattemptDescID := pushattemptFields[0].Descriptor()
	// pushattempt.DefaultID holds the default value on creation for the id field.
	pushattempt.DefaultID = pushattemptDescID.Default.(func() uuid.UUID)
	queuemessageFields := schema.QueueMessage{}.Fields()
	_ = queuemessageFields
	// queuemessageDescQueue is the schema descriptor for queue field.
	queuemessageDescQueue := queuemessageFields[1].Descriptor()
	// queuemessage.QueueValidator is a validator for the "queue" field. It is called by the builders before save.
	queuemessage.QueueValidator = func() func(string) error {
		validators := queuemessageDescQueue.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(queue string) error {
			for _, fn := range fns {
				if err := fn(queue); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// queuemessageDescAttempts is the schema descriptor for attempts field.
	queuemessageDescAttempts := queuemessageFields[4].Descriptor()
	// queuemessage.DefaultAttempts holds the default value on creation for the attempts field.
	queuemessage.DefaultAttempts = queuemessageDescAttempts.Default.(int)
	// queuemessageDescCreatedAt is the schema descriptor for created_at field.
	queuemessageDescCreatedAt := queuemessageFields[5].Descriptor()
	// queuemessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	queuemessage.DefaultCreatedAt = queuemessageDescCreatedAt.Default.(func() time.Time)
	// queuemessageDescID is the schema descriptor for id field.
	queuemessageDescID := queuemessageFields[0].Descriptor()
	// queuemessage.DefaultID holds the default value on creation for the id field.
	queuemessage.DefaultID = queuemessageDescID.Default.(func() uuid.UUID)
	receiverFields := schema.Receiver{}.Fields()
	_ = receiverFields
	// receiverDescName is the schema descriptor for name field.
	receiverDescName := receiverFields[1].Descriptor()
	// receiver.NameValidator is a validator for the "name" field. It is called by the builders before save.
	receiver.NameValidator = receiverDescName.Validators[0].(func(string) error)
	// receiverDescEndpoint is the schema descriptor for endpoint field.
	receiverDescEndpoint := receiverFields[2].Descriptor()
	// receiver.EndpointValidator is a validator for the "endpoint" field. It is called by the builders before save.
	receiver.EndpointValidator = receiverDescEndpoint.Validators[0].(func(string) error)
	// receiverDescAuthKind is the schema descriptor for auth_kind field.
	receiverDescAuthKind := receiverFields[3].Descriptor()
	// receiver.DefaultAuthKind holds the default value on creation for the auth_kind field.
	receiver.DefaultAuthKind = receiverDescAuthKind.Default.(string)
	// receiver.AuthKindValidator is a validator for the "auth_kind" field. It is called by the builders before save.
	receiver.AuthKindValidator = receiverDescAuthKind.Validators[0].(func(string) error)
	// receiverDescAuthUser is the schema descriptor for auth_user field.
	receiverDescAuthUser := receiverFields[4].Descriptor()
	// receiver.DefaultAuthUser holds the default value on creation for the auth_user field.
	receiver.DefaultAuthUser = receiverDescAuthUser.Default.(string)
	// receiverDescAuthToken is the schema descriptor for auth_token field.
	receiverDescAuthToken := receiverFields[5].Descriptor()
	// receiver.DefaultAuthToken holds the default value on creation for the auth_token field.
	receiver.DefaultAuthToken = receiverDescAuthToken.Default.(string)
	// receiverDescSigningSecret is the schema descriptor for signing_secret field.
	receiverDescSigningSecret := receiverFields[6].Descriptor()
	// receiver.SigningSecretValidator is a validator for the "signing_secret" field. It is called by the builders before save.
	receiver.SigningSecretValidator = receiverDescSigningSecret.Validators[0].(func(string) error)
	// receiverDescBodyTemplate is the schema descriptor for body_template field.
	receiverDescBodyTemplate := receiverFields[7].Descriptor()
	// receiver.DefaultBodyTemplate holds the default value on creation for the body_template field.
	receiver.DefaultBodyTemplate = receiverDescBodyTemplate.Default.(string)
	// receiverDescActive is the schema descriptor for active field.
	receiverDescActive := receiverFields[8].Descriptor()
	// receiver.DefaultActive holds the default value on creation for the active field.
	receiver.DefaultActive = receiverDescActive.Default.(bool)
	// receiverDescCreatedAt is the schema descriptor for created_at field.
	receiverDescCreatedAt := receiverFields[9].Descriptor()
	// receiver.DefaultCreatedAt holds the default value on creation for the created_at field.
	receiver.DefaultCreatedAt = receiverDescCreatedAt.Default.(func() time.Time)
	// receiverDescID is the schema descriptor for id field.
	receiverDescID := receiverFields[0].Descriptor()
	// receiver.DefaultID holds the default value on creation for the id field.
	receiver.DefaultID = receiverDescID.Default.(func() uuid.UUID)
	ruleFields := schema.Rule{}.Fields()
	_ = ruleFields
	// ruleDescRuleID is the schema descriptor for rule_id field.
	ruleDescRuleID := ruleFields[1].Descriptor()
	// rule.RuleIDValidator is a validator for the "rule_id" field. It is called by the builders before save.
	rule.RuleIDValidator = ruleDescRuleID.Validators[0].(func(string) error)
	// ruleDescVersion is the schema descriptor for version field.
	ruleDescVersion := ruleFields[2].Descriptor()
	// rule.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	rule.VersionValidator = ruleDescVersion.Validators[0].(func(string) error)
	// ruleDescName is the schema descriptor for name field.
	ruleDescName := ruleFields[3].Descriptor()
	// rule.DefaultName holds the default value on creation for the name field.
	rule.DefaultName = ruleDescName.Default.(string)
	// ruleDescPagePolicy is the schema descriptor for page_policy field.
	ruleDescPagePolicy := ruleFields[4].Descriptor()
	// rule.DefaultPagePolicy holds the default value on creation for the page_policy field.
	rule.DefaultPagePolicy = ruleDescPagePolicy.Default.(string)
	// rule.PagePolicyValidator is a validator for the "page_policy" field. It is called by the builders before save.
	rule.PagePolicyValidator = ruleDescPagePolicy.Validators[0].(func(string) error)
	// ruleDescLanguage is the schema descriptor for language field.
	ruleDescLanguage := ruleFields[7].Descriptor()
	// rule.DefaultLanguage holds the default value on creation for the language field.
	rule.DefaultLanguage = ruleDescLanguage.Default.(string)
	// ruleDescActive is the schema descriptor for active field.
	ruleDescActive := ruleFields[9].Descriptor()
	// rule.DefaultActive holds the default value on creation for the active field.
	rule.DefaultActive = ruleDescActive.Default.(bool)
	// ruleDescCreatedAt is the schema descriptor for created_at field.
	ruleDescCreatedAt := ruleFields[10].Descriptor()
	// rule.DefaultCreatedAt holds the default value on creation for the created_at field.
	rule.DefaultCreatedAt = ruleDescCreatedAt.Default.(func() time.Time)
	// ruleDescID is the schema descriptor for id field.
	ruleDescID := ruleFields[0].Descriptor()
	// rule.DefaultID holds the default value on creation for the id field.
	rule.DefaultID = ruleDescID.Default.(func() uuid.UUID)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescFingerprint is the schema descriptor for fingerprint field.
	taskDescFingerprint := taskFields[1].Descriptor()
	// task.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	task.FingerprintValidator = taskDescFingerprint.Validators[0].(func(string) error)
	// taskDescStatus is the schema descriptor for status field.
	taskDescStatus := taskFields[2].Descriptor()
	// task.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	task.StatusValidator = func() func(string) error {
		validators := taskDescStatus.Validators
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
	// taskDescRuleID is the schema descriptor for rule_id field.
	taskDescRuleID := taskFields[3].Descriptor()
	// task.RuleIDValidator is a validator for the "rule_id" field. It is called by the builders before save.
	task.RuleIDValidator = taskDescRuleID.Validators[0].(func(string) error)
	// taskDescRuleVersion is the schema descriptor for rule_version field.
	taskDescRuleVersion := taskFields[4].Descriptor()
	// task.RuleVersionValidator is a validator for the "rule_version" field. It is called by the builders before save.
	task.RuleVersionValidator = taskDescRuleVersion.Validators[0].(func(string) error)
	// taskDescPageCount is the schema descriptor for page_count field.
	taskDescPageCount := taskFields[5].Descriptor()
	// task.DefaultPageCount holds the default value on creation for the page_count field.
	task.DefaultPageCount = taskDescPageCount.Default.(int)
	// taskDescFormat is the schema descriptor for format field.
	taskDescFormat := taskFields[6].Descriptor()
	// task.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	task.FormatValidator = func() func(string) error {
		validators := taskDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// taskDescBlobKey is the schema descriptor for blob_key field.
	taskDescBlobKey := taskFields[7].Descriptor()
	// task.DefaultBlobKey holds the default value on creation for the blob_key field.
	task.DefaultBlobKey = taskDescBlobKey.Default.(string)
	// taskDescInstant is the schema descriptor for instant field.
	taskDescInstant := taskFields[8].Descriptor()
	// task.DefaultInstant holds the default value on creation for the instant field.
	task.DefaultInstant = taskDescInstant.Default.(bool)
	// taskDescRecognitionAttempts is the schema descriptor for recognition_attempts field.
	taskDescRecognitionAttempts := taskFields[12].Descriptor()
	// task.DefaultRecognitionAttempts holds the default value on creation for the recognition_attempts field.
	task.DefaultRecognitionAttempts = taskDescRecognitionAttempts.Default.(int)
	// taskDescDeliveryAttempts is the schema descriptor for delivery_attempts field.
	taskDescDeliveryAttempts := taskFields[13].Descriptor()
	// task.DefaultDeliveryAttempts holds the default value on creation for the delivery_attempts field.
	task.DefaultDeliveryAttempts = taskDescDeliveryAttempts.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[14].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescID is the schema descriptor for id field.
	taskDescID := taskFields[0].Descriptor()
	// task.IDValidator is a validator for the "id" field. It is called by the builders before save.
	task.IDValidator = taskDescID.Validators[0].(func(string) error)
}
