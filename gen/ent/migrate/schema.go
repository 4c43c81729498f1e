// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FingerprintColumns holds the columns for the "fingerprint" table.
	FingerprintColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "fingerprint", Type: field.TypeString},
		{Name: "source_task_id", Type: field.TypeString},
		{Name: "extracted_data", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence_scores", Type: field.TypeJSON, Nullable: true},
		{Name: "page_count", Type: field.TypeInt, Default: 0},
		{Name: "recorded_at", Type: field.TypeTime},
	}
	// FingerprintTable holds the schema information for the "fingerprint" table.
	FingerprintTable = &schema.Table{
		Name:       "fingerprint",
		Columns:    FingerprintColumns,
		PrimaryKey: []*schema.Column{FingerprintColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "fingerprint_fingerprint",
				Unique:  true,
				Columns: []*schema.Column{FingerprintColumns[1]},
			},
		},
	}
	// PageResultColumns holds the columns for the "page_result" table.
	PageResultColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "task_id", Type: field.TypeString},
		{Name: "page_no", Type: field.TypeInt},
		{Name: "text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "token_confidences", Type: field.TypeJSON, Nullable: true},
		{Name: "boxes", Type: field.TypeJSON, Nullable: true},
		{Name: "engine", Type: field.TypeString, Default: ""},
		{Name: "fallback", Type: field.TypeBool, Default: false},
		{Name: "failure_reason", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PageResultTable holds the schema information for the "page_result" table.
	PageResultTable = &schema.Table{
		Name:       "page_result",
		Columns:    PageResultColumns,
		PrimaryKey: []*schema.Column{PageResultColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pageresult_task_id_page_no",
				Unique:  false,
				Columns: []*schema.Column{PageResultColumns[1], PageResultColumns[2]},
			},
		},
	}
	// PushAttemptColumns holds the columns for the "push_attempt" table.
	PushAttemptColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "task_id", Type: field.TypeString},
		{Name: "receiver_id", Type: field.TypeUUID},
		{Name: "cycle", Type: field.TypeInt, Default: 0},
		{Name: "attempt", Type: field.TypeInt},
		{Name: "http_status", Type: field.TypeInt, Default: 0},
		{Name: "outcome", Type: field.TypeString},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "error", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PushAttemptTable holds the schema information for the "push_attempt" table.
	PushAttemptTable = &schema.Table{
		Name:       "push_attempt",
		Columns:    PushAttemptColumns,
		PrimaryKey: []*schema.Column{PushAttemptColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pushattempt_task_id_receiver_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PushAttemptColumns[1], PushAttemptColumns[2], PushAttemptColumns[9]},
			},
		},
	}
	// QueueMessageColumns holds the columns for the "queue_message" table.
	QueueMessageColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "queue", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "visible_at", Type: field.TypeTime},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QueueMessageTable holds the schema information for the "queue_message" table.
	QueueMessageTable = &schema.Table{
		Name:       "queue_message",
		Columns:    QueueMessageColumns,
		PrimaryKey: []*schema.Column{QueueMessageColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "queuemessage_queue_visible_at",
				Unique:  false,
				Columns: []*schema.Column{QueueMessageColumns[1], QueueMessageColumns[3]},
			},
		},
	}
	// ReceiverColumns holds the columns for the "receiver" table.
	ReceiverColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "endpoint", Type: field.TypeString},
		{Name: "auth_kind", Type: field.TypeString, Default: "none"},
		{Name: "auth_user", Type: field.TypeString, Default: ""},
		{Name: "auth_token", Type: field.TypeString, Default: ""},
		{Name: "signing_secret", Type: field.TypeString},
		{Name: "body_template", Type: field.TypeString, Default: ""},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ReceiverTable holds the schema information for the "receiver" table.
	ReceiverTable = &schema.Table{
		Name:       "receiver",
		Columns:    ReceiverColumns,
		PrimaryKey: []*schema.Column{ReceiverColumns[0]},
	}
	// RuleColumns holds the columns for the "rule" table.
	RuleColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "rule_id", Type: field.TypeString},
		{Name: "version", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Default: ""},
		{Name: "page_policy", Type: field.TypeString, Default: "all"},
		{Name: "pages", Type: field.TypeJSON, Nullable: true},
		{Name: "engines", Type: field.TypeJSON, Nullable: true},
		{Name: "language", Type: field.TypeString, Default: ""},
		{Name: "fields", Type: field.TypeJSON, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RuleTable holds the schema information for the "rule" table.
	RuleTable = &schema.Table{
		Name:       "rule",
		Columns:    RuleColumns,
		PrimaryKey: []*schema.Column{RuleColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rule_rule_id_version",
				Unique:  true,
				Columns: []*schema.Column{RuleColumns[1], RuleColumns[2]},
			},
			{
				Name:    "rule_rule_id_active",
				Unique:  false,
				Columns: []*schema.Column{RuleColumns[1], RuleColumns[9]},
			},
		},
	}
	// TaskColumns holds the columns for the "task" table.
	TaskColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "fingerprint", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "rule_id", Type: field.TypeString},
		{Name: "rule_version", Type: field.TypeString},
		{Name: "page_count", Type: field.TypeInt, Default: 0},
		{Name: "format", Type: field.TypeString},
		{Name: "blob_key", Type: field.TypeString, Default: ""},
		{Name: "instant", Type: field.TypeBool, Default: false},
		{Name: "extracted_data", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence_scores", Type: field.TypeJSON, Nullable: true},
		{Name: "audit_reasons", Type: field.TypeJSON, Nullable: true},
		{Name: "recognition_attempts", Type: field.TypeInt, Default: 0},
		{Name: "delivery_attempts", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// TaskTable holds the schema information for the "task" table.
	TaskTable = &schema.Table{
		Name:       "task",
		Columns:    TaskColumns,
		PrimaryKey: []*schema.Column{TaskColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TaskColumns[2], TaskColumns[14]},
			},
			{
				Name:    "task_fingerprint",
				Unique:  false,
				Columns: []*schema.Column{TaskColumns[1]},
			},
			{
				Name:    "task_rule_id_rule_version",
				Unique:  false,
				Columns: []*schema.Column{TaskColumns[3], TaskColumns[4]},
			},
		},
	}
	// RuleReceiversColumns holds the columns for the "rule_receivers" table.
	RuleReceiversColumns = []*schema.Column{
		{Name: "rule_id", Type: field.TypeUUID},
		{Name: "receiver_id", Type: field.TypeUUID},
	}
	// RuleReceiversTable holds the schema information for the "rule_receivers" table.
	RuleReceiversTable = &schema.Table{
		Name:       "rule_receivers",
		Columns:    RuleReceiversColumns,
		PrimaryKey: []*schema.Column{RuleReceiversColumns[0], RuleReceiversColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "rule_receivers_rule_id",
				Columns:    []*schema.Column{RuleReceiversColumns[0]},
				RefColumns: []*schema.Column{RuleColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "rule_receivers_receiver_id",
				Columns:    []*schema.Column{RuleReceiversColumns[1]},
				RefColumns: []*schema.Column{ReceiverColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FingerprintTable,
		PageResultTable,
		PushAttemptTable,
		QueueMessageTable,
		ReceiverTable,
		RuleTable,
		TaskTable,
		RuleReceiversTable,
	}
)

func init() {
	FingerprintTable.Annotation = &entsql.Annotation{
		Table: "fingerprint",
	}
	PageResultTable.Annotation = &entsql.Annotation{
		Table: "page_result",
	}
	PushAttemptTable.Annotation = &entsql.Annotation{
		Table: "push_attempt",
	}
	QueueMessageTable.Annotation = &entsql.Annotation{
		Table: "queue_message",
	}
	ReceiverTable.Annotation = &entsql.Annotation{
		Table: "receiver",
	}
	RuleTable.Annotation = &entsql.Annotation{
		Table: "rule",
	}
	TaskTable.Annotation = &entsql.Annotation{
		Table: "task",
	}
	RuleReceiversTable.ForeignKeys[0].RefTable = RuleTable
	RuleReceiversTable.ForeignKeys[1].RefTable = ReceiverTable
}
