package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/db/ent/schema/utils"
)

type Task struct{ ent.Schema }

func (Task) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "task"},
	}
}

func (Task) Fields() []ent.Field {
	return []ent.Field{
		// Date-prefixed sortable identity minted by internal/task.NewID.
		field.String("id").NotEmpty().Immutable(),
		field.String("fingerprint").NotEmpty().Immutable(),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(
				string(constants.TaskQueued),
				string(constants.TaskProcessing),
				string(constants.TaskPendingAudit),
				string(constants.TaskCompleted),
				string(constants.TaskRejected),
				string(constants.TaskPushing),
				string(constants.TaskPushSuccess),
				string(constants.TaskPushFailed),
			)),
		field.String("rule_id").NotEmpty().Immutable(),
		field.String("rule_version").NotEmpty().Immutable(),
		field.Int("page_count").Default(0),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.String("blob_key").Default(""),
		field.Bool("instant").Default(false),
		field.JSON("extracted_data", json.RawMessage{}).Optional(),
		field.JSON("confidence_scores", json.RawMessage{}).Optional(),
		field.JSON("audit_reasons", json.RawMessage{}).Optional(),
		field.Int("recognition_attempts").Default(0),
		field.Int("delivery_attempts").Default(0),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("completed_at").Optional().Nillable(),
	}
}

func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("fingerprint"),
		index.Fields("rule_id", "rule_version"),
	}
}
