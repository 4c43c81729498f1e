package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/docflowhq/docflow/constants"
	"github.com/docflowhq/docflow/db/ent/schema/utils"
)

// PushAttempt rows are append-only; the delivery log is never mutated.
type PushAttempt struct{ ent.Schema }

func (PushAttempt) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "push_attempt"},
	}
}

func (PushAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("task_id").NotEmpty().Immutable(),
		field.UUID("receiver_id", uuid.UUID{}).Immutable(),
		field.Int("cycle").Default(0).Immutable(),
		field.Int("attempt").Immutable(),
		field.Int("http_status").Default(0).Immutable(),
		field.String("outcome").NotEmpty().Immutable().
			Validate(utils.EnumValidator(
				string(constants.OutcomeSuccess),
				string(constants.OutcomeClientError),
				string(constants.OutcomeRateLimited),
				string(constants.OutcomeServerError),
				string(constants.OutcomeTimeout),
				string(constants.OutcomeNetworkError),
				string(constants.OutcomeDeadLetter),
			)),
		field.Int64("duration_ms").Default(0).Immutable(),
		field.String("error").Default("").Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (PushAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "receiver_id", "created_at"),
	}
}
