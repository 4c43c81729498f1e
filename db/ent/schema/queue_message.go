package schema

import (
	"encoding/json"
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

// QueueMessage backs the durable work queues. visible_at doubles as the
// claim lease: claiming a message pushes it into the future, acking deletes
// the row, and an expired lease makes the message claimable again.
type QueueMessage struct{ ent.Schema }

func (QueueMessage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "queue_message"},
	}
}

func (QueueMessage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("queue").NotEmpty().Immutable().
			Validate(utils.EnumValidator(
				constants.QueueRecognition,
				constants.QueueDelivery,
				constants.QueuePostProcess,
			)),
		field.JSON("payload", json.RawMessage{}).Immutable(),
		field.Time("visible_at"),
		field.Int("attempts").Default(0),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (QueueMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("queue", "visible_at"),
	}
}
