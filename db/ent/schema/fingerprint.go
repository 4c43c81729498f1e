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
)

// Fingerprint maps a content+rule identity to a previously completed result.
// Unique on the fingerprint; concurrent duplicate completions are resolved
// with an on-conflict-do-nothing insert.
type Fingerprint struct{ ent.Schema }

func (Fingerprint) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "fingerprint"},
	}
}

func (Fingerprint) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("fingerprint").NotEmpty().Immutable(),
		field.String("source_task_id").NotEmpty().Immutable(),
		field.JSON("extracted_data", json.RawMessage{}).Optional().Immutable(),
		field.JSON("confidence_scores", json.RawMessage{}).Optional().Immutable(),
		field.Int("page_count").Default(0).Immutable(),
		field.Time("recorded_at").Default(time.Now).Immutable(),
	}
}

func (Fingerprint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("fingerprint").Unique(),
	}
}
