package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// PageResult rows are append-only; nothing updates them after creation.
type PageResult struct{ ent.Schema }

func (PageResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "page_result"},
	}
}

func (PageResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("task_id").NotEmpty().Immutable(),
		field.Int("page_no").Immutable(),
		field.String("text").
			SchemaType(map[string]string{dialect.Postgres: "text"}).
			Immutable(),
		field.JSON("token_confidences", json.RawMessage{}).Optional().Immutable(),
		field.JSON("boxes", json.RawMessage{}).Optional().Immutable(),
		field.String("engine").Default("").Immutable(),
		field.Bool("fallback").Default(false).Immutable(),
		field.String("failure_reason").Default("").Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (PageResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "page_no"),
	}
}
