package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/docflowhq/docflow/db/ent/schema/utils"
	"github.com/docflowhq/docflow/internal/entity"
)

// Rule is one immutable version of an extraction configuration. The pipeline
// only reads rules; authoring happens in an external system.
type Rule struct{ ent.Schema }

func (Rule) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "rule"},
	}
}

func (Rule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("rule_id").NotEmpty().Immutable(),
		field.String("version").NotEmpty().Immutable(),
		field.String("name").Default(""),
		field.String("page_policy").Default(entity.PagesAll).
			Validate(utils.EnumValidator(entity.PagesAll, entity.PagesSingle, entity.PagesList)),
		field.JSON("pages", json.RawMessage{}).Optional(),
		field.JSON("engines", json.RawMessage{}).Optional(),
		field.String("language").Default(""),
		field.JSON("fields", json.RawMessage{}).Optional(),
		field.Bool("active").Default(false),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Rule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("receivers", Receiver.Type),
	}
}

func (Rule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("rule_id", "version").Unique(),
		index.Fields("rule_id", "active"),
	}
}
