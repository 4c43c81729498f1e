package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"

	"github.com/docflowhq/docflow/db/ent/schema/utils"
	"github.com/docflowhq/docflow/internal/entity"
)

type Receiver struct{ ent.Schema }

func (Receiver) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "receiver"},
	}
}

func (Receiver) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("endpoint").NotEmpty(),
		field.String("auth_kind").Default(entity.AuthNone).
			Validate(utils.EnumValidator(entity.AuthNone, entity.AuthBasic, entity.AuthBearer, entity.AuthJWT)),
		field.String("auth_user").Default(""),
		field.String("auth_token").Default("").Sensitive(),
		field.String("signing_secret").NotEmpty().Sensitive(),
		field.String("body_template").Default(""),
		field.Bool("active").Default(true),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Receiver) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("rules", Rule.Type).Ref("receivers"),
	}
}
