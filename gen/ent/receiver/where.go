// Code generated by ent, DO NOT EDIT.

package receiver

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docflowhq/docflow/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Receiver {
	return predicate.Receiver(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Receiver {
	return predicate.Receiver(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Receiver {
	return predicate.Receiver(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Receiver {
	return predicate.Receiver(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Receiver {
	return predicate.Receiver(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Receiver {
	return predicate.Receiver(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Receiver {
	return predicate.Receiver(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Receiver {
	return predicate.Receiver(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Receiver {
	return predicate.Receiver(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldEQ(FieldName, v))
}

// Endpoint applies equality check predicate on the "endpoint" field. It's identical to EndpointEQ.
func Endpoint(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldEQ(FieldEndpoint, v))
}

// AuthKind applies equality check predicate on the "auth_kind" field. It's identical to AuthKindEQ.
func AuthKind(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldEQ(FieldAuthKind, v))
}

// AuthUser applies equality check predicate on the "auth_user" field. It's identical to AuthUserEQ.
func AuthUser(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldEQ(FieldAuthUser, v))
}

// AuthToken applies equality check predicate on the "auth_token" field. It's identical to AuthTokenEQ.
func AuthToken(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldEQ(FieldAuthToken, v))
}

// SigningSecret applies equality check predicate on the "signing_secret" field. It's identical to SigningSecretEQ.
func SigningSecret(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldEQ(FieldSigningSecret, v))
}

// BodyTemplate applies equality check predicate on the "body_template" field. It's identical to BodyTemplateEQ.
func BodyTemplate(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldEQ(FieldBodyTemplate, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Receiver {
	return predicate.Receiver(sql.FieldEQ(FieldActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Receiver {
	return predicate.Receiver(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Receiver {
	return predicate.Receiver(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Receiver {
	return predicate.Receiver(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldContainsFold(FieldName, v))
}

// EndpointEQ applies the EQ predicate on the "endpoint" field.
func EndpointEQ(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldEQ(FieldEndpoint, v))
}

// EndpointNEQ applies the NEQ predicate on the "endpoint" field.
func EndpointNEQ(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldNEQ(FieldEndpoint, v))
}

// EndpointIn applies the In predicate on the "endpoint" field.
func EndpointIn(vs ...string) predicate.Receiver {
	return predicate.Receiver(sql.FieldIn(FieldEndpoint, vs...))
}

// EndpointNotIn applies the NotIn predicate on the "endpoint" field.
func EndpointNotIn(vs ...string) predicate.Receiver {
	return predicate.Receiver(sql.FieldNotIn(FieldEndpoint, vs...))
}

// EndpointGT applies the GT predicate on the "endpoint" field.
func EndpointGT(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldGT(FieldEndpoint, v))
}

// EndpointGTE applies the GTE predicate on the "endpoint" field.
func EndpointGTE(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldGTE(FieldEndpoint, v))
}

// EndpointLT applies the LT predicate on the "endpoint" field.
func EndpointLT(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldLT(FieldEndpoint, v))
}

// EndpointLTE applies the LTE predicate on the "endpoint" field.
func EndpointLTE(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldLTE(FieldEndpoint, v))
}

// EndpointContains applies the Contains predicate on the "endpoint" field.
func EndpointContains(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldContains(FieldEndpoint, v))
}

// EndpointHasPrefix applies the HasPrefix predicate on the "endpoint" field.
func EndpointHasPrefix(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldHasPrefix(FieldEndpoint, v))
}

// EndpointHasSuffix applies the HasSuffix predicate on the "endpoint" field.
func EndpointHasSuffix(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldHasSuffix(FieldEndpoint, v))
}

// EndpointEqualFold applies the EqualFold predicate on the "endpoint" field.
func EndpointEqualFold(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldEqualFold(FieldEndpoint, v))
}

// EndpointContainsFold applies the ContainsFold predicate on the "endpoint" field.
func EndpointContainsFold(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldContainsFold(FieldEndpoint, v))
}

// AuthKindEQ applies the EQ predicate on the "auth_kind" field.
func AuthKindEQ(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldEQ(FieldAuthKind, v))
}

// AuthKindNEQ applies the NEQ predicate on the "auth_kind" field.
func AuthKindNEQ(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldNEQ(FieldAuthKind, v))
}

// AuthKindIn applies the In predicate on the "auth_kind" field.
func AuthKindIn(vs ...string) predicate.Receiver {
	return predicate.Receiver(sql.FieldIn(FieldAuthKind, vs...))
}

// AuthKindNotIn applies the NotIn predicate on the "auth_kind" field.
func AuthKindNotIn(vs ...string) predicate.Receiver {
	return predicate.Receiver(sql.FieldNotIn(FieldAuthKind, vs...))
}

// AuthKindGT applies the GT predicate on the "auth_kind" field.
func AuthKindGT(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldGT(FieldAuthKind, v))
}

// AuthKindGTE applies the GTE predicate on the "auth_kind" field.
func AuthKindGTE(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldGTE(FieldAuthKind, v))
}

// AuthKindLT applies the LT predicate on the "auth_kind" field.
func AuthKindLT(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldLT(FieldAuthKind, v))
}

// AuthKindLTE applies the LTE predicate on the "auth_kind" field.
func AuthKindLTE(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldLTE(FieldAuthKind, v))
}

// AuthKindContains applies the Contains predicate on the "auth_kind" field.
func AuthKindContains(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldContains(FieldAuthKind, v))
}

// AuthKindHasPrefix applies the HasPrefix predicate on the "auth_kind" field.
func AuthKindHasPrefix(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldHasPrefix(FieldAuthKind, v))
}

// AuthKindHasSuffix applies the HasSuffix predicate on the "auth_kind" field.
func AuthKindHasSuffix(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldHasSuffix(FieldAuthKind, v))
}

// AuthKindEqualFold applies the EqualFold predicate on the "auth_kind" field.
func AuthKindEqualFold(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldEqualFold(FieldAuthKind, v))
}

// AuthKindContainsFold applies the ContainsFold predicate on the "auth_kind" field.
func AuthKindContainsFold(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldContainsFold(FieldAuthKind, v))
}

// AuthUserEQ applies the EQ predicate on the "auth_user" field.
func AuthUserEQ(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldEQ(FieldAuthUser, v))
}

// AuthUserNEQ applies the NEQ predicate on the "auth_user" field.
func AuthUserNEQ(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldNEQ(FieldAuthUser, v))
}

// AuthUserIn applies the In predicate on the "auth_user" field.
func AuthUserIn(vs ...string) predicate.Receiver {
	return predicate.Receiver(sql.FieldIn(FieldAuthUser, vs...))
}

// AuthUserNotIn applies the NotIn predicate on the "auth_user" field.
func AuthUserNotIn(vs ...string) predicate.Receiver {
	return predicate.Receiver(sql.FieldNotIn(FieldAuthUser, vs...))
}

// AuthUserGT applies the GT predicate on the "auth_user" field.
func AuthUserGT(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldGT(FieldAuthUser, v))
}

// AuthUserGTE applies the GTE predicate on the "auth_user" field.
func AuthUserGTE(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldGTE(FieldAuthUser, v))
}

// AuthUserLT applies the LT predicate on the "auth_user" field.
func AuthUserLT(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldLT(FieldAuthUser, v))
}

// AuthUserLTE applies the LTE predicate on the "auth_user" field.
func AuthUserLTE(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldLTE(FieldAuthUser, v))
}

// AuthUserContains applies the Contains predicate on the "auth_user" field.
func AuthUserContains(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldContains(FieldAuthUser, v))
}

// AuthUserHasPrefix applies the HasPrefix predicate on the "auth_user" field.
func AuthUserHasPrefix(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldHasPrefix(FieldAuthUser, v))
}

// AuthUserHasSuffix applies the HasSuffix predicate on the "auth_user" field.
func AuthUserHasSuffix(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldHasSuffix(FieldAuthUser, v))
}

// AuthUserEqualFold applies the EqualFold predicate on the "auth_user" field.
func AuthUserEqualFold(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldEqualFold(FieldAuthUser, v))
}

// AuthUserContainsFold applies the ContainsFold predicate on the "auth_user" field.
func AuthUserContainsFold(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldContainsFold(FieldAuthUser, v))
}

// AuthTokenEQ applies the EQ predicate on the "auth_token" field.
func AuthTokenEQ(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldEQ(FieldAuthToken, v))
}

// AuthTokenNEQ applies the NEQ predicate on the "auth_token" field.
func AuthTokenNEQ(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldNEQ(FieldAuthToken, v))
}

// AuthTokenIn applies the In predicate on the "auth_token" field.
func AuthTokenIn(vs ...string) predicate.Receiver {
	return predicate.Receiver(sql.FieldIn(FieldAuthToken, vs...))
}

// AuthTokenNotIn applies the NotIn predicate on the "auth_token" field.
func AuthTokenNotIn(vs ...string) predicate.Receiver {
	return predicate.Receiver(sql.FieldNotIn(FieldAuthToken, vs...))
}

// AuthTokenGT applies the GT predicate on the "auth_token" field.
func AuthTokenGT(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldGT(FieldAuthToken, v))
}

// AuthTokenGTE applies the GTE predicate on the "auth_token" field.
func AuthTokenGTE(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldGTE(FieldAuthToken, v))
}

// AuthTokenLT applies the LT predicate on the "auth_token" field.
func AuthTokenLT(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldLT(FieldAuthToken, v))
}

// AuthTokenLTE applies the LTE predicate on the "auth_token" field.
func AuthTokenLTE(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldLTE(FieldAuthToken, v))
}

// AuthTokenContains applies the Contains predicate on the "auth_token" field.
func AuthTokenContains(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldContains(FieldAuthToken, v))
}

// AuthTokenHasPrefix applies the HasPrefix predicate on the "auth_token" field.
func AuthTokenHasPrefix(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldHasPrefix(FieldAuthToken, v))
}

// AuthTokenHasSuffix applies the HasSuffix predicate on the "auth_token" field.
func AuthTokenHasSuffix(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldHasSuffix(FieldAuthToken, v))
}

// AuthTokenEqualFold applies the EqualFold predicate on the "auth_token" field.
func AuthTokenEqualFold(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldEqualFold(FieldAuthToken, v))
}

// AuthTokenContainsFold applies the ContainsFold predicate on the "auth_token" field.
func AuthTokenContainsFold(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldContainsFold(FieldAuthToken, v))
}

// SigningSecretEQ applies the EQ predicate on the "signing_secret" field.
func SigningSecretEQ(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldEQ(FieldSigningSecret, v))
}

// SigningSecretNEQ applies the NEQ predicate on the "signing_secret" field.
func SigningSecretNEQ(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldNEQ(FieldSigningSecret, v))
}

// SigningSecretIn applies the In predicate on the "signing_secret" field.
func SigningSecretIn(vs ...string) predicate.Receiver {
	return predicate.Receiver(sql.FieldIn(FieldSigningSecret, vs...))
}

// SigningSecretNotIn applies the NotIn predicate on the "signing_secret" field.
func SigningSecretNotIn(vs ...string) predicate.Receiver {
	return predicate.Receiver(sql.FieldNotIn(FieldSigningSecret, vs...))
}

// SigningSecretGT applies the GT predicate on the "signing_secret" field.
func SigningSecretGT(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldGT(FieldSigningSecret, v))
}

// SigningSecretGTE applies the GTE predicate on the "signing_secret" field.
func SigningSecretGTE(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldGTE(FieldSigningSecret, v))
}

// SigningSecretLT applies the LT predicate on the "signing_secret" field.
func SigningSecretLT(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldLT(FieldSigningSecret, v))
}

// SigningSecretLTE applies the LTE predicate on the "signing_secret" field.
func SigningSecretLTE(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldLTE(FieldSigningSecret, v))
}

// SigningSecretContains applies the Contains predicate on the "signing_secret" field.
func SigningSecretContains(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldContains(FieldSigningSecret, v))
}

// SigningSecretHasPrefix applies the HasPrefix predicate on the "signing_secret" field.
func SigningSecretHasPrefix(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldHasPrefix(FieldSigningSecret, v))
}

// SigningSecretHasSuffix applies the HasSuffix predicate on the "signing_secret" field.
func SigningSecretHasSuffix(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldHasSuffix(FieldSigningSecret, v))
}

// SigningSecretEqualFold applies the EqualFold predicate on the "signing_secret" field.
func SigningSecretEqualFold(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldEqualFold(FieldSigningSecret, v))
}

// SigningSecretContainsFold applies the ContainsFold predicate on the "signing_secret" field.
func SigningSecretContainsFold(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldContainsFold(FieldSigningSecret, v))
}

// BodyTemplateEQ applies the EQ predicate on the "body_template" field.
func BodyTemplateEQ(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldEQ(FieldBodyTemplate, v))
}

// BodyTemplateNEQ applies the NEQ predicate on the "body_template" field.
func BodyTemplateNEQ(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldNEQ(FieldBodyTemplate, v))
}

// BodyTemplateIn applies the In predicate on the "body_template" field.
func BodyTemplateIn(vs ...string) predicate.Receiver {
	return predicate.Receiver(sql.FieldIn(FieldBodyTemplate, vs...))
}

// BodyTemplateNotIn applies the NotIn predicate on the "body_template" field.
func BodyTemplateNotIn(vs ...string) predicate.Receiver {
	return predicate.Receiver(sql.FieldNotIn(FieldBodyTemplate, vs...))
}

// BodyTemplateGT applies the GT predicate on the "body_template" field.
func BodyTemplateGT(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldGT(FieldBodyTemplate, v))
}

// BodyTemplateGTE applies the GTE predicate on the "body_template" field.
func BodyTemplateGTE(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldGTE(FieldBodyTemplate, v))
}

// BodyTemplateLT applies the LT predicate on the "body_template" field.
func BodyTemplateLT(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldLT(FieldBodyTemplate, v))
}

// BodyTemplateLTE applies the LTE predicate on the "body_template" field.
func BodyTemplateLTE(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldLTE(FieldBodyTemplate, v))
}

// BodyTemplateContains applies the Contains predicate on the "body_template" field.
func BodyTemplateContains(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldContains(FieldBodyTemplate, v))
}

// BodyTemplateHasPrefix applies the HasPrefix predicate on the "body_template" field.
func BodyTemplateHasPrefix(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldHasPrefix(FieldBodyTemplate, v))
}

// BodyTemplateHasSuffix applies the HasSuffix predicate on the "body_template" field.
func BodyTemplateHasSuffix(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldHasSuffix(FieldBodyTemplate, v))
}

// BodyTemplateEqualFold applies the EqualFold predicate on the "body_template" field.
func BodyTemplateEqualFold(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldEqualFold(FieldBodyTemplate, v))
}

// BodyTemplateContainsFold applies the ContainsFold predicate on the "body_template" field.
func BodyTemplateContainsFold(v string) predicate.Receiver {
	return predicate.Receiver(sql.FieldContainsFold(FieldBodyTemplate, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Receiver {
	return predicate.Receiver(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Receiver {
	return predicate.Receiver(sql.FieldNEQ(FieldActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Receiver {
	return predicate.Receiver(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Receiver {
	return predicate.Receiver(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Receiver {
	return predicate.Receiver(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Receiver {
	return predicate.Receiver(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Receiver {
	return predicate.Receiver(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Receiver {
	return predicate.Receiver(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Receiver {
	return predicate.Receiver(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Receiver {
	return predicate.Receiver(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRules applies the HasEdge predicate on the "rules" edge.
func HasRules() predicate.Receiver {
	return predicate.Receiver(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, RulesTable, RulesPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRulesWith applies the HasEdge predicate on the "rules" edge with a given conditions (other predicates).
func HasRulesWith(preds ...predicate.Rule) predicate.Receiver {
	return predicate.Receiver(func(s *sql.Selector) {
		step := newRulesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Receiver) predicate.Receiver {
	return predicate.Receiver(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Receiver) predicate.Receiver {
	return predicate.Receiver(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Receiver) predicate.Receiver {
	return predicate.Receiver(sql.NotPredicates(p))
}
