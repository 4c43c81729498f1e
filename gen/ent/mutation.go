// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docflowhq/docflow/gen/ent/fingerprint"
	"github.com/docflowhq/docflow/gen/ent/pageresult"
	"github.com/docflowhq/docflow/gen/ent/predicate"
	"github.com/docflowhq/docflow/gen/ent/pushattempt"
	"github.com/docflowhq/docflow/gen/ent/queuemessage"
	"github.com/docflowhq/docflow/gen/ent/receiver"
	"github.com/docflowhq/docflow/gen/ent/rule"
	"github.com/docflowhq/docflow/gen/ent/task"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeFingerprint  = "Fingerprint"
	TypePageResult   = "PageResult"
	TypePushAttempt  = "PushAttempt"
	TypeQueueMessage = "QueueMessage"
	TypeReceiver     = "Receiver"
	TypeRule         = "Rule"
	TypeTask         = "Task"
)

// FingerprintMutation represents an operation that mutates the Fingerprint nodes in the graph.
type FingerprintMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	fingerprint             *string
	source_task_id          *string
	extracted_data          *json.RawMessage
	appendextracted_data    json.RawMessage
	confidence_scores       *json.RawMessage
	appendconfidence_scores json.RawMessage
	page_count              *int
	addpage_count           *int
	recorded_at             *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*Fingerprint, error)
	predicates              []predicate.Fingerprint
}

var _ ent.Mutation = (*FingerprintMutation)(nil)

// fingerprintOption allows management of the mutation configuration using functional options.
type fingerprintOption func(*FingerprintMutation)

// newFingerprintMutation creates new mutation for the Fingerprint entity.
func newFingerprintMutation(c config, op Op, opts ...fingerprintOption) *FingerprintMutation {
	m := &FingerprintMutation{
		config:        c,
		op:            op,
		typ:           TypeFingerprint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFingerprintID sets the ID field of the mutation.
func withFingerprintID(id uuid.UUID) fingerprintOption {
	return func(m *FingerprintMutation) {
		var (
			err   error
			once  sync.Once
			value *Fingerprint
		)
		m.oldValue = func(ctx context.Context) (*Fingerprint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Fingerprint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFingerprint sets the old Fingerprint of the mutation.
func withFingerprint(node *Fingerprint) fingerprintOption {
	return func(m *FingerprintMutation) {
		m.oldValue = func(context.Context) (*Fingerprint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FingerprintMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FingerprintMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Fingerprint entities.
func (m *FingerprintMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FingerprintMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FingerprintMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Fingerprint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFingerprint sets the "fingerprint" field.
func (m *FingerprintMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *FingerprintMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *FingerprintMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetSourceTaskID sets the "source_task_id" field.
func (m *FingerprintMutation) SetSourceTaskID(s string) {
	m.source_task_id = &s
}

// SourceTaskID returns the value of the "source_task_id" field in the mutation.
func (m *FingerprintMutation) SourceTaskID() (r string, exists bool) {
	v := m.source_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceTaskID returns the old "source_task_id" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldSourceTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceTaskID: %w", err)
	}
	return oldValue.SourceTaskID, nil
}

// ResetSourceTaskID resets all changes to the "source_task_id" field.
func (m *FingerprintMutation) ResetSourceTaskID() {
	m.source_task_id = nil
}

// SetExtractedData sets the "extracted_data" field.
func (m *FingerprintMutation) SetExtractedData(jm json.RawMessage) {
	m.extracted_data = &jm
	m.appendextracted_data = nil
}

// ExtractedData returns the value of the "extracted_data" field in the mutation.
func (m *FingerprintMutation) ExtractedData() (r json.RawMessage, exists bool) {
	v := m.extracted_data
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedData returns the old "extracted_data" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldExtractedData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedData: %w", err)
	}
	return oldValue.ExtractedData, nil
}

// AppendExtractedData adds jm to the "extracted_data" field.
func (m *FingerprintMutation) AppendExtractedData(jm json.RawMessage) {
	m.appendextracted_data = append(m.appendextracted_data, jm...)
}

// AppendedExtractedData returns the list of values that were appended to the "extracted_data" field in this mutation.
func (m *FingerprintMutation) AppendedExtractedData() (json.RawMessage, bool) {
	if len(m.appendextracted_data) == 0 {
		return nil, false
	}
	return m.appendextracted_data, true
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (m *FingerprintMutation) ClearExtractedData() {
	m.extracted_data = nil
	m.appendextracted_data = nil
	m.clearedFields[fingerprint.FieldExtractedData] = struct{}{}
}

// ExtractedDataCleared returns if the "extracted_data" field was cleared in this mutation.
func (m *FingerprintMutation) ExtractedDataCleared() bool {
	_, ok := m.clearedFields[fingerprint.FieldExtractedData]
	return ok
}

// ResetExtractedData resets all changes to the "extracted_data" field.
func (m *FingerprintMutation) ResetExtractedData() {
	m.extracted_data = nil
	m.appendextracted_data = nil
	delete(m.clearedFields, fingerprint.FieldExtractedData)
}

// SetConfidenceScores sets the "confidence_scores" field.
func (m *FingerprintMutation) SetConfidenceScores(jm json.RawMessage) {
	m.confidence_scores = &jm
	m.appendconfidence_scores = nil
}

// ConfidenceScores returns the value of the "confidence_scores" field in the mutation.
func (m *FingerprintMutation) ConfidenceScores() (r json.RawMessage, exists bool) {
	v := m.confidence_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScores returns the old "confidence_scores" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldConfidenceScores(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScores: %w", err)
	}
	return oldValue.ConfidenceScores, nil
}

// AppendConfidenceScores adds jm to the "confidence_scores" field.
func (m *FingerprintMutation) AppendConfidenceScores(jm json.RawMessage) {
	m.appendconfidence_scores = append(m.appendconfidence_scores, jm...)
}

// AppendedConfidenceScores returns the list of values that were appended to the "confidence_scores" field in this mutation.
func (m *FingerprintMutation) AppendedConfidenceScores() (json.RawMessage, bool) {
	if len(m.appendconfidence_scores) == 0 {
		return nil, false
	}
	return m.appendconfidence_scores, true
}

// ClearConfidenceScores clears the value of the "confidence_scores" field.
func (m *FingerprintMutation) ClearConfidenceScores() {
	m.confidence_scores = nil
	m.appendconfidence_scores = nil
	m.clearedFields[fingerprint.FieldConfidenceScores] = struct{}{}
}

// ConfidenceScoresCleared returns if the "confidence_scores" field was cleared in this mutation.
func (m *FingerprintMutation) ConfidenceScoresCleared() bool {
	_, ok := m.clearedFields[fingerprint.FieldConfidenceScores]
	return ok
}

// ResetConfidenceScores resets all changes to the "confidence_scores" field.
func (m *FingerprintMutation) ResetConfidenceScores() {
	m.confidence_scores = nil
	m.appendconfidence_scores = nil
	delete(m.clearedFields, fingerprint.FieldConfidenceScores)
}

// SetPageCount sets the "page_count" field.
func (m *FingerprintMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *FingerprintMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldPageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *FingerprintMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *FingerprintMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *FingerprintMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
}

// SetRecordedAt sets the "recorded_at" field.
func (m *FingerprintMutation) SetRecordedAt(t time.Time) {
	m.recorded_at = &t
}

// RecordedAt returns the value of the "recorded_at" field in the mutation.
func (m *FingerprintMutation) RecordedAt() (r time.Time, exists bool) {
	v := m.recorded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedAt returns the old "recorded_at" field's value of the Fingerprint entity.
// If the Fingerprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FingerprintMutation) OldRecordedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedAt: %w", err)
	}
	return oldValue.RecordedAt, nil
}

// ResetRecordedAt resets all changes to the "recorded_at" field.
func (m *FingerprintMutation) ResetRecordedAt() {
	m.recorded_at = nil
}

// Where appends a list predicates to the FingerprintMutation builder.
func (m *FingerprintMutation) Where(ps ...predicate.Fingerprint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FingerprintMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FingerprintMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Fingerprint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FingerprintMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FingerprintMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Fingerprint).
func (m *FingerprintMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FingerprintMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.fingerprint != nil {
		fields = append(fields, fingerprint.FieldFingerprint)
	}
	if m.source_task_id != nil {
		fields = append(fields, fingerprint.FieldSourceTaskID)
	}
	if m.extracted_data != nil {
		fields = append(fields, fingerprint.FieldExtractedData)
	}
	if m.confidence_scores != nil {
		fields = append(fields, fingerprint.FieldConfidenceScores)
	}
	if m.page_count != nil {
		fields = append(fields, fingerprint.FieldPageCount)
	}
	if m.recorded_at != nil {
		fields = append(fields, fingerprint.FieldRecordedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FingerprintMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fingerprint.FieldFingerprint:
		return m.Fingerprint()
	case fingerprint.FieldSourceTaskID:
		return m.SourceTaskID()
	case fingerprint.FieldExtractedData:
		return m.ExtractedData()
	case fingerprint.FieldConfidenceScores:
		return m.ConfidenceScores()
	case fingerprint.FieldPageCount:
		return m.PageCount()
	case fingerprint.FieldRecordedAt:
		return m.RecordedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FingerprintMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fingerprint.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case fingerprint.FieldSourceTaskID:
		return m.OldSourceTaskID(ctx)
	case fingerprint.FieldExtractedData:
		return m.OldExtractedData(ctx)
	case fingerprint.FieldConfidenceScores:
		return m.OldConfidenceScores(ctx)
	case fingerprint.FieldPageCount:
		return m.OldPageCount(ctx)
	case fingerprint.FieldRecordedAt:
		return m.OldRecordedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Fingerprint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FingerprintMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fingerprint.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case fingerprint.FieldSourceTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceTaskID(v)
		return nil
	case fingerprint.FieldExtractedData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedData(v)
		return nil
	case fingerprint.FieldConfidenceScores:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScores(v)
		return nil
	case fingerprint.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case fingerprint.FieldRecordedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Fingerprint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FingerprintMutation) AddedFields() []string {
	var fields []string
	if m.addpage_count != nil {
		fields = append(fields, fingerprint.FieldPageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FingerprintMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case fingerprint.FieldPageCount:
		return m.AddedPageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FingerprintMutation) AddField(name string, value ent.Value) error {
	switch name {
	case fingerprint.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	}
	return fmt.Errorf("unknown Fingerprint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FingerprintMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fingerprint.FieldExtractedData) {
		fields = append(fields, fingerprint.FieldExtractedData)
	}
	if m.FieldCleared(fingerprint.FieldConfidenceScores) {
		fields = append(fields, fingerprint.FieldConfidenceScores)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FingerprintMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FingerprintMutation) ClearField(name string) error {
	switch name {
	case fingerprint.FieldExtractedData:
		m.ClearExtractedData()
		return nil
	case fingerprint.FieldConfidenceScores:
		m.ClearConfidenceScores()
		return nil
	}
	return fmt.Errorf("unknown Fingerprint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FingerprintMutation) ResetField(name string) error {
	switch name {
	case fingerprint.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case fingerprint.FieldSourceTaskID:
		m.ResetSourceTaskID()
		return nil
	case fingerprint.FieldExtractedData:
		m.ResetExtractedData()
		return nil
	case fingerprint.FieldConfidenceScores:
		m.ResetConfidenceScores()
		return nil
	case fingerprint.FieldPageCount:
		m.ResetPageCount()
		return nil
	case fingerprint.FieldRecordedAt:
		m.ResetRecordedAt()
		return nil
	}
	return fmt.Errorf("unknown Fingerprint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FingerprintMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FingerprintMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FingerprintMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FingerprintMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FingerprintMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FingerprintMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FingerprintMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Fingerprint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FingerprintMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Fingerprint edge %s", name)
}

// PageResultMutation represents an operation that mutates the PageResult nodes in the graph.
type PageResultMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	task_id                 *string
	page_no                 *int
	addpage_no              *int
	text                    *string
	token_confidences       *json.RawMessage
	appendtoken_confidences json.RawMessage
	boxes                   *json.RawMessage
	appendboxes             json.RawMessage
	engine                  *string
	fallback                *bool
	failure_reason          *string
	created_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*PageResult, error)
	predicates              []predicate.PageResult
}

var _ ent.Mutation = (*PageResultMutation)(nil)

// pageresultOption allows management of the mutation configuration using functional options.
type pageresultOption func(*PageResultMutation)

// newPageResultMutation creates new mutation for the PageResult entity.
func newPageResultMutation(c config, op Op, opts ...pageresultOption) *PageResultMutation {
	m := &PageResultMutation{
		config:        c,
		op:            op,
		typ:           TypePageResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPageResultID sets the ID field of the mutation.
func withPageResultID(id uuid.UUID) pageresultOption {
	return func(m *PageResultMutation) {
		var (
			err   error
			once  sync.Once
			value *PageResult
		)
		m.oldValue = func(ctx context.Context) (*PageResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PageResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPageResult sets the old PageResult of the mutation.
func withPageResult(node *PageResult) pageresultOption {
	return func(m *PageResultMutation) {
		m.oldValue = func(context.Context) (*PageResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PageResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PageResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PageResult entities.
func (m *PageResultMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PageResultMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PageResultMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PageResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *PageResultMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *PageResultMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the PageResult entity.
// If the PageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageResultMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *PageResultMutation) ResetTaskID() {
	m.task_id = nil
}

// SetPageNo sets the "page_no" field.
func (m *PageResultMutation) SetPageNo(i int) {
	m.page_no = &i
	m.addpage_no = nil
}

// PageNo returns the value of the "page_no" field in the mutation.
func (m *PageResultMutation) PageNo() (r int, exists bool) {
	v := m.page_no
	if v == nil {
		return
	}
	return *v, true
}

// OldPageNo returns the old "page_no" field's value of the PageResult entity.
// If the PageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageResultMutation) OldPageNo(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageNo: %w", err)
	}
	return oldValue.PageNo, nil
}

// AddPageNo adds i to the "page_no" field.
func (m *PageResultMutation) AddPageNo(i int) {
	if m.addpage_no != nil {
		*m.addpage_no += i
	} else {
		m.addpage_no = &i
	}
}

// AddedPageNo returns the value that was added to the "page_no" field in this mutation.
func (m *PageResultMutation) AddedPageNo() (r int, exists bool) {
	v := m.addpage_no
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageNo resets all changes to the "page_no" field.
func (m *PageResultMutation) ResetPageNo() {
	m.page_no = nil
	m.addpage_no = nil
}

// SetText sets the "text" field.
func (m *PageResultMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *PageResultMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the PageResult entity.
// If the PageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageResultMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *PageResultMutation) ResetText() {
	m.text = nil
}

// SetTokenConfidences sets the "token_confidences" field.
func (m *PageResultMutation) SetTokenConfidences(jm json.RawMessage) {
	m.token_confidences = &jm
	m.appendtoken_confidences = nil
}

// TokenConfidences returns the value of the "token_confidences" field in the mutation.
func (m *PageResultMutation) TokenConfidences() (r json.RawMessage, exists bool) {
	v := m.token_confidences
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenConfidences returns the old "token_confidences" field's value of the PageResult entity.
// If the PageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageResultMutation) OldTokenConfidences(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenConfidences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenConfidences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenConfidences: %w", err)
	}
	return oldValue.TokenConfidences, nil
}

// AppendTokenConfidences adds jm to the "token_confidences" field.
func (m *PageResultMutation) AppendTokenConfidences(jm json.RawMessage) {
	m.appendtoken_confidences = append(m.appendtoken_confidences, jm...)
}

// AppendedTokenConfidences returns the list of values that were appended to the "token_confidences" field in this mutation.
func (m *PageResultMutation) AppendedTokenConfidences() (json.RawMessage, bool) {
	if len(m.appendtoken_confidences) == 0 {
		return nil, false
	}
	return m.appendtoken_confidences, true
}

// ClearTokenConfidences clears the value of the "token_confidences" field.
func (m *PageResultMutation) ClearTokenConfidences() {
	m.token_confidences = nil
	m.appendtoken_confidences = nil
	m.clearedFields[pageresult.FieldTokenConfidences] = struct{}{}
}

// TokenConfidencesCleared returns if the "token_confidences" field was cleared in this mutation.
func (m *PageResultMutation) TokenConfidencesCleared() bool {
	_, ok := m.clearedFields[pageresult.FieldTokenConfidences]
	return ok
}

// ResetTokenConfidences resets all changes to the "token_confidences" field.
func (m *PageResultMutation) ResetTokenConfidences() {
	m.token_confidences = nil
	m.appendtoken_confidences = nil
	delete(m.clearedFields, pageresult.FieldTokenConfidences)
}

// SetBoxes sets the "boxes" field.
func (m *PageResultMutation) SetBoxes(jm json.RawMessage) {
	m.boxes = &jm
	m.appendboxes = nil
}

// Boxes returns the value of the "boxes" field in the mutation.
func (m *PageResultMutation) Boxes() (r json.RawMessage, exists bool) {
	v := m.boxes
	if v == nil {
		return
	}
	return *v, true
}

// OldBoxes returns the old "boxes" field's value of the PageResult entity.
// If the PageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageResultMutation) OldBoxes(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoxes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoxes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoxes: %w", err)
	}
	return oldValue.Boxes, nil
}

// AppendBoxes adds jm to the "boxes" field.
func (m *PageResultMutation) AppendBoxes(jm json.RawMessage) {
	m.appendboxes = append(m.appendboxes, jm...)
}

// AppendedBoxes returns the list of values that were appended to the "boxes" field in this mutation.
func (m *PageResultMutation) AppendedBoxes() (json.RawMessage, bool) {
	if len(m.appendboxes) == 0 {
		return nil, false
	}
	return m.appendboxes, true
}

// ClearBoxes clears the value of the "boxes" field.
func (m *PageResultMutation) ClearBoxes() {
	m.boxes = nil
	m.appendboxes = nil
	m.clearedFields[pageresult.FieldBoxes] = struct{}{}
}

// BoxesCleared returns if the "boxes" field was cleared in this mutation.
func (m *PageResultMutation) BoxesCleared() bool {
	_, ok := m.clearedFields[pageresult.FieldBoxes]
	return ok
}

// ResetBoxes resets all changes to the "boxes" field.
func (m *PageResultMutation) ResetBoxes() {
	m.boxes = nil
	m.appendboxes = nil
	delete(m.clearedFields, pageresult.FieldBoxes)
}

// SetEngine sets the "engine" field.
func (m *PageResultMutation) SetEngine(s string) {
	m.engine = &s
}

// Engine returns the value of the "engine" field in the mutation.
func (m *PageResultMutation) Engine() (r string, exists bool) {
	v := m.engine
	if v == nil {
		return
	}
	return *v, true
}

// OldEngine returns the old "engine" field's value of the PageResult entity.
// If the PageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageResultMutation) OldEngine(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngine is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngine requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngine: %w", err)
	}
	return oldValue.Engine, nil
}

// ResetEngine resets all changes to the "engine" field.
func (m *PageResultMutation) ResetEngine() {
	m.engine = nil
}

// SetFallback sets the "fallback" field.
func (m *PageResultMutation) SetFallback(b bool) {
	m.fallback = &b
}

// Fallback returns the value of the "fallback" field in the mutation.
func (m *PageResultMutation) Fallback() (r bool, exists bool) {
	v := m.fallback
	if v == nil {
		return
	}
	return *v, true
}

// OldFallback returns the old "fallback" field's value of the PageResult entity.
// If the PageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageResultMutation) OldFallback(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFallback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFallback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFallback: %w", err)
	}
	return oldValue.Fallback, nil
}

// ResetFallback resets all changes to the "fallback" field.
func (m *PageResultMutation) ResetFallback() {
	m.fallback = nil
}

// SetFailureReason sets the "failure_reason" field.
func (m *PageResultMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *PageResultMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the PageResult entity.
// If the PageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageResultMutation) OldFailureReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *PageResultMutation) ResetFailureReason() {
	m.failure_reason = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PageResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PageResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PageResult entity.
// If the PageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PageResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PageResultMutation builder.
func (m *PageResultMutation) Where(ps ...predicate.PageResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PageResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PageResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PageResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PageResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PageResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PageResult).
func (m *PageResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PageResultMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.task_id != nil {
		fields = append(fields, pageresult.FieldTaskID)
	}
	if m.page_no != nil {
		fields = append(fields, pageresult.FieldPageNo)
	}
	if m.text != nil {
		fields = append(fields, pageresult.FieldText)
	}
	if m.token_confidences != nil {
		fields = append(fields, pageresult.FieldTokenConfidences)
	}
	if m.boxes != nil {
		fields = append(fields, pageresult.FieldBoxes)
	}
	if m.engine != nil {
		fields = append(fields, pageresult.FieldEngine)
	}
	if m.fallback != nil {
		fields = append(fields, pageresult.FieldFallback)
	}
	if m.failure_reason != nil {
		fields = append(fields, pageresult.FieldFailureReason)
	}
	if m.created_at != nil {
		fields = append(fields, pageresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PageResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pageresult.FieldTaskID:
		return m.TaskID()
	case pageresult.FieldPageNo:
		return m.PageNo()
	case pageresult.FieldText:
		return m.Text()
	case pageresult.FieldTokenConfidences:
		return m.TokenConfidences()
	case pageresult.FieldBoxes:
		return m.Boxes()
	case pageresult.FieldEngine:
		return m.Engine()
	case pageresult.FieldFallback:
		return m.Fallback()
	case pageresult.FieldFailureReason:
		return m.FailureReason()
	case pageresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PageResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pageresult.FieldTaskID:
		return m.OldTaskID(ctx)
	case pageresult.FieldPageNo:
		return m.OldPageNo(ctx)
	case pageresult.FieldText:
		return m.OldText(ctx)
	case pageresult.FieldTokenConfidences:
		return m.OldTokenConfidences(ctx)
	case pageresult.FieldBoxes:
		return m.OldBoxes(ctx)
	case pageresult.FieldEngine:
		return m.OldEngine(ctx)
	case pageresult.FieldFallback:
		return m.OldFallback(ctx)
	case pageresult.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case pageresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PageResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PageResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pageresult.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case pageresult.FieldPageNo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageNo(v)
		return nil
	case pageresult.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case pageresult.FieldTokenConfidences:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenConfidences(v)
		return nil
	case pageresult.FieldBoxes:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoxes(v)
		return nil
	case pageresult.FieldEngine:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngine(v)
		return nil
	case pageresult.FieldFallback:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFallback(v)
		return nil
	case pageresult.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case pageresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PageResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PageResultMutation) AddedFields() []string {
	var fields []string
	if m.addpage_no != nil {
		fields = append(fields, pageresult.FieldPageNo)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PageResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pageresult.FieldPageNo:
		return m.AddedPageNo()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PageResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pageresult.FieldPageNo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageNo(v)
		return nil
	}
	return fmt.Errorf("unknown PageResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PageResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pageresult.FieldTokenConfidences) {
		fields = append(fields, pageresult.FieldTokenConfidences)
	}
	if m.FieldCleared(pageresult.FieldBoxes) {
		fields = append(fields, pageresult.FieldBoxes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PageResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PageResultMutation) ClearField(name string) error {
	switch name {
	case pageresult.FieldTokenConfidences:
		m.ClearTokenConfidences()
		return nil
	case pageresult.FieldBoxes:
		m.ClearBoxes()
		return nil
	}
	return fmt.Errorf("unknown PageResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PageResultMutation) ResetField(name string) error {
	switch name {
	case pageresult.FieldTaskID:
		m.ResetTaskID()
		return nil
	case pageresult.FieldPageNo:
		m.ResetPageNo()
		return nil
	case pageresult.FieldText:
		m.ResetText()
		return nil
	case pageresult.FieldTokenConfidences:
		m.ResetTokenConfidences()
		return nil
	case pageresult.FieldBoxes:
		m.ResetBoxes()
		return nil
	case pageresult.FieldEngine:
		m.ResetEngine()
		return nil
	case pageresult.FieldFallback:
		m.ResetFallback()
		return nil
	case pageresult.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case pageresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PageResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PageResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PageResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PageResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PageResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PageResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PageResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PageResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PageResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PageResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PageResult edge %s", name)
}

// PushAttemptMutation represents an operation that mutates the PushAttempt nodes in the graph.
type PushAttemptMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	task_id        *string
	receiver_id    *uuid.UUID
	cycle          *int
	addcycle       *int
	attempt        *int
	addattempt     *int
	http_status    *int
	addhttp_status *int
	outcome        *string
	duration_ms    *int64
	addduration_ms *int64
	error          *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*PushAttempt, error)
	predicates     []predicate.PushAttempt
}

var _ ent.Mutation = (*PushAttemptMutation)(nil)

// pushattemptOption allows management of the mutation configuration using functional options.
type pushattemptOption func(*PushAttemptMutation)

// newPushAttemptMutation creates new mutation for the PushAttempt entity.
func newPushAttemptMutation(c config, op Op, opts ...pushattemptOption) *PushAttemptMutation {
	m := &PushAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypePushAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPushAttemptID sets the ID field of the mutation.
func withPushAttemptID(id uuid.UUID) pushattemptOption {
	return func(m *PushAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *PushAttempt
		)
		m.oldValue = func(ctx context.Context) (*PushAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PushAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPushAttempt sets the old PushAttempt of the mutation.
func withPushAttempt(node *PushAttempt) pushattemptOption {
	return func(m *PushAttemptMutation) {
		m.oldValue = func(context.Context) (*PushAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PushAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PushAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PushAttempt entities.
func (m *PushAttemptMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PushAttemptMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PushAttemptMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PushAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *PushAttemptMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *PushAttemptMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the PushAttempt entity.
// If the PushAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushAttemptMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *PushAttemptMutation) ResetTaskID() {
	m.task_id = nil
}

// SetReceiverID sets the "receiver_id" field.
func (m *PushAttemptMutation) SetReceiverID(u uuid.UUID) {
	m.receiver_id = &u
}

// ReceiverID returns the value of the "receiver_id" field in the mutation.
func (m *PushAttemptMutation) ReceiverID() (r uuid.UUID, exists bool) {
	v := m.receiver_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReceiverID returns the old "receiver_id" field's value of the PushAttempt entity.
// If the PushAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushAttemptMutation) OldReceiverID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceiverID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceiverID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceiverID: %w", err)
	}
	return oldValue.ReceiverID, nil
}

// ResetReceiverID resets all changes to the "receiver_id" field.
func (m *PushAttemptMutation) ResetReceiverID() {
	m.receiver_id = nil
}

// SetCycle sets the "cycle" field.
func (m *PushAttemptMutation) SetCycle(i int) {
	m.cycle = &i
	m.addcycle = nil
}

// Cycle returns the value of the "cycle" field in the mutation.
func (m *PushAttemptMutation) Cycle() (r int, exists bool) {
	v := m.cycle
	if v == nil {
		return
	}
	return *v, true
}

// OldCycle returns the old "cycle" field's value of the PushAttempt entity.
// If the PushAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushAttemptMutation) OldCycle(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCycle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCycle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCycle: %w", err)
	}
	return oldValue.Cycle, nil
}

// AddCycle adds i to the "cycle" field.
func (m *PushAttemptMutation) AddCycle(i int) {
	if m.addcycle != nil {
		*m.addcycle += i
	} else {
		m.addcycle = &i
	}
}

// AddedCycle returns the value that was added to the "cycle" field in this mutation.
func (m *PushAttemptMutation) AddedCycle() (r int, exists bool) {
	v := m.addcycle
	if v == nil {
		return
	}
	return *v, true
}

// ResetCycle resets all changes to the "cycle" field.
func (m *PushAttemptMutation) ResetCycle() {
	m.cycle = nil
	m.addcycle = nil
}

// SetAttempt sets the "attempt" field.
func (m *PushAttemptMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *PushAttemptMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the PushAttempt entity.
// If the PushAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushAttemptMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *PushAttemptMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *PushAttemptMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *PushAttemptMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetHTTPStatus sets the "http_status" field.
func (m *PushAttemptMutation) SetHTTPStatus(i int) {
	m.http_status = &i
	m.addhttp_status = nil
}

// HTTPStatus returns the value of the "http_status" field in the mutation.
func (m *PushAttemptMutation) HTTPStatus() (r int, exists bool) {
	v := m.http_status
	if v == nil {
		return
	}
	return *v, true
}

// OldHTTPStatus returns the old "http_status" field's value of the PushAttempt entity.
// If the PushAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushAttemptMutation) OldHTTPStatus(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHTTPStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHTTPStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHTTPStatus: %w", err)
	}
	return oldValue.HTTPStatus, nil
}

// AddHTTPStatus adds i to the "http_status" field.
func (m *PushAttemptMutation) AddHTTPStatus(i int) {
	if m.addhttp_status != nil {
		*m.addhttp_status += i
	} else {
		m.addhttp_status = &i
	}
}

// AddedHTTPStatus returns the value that was added to the "http_status" field in this mutation.
func (m *PushAttemptMutation) AddedHTTPStatus() (r int, exists bool) {
	v := m.addhttp_status
	if v == nil {
		return
	}
	return *v, true
}

// ResetHTTPStatus resets all changes to the "http_status" field.
func (m *PushAttemptMutation) ResetHTTPStatus() {
	m.http_status = nil
	m.addhttp_status = nil
}

// SetOutcome sets the "outcome" field.
func (m *PushAttemptMutation) SetOutcome(s string) {
	m.outcome = &s
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *PushAttemptMutation) Outcome() (r string, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the PushAttempt entity.
// If the PushAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushAttemptMutation) OldOutcome(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *PushAttemptMutation) ResetOutcome() {
	m.outcome = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *PushAttemptMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *PushAttemptMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the PushAttempt entity.
// If the PushAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushAttemptMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *PushAttemptMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *PushAttemptMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *PushAttemptMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetError sets the "error" field.
func (m *PushAttemptMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *PushAttemptMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the PushAttempt entity.
// If the PushAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushAttemptMutation) OldError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ResetError resets all changes to the "error" field.
func (m *PushAttemptMutation) ResetError() {
	m.error = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PushAttemptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PushAttemptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PushAttempt entity.
// If the PushAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PushAttemptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PushAttemptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PushAttemptMutation builder.
func (m *PushAttemptMutation) Where(ps ...predicate.PushAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PushAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PushAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PushAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PushAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PushAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PushAttempt).
func (m *PushAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PushAttemptMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.task_id != nil {
		fields = append(fields, pushattempt.FieldTaskID)
	}
	if m.receiver_id != nil {
		fields = append(fields, pushattempt.FieldReceiverID)
	}
	if m.cycle != nil {
		fields = append(fields, pushattempt.FieldCycle)
	}
	if m.attempt != nil {
		fields = append(fields, pushattempt.FieldAttempt)
	}
	if m.http_status != nil {
		fields = append(fields, pushattempt.FieldHTTPStatus)
	}
	if m.outcome != nil {
		fields = append(fields, pushattempt.FieldOutcome)
	}
	if m.duration_ms != nil {
		fields = append(fields, pushattempt.FieldDurationMs)
	}
	if m.error != nil {
		fields = append(fields, pushattempt.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, pushattempt.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PushAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pushattempt.FieldTaskID:
		return m.TaskID()
	case pushattempt.FieldReceiverID:
		return m.ReceiverID()
	case pushattempt.FieldCycle:
		return m.Cycle()
	case pushattempt.FieldAttempt:
		return m.Attempt()
	case pushattempt.FieldHTTPStatus:
		return m.HTTPStatus()
	case pushattempt.FieldOutcome:
		return m.Outcome()
	case pushattempt.FieldDurationMs:
		return m.DurationMs()
	case pushattempt.FieldError:
		return m.Error()
	case pushattempt.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PushAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pushattempt.FieldTaskID:
		return m.OldTaskID(ctx)
	case pushattempt.FieldReceiverID:
		return m.OldReceiverID(ctx)
	case pushattempt.FieldCycle:
		return m.OldCycle(ctx)
	case pushattempt.FieldAttempt:
		return m.OldAttempt(ctx)
	case pushattempt.FieldHTTPStatus:
		return m.OldHTTPStatus(ctx)
	case pushattempt.FieldOutcome:
		return m.OldOutcome(ctx)
	case pushattempt.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case pushattempt.FieldError:
		return m.OldError(ctx)
	case pushattempt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PushAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PushAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pushattempt.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case pushattempt.FieldReceiverID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceiverID(v)
		return nil
	case pushattempt.FieldCycle:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCycle(v)
		return nil
	case pushattempt.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case pushattempt.FieldHTTPStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHTTPStatus(v)
		return nil
	case pushattempt.FieldOutcome:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case pushattempt.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case pushattempt.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case pushattempt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PushAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PushAttemptMutation) AddedFields() []string {
	var fields []string
	if m.addcycle != nil {
		fields = append(fields, pushattempt.FieldCycle)
	}
	if m.addattempt != nil {
		fields = append(fields, pushattempt.FieldAttempt)
	}
	if m.addhttp_status != nil {
		fields = append(fields, pushattempt.FieldHTTPStatus)
	}
	if m.addduration_ms != nil {
		fields = append(fields, pushattempt.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PushAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pushattempt.FieldCycle:
		return m.AddedCycle()
	case pushattempt.FieldAttempt:
		return m.AddedAttempt()
	case pushattempt.FieldHTTPStatus:
		return m.AddedHTTPStatus()
	case pushattempt.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PushAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pushattempt.FieldCycle:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCycle(v)
		return nil
	case pushattempt.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case pushattempt.FieldHTTPStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHTTPStatus(v)
		return nil
	case pushattempt.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown PushAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PushAttemptMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PushAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PushAttemptMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PushAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PushAttemptMutation) ResetField(name string) error {
	switch name {
	case pushattempt.FieldTaskID:
		m.ResetTaskID()
		return nil
	case pushattempt.FieldReceiverID:
		m.ResetReceiverID()
		return nil
	case pushattempt.FieldCycle:
		m.ResetCycle()
		return nil
	case pushattempt.FieldAttempt:
		m.ResetAttempt()
		return nil
	case pushattempt.FieldHTTPStatus:
		m.ResetHTTPStatus()
		return nil
	case pushattempt.FieldOutcome:
		m.ResetOutcome()
		return nil
	case pushattempt.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case pushattempt.FieldError:
		m.ResetError()
		return nil
	case pushattempt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PushAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PushAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PushAttemptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PushAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PushAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PushAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PushAttemptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PushAttemptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PushAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PushAttemptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PushAttempt edge %s", name)
}

// QueueMessageMutation represents an operation that mutates the QueueMessage nodes in the graph.
type QueueMessageMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	queue         *string
	payload       *json.RawMessage
	appendpayload json.RawMessage
	visible_at    *time.Time
	attempts      *int
	addattempts   *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*QueueMessage, error)
	predicates    []predicate.QueueMessage
}

var _ ent.Mutation = (*QueueMessageMutation)(nil)

// queuemessageOption allows management of the mutation configuration using functional options.
type queuemessageOption func(*QueueMessageMutation)

// newQueueMessageMutation creates new mutation for the QueueMessage entity.
func newQueueMessageMutation(c config, op Op, opts ...queuemessageOption) *QueueMessageMutation {
	m := &QueueMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeQueueMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueueMessageID sets the ID field of the mutation.
func withQueueMessageID(id uuid.UUID) queuemessageOption {
	return func(m *QueueMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *QueueMessage
		)
		m.oldValue = func(ctx context.Context) (*QueueMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QueueMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueueMessage sets the old QueueMessage of the mutation.
func withQueueMessage(node *QueueMessage) queuemessageOption {
	return func(m *QueueMessageMutation) {
		m.oldValue = func(context.Context) (*QueueMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueueMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueueMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QueueMessage entities.
func (m *QueueMessageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueueMessageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueueMessageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QueueMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQueue sets the "queue" field.
func (m *QueueMessageMutation) SetQueue(s string) {
	m.queue = &s
}

// Queue returns the value of the "queue" field in the mutation.
func (m *QueueMessageMutation) Queue() (r string, exists bool) {
	v := m.queue
	if v == nil {
		return
	}
	return *v, true
}

// OldQueue returns the old "queue" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldQueue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueue: %w", err)
	}
	return oldValue.Queue, nil
}

// ResetQueue resets all changes to the "queue" field.
func (m *QueueMessageMutation) ResetQueue() {
	m.queue = nil
}

// SetPayload sets the "payload" field.
func (m *QueueMessageMutation) SetPayload(jm json.RawMessage) {
	m.payload = &jm
	m.appendpayload = nil
}

// Payload returns the value of the "payload" field in the mutation.
func (m *QueueMessageMutation) Payload() (r json.RawMessage, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldPayload(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// AppendPayload adds jm to the "payload" field.
func (m *QueueMessageMutation) AppendPayload(jm json.RawMessage) {
	m.appendpayload = append(m.appendpayload, jm...)
}

// AppendedPayload returns the list of values that were appended to the "payload" field in this mutation.
func (m *QueueMessageMutation) AppendedPayload() (json.RawMessage, bool) {
	if len(m.appendpayload) == 0 {
		return nil, false
	}
	return m.appendpayload, true
}

// ResetPayload resets all changes to the "payload" field.
func (m *QueueMessageMutation) ResetPayload() {
	m.payload = nil
	m.appendpayload = nil
}

// SetVisibleAt sets the "visible_at" field.
func (m *QueueMessageMutation) SetVisibleAt(t time.Time) {
	m.visible_at = &t
}

// VisibleAt returns the value of the "visible_at" field in the mutation.
func (m *QueueMessageMutation) VisibleAt() (r time.Time, exists bool) {
	v := m.visible_at
	if v == nil {
		return
	}
	return *v, true
}

// OldVisibleAt returns the old "visible_at" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldVisibleAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisibleAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisibleAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisibleAt: %w", err)
	}
	return oldValue.VisibleAt, nil
}

// ResetVisibleAt resets all changes to the "visible_at" field.
func (m *QueueMessageMutation) ResetVisibleAt() {
	m.visible_at = nil
}

// SetAttempts sets the "attempts" field.
func (m *QueueMessageMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *QueueMessageMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *QueueMessageMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *QueueMessageMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *QueueMessageMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *QueueMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QueueMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QueueMessage entity.
// If the QueueMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QueueMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the QueueMessageMutation builder.
func (m *QueueMessageMutation) Where(ps ...predicate.QueueMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueueMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueueMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QueueMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueueMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueueMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QueueMessage).
func (m *QueueMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueueMessageMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.queue != nil {
		fields = append(fields, queuemessage.FieldQueue)
	}
	if m.payload != nil {
		fields = append(fields, queuemessage.FieldPayload)
	}
	if m.visible_at != nil {
		fields = append(fields, queuemessage.FieldVisibleAt)
	}
	if m.attempts != nil {
		fields = append(fields, queuemessage.FieldAttempts)
	}
	if m.created_at != nil {
		fields = append(fields, queuemessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueueMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case queuemessage.FieldQueue:
		return m.Queue()
	case queuemessage.FieldPayload:
		return m.Payload()
	case queuemessage.FieldVisibleAt:
		return m.VisibleAt()
	case queuemessage.FieldAttempts:
		return m.Attempts()
	case queuemessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueueMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case queuemessage.FieldQueue:
		return m.OldQueue(ctx)
	case queuemessage.FieldPayload:
		return m.OldPayload(ctx)
	case queuemessage.FieldVisibleAt:
		return m.OldVisibleAt(ctx)
	case queuemessage.FieldAttempts:
		return m.OldAttempts(ctx)
	case queuemessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QueueMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case queuemessage.FieldQueue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueue(v)
		return nil
	case queuemessage.FieldPayload:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case queuemessage.FieldVisibleAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisibleAt(v)
		return nil
	case queuemessage.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case queuemessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QueueMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueueMessageMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, queuemessage.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueueMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case queuemessage.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case queuemessage.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown QueueMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueueMessageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueueMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueueMessageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QueueMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueueMessageMutation) ResetField(name string) error {
	switch name {
	case queuemessage.FieldQueue:
		m.ResetQueue()
		return nil
	case queuemessage.FieldPayload:
		m.ResetPayload()
		return nil
	case queuemessage.FieldVisibleAt:
		m.ResetVisibleAt()
		return nil
	case queuemessage.FieldAttempts:
		m.ResetAttempts()
		return nil
	case queuemessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown QueueMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueueMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueueMessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueueMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueueMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueueMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueueMessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueueMessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QueueMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueueMessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QueueMessage edge %s", name)
}

// ReceiverMutation represents an operation that mutates the Receiver nodes in the graph.
type ReceiverMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	endpoint       *string
	auth_kind      *string
	auth_user      *string
	auth_token     *string
	signing_secret *string
	body_template  *string
	active         *bool
	created_at     *time.Time
	clearedFields  map[string]struct{}
	rules          map[uuid.UUID]struct{}
	removedrules   map[uuid.UUID]struct{}
	clearedrules   bool
	done           bool
	oldValue       func(context.Context) (*Receiver, error)
	predicates     []predicate.Receiver
}

var _ ent.Mutation = (*ReceiverMutation)(nil)

// receiverOption allows management of the mutation configuration using functional options.
type receiverOption func(*ReceiverMutation)

// newReceiverMutation creates new mutation for the Receiver entity.
func newReceiverMutation(c config, op Op, opts ...receiverOption) *ReceiverMutation {
	m := &ReceiverMutation{
		config:        c,
		op:            op,
		typ:           TypeReceiver,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReceiverID sets the ID field of the mutation.
func withReceiverID(id uuid.UUID) receiverOption {
	return func(m *ReceiverMutation) {
		var (
			err   error
			once  sync.Once
			value *Receiver
		)
		m.oldValue = func(ctx context.Context) (*Receiver, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Receiver.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReceiver sets the old Receiver of the mutation.
func withReceiver(node *Receiver) receiverOption {
	return func(m *ReceiverMutation) {
		m.oldValue = func(context.Context) (*Receiver, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReceiverMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReceiverMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Receiver entities.
func (m *ReceiverMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReceiverMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReceiverMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Receiver.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ReceiverMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ReceiverMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Receiver entity.
// If the Receiver object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiverMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ReceiverMutation) ResetName() {
	m.name = nil
}

// SetEndpoint sets the "endpoint" field.
func (m *ReceiverMutation) SetEndpoint(s string) {
	m.endpoint = &s
}

// Endpoint returns the value of the "endpoint" field in the mutation.
func (m *ReceiverMutation) Endpoint() (r string, exists bool) {
	v := m.endpoint
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpoint returns the old "endpoint" field's value of the Receiver entity.
// If the Receiver object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiverMutation) OldEndpoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpoint: %w", err)
	}
	return oldValue.Endpoint, nil
}

// ResetEndpoint resets all changes to the "endpoint" field.
func (m *ReceiverMutation) ResetEndpoint() {
	m.endpoint = nil
}

// SetAuthKind sets the "auth_kind" field.
func (m *ReceiverMutation) SetAuthKind(s string) {
	m.auth_kind = &s
}

// AuthKind returns the value of the "auth_kind" field in the mutation.
func (m *ReceiverMutation) AuthKind() (r string, exists bool) {
	v := m.auth_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthKind returns the old "auth_kind" field's value of the Receiver entity.
// If the Receiver object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiverMutation) OldAuthKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthKind: %w", err)
	}
	return oldValue.AuthKind, nil
}

// ResetAuthKind resets all changes to the "auth_kind" field.
func (m *ReceiverMutation) ResetAuthKind() {
	m.auth_kind = nil
}

// SetAuthUser sets the "auth_user" field.
func (m *ReceiverMutation) SetAuthUser(s string) {
	m.auth_user = &s
}

// AuthUser returns the value of the "auth_user" field in the mutation.
func (m *ReceiverMutation) AuthUser() (r string, exists bool) {
	v := m.auth_user
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthUser returns the old "auth_user" field's value of the Receiver entity.
// If the Receiver object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiverMutation) OldAuthUser(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthUser is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthUser requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthUser: %w", err)
	}
	return oldValue.AuthUser, nil
}

// ResetAuthUser resets all changes to the "auth_user" field.
func (m *ReceiverMutation) ResetAuthUser() {
	m.auth_user = nil
}

// SetAuthToken sets the "auth_token" field.
func (m *ReceiverMutation) SetAuthToken(s string) {
	m.auth_token = &s
}

// AuthToken returns the value of the "auth_token" field in the mutation.
func (m *ReceiverMutation) AuthToken() (r string, exists bool) {
	v := m.auth_token
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthToken returns the old "auth_token" field's value of the Receiver entity.
// If the Receiver object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiverMutation) OldAuthToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthToken: %w", err)
	}
	return oldValue.AuthToken, nil
}

// ResetAuthToken resets all changes to the "auth_token" field.
func (m *ReceiverMutation) ResetAuthToken() {
	m.auth_token = nil
}

// SetSigningSecret sets the "signing_secret" field.
func (m *ReceiverMutation) SetSigningSecret(s string) {
	m.signing_secret = &s
}

// SigningSecret returns the value of the "signing_secret" field in the mutation.
func (m *ReceiverMutation) SigningSecret() (r string, exists bool) {
	v := m.signing_secret
	if v == nil {
		return
	}
	return *v, true
}

// OldSigningSecret returns the old "signing_secret" field's value of the Receiver entity.
// If the Receiver object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiverMutation) OldSigningSecret(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSigningSecret is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSigningSecret requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSigningSecret: %w", err)
	}
	return oldValue.SigningSecret, nil
}

// ResetSigningSecret resets all changes to the "signing_secret" field.
func (m *ReceiverMutation) ResetSigningSecret() {
	m.signing_secret = nil
}

// SetBodyTemplate sets the "body_template" field.
func (m *ReceiverMutation) SetBodyTemplate(s string) {
	m.body_template = &s
}

// BodyTemplate returns the value of the "body_template" field in the mutation.
func (m *ReceiverMutation) BodyTemplate() (r string, exists bool) {
	v := m.body_template
	if v == nil {
		return
	}
	return *v, true
}

// OldBodyTemplate returns the old "body_template" field's value of the Receiver entity.
// If the Receiver object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiverMutation) OldBodyTemplate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBodyTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBodyTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBodyTemplate: %w", err)
	}
	return oldValue.BodyTemplate, nil
}

// ResetBodyTemplate resets all changes to the "body_template" field.
func (m *ReceiverMutation) ResetBodyTemplate() {
	m.body_template = nil
}

// SetActive sets the "active" field.
func (m *ReceiverMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *ReceiverMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Receiver entity.
// If the Receiver object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiverMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *ReceiverMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReceiverMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReceiverMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Receiver entity.
// If the Receiver object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiverMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReceiverMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddRuleIDs adds the "rules" edge to the Rule entity by ids.
func (m *ReceiverMutation) AddRuleIDs(ids ...uuid.UUID) {
	if m.rules == nil {
		m.rules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.rules[ids[i]] = struct{}{}
	}
}

// ClearRules clears the "rules" edge to the Rule entity.
func (m *ReceiverMutation) ClearRules() {
	m.clearedrules = true
}

// RulesCleared reports if the "rules" edge to the Rule entity was cleared.
func (m *ReceiverMutation) RulesCleared() bool {
	return m.clearedrules
}

// RemoveRuleIDs removes the "rules" edge to the Rule entity by IDs.
func (m *ReceiverMutation) RemoveRuleIDs(ids ...uuid.UUID) {
	if m.removedrules == nil {
		m.removedrules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.rules, ids[i])
		m.removedrules[ids[i]] = struct{}{}
	}
}

// RemovedRules returns the removed IDs of the "rules" edge to the Rule entity.
func (m *ReceiverMutation) RemovedRulesIDs() (ids []uuid.UUID) {
	for id := range m.removedrules {
		ids = append(ids, id)
	}
	return
}

// RulesIDs returns the "rules" edge IDs in the mutation.
func (m *ReceiverMutation) RulesIDs() (ids []uuid.UUID) {
	for id := range m.rules {
		ids = append(ids, id)
	}
	return
}

// ResetRules resets all changes to the "rules" edge.
func (m *ReceiverMutation) ResetRules() {
	m.rules = nil
	m.clearedrules = false
	m.removedrules = nil
}

// Where appends a list predicates to the ReceiverMutation builder.
func (m *ReceiverMutation) Where(ps ...predicate.Receiver) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReceiverMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReceiverMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Receiver, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReceiverMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReceiverMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Receiver).
func (m *ReceiverMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReceiverMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, receiver.FieldName)
	}
	if m.endpoint != nil {
		fields = append(fields, receiver.FieldEndpoint)
	}
	if m.auth_kind != nil {
		fields = append(fields, receiver.FieldAuthKind)
	}
	if m.auth_user != nil {
		fields = append(fields, receiver.FieldAuthUser)
	}
	if m.auth_token != nil {
		fields = append(fields, receiver.FieldAuthToken)
	}
	if m.signing_secret != nil {
		fields = append(fields, receiver.FieldSigningSecret)
	}
	if m.body_template != nil {
		fields = append(fields, receiver.FieldBodyTemplate)
	}
	if m.active != nil {
		fields = append(fields, receiver.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, receiver.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReceiverMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case receiver.FieldName:
		return m.Name()
	case receiver.FieldEndpoint:
		return m.Endpoint()
	case receiver.FieldAuthKind:
		return m.AuthKind()
	case receiver.FieldAuthUser:
		return m.AuthUser()
	case receiver.FieldAuthToken:
		return m.AuthToken()
	case receiver.FieldSigningSecret:
		return m.SigningSecret()
	case receiver.FieldBodyTemplate:
		return m.BodyTemplate()
	case receiver.FieldActive:
		return m.Active()
	case receiver.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReceiverMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case receiver.FieldName:
		return m.OldName(ctx)
	case receiver.FieldEndpoint:
		return m.OldEndpoint(ctx)
	case receiver.FieldAuthKind:
		return m.OldAuthKind(ctx)
	case receiver.FieldAuthUser:
		return m.OldAuthUser(ctx)
	case receiver.FieldAuthToken:
		return m.OldAuthToken(ctx)
	case receiver.FieldSigningSecret:
		return m.OldSigningSecret(ctx)
	case receiver.FieldBodyTemplate:
		return m.OldBodyTemplate(ctx)
	case receiver.FieldActive:
		return m.OldActive(ctx)
	case receiver.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Receiver field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiverMutation) SetField(name string, value ent.Value) error {
	switch name {
	case receiver.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case receiver.FieldEndpoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpoint(v)
		return nil
	case receiver.FieldAuthKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthKind(v)
		return nil
	case receiver.FieldAuthUser:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthUser(v)
		return nil
	case receiver.FieldAuthToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthToken(v)
		return nil
	case receiver.FieldSigningSecret:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSigningSecret(v)
		return nil
	case receiver.FieldBodyTemplate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBodyTemplate(v)
		return nil
	case receiver.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case receiver.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Receiver field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReceiverMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReceiverMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiverMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Receiver numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReceiverMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReceiverMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReceiverMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Receiver nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReceiverMutation) ResetField(name string) error {
	switch name {
	case receiver.FieldName:
		m.ResetName()
		return nil
	case receiver.FieldEndpoint:
		m.ResetEndpoint()
		return nil
	case receiver.FieldAuthKind:
		m.ResetAuthKind()
		return nil
	case receiver.FieldAuthUser:
		m.ResetAuthUser()
		return nil
	case receiver.FieldAuthToken:
		m.ResetAuthToken()
		return nil
	case receiver.FieldSigningSecret:
		m.ResetSigningSecret()
		return nil
	case receiver.FieldBodyTemplate:
		m.ResetBodyTemplate()
		return nil
	case receiver.FieldActive:
		m.ResetActive()
		return nil
	case receiver.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Receiver field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReceiverMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.rules != nil {
		edges = append(edges, receiver.EdgeRules)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReceiverMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case receiver.EdgeRules:
		ids := make([]ent.Value, 0, len(m.rules))
		for id := range m.rules {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReceiverMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedrules != nil {
		edges = append(edges, receiver.EdgeRules)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReceiverMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case receiver.EdgeRules:
		ids := make([]ent.Value, 0, len(m.removedrules))
		for id := range m.removedrules {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReceiverMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrules {
		edges = append(edges, receiver.EdgeRules)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReceiverMutation) EdgeCleared(name string) bool {
	switch name {
	case receiver.EdgeRules:
		return m.clearedrules
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReceiverMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Receiver unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReceiverMutation) ResetEdge(name string) error {
	switch name {
	case receiver.EdgeRules:
		m.ResetRules()
		return nil
	}
	return fmt.Errorf("unknown Receiver edge %s", name)
}

// RuleMutation represents an operation that mutates the Rule nodes in the graph.
type RuleMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	rule_id          *string
	version          *string
	name             *string
	page_policy      *string
	pages            *json.RawMessage
	appendpages      json.RawMessage
	engines          *json.RawMessage
	appendengines    json.RawMessage
	language         *string
	fields           *json.RawMessage
	appendfields     json.RawMessage
	active           *bool
	created_at       *time.Time
	clearedFields    map[string]struct{}
	receivers        map[uuid.UUID]struct{}
	removedreceivers map[uuid.UUID]struct{}
	clearedreceivers bool
	done             bool
	oldValue         func(context.Context) (*Rule, error)
	predicates       []predicate.Rule
}

var _ ent.Mutation = (*RuleMutation)(nil)

// ruleOption allows management of the mutation configuration using functional options.
type ruleOption func(*RuleMutation)

// newRuleMutation creates new mutation for the Rule entity.
func newRuleMutation(c config, op Op, opts ...ruleOption) *RuleMutation {
	m := &RuleMutation{
		config:        c,
		op:            op,
		typ:           TypeRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRuleID sets the ID field of the mutation.
func withRuleID(id uuid.UUID) ruleOption {
	return func(m *RuleMutation) {
		var (
			err   error
			once  sync.Once
			value *Rule
		)
		m.oldValue = func(ctx context.Context) (*Rule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Rule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRule sets the old Rule of the mutation.
func withRule(node *Rule) ruleOption {
	return func(m *RuleMutation) {
		m.oldValue = func(context.Context) (*Rule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Rule entities.
func (m *RuleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RuleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RuleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Rule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRuleID sets the "rule_id" field.
func (m *RuleMutation) SetRuleID(s string) {
	m.rule_id = &s
}

// RuleID returns the value of the "rule_id" field in the mutation.
func (m *RuleMutation) RuleID() (r string, exists bool) {
	v := m.rule_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleID returns the old "rule_id" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldRuleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleID: %w", err)
	}
	return oldValue.RuleID, nil
}

// ResetRuleID resets all changes to the "rule_id" field.
func (m *RuleMutation) ResetRuleID() {
	m.rule_id = nil
}

// SetVersion sets the "version" field.
func (m *RuleMutation) SetVersion(s string) {
	m.version = &s
}

// Version returns the value of the "version" field in the mutation.
func (m *RuleMutation) Version() (r string, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// ResetVersion resets all changes to the "version" field.
func (m *RuleMutation) ResetVersion() {
	m.version = nil
}

// SetName sets the "name" field.
func (m *RuleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RuleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RuleMutation) ResetName() {
	m.name = nil
}

// SetPagePolicy sets the "page_policy" field.
func (m *RuleMutation) SetPagePolicy(s string) {
	m.page_policy = &s
}

// PagePolicy returns the value of the "page_policy" field in the mutation.
func (m *RuleMutation) PagePolicy() (r string, exists bool) {
	v := m.page_policy
	if v == nil {
		return
	}
	return *v, true
}

// OldPagePolicy returns the old "page_policy" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldPagePolicy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPagePolicy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPagePolicy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPagePolicy: %w", err)
	}
	return oldValue.PagePolicy, nil
}

// ResetPagePolicy resets all changes to the "page_policy" field.
func (m *RuleMutation) ResetPagePolicy() {
	m.page_policy = nil
}

// SetPages sets the "pages" field.
func (m *RuleMutation) SetPages(jm json.RawMessage) {
	m.pages = &jm
	m.appendpages = nil
}

// Pages returns the value of the "pages" field in the mutation.
func (m *RuleMutation) Pages() (r json.RawMessage, exists bool) {
	v := m.pages
	if v == nil {
		return
	}
	return *v, true
}

// OldPages returns the old "pages" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldPages(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPages: %w", err)
	}
	return oldValue.Pages, nil
}

// AppendPages adds jm to the "pages" field.
func (m *RuleMutation) AppendPages(jm json.RawMessage) {
	m.appendpages = append(m.appendpages, jm...)
}

// AppendedPages returns the list of values that were appended to the "pages" field in this mutation.
func (m *RuleMutation) AppendedPages() (json.RawMessage, bool) {
	if len(m.appendpages) == 0 {
		return nil, false
	}
	return m.appendpages, true
}

// ClearPages clears the value of the "pages" field.
func (m *RuleMutation) ClearPages() {
	m.pages = nil
	m.appendpages = nil
	m.clearedFields[rule.FieldPages] = struct{}{}
}

// PagesCleared returns if the "pages" field was cleared in this mutation.
func (m *RuleMutation) PagesCleared() bool {
	_, ok := m.clearedFields[rule.FieldPages]
	return ok
}

// ResetPages resets all changes to the "pages" field.
func (m *RuleMutation) ResetPages() {
	m.pages = nil
	m.appendpages = nil
	delete(m.clearedFields, rule.FieldPages)
}

// SetEngines sets the "engines" field.
func (m *RuleMutation) SetEngines(jm json.RawMessage) {
	m.engines = &jm
	m.appendengines = nil
}

// Engines returns the value of the "engines" field in the mutation.
func (m *RuleMutation) Engines() (r json.RawMessage, exists bool) {
	v := m.engines
	if v == nil {
		return
	}
	return *v, true
}

// OldEngines returns the old "engines" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldEngines(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngines is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngines requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngines: %w", err)
	}
	return oldValue.Engines, nil
}

// AppendEngines adds jm to the "engines" field.
func (m *RuleMutation) AppendEngines(jm json.RawMessage) {
	m.appendengines = append(m.appendengines, jm...)
}

// AppendedEngines returns the list of values that were appended to the "engines" field in this mutation.
func (m *RuleMutation) AppendedEngines() (json.RawMessage, bool) {
	if len(m.appendengines) == 0 {
		return nil, false
	}
	return m.appendengines, true
}

// ClearEngines clears the value of the "engines" field.
func (m *RuleMutation) ClearEngines() {
	m.engines = nil
	m.appendengines = nil
	m.clearedFields[rule.FieldEngines] = struct{}{}
}

// EnginesCleared returns if the "engines" field was cleared in this mutation.
func (m *RuleMutation) EnginesCleared() bool {
	_, ok := m.clearedFields[rule.FieldEngines]
	return ok
}

// ResetEngines resets all changes to the "engines" field.
func (m *RuleMutation) ResetEngines() {
	m.engines = nil
	m.appendengines = nil
	delete(m.clearedFields, rule.FieldEngines)
}

// SetLanguage sets the "language" field.
func (m *RuleMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *RuleMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *RuleMutation) ResetLanguage() {
	m.language = nil
}

// SetFields sets the "fields" field.
func (m *RuleMutation) SetFields(jm json.RawMessage) {
	m.fields = &jm
	m.appendfields = nil
}

// GetFields returns the value of the "fields" field in the mutation.
func (m *RuleMutation) GetFields() (r json.RawMessage, exists bool) {
	v := m.fields
	if v == nil {
		return
	}
	return *v, true
}

// OldFields returns the old "fields" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFields: %w", err)
	}
	return oldValue.Fields, nil
}

// AppendFields adds jm to the "fields" field.
func (m *RuleMutation) AppendFields(jm json.RawMessage) {
	m.appendfields = append(m.appendfields, jm...)
}

// AppendedFields returns the list of values that were appended to the "fields" field in this mutation.
func (m *RuleMutation) AppendedFields() (json.RawMessage, bool) {
	if len(m.appendfields) == 0 {
		return nil, false
	}
	return m.appendfields, true
}

// ClearFields clears the value of the "fields" field.
func (m *RuleMutation) ClearFields() {
	m.fields = nil
	m.appendfields = nil
	m.clearedFields[rule.FieldFields] = struct{}{}
}

// FieldsCleared returns if the "fields" field was cleared in this mutation.
func (m *RuleMutation) FieldsCleared() bool {
	_, ok := m.clearedFields[rule.FieldFields]
	return ok
}

// ResetFields resets all changes to the "fields" field.
func (m *RuleMutation) ResetFields() {
	m.fields = nil
	m.appendfields = nil
	delete(m.clearedFields, rule.FieldFields)
}

// SetActive sets the "active" field.
func (m *RuleMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *RuleMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *RuleMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Rule entity.
// If the Rule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddReceiverIDs adds the "receivers" edge to the Receiver entity by ids.
func (m *RuleMutation) AddReceiverIDs(ids ...uuid.UUID) {
	if m.receivers == nil {
		m.receivers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.receivers[ids[i]] = struct{}{}
	}
}

// ClearReceivers clears the "receivers" edge to the Receiver entity.
func (m *RuleMutation) ClearReceivers() {
	m.clearedreceivers = true
}

// ReceiversCleared reports if the "receivers" edge to the Receiver entity was cleared.
func (m *RuleMutation) ReceiversCleared() bool {
	return m.clearedreceivers
}

// RemoveReceiverIDs removes the "receivers" edge to the Receiver entity by IDs.
func (m *RuleMutation) RemoveReceiverIDs(ids ...uuid.UUID) {
	if m.removedreceivers == nil {
		m.removedreceivers = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.receivers, ids[i])
		m.removedreceivers[ids[i]] = struct{}{}
	}
}

// RemovedReceivers returns the removed IDs of the "receivers" edge to the Receiver entity.
func (m *RuleMutation) RemovedReceiversIDs() (ids []uuid.UUID) {
	for id := range m.removedreceivers {
		ids = append(ids, id)
	}
	return
}

// ReceiversIDs returns the "receivers" edge IDs in the mutation.
func (m *RuleMutation) ReceiversIDs() (ids []uuid.UUID) {
	for id := range m.receivers {
		ids = append(ids, id)
	}
	return
}

// ResetReceivers resets all changes to the "receivers" edge.
func (m *RuleMutation) ResetReceivers() {
	m.receivers = nil
	m.clearedreceivers = false
	m.removedreceivers = nil
}

// Where appends a list predicates to the RuleMutation builder.
func (m *RuleMutation) Where(ps ...predicate.Rule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Rule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Rule).
func (m *RuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RuleMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.rule_id != nil {
		fields = append(fields, rule.FieldRuleID)
	}
	if m.version != nil {
		fields = append(fields, rule.FieldVersion)
	}
	if m.name != nil {
		fields = append(fields, rule.FieldName)
	}
	if m.page_policy != nil {
		fields = append(fields, rule.FieldPagePolicy)
	}
	if m.pages != nil {
		fields = append(fields, rule.FieldPages)
	}
	if m.engines != nil {
		fields = append(fields, rule.FieldEngines)
	}
	if m.language != nil {
		fields = append(fields, rule.FieldLanguage)
	}
	if m.fields != nil {
		fields = append(fields, rule.FieldFields)
	}
	if m.active != nil {
		fields = append(fields, rule.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, rule.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rule.FieldRuleID:
		return m.RuleID()
	case rule.FieldVersion:
		return m.Version()
	case rule.FieldName:
		return m.Name()
	case rule.FieldPagePolicy:
		return m.PagePolicy()
	case rule.FieldPages:
		return m.Pages()
	case rule.FieldEngines:
		return m.Engines()
	case rule.FieldLanguage:
		return m.Language()
	case rule.FieldFields:
		return m.GetFields()
	case rule.FieldActive:
		return m.Active()
	case rule.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rule.FieldRuleID:
		return m.OldRuleID(ctx)
	case rule.FieldVersion:
		return m.OldVersion(ctx)
	case rule.FieldName:
		return m.OldName(ctx)
	case rule.FieldPagePolicy:
		return m.OldPagePolicy(ctx)
	case rule.FieldPages:
		return m.OldPages(ctx)
	case rule.FieldEngines:
		return m.OldEngines(ctx)
	case rule.FieldLanguage:
		return m.OldLanguage(ctx)
	case rule.FieldFields:
		return m.OldFields(ctx)
	case rule.FieldActive:
		return m.OldActive(ctx)
	case rule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Rule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rule.FieldRuleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleID(v)
		return nil
	case rule.FieldVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case rule.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case rule.FieldPagePolicy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPagePolicy(v)
		return nil
	case rule.FieldPages:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPages(v)
		return nil
	case rule.FieldEngines:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngines(v)
		return nil
	case rule.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case rule.FieldFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFields(v)
		return nil
	case rule.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case rule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Rule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RuleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RuleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Rule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rule.FieldPages) {
		fields = append(fields, rule.FieldPages)
	}
	if m.FieldCleared(rule.FieldEngines) {
		fields = append(fields, rule.FieldEngines)
	}
	if m.FieldCleared(rule.FieldFields) {
		fields = append(fields, rule.FieldFields)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RuleMutation) ClearField(name string) error {
	switch name {
	case rule.FieldPages:
		m.ClearPages()
		return nil
	case rule.FieldEngines:
		m.ClearEngines()
		return nil
	case rule.FieldFields:
		m.ClearFields()
		return nil
	}
	return fmt.Errorf("unknown Rule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RuleMutation) ResetField(name string) error {
	switch name {
	case rule.FieldRuleID:
		m.ResetRuleID()
		return nil
	case rule.FieldVersion:
		m.ResetVersion()
		return nil
	case rule.FieldName:
		m.ResetName()
		return nil
	case rule.FieldPagePolicy:
		m.ResetPagePolicy()
		return nil
	case rule.FieldPages:
		m.ResetPages()
		return nil
	case rule.FieldEngines:
		m.ResetEngines()
		return nil
	case rule.FieldLanguage:
		m.ResetLanguage()
		return nil
	case rule.FieldFields:
		m.ResetFields()
		return nil
	case rule.FieldActive:
		m.ResetActive()
		return nil
	case rule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Rule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.receivers != nil {
		edges = append(edges, rule.EdgeReceivers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RuleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case rule.EdgeReceivers:
		ids := make([]ent.Value, 0, len(m.receivers))
		for id := range m.receivers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedreceivers != nil {
		edges = append(edges, rule.EdgeReceivers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RuleMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case rule.EdgeReceivers:
		ids := make([]ent.Value, 0, len(m.removedreceivers))
		for id := range m.removedreceivers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreceivers {
		edges = append(edges, rule.EdgeReceivers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RuleMutation) EdgeCleared(name string) bool {
	switch name {
	case rule.EdgeReceivers:
		return m.clearedreceivers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RuleMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Rule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RuleMutation) ResetEdge(name string) error {
	switch name {
	case rule.EdgeReceivers:
		m.ResetReceivers()
		return nil
	}
	return fmt.Errorf("unknown Rule edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	fingerprint             *string
	status                  *string
	rule_id                 *string
	rule_version            *string
	page_count              *int
	addpage_count           *int
	format                  *string
	blob_key                *string
	instant                 *bool
	extracted_data          *json.RawMessage
	appendextracted_data    json.RawMessage
	confidence_scores       *json.RawMessage
	appendconfidence_scores json.RawMessage
	audit_reasons           *json.RawMessage
	appendaudit_reasons     json.RawMessage
	recognition_attempts    *int
	addrecognition_attempts *int
	delivery_attempts       *int
	adddelivery_attempts    *int
	created_at              *time.Time
	completed_at            *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*Task, error)
	predicates              []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFingerprint sets the "fingerprint" field.
func (m *TaskMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *TaskMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *TaskMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetRuleID sets the "rule_id" field.
func (m *TaskMutation) SetRuleID(s string) {
	m.rule_id = &s
}

// RuleID returns the value of the "rule_id" field in the mutation.
func (m *TaskMutation) RuleID() (r string, exists bool) {
	v := m.rule_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleID returns the old "rule_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRuleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleID: %w", err)
	}
	return oldValue.RuleID, nil
}

// ResetRuleID resets all changes to the "rule_id" field.
func (m *TaskMutation) ResetRuleID() {
	m.rule_id = nil
}

// SetRuleVersion sets the "rule_version" field.
func (m *TaskMutation) SetRuleVersion(s string) {
	m.rule_version = &s
}

// RuleVersion returns the value of the "rule_version" field in the mutation.
func (m *TaskMutation) RuleVersion() (r string, exists bool) {
	v := m.rule_version
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleVersion returns the old "rule_version" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRuleVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleVersion: %w", err)
	}
	return oldValue.RuleVersion, nil
}

// ResetRuleVersion resets all changes to the "rule_version" field.
func (m *TaskMutation) ResetRuleVersion() {
	m.rule_version = nil
}

// SetPageCount sets the "page_count" field.
func (m *TaskMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *TaskMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *TaskMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *TaskMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *TaskMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
}

// SetFormat sets the "format" field.
func (m *TaskMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *TaskMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *TaskMutation) ResetFormat() {
	m.format = nil
}

// SetBlobKey sets the "blob_key" field.
func (m *TaskMutation) SetBlobKey(s string) {
	m.blob_key = &s
}

// BlobKey returns the value of the "blob_key" field in the mutation.
func (m *TaskMutation) BlobKey() (r string, exists bool) {
	v := m.blob_key
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobKey returns the old "blob_key" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldBlobKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobKey: %w", err)
	}
	return oldValue.BlobKey, nil
}

// ResetBlobKey resets all changes to the "blob_key" field.
func (m *TaskMutation) ResetBlobKey() {
	m.blob_key = nil
}

// SetInstant sets the "instant" field.
func (m *TaskMutation) SetInstant(b bool) {
	m.instant = &b
}

// Instant returns the value of the "instant" field in the mutation.
func (m *TaskMutation) Instant() (r bool, exists bool) {
	v := m.instant
	if v == nil {
		return
	}
	return *v, true
}

// OldInstant returns the old "instant" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldInstant(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstant: %w", err)
	}
	return oldValue.Instant, nil
}

// ResetInstant resets all changes to the "instant" field.
func (m *TaskMutation) ResetInstant() {
	m.instant = nil
}

// SetExtractedData sets the "extracted_data" field.
func (m *TaskMutation) SetExtractedData(jm json.RawMessage) {
	m.extracted_data = &jm
	m.appendextracted_data = nil
}

// ExtractedData returns the value of the "extracted_data" field in the mutation.
func (m *TaskMutation) ExtractedData() (r json.RawMessage, exists bool) {
	v := m.extracted_data
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedData returns the old "extracted_data" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldExtractedData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedData: %w", err)
	}
	return oldValue.ExtractedData, nil
}

// AppendExtractedData adds jm to the "extracted_data" field.
func (m *TaskMutation) AppendExtractedData(jm json.RawMessage) {
	m.appendextracted_data = append(m.appendextracted_data, jm...)
}

// AppendedExtractedData returns the list of values that were appended to the "extracted_data" field in this mutation.
func (m *TaskMutation) AppendedExtractedData() (json.RawMessage, bool) {
	if len(m.appendextracted_data) == 0 {
		return nil, false
	}
	return m.appendextracted_data, true
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (m *TaskMutation) ClearExtractedData() {
	m.extracted_data = nil
	m.appendextracted_data = nil
	m.clearedFields[task.FieldExtractedData] = struct{}{}
}

// ExtractedDataCleared returns if the "extracted_data" field was cleared in this mutation.
func (m *TaskMutation) ExtractedDataCleared() bool {
	_, ok := m.clearedFields[task.FieldExtractedData]
	return ok
}

// ResetExtractedData resets all changes to the "extracted_data" field.
func (m *TaskMutation) ResetExtractedData() {
	m.extracted_data = nil
	m.appendextracted_data = nil
	delete(m.clearedFields, task.FieldExtractedData)
}

// SetConfidenceScores sets the "confidence_scores" field.
func (m *TaskMutation) SetConfidenceScores(jm json.RawMessage) {
	m.confidence_scores = &jm
	m.appendconfidence_scores = nil
}

// ConfidenceScores returns the value of the "confidence_scores" field in the mutation.
func (m *TaskMutation) ConfidenceScores() (r json.RawMessage, exists bool) {
	v := m.confidence_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScores returns the old "confidence_scores" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldConfidenceScores(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScores: %w", err)
	}
	return oldValue.ConfidenceScores, nil
}

// AppendConfidenceScores adds jm to the "confidence_scores" field.
func (m *TaskMutation) AppendConfidenceScores(jm json.RawMessage) {
	m.appendconfidence_scores = append(m.appendconfidence_scores, jm...)
}

// AppendedConfidenceScores returns the list of values that were appended to the "confidence_scores" field in this mutation.
func (m *TaskMutation) AppendedConfidenceScores() (json.RawMessage, bool) {
	if len(m.appendconfidence_scores) == 0 {
		return nil, false
	}
	return m.appendconfidence_scores, true
}

// ClearConfidenceScores clears the value of the "confidence_scores" field.
func (m *TaskMutation) ClearConfidenceScores() {
	m.confidence_scores = nil
	m.appendconfidence_scores = nil
	m.clearedFields[task.FieldConfidenceScores] = struct{}{}
}

// ConfidenceScoresCleared returns if the "confidence_scores" field was cleared in this mutation.
func (m *TaskMutation) ConfidenceScoresCleared() bool {
	_, ok := m.clearedFields[task.FieldConfidenceScores]
	return ok
}

// ResetConfidenceScores resets all changes to the "confidence_scores" field.
func (m *TaskMutation) ResetConfidenceScores() {
	m.confidence_scores = nil
	m.appendconfidence_scores = nil
	delete(m.clearedFields, task.FieldConfidenceScores)
}

// SetAuditReasons sets the "audit_reasons" field.
func (m *TaskMutation) SetAuditReasons(jm json.RawMessage) {
	m.audit_reasons = &jm
	m.appendaudit_reasons = nil
}

// AuditReasons returns the value of the "audit_reasons" field in the mutation.
func (m *TaskMutation) AuditReasons() (r json.RawMessage, exists bool) {
	v := m.audit_reasons
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditReasons returns the old "audit_reasons" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAuditReasons(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditReasons is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditReasons requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditReasons: %w", err)
	}
	return oldValue.AuditReasons, nil
}

// AppendAuditReasons adds jm to the "audit_reasons" field.
func (m *TaskMutation) AppendAuditReasons(jm json.RawMessage) {
	m.appendaudit_reasons = append(m.appendaudit_reasons, jm...)
}

// AppendedAuditReasons returns the list of values that were appended to the "audit_reasons" field in this mutation.
func (m *TaskMutation) AppendedAuditReasons() (json.RawMessage, bool) {
	if len(m.appendaudit_reasons) == 0 {
		return nil, false
	}
	return m.appendaudit_reasons, true
}

// ClearAuditReasons clears the value of the "audit_reasons" field.
func (m *TaskMutation) ClearAuditReasons() {
	m.audit_reasons = nil
	m.appendaudit_reasons = nil
	m.clearedFields[task.FieldAuditReasons] = struct{}{}
}

// AuditReasonsCleared returns if the "audit_reasons" field was cleared in this mutation.
func (m *TaskMutation) AuditReasonsCleared() bool {
	_, ok := m.clearedFields[task.FieldAuditReasons]
	return ok
}

// ResetAuditReasons resets all changes to the "audit_reasons" field.
func (m *TaskMutation) ResetAuditReasons() {
	m.audit_reasons = nil
	m.appendaudit_reasons = nil
	delete(m.clearedFields, task.FieldAuditReasons)
}

// SetRecognitionAttempts sets the "recognition_attempts" field.
func (m *TaskMutation) SetRecognitionAttempts(i int) {
	m.recognition_attempts = &i
	m.addrecognition_attempts = nil
}

// RecognitionAttempts returns the value of the "recognition_attempts" field in the mutation.
func (m *TaskMutation) RecognitionAttempts() (r int, exists bool) {
	v := m.recognition_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldRecognitionAttempts returns the old "recognition_attempts" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRecognitionAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecognitionAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecognitionAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecognitionAttempts: %w", err)
	}
	return oldValue.RecognitionAttempts, nil
}

// AddRecognitionAttempts adds i to the "recognition_attempts" field.
func (m *TaskMutation) AddRecognitionAttempts(i int) {
	if m.addrecognition_attempts != nil {
		*m.addrecognition_attempts += i
	} else {
		m.addrecognition_attempts = &i
	}
}

// AddedRecognitionAttempts returns the value that was added to the "recognition_attempts" field in this mutation.
func (m *TaskMutation) AddedRecognitionAttempts() (r int, exists bool) {
	v := m.addrecognition_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecognitionAttempts resets all changes to the "recognition_attempts" field.
func (m *TaskMutation) ResetRecognitionAttempts() {
	m.recognition_attempts = nil
	m.addrecognition_attempts = nil
}

// SetDeliveryAttempts sets the "delivery_attempts" field.
func (m *TaskMutation) SetDeliveryAttempts(i int) {
	m.delivery_attempts = &i
	m.adddelivery_attempts = nil
}

// DeliveryAttempts returns the value of the "delivery_attempts" field in the mutation.
func (m *TaskMutation) DeliveryAttempts() (r int, exists bool) {
	v := m.delivery_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryAttempts returns the old "delivery_attempts" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDeliveryAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryAttempts: %w", err)
	}
	return oldValue.DeliveryAttempts, nil
}

// AddDeliveryAttempts adds i to the "delivery_attempts" field.
func (m *TaskMutation) AddDeliveryAttempts(i int) {
	if m.adddelivery_attempts != nil {
		*m.adddelivery_attempts += i
	} else {
		m.adddelivery_attempts = &i
	}
}

// AddedDeliveryAttempts returns the value that was added to the "delivery_attempts" field in this mutation.
func (m *TaskMutation) AddedDeliveryAttempts() (r int, exists bool) {
	v := m.adddelivery_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetDeliveryAttempts resets all changes to the "delivery_attempts" field.
func (m *TaskMutation) ResetDeliveryAttempts() {
	m.delivery_attempts = nil
	m.adddelivery_attempts = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.fingerprint != nil {
		fields = append(fields, task.FieldFingerprint)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.rule_id != nil {
		fields = append(fields, task.FieldRuleID)
	}
	if m.rule_version != nil {
		fields = append(fields, task.FieldRuleVersion)
	}
	if m.page_count != nil {
		fields = append(fields, task.FieldPageCount)
	}
	if m.format != nil {
		fields = append(fields, task.FieldFormat)
	}
	if m.blob_key != nil {
		fields = append(fields, task.FieldBlobKey)
	}
	if m.instant != nil {
		fields = append(fields, task.FieldInstant)
	}
	if m.extracted_data != nil {
		fields = append(fields, task.FieldExtractedData)
	}
	if m.confidence_scores != nil {
		fields = append(fields, task.FieldConfidenceScores)
	}
	if m.audit_reasons != nil {
		fields = append(fields, task.FieldAuditReasons)
	}
	if m.recognition_attempts != nil {
		fields = append(fields, task.FieldRecognitionAttempts)
	}
	if m.delivery_attempts != nil {
		fields = append(fields, task.FieldDeliveryAttempts)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldFingerprint:
		return m.Fingerprint()
	case task.FieldStatus:
		return m.Status()
	case task.FieldRuleID:
		return m.RuleID()
	case task.FieldRuleVersion:
		return m.RuleVersion()
	case task.FieldPageCount:
		return m.PageCount()
	case task.FieldFormat:
		return m.Format()
	case task.FieldBlobKey:
		return m.BlobKey()
	case task.FieldInstant:
		return m.Instant()
	case task.FieldExtractedData:
		return m.ExtractedData()
	case task.FieldConfidenceScores:
		return m.ConfidenceScores()
	case task.FieldAuditReasons:
		return m.AuditReasons()
	case task.FieldRecognitionAttempts:
		return m.RecognitionAttempts()
	case task.FieldDeliveryAttempts:
		return m.DeliveryAttempts()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldRuleID:
		return m.OldRuleID(ctx)
	case task.FieldRuleVersion:
		return m.OldRuleVersion(ctx)
	case task.FieldPageCount:
		return m.OldPageCount(ctx)
	case task.FieldFormat:
		return m.OldFormat(ctx)
	case task.FieldBlobKey:
		return m.OldBlobKey(ctx)
	case task.FieldInstant:
		return m.OldInstant(ctx)
	case task.FieldExtractedData:
		return m.OldExtractedData(ctx)
	case task.FieldConfidenceScores:
		return m.OldConfidenceScores(ctx)
	case task.FieldAuditReasons:
		return m.OldAuditReasons(ctx)
	case task.FieldRecognitionAttempts:
		return m.OldRecognitionAttempts(ctx)
	case task.FieldDeliveryAttempts:
		return m.OldDeliveryAttempts(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldRuleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleID(v)
		return nil
	case task.FieldRuleVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleVersion(v)
		return nil
	case task.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case task.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case task.FieldBlobKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobKey(v)
		return nil
	case task.FieldInstant:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstant(v)
		return nil
	case task.FieldExtractedData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedData(v)
		return nil
	case task.FieldConfidenceScores:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScores(v)
		return nil
	case task.FieldAuditReasons:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditReasons(v)
		return nil
	case task.FieldRecognitionAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecognitionAttempts(v)
		return nil
	case task.FieldDeliveryAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryAttempts(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addpage_count != nil {
		fields = append(fields, task.FieldPageCount)
	}
	if m.addrecognition_attempts != nil {
		fields = append(fields, task.FieldRecognitionAttempts)
	}
	if m.adddelivery_attempts != nil {
		fields = append(fields, task.FieldDeliveryAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldPageCount:
		return m.AddedPageCount()
	case task.FieldRecognitionAttempts:
		return m.AddedRecognitionAttempts()
	case task.FieldDeliveryAttempts:
		return m.AddedDeliveryAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	case task.FieldRecognitionAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecognitionAttempts(v)
		return nil
	case task.FieldDeliveryAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeliveryAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldExtractedData) {
		fields = append(fields, task.FieldExtractedData)
	}
	if m.FieldCleared(task.FieldConfidenceScores) {
		fields = append(fields, task.FieldConfidenceScores)
	}
	if m.FieldCleared(task.FieldAuditReasons) {
		fields = append(fields, task.FieldAuditReasons)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldExtractedData:
		m.ClearExtractedData()
		return nil
	case task.FieldConfidenceScores:
		m.ClearConfidenceScores()
		return nil
	case task.FieldAuditReasons:
		m.ClearAuditReasons()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldRuleID:
		m.ResetRuleID()
		return nil
	case task.FieldRuleVersion:
		m.ResetRuleVersion()
		return nil
	case task.FieldPageCount:
		m.ResetPageCount()
		return nil
	case task.FieldFormat:
		m.ResetFormat()
		return nil
	case task.FieldBlobKey:
		m.ResetBlobKey()
		return nil
	case task.FieldInstant:
		m.ResetInstant()
		return nil
	case task.FieldExtractedData:
		m.ResetExtractedData()
		return nil
	case task.FieldConfidenceScores:
		m.ResetConfidenceScores()
		return nil
	case task.FieldAuditReasons:
		m.ResetAuditReasons()
		return nil
	case task.FieldRecognitionAttempts:
		m.ResetRecognitionAttempts()
		return nil
	case task.FieldDeliveryAttempts:
		m.ResetDeliveryAttempts()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Task edge %s", name)
}
