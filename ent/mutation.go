// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Kurty-byte/plant-sampling/ent/auditlog"
	"github.com/Kurty-byte/plant-sampling/ent/environmentalcondition"
	"github.com/Kurty-byte/plant-sampling/ent/growthmetric"
	"github.com/Kurty-byte/plant-sampling/ent/location"
	"github.com/Kurty-byte/plant-sampling/ent/predicate"
	"github.com/Kurty-byte/plant-sampling/ent/researcher"
	"github.com/Kurty-byte/plant-sampling/ent/specimen"
	"github.com/Kurty-byte/plant-sampling/ent/specimenresearcher"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditLog               = "AuditLog"
	TypeEnvironmentalCondition = "EnvironmentalCondition"
	TypeGrowthMetric           = "GrowthMetric"
	TypeLocation               = "Location"
	TypeResearcher             = "Researcher"
	TypeSpecimen               = "Specimen"
	TypeSpecimenResearcher     = "SpecimenResearcher"
)

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	created_at    *time.Time
	specimen_id   *string
	action        *auditlog.Action
	details       *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditLog, error)
	predicates    []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id string) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSpecimenID sets the "specimen_id" field.
func (m *AuditLogMutation) SetSpecimenID(s string) {
	m.specimen_id = &s
}

// SpecimenID returns the value of the "specimen_id" field in the mutation.
func (m *AuditLogMutation) SpecimenID() (r string, exists bool) {
	v := m.specimen_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecimenID returns the old "specimen_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldSpecimenID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecimenID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecimenID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecimenID: %w", err)
	}
	return oldValue.SpecimenID, nil
}

// ClearSpecimenID clears the value of the "specimen_id" field.
func (m *AuditLogMutation) ClearSpecimenID() {
	m.specimen_id = nil
	m.clearedFields[auditlog.FieldSpecimenID] = struct{}{}
}

// SpecimenIDCleared returns if the "specimen_id" field was cleared in this mutation.
func (m *AuditLogMutation) SpecimenIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldSpecimenID]
	return ok
}

// ResetSpecimenID resets all changes to the "specimen_id" field.
func (m *AuditLogMutation) ResetSpecimenID() {
	m.specimen_id = nil
	delete(m.clearedFields, auditlog.FieldSpecimenID)
}

// SetAction sets the "action" field.
func (m *AuditLogMutation) SetAction(a auditlog.Action) {
	m.action = &a
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditLogMutation) Action() (r auditlog.Action, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAction(ctx context.Context) (v auditlog.Action, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditLogMutation) ResetAction() {
	m.action = nil
}

// SetDetails sets the "details" field.
func (m *AuditLogMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *AuditLogMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *AuditLogMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[auditlog.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *AuditLogMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *AuditLogMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, auditlog.FieldDetails)
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	if m.specimen_id != nil {
		fields = append(fields, auditlog.FieldSpecimenID)
	}
	if m.action != nil {
		fields = append(fields, auditlog.FieldAction)
	}
	if m.details != nil {
		fields = append(fields, auditlog.FieldDetails)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	case auditlog.FieldSpecimenID:
		return m.SpecimenID()
	case auditlog.FieldAction:
		return m.Action()
	case auditlog.FieldDetails:
		return m.Details()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case auditlog.FieldSpecimenID:
		return m.OldSpecimenID(ctx)
	case auditlog.FieldAction:
		return m.OldAction(ctx)
	case auditlog.FieldDetails:
		return m.OldDetails(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case auditlog.FieldSpecimenID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecimenID(v)
		return nil
	case auditlog.FieldAction:
		v, ok := value.(auditlog.Action)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditlog.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldSpecimenID) {
		fields = append(fields, auditlog.FieldSpecimenID)
	}
	if m.FieldCleared(auditlog.FieldDetails) {
		fields = append(fields, auditlog.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldSpecimenID:
		m.ClearSpecimenID()
		return nil
	case auditlog.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case auditlog.FieldSpecimenID:
		m.ResetSpecimenID()
		return nil
	case auditlog.FieldAction:
		m.ResetAction()
		return nil
	case auditlog.FieldDetails:
		m.ResetDetails()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// EnvironmentalConditionMutation represents an operation that mutates the EnvironmentalCondition nodes in the graph.
type EnvironmentalConditionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	created_at       *time.Time
	temperature      *float64
	addtemperature   *float64
	humidity         *float64
	addhumidity      *float64
	altitude         *float64
	addaltitude      *float64
	soil_ph          *float64
	addsoil_ph       *float64
	soil_type        *environmentalcondition.SoilType
	soil_nutrients   *map[string]interface{}
	clearedFields    map[string]struct{}
	specimens        map[string]struct{}
	removedspecimens map[string]struct{}
	clearedspecimens bool
	done             bool
	oldValue         func(context.Context) (*EnvironmentalCondition, error)
	predicates       []predicate.EnvironmentalCondition
}

var _ ent.Mutation = (*EnvironmentalConditionMutation)(nil)

// environmentalconditionOption allows management of the mutation configuration using functional options.
type environmentalconditionOption func(*EnvironmentalConditionMutation)

// newEnvironmentalConditionMutation creates new mutation for the EnvironmentalCondition entity.
func newEnvironmentalConditionMutation(c config, op Op, opts ...environmentalconditionOption) *EnvironmentalConditionMutation {
	m := &EnvironmentalConditionMutation{
		config:        c,
		op:            op,
		typ:           TypeEnvironmentalCondition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEnvironmentalConditionID sets the ID field of the mutation.
func withEnvironmentalConditionID(id string) environmentalconditionOption {
	return func(m *EnvironmentalConditionMutation) {
		var (
			err   error
			once  sync.Once
			value *EnvironmentalCondition
		)
		m.oldValue = func(ctx context.Context) (*EnvironmentalCondition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EnvironmentalCondition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEnvironmentalCondition sets the old EnvironmentalCondition of the mutation.
func withEnvironmentalCondition(node *EnvironmentalCondition) environmentalconditionOption {
	return func(m *EnvironmentalConditionMutation) {
		m.oldValue = func(context.Context) (*EnvironmentalCondition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EnvironmentalConditionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EnvironmentalConditionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EnvironmentalCondition entities.
func (m *EnvironmentalConditionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EnvironmentalConditionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EnvironmentalConditionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EnvironmentalCondition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *EnvironmentalConditionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EnvironmentalConditionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EnvironmentalCondition entity.
// If the EnvironmentalCondition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvironmentalConditionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *EnvironmentalConditionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetTemperature sets the "temperature" field.
func (m *EnvironmentalConditionMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *EnvironmentalConditionMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the EnvironmentalCondition entity.
// If the EnvironmentalCondition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvironmentalConditionMutation) OldTemperature(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *EnvironmentalConditionMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *EnvironmentalConditionMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *EnvironmentalConditionMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
}

// SetHumidity sets the "humidity" field.
func (m *EnvironmentalConditionMutation) SetHumidity(f float64) {
	m.humidity = &f
	m.addhumidity = nil
}

// Humidity returns the value of the "humidity" field in the mutation.
func (m *EnvironmentalConditionMutation) Humidity() (r float64, exists bool) {
	v := m.humidity
	if v == nil {
		return
	}
	return *v, true
}

// OldHumidity returns the old "humidity" field's value of the EnvironmentalCondition entity.
// If the EnvironmentalCondition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvironmentalConditionMutation) OldHumidity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHumidity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHumidity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHumidity: %w", err)
	}
	return oldValue.Humidity, nil
}

// AddHumidity adds f to the "humidity" field.
func (m *EnvironmentalConditionMutation) AddHumidity(f float64) {
	if m.addhumidity != nil {
		*m.addhumidity += f
	} else {
		m.addhumidity = &f
	}
}

// AddedHumidity returns the value that was added to the "humidity" field in this mutation.
func (m *EnvironmentalConditionMutation) AddedHumidity() (r float64, exists bool) {
	v := m.addhumidity
	if v == nil {
		return
	}
	return *v, true
}

// ResetHumidity resets all changes to the "humidity" field.
func (m *EnvironmentalConditionMutation) ResetHumidity() {
	m.humidity = nil
	m.addhumidity = nil
}

// SetAltitude sets the "altitude" field.
func (m *EnvironmentalConditionMutation) SetAltitude(f float64) {
	m.altitude = &f
	m.addaltitude = nil
}

// Altitude returns the value of the "altitude" field in the mutation.
func (m *EnvironmentalConditionMutation) Altitude() (r float64, exists bool) {
	v := m.altitude
	if v == nil {
		return
	}
	return *v, true
}

// OldAltitude returns the old "altitude" field's value of the EnvironmentalCondition entity.
// If the EnvironmentalCondition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvironmentalConditionMutation) OldAltitude(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAltitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAltitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAltitude: %w", err)
	}
	return oldValue.Altitude, nil
}

// AddAltitude adds f to the "altitude" field.
func (m *EnvironmentalConditionMutation) AddAltitude(f float64) {
	if m.addaltitude != nil {
		*m.addaltitude += f
	} else {
		m.addaltitude = &f
	}
}

// AddedAltitude returns the value that was added to the "altitude" field in this mutation.
func (m *EnvironmentalConditionMutation) AddedAltitude() (r float64, exists bool) {
	v := m.addaltitude
	if v == nil {
		return
	}
	return *v, true
}

// ResetAltitude resets all changes to the "altitude" field.
func (m *EnvironmentalConditionMutation) ResetAltitude() {
	m.altitude = nil
	m.addaltitude = nil
}

// SetSoilPh sets the "soil_ph" field.
func (m *EnvironmentalConditionMutation) SetSoilPh(f float64) {
	m.soil_ph = &f
	m.addsoil_ph = nil
}

// SoilPh returns the value of the "soil_ph" field in the mutation.
func (m *EnvironmentalConditionMutation) SoilPh() (r float64, exists bool) {
	v := m.soil_ph
	if v == nil {
		return
	}
	return *v, true
}

// OldSoilPh returns the old "soil_ph" field's value of the EnvironmentalCondition entity.
// If the EnvironmentalCondition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvironmentalConditionMutation) OldSoilPh(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSoilPh is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSoilPh requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSoilPh: %w", err)
	}
	return oldValue.SoilPh, nil
}

// AddSoilPh adds f to the "soil_ph" field.
func (m *EnvironmentalConditionMutation) AddSoilPh(f float64) {
	if m.addsoil_ph != nil {
		*m.addsoil_ph += f
	} else {
		m.addsoil_ph = &f
	}
}

// AddedSoilPh returns the value that was added to the "soil_ph" field in this mutation.
func (m *EnvironmentalConditionMutation) AddedSoilPh() (r float64, exists bool) {
	v := m.addsoil_ph
	if v == nil {
		return
	}
	return *v, true
}

// ResetSoilPh resets all changes to the "soil_ph" field.
func (m *EnvironmentalConditionMutation) ResetSoilPh() {
	m.soil_ph = nil
	m.addsoil_ph = nil
}

// SetSoilType sets the "soil_type" field.
func (m *EnvironmentalConditionMutation) SetSoilType(et environmentalcondition.SoilType) {
	m.soil_type = &et
}

// SoilType returns the value of the "soil_type" field in the mutation.
func (m *EnvironmentalConditionMutation) SoilType() (r environmentalcondition.SoilType, exists bool) {
	v := m.soil_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSoilType returns the old "soil_type" field's value of the EnvironmentalCondition entity.
// If the EnvironmentalCondition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvironmentalConditionMutation) OldSoilType(ctx context.Context) (v environmentalcondition.SoilType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSoilType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSoilType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSoilType: %w", err)
	}
	return oldValue.SoilType, nil
}

// ResetSoilType resets all changes to the "soil_type" field.
func (m *EnvironmentalConditionMutation) ResetSoilType() {
	m.soil_type = nil
}

// SetSoilNutrients sets the "soil_nutrients" field.
func (m *EnvironmentalConditionMutation) SetSoilNutrients(value map[string]interface{}) {
	m.soil_nutrients = &value
}

// SoilNutrients returns the value of the "soil_nutrients" field in the mutation.
func (m *EnvironmentalConditionMutation) SoilNutrients() (r map[string]interface{}, exists bool) {
	v := m.soil_nutrients
	if v == nil {
		return
	}
	return *v, true
}

// OldSoilNutrients returns the old "soil_nutrients" field's value of the EnvironmentalCondition entity.
// If the EnvironmentalCondition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnvironmentalConditionMutation) OldSoilNutrients(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSoilNutrients is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSoilNutrients requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSoilNutrients: %w", err)
	}
	return oldValue.SoilNutrients, nil
}

// ClearSoilNutrients clears the value of the "soil_nutrients" field.
func (m *EnvironmentalConditionMutation) ClearSoilNutrients() {
	m.soil_nutrients = nil
	m.clearedFields[environmentalcondition.FieldSoilNutrients] = struct{}{}
}

// SoilNutrientsCleared returns if the "soil_nutrients" field was cleared in this mutation.
func (m *EnvironmentalConditionMutation) SoilNutrientsCleared() bool {
	_, ok := m.clearedFields[environmentalcondition.FieldSoilNutrients]
	return ok
}

// ResetSoilNutrients resets all changes to the "soil_nutrients" field.
func (m *EnvironmentalConditionMutation) ResetSoilNutrients() {
	m.soil_nutrients = nil
	delete(m.clearedFields, environmentalcondition.FieldSoilNutrients)
}

// AddSpecimenIDs adds the "specimens" edge to the Specimen entity by ids.
func (m *EnvironmentalConditionMutation) AddSpecimenIDs(ids ...string) {
	if m.specimens == nil {
		m.specimens = make(map[string]struct{})
	}
	for i := range ids {
		m.specimens[ids[i]] = struct{}{}
	}
}

// ClearSpecimens clears the "specimens" edge to the Specimen entity.
func (m *EnvironmentalConditionMutation) ClearSpecimens() {
	m.clearedspecimens = true
}

// SpecimensCleared reports if the "specimens" edge to the Specimen entity was cleared.
func (m *EnvironmentalConditionMutation) SpecimensCleared() bool {
	return m.clearedspecimens
}

// RemoveSpecimenIDs removes the "specimens" edge to the Specimen entity by IDs.
func (m *EnvironmentalConditionMutation) RemoveSpecimenIDs(ids ...string) {
	if m.removedspecimens == nil {
		m.removedspecimens = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.specimens, ids[i])
		m.removedspecimens[ids[i]] = struct{}{}
	}
}

// RemovedSpecimens returns the removed IDs of the "specimens" edge to the Specimen entity.
func (m *EnvironmentalConditionMutation) RemovedSpecimensIDs() (ids []string) {
	for id := range m.removedspecimens {
		ids = append(ids, id)
	}
	return
}

// SpecimensIDs returns the "specimens" edge IDs in the mutation.
func (m *EnvironmentalConditionMutation) SpecimensIDs() (ids []string) {
	for id := range m.specimens {
		ids = append(ids, id)
	}
	return
}

// ResetSpecimens resets all changes to the "specimens" edge.
func (m *EnvironmentalConditionMutation) ResetSpecimens() {
	m.specimens = nil
	m.clearedspecimens = false
	m.removedspecimens = nil
}

// Where appends a list predicates to the EnvironmentalConditionMutation builder.
func (m *EnvironmentalConditionMutation) Where(ps ...predicate.EnvironmentalCondition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EnvironmentalConditionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EnvironmentalConditionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EnvironmentalCondition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EnvironmentalConditionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EnvironmentalConditionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EnvironmentalCondition).
func (m *EnvironmentalConditionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EnvironmentalConditionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, environmentalcondition.FieldCreatedAt)
	}
	if m.temperature != nil {
		fields = append(fields, environmentalcondition.FieldTemperature)
	}
	if m.humidity != nil {
		fields = append(fields, environmentalcondition.FieldHumidity)
	}
	if m.altitude != nil {
		fields = append(fields, environmentalcondition.FieldAltitude)
	}
	if m.soil_ph != nil {
		fields = append(fields, environmentalcondition.FieldSoilPh)
	}
	if m.soil_type != nil {
		fields = append(fields, environmentalcondition.FieldSoilType)
	}
	if m.soil_nutrients != nil {
		fields = append(fields, environmentalcondition.FieldSoilNutrients)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EnvironmentalConditionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case environmentalcondition.FieldCreatedAt:
		return m.CreatedAt()
	case environmentalcondition.FieldTemperature:
		return m.Temperature()
	case environmentalcondition.FieldHumidity:
		return m.Humidity()
	case environmentalcondition.FieldAltitude:
		return m.Altitude()
	case environmentalcondition.FieldSoilPh:
		return m.SoilPh()
	case environmentalcondition.FieldSoilType:
		return m.SoilType()
	case environmentalcondition.FieldSoilNutrients:
		return m.SoilNutrients()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EnvironmentalConditionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case environmentalcondition.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case environmentalcondition.FieldTemperature:
		return m.OldTemperature(ctx)
	case environmentalcondition.FieldHumidity:
		return m.OldHumidity(ctx)
	case environmentalcondition.FieldAltitude:
		return m.OldAltitude(ctx)
	case environmentalcondition.FieldSoilPh:
		return m.OldSoilPh(ctx)
	case environmentalcondition.FieldSoilType:
		return m.OldSoilType(ctx)
	case environmentalcondition.FieldSoilNutrients:
		return m.OldSoilNutrients(ctx)
	}
	return nil, fmt.Errorf("unknown EnvironmentalCondition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnvironmentalConditionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case environmentalcondition.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case environmentalcondition.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case environmentalcondition.FieldHumidity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHumidity(v)
		return nil
	case environmentalcondition.FieldAltitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAltitude(v)
		return nil
	case environmentalcondition.FieldSoilPh:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSoilPh(v)
		return nil
	case environmentalcondition.FieldSoilType:
		v, ok := value.(environmentalcondition.SoilType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSoilType(v)
		return nil
	case environmentalcondition.FieldSoilNutrients:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSoilNutrients(v)
		return nil
	}
	return fmt.Errorf("unknown EnvironmentalCondition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EnvironmentalConditionMutation) AddedFields() []string {
	var fields []string
	if m.addtemperature != nil {
		fields = append(fields, environmentalcondition.FieldTemperature)
	}
	if m.addhumidity != nil {
		fields = append(fields, environmentalcondition.FieldHumidity)
	}
	if m.addaltitude != nil {
		fields = append(fields, environmentalcondition.FieldAltitude)
	}
	if m.addsoil_ph != nil {
		fields = append(fields, environmentalcondition.FieldSoilPh)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EnvironmentalConditionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case environmentalcondition.FieldTemperature:
		return m.AddedTemperature()
	case environmentalcondition.FieldHumidity:
		return m.AddedHumidity()
	case environmentalcondition.FieldAltitude:
		return m.AddedAltitude()
	case environmentalcondition.FieldSoilPh:
		return m.AddedSoilPh()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnvironmentalConditionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case environmentalcondition.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	case environmentalcondition.FieldHumidity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHumidity(v)
		return nil
	case environmentalcondition.FieldAltitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAltitude(v)
		return nil
	case environmentalcondition.FieldSoilPh:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSoilPh(v)
		return nil
	}
	return fmt.Errorf("unknown EnvironmentalCondition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EnvironmentalConditionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(environmentalcondition.FieldSoilNutrients) {
		fields = append(fields, environmentalcondition.FieldSoilNutrients)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EnvironmentalConditionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EnvironmentalConditionMutation) ClearField(name string) error {
	switch name {
	case environmentalcondition.FieldSoilNutrients:
		m.ClearSoilNutrients()
		return nil
	}
	return fmt.Errorf("unknown EnvironmentalCondition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EnvironmentalConditionMutation) ResetField(name string) error {
	switch name {
	case environmentalcondition.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case environmentalcondition.FieldTemperature:
		m.ResetTemperature()
		return nil
	case environmentalcondition.FieldHumidity:
		m.ResetHumidity()
		return nil
	case environmentalcondition.FieldAltitude:
		m.ResetAltitude()
		return nil
	case environmentalcondition.FieldSoilPh:
		m.ResetSoilPh()
		return nil
	case environmentalcondition.FieldSoilType:
		m.ResetSoilType()
		return nil
	case environmentalcondition.FieldSoilNutrients:
		m.ResetSoilNutrients()
		return nil
	}
	return fmt.Errorf("unknown EnvironmentalCondition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EnvironmentalConditionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.specimens != nil {
		edges = append(edges, environmentalcondition.EdgeSpecimens)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EnvironmentalConditionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case environmentalcondition.EdgeSpecimens:
		ids := make([]ent.Value, 0, len(m.specimens))
		for id := range m.specimens {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EnvironmentalConditionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedspecimens != nil {
		edges = append(edges, environmentalcondition.EdgeSpecimens)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EnvironmentalConditionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case environmentalcondition.EdgeSpecimens:
		ids := make([]ent.Value, 0, len(m.removedspecimens))
		for id := range m.removedspecimens {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EnvironmentalConditionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedspecimens {
		edges = append(edges, environmentalcondition.EdgeSpecimens)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EnvironmentalConditionMutation) EdgeCleared(name string) bool {
	switch name {
	case environmentalcondition.EdgeSpecimens:
		return m.clearedspecimens
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EnvironmentalConditionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown EnvironmentalCondition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EnvironmentalConditionMutation) ResetEdge(name string) error {
	switch name {
	case environmentalcondition.EdgeSpecimens:
		m.ResetSpecimens()
		return nil
	}
	return fmt.Errorf("unknown EnvironmentalCondition edge %s", name)
}

// GrowthMetricMutation represents an operation that mutates the GrowthMetric nodes in the graph.
type GrowthMetricMutation struct {
	config
	op               Op
	typ              string
	id               *string
	created_at       *time.Time
	height           *float64
	addheight        *float64
	leaf_count       *int
	addleaf_count    *int
	stem_diameter    *float64
	addstem_diameter *float64
	health_status    *growthmetric.HealthStatus
	measured_at      *time.Time
	clearedFields    map[string]struct{}
	specimen         *string
	clearedspecimen  bool
	done             bool
	oldValue         func(context.Context) (*GrowthMetric, error)
	predicates       []predicate.GrowthMetric
}

var _ ent.Mutation = (*GrowthMetricMutation)(nil)

// growthmetricOption allows management of the mutation configuration using functional options.
type growthmetricOption func(*GrowthMetricMutation)

// newGrowthMetricMutation creates new mutation for the GrowthMetric entity.
func newGrowthMetricMutation(c config, op Op, opts ...growthmetricOption) *GrowthMetricMutation {
	m := &GrowthMetricMutation{
		config:        c,
		op:            op,
		typ:           TypeGrowthMetric,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGrowthMetricID sets the ID field of the mutation.
func withGrowthMetricID(id string) growthmetricOption {
	return func(m *GrowthMetricMutation) {
		var (
			err   error
			once  sync.Once
			value *GrowthMetric
		)
		m.oldValue = func(ctx context.Context) (*GrowthMetric, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GrowthMetric.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGrowthMetric sets the old GrowthMetric of the mutation.
func withGrowthMetric(node *GrowthMetric) growthmetricOption {
	return func(m *GrowthMetricMutation) {
		m.oldValue = func(context.Context) (*GrowthMetric, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GrowthMetricMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GrowthMetricMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GrowthMetric entities.
func (m *GrowthMetricMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GrowthMetricMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GrowthMetricMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GrowthMetric.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *GrowthMetricMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GrowthMetricMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GrowthMetric entity.
// If the GrowthMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrowthMetricMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *GrowthMetricMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSpecimenID sets the "specimen_id" field.
func (m *GrowthMetricMutation) SetSpecimenID(s string) {
	m.specimen = &s
}

// SpecimenID returns the value of the "specimen_id" field in the mutation.
func (m *GrowthMetricMutation) SpecimenID() (r string, exists bool) {
	v := m.specimen
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecimenID returns the old "specimen_id" field's value of the GrowthMetric entity.
// If the GrowthMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrowthMetricMutation) OldSpecimenID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecimenID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecimenID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecimenID: %w", err)
	}
	return oldValue.SpecimenID, nil
}

// ResetSpecimenID resets all changes to the "specimen_id" field.
func (m *GrowthMetricMutation) ResetSpecimenID() {
	m.specimen = nil
}

// SetHeight sets the "height" field.
func (m *GrowthMetricMutation) SetHeight(f float64) {
	m.height = &f
	m.addheight = nil
}

// Height returns the value of the "height" field in the mutation.
func (m *GrowthMetricMutation) Height() (r float64, exists bool) {
	v := m.height
	if v == nil {
		return
	}
	return *v, true
}

// OldHeight returns the old "height" field's value of the GrowthMetric entity.
// If the GrowthMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrowthMetricMutation) OldHeight(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeight: %w", err)
	}
	return oldValue.Height, nil
}

// AddHeight adds f to the "height" field.
func (m *GrowthMetricMutation) AddHeight(f float64) {
	if m.addheight != nil {
		*m.addheight += f
	} else {
		m.addheight = &f
	}
}

// AddedHeight returns the value that was added to the "height" field in this mutation.
func (m *GrowthMetricMutation) AddedHeight() (r float64, exists bool) {
	v := m.addheight
	if v == nil {
		return
	}
	return *v, true
}

// ClearHeight clears the value of the "height" field.
func (m *GrowthMetricMutation) ClearHeight() {
	m.height = nil
	m.addheight = nil
	m.clearedFields[growthmetric.FieldHeight] = struct{}{}
}

// HeightCleared returns if the "height" field was cleared in this mutation.
func (m *GrowthMetricMutation) HeightCleared() bool {
	_, ok := m.clearedFields[growthmetric.FieldHeight]
	return ok
}

// ResetHeight resets all changes to the "height" field.
func (m *GrowthMetricMutation) ResetHeight() {
	m.height = nil
	m.addheight = nil
	delete(m.clearedFields, growthmetric.FieldHeight)
}

// SetLeafCount sets the "leaf_count" field.
func (m *GrowthMetricMutation) SetLeafCount(i int) {
	m.leaf_count = &i
	m.addleaf_count = nil
}

// LeafCount returns the value of the "leaf_count" field in the mutation.
func (m *GrowthMetricMutation) LeafCount() (r int, exists bool) {
	v := m.leaf_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLeafCount returns the old "leaf_count" field's value of the GrowthMetric entity.
// If the GrowthMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrowthMetricMutation) OldLeafCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeafCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeafCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeafCount: %w", err)
	}
	return oldValue.LeafCount, nil
}

// AddLeafCount adds i to the "leaf_count" field.
func (m *GrowthMetricMutation) AddLeafCount(i int) {
	if m.addleaf_count != nil {
		*m.addleaf_count += i
	} else {
		m.addleaf_count = &i
	}
}

// AddedLeafCount returns the value that was added to the "leaf_count" field in this mutation.
func (m *GrowthMetricMutation) AddedLeafCount() (r int, exists bool) {
	v := m.addleaf_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearLeafCount clears the value of the "leaf_count" field.
func (m *GrowthMetricMutation) ClearLeafCount() {
	m.leaf_count = nil
	m.addleaf_count = nil
	m.clearedFields[growthmetric.FieldLeafCount] = struct{}{}
}

// LeafCountCleared returns if the "leaf_count" field was cleared in this mutation.
func (m *GrowthMetricMutation) LeafCountCleared() bool {
	_, ok := m.clearedFields[growthmetric.FieldLeafCount]
	return ok
}

// ResetLeafCount resets all changes to the "leaf_count" field.
func (m *GrowthMetricMutation) ResetLeafCount() {
	m.leaf_count = nil
	m.addleaf_count = nil
	delete(m.clearedFields, growthmetric.FieldLeafCount)
}

// SetStemDiameter sets the "stem_diameter" field.
func (m *GrowthMetricMutation) SetStemDiameter(f float64) {
	m.stem_diameter = &f
	m.addstem_diameter = nil
}

// StemDiameter returns the value of the "stem_diameter" field in the mutation.
func (m *GrowthMetricMutation) StemDiameter() (r float64, exists bool) {
	v := m.stem_diameter
	if v == nil {
		return
	}
	return *v, true
}

// OldStemDiameter returns the old "stem_diameter" field's value of the GrowthMetric entity.
// If the GrowthMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrowthMetricMutation) OldStemDiameter(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStemDiameter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStemDiameter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStemDiameter: %w", err)
	}
	return oldValue.StemDiameter, nil
}

// AddStemDiameter adds f to the "stem_diameter" field.
func (m *GrowthMetricMutation) AddStemDiameter(f float64) {
	if m.addstem_diameter != nil {
		*m.addstem_diameter += f
	} else {
		m.addstem_diameter = &f
	}
}

// AddedStemDiameter returns the value that was added to the "stem_diameter" field in this mutation.
func (m *GrowthMetricMutation) AddedStemDiameter() (r float64, exists bool) {
	v := m.addstem_diameter
	if v == nil {
		return
	}
	return *v, true
}

// ClearStemDiameter clears the value of the "stem_diameter" field.
func (m *GrowthMetricMutation) ClearStemDiameter() {
	m.stem_diameter = nil
	m.addstem_diameter = nil
	m.clearedFields[growthmetric.FieldStemDiameter] = struct{}{}
}

// StemDiameterCleared returns if the "stem_diameter" field was cleared in this mutation.
func (m *GrowthMetricMutation) StemDiameterCleared() bool {
	_, ok := m.clearedFields[growthmetric.FieldStemDiameter]
	return ok
}

// ResetStemDiameter resets all changes to the "stem_diameter" field.
func (m *GrowthMetricMutation) ResetStemDiameter() {
	m.stem_diameter = nil
	m.addstem_diameter = nil
	delete(m.clearedFields, growthmetric.FieldStemDiameter)
}

// SetHealthStatus sets the "health_status" field.
func (m *GrowthMetricMutation) SetHealthStatus(gs growthmetric.HealthStatus) {
	m.health_status = &gs
}

// HealthStatus returns the value of the "health_status" field in the mutation.
func (m *GrowthMetricMutation) HealthStatus() (r growthmetric.HealthStatus, exists bool) {
	v := m.health_status
	if v == nil {
		return
	}
	return *v, true
}

// OldHealthStatus returns the old "health_status" field's value of the GrowthMetric entity.
// If the GrowthMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrowthMetricMutation) OldHealthStatus(ctx context.Context) (v growthmetric.HealthStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHealthStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHealthStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHealthStatus: %w", err)
	}
	return oldValue.HealthStatus, nil
}

// ClearHealthStatus clears the value of the "health_status" field.
func (m *GrowthMetricMutation) ClearHealthStatus() {
	m.health_status = nil
	m.clearedFields[growthmetric.FieldHealthStatus] = struct{}{}
}

// HealthStatusCleared returns if the "health_status" field was cleared in this mutation.
func (m *GrowthMetricMutation) HealthStatusCleared() bool {
	_, ok := m.clearedFields[growthmetric.FieldHealthStatus]
	return ok
}

// ResetHealthStatus resets all changes to the "health_status" field.
func (m *GrowthMetricMutation) ResetHealthStatus() {
	m.health_status = nil
	delete(m.clearedFields, growthmetric.FieldHealthStatus)
}

// SetMeasuredAt sets the "measured_at" field.
func (m *GrowthMetricMutation) SetMeasuredAt(t time.Time) {
	m.measured_at = &t
}

// MeasuredAt returns the value of the "measured_at" field in the mutation.
func (m *GrowthMetricMutation) MeasuredAt() (r time.Time, exists bool) {
	v := m.measured_at
	if v == nil {
		return
	}
	return *v, true
}

// OldMeasuredAt returns the old "measured_at" field's value of the GrowthMetric entity.
// If the GrowthMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GrowthMetricMutation) OldMeasuredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeasuredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeasuredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeasuredAt: %w", err)
	}
	return oldValue.MeasuredAt, nil
}

// ResetMeasuredAt resets all changes to the "measured_at" field.
func (m *GrowthMetricMutation) ResetMeasuredAt() {
	m.measured_at = nil
}

// ClearSpecimen clears the "specimen" edge to the Specimen entity.
func (m *GrowthMetricMutation) ClearSpecimen() {
	m.clearedspecimen = true
	m.clearedFields[growthmetric.FieldSpecimenID] = struct{}{}
}

// SpecimenCleared reports if the "specimen" edge to the Specimen entity was cleared.
func (m *GrowthMetricMutation) SpecimenCleared() bool {
	return m.clearedspecimen
}

// SpecimenIDs returns the "specimen" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SpecimenID instead. It exists only for internal usage by the builders.
func (m *GrowthMetricMutation) SpecimenIDs() (ids []string) {
	if id := m.specimen; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSpecimen resets all changes to the "specimen" edge.
func (m *GrowthMetricMutation) ResetSpecimen() {
	m.specimen = nil
	m.clearedspecimen = false
}

// Where appends a list predicates to the GrowthMetricMutation builder.
func (m *GrowthMetricMutation) Where(ps ...predicate.GrowthMetric) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GrowthMetricMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GrowthMetricMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GrowthMetric, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GrowthMetricMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GrowthMetricMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GrowthMetric).
func (m *GrowthMetricMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GrowthMetricMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, growthmetric.FieldCreatedAt)
	}
	if m.specimen != nil {
		fields = append(fields, growthmetric.FieldSpecimenID)
	}
	if m.height != nil {
		fields = append(fields, growthmetric.FieldHeight)
	}
	if m.leaf_count != nil {
		fields = append(fields, growthmetric.FieldLeafCount)
	}
	if m.stem_diameter != nil {
		fields = append(fields, growthmetric.FieldStemDiameter)
	}
	if m.health_status != nil {
		fields = append(fields, growthmetric.FieldHealthStatus)
	}
	if m.measured_at != nil {
		fields = append(fields, growthmetric.FieldMeasuredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GrowthMetricMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case growthmetric.FieldCreatedAt:
		return m.CreatedAt()
	case growthmetric.FieldSpecimenID:
		return m.SpecimenID()
	case growthmetric.FieldHeight:
		return m.Height()
	case growthmetric.FieldLeafCount:
		return m.LeafCount()
	case growthmetric.FieldStemDiameter:
		return m.StemDiameter()
	case growthmetric.FieldHealthStatus:
		return m.HealthStatus()
	case growthmetric.FieldMeasuredAt:
		return m.MeasuredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GrowthMetricMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case growthmetric.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case growthmetric.FieldSpecimenID:
		return m.OldSpecimenID(ctx)
	case growthmetric.FieldHeight:
		return m.OldHeight(ctx)
	case growthmetric.FieldLeafCount:
		return m.OldLeafCount(ctx)
	case growthmetric.FieldStemDiameter:
		return m.OldStemDiameter(ctx)
	case growthmetric.FieldHealthStatus:
		return m.OldHealthStatus(ctx)
	case growthmetric.FieldMeasuredAt:
		return m.OldMeasuredAt(ctx)
	}
	return nil, fmt.Errorf("unknown GrowthMetric field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GrowthMetricMutation) SetField(name string, value ent.Value) error {
	switch name {
	case growthmetric.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case growthmetric.FieldSpecimenID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecimenID(v)
		return nil
	case growthmetric.FieldHeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeight(v)
		return nil
	case growthmetric.FieldLeafCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeafCount(v)
		return nil
	case growthmetric.FieldStemDiameter:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStemDiameter(v)
		return nil
	case growthmetric.FieldHealthStatus:
		v, ok := value.(growthmetric.HealthStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHealthStatus(v)
		return nil
	case growthmetric.FieldMeasuredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeasuredAt(v)
		return nil
	}
	return fmt.Errorf("unknown GrowthMetric field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GrowthMetricMutation) AddedFields() []string {
	var fields []string
	if m.addheight != nil {
		fields = append(fields, growthmetric.FieldHeight)
	}
	if m.addleaf_count != nil {
		fields = append(fields, growthmetric.FieldLeafCount)
	}
	if m.addstem_diameter != nil {
		fields = append(fields, growthmetric.FieldStemDiameter)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GrowthMetricMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case growthmetric.FieldHeight:
		return m.AddedHeight()
	case growthmetric.FieldLeafCount:
		return m.AddedLeafCount()
	case growthmetric.FieldStemDiameter:
		return m.AddedStemDiameter()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GrowthMetricMutation) AddField(name string, value ent.Value) error {
	switch name {
	case growthmetric.FieldHeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeight(v)
		return nil
	case growthmetric.FieldLeafCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLeafCount(v)
		return nil
	case growthmetric.FieldStemDiameter:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStemDiameter(v)
		return nil
	}
	return fmt.Errorf("unknown GrowthMetric numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GrowthMetricMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(growthmetric.FieldHeight) {
		fields = append(fields, growthmetric.FieldHeight)
	}
	if m.FieldCleared(growthmetric.FieldLeafCount) {
		fields = append(fields, growthmetric.FieldLeafCount)
	}
	if m.FieldCleared(growthmetric.FieldStemDiameter) {
		fields = append(fields, growthmetric.FieldStemDiameter)
	}
	if m.FieldCleared(growthmetric.FieldHealthStatus) {
		fields = append(fields, growthmetric.FieldHealthStatus)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GrowthMetricMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GrowthMetricMutation) ClearField(name string) error {
	switch name {
	case growthmetric.FieldHeight:
		m.ClearHeight()
		return nil
	case growthmetric.FieldLeafCount:
		m.ClearLeafCount()
		return nil
	case growthmetric.FieldStemDiameter:
		m.ClearStemDiameter()
		return nil
	case growthmetric.FieldHealthStatus:
		m.ClearHealthStatus()
		return nil
	}
	return fmt.Errorf("unknown GrowthMetric nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GrowthMetricMutation) ResetField(name string) error {
	switch name {
	case growthmetric.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case growthmetric.FieldSpecimenID:
		m.ResetSpecimenID()
		return nil
	case growthmetric.FieldHeight:
		m.ResetHeight()
		return nil
	case growthmetric.FieldLeafCount:
		m.ResetLeafCount()
		return nil
	case growthmetric.FieldStemDiameter:
		m.ResetStemDiameter()
		return nil
	case growthmetric.FieldHealthStatus:
		m.ResetHealthStatus()
		return nil
	case growthmetric.FieldMeasuredAt:
		m.ResetMeasuredAt()
		return nil
	}
	return fmt.Errorf("unknown GrowthMetric field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GrowthMetricMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.specimen != nil {
		edges = append(edges, growthmetric.EdgeSpecimen)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GrowthMetricMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case growthmetric.EdgeSpecimen:
		if id := m.specimen; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GrowthMetricMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GrowthMetricMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GrowthMetricMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedspecimen {
		edges = append(edges, growthmetric.EdgeSpecimen)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GrowthMetricMutation) EdgeCleared(name string) bool {
	switch name {
	case growthmetric.EdgeSpecimen:
		return m.clearedspecimen
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GrowthMetricMutation) ClearEdge(name string) error {
	switch name {
	case growthmetric.EdgeSpecimen:
		m.ClearSpecimen()
		return nil
	}
	return fmt.Errorf("unknown GrowthMetric unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GrowthMetricMutation) ResetEdge(name string) error {
	switch name {
	case growthmetric.EdgeSpecimen:
		m.ResetSpecimen()
		return nil
	}
	return fmt.Errorf("unknown GrowthMetric edge %s", name)
}

// LocationMutation represents an operation that mutates the Location nodes in the graph.
type LocationMutation struct {
	config
	op               Op
	typ              string
	id               *string
	created_at       *time.Time
	latitude         *float64
	addlatitude      *float64
	longitude        *float64
	addlongitude     *float64
	region           *string
	country          *string
	site_type        *location.SiteType
	clearedFields    map[string]struct{}
	specimens        map[string]struct{}
	removedspecimens map[string]struct{}
	clearedspecimens bool
	done             bool
	oldValue         func(context.Context) (*Location, error)
	predicates       []predicate.Location
}

var _ ent.Mutation = (*LocationMutation)(nil)

// locationOption allows management of the mutation configuration using functional options.
type locationOption func(*LocationMutation)

// newLocationMutation creates new mutation for the Location entity.
func newLocationMutation(c config, op Op, opts ...locationOption) *LocationMutation {
	m := &LocationMutation{
		config:        c,
		op:            op,
		typ:           TypeLocation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLocationID sets the ID field of the mutation.
func withLocationID(id string) locationOption {
	return func(m *LocationMutation) {
		var (
			err   error
			once  sync.Once
			value *Location
		)
		m.oldValue = func(ctx context.Context) (*Location, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Location.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLocation sets the old Location of the mutation.
func withLocation(node *Location) locationOption {
	return func(m *LocationMutation) {
		m.oldValue = func(context.Context) (*Location, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LocationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LocationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Location entities.
func (m *LocationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LocationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LocationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Location.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *LocationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LocationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Location entity.
// If the Location object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *LocationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLatitude sets the "latitude" field.
func (m *LocationMutation) SetLatitude(f float64) {
	m.latitude = &f
	m.addlatitude = nil
}

// Latitude returns the value of the "latitude" field in the mutation.
func (m *LocationMutation) Latitude() (r float64, exists bool) {
	v := m.latitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLatitude returns the old "latitude" field's value of the Location entity.
// If the Location object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocationMutation) OldLatitude(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatitude: %w", err)
	}
	return oldValue.Latitude, nil
}

// AddLatitude adds f to the "latitude" field.
func (m *LocationMutation) AddLatitude(f float64) {
	if m.addlatitude != nil {
		*m.addlatitude += f
	} else {
		m.addlatitude = &f
	}
}

// AddedLatitude returns the value that was added to the "latitude" field in this mutation.
func (m *LocationMutation) AddedLatitude() (r float64, exists bool) {
	v := m.addlatitude
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatitude resets all changes to the "latitude" field.
func (m *LocationMutation) ResetLatitude() {
	m.latitude = nil
	m.addlatitude = nil
}

// SetLongitude sets the "longitude" field.
func (m *LocationMutation) SetLongitude(f float64) {
	m.longitude = &f
	m.addlongitude = nil
}

// Longitude returns the value of the "longitude" field in the mutation.
func (m *LocationMutation) Longitude() (r float64, exists bool) {
	v := m.longitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLongitude returns the old "longitude" field's value of the Location entity.
// If the Location object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocationMutation) OldLongitude(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongitude: %w", err)
	}
	return oldValue.Longitude, nil
}

// AddLongitude adds f to the "longitude" field.
func (m *LocationMutation) AddLongitude(f float64) {
	if m.addlongitude != nil {
		*m.addlongitude += f
	} else {
		m.addlongitude = &f
	}
}

// AddedLongitude returns the value that was added to the "longitude" field in this mutation.
func (m *LocationMutation) AddedLongitude() (r float64, exists bool) {
	v := m.addlongitude
	if v == nil {
		return
	}
	return *v, true
}

// ResetLongitude resets all changes to the "longitude" field.
func (m *LocationMutation) ResetLongitude() {
	m.longitude = nil
	m.addlongitude = nil
}

// SetRegion sets the "region" field.
func (m *LocationMutation) SetRegion(s string) {
	m.region = &s
}

// Region returns the value of the "region" field in the mutation.
func (m *LocationMutation) Region() (r string, exists bool) {
	v := m.region
	if v == nil {
		return
	}
	return *v, true
}

// OldRegion returns the old "region" field's value of the Location entity.
// If the Location object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocationMutation) OldRegion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegion: %w", err)
	}
	return oldValue.Region, nil
}

// ResetRegion resets all changes to the "region" field.
func (m *LocationMutation) ResetRegion() {
	m.region = nil
}

// SetCountry sets the "country" field.
func (m *LocationMutation) SetCountry(s string) {
	m.country = &s
}

// Country returns the value of the "country" field in the mutation.
func (m *LocationMutation) Country() (r string, exists bool) {
	v := m.country
	if v == nil {
		return
	}
	return *v, true
}

// OldCountry returns the old "country" field's value of the Location entity.
// If the Location object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocationMutation) OldCountry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountry: %w", err)
	}
	return oldValue.Country, nil
}

// ResetCountry resets all changes to the "country" field.
func (m *LocationMutation) ResetCountry() {
	m.country = nil
}

// SetSiteType sets the "site_type" field.
func (m *LocationMutation) SetSiteType(lt location.SiteType) {
	m.site_type = &lt
}

// SiteType returns the value of the "site_type" field in the mutation.
func (m *LocationMutation) SiteType() (r location.SiteType, exists bool) {
	v := m.site_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSiteType returns the old "site_type" field's value of the Location entity.
// If the Location object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocationMutation) OldSiteType(ctx context.Context) (v location.SiteType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSiteType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSiteType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSiteType: %w", err)
	}
	return oldValue.SiteType, nil
}

// ClearSiteType clears the value of the "site_type" field.
func (m *LocationMutation) ClearSiteType() {
	m.site_type = nil
	m.clearedFields[location.FieldSiteType] = struct{}{}
}

// SiteTypeCleared returns if the "site_type" field was cleared in this mutation.
func (m *LocationMutation) SiteTypeCleared() bool {
	_, ok := m.clearedFields[location.FieldSiteType]
	return ok
}

// ResetSiteType resets all changes to the "site_type" field.
func (m *LocationMutation) ResetSiteType() {
	m.site_type = nil
	delete(m.clearedFields, location.FieldSiteType)
}

// AddSpecimenIDs adds the "specimens" edge to the Specimen entity by ids.
func (m *LocationMutation) AddSpecimenIDs(ids ...string) {
	if m.specimens == nil {
		m.specimens = make(map[string]struct{})
	}
	for i := range ids {
		m.specimens[ids[i]] = struct{}{}
	}
}

// ClearSpecimens clears the "specimens" edge to the Specimen entity.
func (m *LocationMutation) ClearSpecimens() {
	m.clearedspecimens = true
}

// SpecimensCleared reports if the "specimens" edge to the Specimen entity was cleared.
func (m *LocationMutation) SpecimensCleared() bool {
	return m.clearedspecimens
}

// RemoveSpecimenIDs removes the "specimens" edge to the Specimen entity by IDs.
func (m *LocationMutation) RemoveSpecimenIDs(ids ...string) {
	if m.removedspecimens == nil {
		m.removedspecimens = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.specimens, ids[i])
		m.removedspecimens[ids[i]] = struct{}{}
	}
}

// RemovedSpecimens returns the removed IDs of the "specimens" edge to the Specimen entity.
func (m *LocationMutation) RemovedSpecimensIDs() (ids []string) {
	for id := range m.removedspecimens {
		ids = append(ids, id)
	}
	return
}

// SpecimensIDs returns the "specimens" edge IDs in the mutation.
func (m *LocationMutation) SpecimensIDs() (ids []string) {
	for id := range m.specimens {
		ids = append(ids, id)
	}
	return
}

// ResetSpecimens resets all changes to the "specimens" edge.
func (m *LocationMutation) ResetSpecimens() {
	m.specimens = nil
	m.clearedspecimens = false
	m.removedspecimens = nil
}

// Where appends a list predicates to the LocationMutation builder.
func (m *LocationMutation) Where(ps ...predicate.Location) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LocationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LocationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Location, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LocationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LocationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Location).
func (m *LocationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LocationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, location.FieldCreatedAt)
	}
	if m.latitude != nil {
		fields = append(fields, location.FieldLatitude)
	}
	if m.longitude != nil {
		fields = append(fields, location.FieldLongitude)
	}
	if m.region != nil {
		fields = append(fields, location.FieldRegion)
	}
	if m.country != nil {
		fields = append(fields, location.FieldCountry)
	}
	if m.site_type != nil {
		fields = append(fields, location.FieldSiteType)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LocationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case location.FieldCreatedAt:
		return m.CreatedAt()
	case location.FieldLatitude:
		return m.Latitude()
	case location.FieldLongitude:
		return m.Longitude()
	case location.FieldRegion:
		return m.Region()
	case location.FieldCountry:
		return m.Country()
	case location.FieldSiteType:
		return m.SiteType()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LocationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case location.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case location.FieldLatitude:
		return m.OldLatitude(ctx)
	case location.FieldLongitude:
		return m.OldLongitude(ctx)
	case location.FieldRegion:
		return m.OldRegion(ctx)
	case location.FieldCountry:
		return m.OldCountry(ctx)
	case location.FieldSiteType:
		return m.OldSiteType(ctx)
	}
	return nil, fmt.Errorf("unknown Location field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LocationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case location.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case location.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatitude(v)
		return nil
	case location.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongitude(v)
		return nil
	case location.FieldRegion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegion(v)
		return nil
	case location.FieldCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountry(v)
		return nil
	case location.FieldSiteType:
		v, ok := value.(location.SiteType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSiteType(v)
		return nil
	}
	return fmt.Errorf("unknown Location field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LocationMutation) AddedFields() []string {
	var fields []string
	if m.addlatitude != nil {
		fields = append(fields, location.FieldLatitude)
	}
	if m.addlongitude != nil {
		fields = append(fields, location.FieldLongitude)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LocationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case location.FieldLatitude:
		return m.AddedLatitude()
	case location.FieldLongitude:
		return m.AddedLongitude()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LocationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case location.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatitude(v)
		return nil
	case location.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongitude(v)
		return nil
	}
	return fmt.Errorf("unknown Location numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LocationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(location.FieldSiteType) {
		fields = append(fields, location.FieldSiteType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LocationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LocationMutation) ClearField(name string) error {
	switch name {
	case location.FieldSiteType:
		m.ClearSiteType()
		return nil
	}
	return fmt.Errorf("unknown Location nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LocationMutation) ResetField(name string) error {
	switch name {
	case location.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case location.FieldLatitude:
		m.ResetLatitude()
		return nil
	case location.FieldLongitude:
		m.ResetLongitude()
		return nil
	case location.FieldRegion:
		m.ResetRegion()
		return nil
	case location.FieldCountry:
		m.ResetCountry()
		return nil
	case location.FieldSiteType:
		m.ResetSiteType()
		return nil
	}
	return fmt.Errorf("unknown Location field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LocationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.specimens != nil {
		edges = append(edges, location.EdgeSpecimens)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LocationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case location.EdgeSpecimens:
		ids := make([]ent.Value, 0, len(m.specimens))
		for id := range m.specimens {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LocationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedspecimens != nil {
		edges = append(edges, location.EdgeSpecimens)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LocationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case location.EdgeSpecimens:
		ids := make([]ent.Value, 0, len(m.removedspecimens))
		for id := range m.removedspecimens {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LocationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedspecimens {
		edges = append(edges, location.EdgeSpecimens)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LocationMutation) EdgeCleared(name string) bool {
	switch name {
	case location.EdgeSpecimens:
		return m.clearedspecimens
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LocationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Location unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LocationMutation) ResetEdge(name string) error {
	switch name {
	case location.EdgeSpecimens:
		m.ResetSpecimens()
		return nil
	}
	return fmt.Errorf("unknown Location edge %s", name)
}

// ResearcherMutation represents an operation that mutates the Researcher nodes in the graph.
type ResearcherMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	created_at         *time.Time
	name               *string
	email              *string
	phone              *string
	affiliation        *string
	clearedFields      map[string]struct{}
	assignments        map[string]struct{}
	removedassignments map[string]struct{}
	clearedassignments bool
	done               bool
	oldValue           func(context.Context) (*Researcher, error)
	predicates         []predicate.Researcher
}

var _ ent.Mutation = (*ResearcherMutation)(nil)

// researcherOption allows management of the mutation configuration using functional options.
type researcherOption func(*ResearcherMutation)

// newResearcherMutation creates new mutation for the Researcher entity.
func newResearcherMutation(c config, op Op, opts ...researcherOption) *ResearcherMutation {
	m := &ResearcherMutation{
		config:        c,
		op:            op,
		typ:           TypeResearcher,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResearcherID sets the ID field of the mutation.
func withResearcherID(id string) researcherOption {
	return func(m *ResearcherMutation) {
		var (
			err   error
			once  sync.Once
			value *Researcher
		)
		m.oldValue = func(ctx context.Context) (*Researcher, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Researcher.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResearcher sets the old Researcher of the mutation.
func withResearcher(node *Researcher) researcherOption {
	return func(m *ResearcherMutation) {
		m.oldValue = func(context.Context) (*Researcher, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResearcherMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResearcherMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Researcher entities.
func (m *ResearcherMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResearcherMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResearcherMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Researcher.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ResearcherMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResearcherMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Researcher entity.
// If the Researcher object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearcherMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ResearcherMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetName sets the "name" field.
func (m *ResearcherMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ResearcherMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Researcher entity.
// If the Researcher object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearcherMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *ResearcherMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *ResearcherMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ResearcherMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Researcher entity.
// If the Researcher object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearcherMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *ResearcherMutation) ResetEmail() {
	m.email = nil
}

// SetPhone sets the "phone" field.
func (m *ResearcherMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *ResearcherMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Researcher entity.
// If the Researcher object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearcherMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *ResearcherMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[researcher.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *ResearcherMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[researcher.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *ResearcherMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, researcher.FieldPhone)
}

// SetAffiliation sets the "affiliation" field.
func (m *ResearcherMutation) SetAffiliation(s string) {
	m.affiliation = &s
}

// Affiliation returns the value of the "affiliation" field in the mutation.
func (m *ResearcherMutation) Affiliation() (r string, exists bool) {
	v := m.affiliation
	if v == nil {
		return
	}
	return *v, true
}

// OldAffiliation returns the old "affiliation" field's value of the Researcher entity.
// If the Researcher object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResearcherMutation) OldAffiliation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffiliation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffiliation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffiliation: %w", err)
	}
	return oldValue.Affiliation, nil
}

// ClearAffiliation clears the value of the "affiliation" field.
func (m *ResearcherMutation) ClearAffiliation() {
	m.affiliation = nil
	m.clearedFields[researcher.FieldAffiliation] = struct{}{}
}

// AffiliationCleared returns if the "affiliation" field was cleared in this mutation.
func (m *ResearcherMutation) AffiliationCleared() bool {
	_, ok := m.clearedFields[researcher.FieldAffiliation]
	return ok
}

// ResetAffiliation resets all changes to the "affiliation" field.
func (m *ResearcherMutation) ResetAffiliation() {
	m.affiliation = nil
	delete(m.clearedFields, researcher.FieldAffiliation)
}

// AddAssignmentIDs adds the "assignments" edge to the SpecimenResearcher entity by ids.
func (m *ResearcherMutation) AddAssignmentIDs(ids ...string) {
	if m.assignments == nil {
		m.assignments = make(map[string]struct{})
	}
	for i := range ids {
		m.assignments[ids[i]] = struct{}{}
	}
}

// ClearAssignments clears the "assignments" edge to the SpecimenResearcher entity.
func (m *ResearcherMutation) ClearAssignments() {
	m.clearedassignments = true
}

// AssignmentsCleared reports if the "assignments" edge to the SpecimenResearcher entity was cleared.
func (m *ResearcherMutation) AssignmentsCleared() bool {
	return m.clearedassignments
}

// RemoveAssignmentIDs removes the "assignments" edge to the SpecimenResearcher entity by IDs.
func (m *ResearcherMutation) RemoveAssignmentIDs(ids ...string) {
	if m.removedassignments == nil {
		m.removedassignments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.assignments, ids[i])
		m.removedassignments[ids[i]] = struct{}{}
	}
}

// RemovedAssignments returns the removed IDs of the "assignments" edge to the SpecimenResearcher entity.
func (m *ResearcherMutation) RemovedAssignmentsIDs() (ids []string) {
	for id := range m.removedassignments {
		ids = append(ids, id)
	}
	return
}

// AssignmentsIDs returns the "assignments" edge IDs in the mutation.
func (m *ResearcherMutation) AssignmentsIDs() (ids []string) {
	for id := range m.assignments {
		ids = append(ids, id)
	}
	return
}

// ResetAssignments resets all changes to the "assignments" edge.
func (m *ResearcherMutation) ResetAssignments() {
	m.assignments = nil
	m.clearedassignments = false
	m.removedassignments = nil
}

// Where appends a list predicates to the ResearcherMutation builder.
func (m *ResearcherMutation) Where(ps ...predicate.Researcher) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResearcherMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResearcherMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Researcher, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResearcherMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResearcherMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Researcher).
func (m *ResearcherMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResearcherMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, researcher.FieldCreatedAt)
	}
	if m.name != nil {
		fields = append(fields, researcher.FieldName)
	}
	if m.email != nil {
		fields = append(fields, researcher.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, researcher.FieldPhone)
	}
	if m.affiliation != nil {
		fields = append(fields, researcher.FieldAffiliation)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResearcherMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case researcher.FieldCreatedAt:
		return m.CreatedAt()
	case researcher.FieldName:
		return m.Name()
	case researcher.FieldEmail:
		return m.Email()
	case researcher.FieldPhone:
		return m.Phone()
	case researcher.FieldAffiliation:
		return m.Affiliation()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResearcherMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case researcher.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case researcher.FieldName:
		return m.OldName(ctx)
	case researcher.FieldEmail:
		return m.OldEmail(ctx)
	case researcher.FieldPhone:
		return m.OldPhone(ctx)
	case researcher.FieldAffiliation:
		return m.OldAffiliation(ctx)
	}
	return nil, fmt.Errorf("unknown Researcher field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearcherMutation) SetField(name string, value ent.Value) error {
	switch name {
	case researcher.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case researcher.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case researcher.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case researcher.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case researcher.FieldAffiliation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffiliation(v)
		return nil
	}
	return fmt.Errorf("unknown Researcher field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResearcherMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResearcherMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResearcherMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Researcher numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResearcherMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(researcher.FieldPhone) {
		fields = append(fields, researcher.FieldPhone)
	}
	if m.FieldCleared(researcher.FieldAffiliation) {
		fields = append(fields, researcher.FieldAffiliation)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResearcherMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResearcherMutation) ClearField(name string) error {
	switch name {
	case researcher.FieldPhone:
		m.ClearPhone()
		return nil
	case researcher.FieldAffiliation:
		m.ClearAffiliation()
		return nil
	}
	return fmt.Errorf("unknown Researcher nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResearcherMutation) ResetField(name string) error {
	switch name {
	case researcher.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case researcher.FieldName:
		m.ResetName()
		return nil
	case researcher.FieldEmail:
		m.ResetEmail()
		return nil
	case researcher.FieldPhone:
		m.ResetPhone()
		return nil
	case researcher.FieldAffiliation:
		m.ResetAffiliation()
		return nil
	}
	return fmt.Errorf("unknown Researcher field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResearcherMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.assignments != nil {
		edges = append(edges, researcher.EdgeAssignments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResearcherMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case researcher.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.assignments))
		for id := range m.assignments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResearcherMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedassignments != nil {
		edges = append(edges, researcher.EdgeAssignments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResearcherMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case researcher.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.removedassignments))
		for id := range m.removedassignments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResearcherMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedassignments {
		edges = append(edges, researcher.EdgeAssignments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResearcherMutation) EdgeCleared(name string) bool {
	switch name {
	case researcher.EdgeAssignments:
		return m.clearedassignments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResearcherMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Researcher unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResearcherMutation) ResetEdge(name string) error {
	switch name {
	case researcher.EdgeAssignments:
		m.ResetAssignments()
		return nil
	}
	return fmt.Errorf("unknown Researcher edge %s", name)
}

// SpecimenMutation represents an operation that mutates the Specimen nodes in the graph.
type SpecimenMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	created_at              *time.Time
	updated_at              *time.Time
	species                 *string
	common_name             *string
	sampling_date           *time.Time
	description             *string
	status                  *specimen.Status
	deleted_at              *time.Time
	clearedFields           map[string]struct{}
	location                *string
	clearedlocation         bool
	condition               *string
	clearedcondition        bool
	growth_metrics          map[string]struct{}
	removedgrowth_metrics   map[string]struct{}
	clearedgrowth_metrics   bool
	researcher_links        map[string]struct{}
	removedresearcher_links map[string]struct{}
	clearedresearcher_links bool
	done                    bool
	oldValue                func(context.Context) (*Specimen, error)
	predicates              []predicate.Specimen
}

var _ ent.Mutation = (*SpecimenMutation)(nil)

// specimenOption allows management of the mutation configuration using functional options.
type specimenOption func(*SpecimenMutation)

// newSpecimenMutation creates new mutation for the Specimen entity.
func newSpecimenMutation(c config, op Op, opts ...specimenOption) *SpecimenMutation {
	m := &SpecimenMutation{
		config:        c,
		op:            op,
		typ:           TypeSpecimen,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSpecimenID sets the ID field of the mutation.
func withSpecimenID(id string) specimenOption {
	return func(m *SpecimenMutation) {
		var (
			err   error
			once  sync.Once
			value *Specimen
		)
		m.oldValue = func(ctx context.Context) (*Specimen, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Specimen.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSpecimen sets the old Specimen of the mutation.
func withSpecimen(node *Specimen) specimenOption {
	return func(m *SpecimenMutation) {
		m.oldValue = func(context.Context) (*Specimen, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SpecimenMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SpecimenMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Specimen entities.
func (m *SpecimenMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SpecimenMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SpecimenMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Specimen.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SpecimenMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SpecimenMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Specimen entity.
// If the Specimen object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecimenMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SpecimenMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SpecimenMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SpecimenMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Specimen entity.
// If the Specimen object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecimenMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SpecimenMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSpecies sets the "species" field.
func (m *SpecimenMutation) SetSpecies(s string) {
	m.species = &s
}

// Species returns the value of the "species" field in the mutation.
func (m *SpecimenMutation) Species() (r string, exists bool) {
	v := m.species
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecies returns the old "species" field's value of the Specimen entity.
// If the Specimen object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecimenMutation) OldSpecies(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecies: %w", err)
	}
	return oldValue.Species, nil
}

// ResetSpecies resets all changes to the "species" field.
func (m *SpecimenMutation) ResetSpecies() {
	m.species = nil
}

// SetCommonName sets the "common_name" field.
func (m *SpecimenMutation) SetCommonName(s string) {
	m.common_name = &s
}

// CommonName returns the value of the "common_name" field in the mutation.
func (m *SpecimenMutation) CommonName() (r string, exists bool) {
	v := m.common_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCommonName returns the old "common_name" field's value of the Specimen entity.
// If the Specimen object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecimenMutation) OldCommonName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommonName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommonName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommonName: %w", err)
	}
	return oldValue.CommonName, nil
}

// ResetCommonName resets all changes to the "common_name" field.
func (m *SpecimenMutation) ResetCommonName() {
	m.common_name = nil
}

// SetSamplingDate sets the "sampling_date" field.
func (m *SpecimenMutation) SetSamplingDate(t time.Time) {
	m.sampling_date = &t
}

// SamplingDate returns the value of the "sampling_date" field in the mutation.
func (m *SpecimenMutation) SamplingDate() (r time.Time, exists bool) {
	v := m.sampling_date
	if v == nil {
		return
	}
	return *v, true
}

// OldSamplingDate returns the old "sampling_date" field's value of the Specimen entity.
// If the Specimen object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecimenMutation) OldSamplingDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSamplingDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSamplingDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSamplingDate: %w", err)
	}
	return oldValue.SamplingDate, nil
}

// ResetSamplingDate resets all changes to the "sampling_date" field.
func (m *SpecimenMutation) ResetSamplingDate() {
	m.sampling_date = nil
}

// SetDescription sets the "description" field.
func (m *SpecimenMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SpecimenMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Specimen entity.
// If the Specimen object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecimenMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SpecimenMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[specimen.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SpecimenMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[specimen.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SpecimenMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, specimen.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *SpecimenMutation) SetStatus(s specimen.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SpecimenMutation) Status() (r specimen.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Specimen entity.
// If the Specimen object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecimenMutation) OldStatus(ctx context.Context) (v specimen.Status, err error) {
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
func (m *SpecimenMutation) ResetStatus() {
	m.status = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *SpecimenMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *SpecimenMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Specimen entity.
// If the Specimen object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecimenMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *SpecimenMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[specimen.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *SpecimenMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[specimen.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *SpecimenMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, specimen.FieldDeletedAt)
}

// SetLocationID sets the "location_id" field.
func (m *SpecimenMutation) SetLocationID(s string) {
	m.location = &s
}

// LocationID returns the value of the "location_id" field in the mutation.
func (m *SpecimenMutation) LocationID() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationID returns the old "location_id" field's value of the Specimen entity.
// If the Specimen object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecimenMutation) OldLocationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationID: %w", err)
	}
	return oldValue.LocationID, nil
}

// ResetLocationID resets all changes to the "location_id" field.
func (m *SpecimenMutation) ResetLocationID() {
	m.location = nil
}

// SetConditionID sets the "condition_id" field.
func (m *SpecimenMutation) SetConditionID(s string) {
	m.condition = &s
}

// ConditionID returns the value of the "condition_id" field in the mutation.
func (m *SpecimenMutation) ConditionID() (r string, exists bool) {
	v := m.condition
	if v == nil {
		return
	}
	return *v, true
}

// OldConditionID returns the old "condition_id" field's value of the Specimen entity.
// If the Specimen object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecimenMutation) OldConditionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConditionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConditionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConditionID: %w", err)
	}
	return oldValue.ConditionID, nil
}

// ResetConditionID resets all changes to the "condition_id" field.
func (m *SpecimenMutation) ResetConditionID() {
	m.condition = nil
}

// ClearLocation clears the "location" edge to the Location entity.
func (m *SpecimenMutation) ClearLocation() {
	m.clearedlocation = true
	m.clearedFields[specimen.FieldLocationID] = struct{}{}
}

// LocationCleared reports if the "location" edge to the Location entity was cleared.
func (m *SpecimenMutation) LocationCleared() bool {
	return m.clearedlocation
}

// LocationIDs returns the "location" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LocationID instead. It exists only for internal usage by the builders.
func (m *SpecimenMutation) LocationIDs() (ids []string) {
	if id := m.location; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLocation resets all changes to the "location" edge.
func (m *SpecimenMutation) ResetLocation() {
	m.location = nil
	m.clearedlocation = false
}

// ClearCondition clears the "condition" edge to the EnvironmentalCondition entity.
func (m *SpecimenMutation) ClearCondition() {
	m.clearedcondition = true
	m.clearedFields[specimen.FieldConditionID] = struct{}{}
}

// ConditionCleared reports if the "condition" edge to the EnvironmentalCondition entity was cleared.
func (m *SpecimenMutation) ConditionCleared() bool {
	return m.clearedcondition
}

// ConditionIDs returns the "condition" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConditionID instead. It exists only for internal usage by the builders.
func (m *SpecimenMutation) ConditionIDs() (ids []string) {
	if id := m.condition; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCondition resets all changes to the "condition" edge.
func (m *SpecimenMutation) ResetCondition() {
	m.condition = nil
	m.clearedcondition = false
}

// AddGrowthMetricIDs adds the "growth_metrics" edge to the GrowthMetric entity by ids.
func (m *SpecimenMutation) AddGrowthMetricIDs(ids ...string) {
	if m.growth_metrics == nil {
		m.growth_metrics = make(map[string]struct{})
	}
	for i := range ids {
		m.growth_metrics[ids[i]] = struct{}{}
	}
}

// ClearGrowthMetrics clears the "growth_metrics" edge to the GrowthMetric entity.
func (m *SpecimenMutation) ClearGrowthMetrics() {
	m.clearedgrowth_metrics = true
}

// GrowthMetricsCleared reports if the "growth_metrics" edge to the GrowthMetric entity was cleared.
func (m *SpecimenMutation) GrowthMetricsCleared() bool {
	return m.clearedgrowth_metrics
}

// RemoveGrowthMetricIDs removes the "growth_metrics" edge to the GrowthMetric entity by IDs.
func (m *SpecimenMutation) RemoveGrowthMetricIDs(ids ...string) {
	if m.removedgrowth_metrics == nil {
		m.removedgrowth_metrics = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.growth_metrics, ids[i])
		m.removedgrowth_metrics[ids[i]] = struct{}{}
	}
}

// RemovedGrowthMetrics returns the removed IDs of the "growth_metrics" edge to the GrowthMetric entity.
func (m *SpecimenMutation) RemovedGrowthMetricsIDs() (ids []string) {
	for id := range m.removedgrowth_metrics {
		ids = append(ids, id)
	}
	return
}

// GrowthMetricsIDs returns the "growth_metrics" edge IDs in the mutation.
func (m *SpecimenMutation) GrowthMetricsIDs() (ids []string) {
	for id := range m.growth_metrics {
		ids = append(ids, id)
	}
	return
}

// ResetGrowthMetrics resets all changes to the "growth_metrics" edge.
func (m *SpecimenMutation) ResetGrowthMetrics() {
	m.growth_metrics = nil
	m.clearedgrowth_metrics = false
	m.removedgrowth_metrics = nil
}

// AddResearcherLinkIDs adds the "researcher_links" edge to the SpecimenResearcher entity by ids.
func (m *SpecimenMutation) AddResearcherLinkIDs(ids ...string) {
	if m.researcher_links == nil {
		m.researcher_links = make(map[string]struct{})
	}
	for i := range ids {
		m.researcher_links[ids[i]] = struct{}{}
	}
}

// ClearResearcherLinks clears the "researcher_links" edge to the SpecimenResearcher entity.
func (m *SpecimenMutation) ClearResearcherLinks() {
	m.clearedresearcher_links = true
}

// ResearcherLinksCleared reports if the "researcher_links" edge to the SpecimenResearcher entity was cleared.
func (m *SpecimenMutation) ResearcherLinksCleared() bool {
	return m.clearedresearcher_links
}

// RemoveResearcherLinkIDs removes the "researcher_links" edge to the SpecimenResearcher entity by IDs.
func (m *SpecimenMutation) RemoveResearcherLinkIDs(ids ...string) {
	if m.removedresearcher_links == nil {
		m.removedresearcher_links = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.researcher_links, ids[i])
		m.removedresearcher_links[ids[i]] = struct{}{}
	}
}

// RemovedResearcherLinks returns the removed IDs of the "researcher_links" edge to the SpecimenResearcher entity.
func (m *SpecimenMutation) RemovedResearcherLinksIDs() (ids []string) {
	for id := range m.removedresearcher_links {
		ids = append(ids, id)
	}
	return
}

// ResearcherLinksIDs returns the "researcher_links" edge IDs in the mutation.
func (m *SpecimenMutation) ResearcherLinksIDs() (ids []string) {
	for id := range m.researcher_links {
		ids = append(ids, id)
	}
	return
}

// ResetResearcherLinks resets all changes to the "researcher_links" edge.
func (m *SpecimenMutation) ResetResearcherLinks() {
	m.researcher_links = nil
	m.clearedresearcher_links = false
	m.removedresearcher_links = nil
}

// Where appends a list predicates to the SpecimenMutation builder.
func (m *SpecimenMutation) Where(ps ...predicate.Specimen) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SpecimenMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SpecimenMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Specimen, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SpecimenMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SpecimenMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Specimen).
func (m *SpecimenMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SpecimenMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, specimen.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, specimen.FieldUpdatedAt)
	}
	if m.species != nil {
		fields = append(fields, specimen.FieldSpecies)
	}
	if m.common_name != nil {
		fields = append(fields, specimen.FieldCommonName)
	}
	if m.sampling_date != nil {
		fields = append(fields, specimen.FieldSamplingDate)
	}
	if m.description != nil {
		fields = append(fields, specimen.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, specimen.FieldStatus)
	}
	if m.deleted_at != nil {
		fields = append(fields, specimen.FieldDeletedAt)
	}
	if m.location != nil {
		fields = append(fields, specimen.FieldLocationID)
	}
	if m.condition != nil {
		fields = append(fields, specimen.FieldConditionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SpecimenMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case specimen.FieldCreatedAt:
		return m.CreatedAt()
	case specimen.FieldUpdatedAt:
		return m.UpdatedAt()
	case specimen.FieldSpecies:
		return m.Species()
	case specimen.FieldCommonName:
		return m.CommonName()
	case specimen.FieldSamplingDate:
		return m.SamplingDate()
	case specimen.FieldDescription:
		return m.Description()
	case specimen.FieldStatus:
		return m.Status()
	case specimen.FieldDeletedAt:
		return m.DeletedAt()
	case specimen.FieldLocationID:
		return m.LocationID()
	case specimen.FieldConditionID:
		return m.ConditionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SpecimenMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case specimen.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case specimen.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case specimen.FieldSpecies:
		return m.OldSpecies(ctx)
	case specimen.FieldCommonName:
		return m.OldCommonName(ctx)
	case specimen.FieldSamplingDate:
		return m.OldSamplingDate(ctx)
	case specimen.FieldDescription:
		return m.OldDescription(ctx)
	case specimen.FieldStatus:
		return m.OldStatus(ctx)
	case specimen.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case specimen.FieldLocationID:
		return m.OldLocationID(ctx)
	case specimen.FieldConditionID:
		return m.OldConditionID(ctx)
	}
	return nil, fmt.Errorf("unknown Specimen field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpecimenMutation) SetField(name string, value ent.Value) error {
	switch name {
	case specimen.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case specimen.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case specimen.FieldSpecies:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecies(v)
		return nil
	case specimen.FieldCommonName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommonName(v)
		return nil
	case specimen.FieldSamplingDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSamplingDate(v)
		return nil
	case specimen.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case specimen.FieldStatus:
		v, ok := value.(specimen.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case specimen.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case specimen.FieldLocationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationID(v)
		return nil
	case specimen.FieldConditionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConditionID(v)
		return nil
	}
	return fmt.Errorf("unknown Specimen field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SpecimenMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SpecimenMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpecimenMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Specimen numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SpecimenMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(specimen.FieldDescription) {
		fields = append(fields, specimen.FieldDescription)
	}
	if m.FieldCleared(specimen.FieldDeletedAt) {
		fields = append(fields, specimen.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SpecimenMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SpecimenMutation) ClearField(name string) error {
	switch name {
	case specimen.FieldDescription:
		m.ClearDescription()
		return nil
	case specimen.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Specimen nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SpecimenMutation) ResetField(name string) error {
	switch name {
	case specimen.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case specimen.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case specimen.FieldSpecies:
		m.ResetSpecies()
		return nil
	case specimen.FieldCommonName:
		m.ResetCommonName()
		return nil
	case specimen.FieldSamplingDate:
		m.ResetSamplingDate()
		return nil
	case specimen.FieldDescription:
		m.ResetDescription()
		return nil
	case specimen.FieldStatus:
		m.ResetStatus()
		return nil
	case specimen.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case specimen.FieldLocationID:
		m.ResetLocationID()
		return nil
	case specimen.FieldConditionID:
		m.ResetConditionID()
		return nil
	}
	return fmt.Errorf("unknown Specimen field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SpecimenMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.location != nil {
		edges = append(edges, specimen.EdgeLocation)
	}
	if m.condition != nil {
		edges = append(edges, specimen.EdgeCondition)
	}
	if m.growth_metrics != nil {
		edges = append(edges, specimen.EdgeGrowthMetrics)
	}
	if m.researcher_links != nil {
		edges = append(edges, specimen.EdgeResearcherLinks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SpecimenMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case specimen.EdgeLocation:
		if id := m.location; id != nil {
			return []ent.Value{*id}
		}
	case specimen.EdgeCondition:
		if id := m.condition; id != nil {
			return []ent.Value{*id}
		}
	case specimen.EdgeGrowthMetrics:
		ids := make([]ent.Value, 0, len(m.growth_metrics))
		for id := range m.growth_metrics {
			ids = append(ids, id)
		}
		return ids
	case specimen.EdgeResearcherLinks:
		ids := make([]ent.Value, 0, len(m.researcher_links))
		for id := range m.researcher_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SpecimenMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedgrowth_metrics != nil {
		edges = append(edges, specimen.EdgeGrowthMetrics)
	}
	if m.removedresearcher_links != nil {
		edges = append(edges, specimen.EdgeResearcherLinks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SpecimenMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case specimen.EdgeGrowthMetrics:
		ids := make([]ent.Value, 0, len(m.removedgrowth_metrics))
		for id := range m.removedgrowth_metrics {
			ids = append(ids, id)
		}
		return ids
	case specimen.EdgeResearcherLinks:
		ids := make([]ent.Value, 0, len(m.removedresearcher_links))
		for id := range m.removedresearcher_links {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SpecimenMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedlocation {
		edges = append(edges, specimen.EdgeLocation)
	}
	if m.clearedcondition {
		edges = append(edges, specimen.EdgeCondition)
	}
	if m.clearedgrowth_metrics {
		edges = append(edges, specimen.EdgeGrowthMetrics)
	}
	if m.clearedresearcher_links {
		edges = append(edges, specimen.EdgeResearcherLinks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SpecimenMutation) EdgeCleared(name string) bool {
	switch name {
	case specimen.EdgeLocation:
		return m.clearedlocation
	case specimen.EdgeCondition:
		return m.clearedcondition
	case specimen.EdgeGrowthMetrics:
		return m.clearedgrowth_metrics
	case specimen.EdgeResearcherLinks:
		return m.clearedresearcher_links
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SpecimenMutation) ClearEdge(name string) error {
	switch name {
	case specimen.EdgeLocation:
		m.ClearLocation()
		return nil
	case specimen.EdgeCondition:
		m.ClearCondition()
		return nil
	}
	return fmt.Errorf("unknown Specimen unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SpecimenMutation) ResetEdge(name string) error {
	switch name {
	case specimen.EdgeLocation:
		m.ResetLocation()
		return nil
	case specimen.EdgeCondition:
		m.ResetCondition()
		return nil
	case specimen.EdgeGrowthMetrics:
		m.ResetGrowthMetrics()
		return nil
	case specimen.EdgeResearcherLinks:
		m.ResetResearcherLinks()
		return nil
	}
	return fmt.Errorf("unknown Specimen edge %s", name)
}

// SpecimenResearcherMutation represents an operation that mutates the SpecimenResearcher nodes in the graph.
type SpecimenResearcherMutation struct {
	config
	op                Op
	typ               string
	id                *string
	created_at        *time.Time
	role              *specimenresearcher.Role
	clearedFields     map[string]struct{}
	specimen          *string
	clearedspecimen   bool
	researcher        *string
	clearedresearcher bool
	done              bool
	oldValue          func(context.Context) (*SpecimenResearcher, error)
	predicates        []predicate.SpecimenResearcher
}

var _ ent.Mutation = (*SpecimenResearcherMutation)(nil)

// specimenresearcherOption allows management of the mutation configuration using functional options.
type specimenresearcherOption func(*SpecimenResearcherMutation)

// newSpecimenResearcherMutation creates new mutation for the SpecimenResearcher entity.
func newSpecimenResearcherMutation(c config, op Op, opts ...specimenresearcherOption) *SpecimenResearcherMutation {
	m := &SpecimenResearcherMutation{
		config:        c,
		op:            op,
		typ:           TypeSpecimenResearcher,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSpecimenResearcherID sets the ID field of the mutation.
func withSpecimenResearcherID(id string) specimenresearcherOption {
	return func(m *SpecimenResearcherMutation) {
		var (
			err   error
			once  sync.Once
			value *SpecimenResearcher
		)
		m.oldValue = func(ctx context.Context) (*SpecimenResearcher, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SpecimenResearcher.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSpecimenResearcher sets the old SpecimenResearcher of the mutation.
func withSpecimenResearcher(node *SpecimenResearcher) specimenresearcherOption {
	return func(m *SpecimenResearcherMutation) {
		m.oldValue = func(context.Context) (*SpecimenResearcher, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SpecimenResearcherMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SpecimenResearcherMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SpecimenResearcher entities.
func (m *SpecimenResearcherMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SpecimenResearcherMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SpecimenResearcherMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SpecimenResearcher.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SpecimenResearcherMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SpecimenResearcherMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SpecimenResearcher entity.
// If the SpecimenResearcher object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecimenResearcherMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SpecimenResearcherMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetSpecimenID sets the "specimen_id" field.
func (m *SpecimenResearcherMutation) SetSpecimenID(s string) {
	m.specimen = &s
}

// SpecimenID returns the value of the "specimen_id" field in the mutation.
func (m *SpecimenResearcherMutation) SpecimenID() (r string, exists bool) {
	v := m.specimen
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecimenID returns the old "specimen_id" field's value of the SpecimenResearcher entity.
// If the SpecimenResearcher object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecimenResearcherMutation) OldSpecimenID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecimenID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecimenID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecimenID: %w", err)
	}
	return oldValue.SpecimenID, nil
}

// ResetSpecimenID resets all changes to the "specimen_id" field.
func (m *SpecimenResearcherMutation) ResetSpecimenID() {
	m.specimen = nil
}

// SetResearcherID sets the "researcher_id" field.
func (m *SpecimenResearcherMutation) SetResearcherID(s string) {
	m.researcher = &s
}

// ResearcherID returns the value of the "researcher_id" field in the mutation.
func (m *SpecimenResearcherMutation) ResearcherID() (r string, exists bool) {
	v := m.researcher
	if v == nil {
		return
	}
	return *v, true
}

// OldResearcherID returns the old "researcher_id" field's value of the SpecimenResearcher entity.
// If the SpecimenResearcher object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecimenResearcherMutation) OldResearcherID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResearcherID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResearcherID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResearcherID: %w", err)
	}
	return oldValue.ResearcherID, nil
}

// ResetResearcherID resets all changes to the "researcher_id" field.
func (m *SpecimenResearcherMutation) ResetResearcherID() {
	m.researcher = nil
}

// SetRole sets the "role" field.
func (m *SpecimenResearcherMutation) SetRole(s specimenresearcher.Role) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *SpecimenResearcherMutation) Role() (r specimenresearcher.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the SpecimenResearcher entity.
// If the SpecimenResearcher object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SpecimenResearcherMutation) OldRole(ctx context.Context) (v specimenresearcher.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ClearRole clears the value of the "role" field.
func (m *SpecimenResearcherMutation) ClearRole() {
	m.role = nil
	m.clearedFields[specimenresearcher.FieldRole] = struct{}{}
}

// RoleCleared returns if the "role" field was cleared in this mutation.
func (m *SpecimenResearcherMutation) RoleCleared() bool {
	_, ok := m.clearedFields[specimenresearcher.FieldRole]
	return ok
}

// ResetRole resets all changes to the "role" field.
func (m *SpecimenResearcherMutation) ResetRole() {
	m.role = nil
	delete(m.clearedFields, specimenresearcher.FieldRole)
}

// ClearSpecimen clears the "specimen" edge to the Specimen entity.
func (m *SpecimenResearcherMutation) ClearSpecimen() {
	m.clearedspecimen = true
	m.clearedFields[specimenresearcher.FieldSpecimenID] = struct{}{}
}

// SpecimenCleared reports if the "specimen" edge to the Specimen entity was cleared.
func (m *SpecimenResearcherMutation) SpecimenCleared() bool {
	return m.clearedspecimen
}

// SpecimenIDs returns the "specimen" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SpecimenID instead. It exists only for internal usage by the builders.
func (m *SpecimenResearcherMutation) SpecimenIDs() (ids []string) {
	if id := m.specimen; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSpecimen resets all changes to the "specimen" edge.
func (m *SpecimenResearcherMutation) ResetSpecimen() {
	m.specimen = nil
	m.clearedspecimen = false
}

// ClearResearcher clears the "researcher" edge to the Researcher entity.
func (m *SpecimenResearcherMutation) ClearResearcher() {
	m.clearedresearcher = true
	m.clearedFields[specimenresearcher.FieldResearcherID] = struct{}{}
}

// ResearcherCleared reports if the "researcher" edge to the Researcher entity was cleared.
func (m *SpecimenResearcherMutation) ResearcherCleared() bool {
	return m.clearedresearcher
}

// ResearcherIDs returns the "researcher" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ResearcherID instead. It exists only for internal usage by the builders.
func (m *SpecimenResearcherMutation) ResearcherIDs() (ids []string) {
	if id := m.researcher; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetResearcher resets all changes to the "researcher" edge.
func (m *SpecimenResearcherMutation) ResetResearcher() {
	m.researcher = nil
	m.clearedresearcher = false
}

// Where appends a list predicates to the SpecimenResearcherMutation builder.
func (m *SpecimenResearcherMutation) Where(ps ...predicate.SpecimenResearcher) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SpecimenResearcherMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SpecimenResearcherMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SpecimenResearcher, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SpecimenResearcherMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SpecimenResearcherMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SpecimenResearcher).
func (m *SpecimenResearcherMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SpecimenResearcherMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, specimenresearcher.FieldCreatedAt)
	}
	if m.specimen != nil {
		fields = append(fields, specimenresearcher.FieldSpecimenID)
	}
	if m.researcher != nil {
		fields = append(fields, specimenresearcher.FieldResearcherID)
	}
	if m.role != nil {
		fields = append(fields, specimenresearcher.FieldRole)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SpecimenResearcherMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case specimenresearcher.FieldCreatedAt:
		return m.CreatedAt()
	case specimenresearcher.FieldSpecimenID:
		return m.SpecimenID()
	case specimenresearcher.FieldResearcherID:
		return m.ResearcherID()
	case specimenresearcher.FieldRole:
		return m.Role()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SpecimenResearcherMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case specimenresearcher.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case specimenresearcher.FieldSpecimenID:
		return m.OldSpecimenID(ctx)
	case specimenresearcher.FieldResearcherID:
		return m.OldResearcherID(ctx)
	case specimenresearcher.FieldRole:
		return m.OldRole(ctx)
	}
	return nil, fmt.Errorf("unknown SpecimenResearcher field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpecimenResearcherMutation) SetField(name string, value ent.Value) error {
	switch name {
	case specimenresearcher.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case specimenresearcher.FieldSpecimenID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecimenID(v)
		return nil
	case specimenresearcher.FieldResearcherID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResearcherID(v)
		return nil
	case specimenresearcher.FieldRole:
		v, ok := value.(specimenresearcher.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	}
	return fmt.Errorf("unknown SpecimenResearcher field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SpecimenResearcherMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SpecimenResearcherMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SpecimenResearcherMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SpecimenResearcher numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SpecimenResearcherMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(specimenresearcher.FieldRole) {
		fields = append(fields, specimenresearcher.FieldRole)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SpecimenResearcherMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SpecimenResearcherMutation) ClearField(name string) error {
	switch name {
	case specimenresearcher.FieldRole:
		m.ClearRole()
		return nil
	}
	return fmt.Errorf("unknown SpecimenResearcher nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SpecimenResearcherMutation) ResetField(name string) error {
	switch name {
	case specimenresearcher.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case specimenresearcher.FieldSpecimenID:
		m.ResetSpecimenID()
		return nil
	case specimenresearcher.FieldResearcherID:
		m.ResetResearcherID()
		return nil
	case specimenresearcher.FieldRole:
		m.ResetRole()
		return nil
	}
	return fmt.Errorf("unknown SpecimenResearcher field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SpecimenResearcherMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.specimen != nil {
		edges = append(edges, specimenresearcher.EdgeSpecimen)
	}
	if m.researcher != nil {
		edges = append(edges, specimenresearcher.EdgeResearcher)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SpecimenResearcherMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case specimenresearcher.EdgeSpecimen:
		if id := m.specimen; id != nil {
			return []ent.Value{*id}
		}
	case specimenresearcher.EdgeResearcher:
		if id := m.researcher; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SpecimenResearcherMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SpecimenResearcherMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SpecimenResearcherMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedspecimen {
		edges = append(edges, specimenresearcher.EdgeSpecimen)
	}
	if m.clearedresearcher {
		edges = append(edges, specimenresearcher.EdgeResearcher)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SpecimenResearcherMutation) EdgeCleared(name string) bool {
	switch name {
	case specimenresearcher.EdgeSpecimen:
		return m.clearedspecimen
	case specimenresearcher.EdgeResearcher:
		return m.clearedresearcher
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SpecimenResearcherMutation) ClearEdge(name string) error {
	switch name {
	case specimenresearcher.EdgeSpecimen:
		m.ClearSpecimen()
		return nil
	case specimenresearcher.EdgeResearcher:
		m.ClearResearcher()
		return nil
	}
	return fmt.Errorf("unknown SpecimenResearcher unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SpecimenResearcherMutation) ResetEdge(name string) error {
	switch name {
	case specimenresearcher.EdgeSpecimen:
		m.ResetSpecimen()
		return nil
	case specimenresearcher.EdgeResearcher:
		m.ResetResearcher()
		return nil
	}
	return fmt.Errorf("unknown SpecimenResearcher edge %s", name)
}
