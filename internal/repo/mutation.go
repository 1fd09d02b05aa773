// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arkanhealth/jadwal_backend/internal/repo/availabilityrule"
	"github.com/arkanhealth/jadwal_backend/internal/repo/center"
	"github.com/arkanhealth/jadwal_backend/internal/repo/enrollment"
	"github.com/arkanhealth/jadwal_backend/internal/repo/freezewindow"
	"github.com/arkanhealth/jadwal_backend/internal/repo/notification"
	"github.com/arkanhealth/jadwal_backend/internal/repo/predicate"
	"github.com/arkanhealth/jadwal_backend/internal/repo/reschedulebatch"
	"github.com/arkanhealth/jadwal_backend/internal/repo/room"
	"github.com/arkanhealth/jadwal_backend/internal/repo/therapist"
	"github.com/arkanhealth/jadwal_backend/internal/repo/therapysession"
	"github.com/arkanhealth/jadwal_backend/internal/schema"
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
	TypeAvailabilityRule = "AvailabilityRule"
	TypeCenter           = "Center"
	TypeEnrollment       = "Enrollment"
	TypeFreezeWindow     = "FreezeWindow"
	TypeNotification     = "Notification"
	TypeRescheduleBatch  = "RescheduleBatch"
	TypeRoom             = "Room"
	TypeTherapist        = "Therapist"
	TypeTherapySession   = "TherapySession"
)

// AvailabilityRuleMutation represents an operation that mutates the AvailabilityRule nodes in the graph.
type AvailabilityRuleMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	therapist_id    *uuid.UUID
	center_id       *uuid.UUID
	day_of_week     *int8
	addday_of_week  *int8
	start_hour      *int8
	addstart_hour   *int8
	start_minute    *int8
	addstart_minute *int8
	end_hour        *int8
	addend_hour     *int8
	end_minute      *int8
	addend_minute   *int8
	valid_from      *time.Time
	valid_until     *time.Time
	is_active       *bool
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*AvailabilityRule, error)
	predicates      []predicate.AvailabilityRule
}

var _ ent.Mutation = (*AvailabilityRuleMutation)(nil)

// availabilityruleOption allows management of the mutation configuration using functional options.
type availabilityruleOption func(*AvailabilityRuleMutation)

// newAvailabilityRuleMutation creates new mutation for the AvailabilityRule entity.
func newAvailabilityRuleMutation(c config, op Op, opts ...availabilityruleOption) *AvailabilityRuleMutation {
	m := &AvailabilityRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeAvailabilityRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAvailabilityRuleID sets the ID field of the mutation.
func withAvailabilityRuleID(id uuid.UUID) availabilityruleOption {
	return func(m *AvailabilityRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *AvailabilityRule
		)
		m.oldValue = func(ctx context.Context) (*AvailabilityRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AvailabilityRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAvailabilityRule sets the old AvailabilityRule of the mutation.
func withAvailabilityRule(node *AvailabilityRule) availabilityruleOption {
	return func(m *AvailabilityRuleMutation) {
		m.oldValue = func(context.Context) (*AvailabilityRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AvailabilityRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AvailabilityRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AvailabilityRule entities.
func (m *AvailabilityRuleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AvailabilityRuleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AvailabilityRuleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AvailabilityRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AvailabilityRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AvailabilityRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AvailabilityRule entity.
// If the AvailabilityRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AvailabilityRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AvailabilityRuleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AvailabilityRuleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AvailabilityRule entity.
// If the AvailabilityRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityRuleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AvailabilityRuleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTherapistID sets the "therapist_id" field.
func (m *AvailabilityRuleMutation) SetTherapistID(u uuid.UUID) {
	m.therapist_id = &u
}

// TherapistID returns the value of the "therapist_id" field in the mutation.
func (m *AvailabilityRuleMutation) TherapistID() (r uuid.UUID, exists bool) {
	v := m.therapist_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTherapistID returns the old "therapist_id" field's value of the AvailabilityRule entity.
// If the AvailabilityRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityRuleMutation) OldTherapistID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTherapistID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTherapistID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTherapistID: %w", err)
	}
	return oldValue.TherapistID, nil
}

// ResetTherapistID resets all changes to the "therapist_id" field.
func (m *AvailabilityRuleMutation) ResetTherapistID() {
	m.therapist_id = nil
}

// SetCenterID sets the "center_id" field.
func (m *AvailabilityRuleMutation) SetCenterID(u uuid.UUID) {
	m.center_id = &u
}

// CenterID returns the value of the "center_id" field in the mutation.
func (m *AvailabilityRuleMutation) CenterID() (r uuid.UUID, exists bool) {
	v := m.center_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCenterID returns the old "center_id" field's value of the AvailabilityRule entity.
// If the AvailabilityRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityRuleMutation) OldCenterID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCenterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCenterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCenterID: %w", err)
	}
	return oldValue.CenterID, nil
}

// ResetCenterID resets all changes to the "center_id" field.
func (m *AvailabilityRuleMutation) ResetCenterID() {
	m.center_id = nil
}

// SetDayOfWeek sets the "day_of_week" field.
func (m *AvailabilityRuleMutation) SetDayOfWeek(i int8) {
	m.day_of_week = &i
	m.addday_of_week = nil
}

// DayOfWeek returns the value of the "day_of_week" field in the mutation.
func (m *AvailabilityRuleMutation) DayOfWeek() (r int8, exists bool) {
	v := m.day_of_week
	if v == nil {
		return
	}
	return *v, true
}

// OldDayOfWeek returns the old "day_of_week" field's value of the AvailabilityRule entity.
// If the AvailabilityRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityRuleMutation) OldDayOfWeek(ctx context.Context) (v int8, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDayOfWeek is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDayOfWeek requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDayOfWeek: %w", err)
	}
	return oldValue.DayOfWeek, nil
}

// AddDayOfWeek adds i to the "day_of_week" field.
func (m *AvailabilityRuleMutation) AddDayOfWeek(i int8) {
	if m.addday_of_week != nil {
		*m.addday_of_week += i
	} else {
		m.addday_of_week = &i
	}
}

// AddedDayOfWeek returns the value that was added to the "day_of_week" field in this mutation.
func (m *AvailabilityRuleMutation) AddedDayOfWeek() (r int8, exists bool) {
	v := m.addday_of_week
	if v == nil {
		return
	}
	return *v, true
}

// ResetDayOfWeek resets all changes to the "day_of_week" field.
func (m *AvailabilityRuleMutation) ResetDayOfWeek() {
	m.day_of_week = nil
	m.addday_of_week = nil
}

// SetStartHour sets the "start_hour" field.
func (m *AvailabilityRuleMutation) SetStartHour(i int8) {
	m.start_hour = &i
	m.addstart_hour = nil
}

// StartHour returns the value of the "start_hour" field in the mutation.
func (m *AvailabilityRuleMutation) StartHour() (r int8, exists bool) {
	v := m.start_hour
	if v == nil {
		return
	}
	return *v, true
}

// OldStartHour returns the old "start_hour" field's value of the AvailabilityRule entity.
// If the AvailabilityRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityRuleMutation) OldStartHour(ctx context.Context) (v int8, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartHour is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartHour requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartHour: %w", err)
	}
	return oldValue.StartHour, nil
}

// AddStartHour adds i to the "start_hour" field.
func (m *AvailabilityRuleMutation) AddStartHour(i int8) {
	if m.addstart_hour != nil {
		*m.addstart_hour += i
	} else {
		m.addstart_hour = &i
	}
}

// AddedStartHour returns the value that was added to the "start_hour" field in this mutation.
func (m *AvailabilityRuleMutation) AddedStartHour() (r int8, exists bool) {
	v := m.addstart_hour
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartHour resets all changes to the "start_hour" field.
func (m *AvailabilityRuleMutation) ResetStartHour() {
	m.start_hour = nil
	m.addstart_hour = nil
}

// SetStartMinute sets the "start_minute" field.
func (m *AvailabilityRuleMutation) SetStartMinute(i int8) {
	m.start_minute = &i
	m.addstart_minute = nil
}

// StartMinute returns the value of the "start_minute" field in the mutation.
func (m *AvailabilityRuleMutation) StartMinute() (r int8, exists bool) {
	v := m.start_minute
	if v == nil {
		return
	}
	return *v, true
}

// OldStartMinute returns the old "start_minute" field's value of the AvailabilityRule entity.
// If the AvailabilityRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityRuleMutation) OldStartMinute(ctx context.Context) (v int8, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartMinute is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartMinute requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartMinute: %w", err)
	}
	return oldValue.StartMinute, nil
}

// AddStartMinute adds i to the "start_minute" field.
func (m *AvailabilityRuleMutation) AddStartMinute(i int8) {
	if m.addstart_minute != nil {
		*m.addstart_minute += i
	} else {
		m.addstart_minute = &i
	}
}

// AddedStartMinute returns the value that was added to the "start_minute" field in this mutation.
func (m *AvailabilityRuleMutation) AddedStartMinute() (r int8, exists bool) {
	v := m.addstart_minute
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartMinute resets all changes to the "start_minute" field.
func (m *AvailabilityRuleMutation) ResetStartMinute() {
	m.start_minute = nil
	m.addstart_minute = nil
}

// SetEndHour sets the "end_hour" field.
func (m *AvailabilityRuleMutation) SetEndHour(i int8) {
	m.end_hour = &i
	m.addend_hour = nil
}

// EndHour returns the value of the "end_hour" field in the mutation.
func (m *AvailabilityRuleMutation) EndHour() (r int8, exists bool) {
	v := m.end_hour
	if v == nil {
		return
	}
	return *v, true
}

// OldEndHour returns the old "end_hour" field's value of the AvailabilityRule entity.
// If the AvailabilityRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityRuleMutation) OldEndHour(ctx context.Context) (v int8, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndHour is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndHour requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndHour: %w", err)
	}
	return oldValue.EndHour, nil
}

// AddEndHour adds i to the "end_hour" field.
func (m *AvailabilityRuleMutation) AddEndHour(i int8) {
	if m.addend_hour != nil {
		*m.addend_hour += i
	} else {
		m.addend_hour = &i
	}
}

// AddedEndHour returns the value that was added to the "end_hour" field in this mutation.
func (m *AvailabilityRuleMutation) AddedEndHour() (r int8, exists bool) {
	v := m.addend_hour
	if v == nil {
		return
	}
	return *v, true
}

// ResetEndHour resets all changes to the "end_hour" field.
func (m *AvailabilityRuleMutation) ResetEndHour() {
	m.end_hour = nil
	m.addend_hour = nil
}

// SetEndMinute sets the "end_minute" field.
func (m *AvailabilityRuleMutation) SetEndMinute(i int8) {
	m.end_minute = &i
	m.addend_minute = nil
}

// EndMinute returns the value of the "end_minute" field in the mutation.
func (m *AvailabilityRuleMutation) EndMinute() (r int8, exists bool) {
	v := m.end_minute
	if v == nil {
		return
	}
	return *v, true
}

// OldEndMinute returns the old "end_minute" field's value of the AvailabilityRule entity.
// If the AvailabilityRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityRuleMutation) OldEndMinute(ctx context.Context) (v int8, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndMinute is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndMinute requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndMinute: %w", err)
	}
	return oldValue.EndMinute, nil
}

// AddEndMinute adds i to the "end_minute" field.
func (m *AvailabilityRuleMutation) AddEndMinute(i int8) {
	if m.addend_minute != nil {
		*m.addend_minute += i
	} else {
		m.addend_minute = &i
	}
}

// AddedEndMinute returns the value that was added to the "end_minute" field in this mutation.
func (m *AvailabilityRuleMutation) AddedEndMinute() (r int8, exists bool) {
	v := m.addend_minute
	if v == nil {
		return
	}
	return *v, true
}

// ResetEndMinute resets all changes to the "end_minute" field.
func (m *AvailabilityRuleMutation) ResetEndMinute() {
	m.end_minute = nil
	m.addend_minute = nil
}

// SetValidFrom sets the "valid_from" field.
func (m *AvailabilityRuleMutation) SetValidFrom(t time.Time) {
	m.valid_from = &t
}

// ValidFrom returns the value of the "valid_from" field in the mutation.
func (m *AvailabilityRuleMutation) ValidFrom() (r time.Time, exists bool) {
	v := m.valid_from
	if v == nil {
		return
	}
	return *v, true
}

// OldValidFrom returns the old "valid_from" field's value of the AvailabilityRule entity.
// If the AvailabilityRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityRuleMutation) OldValidFrom(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidFrom: %w", err)
	}
	return oldValue.ValidFrom, nil
}

// ResetValidFrom resets all changes to the "valid_from" field.
func (m *AvailabilityRuleMutation) ResetValidFrom() {
	m.valid_from = nil
}

// SetValidUntil sets the "valid_until" field.
func (m *AvailabilityRuleMutation) SetValidUntil(t time.Time) {
	m.valid_until = &t
}

// ValidUntil returns the value of the "valid_until" field in the mutation.
func (m *AvailabilityRuleMutation) ValidUntil() (r time.Time, exists bool) {
	v := m.valid_until
	if v == nil {
		return
	}
	return *v, true
}

// OldValidUntil returns the old "valid_until" field's value of the AvailabilityRule entity.
// If the AvailabilityRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityRuleMutation) OldValidUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidUntil: %w", err)
	}
	return oldValue.ValidUntil, nil
}

// ClearValidUntil clears the value of the "valid_until" field.
func (m *AvailabilityRuleMutation) ClearValidUntil() {
	m.valid_until = nil
	m.clearedFields[availabilityrule.FieldValidUntil] = struct{}{}
}

// ValidUntilCleared returns if the "valid_until" field was cleared in this mutation.
func (m *AvailabilityRuleMutation) ValidUntilCleared() bool {
	_, ok := m.clearedFields[availabilityrule.FieldValidUntil]
	return ok
}

// ResetValidUntil resets all changes to the "valid_until" field.
func (m *AvailabilityRuleMutation) ResetValidUntil() {
	m.valid_until = nil
	delete(m.clearedFields, availabilityrule.FieldValidUntil)
}

// SetIsActive sets the "is_active" field.
func (m *AvailabilityRuleMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *AvailabilityRuleMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the AvailabilityRule entity.
// If the AvailabilityRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AvailabilityRuleMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *AvailabilityRuleMutation) ResetIsActive() {
	m.is_active = nil
}

// Where appends a list predicates to the AvailabilityRuleMutation builder.
func (m *AvailabilityRuleMutation) Where(ps ...predicate.AvailabilityRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AvailabilityRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AvailabilityRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AvailabilityRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AvailabilityRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AvailabilityRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AvailabilityRule).
func (m *AvailabilityRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AvailabilityRuleMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, availabilityrule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, availabilityrule.FieldUpdatedAt)
	}
	if m.therapist_id != nil {
		fields = append(fields, availabilityrule.FieldTherapistID)
	}
	if m.center_id != nil {
		fields = append(fields, availabilityrule.FieldCenterID)
	}
	if m.day_of_week != nil {
		fields = append(fields, availabilityrule.FieldDayOfWeek)
	}
	if m.start_hour != nil {
		fields = append(fields, availabilityrule.FieldStartHour)
	}
	if m.start_minute != nil {
		fields = append(fields, availabilityrule.FieldStartMinute)
	}
	if m.end_hour != nil {
		fields = append(fields, availabilityrule.FieldEndHour)
	}
	if m.end_minute != nil {
		fields = append(fields, availabilityrule.FieldEndMinute)
	}
	if m.valid_from != nil {
		fields = append(fields, availabilityrule.FieldValidFrom)
	}
	if m.valid_until != nil {
		fields = append(fields, availabilityrule.FieldValidUntil)
	}
	if m.is_active != nil {
		fields = append(fields, availabilityrule.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AvailabilityRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case availabilityrule.FieldCreatedAt:
		return m.CreatedAt()
	case availabilityrule.FieldUpdatedAt:
		return m.UpdatedAt()
	case availabilityrule.FieldTherapistID:
		return m.TherapistID()
	case availabilityrule.FieldCenterID:
		return m.CenterID()
	case availabilityrule.FieldDayOfWeek:
		return m.DayOfWeek()
	case availabilityrule.FieldStartHour:
		return m.StartHour()
	case availabilityrule.FieldStartMinute:
		return m.StartMinute()
	case availabilityrule.FieldEndHour:
		return m.EndHour()
	case availabilityrule.FieldEndMinute:
		return m.EndMinute()
	case availabilityrule.FieldValidFrom:
		return m.ValidFrom()
	case availabilityrule.FieldValidUntil:
		return m.ValidUntil()
	case availabilityrule.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AvailabilityRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case availabilityrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case availabilityrule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case availabilityrule.FieldTherapistID:
		return m.OldTherapistID(ctx)
	case availabilityrule.FieldCenterID:
		return m.OldCenterID(ctx)
	case availabilityrule.FieldDayOfWeek:
		return m.OldDayOfWeek(ctx)
	case availabilityrule.FieldStartHour:
		return m.OldStartHour(ctx)
	case availabilityrule.FieldStartMinute:
		return m.OldStartMinute(ctx)
	case availabilityrule.FieldEndHour:
		return m.OldEndHour(ctx)
	case availabilityrule.FieldEndMinute:
		return m.OldEndMinute(ctx)
	case availabilityrule.FieldValidFrom:
		return m.OldValidFrom(ctx)
	case availabilityrule.FieldValidUntil:
		return m.OldValidUntil(ctx)
	case availabilityrule.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown AvailabilityRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AvailabilityRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case availabilityrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case availabilityrule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case availabilityrule.FieldTherapistID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTherapistID(v)
		return nil
	case availabilityrule.FieldCenterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCenterID(v)
		return nil
	case availabilityrule.FieldDayOfWeek:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDayOfWeek(v)
		return nil
	case availabilityrule.FieldStartHour:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartHour(v)
		return nil
	case availabilityrule.FieldStartMinute:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartMinute(v)
		return nil
	case availabilityrule.FieldEndHour:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndHour(v)
		return nil
	case availabilityrule.FieldEndMinute:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndMinute(v)
		return nil
	case availabilityrule.FieldValidFrom:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidFrom(v)
		return nil
	case availabilityrule.FieldValidUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidUntil(v)
		return nil
	case availabilityrule.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown AvailabilityRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AvailabilityRuleMutation) AddedFields() []string {
	var fields []string
	if m.addday_of_week != nil {
		fields = append(fields, availabilityrule.FieldDayOfWeek)
	}
	if m.addstart_hour != nil {
		fields = append(fields, availabilityrule.FieldStartHour)
	}
	if m.addstart_minute != nil {
		fields = append(fields, availabilityrule.FieldStartMinute)
	}
	if m.addend_hour != nil {
		fields = append(fields, availabilityrule.FieldEndHour)
	}
	if m.addend_minute != nil {
		fields = append(fields, availabilityrule.FieldEndMinute)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AvailabilityRuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case availabilityrule.FieldDayOfWeek:
		return m.AddedDayOfWeek()
	case availabilityrule.FieldStartHour:
		return m.AddedStartHour()
	case availabilityrule.FieldStartMinute:
		return m.AddedStartMinute()
	case availabilityrule.FieldEndHour:
		return m.AddedEndHour()
	case availabilityrule.FieldEndMinute:
		return m.AddedEndMinute()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AvailabilityRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case availabilityrule.FieldDayOfWeek:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDayOfWeek(v)
		return nil
	case availabilityrule.FieldStartHour:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartHour(v)
		return nil
	case availabilityrule.FieldStartMinute:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartMinute(v)
		return nil
	case availabilityrule.FieldEndHour:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndHour(v)
		return nil
	case availabilityrule.FieldEndMinute:
		v, ok := value.(int8)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndMinute(v)
		return nil
	}
	return fmt.Errorf("unknown AvailabilityRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AvailabilityRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(availabilityrule.FieldValidUntil) {
		fields = append(fields, availabilityrule.FieldValidUntil)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AvailabilityRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AvailabilityRuleMutation) ClearField(name string) error {
	switch name {
	case availabilityrule.FieldValidUntil:
		m.ClearValidUntil()
		return nil
	}
	return fmt.Errorf("unknown AvailabilityRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AvailabilityRuleMutation) ResetField(name string) error {
	switch name {
	case availabilityrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case availabilityrule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case availabilityrule.FieldTherapistID:
		m.ResetTherapistID()
		return nil
	case availabilityrule.FieldCenterID:
		m.ResetCenterID()
		return nil
	case availabilityrule.FieldDayOfWeek:
		m.ResetDayOfWeek()
		return nil
	case availabilityrule.FieldStartHour:
		m.ResetStartHour()
		return nil
	case availabilityrule.FieldStartMinute:
		m.ResetStartMinute()
		return nil
	case availabilityrule.FieldEndHour:
		m.ResetEndHour()
		return nil
	case availabilityrule.FieldEndMinute:
		m.ResetEndMinute()
		return nil
	case availabilityrule.FieldValidFrom:
		m.ResetValidFrom()
		return nil
	case availabilityrule.FieldValidUntil:
		m.ResetValidUntil()
		return nil
	case availabilityrule.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown AvailabilityRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AvailabilityRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AvailabilityRuleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AvailabilityRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AvailabilityRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AvailabilityRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AvailabilityRuleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AvailabilityRuleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AvailabilityRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AvailabilityRuleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AvailabilityRule edge %s", name)
}

// CenterMutation represents an operation that mutates the Center nodes in the graph.
type CenterMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	deleted_at    *time.Time
	name          *string
	slug          *string
	timezone      *string
	contact_email *string
	is_active     *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Center, error)
	predicates    []predicate.Center
}

var _ ent.Mutation = (*CenterMutation)(nil)

// centerOption allows management of the mutation configuration using functional options.
type centerOption func(*CenterMutation)

// newCenterMutation creates new mutation for the Center entity.
func newCenterMutation(c config, op Op, opts ...centerOption) *CenterMutation {
	m := &CenterMutation{
		config:        c,
		op:            op,
		typ:           TypeCenter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCenterID sets the ID field of the mutation.
func withCenterID(id uuid.UUID) centerOption {
	return func(m *CenterMutation) {
		var (
			err   error
			once  sync.Once
			value *Center
		)
		m.oldValue = func(ctx context.Context) (*Center, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Center.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCenter sets the old Center of the mutation.
func withCenter(node *Center) centerOption {
	return func(m *CenterMutation) {
		m.oldValue = func(context.Context) (*Center, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CenterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CenterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Center entities.
func (m *CenterMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CenterMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CenterMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Center.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CenterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CenterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Center entity.
// If the Center object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CenterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CenterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CenterMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CenterMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Center entity.
// If the Center object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CenterMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CenterMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *CenterMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *CenterMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Center entity.
// If the Center object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CenterMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *CenterMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[center.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *CenterMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[center.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *CenterMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, center.FieldDeletedAt)
}

// SetName sets the "name" field.
func (m *CenterMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CenterMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Center entity.
// If the Center object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CenterMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *CenterMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *CenterMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *CenterMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Center entity.
// If the Center object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CenterMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *CenterMutation) ResetSlug() {
	m.slug = nil
}

// SetTimezone sets the "timezone" field.
func (m *CenterMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *CenterMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Center entity.
// If the Center object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CenterMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *CenterMutation) ResetTimezone() {
	m.timezone = nil
}

// SetContactEmail sets the "contact_email" field.
func (m *CenterMutation) SetContactEmail(s string) {
	m.contact_email = &s
}

// ContactEmail returns the value of the "contact_email" field in the mutation.
func (m *CenterMutation) ContactEmail() (r string, exists bool) {
	v := m.contact_email
	if v == nil {
		return
	}
	return *v, true
}

// OldContactEmail returns the old "contact_email" field's value of the Center entity.
// If the Center object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CenterMutation) OldContactEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactEmail: %w", err)
	}
	return oldValue.ContactEmail, nil
}

// ClearContactEmail clears the value of the "contact_email" field.
func (m *CenterMutation) ClearContactEmail() {
	m.contact_email = nil
	m.clearedFields[center.FieldContactEmail] = struct{}{}
}

// ContactEmailCleared returns if the "contact_email" field was cleared in this mutation.
func (m *CenterMutation) ContactEmailCleared() bool {
	_, ok := m.clearedFields[center.FieldContactEmail]
	return ok
}

// ResetContactEmail resets all changes to the "contact_email" field.
func (m *CenterMutation) ResetContactEmail() {
	m.contact_email = nil
	delete(m.clearedFields, center.FieldContactEmail)
}

// SetIsActive sets the "is_active" field.
func (m *CenterMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *CenterMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Center entity.
// If the Center object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CenterMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *CenterMutation) ResetIsActive() {
	m.is_active = nil
}

// Where appends a list predicates to the CenterMutation builder.
func (m *CenterMutation) Where(ps ...predicate.Center) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CenterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CenterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Center, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CenterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CenterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Center).
func (m *CenterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CenterMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, center.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, center.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, center.FieldDeletedAt)
	}
	if m.name != nil {
		fields = append(fields, center.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, center.FieldSlug)
	}
	if m.timezone != nil {
		fields = append(fields, center.FieldTimezone)
	}
	if m.contact_email != nil {
		fields = append(fields, center.FieldContactEmail)
	}
	if m.is_active != nil {
		fields = append(fields, center.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CenterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case center.FieldCreatedAt:
		return m.CreatedAt()
	case center.FieldUpdatedAt:
		return m.UpdatedAt()
	case center.FieldDeletedAt:
		return m.DeletedAt()
	case center.FieldName:
		return m.Name()
	case center.FieldSlug:
		return m.Slug()
	case center.FieldTimezone:
		return m.Timezone()
	case center.FieldContactEmail:
		return m.ContactEmail()
	case center.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CenterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case center.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case center.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case center.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case center.FieldName:
		return m.OldName(ctx)
	case center.FieldSlug:
		return m.OldSlug(ctx)
	case center.FieldTimezone:
		return m.OldTimezone(ctx)
	case center.FieldContactEmail:
		return m.OldContactEmail(ctx)
	case center.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown Center field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CenterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case center.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case center.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case center.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case center.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case center.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case center.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case center.FieldContactEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactEmail(v)
		return nil
	case center.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown Center field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CenterMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CenterMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CenterMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Center numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CenterMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(center.FieldDeletedAt) {
		fields = append(fields, center.FieldDeletedAt)
	}
	if m.FieldCleared(center.FieldContactEmail) {
		fields = append(fields, center.FieldContactEmail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CenterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CenterMutation) ClearField(name string) error {
	switch name {
	case center.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case center.FieldContactEmail:
		m.ClearContactEmail()
		return nil
	}
	return fmt.Errorf("unknown Center nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CenterMutation) ResetField(name string) error {
	switch name {
	case center.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case center.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case center.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case center.FieldName:
		m.ResetName()
		return nil
	case center.FieldSlug:
		m.ResetSlug()
		return nil
	case center.FieldTimezone:
		m.ResetTimezone()
		return nil
	case center.FieldContactEmail:
		m.ResetContactEmail()
		return nil
	case center.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown Center field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CenterMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CenterMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CenterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CenterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CenterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CenterMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CenterMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Center unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CenterMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Center edge %s", name)
}

// EnrollmentMutation represents an operation that mutates the Enrollment nodes in the graph.
type EnrollmentMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	created_at              *time.Time
	updated_at              *time.Time
	center_id               *uuid.UUID
	student_id              *uuid.UUID
	therapist_id            *uuid.UUID
	room_id                 *uuid.UUID
	guardian_phone_enc      *string
	start_date              *time.Time
	end_date                *time.Time
	session_count           *int
	addsession_count        *int
	sessions_per_week       *int
	addsessions_per_week    *int
	session_duration_min    *int
	addsession_duration_min *int
	preferred_days          *[]int
	appendpreferred_days    []int
	avoid_days              *[]int
	appendavoid_days        []int
	preferred_windows       *[]schema.TimeWindow
	appendpreferred_windows []schema.TimeWindow
	avoid_windows           *[]schema.TimeWindow
	appendavoid_windows     []schema.TimeWindow
	flexibility             *float64
	addflexibility          *float64
	status                  *enrollment.Status
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*Enrollment, error)
	predicates              []predicate.Enrollment
}

var _ ent.Mutation = (*EnrollmentMutation)(nil)

// enrollmentOption allows management of the mutation configuration using functional options.
type enrollmentOption func(*EnrollmentMutation)

// newEnrollmentMutation creates new mutation for the Enrollment entity.
func newEnrollmentMutation(c config, op Op, opts ...enrollmentOption) *EnrollmentMutation {
	m := &EnrollmentMutation{
		config:        c,
		op:            op,
		typ:           TypeEnrollment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEnrollmentID sets the ID field of the mutation.
func withEnrollmentID(id uuid.UUID) enrollmentOption {
	return func(m *EnrollmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Enrollment
		)
		m.oldValue = func(ctx context.Context) (*Enrollment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Enrollment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEnrollment sets the old Enrollment of the mutation.
func withEnrollment(node *Enrollment) enrollmentOption {
	return func(m *EnrollmentMutation) {
		m.oldValue = func(context.Context) (*Enrollment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EnrollmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EnrollmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Enrollment entities.
func (m *EnrollmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EnrollmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EnrollmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Enrollment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *EnrollmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EnrollmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *EnrollmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EnrollmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EnrollmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *EnrollmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCenterID sets the "center_id" field.
func (m *EnrollmentMutation) SetCenterID(u uuid.UUID) {
	m.center_id = &u
}

// CenterID returns the value of the "center_id" field in the mutation.
func (m *EnrollmentMutation) CenterID() (r uuid.UUID, exists bool) {
	v := m.center_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCenterID returns the old "center_id" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldCenterID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCenterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCenterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCenterID: %w", err)
	}
	return oldValue.CenterID, nil
}

// ResetCenterID resets all changes to the "center_id" field.
func (m *EnrollmentMutation) ResetCenterID() {
	m.center_id = nil
}

// SetStudentID sets the "student_id" field.
func (m *EnrollmentMutation) SetStudentID(u uuid.UUID) {
	m.student_id = &u
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *EnrollmentMutation) StudentID() (r uuid.UUID, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldStudentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *EnrollmentMutation) ResetStudentID() {
	m.student_id = nil
}

// SetTherapistID sets the "therapist_id" field.
func (m *EnrollmentMutation) SetTherapistID(u uuid.UUID) {
	m.therapist_id = &u
}

// TherapistID returns the value of the "therapist_id" field in the mutation.
func (m *EnrollmentMutation) TherapistID() (r uuid.UUID, exists bool) {
	v := m.therapist_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTherapistID returns the old "therapist_id" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldTherapistID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTherapistID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTherapistID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTherapistID: %w", err)
	}
	return oldValue.TherapistID, nil
}

// ResetTherapistID resets all changes to the "therapist_id" field.
func (m *EnrollmentMutation) ResetTherapistID() {
	m.therapist_id = nil
}

// SetRoomID sets the "room_id" field.
func (m *EnrollmentMutation) SetRoomID(u uuid.UUID) {
	m.room_id = &u
}

// RoomID returns the value of the "room_id" field in the mutation.
func (m *EnrollmentMutation) RoomID() (r uuid.UUID, exists bool) {
	v := m.room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomID returns the old "room_id" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldRoomID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomID: %w", err)
	}
	return oldValue.RoomID, nil
}

// ClearRoomID clears the value of the "room_id" field.
func (m *EnrollmentMutation) ClearRoomID() {
	m.room_id = nil
	m.clearedFields[enrollment.FieldRoomID] = struct{}{}
}

// RoomIDCleared returns if the "room_id" field was cleared in this mutation.
func (m *EnrollmentMutation) RoomIDCleared() bool {
	_, ok := m.clearedFields[enrollment.FieldRoomID]
	return ok
}

// ResetRoomID resets all changes to the "room_id" field.
func (m *EnrollmentMutation) ResetRoomID() {
	m.room_id = nil
	delete(m.clearedFields, enrollment.FieldRoomID)
}

// SetGuardianPhoneEnc sets the "guardian_phone_enc" field.
func (m *EnrollmentMutation) SetGuardianPhoneEnc(s string) {
	m.guardian_phone_enc = &s
}

// GuardianPhoneEnc returns the value of the "guardian_phone_enc" field in the mutation.
func (m *EnrollmentMutation) GuardianPhoneEnc() (r string, exists bool) {
	v := m.guardian_phone_enc
	if v == nil {
		return
	}
	return *v, true
}

// OldGuardianPhoneEnc returns the old "guardian_phone_enc" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldGuardianPhoneEnc(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGuardianPhoneEnc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGuardianPhoneEnc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGuardianPhoneEnc: %w", err)
	}
	return oldValue.GuardianPhoneEnc, nil
}

// ClearGuardianPhoneEnc clears the value of the "guardian_phone_enc" field.
func (m *EnrollmentMutation) ClearGuardianPhoneEnc() {
	m.guardian_phone_enc = nil
	m.clearedFields[enrollment.FieldGuardianPhoneEnc] = struct{}{}
}

// GuardianPhoneEncCleared returns if the "guardian_phone_enc" field was cleared in this mutation.
func (m *EnrollmentMutation) GuardianPhoneEncCleared() bool {
	_, ok := m.clearedFields[enrollment.FieldGuardianPhoneEnc]
	return ok
}

// ResetGuardianPhoneEnc resets all changes to the "guardian_phone_enc" field.
func (m *EnrollmentMutation) ResetGuardianPhoneEnc() {
	m.guardian_phone_enc = nil
	delete(m.clearedFields, enrollment.FieldGuardianPhoneEnc)
}

// SetStartDate sets the "start_date" field.
func (m *EnrollmentMutation) SetStartDate(t time.Time) {
	m.start_date = &t
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *EnrollmentMutation) StartDate() (r time.Time, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldStartDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *EnrollmentMutation) ResetStartDate() {
	m.start_date = nil
}

// SetEndDate sets the "end_date" field.
func (m *EnrollmentMutation) SetEndDate(t time.Time) {
	m.end_date = &t
}

// EndDate returns the value of the "end_date" field in the mutation.
func (m *EnrollmentMutation) EndDate() (r time.Time, exists bool) {
	v := m.end_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEndDate returns the old "end_date" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldEndDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndDate: %w", err)
	}
	return oldValue.EndDate, nil
}

// ResetEndDate resets all changes to the "end_date" field.
func (m *EnrollmentMutation) ResetEndDate() {
	m.end_date = nil
}

// SetSessionCount sets the "session_count" field.
func (m *EnrollmentMutation) SetSessionCount(i int) {
	m.session_count = &i
	m.addsession_count = nil
}

// SessionCount returns the value of the "session_count" field in the mutation.
func (m *EnrollmentMutation) SessionCount() (r int, exists bool) {
	v := m.session_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionCount returns the old "session_count" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldSessionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionCount: %w", err)
	}
	return oldValue.SessionCount, nil
}

// AddSessionCount adds i to the "session_count" field.
func (m *EnrollmentMutation) AddSessionCount(i int) {
	if m.addsession_count != nil {
		*m.addsession_count += i
	} else {
		m.addsession_count = &i
	}
}

// AddedSessionCount returns the value that was added to the "session_count" field in this mutation.
func (m *EnrollmentMutation) AddedSessionCount() (r int, exists bool) {
	v := m.addsession_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionCount resets all changes to the "session_count" field.
func (m *EnrollmentMutation) ResetSessionCount() {
	m.session_count = nil
	m.addsession_count = nil
}

// SetSessionsPerWeek sets the "sessions_per_week" field.
func (m *EnrollmentMutation) SetSessionsPerWeek(i int) {
	m.sessions_per_week = &i
	m.addsessions_per_week = nil
}

// SessionsPerWeek returns the value of the "sessions_per_week" field in the mutation.
func (m *EnrollmentMutation) SessionsPerWeek() (r int, exists bool) {
	v := m.sessions_per_week
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionsPerWeek returns the old "sessions_per_week" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldSessionsPerWeek(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionsPerWeek is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionsPerWeek requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionsPerWeek: %w", err)
	}
	return oldValue.SessionsPerWeek, nil
}

// AddSessionsPerWeek adds i to the "sessions_per_week" field.
func (m *EnrollmentMutation) AddSessionsPerWeek(i int) {
	if m.addsessions_per_week != nil {
		*m.addsessions_per_week += i
	} else {
		m.addsessions_per_week = &i
	}
}

// AddedSessionsPerWeek returns the value that was added to the "sessions_per_week" field in this mutation.
func (m *EnrollmentMutation) AddedSessionsPerWeek() (r int, exists bool) {
	v := m.addsessions_per_week
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionsPerWeek resets all changes to the "sessions_per_week" field.
func (m *EnrollmentMutation) ResetSessionsPerWeek() {
	m.sessions_per_week = nil
	m.addsessions_per_week = nil
}

// SetSessionDurationMin sets the "session_duration_min" field.
func (m *EnrollmentMutation) SetSessionDurationMin(i int) {
	m.session_duration_min = &i
	m.addsession_duration_min = nil
}

// SessionDurationMin returns the value of the "session_duration_min" field in the mutation.
func (m *EnrollmentMutation) SessionDurationMin() (r int, exists bool) {
	v := m.session_duration_min
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionDurationMin returns the old "session_duration_min" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldSessionDurationMin(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionDurationMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionDurationMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionDurationMin: %w", err)
	}
	return oldValue.SessionDurationMin, nil
}

// AddSessionDurationMin adds i to the "session_duration_min" field.
func (m *EnrollmentMutation) AddSessionDurationMin(i int) {
	if m.addsession_duration_min != nil {
		*m.addsession_duration_min += i
	} else {
		m.addsession_duration_min = &i
	}
}

// AddedSessionDurationMin returns the value that was added to the "session_duration_min" field in this mutation.
func (m *EnrollmentMutation) AddedSessionDurationMin() (r int, exists bool) {
	v := m.addsession_duration_min
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionDurationMin resets all changes to the "session_duration_min" field.
func (m *EnrollmentMutation) ResetSessionDurationMin() {
	m.session_duration_min = nil
	m.addsession_duration_min = nil
}

// SetPreferredDays sets the "preferred_days" field.
func (m *EnrollmentMutation) SetPreferredDays(i []int) {
	m.preferred_days = &i
	m.appendpreferred_days = nil
}

// PreferredDays returns the value of the "preferred_days" field in the mutation.
func (m *EnrollmentMutation) PreferredDays() (r []int, exists bool) {
	v := m.preferred_days
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredDays returns the old "preferred_days" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldPreferredDays(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredDays: %w", err)
	}
	return oldValue.PreferredDays, nil
}

// AppendPreferredDays adds i to the "preferred_days" field.
func (m *EnrollmentMutation) AppendPreferredDays(i []int) {
	m.appendpreferred_days = append(m.appendpreferred_days, i...)
}

// AppendedPreferredDays returns the list of values that were appended to the "preferred_days" field in this mutation.
func (m *EnrollmentMutation) AppendedPreferredDays() ([]int, bool) {
	if len(m.appendpreferred_days) == 0 {
		return nil, false
	}
	return m.appendpreferred_days, true
}

// ClearPreferredDays clears the value of the "preferred_days" field.
func (m *EnrollmentMutation) ClearPreferredDays() {
	m.preferred_days = nil
	m.appendpreferred_days = nil
	m.clearedFields[enrollment.FieldPreferredDays] = struct{}{}
}

// PreferredDaysCleared returns if the "preferred_days" field was cleared in this mutation.
func (m *EnrollmentMutation) PreferredDaysCleared() bool {
	_, ok := m.clearedFields[enrollment.FieldPreferredDays]
	return ok
}

// ResetPreferredDays resets all changes to the "preferred_days" field.
func (m *EnrollmentMutation) ResetPreferredDays() {
	m.preferred_days = nil
	m.appendpreferred_days = nil
	delete(m.clearedFields, enrollment.FieldPreferredDays)
}

// SetAvoidDays sets the "avoid_days" field.
func (m *EnrollmentMutation) SetAvoidDays(i []int) {
	m.avoid_days = &i
	m.appendavoid_days = nil
}

// AvoidDays returns the value of the "avoid_days" field in the mutation.
func (m *EnrollmentMutation) AvoidDays() (r []int, exists bool) {
	v := m.avoid_days
	if v == nil {
		return
	}
	return *v, true
}

// OldAvoidDays returns the old "avoid_days" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldAvoidDays(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvoidDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvoidDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvoidDays: %w", err)
	}
	return oldValue.AvoidDays, nil
}

// AppendAvoidDays adds i to the "avoid_days" field.
func (m *EnrollmentMutation) AppendAvoidDays(i []int) {
	m.appendavoid_days = append(m.appendavoid_days, i...)
}

// AppendedAvoidDays returns the list of values that were appended to the "avoid_days" field in this mutation.
func (m *EnrollmentMutation) AppendedAvoidDays() ([]int, bool) {
	if len(m.appendavoid_days) == 0 {
		return nil, false
	}
	return m.appendavoid_days, true
}

// ClearAvoidDays clears the value of the "avoid_days" field.
func (m *EnrollmentMutation) ClearAvoidDays() {
	m.avoid_days = nil
	m.appendavoid_days = nil
	m.clearedFields[enrollment.FieldAvoidDays] = struct{}{}
}

// AvoidDaysCleared returns if the "avoid_days" field was cleared in this mutation.
func (m *EnrollmentMutation) AvoidDaysCleared() bool {
	_, ok := m.clearedFields[enrollment.FieldAvoidDays]
	return ok
}

// ResetAvoidDays resets all changes to the "avoid_days" field.
func (m *EnrollmentMutation) ResetAvoidDays() {
	m.avoid_days = nil
	m.appendavoid_days = nil
	delete(m.clearedFields, enrollment.FieldAvoidDays)
}

// SetPreferredWindows sets the "preferred_windows" field.
func (m *EnrollmentMutation) SetPreferredWindows(sw []schema.TimeWindow) {
	m.preferred_windows = &sw
	m.appendpreferred_windows = nil
}

// PreferredWindows returns the value of the "preferred_windows" field in the mutation.
func (m *EnrollmentMutation) PreferredWindows() (r []schema.TimeWindow, exists bool) {
	v := m.preferred_windows
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredWindows returns the old "preferred_windows" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldPreferredWindows(ctx context.Context) (v []schema.TimeWindow, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredWindows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredWindows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredWindows: %w", err)
	}
	return oldValue.PreferredWindows, nil
}

// AppendPreferredWindows adds sw to the "preferred_windows" field.
func (m *EnrollmentMutation) AppendPreferredWindows(sw []schema.TimeWindow) {
	m.appendpreferred_windows = append(m.appendpreferred_windows, sw...)
}

// AppendedPreferredWindows returns the list of values that were appended to the "preferred_windows" field in this mutation.
func (m *EnrollmentMutation) AppendedPreferredWindows() ([]schema.TimeWindow, bool) {
	if len(m.appendpreferred_windows) == 0 {
		return nil, false
	}
	return m.appendpreferred_windows, true
}

// ClearPreferredWindows clears the value of the "preferred_windows" field.
func (m *EnrollmentMutation) ClearPreferredWindows() {
	m.preferred_windows = nil
	m.appendpreferred_windows = nil
	m.clearedFields[enrollment.FieldPreferredWindows] = struct{}{}
}

// PreferredWindowsCleared returns if the "preferred_windows" field was cleared in this mutation.
func (m *EnrollmentMutation) PreferredWindowsCleared() bool {
	_, ok := m.clearedFields[enrollment.FieldPreferredWindows]
	return ok
}

// ResetPreferredWindows resets all changes to the "preferred_windows" field.
func (m *EnrollmentMutation) ResetPreferredWindows() {
	m.preferred_windows = nil
	m.appendpreferred_windows = nil
	delete(m.clearedFields, enrollment.FieldPreferredWindows)
}

// SetAvoidWindows sets the "avoid_windows" field.
func (m *EnrollmentMutation) SetAvoidWindows(sw []schema.TimeWindow) {
	m.avoid_windows = &sw
	m.appendavoid_windows = nil
}

// AvoidWindows returns the value of the "avoid_windows" field in the mutation.
func (m *EnrollmentMutation) AvoidWindows() (r []schema.TimeWindow, exists bool) {
	v := m.avoid_windows
	if v == nil {
		return
	}
	return *v, true
}

// OldAvoidWindows returns the old "avoid_windows" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldAvoidWindows(ctx context.Context) (v []schema.TimeWindow, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvoidWindows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvoidWindows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvoidWindows: %w", err)
	}
	return oldValue.AvoidWindows, nil
}

// AppendAvoidWindows adds sw to the "avoid_windows" field.
func (m *EnrollmentMutation) AppendAvoidWindows(sw []schema.TimeWindow) {
	m.appendavoid_windows = append(m.appendavoid_windows, sw...)
}

// AppendedAvoidWindows returns the list of values that were appended to the "avoid_windows" field in this mutation.
func (m *EnrollmentMutation) AppendedAvoidWindows() ([]schema.TimeWindow, bool) {
	if len(m.appendavoid_windows) == 0 {
		return nil, false
	}
	return m.appendavoid_windows, true
}

// ClearAvoidWindows clears the value of the "avoid_windows" field.
func (m *EnrollmentMutation) ClearAvoidWindows() {
	m.avoid_windows = nil
	m.appendavoid_windows = nil
	m.clearedFields[enrollment.FieldAvoidWindows] = struct{}{}
}

// AvoidWindowsCleared returns if the "avoid_windows" field was cleared in this mutation.
func (m *EnrollmentMutation) AvoidWindowsCleared() bool {
	_, ok := m.clearedFields[enrollment.FieldAvoidWindows]
	return ok
}

// ResetAvoidWindows resets all changes to the "avoid_windows" field.
func (m *EnrollmentMutation) ResetAvoidWindows() {
	m.avoid_windows = nil
	m.appendavoid_windows = nil
	delete(m.clearedFields, enrollment.FieldAvoidWindows)
}

// SetFlexibility sets the "flexibility" field.
func (m *EnrollmentMutation) SetFlexibility(f float64) {
	m.flexibility = &f
	m.addflexibility = nil
}

// Flexibility returns the value of the "flexibility" field in the mutation.
func (m *EnrollmentMutation) Flexibility() (r float64, exists bool) {
	v := m.flexibility
	if v == nil {
		return
	}
	return *v, true
}

// OldFlexibility returns the old "flexibility" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldFlexibility(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlexibility is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlexibility requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlexibility: %w", err)
	}
	return oldValue.Flexibility, nil
}

// AddFlexibility adds f to the "flexibility" field.
func (m *EnrollmentMutation) AddFlexibility(f float64) {
	if m.addflexibility != nil {
		*m.addflexibility += f
	} else {
		m.addflexibility = &f
	}
}

// AddedFlexibility returns the value that was added to the "flexibility" field in this mutation.
func (m *EnrollmentMutation) AddedFlexibility() (r float64, exists bool) {
	v := m.addflexibility
	if v == nil {
		return
	}
	return *v, true
}

// ResetFlexibility resets all changes to the "flexibility" field.
func (m *EnrollmentMutation) ResetFlexibility() {
	m.flexibility = nil
	m.addflexibility = nil
}

// SetStatus sets the "status" field.
func (m *EnrollmentMutation) SetStatus(e enrollment.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EnrollmentMutation) Status() (r enrollment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Enrollment entity.
// If the Enrollment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrollmentMutation) OldStatus(ctx context.Context) (v enrollment.Status, err error) {
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
func (m *EnrollmentMutation) ResetStatus() {
	m.status = nil
}

// Where appends a list predicates to the EnrollmentMutation builder.
func (m *EnrollmentMutation) Where(ps ...predicate.Enrollment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EnrollmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EnrollmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Enrollment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EnrollmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EnrollmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Enrollment).
func (m *EnrollmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EnrollmentMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.created_at != nil {
		fields = append(fields, enrollment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, enrollment.FieldUpdatedAt)
	}
	if m.center_id != nil {
		fields = append(fields, enrollment.FieldCenterID)
	}
	if m.student_id != nil {
		fields = append(fields, enrollment.FieldStudentID)
	}
	if m.therapist_id != nil {
		fields = append(fields, enrollment.FieldTherapistID)
	}
	if m.room_id != nil {
		fields = append(fields, enrollment.FieldRoomID)
	}
	if m.guardian_phone_enc != nil {
		fields = append(fields, enrollment.FieldGuardianPhoneEnc)
	}
	if m.start_date != nil {
		fields = append(fields, enrollment.FieldStartDate)
	}
	if m.end_date != nil {
		fields = append(fields, enrollment.FieldEndDate)
	}
	if m.session_count != nil {
		fields = append(fields, enrollment.FieldSessionCount)
	}
	if m.sessions_per_week != nil {
		fields = append(fields, enrollment.FieldSessionsPerWeek)
	}
	if m.session_duration_min != nil {
		fields = append(fields, enrollment.FieldSessionDurationMin)
	}
	if m.preferred_days != nil {
		fields = append(fields, enrollment.FieldPreferredDays)
	}
	if m.avoid_days != nil {
		fields = append(fields, enrollment.FieldAvoidDays)
	}
	if m.preferred_windows != nil {
		fields = append(fields, enrollment.FieldPreferredWindows)
	}
	if m.avoid_windows != nil {
		fields = append(fields, enrollment.FieldAvoidWindows)
	}
	if m.flexibility != nil {
		fields = append(fields, enrollment.FieldFlexibility)
	}
	if m.status != nil {
		fields = append(fields, enrollment.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EnrollmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case enrollment.FieldCreatedAt:
		return m.CreatedAt()
	case enrollment.FieldUpdatedAt:
		return m.UpdatedAt()
	case enrollment.FieldCenterID:
		return m.CenterID()
	case enrollment.FieldStudentID:
		return m.StudentID()
	case enrollment.FieldTherapistID:
		return m.TherapistID()
	case enrollment.FieldRoomID:
		return m.RoomID()
	case enrollment.FieldGuardianPhoneEnc:
		return m.GuardianPhoneEnc()
	case enrollment.FieldStartDate:
		return m.StartDate()
	case enrollment.FieldEndDate:
		return m.EndDate()
	case enrollment.FieldSessionCount:
		return m.SessionCount()
	case enrollment.FieldSessionsPerWeek:
		return m.SessionsPerWeek()
	case enrollment.FieldSessionDurationMin:
		return m.SessionDurationMin()
	case enrollment.FieldPreferredDays:
		return m.PreferredDays()
	case enrollment.FieldAvoidDays:
		return m.AvoidDays()
	case enrollment.FieldPreferredWindows:
		return m.PreferredWindows()
	case enrollment.FieldAvoidWindows:
		return m.AvoidWindows()
	case enrollment.FieldFlexibility:
		return m.Flexibility()
	case enrollment.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EnrollmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case enrollment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case enrollment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case enrollment.FieldCenterID:
		return m.OldCenterID(ctx)
	case enrollment.FieldStudentID:
		return m.OldStudentID(ctx)
	case enrollment.FieldTherapistID:
		return m.OldTherapistID(ctx)
	case enrollment.FieldRoomID:
		return m.OldRoomID(ctx)
	case enrollment.FieldGuardianPhoneEnc:
		return m.OldGuardianPhoneEnc(ctx)
	case enrollment.FieldStartDate:
		return m.OldStartDate(ctx)
	case enrollment.FieldEndDate:
		return m.OldEndDate(ctx)
	case enrollment.FieldSessionCount:
		return m.OldSessionCount(ctx)
	case enrollment.FieldSessionsPerWeek:
		return m.OldSessionsPerWeek(ctx)
	case enrollment.FieldSessionDurationMin:
		return m.OldSessionDurationMin(ctx)
	case enrollment.FieldPreferredDays:
		return m.OldPreferredDays(ctx)
	case enrollment.FieldAvoidDays:
		return m.OldAvoidDays(ctx)
	case enrollment.FieldPreferredWindows:
		return m.OldPreferredWindows(ctx)
	case enrollment.FieldAvoidWindows:
		return m.OldAvoidWindows(ctx)
	case enrollment.FieldFlexibility:
		return m.OldFlexibility(ctx)
	case enrollment.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown Enrollment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnrollmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case enrollment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case enrollment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case enrollment.FieldCenterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCenterID(v)
		return nil
	case enrollment.FieldStudentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case enrollment.FieldTherapistID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTherapistID(v)
		return nil
	case enrollment.FieldRoomID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomID(v)
		return nil
	case enrollment.FieldGuardianPhoneEnc:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGuardianPhoneEnc(v)
		return nil
	case enrollment.FieldStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case enrollment.FieldEndDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndDate(v)
		return nil
	case enrollment.FieldSessionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionCount(v)
		return nil
	case enrollment.FieldSessionsPerWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionsPerWeek(v)
		return nil
	case enrollment.FieldSessionDurationMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionDurationMin(v)
		return nil
	case enrollment.FieldPreferredDays:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredDays(v)
		return nil
	case enrollment.FieldAvoidDays:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvoidDays(v)
		return nil
	case enrollment.FieldPreferredWindows:
		v, ok := value.([]schema.TimeWindow)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredWindows(v)
		return nil
	case enrollment.FieldAvoidWindows:
		v, ok := value.([]schema.TimeWindow)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvoidWindows(v)
		return nil
	case enrollment.FieldFlexibility:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlexibility(v)
		return nil
	case enrollment.FieldStatus:
		v, ok := value.(enrollment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown Enrollment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EnrollmentMutation) AddedFields() []string {
	var fields []string
	if m.addsession_count != nil {
		fields = append(fields, enrollment.FieldSessionCount)
	}
	if m.addsessions_per_week != nil {
		fields = append(fields, enrollment.FieldSessionsPerWeek)
	}
	if m.addsession_duration_min != nil {
		fields = append(fields, enrollment.FieldSessionDurationMin)
	}
	if m.addflexibility != nil {
		fields = append(fields, enrollment.FieldFlexibility)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EnrollmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case enrollment.FieldSessionCount:
		return m.AddedSessionCount()
	case enrollment.FieldSessionsPerWeek:
		return m.AddedSessionsPerWeek()
	case enrollment.FieldSessionDurationMin:
		return m.AddedSessionDurationMin()
	case enrollment.FieldFlexibility:
		return m.AddedFlexibility()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnrollmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case enrollment.FieldSessionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionCount(v)
		return nil
	case enrollment.FieldSessionsPerWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionsPerWeek(v)
		return nil
	case enrollment.FieldSessionDurationMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionDurationMin(v)
		return nil
	case enrollment.FieldFlexibility:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFlexibility(v)
		return nil
	}
	return fmt.Errorf("unknown Enrollment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EnrollmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(enrollment.FieldRoomID) {
		fields = append(fields, enrollment.FieldRoomID)
	}
	if m.FieldCleared(enrollment.FieldGuardianPhoneEnc) {
		fields = append(fields, enrollment.FieldGuardianPhoneEnc)
	}
	if m.FieldCleared(enrollment.FieldPreferredDays) {
		fields = append(fields, enrollment.FieldPreferredDays)
	}
	if m.FieldCleared(enrollment.FieldAvoidDays) {
		fields = append(fields, enrollment.FieldAvoidDays)
	}
	if m.FieldCleared(enrollment.FieldPreferredWindows) {
		fields = append(fields, enrollment.FieldPreferredWindows)
	}
	if m.FieldCleared(enrollment.FieldAvoidWindows) {
		fields = append(fields, enrollment.FieldAvoidWindows)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EnrollmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EnrollmentMutation) ClearField(name string) error {
	switch name {
	case enrollment.FieldRoomID:
		m.ClearRoomID()
		return nil
	case enrollment.FieldGuardianPhoneEnc:
		m.ClearGuardianPhoneEnc()
		return nil
	case enrollment.FieldPreferredDays:
		m.ClearPreferredDays()
		return nil
	case enrollment.FieldAvoidDays:
		m.ClearAvoidDays()
		return nil
	case enrollment.FieldPreferredWindows:
		m.ClearPreferredWindows()
		return nil
	case enrollment.FieldAvoidWindows:
		m.ClearAvoidWindows()
		return nil
	}
	return fmt.Errorf("unknown Enrollment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EnrollmentMutation) ResetField(name string) error {
	switch name {
	case enrollment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case enrollment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case enrollment.FieldCenterID:
		m.ResetCenterID()
		return nil
	case enrollment.FieldStudentID:
		m.ResetStudentID()
		return nil
	case enrollment.FieldTherapistID:
		m.ResetTherapistID()
		return nil
	case enrollment.FieldRoomID:
		m.ResetRoomID()
		return nil
	case enrollment.FieldGuardianPhoneEnc:
		m.ResetGuardianPhoneEnc()
		return nil
	case enrollment.FieldStartDate:
		m.ResetStartDate()
		return nil
	case enrollment.FieldEndDate:
		m.ResetEndDate()
		return nil
	case enrollment.FieldSessionCount:
		m.ResetSessionCount()
		return nil
	case enrollment.FieldSessionsPerWeek:
		m.ResetSessionsPerWeek()
		return nil
	case enrollment.FieldSessionDurationMin:
		m.ResetSessionDurationMin()
		return nil
	case enrollment.FieldPreferredDays:
		m.ResetPreferredDays()
		return nil
	case enrollment.FieldAvoidDays:
		m.ResetAvoidDays()
		return nil
	case enrollment.FieldPreferredWindows:
		m.ResetPreferredWindows()
		return nil
	case enrollment.FieldAvoidWindows:
		m.ResetAvoidWindows()
		return nil
	case enrollment.FieldFlexibility:
		m.ResetFlexibility()
		return nil
	case enrollment.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown Enrollment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EnrollmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EnrollmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EnrollmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EnrollmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EnrollmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EnrollmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EnrollmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Enrollment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EnrollmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Enrollment edge %s", name)
}

// FreezeWindowMutation represents an operation that mutates the FreezeWindow nodes in the graph.
type FreezeWindowMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	center_id     *uuid.UUID
	enrollment_id *uuid.UUID
	starts_on     *time.Time
	ends_on       *time.Time
	reason        *string
	status        *freezewindow.Status
	batch_id      *uuid.UUID
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*FreezeWindow, error)
	predicates    []predicate.FreezeWindow
}

var _ ent.Mutation = (*FreezeWindowMutation)(nil)

// freezewindowOption allows management of the mutation configuration using functional options.
type freezewindowOption func(*FreezeWindowMutation)

// newFreezeWindowMutation creates new mutation for the FreezeWindow entity.
func newFreezeWindowMutation(c config, op Op, opts ...freezewindowOption) *FreezeWindowMutation {
	m := &FreezeWindowMutation{
		config:        c,
		op:            op,
		typ:           TypeFreezeWindow,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFreezeWindowID sets the ID field of the mutation.
func withFreezeWindowID(id uuid.UUID) freezewindowOption {
	return func(m *FreezeWindowMutation) {
		var (
			err   error
			once  sync.Once
			value *FreezeWindow
		)
		m.oldValue = func(ctx context.Context) (*FreezeWindow, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FreezeWindow.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFreezeWindow sets the old FreezeWindow of the mutation.
func withFreezeWindow(node *FreezeWindow) freezewindowOption {
	return func(m *FreezeWindowMutation) {
		m.oldValue = func(context.Context) (*FreezeWindow, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FreezeWindowMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FreezeWindowMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FreezeWindow entities.
func (m *FreezeWindowMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FreezeWindowMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FreezeWindowMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FreezeWindow.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *FreezeWindowMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FreezeWindowMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FreezeWindow entity.
// If the FreezeWindow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FreezeWindowMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *FreezeWindowMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FreezeWindowMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FreezeWindowMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FreezeWindow entity.
// If the FreezeWindow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FreezeWindowMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *FreezeWindowMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCenterID sets the "center_id" field.
func (m *FreezeWindowMutation) SetCenterID(u uuid.UUID) {
	m.center_id = &u
}

// CenterID returns the value of the "center_id" field in the mutation.
func (m *FreezeWindowMutation) CenterID() (r uuid.UUID, exists bool) {
	v := m.center_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCenterID returns the old "center_id" field's value of the FreezeWindow entity.
// If the FreezeWindow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FreezeWindowMutation) OldCenterID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCenterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCenterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCenterID: %w", err)
	}
	return oldValue.CenterID, nil
}

// ResetCenterID resets all changes to the "center_id" field.
func (m *FreezeWindowMutation) ResetCenterID() {
	m.center_id = nil
}

// SetEnrollmentID sets the "enrollment_id" field.
func (m *FreezeWindowMutation) SetEnrollmentID(u uuid.UUID) {
	m.enrollment_id = &u
}

// EnrollmentID returns the value of the "enrollment_id" field in the mutation.
func (m *FreezeWindowMutation) EnrollmentID() (r uuid.UUID, exists bool) {
	v := m.enrollment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrollmentID returns the old "enrollment_id" field's value of the FreezeWindow entity.
// If the FreezeWindow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FreezeWindowMutation) OldEnrollmentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrollmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrollmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrollmentID: %w", err)
	}
	return oldValue.EnrollmentID, nil
}

// ResetEnrollmentID resets all changes to the "enrollment_id" field.
func (m *FreezeWindowMutation) ResetEnrollmentID() {
	m.enrollment_id = nil
}

// SetStartsOn sets the "starts_on" field.
func (m *FreezeWindowMutation) SetStartsOn(t time.Time) {
	m.starts_on = &t
}

// StartsOn returns the value of the "starts_on" field in the mutation.
func (m *FreezeWindowMutation) StartsOn() (r time.Time, exists bool) {
	v := m.starts_on
	if v == nil {
		return
	}
	return *v, true
}

// OldStartsOn returns the old "starts_on" field's value of the FreezeWindow entity.
// If the FreezeWindow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FreezeWindowMutation) OldStartsOn(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartsOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartsOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartsOn: %w", err)
	}
	return oldValue.StartsOn, nil
}

// ResetStartsOn resets all changes to the "starts_on" field.
func (m *FreezeWindowMutation) ResetStartsOn() {
	m.starts_on = nil
}

// SetEndsOn sets the "ends_on" field.
func (m *FreezeWindowMutation) SetEndsOn(t time.Time) {
	m.ends_on = &t
}

// EndsOn returns the value of the "ends_on" field in the mutation.
func (m *FreezeWindowMutation) EndsOn() (r time.Time, exists bool) {
	v := m.ends_on
	if v == nil {
		return
	}
	return *v, true
}

// OldEndsOn returns the old "ends_on" field's value of the FreezeWindow entity.
// If the FreezeWindow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FreezeWindowMutation) OldEndsOn(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndsOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndsOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndsOn: %w", err)
	}
	return oldValue.EndsOn, nil
}

// ResetEndsOn resets all changes to the "ends_on" field.
func (m *FreezeWindowMutation) ResetEndsOn() {
	m.ends_on = nil
}

// SetReason sets the "reason" field.
func (m *FreezeWindowMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *FreezeWindowMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the FreezeWindow entity.
// If the FreezeWindow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FreezeWindowMutation) OldReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *FreezeWindowMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[freezewindow.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *FreezeWindowMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[freezewindow.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *FreezeWindowMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, freezewindow.FieldReason)
}

// SetStatus sets the "status" field.
func (m *FreezeWindowMutation) SetStatus(f freezewindow.Status) {
	m.status = &f
}

// Status returns the value of the "status" field in the mutation.
func (m *FreezeWindowMutation) Status() (r freezewindow.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the FreezeWindow entity.
// If the FreezeWindow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FreezeWindowMutation) OldStatus(ctx context.Context) (v freezewindow.Status, err error) {
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
func (m *FreezeWindowMutation) ResetStatus() {
	m.status = nil
}

// SetBatchID sets the "batch_id" field.
func (m *FreezeWindowMutation) SetBatchID(u uuid.UUID) {
	m.batch_id = &u
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *FreezeWindowMutation) BatchID() (r uuid.UUID, exists bool) {
	v := m.batch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the FreezeWindow entity.
// If the FreezeWindow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FreezeWindowMutation) OldBatchID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ClearBatchID clears the value of the "batch_id" field.
func (m *FreezeWindowMutation) ClearBatchID() {
	m.batch_id = nil
	m.clearedFields[freezewindow.FieldBatchID] = struct{}{}
}

// BatchIDCleared returns if the "batch_id" field was cleared in this mutation.
func (m *FreezeWindowMutation) BatchIDCleared() bool {
	_, ok := m.clearedFields[freezewindow.FieldBatchID]
	return ok
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *FreezeWindowMutation) ResetBatchID() {
	m.batch_id = nil
	delete(m.clearedFields, freezewindow.FieldBatchID)
}

// Where appends a list predicates to the FreezeWindowMutation builder.
func (m *FreezeWindowMutation) Where(ps ...predicate.FreezeWindow) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FreezeWindowMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FreezeWindowMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FreezeWindow, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FreezeWindowMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FreezeWindowMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FreezeWindow).
func (m *FreezeWindowMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FreezeWindowMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, freezewindow.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, freezewindow.FieldUpdatedAt)
	}
	if m.center_id != nil {
		fields = append(fields, freezewindow.FieldCenterID)
	}
	if m.enrollment_id != nil {
		fields = append(fields, freezewindow.FieldEnrollmentID)
	}
	if m.starts_on != nil {
		fields = append(fields, freezewindow.FieldStartsOn)
	}
	if m.ends_on != nil {
		fields = append(fields, freezewindow.FieldEndsOn)
	}
	if m.reason != nil {
		fields = append(fields, freezewindow.FieldReason)
	}
	if m.status != nil {
		fields = append(fields, freezewindow.FieldStatus)
	}
	if m.batch_id != nil {
		fields = append(fields, freezewindow.FieldBatchID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FreezeWindowMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case freezewindow.FieldCreatedAt:
		return m.CreatedAt()
	case freezewindow.FieldUpdatedAt:
		return m.UpdatedAt()
	case freezewindow.FieldCenterID:
		return m.CenterID()
	case freezewindow.FieldEnrollmentID:
		return m.EnrollmentID()
	case freezewindow.FieldStartsOn:
		return m.StartsOn()
	case freezewindow.FieldEndsOn:
		return m.EndsOn()
	case freezewindow.FieldReason:
		return m.Reason()
	case freezewindow.FieldStatus:
		return m.Status()
	case freezewindow.FieldBatchID:
		return m.BatchID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FreezeWindowMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case freezewindow.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case freezewindow.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case freezewindow.FieldCenterID:
		return m.OldCenterID(ctx)
	case freezewindow.FieldEnrollmentID:
		return m.OldEnrollmentID(ctx)
	case freezewindow.FieldStartsOn:
		return m.OldStartsOn(ctx)
	case freezewindow.FieldEndsOn:
		return m.OldEndsOn(ctx)
	case freezewindow.FieldReason:
		return m.OldReason(ctx)
	case freezewindow.FieldStatus:
		return m.OldStatus(ctx)
	case freezewindow.FieldBatchID:
		return m.OldBatchID(ctx)
	}
	return nil, fmt.Errorf("unknown FreezeWindow field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FreezeWindowMutation) SetField(name string, value ent.Value) error {
	switch name {
	case freezewindow.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case freezewindow.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case freezewindow.FieldCenterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCenterID(v)
		return nil
	case freezewindow.FieldEnrollmentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrollmentID(v)
		return nil
	case freezewindow.FieldStartsOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartsOn(v)
		return nil
	case freezewindow.FieldEndsOn:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndsOn(v)
		return nil
	case freezewindow.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case freezewindow.FieldStatus:
		v, ok := value.(freezewindow.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case freezewindow.FieldBatchID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	}
	return fmt.Errorf("unknown FreezeWindow field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FreezeWindowMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FreezeWindowMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FreezeWindowMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FreezeWindow numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FreezeWindowMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(freezewindow.FieldReason) {
		fields = append(fields, freezewindow.FieldReason)
	}
	if m.FieldCleared(freezewindow.FieldBatchID) {
		fields = append(fields, freezewindow.FieldBatchID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FreezeWindowMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FreezeWindowMutation) ClearField(name string) error {
	switch name {
	case freezewindow.FieldReason:
		m.ClearReason()
		return nil
	case freezewindow.FieldBatchID:
		m.ClearBatchID()
		return nil
	}
	return fmt.Errorf("unknown FreezeWindow nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FreezeWindowMutation) ResetField(name string) error {
	switch name {
	case freezewindow.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case freezewindow.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case freezewindow.FieldCenterID:
		m.ResetCenterID()
		return nil
	case freezewindow.FieldEnrollmentID:
		m.ResetEnrollmentID()
		return nil
	case freezewindow.FieldStartsOn:
		m.ResetStartsOn()
		return nil
	case freezewindow.FieldEndsOn:
		m.ResetEndsOn()
		return nil
	case freezewindow.FieldReason:
		m.ResetReason()
		return nil
	case freezewindow.FieldStatus:
		m.ResetStatus()
		return nil
	case freezewindow.FieldBatchID:
		m.ResetBatchID()
		return nil
	}
	return fmt.Errorf("unknown FreezeWindow field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FreezeWindowMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FreezeWindowMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FreezeWindowMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FreezeWindowMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FreezeWindowMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FreezeWindowMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FreezeWindowMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FreezeWindow unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FreezeWindowMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FreezeWindow edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	center_id     *uuid.UUID
	recipient_id  *uuid.UUID
	_type         *string
	title         *string
	data          *map[string]interface{}
	is_read       *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Notification, error)
	predicates    []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id uuid.UUID) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCenterID sets the "center_id" field.
func (m *NotificationMutation) SetCenterID(u uuid.UUID) {
	m.center_id = &u
}

// CenterID returns the value of the "center_id" field in the mutation.
func (m *NotificationMutation) CenterID() (r uuid.UUID, exists bool) {
	v := m.center_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCenterID returns the old "center_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCenterID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCenterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCenterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCenterID: %w", err)
	}
	return oldValue.CenterID, nil
}

// ResetCenterID resets all changes to the "center_id" field.
func (m *NotificationMutation) ResetCenterID() {
	m.center_id = nil
}

// SetRecipientID sets the "recipient_id" field.
func (m *NotificationMutation) SetRecipientID(u uuid.UUID) {
	m.recipient_id = &u
}

// RecipientID returns the value of the "recipient_id" field in the mutation.
func (m *NotificationMutation) RecipientID() (r uuid.UUID, exists bool) {
	v := m.recipient_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipientID returns the old "recipient_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRecipientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipientID: %w", err)
	}
	return oldValue.RecipientID, nil
}

// ResetRecipientID resets all changes to the "recipient_id" field.
func (m *NotificationMutation) ResetRecipientID() {
	m.recipient_id = nil
}

// SetType sets the "type" field.
func (m *NotificationMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *NotificationMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *NotificationMutation) ResetType() {
	m._type = nil
}

// SetTitle sets the "title" field.
func (m *NotificationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *NotificationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *NotificationMutation) ResetTitle() {
	m.title = nil
}

// SetData sets the "data" field.
func (m *NotificationMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *NotificationMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *NotificationMutation) ClearData() {
	m.data = nil
	m.clearedFields[notification.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *NotificationMutation) DataCleared() bool {
	_, ok := m.clearedFields[notification.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *NotificationMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, notification.FieldData)
}

// SetIsRead sets the "is_read" field.
func (m *NotificationMutation) SetIsRead(b bool) {
	m.is_read = &b
}

// IsRead returns the value of the "is_read" field in the mutation.
func (m *NotificationMutation) IsRead() (r bool, exists bool) {
	v := m.is_read
	if v == nil {
		return
	}
	return *v, true
}

// OldIsRead returns the old "is_read" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldIsRead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsRead: %w", err)
	}
	return oldValue.IsRead, nil
}

// ResetIsRead resets all changes to the "is_read" field.
func (m *NotificationMutation) ResetIsRead() {
	m.is_read = nil
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	if m.center_id != nil {
		fields = append(fields, notification.FieldCenterID)
	}
	if m.recipient_id != nil {
		fields = append(fields, notification.FieldRecipientID)
	}
	if m._type != nil {
		fields = append(fields, notification.FieldType)
	}
	if m.title != nil {
		fields = append(fields, notification.FieldTitle)
	}
	if m.data != nil {
		fields = append(fields, notification.FieldData)
	}
	if m.is_read != nil {
		fields = append(fields, notification.FieldIsRead)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	case notification.FieldCenterID:
		return m.CenterID()
	case notification.FieldRecipientID:
		return m.RecipientID()
	case notification.FieldType:
		return m.GetType()
	case notification.FieldTitle:
		return m.Title()
	case notification.FieldData:
		return m.Data()
	case notification.FieldIsRead:
		return m.IsRead()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notification.FieldCenterID:
		return m.OldCenterID(ctx)
	case notification.FieldRecipientID:
		return m.OldRecipientID(ctx)
	case notification.FieldType:
		return m.OldType(ctx)
	case notification.FieldTitle:
		return m.OldTitle(ctx)
	case notification.FieldData:
		return m.OldData(ctx)
	case notification.FieldIsRead:
		return m.OldIsRead(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notification.FieldCenterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCenterID(v)
		return nil
	case notification.FieldRecipientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipientID(v)
		return nil
	case notification.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case notification.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case notification.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case notification.FieldIsRead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsRead(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notification.FieldData) {
		fields = append(fields, notification.FieldData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	switch name {
	case notification.FieldData:
		m.ClearData()
		return nil
	}
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notification.FieldCenterID:
		m.ResetCenterID()
		return nil
	case notification.FieldRecipientID:
		m.ResetRecipientID()
		return nil
	case notification.FieldType:
		m.ResetType()
		return nil
	case notification.FieldTitle:
		m.ResetTitle()
		return nil
	case notification.FieldData:
		m.ResetData()
		return nil
	case notification.FieldIsRead:
		m.ResetIsRead()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Notification edge %s", name)
}

// RescheduleBatchMutation represents an operation that mutates the RescheduleBatch nodes in the graph.
type RescheduleBatchMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	created_at              *time.Time
	updated_at              *time.Time
	request_id              *uuid.UUID
	center_id               *uuid.UUID
	enrollment_id           *uuid.UUID
	trigger                 *reschedulebatch.Trigger
	status                  *reschedulebatch.Status
	previous_sessions       *[]schema.SessionSnapshot
	appendprevious_sessions []schema.SessionSnapshot
	conflicts               *[]schema.ConflictRecord
	appendconflicts         []schema.ConflictRecord
	blockers                *[]schema.BlockerRecord
	appendblockers          []schema.BlockerRecord
	sessions_rescheduled    *int
	addsessions_rescheduled *int
	optimization_score      *float64
	addoptimization_score   *float64
	execution_time_ms       *int64
	addexecution_time_ms    *int64
	new_end_date            *time.Time
	applied_at              *time.Time
	rolled_back_at          *time.Time
	failure_reason          *string
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*RescheduleBatch, error)
	predicates              []predicate.RescheduleBatch
}

var _ ent.Mutation = (*RescheduleBatchMutation)(nil)

// reschedulebatchOption allows management of the mutation configuration using functional options.
type reschedulebatchOption func(*RescheduleBatchMutation)

// newRescheduleBatchMutation creates new mutation for the RescheduleBatch entity.
func newRescheduleBatchMutation(c config, op Op, opts ...reschedulebatchOption) *RescheduleBatchMutation {
	m := &RescheduleBatchMutation{
		config:        c,
		op:            op,
		typ:           TypeRescheduleBatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRescheduleBatchID sets the ID field of the mutation.
func withRescheduleBatchID(id uuid.UUID) reschedulebatchOption {
	return func(m *RescheduleBatchMutation) {
		var (
			err   error
			once  sync.Once
			value *RescheduleBatch
		)
		m.oldValue = func(ctx context.Context) (*RescheduleBatch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RescheduleBatch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRescheduleBatch sets the old RescheduleBatch of the mutation.
func withRescheduleBatch(node *RescheduleBatch) reschedulebatchOption {
	return func(m *RescheduleBatchMutation) {
		m.oldValue = func(context.Context) (*RescheduleBatch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RescheduleBatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RescheduleBatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RescheduleBatch entities.
func (m *RescheduleBatchMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RescheduleBatchMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RescheduleBatchMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RescheduleBatch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RescheduleBatchMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RescheduleBatchMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RescheduleBatch entity.
// If the RescheduleBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleBatchMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RescheduleBatchMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RescheduleBatchMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RescheduleBatchMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RescheduleBatch entity.
// If the RescheduleBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleBatchMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RescheduleBatchMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetRequestID sets the "request_id" field.
func (m *RescheduleBatchMutation) SetRequestID(u uuid.UUID) {
	m.request_id = &u
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *RescheduleBatchMutation) RequestID() (r uuid.UUID, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the RescheduleBatch entity.
// If the RescheduleBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleBatchMutation) OldRequestID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *RescheduleBatchMutation) ResetRequestID() {
	m.request_id = nil
}

// SetCenterID sets the "center_id" field.
func (m *RescheduleBatchMutation) SetCenterID(u uuid.UUID) {
	m.center_id = &u
}

// CenterID returns the value of the "center_id" field in the mutation.
func (m *RescheduleBatchMutation) CenterID() (r uuid.UUID, exists bool) {
	v := m.center_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCenterID returns the old "center_id" field's value of the RescheduleBatch entity.
// If the RescheduleBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleBatchMutation) OldCenterID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCenterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCenterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCenterID: %w", err)
	}
	return oldValue.CenterID, nil
}

// ResetCenterID resets all changes to the "center_id" field.
func (m *RescheduleBatchMutation) ResetCenterID() {
	m.center_id = nil
}

// SetEnrollmentID sets the "enrollment_id" field.
func (m *RescheduleBatchMutation) SetEnrollmentID(u uuid.UUID) {
	m.enrollment_id = &u
}

// EnrollmentID returns the value of the "enrollment_id" field in the mutation.
func (m *RescheduleBatchMutation) EnrollmentID() (r uuid.UUID, exists bool) {
	v := m.enrollment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrollmentID returns the old "enrollment_id" field's value of the RescheduleBatch entity.
// If the RescheduleBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleBatchMutation) OldEnrollmentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrollmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrollmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrollmentID: %w", err)
	}
	return oldValue.EnrollmentID, nil
}

// ResetEnrollmentID resets all changes to the "enrollment_id" field.
func (m *RescheduleBatchMutation) ResetEnrollmentID() {
	m.enrollment_id = nil
}

// SetTrigger sets the "trigger" field.
func (m *RescheduleBatchMutation) SetTrigger(r reschedulebatch.Trigger) {
	m.trigger = &r
}

// Trigger returns the value of the "trigger" field in the mutation.
func (m *RescheduleBatchMutation) Trigger() (r reschedulebatch.Trigger, exists bool) {
	v := m.trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldTrigger returns the old "trigger" field's value of the RescheduleBatch entity.
// If the RescheduleBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleBatchMutation) OldTrigger(ctx context.Context) (v reschedulebatch.Trigger, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrigger: %w", err)
	}
	return oldValue.Trigger, nil
}

// ResetTrigger resets all changes to the "trigger" field.
func (m *RescheduleBatchMutation) ResetTrigger() {
	m.trigger = nil
}

// SetStatus sets the "status" field.
func (m *RescheduleBatchMutation) SetStatus(r reschedulebatch.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RescheduleBatchMutation) Status() (r reschedulebatch.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RescheduleBatch entity.
// If the RescheduleBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleBatchMutation) OldStatus(ctx context.Context) (v reschedulebatch.Status, err error) {
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
func (m *RescheduleBatchMutation) ResetStatus() {
	m.status = nil
}

// SetPreviousSessions sets the "previous_sessions" field.
func (m *RescheduleBatchMutation) SetPreviousSessions(ss []schema.SessionSnapshot) {
	m.previous_sessions = &ss
	m.appendprevious_sessions = nil
}

// PreviousSessions returns the value of the "previous_sessions" field in the mutation.
func (m *RescheduleBatchMutation) PreviousSessions() (r []schema.SessionSnapshot, exists bool) {
	v := m.previous_sessions
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviousSessions returns the old "previous_sessions" field's value of the RescheduleBatch entity.
// If the RescheduleBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleBatchMutation) OldPreviousSessions(ctx context.Context) (v []schema.SessionSnapshot, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviousSessions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviousSessions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviousSessions: %w", err)
	}
	return oldValue.PreviousSessions, nil
}

// AppendPreviousSessions adds ss to the "previous_sessions" field.
func (m *RescheduleBatchMutation) AppendPreviousSessions(ss []schema.SessionSnapshot) {
	m.appendprevious_sessions = append(m.appendprevious_sessions, ss...)
}

// AppendedPreviousSessions returns the list of values that were appended to the "previous_sessions" field in this mutation.
func (m *RescheduleBatchMutation) AppendedPreviousSessions() ([]schema.SessionSnapshot, bool) {
	if len(m.appendprevious_sessions) == 0 {
		return nil, false
	}
	return m.appendprevious_sessions, true
}

// ClearPreviousSessions clears the value of the "previous_sessions" field.
func (m *RescheduleBatchMutation) ClearPreviousSessions() {
	m.previous_sessions = nil
	m.appendprevious_sessions = nil
	m.clearedFields[reschedulebatch.FieldPreviousSessions] = struct{}{}
}

// PreviousSessionsCleared returns if the "previous_sessions" field was cleared in this mutation.
func (m *RescheduleBatchMutation) PreviousSessionsCleared() bool {
	_, ok := m.clearedFields[reschedulebatch.FieldPreviousSessions]
	return ok
}

// ResetPreviousSessions resets all changes to the "previous_sessions" field.
func (m *RescheduleBatchMutation) ResetPreviousSessions() {
	m.previous_sessions = nil
	m.appendprevious_sessions = nil
	delete(m.clearedFields, reschedulebatch.FieldPreviousSessions)
}

// SetConflicts sets the "conflicts" field.
func (m *RescheduleBatchMutation) SetConflicts(sr []schema.ConflictRecord) {
	m.conflicts = &sr
	m.appendconflicts = nil
}

// Conflicts returns the value of the "conflicts" field in the mutation.
func (m *RescheduleBatchMutation) Conflicts() (r []schema.ConflictRecord, exists bool) {
	v := m.conflicts
	if v == nil {
		return
	}
	return *v, true
}

// OldConflicts returns the old "conflicts" field's value of the RescheduleBatch entity.
// If the RescheduleBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleBatchMutation) OldConflicts(ctx context.Context) (v []schema.ConflictRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConflicts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConflicts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConflicts: %w", err)
	}
	return oldValue.Conflicts, nil
}

// AppendConflicts adds sr to the "conflicts" field.
func (m *RescheduleBatchMutation) AppendConflicts(sr []schema.ConflictRecord) {
	m.appendconflicts = append(m.appendconflicts, sr...)
}

// AppendedConflicts returns the list of values that were appended to the "conflicts" field in this mutation.
func (m *RescheduleBatchMutation) AppendedConflicts() ([]schema.ConflictRecord, bool) {
	if len(m.appendconflicts) == 0 {
		return nil, false
	}
	return m.appendconflicts, true
}

// ClearConflicts clears the value of the "conflicts" field.
func (m *RescheduleBatchMutation) ClearConflicts() {
	m.conflicts = nil
	m.appendconflicts = nil
	m.clearedFields[reschedulebatch.FieldConflicts] = struct{}{}
}

// ConflictsCleared returns if the "conflicts" field was cleared in this mutation.
func (m *RescheduleBatchMutation) ConflictsCleared() bool {
	_, ok := m.clearedFields[reschedulebatch.FieldConflicts]
	return ok
}

// ResetConflicts resets all changes to the "conflicts" field.
func (m *RescheduleBatchMutation) ResetConflicts() {
	m.conflicts = nil
	m.appendconflicts = nil
	delete(m.clearedFields, reschedulebatch.FieldConflicts)
}

// SetBlockers sets the "blockers" field.
func (m *RescheduleBatchMutation) SetBlockers(sr []schema.BlockerRecord) {
	m.blockers = &sr
	m.appendblockers = nil
}

// Blockers returns the value of the "blockers" field in the mutation.
func (m *RescheduleBatchMutation) Blockers() (r []schema.BlockerRecord, exists bool) {
	v := m.blockers
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockers returns the old "blockers" field's value of the RescheduleBatch entity.
// If the RescheduleBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleBatchMutation) OldBlockers(ctx context.Context) (v []schema.BlockerRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockers: %w", err)
	}
	return oldValue.Blockers, nil
}

// AppendBlockers adds sr to the "blockers" field.
func (m *RescheduleBatchMutation) AppendBlockers(sr []schema.BlockerRecord) {
	m.appendblockers = append(m.appendblockers, sr...)
}

// AppendedBlockers returns the list of values that were appended to the "blockers" field in this mutation.
func (m *RescheduleBatchMutation) AppendedBlockers() ([]schema.BlockerRecord, bool) {
	if len(m.appendblockers) == 0 {
		return nil, false
	}
	return m.appendblockers, true
}

// ClearBlockers clears the value of the "blockers" field.
func (m *RescheduleBatchMutation) ClearBlockers() {
	m.blockers = nil
	m.appendblockers = nil
	m.clearedFields[reschedulebatch.FieldBlockers] = struct{}{}
}

// BlockersCleared returns if the "blockers" field was cleared in this mutation.
func (m *RescheduleBatchMutation) BlockersCleared() bool {
	_, ok := m.clearedFields[reschedulebatch.FieldBlockers]
	return ok
}

// ResetBlockers resets all changes to the "blockers" field.
func (m *RescheduleBatchMutation) ResetBlockers() {
	m.blockers = nil
	m.appendblockers = nil
	delete(m.clearedFields, reschedulebatch.FieldBlockers)
}

// SetSessionsRescheduled sets the "sessions_rescheduled" field.
func (m *RescheduleBatchMutation) SetSessionsRescheduled(i int) {
	m.sessions_rescheduled = &i
	m.addsessions_rescheduled = nil
}

// SessionsRescheduled returns the value of the "sessions_rescheduled" field in the mutation.
func (m *RescheduleBatchMutation) SessionsRescheduled() (r int, exists bool) {
	v := m.sessions_rescheduled
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionsRescheduled returns the old "sessions_rescheduled" field's value of the RescheduleBatch entity.
// If the RescheduleBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleBatchMutation) OldSessionsRescheduled(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionsRescheduled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionsRescheduled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionsRescheduled: %w", err)
	}
	return oldValue.SessionsRescheduled, nil
}

// AddSessionsRescheduled adds i to the "sessions_rescheduled" field.
func (m *RescheduleBatchMutation) AddSessionsRescheduled(i int) {
	if m.addsessions_rescheduled != nil {
		*m.addsessions_rescheduled += i
	} else {
		m.addsessions_rescheduled = &i
	}
}

// AddedSessionsRescheduled returns the value that was added to the "sessions_rescheduled" field in this mutation.
func (m *RescheduleBatchMutation) AddedSessionsRescheduled() (r int, exists bool) {
	v := m.addsessions_rescheduled
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionsRescheduled resets all changes to the "sessions_rescheduled" field.
func (m *RescheduleBatchMutation) ResetSessionsRescheduled() {
	m.sessions_rescheduled = nil
	m.addsessions_rescheduled = nil
}

// SetOptimizationScore sets the "optimization_score" field.
func (m *RescheduleBatchMutation) SetOptimizationScore(f float64) {
	m.optimization_score = &f
	m.addoptimization_score = nil
}

// OptimizationScore returns the value of the "optimization_score" field in the mutation.
func (m *RescheduleBatchMutation) OptimizationScore() (r float64, exists bool) {
	v := m.optimization_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOptimizationScore returns the old "optimization_score" field's value of the RescheduleBatch entity.
// If the RescheduleBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleBatchMutation) OldOptimizationScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptimizationScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptimizationScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptimizationScore: %w", err)
	}
	return oldValue.OptimizationScore, nil
}

// AddOptimizationScore adds f to the "optimization_score" field.
func (m *RescheduleBatchMutation) AddOptimizationScore(f float64) {
	if m.addoptimization_score != nil {
		*m.addoptimization_score += f
	} else {
		m.addoptimization_score = &f
	}
}

// AddedOptimizationScore returns the value that was added to the "optimization_score" field in this mutation.
func (m *RescheduleBatchMutation) AddedOptimizationScore() (r float64, exists bool) {
	v := m.addoptimization_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetOptimizationScore resets all changes to the "optimization_score" field.
func (m *RescheduleBatchMutation) ResetOptimizationScore() {
	m.optimization_score = nil
	m.addoptimization_score = nil
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (m *RescheduleBatchMutation) SetExecutionTimeMs(i int64) {
	m.execution_time_ms = &i
	m.addexecution_time_ms = nil
}

// ExecutionTimeMs returns the value of the "execution_time_ms" field in the mutation.
func (m *RescheduleBatchMutation) ExecutionTimeMs() (r int64, exists bool) {
	v := m.execution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionTimeMs returns the old "execution_time_ms" field's value of the RescheduleBatch entity.
// If the RescheduleBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleBatchMutation) OldExecutionTimeMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionTimeMs: %w", err)
	}
	return oldValue.ExecutionTimeMs, nil
}

// AddExecutionTimeMs adds i to the "execution_time_ms" field.
func (m *RescheduleBatchMutation) AddExecutionTimeMs(i int64) {
	if m.addexecution_time_ms != nil {
		*m.addexecution_time_ms += i
	} else {
		m.addexecution_time_ms = &i
	}
}

// AddedExecutionTimeMs returns the value that was added to the "execution_time_ms" field in this mutation.
func (m *RescheduleBatchMutation) AddedExecutionTimeMs() (r int64, exists bool) {
	v := m.addexecution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetExecutionTimeMs resets all changes to the "execution_time_ms" field.
func (m *RescheduleBatchMutation) ResetExecutionTimeMs() {
	m.execution_time_ms = nil
	m.addexecution_time_ms = nil
}

// SetNewEndDate sets the "new_end_date" field.
func (m *RescheduleBatchMutation) SetNewEndDate(t time.Time) {
	m.new_end_date = &t
}

// NewEndDate returns the value of the "new_end_date" field in the mutation.
func (m *RescheduleBatchMutation) NewEndDate() (r time.Time, exists bool) {
	v := m.new_end_date
	if v == nil {
		return
	}
	return *v, true
}

// OldNewEndDate returns the old "new_end_date" field's value of the RescheduleBatch entity.
// If the RescheduleBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleBatchMutation) OldNewEndDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewEndDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewEndDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewEndDate: %w", err)
	}
	return oldValue.NewEndDate, nil
}

// ClearNewEndDate clears the value of the "new_end_date" field.
func (m *RescheduleBatchMutation) ClearNewEndDate() {
	m.new_end_date = nil
	m.clearedFields[reschedulebatch.FieldNewEndDate] = struct{}{}
}

// NewEndDateCleared returns if the "new_end_date" field was cleared in this mutation.
func (m *RescheduleBatchMutation) NewEndDateCleared() bool {
	_, ok := m.clearedFields[reschedulebatch.FieldNewEndDate]
	return ok
}

// ResetNewEndDate resets all changes to the "new_end_date" field.
func (m *RescheduleBatchMutation) ResetNewEndDate() {
	m.new_end_date = nil
	delete(m.clearedFields, reschedulebatch.FieldNewEndDate)
}

// SetAppliedAt sets the "applied_at" field.
func (m *RescheduleBatchMutation) SetAppliedAt(t time.Time) {
	m.applied_at = &t
}

// AppliedAt returns the value of the "applied_at" field in the mutation.
func (m *RescheduleBatchMutation) AppliedAt() (r time.Time, exists bool) {
	v := m.applied_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAppliedAt returns the old "applied_at" field's value of the RescheduleBatch entity.
// If the RescheduleBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleBatchMutation) OldAppliedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppliedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppliedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppliedAt: %w", err)
	}
	return oldValue.AppliedAt, nil
}

// ClearAppliedAt clears the value of the "applied_at" field.
func (m *RescheduleBatchMutation) ClearAppliedAt() {
	m.applied_at = nil
	m.clearedFields[reschedulebatch.FieldAppliedAt] = struct{}{}
}

// AppliedAtCleared returns if the "applied_at" field was cleared in this mutation.
func (m *RescheduleBatchMutation) AppliedAtCleared() bool {
	_, ok := m.clearedFields[reschedulebatch.FieldAppliedAt]
	return ok
}

// ResetAppliedAt resets all changes to the "applied_at" field.
func (m *RescheduleBatchMutation) ResetAppliedAt() {
	m.applied_at = nil
	delete(m.clearedFields, reschedulebatch.FieldAppliedAt)
}

// SetRolledBackAt sets the "rolled_back_at" field.
func (m *RescheduleBatchMutation) SetRolledBackAt(t time.Time) {
	m.rolled_back_at = &t
}

// RolledBackAt returns the value of the "rolled_back_at" field in the mutation.
func (m *RescheduleBatchMutation) RolledBackAt() (r time.Time, exists bool) {
	v := m.rolled_back_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRolledBackAt returns the old "rolled_back_at" field's value of the RescheduleBatch entity.
// If the RescheduleBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleBatchMutation) OldRolledBackAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRolledBackAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRolledBackAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRolledBackAt: %w", err)
	}
	return oldValue.RolledBackAt, nil
}

// ClearRolledBackAt clears the value of the "rolled_back_at" field.
func (m *RescheduleBatchMutation) ClearRolledBackAt() {
	m.rolled_back_at = nil
	m.clearedFields[reschedulebatch.FieldRolledBackAt] = struct{}{}
}

// RolledBackAtCleared returns if the "rolled_back_at" field was cleared in this mutation.
func (m *RescheduleBatchMutation) RolledBackAtCleared() bool {
	_, ok := m.clearedFields[reschedulebatch.FieldRolledBackAt]
	return ok
}

// ResetRolledBackAt resets all changes to the "rolled_back_at" field.
func (m *RescheduleBatchMutation) ResetRolledBackAt() {
	m.rolled_back_at = nil
	delete(m.clearedFields, reschedulebatch.FieldRolledBackAt)
}

// SetFailureReason sets the "failure_reason" field.
func (m *RescheduleBatchMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *RescheduleBatchMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the RescheduleBatch entity.
// If the RescheduleBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RescheduleBatchMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
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

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *RescheduleBatchMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[reschedulebatch.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *RescheduleBatchMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[reschedulebatch.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *RescheduleBatchMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, reschedulebatch.FieldFailureReason)
}

// Where appends a list predicates to the RescheduleBatchMutation builder.
func (m *RescheduleBatchMutation) Where(ps ...predicate.RescheduleBatch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RescheduleBatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RescheduleBatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RescheduleBatch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RescheduleBatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RescheduleBatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RescheduleBatch).
func (m *RescheduleBatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RescheduleBatchMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.created_at != nil {
		fields = append(fields, reschedulebatch.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, reschedulebatch.FieldUpdatedAt)
	}
	if m.request_id != nil {
		fields = append(fields, reschedulebatch.FieldRequestID)
	}
	if m.center_id != nil {
		fields = append(fields, reschedulebatch.FieldCenterID)
	}
	if m.enrollment_id != nil {
		fields = append(fields, reschedulebatch.FieldEnrollmentID)
	}
	if m.trigger != nil {
		fields = append(fields, reschedulebatch.FieldTrigger)
	}
	if m.status != nil {
		fields = append(fields, reschedulebatch.FieldStatus)
	}
	if m.previous_sessions != nil {
		fields = append(fields, reschedulebatch.FieldPreviousSessions)
	}
	if m.conflicts != nil {
		fields = append(fields, reschedulebatch.FieldConflicts)
	}
	if m.blockers != nil {
		fields = append(fields, reschedulebatch.FieldBlockers)
	}
	if m.sessions_rescheduled != nil {
		fields = append(fields, reschedulebatch.FieldSessionsRescheduled)
	}
	if m.optimization_score != nil {
		fields = append(fields, reschedulebatch.FieldOptimizationScore)
	}
	if m.execution_time_ms != nil {
		fields = append(fields, reschedulebatch.FieldExecutionTimeMs)
	}
	if m.new_end_date != nil {
		fields = append(fields, reschedulebatch.FieldNewEndDate)
	}
	if m.applied_at != nil {
		fields = append(fields, reschedulebatch.FieldAppliedAt)
	}
	if m.rolled_back_at != nil {
		fields = append(fields, reschedulebatch.FieldRolledBackAt)
	}
	if m.failure_reason != nil {
		fields = append(fields, reschedulebatch.FieldFailureReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RescheduleBatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reschedulebatch.FieldCreatedAt:
		return m.CreatedAt()
	case reschedulebatch.FieldUpdatedAt:
		return m.UpdatedAt()
	case reschedulebatch.FieldRequestID:
		return m.RequestID()
	case reschedulebatch.FieldCenterID:
		return m.CenterID()
	case reschedulebatch.FieldEnrollmentID:
		return m.EnrollmentID()
	case reschedulebatch.FieldTrigger:
		return m.Trigger()
	case reschedulebatch.FieldStatus:
		return m.Status()
	case reschedulebatch.FieldPreviousSessions:
		return m.PreviousSessions()
	case reschedulebatch.FieldConflicts:
		return m.Conflicts()
	case reschedulebatch.FieldBlockers:
		return m.Blockers()
	case reschedulebatch.FieldSessionsRescheduled:
		return m.SessionsRescheduled()
	case reschedulebatch.FieldOptimizationScore:
		return m.OptimizationScore()
	case reschedulebatch.FieldExecutionTimeMs:
		return m.ExecutionTimeMs()
	case reschedulebatch.FieldNewEndDate:
		return m.NewEndDate()
	case reschedulebatch.FieldAppliedAt:
		return m.AppliedAt()
	case reschedulebatch.FieldRolledBackAt:
		return m.RolledBackAt()
	case reschedulebatch.FieldFailureReason:
		return m.FailureReason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RescheduleBatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reschedulebatch.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case reschedulebatch.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case reschedulebatch.FieldRequestID:
		return m.OldRequestID(ctx)
	case reschedulebatch.FieldCenterID:
		return m.OldCenterID(ctx)
	case reschedulebatch.FieldEnrollmentID:
		return m.OldEnrollmentID(ctx)
	case reschedulebatch.FieldTrigger:
		return m.OldTrigger(ctx)
	case reschedulebatch.FieldStatus:
		return m.OldStatus(ctx)
	case reschedulebatch.FieldPreviousSessions:
		return m.OldPreviousSessions(ctx)
	case reschedulebatch.FieldConflicts:
		return m.OldConflicts(ctx)
	case reschedulebatch.FieldBlockers:
		return m.OldBlockers(ctx)
	case reschedulebatch.FieldSessionsRescheduled:
		return m.OldSessionsRescheduled(ctx)
	case reschedulebatch.FieldOptimizationScore:
		return m.OldOptimizationScore(ctx)
	case reschedulebatch.FieldExecutionTimeMs:
		return m.OldExecutionTimeMs(ctx)
	case reschedulebatch.FieldNewEndDate:
		return m.OldNewEndDate(ctx)
	case reschedulebatch.FieldAppliedAt:
		return m.OldAppliedAt(ctx)
	case reschedulebatch.FieldRolledBackAt:
		return m.OldRolledBackAt(ctx)
	case reschedulebatch.FieldFailureReason:
		return m.OldFailureReason(ctx)
	}
	return nil, fmt.Errorf("unknown RescheduleBatch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RescheduleBatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reschedulebatch.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case reschedulebatch.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case reschedulebatch.FieldRequestID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case reschedulebatch.FieldCenterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCenterID(v)
		return nil
	case reschedulebatch.FieldEnrollmentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrollmentID(v)
		return nil
	case reschedulebatch.FieldTrigger:
		v, ok := value.(reschedulebatch.Trigger)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrigger(v)
		return nil
	case reschedulebatch.FieldStatus:
		v, ok := value.(reschedulebatch.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case reschedulebatch.FieldPreviousSessions:
		v, ok := value.([]schema.SessionSnapshot)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviousSessions(v)
		return nil
	case reschedulebatch.FieldConflicts:
		v, ok := value.([]schema.ConflictRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConflicts(v)
		return nil
	case reschedulebatch.FieldBlockers:
		v, ok := value.([]schema.BlockerRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockers(v)
		return nil
	case reschedulebatch.FieldSessionsRescheduled:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionsRescheduled(v)
		return nil
	case reschedulebatch.FieldOptimizationScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptimizationScore(v)
		return nil
	case reschedulebatch.FieldExecutionTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionTimeMs(v)
		return nil
	case reschedulebatch.FieldNewEndDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewEndDate(v)
		return nil
	case reschedulebatch.FieldAppliedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppliedAt(v)
		return nil
	case reschedulebatch.FieldRolledBackAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRolledBackAt(v)
		return nil
	case reschedulebatch.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	}
	return fmt.Errorf("unknown RescheduleBatch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RescheduleBatchMutation) AddedFields() []string {
	var fields []string
	if m.addsessions_rescheduled != nil {
		fields = append(fields, reschedulebatch.FieldSessionsRescheduled)
	}
	if m.addoptimization_score != nil {
		fields = append(fields, reschedulebatch.FieldOptimizationScore)
	}
	if m.addexecution_time_ms != nil {
		fields = append(fields, reschedulebatch.FieldExecutionTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RescheduleBatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reschedulebatch.FieldSessionsRescheduled:
		return m.AddedSessionsRescheduled()
	case reschedulebatch.FieldOptimizationScore:
		return m.AddedOptimizationScore()
	case reschedulebatch.FieldExecutionTimeMs:
		return m.AddedExecutionTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RescheduleBatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reschedulebatch.FieldSessionsRescheduled:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionsRescheduled(v)
		return nil
	case reschedulebatch.FieldOptimizationScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOptimizationScore(v)
		return nil
	case reschedulebatch.FieldExecutionTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExecutionTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown RescheduleBatch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RescheduleBatchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reschedulebatch.FieldPreviousSessions) {
		fields = append(fields, reschedulebatch.FieldPreviousSessions)
	}
	if m.FieldCleared(reschedulebatch.FieldConflicts) {
		fields = append(fields, reschedulebatch.FieldConflicts)
	}
	if m.FieldCleared(reschedulebatch.FieldBlockers) {
		fields = append(fields, reschedulebatch.FieldBlockers)
	}
	if m.FieldCleared(reschedulebatch.FieldNewEndDate) {
		fields = append(fields, reschedulebatch.FieldNewEndDate)
	}
	if m.FieldCleared(reschedulebatch.FieldAppliedAt) {
		fields = append(fields, reschedulebatch.FieldAppliedAt)
	}
	if m.FieldCleared(reschedulebatch.FieldRolledBackAt) {
		fields = append(fields, reschedulebatch.FieldRolledBackAt)
	}
	if m.FieldCleared(reschedulebatch.FieldFailureReason) {
		fields = append(fields, reschedulebatch.FieldFailureReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RescheduleBatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RescheduleBatchMutation) ClearField(name string) error {
	switch name {
	case reschedulebatch.FieldPreviousSessions:
		m.ClearPreviousSessions()
		return nil
	case reschedulebatch.FieldConflicts:
		m.ClearConflicts()
		return nil
	case reschedulebatch.FieldBlockers:
		m.ClearBlockers()
		return nil
	case reschedulebatch.FieldNewEndDate:
		m.ClearNewEndDate()
		return nil
	case reschedulebatch.FieldAppliedAt:
		m.ClearAppliedAt()
		return nil
	case reschedulebatch.FieldRolledBackAt:
		m.ClearRolledBackAt()
		return nil
	case reschedulebatch.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	}
	return fmt.Errorf("unknown RescheduleBatch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RescheduleBatchMutation) ResetField(name string) error {
	switch name {
	case reschedulebatch.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case reschedulebatch.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case reschedulebatch.FieldRequestID:
		m.ResetRequestID()
		return nil
	case reschedulebatch.FieldCenterID:
		m.ResetCenterID()
		return nil
	case reschedulebatch.FieldEnrollmentID:
		m.ResetEnrollmentID()
		return nil
	case reschedulebatch.FieldTrigger:
		m.ResetTrigger()
		return nil
	case reschedulebatch.FieldStatus:
		m.ResetStatus()
		return nil
	case reschedulebatch.FieldPreviousSessions:
		m.ResetPreviousSessions()
		return nil
	case reschedulebatch.FieldConflicts:
		m.ResetConflicts()
		return nil
	case reschedulebatch.FieldBlockers:
		m.ResetBlockers()
		return nil
	case reschedulebatch.FieldSessionsRescheduled:
		m.ResetSessionsRescheduled()
		return nil
	case reschedulebatch.FieldOptimizationScore:
		m.ResetOptimizationScore()
		return nil
	case reschedulebatch.FieldExecutionTimeMs:
		m.ResetExecutionTimeMs()
		return nil
	case reschedulebatch.FieldNewEndDate:
		m.ResetNewEndDate()
		return nil
	case reschedulebatch.FieldAppliedAt:
		m.ResetAppliedAt()
		return nil
	case reschedulebatch.FieldRolledBackAt:
		m.ResetRolledBackAt()
		return nil
	case reschedulebatch.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	}
	return fmt.Errorf("unknown RescheduleBatch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RescheduleBatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RescheduleBatchMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RescheduleBatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RescheduleBatchMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RescheduleBatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RescheduleBatchMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RescheduleBatchMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RescheduleBatch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RescheduleBatchMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RescheduleBatch edge %s", name)
}

// RoomMutation represents an operation that mutates the Room nodes in the graph.
type RoomMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	center_id     *uuid.UUID
	name          *string
	capacity      *int
	addcapacity   *int
	is_active     *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Room, error)
	predicates    []predicate.Room
}

var _ ent.Mutation = (*RoomMutation)(nil)

// roomOption allows management of the mutation configuration using functional options.
type roomOption func(*RoomMutation)

// newRoomMutation creates new mutation for the Room entity.
func newRoomMutation(c config, op Op, opts ...roomOption) *RoomMutation {
	m := &RoomMutation{
		config:        c,
		op:            op,
		typ:           TypeRoom,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoomID sets the ID field of the mutation.
func withRoomID(id uuid.UUID) roomOption {
	return func(m *RoomMutation) {
		var (
			err   error
			once  sync.Once
			value *Room
		)
		m.oldValue = func(ctx context.Context) (*Room, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Room.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoom sets the old Room of the mutation.
func withRoom(node *Room) roomOption {
	return func(m *RoomMutation) {
		m.oldValue = func(context.Context) (*Room, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoomMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoomMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Room entities.
func (m *RoomMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoomMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoomMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Room.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RoomMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RoomMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RoomMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RoomMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RoomMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *RoomMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCenterID sets the "center_id" field.
func (m *RoomMutation) SetCenterID(u uuid.UUID) {
	m.center_id = &u
}

// CenterID returns the value of the "center_id" field in the mutation.
func (m *RoomMutation) CenterID() (r uuid.UUID, exists bool) {
	v := m.center_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCenterID returns the old "center_id" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldCenterID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCenterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCenterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCenterID: %w", err)
	}
	return oldValue.CenterID, nil
}

// ResetCenterID resets all changes to the "center_id" field.
func (m *RoomMutation) ResetCenterID() {
	m.center_id = nil
}

// SetName sets the "name" field.
func (m *RoomMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RoomMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *RoomMutation) ResetName() {
	m.name = nil
}

// SetCapacity sets the "capacity" field.
func (m *RoomMutation) SetCapacity(i int) {
	m.capacity = &i
	m.addcapacity = nil
}

// Capacity returns the value of the "capacity" field in the mutation.
func (m *RoomMutation) Capacity() (r int, exists bool) {
	v := m.capacity
	if v == nil {
		return
	}
	return *v, true
}

// OldCapacity returns the old "capacity" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldCapacity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapacity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapacity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapacity: %w", err)
	}
	return oldValue.Capacity, nil
}

// AddCapacity adds i to the "capacity" field.
func (m *RoomMutation) AddCapacity(i int) {
	if m.addcapacity != nil {
		*m.addcapacity += i
	} else {
		m.addcapacity = &i
	}
}

// AddedCapacity returns the value that was added to the "capacity" field in this mutation.
func (m *RoomMutation) AddedCapacity() (r int, exists bool) {
	v := m.addcapacity
	if v == nil {
		return
	}
	return *v, true
}

// ResetCapacity resets all changes to the "capacity" field.
func (m *RoomMutation) ResetCapacity() {
	m.capacity = nil
	m.addcapacity = nil
}

// SetIsActive sets the "is_active" field.
func (m *RoomMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *RoomMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Room entity.
// If the Room object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoomMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *RoomMutation) ResetIsActive() {
	m.is_active = nil
}

// Where appends a list predicates to the RoomMutation builder.
func (m *RoomMutation) Where(ps ...predicate.Room) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoomMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoomMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Room, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoomMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoomMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Room).
func (m *RoomMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoomMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, room.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, room.FieldUpdatedAt)
	}
	if m.center_id != nil {
		fields = append(fields, room.FieldCenterID)
	}
	if m.name != nil {
		fields = append(fields, room.FieldName)
	}
	if m.capacity != nil {
		fields = append(fields, room.FieldCapacity)
	}
	if m.is_active != nil {
		fields = append(fields, room.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoomMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case room.FieldCreatedAt:
		return m.CreatedAt()
	case room.FieldUpdatedAt:
		return m.UpdatedAt()
	case room.FieldCenterID:
		return m.CenterID()
	case room.FieldName:
		return m.Name()
	case room.FieldCapacity:
		return m.Capacity()
	case room.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoomMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case room.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case room.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case room.FieldCenterID:
		return m.OldCenterID(ctx)
	case room.FieldName:
		return m.OldName(ctx)
	case room.FieldCapacity:
		return m.OldCapacity(ctx)
	case room.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown Room field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoomMutation) SetField(name string, value ent.Value) error {
	switch name {
	case room.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case room.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case room.FieldCenterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCenterID(v)
		return nil
	case room.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case room.FieldCapacity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapacity(v)
		return nil
	case room.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown Room field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoomMutation) AddedFields() []string {
	var fields []string
	if m.addcapacity != nil {
		fields = append(fields, room.FieldCapacity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoomMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case room.FieldCapacity:
		return m.AddedCapacity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoomMutation) AddField(name string, value ent.Value) error {
	switch name {
	case room.FieldCapacity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCapacity(v)
		return nil
	}
	return fmt.Errorf("unknown Room numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoomMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoomMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoomMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Room nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoomMutation) ResetField(name string) error {
	switch name {
	case room.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case room.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case room.FieldCenterID:
		m.ResetCenterID()
		return nil
	case room.FieldName:
		m.ResetName()
		return nil
	case room.FieldCapacity:
		m.ResetCapacity()
		return nil
	case room.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown Room field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoomMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoomMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoomMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoomMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoomMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoomMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoomMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Room unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoomMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Room edge %s", name)
}

// TherapistMutation represents an operation that mutates the Therapist nodes in the graph.
type TherapistMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	created_at             *time.Time
	updated_at             *time.Time
	center_id              *uuid.UUID
	display_name           *string
	specialty              *string
	phone                  *string
	max_weekly_sessions    *int
	addmax_weekly_sessions *int
	is_accepting           *bool
	is_active              *bool
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Therapist, error)
	predicates             []predicate.Therapist
}

var _ ent.Mutation = (*TherapistMutation)(nil)

// therapistOption allows management of the mutation configuration using functional options.
type therapistOption func(*TherapistMutation)

// newTherapistMutation creates new mutation for the Therapist entity.
func newTherapistMutation(c config, op Op, opts ...therapistOption) *TherapistMutation {
	m := &TherapistMutation{
		config:        c,
		op:            op,
		typ:           TypeTherapist,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTherapistID sets the ID field of the mutation.
func withTherapistID(id uuid.UUID) therapistOption {
	return func(m *TherapistMutation) {
		var (
			err   error
			once  sync.Once
			value *Therapist
		)
		m.oldValue = func(ctx context.Context) (*Therapist, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Therapist.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTherapist sets the old Therapist of the mutation.
func withTherapist(node *Therapist) therapistOption {
	return func(m *TherapistMutation) {
		m.oldValue = func(context.Context) (*Therapist, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TherapistMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TherapistMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Therapist entities.
func (m *TherapistMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TherapistMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TherapistMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Therapist.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TherapistMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TherapistMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Therapist entity.
// If the Therapist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TherapistMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TherapistMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TherapistMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Therapist entity.
// If the Therapist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TherapistMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCenterID sets the "center_id" field.
func (m *TherapistMutation) SetCenterID(u uuid.UUID) {
	m.center_id = &u
}

// CenterID returns the value of the "center_id" field in the mutation.
func (m *TherapistMutation) CenterID() (r uuid.UUID, exists bool) {
	v := m.center_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCenterID returns the old "center_id" field's value of the Therapist entity.
// If the Therapist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistMutation) OldCenterID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCenterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCenterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCenterID: %w", err)
	}
	return oldValue.CenterID, nil
}

// ResetCenterID resets all changes to the "center_id" field.
func (m *TherapistMutation) ResetCenterID() {
	m.center_id = nil
}

// SetDisplayName sets the "display_name" field.
func (m *TherapistMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *TherapistMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Therapist entity.
// If the Therapist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *TherapistMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetSpecialty sets the "specialty" field.
func (m *TherapistMutation) SetSpecialty(s string) {
	m.specialty = &s
}

// Specialty returns the value of the "specialty" field in the mutation.
func (m *TherapistMutation) Specialty() (r string, exists bool) {
	v := m.specialty
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecialty returns the old "specialty" field's value of the Therapist entity.
// If the Therapist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistMutation) OldSpecialty(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecialty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecialty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecialty: %w", err)
	}
	return oldValue.Specialty, nil
}

// ClearSpecialty clears the value of the "specialty" field.
func (m *TherapistMutation) ClearSpecialty() {
	m.specialty = nil
	m.clearedFields[therapist.FieldSpecialty] = struct{}{}
}

// SpecialtyCleared returns if the "specialty" field was cleared in this mutation.
func (m *TherapistMutation) SpecialtyCleared() bool {
	_, ok := m.clearedFields[therapist.FieldSpecialty]
	return ok
}

// ResetSpecialty resets all changes to the "specialty" field.
func (m *TherapistMutation) ResetSpecialty() {
	m.specialty = nil
	delete(m.clearedFields, therapist.FieldSpecialty)
}

// SetPhone sets the "phone" field.
func (m *TherapistMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *TherapistMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Therapist entity.
// If the Therapist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistMutation) OldPhone(ctx context.Context) (v *string, err error) {
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
func (m *TherapistMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[therapist.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *TherapistMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[therapist.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *TherapistMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, therapist.FieldPhone)
}

// SetMaxWeeklySessions sets the "max_weekly_sessions" field.
func (m *TherapistMutation) SetMaxWeeklySessions(i int) {
	m.max_weekly_sessions = &i
	m.addmax_weekly_sessions = nil
}

// MaxWeeklySessions returns the value of the "max_weekly_sessions" field in the mutation.
func (m *TherapistMutation) MaxWeeklySessions() (r int, exists bool) {
	v := m.max_weekly_sessions
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxWeeklySessions returns the old "max_weekly_sessions" field's value of the Therapist entity.
// If the Therapist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistMutation) OldMaxWeeklySessions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxWeeklySessions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxWeeklySessions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxWeeklySessions: %w", err)
	}
	return oldValue.MaxWeeklySessions, nil
}

// AddMaxWeeklySessions adds i to the "max_weekly_sessions" field.
func (m *TherapistMutation) AddMaxWeeklySessions(i int) {
	if m.addmax_weekly_sessions != nil {
		*m.addmax_weekly_sessions += i
	} else {
		m.addmax_weekly_sessions = &i
	}
}

// AddedMaxWeeklySessions returns the value that was added to the "max_weekly_sessions" field in this mutation.
func (m *TherapistMutation) AddedMaxWeeklySessions() (r int, exists bool) {
	v := m.addmax_weekly_sessions
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxWeeklySessions resets all changes to the "max_weekly_sessions" field.
func (m *TherapistMutation) ResetMaxWeeklySessions() {
	m.max_weekly_sessions = nil
	m.addmax_weekly_sessions = nil
}

// SetIsAccepting sets the "is_accepting" field.
func (m *TherapistMutation) SetIsAccepting(b bool) {
	m.is_accepting = &b
}

// IsAccepting returns the value of the "is_accepting" field in the mutation.
func (m *TherapistMutation) IsAccepting() (r bool, exists bool) {
	v := m.is_accepting
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAccepting returns the old "is_accepting" field's value of the Therapist entity.
// If the Therapist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistMutation) OldIsAccepting(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAccepting is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAccepting requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAccepting: %w", err)
	}
	return oldValue.IsAccepting, nil
}

// ResetIsAccepting resets all changes to the "is_accepting" field.
func (m *TherapistMutation) ResetIsAccepting() {
	m.is_accepting = nil
}

// SetIsActive sets the "is_active" field.
func (m *TherapistMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *TherapistMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Therapist entity.
// If the Therapist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapistMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *TherapistMutation) ResetIsActive() {
	m.is_active = nil
}

// Where appends a list predicates to the TherapistMutation builder.
func (m *TherapistMutation) Where(ps ...predicate.Therapist) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TherapistMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TherapistMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Therapist, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TherapistMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TherapistMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Therapist).
func (m *TherapistMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TherapistMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, therapist.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, therapist.FieldUpdatedAt)
	}
	if m.center_id != nil {
		fields = append(fields, therapist.FieldCenterID)
	}
	if m.display_name != nil {
		fields = append(fields, therapist.FieldDisplayName)
	}
	if m.specialty != nil {
		fields = append(fields, therapist.FieldSpecialty)
	}
	if m.phone != nil {
		fields = append(fields, therapist.FieldPhone)
	}
	if m.max_weekly_sessions != nil {
		fields = append(fields, therapist.FieldMaxWeeklySessions)
	}
	if m.is_accepting != nil {
		fields = append(fields, therapist.FieldIsAccepting)
	}
	if m.is_active != nil {
		fields = append(fields, therapist.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TherapistMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case therapist.FieldCreatedAt:
		return m.CreatedAt()
	case therapist.FieldUpdatedAt:
		return m.UpdatedAt()
	case therapist.FieldCenterID:
		return m.CenterID()
	case therapist.FieldDisplayName:
		return m.DisplayName()
	case therapist.FieldSpecialty:
		return m.Specialty()
	case therapist.FieldPhone:
		return m.Phone()
	case therapist.FieldMaxWeeklySessions:
		return m.MaxWeeklySessions()
	case therapist.FieldIsAccepting:
		return m.IsAccepting()
	case therapist.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TherapistMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case therapist.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case therapist.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case therapist.FieldCenterID:
		return m.OldCenterID(ctx)
	case therapist.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case therapist.FieldSpecialty:
		return m.OldSpecialty(ctx)
	case therapist.FieldPhone:
		return m.OldPhone(ctx)
	case therapist.FieldMaxWeeklySessions:
		return m.OldMaxWeeklySessions(ctx)
	case therapist.FieldIsAccepting:
		return m.OldIsAccepting(ctx)
	case therapist.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown Therapist field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TherapistMutation) SetField(name string, value ent.Value) error {
	switch name {
	case therapist.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case therapist.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case therapist.FieldCenterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCenterID(v)
		return nil
	case therapist.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case therapist.FieldSpecialty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecialty(v)
		return nil
	case therapist.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case therapist.FieldMaxWeeklySessions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxWeeklySessions(v)
		return nil
	case therapist.FieldIsAccepting:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAccepting(v)
		return nil
	case therapist.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown Therapist field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TherapistMutation) AddedFields() []string {
	var fields []string
	if m.addmax_weekly_sessions != nil {
		fields = append(fields, therapist.FieldMaxWeeklySessions)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TherapistMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case therapist.FieldMaxWeeklySessions:
		return m.AddedMaxWeeklySessions()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TherapistMutation) AddField(name string, value ent.Value) error {
	switch name {
	case therapist.FieldMaxWeeklySessions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxWeeklySessions(v)
		return nil
	}
	return fmt.Errorf("unknown Therapist numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TherapistMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(therapist.FieldSpecialty) {
		fields = append(fields, therapist.FieldSpecialty)
	}
	if m.FieldCleared(therapist.FieldPhone) {
		fields = append(fields, therapist.FieldPhone)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TherapistMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TherapistMutation) ClearField(name string) error {
	switch name {
	case therapist.FieldSpecialty:
		m.ClearSpecialty()
		return nil
	case therapist.FieldPhone:
		m.ClearPhone()
		return nil
	}
	return fmt.Errorf("unknown Therapist nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TherapistMutation) ResetField(name string) error {
	switch name {
	case therapist.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case therapist.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case therapist.FieldCenterID:
		m.ResetCenterID()
		return nil
	case therapist.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case therapist.FieldSpecialty:
		m.ResetSpecialty()
		return nil
	case therapist.FieldPhone:
		m.ResetPhone()
		return nil
	case therapist.FieldMaxWeeklySessions:
		m.ResetMaxWeeklySessions()
		return nil
	case therapist.FieldIsAccepting:
		m.ResetIsAccepting()
		return nil
	case therapist.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown Therapist field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TherapistMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TherapistMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TherapistMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TherapistMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TherapistMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TherapistMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TherapistMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Therapist unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TherapistMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Therapist edge %s", name)
}

// TherapySessionMutation represents an operation that mutates the TherapySession nodes in the graph.
type TherapySessionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	created_at            *time.Time
	updated_at            *time.Time
	center_id             *uuid.UUID
	enrollment_id         *uuid.UUID
	therapist_id          *uuid.UUID
	student_id            *uuid.UUID
	room_id               *uuid.UUID
	start_time            *time.Time
	end_time              *time.Time
	status                *therapysession.Status
	generated_by_batch_id *uuid.UUID
	notes                 *string
	completed_at          *time.Time
	cancelled_at          *time.Time
	cancellation_reason   *string
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*TherapySession, error)
	predicates            []predicate.TherapySession
}

var _ ent.Mutation = (*TherapySessionMutation)(nil)

// therapysessionOption allows management of the mutation configuration using functional options.
type therapysessionOption func(*TherapySessionMutation)

// newTherapySessionMutation creates new mutation for the TherapySession entity.
func newTherapySessionMutation(c config, op Op, opts ...therapysessionOption) *TherapySessionMutation {
	m := &TherapySessionMutation{
		config:        c,
		op:            op,
		typ:           TypeTherapySession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTherapySessionID sets the ID field of the mutation.
func withTherapySessionID(id uuid.UUID) therapysessionOption {
	return func(m *TherapySessionMutation) {
		var (
			err   error
			once  sync.Once
			value *TherapySession
		)
		m.oldValue = func(ctx context.Context) (*TherapySession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TherapySession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTherapySession sets the old TherapySession of the mutation.
func withTherapySession(node *TherapySession) therapysessionOption {
	return func(m *TherapySessionMutation) {
		m.oldValue = func(context.Context) (*TherapySession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TherapySessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TherapySessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TherapySession entities.
func (m *TherapySessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TherapySessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TherapySessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TherapySession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TherapySessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TherapySessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TherapySessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TherapySessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TherapySessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *TherapySessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCenterID sets the "center_id" field.
func (m *TherapySessionMutation) SetCenterID(u uuid.UUID) {
	m.center_id = &u
}

// CenterID returns the value of the "center_id" field in the mutation.
func (m *TherapySessionMutation) CenterID() (r uuid.UUID, exists bool) {
	v := m.center_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCenterID returns the old "center_id" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldCenterID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCenterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCenterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCenterID: %w", err)
	}
	return oldValue.CenterID, nil
}

// ResetCenterID resets all changes to the "center_id" field.
func (m *TherapySessionMutation) ResetCenterID() {
	m.center_id = nil
}

// SetEnrollmentID sets the "enrollment_id" field.
func (m *TherapySessionMutation) SetEnrollmentID(u uuid.UUID) {
	m.enrollment_id = &u
}

// EnrollmentID returns the value of the "enrollment_id" field in the mutation.
func (m *TherapySessionMutation) EnrollmentID() (r uuid.UUID, exists bool) {
	v := m.enrollment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrollmentID returns the old "enrollment_id" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldEnrollmentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrollmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrollmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrollmentID: %w", err)
	}
	return oldValue.EnrollmentID, nil
}

// ResetEnrollmentID resets all changes to the "enrollment_id" field.
func (m *TherapySessionMutation) ResetEnrollmentID() {
	m.enrollment_id = nil
}

// SetTherapistID sets the "therapist_id" field.
func (m *TherapySessionMutation) SetTherapistID(u uuid.UUID) {
	m.therapist_id = &u
}

// TherapistID returns the value of the "therapist_id" field in the mutation.
func (m *TherapySessionMutation) TherapistID() (r uuid.UUID, exists bool) {
	v := m.therapist_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTherapistID returns the old "therapist_id" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldTherapistID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTherapistID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTherapistID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTherapistID: %w", err)
	}
	return oldValue.TherapistID, nil
}

// ResetTherapistID resets all changes to the "therapist_id" field.
func (m *TherapySessionMutation) ResetTherapistID() {
	m.therapist_id = nil
}

// SetStudentID sets the "student_id" field.
func (m *TherapySessionMutation) SetStudentID(u uuid.UUID) {
	m.student_id = &u
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *TherapySessionMutation) StudentID() (r uuid.UUID, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldStudentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *TherapySessionMutation) ResetStudentID() {
	m.student_id = nil
}

// SetRoomID sets the "room_id" field.
func (m *TherapySessionMutation) SetRoomID(u uuid.UUID) {
	m.room_id = &u
}

// RoomID returns the value of the "room_id" field in the mutation.
func (m *TherapySessionMutation) RoomID() (r uuid.UUID, exists bool) {
	v := m.room_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoomID returns the old "room_id" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldRoomID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoomID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoomID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoomID: %w", err)
	}
	return oldValue.RoomID, nil
}

// ClearRoomID clears the value of the "room_id" field.
func (m *TherapySessionMutation) ClearRoomID() {
	m.room_id = nil
	m.clearedFields[therapysession.FieldRoomID] = struct{}{}
}

// RoomIDCleared returns if the "room_id" field was cleared in this mutation.
func (m *TherapySessionMutation) RoomIDCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldRoomID]
	return ok
}

// ResetRoomID resets all changes to the "room_id" field.
func (m *TherapySessionMutation) ResetRoomID() {
	m.room_id = nil
	delete(m.clearedFields, therapysession.FieldRoomID)
}

// SetStartTime sets the "start_time" field.
func (m *TherapySessionMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *TherapySessionMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *TherapySessionMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *TherapySessionMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *TherapySessionMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldEndTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *TherapySessionMutation) ResetEndTime() {
	m.end_time = nil
}

// SetStatus sets the "status" field.
func (m *TherapySessionMutation) SetStatus(t therapysession.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TherapySessionMutation) Status() (r therapysession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldStatus(ctx context.Context) (v therapysession.Status, err error) {
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
func (m *TherapySessionMutation) ResetStatus() {
	m.status = nil
}

// SetGeneratedByBatchID sets the "generated_by_batch_id" field.
func (m *TherapySessionMutation) SetGeneratedByBatchID(u uuid.UUID) {
	m.generated_by_batch_id = &u
}

// GeneratedByBatchID returns the value of the "generated_by_batch_id" field in the mutation.
func (m *TherapySessionMutation) GeneratedByBatchID() (r uuid.UUID, exists bool) {
	v := m.generated_by_batch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedByBatchID returns the old "generated_by_batch_id" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldGeneratedByBatchID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedByBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedByBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedByBatchID: %w", err)
	}
	return oldValue.GeneratedByBatchID, nil
}

// ClearGeneratedByBatchID clears the value of the "generated_by_batch_id" field.
func (m *TherapySessionMutation) ClearGeneratedByBatchID() {
	m.generated_by_batch_id = nil
	m.clearedFields[therapysession.FieldGeneratedByBatchID] = struct{}{}
}

// GeneratedByBatchIDCleared returns if the "generated_by_batch_id" field was cleared in this mutation.
func (m *TherapySessionMutation) GeneratedByBatchIDCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldGeneratedByBatchID]
	return ok
}

// ResetGeneratedByBatchID resets all changes to the "generated_by_batch_id" field.
func (m *TherapySessionMutation) ResetGeneratedByBatchID() {
	m.generated_by_batch_id = nil
	delete(m.clearedFields, therapysession.FieldGeneratedByBatchID)
}

// SetNotes sets the "notes" field.
func (m *TherapySessionMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *TherapySessionMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *TherapySessionMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[therapysession.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *TherapySessionMutation) NotesCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *TherapySessionMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, therapysession.FieldNotes)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TherapySessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TherapySessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *TherapySessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[therapysession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TherapySessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TherapySessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, therapysession.FieldCompletedAt)
}

// SetCancelledAt sets the "cancelled_at" field.
func (m *TherapySessionMutation) SetCancelledAt(t time.Time) {
	m.cancelled_at = &t
}

// CancelledAt returns the value of the "cancelled_at" field in the mutation.
func (m *TherapySessionMutation) CancelledAt() (r time.Time, exists bool) {
	v := m.cancelled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelledAt returns the old "cancelled_at" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldCancelledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelledAt: %w", err)
	}
	return oldValue.CancelledAt, nil
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (m *TherapySessionMutation) ClearCancelledAt() {
	m.cancelled_at = nil
	m.clearedFields[therapysession.FieldCancelledAt] = struct{}{}
}

// CancelledAtCleared returns if the "cancelled_at" field was cleared in this mutation.
func (m *TherapySessionMutation) CancelledAtCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldCancelledAt]
	return ok
}

// ResetCancelledAt resets all changes to the "cancelled_at" field.
func (m *TherapySessionMutation) ResetCancelledAt() {
	m.cancelled_at = nil
	delete(m.clearedFields, therapysession.FieldCancelledAt)
}

// SetCancellationReason sets the "cancellation_reason" field.
func (m *TherapySessionMutation) SetCancellationReason(s string) {
	m.cancellation_reason = &s
}

// CancellationReason returns the value of the "cancellation_reason" field in the mutation.
func (m *TherapySessionMutation) CancellationReason() (r string, exists bool) {
	v := m.cancellation_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldCancellationReason returns the old "cancellation_reason" field's value of the TherapySession entity.
// If the TherapySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TherapySessionMutation) OldCancellationReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancellationReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancellationReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancellationReason: %w", err)
	}
	return oldValue.CancellationReason, nil
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (m *TherapySessionMutation) ClearCancellationReason() {
	m.cancellation_reason = nil
	m.clearedFields[therapysession.FieldCancellationReason] = struct{}{}
}

// CancellationReasonCleared returns if the "cancellation_reason" field was cleared in this mutation.
func (m *TherapySessionMutation) CancellationReasonCleared() bool {
	_, ok := m.clearedFields[therapysession.FieldCancellationReason]
	return ok
}

// ResetCancellationReason resets all changes to the "cancellation_reason" field.
func (m *TherapySessionMutation) ResetCancellationReason() {
	m.cancellation_reason = nil
	delete(m.clearedFields, therapysession.FieldCancellationReason)
}

// Where appends a list predicates to the TherapySessionMutation builder.
func (m *TherapySessionMutation) Where(ps ...predicate.TherapySession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TherapySessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TherapySessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TherapySession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TherapySessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TherapySessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TherapySession).
func (m *TherapySessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TherapySessionMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, therapysession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, therapysession.FieldUpdatedAt)
	}
	if m.center_id != nil {
		fields = append(fields, therapysession.FieldCenterID)
	}
	if m.enrollment_id != nil {
		fields = append(fields, therapysession.FieldEnrollmentID)
	}
	if m.therapist_id != nil {
		fields = append(fields, therapysession.FieldTherapistID)
	}
	if m.student_id != nil {
		fields = append(fields, therapysession.FieldStudentID)
	}
	if m.room_id != nil {
		fields = append(fields, therapysession.FieldRoomID)
	}
	if m.start_time != nil {
		fields = append(fields, therapysession.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, therapysession.FieldEndTime)
	}
	if m.status != nil {
		fields = append(fields, therapysession.FieldStatus)
	}
	if m.generated_by_batch_id != nil {
		fields = append(fields, therapysession.FieldGeneratedByBatchID)
	}
	if m.notes != nil {
		fields = append(fields, therapysession.FieldNotes)
	}
	if m.completed_at != nil {
		fields = append(fields, therapysession.FieldCompletedAt)
	}
	if m.cancelled_at != nil {
		fields = append(fields, therapysession.FieldCancelledAt)
	}
	if m.cancellation_reason != nil {
		fields = append(fields, therapysession.FieldCancellationReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TherapySessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case therapysession.FieldCreatedAt:
		return m.CreatedAt()
	case therapysession.FieldUpdatedAt:
		return m.UpdatedAt()
	case therapysession.FieldCenterID:
		return m.CenterID()
	case therapysession.FieldEnrollmentID:
		return m.EnrollmentID()
	case therapysession.FieldTherapistID:
		return m.TherapistID()
	case therapysession.FieldStudentID:
		return m.StudentID()
	case therapysession.FieldRoomID:
		return m.RoomID()
	case therapysession.FieldStartTime:
		return m.StartTime()
	case therapysession.FieldEndTime:
		return m.EndTime()
	case therapysession.FieldStatus:
		return m.Status()
	case therapysession.FieldGeneratedByBatchID:
		return m.GeneratedByBatchID()
	case therapysession.FieldNotes:
		return m.Notes()
	case therapysession.FieldCompletedAt:
		return m.CompletedAt()
	case therapysession.FieldCancelledAt:
		return m.CancelledAt()
	case therapysession.FieldCancellationReason:
		return m.CancellationReason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TherapySessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case therapysession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case therapysession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case therapysession.FieldCenterID:
		return m.OldCenterID(ctx)
	case therapysession.FieldEnrollmentID:
		return m.OldEnrollmentID(ctx)
	case therapysession.FieldTherapistID:
		return m.OldTherapistID(ctx)
	case therapysession.FieldStudentID:
		return m.OldStudentID(ctx)
	case therapysession.FieldRoomID:
		return m.OldRoomID(ctx)
	case therapysession.FieldStartTime:
		return m.OldStartTime(ctx)
	case therapysession.FieldEndTime:
		return m.OldEndTime(ctx)
	case therapysession.FieldStatus:
		return m.OldStatus(ctx)
	case therapysession.FieldGeneratedByBatchID:
		return m.OldGeneratedByBatchID(ctx)
	case therapysession.FieldNotes:
		return m.OldNotes(ctx)
	case therapysession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case therapysession.FieldCancelledAt:
		return m.OldCancelledAt(ctx)
	case therapysession.FieldCancellationReason:
		return m.OldCancellationReason(ctx)
	}
	return nil, fmt.Errorf("unknown TherapySession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TherapySessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case therapysession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case therapysession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case therapysession.FieldCenterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCenterID(v)
		return nil
	case therapysession.FieldEnrollmentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrollmentID(v)
		return nil
	case therapysession.FieldTherapistID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTherapistID(v)
		return nil
	case therapysession.FieldStudentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case therapysession.FieldRoomID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoomID(v)
		return nil
	case therapysession.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case therapysession.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case therapysession.FieldStatus:
		v, ok := value.(therapysession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case therapysession.FieldGeneratedByBatchID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedByBatchID(v)
		return nil
	case therapysession.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case therapysession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case therapysession.FieldCancelledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelledAt(v)
		return nil
	case therapysession.FieldCancellationReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancellationReason(v)
		return nil
	}
	return fmt.Errorf("unknown TherapySession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TherapySessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TherapySessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TherapySessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TherapySession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TherapySessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(therapysession.FieldRoomID) {
		fields = append(fields, therapysession.FieldRoomID)
	}
	if m.FieldCleared(therapysession.FieldGeneratedByBatchID) {
		fields = append(fields, therapysession.FieldGeneratedByBatchID)
	}
	if m.FieldCleared(therapysession.FieldNotes) {
		fields = append(fields, therapysession.FieldNotes)
	}
	if m.FieldCleared(therapysession.FieldCompletedAt) {
		fields = append(fields, therapysession.FieldCompletedAt)
	}
	if m.FieldCleared(therapysession.FieldCancelledAt) {
		fields = append(fields, therapysession.FieldCancelledAt)
	}
	if m.FieldCleared(therapysession.FieldCancellationReason) {
		fields = append(fields, therapysession.FieldCancellationReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TherapySessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TherapySessionMutation) ClearField(name string) error {
	switch name {
	case therapysession.FieldRoomID:
		m.ClearRoomID()
		return nil
	case therapysession.FieldGeneratedByBatchID:
		m.ClearGeneratedByBatchID()
		return nil
	case therapysession.FieldNotes:
		m.ClearNotes()
		return nil
	case therapysession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case therapysession.FieldCancelledAt:
		m.ClearCancelledAt()
		return nil
	case therapysession.FieldCancellationReason:
		m.ClearCancellationReason()
		return nil
	}
	return fmt.Errorf("unknown TherapySession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TherapySessionMutation) ResetField(name string) error {
	switch name {
	case therapysession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case therapysession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case therapysession.FieldCenterID:
		m.ResetCenterID()
		return nil
	case therapysession.FieldEnrollmentID:
		m.ResetEnrollmentID()
		return nil
	case therapysession.FieldTherapistID:
		m.ResetTherapistID()
		return nil
	case therapysession.FieldStudentID:
		m.ResetStudentID()
		return nil
	case therapysession.FieldRoomID:
		m.ResetRoomID()
		return nil
	case therapysession.FieldStartTime:
		m.ResetStartTime()
		return nil
	case therapysession.FieldEndTime:
		m.ResetEndTime()
		return nil
	case therapysession.FieldStatus:
		m.ResetStatus()
		return nil
	case therapysession.FieldGeneratedByBatchID:
		m.ResetGeneratedByBatchID()
		return nil
	case therapysession.FieldNotes:
		m.ResetNotes()
		return nil
	case therapysession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case therapysession.FieldCancelledAt:
		m.ResetCancelledAt()
		return nil
	case therapysession.FieldCancellationReason:
		m.ResetCancellationReason()
		return nil
	}
	return fmt.Errorf("unknown TherapySession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TherapySessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TherapySessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TherapySessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TherapySessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TherapySessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TherapySessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TherapySessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TherapySession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TherapySessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TherapySession edge %s", name)
}
