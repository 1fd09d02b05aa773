// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AvailabilityRule is the predicate function for availabilityrule builders.
type AvailabilityRule func(*sql.Selector)

// Center is the predicate function for center builders.
type Center func(*sql.Selector)

// Enrollment is the predicate function for enrollment builders.
type Enrollment func(*sql.Selector)

// FreezeWindow is the predicate function for freezewindow builders.
type FreezeWindow func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// RescheduleBatch is the predicate function for reschedulebatch builders.
type RescheduleBatch func(*sql.Selector)

// Room is the predicate function for room builders.
type Room func(*sql.Selector)

// Therapist is the predicate function for therapist builders.
type Therapist func(*sql.Selector)

// TherapySession is the predicate function for therapysession builders.
type TherapySession func(*sql.Selector)
