// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BusinessProfile is the predicate function for businessprofile builders.
type BusinessProfile func(*sql.Selector)

// Grammar is the predicate function for grammar builders.
type Grammar func(*sql.Selector)

// GrammarTopic is the predicate function for grammartopic builders.
type GrammarTopic func(*sql.Selector)

// Lesson is the predicate function for lesson builders.
type Lesson func(*sql.Selector)

// Module is the predicate function for module builders.
type Module func(*sql.Selector)

// Pack is the predicate function for pack builders.
type Pack func(*sql.Selector)

// Progress is the predicate function for progress builders.
type Progress func(*sql.Selector)

// Subscription is the predicate function for subscription builders.
type Subscription func(*sql.Selector)

// Translation is the predicate function for translation builders.
type Translation func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// Word is the predicate function for word builders.
type Word func(*sql.Selector)
