// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidScore         = errors.New("invalid score: score must not be zero")
	ErrNotFound             = errors.New("record not found")
	ErrReferentialIntegrity = errors.New("referential integrity violation")
	ErrInvalidTimeOfDay     = errors.New("invalid time of day")
	ErrValidation           = errors.New("validation failed")
)

// ReferentialIntegrityError reports a child row pointing at a parent that
// does not exist.
type ReferentialIntegrityError struct {
	Table  string // child table
	Column string // foreign key column
	Ref    int64  // referenced parent id, 0 when unknown
}

func (e *ReferentialIntegrityError) Error() string {
	if e.Ref == 0 {
		return fmt.Sprintf("%s.%s references a missing row", e.Table, e.Column)
	}
	return fmt.Sprintf("%s.%s references missing row %d", e.Table, e.Column, e.Ref)
}

func (e *ReferentialIntegrityError) Unwrap() error { return ErrReferentialIntegrity }

// ValidationError reports a field that breaks a length or range constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
