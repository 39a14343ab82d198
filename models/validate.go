// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"
	"math"
	"unicode/utf8"
)

func maxLen(field, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be at most %d characters", limit)}
	}
	return nil
}

// nonNegative rejects NaN and infinities as well as negative values.
func nonNegative(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return &ValidationError{Field: field, Reason: "must be a finite number"}
	}
	if value < 0 {
		return &ValidationError{Field: field, Reason: "must not be negative"}
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Validate checks name lengths
func (p Person) Validate() error {
	return firstErr(
		maxLen("first_name", p.FirstName, MaxPersonNameLen),
		maxLen("last_name", p.LastName, MaxPersonNameLen),
	)
}

func (e Evaluation) Validate() error {
	return firstErr(
		maxLen("course", e.Course, MaxCourseLen),
		maxLen("evaluator", e.Evaluator, MaxEvaluatorLen),
	)
}

func (t Teacher) Validate() error {
	return firstErr(
		t.Person.Validate(),
		nonNegative("salary", t.Salary),
	)
}

func (c Classroom) Validate() error {
	if !c.StartTime.Valid() {
		return &ValidationError{Field: "start_time", Reason: "must be a valid time of day"}
	}
	return maxLen("name", c.Name, MaxClassroomNameLen)
}

func (s Student) Validate() error {
	return s.Person.Validate()
}

func (e ExamFinal) Validate() error {
	return firstErr(
		e.Evaluation.Validate(),
		nonNegative("exam_duration", float64(e.ExamDuration)),
		nonNegative("questions", float64(e.Questions)),
		nonNegative("score", float64(e.Score)),
	)
}

func (p Project) Validate() error {
	return firstErr(
		p.Evaluation.Validate(),
		maxLen("project_theme", p.ProjectTheme, MaxProjectThemeLen),
		nonNegative("groups_numbers", float64(p.GroupsNumbers)),
	)
}
