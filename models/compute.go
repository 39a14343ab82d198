// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// FullName returns first name, a space, then last name. Empty parts are
// kept as-is, so an empty last name leaves a trailing space.
func FullName(p Person) string {
	return p.FirstName + " " + p.LastName
}

// QuestionScore returns questions / score for a final exam.
// A zero score returns ErrInvalidScore.
func QuestionScore(e ExamFinal) (float64, error) {
	if e.Score == 0 {
		return 0, ErrInvalidScore
	}
	return float64(e.Questions) / float64(e.Score), nil
}
