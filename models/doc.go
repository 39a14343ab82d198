// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the school records and their derived values.

# Shared Field Sets

Two field sets are embedded by value and own no table:

  - Person: first_name, last_name (teachers, students)
  - Evaluation: date, course, evaluator (final exams, projects)

# Record Types

  - Teacher: Person + salary
  - Classroom: name, start_time, teacher (idTeacher, default 1)
  - Student: Person + classroom (idClassroom)
  - ExamFinal: Evaluation + exam_duration, questions, score
  - Project: Evaluation + project_theme, groups_numbers

# Derived Values

	models.FullName(p)       // first_name + " " + last_name
	models.QuestionScore(e)  // questions / score, ErrInvalidScore when score is 0

# Errors

  - ErrInvalidScore: question score requested for a zero score
  - ErrNotFound: no row with the requested id
  - ErrReferentialIntegrity: wrapped by *ReferentialIntegrityError
  - ErrValidation: wrapped by *ValidationError

Use errors.Is for the sentinels and errors.As for the typed errors.
*/
package models
