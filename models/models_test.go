// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

func TestFullName(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		last     string
		expected string
	}{
		{"both names", "Ada", "Lovelace", "Ada Lovelace"},
		{"empty last name keeps space", "Ada", "", "Ada "},
		{"empty first name keeps space", "", "Lovelace", " Lovelace"},
		{"both empty", "", "", " "},
		{"inner spaces untouched", "Mary Ann", "de la Cruz", "Mary Ann de la Cruz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Person{FirstName: tt.first, LastName: tt.last}
			if got := FullName(p); got != tt.expected {
				t.Errorf("FullName() = %q, expected %q", got, tt.expected)
			}
			if got := p.FullName(); got != tt.expected {
				t.Errorf("Person.FullName() = %q, expected %q", got, tt.expected)
			}
		})
	}

	teacher := Teacher{Person: Person{FirstName: "Grace", LastName: "Hopper"}}
	if got := teacher.FullName(); got != "Grace Hopper" {
		t.Errorf("Teacher.FullName() = %q", got)
	}
}

func TestQuestionScore(t *testing.T) {
	tests := []struct {
		name      string
		questions int
		score     int
		expected  float64
		wantErr   error
	}{
		{"even division", 9, 3, 3, nil},
		{"fractional", 10, 4, 2.5, nil},
		{"zero questions", 0, 5, 0, nil},
		{"zero score", 10, 0, 0, ErrInvalidScore},
		{"zero both", 0, 0, 0, ErrInvalidScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exam := ExamFinal{Questions: tt.questions, Score: tt.score}
			got, err := QuestionScore(exam)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if math.IsInf(got, 0) || math.IsNaN(got) {
				t.Fatalf("QuestionScore returned non-finite value %v", got)
			}
			if got != tt.expected {
				t.Errorf("QuestionScore() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	long := func(n int) string { return strings.Repeat("x", n) }
	start := TimeOfDay{Hour: 8}

	tests := []struct {
		name      string
		record    interface{ Validate() error }
		wantField string
	}{
		{"teacher ok", Teacher{Person: Person{FirstName: "A", LastName: "B"}, Salary: 0}, ""},
		{"teacher name limit", Teacher{Person: Person{FirstName: long(200)}}, ""},
		{"teacher first name too long", Teacher{Person: Person{FirstName: long(201)}}, "first_name"},
		{"teacher last name too long", Teacher{Person: Person{LastName: long(201)}}, "last_name"},
		{"teacher negative salary", Teacher{Salary: -1}, "salary"},
		{"teacher NaN salary", Teacher{Salary: math.NaN()}, "salary"},
		{"teacher infinite salary", Teacher{Salary: math.Inf(1)}, "salary"},
		{"teacher negative infinite salary", Teacher{Salary: math.Inf(-1)}, "salary"},
		{"classroom ok", Classroom{Name: "1A", StartTime: start}, ""},
		{"classroom name too long", Classroom{Name: "1AB", StartTime: start}, "name"},
		{"classroom multibyte name", Classroom{Name: "ñé", StartTime: start}, ""},
		{"classroom bad time", Classroom{Name: "1A", StartTime: TimeOfDay{Hour: 25}}, "start_time"},
		{"student too long", Student{Person: Person{LastName: long(201)}}, "last_name"},
		{"exam ok", ExamFinal{Evaluation: Evaluation{Course: long(30), Evaluator: long(50)}}, ""},
		{"exam course too long", ExamFinal{Evaluation: Evaluation{Course: long(31)}}, "course"},
		{"exam evaluator too long", ExamFinal{Evaluation: Evaluation{Evaluator: long(51)}}, "evaluator"},
		{"exam negative score", ExamFinal{Score: -2}, "score"},
		{"project ok", Project{ProjectTheme: long(100)}, ""},
		{"project theme too long", Project{ProjectTheme: long(101)}, "project_theme"},
		{"project negative groups", Project{GroupsNumbers: -1}, "groups_numbers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, verr.Field)
			}
			if !errors.Is(err, ErrValidation) {
				t.Error("ValidationError should unwrap to ErrValidation")
			}
		})
	}
}

func TestReferentialIntegrityError(t *testing.T) {
	err := error(&ReferentialIntegrityError{Table: TableClassrooms, Column: "idTeacher", Ref: 1})

	if !errors.Is(err, ErrReferentialIntegrity) {
		t.Error("expected errors.Is to match ErrReferentialIntegrity")
	}
	if !strings.Contains(err.Error(), "classrooms.idTeacher") {
		t.Errorf("unexpected message: %s", err)
	}
}

func TestTimeOfDay(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"08:30", "08:30:00", false},
		{"08:30:15", "08:30:15", false},
		{"23:59:59", "23:59:59", false},
		{"24:00", "", true},
		{"8h30", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTimeOfDay) {
					t.Fatalf("expected ErrInvalidTimeOfDay, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got.String() != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestTimeOfDay_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  any
	}{
		{"string", "07:45:00"},
		{"bytes", []byte("07:45:00")},
		{"time", time.Date(0, 1, 1, 7, 45, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tod TimeOfDay
			if err := tod.Scan(tt.src); err != nil {
				t.Fatal(err)
			}
			if tod != (TimeOfDay{Hour: 7, Minute: 45}) {
				t.Errorf("unexpected value %v", tod)
			}
		})
	}

	var tod TimeOfDay
	if err := tod.Scan(42); err == nil {
		t.Error("expected error scanning an int")
	}
}

func TestClassroomJSON(t *testing.T) {
	c := Classroom{ID: 3, TeacherID: 1, Name: "2B", StartTime: TimeOfDay{Hour: 9, Minute: 15}}

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatal(err)
	}
	if fields["start_time"] != "09:15:00" {
		t.Errorf("expected start_time 09:15:00, got %v", fields["start_time"])
	}
	if fields["teacher_id"] != float64(1) {
		t.Errorf("expected teacher_id 1, got %v", fields["teacher_id"])
	}
}
