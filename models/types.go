package models

import "time"

// Table names
const (
	TableTeachers   = "teachers"
	TableClassrooms = "classrooms"
	TableStudents   = "students"
	TableExamFinals = "exam_finals"
	TableProjects   = "projects"
)

// DefaultTeacherID is used when a classroom is created without a teacher
const DefaultTeacherID int64 = 1

// Field length limits (in characters)
const (
	MaxPersonNameLen    = 200
	MaxClassroomNameLen = 2
	MaxCourseLen        = 30
	MaxEvaluatorLen     = 50
	MaxProjectThemeLen  = 100
)

// Shared field sets

// Person holds the name fields shared by teachers and students.
type Person struct {
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
}

// FullName joins first and last name with a single space.
func (p Person) FullName() string {
	return FullName(p)
}

// Evaluation holds the fields shared by final exams and projects.
// Date is set by the store on every save.
type Evaluation struct {
	Date      time.Time `db:"date" json:"date"`
	Course    string    `db:"course" json:"course"`
	Evaluator string    `db:"evaluator" json:"evaluator"`
}

// Record types

type Teacher struct {
	ID int64 `db:"id" json:"id"`
	Person
	Salary float64 `db:"salary" json:"salary"`
}

type Classroom struct {
	ID        int64     `db:"id" json:"id"`
	TeacherID int64     `db:"idTeacher" json:"teacher_id"`
	Name      string    `db:"name" json:"name"`
	StartTime TimeOfDay `db:"start_time" json:"start_time"`
}

type Student struct {
	ID int64 `db:"id" json:"id"`
	Person
	ClassroomID int64 `db:"idClassroom" json:"classroom_id"`
}

type ExamFinal struct {
	ID int64 `db:"id" json:"id"`
	Evaluation
	ExamDuration int `db:"exam_duration" json:"exam_duration"`
	Questions    int `db:"questions" json:"questions"`
	Score        int `db:"score" json:"score"`
}

// QuestionScore is questions divided by score. See the package func.
func (e ExamFinal) QuestionScore() (float64, error) {
	return QuestionScore(e)
}

type Project struct {
	ID int64 `db:"id" json:"id"`
	Evaluation
	ProjectTheme  string `db:"project_theme" json:"project_theme"`
	GroupsNumbers int    `db:"groups_numbers" json:"groups_numbers"`
}

// Migration is one applied schema step as recorded in schema_migrations.
type Migration struct {
	Name      string    `db:"name" json:"name"`
	Batch     string    `db:"batch" json:"batch"`
	AppliedAt time.Time `db:"applied_at" json:"applied_at"`
}
