// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/school-admin/models"
)

// ExamFinalStore persists final exams. The exam date is stamped on every
// Create and Update.
type ExamFinalStore struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewExamFinalStore(db *sqlx.DB) *ExamFinalStore {
	return &ExamFinalStore{db: db, now: utcNow}
}

func (s *ExamFinalStore) Create(ctx context.Context, e models.ExamFinal) (models.ExamFinal, error) {
	if err := e.Validate(); err != nil {
		return models.ExamFinal{}, err
	}
	e.Date = s.now()

	err := s.db.QueryRowxContext(ctx, s.db.Rebind(`
		INSERT INTO exam_finals (date, course, evaluator, exam_duration, questions, score)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`), e.Date, e.Course, e.Evaluator, e.ExamDuration, e.Questions, e.Score).Scan(&e.ID)
	if err != nil {
		return models.ExamFinal{}, fmt.Errorf("failed to insert exam: %w", err)
	}

	slog.Info("exam created", "exam_id", e.ID, "course", e.Course)
	return e, nil
}

func (s *ExamFinalStore) Get(ctx context.Context, id int64) (models.ExamFinal, error) {
	var e models.ExamFinal
	err := s.db.GetContext(ctx, &e, s.db.Rebind(ExamFinals.Query("id = ?")), id)
	if err != nil {
		return models.ExamFinal{}, notFound(err, models.TableExamFinals, id)
	}
	return e, nil
}

func (s *ExamFinalStore) List(ctx context.Context) ([]models.ExamFinal, error) {
	exams := []models.ExamFinal{}
	if err := s.db.SelectContext(ctx, &exams, ExamFinals.Query("")); err != nil {
		return nil, fmt.Errorf("failed to list exams: %w", err)
	}
	return exams, nil
}

// Update overwrites the exam with id e.ID and returns it with the new date.
func (s *ExamFinalStore) Update(ctx context.Context, e models.ExamFinal) (models.ExamFinal, error) {
	if err := e.Validate(); err != nil {
		return models.ExamFinal{}, err
	}
	e.Date = s.now()

	res, err := s.db.ExecContext(ctx, s.db.Rebind(`
		UPDATE exam_finals
		SET date = ?, course = ?, evaluator = ?, exam_duration = ?, questions = ?, score = ?
		WHERE id = ?
	`), e.Date, e.Course, e.Evaluator, e.ExamDuration, e.Questions, e.Score, e.ID)
	if err != nil {
		return models.ExamFinal{}, fmt.Errorf("failed to update exam: %w", err)
	}
	if err := checkAffected(res, models.TableExamFinals, e.ID); err != nil {
		return models.ExamFinal{}, err
	}

	slog.Info("exam updated", "exam_id", e.ID)
	return e, nil
}

func (s *ExamFinalStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind("DELETE FROM exam_finals WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("failed to delete exam: %w", err)
	}
	if err := checkAffected(res, models.TableExamFinals, id); err != nil {
		return err
	}

	slog.Info("exam deleted", "exam_id", id)
	return nil
}

// QuestionScore loads the exam and returns questions / score.
func (s *ExamFinalStore) QuestionScore(ctx context.Context, id int64) (float64, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return e.QuestionScore()
}

// ProjectStore persists projects. The project date is stamped on every
// Create and Update.
type ProjectStore struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewProjectStore(db *sqlx.DB) *ProjectStore {
	return &ProjectStore{db: db, now: utcNow}
}

func (s *ProjectStore) Create(ctx context.Context, p models.Project) (models.Project, error) {
	if err := p.Validate(); err != nil {
		return models.Project{}, err
	}
	p.Date = s.now()

	err := s.db.QueryRowxContext(ctx, s.db.Rebind(`
		INSERT INTO projects (date, course, evaluator, project_theme, groups_numbers)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`), p.Date, p.Course, p.Evaluator, p.ProjectTheme, p.GroupsNumbers).Scan(&p.ID)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to insert project: %w", err)
	}

	slog.Info("project created", "project_id", p.ID, "theme", p.ProjectTheme)
	return p, nil
}

func (s *ProjectStore) Get(ctx context.Context, id int64) (models.Project, error) {
	var p models.Project
	err := s.db.GetContext(ctx, &p, s.db.Rebind(Projects.Query("id = ?")), id)
	if err != nil {
		return models.Project{}, notFound(err, models.TableProjects, id)
	}
	return p, nil
}

func (s *ProjectStore) List(ctx context.Context) ([]models.Project, error) {
	return s.list(ctx, Projects)
}

// ListOrdered returns projects sorted by theme, ties in insertion order.
func (s *ProjectStore) ListOrdered(ctx context.Context) ([]models.Project, error) {
	return s.list(ctx, ProjectProxy)
}

func (s *ProjectStore) list(ctx context.Context, v View) ([]models.Project, error) {
	projects := []models.Project{}
	if err := s.db.SelectContext(ctx, &projects, v.Query("")); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectStore) Update(ctx context.Context, p models.Project) (models.Project, error) {
	if err := p.Validate(); err != nil {
		return models.Project{}, err
	}
	p.Date = s.now()

	res, err := s.db.ExecContext(ctx, s.db.Rebind(`
		UPDATE projects
		SET date = ?, course = ?, evaluator = ?, project_theme = ?, groups_numbers = ?
		WHERE id = ?
	`), p.Date, p.Course, p.Evaluator, p.ProjectTheme, p.GroupsNumbers, p.ID)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to update project: %w", err)
	}
	if err := checkAffected(res, models.TableProjects, p.ID); err != nil {
		return models.Project{}, err
	}

	slog.Info("project updated", "project_id", p.ID)
	return p, nil
}

func (s *ProjectStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind("DELETE FROM projects WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if err := checkAffected(res, models.TableProjects, id); err != nil {
		return err
	}

	slog.Info("project deleted", "project_id", id)
	return nil
}
