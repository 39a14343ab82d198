// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"context"
	"flag"

	"github.com/danielhkuo/school-admin/models"
)

func evaluationFlags(fs *flag.FlagSet, e *models.Evaluation) {
	fs.StringVar(&e.Course, "course", "", "Course")
	fs.StringVar(&e.Evaluator, "evaluator", "", "Evaluator")
}

// applyEvaluation copies the evaluation flags that were set onto dst.
func applyEvaluation(dst *models.Evaluation, src models.Evaluation, set map[string]bool) {
	if set["course"] {
		dst.Course = src.Course
	}
	if set["evaluator"] {
		dst.Evaluator = src.Evaluator
	}
}

func parseExamFlags(name string, args []string) (models.ExamFinal, map[string]bool, error) {
	var e models.ExamFinal
	fs := newFlagSet(name)
	evaluationFlags(fs, &e.Evaluation)
	fs.IntVar(&e.ExamDuration, "duration", 0, "Exam duration")
	fs.IntVar(&e.Questions, "questions", 0, "Number of questions")
	fs.IntVar(&e.Score, "score", 0, "Score")
	set, err := parseFlags(fs, args)
	return e, set, err
}

func examAdd(ctx context.Context, env *Env, args []string) error {
	e, set, err := parseExamFlags("exam add", args)
	if err != nil {
		return err
	}
	if err := requireFlags(set, "course", "evaluator"); err != nil {
		return err
	}

	e, err = env.Store.ExamFinals.Create(ctx, e)
	if err != nil {
		return err
	}
	return printExams(env, []models.ExamFinal{e})
}

func examList(ctx context.Context, env *Env, args []string) error {
	exams, err := env.Store.ExamFinals.List(ctx)
	if err != nil {
		return err
	}
	return printExams(env, exams)
}

func examGet(ctx context.Context, env *Env, args []string) error {
	id, err := onlyID(args)
	if err != nil {
		return err
	}
	e, err := env.Store.ExamFinals.Get(ctx, id)
	if err != nil {
		return err
	}
	return printExams(env, []models.ExamFinal{e})
}

func examUpdate(ctx context.Context, env *Env, args []string) error {
	id, rest, err := splitID(args)
	if err != nil {
		return err
	}
	f, set, err := parseExamFlags("exam update", rest)
	if err != nil {
		return err
	}

	e, err := env.Store.ExamFinals.Get(ctx, id)
	if err != nil {
		return err
	}
	applyEvaluation(&e.Evaluation, f.Evaluation, set)
	if set["duration"] {
		e.ExamDuration = f.ExamDuration
	}
	if set["questions"] {
		e.Questions = f.Questions
	}
	if set["score"] {
		e.Score = f.Score
	}

	e, err = env.Store.ExamFinals.Update(ctx, e)
	if err != nil {
		return err
	}
	return printExams(env, []models.ExamFinal{e})
}

func examDelete(ctx context.Context, env *Env, args []string) error {
	id, err := onlyID(args)
	if err != nil {
		return err
	}
	if err := env.Store.ExamFinals.Delete(ctx, id); err != nil {
		return err
	}
	return printDeleted(env, deleteResult{Table: models.TableExamFinals, ID: id})
}

func examScore(ctx context.Context, env *Env, args []string) error {
	id, err := onlyID(args)
	if err != nil {
		return err
	}
	score, err := env.Store.ExamFinals.QuestionScore(ctx, id)
	if err != nil {
		return err
	}
	if env.JSON {
		return JSONResponse(env, map[string]any{"exam_id": id, "question_score": score})
	}
	return message(env, "%g", score)
}

func parseProjectFlags(name string, args []string) (models.Project, bool, map[string]bool, error) {
	var (
		p       models.Project
		ordered bool
	)
	fs := newFlagSet(name)
	evaluationFlags(fs, &p.Evaluation)
	fs.StringVar(&p.ProjectTheme, "theme", "", "Project theme")
	fs.IntVar(&p.GroupsNumbers, "groups", 0, "Number of groups")
	fs.BoolVar(&ordered, "ordered", false, "Order by theme")
	set, err := parseFlags(fs, args)
	return p, ordered, set, err
}

func projectAdd(ctx context.Context, env *Env, args []string) error {
	p, _, set, err := parseProjectFlags("project add", args)
	if err != nil {
		return err
	}
	if err := requireFlags(set, "course", "evaluator", "theme"); err != nil {
		return err
	}

	p, err = env.Store.Projects.Create(ctx, p)
	if err != nil {
		return err
	}
	return printProjects(env, []models.Project{p})
}

func projectList(ctx context.Context, env *Env, args []string) error {
	_, ordered, _, err := parseProjectFlags("project list", args)
	if err != nil {
		return err
	}

	var projects []models.Project
	if ordered {
		projects, err = env.Store.Projects.ListOrdered(ctx)
	} else {
		projects, err = env.Store.Projects.List(ctx)
	}
	if err != nil {
		return err
	}
	return printProjects(env, projects)
}

func projectGet(ctx context.Context, env *Env, args []string) error {
	id, err := onlyID(args)
	if err != nil {
		return err
	}
	p, err := env.Store.Projects.Get(ctx, id)
	if err != nil {
		return err
	}
	return printProjects(env, []models.Project{p})
}

func projectUpdate(ctx context.Context, env *Env, args []string) error {
	id, rest, err := splitID(args)
	if err != nil {
		return err
	}
	f, _, set, err := parseProjectFlags("project update", rest)
	if err != nil {
		return err
	}

	p, err := env.Store.Projects.Get(ctx, id)
	if err != nil {
		return err
	}
	applyEvaluation(&p.Evaluation, f.Evaluation, set)
	if set["theme"] {
		p.ProjectTheme = f.ProjectTheme
	}
	if set["groups"] {
		p.GroupsNumbers = f.GroupsNumbers
	}

	p, err = env.Store.Projects.Update(ctx, p)
	if err != nil {
		return err
	}
	return printProjects(env, []models.Project{p})
}

func projectDelete(ctx context.Context, env *Env, args []string) error {
	id, err := onlyID(args)
	if err != nil {
		return err
	}
	if err := env.Store.Projects.Delete(ctx, id); err != nil {
		return err
	}
	return printDeleted(env, deleteResult{Table: models.TableProjects, ID: id})
}
