// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/school-admin/db"
	"github.com/danielhkuo/school-admin/store"
)

var ErrUnknownCommand = errors.New("unknown command")

// Env carries the dependencies every command needs.
type Env struct {
	DB    *sqlx.DB
	Store *store.Store
	Out   io.Writer
	JSON  bool
}

func NewEnv(conn *sqlx.DB, out io.Writer, jsonOut bool) *Env {
	return &Env{DB: conn, Store: store.New(conn), Out: out, JSON: jsonOut}
}

// HandlerFunc runs one command with its remaining arguments.
type HandlerFunc func(ctx context.Context, env *Env, args []string) error

type route struct {
	handler HandlerFunc
	usage   string
	// migrate brings the schema up to date before the handler runs
	migrate bool
}

// Router maps "noun verb" command names to handlers.
type Router struct {
	routes map[string]route
}

func NewRouter() *Router {
	r := &Router{routes: map[string]route{}}

	// Schema
	r.handle("migrate", "", migrateCmd, false)
	r.handle("status", "", statusCmd, false)

	// Teachers
	r.handle("teacher add", "-first NAME -last NAME [-salary N]", teacherAdd, true)
	r.handle("teacher list", "", teacherList, true)
	r.handle("teacher get", "ID", teacherGet, true)
	r.handle("teacher update", "ID [-first NAME] [-last NAME] [-salary N]", teacherUpdate, true)
	r.handle("teacher delete", "ID", teacherDelete, true)

	// Classrooms
	r.handle("classroom add", "-name XX -start HH:MM[:SS] [-teacher ID]", classroomAdd, true)
	r.handle("classroom list", "[-teacher ID]", classroomList, true)
	r.handle("classroom get", "ID", classroomGet, true)
	r.handle("classroom update", "ID [-name XX] [-start HH:MM] [-teacher ID]", classroomUpdate, true)
	r.handle("classroom delete", "ID", classroomDelete, true)

	// Students
	r.handle("student add", "-first NAME -last NAME -classroom ID", studentAdd, true)
	r.handle("student list", "[-ordered] [-classroom ID]", studentList, true)
	r.handle("student get", "ID", studentGet, true)
	r.handle("student update", "ID [-first NAME] [-last NAME] [-classroom ID]", studentUpdate, true)
	r.handle("student delete", "ID", studentDelete, true)

	// Final exams
	r.handle("exam add", "-course C -evaluator E [-duration N] [-questions N] [-score N]", examAdd, true)
	r.handle("exam list", "", examList, true)
	r.handle("exam get", "ID", examGet, true)
	r.handle("exam update", "ID [-course C] [-evaluator E] [-duration N] [-questions N] [-score N]", examUpdate, true)
	r.handle("exam delete", "ID", examDelete, true)
	r.handle("exam score", "ID", examScore, true)

	// Projects
	r.handle("project add", "-course C -evaluator E -theme T [-groups N]", projectAdd, true)
	r.handle("project list", "[-ordered]", projectList, true)
	r.handle("project get", "ID", projectGet, true)
	r.handle("project update", "ID [-course C] [-evaluator E] [-theme T] [-groups N]", projectUpdate, true)
	r.handle("project delete", "ID", projectDelete, true)

	// Rosters
	r.handle("roster import", "-classroom ID FILE.xlsx", rosterImport, true)
	r.handle("roster export", "[-classroom ID] FILE.xlsx", rosterExport, true)

	return r
}

func (r *Router) handle(name, usage string, h HandlerFunc, migrate bool) {
	r.routes[name] = route{handler: WithLogging(name, h), usage: usage, migrate: migrate}
}

// resolve finds the route for a command and returns the arguments left
// for its handler.
func (r *Router) resolve(command string, args []string) (string, route, []string, error) {
	if rt, ok := r.routes[command]; ok {
		return command, rt, args, nil
	}
	if len(args) > 0 {
		name := command + " " + args[0]
		if rt, ok := r.routes[name]; ok {
			return name, rt, args[1:], nil
		}
	}
	return "", route{}, nil, fmt.Errorf("%w: %s", ErrUnknownCommand, strings.TrimSpace(command+" "+strings.Join(args, " ")))
}

// Run dispatches a command.
func (r *Router) Run(ctx context.Context, env *Env, command string, args []string) error {
	_, rt, rest, err := r.resolve(command, args)
	if err != nil {
		return err
	}

	if rt.migrate {
		if _, err := db.Migrate(env.DB); err != nil {
			return err
		}
	}

	return rt.handler(ctx, env, rest)
}

// Usage lists every command with its arguments.
func (r *Router) Usage() string {
	names := make([]string, 0, len(r.routes))
	for name := range r.routes {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("usage: school-admin [-d URL] [-t sqlite|postgres] [-env FILE] [-json] [-v] <command>\n\ncommands:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %s %s\n", name, r.routes[name].usage)
	}
	return b.String()
}
