// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"context"
	"strings"

	"github.com/danielhkuo/school-admin/db"
)

func migrateCmd(ctx context.Context, env *Env, args []string) error {
	applied, err := db.Migrate(env.DB)
	if err != nil {
		return err
	}
	if env.JSON {
		if applied == nil {
			applied = []string{}
		}
		return JSONResponse(env, map[string][]string{"applied": applied})
	}
	if len(applied) == 0 {
		return message(env, "schema is up to date")
	}
	return message(env, "applied %s", strings.Join(applied, ", "))
}

func statusCmd(ctx context.Context, env *Env, args []string) error {
	migrations, err := db.Applied(env.DB)
	if err != nil {
		return err
	}
	return printMigrations(env, migrations)
}
