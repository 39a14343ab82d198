// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package commands contains the command-line handlers for school-admin.

# Routing

NewRouter maps "noun verb" command names to handlers. Run resolves the
command, brings the schema up to date when the command needs it, and calls
the handler wrapped in WithLogging:

	router := commands.NewRouter()
	env := commands.NewEnv(conn, os.Stdout, cfg.JSON)
	err := router.Run(ctx, env, cfg.Command, cfg.Args)

# Commands

	migrate, status
	teacher   add | list | get | update | delete
	classroom add | list | get | update | delete
	student   add | list [-ordered] | get | update | delete
	exam      add | list | get | update | delete | score
	project   add | list [-ordered] | get | update | delete
	roster    import | export

Update commands load the record and change only the flags given.

# Output

Results print as aligned text tables, or as JSON when Env.JSON is set.
Deletes report the classrooms and students removed by the cascade.

# Errors

Bad arguments wrap ErrUsage and unknown commands wrap ErrUnknownCommand.
Store errors (models.ErrNotFound, models.ErrReferentialIntegrity, ...)
are returned unchanged.
*/
package commands
