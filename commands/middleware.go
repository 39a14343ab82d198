// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

// WithLogging wraps a handler with command logging
func WithLogging(name string, next HandlerFunc) HandlerFunc {
	return func(ctx context.Context, env *Env, args []string) error {
		start := time.Now()

		slog.Debug("command started", "command", name, "args", args)

		err := next(ctx, env, args)

		duration := time.Since(start)
		if err != nil {
			slog.Debug("command failed", "command", name, "duration_ms", duration.Milliseconds(), "error", err)
			return err
		}
		slog.Debug("command completed", "command", name, "duration_ms", duration.Milliseconds())
		return nil
	}
}

// JSONResponse writes data as indented JSON
func JSONResponse(env *Env, data any) error {
	enc := json.NewEncoder(env.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
