// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
)

var ErrUsage = errors.New("invalid arguments")

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseFlags parses fs and returns the names of the flags that were set.
func parseFlags(fs *flag.FlagSet, args []string) (map[string]bool, error) {
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set, nil
}

// requireFlags fails when one of the named flags was not given.
func requireFlags(set map[string]bool, names ...string) error {
	for _, n := range names {
		if !set[n] {
			return fmt.Errorf("%w: -%s is required", ErrUsage, n)
		}
	}
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", ErrUsage, s)
	}
	return id, nil
}

// splitID takes the leading ID argument and returns the rest.
func splitID(args []string) (int64, []string, error) {
	if len(args) == 0 {
		return 0, nil, fmt.Errorf("%w: id required", ErrUsage)
	}
	id, err := parseID(args[0])
	if err != nil {
		return 0, nil, err
	}
	return id, args[1:], nil
}

// onlyID parses an argument list that must be exactly one ID.
func onlyID(args []string) (int64, error) {
	id, rest, err := splitID(args)
	if err != nil {
		return 0, err
	}
	if len(rest) > 0 {
		return 0, fmt.Errorf("%w: unexpected arguments %v", ErrUsage, rest)
	}
	return id, nil
}
