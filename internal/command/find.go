// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/datactx/internal/filters"
	"github.com/staranto/datactx/internal/meta"
	"github.com/staranto/datactx/internal/record"
)

// FindCommandAction prints the first record matching --filter, or nothing.
func FindCommandAction(ctx context.Context, cmd *cli.Command) error {
	f, err := filters.BuildFilters(cmd.String("filter"))
	if err != nil {
		return err
	}

	key, _, err := LoadDataset(ctx, cmd)
	if err != nil {
		return err
	}

	found := []record.Record{}
	if r := GetMeta(cmd).Store.FindIn(key, f); r != nil {
		found = append(found, r)
	}
	log.Debugf("find %s %v: %d match", key, f.Keys(), len(found))

	return Emit(cmd, found)
}

// FindCommandBuilder constructs the cli.Command for "find".
func FindCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "find",
		Usage:     "print the first record matching the filter",
		UsageText: `datactx find DATASET --filter 'key=value,key@v1|v2' [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  append([]cli.Flag{NewFilterFlag()}, NewGlobalFlags("find", meta.Config.Source)...),
		Action: FindCommandAction,
	}
}
