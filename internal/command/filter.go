// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/datactx/internal/filters"
	"github.com/staranto/datactx/internal/meta"
)

// FilterCommandAction prints every record matching --filter.
func FilterCommandAction(ctx context.Context, cmd *cli.Command) error {
	f, err := filters.BuildFilters(cmd.String("filter"))
	if err != nil {
		return err
	}

	key, _, err := LoadDataset(ctx, cmd)
	if err != nil {
		return err
	}

	matches := GetMeta(cmd).Store.FilterIn(key, f)
	log.Debugf("filter %s %v: %d matches", key, f.Keys(), len(matches))

	return Emit(cmd, matches)
}

// FilterCommandBuilder constructs the cli.Command for "filter".
func FilterCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "filter",
		Usage:     "print every record matching the filter",
		UsageText: `datactx filter DATASET --filter 'key=value,key@v1|v2' [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  append([]cli.Flag{NewFilterFlag()}, NewGlobalFlags("filter", meta.Config.Source)...),
		Action: FilterCommandAction,
	}
}
