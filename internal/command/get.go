// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/datactx/internal/meta"
	"github.com/staranto/datactx/internal/record"
)

// GetCommandAction prints every record of a dataset.
func GetCommandAction(ctx context.Context, cmd *cli.Command) error {
	key, records, err := LoadDataset(ctx, cmd)
	if err != nil {
		return err
	}
	log.Debugf("get %s: %d records", key, len(records))

	// Sorting happens in place; keep the cached collection in load order.
	out := make([]record.Record, len(records))
	copy(out, records)
	return Emit(cmd, out)
}

// GetCommandBuilder constructs the cli.Command for "get".
func GetCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "print all records of a dataset",
		UsageText: `datactx get DATASET [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  NewGlobalFlags("get", meta.Config.Source),
		Action: GetCommandAction,
	}
}
