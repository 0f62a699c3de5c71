// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/datactx/internal/config"
	"github.com/staranto/datactx/internal/loader"
	"github.com/staranto/datactx/internal/meta"
	"github.com/staranto/datactx/internal/record"
)

// KeysCommandAction lists the configured datasets. With --count each one is
// loaded into the store and its record count reported.
func KeysCommandAction(ctx context.Context, cmd *cli.Command) error {
	datasets, err := config.GetStringMap("datasets")
	if err != nil {
		log.Debugf("no datasets configured: %v", err)
	}

	m := GetMeta(cmd)
	if m.Store == nil {
		return errors.New("command has no store")
	}

	rows := make([]record.Record, 0, len(datasets))
	for _, name := range config.SortedKeys(datasets) {
		row := record.Record{"dataset": name, "source": datasets[name]}

		if cmd.Bool("count") {
			_, src := ResolveDataset(name)
			records, err := loader.Into(ctx, m.Store, name, src, loader.Options{
				Profile: cmd.String("profile"),
				Region:  cmd.String("region"),
			})
			if err != nil {
				log.WithError(err).Warnf("failed to load %s", name)
				row["records"] = "error"
			} else {
				row["records"] = humanize.Comma(int64(len(records)))
			}
		}

		rows = append(rows, row)
	}

	return Emit(cmd, rows)
}

// KeysCommandBuilder constructs the cli.Command for "keys".
func KeysCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "keys",
		Usage:     "list configured datasets",
		UsageText: `datactx keys [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "count",
				Usage: "load each dataset and show its record count",
				Value: false,
			},
		}, NewGlobalFlags("keys", meta.Config.Source)...),
		Action: KeysCommandAction,
	}
}
