// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"sort"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/datactx/internal/config"
	"github.com/staranto/datactx/internal/meta"
	"github.com/staranto/datactx/internal/store"
)

// InitApp builds the root command. Every subcommand shares one store so a
// dataset is loaded at most once per process.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	cfg, err := config.Load()
	if err != nil {
		log.Debugf("no config: %v", err)
	}

	meta := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
		Store:   store.New(),
	}

	app := &cli.Command{
		Name:  "datactx",
		Usage: "query cached record datasets",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "datactx version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		GetCommandBuilder(app, meta),
		FindCommandBuilder(app, meta),
		FilterCommandBuilder(app, meta),
		KeysCommandBuilder(app, meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
