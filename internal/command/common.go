// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/datactx/internal/config"
	"github.com/staranto/datactx/internal/loader"
	"github.com/staranto/datactx/internal/meta"
	"github.com/staranto/datactx/internal/output"
	"github.com/staranto/datactx/internal/record"
)

// stdout is where command results go. Tests swap it for a buffer.
var stdout io.Writer = os.Stdout

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// ResolveDataset maps a dataset argument to its store key and source. A name
// listed under datasets in the config resolves to the configured source,
// with relative paths taken from the config file's directory. Anything else
// is taken as a path or s3 URL and used as its own key.
func ResolveDataset(name string) (key string, src string) {
	datasets, _ := config.GetStringMap("datasets")
	if s, ok := datasets[name]; ok {
		if !strings.HasPrefix(s, "s3://") && !filepath.IsAbs(s) && config.Config.Source != "" {
			s = filepath.Join(filepath.Dir(config.Config.Source), s)
		}
		return name, s
	}
	return name, name
}

// LoadDataset loads the dataset named by the first argument into the shared
// store and returns its key and records.
func LoadDataset(ctx context.Context, cmd *cli.Command) (string, []record.Record, error) {
	name := cmd.Args().First()
	if name == "" {
		return "", nil, errors.New("dataset argument is required")
	}

	m := GetMeta(cmd)
	if m.Store == nil {
		return "", nil, errors.New("command has no store")
	}

	key, src := ResolveDataset(name)
	log.Debugf("dataset %s -> %s", key, src)

	records, err := loader.Into(ctx, m.Store, key, src, loader.Options{
		Profile: cmd.String("profile"),
		Region:  cmd.String("region"),
	})
	if err != nil {
		return "", nil, err
	}
	return key, records, nil
}

// Emit sorts and renders records per the common flags.
func Emit(cmd *cli.Command, records []record.Record) error {
	output.SortDataset(records, cmd.String("sort"))

	return output.Emit(stdout, records, splitAttrs(cmd.String("attrs")), output.Options{
		Format: cmd.String("output"),
		Titles: cmd.Bool("titles"),
		Color:  cmd.Bool("color"),
	})
}

func splitAttrs(spec string) []string {
	var attrs []string
	for _, a := range strings.Split(spec, ",") {
		if a = strings.TrimSpace(a); a != "" {
			attrs = append(attrs, a)
		}
	}
	return attrs
}
