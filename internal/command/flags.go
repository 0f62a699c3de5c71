// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewGlobalFlags returns the flags shared by every dataset command. ns is the
// command name and also the config namespace searched before the bare key.
// path is the config file backing the flag values.
func NewGlobalFlags(ns string, path string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "comma-separated list of fields to include in results",
		},
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"color", altsrc.StringSourcer(path)),
				yaml.YAML("color", altsrc.StringSourcer(path)),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format (text, json, yaml)",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"output", altsrc.StringSourcer(path)),
				yaml.YAML("output", altsrc.StringSourcer(path)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of fields to sort the results by",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"sort", altsrc.StringSourcer(path)),
			),
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"titles", altsrc.StringSourcer(path)),
				yaml.YAML("titles", altsrc.StringSourcer(path)),
			),
			Value: false,
		},
		NewProfileFlag(path),
		NewRegionFlag(path),
	}

	return
}

// NewFilterFlag constructs the --filter flag used by find and filter.
func NewFilterFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "filter",
		Aliases: []string{"f"},
		Usage:   "conditions: key=value for equality, key@v1|v2 for membership, comma-separated",
		Validator: func(value string) error {
			return FlagValidators(value, JammedFlagValidator)
		},
	}
}

// NewProfileFlag constructs the AWS --profile flag for s3:// datasets.
func NewProfileFlag(path string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "profile",
		Usage: "AWS profile used for s3:// datasets",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("DATACTX_AWS_PROFILE"),
			yaml.YAML("aws.profile", altsrc.StringSourcer(path)),
		),
	}
}

// NewRegionFlag constructs the AWS --region flag for s3:// datasets.
func NewRegionFlag(path string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "region",
		Usage: "AWS region used for s3:// datasets",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("DATACTX_AWS_REGION"),
			yaml.YAML("aws.region", altsrc.StringSourcer(path)),
		),
	}
}
