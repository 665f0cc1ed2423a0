// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewGlobalFlags returns the flags every subcommand carries. params[0] is the
// command name and params[1] the config file. When both are present --scope
// also reads "<command>.scope" and "scope" from the config file.
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	scope := &cli.StringFlag{
		Name:  "scope",
		Usage: "store scope to use",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("VARDIFF_SCOPE"),
		),
	}

	if len(params) == 2 && params[1] != "" {
		scope = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], scope)
	}

	flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "dir",
			Usage: "directory naming the store scope, as dir[::scope]. Overrides --scope",
		},
		scope,
	}

	return
}

// newColorFlag constructs the --color flag shared by diff and list.
func newColorFlag(params ...string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "colorize output: auto, always or never",
		Value:   "auto",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("VARDIFF_COLOR"),
		),
		Validator: func(value string) error {
			return FlagValidators(value, ColorValidator)
		},
	}

	if len(params) == 2 && params[1] != "" {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return flag
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
