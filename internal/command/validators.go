// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/vardiff/internal/output"
	"github.com/tfctl/vardiff/internal/util"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// GlobalFlagsValidator checks the --dir spec before any store is opened.
func GlobalFlagsValidator(_ context.Context, c *cli.Command) error {
	if dir := c.String("dir"); dir != "" {
		if _, _, err := util.ParseScopeDir(dir); err != nil {
			return fmt.Errorf("invalid --dir %q: %w", dir, err)
		}
	}
	return nil
}

func OutputValidator(value any) error {
	s, _ := value.(string)
	if !slices.Contains(output.Formats, s) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

func ColorValidator(value any) error {
	valid := []string{"auto", "always", "never"}
	s, _ := value.(string)
	if !slices.Contains(valid, s) {
		return fmt.Errorf("must be one of %v", valid)
	}
	return nil
}
