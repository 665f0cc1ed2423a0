// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tfctl/vardiff/internal/command"
	"github.com/tfctl/vardiff/internal/config"
	"github.com/tfctl/vardiff/internal/log"
	"github.com/tfctl/vardiff/internal/storage"
	"github.com/tfctl/vardiff/internal/version"
)

// envFile is read from the starting directory when present.
const envFile = ".vardiff.env"

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// loadEnvFile applies the VARDIFF_* keys of path that are not already set in
// the environment. A missing file is not an error.
func loadEnvFile(path string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	for k, v := range env {
		if !strings.HasPrefix(k, "VARDIFF_") {
			continue
		}
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}
	return nil
}

// expandArgSet replaces an "@set" argument with the entries of the
// "<command>.<set>" config list. Without an @set argument the "defaults" set
// is injected right after the command name.
func expandArgSet(args []string) []string {
	if len(args) < 2 || strings.HasPrefix(args[1], "-") {
		return args
	}

	set := "defaults"
	insertIdx := 2
	for i := 2; i < len(args); i++ {
		if strings.HasPrefix(args[i], "@") && len(args[i]) > 1 {
			set = args[i][1:]
			insertIdx = i
			args = append(args[:i:i], args[i+1:]...)
			break
		}
	}

	entries, _ := config.GetStringSlice(args[1] + "." + set)
	log.Debugf("arg set %s.%s: %v", args[1], set, entries)
	return injectConfigSet(args, entries, insertIdx)
}

// injectConfigSet splits entries into words and inserts them at insertIdx.
func injectConfigSet(args []string, entries []string, insertIdx int) []string {
	if len(entries) == 0 {
		return args
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, strings.Fields(entry)...)
	}

	out := make([]string, 0, len(args)+len(expanded))
	out = append(out, args[:insertIdx]...)
	out = append(out, expanded...)
	return append(out, args[insertIdx:]...)
}

// deduplicateFlags drops all but the last occurrence of each repeated flag so
// that values injected from config sets can be overridden on the command line.
// A flag takes the following argument as its value unless it uses "=" or the
// next argument is itself a flag. Arguments after "--" are left alone.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return args
	}

	type span struct {
		key   string
		start int
		end   int
	}

	var spans []span
	end := len(args)
	for i := 2; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			end = i
			break
		}
		if !strings.HasPrefix(a, "-") || a == "-" {
			continue
		}

		key, _, hasValue := strings.Cut(a, "=")
		s := span{key: key, start: i, end: i + 1}
		if !hasValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			s.end = i + 2
			i++
		}
		spans = append(spans, s)
	}

	last := map[string]int{}
	for i, s := range spans {
		last[s.key] = i
	}

	drop := map[int]bool{}
	for i, s := range spans {
		if last[s.key] != i {
			for j := s.start; j < s.end; j++ {
				drop[j] = true
			}
		}
	}

	out := make([]string, 0, len(args))
	for i, a := range args {
		if i < end && drop[i] {
			continue
		}
		out = append(out, a)
	}
	return out
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	if _, ok, err := storage.EnsureBaseDir(); err != nil && ok {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("store dir ensure err: err=%v", err)
	}

	hours, _ := config.GetInt("store.clean", 24) //nolint:mnd
	if err := storage.Purge(hours); err != nil {
		log.Debugf("scratch purge err: err=%v", err)
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	envErr := loadEnvFile(envFile)

	log.InitLogger()
	if envErr != nil {
		log.WithError(envErr).Warnf("ignoring %s", envFile)
	}

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip arg processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = deduplicateFlags(expandArgSet(args))
		log.Debugf("args after set processing: args=%v", args)
	}

	return initAndRunApp(args)
}
