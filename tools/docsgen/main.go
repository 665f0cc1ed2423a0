// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command docsgen writes one markdown page per vardiff subcommand. Usage and
// flags come from the live command tree; examples and notes come from the
// optional <docs>/templates/vardiff.yaml.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/vardiff/internal/command"
)

type Extras struct {
	Subcommands map[string]Extra `yaml:"subcommands"`
}

type Extra struct {
	Description string    `yaml:"description"`
	Examples    []Example `yaml:"examples"`
	Notes       []string  `yaml:"notes,omitempty"`
}

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type Flag struct {
	Syntax      string
	Description string
	Default     string
}

type TemplateData struct {
	Extra
	ID      string
	IDUpper string
	Short   string
	Usage   string
	Flags   []Flag
	Date    string
	Version string
}

const page = `# vardiff {{.ID}}

{{.Short}}

Generated {{.Date}} for version {{.Version}}.

## Usage

    {{.Usage}}
{{if .Description}}
{{.Description}}
{{end}}
## Flags
{{range .Flags}}
- ` + "`{{.Syntax}}`" + ` {{.Description}}{{if .Default}} (default {{.Default}}){{end}}
{{- end}}
{{if .Examples}}
## Examples
{{range .Examples}}
{{.Description}}

    {{.Command}}
{{end}}{{end}}{{if .Notes}}
## Notes
{{range .Notes}}
- {{.}}
{{- end}}
{{end}}`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen <docs dir>")
		os.Exit(1)
	}
	docs := os.Args[1]

	var extras Extras
	if data, err := os.ReadFile(filepath.Join(docs, "templates", "vardiff.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &extras); err != nil {
			panic(err)
		}
	}

	app, err := command.InitApp(context.Background(), []string{"vardiff"})
	if err != nil {
		panic(err)
	}

	tmpl := template.Must(template.New("page").Parse(page))
	folder := filepath.Join(docs, "commands")
	if err := os.MkdirAll(folder, 0o755); err != nil {
		panic(err)
	}

	for _, sub := range app.Commands {
		metadata := TemplateData{
			Extra:   extras.Subcommands[sub.Name],
			ID:      sub.Name,
			IDUpper: strings.ToUpper(sub.Name),
			Short:   sub.Usage,
			Usage:   sub.UsageText,
			Flags:   flagsOf(sub),
			Date:    time.Now().Format("January 2, 2006"),
			Version: getVersion(),
		}

		path := filepath.Join(folder, sub.Name+".md")
		fmt.Println("Generating", path)

		file, err := os.Create(path)
		if err != nil {
			panic(err)
		}
		if err := tmpl.Execute(file, metadata); err != nil {
			panic(err)
		}
		file.Close()
	}
}

// flagsOf lists the documented flags of cmd sorted by name.
func flagsOf(cmd *cli.Command) []Flag {
	var flags []Flag
	for _, f := range cmd.Flags {
		names := f.Names()
		syntax := make([]string, len(names))
		for i, n := range names {
			if len(n) == 1 {
				syntax[i] = "-" + n
			} else {
				syntax[i] = "--" + n
			}
		}

		fl := Flag{Syntax: strings.Join(syntax, ", ")}
		if df, ok := f.(cli.DocGenerationFlag); ok {
			fl.Description = df.GetUsage()
			if df.TakesValue() {
				fl.Default = df.GetValue()
			}
		}
		flags = append(flags, fl)
	}

	sort.Slice(flags, func(i, j int) bool {
		return flags[i].Syntax < flags[j].Syntax
	})
	return flags
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
