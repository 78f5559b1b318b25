/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for themevars.
package list

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/themevars/cmd/render"
	"bennypowers.dev/themevars/internal/cli"
	"bennypowers.dev/themevars/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List theme tokens grouped by mode and category",
	Long: `List the custom properties of one or more theme stylesheets, grouped by
mode (light, dark, global) and category, with color swatches.

With no files, the files from .config/theme-vars.yaml are listed.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("mode", "", "Only list one mode: light, dark, global")
	Cmd.Flags().String("category", "", "Only list one category, e.g. Colors")
	Cmd.Flags().String("type", "", "Only list one token type, e.g. color")
	Cmd.Flags().String("prefix", "", "Prefix for displayed variable names")
	Cmd.Flags().String("format", "table", "Output format: table, markdown, json, names")
	Cmd.Flags().Bool("toc", false, "Include a table of contents (markdown only)")
	Cmd.Flags().Bool("links", false, "Link token names (markdown only)")
}

func run(cmd *cobra.Command, args []string) error {
	modeFlag, _ := cmd.Flags().GetString("mode")
	category, _ := cmd.Flags().GetString("category")
	typeFilter, _ := cmd.Flags().GetString("type")
	prefix, _ := cmd.Flags().GetString("prefix")
	format, _ := cmd.Flags().GetString("format")
	toc, _ := cmd.Flags().GetBool("toc")
	links, _ := cmd.Flags().GetBool("links")

	modes, err := parseModes(modeFlag)
	if err != nil {
		return err
	}

	set, _, err := cli.LoadSet(cmd.Context(), args, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	sections := filterSections(render.BuildSections(set, prefix, modes...), token.Category(category), token.Type(typeFilter))

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return render.JSON(out, render.Rows(sections))
	case "names":
		return render.Names(out, render.Rows(sections))
	case "markdown", "md":
		return render.Markdown(out, sections, render.MarkdownOptions{IncludeTOC: toc, ShowLinks: links})
	case "table", "":
		return render.Table(out, sections)
	default:
		return fmt.Errorf("unknown format: %s (valid: table, markdown, json, names)", format)
	}
}

func parseModes(s string) ([]token.Mode, error) {
	if s == "" {
		return nil, nil
	}
	for _, m := range token.Modes() {
		if strings.EqualFold(s, string(m)) {
			return []token.Mode{m}, nil
		}
	}
	return nil, fmt.Errorf("unknown mode: %s (valid: light, dark, global)", s)
}

// filterSections drops groups and rows that do not match the category and
// type filters. Empty filters match everything.
func filterSections(sections []render.Section, category token.Category, typ token.Type) []render.Section {
	if category == "" && typ == "" {
		return sections
	}

	var out []render.Section
	for _, s := range sections {
		filtered := render.Section{Mode: s.Mode}
		for _, g := range s.Groups {
			if category != "" && !strings.EqualFold(string(g.Category), string(category)) {
				continue
			}
			var rows []render.Row
			for _, r := range g.Rows {
				if typ == "" || strings.EqualFold(string(r.Type), string(typ)) {
					rows = append(rows, r)
				}
			}
			if len(rows) > 0 {
				filtered.Groups = append(filtered.Groups, render.Group{Category: g.Category, Rows: rows})
			}
		}
		if len(filtered.Groups) > 0 {
			out = append(out, filtered)
		}
	}
	return out
}
