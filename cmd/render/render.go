/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/themevars/token"
)

// Row holds computed display values for a single token.
type Row struct {
	Mode     token.Mode     `json:"mode"`
	Name     string         `json:"name"`     // CSS variable name with prefix
	Type     token.Type     `json:"type"`     // Token type
	Category token.Category `json:"category"` // Display group
	Value    string         `json:"value"`    // Raw declared value
	Display  string         `json:"displayValue,omitempty"`
	Source   string         `json:"source,omitempty"`
	IsColor  bool           `json:"-"` // Whether Display or Value is a parseable color
}

// Section is one mode's rows grouped by category.
type Section struct {
	Mode   token.Mode
	Groups []Group
}

// Group is one category's rows.
type Group struct {
	Category token.Category
	Rows     []Row
}

// MarkdownOptions configures markdown output.
type MarkdownOptions struct {
	IncludeTOC bool
	ShowLinks  bool
}

// ComputeRows transforms tokens into display rows.
func ComputeRows(tokens []*token.Token, mode token.Mode, prefix string) []Row {
	rows := make([]Row, 0, len(tokens))
	for _, tok := range tokens {
		if tok == nil {
			continue
		}
		row := Row{
			Mode:     mode,
			Name:     NameToCSSVar(tok.Name, prefix),
			Type:     tok.Type,
			Category: tok.Category,
			Value:    tok.Value,
			Display:  tok.DisplayValue,
			Source:   tok.Source,
		}
		if tok.Type == token.TypeColor {
			if _, err := csscolorparser.Parse(row.swatchValue()); err == nil {
				row.IsColor = true
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildSections groups every non-empty mode of set by category.
// An empty modes list selects all modes.
func BuildSections(set *token.TokenSet, prefix string, modes ...token.Mode) []Section {
	if set == nil {
		return nil
	}
	if len(modes) == 0 {
		modes = token.Modes()
	}

	var sections []Section
	for _, mode := range modes {
		tokens := set.List(mode)
		if len(tokens) == 0 {
			continue
		}
		section := Section{Mode: mode}
		for _, g := range token.GroupByCategory(tokens) {
			section.Groups = append(section.Groups, Group{
				Category: g.Category,
				Rows:     ComputeRows(g.Tokens, mode, prefix),
			})
		}
		sections = append(sections, section)
	}
	return sections
}

// Rows flattens sections back into a row list.
func Rows(sections []Section) []Row {
	var rows []Row
	for _, s := range sections {
		for _, g := range s.Groups {
			rows = append(rows, g.Rows...)
		}
	}
	return rows
}

// NameToCSSVar converts a token name to a CSS variable name.
// e.g., "primary" with prefix "tv" → "--tv-primary"
func NameToCSSVar(name, prefix string) string {
	if prefix != "" {
		return "--" + prefix + "-" + name
	}
	return "--" + name
}

func (r Row) swatchValue() string {
	if r.Display != "" {
		return r.Display
	}
	return r.Value
}

// converted reports whether Display adds information beyond Value.
func (r Row) converted() bool {
	return r.Display != "" && r.Display != r.Value
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (name, typ, val int) {
	name, typ, val = 4, 4, 5 // minimums for headers
	for _, r := range rows {
		name = max(name, len(r.Name))
		typ = max(typ, len(r.Type))
		val = max(val, len(r.Value))
	}
	return
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders sections as an indented terminal table with color swatches.
func Table(w io.Writer, sections []Section) error {
	nameW, typeW, _ := ColumnWidths(Rows(sections))
	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\n", toTitleCase(string(s.Mode)))
		for _, g := range s.Groups {
			fmt.Fprintf(w, "  %s\n", g.Category)
			for _, r := range g.Rows {
				swatch := ""
				if r.IsColor {
					swatch = ColorSwatch(r.swatchValue())
				}
				converted := ""
				if r.converted() {
					converted = " → " + r.Display
				}
				if _, err := fmt.Fprintf(w, "    %-*s  %-*s  %s%s%s\n", nameW, r.Name, typeW, r.Type, swatch, r.Value, converted); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Markdown renders sections as markdown, one heading per mode and one table
// per category.
func Markdown(w io.Writer, sections []Section, opts MarkdownOptions) error {
	if len(sections) == 0 {
		return nil
	}

	if opts.IncludeTOC {
		fmt.Fprint(w, GenerateTOC(sections))
		fmt.Fprintln(w)
	}

	for _, s := range sections {
		fmt.Fprintf(w, "## %s {#%s}\n\n", toTitleCase(string(s.Mode)), slugify(string(s.Mode)))
		for _, g := range s.Groups {
			fmt.Fprintf(w, "### %s {#%s}\n\n", g.Category, slugify(string(s.Mode)+"-"+string(g.Category)))
			renderTokenTable(w, g.Rows, opts)
			fmt.Fprintln(w)
		}
	}
	return nil
}

// GenerateTOC generates a markdown table of contents for sections.
func GenerateTOC(sections []Section) string {
	var sb strings.Builder
	sb.WriteString("## Table Of Contents\n\n")
	for _, s := range sections {
		mode := string(s.Mode)
		fmt.Fprintf(&sb, "- [%s](#%s)\n", toTitleCase(mode), slugify(mode))
		for _, g := range s.Groups {
			fmt.Fprintf(&sb, "  - [%s](#%s)\n", g.Category, slugify(mode+"-"+string(g.Category)))
		}
	}
	return sb.String()
}

func renderTokenTable(w io.Writer, rows []Row, opts MarkdownOptions) {
	nameW, valW, dispW := 4, 5, 7 // minimums for headers
	hasDisplay := false
	for _, r := range rows {
		nameW = max(nameW, len(formatTokenName(r, opts.ShowLinks)))
		valW = max(valW, len(r.Value))
		if r.Display != "" {
			hasDisplay = true
			dispW = max(dispW, len(r.Display))
		}
	}

	if hasDisplay {
		fmt.Fprintf(w, "| %-*s | %-*s | %-*s |\n", nameW, "Name", valW, "Value", dispW, "Display")
		fmt.Fprintf(w, "|-%s-|-%s-|-%s-|\n", strings.Repeat("-", nameW), strings.Repeat("-", valW), strings.Repeat("-", dispW))
	} else {
		fmt.Fprintf(w, "| %-*s | %-*s |\n", nameW, "Name", valW, "Value")
		fmt.Fprintf(w, "|-%s-|-%s-|\n", strings.Repeat("-", nameW), strings.Repeat("-", valW))
	}

	for _, r := range rows {
		name := formatTokenName(r, opts.ShowLinks)
		if hasDisplay {
			fmt.Fprintf(w, "| %-*s | %-*s | %-*s |\n", nameW, name, valW, r.Value, dispW, r.Display)
		} else {
			fmt.Fprintf(w, "| %-*s | %-*s |\n", nameW, name, valW, r.Value)
		}
	}
}

// JSON renders rows as an indented JSON array.
func JSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// Names renders just the token names, one per line.
func Names(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.Name); err != nil {
			return err
		}
	}
	return nil
}

func formatTokenName(r Row, showLinks bool) string {
	if showLinks {
		return fmt.Sprintf("[%s](#%s)", r.Name, slugify(r.Name))
	}
	return r.Name
}

// slugify converts a name to a URL-safe anchor ID.
// e.g., "Light Colors" -> "light-colors"
func slugify(name string) string {
	var result strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		} else if r == ' ' || r == '-' || r == '_' || r == '.' {
			result.WriteRune('-')
		}
	}
	s := result.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// toTitleCase converts a string to Title Case.
func toTitleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(s)
}
