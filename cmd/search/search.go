/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package search provides the search command for themevars.
package search

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/themevars/internal/cli"
	"bennypowers.dev/themevars/token"
)

// Cmd is the search cobra command.
var Cmd = &cobra.Command{
	Use:   "search <query> [files...]",
	Short: "Search tokens by name, value, type, or category",
	Long:  `Search theme tokens by name, value, display value, type, or category with optional regex support.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("name", false, "Search names only")
	Cmd.Flags().Bool("value", false, "Search values only")
	Cmd.Flags().String("type", "", "Filter by token type")
	Cmd.Flags().String("category", "", "Filter by category")
	Cmd.Flags().String("mode", "", "Filter by mode: light, dark, global")
	Cmd.Flags().Bool("regex", false, "Query is a regex")
	Cmd.Flags().String("format", "table", "Output format: table, json, names")
}

// Match is a token found in a given mode.
type Match struct {
	Mode  token.Mode
	Token *token.Token
}

// Query selects tokens.
type Query struct {
	Text      string
	Pattern   *regexp.Regexp
	NameOnly  bool
	ValueOnly bool
	Type      token.Type
	Category  token.Category
	Mode      token.Mode
}

func run(cmd *cobra.Command, args []string) error {
	nameOnly, _ := cmd.Flags().GetBool("name")
	valueOnly, _ := cmd.Flags().GetBool("value")
	typeFilter, _ := cmd.Flags().GetString("type")
	category, _ := cmd.Flags().GetString("category")
	mode, _ := cmd.Flags().GetString("mode")
	useRegex, _ := cmd.Flags().GetBool("regex")
	format, _ := cmd.Flags().GetString("format")

	if nameOnly && valueOnly {
		return fmt.Errorf("--name and --value are mutually exclusive")
	}

	q := Query{
		Text:      args[0],
		NameOnly:  nameOnly,
		ValueOnly: valueOnly,
		Type:      token.Type(typeFilter),
		Category:  token.Category(category),
		Mode:      token.Mode(strings.ToLower(mode)),
	}
	if useRegex {
		pattern, err := regexp.Compile(q.Text)
		if err != nil {
			return fmt.Errorf("invalid regex: %w", err)
		}
		q.Pattern = pattern
	}

	set, _, err := cli.LoadSet(cmd.Context(), args[1:], cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	matches := Search(set, q)

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return outputJSON(out, matches)
	case "names":
		return outputNames(out, matches)
	default:
		return outputTable(out, matches)
	}
}

// Search returns the tokens of set matching q, in mode order then
// declaration order.
func Search(set *token.TokenSet, q Query) []Match {
	var matches []Match
	for _, mode := range token.Modes() {
		if q.Mode != "" && q.Mode != mode {
			continue
		}
		for _, tok := range set.List(mode) {
			if q.Type != "" && !strings.EqualFold(string(tok.Type), string(q.Type)) {
				continue
			}
			if q.Category != "" && !strings.EqualFold(string(tok.Category), string(q.Category)) {
				continue
			}
			if q.matches(tok) {
				matches = append(matches, Match{Mode: mode, Token: tok})
			}
		}
	}
	return matches
}

func (q Query) matches(tok *token.Token) bool {
	switch {
	case q.NameOnly:
		return matchString(tok.Name, q.Text, q.Pattern)
	case q.ValueOnly:
		return matchString(tok.Value, q.Text, q.Pattern) ||
			matchString(tok.DisplayValue, q.Text, q.Pattern)
	default:
		return matchString(tok.Name, q.Text, q.Pattern) ||
			matchString(tok.Value, q.Text, q.Pattern) ||
			matchString(tok.DisplayValue, q.Text, q.Pattern) ||
			matchString(string(tok.Type), q.Text, q.Pattern) ||
			matchString(string(tok.Category), q.Text, q.Pattern)
	}
}

func matchString(s, query string, pattern *regexp.Regexp) bool {
	if pattern != nil {
		return pattern.MatchString(s)
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(query))
}

func outputTable(w io.Writer, matches []Match) error {
	if len(matches) == 0 {
		return nil
	}

	modeWidth := 4
	nameWidth := 4
	typeWidth := 4
	for _, m := range matches {
		modeWidth = max(modeWidth, len(m.Mode))
		nameWidth = max(nameWidth, len(m.Token.CSSVariableName()))
		typeWidth = max(typeWidth, len(m.Token.Type))
	}

	for _, m := range matches {
		value := m.Token.Value
		if m.Token.DisplayValue != "" && m.Token.DisplayValue != m.Token.Value {
			value += " → " + m.Token.DisplayValue
		}
		if _, err := fmt.Fprintf(w, "%-*s  %-*s  %-*s  %s\n",
			modeWidth, m.Mode,
			nameWidth, m.Token.CSSVariableName(),
			typeWidth, m.Token.Type,
			value); err != nil {
			return err
		}
	}
	return nil
}

func outputJSON(w io.Writer, matches []Match) error {
	type tokenOutput struct {
		Mode         token.Mode     `json:"mode"`
		Name         string         `json:"name"`
		Value        string         `json:"value"`
		DisplayValue string         `json:"displayValue,omitempty"`
		Type         token.Type     `json:"type"`
		Category     token.Category `json:"category"`
		Source       string         `json:"source,omitempty"`
	}

	output := make([]tokenOutput, 0, len(matches))
	for _, m := range matches {
		output = append(output, tokenOutput{
			Mode:         m.Mode,
			Name:         m.Token.CSSVariableName(),
			Value:        m.Token.Value,
			DisplayValue: m.Token.DisplayValue,
			Type:         m.Token.Type,
			Category:     m.Token.Category,
			Source:       m.Token.Source,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func outputNames(w io.Writer, matches []Match) error {
	for _, m := range matches {
		if _, err := fmt.Fprintln(w, m.Token.CSSVariableName()); err != nil {
			return err
		}
	}
	return nil
}
