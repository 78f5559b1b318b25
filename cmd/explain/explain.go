/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package explain provides the explain command for themevars.
package explain

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/themevars/classifier"
	"bennypowers.dev/themevars/color"
	"bennypowers.dev/themevars/token"
)

// Cmd is the explain cobra command.
var Cmd = &cobra.Command{
	Use:   "explain <name> <value> | explain '--name: value;'",
	Short: "Show how a declaration is classified",
	Long: `Show which classification rule matches a declaration and the resulting
type, category, display value and preview.

Examples:
  themevars explain primary "222.2 47.4% 11.2%"
  themevars explain "--shadow-sm: 0 1px 2px rgba(0,0,0,0.05);"
  themevars explain --rules`,
	Args: cobra.MaximumNArgs(2),
	RunE: run,
}

func init() {
	Cmd.Flags().String("format", "text", "Output format: text, json")
	Cmd.Flags().Bool("rules", false, "List the classification rules in evaluation order")
}

// Explanation describes the classification of a single declaration.
type Explanation struct {
	Name         string         `json:"name"`
	Value        string         `json:"value"`
	Rule         string         `json:"rule"`
	Type         token.Type     `json:"type"`
	Category     token.Category `json:"category"`
	DisplayValue string         `json:"displayValue,omitempty"`
	Preview      token.Preview  `json:"preview"`
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	listRules, _ := cmd.Flags().GetBool("rules")

	out := cmd.OutOrStdout()
	if listRules {
		return printRules(out)
	}

	name, value, err := declaration(args)
	if err != nil {
		return err
	}

	e := Explain(name, value, color.Default())
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(e)
	case "text", "":
		printText(out, e)
		return nil
	default:
		return fmt.Errorf("unknown format: %s (valid: text, json)", format)
	}
}

// Explain classifies name and value and derives the display value and
// preview the parser would produce.
func Explain(name, value string, conv *color.Converter) Explanation {
	name = strings.TrimPrefix(strings.TrimSpace(name), "--")
	value = strings.TrimSpace(value)

	rule := classifier.Explain(name, value)
	tok := &token.Token{
		Name:     name,
		Value:    value,
		Type:     rule.Result.Type,
		Category: rule.Result.Category,
	}
	if tok.Type == token.TypeColor {
		tok.DisplayValue = conv.Preview(value)
	}

	return Explanation{
		Name:         name,
		Value:        value,
		Rule:         rule.Name,
		Type:         tok.Type,
		Category:     tok.Category,
		DisplayValue: tok.DisplayValue,
		Preview:      token.PreviewFor(tok),
	}
}

// declaration accepts either a name and value pair or a single
// "--name: value;" declaration.
func declaration(args []string) (name, value string, err error) {
	switch len(args) {
	case 2:
		return args[0], args[1], nil
	case 1:
		decl := strings.TrimSuffix(strings.TrimSpace(args[0]), ";")
		name, value, found := strings.Cut(decl, ":")
		if !found || !strings.HasPrefix(strings.TrimSpace(name), "--") {
			return "", "", fmt.Errorf("invalid declaration %q: expected --name: value", args[0])
		}
		return name, value, nil
	default:
		return "", "", fmt.Errorf("expected a name and value, or a declaration")
	}
}

func printText(w io.Writer, e Explanation) {
	fmt.Fprintf(w, "name:      --%s\n", e.Name)
	fmt.Fprintf(w, "value:     %s\n", e.Value)
	fmt.Fprintf(w, "rule:      %s\n", e.Rule)
	fmt.Fprintf(w, "type:      %s\n", e.Type)
	fmt.Fprintf(w, "category:  %s\n", e.Category)
	if e.DisplayValue != "" {
		fmt.Fprintf(w, "display:   %s\n", e.DisplayValue)
	}
	if style := e.Preview.Style(); style != "" {
		fmt.Fprintf(w, "preview:   %s\n", style)
	}
}

func printRules(w io.Writer) error {
	for i, r := range classifier.Rules() {
		if _, err := fmt.Fprintf(w, "%d. %-9s %s / %s\n", i+1, r.Name, r.Result.Type, r.Result.Category); err != nil {
			return err
		}
	}
	return nil
}
