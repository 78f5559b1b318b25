/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parse provides the parse command for themevars.
package parse

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/themevars/convert"
	"bennypowers.dev/themevars/fs"
	"bennypowers.dev/themevars/internal/cli"
	"bennypowers.dev/themevars/load"
	"bennypowers.dev/themevars/parser"
	"bennypowers.dev/themevars/token"
)

// StdinSource is the provenance stamped on tokens read from stdin.
const StdinSource = "<stdin>"

// Cmd is the parse cobra command.
var Cmd = &cobra.Command{
	Use:   "parse [files...]",
	Short: "Parse theme CSS into a create-variables message",
	Long: `Parse theme stylesheets and print the create-variables message a design
tool host consumes: light, dark and global token lists.

Pass "-" to read CSS from stdin.

Examples:
  themevars parse globals.css
  pbpaste | themevars parse -
  themevars parse -o variables.json themes/*.css`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Write the message to a file instead of stdout")
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	var set *token.TokenSet
	var err error
	if len(args) == 1 && args[0] == "-" {
		set, err = parseStdin(cmd.InOrStdin())
	} else {
		set, _, err = cli.LoadSet(cmd.Context(), args, cmd.ErrOrStderr())
	}
	if err != nil {
		return err
	}

	data, err := convert.FormatTokenSet(set, convert.FormatJSON, convert.Options{})
	if err != nil {
		return fmt.Errorf("error formatting message: %w", err)
	}
	return cli.WriteOutput(fs.NewOSFileSystem(), cmd.OutOrStdout(), output, data)
}

func parseStdin(r io.Reader) (*token.TokenSet, error) {
	opts, _, err := cli.LoadOptions()
	if err != nil {
		return nil, err
	}
	return parseReader(r, opts)
}

func parseReader(r io.Reader, opts load.Options) (*token.TokenSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading stdin: %w", err)
	}

	collection := opts.Collection
	if collection == "" && opts.Config != nil {
		collection = opts.Config.Collection
	}

	p := parser.NewCSSParser(opts.Converter)
	return p.Parse(string(data), parser.Options{Source: StdinSource, Collection: collection})
}
