/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert provides the convert command for themevars.
package convert

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/themevars/config"
	convertlib "bennypowers.dev/themevars/convert"
	"bennypowers.dev/themevars/fs"
	"bennypowers.dev/themevars/internal/cli"
)

// Cmd is the convert cobra command.
var Cmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert theme CSS to other formats",
	Long: `Convert theme stylesheets to other formats, merging multiple files.

Output Formats:
  json      create-variables message (default)
  flat      one flat name to value object per mode
  dtcg      DTCG-compliant JSON grouped by mode
  css       normalized :root and .dark blocks with hex colors
  host-css  normalized :host and :host(.dark) blocks

Examples:
  # Emit DTCG tokens
  themevars convert --format dtcg -o tokens.json globals.css

  # Prefix every variable
  themevars convert --format css --prefix brand themes/*.css

  # Multi-output mode: generate several formats at once
  themevars convert --outputs dtcg:tokens.json --outputs css:vars.css globals.css

  # Use files and format from config (.config/theme-vars.yaml)
  themevars convert`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	Cmd.Flags().StringP("format", "f", "", "Output format: "+strings.Join(convertlib.ValidFormats(), ", "))
	Cmd.Flags().String("prefix", "", "Prefix for emitted names")
	Cmd.Flags().StringP("delimiter", "d", "-", "Delimiter between prefix and name")
	Cmd.Flags().StringArray("outputs", nil, "Multiple outputs as format:path pairs (repeatable)")
}

// Output pairs a format with its destination path.
type Output struct {
	Format convertlib.Format
	Path   string
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	formatFlag, _ := cmd.Flags().GetString("format")
	prefix, _ := cmd.Flags().GetString("prefix")
	delimiter, _ := cmd.Flags().GetString("delimiter")
	outputsFlag, _ := cmd.Flags().GetStringArray("outputs")

	outputs, err := parseOutputs(outputsFlag)
	if err != nil {
		return err
	}
	if len(outputs) > 0 && output != "" {
		return fmt.Errorf("--outputs and --output are mutually exclusive")
	}

	set, cfg, err := cli.LoadSet(cmd.Context(), args, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if len(outputs) == 0 {
		format, err := resolveFormat(formatFlag, cfg)
		if err != nil {
			return err
		}
		outputs = []Output{{Format: format, Path: output}}
	}

	opts := convertlib.Options{Prefix: prefix, Delimiter: delimiter}
	filesystem := fs.NewOSFileSystem()
	for _, out := range outputs {
		data, err := convertlib.FormatTokenSet(set, out.Format, opts)
		if err != nil {
			return fmt.Errorf("error formatting %s: %w", out.Format, err)
		}
		if err := cli.WriteOutput(filesystem, cmd.OutOrStdout(), out.Path, data); err != nil {
			return err
		}
	}
	return nil
}

// parseOutputs parses repeated format:path flags.
func parseOutputs(specs []string) ([]Output, error) {
	var outputs []Output
	for _, spec := range specs {
		formatPart, pathPart, found := strings.Cut(spec, ":")
		if !found || pathPart == "" {
			return nil, fmt.Errorf("invalid output spec %q: expected format:path", spec)
		}
		format, err := convertlib.ParseFormat(formatPart)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, Output{Format: format, Path: pathPart})
	}
	return outputs, nil
}

// resolveFormat prefers the flag, then the config file, then json.
func resolveFormat(flag string, cfg *config.Config) (convertlib.Format, error) {
	if flag == "" && cfg != nil {
		flag = cfg.Format
	}
	return convertlib.ParseFormat(flag)
}
