/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides the version command for themevars.
package version

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/themevars/internal/version"
)

// Cmd prints the themevars build: version and commit as text, or the full
// build metadata (Go version, fetch User-Agent) as JSON.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the themevars version and build metadata.

The JSON form includes the User-Agent sent when --allow-network fetches
remote themes.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
	Cmd.Flags().Bool("short", false, "Print only the version number")
}

func run(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("error reading format flag: %w", err)
	}
	short, _ := cmd.Flags().GetBool("short")
	return write(cmd.OutOrStdout(), format, short)
}

func write(w io.Writer, format string, short bool) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(version.Info(), "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling version info: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "text", "":
		if short {
			_, err := fmt.Fprintln(w, version.Get())
			return err
		}
		_, err := fmt.Fprintf(w, "themevars %s\n", version.Full())
		return err
	default:
		return fmt.Errorf("unknown format: %s (valid: text, json)", format)
	}
}
