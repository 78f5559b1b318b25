/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for themevars.
package cmd

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/themevars/cmd/convert"
	"bennypowers.dev/themevars/cmd/explain"
	"bennypowers.dev/themevars/cmd/list"
	"bennypowers.dev/themevars/cmd/parse"
	"bennypowers.dev/themevars/cmd/search"
	"bennypowers.dev/themevars/cmd/validate"
	"bennypowers.dev/themevars/cmd/version"
	"bennypowers.dev/themevars/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "themevars",
	Short: "Turn theme stylesheets into design variables",
	Long: `themevars extracts CSS custom properties from theme stylesheets such as
shadcn/ui or tweakcn exports, classifies them, normalizes colors to hex and
emits them as design variables grouped by light, dark and global mode.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.Setup()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cli.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(parse.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(convert.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(explain.Cmd)
	rootCmd.AddCommand(search.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
