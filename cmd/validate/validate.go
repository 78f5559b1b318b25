/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for themevars.
package validate

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/themevars/internal/cli"
	"bennypowers.dev/themevars/load"
	"bennypowers.dev/themevars/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate theme stylesheets",
	Long: `Validate theme stylesheets: every token must carry a valid type and
category pair, colors must normalize to hex, and names must be unique within
a mode.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")

	stderr := cmd.ErrOrStderr()
	opts, _, err := cli.LoadOptions()
	if err != nil {
		return err
	}
	specs, err := load.Specs(args, opts)
	if err != nil {
		return err
	}

	loadFailures := 0
	files := load.All(cmd.Context(), specs, opts, func(spec string, err error) {
		loadFailures++
		fmt.Fprintf(stderr, "Error loading %s: %v\n", spec, err)
	})

	out := cmd.OutOrStdout()
	var errs, warns int
	for _, f := range files {
		if !quiet {
			fmt.Fprintf(out, "Validating %s...\n", f.Spec)
		}
		problems := validator.ValidateWithPath(f.Set, f.Spec)
		e, w := report(out, stderr, problems, quiet)
		errs += e
		warns += w
		if !quiet {
			fmt.Fprintf(out, "  %d tokens, %d errors, %d warnings\n", f.Set.Len(), e, w)
		}
	}

	if loadFailures > 0 || errs > 0 || (strict && warns > 0) {
		return fmt.Errorf("validation failed")
	}
	if !quiet {
		fmt.Fprintln(out, "All files valid.")
	}
	return nil
}

// report prints problems and counts them by severity. Errors go to stderr;
// warnings go to out unless quiet.
func report(out, stderr io.Writer, problems []validator.ValidationError, quiet bool) (errs, warns int) {
	for i := range problems {
		p := &problems[i]
		if p.IsWarning() {
			warns++
			if !quiet {
				fmt.Fprintf(out, "  warning: %s\n", p.Error())
			}
			continue
		}
		errs++
		fmt.Fprintf(stderr, "error: %s\n", p.Error())
	}
	return errs, warns
}
