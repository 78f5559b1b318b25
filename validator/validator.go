/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks parsed token sets for model consistency.
package validator

import (
	"fmt"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/themevars/token"
)

// Severity distinguishes broken tokens from suspicious ones.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationError represents a token model problem.
type ValidationError struct {
	// FilePath is the path to the file containing the error.
	FilePath string
	// Path is mode.name of the problematic token.
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
	// Severity is SeverityError unless the token is merely suspicious.
	Severity Severity
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// IsWarning reports whether e is a warning.
func (e *ValidationError) IsWarning() bool {
	return e.Severity == SeverityWarning
}

// Validate checks set. Returns problems for:
// - a type and category outside the valid pairs
// - a display value on a non-color token, or a color token without one
// - a color the converter could not normalize that is not a CSS color either
// - a name declared twice within one mode
func Validate(set *token.TokenSet) []ValidationError {
	return ValidateWithPath(set, "")
}

// ValidateWithPath validates set and includes filePath in errors.
func ValidateWithPath(set *token.TokenSet, filePath string) []ValidationError {
	if set == nil {
		return nil
	}

	var errors []ValidationError
	for _, mode := range token.Modes() {
		seen := make(map[string]bool)
		for _, tok := range set.List(mode) {
			if tok == nil {
				continue
			}
			path := string(mode) + "." + tok.Name
			errors = append(errors, validateToken(tok, filePath, path)...)

			if seen[tok.Name] {
				errors = append(errors, ValidationError{
					FilePath:   filePath,
					Path:       path,
					Message:    fmt.Sprintf("--%s is declared more than once in %s", tok.Name, mode),
					Suggestion: "the last declaration wins in CSS; remove the earlier one",
					Severity:   SeverityWarning,
				})
			}
			seen[tok.Name] = true
		}
	}
	return errors
}

func validateToken(tok *token.Token, filePath, path string) []ValidationError {
	var errors []ValidationError

	if tok.Name == "" {
		errors = append(errors, ValidationError{
			FilePath: filePath,
			Path:     path,
			Message:  "token has an empty name",
			Severity: SeverityError,
		})
	}

	if !token.ValidPair(tok.Type, tok.Category) {
		errors = append(errors, ValidationError{
			FilePath:   filePath,
			Path:       path,
			Message:    fmt.Sprintf("type %q cannot belong to category %q", tok.Type, tok.Category),
			Suggestion: "reclassify the token",
			Severity:   SeverityError,
		})
	}

	switch {
	case tok.Type == token.TypeColor && tok.DisplayValue == "":
		errors = append(errors, ValidationError{
			FilePath:   filePath,
			Path:       path,
			Message:    "color token has no display value",
			Suggestion: "set displayValue to the normalized hex or the raw value",
			Severity:   SeverityError,
		})
	case tok.Type != token.TypeColor && tok.DisplayValue != "":
		errors = append(errors, ValidationError{
			FilePath: filePath,
			Path:     path,
			Message:  fmt.Sprintf("%s token has a display value", tok.Type),
			Severity: SeverityError,
		})
	case tok.Type == token.TypeColor && !strings.HasPrefix(tok.DisplayValue, "#"):
		if _, err := csscolorparser.Parse(tok.Value); err != nil {
			errors = append(errors, ValidationError{
				FilePath:   filePath,
				Path:       path,
				Message:    fmt.Sprintf("unrecognized color %q", tok.Value),
				Suggestion: "use hex, rgb(), hsl(), hsb(), oklch() or a bare \"H S% L%\" triple",
				Severity:   SeverityWarning,
			})
		}
	}

	return errors
}
