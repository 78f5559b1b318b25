/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for token set formatters.
package formatter

import (
	"strings"

	"bennypowers.dev/themevars/token"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format converts a token set to the target format.
	Format(set *token.TokenSet, opts Options) ([]byte, error)
}

// Options configures formatter behavior.
type Options struct {
	// Prefix is added to output variable names.
	Prefix string

	// Delimiter separates the prefix from the name.
	// Zero value is empty string; consuming code should set "-" if needed.
	Delimiter string
}

// ResolvedValue returns the value a formatter should emit for tok: the
// normalized hex for converted colors, the raw value otherwise.
func ResolvedValue(tok *token.Token) string {
	if tok == nil {
		return ""
	}
	if tok.Type == token.TypeColor && strings.HasPrefix(tok.DisplayValue, "#") {
		return tok.DisplayValue
	}
	return tok.Value
}

// ApplyPrefix adds a prefix to a name with the given delimiter.
func ApplyPrefix(name, prefix, delimiter string) string {
	if prefix == "" {
		return name
	}
	return prefix + delimiter + name
}

// Sections returns the non-empty lists of set in global, light, dark order.
func Sections(set *token.TokenSet) []Section {
	if set == nil {
		return nil
	}
	var out []Section
	for _, mode := range []token.Mode{token.ModeGlobal, token.ModeLight, token.ModeDark} {
		if tokens := set.List(mode); len(tokens) > 0 {
			out = append(out, Section{Mode: mode, Tokens: tokens})
		}
	}
	return out
}

// Section is one mode's token list.
type Section struct {
	Mode   token.Mode
	Tokens []*token.Token
}

// SplitFontFamilies splits a font stack on commas and strips quotes.
func SplitFontFamilies(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		part = strings.Trim(part, `"'`)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
