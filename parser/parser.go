/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser extracts theme tokens from CSS custom property blocks.
package parser

import (
	"errors"

	"bennypowers.dev/themevars/fs"
	"bennypowers.dev/themevars/token"
)

// ErrParse is returned when CSS text could not be parsed at all.
// Malformed blocks and declarations are skipped rather than reported.
var ErrParse = errors.New("failed to parse CSS variables, please check the format")

// Options configures token parsing.
type Options struct {
	// Source is stamped on every token as provenance, typically a file path.
	Source string

	// Collection is stamped on every token as the host collection name.
	Collection string
}

// Parser parses theme CSS into a token set.
type Parser interface {
	// Parse parses CSS text.
	Parse(css string, opts Options) (*token.TokenSet, error)

	// ParseFile reads and parses a CSS file.
	ParseFile(filesystem fs.FileSystem, path string, opts Options) (*token.TokenSet, error)
}
