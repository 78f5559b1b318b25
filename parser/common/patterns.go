/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package common provides the regular expressions shared by the CSS parser
// and its tooling.
package common

import "regexp"

// SelectorPattern matches the selectors that start a new block.
// The parser splits in front of every match so each block keeps its selector.
var SelectorPattern = regexp.MustCompile(`:root|\.dark`)

// BlockBodyPattern matches the narrowest brace span. Nested braces are not supported.
var BlockBodyPattern = regexp.MustCompile(`\{([^}]*)\}`)

// DeclarationPattern matches a custom property declaration: --name: value;
var DeclarationPattern = regexp.MustCompile(`--([^\s:;{}]+)\s*:\s*([^;]*);`)

// CommentPrefixes mark lines the parser ignores.
var CommentPrefixes = []string{"/*", "//"}
