/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css re-emits a token set as CSS custom property blocks with
// normalized hex colors.
package css

import (
	"bytes"
	"fmt"

	"bennypowers.dev/themevars/convert/formatter"
	"bennypowers.dev/themevars/token"
)

// Selector is the rule the light and global tokens are written under.
type Selector string

const (
	// SelectorRoot writes :root and .dark blocks.
	SelectorRoot Selector = ":root"

	// SelectorHost writes :host and :host(.dark) blocks for shadow roots.
	SelectorHost Selector = ":host"
)

// Options configures the CSS formatter.
type Options struct {
	Selector Selector
}

// Formatter outputs CSS custom properties.
type Formatter struct {
	opts Options
}

// New creates a CSS formatter writing :root blocks.
func New() *Formatter {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a CSS formatter with the given options.
func NewWithOptions(opts Options) *Formatter {
	if opts.Selector == "" {
		opts.Selector = SelectorRoot
	}
	return &Formatter{opts: opts}
}

// Format writes global and light tokens under the base selector, then dark
// tokens under the dark selector. Empty blocks are omitted.
func (f *Formatter) Format(set *token.TokenSet, opts formatter.Options) ([]byte, error) {
	delimiter := opts.Delimiter
	if delimiter == "" {
		delimiter = "-"
	}

	var base, dark []*token.Token
	for _, section := range formatter.Sections(set) {
		if section.Mode == token.ModeDark {
			dark = append(dark, section.Tokens...)
		} else {
			base = append(base, section.Tokens...)
		}
	}

	var buf bytes.Buffer
	writeBlock(&buf, string(f.opts.Selector), base, opts.Prefix, delimiter)
	writeBlock(&buf, f.DarkSelector(), dark, opts.Prefix, delimiter)
	return buf.Bytes(), nil
}

// DarkSelector returns the selector dark tokens are written under.
func (f *Formatter) DarkSelector() string {
	if f.opts.Selector == SelectorHost {
		return ":host(.dark)"
	}
	return ".dark"
}

func writeBlock(buf *bytes.Buffer, selector string, tokens []*token.Token, prefix, delimiter string) {
	if len(tokens) == 0 {
		return
	}
	if buf.Len() > 0 {
		buf.WriteString("\n")
	}
	fmt.Fprintf(buf, "%s {\n", selector)
	for _, tok := range tokens {
		name := formatter.ApplyPrefix(tok.Name, prefix, delimiter)
		fmt.Fprintf(buf, "  --%s: %s;\n", name, formatter.ResolvedValue(tok))
	}
	buf.WriteString("}\n")
}
