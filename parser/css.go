/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"
	"strings"

	"bennypowers.dev/themevars/classifier"
	"bennypowers.dev/themevars/color"
	"bennypowers.dev/themevars/fs"
	"bennypowers.dev/themevars/internal/logger"
	"bennypowers.dev/themevars/parser/common"
	"bennypowers.dev/themevars/token"
)

// previewer formats a color value for display.
type previewer interface {
	Preview(text string) string
}

// CSSParser parses :root / .dark custom property blocks.
// The zero value converts colors with color.Default().
type CSSParser struct {
	colors previewer
}

// NewCSSParser creates a parser that converts colors with colors.
// A nil converter selects color.Default().
func NewCSSParser(colors *color.Converter) *CSSParser {
	if colors == nil {
		return &CSSParser{}
	}
	return &CSSParser{colors: colors}
}

func (p *CSSParser) converter() previewer {
	if p.colors == nil {
		return color.Default()
	}
	return p.colors
}

// Parse parses CSS text into a token set using the default converter.
func Parse(css string) (*token.TokenSet, error) {
	return NewCSSParser(nil).Parse(css, Options{})
}

// ParseFile reads path from filesystem and parses it. Every token's Source
// defaults to path.
func (p *CSSParser) ParseFile(filesystem fs.FileSystem, path string, opts Options) (*token.TokenSet, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if opts.Source == "" {
		opts.Source = path
	}
	set, err := p.Parse(string(data), opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Parse splits css into blocks, extracts and classifies declarations and
// routes them to the light, dark or global list.
//
// Whitespace-only input yields an empty set. When the input has light
// tokens but no dark ones, the light tokens are moved to global.
func (p *CSSParser) Parse(css string, opts Options) (set *token.TokenSet, err error) {
	if strings.TrimSpace(css) == "" {
		return token.NewTokenSet(), nil
	}

	defer func() {
		if r := recover(); r != nil {
			set = nil
			err = fmt.Errorf("%w: %v", ErrParse, r)
		}
	}()

	set = token.NewTokenSet()
	for _, block := range splitBlocks(css) {
		tokens, ok := p.parseBlock(block, opts)
		if !ok {
			continue
		}
		set.Append(route(block), tokens...)
	}

	if len(set.Dark) == 0 && len(set.Light) > 0 {
		set.Global = append(set.Global, set.Light...)
		set.Light = []*token.Token{}
	}

	return set, nil
}

// splitBlocks cuts css in front of every :root and .dark selector. Text
// before the first selector forms its own block. Whitespace-only blocks
// are dropped.
func splitBlocks(css string) []string {
	starts := []int{0}
	for _, loc := range common.SelectorPattern.FindAllStringIndex(css, -1) {
		if loc[0] > 0 {
			starts = append(starts, loc[0])
		}
	}

	blocks := make([]string, 0, len(starts))
	for i, start := range starts {
		end := len(css)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		block := strings.TrimSpace(css[start:end])
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// route picks the list a block's tokens belong to.
func route(block string) token.Mode {
	switch {
	case strings.HasPrefix(block, ":root"):
		return token.ModeLight
	case strings.Contains(block, ".dark"):
		return token.ModeDark
	default:
		return token.ModeGlobal
	}
}

// parseBlock extracts the declarations inside the block's first brace span.
// It reports false when the block has no complete span.
func (p *CSSParser) parseBlock(block string, opts Options) ([]*token.Token, bool) {
	m := common.BlockBodyPattern.FindStringSubmatch(block)
	if m == nil {
		logger.Debug("skipping block without closing brace: %.40q", block)
		return nil, false
	}

	var tokens []*token.Token
	for _, line := range strings.Split(m[1], "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isComment(line) {
			continue
		}
		for _, decl := range common.DeclarationPattern.FindAllStringSubmatch(line, -1) {
			name := strings.TrimSpace(decl[1])
			value := strings.TrimSpace(decl[2])
			if name == "" || value == "" {
				logger.Debug("skipping empty declaration in %q", line)
				continue
			}
			tokens = append(tokens, p.newToken(name, value, opts))
		}
	}
	return tokens, true
}

func (p *CSSParser) newToken(name, value string, opts Options) *token.Token {
	class := classifier.Classify(name, value)
	tok := &token.Token{
		Name:       name,
		Value:      value,
		Type:       class.Type,
		Category:   class.Category,
		Source:     opts.Source,
		Collection: opts.Collection,
	}
	if tok.Type == token.TypeColor {
		tok.DisplayValue = p.converter().Preview(value)
	}
	return tok
}

func isComment(line string) bool {
	for _, prefix := range common.CommentPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
