/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package classifier assigns a semantic type and display category to CSS
// custom property declarations.
//
// Classification is an ordered cascade of rules; the first rule whose
// predicate matches wins. A value can satisfy several predicates, e.g.
// "--shadow-offset: 2px 2px 4px rgba(0,0,0,0.1)" looks like a shadow, a color
// and a spacing value, so rule order is part of the contract.
package classifier

import (
	"regexp"
	"strings"

	"bennypowers.dev/themevars/color"
	"bennypowers.dev/themevars/token"
)

// Rule pairs a predicate with the classification it yields.
// Match receives the lower-cased name and value.
type Rule struct {
	Name   string
	Match  func(name, value string) bool
	Result token.Classification
}

var (
	pxOffsetPattern   = regexp.MustCompile(`\d+px\s+\d+px`)
	unitValuePattern  = regexp.MustCompile(`^[-+]?(?:\d+\.?\d*|\.\d+)(?:rem|em|px|%|vw|vh|ch|ex|in|cm|mm|pt|pc)$`)
	pureNumberPattern = regexp.MustCompile(`^[-+]?(?:\d+\.?\d*|\.\d+)$`)
)

var (
	colorFunctions = []string{"oklch", "hsl", "hsb", "hsv", "rgb"}
	fontNames      = []string{"font", "typography", "text"}
	fontFamilies   = []string{"sans-serif", "serif", "monospace"}
	radiusNames    = []string{"radius", "rounded"}
	spacingNames   = []string{"padding", "margin", "gap", "space", "size", "width", "height", "min", "max", "offset"}
)

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

var rules = []Rule{
	{
		Name: "shadow",
		Match: func(name, value string) bool {
			return strings.Contains(name, "shadow") ||
				strings.Contains(value, "box-shadow") ||
				pxOffsetPattern.MatchString(value)
		},
		Result: token.Classification{Type: token.TypeShadow, Category: token.CategoryEffects},
	},
	{
		Name: "color",
		Match: func(name, value string) bool {
			return containsAny(value, colorFunctions) ||
				strings.HasPrefix(value, "#") ||
				strings.Contains(name, "color") ||
				color.RawTriplePattern.MatchString(value)
		},
		Result: token.Classification{Type: token.TypeColor, Category: token.CategoryColors},
	},
	{
		Name: "font",
		Match: func(name, value string) bool {
			return containsAny(name, fontNames) || containsAny(value, fontFamilies)
		},
		Result: token.Classification{Type: token.TypeFont, Category: token.CategoryTypography},
	},
	{
		Name: "radius",
		Match: func(name, value string) bool {
			return containsAny(name, radiusNames) ||
				(strings.Contains(value, "rem") && strings.Contains(name, "border"))
		},
		Result: token.Classification{Type: token.TypeRadius, Category: token.CategorySpacing},
	},
	{
		Name: "spacing",
		Match: func(name, value string) bool {
			return containsAny(name, spacingNames) || unitValuePattern.MatchString(value)
		},
		Result: token.Classification{Type: token.TypeOther, Category: token.CategorySpacing},
	},
	{
		Name: "number",
		Match: func(_, value string) bool {
			return pureNumberPattern.MatchString(value)
		},
		Result: token.Classification{Type: token.TypeOther, Category: token.CategoryNumbers},
	},
}

// fallback applies when no rule matches.
var fallback = Rule{
	Name:   "fallback",
	Match:  func(_, _ string) bool { return true },
	Result: token.Classification{Type: token.TypeOther, Category: token.CategoryOther},
}

// Rules returns the cascade in evaluation order, ending with the fallback.
func Rules() []Rule {
	out := make([]Rule, 0, len(rules)+1)
	out = append(out, rules...)
	return append(out, fallback)
}

// Explain returns the first rule matching the declaration.
func Explain(name, value string) Rule {
	name = strings.ToLower(strings.TrimSpace(name))
	value = strings.ToLower(strings.TrimSpace(value))
	for _, r := range rules {
		if r.Match(name, value) {
			return r
		}
	}
	return fallback
}

// Classify returns the type and category for a declaration.
func Classify(name, value string) token.Classification {
	return Explain(name, value).Result
}
