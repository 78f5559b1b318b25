/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package dtcg provides DTCG-compliant JSON formatting for theme tokens.
//
// Each non-empty mode becomes a top-level group. Tokens keep their raw
// declaration and category under the "bennypowers.dev/themevars" extension.
package dtcg

import (
	"encoding/json"
	"strconv"
	"strings"

	"bennypowers.dev/themevars/convert/formatter"
	"bennypowers.dev/themevars/token"
)

// ExtensionKey namespaces themevars metadata in $extensions.
const ExtensionKey = "bennypowers.dev/themevars"

// DTCG $type values.
const (
	TypeColor      = "color"
	TypeFontFamily = "fontFamily"
	TypeDimension  = "dimension"
	TypeShadow     = "shadow"
	TypeNumber     = "number"
)

// Formatter outputs DTCG-compliant JSON.
type Formatter struct{}

// New creates a new DTCG formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts set to DTCG JSON.
func (f *Formatter) Format(set *token.TokenSet, opts formatter.Options) ([]byte, error) {
	out, err := json.MarshalIndent(Serialize(set, opts), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// Serialize builds the DTCG document for set.
func Serialize(set *token.TokenSet, opts formatter.Options) map[string]any {
	delimiter := opts.Delimiter
	if delimiter == "" {
		delimiter = "-"
	}

	root := make(map[string]any)
	for _, section := range formatter.Sections(set) {
		group := make(map[string]any, len(section.Tokens))
		for _, tok := range section.Tokens {
			group[formatter.ApplyPrefix(tok.Name, opts.Prefix, delimiter)] = serializeToken(tok)
		}
		root[string(section.Mode)] = group
	}
	return root
}

func serializeToken(tok *token.Token) map[string]any {
	typ, value := TypeAndValue(tok)
	out := map[string]any{
		"$value": value,
		"$extensions": map[string]any{
			ExtensionKey: map[string]any{
				"category": string(tok.Category),
				"value":    tok.Value,
			},
		},
	}
	if typ != "" {
		out["$type"] = typ
	}
	return out
}

// TypeAndValue maps a token to its DTCG $type and $value. Tokens with no
// DTCG equivalent get an empty type and their raw value.
func TypeAndValue(tok *token.Token) (string, any) {
	switch tok.Type {
	case token.TypeColor:
		if strings.HasPrefix(tok.DisplayValue, "#") {
			return TypeColor, tok.DisplayValue
		}
		return "", tok.Value
	case token.TypeFont:
		families := formatter.SplitFontFamilies(tok.Value)
		if len(families) == 1 {
			return TypeFontFamily, families[0]
		}
		return TypeFontFamily, families
	case token.TypeRadius:
		return TypeDimension, tok.Value
	case token.TypeShadow:
		return TypeShadow, tok.Value
	}

	switch tok.Category {
	case token.CategorySpacing:
		return TypeDimension, tok.Value
	case token.CategoryNumbers:
		if n, err := strconv.ParseFloat(tok.Value, 64); err == nil {
			return TypeNumber, n
		}
	}
	return "", tok.Value
}
