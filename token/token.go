/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the theme token model produced by the CSS parser.
package token

// Type is the semantic type of a token.
type Type string

const (
	TypeColor  Type = "color"
	TypeFont   Type = "font"
	TypeRadius Type = "radius"
	TypeShadow Type = "shadow"
	TypeOther  Type = "other"
)

// Category is the display group of a token.
type Category string

const (
	CategoryColors     Category = "Colors"
	CategoryTypography Category = "Typography"
	CategorySpacing    Category = "Spacing"
	CategoryEffects    Category = "Effects"
	CategoryNumbers    Category = "Numbers"
	CategoryOther      Category = "Other"
)

// Classification is a type and category pair assigned together.
type Classification struct {
	Type     Type     `json:"type"`
	Category Category `json:"category"`
}

// validPairs lists every classification the classifier can produce.
var validPairs = []Classification{
	{TypeShadow, CategoryEffects},
	{TypeColor, CategoryColors},
	{TypeFont, CategoryTypography},
	{TypeRadius, CategorySpacing},
	{TypeOther, CategorySpacing},
	{TypeOther, CategoryNumbers},
	{TypeOther, CategoryOther},
}

// ValidPairs returns the seven valid type and category pairs.
func ValidPairs() []Classification {
	out := make([]Classification, len(validPairs))
	copy(out, validPairs)
	return out
}

// ValidPair reports whether t and c form one of the valid pairs.
func ValidPair(t Type, c Category) bool {
	for _, p := range validPairs {
		if p.Type == t && p.Category == c {
			return true
		}
	}
	return false
}

// Token is a single classified CSS custom property.
type Token struct {
	// Name is the property name without the leading "--".
	Name string `json:"name"`

	// Value is the trimmed right-hand side exactly as written.
	Value string `json:"value"`

	// Type is the semantic type.
	Type Type `json:"type"`

	// DisplayValue is the normalized hex for color tokens, or Value when the
	// color could not be converted. Empty for every other type.
	DisplayValue string `json:"displayValue,omitempty"`

	// Category is the display group.
	Category Category `json:"category"`

	// Source is provenance metadata, e.g. the file the token came from.
	Source string `json:"source,omitempty"`

	// Collection names the host variable collection the token belongs to.
	Collection string `json:"collection,omitempty"`
}

// CSSVariableName returns the custom property name, e.g. "--primary".
func (t *Token) CSSVariableName() string {
	if t.Name == "" {
		return ""
	}
	return "--" + t.Name
}

// Classification returns the token's type and category.
func (t *Token) Classification() Classification {
	return Classification{Type: t.Type, Category: t.Category}
}
