/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// FontSample is the text shown when previewing a font token.
const FontSample = "Aa"

// Preview describes how a renderer should present a single token.
type Preview struct {
	// Property is the CSS property the value applies to, empty when the
	// token has no visual preview.
	Property string `json:"property,omitempty"`

	// Value is the CSS value to render.
	Value string `json:"value"`

	// Sample is placeholder text for typography previews.
	Sample string `json:"sample,omitempty"`
}

// Style returns the preview as an inline CSS declaration, or "".
func (p Preview) Style() string {
	if p.Property == "" {
		return ""
	}
	return p.Property + ": " + p.Value
}

// PreviewFor formats a token's preview according to its type.
func PreviewFor(t *Token) Preview {
	switch t.Type {
	case TypeColor:
		value := t.DisplayValue
		if value == "" {
			value = t.Value
		}
		return Preview{Property: "background-color", Value: value}
	case TypeFont:
		return Preview{Property: "font-family", Value: t.Value, Sample: FontSample}
	case TypeRadius:
		return Preview{Property: "border-radius", Value: t.Value}
	case TypeShadow:
		return Preview{Property: "box-shadow", Value: t.Value}
	default:
		return Preview{Value: t.Value}
	}
}
