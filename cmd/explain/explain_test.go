/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package explain

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/themevars/color"
	"bennypowers.dev/themevars/token"
)

func converter() *color.Converter {
	return color.NewConverter(color.WithCache(color.NewCache(16)))
}

func TestExplain(t *testing.T) {
	tests := []struct {
		name, value string
		rule        string
		typ         token.Type
		category    token.Category
		display     string
		property    string
	}{
		{"--background", "0 0% 100%", "color", token.TypeColor, token.CategoryColors, "#FFFFFF", "background-color"},
		{"shadow-sm", "0 1px 2px rgba(0,0,0,0.05)", "shadow", token.TypeShadow, token.CategoryEffects, "", "box-shadow"},
		{"font-sans", "Inter, sans-serif", "font", token.TypeFont, token.CategoryTypography, "", "font-family"},
		{"radius", "0.5rem", "radius", token.TypeRadius, token.CategorySpacing, "", "border-radius"},
		{"gutter", "12px", "spacing", token.TypeOther, token.CategorySpacing, "", ""},
		{"opacity", "0.5", "number", token.TypeOther, token.CategoryNumbers, "", ""},
		{"ease", "cubic-bezier(0.4, 0, 0.2, 1)", "fallback", token.TypeOther, token.CategoryOther, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Explain(tt.name, tt.value, converter())
			assert.Equal(t, strings.TrimPrefix(tt.name, "--"), e.Name)
			assert.Equal(t, tt.rule, e.Rule)
			assert.Equal(t, tt.typ, e.Type)
			assert.Equal(t, tt.category, e.Category)
			assert.Equal(t, tt.display, e.DisplayValue)
			assert.Equal(t, tt.property, e.Preview.Property)
		})
	}
}

func TestExplain_UnconvertibleColorKeepsValue(t *testing.T) {
	e := Explain("border-color", "currentColor", converter())
	assert.Equal(t, token.TypeColor, e.Type)
	assert.Equal(t, "currentColor", e.DisplayValue)
}

func TestDeclaration(t *testing.T) {
	name, value, err := declaration([]string{"primary", "#fff"})
	require.NoError(t, err)
	assert.Equal(t, "primary", name)
	assert.Equal(t, "#fff", value)

	name, value, err = declaration([]string{"--radius: 0.5rem;"})
	require.NoError(t, err)
	e := Explain(name, value, converter())
	assert.Equal(t, "radius", e.Name)
	assert.Equal(t, "0.5rem", e.Value)

	_, _, err = declaration([]string{"radius 0.5rem"})
	assert.Error(t, err)

	_, _, err = declaration(nil)
	assert.Error(t, err)
}

func TestPrintText(t *testing.T) {
	var buf bytes.Buffer
	printText(&buf, Explain("primary", "222.2 47.4% 11.2%", converter()))

	out := buf.String()
	assert.Contains(t, out, "rule:      color\n")
	assert.Contains(t, out, "display:   #")
	assert.Contains(t, out, "preview:   background-color: #")
}

func TestPrintRules(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRules(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "1. shadow"))
	assert.True(t, strings.HasPrefix(lines[6], "7. fallback"))
}
