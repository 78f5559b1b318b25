/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/themevars/token"
)

func TestGroupByCategory(t *testing.T) {
	bg := &token.Token{Name: "background", Category: token.CategoryColors}
	radius := &token.Token{Name: "radius", Category: token.CategorySpacing}
	fg := &token.Token{Name: "foreground", Category: token.CategoryColors}
	weird := &token.Token{Name: "mystery"}
	z := &token.Token{Name: "z-index", Category: token.CategoryNumbers}

	input := []*token.Token{bg, radius, fg, weird, z}
	snapshot := append([]*token.Token(nil), input...)

	groups := token.GroupByCategory(input)
	require.Len(t, groups, 4)

	assert.Equal(t, token.CategoryColors, groups[0].Category)
	assert.Equal(t, []*token.Token{bg, fg}, groups[0].Tokens)
	assert.Equal(t, token.CategorySpacing, groups[1].Category)
	assert.Equal(t, token.CategoryOther, groups[2].Category)
	assert.Equal(t, []*token.Token{weird}, groups[2].Tokens)
	assert.Equal(t, token.CategoryNumbers, groups[3].Category)

	assert.Equal(t, snapshot, input)
	assert.Empty(t, weird.Category, "grouping must not mutate tokens")

	assert.Equal(t, []*token.Token{radius}, token.Lookup(groups, token.CategorySpacing))
	assert.Nil(t, token.Lookup(groups, token.CategoryEffects))
}

func TestGroupByCategory_Empty(t *testing.T) {
	assert.Empty(t, token.GroupByCategory(nil))
}

func TestPreviewFor(t *testing.T) {
	tests := []struct {
		name     string
		token    token.Token
		expected token.Preview
		style    string
	}{
		{
			name:     "color uses display value",
			token:    token.Token{Type: token.TypeColor, Value: "0 0% 100%", DisplayValue: "#FFFFFF"},
			expected: token.Preview{Property: "background-color", Value: "#FFFFFF"},
			style:    "background-color: #FFFFFF",
		},
		{
			name:     "color without display value falls back to value",
			token:    token.Token{Type: token.TypeColor, Value: "red"},
			expected: token.Preview{Property: "background-color", Value: "red"},
			style:    "background-color: red",
		},
		{
			name:     "font",
			token:    token.Token{Type: token.TypeFont, Value: "Inter, sans-serif"},
			expected: token.Preview{Property: "font-family", Value: "Inter, sans-serif", Sample: "Aa"},
			style:    "font-family: Inter, sans-serif",
		},
		{
			name:     "radius",
			token:    token.Token{Type: token.TypeRadius, Value: "0.5rem"},
			expected: token.Preview{Property: "border-radius", Value: "0.5rem"},
			style:    "border-radius: 0.5rem",
		},
		{
			name:     "shadow",
			token:    token.Token{Type: token.TypeShadow, Value: "0 1px 2px rgba(0,0,0,0.05)"},
			expected: token.Preview{Property: "box-shadow", Value: "0 1px 2px rgba(0,0,0,0.05)"},
			style:    "box-shadow: 0 1px 2px rgba(0,0,0,0.05)",
		},
		{
			name:     "other has no property",
			token:    token.Token{Type: token.TypeOther, Value: "1.5"},
			expected: token.Preview{Value: "1.5"},
			style:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := token.PreviewFor(&tt.token)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.style, got.Style())
		})
	}
}
