/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"bennypowers.dev/themevars/color"
	"bennypowers.dev/themevars/parser"
	"bennypowers.dev/themevars/testutil"
	"bennypowers.dev/themevars/token"
)

const sampleCSS = `:root {
  --background: 0 0% 100%;
  --accent-color: rebeccapurple;
  --radius: 0.5rem;
}
.dark {
  --background: 222.2 84% 4.9%;
}`

func sampleSet(t *testing.T) *token.TokenSet {
	t.Helper()
	set, err := parser.NewCSSParser(color.NewConverter()).Parse(sampleCSS, parser.Options{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return set
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Light Colors", "light-colors"},
		{"light-Colors", "light-colors"},
		{"--primary-foreground", "primary-foreground"},
		{"Light  Colors", "light-colors"},
		{"UPPERCASE", "uppercase"},
		{"with_underscores", "with-underscores"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := slugify(tt.input)
			if result != tt.expected {
				t.Errorf("slugify(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestToTitleCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"light", "Light"},
		{"dark", "Dark"},
		{"global", "Global"},
		{"font-sans", "Font-Sans"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := toTitleCase(tt.input)
			if result != tt.expected {
				t.Errorf("toTitleCase(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNameToCSSVar(t *testing.T) {
	if got := NameToCSSVar("primary", ""); got != "--primary" {
		t.Errorf("expected '--primary', got %q", got)
	}
	if got := NameToCSSVar("primary", "tv"); got != "--tv-primary" {
		t.Errorf("expected '--tv-primary', got %q", got)
	}
}

func TestComputeRows(t *testing.T) {
	tokens := []*token.Token{
		{Name: "bg", Value: "0 0% 100%", Type: token.TypeColor, Category: token.CategoryColors, DisplayValue: "#FFFFFF"},
		{Name: "link-color", Value: "var(--x)", Type: token.TypeColor, Category: token.CategoryColors, DisplayValue: "var(--x)"},
		{Name: "radius", Value: "4px", Type: token.TypeRadius, Category: token.CategorySpacing},
		nil,
	}

	rows := ComputeRows(tokens, token.ModeLight, "")
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if !rows[0].IsColor || rows[0].Name != "--bg" || rows[0].Mode != token.ModeLight {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].IsColor {
		t.Error("expected var() color to have no swatch")
	}
	if rows[2].IsColor || rows[2].Display != "" {
		t.Errorf("unexpected radius row: %+v", rows[2])
	}
}

func TestBuildSections(t *testing.T) {
	sections := BuildSections(sampleSet(t), "")
	if len(sections) != 2 {
		t.Fatalf("expected light and dark sections, got %d", len(sections))
	}
	if sections[0].Mode != token.ModeLight || sections[1].Mode != token.ModeDark {
		t.Errorf("unexpected section order: %s, %s", sections[0].Mode, sections[1].Mode)
	}
	if len(sections[0].Groups) != 2 || sections[0].Groups[0].Category != token.CategoryColors {
		t.Errorf("unexpected light groups: %+v", sections[0].Groups)
	}

	dark := BuildSections(sampleSet(t), "", token.ModeDark)
	if len(dark) != 1 || dark[0].Mode != token.ModeDark {
		t.Errorf("expected only the dark section, got %+v", dark)
	}

	if BuildSections(nil, "") != nil {
		t.Error("expected nil sections for nil set")
	}
}

func TestColorSwatch(t *testing.T) {
	if got := ColorSwatch("#FF0000"); got != "\x1b[48;2;255;0;0m  \x1b[0m " {
		t.Errorf("unexpected swatch %q", got)
	}
	if got := ColorSwatch("not-a-color"); got != "" {
		t.Errorf("expected empty swatch, got %q", got)
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Table(&buf, BuildSections(sampleSet(t), "")); err != nil {
		t.Fatalf("Table failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Light\n",
		"  Colors\n",
		"  Spacing\n",
		"Dark\n",
		"0 0% 100% → #FFFFFF",
		"\x1b[48;2;255;255;255m",
		"rebeccapurple\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "rebeccapurple → ") {
		t.Error("unconverted colors should not show an arrow")
	}
}

func TestGenerateTOC(t *testing.T) {
	toc := GenerateTOC(BuildSections(sampleSet(t), ""))

	for _, want := range []string{
		"## Table Of Contents",
		"- [Light](#light)",
		"  - [Colors](#light-colors)",
		"  - [Spacing](#light-spacing)",
		"- [Dark](#dark)",
	} {
		if !strings.Contains(toc, want) {
			t.Errorf("TOC missing %q:\n%s", want, toc)
		}
	}
}

func TestFormatTokenName(t *testing.T) {
	row := Row{Name: "--primary"}
	if got := formatTokenName(row, false); got != "--primary" {
		t.Errorf("expected plain name, got %q", got)
	}
	if got := formatTokenName(row, true); got != "[--primary](#primary)" {
		t.Errorf("expected linked name, got %q", got)
	}
}

func TestMarkdownGolden(t *testing.T) {
	var buf bytes.Buffer
	if err := Markdown(&buf, BuildSections(sampleSet(t), ""), MarkdownOptions{}); err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}

	actual := buf.String()
	testutil.UpdateGoldenFile(t, "fixtures/markdown/modes/expected.md", []byte(actual))
	expected := testutil.LoadFixtureFile(t, "fixtures/markdown/modes/expected.md")

	if actual != string(expected) {
		t.Errorf("markdown output mismatch.\n\nExpected:\n%s\n\nActual:\n%s", expected, actual)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, nil); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("expected empty array, got %q", buf.String())
	}

	buf.Reset()
	if err := JSON(&buf, Rows(BuildSections(sampleSet(t), ""))); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	var rows []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0]["displayValue"] != "#FFFFFF" || rows[0]["mode"] != "light" {
		t.Errorf("unexpected first row: %v", rows[0])
	}
	if _, ok := rows[2]["displayValue"]; ok {
		t.Errorf("radius row should omit displayValue: %v", rows[2])
	}
}

func TestNames(t *testing.T) {
	var buf bytes.Buffer
	if err := Names(&buf, []Row{{Name: "--a"}, {Name: "--b"}}); err != nil {
		t.Fatalf("Names failed: %v", err)
	}
	if buf.String() != "--a\n--b\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}
