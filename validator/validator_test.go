/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator_test

import (
	"strings"
	"testing"

	"bennypowers.dev/themevars/color"
	"bennypowers.dev/themevars/parser"
	"bennypowers.dev/themevars/testutil"
	"bennypowers.dev/themevars/token"
	"bennypowers.dev/themevars/validator"
)

func parse(t *testing.T, css string) *token.TokenSet {
	t.Helper()
	set, err := parser.NewCSSParser(color.NewConverter()).Parse(css, parser.Options{})
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return set
}

func TestValidate_ParsedFixturesAreClean(t *testing.T) {
	for _, fixture := range []string{"shadcn", "tweakcn", "tailwind-v4", "single-mode", "malformed"} {
		t.Run(fixture, func(t *testing.T) {
			css := testutil.LoadFixtureFile(t, "fixtures/css/"+fixture+"/theme.css")
			if errs := validator.Validate(parse(t, string(css))); len(errs) != 0 {
				t.Errorf("expected no problems, got %d: %v", len(errs), errs)
			}
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	if errs := validator.Validate(nil); errs != nil {
		t.Errorf("expected nil, got %v", errs)
	}
}

func TestValidate_InvalidPair(t *testing.T) {
	set := token.NewTokenSet()
	set.Append(token.ModeLight, &token.Token{Name: "x", Value: "1", Type: token.TypeFont, Category: token.CategoryColors})

	errs := validator.Validate(set)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if errs[0].Path != "light.x" {
		t.Errorf("expected path 'light.x', got %q", errs[0].Path)
	}
	if errs[0].IsWarning() {
		t.Error("expected an error, got a warning")
	}
	if !strings.Contains(errs[0].Message, "cannot belong") {
		t.Errorf("unexpected message: %s", errs[0].Message)
	}
}

func TestValidate_DisplayValueMismatch(t *testing.T) {
	set := token.NewTokenSet()
	set.Append(token.ModeGlobal,
		&token.Token{Name: "bg", Value: "#fff", Type: token.TypeColor, Category: token.CategoryColors},
		&token.Token{Name: "r", Value: "4px", Type: token.TypeRadius, Category: token.CategorySpacing, DisplayValue: "4px"},
	)

	errs := validator.Validate(set)
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0].Message, "no display value") {
		t.Errorf("unexpected message: %s", errs[0].Message)
	}
	if !strings.Contains(errs[1].Message, "radius token has a display value") {
		t.Errorf("unexpected message: %s", errs[1].Message)
	}
}

func TestValidate_UnrecognizedColor(t *testing.T) {
	set := parse(t, `:root {
  --accent-color: rebeccapurple;
  --link-color: var(--primary);
}`)

	errs := validator.ValidateWithPath(set, "theme.css")
	if len(errs) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(errs), errs)
	}
	if !errs[0].IsWarning() {
		t.Error("expected a warning")
	}
	if errs[0].Path != "global.link-color" {
		t.Errorf("expected path 'global.link-color', got %q", errs[0].Path)
	}
	if !strings.HasPrefix(errs[0].Error(), "theme.css: global.link-color: unrecognized color") {
		t.Errorf("unexpected error string: %s", errs[0].Error())
	}
}

func TestValidate_DuplicateNames(t *testing.T) {
	set := parse(t, `:root { --a: 1; --a: 2; }
.dark { --a: 3; }`)

	errs := validator.Validate(set)
	if len(errs) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(errs), errs)
	}
	if errs[0].Path != "light.a" || !errs[0].IsWarning() {
		t.Errorf("unexpected problem: %+v", errs[0])
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  validator.ValidationError
		want string
	}{
		{"message only", validator.ValidationError{Message: "bad"}, "bad"},
		{"with path", validator.ValidationError{Path: "light.x", Message: "bad"}, "light.x: bad"},
		{
			"everything",
			validator.ValidationError{FilePath: "a.css", Path: "dark.y", Message: "bad", Suggestion: "fix it"},
			"a.css: dark.y: bad (fix it)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
