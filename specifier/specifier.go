/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier parses theme file specifiers: local paths, http(s) URLs
// and npm package specifiers such as "npm:@acme/theme/globals.css".
package specifier

import (
	"regexp"
	"strings"
)

// Kind indicates the type of specifier.
type Kind int

const (
	// KindLocal is a local file path.
	KindLocal Kind = iota
	// KindNPM is an npm package specifier.
	KindNPM
	// KindURL is an http or https URL.
	KindURL
)

// Specifier represents a parsed theme specifier.
type Specifier struct {
	// Kind is the type of specifier.
	Kind Kind

	// Package is the package name (e.g., "@scope/pkg" or "pkg"). Empty
	// unless Kind is KindNPM.
	Package string

	// File is the file path within the package, or the path or URL itself.
	File string

	// Raw is the original specifier string.
	Raw string
}

// npmPattern matches npm:@scope/pkg/path, npm:pkg/path, or bare npm:pkg
var npmPattern = regexp.MustCompile(`^npm:(@[^/]+/[^/]+|[^/@][^/]*)(/.*)?$`)

// Parse parses a specifier string into a Specifier struct.
func Parse(spec string) *Specifier {
	if strings.HasPrefix(spec, "npm:") {
		if matches := npmPattern.FindStringSubmatch(spec); len(matches) == 3 {
			return &Specifier{
				Kind:    KindNPM,
				Package: matches[1],
				File:    strings.TrimPrefix(matches[2], "/"),
				Raw:     spec,
			}
		}
	}

	if strings.HasPrefix(spec, "https://") || strings.HasPrefix(spec, "http://") {
		return &Specifier{Kind: KindURL, File: spec, Raw: spec}
	}

	return &Specifier{Kind: KindLocal, File: spec, Raw: spec}
}

// IsPackageSpecifier returns true if the string is a valid npm specifier.
// It uses the same validation as Parse to ensure consistency.
func IsPackageSpecifier(spec string) bool {
	return Parse(spec).Kind == KindNPM
}

// IsNPM returns true if this is an npm specifier.
func (s *Specifier) IsNPM() bool {
	return s.Kind == KindNPM
}

// IsURL returns true if this is an http or https URL.
func (s *Specifier) IsURL() bool {
	return s.Kind == KindURL
}

// IsLocal returns true if this is a local file path.
func (s *Specifier) IsLocal() bool {
	return s.Kind == KindLocal
}
