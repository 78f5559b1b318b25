/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import "fmt"

// CDN names a registry mirror that serves raw package files.
type CDN string

const (
	CDNUnpkg    CDN = "unpkg"
	CDNJsdelivr CDN = "jsdelivr"
)

// ParseCDN converts a string to a CDN.
func ParseCDN(s string) (CDN, error) {
	switch CDN(s) {
	case CDNUnpkg, CDNJsdelivr:
		return CDN(s), nil
	default:
		return "", fmt.Errorf("unknown CDN: %q (valid: unpkg, jsdelivr)", s)
	}
}

// CDNURL returns the CDN URL for an npm: specifier. The zero CDN selects
// unpkg. Returns ("", false) for other specifiers or specifiers without a
// file component.
func CDNURL(spec string, cdn CDN) (string, bool) {
	parsed := Parse(spec)
	if parsed.Kind != KindNPM || parsed.Package == "" || parsed.File == "" {
		return "", false
	}
	switch cdn {
	case CDNJsdelivr:
		return "https://cdn.jsdelivr.net/npm/" + parsed.Package + "/" + parsed.File, true
	case CDNUnpkg, "":
		return "https://unpkg.com/" + parsed.Package + "/" + parsed.File, true
	default:
		return "", false
	}
}
