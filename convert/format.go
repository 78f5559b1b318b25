/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert serializes parsed token sets to output formats.
package convert

import (
	"fmt"
	"strings"

	"bennypowers.dev/themevars/convert/formatter"
	"bennypowers.dev/themevars/convert/formatter/css"
	"bennypowers.dev/themevars/convert/formatter/dtcg"
	"bennypowers.dev/themevars/convert/formatter/flatjson"
	"bennypowers.dev/themevars/convert/formatter/payload"
	"bennypowers.dev/themevars/token"
)

// Format represents an output format for token set serialization.
type Format string

const (
	// FormatJSON outputs the create-variables host message (default).
	FormatJSON Format = "json"

	// FormatFlatJSON outputs one flat name to value object per mode.
	FormatFlatJSON Format = "flat"

	// FormatDTCG outputs DTCG-compliant JSON grouped by mode.
	FormatDTCG Format = "dtcg"

	// FormatCSS outputs normalized :root and .dark blocks.
	FormatCSS Format = "css"

	// FormatHostCSS outputs normalized :host and :host(.dark) blocks.
	FormatHostCSS Format = "host-css"
)

// Options configures conversion.
type Options struct {
	// Prefix is prepended to every emitted name. Ignored by FormatJSON.
	Prefix string

	// Delimiter joins Prefix and name. Defaults to "-".
	Delimiter string
}

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatFlatJSON),
		string(FormatDTCG),
		string(FormatCSS),
		string(FormatHostCSS),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "payload", "":
		return FormatJSON, nil
	case "flat", "flat-json":
		return FormatFlatJSON, nil
	case "dtcg":
		return FormatDTCG, nil
	case "css":
		return FormatCSS, nil
	case "host-css", "host":
		return FormatHostCSS, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// FormatTokenSet converts set to the specified output format.
func FormatTokenSet(set *token.TokenSet, format Format, opts Options) ([]byte, error) {
	fmtOpts := formatter.Options{
		Prefix:    opts.Prefix,
		Delimiter: opts.Delimiter,
	}

	var f formatter.Formatter
	switch format {
	case FormatJSON:
		f = payload.New()
	case FormatFlatJSON:
		f = flatjson.New()
	case FormatDTCG:
		f = dtcg.New()
	case FormatCSS:
		f = css.New()
	case FormatHostCSS:
		f = css.NewWithOptions(css.Options{Selector: css.SelectorHost})
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return f.Format(set, fmtOpts)
}
