/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flatjson provides flat key-value JSON formatting, one object per mode.
package flatjson

import (
	"encoding/json"

	"bennypowers.dev/themevars/convert/formatter"
	"bennypowers.dev/themevars/token"
)

// Formatter outputs flat key-value JSON.
type Formatter struct{}

// New creates a new flat JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format maps every non-empty mode to an object of name to resolved value.
// A later declaration of the same name within a mode wins.
func (f *Formatter) Format(set *token.TokenSet, opts formatter.Options) ([]byte, error) {
	delimiter := opts.Delimiter
	if delimiter == "" {
		delimiter = "-"
	}

	result := make(map[string]map[string]string)
	for _, section := range formatter.Sections(set) {
		values := make(map[string]string, len(section.Tokens))
		for _, tok := range section.Tokens {
			key := formatter.ApplyPrefix(tok.Name, opts.Prefix, delimiter)
			values[key] = formatter.ResolvedValue(tok)
		}
		result[string(section.Mode)] = values
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
