/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package payload formats a token set as the create-variables host message.
package payload

import (
	"encoding/json"

	"bennypowers.dev/themevars/convert/formatter"
	"bennypowers.dev/themevars/token"
)

// Formatter outputs the create-variables message as indented JSON.
type Formatter struct{}

// New creates a new payload formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format ignores opts: the host receives names exactly as declared.
func (f *Formatter) Format(set *token.TokenSet, _ formatter.Options) ([]byte, error) {
	msg := token.NewCreateVariablesMessage(nonNilLists(set))
	out, err := json.MarshalIndent(msg, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// nonNilLists returns a shallow copy of set whose lists marshal as [].
func nonNilLists(set *token.TokenSet) *token.TokenSet {
	out := token.NewTokenSet()
	if set == nil {
		return out
	}
	for _, mode := range token.Modes() {
		out.Append(mode, set.List(mode)...)
	}
	return out
}
