/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Mode names one of the three lists in a TokenSet.
type Mode string

const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeGlobal Mode = "global"
)

// Modes returns the modes in display order.
func Modes() []Mode {
	return []Mode{ModeLight, ModeDark, ModeGlobal}
}

// TokenSet partitions tokens into light, dark and global contexts.
// Each list keeps source declaration order.
type TokenSet struct {
	Light  []*Token `json:"light"`
	Dark   []*Token `json:"dark"`
	Global []*Token `json:"global"`
}

// NewTokenSet returns an empty set whose lists marshal as [] rather than null.
func NewTokenSet() *TokenSet {
	return &TokenSet{
		Light:  []*Token{},
		Dark:   []*Token{},
		Global: []*Token{},
	}
}

// List returns the tokens for mode.
func (s *TokenSet) List(mode Mode) []*Token {
	switch mode {
	case ModeLight:
		return s.Light
	case ModeDark:
		return s.Dark
	case ModeGlobal:
		return s.Global
	default:
		return nil
	}
}

// Append adds tokens to the list for mode.
func (s *TokenSet) Append(mode Mode, tokens ...*Token) {
	switch mode {
	case ModeLight:
		s.Light = append(s.Light, tokens...)
	case ModeDark:
		s.Dark = append(s.Dark, tokens...)
	case ModeGlobal:
		s.Global = append(s.Global, tokens...)
	}
}

// Len returns the total number of tokens across all modes.
func (s *TokenSet) Len() int {
	return len(s.Light) + len(s.Dark) + len(s.Global)
}

// IsEmpty reports whether the set holds no tokens.
func (s *TokenSet) IsEmpty() bool {
	return s.Len() == 0
}

// All returns every token, light first, then dark, then global.
func (s *TokenSet) All() []*Token {
	all := make([]*Token, 0, s.Len())
	all = append(all, s.Light...)
	all = append(all, s.Dark...)
	all = append(all, s.Global...)
	return all
}
