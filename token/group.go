/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Group is a set of tokens sharing a category.
type Group struct {
	Category Category `json:"category"`
	Tokens   []*Token `json:"tokens"`
}

// GroupByCategory groups tokens by category. Groups appear in order of the
// category's first occurrence and tokens keep their input order. Tokens
// without a category are grouped under Other. The input is not modified.
func GroupByCategory(tokens []*Token) []Group {
	order := make([]Category, 0)
	byCategory := make(map[Category][]*Token)
	for _, tok := range tokens {
		if tok == nil {
			continue
		}
		cat := tok.Category
		if cat == "" {
			cat = CategoryOther
		}
		if _, exists := byCategory[cat]; !exists {
			order = append(order, cat)
		}
		byCategory[cat] = append(byCategory[cat], tok)
	}

	groups := make([]Group, 0, len(order))
	for _, cat := range order {
		groups = append(groups, Group{Category: cat, Tokens: byCategory[cat]})
	}
	return groups
}

// Lookup returns the tokens for category, or nil.
func Lookup(groups []Group, category Category) []*Token {
	for _, g := range groups {
		if g.Category == category {
			return g.Tokens
		}
	}
	return nil
}
