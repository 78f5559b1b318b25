/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Message types exchanged with the host design tool.
const (
	MessageCreateVariables  = "create-variables"
	MessageVariablesCreated = "variables-created"
	MessageVariablesFailed  = "variables-failed"
)

// CreateVariablesMessage is the payload forwarded to the host to
// materialize a TokenSet as design variables.
type CreateVariablesMessage struct {
	Type   string   `json:"type"`
	Tokens TokenSet `json:"tokens"`
}

// NewCreateVariablesMessage wraps set without altering it. A nil set
// produces empty lists.
func NewCreateVariablesMessage(set *TokenSet) CreateVariablesMessage {
	if set == nil {
		set = NewTokenSet()
	}
	return CreateVariablesMessage{
		Type:   MessageCreateVariables,
		Tokens: *set,
	}
}

// VariablesResult is the host's reply to CreateVariablesMessage.
type VariablesResult struct {
	Type    string `json:"type"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
