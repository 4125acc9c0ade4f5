// Package domain contains core concepts of the chat widget.
// This file defines the User record of the visitor chatting through the widget.
// No runtime, persistence, or UI logic should be added here.
package domain

import "maps"

// User is the visitor (or agent) currently attached to a widget.
type User struct {
	ID        string            `json:"id"`
	Name      string            `json:"name,omitempty"`
	Email     string            `json:"email,omitempty"`
	AvatarURL string            `json:"avatarUrl,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

func (u User) Clone() User {
	u.Metadata = maps.Clone(u.Metadata)
	return u
}
