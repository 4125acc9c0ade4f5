// Package domain contains core concepts of the chat widget.
// This file defines ChatState, the unit of persistence of one namespace.
package domain

import (
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

// ChatState is everything a widget needs to survive a remount or a reload.
// The JSON layout is the persisted record: exactly these six fields, no version tag.
//
// SessionID distinguishes absent (nil) from the empty-string sentinel written
// when a session is cleared.
type ChatState struct {
	SessionID   *string   `json:"sessionId"`
	User        *User     `json:"user"`
	CurrentRoom *Room     `json:"currentRoom"`
	Messages    []Message `json:"messages"`
	UnreadCount int       `json:"unreadCount" validate:"gte=0"`
	InputLocked bool      `json:"inputLocked"`
}

// NewChatState returns the initial state: no session, user or room,
// an empty history, nothing unread and input unlocked.
func NewChatState() ChatState {
	return ChatState{
		Messages: []Message{},
	}
}

// Clone returns a deep copy sharing no pointers, slices or maps with s.
func (s ChatState) Clone() ChatState {
	c := ChatState{
		UnreadCount: s.UnreadCount,
		InputLocked: s.InputLocked,
		Messages:    CloneMessages(s.Messages),
	}
	if s.SessionID != nil {
		c.SessionID = lo.ToPtr(*s.SessionID)
	}
	if s.User != nil {
		c.User = lo.ToPtr(s.User.Clone())
	}
	if s.CurrentRoom != nil {
		c.CurrentRoom = lo.ToPtr(s.CurrentRoom.Clone())
	}
	return c
}

// Validate checks the invariants a decoded record must hold before it may
// seed a store.
func (s ChatState) Validate() error {
	return validate.Struct(s)
}

// Normalize turns a decoded record into a canonical state: a missing history
// becomes an empty one.
func (s ChatState) Normalize() ChatState {
	if s.Messages == nil {
		s.Messages = []Message{}
	}
	return s
}

// HasSession reports whether a non-empty session id is present.
func (s ChatState) HasSession() bool {
	return s.SessionID != nil && *s.SessionID != ""
}

// CloneMessages deep copies a message history.
func CloneMessages(messages []Message) []Message {
	return lo.Map(messages, func(m Message, _ int) Message {
		return m.Clone()
	})
}
