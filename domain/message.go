// Package domain contains core concepts of the chat widget.
// This file defines Message records and related rules.
// Messages are appended to a history and never edited in place by the store.
package domain

import (
	"fmt"
	"maps"
	"supachat/errors"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleAgent     Role = "agent"
	RoleSystem    Role = "system"
)

var Roles = []Role{RoleUser, RoleAssistant, RoleAgent, RoleSystem}

func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !lo.Contains(Roles, role) {
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownRole, s)
	}
	return role, nil
}

// Message represents one entry of a chat history.
type Message struct {
	ID        string            `json:"id"`
	RoomID    string            `json:"roomId,omitempty"`
	SessionID string            `json:"sessionId,omitempty"`
	UserID    string            `json:"userId,omitempty"`
	Role      Role              `json:"role,omitempty"`
	Content   string            `json:"content"`
	CreatedAt time.Time         `json:"createdAt"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// NewMessage builds a message with a fresh identifier, stamped now.
func NewMessage(sessionID string, role Role, content string) Message {
	return Message{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}

func (m Message) Clone() Message {
	m.Metadata = maps.Clone(m.Metadata)
	return m
}
