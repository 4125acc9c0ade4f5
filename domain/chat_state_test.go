package domain

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestNewChatState_Defaults(t *testing.T) {
	req := require.New(t)
	state := NewChatState()

	req.Nil(state.SessionID)
	req.Nil(state.User)
	req.Nil(state.CurrentRoom)
	req.NotNil(state.Messages)
	req.Empty(state.Messages)
	req.Zero(state.UnreadCount)
	req.False(state.InputLocked)
	req.False(state.HasSession())
}

func TestChatState_Clone_SharesNothing(t *testing.T) {
	req := require.New(t)
	original := ChatState{
		SessionID:   lo.ToPtr("s-1"),
		User:        &User{ID: "u1", Metadata: map[string]string{"plan": "pro"}},
		CurrentRoom: &Room{ID: "r1", Name: "support"},
		Messages: []Message{
			{ID: "m1", Content: "hi", Metadata: map[string]string{"lang": "en"}},
		},
		UnreadCount: 2,
		InputLocked: true,
	}

	clone := original.Clone()
	req.Equal(original, clone)

	*clone.SessionID = "s-2"
	clone.User.Metadata["plan"] = "free"
	clone.CurrentRoom.Name = "sales"
	clone.Messages[0].Content = "changed"
	clone.Messages[0].Metadata["lang"] = "fr"

	req.Equal("s-1", *original.SessionID)
	req.Equal("pro", original.User.Metadata["plan"])
	req.Equal("support", original.CurrentRoom.Name)
	req.Equal("hi", original.Messages[0].Content)
	req.Equal("en", original.Messages[0].Metadata["lang"])
}

func TestCloneMessages_SharesNothing(t *testing.T) {
	req := require.New(t)
	original := []Message{
		{ID: "m1", Content: "hi", Metadata: map[string]string{"lang": "en"}},
		{ID: "m2", Content: "bye"},
	}

	clone := CloneMessages(original)
	req.Equal(original, clone)

	clone[0].Metadata["lang"] = "fr"
	clone[1].Content = "changed"
	clone = append(clone, Message{ID: "m3"})

	req.Equal("en", original[0].Metadata["lang"])
	req.Equal("bye", original[1].Content)
	req.Len(original, 2)
	req.Empty(CloneMessages(nil))
}

func TestChatState_HasSession(t *testing.T) {
	req := require.New(t)
	req.False(ChatState{}.HasSession())
	req.False(ChatState{SessionID: lo.ToPtr("")}.HasSession())
	req.True(ChatState{SessionID: lo.ToPtr("abc")}.HasSession())
}

func TestChatState_Validate(t *testing.T) {
	req := require.New(t)
	req.NoError(NewChatState().Validate())
	req.NoError(ChatState{UnreadCount: 7}.Validate())
	req.Error(ChatState{UnreadCount: -1}.Validate())
}

func TestChatState_Normalize(t *testing.T) {
	req := require.New(t)
	req.Equal([]Message{}, ChatState{}.Normalize().Messages)

	history := []Message{{ID: "m1"}}
	req.Equal(history, ChatState{Messages: history}.Normalize().Messages)
}

func TestNewMessage(t *testing.T) {
	req := require.New(t)
	before := time.Now().UTC()
	msg := NewMessage("s-1", RoleUser, "hello")

	req.NotEmpty(msg.ID)
	req.Equal("s-1", msg.SessionID)
	req.Equal(RoleUser, msg.Role)
	req.Equal("hello", msg.Content)
	req.False(msg.CreatedAt.Before(before))
	req.NotEqual(msg.ID, NewMessage("s-1", RoleUser, "hello").ID)
}
