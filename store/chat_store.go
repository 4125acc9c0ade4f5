// Package store holds the reactive, persisted state containers shared by
// every widget instance addressing the same namespace.
package store

import (
	"slices"
	"supachat/domain"

	"github.com/samber/lo"
)

// ChatStore is the typed handle over one namespace's ChatState.
// Mutators never fail: persistence problems are reported to the observer and
// the in-memory state stays authoritative.
type ChatStore struct {
	*Store[domain.ChatState]
}

func NewChatStore(key string, adapter PersistenceAdapter[domain.ChatState], opts ...Option) *ChatStore {
	return &ChatStore{Store: New(key, domain.NewChatState, adapter, opts...)}
}

// State returns a deep copy of the whole state.
func (c *ChatStore) State() domain.ChatState {
	return c.Get()
}

// SessionID returns the session id and whether one is set. A cleared session
// reports ("", true).
func (c *ChatStore) SessionID() (id string, ok bool) {
	c.view(func(st *domain.ChatState) {
		if st.SessionID != nil {
			id, ok = *st.SessionID, true
		}
	})
	return id, ok
}

func (c *ChatStore) User() (user *domain.User) {
	c.view(func(st *domain.ChatState) {
		if st.User != nil {
			user = lo.ToPtr(st.User.Clone())
		}
	})
	return user
}

func (c *ChatStore) CurrentRoom() (room *domain.Room) {
	c.view(func(st *domain.ChatState) {
		if st.CurrentRoom != nil {
			room = lo.ToPtr(st.CurrentRoom.Clone())
		}
	})
	return room
}

// Messages returns the history, oldest first.
func (c *ChatStore) Messages() (messages []domain.Message) {
	c.view(func(st *domain.ChatState) {
		messages = domain.CloneMessages(st.Messages)
	})
	return messages
}

func (c *ChatStore) UnreadCount() (count int) {
	c.view(func(st *domain.ChatState) {
		count = st.UnreadCount
	})
	return count
}

func (c *ChatStore) InputLocked() (locked bool) {
	c.view(func(st *domain.ChatState) {
		locked = st.InputLocked
	})
	return locked
}

// SetSessionID replaces the session id; nil clears it to absent.
func (c *ChatStore) SetSessionID(id *string) {
	if id != nil {
		id = lo.ToPtr(*id)
	}
	c.Update(func(st domain.ChatState) domain.ChatState {
		st.SessionID = id
		return st
	})
}

func (c *ChatStore) SetUser(user *domain.User) {
	if user != nil {
		user = lo.ToPtr(user.Clone())
	}
	c.Update(func(st domain.ChatState) domain.ChatState {
		st.User = user
		return st
	})
}

func (c *ChatStore) SetCurrentRoom(room *domain.Room) {
	if room != nil {
		room = lo.ToPtr(room.Clone())
	}
	c.Update(func(st domain.ChatState) domain.ChatState {
		st.CurrentRoom = room
		return st
	})
}

// SetMessages replaces the whole history with messages; nothing is merged.
func (c *ChatStore) SetMessages(messages []domain.Message) {
	history := domain.CloneMessages(messages)
	c.Update(func(st domain.ChatState) domain.ChatState {
		st.Messages = history
		return st
	})
}

// AddMessage appends message to the end of the history. Duplicate ids are kept.
func (c *ChatStore) AddMessage(message domain.Message) {
	message = message.Clone()
	c.Update(func(st domain.ChatState) domain.ChatState {
		st.Messages = append(slices.Clip(st.Messages), message)
		return st
	})
}

// SetUnreadCount stores count; negative values are clamped to zero.
func (c *ChatStore) SetUnreadCount(count int) {
	count = max(count, 0)
	c.Update(func(st domain.ChatState) domain.ChatState {
		st.UnreadCount = count
		return st
	})
}

func (c *ChatStore) SetInputLocked(locked bool) {
	c.Update(func(st domain.ChatState) domain.ChatState {
		st.InputLocked = locked
		return st
	})
}

// EnsureSessionID stores generate()'s id when no non-empty session id is
// present, atomically with respect to other writers. It returns the id in
// effect and whether it was just created. generate runs under the store lock.
func (c *ChatStore) EnsureSessionID(generate func() (string, error)) (id string, created bool, err error) {
	c.UpdateIf(func(st domain.ChatState) (domain.ChatState, bool) {
		if st.HasSession() {
			id = *st.SessionID
			return st, false
		}
		id, err = generate()
		if err != nil {
			return st, false
		}
		st.SessionID = lo.ToPtr(id)
		created = true
		return st, true
	})
	return id, created, err
}
