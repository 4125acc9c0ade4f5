package store

import (
	"fmt"
	"log/slog"
	"supachat/domain"
	"supachat/errors"
	"supachat/mocks"
	"supachat/observability"
	"supachat/repositories"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMemoryRepository() repositories.StateRepository {
	return repositories.NewStateRepository(repositories.NewMemoryBackend(), repositories.JSONCodec{}, slog.Default(), 0)
}

func TestChatStore_Scenario(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	store := NewChatStore("widget-1", newMemoryRepository(), WithLogger(log))

	store.SetUser(&domain.User{ID: "u1"})
	store.AddMessage(domain.Message{ID: "m1", Content: "hi"})
	req.Equal(0, store.UnreadCount())
	store.SetUnreadCount(1)
	req.Equal(1, store.UnreadCount())

	req.Equal("u1", store.User().ID)
	req.Equal([]domain.Message{{ID: "m1", Content: "hi"}}, store.Messages())

	store.Reset()
	req.Nil(store.User())
	req.Empty(store.Messages())
	req.Equal(0, store.UnreadCount())
}

func TestChatStore_ResetYieldsDefaults(t *testing.T) {
	req := require.New(t)
	store := NewChatStore("widget-1", newMemoryRepository())

	store.SetSessionID(lo.ToPtr("s-1"))
	store.SetUser(&domain.User{ID: "u1"})
	store.SetCurrentRoom(&domain.Room{ID: "r1"})
	store.SetMessages([]domain.Message{{ID: "m1"}, {ID: "m2"}})
	store.SetUnreadCount(9)
	store.SetInputLocked(true)

	store.Reset()
	req.Equal(domain.NewChatState(), store.State())
}

func TestChatStore_AddMessageKeepsOrder(t *testing.T) {
	req := require.New(t)
	store := NewChatStore("widget-1", nil)

	var expected []domain.Message
	for i := range 20 {
		message := domain.Message{ID: fmt.Sprintf("m%d", i), Content: fmt.Sprintf("content %d", i)}
		expected = append(expected, message)
		store.AddMessage(message)
	}
	req.Equal(expected, store.Messages())

	replacement := []domain.Message{{ID: "x"}, {ID: "y"}}
	store.SetMessages(replacement)
	req.Equal(replacement, store.Messages())
}

func TestChatStore_AddMessageDoesNotDeduplicate(t *testing.T) {
	req := require.New(t)
	store := NewChatStore("widget-1", nil)

	store.AddMessage(domain.Message{ID: "m1", Content: "a"})
	store.AddMessage(domain.Message{ID: "m1", Content: "b"})

	req.Len(store.Messages(), 2)
}

func TestChatStore_ReadersReturnCopies(t *testing.T) {
	req := require.New(t)
	store := NewChatStore("widget-1", nil)
	input := []domain.Message{{ID: "m1", Content: "hi"}}
	store.SetMessages(input)
	store.SetUser(&domain.User{ID: "u1", Name: "Ada"})

	input[0].Content = "mutated by caller"
	store.Messages()[0].Content = "mutated by reader"
	store.User().Name = "Grace"

	req.Equal("hi", store.Messages()[0].Content)
	req.Equal("Ada", store.User().Name)
}

func TestChatStore_SetUnreadCountClampsNegative(t *testing.T) {
	req := require.New(t)
	store := NewChatStore("widget-1", nil)

	store.SetUnreadCount(-4)
	req.Equal(0, store.UnreadCount())
}

func TestChatStore_SessionSentinelIsDistinctFromAbsent(t *testing.T) {
	req := require.New(t)
	store := NewChatStore("widget-1", nil)

	_, ok := store.SessionID()
	req.False(ok)

	store.SetSessionID(lo.ToPtr(""))
	id, ok := store.SessionID()
	req.True(ok)
	req.Equal("", id)

	store.SetSessionID(nil)
	_, ok = store.SessionID()
	req.False(ok)
}

func TestChatStore_PersistenceRoundTrip(t *testing.T) {
	req := require.New(t)
	repository := newMemoryRepository()
	user := &domain.User{ID: "u1", Name: "Ada"}
	message := domain.Message{ID: "m1", Content: "hi", Role: domain.RoleUser}

	first := NewChatStore("widget-1", repository)
	first.SetUser(user)
	first.AddMessage(message)
	first.SetUnreadCount(3)

	reloaded := NewChatStore("widget-1", repository)
	req.Equal(user, reloaded.User())
	req.Equal([]domain.Message{message}, reloaded.Messages())
	req.Equal(3, reloaded.UnreadCount())

	other := NewChatStore("widget-2", repository)
	req.Equal(domain.NewChatState(), other.State())
}

func TestChatStore_EveryMutationSavesTheWholeState(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIChatStateRepository(ctrl)

	var saved []domain.ChatState
	repository.EXPECT().Load("widget-1").Return(domain.ChatState{}, false, nil).Times(1)
	repository.EXPECT().Save("widget-1", gomock.Any()).
		DoAndReturn(func(_ string, state domain.ChatState) error {
			saved = append(saved, state)
			return nil
		}).Times(3)

	store := NewChatStore("widget-1", repository)
	store.SetInputLocked(true)
	store.AddMessage(domain.Message{ID: "m1"})
	store.SetUnreadCount(2)

	req.Len(saved, 3)
	req.True(saved[0].InputLocked)
	req.Empty(saved[0].Messages)
	req.True(saved[2].InputLocked)
	req.Equal([]domain.Message{{ID: "m1"}}, saved[2].Messages)
	req.Equal(2, saved[2].UnreadCount)
}

func TestChatStore_SaveFailureIsNotFatal(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIChatStateRepository(ctrl)
	observer := mocks.NewMockObserver(ctrl)
	boom := fmt.Errorf("quota exceeded")

	observer.EXPECT().StateLoaded("widget-1", observability.LoadAbsent).Times(1)
	repository.EXPECT().Load("widget-1").Return(domain.ChatState{}, false, nil).Times(1)
	repository.EXPECT().Save("widget-1", gomock.Any()).Return(boom).Times(1)
	observer.EXPECT().PersistenceFailed("widget-1", gomock.Any()).
		Do(func(_ string, err error) {
			req.ErrorIs(err, errors.ErrPersistenceWrite)
			req.ErrorIs(err, boom)
		}).Times(1)

	store := NewChatStore("widget-1", repository, WithObserver(observer))

	var notified int
	store.Subscribe(func(Change[domain.ChatState]) { notified++ })
	store.SetUnreadCount(5)

	req.Equal(5, store.UnreadCount())
	req.Equal(1, notified)
}

func TestChatStore_MalformedPriorStateFallsBackToDefaults(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIChatStateRepository(ctrl)
	observer := mocks.NewMockObserver(ctrl)

	repository.EXPECT().Load("widget-1").
		Return(domain.ChatState{}, false, fmt.Errorf("%w: bad json", errors.ErrMalformedState)).Times(1)
	observer.EXPECT().StateLoaded("widget-1", observability.LoadMalformed).Times(1)

	store := NewChatStore("widget-1", repository, WithObserver(observer))
	req.Equal(domain.NewChatState(), store.State())
}

// flakyRepository fails the first failures loads before reading through.
type flakyRepository struct {
	repositories.StateRepository
	failures int
}

func (r *flakyRepository) Load(namespace string) (domain.ChatState, bool, error) {
	if r.failures > 0 {
		r.failures--
		return domain.ChatState{}, false, fmt.Errorf("redis read: i/o timeout")
	}
	return r.StateRepository.Load(namespace)
}

func TestChatStore_UnreadablePriorStateIsNotOverwritten(t *testing.T) {
	req := require.New(t)
	repository := newMemoryRepository()

	// Given a namespace holding a user, a message and an unread count
	seeded := NewChatStore("widget-1", repository)
	seeded.SetUser(&domain.User{ID: "u1"})
	seeded.AddMessage(domain.Message{ID: "m1"})
	seeded.SetUnreadCount(3)

	// When the next instance cannot read it at first and then mutates it
	flaky := &flakyRepository{StateRepository: repository, failures: 1}
	store := NewChatStore("widget-1", flaky)
	req.Equal(domain.NewChatState(), store.State())
	store.SetInputLocked(true)

	// Then the record is reloaded before the mutation and nothing is lost
	req.Equal("u1", store.User().ID)
	reloaded := NewChatStore("widget-1", repository)
	req.Equal("u1", reloaded.User().ID)
	req.Equal([]domain.Message{{ID: "m1"}}, reloaded.Messages())
	req.Equal(3, reloaded.UnreadCount())
	req.True(reloaded.InputLocked())
}

func TestChatStore_UnreadableBackendSuspendsSaving(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIChatStateRepository(ctrl)
	observer := mocks.NewMockObserver(ctrl)
	timeout := fmt.Errorf("%w: i/o timeout", errors.ErrBackendRead)

	// Given a backend that never answers reads
	repository.EXPECT().Load("widget-1").Return(domain.ChatState{}, false, timeout).Times(2)
	repository.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)
	observer.EXPECT().StateLoaded("widget-1", observability.LoadFailed).Times(2)
	observer.EXPECT().PersistenceFailed("widget-1", gomock.Any()).
		Do(func(_ string, err error) {
			req.ErrorIs(err, errors.ErrPersistenceWrite)
			req.ErrorIs(err, errors.ErrBackendRead)
		}).Times(1)

	store := NewChatStore("widget-1", repository, WithObserver(observer))
	var notified int
	store.Subscribe(func(Change[domain.ChatState]) { notified++ })

	// When the store is mutated
	store.SetUnreadCount(5)

	// Then the change lives in memory and reaches listeners but is never saved
	req.Equal(5, store.UnreadCount())
	req.Equal(1, notified)
}

func TestChatStore_RestoredPriorState(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIChatStateRepository(ctrl)
	observer := mocks.NewMockObserver(ctrl)
	prior := domain.ChatState{SessionID: lo.ToPtr("s-1"), Messages: []domain.Message{}, UnreadCount: 4}

	repository.EXPECT().Load("widget-1").Return(prior, true, nil).Times(1)
	observer.EXPECT().StateLoaded("widget-1", observability.LoadRestored).Times(1)

	store := NewChatStore("widget-1", repository, WithObserver(observer))
	req.Equal(prior, store.State())
	req.True(store.Persistent())
}

func TestChatStore_WithoutAdapterIsMemoryOnly(t *testing.T) {
	req := require.New(t)
	store := NewChatStore("widget-1", nil)

	req.False(store.Persistent())
	store.SetUnreadCount(2)
	req.Equal(2, store.UnreadCount())
}

func TestChatStore_EnsureSessionID(t *testing.T) {
	req := require.New(t)
	store := NewChatStore("widget-1", nil)
	calls := 0
	generate := func() (string, error) {
		calls++
		return fmt.Sprintf("id-%d", calls), nil
	}

	id, created, err := store.EnsureSessionID(generate)
	req.NoError(err)
	req.True(created)
	req.Equal("id-1", id)

	version := store.Version()
	id, created, err = store.EnsureSessionID(generate)
	req.NoError(err)
	req.False(created)
	req.Equal("id-1", id)
	req.Equal(version, store.Version())
	req.Equal(1, calls)

	store.SetSessionID(lo.ToPtr(""))
	id, created, err = store.EnsureSessionID(generate)
	req.NoError(err)
	req.True(created)
	req.Equal("id-2", id)
}

func TestChatStore_EnsureSessionIDGenerationFailure(t *testing.T) {
	req := require.New(t)
	store := NewChatStore("widget-1", nil)
	version := store.Version()

	_, created, err := store.EnsureSessionID(func() (string, error) {
		return "", fmt.Errorf("no entropy")
	})
	req.Error(err)
	req.False(created)
	_, ok := store.SessionID()
	req.False(ok)
	req.Equal(version, store.Version())
}
