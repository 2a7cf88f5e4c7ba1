package memory

import (
	"testing"

	"campus-assistant-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepositoryAppendTurns(t *testing.T) {
	repo := NewSessionRepository()

	session := repo.AppendTurns("session-1", "user-1",
		store.Turn{Role: "user", Content: "hello"},
		store.Turn{Role: "assistant", Content: "hi!"},
	)
	require.Len(t, session.History, 2)

	got, found := repo.Get("session-1")
	require.True(t, found)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, "hello", got.History[0].Content)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestSessionRepositoryBoundsHistory(t *testing.T) {
	repo := NewSessionRepository()

	for i := 0; i < maxCachedTurns; i++ {
		repo.AppendTurns("session-1", "user-1",
			store.Turn{Role: "user", Content: "question"},
			store.Turn{Role: "assistant", Content: "answer"},
		)
	}

	got, found := repo.Get("session-1")
	require.True(t, found)
	assert.Len(t, got.History, maxCachedTurns)
}

func TestSessionRepositoryMiss(t *testing.T) {
	repo := NewSessionRepository()

	_, found := repo.Get("nope")
	assert.False(t, found)

	repo.AppendTurns("session-1", "user-1", store.Turn{Role: "user", Content: "hi"})
	repo.Delete("session-1")
	_, found = repo.Get("session-1")
	assert.False(t, found)
}
