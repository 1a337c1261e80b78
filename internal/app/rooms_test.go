package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaulLeite2/AbyssConect/internal/app"
	"github.com/RaulLeite2/AbyssConect/internal/core"
	"github.com/RaulLeite2/AbyssConect/internal/domain"
)

func seededRooms() *app.RoomManager {
	m := app.NewRoomManager()
	m.Seed([]*domain.Room{
		{ID: "general", Name: "General", Limit: 0},
		{ID: "duo", Name: "Duo", Limit: 2},
	})
	return m
}

func TestRoomEnsureJoinable(t *testing.T) {
	m := seededRooms()

	assert.NoError(t, m.EnsureJoinable("general"))
	assert.ErrorIs(t, m.EnsureJoinable("nope"), app.ErrRoomNotFound)

	require.NoError(t, m.Add("s1", "duo"))
	require.NoError(t, m.Add("s2", "duo"))
	assert.ErrorIs(t, m.EnsureJoinable("duo"), app.ErrRoomFull)
	assert.ErrorIs(t, m.Add("s3", "duo"), app.ErrRoomFull)
}

func TestRoomZeroLimitIsUnbounded(t *testing.T) {
	m := seededRooms()
	for _, sid := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, m.Add(core.SessionID(sid), "general"))
	}
	assert.Equal(t, 5, m.MemberCount("general"))
}

func TestRoomRemoveNonMember(t *testing.T) {
	m := seededRooms()
	require.NoError(t, m.Add("s1", "general"))

	assert.False(t, m.Remove("s1", "duo"))
	assert.False(t, m.Remove("ghost", "general"))
	assert.False(t, m.Remove("s1", "nope"))
	assert.True(t, m.Remove("s1", "general"))
	assert.False(t, m.Remove("s1", "general"))
}

func TestRoomRoomsOf(t *testing.T) {
	m := seededRooms()
	require.NoError(t, m.Add("s1", "general"))

	assert.Equal(t, []domain.RoomID{"general"}, m.RoomsOf("s1"))
	assert.Empty(t, m.RoomsOf("ghost"))
}

func TestRoomCreateGeneratesUniqueIDs(t *testing.T) {
	m := seededRooms()
	r1 := m.Create("One", 0, "s1")
	r2 := m.Create("Two", 4, "s2")

	assert.NotEqual(t, r1.ID, r2.ID)
	got, ok := m.Get(r2.ID)
	require.True(t, ok)
	assert.Equal(t, "Two", got.Name)
	assert.Equal(t, 4, got.Limit)
	assert.Equal(t, 4, m.Count())
}
