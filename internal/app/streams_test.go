package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaulLeite2/AbyssConect/internal/app"
	"github.com/RaulLeite2/AbyssConect/internal/core"
	"github.com/RaulLeite2/AbyssConect/internal/domain"
)

func TestStreamStopOnlyByBroadcaster(t *testing.T) {
	r := app.NewStreamRegistry()
	st := r.Start("alice", "1080p", 30)
	_, ok := r.Watch("bob", st.ID)
	require.True(t, ok)

	scope, ok := r.Stop(st.ID, "bob")
	assert.False(t, ok)
	assert.Nil(t, scope)
	assert.Equal(t, 1, r.Count())

	scope, ok = r.Stop(st.ID, "alice")
	require.True(t, ok)
	assert.ElementsMatch(t, scope, []core.SessionID{"alice", "bob"})
	assert.Equal(t, 0, r.Count())

	// Stopping again reports nothing to notify.
	_, ok = r.Stop(st.ID, "alice")
	assert.False(t, ok)
}

func TestStreamWatchCountsViewers(t *testing.T) {
	r := app.NewStreamRegistry()
	st := r.Start("alice", "", 0)

	n, ok := r.Watch("bob", st.ID)
	require.True(t, ok)
	assert.Equal(t, 1, n)

	// Watching twice is idempotent.
	n, _ = r.Watch("bob", st.ID)
	assert.Equal(t, 1, n)

	n, _ = r.Watch("cleo", st.ID)
	assert.Equal(t, 2, n)

	_, ok = r.Watch("bob", "nope")
	assert.False(t, ok)
}

func TestStreamRemoveViewerTolerant(t *testing.T) {
	r := app.NewStreamRegistry()
	st := r.Start("alice", "", 0)
	r.Watch("bob", st.ID)

	r.RemoveViewer("bob", st.ID)
	r.RemoveViewer("bob", st.ID)
	r.RemoveViewer("bob", "gone")

	_, viewers, ok := r.Get(st.ID)
	require.True(t, ok)
	assert.Equal(t, 0, viewers)
}

func TestStreamIndexesByBroadcasterAndViewer(t *testing.T) {
	r := app.NewStreamRegistry()
	s1 := r.Start("alice", "", 0)
	s2 := r.Start("bob", "", 0)
	r.Watch("alice", s2.ID)
	r.Watch("cleo", s1.ID)
	r.Watch("cleo", s2.ID)

	assert.Equal(t, []domain.StreamID{s1.ID}, r.StreamsOf("alice"))
	assert.ElementsMatch(t, r.Watching("cleo"), []domain.StreamID{s1.ID, s2.ID})
	assert.Equal(t, []domain.StreamID{s2.ID}, r.Watching("alice"))
	assert.Empty(t, r.StreamsOf("ghost"))
}
