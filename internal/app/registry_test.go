package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaulLeite2/AbyssConect/internal/app"
	"github.com/RaulLeite2/AbyssConect/internal/domain"
)

func TestRegistryBindUnbind(t *testing.T) {
	r := app.NewRegistry()
	conn := &fakeConn{}
	r.Bind("s1", conn, nil)

	got, ok := r.Conn("s1")
	require.True(t, ok)
	assert.Same(t, conn, got)

	assert.True(t, r.Unbind("s1"))
	assert.False(t, r.Unbind("s1"))
	_, ok = r.Conn("s1")
	assert.False(t, ok)
}

func TestRegistryCancelFiresConnectionContext(t *testing.T) {
	r := app.NewRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	r.Bind("s1", &fakeConn{}, cancel)

	assert.False(t, r.Cancel("ghost"))
	require.True(t, r.Cancel("s1"))
	select {
	case <-ctx.Done():
	default:
		t.Fatal("cancel did not fire")
	}
}

func TestRegistryLoginOverwrites(t *testing.T) {
	r := app.NewRegistry()
	first := r.Login("s1", domain.ProfilePatch{Name: "Alice", Status: domain.StatusBusy})
	assert.Equal(t, "Alice", first.Name)
	assert.Equal(t, domain.StatusBusy, first.Status)

	// Re-login replaces the record wholesale.
	second := r.Login("s1", domain.ProfilePatch{Name: "Alicia"})
	assert.Equal(t, "Alicia", second.Name)
	assert.Equal(t, domain.StatusOnline, second.Status)
	assert.Equal(t, 1, r.Count())
}

func TestRegistryUpdateRequiresLogin(t *testing.T) {
	r := app.NewRegistry()
	_, ok := r.Update("s1", domain.ProfilePatch{Name: "Ghost"})
	assert.False(t, ok)

	r.Login("s1", domain.ProfilePatch{Name: "Alice", Avatar: "a.png"})
	u, ok := r.Update("s1", domain.ProfilePatch{Name: "Alicia"})
	require.True(t, ok)
	assert.Equal(t, "Alicia", u.Name)
	// Empty patch fields leave existing values alone.
	assert.Equal(t, "a.png", u.Avatar)
}

func TestRegistrySetStatusIgnoresUnknownValue(t *testing.T) {
	r := app.NewRegistry()
	r.Login("s1", domain.ProfilePatch{Name: "Alice"})

	u, ok := r.SetStatus("s1", "sleeping")
	require.True(t, ok)
	assert.Equal(t, domain.StatusOnline, u.Status)

	u, _ = r.SetStatus("s1", domain.StatusAway)
	assert.Equal(t, domain.StatusAway, u.Status)
}

func TestRegistryGetReturnsCopy(t *testing.T) {
	r := app.NewRegistry()
	r.Login("s1", domain.ProfilePatch{Name: "Alice"})

	u, ok := r.Get("s1")
	require.True(t, ok)
	u.Name = "mutated"

	again, _ := r.Get("s1")
	assert.Equal(t, "Alice", again.Name)
}
