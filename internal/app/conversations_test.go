package app_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaulLeite2/AbyssConect/internal/app"
	"github.com/RaulLeite2/AbyssConect/internal/domain"
)

func msg(from, to, body string) *domain.Message {
	sender := domain.User{ID: from, Name: from}
	return domain.NewMessage(&sender, to, body, domain.MessageText)
}

func TestConversationKeyIsSymmetric(t *testing.T) {
	s := app.NewConversationStore(0)

	for i := 0; i < 6; i++ {
		if i%2 == 0 {
			s.Append("alice", "bob", msg("alice", "bob", fmt.Sprintf("m%d", i)))
		} else {
			s.Append("bob", "alice", msg("bob", "alice", fmt.Sprintf("m%d", i)))
		}
	}

	ab := s.History("alice", "bob")
	ba := s.History("bob", "alice")
	require.Len(t, ab, 6)
	assert.Equal(t, ab, ba)
	for i, m := range ab {
		assert.Equal(t, fmt.Sprintf("m%d", i), m.Body)
	}
	assert.Equal(t, 1, s.Count())
}

func TestConversationHistoryUnknownPairIsEmpty(t *testing.T) {
	s := app.NewConversationStore(0)
	assert.Empty(t, s.History("alice", "nobody"))
	assert.Equal(t, 0, s.Count())
}

func TestConversationCapDropsOldest(t *testing.T) {
	s := app.NewConversationStore(3)

	for i := 0; i < 5; i++ {
		s.Append("alice", "bob", msg("alice", "bob", fmt.Sprintf("m%d", i)))
	}

	h := s.History("alice", "bob")
	require.Len(t, h, 3)
	assert.Equal(t, "m2", h[0].Body)
	assert.Equal(t, "m4", h[2].Body)
}

func TestConversationHistoryIsACopy(t *testing.T) {
	s := app.NewConversationStore(0)
	s.Append("alice", "bob", msg("alice", "bob", "original"))

	h := s.History("alice", "bob")
	h[0].Body = "mutated"

	assert.Equal(t, "original", s.History("alice", "bob")[0].Body)
}
