package app

import (
	"sync"

	"github.com/RaulLeite2/AbyssConect/internal/core"
	"github.com/RaulLeite2/AbyssConect/internal/domain"
)

// ConversationStore keeps the per-pair direct message logs. The key is the
// unordered pair of connection ids, canonicalized by sorting, so
// History(a,b) and History(b,a) address the same log. Conversations are
// created lazily and never reclaimed; maxMessages (0 = unlimited) caps
// each log by dropping the oldest entry.
type ConversationStore struct {
	mu            sync.RWMutex
	conversations map[string][]domain.Message
	maxMessages   int
}

func NewConversationStore(maxMessages int) *ConversationStore {
	return &ConversationStore{
		conversations: make(map[string][]domain.Message),
		maxMessages:   maxMessages,
	}
}

func pairKey(a, b core.SessionID) string {
	if b < a {
		a, b = b, a
	}
	return string(a) + "|" + string(b)
}

// Append records msg in the (a,b) conversation, creating it if absent.
// Always succeeds.
func (s *ConversationStore) Append(a, b core.SessionID, msg *domain.Message) domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pairKey(a, b)
	log := append(s.conversations[key], *msg)
	if s.maxMessages > 0 && len(log) > s.maxMessages {
		log = log[len(log)-s.maxMessages:]
	}
	s.conversations[key] = log
	return *msg
}

// History returns the stored sequence for the pair in insertion order, or
// an empty slice if the pair never talked. Never fails.
func (s *ConversationStore) History(a, b core.SessionID) []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	log := s.conversations[pairKey(a, b)]
	out := make([]domain.Message, len(log))
	copy(out, log)
	return out
}

// Count reports the number of conversations ever created.
func (s *ConversationStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conversations)
}
