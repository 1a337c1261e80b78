package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RaulLeite2/AbyssConect/internal/domain"
)

func TestNewUserDefaults(t *testing.T) {
	u := domain.NewUser("c1", domain.ProfilePatch{})
	assert.Equal(t, "c1", u.ID)
	assert.Equal(t, domain.AnonymousName, u.Name)
	assert.Equal(t, domain.StatusOnline, u.Status)
}

func TestNewUserClampsLongFields(t *testing.T) {
	long := strings.Repeat("x", domain.MaxNameLen+10)
	u := domain.NewUser("c1", domain.ProfilePatch{Name: long})
	assert.Len(t, u.Name, domain.MaxNameLen)
}

func TestNewUserRejectsUnknownStatus(t *testing.T) {
	u := domain.NewUser("c1", domain.ProfilePatch{Name: "Alice", Status: "invisible"})
	assert.Equal(t, domain.StatusOnline, u.Status)
}

func TestMergeAppliesOnlyNonEmptyFields(t *testing.T) {
	u := domain.NewUser("c1", domain.ProfilePatch{Name: "Alice", Avatar: "a.png"})
	u.Merge(domain.ProfilePatch{Avatar: "b.png", Status: domain.StatusBusy})

	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "b.png", u.Avatar)
	assert.Equal(t, domain.StatusBusy, u.Status)

	u.Merge(domain.ProfilePatch{Status: "bogus"})
	assert.Equal(t, domain.StatusBusy, u.Status)
}

func TestValidStatus(t *testing.T) {
	for _, s := range []domain.Status{domain.StatusOnline, domain.StatusAway, domain.StatusBusy, domain.StatusOffline} {
		assert.True(t, domain.ValidStatus(s))
	}
	assert.False(t, domain.ValidStatus(""))
	assert.False(t, domain.ValidStatus("invisible"))
}
