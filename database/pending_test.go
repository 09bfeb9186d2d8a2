package database

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legionoffools/lofbot/approval"
)

func openTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, Connect(filepath.Join(t.TempDir(), "test.db")))
	t.Cleanup(CloseDB)
}

func TestPendingStoreRoundtrip(t *testing.T) {
	openTestDB(t)
	store := NewPendingStore()

	req := approval.Request{
		PrincipalID:  "u1",
		PrincipalTag: "user#u1",
		Kind:         approval.MemberVerification,
		Fields:       approval.Fields{{Name: "ign", Label: "Requested IGN", Value: "WarriorKing123"}},
		SubmittedAt:  time.Now().UTC(),
		Prompt:       approval.MessageRef{ChannelID: "c1", MessageID: "m1"},
	}

	_, ok := store.Get(approval.MemberVerification, "u1")
	assert.False(t, ok)

	require.True(t, store.PutIfAbsent(req))
	assert.False(t, store.PutIfAbsent(req))

	got, ok := store.Get(approval.MemberVerification, "u1")
	require.True(t, ok)
	assert.Equal(t, req.Prompt, got.Prompt)
	assert.Equal(t, "WarriorKing123", got.Fields.Get("ign"))

	// Kinds are independent keys
	_, ok = store.Get(approval.DiplomatAccess, "u1")
	assert.False(t, ok)

	removed, ok := store.Remove(approval.MemberVerification, "u1")
	require.True(t, ok)
	assert.Equal(t, "u1", removed.PrincipalID)
	_, ok = store.Remove(approval.MemberVerification, "u1")
	assert.False(t, ok)
}

func TestPendingStoreConcurrentRemoveSingleWinner(t *testing.T) {
	openTestDB(t)
	store := NewPendingStore()
	require.True(t, store.PutIfAbsent(approval.Request{PrincipalID: "u1", Kind: approval.MemberVerification}))

	const racers = 8
	var wg sync.WaitGroup
	wins := make(chan bool, racers)
	for n := 0; n < racers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok := store.Remove(approval.MemberVerification, "u1")
			wins <- ok
		}()
	}
	wg.Wait()
	close(wins)

	winners := 0
	for ok := range wins {
		if ok {
			winners++
		}
	}
	assert.Equal(t, 1, winners)
}

func TestGuildSettingsRoundtrip(t *testing.T) {
	openTestDB(t)

	gs, err := GetGuildSettings("g1")
	require.NoError(t, err)
	assert.False(t, gs.Provisioned())

	gs = GuildSettings{
		ID:              "g1",
		ReviewChannelID: "review",
		MemberRoleID:    "member-role",
		DiplomatRoleID:  "diplomat-role",
		SetupBy:         "owner",
		SetupAt:         time.Now().UTC(),
	}
	require.NoError(t, UpdateGuildSettings(gs))

	got, err := GetGuildSettings("g1")
	require.NoError(t, err)
	assert.True(t, got.Provisioned())
	assert.Equal(t, "member-role", got.MemberRoleID)

	assert.Error(t, UpdateGuildSettings(GuildSettings{}))
}
