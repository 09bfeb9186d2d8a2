package approval

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreKinds(t *testing.T) {
	store := NewMemoryStore()

	// The same principal can hold one open request per kind
	require.True(t, store.PutIfAbsent(Request{PrincipalID: "u1", Kind: MemberVerification}))
	require.True(t, store.PutIfAbsent(Request{PrincipalID: "u1", Kind: DiplomatAccess}))
	assert.False(t, store.PutIfAbsent(Request{PrincipalID: "u1", Kind: MemberVerification}))

	_, ok := store.Get(MemberVerification, "u1")
	assert.True(t, ok)
	_, ok = store.Get(MemberVerification, "u2")
	assert.False(t, ok)

	req, ok := store.Remove(DiplomatAccess, "u1")
	require.True(t, ok)
	assert.Equal(t, DiplomatAccess, req.Kind)
	_, ok = store.Get(DiplomatAccess, "u1")
	assert.False(t, ok)
	_, ok = store.Remove(DiplomatAccess, "u1")
	assert.False(t, ok)
}

func TestMemoryStoreConcurrentRemoveSingleWinner(t *testing.T) {
	store := NewMemoryStore()
	require.True(t, store.PutIfAbsent(Request{PrincipalID: "u1", Kind: MemberVerification}))

	const racers = 16
	var wg sync.WaitGroup
	wins := make(chan bool, racers)
	for n := 0; n < racers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok := store.Remove(MemberVerification, "u1")
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
