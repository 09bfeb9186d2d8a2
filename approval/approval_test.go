package approval

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testReviewChannel = "review-chan"
	testMemberRole    = "role-member"
	testDiplomatRole  = "role-diplomat"
)

var testMemberSpec = KindSpec{
	Kind:      MemberVerification,
	GrantName: "Member",
	Fields: []FieldSpec{
		{Name: "ign", Label: "Requested IGN", Required: true, MinLen: 2, MaxLen: 30},
	},
	Color:         0xFFA500,
	PromptTitle:   "New Member Verification Request",
	ApprovedTitle: "Member Verified",
	DeniedTitle:   "Verification Denied",
	Nickname: func(f Fields) string {
		return f.Get("ign")
	},
	Receipt: func(f Fields) string {
		return "submitted: " + f.Get("ign")
	},
}

var testDiplomatSpec = KindSpec{
	Kind:      DiplomatAccess,
	GrantName: "Diplomat",
	Conflicts: []Kind{MemberVerification},
	Fields: []FieldSpec{
		{Name: "alliance", Label: "Alliance", Required: true, MinLen: 2, MaxLen: 50},
		{Name: "ign", Label: "IGN", Required: true, MinLen: 2, MaxLen: 30},
		{Name: "reason", Label: "Reason", MaxLen: 200, Empty: "Not specified"},
	},
	Color:         0x7B68EE,
	PromptTitle:   "New Diplomat Access Request",
	ApprovedTitle: "Diplomat Access Granted",
	DeniedTitle:   "Diplomat Access Denied",
}

// fakeGateway records every side effect the engine asks for.
type fakeGateway struct {
	mu sync.Mutex

	roles   map[string]map[string]bool
	known   map[string]bool
	absent  map[string]bool
	postErr error

	nextID  int
	posted  []Prompt
	deleted []MessageRef
	updated map[MessageRef]Prompt
	granted map[string]string
	nicks   map[string]string
	notices map[string][]string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		roles:   make(map[string]map[string]bool),
		known:   map[string]bool{testMemberRole: true, testDiplomatRole: true},
		absent:  make(map[string]bool),
		updated: make(map[MessageRef]Prompt),
		granted: make(map[string]string),
		nicks:   make(map[string]string),
		notices: make(map[string][]string),
	}
}

func (g *fakeGateway) giveRole(userID, roleID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.roles[userID] == nil {
		g.roles[userID] = make(map[string]bool)
	}
	g.roles[userID][roleID] = true
}

func (g *fakeGateway) HasRole(userID, roleID string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.roles[userID][roleID], nil
}

func (g *fakeGateway) RoleExists(roleID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.known[roleID]
}

func (g *fakeGateway) MemberPresent(userID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return !g.absent[userID]
}

func (g *fakeGateway) PostPrompt(channelID string, p Prompt) (MessageRef, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.postErr != nil {
		return MessageRef{}, g.postErr
	}
	g.nextID++
	g.posted = append(g.posted, p)
	return MessageRef{ChannelID: channelID, MessageID: fmt.Sprintf("msg-%v", g.nextID)}, nil
}

func (g *fakeGateway) DeletePrompt(ref MessageRef) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.deleted = append(g.deleted, ref)
}

func (g *fakeGateway) UpdatePrompt(ref MessageRef, p Prompt) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.updated[ref] = p
	return nil
}

func (g *fakeGateway) GrantRole(userID, roleID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.granted[userID] = roleID
	return nil
}

func (g *fakeGateway) SetNickname(userID, nick string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nicks[userID] = nick
	return nil
}

func (g *fakeGateway) Notify(userID, text string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.notices[userID] = append(g.notices[userID], text)
	return nil
}

func newTestEngine(gw *fakeGateway) (*Engine, *MemoryStore) {
	store := NewMemoryStore()
	refs := Refs{
		ReviewChannelID: testReviewChannel,
		GrantRoles: map[Kind]string{
			MemberVerification: testMemberRole,
			DiplomatAccess:     testDiplomatRole,
		},
	}
	return New(store, gw, refs, testMemberSpec, testDiplomatSpec), store
}

func memberSubmission(id, ign string) Submission {
	return Submission{
		PrincipalID:  id,
		PrincipalTag: "user#" + id,
		AccountAge:   time.Now().Add(-48 * time.Hour),
		Values:       map[string]string{"ign": ign},
	}
}

func TestSubmitCreatesPendingRequest(t *testing.T) {
	gw := newFakeGateway()
	eng, store := newTestEngine(gw)

	receipt, err := eng.Submit(MemberVerification, memberSubmission("u1", "WarriorKing123"))
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, "submitted: WarriorKing123", receipt.Message)
	assert.Equal(t, testReviewChannel, receipt.Prompt.ChannelID)

	req, open := store.Get(MemberVerification, "u1")
	require.True(t, open)
	assert.Equal(t, "WarriorKing123", req.Fields.Get("ign"))
	assert.Equal(t, receipt.Prompt, req.Prompt)

	require.Len(t, gw.posted, 1)
	assert.Equal(t, testMemberSpec.PromptTitle, gw.posted[0].Title)
	// Approve and deny controls carry the principal in their identifiers
	require.Len(t, gw.posted[0].Actions, 2)
	assert.Equal(t, DecisionCustomID(Approved, MemberVerification, "u1"), gw.posted[0].Actions[0].CustomID)
	assert.Equal(t, DecisionCustomID(Denied, MemberVerification, "u1"), gw.posted[0].Actions[1].CustomID)
}

func TestSubmitDuplicatePending(t *testing.T) {
	gw := newFakeGateway()
	eng, _ := newTestEngine(gw)

	_, err := eng.Submit(MemberVerification, memberSubmission("u1", "WarriorKing123"))
	require.NoError(t, err)

	_, err = eng.Submit(MemberVerification, memberSubmission("u1", "SomeoneElse"))
	assert.ErrorIs(t, err, ErrDuplicatePending)
	assert.Len(t, gw.posted, 1)
}

func TestSubmitAlreadyGranted(t *testing.T) {
	gw := newFakeGateway()
	eng, store := newTestEngine(gw)
	gw.giveRole("u1", testMemberRole)

	_, err := eng.Submit(MemberVerification, memberSubmission("u1", "WarriorKing123"))
	assert.ErrorIs(t, err, ErrAlreadyGranted)
	_, open := store.Get(MemberVerification, "u1")
	assert.False(t, open)
}

func TestSubmitConflictingGrant(t *testing.T) {
	gw := newFakeGateway()
	eng, _ := newTestEngine(gw)
	gw.giveRole("u1", testMemberRole)

	// A verified member cannot also request diplomat access
	_, err := eng.Submit(DiplomatAccess, Submission{
		PrincipalID: "u1",
		Values:      map[string]string{"alliance": "Warriors United", "ign": "DiplomatKing123"},
	})
	assert.ErrorIs(t, err, ErrConflictingGrant)
}

func TestSubmitFieldValidation(t *testing.T) {
	gw := newFakeGateway()
	eng, _ := newTestEngine(gw)

	tests := []struct {
		name   string
		values map[string]string
	}{
		{"missing required", map[string]string{}},
		{"whitespace only", map[string]string{"ign": "   "}},
		{"too short", map[string]string{"ign": "x"}},
		{"too long", map[string]string{"ign": "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eng.Submit(MemberVerification, Submission{PrincipalID: "u1", Values: tt.values})
			assert.ErrorIs(t, err, ErrInvalidField)
		})
	}
	assert.Empty(t, gw.posted)
}

func TestSubmitOptionalFieldDefault(t *testing.T) {
	gw := newFakeGateway()
	eng, store := newTestEngine(gw)

	_, err := eng.Submit(DiplomatAccess, Submission{
		PrincipalID: "u2",
		Values:      map[string]string{"alliance": "Warriors United [WU]", "ign": "DiplomatKing123"},
	})
	require.NoError(t, err)

	req, open := store.Get(DiplomatAccess, "u2")
	require.True(t, open)
	assert.Equal(t, "Not specified", req.Fields.Get("reason"))
}

func TestSubmitReviewSurfaceUnavailable(t *testing.T) {
	gw := newFakeGateway()
	store := NewMemoryStore()
	eng := New(store, gw, Refs{GrantRoles: map[Kind]string{MemberVerification: testMemberRole}}, testMemberSpec)

	_, err := eng.Submit(MemberVerification, memberSubmission("u1", "WarriorKing123"))
	assert.ErrorIs(t, err, ErrReviewSurfaceUnavailable)

	_, open := store.Get(MemberVerification, "u1")
	assert.False(t, open)
}

func TestSubmitPostFailureRollsBack(t *testing.T) {
	gw := newFakeGateway()
	gw.postErr = fmt.Errorf("channel deleted")
	eng, store := newTestEngine(gw)

	_, err := eng.Submit(MemberVerification, memberSubmission("u1", "WarriorKing123"))
	assert.ErrorIs(t, err, ErrReviewSurfaceUnavailable)
	_, open := store.Get(MemberVerification, "u1")
	assert.False(t, open)
}

// racingStore reports no open request on Get but refuses the PutIfAbsent,
// standing in for a submission that lost the race after the prompt was
// already posted.
type racingStore struct {
	*MemoryStore
}

func (s *racingStore) Get(kind Kind, principalID string) (Request, bool) {
	return Request{}, false
}

func TestSubmitLostRaceDeletesOrphanPrompt(t *testing.T) {
	gw := newFakeGateway()
	store := &racingStore{NewMemoryStore()}
	refs := Refs{ReviewChannelID: testReviewChannel, GrantRoles: map[Kind]string{MemberVerification: testMemberRole}}
	eng := New(store, gw, refs, testMemberSpec)

	winner := Request{PrincipalID: "u1", Kind: MemberVerification}
	require.True(t, store.MemoryStore.PutIfAbsent(winner))

	_, err := eng.Submit(MemberVerification, memberSubmission("u1", "WarriorKing123"))
	assert.ErrorIs(t, err, ErrDuplicatePending)
	require.Len(t, gw.posted, 1)
	require.Len(t, gw.deleted, 1)
}

func TestDecideApprove(t *testing.T) {
	gw := newFakeGateway()
	eng, store := newTestEngine(gw)

	receipt, err := eng.Submit(MemberVerification, memberSubmission("u1", "WarriorKing123"))
	require.NoError(t, err)

	rec, err := eng.Decide("reviewer", MemberVerification, "u1", Approved)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, Approved, rec.Outcome)
	assert.Equal(t, "reviewer", rec.ReviewerID)
	assert.Equal(t, "WarriorKing123", rec.Nickname)

	// Side effects
	assert.Equal(t, testMemberRole, gw.granted["u1"])
	assert.Equal(t, "WarriorKing123", gw.nicks["u1"])
	assert.Len(t, gw.notices["u1"], 1)

	// Prompt rewritten into its terminal form, request consumed
	terminal, ok := gw.updated[receipt.Prompt]
	require.True(t, ok)
	assert.Equal(t, testMemberSpec.ApprovedTitle, terminal.Title)
	assert.Empty(t, terminal.Actions)
	_, open := store.Get(MemberVerification, "u1")
	assert.False(t, open)
}

func TestDecideDeny(t *testing.T) {
	gw := newFakeGateway()
	eng, store := newTestEngine(gw)

	receipt, err := eng.Submit(MemberVerification, memberSubmission("u1", "WarriorKing123"))
	require.NoError(t, err)

	rec, err := eng.Decide("reviewer", MemberVerification, "u1", Denied)
	require.NoError(t, err)
	assert.Equal(t, Denied, rec.Outcome)

	// No grant, no nickname, request still consumed
	assert.Empty(t, gw.granted)
	assert.Empty(t, gw.nicks)
	assert.Len(t, gw.notices["u1"], 1)

	terminal, ok := gw.updated[receipt.Prompt]
	require.True(t, ok)
	assert.Equal(t, testMemberSpec.DeniedTitle, terminal.Title)
	_, open := store.Get(MemberVerification, "u1")
	assert.False(t, open)
}

func TestDecideNotFound(t *testing.T) {
	gw := newFakeGateway()
	eng, _ := newTestEngine(gw)

	_, err := eng.Decide("reviewer", MemberVerification, "nobody", Approved)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDecideUnknownKind(t *testing.T) {
	gw := newFakeGateway()
	eng, _ := newTestEngine(gw)

	_, err := eng.Decide("reviewer", Kind("banhammer"), "u1", Approved)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestDecideDoubleClickOneWinner(t *testing.T) {
	gw := newFakeGateway()
	eng, _ := newTestEngine(gw)

	_, err := eng.Submit(MemberVerification, memberSubmission("u1", "WarriorKing123"))
	require.NoError(t, err)

	const clicks = 8
	var wg sync.WaitGroup
	errs := make([]error, clicks)
	for n := 0; n < clicks; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, errs[n] = eng.Decide("reviewer", MemberVerification, "u1", Approved)
		}(n)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrNotFound)
		}
	}
	assert.Equal(t, 1, winners)
	assert.Len(t, gw.notices["u1"], 1)
}

func TestDecidePrincipalLeft(t *testing.T) {
	gw := newFakeGateway()
	eng, store := newTestEngine(gw)

	receipt, err := eng.Submit(MemberVerification, memberSubmission("u1", "WarriorKing123"))
	require.NoError(t, err)
	gw.absent["u1"] = true

	_, err = eng.Decide("reviewer", MemberVerification, "u1", Approved)
	assert.ErrorIs(t, err, ErrPrincipalLeft)

	// Request discarded without a grant, prompt marked accordingly
	assert.Empty(t, gw.granted)
	_, open := store.Get(MemberVerification, "u1")
	assert.False(t, open)
	terminal, ok := gw.updated[receipt.Prompt]
	require.True(t, ok)
	assert.Contains(t, terminal.Title, "Discarded")
}

func TestDecideGrantRoleMissingKeepsRequest(t *testing.T) {
	gw := newFakeGateway()
	eng, store := newTestEngine(gw)

	_, err := eng.Submit(MemberVerification, memberSubmission("u1", "WarriorKing123"))
	require.NoError(t, err)
	gw.known[testMemberRole] = false

	_, err = eng.Decide("reviewer", MemberVerification, "u1", Approved)
	assert.ErrorIs(t, err, ErrGrantRoleMissing)

	// The request survives so the decision can be retried after /setup
	_, open := store.Get(MemberVerification, "u1")
	assert.True(t, open)

	// A deny on the same request does not need the role and still works
	rec, err := eng.Decide("reviewer", MemberVerification, "u1", Denied)
	require.NoError(t, err)
	assert.Equal(t, Denied, rec.Outcome)
}

func TestDecideApproveWithoutNicknameSpec(t *testing.T) {
	gw := newFakeGateway()
	eng, _ := newTestEngine(gw)

	_, err := eng.Submit(DiplomatAccess, Submission{
		PrincipalID: "u2",
		Values:      map[string]string{"alliance": "Warriors United [WU]", "ign": "DiplomatKing123"},
	})
	require.NoError(t, err)

	rec, err := eng.Decide("reviewer", DiplomatAccess, "u2", Approved)
	require.NoError(t, err)
	assert.Empty(t, rec.Nickname)
	assert.Empty(t, gw.nicks)
	assert.Equal(t, testDiplomatRole, gw.granted["u2"])
}
