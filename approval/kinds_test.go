package approval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecisionCustomIDRoundtrip(t *testing.T) {
	id := DecisionCustomID(Approved, DiplomatAccess, "123456789")
	assert.Equal(t, "approve_diplomat_123456789", id)

	o, k, principal, ok := ParseDecisionCustomID(id)
	require.True(t, ok)
	assert.Equal(t, Approved, o)
	assert.Equal(t, DiplomatAccess, k)
	assert.Equal(t, "123456789", principal)
}

func TestParseDecisionCustomIDRejectsForeignIDs(t *testing.T) {
	tests := []string{
		"setup_confirm",
		"verify_member",
		"request_diplomat",
		"approve_banhammer_123",
		"maybe_member_123",
		"approve_member",
		"",
	}
	for _, id := range tests {
		_, _, _, ok := ParseDecisionCustomID(id)
		assert.False(t, ok, "expected %q to be rejected", id)
	}
}

func TestFieldsGet(t *testing.T) {
	f := Fields{
		{Name: "alliance", Label: "Alliance", Value: "Warriors United [WU]"},
		{Name: "ign", Label: "IGN", Value: "DiplomatKing123"},
	}
	assert.Equal(t, "Warriors United [WU]", f.Get("alliance"))
	assert.Equal(t, "", f.Get("reason"))
}
