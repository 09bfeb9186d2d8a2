package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/legionoffools/lofbot/approval"
)

func diplomatFields(alliance, ign string) approval.Fields {
	return approval.Fields{
		{Name: "alliance", Label: "Alliance", Value: alliance},
		{Name: "ign", Label: "IGN", Value: ign},
	}
}

func TestDiplomatNickname(t *testing.T) {
	tests := []struct {
		name     string
		alliance string
		ign      string
		want     string
	}{
		{"bracketed tag", "Warriors United [WU]", "DiplomatKing123", "[WU] DiplomatKing123"},
		{"unterminated bracket", "Warriors [WU", "DiplomatKing123", "[WU] DiplomatKing123"},
		{"no tag falls back to prefix", "Warriors United", "DiplomatKing123", "[WAR] DiplomatKing123"},
		{"short alliance name", "WU", "DiplomatKing123", "[WU] DiplomatKing123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := diplomatNickname(diplomatFields(tt.alliance, tt.ign))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiplomatNicknameLengthCap(t *testing.T) {
	nick := diplomatNickname(diplomatFields(
		"Extremely Long Alliance Name Without Tag",
		"AVeryLongInGameNameIndeedTooLong"))
	assert.LessOrEqual(t, len([]rune(nick)), 32)
}

func TestKindSpecsWiring(t *testing.T) {
	assert.Equal(t, approval.MemberVerification, memberKind.Kind)
	assert.Equal(t, approval.DiplomatAccess, diplomatKind.Kind)

	// Verified members must not be able to file diplomat requests
	assert.Contains(t, diplomatKind.Conflicts, approval.MemberVerification)

	// The member nickname is the submitted IGN verbatim
	nick := memberKind.Nickname(approval.Fields{{Name: "ign", Value: "WarriorKing123"}})
	assert.Equal(t, "WarriorKing123", nick)
}
