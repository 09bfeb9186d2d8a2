package database

import (
	"time"
)

// GuildSettings - DB record of a guild's provisioned structure. The IDs are
// captured once during setup and reused everywhere instead of re-resolving
// roles and channels by display name.
type GuildSettings struct {
	ID string

	// Review surface for verification and diplomat requests
	ReviewChannelID string

	// Channels holding the interactive prompts
	VerifyChannelID   string
	DiplomatChannelID string
	WelcomeChannelID  string
	RulesChannelID    string
	GeneralChannelID  string

	// Grant and officer roles
	MemberRoleID   string
	DiplomatRoleID string
	R4RoleID       string
	R5RoleID       string

	SetupBy string
	SetupAt time.Time
}

// Provisioned - whether setup ran for this guild
func (gs GuildSettings) Provisioned() bool {
	return gs.ReviewChannelID != ""
}
