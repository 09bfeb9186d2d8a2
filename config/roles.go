package config

import "github.com/bwmarrin/discordgo"

// RoleConfig - one role created during provisioning
type RoleConfig struct {
	Name        string
	Color       int
	Permissions int64
	Hoist       bool
	Mentionable bool
}

const memberPerms = discordgo.PermissionViewChannel |
	discordgo.PermissionSendMessages |
	discordgo.PermissionReadMessageHistory |
	discordgo.PermissionVoiceConnect |
	discordgo.PermissionVoiceSpeak |
	discordgo.PermissionVoiceUseVAD |
	discordgo.PermissionAddReactions |
	discordgo.PermissionAttachFiles |
	discordgo.PermissionEmbedLinks |
	discordgo.PermissionUseExternalEmojis

const diplomatPerms = discordgo.PermissionViewChannel |
	discordgo.PermissionSendMessages |
	discordgo.PermissionReadMessageHistory |
	discordgo.PermissionVoiceConnect |
	discordgo.PermissionVoiceSpeak |
	discordgo.PermissionVoiceUseVAD |
	discordgo.PermissionAddReactions |
	discordgo.PermissionAttachFiles |
	discordgo.PermissionEmbedLinks

const officerPerms = memberPerms |
	discordgo.PermissionManageMessages |
	discordgo.PermissionManageNicknames |
	discordgo.PermissionKickMembers |
	discordgo.PermissionVoiceMuteMembers |
	discordgo.PermissionVoiceDeafenMembers |
	discordgo.PermissionVoiceMoveMembers |
	discordgo.PermissionMentionEveryone

// Role display names referenced outside provisioning
const (
	RoleNameMember   = "Member"
	RoleNameDiplomat = "Diplomat"
	RoleNameR4       = "R4 - Officer"
	RoleNameR5       = "R5 - Leader"
)

// Roles in creation order, bottom of the hierarchy first so positions come
// out right after the final reorder.
var Roles = []RoleConfig{
	{
		Name:        RoleNameMember,
		Color:       0x50C878, // Emerald
		Permissions: memberPerms,
	},
	{
		Name:        RoleNameDiplomat,
		Color:       0x7B68EE, // Royal Purple
		Permissions: diplomatPerms,
		Hoist:       true,
		Mentionable: true,
	},
	{
		Name:        RoleNameR4,
		Color:       0xDC143C, // Crimson
		Permissions: officerPerms,
		Hoist:       true,
		Mentionable: true,
	},
	{
		Name:        RoleNameR5,
		Color:       0xFFD700, // Gold
		Permissions: discordgo.PermissionAdministrator,
		Hoist:       true,
		Mentionable: true,
	},
}
