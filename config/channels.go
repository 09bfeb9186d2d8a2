package config

import "github.com/bwmarrin/discordgo"

// ProvisionedRoles carries the role IDs captured while creating roles, used
// to build channel permission overwrites.
type ProvisionedRoles struct {
	Member   string
	Diplomat string
	R4       string
	R5       string
}

// ChannelConfig - one channel created during provisioning
type ChannelConfig struct {
	Name  string
	Type  discordgo.ChannelType
	Topic string
	// Overwrites builds the channel's permission overwrites. everyoneID is
	// the @everyone role ID (same as the guild ID).
	Overwrites func(r ProvisionedRoles, everyoneID string) []*discordgo.PermissionOverwrite
}

// CategoryConfig - a category and its channels
type CategoryConfig struct {
	Name     string
	Channels []ChannelConfig
}

// Channel names referenced after provisioning
const (
	ChannelWelcome      = "🚪-welcome"
	ChannelRules        = "📕-rules"
	ChannelVerify       = "✨-verify-member"
	ChannelDiplomat     = "🤝-diplomat-request"
	ChannelGeneral      = "💬-general-chat"
	ChannelOfficerNotes = "📋-officer-notes"
)

func overwrite(id string, allow, deny int64) *discordgo.PermissionOverwrite {
	return &discordgo.PermissionOverwrite{
		ID:    id,
		Type:  discordgo.PermissionOverwriteTypeRole,
		Allow: allow,
		Deny:  deny,
	}
}

const (
	view    = discordgo.PermissionViewChannel
	send    = discordgo.PermissionSendMessages
	connect = discordgo.PermissionVoiceConnect
	speak   = discordgo.PermissionVoiceSpeak
)

// readOnly - visible to everyone, writable by nobody
func readOnly(r ProvisionedRoles, everyoneID string) []*discordgo.PermissionOverwrite {
	return []*discordgo.PermissionOverwrite{
		overwrite(everyoneID, view, send),
	}
}

// membersOnly - hidden from everyone, open to members
func membersOnly(r ProvisionedRoles, everyoneID string) []*discordgo.PermissionOverwrite {
	return []*discordgo.PermissionOverwrite{
		overwrite(everyoneID, 0, view),
		overwrite(r.Member, view|send, 0),
	}
}

// officersOnly - hidden from everyone but R4 and up
func officersOnly(r ProvisionedRoles, everyoneID string) []*discordgo.PermissionOverwrite {
	return []*discordgo.PermissionOverwrite{
		overwrite(everyoneID, 0, view),
		overwrite(r.R4, view|send, 0),
	}
}

// Categories in creation order, with their channels.
var Categories = []CategoryConfig{
	{
		Name: "🧟 ZOMBIE GATES",
		Channels: []ChannelConfig{
			{
				Name:       ChannelWelcome,
				Type:       discordgo.ChannelTypeGuildText,
				Topic:      "Welcome to Legion of Fools! Read the rules and verify to get started.",
				Overwrites: readOnly,
			},
			{
				Name:       ChannelRules,
				Type:       discordgo.ChannelTypeGuildText,
				Topic:      "Alliance rules and expectations. Read before verifying!",
				Overwrites: readOnly,
			},
			{
				Name:  "🔔-announcements",
				Type:  discordgo.ChannelTypeGuildText,
				Topic: "Important alliance announcements from leadership.",
				Overwrites: func(r ProvisionedRoles, everyoneID string) []*discordgo.PermissionOverwrite {
					return []*discordgo.PermissionOverwrite{
						overwrite(everyoneID, view, send),
						overwrite(r.Member, view, send),
						overwrite(r.R4, view|send, 0),
						overwrite(r.R5, view|send, 0),
					}
				},
			},
			{
				Name:       "🛡️-alliance-info",
				Type:       discordgo.ChannelTypeGuildText,
				Topic:      "NAP list, allies, and enemy KOS list.",
				Overwrites: readOnly,
			},
		},
	},
	{
		Name: "⚜️ VERIFICATION",
		Channels: []ChannelConfig{
			{
				Name:  ChannelVerify,
				Type:  discordgo.ChannelTypeGuildText,
				Topic: "Click the Verify button to submit your IGN and get access.",
				Overwrites: func(r ProvisionedRoles, everyoneID string) []*discordgo.PermissionOverwrite {
					// Hidden again once a grant was issued
					return []*discordgo.PermissionOverwrite{
						overwrite(everyoneID, view, send),
						overwrite(r.Member, 0, view),
						overwrite(r.Diplomat, 0, view),
					}
				},
			},
			{
				Name:  ChannelDiplomat,
				Type:  discordgo.ChannelTypeGuildText,
				Topic: "Diplomats from other alliances can request access here.",
				Overwrites: func(r ProvisionedRoles, everyoneID string) []*discordgo.PermissionOverwrite {
					return []*discordgo.PermissionOverwrite{
						overwrite(everyoneID, view, send),
						overwrite(r.Member, 0, view),
						overwrite(r.Diplomat, 0, view),
					}
				},
			},
		},
	},
	{
		Name: "🍻 THE TAVERN",
		Channels: []ChannelConfig{
			{
				Name:       ChannelGeneral,
				Type:       discordgo.ChannelTypeGuildText,
				Topic:      "Hang out and chat with fellow LOF members!",
				Overwrites: membersOnly,
			},
			{
				Name:       "🎭-memes",
				Type:       discordgo.ChannelTypeGuildText,
				Topic:      "Share your best memes here!",
				Overwrites: membersOnly,
			},
			{
				Name:       "🎲-off-topic",
				Type:       discordgo.ChannelTypeGuildText,
				Topic:      "Talk about anything not related to the game.",
				Overwrites: membersOnly,
			},
			{
				Name:       "📝-introductions",
				Type:       discordgo.ChannelTypeGuildText,
				Topic:      "Introduce yourself to the alliance!",
				Overwrites: membersOnly,
			},
			{
				Name:       "🎮-bot-commands",
				Type:       discordgo.ChannelTypeGuildText,
				Topic:      "Use music bots, meme bots, and other fun commands here!",
				Overwrites: membersOnly,
			},
		},
	},
	{
		Name: "⚔️ WAR COUNCIL",
		Channels: []ChannelConfig{
			{
				Name:  "🚨-war-announcements",
				Type:  discordgo.ChannelTypeGuildText,
				Topic: "Rally calls and war announcements from officers.",
				Overwrites: func(r ProvisionedRoles, everyoneID string) []*discordgo.PermissionOverwrite {
					return []*discordgo.PermissionOverwrite{
						overwrite(everyoneID, 0, view),
						overwrite(r.Member, view, send),
						overwrite(r.R4, view|send, 0),
					}
				},
			},
			{
				Name:       "🗺️-strategy",
				Type:       discordgo.ChannelTypeGuildText,
				Topic:      "Discuss war strategies and tactics.",
				Overwrites: membersOnly,
			},
		},
	},
	{
		Name: "📚 LIBRARY",
		Channels: []ChannelConfig{
			{
				Name:       "📖-game-guides",
				Type:       discordgo.ChannelTypeGuildText,
				Topic:      "Game guides and tutorials.",
				Overwrites: membersOnly,
			},
			{
				Name:       "💎-tips-and-tricks",
				Type:       discordgo.ChannelTypeGuildText,
				Topic:      "Share your tips and tricks!",
				Overwrites: membersOnly,
			},
			{
				Name:       "❔-ask-questions",
				Type:       discordgo.ChannelTypeGuildText,
				Topic:      "Ask questions and get help from other members.",
				Overwrites: membersOnly,
			},
		},
	},
	{
		Name: "🌐 DIPLOMACY",
		Channels: []ChannelConfig{
			{
				Name:  "🕊️-diplo-lounge",
				Type:  discordgo.ChannelTypeGuildText,
				Topic: "Chat with diplomats from other alliances.",
				Overwrites: func(r ProvisionedRoles, everyoneID string) []*discordgo.PermissionOverwrite {
					return []*discordgo.PermissionOverwrite{
						overwrite(everyoneID, 0, view),
						overwrite(r.Member, 0, view),
						overwrite(r.Diplomat, view|send, 0),
						overwrite(r.R4, view|send, 0),
					}
				},
			},
			{
				Name:  "🔐-alliance-relations",
				Type:  discordgo.ChannelTypeGuildText,
				Topic: "Internal diplomacy planning (R4/R5 only).",
				Overwrites: func(r ProvisionedRoles, everyoneID string) []*discordgo.PermissionOverwrite {
					return []*discordgo.PermissionOverwrite{
						overwrite(everyoneID, 0, view),
						overwrite(r.Member, 0, view),
						overwrite(r.Diplomat, 0, view),
						overwrite(r.R4, view|send, 0),
					}
				},
			},
		},
	},
	{
		Name: "👑 HIGH COMMAND",
		Channels: []ChannelConfig{
			{
				Name:       "💠-officer-chat",
				Type:       discordgo.ChannelTypeGuildText,
				Topic:      "Private officer discussion.",
				Overwrites: officersOnly,
			},
			{
				Name:       ChannelOfficerNotes,
				Type:       discordgo.ChannelTypeGuildText,
				Topic:      "Member issues, promotions, warnings, and verification approvals.",
				Overwrites: officersOnly,
			},
			{
				Name:       "📜-applications",
				Type:       discordgo.ChannelTypeGuildText,
				Topic:      "Recruitment applications from outside the alliance.",
				Overwrites: officersOnly,
			},
			{
				Name:       "📢-officer-announcements",
				Type:       discordgo.ChannelTypeGuildText,
				Topic:      "Important announcements for officers only.",
				Overwrites: officersOnly,
			},
		},
	},
	{
		Name: "🎙️ VOICE HALLS",
		Channels: []ChannelConfig{
			{
				Name: "🍺 Tavern Voice",
				Type: discordgo.ChannelTypeGuildVoice,
				Overwrites: func(r ProvisionedRoles, everyoneID string) []*discordgo.PermissionOverwrite {
					return []*discordgo.PermissionOverwrite{
						overwrite(everyoneID, 0, view|connect),
						overwrite(r.Member, view|connect|speak, 0),
					}
				},
			},
			{
				Name: "⚔️ War Room",
				Type: discordgo.ChannelTypeGuildVoice,
				Overwrites: func(r ProvisionedRoles, everyoneID string) []*discordgo.PermissionOverwrite {
					return []*discordgo.PermissionOverwrite{
						overwrite(everyoneID, 0, view|connect),
						overwrite(r.Member, view|connect|speak, 0),
					}
				},
			},
			{
				Name: "🌍 Diplo Chamber",
				Type: discordgo.ChannelTypeGuildVoice,
				Overwrites: func(r ProvisionedRoles, everyoneID string) []*discordgo.PermissionOverwrite {
					return []*discordgo.PermissionOverwrite{
						overwrite(everyoneID, 0, view|connect),
						overwrite(r.Member, 0, view|connect),
						overwrite(r.Diplomat, view|connect|speak, 0),
						overwrite(r.R4, view|connect|speak, 0),
					}
				},
			},
			{
				Name: "👑 Command Center",
				Type: discordgo.ChannelTypeGuildVoice,
				Overwrites: func(r ProvisionedRoles, everyoneID string) []*discordgo.PermissionOverwrite {
					return []*discordgo.PermissionOverwrite{
						overwrite(everyoneID, 0, view|connect),
						overwrite(r.R4, view|connect|speak, 0),
					}
				},
			},
		},
	},
}
