package handlers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/legionoffools/lofbot/config"
	db "github.com/legionoffools/lofbot/database"
)

// SetupCommand - show the destructive-setup confirmation for /setup
func SetupCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	// Owner gate first, an admin on a borrowed bot is still not the owner
	if settings.OwnerID != "" && i.Member.User.ID != settings.OwnerID {
		ephemeralReply(s, i, "❌ Only the bot owner can use this command.")
		return
	}
	if i.Member.Permissions&discordgo.PermissionAdministrator == 0 {
		ephemeralReply(s, i, "❌ You need Administrator permissions to use this command.")
		return
	}
	if botPermissions(s, i.GuildID)&discordgo.PermissionAdministrator == 0 {
		ephemeralReply(s, i, "❌ I need the Administrator permission to set up this server.")
		return
	}

	// Count what the reset is going to wipe
	var channelCount, roleCount int
	if channels, err := s.GuildChannels(i.GuildID); err == nil {
		channelCount = len(channels)
	}
	if roles, err := s.GuildRoles(i.GuildID); err == nil {
		roleCount = len(roles) - 1 // Exclude @everyone
	}

	embed := &discordgo.MessageEmbed{
		Color:       0xFFD700,
		Title:       "⚔️ LOF Server Setup",
		Description: "This will set up your server with the Legion of Fools structure.",
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "📊 Current Server Status",
				Value: fmt.Sprintf("• %v channels\n• %v roles (excluding @everyone)", channelCount, roleCount),
			},
			{
				Name:  "⚠️ Warning",
				Value: "This will **DELETE ALL existing channels and roles** (except @everyone and bot roles) and create the LOF structure.",
			},
			{
				Name:  "📋 What will be created",
				Value: "• 4 roles (R5, R4, Diplomat, Member)\n• 8 categories\n• 19 text channels\n• 4 voice channels\n• Verification system\n• Welcome messages",
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "This action cannot be undone!"},
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							CustomID: setupConfirmID,
							Label:    "Yes, Reset & Setup",
							Style:    discordgo.DangerButton,
							Emoji:    &discordgo.ComponentEmoji{Name: "⚠️"},
						},
						discordgo.Button{
							CustomID: setupCancelID,
							Label:    "Cancel",
							Style:    discordgo.SecondaryButton,
						},
					},
				},
			},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Print(err)
	}
}

// SetupCancel - dismiss the confirmation
func SetupCancel(s *discordgo.Session, i *discordgo.InteractionCreate) {
	content := "Setup cancelled."
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Embeds:     []*discordgo.MessageEmbed{},
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		log.Print(err)
	}
}

// SetupConfirm - run the full server reset and provisioning sequence
func SetupConfirm(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    "🔄 Starting server setup... This may take a moment.",
			Embeds:     []*discordgo.MessageEmbed{},
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		log.Print(err)
		return
	}

	guildID := i.GuildID
	var status []string
	step := func(msg string) {
		status = append(status, msg)
		updateStatus(s, i, status)
	}
	done := func(msg string) {
		status[len(status)-1] = msg
	}

	// Rename the server
	step("📛 Renaming server...")
	if _, err := s.GuildEdit(guildID, &discordgo.GuildParams{Name: config.ServerName}); err != nil {
		setupFailed(s, i, err, status)
		return
	}
	done(fmt.Sprintf("✅ Server renamed to \"%v\"", config.ServerName))

	// Wipe channels, then roles
	step("🗑️ Deleting existing channels...")
	deleteChannels(s, guildID)
	done("✅ Deleted existing channels")

	step("🗑️ Deleting existing roles...")
	deleteRoles(s, guildID)
	done("✅ Deleted existing roles")

	// Create the four roles and stack them just below the bot
	step("🎭 Creating roles...")
	roles, err := createRoles(s, guildID)
	if err != nil {
		setupFailed(s, i, err, status)
		return
	}
	done("✅ Created 4 roles")

	step("📁 Creating channels...")
	channels, categoryCount, err := createChannels(s, guildID, roles)
	if err != nil {
		setupFailed(s, i, err, status)
		return
	}
	done(fmt.Sprintf("✅ Created %v categories, %v channels", categoryCount, len(channels)))

	step("📝 Setting up welcome messages...")
	postSurfaces(s, channels)
	done("✅ Welcome messages sent")

	// Onboarding needs Community features, treat failure as cosmetic
	step("🚪 Configuring onboarding...")
	if err := configureOnboarding(s, guildID, channels); err != nil {
		log.Printf("failed to configure onboarding: %v", err)
		done("⚠️ Onboarding skipped (requires Community Server features)")
	} else {
		done("✅ Onboarding configured")
	}

	// Persist the captured IDs, everything downstream resolves against these
	gs := db.GuildSettings{
		ID:                guildID,
		ReviewChannelID:   channels[config.ChannelOfficerNotes],
		VerifyChannelID:   channels[config.ChannelVerify],
		DiplomatChannelID: channels[config.ChannelDiplomat],
		WelcomeChannelID:  channels[config.ChannelWelcome],
		RulesChannelID:    channels[config.ChannelRules],
		GeneralChannelID:  channels[config.ChannelGeneral],
		MemberRoleID:      roles.Member,
		DiplomatRoleID:    roles.Diplomat,
		R4RoleID:          roles.R4,
		R5RoleID:          roles.R5,
		SetupBy:           i.Member.User.ID,
		SetupAt:           time.Now(),
	}
	if err := db.UpdateGuildSettings(gs); err != nil {
		setupFailed(s, i, err, status)
		return
	}

	success := &discordgo.MessageEmbed{
		Color:       0x50C878,
		Title:       "✅ Server Setup Complete!",
		Description: "Your LOF server structure has been created successfully.",
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "📊 Created",
				Value: strings.Join(status, "\n"),
			},
			{
				Name:  "📋 Next Steps",
				Value: "1. Assign yourself the R5 - Leader role\n2. Customize #📕-rules with your alliance rules\n3. Update #🛡️-alliance-info with NAP/ally info\n4. Enable Community Server for onboarding popup\n5. Invite your members!",
			},
		},
	}
	empty := ""
	_, err = s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &empty,
		Embeds:  &[]*discordgo.MessageEmbed{success},
	})
	if err != nil {
		log.Print(err)
	}
}

func updateStatus(s *discordgo.Session, i *discordgo.InteractionCreate, status []string) {
	content := strings.Join(status, "\n")
	// Progress updates are cosmetic, a failed edit does not stop the setup
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content})
	if err != nil {
		log.Print(err)
	}
}

func setupFailed(s *discordgo.Session, i *discordgo.InteractionCreate, cause error, status []string) {
	log.Printf("setup failed: %v", cause)

	progress := strings.Join(status, "\n")
	if progress == "" {
		progress = "No progress made"
	}
	embed := &discordgo.MessageEmbed{
		Color:       0xFF0000,
		Title:       "❌ Setup Failed",
		Description: fmt.Sprintf("An error occurred during setup:\n```%v```", cause),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Progress", Value: progress},
		},
	}
	empty := ""
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &empty,
		Embeds:  &[]*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		log.Print(err)
	}
}

// botPermissions - guild-level permissions of the bot user
func botPermissions(s *discordgo.Session, guildID string) int64 {
	member, err := s.GuildMember(guildID, s.State.User.ID)
	if err != nil {
		log.Print(err)
		return 0
	}
	roles, err := s.GuildRoles(guildID)
	if err != nil {
		log.Print(err)
		return 0
	}

	var perms int64
	for _, r := range roles {
		if r.ID == guildID {
			perms |= r.Permissions // @everyone
			continue
		}
		for _, id := range member.Roles {
			if r.ID == id {
				perms |= r.Permissions
				break
			}
		}
	}
	return perms
}

// botTopRolePosition - position of the bot's highest role
func botTopRolePosition(s *discordgo.Session, guildID string) int {
	member, err := s.GuildMember(guildID, s.State.User.ID)
	if err != nil {
		return 0
	}
	roles, err := s.GuildRoles(guildID)
	if err != nil {
		return 0
	}

	top := 0
	for _, r := range roles {
		for _, id := range member.Roles {
			if r.ID == id && r.Position > top {
				top = r.Position
			}
		}
	}
	return top
}

func deleteChannels(s *discordgo.Session, guildID string) {
	channels, err := s.GuildChannels(guildID)
	if err != nil {
		log.Print(err)
		return
	}
	for _, c := range channels {
		if _, err := s.ChannelDelete(c.ID); err != nil {
			log.Printf("could not delete channel %v: %v", c.Name, err)
		}
		time.Sleep(config.PacingDelay)
	}
}

func deleteRoles(s *discordgo.Session, guildID string) {
	roles, err := s.GuildRoles(guildID)
	if err != nil {
		log.Print(err)
		return
	}
	botTop := botTopRolePosition(s, guildID)

	for _, r := range roles {
		// Skip @everyone, integration roles, and anything the bot cannot touch
		if r.ID == guildID || r.Managed {
			continue
		}
		if r.Position >= botTop {
			log.Printf("skipping role above bot: %v", r.Name)
			continue
		}
		if err := s.GuildRoleDelete(guildID, r.ID); err != nil {
			log.Printf("could not delete role %v: %v", r.Name, err)
		}
		time.Sleep(config.RoleDeleteDelay)
	}
}

// createRoles - create the four alliance roles and reorder them just below
// the bot's own role, R5 on top
func createRoles(s *discordgo.Session, guildID string) (config.ProvisionedRoles, error) {
	var out config.ProvisionedRoles
	created := make([]*discordgo.Role, 0, len(config.Roles))

	for _, rc := range config.Roles {
		rc := rc
		role, err := s.GuildRoleCreate(guildID, &discordgo.RoleParams{
			Name:        rc.Name,
			Color:       &rc.Color,
			Hoist:       &rc.Hoist,
			Permissions: &rc.Permissions,
			Mentionable: &rc.Mentionable,
		})
		if err != nil {
			return out, fmt.Errorf("failed to create role %v: %w", rc.Name, err)
		}
		created = append(created, role)

		switch rc.Name {
		case config.RoleNameMember:
			out.Member = role.ID
		case config.RoleNameDiplomat:
			out.Diplomat = role.ID
		case config.RoleNameR4:
			out.R4 = role.ID
		case config.RoleNameR5:
			out.R5 = role.ID
		}
		time.Sleep(config.PacingDelay)
	}

	// Creation order is bottom-up, so stack positions the same way
	start := botTopRolePosition(s, guildID) - len(created)
	if start < 1 {
		start = 1
	}
	for n, role := range created {
		role.Position = start + n
	}
	if _, err := s.GuildRoleReorder(guildID, created); err != nil {
		log.Printf("failed to set role positions: %v", err)
	}
	return out, nil
}

// createChannels - create every category and channel, returning created
// channel IDs by name
func createChannels(s *discordgo.Session, guildID string, roles config.ProvisionedRoles) (map[string]string, int, error) {
	created := make(map[string]string)
	categories := 0

	for _, cat := range config.Categories {
		parent, err := s.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
			Name: cat.Name,
			Type: discordgo.ChannelTypeGuildCategory,
		})
		if err != nil {
			return created, categories, fmt.Errorf("failed to create category %v: %w", cat.Name, err)
		}
		categories++
		time.Sleep(config.PacingDelay)

		for _, cc := range cat.Channels {
			var overwrites []*discordgo.PermissionOverwrite
			if cc.Overwrites != nil {
				overwrites = cc.Overwrites(roles, guildID)
			}
			channel, err := s.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
				Name:                 cc.Name,
				Type:                 cc.Type,
				Topic:                cc.Topic,
				ParentID:             parent.ID,
				PermissionOverwrites: overwrites,
			})
			if err != nil {
				return created, categories, fmt.Errorf("failed to create channel %v: %w", cc.Name, err)
			}
			created[cc.Name] = channel.ID
			time.Sleep(config.PacingDelay)
		}
	}
	return created, categories, nil
}

// postSurfaces - post the welcome, rules, verify and diplomat messages into
// the freshly created channels
func postSurfaces(s *discordgo.Session, channels map[string]string) {
	welcomeID := channels[config.ChannelWelcome]
	rulesID := channels[config.ChannelRules]
	verifyID := channels[config.ChannelVerify]
	diplomatID := channels[config.ChannelDiplomat]

	if welcomeID != "" {
		embed := &discordgo.MessageEmbed{
			Color:       0xFFD700,
			Title:       "⚔️ LEGION OF FOOLS ⚔️",
			Description: "**[ LOF ]**\n\nWelcome, warrior! You've joined one of Dark War Survival's finest alliances.",
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:  "🛡️ What We Stand For",
					Value: "• Unity in battle\n• Respect for all members\n• Strategic excellence\n• Having fun together",
				},
				{
					Name:  "📋 Getting Started",
					Value: fmt.Sprintf("1. Read the <#%v>\n2. Go to <#%v> and click **Verify**\n3. Enter your **In-Game Name (IGN)**\n4. Wait for an R4+ to approve you\n5. Join the fun in general chat!", rulesID, verifyID),
				},
				{
					Name:  "⚔️ Stay Battle-Ready",
					Value: "• Watch war announcements for rally alerts\n• Check strategy channel for tips",
				},
				{
					Name:  "🤖 Bots & Fun",
					Value: "• Use bot-commands channel for music, memes, and more!",
				},
			},
			Footer: &discordgo.MessageEmbedFooter{Text: "Questions? Ask in the ask-questions channel!"},
		}
		if _, err := s.ChannelMessageSendEmbed(welcomeID, embed); err != nil {
			log.Print(err)
		}
	}

	if rulesID != "" {
		embed := &discordgo.MessageEmbed{
			Color:       0xFFD700,
			Title:       "📕 ALLIANCE RULES",
			Description: "*[Edit this message to add your alliance rules]*",
			Fields: []*discordgo.MessageEmbedField{
				{Name: "1. Respect", Value: "Treat all members with respect."},
				{Name: "2. Activity", Value: "Stay active and participate in alliance events."},
				{Name: "3. Communication", Value: "Communicate clearly and follow leadership instructions."},
				{Name: "4. NAP/Allies", Value: "Do not attack NAP or allied alliances."},
			},
			Footer: &discordgo.MessageEmbedFooter{Text: "R4+ can edit this message with actual alliance rules"},
		}
		if _, err := s.ChannelMessageSendEmbed(rulesID, embed); err != nil {
			log.Print(err)
		}
	}

	if verifyID != "" {
		embed := &discordgo.MessageEmbed{
			Color:       0x50C878,
			Title:       "✨ MEMBER VERIFICATION",
			Description: "Welcome to Legion of Fools!\n\nTo get access to LOF channels:",
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:  "Steps",
					Value: "1. Click the **Verify** button below\n2. Enter your **In-Game Name (IGN)** in the popup\n3. Wait for an R4+ officer to approve you\n4. Once approved:\n   • Your server nickname will be set to your IGN\n   • You'll gain access to all member channels",
				},
				{
					Name:  "⚠️ Note",
					Value: "You cannot change your nickname after verification.\nOnly R4+ officers can modify nicknames.",
				},
			},
		}
		_, err := s.ChannelMessageSendComplex(verifyID, &discordgo.MessageSend{
			Embeds: []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							CustomID: verifyButtonID,
							Label:    "Verify",
							Style:    discordgo.SuccessButton,
							Emoji:    &discordgo.ComponentEmoji{Name: "🛡️"},
						},
					},
				},
			},
		})
		if err != nil {
			log.Print(err)
		}
	}

	if diplomatID != "" {
		embed := &discordgo.MessageEmbed{
			Color:       0x7B68EE,
			Title:       "🤝 DIPLOMAT ACCESS REQUEST",
			Description: "Are you a diplomat from another alliance?",
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:  "Request Access",
					Value: "Click the button below to request diplomat access.\nAn R4+ officer will review your request.",
				},
				{
					Name:  "⚠️ Note",
					Value: "This is for diplomats from other alliances only.\nIf you're a LOF member, use the member verification instead.",
				},
			},
		}
		_, err := s.ChannelMessageSendComplex(diplomatID, &discordgo.MessageSend{
			Embeds: []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							CustomID: diplomatButtonID,
							Label:    "Request Diplomat Access",
							Style:    discordgo.PrimaryButton,
							Emoji:    &discordgo.ComponentEmoji{Name: "🌐"},
						},
					},
				},
			},
		})
		if err != nil {
			log.Print(err)
		}
	}
}

// configureOnboarding - point new-member onboarding at the gate channels
func configureOnboarding(s *discordgo.Session, guildID string, channels map[string]string) error {
	var defaults []string
	for _, name := range []string{config.ChannelWelcome, config.ChannelRules, config.ChannelVerify} {
		if id := channels[name]; id != "" {
			defaults = append(defaults, id)
		}
	}

	var verifyIDs []string
	if id := channels[config.ChannelVerify]; id != "" {
		verifyIDs = []string{id}
	}
	var welcomeIDs []string
	if id := channels[config.ChannelWelcome]; id != "" {
		welcomeIDs = []string{id}
	}

	enabled := true
	mode := discordgo.GuildOnboardingModeDefault
	prompts := []discordgo.GuildOnboardingPrompt{
		{
			Type:         discordgo.GuildOnboardingPromptTypeMultipleChoice,
			Title:        "What brings you to Legion of Fools?",
			SingleSelect: true,
			InOnboarding: true,
			Options: []discordgo.GuildOnboardingPromptOption{
				{
					Title:       "LOF Member",
					Description: "I'm a current member of the LOF alliance in-game",
					ChannelIDs:  verifyIDs,
				},
				{
					Title:       "Diplomat",
					Description: "I'm a diplomat from another alliance",
				},
				{
					Title:       "Just Looking",
					Description: "I'm just checking out the server",
					ChannelIDs:  welcomeIDs,
				},
			},
		},
	}

	_, err := s.GuildOnboardingEdit(guildID, &discordgo.GuildOnboarding{
		Enabled:           &enabled,
		Mode:              &mode,
		DefaultChannelIDs: defaults,
		Prompts:           &prompts,
	})
	return err
}
