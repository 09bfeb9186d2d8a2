package handlers

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/legionoffools/lofbot/approval"
)

// guildGateway adapts a discordgo session to the approval.Gateway contract
// for one guild.
type guildGateway struct {
	ses     *discordgo.Session
	guildID string
}

func newGateway(s *discordgo.Session, guildID string) *guildGateway {
	return &guildGateway{ses: s, guildID: guildID}
}

func (g *guildGateway) HasRole(userID, roleID string) (bool, error) {
	member, err := g.ses.GuildMember(g.guildID, userID)
	if err != nil {
		return false, err
	}
	for _, r := range member.Roles {
		if r == roleID {
			return true, nil
		}
	}
	return false, nil
}

func (g *guildGateway) RoleExists(roleID string) bool {
	roles, err := g.ses.GuildRoles(g.guildID)
	if err != nil {
		return false
	}
	for _, r := range roles {
		if r.ID == roleID {
			return true
		}
	}
	return false
}

func (g *guildGateway) MemberPresent(userID string) bool {
	_, err := g.ses.GuildMember(g.guildID, userID)
	return err == nil
}

func (g *guildGateway) PostPrompt(channelID string, p approval.Prompt) (approval.MessageRef, error) {
	msg, err := g.ses.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{promptEmbed(p)},
		Components: promptComponents(p),
	})
	if err != nil {
		return approval.MessageRef{}, err
	}
	return approval.MessageRef{ChannelID: msg.ChannelID, MessageID: msg.ID}, nil
}

func (g *guildGateway) DeletePrompt(ref approval.MessageRef) {
	g.ses.ChannelMessageDelete(ref.ChannelID, ref.MessageID)
}

func (g *guildGateway) UpdatePrompt(ref approval.MessageRef, p approval.Prompt) error {
	embeds := []*discordgo.MessageEmbed{promptEmbed(p)}
	components := promptComponents(p)
	_, err := g.ses.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    ref.ChannelID,
		ID:         ref.MessageID,
		Embeds:     &embeds,
		Components: &components,
	})
	return err
}

func (g *guildGateway) GrantRole(userID, roleID string) error {
	return g.ses.GuildMemberRoleAdd(g.guildID, userID, roleID)
}

func (g *guildGateway) SetNickname(userID, nick string) error {
	return g.ses.GuildMemberNickname(g.guildID, userID, nick)
}

func (g *guildGateway) Notify(userID, text string) error {
	dmChan, err := g.ses.UserChannelCreate(userID)
	if err != nil {
		// User DMs closed
		return err
	}
	_, err = g.ses.ChannelMessageSend(dmChan.ID, text)
	return err
}

func promptEmbed(p approval.Prompt) *discordgo.MessageEmbed {
	e := &discordgo.MessageEmbed{
		Title:     p.Title,
		Color:     p.Color,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if p.Thumbnail != "" {
		e.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: p.Thumbnail}
	}
	if p.Footer != "" {
		e.Footer = &discordgo.MessageEmbedFooter{Text: p.Footer}
	}
	for _, f := range p.Fields {
		e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}
	return e
}

func promptComponents(p approval.Prompt) []discordgo.MessageComponent {
	if len(p.Actions) == 0 {
		return []discordgo.MessageComponent{}
	}
	var buttons []discordgo.MessageComponent
	for _, a := range p.Actions {
		style := discordgo.DangerButton
		if a.Confirm {
			style = discordgo.SuccessButton
		}
		btn := discordgo.Button{
			Label:    a.Label,
			Style:    style,
			CustomID: a.CustomID,
		}
		if a.Emoji != "" {
			btn.Emoji = &discordgo.ComponentEmoji{Name: a.Emoji}
		}
		buttons = append(buttons, btn)
	}
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
}
