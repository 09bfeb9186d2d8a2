package handlers

import (
	"log"
	"strings"
	"time"

	"github.com/Necroforger/dgrouter/exrouter"
	"github.com/bwmarrin/discordgo"

	"github.com/legionoffools/lofbot/approval"
	"github.com/legionoffools/lofbot/config"
	db "github.com/legionoffools/lofbot/database"
)

// Process-wide wiring, set once from main before the session opens.
var (
	settings config.Settings
	pending  approval.Store
)

// Init - hand the handlers their settings and the shared pending store
func Init(cfg config.Settings, store approval.Store) {
	settings = cfg
	pending = store
}

// engineFor builds the approval engine for a guild from its provisioning
// record. The record carries the stable role and channel IDs captured at
// setup time.
func engineFor(s *discordgo.Session, guildID string) (*approval.Engine, error) {
	gs, err := db.GetGuildSettings(guildID)
	if err != nil {
		return nil, err
	}
	refs := approval.Refs{
		ReviewChannelID: gs.ReviewChannelID,
		GrantRoles: map[approval.Kind]string{
			approval.MemberVerification: gs.MemberRoleID,
			approval.DiplomatAccess:     gs.DiplomatRoleID,
		},
	}
	return approval.New(pending, newGateway(s, guildID), refs, memberKind, diplomatKind), nil
}

// ephemeralReply - answer an interaction with a message only the actor sees
func ephemeralReply(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("failed to respond to interaction: %v", err)
	}
}

// deferUpdate - ack a component interaction without touching its message
func deferUpdate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		log.Printf("failed to ack interaction: %v", err)
	}
}

// followupEphemeral - ephemeral follow-up after a deferred ack
func followupEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		log.Printf("failed to send follow-up: %v", err)
	}
}

// reviewerCheck - only actors with Manage Roles may approve or deny
func reviewerCheck(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionManageRoles != 0
}

// memberHasRole - check the acting member's role list from the interaction
func memberHasRole(i *discordgo.InteractionCreate, roleID string) bool {
	if roleID == "" || i.Member == nil {
		return false
	}
	for _, r := range i.Member.Roles {
		if r == roleID {
			return true
		}
	}
	return false
}

// showKindModal opens the collection form built from a kind's field schema.
func showKindModal(s *discordgo.Session, i *discordgo.InteractionCreate, customID, title string, spec approval.KindSpec) {
	var rows []discordgo.MessageComponent
	for _, f := range spec.Fields {
		style := discordgo.TextInputShort
		if f.Paragraph {
			style = discordgo.TextInputParagraph
		}
		label := f.Question
		if label == "" {
			label = f.Label
		}
		rows = append(rows, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:    f.Name + "_input",
				Label:       label,
				Style:       style,
				Placeholder: f.Placeholder,
				Required:    f.Required,
				MinLength:   f.MinLen,
				MaxLength:   f.MaxLen,
			},
		}})
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   customID,
			Title:      title,
			Components: rows,
		},
	})
	if err != nil {
		log.Printf("failed to open modal %v: %v", customID, err)
	}
}

// modalValues flattens a modal submission into field name -> value.
func modalValues(data discordgo.ModalSubmitInteractionData) map[string]string {
	vals := make(map[string]string)
	for _, row := range data.Components {
		var comps []discordgo.MessageComponent
		switch ar := row.(type) {
		case *discordgo.ActionsRow:
			comps = ar.Components
		case discordgo.ActionsRow:
			comps = ar.Components
		default:
			continue
		}
		for _, c := range comps {
			switch in := c.(type) {
			case *discordgo.TextInput:
				vals[strings.TrimSuffix(in.CustomID, "_input")] = in.Value
			case discordgo.TextInput:
				vals[strings.TrimSuffix(in.CustomID, "_input")] = in.Value
			}
		}
	}
	return vals
}

// replyDel - reply to a message command and delete the answer after a delay
func replyDel(ctx *exrouter.Context, msg string, timer time.Duration) error {
	newMsg, err := ctx.Reply(msg)
	if err != nil {
		return err
	}
	go func() {
		time.Sleep(time.Second * timer)
		ctx.Ses.ChannelMessageDelete(newMsg.ChannelID, newMsg.ID)
	}()
	return nil
}

// submissionFrom builds the engine payload from the acting user.
func submissionFrom(i *discordgo.InteractionCreate, values map[string]string) approval.Submission {
	user := i.Member.User
	sub := approval.Submission{
		PrincipalID:  user.ID,
		PrincipalTag: user.String(),
		AvatarURL:    user.AvatarURL(""),
		Values:       values,
	}
	if ts, err := discordgo.SnowflakeTimestamp(user.ID); err == nil {
		sub.AccountAge = ts
	}
	return sub
}
