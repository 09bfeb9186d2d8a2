package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/legionoffools/lofbot/approval"
)

// Interactive surface identifiers
const (
	setupConfirmID   = "setup_confirm"
	setupCancelID    = "setup_cancel"
	verifyButtonID   = "verify_member"
	verifyModalID    = "verify_ign_modal"
	diplomatButtonID = "request_diplomat"
	diplomatModalID  = "diplomat_request_modal"
)

// InteractionCreate - dispatch slash commands, buttons and modal submissions
func InteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" {
		return
	}
	if !settings.GuildAllowed(i.GuildID) {
		ephemeralReply(s, i, "❌ This bot is not authorized for this server.")
		return
	}

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if i.ApplicationCommandData().Name == "setup" {
			SetupCommand(s, i)
		}

	case discordgo.InteractionMessageComponent:
		switch cid := i.MessageComponentData().CustomID; cid {
		case setupConfirmID:
			SetupConfirm(s, i)
		case setupCancelID:
			SetupCancel(s, i)
		case verifyButtonID:
			VerifyButton(s, i)
		case diplomatButtonID:
			DiplomatButton(s, i)
		default:
			if outcome, kind, principalID, ok := approval.ParseDecisionCustomID(cid); ok {
				DecisionButton(s, i, outcome, kind, principalID)
			}
		}

	case discordgo.InteractionModalSubmit:
		switch i.ModalSubmitData().CustomID {
		case verifyModalID:
			VerifySubmit(s, i)
		case diplomatModalID:
			DiplomatSubmit(s, i)
		}
	}
}

// DecisionButton - apply a reviewer's approve/deny click to the pending
// request encoded in the button's identifier. Both request kinds land here.
func DecisionButton(s *discordgo.Session, i *discordgo.InteractionCreate, outcome approval.Outcome, kind approval.Kind, principalID string) {
	if !reviewerCheck(i) {
		ephemeralReply(s, i, "❌ You need the Manage Roles permission to approve or deny requests.")
		return
	}

	// Ack first, the engine rewrites the prompt message itself
	deferUpdate(s, i)

	eng, err := engineFor(s, i.GuildID)
	if err != nil {
		followupEphemeral(s, i, fmt.Sprintf("❌ An error occured while fetching guild settings.\n```%v```", err))
		return
	}

	_, err = eng.Decide(i.Member.User.ID, kind, principalID, outcome)
	switch {
	case err == nil:
		return
	case errors.Is(err, approval.ErrNotFound):
		followupEphemeral(s, i, "❌ This request has expired or was already processed.")
	case errors.Is(err, approval.ErrPrincipalLeft):
		followupEphemeral(s, i, "❌ User is no longer in the server.")
	case errors.Is(err, approval.ErrGrantRoleMissing):
		followupEphemeral(s, i, fmt.Sprintf("❌ %v role not found. Please run /setup first.", grantName(kind)))
	default:
		log.Printf("decision on %v request for %v failed: %v", kind, principalID, err)
		followupEphemeral(s, i, fmt.Sprintf("❌ Failed to process the decision.\n```%v```", err))
	}
}

func grantName(kind approval.Kind) string {
	switch kind {
	case approval.DiplomatAccess:
		return diplomatKind.GrantName
	default:
		return memberKind.GrantName
	}
}
