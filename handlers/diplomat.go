package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/legionoffools/lofbot/approval"
	db "github.com/legionoffools/lofbot/database"
)

// DiplomatButton - open the request modal for a visitor clicking Request Access
func DiplomatButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	gs, err := db.GetGuildSettings(i.GuildID)
	if err != nil {
		ephemeralReply(s, i, fmt.Sprintf("❌ An error occured while fetching guild settings.\n```%v```", err))
		return
	}

	if gs.DiplomatRoleID != "" && memberHasRole(i, gs.DiplomatRoleID) {
		ephemeralReply(s, i, "✅ You already have diplomat access!")
		return
	}
	if gs.MemberRoleID != "" && memberHasRole(i, gs.MemberRoleID) {
		ephemeralReply(s, i, "❌ You are already a verified LOF member and don't need diplomat access.")
		return
	}
	if _, open := pending.Get(approval.DiplomatAccess, i.Member.User.ID); open {
		ephemeralReply(s, i, "⏳ You already have a pending diplomat request. Please wait for an officer to review it.")
		return
	}

	showKindModal(s, i, diplomatModalID, "🌐 Diplomat Access Request", diplomatKind)
}

// DiplomatSubmit - file the diplomat request built from the modal
func DiplomatSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	values := modalValues(i.ModalSubmitData())
	eng, err := engineFor(s, i.GuildID)
	if err != nil {
		ephemeralReply(s, i, fmt.Sprintf("❌ An error occured while fetching guild settings.\n```%v```", err))
		return
	}

	receipt, err := eng.Submit(approval.DiplomatAccess, submissionFrom(i, values))
	switch {
	case err == nil:
		ephemeralReply(s, i, receipt.Message)
	case errors.Is(err, approval.ErrAlreadyGranted):
		ephemeralReply(s, i, "✅ You already have diplomat access!")
	case errors.Is(err, approval.ErrConflictingGrant):
		ephemeralReply(s, i, "❌ You are already a verified LOF member and don't need diplomat access.")
	case errors.Is(err, approval.ErrDuplicatePending):
		ephemeralReply(s, i, "⏳ You already have a pending diplomat request. Please wait for an officer to review it.")
	case errors.Is(err, approval.ErrInvalidField):
		ephemeralReply(s, i, "❌ Please check your answers: alliance and IGN are required, the reason can be at most 200 characters.")
	case errors.Is(err, approval.ErrReviewSurfaceUnavailable):
		ephemeralReply(s, i, "❌ The review channel is missing. Please ask an admin to run /setup.")
	default:
		log.Printf("diplomat submit for %v failed: %v", i.Member.User.ID, err)
		ephemeralReply(s, i, fmt.Sprintf("❌ Failed to submit your request.\n```%v```", err))
	}
}
