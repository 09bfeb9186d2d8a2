package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/legionoffools/lofbot/approval"
	db "github.com/legionoffools/lofbot/database"
)

// VerifyButton - open the IGN modal for a member clicking Verify Me
func VerifyButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	gs, err := db.GetGuildSettings(i.GuildID)
	if err != nil {
		ephemeralReply(s, i, fmt.Sprintf("❌ An error occured while fetching guild settings.\n```%v```", err))
		return
	}

	if gs.MemberRoleID != "" && memberHasRole(i, gs.MemberRoleID) {
		ephemeralReply(s, i, "✅ You are already verified!")
		return
	}
	if _, open := pending.Get(approval.MemberVerification, i.Member.User.ID); open {
		ephemeralReply(s, i, "⏳ You already have a pending verification request. Please wait for an officer to review it.")
		return
	}

	showKindModal(s, i, verifyModalID, "🛡️ LOF Member Verification", memberKind)
}

// VerifySubmit - file the verification request built from the IGN modal
func VerifySubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	values := modalValues(i.ModalSubmitData())
	eng, err := engineFor(s, i.GuildID)
	if err != nil {
		ephemeralReply(s, i, fmt.Sprintf("❌ An error occured while fetching guild settings.\n```%v```", err))
		return
	}

	receipt, err := eng.Submit(approval.MemberVerification, submissionFrom(i, values))
	switch {
	case err == nil:
		ephemeralReply(s, i, receipt.Message)
	case errors.Is(err, approval.ErrAlreadyGranted):
		ephemeralReply(s, i, "✅ You are already verified!")
	case errors.Is(err, approval.ErrDuplicatePending):
		ephemeralReply(s, i, "⏳ You already have a pending verification request. Please wait for an officer to review it.")
	case errors.Is(err, approval.ErrInvalidField):
		ephemeralReply(s, i, "❌ IGN must be between 2 and 30 characters.")
	case errors.Is(err, approval.ErrReviewSurfaceUnavailable):
		ephemeralReply(s, i, "❌ The review channel is missing. Please ask an admin to run /setup.")
	default:
		log.Printf("verification submit for %v failed: %v", i.Member.User.ID, err)
		ephemeralReply(s, i, fmt.Sprintf("❌ Failed to submit your request.\n```%v```", err))
	}
}
