package handlers

import (
	"fmt"
	"strings"

	"github.com/legionoffools/lofbot/approval"
	"github.com/legionoffools/lofbot/config"
)

// The two request kinds served by the approval engine. Everything
// kind-specific lives here, the engine itself is generic.

var memberKind = approval.KindSpec{
	Kind:      approval.MemberVerification,
	GrantName: config.RoleNameMember,
	Fields: []approval.FieldSpec{
		{
			Name:        "ign",
			Label:       "Requested IGN",
			Question:    "Enter your In-Game Name (IGN)",
			Placeholder: "e.g., WarriorKing123",
			Required:    true,
			MinLen:      2,
			MaxLen:      30,
		},
	},
	Color:         0xFFA500,
	PromptTitle:   "📋 New Member Verification Request",
	PromptFooter:  "Click Approve to verify this member or Deny to reject.",
	ApprovedTitle: "✅ Member Verified",
	DeniedTitle:   "❌ Verification Denied",
	Nickname: func(f approval.Fields) string {
		return f.Get("ign")
	},
	ApprovedDM: func(f approval.Fields, nickname string) string {
		return fmt.Sprintf("✅ **Welcome to Legion of Fools!**\n\nYour verification has been approved.\n**Your nickname has been set to:** `%v`\n\nYou now have access to all member channels. Enjoy!", nickname)
	},
	DeniedDM: "❌ Your verification request for Legion of Fools has been denied.\n\nIf you believe this is a mistake, please contact an officer.",
	Receipt: func(f approval.Fields) string {
		return fmt.Sprintf("✅ Your verification request has been submitted!\n\n**IGN:** `%v`\n\nPlease wait for an R4+ officer to approve your request.", f.Get("ign"))
	},
}

var diplomatKind = approval.KindSpec{
	Kind:      approval.DiplomatAccess,
	GrantName: config.RoleNameDiplomat,
	// Verified members request access through member verification instead
	Conflicts: []approval.Kind{approval.MemberVerification},
	Fields: []approval.FieldSpec{
		{
			Name:        "alliance",
			Label:       "Alliance",
			Question:    "What alliance are you from?",
			Placeholder: "e.g., Warriors United [WU]",
			Required:    true,
			MinLen:      2,
			MaxLen:      50,
		},
		{
			Name:        "ign",
			Label:       "IGN",
			Question:    "Your In-Game Name (IGN)",
			Placeholder: "e.g., DiplomatKing123",
			Required:    true,
			MinLen:      2,
			MaxLen:      30,
		},
		{
			Name:        "reason",
			Label:       "Reason",
			Question:    "Why are you requesting diplomat access?",
			Placeholder: "e.g., Discussing NAP agreement, coordinating joint events...",
			MaxLen:      200,
			Paragraph:   true,
			Empty:       "Not specified",
		},
	},
	Color:         0x7B68EE,
	PromptTitle:   "🌐 New Diplomat Access Request",
	PromptFooter:  "Click Approve to grant diplomat access or Deny to reject.",
	ApprovedTitle: "✅ Diplomat Access Granted",
	DeniedTitle:   "❌ Diplomat Access Denied",
	Nickname:      diplomatNickname,
	ApprovedDM: func(f approval.Fields, nickname string) string {
		return "✅ **Diplomat Access Granted!**\n\nYour diplomat access request for Legion of Fools has been approved.\n\nYou now have access to the diplomacy channels. Welcome!"
	},
	DeniedDM: "❌ Your diplomat access request for Legion of Fools has been denied.\n\nIf you believe this is a mistake, please contact an officer.",
	Receipt: func(f approval.Fields) string {
		return fmt.Sprintf("✅ Your diplomat access request has been submitted!\n\n**Alliance:** `%v`\n**IGN:** `%v`\n\nPlease wait for an R4+ officer to review your request.", f.Get("alliance"), f.Get("ign"))
	},
}

// diplomatNickname derives a "[TAG] IGN" nickname. The tag is taken from the
// bracketed part of the alliance name, falling back to its first three
// characters uppercased. Discord caps nicknames at 32 characters.
func diplomatNickname(f approval.Fields) string {
	alliance := f.Get("alliance")
	tag := ""
	if i := strings.Index(alliance, "["); i >= 0 {
		rest := alliance[i+1:]
		if j := strings.Index(rest, "]"); j >= 0 {
			tag = rest[:j]
		} else {
			tag = rest
		}
	}
	if tag == "" {
		r := []rune(alliance)
		if len(r) > 3 {
			r = r[:3]
		}
		tag = strings.ToUpper(string(r))
	}
	nick := "[" + tag + "] " + f.Get("ign")
	if r := []rune(nick); len(r) > 32 {
		nick = string(r[:32])
	}
	return nick
}
