package approval

import (
	"strings"
	"time"
)

// Kind tags one of the parallel request variants served by the engine.
type Kind string

const (
	// MemberVerification - alliance member verification requests
	MemberVerification Kind = "member"
	// DiplomatAccess - diplomat access requests from other alliances
	DiplomatAccess Kind = "diplomat"
)

// Outcome of a reviewer decision.
type Outcome string

const (
	// Approved - grant the request
	Approved Outcome = "approve"
	// Denied - reject the request
	Denied Outcome = "deny"
)

// FieldSpec declares one attribute collected at submission time.
type FieldSpec struct {
	Name  string
	Label string
	// Question is the collection-form wording, Label is used otherwise
	Question    string
	Placeholder string
	Required    bool
	MinLen      int
	MaxLen      int
	Paragraph   bool
	// Empty is stored in place of an omitted optional value
	Empty string
}

// Field is one submitted attribute. Values are immutable after submission.
type Field struct {
	Name  string
	Label string
	Value string
}

// Fields is the ordered attribute list of a request.
type Fields []Field

// Get returns the value submitted under name, or "".
func (f Fields) Get(name string) string {
	for _, fl := range f {
		if fl.Name == name {
			return fl.Value
		}
	}
	return ""
}

// KindSpec describes everything kind-specific the engine needs: the field
// schema, the grant, conflict rules, and the wording of prompts and
// notifications. One engine serves any number of kinds.
type KindSpec struct {
	Kind      Kind
	GrantName string
	// Conflicts lists kinds whose grant excludes this kind
	Conflicts []Kind
	Fields    []FieldSpec

	Color         int
	PromptTitle   string
	PromptFooter  string
	ApprovedTitle string
	DeniedTitle   string

	// Nickname derives the nickname applied on approval. Empty means the
	// nickname is left alone.
	Nickname func(f Fields) string
	// ApprovedDM renders the best-effort notification after approval
	ApprovedDM func(f Fields, nickname string) string
	// DeniedDM is the best-effort notification after denial
	DeniedDM string
	// Receipt renders the acknowledgment returned to the submitter
	Receipt func(f Fields) string
}

// MessageRef is an opaque reference to a posted review prompt.
type MessageRef struct {
	ChannelID string
	MessageID string
}

// Request is one in-flight access request. Its presence in the store is the
// only pending-state signal, removal is the terminal transition.
type Request struct {
	PrincipalID  string
	PrincipalTag string
	AvatarURL    string
	AccountAge   time.Time
	Kind         Kind
	Fields       Fields
	SubmittedAt  time.Time
	Prompt       MessageRef
}

// DecisionCustomID builds the action identifier attached to a review prompt
// control. The kind and principal ride along in the identifier so the
// decision trigger is self-describing.
func DecisionCustomID(o Outcome, k Kind, principalID string) string {
	return string(o) + "_" + string(k) + "_" + principalID
}

// ParseDecisionCustomID recovers the outcome, kind and principal from an
// action identifier. ok is false for identifiers owned by other features.
func ParseDecisionCustomID(id string) (o Outcome, k Kind, principalID string, ok bool) {
	parts := strings.SplitN(id, "_", 3)
	if len(parts) != 3 {
		return "", "", "", false
	}
	switch Outcome(parts[0]) {
	case Approved, Denied:
		o = Outcome(parts[0])
	default:
		return "", "", "", false
	}
	switch Kind(parts[1]) {
	case MemberVerification, DiplomatAccess:
		k = Kind(parts[1])
	default:
		return "", "", "", false
	}
	return o, k, parts[2], true
}
