// Package approval implements the request/approval workflow: a submission
// creates a pending request and posts a review prompt, a reviewer applies
// exactly one terminal decision, and the grant, prompt rewrite and
// notification happen as side effects. The engine is parametrized over
// KindSpec descriptors so member verification and diplomat access share one
// implementation.
package approval

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Terminal prompt colors.
const (
	colorApproved  = 0x50C878
	colorDenied    = 0xFF0000
	colorDiscarded = 0x808080
)

// Prompt is a platform-neutral rendering of a review prompt. The gateway
// owns the translation into the platform's message shape.
type Prompt struct {
	Title     string
	Color     int
	Thumbnail string
	Footer    string
	Fields    []PromptField
	Actions   []PromptAction
}

// PromptField - one labeled value on a prompt
type PromptField struct {
	Name   string
	Value  string
	Inline bool
}

// PromptAction - one interactive control on a prompt
type PromptAction struct {
	CustomID string
	Label    string
	Emoji    string
	// Confirm styles the control as the affirmative choice
	Confirm bool
}

// Gateway is the engine's view of the chat platform. All calls are
// at-most-once, the engine never retries them.
type Gateway interface {
	HasRole(userID, roleID string) (bool, error)
	RoleExists(roleID string) bool
	MemberPresent(userID string) bool
	PostPrompt(channelID string, p Prompt) (MessageRef, error)
	DeletePrompt(ref MessageRef)
	UpdatePrompt(ref MessageRef, p Prompt) error
	GrantRole(userID, roleID string) error
	SetNickname(userID, nick string) error
	Notify(userID, text string) error
}

// Refs carries the opaque identifiers of provisioned resources. They are
// captured once at provisioning time and handed to the engine, never
// re-resolved by display name.
type Refs struct {
	ReviewChannelID string
	GrantRoles      map[Kind]string
}

// Submission is the inbound payload of a submit trigger.
type Submission struct {
	PrincipalID  string
	PrincipalTag string
	AvatarURL    string
	AccountAge   time.Time
	Values       map[string]string
}

// Receipt acknowledges a successful submission.
type Receipt struct {
	Kind    Kind
	Fields  Fields
	Prompt  MessageRef
	Message string
}

// DecisionRecord is the durable outcome of a decision.
type DecisionRecord struct {
	ID          string
	Kind        Kind
	PrincipalID string
	ReviewerID  string
	Outcome     Outcome
	Nickname    string
	DecidedAt   time.Time
}

// Engine runs the workflow for every registered kind against one store and
// one gateway.
type Engine struct {
	store Store
	gw    Gateway
	refs  Refs
	kinds map[Kind]KindSpec
}

// New - build an engine over store and gw serving the given kinds
func New(store Store, gw Gateway, refs Refs, kinds ...KindSpec) *Engine {
	m := make(map[Kind]KindSpec, len(kinds))
	for _, k := range kinds {
		m[k.Kind] = k
	}
	return &Engine{store: store, gw: gw, refs: refs, kinds: m}
}

// Submit validates sub against the kind's schema, posts the review prompt
// and retains the pending request. On any error nothing is retained.
func (e *Engine) Submit(kind Kind, sub Submission) (*Receipt, error) {
	spec, ok := e.kinds[kind]
	if !ok {
		return nil, ErrUnknownKind
	}

	// Reject principals that already hold the grant, or a conflicting one
	if roleID := e.refs.GrantRoles[kind]; roleID != "" {
		if has, err := e.gw.HasRole(sub.PrincipalID, roleID); err == nil && has {
			return nil, ErrAlreadyGranted
		}
	}
	for _, c := range spec.Conflicts {
		roleID := e.refs.GrantRoles[c]
		if roleID == "" {
			continue
		}
		if has, err := e.gw.HasRole(sub.PrincipalID, roleID); err == nil && has {
			return nil, ErrConflictingGrant
		}
	}

	if _, open := e.store.Get(kind, sub.PrincipalID); open {
		return nil, ErrDuplicatePending
	}

	fields, err := validateFields(spec.Fields, sub.Values)
	if err != nil {
		return nil, err
	}

	if e.refs.ReviewChannelID == "" {
		return nil, ErrReviewSurfaceUnavailable
	}

	req := Request{
		PrincipalID:  sub.PrincipalID,
		PrincipalTag: sub.PrincipalTag,
		AvatarURL:    sub.AvatarURL,
		AccountAge:   sub.AccountAge,
		Kind:         kind,
		Fields:       fields,
		SubmittedAt:  time.Now(),
	}

	ref, err := e.gw.PostPrompt(e.refs.ReviewChannelID, e.reviewPrompt(spec, req))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReviewSurfaceUnavailable, err)
	}
	req.Prompt = ref

	// The duplicate pre-check raced with another submission, keep the
	// winner's prompt and drop ours
	if !e.store.PutIfAbsent(req) {
		e.gw.DeletePrompt(ref)
		return nil, ErrDuplicatePending
	}

	receipt := &Receipt{Kind: kind, Fields: fields, Prompt: ref}
	if spec.Receipt != nil {
		receipt.Message = spec.Receipt(fields)
	}
	return receipt, nil
}

// Decide applies one terminal outcome to the open request for
// (kind, principal). Check-and-remove is the atomic gate: side effects run
// only for the caller that wins the removal, any racing caller observes
// ErrNotFound.
func (e *Engine) Decide(reviewerID string, kind Kind, principalID string, outcome Outcome) (*DecisionRecord, error) {
	spec, ok := e.kinds[kind]
	if !ok {
		return nil, ErrUnknownKind
	}

	req, ok := e.store.Get(kind, principalID)
	if !ok {
		return nil, ErrNotFound
	}

	if !e.gw.MemberPresent(principalID) {
		req, ok = e.store.Remove(kind, principalID)
		if !ok {
			return nil, ErrNotFound
		}
		if err := e.gw.UpdatePrompt(req.Prompt, e.discardedPrompt(req)); err != nil {
			log.Printf("failed to rewrite prompt for discarded %v request: %v", kind, err)
		}
		return nil, ErrPrincipalLeft
	}

	// The grant role must exist before the request is consumed so the
	// decision can be retried after provisioning
	roleID := e.refs.GrantRoles[kind]
	if outcome == Approved && (roleID == "" || !e.gw.RoleExists(roleID)) {
		return nil, ErrGrantRoleMissing
	}

	req, ok = e.store.Remove(kind, principalID)
	if !ok {
		return nil, ErrNotFound
	}

	rec := &DecisionRecord{
		ID:          uuid.NewString(),
		Kind:        kind,
		PrincipalID: principalID,
		ReviewerID:  reviewerID,
		Outcome:     outcome,
		DecidedAt:   time.Now(),
	}

	if outcome == Approved {
		if spec.Nickname != nil {
			rec.Nickname = spec.Nickname(req.Fields)
		}
		if rec.Nickname != "" {
			if err := e.gw.SetNickname(principalID, rec.Nickname); err != nil {
				log.Printf("failed to set nickname for %v: %v", principalID, err)
			}
		}
		if err := e.gw.GrantRole(principalID, roleID); err != nil {
			log.Printf("failed to assign %v role to %v: %v", spec.GrantName, principalID, err)
		}
	}

	if err := e.gw.UpdatePrompt(req.Prompt, e.terminalPrompt(spec, req, rec)); err != nil {
		log.Printf("failed to rewrite prompt for decided %v request: %v", kind, err)
	}

	// Best effort, closed inboxes are not a failure
	e.gw.Notify(principalID, e.notification(spec, req, rec))

	return rec, nil
}

func validateFields(specs []FieldSpec, values map[string]string) (Fields, error) {
	fields := make(Fields, 0, len(specs))
	for _, fs := range specs {
		v := strings.TrimSpace(values[fs.Name])
		if v == "" {
			if fs.Required {
				return nil, fmt.Errorf("%w: %v is required", ErrInvalidField, fs.Label)
			}
			v = fs.Empty
		} else {
			if n := len([]rune(v)); n < fs.MinLen {
				return nil, fmt.Errorf("%w: %v must be at least %v characters", ErrInvalidField, fs.Label, fs.MinLen)
			} else if fs.MaxLen > 0 && n > fs.MaxLen {
				return nil, fmt.Errorf("%w: %v must be at most %v characters", ErrInvalidField, fs.Label, fs.MaxLen)
			}
		}
		fields = append(fields, Field{Name: fs.Name, Label: fs.Label, Value: v})
	}
	return fields, nil
}

func (e *Engine) reviewPrompt(spec KindSpec, req Request) Prompt {
	p := Prompt{
		Title:     spec.PromptTitle,
		Color:     spec.Color,
		Thumbnail: req.AvatarURL,
		Footer:    spec.PromptFooter,
		Fields: []PromptField{
			{Name: "Discord User", Value: fmt.Sprintf("<@%v> (%v)", req.PrincipalID, req.PrincipalTag), Inline: true},
		},
		Actions: []PromptAction{
			{CustomID: DecisionCustomID(Approved, req.Kind, req.PrincipalID), Label: "Approve", Emoji: "✅", Confirm: true},
			{CustomID: DecisionCustomID(Denied, req.Kind, req.PrincipalID), Label: "Deny", Emoji: "❌"},
		},
	}
	for _, f := range req.Fields {
		p.Fields = append(p.Fields, PromptField{Name: f.Label, Value: "`" + f.Value + "`", Inline: true})
	}
	if !req.AccountAge.IsZero() {
		p.Fields = append(p.Fields, PromptField{
			Name:   "Account Created",
			Value:  fmt.Sprintf("<t:%v:R>", req.AccountAge.Unix()),
			Inline: true,
		})
	}
	return p
}

func (e *Engine) terminalPrompt(spec KindSpec, req Request, rec *DecisionRecord) Prompt {
	p := Prompt{
		Thumbnail: req.AvatarURL,
		Fields: []PromptField{
			{Name: "Discord User", Value: fmt.Sprintf("<@%v>", req.PrincipalID), Inline: true},
		},
	}
	for _, f := range req.Fields {
		p.Fields = append(p.Fields, PromptField{Name: f.Label, Value: "`" + f.Value + "`", Inline: true})
	}
	if rec.Outcome == Approved {
		p.Title = spec.ApprovedTitle
		p.Color = colorApproved
		p.Fields = append(p.Fields, PromptField{Name: "Approved By", Value: fmt.Sprintf("<@%v>", rec.ReviewerID), Inline: true})
	} else {
		p.Title = spec.DeniedTitle
		p.Color = colorDenied
		p.Fields = append(p.Fields, PromptField{Name: "Denied By", Value: fmt.Sprintf("<@%v>", rec.ReviewerID), Inline: true})
	}
	p.Footer = "Decided " + rec.DecidedAt.UTC().Format("2006-01-02 15:04 MST")
	return p
}

func (e *Engine) discardedPrompt(req Request) Prompt {
	return Prompt{
		Title: "⚠️ Request Discarded",
		Color: colorDiscarded,
		Fields: []PromptField{
			{Name: "Discord User", Value: fmt.Sprintf("<@%v> (%v)", req.PrincipalID, req.PrincipalTag), Inline: true},
		},
		Footer: "User is no longer in the server.",
	}
}

func (e *Engine) notification(spec KindSpec, req Request, rec *DecisionRecord) string {
	if rec.Outcome == Approved {
		if spec.ApprovedDM != nil {
			return spec.ApprovedDM(req.Fields, rec.Nickname)
		}
		return fmt.Sprintf("✅ Your %v request has been approved.", spec.GrantName)
	}
	if spec.DeniedDM != "" {
		return spec.DeniedDM
	}
	return fmt.Sprintf("❌ Your %v request has been denied.", spec.GrantName)
}

