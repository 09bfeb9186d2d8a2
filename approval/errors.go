package approval

import "errors"

// Submission errors. These are caller mistakes and are surfaced back to the
// submitter without mutating any state.
var (
	// ErrAlreadyGranted - the principal already holds the grant for this kind
	ErrAlreadyGranted = errors.New("already holds the grant for this request kind")

	// ErrConflictingGrant - the principal holds a grant that excludes this kind
	ErrConflictingGrant = errors.New("holds a grant that conflicts with this request kind")

	// ErrDuplicatePending - an open request of this kind already exists
	ErrDuplicatePending = errors.New("a request of this kind is already pending")

	// ErrInvalidField - a submitted field failed its schema constraints
	ErrInvalidField = errors.New("invalid field")
)

// Decision and environment errors.
var (
	// ErrNotFound - no open request for (kind, principal). Expected under
	// double-click races, the loser always lands here.
	ErrNotFound = errors.New("no pending request")

	// ErrPrincipalLeft - the principal can no longer be resolved. The request
	// is discarded, no grant or denial happens.
	ErrPrincipalLeft = errors.New("principal is no longer present")

	// ErrGrantRoleMissing - the grant role was never provisioned. The pending
	// request is kept so the decision can be retried after provisioning.
	ErrGrantRoleMissing = errors.New("grant role does not exist")

	// ErrReviewSurfaceUnavailable - the review channel could not be resolved
	// or written to, the submission is rolled back.
	ErrReviewSurfaceUnavailable = errors.New("review channel unavailable")

	// ErrUnknownKind - no descriptor registered for the requested kind
	ErrUnknownKind = errors.New("unknown request kind")
)
