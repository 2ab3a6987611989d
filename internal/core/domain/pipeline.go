package domain

// PipelineState identifies where the search pipeline currently is in its
// request/response cycle.
type PipelineState string

// Pipeline states.
const (
	// StateIdle means no query has been submitted yet.
	StateIdle PipelineState = "idle"

	// StateAwaitingVerification means a gate is configured and not yet
	// satisfied, so no search can run.
	StateAwaitingVerification PipelineState = "awaiting_verification"

	// StateLoading means a request is in flight.
	StateLoading PipelineState = "loading"

	// StateSuccess means the last attempt settled with a parsed result
	// list (possibly empty).
	StateSuccess PipelineState = "success"

	// StateFailed means the last attempt settled with an error.
	StateFailed PipelineState = "failed"
)

// String returns the string representation.
func (s PipelineState) String() string {
	return string(s)
}

// Settled returns true if the state is a terminal outcome of an attempt.
func (s PipelineState) Settled() bool {
	return s == StateSuccess || s == StateFailed
}

// User-visible messages for the single error slot. Every failure category
// collapses to this one slot; none are fatal and all allow immediate retry.
const (
	// MsgVerificationRequired is shown when a submit is refused because
	// the gate is unsatisfied. No network call is made in that case.
	MsgVerificationRequired = "please complete the verification first"

	// MsgSecurityRejected is shown for a 401/403 from any endpoint. The
	// held token or session is cleared alongside it.
	MsgSecurityRejected = "security check failed, please verify again"

	// MsgSessionRejected is the session-gated counterpart of
	// MsgSecurityRejected.
	MsgSessionRejected = "session expired, please log in again"

	// MsgGenericFailure is shown when a transport or parse error carries
	// no message of its own.
	MsgGenericFailure = "something went wrong, please try again"

	// MsgLoginFailed is shown inline on the login form when the service
	// rejects credentials without a message of its own.
	MsgLoginFailed = "login failed, check your username and password"
)

// QueryState is the observable state of the search pipeline. It is a
// value snapshot; the controller owns the mutable copy.
type QueryState struct {
	// State is the current pipeline state.
	State PipelineState

	// Text is the last submitted query.
	Text string

	// Loading is true only while a request is in flight.
	Loading bool

	// Err is the single user-visible error slot. Empty when no error.
	Err string

	// Results is the parsed record list in document order. An empty,
	// non-nil list is a valid "no results" outcome, not an error.
	Results []Record

	// Attempted is true once at least one gated submit has been made.
	Attempted bool
}
