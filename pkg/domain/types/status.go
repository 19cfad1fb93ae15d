package types

// CommitState is the state vocabulary of the commit Status API.
type CommitState string

const (
	CommitStateError   CommitState = "error"
	CommitStateFailure CommitState = "failure"
	CommitStatePending CommitState = "pending"
	CommitStateSuccess CommitState = "success"
)

func (x CommitState) IsValid() bool {
	switch x {
	case CommitStateError, CommitStateFailure, CommitStatePending, CommitStateSuccess:
		return true
	}
	return false
}

// CheckStatus is the lifecycle status vocabulary of the Check-Run API.
type CheckStatus string

const (
	CheckStatusQueued     CheckStatus = "queued"
	CheckStatusInProgress CheckStatus = "in_progress"
	CheckStatusCompleted  CheckStatus = "completed"
)

// CheckConclusion is the terminal conclusion vocabulary of the Check-Run API.
// It is required when a check run reaches CheckStatusCompleted and must be
// absent before that.
type CheckConclusion string

const (
	CheckConclusionSuccess        CheckConclusion = "success"
	CheckConclusionFailure        CheckConclusion = "failure"
	CheckConclusionNeutral        CheckConclusion = "neutral"
	CheckConclusionCancelled      CheckConclusion = "cancelled"
	CheckConclusionTimedOut       CheckConclusion = "timed_out"
	CheckConclusionActionRequired CheckConclusion = "action_required"
)

func (x CheckConclusion) IsValid() bool {
	switch x {
	case CheckConclusionSuccess, CheckConclusionFailure, CheckConclusionNeutral,
		CheckConclusionCancelled, CheckConclusionTimedOut, CheckConclusionActionRequired:
		return true
	}
	return false
}
