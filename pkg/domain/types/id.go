package types

import "github.com/google/uuid"

type RequestID string

const EmptyRequestID RequestID = ""

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x RequestID) String() string {
	return string(x)
}

// RunID identifies one lint invocation in the run history table.
type RunID string

func NewRunID() RunID {
	return RunID(uuid.NewString())
}

func (x RunID) String() string {
	return string(x)
}
