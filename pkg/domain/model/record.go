package model

import (
	"time"

	"github.com/lambdalint/linthook/pkg/domain/types"
)

// GitMetadata identifies the code a lint run operated on. All fields are
// plain strings so they can be bound to CLI flags directly.
type GitMetadata struct {
	Owner     string `bigquery:"owner" json:"owner"`
	RepoName  string `bigquery:"repo_name" json:"repo_name"`
	CommitSHA string `bigquery:"commit_sha" json:"commit_sha"`
	Branch    string `bigquery:"branch" json:"branch"`
}

// RunRecord is one row of the lint run history table.
type RunRecord struct {
	ID         types.RunID `bigquery:"id" json:"id"`
	Timestamp  time.Time   `bigquery:"timestamp" json:"timestamp"`
	EventType  string      `bigquery:"event_type" json:"event_type"`
	GitHub     GitMetadata `bigquery:"github" json:"github"`
	Cmd        string      `bigquery:"cmd" json:"cmd"`
	ExitCode   int         `bigquery:"exit_code" json:"exit_code"`
	CPUSeconds float64     `bigquery:"cpu_seconds" json:"cpu_seconds"`
	Conclusion string      `bigquery:"conclusion" json:"conclusion"`
	LogURL     string      `bigquery:"log_url" json:"log_url"`
}
