package model

import (
	"fmt"
	"time"
)

// CmdResult holds the outcome of one linter subprocess execution.
type CmdResult struct {
	// CommandLine is the rendered command, e.g. "python -m flake8 --ignore=E501".
	CommandLine string

	// Output is the combined stdout and stderr of the child process.
	Output string

	ExitCode int

	// CPUTime is the user CPU time consumed by terminated children,
	// shown to the user as the elapsed metric.
	CPUTime time.Duration
}

// Log renders the result as a shell-transcript style log.
func (x *CmdResult) Log() string {
	return fmt.Sprintf("$ %s\n%s", x.CommandLine, x.Output)
}

func (x *CmdResult) Succeeded() bool {
	return x.ExitCode == 0
}

// maxSummaryLogLen bounds the log portion of a check-run summary. The
// Check-Run API rejects output bodies beyond 64KB and the UI becomes
// useless well before that.
const maxSummaryLogLen = 9000

const truncationNotice = "Full output truncated. Please run locally see full output."

// CheckSummary renders the fenced summary body of a check-run update from
// the version banner and the run log, truncating oversized logs.
func CheckSummary(version, log string) string {
	if len(log) > maxSummaryLogLen {
		log = log[:maxSummaryLogLen] + "\n" + truncationNotice
	}
	return fmt.Sprintf("```\n%s\n%s\n```", version, log)
}
