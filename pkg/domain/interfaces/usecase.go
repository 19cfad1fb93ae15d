package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/lambdalint/linthook/pkg/domain/model"
)

type UseCase interface {
	// DecodeTarget parses one notification (webhook event name + raw JSON
	// payload) and returns the lint target, or nil when the event does not
	// require a lint run.
	DecodeTarget(ctx context.Context, subject string, message []byte) (*model.LintTarget, error)

	// RunLint executes the whole pipeline for one target: authenticate,
	// download, run the linter and report the outcome.
	RunLint(ctx context.Context, target *model.LintTarget) error

	// LintLocal runs the linter against a local directory without touching
	// GitHub. Used by the lint subcommand.
	LintLocal(ctx context.Context, dir string, meta model.GitMetadata) error
}
