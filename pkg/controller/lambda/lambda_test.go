package lambda_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/m-mizutani/gt"

	"github.com/lambdalint/linthook/pkg/controller/lambda"
	"github.com/lambdalint/linthook/pkg/domain/mock"
	"github.com/lambdalint/linthook/pkg/domain/model"
	"github.com/lambdalint/linthook/pkg/domain/types"
)

func snsEvent(subject, message string) events.SNSEvent {
	return events.SNSEvent{
		Records: []events.SNSEventRecord{
			{
				SNS: events.SNSEntity{
					Subject:   subject,
					Message:   message,
					MessageID: "msg-1",
				},
			},
		},
	}
}

func TestHandleEvent(t *testing.T) {
	target := &model.LintTarget{
		Event:     types.PushEvent,
		Owner:     "owner",
		RepoName:  "repo",
		CommitSHA: "0123456789abcdef0123456789abcdef01234567",
	}

	t.Run("relevant record triggers a lint run", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			DecodeTargetFunc: func(ctx context.Context, subject string, message []byte) (*model.LintTarget, error) {
				gt.V(t, subject).Equal("push")
				gt.V(t, string(message)).Equal(`{"ref":"refs/heads/main"}`)
				return target, nil
			},
			RunLintFunc: func(ctx context.Context, got *model.LintTarget) error {
				gt.V(t, got).Equal(target)
				return nil
			},
		}

		handler := lambda.New(uc)
		gt.NoError(t, handler.HandleEvent(context.Background(), snsEvent("push", `{"ref":"refs/heads/main"}`)))
		gt.A(t, uc.RunLintCalls()).Length(1)
	})

	t.Run("irrelevant record is skipped", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			DecodeTargetFunc: func(ctx context.Context, subject string, message []byte) (*model.LintTarget, error) {
				return nil, nil
			},
			RunLintFunc: func(ctx context.Context, got *model.LintTarget) error {
				return nil
			},
		}

		handler := lambda.New(uc)
		gt.NoError(t, handler.HandleEvent(context.Background(), snsEvent("status", `{}`)))
		gt.A(t, uc.RunLintCalls()).Length(0)
	})

	t.Run("empty event is rejected", func(t *testing.T) {
		handler := lambda.New(&mock.UseCaseMock{})
		err := handler.HandleEvent(context.Background(), events.SNSEvent{})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrMalformedEvent))
	})

	t.Run("decode failure is propagated", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			DecodeTargetFunc: func(ctx context.Context, subject string, message []byte) (*model.LintTarget, error) {
				return nil, types.ErrMalformedEvent
			},
		}

		handler := lambda.New(uc)
		err := handler.HandleEvent(context.Background(), snsEvent("push", `broken`))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrMalformedEvent))
	})

	t.Run("lint failure is propagated", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			DecodeTargetFunc: func(ctx context.Context, subject string, message []byte) (*model.LintTarget, error) {
				return target, nil
			},
			RunLintFunc: func(ctx context.Context, got *model.LintTarget) error {
				return types.ErrReportDelivery
			},
		}

		handler := lambda.New(uc)
		err := handler.HandleEvent(context.Background(), snsEvent("push", `{}`))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrReportDelivery))
	})
}
