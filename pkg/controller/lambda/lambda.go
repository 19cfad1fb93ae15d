package lambda

import (
	"context"

	"log/slog"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/m-mizutani/goerr/v2"

	"github.com/lambdalint/linthook/pkg/domain/interfaces"
	"github.com/lambdalint/linthook/pkg/domain/types"
	"github.com/lambdalint/linthook/pkg/utils/errutil"
	"github.com/lambdalint/linthook/pkg/utils/logging"
)

// Handler adapts the lint pipeline to the Lambda runtime with an SNS
// trigger.
type Handler struct {
	uc interfaces.UseCase
}

func New(uc interfaces.UseCase) *Handler {
	return &Handler{uc: uc}
}

// HandleEvent processes every SNS record of one invocation. A record that
// needs no lint run is skipped silently.
func (x *Handler) HandleEvent(ctx context.Context, event events.SNSEvent) error {
	if len(event.Records) == 0 {
		return goerr.Wrap(types.ErrMalformedEvent, "SNS event has no records")
	}

	for _, record := range event.Records {
		msg := record.SNS

		target, err := x.uc.DecodeTarget(ctx, msg.Subject, []byte(msg.Message))
		if err != nil {
			errutil.HandleError(ctx, "fail to decode SNS record", err)
			return err
		}
		if target == nil {
			logging.From(ctx).Info("no lint required",
				slog.String("subject", msg.Subject),
				slog.String("message_id", msg.MessageID),
			)
			continue
		}

		logging.From(ctx).Info("starting lint run",
			slog.String("repo", target.FullName()),
			slog.Any("commit", target.CommitSHA),
			slog.Any("event", target.Event),
		)

		if err := x.uc.RunLint(ctx, target); err != nil {
			errutil.HandleError(ctx, "lint run failed", err)
			return err
		}
	}

	return nil
}

// Start hands the handler to the Lambda runtime. It never returns.
func (x *Handler) Start() {
	lambda.StartWithOptions(x.HandleEvent)
}
