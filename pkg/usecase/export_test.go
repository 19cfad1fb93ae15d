package usecase

import (
	"context"
	"net/http"

	"github.com/lambdalint/linthook/pkg/domain/model"
	"github.com/lambdalint/linthook/pkg/domain/types"
)

var (
	ExtractTarball = extractTarball
	RefToBranch    = refToBranch
)

type Reporter = reporter

func (x *UseCase) NewReporterForTest(target *model.LintTarget, session *http.Client) Reporter {
	return x.newReporter(target, session)
}

func (x *UseCase) DownloadCodeForTest(ctx context.Context, session *http.Client, target *model.LintTarget) (string, error) {
	return x.downloadCode(ctx, session, target)
}

func PostStatusForTest(ctx context.Context, rep Reporter, state types.CommitState, description string) error {
	return rep.(*statusReporter).postStatus(ctx, state, description, "")
}
