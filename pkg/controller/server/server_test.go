package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/lambdalint/linthook/pkg/controller/server"
	"github.com/lambdalint/linthook/pkg/domain/mock"
	"github.com/lambdalint/linthook/pkg/domain/model"
	"github.com/lambdalint/linthook/pkg/domain/types"
)

func postSNS(t *testing.T, srv *server.Server, envelope map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	body := gt.R1(json.Marshal(envelope)).NoError(t)
	req := httptest.NewRequest(http.MethodPost, "/hook/sns", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	srv := server.New(&mock.UseCaseMock{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusOK)
	gt.V(t, rec.Body.String()).Equal("ok")
}

func TestSubscriptionConfirmation(t *testing.T) {
	t.Run("fetches the SubscribeURL", func(t *testing.T) {
		var confirmed int
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			confirmed++
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		srv := server.New(&mock.UseCaseMock{})
		rec := postSNS(t, srv, map[string]any{
			"Type":         "SubscriptionConfirmation",
			"SubscribeURL": ts.URL + "/confirm",
		})

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, confirmed).Equal(1)
	})

	t.Run("missing SubscribeURL is rejected", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})
		rec := postSNS(t, srv, map[string]any{
			"Type": "SubscriptionConfirmation",
		})

		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
	})
}

func TestNotification(t *testing.T) {
	newTarget := func() *model.LintTarget {
		return &model.LintTarget{
			Event:       types.PushEvent,
			Owner:       "owner",
			RepoName:    "repo",
			CommitSHA:   "0123456789abcdef0123456789abcdef01234567",
			InstallID:   1,
			ArchiveURL:  "https://api.github.com/repos/owner/repo/{archive_format}{/ref}",
			StatusesURL: "https://api.github.com/repos/owner/repo/statuses/{sha}",
		}
	}

	t.Run("relevant event is enqueued", func(t *testing.T) {
		ran := make(chan *model.LintTarget, 1)
		uc := &mock.UseCaseMock{
			DecodeTargetFunc: func(ctx context.Context, subject string, message []byte) (*model.LintTarget, error) {
				gt.V(t, subject).Equal("push")
				return newTarget(), nil
			},
			RunLintFunc: func(ctx context.Context, target *model.LintTarget) error {
				ran <- target
				return nil
			},
		}

		srv := server.New(uc)
		rec := postSNS(t, srv, map[string]any{
			"Type":    "Notification",
			"Subject": "push",
			"Message": `{"ref":"refs/heads/main"}`,
		})

		gt.V(t, rec.Code).Equal(http.StatusAccepted)

		select {
		case target := <-ran:
			gt.V(t, target.FullName()).Equal("owner/repo")
		case <-time.After(time.Second):
			t.Fatal("lint run was not started")
		}
	})

	t.Run("irrelevant event is acknowledged without a run", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			DecodeTargetFunc: func(ctx context.Context, subject string, message []byte) (*model.LintTarget, error) {
				return nil, nil
			},
			RunLintFunc: func(ctx context.Context, target *model.LintTarget) error {
				return nil
			},
		}

		srv := server.New(uc)
		rec := postSNS(t, srv, map[string]any{
			"Type":    "Notification",
			"Subject": "status",
			"Message": `{}`,
		})

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.A(t, uc.RunLintCalls()).Length(0)
	})

	t.Run("malformed payload returns 400", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			DecodeTargetFunc: func(ctx context.Context, subject string, message []byte) (*model.LintTarget, error) {
				return nil, types.ErrMalformedEvent
			},
		}

		srv := server.New(uc)
		rec := postSNS(t, srv, map[string]any{
			"Type":    "Notification",
			"Subject": "push",
			"Message": `not a json`,
		})

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("missing subject returns 400", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})
		rec := postSNS(t, srv, map[string]any{
			"Type":    "Notification",
			"Message": `{}`,
		})

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestInvalidEnvelope(t *testing.T) {
	t.Run("non-JSON body returns 400", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})
		req := httptest.NewRequest(http.MethodPost, "/hook/sns", bytes.NewReader([]byte("not json")))
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("unknown message type returns 400", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})
		rec := postSNS(t, srv, map[string]any{
			"Type": "UnsubscribeConfirmation",
		})

		gt.V(t, rec.Code).Equal(http.StatusBadRequest)
	})
}
