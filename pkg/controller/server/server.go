package server

import (
	"context"
	"errors"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/lambdalint/linthook/pkg/domain/interfaces"
	"github.com/lambdalint/linthook/pkg/domain/model"
	"github.com/lambdalint/linthook/pkg/domain/types"
	"github.com/lambdalint/linthook/pkg/infra"
	"github.com/lambdalint/linthook/pkg/utils/errutil"
	"github.com/lambdalint/linthook/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	httpClient infra.HTTPClient
}

type Option func(*config)

// WithHTTPClient replaces the client used for the SNS subscription
// confirmation handshake.
func WithHTTPClient(client infra.HTTPClient) Option {
	return func(cfg *config) {
		cfg.httpClient = client
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/hook", func(r chi.Router) {
		r.Post("/sns", func(w http.ResponseWriter, r *http.Request) {
			handleSNS(w, r, uc, cfg)
		})
	})

	return &Server{
		mux: r,
	}
}

func handleSNS(w http.ResponseWriter, r *http.Request, uc interfaces.UseCase, cfg *config) {
	msg, err := parseSNSMessage(r)
	if err != nil {
		errutil.HandleError(r.Context(), "fail to parse SNS message", err)
		safeWrite(w, http.StatusBadRequest, []byte(err.Error()))
		return
	}

	switch msg.Type {
	case "SubscriptionConfirmation":
		if err := confirmSubscription(r, cfg.httpClient, msg); err != nil {
			errutil.HandleError(r.Context(), "fail to confirm SNS subscription", err)
			safeWrite(w, http.StatusInternalServerError, []byte(err.Error()))
			return
		}
		safeWrite(w, http.StatusOK, []byte(`{"status":"ok","message":"subscription confirmed"}`))

	case "Notification":
		target, err := decodeNotification(r, uc, msg)
		if err != nil {
			errutil.HandleError(r.Context(), "fail to decode SNS notification", err)
			code := http.StatusInternalServerError
			if errors.Is(err, types.ErrMalformedEvent) {
				code = http.StatusBadRequest
			}
			safeWrite(w, code, []byte(err.Error()))
			return
		}

		// Events that do not need a lint run are acknowledged so SNS does
		// not redeliver them.
		if target == nil {
			safeWrite(w, http.StatusOK, []byte(`{"status":"ok","message":"no lint required"}`))
			return
		}

		// The request context is cancelled when the response is sent, so
		// the pipeline runs on a detached one.
		bgCtx := DetachContext(r.Context())
		go runLintTarget(bgCtx, uc, target)

		safeWrite(w, http.StatusAccepted, []byte(`{"status":"accepted","message":"lint enqueued"}`))

	default:
		err := types.ErrMalformedEvent
		errutil.HandleError(r.Context(), "unknown SNS message type", err)
		safeWrite(w, http.StatusBadRequest, []byte("unknown SNS message type: "+msg.Type))
	}
}

func runLintTarget(ctx context.Context, uc interfaces.UseCase, target *model.LintTarget) {
	logging.From(ctx).Info("starting lint run",
		slog.String("repo", target.FullName()),
		slog.Any("commit", target.CommitSHA),
		slog.Any("event", target.Event),
	)

	if err := uc.RunLint(ctx, target); err != nil {
		errutil.HandleError(ctx, "lint run failed", err)
		return
	}

	logging.From(ctx).Info("lint run completed", slog.String("repo", target.FullName()))
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
