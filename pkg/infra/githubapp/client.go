package githubapp

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lambdalint/linthook/pkg/domain/interfaces"
	"github.com/lambdalint/linthook/pkg/domain/types"
	"github.com/lambdalint/linthook/pkg/utils/logging"
	"github.com/lambdalint/linthook/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// DefaultAPIBase is the GitHub REST endpoint used for the token
	// exchange. The token endpoint predates the /app prefix and GitHub
	// still serves it.
	DefaultAPIBase = "https://api.github.com"

	// acceptMachineMan is required by the installation token endpoint.
	acceptMachineMan = "application/vnd.github.machine-man-preview+json"

	// assertionTTL is the lifetime of the signed assertion. GitHub rejects
	// anything over 10 minutes.
	assertionTTL = 300 * time.Second
)

type Client struct {
	appID   types.GitHubAppID
	key     *rsa.PrivateKey
	apiBase string
	base    *http.Client
}

var _ interfaces.GitHubApp = (*Client)(nil)

type Option func(*Client)

// WithAPIBase overrides the GitHub API endpoint, mainly for tests.
func WithAPIBase(base string) Option {
	return func(x *Client) {
		x.apiBase = strings.TrimSuffix(base, "/")
	}
}

// WithHTTPClient overrides the HTTP client used for the token exchange and
// as the base of issued sessions.
func WithHTTPClient(client *http.Client) Option {
	return func(x *Client) {
		x.base = client
	}
}

func New(appID types.GitHubAppID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	// Keys handed over via environment variables carry literal \n escape
	// sequences instead of line breaks.
	raw := strings.ReplaceAll(string(pem), `\n`, "\n")
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(raw))
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "failed to parse private key", goerr.V("cause", err.Error()))
	}

	client := &Client{
		appID:   appID,
		key:     key,
		apiBase: DefaultAPIBase,
		base:    http.DefaultClient,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// signAssertion builds the RS256 signed assertion the token endpoint
// accepts as a bearer credential.
func (x *Client) signAssertion(now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(assertionTTL)),
		Issuer:    fmt.Sprintf("%d", x.appID),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(x.key)
	if err != nil {
		return "", goerr.Wrap(err, "failed to sign assertion")
	}
	return signed, nil
}

// IssueToken exchanges a fresh signed assertion for an installation token.
// Tokens are short-lived and never cached beyond the invocation.
func (x *Client) IssueToken(ctx context.Context, installID types.GitHubAppInstallID) (types.GitHubToken, error) {
	assertion, err := x.signAssertion(logging.CtxTime(ctx))
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/installations/%d/access_tokens", x.apiBase, installID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return "", goerr.Wrap(err, "failed to build token request", goerr.V("url", url))
	}
	req.Header.Set("Accept", acceptMachineMan)
	req.Header.Set("Authorization", "Bearer "+assertion)

	logging.From(ctx).Info("requesting new installation token",
		slog.Any("appID", x.appID),
		slog.Any("installID", installID),
	)

	resp, err := x.base.Do(req)
	if err != nil {
		return "", goerr.Wrap(types.ErrAuthExchange, "token request failed", goerr.V("cause", err.Error()))
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return "", goerr.Wrap(types.ErrAuthExchange, "unexpected status from token endpoint",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", goerr.Wrap(types.ErrAuthExchange, "failed to decode token response", goerr.V("cause", err.Error()))
	}
	if payload.Token == "" {
		return "", goerr.Wrap(types.ErrAuthExchange, "token endpoint returned no token")
	}

	return types.GitHubToken(payload.Token), nil
}

// NewSession implements interfaces.GitHubApp. The returned client sends
// the installation token on every request.
func (x *Client) NewSession(ctx context.Context, installID types.GitHubAppInstallID, opts ...interfaces.SessionOption) (*http.Client, error) {
	var cfg interfaces.SessionConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	token, err := x.IssueToken(ctx, installID)
	if err != nil {
		return nil, err
	}

	base := x.base.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	return &http.Client{
		Transport: &tokenTransport{
			base:     base,
			token:    token,
			previews: cfg.Previews,
		},
	}, nil
}

// tokenTransport injects the installation token and the configured preview
// media types into every outgoing request.
type tokenTransport struct {
	base     http.RoundTripper
	token    types.GitHubToken
	previews []string
}

func (x *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "token "+string(x.token))
	if len(x.previews) > 0 {
		clone.Header.Set("Accept", strings.Join(x.previews, ", "))
	}
	return x.base.RoundTrip(clone)
}
