package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrInvalidOption indicates a misconfiguration detected at startup or
	// when building a client.
	ErrInvalidOption = goerr.New("invalid option")

	// ErrValidationFailed indicates a domain object that does not satisfy
	// its own invariants.
	ErrValidationFailed = goerr.New("validation failed")

	// ErrMalformedEvent indicates an undecodable notification envelope or
	// webhook payload. It is fatal and never reported back to the commit.
	ErrMalformedEvent = goerr.New("malformed event")

	// ErrAuthExchange indicates the assertion-for-token exchange with the
	// GitHub App endpoint did not yield a token.
	ErrAuthExchange = goerr.New("installation token exchange failed")

	// ErrDownloadTimeout indicates the archive download exceeded its
	// deadline.
	ErrDownloadTimeout = goerr.New("code download timed out")

	// ErrDownloadFailed indicates a non-timeout failure while fetching the
	// commit archive.
	ErrDownloadFailed = goerr.New("code download failed")

	// ErrMalformedArchive indicates the downloaded archive is not a valid
	// single-root tarball or contains entries escaping the extraction root.
	ErrMalformedArchive = goerr.New("malformed code archive")

	// ErrLintTimeout indicates the linter subprocess exceeded its deadline.
	ErrLintTimeout = goerr.New("lint command timed out")

	// ErrVersionProbe indicates the linter version probe exited non-zero.
	ErrVersionProbe = goerr.New("linter version probe failed")

	// ErrReportDelivery indicates GitHub rejected a status or check-run
	// update.
	ErrReportDelivery = goerr.New("report delivery failed")

	// ErrInvalidState indicates a commit status value outside the accepted
	// state set, caught before any network call.
	ErrInvalidState = goerr.New("invalid commit state")
)
