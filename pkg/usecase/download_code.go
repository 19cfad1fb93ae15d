package usecase

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lambdalint/linthook/pkg/domain/model"
	"github.com/lambdalint/linthook/pkg/domain/types"
	"github.com/lambdalint/linthook/pkg/utils/logging"
	"github.com/lambdalint/linthook/pkg/utils/safe"
)

// downloadCode fetches the tarball snapshot of the target commit through
// the authenticated session and extracts it into a fresh temp directory.
// It returns the archive's single top-level directory. The extracted tree
// is not removed here; the execution environment is torn down after the
// invocation and reaps it.
func (x *UseCase) downloadCode(ctx context.Context, session *http.Client, target *model.LintTarget) (string, error) {
	url := target.TarballURL()
	logging.From(ctx).Info("downloading code", slog.String("url", url))

	dlCtx, cancel := context.WithTimeout(ctx, x.downloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(dlCtx, http.MethodGet, url, nil)
	if err != nil {
		return "", goerr.Wrap(err, "failed to build download request", goerr.V("url", url))
	}

	resp, err := session.Do(req)
	if err != nil {
		if errors.Is(dlCtx.Err(), context.DeadlineExceeded) {
			return "", goerr.Wrap(types.ErrDownloadTimeout, "archive download did not finish in time",
				goerr.V("url", url),
				goerr.V("timeout", x.downloadTimeout),
			)
		}
		return "", goerr.Wrap(types.ErrDownloadFailed, "archive request failed",
			goerr.V("url", url),
			goerr.V("cause", err.Error()),
		)
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", goerr.Wrap(types.ErrDownloadFailed, "unexpected status for archive download",
			goerr.V("url", url),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	archive, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(dlCtx.Err(), context.DeadlineExceeded) {
			return "", goerr.Wrap(types.ErrDownloadTimeout, "archive download did not finish in time",
				goerr.V("url", url),
				goerr.V("timeout", x.downloadTimeout),
			)
		}
		return "", goerr.Wrap(types.ErrDownloadFailed, "failed to read archive body", goerr.V("url", url))
	}

	dst, err := os.MkdirTemp("", fmt.Sprintf("linthook.%s.%s.*", target.RepoName, target.CommitSHA))
	if err != nil {
		return "", goerr.Wrap(err, "failed to create temp directory for code")
	}

	codePath, err := extractTarball(archive, dst)
	if err != nil {
		return "", err
	}

	logging.From(ctx).Info("extracted code", slog.String("path", codePath))
	return codePath, nil
}

// extractTarball unpacks a gzip-compressed tar archive into dst and
// returns its single top-level directory. GitHub source archives always
// carry exactly one root folder.
func extractTarball(archive []byte, dst string) (string, error) {
	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return "", goerr.Wrap(types.ErrMalformedArchive, "archive is not gzip", goerr.V("cause", err.Error()))
	}
	defer safe.Close(gz)

	var root string
	roots := map[string]struct{}{}

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", goerr.Wrap(types.ErrMalformedArchive, "broken tar archive", goerr.V("cause", err.Error()))
		}

		// git archive (and so the provider's tarball endpoint) prepends a
		// pax_global_header metadata entry. It is not part of the tree and
		// must not count as a top-level root.
		if hdr.Typeflag == tar.TypeXGlobalHeader || hdr.Typeflag == tar.TypeXHeader {
			continue
		}

		name := path.Clean(hdr.Name)
		if name == "." || name == "/" || name == "pax_global_header" {
			continue
		}
		root = strings.SplitN(name, "/", 2)[0]
		roots[root] = struct{}{}

		fpath := filepath.Join(dst, filepath.FromSlash(name))
		if !strings.HasPrefix(fpath, filepath.Clean(dst)+string(os.PathSeparator)) {
			return "", goerr.Wrap(types.ErrMalformedArchive, "illegal file path in tarball", goerr.V("path", hdr.Name))
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(fpath, os.ModePerm); err != nil {
				return "", goerr.Wrap(err, "failed to create directory", goerr.V("path", fpath))
			}

		case tar.TypeReg:
			if err := extractFile(tr, fpath, hdr.FileInfo().Mode()); err != nil {
				return "", err
			}

		default:
			// Symlinks and other special entries never appear in GitHub
			// source archives. Skip instead of extracting something that
			// could point outside the tree.
			continue
		}
	}

	if len(roots) != 1 {
		return "", goerr.Wrap(types.ErrMalformedArchive, "archive must have exactly one top-level directory",
			goerr.V("roots", len(roots)),
		)
	}

	return filepath.Join(dst, root), nil
}

func extractFile(r io.Reader, fpath string, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(fpath), os.ModePerm); err != nil {
		return goerr.Wrap(err, "failed to create directory", goerr.V("path", fpath))
	}

	// #nosec
	out, err := os.OpenFile(fpath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return goerr.Wrap(err, "failed to open file", goerr.V("path", fpath))
	}
	defer safe.Close(out)

	// #nosec
	if _, err := io.Copy(out, r); err != nil {
		return goerr.Wrap(err, "failed to copy file content", goerr.V("path", fpath))
	}

	return nil
}
