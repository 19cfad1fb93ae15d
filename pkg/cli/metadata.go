package cli

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/lambdalint/linthook/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// AutoDetectGitMetadata fills unset metadata fields from the git repository
// at dir. Fields already set on the command line are preserved.
func AutoDetectGitMetadata(dir string, meta *model.GitMetadata) error {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	if meta.CommitSHA == "" || meta.Branch == "" {
		head, err := repo.Head()
		if err != nil {
			return goerr.Wrap(err, "failed to get HEAD")
		}

		if meta.CommitSHA == "" {
			meta.CommitSHA = head.Hash().String()
		}

		if meta.Branch == "" && head.Name().IsBranch() {
			meta.Branch = head.Name().Short()
		}
	}

	if meta.Owner == "" || meta.RepoName == "" {
		remote, err := repo.Remote("origin")
		if err != nil {
			return goerr.Wrap(err, "failed to get remote origin")
		}

		if len(remote.Config().URLs) == 0 {
			return goerr.New("no remote URL found")
		}

		url := remote.Config().URLs[0]
		owner, repoName := parseGitHubRemote(url)
		if owner == "" || repoName == "" {
			return goerr.New("failed to parse GitHub owner/repo from git remote URL", goerr.V("url", url))
		}

		if meta.Owner == "" {
			meta.Owner = owner
		}
		if meta.RepoName == "" {
			meta.RepoName = repoName
		}
	}

	return nil
}

// parseGitHubRemote handles both the SSH (git@github.com:owner/repo.git)
// and HTTPS (https://github.com/owner/repo.git) remote forms.
func parseGitHubRemote(url string) (owner, repoName string) {
	var path string
	if rest, ok := strings.CutPrefix(url, "git@github.com:"); ok {
		path = rest
	} else if _, rest, ok := strings.Cut(url, "github.com/"); ok {
		path = rest
	} else {
		return "", ""
	}

	path = strings.TrimSuffix(path, ".git")
	ownerRepo := strings.Split(path, "/")
	if len(ownerRepo) != 2 {
		return "", ""
	}

	return ownerRepo[0], ownerRepo[1]
}
