package cli

var ParseGitHubRemote = parseGitHubRemote
