package infra

import (
	"net/http"

	"github.com/lambdalint/linthook/pkg/domain/interfaces"
)

type Clients struct {
	githubApp   interfaces.GitHubApp
	httpClient  HTTPClient
	runner      interfaces.Runner
	objectStore interfaces.ObjectStore
	bqClient    interfaces.BigQuery
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		httpClient: http.DefaultClient,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHubApp() interfaces.GitHubApp {
	return x.githubApp
}
func (x *Clients) HTTPClient() HTTPClient {
	return x.httpClient
}
func (x *Clients) Runner() interfaces.Runner {
	return x.runner
}
func (x *Clients) ObjectStore() interfaces.ObjectStore {
	return x.objectStore
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}

func WithGitHubApp(client interfaces.GitHubApp) Option {
	return func(x *Clients) {
		x.githubApp = client
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}

func WithRunner(runner interfaces.Runner) Option {
	return func(x *Clients) {
		x.runner = runner
	}
}

func WithObjectStore(store interfaces.ObjectStore) Option {
	return func(x *Clients) {
		x.objectStore = store
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}
