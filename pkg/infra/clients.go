package infra

import (
	"github.com/m-mizutani/copycat/pkg/domain/interfaces"
	"github.com/m-mizutani/copycat/pkg/infra/gitlocal"
	"github.com/m-mizutani/copycat/pkg/repository/memory"
)

type Clients struct {
	github       interfaces.GitHub
	database     interfaces.Database
	sessionStore interfaces.SessionStore
	jobQueue     interfaces.JobQueue
	bqClient     interfaces.BigQuery
	localGit     interfaces.LocalGit
}

type Option func(*Clients)

// New builds the client set. Sessions are kept in memory and local history is
// read with go-git unless overridden.
func New(options ...Option) *Clients {
	client := &Clients{
		sessionStore: memory.NewSessionStore(),
		localGit:     gitlocal.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) Database() interfaces.Database {
	return x.database
}
func (x *Clients) SessionStore() interfaces.SessionStore {
	return x.sessionStore
}
func (x *Clients) JobQueue() interfaces.JobQueue {
	return x.jobQueue
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) LocalGit() interfaces.LocalGit {
	return x.localGit
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithDatabase(db interfaces.Database) Option {
	return func(x *Clients) {
		x.database = db
	}
}

func WithSessionStore(store interfaces.SessionStore) Option {
	return func(x *Clients) {
		x.sessionStore = store
	}
}

func WithJobQueue(queue interfaces.JobQueue) Option {
	return func(x *Clients) {
		x.jobQueue = queue
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithLocalGit(client interfaces.LocalGit) Option {
	return func(x *Clients) {
		x.localGit = client
	}
}
