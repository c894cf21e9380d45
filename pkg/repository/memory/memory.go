package memory

import (
	"sync"

	"github.com/m-mizutani/copycat/pkg/domain/interfaces"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/domain/types"
)

// Database is an in-memory implementation of interfaces.Database. Stored values
// are copied on the way in and out.
type Database struct {
	mu        sync.RWMutex
	repos     map[types.RepoID]*model.Repository
	byName    map[string]types.RepoID
	commits   map[types.RepoID][]*model.Commit
	matches   map[types.MatchID]*model.Match
	blacklist map[string]*model.BlacklistEntry
	reports   map[types.ReportID]*model.Report
}

var _ interfaces.Database = (*Database)(nil)

// New creates a new in-memory database
func New() *Database {
	return &Database{
		repos:     make(map[types.RepoID]*model.Repository),
		byName:    make(map[string]types.RepoID),
		commits:   make(map[types.RepoID][]*model.Commit),
		matches:   make(map[types.MatchID]*model.Match),
		blacklist: make(map[string]*model.BlacklistEntry),
		reports:   make(map[types.ReportID]*model.Report),
	}
}
