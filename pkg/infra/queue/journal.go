package queue

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

var journalPrefix = []byte("job/")

// journal keeps waiting and running jobs on disk so they survive a restart
type journal struct {
	db *badger.DB
}

type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func openJournal(path string, logger *slog.Logger) (*journal, error) {
	if err := os.MkdirAll(path, 0750); err != nil {
		return nil, goerr.Wrap(err, "failed to create journal directory", goerr.V("path", path))
	}

	opts := badger.DefaultOptions(path).
		WithSyncWrites(true).
		WithNumVersionsToKeep(1).
		WithLogger(&badgerLogger{logger: logger})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open journal", goerr.V("path", path))
	}

	return &journal{db: db}, nil
}

func journalKey(job *model.ScanJob) []byte {
	return append(append([]byte{}, journalPrefix...), string(job.ID())...)
}

func (x *journal) put(job *model.ScanJob) error {
	raw, err := json.Marshal(job)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal scan job", goerr.V("job", job.ID()))
	}

	if err := x.db.Update(func(txn *badger.Txn) error {
		return txn.Set(journalKey(job), raw)
	}); err != nil {
		return goerr.Wrap(err, "failed to write scan job to journal", goerr.V("job", job.ID()))
	}
	return nil
}

func (x *journal) delete(job *model.ScanJob) error {
	if err := x.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(journalKey(job))
	}); err != nil {
		return goerr.Wrap(err, "failed to delete scan job from journal", goerr.V("job", job.ID()))
	}
	return nil
}

// load returns journaled jobs in the order they were first enqueued
func (x *journal) load() ([]*model.ScanJob, error) {
	var jobs []*model.ScanJob

	err := x.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(journalPrefix); it.ValidForPrefix(journalPrefix); it.Next() {
			if err := it.Item().Value(func(v []byte) error {
				var job model.ScanJob
				if err := json.Unmarshal(v, &job); err != nil {
					return goerr.Wrap(err, "failed to unmarshal journaled job", goerr.V("key", string(it.Item().Key())))
				}
				jobs = append(jobs, &job)
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load journal")
	}

	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].EnqueuedAt.Before(jobs[j].EnqueuedAt)
	})
	return jobs, nil
}

func (x *journal) close() error {
	if err := x.db.Close(); err != nil {
		return goerr.Wrap(err, "failed to close journal")
	}
	return nil
}
