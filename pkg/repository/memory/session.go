package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/copycat/pkg/domain/interfaces"
	"github.com/m-mizutani/copycat/pkg/domain/model"
	"github.com/m-mizutani/copycat/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

// SessionStore keeps profile scan sessions in process memory
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.ProfileScanSession
}

var _ interfaces.SessionStore = (*SessionStore)(nil)

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*model.ProfileScanSession),
	}
}

func (x *SessionStore) PutSession(ctx context.Context, session *model.ProfileScanSession) error {
	if session.Username == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "username is empty")
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	x.sessions[session.Username] = session.Copy()
	return nil
}

func (x *SessionStore) AdvanceSession(ctx context.Context, session *model.ProfileScanSession) (bool, error) {
	if session.Username == "" {
		return false, goerr.Wrap(repository.ErrInvalidInput, "username is empty")
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	current := x.sessions[session.Username]
	if current == nil || current.ID != session.ID || !current.Active() {
		return false, nil
	}
	x.sessions[session.Username] = session.Copy()
	return true, nil
}

// GetSession returns nil without error when no session exists
func (x *SessionStore) GetSession(ctx context.Context, username string) (*model.ProfileScanSession, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.sessions[username].Copy(), nil
}

func (x *SessionStore) DeleteSession(ctx context.Context, username string) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	delete(x.sessions, username)
	return nil
}
