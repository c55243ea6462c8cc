package inmemdb

import (
	"time"

	"github.com/Sazzad-Saju/circle-funds-flow/core/user"
)

var nowFunc = time.Now // mockable

type sessionRepository struct {
	db *sessionTable
}

var _ user.SessionRepository = (*sessionRepository)(nil)

func NewSessionRepository(db *DB) user.SessionRepository {
	return &sessionRepository{db: db.session}
}

// Revoke records tokenID and drops entries whose token has expired anyway.
func (repo *sessionRepository) Revoke(tokenID string, expiresAt time.Time) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	now := nowFunc()
	for id, exp := range repo.db.revoked {
		if now.After(exp) {
			delete(repo.db.revoked, id)
		}
	}
	repo.db.revoked[tokenID] = expiresAt
	return nil
}

func (repo *sessionRepository) IsRevoked(tokenID string) (bool, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	_, ok := repo.db.revoked[tokenID]
	return ok, nil
}
