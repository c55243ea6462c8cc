package inmemdb

import "github.com/Sazzad-Saju/circle-funds-flow/core/notification"

type notificationRepository struct {
	db *notificationTable
}

var _ notification.Repository = (*notificationRepository)(nil)

func NewNotificationRepository(db *DB) notification.Repository {
	return &notificationRepository{db: db.notification}
}

func (repo *notificationRepository) QueryAll() ([]notification.Notification, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	nts := make([]notification.Notification, len(repo.db.rows))
	copy(nts, repo.db.rows)
	return nts, nil
}

func (repo *notificationRepository) MarkRead(id string) (bool, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i, nt := range repo.db.rows {
		if nt.ID != id {
			continue
		}
		if nt.Read {
			return false, nil
		}
		rows := make([]notification.Notification, len(repo.db.rows))
		copy(rows, repo.db.rows)
		rows[i].Read = true
		repo.db.rows = rows
		return true, nil
	}
	return false, notification.ErrNotFound
}

func (repo *notificationRepository) MarkAllRead() (int, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	var changed int
	rows := make([]notification.Notification, len(repo.db.rows))
	for i, nt := range repo.db.rows {
		if !nt.Read {
			nt.Read = true
			changed++
		}
		rows[i] = nt
	}
	repo.db.rows = rows
	return changed, nil
}
