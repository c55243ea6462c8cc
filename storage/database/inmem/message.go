package inmemdb

import "github.com/Sazzad-Saju/circle-funds-flow/core/message"

type messageRepository struct {
	db *messageTable
}

var _ message.Repository = (*messageRepository)(nil)

func NewMessageRepository(db *DB) message.Repository {
	return &messageRepository{db: db.message}
}

func (repo *messageRepository) QueryAll() ([]message.Message, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	msgs := make([]message.Message, len(repo.db.rows))
	copy(msgs, repo.db.rows)
	return msgs, nil
}

func (repo *messageRepository) Create(msg message.Message) (message.Message, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	rows := make([]message.Message, 0, len(repo.db.rows)+1)
	rows = append(rows, repo.db.rows...)
	rows = append(rows, msg)
	repo.db.rows = rows
	return msg, nil
}
