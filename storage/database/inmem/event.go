package inmemdb

import "github.com/Sazzad-Saju/circle-funds-flow/core/event"

type eventRepository struct {
	db *eventTable
}

var _ event.Repository = (*eventRepository)(nil)

func NewEventRepository(db *DB) event.Repository {
	return &eventRepository{db: db.event}
}

func copyEvent(ev event.Event) event.Event {
	ev.Voters = cloneStrings(ev.Voters)
	return ev
}

func (repo *eventRepository) QueryAll() ([]event.Event, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	events := make([]event.Event, 0, len(repo.db.rows))
	for _, ev := range repo.db.rows {
		events = append(events, copyEvent(ev))
	}
	return events, nil
}

func (repo *eventRepository) GetByID(id string) (event.Event, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, ev := range repo.db.rows {
		if ev.ID == id {
			return copyEvent(ev), nil
		}
	}
	return event.Event{}, event.ErrNotFound
}

func (repo *eventRepository) Create(ev event.Event) (event.Event, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	ev = copyEvent(ev)
	rows := make([]event.Event, 0, len(repo.db.rows)+1)
	rows = append(rows, ev)
	rows = append(rows, repo.db.rows...)
	repo.db.rows = rows
	return copyEvent(ev), nil
}

func (repo *eventRepository) Update(ev event.Event) (event.Event, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	idx := -1
	for i, row := range repo.db.rows {
		if row.ID == ev.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return event.Event{}, event.ErrNotFound
	}
	ev = copyEvent(ev)
	ev.HasVoted = false // viewer-relative, never stored
	rows := make([]event.Event, len(repo.db.rows))
	copy(rows, repo.db.rows)
	rows[idx] = ev
	repo.db.rows = rows
	return copyEvent(ev), nil
}
