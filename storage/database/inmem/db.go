package inmemdb

import (
	"sync"
	"time"

	"github.com/Sazzad-Saju/circle-funds-flow/core/event"
	"github.com/Sazzad-Saju/circle-funds-flow/core/fund"
	"github.com/Sazzad-Saju/circle-funds-flow/core/gallery"
	"github.com/Sazzad-Saju/circle-funds-flow/core/message"
	"github.com/Sazzad-Saju/circle-funds-flow/core/notification"
	"github.com/Sazzad-Saju/circle-funds-flow/core/user"
)

// Every table keeps its rows in a slice that writers replace wholesale, so readers
// never observe a partially applied change. Reads return copies.
type (
	DB struct {
		event        *eventTable
		gallery      *galleryTable
		notification *notificationTable
		ledger       *ledgerTable
		user         *userTable
		session      *sessionTable
		message      *messageTable
	}

	eventTable struct {
		sync.RWMutex
		rows []event.Event
	}

	galleryTable struct {
		sync.RWMutex
		rows []gallery.Item
	}

	notificationTable struct {
		sync.RWMutex
		rows []notification.Notification
	}

	ledgerTable struct {
		sync.RWMutex
		summary      fund.Summary
		payments     []fund.MonthlyPayment
		contributors []fund.Contributor
		growth       []fund.GrowthPoint
		breakdown    []fund.Share
	}

	userTable struct {
		sync.RWMutex
		rows []user.User
	}

	sessionTable struct {
		sync.RWMutex
		revoked map[string]time.Time // {tokenID: expiresAt}
	}

	messageTable struct {
		sync.RWMutex
		rows []message.Message
	}
)

// Open returns a DB seeded with the fixture data.
func Open() (*DB, error) {
	db := OpenEmpty()
	Seed(db)
	return db, nil
}

// OpenEmpty returns a DB with no rows.
func OpenEmpty() *DB {
	return &DB{
		event:        &eventTable{},
		gallery:      &galleryTable{},
		notification: &notificationTable{},
		ledger:       &ledgerTable{},
		user:         &userTable{},
		session:      &sessionTable{revoked: make(map[string]time.Time)},
		message:      &messageTable{},
	}
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
