package event

import (
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/Sazzad-Saju/circle-funds-flow/core"
)

var (
	ErrNotFound = errors.New("event not found")

	nowFunc = time.Now // mockable
)

type (
	// Repository stores events newest first.
	Repository interface {
		QueryAll() ([]Event, error)
		GetByID(id string) (Event, error)
		// Create prepends ev to the list.
		Create(ev Event) (Event, error)
		Update(ev Event) (Event, error)
	}

	Options struct {
		VotePolicy   string // core.PolicyOnce | core.PolicyUnlimited
		InitialVotes int
	}

	// VoteResult is the outcome of a vote. Event and Notice are nil when the vote was a no-op.
	VoteResult struct {
		Voted  bool         `json:"voted"`
		Event  *Event       `json:"event,omitempty"`
		Notice *core.Notice `json:"notice,omitempty"`
	}

	Service struct {
		repo   Repository
		opts   Options
		mu     sync.Mutex // serializes read-modify-write sequences
		lastID int64
	}
)

func NewService(repo Repository, opts Options) *Service {
	if opts.VotePolicy == "" {
		opts.VotePolicy = core.PolicyOnce
	}
	return &Service{repo: repo, opts: opts}
}

// NewServiceFromConfig builds a Service with the configured vote policy.
func NewServiceFromConfig(repo Repository, conf *core.Config) *Service {
	return NewService(repo, Options{VotePolicy: conf.Policy.EventVote, InitialVotes: conf.Policy.EventInitialVotes})
}

// List returns all events, newest first, with HasVoted set for member.
func (svc *Service) List(member string) ([]Event, error) {
	events, err := svc.repo.QueryAll()
	if err != nil {
		return nil, errors.Wrap(err, "querying events")
	}
	for i := range events {
		events[i].HasVoted = events[i].VotedBy(member)
	}
	return events, nil
}

// Vote adds member's vote to event id. Unknown ids and repeated votes under the "once" policy are no-ops.
func (svc *Service) Vote(member, id string) (VoteResult, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	ev, err := svc.repo.GetByID(id)
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return VoteResult{}, nil
		}
		return VoteResult{}, errors.Wrap(err, "finding event")
	}
	if svc.opts.VotePolicy == core.PolicyOnce && ev.VotedBy(member) {
		return VoteResult{}, nil
	}

	ev.Votes++
	if !ev.VotedBy(member) {
		ev.Voters = append(ev.Voters, member)
	}
	ev, err = svc.repo.Update(ev)
	if err != nil {
		return VoteResult{}, errors.Wrap(err, "updating event")
	}
	ev.HasVoted = true
	return VoteResult{
		Voted:  true,
		Event:  &ev,
		Notice: core.NewNotice("Vote Recorded!", "Your vote has been counted for this event"),
	}, nil
}

// Create adds a pending proposal by organizer to the top of the list.
func (svc *Service) Create(organizer string, ne NewEvent) (Event, *core.Notice, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	ev := Event{
		ID:          svc.nextID(),
		Title:       ne.Title,
		Category:    Category(ne.Category),
		Description: ne.Description,
		Date:        ne.Date,
		Location:    ne.Location,
		Organizer:   organizer,
		Votes:       svc.opts.InitialVotes,
		Status:      StatusPending,
		CreatedAt:   nowFunc().UTC(),
	}
	ev, err := svc.repo.Create(ev)
	if err != nil {
		return Event{}, nil, errors.Wrap(err, "creating event")
	}
	return ev, core.NewNotice("Event Created!", "Your event proposal has been submitted for voting"), nil
}

// nextID returns a creation-time id (unix millis), bumped to stay strictly increasing.
func (svc *Service) nextID() string {
	id := nowFunc().UnixMilli()
	if id <= svc.lastID {
		id = svc.lastID + 1
	}
	svc.lastID = id
	return strconv.FormatInt(id, 10)
}
