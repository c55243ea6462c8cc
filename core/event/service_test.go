package event_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sazzad-Saju/circle-funds-flow/core"
	"github.com/Sazzad-Saju/circle-funds-flow/core/event"
	inmemdb "github.com/Sazzad-Saju/circle-funds-flow/storage/database/inmem"
)

func newService(t *testing.T, opts event.Options) *event.Service {
	db, err := inmemdb.Open()
	require.NoError(t, err)
	return event.NewService(inmemdb.NewEventRepository(db), opts)
}

func votes(t *testing.T, svc *event.Service, member string) map[string]int {
	events, err := svc.List(member)
	require.NoError(t, err)
	m := make(map[string]int, len(events))
	for _, ev := range events {
		m[ev.ID] = ev.Votes
	}
	return m
}

func TestService_Vote(t *testing.T) {
	t.Run("once", func(t *testing.T) {
		svc := newService(t, event.Options{VotePolicy: core.PolicyOnce})

		res, err := svc.Vote("2", "1")
		require.NoError(t, err)
		assert.True(t, res.Voted)
		assert.Equal(t, 16, res.Event.Votes)

		res, err = svc.Vote("2", "1")
		require.NoError(t, err)
		assert.False(t, res.Voted)

		res, err = svc.Vote(inmemdb.SeedMemberID, "2") // seeded as voted
		require.NoError(t, err)
		assert.False(t, res.Voted)

		res, err = svc.Vote("2", "404")
		require.NoError(t, err)
		assert.Equal(t, event.VoteResult{}, res)

		assert.Equal(t, map[string]int{"1": 16, "2": 22, "3": 8}, votes(t, svc, "2"))
	})

	t.Run("unlimited", func(t *testing.T) {
		svc := newService(t, event.Options{VotePolicy: core.PolicyUnlimited})
		for i := 0; i < 3; i++ {
			res, err := svc.Vote(inmemdb.SeedMemberID, "2")
			require.NoError(t, err)
			assert.True(t, res.Voted)
		}
		assert.Equal(t, map[string]int{"1": 15, "2": 25, "3": 8}, votes(t, svc, inmemdb.SeedMemberID))
	})

	t.Run("concurrent votes by distinct members", func(t *testing.T) {
		svc := newService(t, event.Options{VotePolicy: core.PolicyOnce})

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(member string) {
				defer wg.Done()
				_, _ = svc.Vote(member, "3")
			}("m" + strconv.Itoa(i))
		}
		wg.Wait()
		assert.Equal(t, 58, votes(t, svc, "x")["3"])
	})
}

func TestService_List(t *testing.T) {
	svc := newService(t, event.Options{VotePolicy: core.PolicyOnce})

	events, err := svc.List(inmemdb.SeedMemberID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.True(t, events[1].HasVoted)

	events, err = svc.List("someone else")
	require.NoError(t, err)
	for _, ev := range events {
		assert.False(t, ev.HasVoted)
	}
}

func TestService_Create(t *testing.T) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	event.InitValidators(validate, translator)

	svc := newService(t, event.Options{VotePolicy: core.PolicyOnce, InitialVotes: 1})

	t.Run("missing fields", func(t *testing.T) {
		ne := event.NewEvent{Title: "Picnic", Category: "social", Description: "  ", Date: "2025-03-15", Location: "Park"}
		err := ne.Validate(validate, translator)
		var vErr *core.ValidationError
		require.True(t, errors.As(err, &vErr), "err = %v", err)
		assert.Equal(t, event.ErrMissingFields, vErr.Err)
		assert.Equal(t, &core.Notice{Title: "Missing Information", Description: "Please fill in all fields", Variant: core.VariantDestructive}, vErr.Notice)
		assert.Equal(t, []core.FieldError{{Field: "description", Error: "this field is required"}}, vErr.Fields)
	})

	t.Run("created on top", func(t *testing.T) {
		var ids []string
		for _, title := range []string{"Picnic", "Movie night", "Hike"} {
			ne := event.NewEvent{Title: title, Category: "Social", Description: "Fun", Date: "2025-03-15", Location: "Park"}
			require.NoError(t, ne.Validate(validate, translator))

			ev, notice, err := svc.Create("Alex Johnson", ne)
			require.NoError(t, err)
			assert.Equal(t, core.NewNotice("Event Created!", "Your event proposal has been submitted for voting"), notice)
			assert.Equal(t, event.StatusPending, ev.Status)
			assert.Equal(t, event.CategorySocial, ev.Category)
			assert.Equal(t, 1, ev.Votes)
			assert.Equal(t, "Alex Johnson", ev.Organizer)
			ids = append(ids, ev.ID)
		}

		for i := 1; i < len(ids); i++ {
			prev, _ := strconv.ParseInt(ids[i-1], 10, 64)
			cur, _ := strconv.ParseInt(ids[i], 10, 64)
			assert.Greater(t, cur, prev)
		}

		events, err := svc.List("x")
		require.NoError(t, err)
		require.Len(t, events, 6)
		assert.Equal(t, []string{ids[2], ids[1], ids[0], "1", "2", "3"},
			[]string{events[0].ID, events[1].ID, events[2].ID, events[3].ID, events[4].ID, events[5].ID})
	})
}
