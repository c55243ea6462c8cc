package core

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notice is a transient message shown to the member after an action.
type Notice struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

func NewNotice(title, description string) *Notice {
	return &Notice{Title: title, Description: description, Variant: VariantDefault}
}

type OutcomeStatus string

const (
	OutcomeSucceeded OutcomeStatus = "succeeded"
	OutcomeFailed    OutcomeStatus = "failed"
	OutcomeSkipped   OutcomeStatus = "skipped"
)

// Outcome is the result of a simulated operation.
type Outcome struct {
	Status OutcomeStatus `json:"status"`
	Notice *Notice       `json:"notice,omitempty"`
}

func (o Outcome) Succeeded() bool { return o.Status == OutcomeSucceeded }

// Simulation describes an operation that takes Delay to complete.
type Simulation struct {
	Delay   time.Duration
	Success Notice
	Failure Notice
}

// Run waits for the simulated latency, then runs fn.
// A cancelled ctx or an fn error yields a failed Outcome inside an *OperationError.
func (sim Simulation) Run(ctx context.Context, fn func() error) (Outcome, error) {
	fail := func(err error) (Outcome, error) {
		notice := sim.Failure
		notice.Variant = VariantDestructive
		out := Outcome{Status: OutcomeFailed, Notice: &notice}
		return out, &OperationError{Err: err, Outcome: out}
	}

	if err := Sleep(ctx, sim.Delay); err != nil {
		return fail(errors.Wrap(err, "waiting for simulated latency"))
	}
	if fn != nil {
		if err := fn(); err != nil {
			return fail(err)
		}
	}
	notice := sim.Success
	if notice.Variant == "" {
		notice.Variant = VariantDefault
	}
	return Outcome{Status: OutcomeSucceeded, Notice: &notice}, nil
}

// Sleep pauses for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
