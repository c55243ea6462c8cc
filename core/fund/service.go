package fund

import (
	"context"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/Sazzad-Saju/circle-funds-flow/core"
)

var (
	ErrMonthNotFound      = errors.New("month not found")
	ErrMissingPaymentInfo = errors.New("please enter both amount and Bikash number")
	ErrMissingAmount      = errors.New("please enter an amount")
	ErrInvalidAmount      = errors.New("please enter a valid amount greater than 0")
	ErrTopUpClosed        = errors.New("additional contributions are closed for this month")

	nowFunc = time.Now // mockable
)

type (
	Repository interface {
		GetSummary() (Summary, error)
		QueryPayments() ([]MonthlyPayment, error)
		GetPayment(month string) (MonthlyPayment, error)
		QueryContributors() ([]Contributor, error)
		QueryGrowth() ([]GrowthPoint, error)
		QueryBreakdown() ([]Share, error)
		// ApplyContribution adds amount to the month's actual amount and to the fund total in one step.
		// update is called on the changed row before it is saved.
		ApplyContribution(month string, amount float64, update func(*MonthlyPayment)) (MonthlyPayment, Summary, error)
	}

	Options struct {
		PaymentDelay   time.Duration
		ApplyPayments  bool
		CurrencySymbol string
	}

	Service struct {
		repo Repository
		opts Options
	}
)

func NewService(repo Repository, opts Options) *Service {
	if opts.CurrencySymbol == "" {
		opts.CurrencySymbol = "$"
	}
	return &Service{repo: repo, opts: opts}
}

func NewServiceFromConfig(repo Repository, conf *core.Config) *Service {
	return NewService(repo, Options{
		PaymentDelay:   conf.Simulate.PaymentDelay,
		ApplyPayments:  conf.ApplyPayments,
		CurrencySymbol: conf.CurrencySymbol,
	})
}

func (svc *Service) FormatAmount(amount float64) string {
	return core.FormatAmount(svc.opts.CurrencySymbol, amount)
}

func (svc *Service) Summary() (SummaryView, error) {
	s, err := svc.repo.GetSummary()
	if err != nil {
		return SummaryView{}, errors.Wrap(err, "getting fund summary")
	}
	return SummaryView{
		Summary:         s,
		Progress:        ComputeProgress(s),
		ProgressDisplay: FormatProgress(s),
		TotalDisplay:    svc.FormatAmount(s.TotalFunds),
		TargetDisplay:   svc.FormatAmount(s.TargetAmount),
	}, nil
}

// MonthlyPayments returns the ledger rows in calendar order, with their stored status.
func (svc *Service) MonthlyPayments() ([]MonthlyPayment, error) {
	rows, err := svc.repo.QueryPayments()
	return rows, errors.Wrap(err, "querying monthly payments")
}

// Leaderboard returns contributors by descending total, ranked and tiered.
func (svc *Service) Leaderboard() ([]Contributor, error) {
	cs, err := svc.repo.QueryContributors()
	if err != nil {
		return nil, errors.Wrap(err, "querying contributors")
	}
	sort.SliceStable(cs, func(i, j int) bool { return cs[i].TotalContribution > cs[j].TotalContribution })
	for i := range cs {
		cs[i].Rank = i + 1
		cs[i].Tier = Tier(cs[i].Consistency)
	}
	return cs, nil
}

func (svc *Service) Growth() ([]GrowthPoint, error) {
	pts, err := svc.repo.QueryGrowth()
	return pts, errors.Wrap(err, "querying fund growth")
}

func (svc *Service) Breakdown() ([]Share, error) {
	shares, err := svc.repo.QueryBreakdown()
	if err != nil {
		return nil, errors.Wrap(err, "querying contribution breakdown")
	}
	return withPercents(shares), nil
}

// SimulatePayment validates form, waits the payment delay and confirms the payment.
// The form is reset on success. The ledger only changes when ApplyPayments is set.
func (svc *Service) SimulatePayment(ctx context.Context, payer string, form *PaymentForm) (Receipt, core.Outcome, error) {
	form.Month = core.CleanString(form.Month)
	rawAmount := core.CleanString(form.Amount)
	handle := core.CleanString(form.PayerHandle)

	if rawAmount == "" || handle == "" || form.Month == "" {
		return Receipt{}, core.Outcome{}, core.NewNoticeError(
			ErrMissingPaymentInfo, "Missing Information", "Please enter both amount and Bikash number")
	}
	amount, err := parseAmount(rawAmount)
	if err != nil {
		return Receipt{}, core.Outcome{}, err
	}
	if svc.opts.ApplyPayments {
		if _, err := svc.repo.GetPayment(form.Month); err != nil {
			return Receipt{}, core.Outcome{}, errors.Wrap(err, "finding month")
		}
	}

	rcpt := Receipt{Month: form.Month, Amount: amount, PayerHandle: handle, Payer: payer}
	sim := core.Simulation{
		Delay: svc.opts.PaymentDelay,
		Success: core.Notice{
			Title:       "Payment Successful!",
			Description: svc.opts.CurrencySymbol + rawAmount + " payment for " + form.Month + " has been processed via Bikash",
		},
		Failure: core.Notice{
			Title:       "Payment Failed",
			Description: "There was an error processing your payment. Please try again.",
		},
	}
	out, err := sim.Run(ctx, func() error {
		if !svc.opts.ApplyPayments {
			return nil
		}
		row, sum, err := svc.repo.ApplyContribution(form.Month, amount, svc.recompute)
		if err != nil {
			return errors.Wrap(err, "applying contribution")
		}
		rcpt.Applied = true
		rcpt.Payment = &row
		rcpt.Summary = &sum
		return nil
	})
	if err != nil {
		return Receipt{}, out, err
	}
	form.Reset()
	return rcpt, out, nil
}

// AddContribution confirms an additional contribution to a month that still accepts top-ups.
func (svc *Service) AddContribution(month string, nc NewContribution) (*core.Notice, error) {
	row, err := svc.repo.GetPayment(core.CleanString(month))
	if err != nil {
		return nil, errors.Wrap(err, "finding month")
	}
	if !row.CanAddMore {
		return nil, core.NewValidationError(ErrTopUpClosed)
	}
	rawAmount := core.CleanString(nc.Amount)
	if rawAmount == "" {
		return nil, core.NewNoticeError(ErrMissingAmount, "Missing Information", "Please enter an amount",
			core.FieldError{Field: "amount", Error: "this field is required"})
	}
	if _, err := parseAmount(rawAmount); err != nil {
		return nil, err
	}
	return core.NewNotice(
		"Contribution Added",
		"Successfully added "+svc.opts.CurrencySymbol+rawAmount+" to "+row.Month,
	), nil
}

func (svc *Service) recompute(row *MonthlyPayment) {
	due, err := row.Due()
	if err != nil {
		return
	}
	row.Status = DeriveStatus(row.ActualAmount, row.FixedAmount, due, nowFunc())
	row.CanAddMore = OffersTopUp(row.Status)
}

func parseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, core.NewNoticeError(ErrInvalidAmount, "Invalid Amount", "Please enter a valid amount greater than 0",
			core.FieldError{Field: "amount", Error: ErrInvalidAmount.Error()})
	}
	return amount, nil
}
