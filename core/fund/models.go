package fund

import "time"

// DateLayout is the calendar-date layout used by due dates.
const DateLayout = "2006-01-02"

type Summary struct {
	TotalFunds          float64 `json:"total_funds"`
	TargetAmount        float64 `json:"target_amount"`
	TotalContributors   int     `json:"total_contributors"`
	AverageContribution float64 `json:"average_contribution"`
	MonthlyGrowth       float64 `json:"monthly_growth"` // percent
}

// SummaryView is a Summary with its computed progress.
type SummaryView struct {
	Summary
	Progress        float64 `json:"progress"`
	ProgressDisplay string  `json:"progress_display"`
	TotalDisplay    string  `json:"total_display"`
	TargetDisplay   string  `json:"target_display"`
}

type PaymentStatus string

const (
	StatusPaid     PaymentStatus = "paid"
	StatusDue      PaymentStatus = "due"
	StatusOverdue  PaymentStatus = "overdue"
	StatusUpcoming PaymentStatus = "upcoming"
)

type MonthlyPayment struct {
	Month        string        `json:"month"` // eg: "Sep 2024"
	FixedAmount  float64       `json:"fixed_amount"`
	ActualAmount float64       `json:"actual_amount"`
	Status       PaymentStatus `json:"status"`
	DueDate      string        `json:"due_date"` // YYYY-MM-DD
	CanAddMore   bool          `json:"can_add_more"`
}

// Due parses DueDate.
func (mp MonthlyPayment) Due() (time.Time, error) {
	return time.Parse(DateLayout, mp.DueDate)
}

type ConsistencyTier string

const (
	TierHigh   ConsistencyTier = "high"
	TierMedium ConsistencyTier = "medium"
	TierLow    ConsistencyTier = "low"
)

type Contributor struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Avatar            string          `json:"avatar"`
	TotalContribution float64         `json:"total_contribution"`
	MonthlyAverage    float64         `json:"monthly_average"`
	Consistency       int             `json:"consistency"` // percent of months paid on time
	Rank              int             `json:"rank"`
	Tier              ConsistencyTier `json:"consistency_tier"`
}

type GrowthPoint struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
	Target float64 `json:"target"`
}

// Share is a slice of the contribution breakdown.
type Share struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
}

// PaymentForm is the simulated Bikash payment input. Amount is kept as typed so that
// a missing amount can be told apart from an invalid one.
type PaymentForm struct {
	Month       string  `json:"month"`
	FixedAmount float64 `json:"fixed_amount"`
	Amount      string  `json:"amount"`
	PayerHandle string  `json:"bikash_number"`
}

// Reset clears the fields the member typed.
func (f *PaymentForm) Reset() {
	f.Amount = ""
	f.PayerHandle = ""
}

type Receipt struct {
	Month       string          `json:"month"`
	Amount      float64         `json:"amount"`
	PayerHandle string          `json:"bikash_number"`
	Payer       string          `json:"payer"`
	Applied     bool            `json:"applied"`
	Payment     *MonthlyPayment `json:"payment,omitempty"`
	Summary     *Summary        `json:"summary,omitempty"`
}

type NewContribution struct {
	Amount string `json:"amount"`
}
