package event

import "time"

type Category string

const (
	CategoryTour    Category = "tour"
	CategoryFood    Category = "food"
	CategoryMeeting Category = "meeting"
	CategorySocial  Category = "social"
)

var Categories = []Category{CategoryTour, CategoryFood, CategoryMeeting, CategorySocial}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Event is a member-proposed activity. HasVoted is relative to the member reading it.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Location    string    `json:"location"`
	Organizer   string    `json:"organizer"`
	Votes       int       `json:"votes"`
	Status      Status    `json:"status"`
	HasVoted    bool      `json:"has_voted"`
	Voters      []string  `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// VotedBy reports whether member already voted on ev.
func (ev Event) VotedBy(member string) bool {
	for _, v := range ev.Voters {
		if v == member {
			return true
		}
	}
	return false
}

type NewEvent struct {
	Title       string `json:"title" validate:"required"`
	Category    string `json:"category" validate:"required,eventcategory"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Location    string `json:"location" validate:"required"`
}
