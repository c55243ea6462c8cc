package inmemdb

import (
	"time"

	"github.com/Sazzad-Saju/circle-funds-flow/core/event"
	"github.com/Sazzad-Saju/circle-funds-flow/core/fund"
	"github.com/Sazzad-Saju/circle-funds-flow/core/gallery"
	"github.com/Sazzad-Saju/circle-funds-flow/core/message"
	"github.com/Sazzad-Saju/circle-funds-flow/core/notification"
	"github.com/Sazzad-Saju/circle-funds-flow/core/user"
)

// SeedMemberID is the id of the member the dashboard opens as.
const SeedMemberID = "1"

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02 15:04", s)
	return t
}

// Seed replaces every table's rows with the fixture data.
func Seed(db *DB) {
	db.event.Lock()
	db.event.rows = []event.Event{
		{
			ID:          "1",
			Title:       "Weekend Trip to Sylhet",
			Category:    event.CategoryTour,
			Description: "A relaxing trip to tea gardens and beautiful landscapes",
			Date:        "2024-03-15",
			Location:    "Sylhet, Bangladesh",
			Organizer:   "Alex Johnson",
			Votes:       15,
			Status:      event.StatusPending,
			CreatedAt:   date("2024-02-10 09:00"),
		},
		{
			ID:          "2",
			Title:       "Annual Food Festival",
			Category:    event.CategoryFood,
			Description: "Taste different cuisines and enjoy good food together",
			Date:        "2024-02-28",
			Location:    "Dhanmondi, Dhaka",
			Organizer:   "Sarah Wilson",
			Votes:       22,
			Status:      event.StatusApproved,
			Voters:      []string{SeedMemberID},
			CreatedAt:   date("2024-02-01 09:00"),
		},
		{
			ID:          "3",
			Title:       "Quarterly Review Meeting",
			Category:    event.CategoryMeeting,
			Description: "Discuss fund performance and future plans",
			Date:        "2024-02-20",
			Location:    "Conference Room, Gulshan",
			Organizer:   "Mike Chen",
			Votes:       8,
			Status:      event.StatusApproved,
			CreatedAt:   date("2024-01-25 09:00"),
		},
	}
	db.event.Unlock()

	db.gallery.Lock()
	db.gallery.rows = []gallery.Item{
		{
			ID:        "1",
			ImageURL:  "https://images.unsplash.com/photo-1618160702438-9b02ab6515c9?w=400&h=300&fit=crop",
			Caption:   "Team Dinner 2024",
			Author:    "Alex Johnson",
			Likes:     24,
			Comments:  5,
			Timestamp: "2 days ago",
			CreatedAt: date("2024-09-05 20:00"),
		},
		{
			ID:        "2",
			ImageURL:  "https://images.unsplash.com/photo-1721322800607-8c38375eef04?w=400&h=300&fit=crop",
			Caption:   "Office Gathering",
			Author:    "Sarah Chen",
			Likes:     18,
			Comments:  3,
			Timestamp: "1 week ago",
			CreatedAt: date("2024-08-31 18:00"),
		},
		{
			ID:        "3",
			ImageURL:  "https://images.unsplash.com/photo-1582562124811-c09040d0a901?w=400&h=300&fit=crop",
			Caption:   "Charity Event",
			Author:    "Michael Rodriguez",
			Likes:     31,
			Comments:  8,
			Timestamp: "2 weeks ago",
			CreatedAt: date("2024-08-24 11:00"),
		},
		{
			ID:        "4",
			ImageURL:  "https://images.unsplash.com/photo-1517022812141-23620dba5c23?w=400&h=300&fit=crop",
			Caption:   "Investment Success",
			Author:    "Emily Davis",
			Likes:     42,
			Comments:  12,
			Timestamp: "1 month ago",
			CreatedAt: date("2024-08-07 15:00"),
		},
	}
	db.gallery.Unlock()

	db.notification.Lock()
	db.notification.rows = []notification.Notification{
		{ID: "1", Title: "Payment Due Reminder", Message: "Your monthly contribution of $500 is due in 3 days.", Timestamp: "2 hours ago", Type: notification.TypeWarning},
		{ID: "2", Title: "Fund Milestone Reached", Message: "Congratulations! We've reached 50% of our target amount.", Timestamp: "1 day ago", Type: notification.TypeSuccess},
		{ID: "3", Title: "New Investment Opportunity", Message: "A new investment proposal has been added for review.", Timestamp: "2 days ago", Type: notification.TypeInfo, Read: true},
		{ID: "4", Title: "Monthly Report Available", Message: "Your monthly fund performance report is now ready.", Timestamp: "3 days ago", Type: notification.TypeInfo, Read: true},
	}
	db.notification.Unlock()

	db.ledger.Lock()
	db.ledger.summary = fund.Summary{
		TotalFunds:          245800,
		TargetAmount:        500000,
		TotalContributors:   24,
		AverageContribution: 1024,
		MonthlyGrowth:       8.5,
	}
	db.ledger.payments = []fund.MonthlyPayment{
		{Month: "Jan 2024", FixedAmount: 1000, ActualAmount: 1200, Status: fund.StatusPaid, DueDate: "2024-01-15"},
		{Month: "Feb 2024", FixedAmount: 1000, ActualAmount: 1000, Status: fund.StatusPaid, DueDate: "2024-02-15"},
		{Month: "Mar 2024", FixedAmount: 1000, ActualAmount: 1500, Status: fund.StatusPaid, DueDate: "2024-03-15"},
		{Month: "Apr 2024", FixedAmount: 1000, ActualAmount: 1000, Status: fund.StatusPaid, DueDate: "2024-04-15"},
		{Month: "May 2024", FixedAmount: 1000, ActualAmount: 1300, Status: fund.StatusPaid, DueDate: "2024-05-15"},
		{Month: "Jun 2024", FixedAmount: 1000, ActualAmount: 1000, Status: fund.StatusPaid, DueDate: "2024-06-15"},
		{Month: "Jul 2024", FixedAmount: 1000, ActualAmount: 1100, Status: fund.StatusPaid, DueDate: "2024-07-15"},
		{Month: "Aug 2024", FixedAmount: 1000, ActualAmount: 500, Status: fund.StatusOverdue, DueDate: "2024-08-15", CanAddMore: true},
		{Month: "Sep 2024", FixedAmount: 1000, ActualAmount: 0, Status: fund.StatusDue, DueDate: "2024-09-15", CanAddMore: true},
		{Month: "Oct 2024", FixedAmount: 1000, ActualAmount: 0, Status: fund.StatusUpcoming, DueDate: "2024-10-15", CanAddMore: true},
		{Month: "Nov 2024", FixedAmount: 1000, ActualAmount: 0, Status: fund.StatusUpcoming, DueDate: "2024-11-15", CanAddMore: true},
		{Month: "Dec 2024", FixedAmount: 1000, ActualAmount: 0, Status: fund.StatusUpcoming, DueDate: "2024-12-15", CanAddMore: true},
	}
	db.ledger.contributors = []fund.Contributor{
		{ID: "1", Name: "Alex Johnson", Email: "alex@friendcircle.com", Avatar: "/placeholder.svg", TotalContribution: 12500, MonthlyAverage: 1563, Consistency: 100, Rank: 1},
		{ID: "2", Name: "Sarah Chen", Email: "sarah@friendcircle.com", Avatar: "/placeholder.svg", TotalContribution: 11800, MonthlyAverage: 1475, Consistency: 95, Rank: 2},
		{ID: "3", Name: "Michael Rodriguez", Email: "michael@friendcircle.com", Avatar: "/placeholder.svg", TotalContribution: 11200, MonthlyAverage: 1400, Consistency: 92, Rank: 3},
		{ID: "4", Name: "Emily Davis", Email: "emily@friendcircle.com", Avatar: "/placeholder.svg", TotalContribution: 10500, MonthlyAverage: 1313, Consistency: 88, Rank: 4},
		{ID: "5", Name: "David Wilson", Email: "david@friendcircle.com", Avatar: "/placeholder.svg", TotalContribution: 9800, MonthlyAverage: 1225, Consistency: 85, Rank: 5},
	}
	db.ledger.growth = []fund.GrowthPoint{
		{Month: "Jan", Amount: 45000, Target: 41667},
		{Month: "Feb", Amount: 72000, Target: 83334},
		{Month: "Mar", Amount: 98000, Target: 125001},
		{Month: "Apr", Amount: 125000, Target: 166668},
		{Month: "May", Amount: 156000, Target: 208335},
		{Month: "Jun", Amount: 189000, Target: 250002},
		{Month: "Jul", Amount: 215000, Target: 291669},
		{Month: "Aug", Amount: 245800, Target: 333336},
		{Month: "Sep", Amount: 275000, Target: 375003},
		{Month: "Oct", Amount: 310000, Target: 416670},
		{Month: "Nov", Amount: 350000, Target: 458337},
		{Month: "Dec", Amount: 500000, Target: 500000},
	}
	db.ledger.breakdown = []fund.Share{
		{Name: "Fixed Contributions", Value: 8000},
		{Name: "Additional Contributions", Value: 1100},
		{Name: "Bonus Contributions", Value: 800},
		{Name: "Interest Earned", Value: 350},
	}
	db.ledger.Unlock()

	db.user.Lock()
	db.user.rows = []user.User{
		{
			ID:                SeedMemberID,
			Name:              "Alex Johnson",
			Email:             "alex@friendcircle.com",
			Avatar:            "https://images.unsplash.com/photo-1649972904349-6e44c42644a7?w=100&h=100&fit=crop&crop=face",
			TotalContribution: 12500,
			PendingAmount:     500,
		},
	}
	db.user.Unlock()

	db.session.Lock()
	db.session.revoked = make(map[string]time.Time)
	db.session.Unlock()

	db.message.Lock()
	db.message.rows = []message.Message{
		{ID: "1", Sender: message.SenderAdmin, SenderName: "Admin", Body: "Welcome to FriendCircle Fund! Feel free to reach out if you have any questions.", Timestamp: "2024-01-15 10:30"},
		{ID: "2", Sender: message.SenderMember, SenderName: "Alex Johnson", Body: "Thank you! I have a question about the payment schedule.", Timestamp: "2024-01-15 14:20"},
		{ID: "3", Sender: message.SenderAdmin, SenderName: "Admin", Body: "Of course! The payment schedule is flexible. You can contribute the minimum amount each month or add more as per your convenience.", Timestamp: "2024-01-15 15:45"},
	}
	db.message.Unlock()
}
