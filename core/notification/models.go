package notification

type Type string

const (
	TypeInfo    Type = "info"
	TypeWarning Type = "warning"
	TypeSuccess Type = "success"
)

type Notification struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"` // relative, eg: "2 hours ago"
	Type      Type   `json:"type"`
	Read      bool   `json:"read"`
}

// Feed is a listing with its unread badge count.
type Feed struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}

// UnreadCount counts the notifications not yet read.
func UnreadCount(nts []Notification) int {
	var n int
	for _, nt := range nts {
		if !nt.Read {
			n++
		}
	}
	return n
}
