package message

type Sender string

const (
	SenderMember Sender = "user"
	SenderAdmin  Sender = "admin"
)

// TimestampLayout is the layout of Message.Timestamp.
const TimestampLayout = "2006-01-02 15:04"

type Message struct {
	ID         string `json:"id"`
	Sender     Sender `json:"sender"`
	SenderName string `json:"sender_name"`
	Body       string `json:"message"`
	Timestamp  string `json:"timestamp"`
}

type NewMessage struct {
	Body string `json:"message"`
}
