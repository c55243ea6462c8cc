package message

import (
	"context"
	"net/mail"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sazzad-Saju/circle-funds-flow/core"
)

type memRepo struct {
	msgs []Message
	err  error
}

func (r *memRepo) QueryAll() ([]Message, error) { return append([]Message(nil), r.msgs...), nil }

func (r *memRepo) Create(msg Message) (Message, error) {
	if r.err != nil {
		return Message{}, r.err
	}
	r.msgs = append(r.msgs, msg)
	return msg, nil
}

type mailRecorder struct {
	sent []*core.EmailMessage
}

func (m *mailRecorder) SendMessages(messages ...*core.EmailMessage) {
	m.sent = append(m.sent, messages...)
}

func TestService_Send(t *testing.T) {
	nowFunc = func() time.Time { return time.Date(2024, time.September, 10, 9, 5, 0, 0, time.UTC) }
	defer func() { nowFunc = time.Now }()

	admin := mail.Address{Name: "Khajana Admin", Address: "admin@friendcircle.com"}

	t.Run("blank", func(t *testing.T) {
		repo, mailer := &memRepo{}, &mailRecorder{}
		svc := NewService(repo, mailer, Options{Admin: admin})

		_, out, err := svc.Send(context.Background(), "Alex", "alex@x.com", NewMessage{Body: " \n "})
		require.NoError(t, err)
		assert.Equal(t, core.Outcome{Status: core.OutcomeSkipped}, out)
		assert.Empty(t, repo.msgs)
		assert.Empty(t, mailer.sent)
	})

	t.Run("sent", func(t *testing.T) {
		repo, mailer := &memRepo{}, &mailRecorder{}
		svc := NewService(repo, mailer, Options{Admin: admin})

		msg, out, err := svc.Send(context.Background(), "Alex", "alex@x.com", NewMessage{Body: " Hello "})
		require.NoError(t, err)
		assert.True(t, out.Succeeded())
		assert.Equal(t, "Message Sent", out.Notice.Title)
		assert.Equal(t, SenderMember, msg.Sender)
		assert.Equal(t, "Hello", msg.Body)
		assert.Equal(t, "2024-09-10 09:05", msg.Timestamp)

		msgs, err := svc.List()
		require.NoError(t, err)
		assert.Equal(t, []Message{msg}, msgs)

		require.Len(t, mailer.sent, 1)
		em := mailer.sent[0]
		assert.Equal(t, []mail.Address{admin}, em.To)
		assert.Equal(t, &mail.Address{Name: "Alex", Address: "alex@x.com"}, em.ReplyTo)
		assert.Equal(t, "member_message", em.TemplateName)
		assert.Equal(t, msg, em.TemplateData)
	})

	t.Run("no admin address", func(t *testing.T) {
		mailer := &mailRecorder{}
		svc := NewService(&memRepo{}, mailer, Options{})

		_, _, err := svc.Send(context.Background(), "Alex", "", NewMessage{Body: "Hi"})
		require.NoError(t, err)
		assert.Empty(t, mailer.sent)
	})

	t.Run("store failure", func(t *testing.T) {
		mailer := &mailRecorder{}
		svc := NewService(&memRepo{err: errors.New("boom")}, mailer, Options{Admin: admin})

		_, out, err := svc.Send(context.Background(), "Alex", "", NewMessage{Body: "Hi"})
		var opErr *core.OperationError
		require.True(t, errors.As(err, &opErr), "err = %v", err)
		assert.Equal(t, core.OutcomeFailed, out.Status)
		assert.Equal(t, "Failed to send message. Please try again.", out.Notice.Description)
		assert.Empty(t, mailer.sent)
	})
}
