package message

import (
	"context"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Sazzad-Saju/circle-funds-flow/core"
)

var nowFunc = time.Now // mockable

type (
	// Repository keeps the conversation in chronological order.
	Repository interface {
		QueryAll() ([]Message, error)
		// Create appends msg.
		Create(msg Message) (Message, error)
	}

	Options struct {
		Delay time.Duration
		Admin mail.Address
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
		opts    Options
	}
)

func NewService(repo Repository, mailSvc core.EmailService, opts Options) *Service {
	return &Service{repo: repo, mailSvc: mailSvc, opts: opts}
}

func NewServiceFromConfig(repo Repository, mailSvc core.EmailService, conf *core.Config) *Service {
	return NewService(repo, mailSvc, Options{Delay: conf.Simulate.MessageDelay, Admin: conf.AdminEmail})
}

func (svc *Service) List() ([]Message, error) {
	msgs, err := svc.repo.QueryAll()
	return msgs, errors.Wrap(err, "querying messages")
}

// Send appends a message from the member to the admin thread after the message delay
// and forwards a copy to the admin by email. A blank body is a no-op.
func (svc *Service) Send(ctx context.Context, senderName, senderEmail string, nm NewMessage) (Message, core.Outcome, error) {
	body := core.CleanString(nm.Body)
	if body == "" {
		return Message{}, core.Outcome{Status: core.OutcomeSkipped}, nil
	}

	var msg Message
	sim := core.Simulation{
		Delay:   svc.opts.Delay,
		Success: core.Notice{Title: "Message Sent", Description: "Your message has been sent to the admin."},
		Failure: core.Notice{Title: "Error", Description: "Failed to send message. Please try again."},
	}
	out, err := sim.Run(ctx, func() error {
		var err error
		msg, err = svc.repo.Create(Message{
			ID:         uuid.New().String(),
			Sender:     SenderMember,
			SenderName: senderName,
			Body:       body,
			Timestamp:  nowFunc().Format(TimestampLayout),
		})
		return errors.Wrap(err, "saving message")
	})
	if err != nil {
		return Message{}, out, err
	}
	svc.forward(msg, senderName, senderEmail)
	return msg, out, nil
}

func (svc *Service) forward(msg Message, senderName, senderEmail string) {
	if svc.mailSvc == nil || svc.opts.Admin.Address == "" {
		return
	}
	em := &core.EmailMessage{
		To:           []mail.Address{svc.opts.Admin},
		Subject:      "New message from " + senderName,
		TemplateName: "member_message",
		TemplateData: msg,
	}
	if senderEmail != "" {
		em.ReplyTo = &mail.Address{Name: senderName, Address: senderEmail}
	}
	svc.mailSvc.SendMessages(em)
}
