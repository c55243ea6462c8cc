package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func TestEmailMessage_Render(t *testing.T) {
	ParseEmailTemplates(&Config{AppName: "Khajana", TestMode: true}, nopLogger{})

	t.Run("templated", func(t *testing.T) {
		msg := &EmailMessage{
			Subject:      "New message",
			TemplateName: "member_message",
			TemplateData: struct {
				SenderName, Timestamp, Body string
			}{"Alex Johnson", "2024-01-15 14:20", "When is the next payment due?"},
		}
		require.NoError(t, msg.Render())
		assert.True(t, msg.HasContent())
		assert.Contains(t, msg.TextContent, "Alex Johnson sent a message on 2024-01-15 14:20")
		assert.Contains(t, msg.TextContent, "Khajana")
		assert.Contains(t, msg.HTMLContent, "<strong>Alex Johnson</strong>")
	})

	t.Run("plain body", func(t *testing.T) {
		msg := &EmailMessage{BodyStr: "hello"}
		require.NoError(t, msg.Render())
		assert.Equal(t, "hello", msg.TextContent)
		assert.Empty(t, msg.HTMLContent)
		assert.False(t, msg.HasRecipients())
	})
}
