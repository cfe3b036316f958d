package email

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/config"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

func TestNewSender_PicksProvider(t *testing.T) {
	log := logger.NewNopLogger()

	s, err := NewSender(config.EmailConfig{Provider: "none"}, log)
	require.NoError(t, err)
	assert.IsType(t, &NoopEmailService{}, s)
	assert.NoError(t, s.Send("a@b.test", "hi", "", "hi"))

	s, err = NewSender(config.EmailConfig{Provider: "smtp", SMTP: config.SMTPConfig{Host: "mail.test", Port: 25}}, log)
	require.NoError(t, err)
	assert.IsType(t, &SMTPEmailService{}, s)

	s, err = NewSender(config.EmailConfig{Provider: "sendgrid", Sendgrid: config.SendgridConfig{APIKey: "key"}}, log)
	require.NoError(t, err)
	assert.IsType(t, &SendgridEmailService{}, s)
}

func TestNewSender_RejectsIncompleteConfig(t *testing.T) {
	log := logger.NewNopLogger()

	_, err := NewSender(config.EmailConfig{Provider: "smtp"}, log)
	assert.Error(t, err)
	_, err = NewSender(config.EmailConfig{Provider: "sendgrid"}, log)
	assert.Error(t, err)
	_, err = NewSender(config.EmailConfig{Provider: "pigeon"}, log)
	assert.Error(t, err)
}

func TestSMTPEmailService_BuildMessage(t *testing.T) {
	s := NewSMTPEmailService(SMTPConfig{Host: "mail.test", Port: 25, FromAddress: "noreply@robotcare.test", FromName: "RobotCare"})

	var buf bytes.Buffer
	_, err := s.buildMessage("ops@acme.test", "Ticket assigned", "<p>RB00001</p>", "RB00001").WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "To: ops@acme.test")
	assert.Contains(t, raw, "Subject: Ticket assigned")
	assert.True(t, strings.Contains(raw, "text/html"))
}
