// Package email delivers notification and invitation mail through SMTP or SendGrid.
package email

import (
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/config"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

// Sender delivers one message with a plain text body and an optional HTML alternative.
type Sender interface {
	Send(to, subject, htmlBody, plainBody string) error
}

// NoopEmailService drops mail; used when email.provider is none.
type NoopEmailService struct {
	logger logger.Interface
}

func (s *NoopEmailService) Send(to, subject, _, _ string) error {
	s.logger.Debugw("email delivery disabled, message dropped", "to", to, "subject", subject)
	return nil
}

// NewSender picks the provider named in cfg.
func NewSender(cfg config.EmailConfig, log logger.Interface) (Sender, error) {
	switch cfg.Provider {
	case "smtp":
		if cfg.SMTP.Host == "" {
			return nil, fmt.Errorf("email.smtp.host is required for the smtp provider")
		}
		log.Infow("email service initialized", "provider", "smtp", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port, "from", cfg.FromAddress)
		return NewSMTPEmailService(SMTPConfig{
			Host:        cfg.SMTP.Host,
			Port:        cfg.SMTP.Port,
			Username:    cfg.SMTP.Username,
			Password:    cfg.SMTP.Password,
			FromAddress: cfg.FromAddress,
			FromName:    cfg.FromName,
		}), nil
	case "sendgrid":
		if cfg.Sendgrid.APIKey == "" {
			return nil, fmt.Errorf("email.sendgrid.api_key is required for the sendgrid provider")
		}
		log.Infow("email service initialized", "provider", "sendgrid", "from", cfg.FromAddress)
		return NewSendgridEmailService(cfg.Sendgrid.APIKey, cfg.FromAddress, cfg.FromName), nil
	case "", "none":
		log.Debugw("email service not configured")
		return &NoopEmailService{logger: log}, nil
	default:
		return nil, fmt.Errorf("unsupported email provider: %s", cfg.Provider)
	}
}
