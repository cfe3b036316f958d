package email

import (
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type SendgridEmailService struct {
	client      *sendgrid.Client
	fromAddress string
	fromName    string
}

func NewSendgridEmailService(apiKey, fromAddress, fromName string) *SendgridEmailService {
	return &SendgridEmailService{
		client:      sendgrid.NewSendClient(apiKey),
		fromAddress: fromAddress,
		fromName:    fromName,
	}
}

func (s *SendgridEmailService) Send(to, subject, htmlBody, plainBody string) error {
	from := mail.NewEmail(s.fromName, s.fromAddress)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), plainBody, htmlBody)

	response, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email via Sendgrid: %w", err)
	}
	if response.StatusCode != http.StatusAccepted {
		return fmt.Errorf("unexpected Sendgrid status code: %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
