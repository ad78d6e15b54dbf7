package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendInvitation(ctx context.Context, email, inviterName, tailNumber, token string) error {
	subject := fmt.Sprintf("You've been invited to co-own %s", tailNumber)
	body := fmt.Sprintf(
		"Hello,\n\n%s invited you to share aircraft %s on SkyLedger.\n\nUse this token to accept the invitation:\n\n%s\n\nThe invitation expires in 14 days.\n",
		inviterName, tailNumber, token)
	return s.send(email, subject, body)
}

func (s *emailService) SendMonthlyReport(ctx context.Context, email, name, tailNumber, body string) error {
	subject := fmt.Sprintf("Monthly cost report for %s", tailNumber)
	text := fmt.Sprintf("Hello %s,\n\nHere is last month's summary for %s:\n\n%s\n", name, tailNumber, body)
	return s.send(email, subject, text)
}
