package infrastructure

import (
	"fmt"
	"log"
	"os"

	"github.com/resend/resend-go/v2"
)

// EmailService sends notification mail. With no EMAIL_API_KEY configured it
// logs and skips, so notification is never on a request's critical path.
type EmailService struct {
	sender string
	client *resend.Client
}

func NewEmailService() *EmailService {
	apiKey := os.Getenv("EMAIL_API_KEY")
	sender := os.Getenv("EMAIL_SENDER")

	maskedApiKey := ""
	if len(apiKey) > 8 {
		maskedApiKey = apiKey[:4] + "****" + apiKey[len(apiKey)-4:]
	}
	log.Printf("Email Service Config - API Key: %s, Sender: %s", maskedApiKey, sender)

	var client *resend.Client
	if apiKey != "" {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		sender: sender,
		client: client,
	}
}

func (e *EmailService) Send(recipient, subject, body string) error {
	if e.client == nil {
		log.Printf("Email disabled; skipping mail to %s", recipient)
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    e.sender,
		To:      []string{recipient},
		Subject: subject,
		Text:    body,
	}

	response, err := e.client.Emails.Send(params)
	if err != nil {
		log.Printf("Resend error: %+v", err)
		return err
	}

	log.Printf("Email sent successfully. ID: %s", response.Id)
	return nil
}

// NotifyDoubtResponse mails the asker that their doubt has a response.
func (e *EmailService) NotifyDoubtResponse(recipient, topic, response string) error {
	subject := fmt.Sprintf("Your doubt on %q has a response", topic)
	body := fmt.Sprintf("A teacher responded to your doubt:\n\n%s", response)
	return e.Send(recipient, subject, body)
}
