// utils/email.go
package utils

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"go-checkout/checkout"
	"go-checkout/models"
)

// EmailService handles sending emails using SendGrid
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance
func NewEmailService() *EmailService {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		panic("SENDGRID_API_KEY is not set in environment variables")
	}
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
		sender: os.Getenv("EMAIL_SENDER"),
	}
}

// SendEmail sends a plain-text email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, content string) error {
	from := mail.NewEmail("Checkout Service", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, content, content)
	if _, err := es.client.Send(message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendVerificationEmail sends an email verification link to the customer
func (es *EmailService) SendVerificationEmail(toEmail, token string) error {
	subject := "Verify Your Email"
	verificationLink := fmt.Sprintf("http://localhost:%s/verify?token=%s", os.Getenv("PORT"), token)
	content := fmt.Sprintf("Please verify your email by opening the following link: %s", verificationLink)
	return es.SendEmail(toEmail, subject, content)
}

// SendReceiptEmail sends a copy of the checkout receipt to the customer.
// The body is the same text the console presenter produces.
func (es *EmailService) SendReceiptEmail(toEmail string, receipt *models.Receipt) error {
	subject := fmt.Sprintf("Your receipt %s", receipt.ID)
	var body bytes.Buffer
	fmt.Fprintf(&body, "Dear %s,\n\nThank you for your purchase!\n", receipt.Customer)
	presenter := &checkout.ConsolePresenter{Out: &body}
	presenter.Present(receipt)
	return es.SendEmail(toEmail, subject, body.String())
}
