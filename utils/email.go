// utils/email.go
package utils

import (
	"fmt"
	"html"
	"strings"

	"github.com/keighl/postmark"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"go-storefront/models"
	"go-storefront/pricing"
)

// Mailer delivers a single HTML email
type Mailer interface {
	SendEmail(toEmail, subject, htmlContent string) error
}

// EmailService builds the storefront emails and hands them to a Mailer
type EmailService struct {
	mailer Mailer
}

// NewEmailService picks Postmark, then SendGrid, then a log-only mailer
func NewEmailService(cfg MailConfig) *EmailService {
	switch {
	case cfg.PostmarkToken != "":
		return NewEmailServiceWith(&postmarkMailer{
			client: postmark.NewClient(cfg.PostmarkToken, ""),
			from:   cfg.Sender,
		})
	case cfg.SendGridKey != "":
		return NewEmailServiceWith(&sendgridMailer{
			client: sendgrid.NewSendClient(cfg.SendGridKey),
			from:   mail.NewEmail(cfg.SenderName, cfg.Sender),
		})
	default:
		zap.S().Warn("No mail provider configured, emails will only be logged")
		return NewEmailServiceWith(logMailer{})
	}
}

// NewEmailServiceWith uses the given mailer
func NewEmailServiceWith(m Mailer) *EmailService {
	return &EmailService{mailer: m}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	if err := es.mailer.SendEmail(toEmail, subject, htmlContent); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendOrderConfirmationEmail sends an order confirmation email to the customer
func (es *EmailService) SendOrderConfirmationEmail(order models.Order) error {
	subject := fmt.Sprintf("Confirmación de pedido %s", order.OrderNumber)
	return es.SendEmail(order.Customer.Email, subject, OrderConfirmationHTML(order))
}

// OrderConfirmationHTML renders the confirmation email body. Customer and catalog text is escaped.
func OrderConfirmationHTML(order models.Order) string {
	var lines strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&lines, "<li>%d x %s (%s): %s</li>",
			item.Quantity, html.EscapeString(item.Name), html.EscapeString(item.SKU), pricing.FormatPrice(pricing.LineTotal(item)))
	}
	return fmt.Sprintf(
		"<strong>Estimado/a %s,</strong><br><br>Gracias por tu compra. Tu pedido <strong>%s</strong> fue recibido.<br><ul>%s</ul>"+
			"Subtotal: %s<br>IVA (19%%): %s<br>Total: <strong>%s</strong><br><br>Te contactaremos para coordinar la entrega.",
		html.EscapeString(order.Customer.Name),
		html.EscapeString(order.OrderNumber),
		lines.String(),
		pricing.FormatPrice(order.Subtotal),
		pricing.FormatPrice(order.Tax),
		pricing.FormatPrice(order.Total),
	)
}

type postmarkMailer struct {
	client *postmark.Client
	from   string
}

func (pm *postmarkMailer) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := pm.client.SendEmail(postmark.Email{
		From:     pm.from,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	return err
}

type sendgridMailer struct {
	client *sendgrid.Client
	from   *mail.Email
}

func (sg *sendgridMailer) SendEmail(toEmail, subject, htmlContent string) error {
	message := mail.NewSingleEmail(sg.from, subject, mail.NewEmail("", toEmail), htmlContent, htmlContent)
	response, err := sg.client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

type logMailer struct{}

func (logMailer) SendEmail(toEmail, subject, _ string) error {
	zap.S().Infow("Email not sent, no provider configured", "to", toEmail, "subject", subject)
	return nil
}
