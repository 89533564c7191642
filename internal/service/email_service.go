package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/halcyonworks/siteapi/internal/api/dto/v1/contact"
)

// SendOutcome is the result of one email dispatch.
type SendOutcome struct {
	Sent      bool   `json:"sent"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ContactEmailResult aggregates the two independent dispatches. Success is
// true iff the business notification was delivered; the customer
// confirmation failing on its own does not fail the submission.
type ContactEmailResult struct {
	Success      bool
	Notification SendOutcome
	Confirmation SendOutcome
	Errors       []string
}

// EmailService renders and dispatches the two contact-form emails.
type EmailService struct {
	mailer        Mailer
	businessEmail string
}

// NewEmailService creates an email service. businessEmail receives the
// notification and is the reply-to of the customer confirmation.
func NewEmailService(mailer Mailer, businessEmail string) *EmailService {
	return &EmailService{
		mailer:        mailer,
		businessEmail: businessEmail,
	}
}

// SendContactEmails renders both email bodies and dispatches them
// concurrently. The two sends are independent: one failing, hanging or
// panicking never cancels the other. Every user-supplied field is escaped
// by the template engine before it reaches the email body.
func (s *EmailService) SendContactEmails(ctx context.Context, sub contact.Submission) ContactEmailResult {
	notificationHTML, err := renderTemplate(notificationTemplate, sub)
	if err != nil {
		return renderFailure("notification", err)
	}
	confirmationHTML, err := renderTemplate(confirmationTemplate, sub)
	if err != nil {
		return renderFailure("confirmation", err)
	}

	notificationMsg := EmailMessage{
		To:      s.businessEmail,
		Subject: notificationSubject(sub),
		HTML:    notificationHTML,
		ReplyTo: sub.Email,
	}
	confirmationMsg := EmailMessage{
		To:      sub.Email,
		Subject: "We received your message - Halcyon Works",
		HTML:    confirmationHTML,
		ReplyTo: s.businessEmail,
	}

	var result ContactEmailResult
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		result.Notification = s.dispatch(ctx, notificationMsg)
	}()
	go func() {
		defer wg.Done()
		result.Confirmation = s.dispatch(ctx, confirmationMsg)
	}()
	wg.Wait()

	result.Success = result.Notification.Sent
	if result.Notification.Error != "" {
		result.Errors = append(result.Errors, "notification: "+result.Notification.Error)
	}
	if result.Confirmation.Error != "" {
		result.Errors = append(result.Errors, "confirmation: "+result.Confirmation.Error)
	}

	return result
}

// dispatch sends one message with fault isolation: a panic on the send path
// is captured and converted into a failure outcome.
func (s *EmailService) dispatch(ctx context.Context, msg EmailMessage) (out SendOutcome) {
	defer func() {
		if r := recover(); r != nil {
			out = SendOutcome{Error: fmt.Sprintf("send panicked: %v", r)}
		}
	}()

	id, err := s.mailer.Send(ctx, msg)
	if err != nil {
		return SendOutcome{Error: err.Error()}
	}
	return SendOutcome{Sent: true, MessageID: id}
}

// notificationSubject computes the business notification subject, with an
// urgency marker when the message asks for one.
func notificationSubject(sub contact.Submission) string {
	subject := fmt.Sprintf("New contact form submission from %s", sub.FullName())
	if strings.Contains(strings.ToLower(sub.Message), "urgent") {
		subject = "[URGENT] " + subject
	}
	return subject
}

func renderFailure(name string, err error) ContactEmailResult {
	msg := fmt.Sprintf("failed to render %s email: %v", name, err)
	return ContactEmailResult{
		Notification: SendOutcome{Error: msg},
		Confirmation: SendOutcome{Error: msg},
		Errors:       []string{msg},
	}
}

func renderTemplate(tmpl *template.Template, sub contact.Submission) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, sub); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var notificationTemplate = template.Must(template.New("notification").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1a202c; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2b6cb0;">New Contact Form Submission</h2>
  <table style="border-collapse: collapse; width: 100%;">
    <tr><td style="padding: 6px 12px 6px 0; font-weight: bold;">Name</td><td>{{.FullName}}</td></tr>
    <tr><td style="padding: 6px 12px 6px 0; font-weight: bold;">Email</td><td>{{.Email}}</td></tr>
    {{if .Phone}}<tr><td style="padding: 6px 12px 6px 0; font-weight: bold;">Phone</td><td>{{.Phone}}</td></tr>{{end}}
    {{if .Company}}<tr><td style="padding: 6px 12px 6px 0; font-weight: bold;">Company</td><td>{{.Company}}</td></tr>{{end}}
    {{if .ServiceType}}<tr><td style="padding: 6px 12px 6px 0; font-weight: bold;">Service</td><td>{{.ServiceType}}</td></tr>{{end}}
  </table>
  <h3 style="margin-bottom: 4px;">Message</h3>
  <div style="white-space: pre-line; background: #f7fafc; padding: 12px; border-radius: 4px;">{{.Message}}</div>
  <p style="color: #718096; font-size: 12px;">Reply to this email to respond directly to {{.FirstName}}.</p>
</body>
</html>`))

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1a202c; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2b6cb0;">Thanks for reaching out, {{.FirstName}}!</h2>
  <p>We received your message and a member of our team will get back to you
  within one business day.</p>
  <h3 style="margin-bottom: 4px;">Your message</h3>
  <div style="white-space: pre-line; background: #f7fafc; padding: 12px; border-radius: 4px;">{{.Message}}</div>
  <p>If anything is time sensitive, just reply to this email.</p>
  <p style="color: #718096; font-size: 12px;">Halcyon Works - Technology Consulting</p>
</body>
</html>`))
