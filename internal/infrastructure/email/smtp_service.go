package email

import (
	"context"
	"fmt"
	"net/smtp"

	"reflection-backend/pkg/logger"
)

// EmailService renders and sends the moderation notification emails.
type EmailService interface {
	SendAuthorApprovedEmail(ctx context.Context, data AuthorApprovedData) error
	SendAuthorRejectedEmail(ctx context.Context, data AuthorRejectedData) error
	SendContentApprovedEmail(ctx context.Context, data ContentApprovedData) error
	SendContentRejectedEmail(ctx context.Context, data ContentRejectedData) error
	SendNewsletterIssueEmail(ctx context.Context, data NewsletterIssueData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
	baseURL  string // public app URL used to build links
}

func NewSMTPEmailService(smtpHost, smtpPort, from, baseURL string) EmailService {
	return &smtpEmailService{
		smtpAddr: smtpHost + ":" + smtpPort,
		smtpFrom: from,
		baseURL:  baseURL,
	}
}

func (s *smtpEmailService) SendAuthorApprovedEmail(ctx context.Context, data AuthorApprovedData) error {
	subject := "Your Author Application Has Been Approved!"
	body := fmt.Sprintf(`Congratulations, %s!

Your application to become an author on Reflection has been approved!

You can now log in to your author dashboard and start creating content:
%s/author/auth/login

Your author page will be available at: /author/%s

If you didn't apply to become an author, please ignore this email.`,
		data.Name, s.baseURL, data.Slug)

	return s.send(ctx, data.Email, subject, body)
}

func (s *smtpEmailService) SendAuthorRejectedEmail(ctx context.Context, data AuthorRejectedData) error {
	subject := "Update on Your Author Application"
	body := fmt.Sprintf(`Hello, %s

Thank you for your interest in becoming an author on Reflection.

After reviewing your application, we have decided not to approve it at this time.

Reason: %s

You're welcome to apply again in the future with an updated application.`,
		data.Name, data.Reason)

	return s.send(ctx, data.Email, subject, body)
}

func (s *smtpEmailService) SendContentApprovedEmail(ctx context.Context, data ContentApprovedData) error {
	contentURL := fmt.Sprintf("%s/author/%s/%s", s.baseURL, data.AuthorSlug, data.Slug)

	subject := fmt.Sprintf("Your %s has been approved!", data.ContentType)
	body := fmt.Sprintf(`Great news, %s! Your %s "%s" has been approved and is now live.

View it here: %s`,
		data.AuthorName, data.ContentType, data.Title, contentURL)

	return s.send(ctx, data.AuthorEmail, subject, body)
}

func (s *smtpEmailService) SendContentRejectedEmail(ctx context.Context, data ContentRejectedData) error {
	editURL := fmt.Sprintf("%s/author/dashboard/content/%s", s.baseURL, data.ContentID)

	subject := fmt.Sprintf("Revision needed: %s", data.Title)
	body := fmt.Sprintf(`Hello %s, your %s "%s" needs some revisions before it can be published.

Feedback: %s

Please review the feedback and resubmit your content when ready:
%s`,
		data.AuthorName, data.ContentType, data.Title, data.Feedback, editURL)

	return s.send(ctx, data.AuthorEmail, subject, body)
}

func (s *smtpEmailService) SendNewsletterIssueEmail(ctx context.Context, data NewsletterIssueData) error {
	contentURL := fmt.Sprintf("%s/author/%s/%s", s.baseURL, data.AuthorSlug, data.Slug)

	subject := fmt.Sprintf("New from %s: %s", data.AuthorName, data.Title)
	body := fmt.Sprintf(`New %s from %s

%s
`, data.ContentType, data.AuthorName, data.Title)
	if data.Excerpt != "" {
		body += "\n" + data.Excerpt + "\n"
	}
	body += fmt.Sprintf(`
Read the full content: %s

You're receiving this because you subscribed to %s's newsletter.
Unsubscribe: %s/unsubscribe`,
		contentURL, data.AuthorName, s.baseURL)

	return s.send(ctx, data.SubscriberEmail, subject, body)
}

func (s *smtpEmailService) send(_ context.Context, to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, to, subject, body))

	if err := smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{to}, msg); err != nil {
		logger.Error("failed to send email", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
