package main

import (
	"github.com/hibiken/asynq"

	"reflection-backend/internal/config"
	moderationJob "reflection-backend/internal/domains/moderation/job"
	"reflection-backend/internal/infrastructure/email"
	"reflection-backend/internal/shared"
)

// HandlerRegistry holds the worker's task handlers.
type HandlerRegistry struct {
	authorDecision  *moderationJob.AuthorDecisionHandler
	contentDecision *moderationJob.ContentDecisionHandler
	newsletterIssue *moderationJob.NewsletterIssueHandler
}

func initializeHandlers(cfg *config.Config) *HandlerRegistry {
	emailSvc := email.NewSMTPEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.From,
		cfg.App.BaseURL,
	)

	return &HandlerRegistry{
		authorDecision:  moderationJob.NewAuthorDecisionHandler(emailSvc),
		contentDecision: moderationJob.NewContentDecisionHandler(emailSvc),
		newsletterIssue: moderationJob.NewNewsletterIssueHandler(emailSvc),
	}
}

func (r *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.Handle(shared.TypeAuthorDecisionEmail, r.authorDecision)
	mux.Handle(shared.TypeContentDecisionEmail, r.contentDecision)
	mux.Handle(shared.TypeNewsletterIssueEmail, r.newsletterIssue)
}
