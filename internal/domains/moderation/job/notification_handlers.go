package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"reflection-backend/internal/infrastructure/email"
	"reflection-backend/internal/shared"
	"reflection-backend/pkg/logger"
)

// AuthorDecisionHandler sends the author approval/rejection email.
type AuthorDecisionHandler struct {
	emailService email.EmailService
}

func NewAuthorDecisionHandler(emailService email.EmailService) *AuthorDecisionHandler {
	return &AuthorDecisionHandler{emailService: emailService}
}

func (h *AuthorDecisionHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var p shared.AuthorDecisionPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal author decision payload: %w", err)
	}

	var err error
	if p.Approved {
		err = h.emailService.SendAuthorApprovedEmail(ctx, email.AuthorApprovedData{
			Name:  p.AuthorName,
			Email: p.AuthorEmail,
			Slug:  p.AuthorSlug,
		})
	} else {
		err = h.emailService.SendAuthorRejectedEmail(ctx, email.AuthorRejectedData{
			Name:   p.AuthorName,
			Email:  p.AuthorEmail,
			Reason: p.Reason,
		})
	}
	if err != nil {
		// MaxRetry is 0 on these tasks: log and move on.
		logger.Error("failed to send author decision email", err)
		return err
	}

	logger.Info("author decision email sent", map[string]interface{}{
		"author_slug": p.AuthorSlug,
		"approved":    p.Approved,
	})
	return nil
}

// ContentDecisionHandler sends the content published/revision email.
type ContentDecisionHandler struct {
	emailService email.EmailService
}

func NewContentDecisionHandler(emailService email.EmailService) *ContentDecisionHandler {
	return &ContentDecisionHandler{emailService: emailService}
}

func (h *ContentDecisionHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var p shared.ContentDecisionPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal content decision payload: %w", err)
	}

	var err error
	if p.Approved {
		err = h.emailService.SendContentApprovedEmail(ctx, email.ContentApprovedData{
			AuthorName:  p.AuthorName,
			AuthorEmail: p.AuthorEmail,
			AuthorSlug:  p.AuthorSlug,
			ContentType: p.ContentType,
			Title:       p.ContentTitle,
			Slug:        p.ContentSlug,
		})
	} else {
		err = h.emailService.SendContentRejectedEmail(ctx, email.ContentRejectedData{
			AuthorName:  p.AuthorName,
			AuthorEmail: p.AuthorEmail,
			ContentID:   p.ContentID,
			ContentType: p.ContentType,
			Title:       p.ContentTitle,
			Feedback:    p.Feedback,
		})
	}
	if err != nil {
		logger.Error("failed to send content decision email", err)
		return err
	}

	logger.Info("content decision email sent", map[string]interface{}{
		"content_id": p.ContentID,
		"approved":   p.Approved,
	})
	return nil
}

// NewsletterIssueHandler sends one newsletter notice to one subscriber.
type NewsletterIssueHandler struct {
	emailService email.EmailService
}

func NewNewsletterIssueHandler(emailService email.EmailService) *NewsletterIssueHandler {
	return &NewsletterIssueHandler{emailService: emailService}
}

func (h *NewsletterIssueHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var p shared.NewsletterIssuePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal newsletter issue payload: %w", err)
	}

	err := h.emailService.SendNewsletterIssueEmail(ctx, email.NewsletterIssueData{
		SubscriberEmail: p.SubscriberEmail,
		AuthorName:      p.AuthorName,
		AuthorSlug:      p.AuthorSlug,
		ContentType:     p.ContentType,
		Title:           p.ContentTitle,
		Slug:            p.ContentSlug,
		Excerpt:         p.Excerpt,
	})
	if err != nil {
		logger.Error("failed to send newsletter email", err)
		return err
	}

	return nil
}
