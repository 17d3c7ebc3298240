package moderation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	authormodel "reflection-backend/internal/domains/author/model"
	authorrepo "reflection-backend/internal/domains/author/repository"
	contentmodel "reflection-backend/internal/domains/content/model"
	contentrepo "reflection-backend/internal/domains/content/repository"
	subscriberrepo "reflection-backend/internal/domains/subscriber/repository"
	"reflection-backend/internal/shared"
	"reflection-backend/pkg/logger"
)

// AdminDirectory is the slice of the admin domain the workflow needs:
// a yes/no check that a principal id belongs to a real admin account.
type AdminDirectory interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// Notifier dispatches decision notifications after a state commit.
// Dispatch is best-effort: the workflow logs failures and never lets
// them affect the outcome of a review.
type Notifier interface {
	NotifyAuthorDecision(ctx context.Context, payload shared.AuthorDecisionPayload) error
	NotifyContentDecision(ctx context.Context, payload shared.ContentDecisionPayload) error
	NotifyNewsletterIssue(ctx context.Context, payload shared.NewsletterIssuePayload) error
}

// ServiceInterface is the moderation workflow: admin-only reviews of
// pending authors and content, with post-commit notification dispatch.
type ServiceInterface interface {
	// ReviewAuthor moves an author application out of PENDING.
	// Errors: ErrUnauthorized, ErrNotFound, ErrInvalidTransition,
	// ErrValidation.
	ReviewAuthor(ctx context.Context, admin AdminPrincipal, authorID uuid.UUID, decision Decision) (authormodel.Status, error)

	// ReviewContent moves a content item out of PENDING_REVIEW.
	// Approving a NEWSLETTER additionally fans out one notification per
	// active subscriber of the owning author.
	// Errors: ErrUnauthorized, ErrNotFound, ErrInvalidTransition,
	// ErrValidation.
	ReviewContent(ctx context.Context, admin AdminPrincipal, contentID uuid.UUID, decision Decision) (contentmodel.Status, error)
}

type service struct {
	authors     authorrepo.RepositoryInterface
	contents    contentrepo.RepositoryInterface
	subscribers subscriberrepo.RepositoryInterface
	admins      AdminDirectory
	notifier    Notifier
	now         func() time.Time
}

func NewService(
	authors authorrepo.RepositoryInterface,
	contents contentrepo.RepositoryInterface,
	subscribers subscriberrepo.RepositoryInterface,
	admins AdminDirectory,
	notifier Notifier,
) ServiceInterface {
	return &service{
		authors:     authors,
		contents:    contents,
		subscribers: subscribers,
		admins:      admins,
		notifier:    notifier,
		now:         time.Now,
	}
}

func (s *service) ReviewAuthor(ctx context.Context, admin AdminPrincipal, authorID uuid.UUID, decision Decision) (authormodel.Status, error) {
	// Authorization comes before any other processing.
	if err := s.authorize(ctx, admin); err != nil {
		return "", err
	}
	if err := decision.Validate(); err != nil {
		return "", err
	}

	newStatus := authormodel.StatusApproved
	var reason *string
	if !decision.IsApprove() {
		newStatus = authormodel.StatusRejected
		trimmed := strings.TrimSpace(decision.Reason)
		reason = &trimmed
	}

	// Phase 1: commit the transition. The repository performs a
	// compare-and-set on status=PENDING, so of two concurrent reviews
	// exactly one lands here with a non-nil author.
	author, err := s.authors.ReviewIfPending(ctx, authorID, newStatus, reason, s.now())
	if err != nil {
		switch {
		case errors.Is(err, authormodel.ErrAuthorNotFound):
			return "", ErrNotFound
		case errors.Is(err, authormodel.ErrAlreadyReviewed):
			return "", ErrInvalidTransition
		}
		return "", err
	}

	// Phase 2: notify. The transition is already durable; a dispatch
	// failure is logged and must not surface to the caller.
	payload := shared.AuthorDecisionPayload{
		AuthorName:  author.Name,
		AuthorEmail: author.Email,
		AuthorSlug:  author.Slug,
		Approved:    decision.IsApprove(),
	}
	if reason != nil {
		payload.Reason = *reason
	}
	if err := s.notifier.NotifyAuthorDecision(ctx, payload); err != nil {
		logger.Error("failed to dispatch author decision notification", err)
	}

	return author.Status, nil
}

func (s *service) ReviewContent(ctx context.Context, admin AdminPrincipal, contentID uuid.UUID, decision Decision) (contentmodel.Status, error) {
	if err := s.authorize(ctx, admin); err != nil {
		return "", err
	}
	if err := decision.Validate(); err != nil {
		return "", err
	}

	var feedback *string
	if !decision.IsApprove() {
		trimmed := strings.TrimSpace(decision.Reason)
		feedback = &trimmed
	}

	// Phase 1: compare-and-set on status=PENDING_REVIEW.
	content, err := s.contents.ReviewIfPending(ctx, contentID, decision.IsApprove(), feedback, admin.ID, s.now())
	if err != nil {
		switch {
		case errors.Is(err, contentmodel.ErrContentNotFound):
			return "", ErrNotFound
		case errors.Is(err, contentmodel.ErrAlreadyReviewed):
			return "", ErrInvalidTransition
		}
		return "", err
	}

	// Phase 2: notifications, outside any transaction.
	author, err := s.authors.GetByID(ctx, content.AuthorID)
	if err != nil {
		// The transition stands; we just cannot address the emails.
		logger.Error("failed to load author for content decision notification", err)
		return content.Status, nil
	}

	payload := shared.ContentDecisionPayload{
		AuthorName:   author.Name,
		AuthorEmail:  author.Email,
		AuthorSlug:   author.Slug,
		ContentID:    content.ID.String(),
		ContentType:  strings.ToLower(string(content.Type)),
		ContentTitle: content.Title,
		ContentSlug:  content.Slug,
		Approved:     decision.IsApprove(),
	}
	if feedback != nil {
		payload.Feedback = *feedback
	}
	if err := s.notifier.NotifyContentDecision(ctx, payload); err != nil {
		logger.Error("failed to dispatch content decision notification", err)
	}

	if decision.IsApprove() && content.Type == contentmodel.TypeNewsletter {
		s.fanOutNewsletter(ctx, author, content)
	}

	return content.Status, nil
}

// fanOutNewsletter sends one notification per active subscriber.
// Each send is independent: a failure for one subscriber never
// short-circuits the rest, and none of the failures reach the caller.
func (s *service) fanOutNewsletter(ctx context.Context, author *authormodel.Author, content *contentmodel.Content) {
	subs, err := s.subscribers.ListActiveByAuthor(ctx, author.ID)
	if err != nil {
		logger.Error("failed to list subscribers for newsletter fan-out", err)
		return
	}

	excerpt := ""
	if content.Excerpt != nil {
		excerpt = *content.Excerpt
	}

	sent := 0
	for _, sub := range subs {
		payload := shared.NewsletterIssuePayload{
			SubscriberEmail: sub.Email,
			AuthorName:      author.Name,
			AuthorSlug:      author.Slug,
			ContentType:     strings.ToLower(string(content.Type)),
			ContentTitle:    content.Title,
			ContentSlug:     content.Slug,
			Excerpt:         excerpt,
		}
		if err := s.notifier.NotifyNewsletterIssue(ctx, payload); err != nil {
			logger.Error("failed to dispatch newsletter notification", err)
			continue
		}
		sent++
	}

	logger.Info("newsletter fan-out complete", map[string]interface{}{
		"content_id":  content.ID.String(),
		"author_slug": author.Slug,
		"subscribers": len(subs),
		"dispatched":  sent,
	})
}

func (s *service) authorize(ctx context.Context, admin AdminPrincipal) error {
	if admin.ID == uuid.Nil {
		return ErrUnauthorized
	}
	ok, err := s.admins.ExistsByID(ctx, admin.ID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorized
	}
	return nil
}
