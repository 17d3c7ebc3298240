package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"reflection-backend/internal/shared"
)

// AsynqNotifier enqueues moderation notification emails as background tasks.
// Tasks are enqueued with MaxRetry 0: a decision email that fails to send is
// logged by the worker and not retried, so a flaky SMTP server cannot pile up
// duplicate notifications.
type AsynqNotifier struct {
	client *asynq.Client
}

func NewAsynqNotifier(client *asynq.Client) *AsynqNotifier {
	return &AsynqNotifier{client: client}
}

func (n *AsynqNotifier) NotifyAuthorDecision(ctx context.Context, payload shared.AuthorDecisionPayload) error {
	return n.enqueue(ctx, shared.TypeAuthorDecisionEmail, payload)
}

func (n *AsynqNotifier) NotifyContentDecision(ctx context.Context, payload shared.ContentDecisionPayload) error {
	return n.enqueue(ctx, shared.TypeContentDecisionEmail, payload)
}

func (n *AsynqNotifier) NotifyNewsletterIssue(ctx context.Context, payload shared.NewsletterIssuePayload) error {
	return n.enqueue(ctx, shared.TypeNewsletterIssueEmail, payload)
}

func (n *AsynqNotifier) enqueue(ctx context.Context, taskType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", taskType, err)
	}

	task := asynq.NewTask(taskType, data)
	_, err = n.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueNotifications),
		asynq.MaxRetry(0),
	)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", taskType, err)
	}

	return nil
}
