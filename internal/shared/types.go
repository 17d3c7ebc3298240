package shared

// Asynq task types for moderation notifications.
const (
	TypeAuthorDecisionEmail  = "moderation:author_decision"
	TypeContentDecisionEmail = "moderation:content_decision"
	TypeNewsletterIssueEmail = "moderation:newsletter_issue"
)

// Queue names.
const (
	QueueNotifications = "notifications"
)

// AuthorDecisionPayload carries an author review outcome to the worker.
type AuthorDecisionPayload struct {
	AuthorName  string `json:"authorName"`
	AuthorEmail string `json:"authorEmail"`
	AuthorSlug  string `json:"authorSlug"`
	Approved    bool   `json:"approved"`
	Reason      string `json:"reason,omitempty"`
}

// ContentDecisionPayload carries a content review outcome to the worker.
type ContentDecisionPayload struct {
	AuthorName   string `json:"authorName"`
	AuthorEmail  string `json:"authorEmail"`
	AuthorSlug   string `json:"authorSlug"`
	ContentID    string `json:"contentId"`
	ContentType  string `json:"contentType"`
	ContentTitle string `json:"contentTitle"`
	ContentSlug  string `json:"contentSlug"`
	Approved     bool   `json:"approved"`
	Feedback     string `json:"feedback,omitempty"`
}

// NewsletterIssuePayload carries one per-subscriber newsletter notice.
type NewsletterIssuePayload struct {
	SubscriberEmail string `json:"subscriberEmail"`
	AuthorName      string `json:"authorName"`
	AuthorSlug      string `json:"authorSlug"`
	ContentType     string `json:"contentType"`
	ContentTitle    string `json:"contentTitle"`
	ContentSlug     string `json:"contentSlug"`
	Excerpt         string `json:"excerpt,omitempty"`
}
