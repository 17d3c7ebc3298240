package email

// Template data for the moderation notification emails.

type AuthorApprovedData struct {
	Name  string
	Email string
	Slug  string
}

type AuthorRejectedData struct {
	Name   string
	Email  string
	Reason string
}

type ContentApprovedData struct {
	AuthorName  string
	AuthorEmail string
	AuthorSlug  string
	ContentType string // "newsletter", "blog", "article"
	Title       string
	Slug        string
}

type ContentRejectedData struct {
	AuthorName  string
	AuthorEmail string
	ContentID   string
	ContentType string
	Title       string
	Feedback    string
}

type NewsletterIssueData struct {
	SubscriberEmail string
	AuthorName      string
	AuthorSlug      string
	ContentType     string
	Title           string
	Slug            string
	Excerpt         string
}
