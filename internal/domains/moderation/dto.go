package moderation

// ReviewAuthorRequest - POST /v1/admin/authors/:id/review
type ReviewAuthorRequest struct {
	Action string `json:"action"`
	Reason string `json:"reason,omitempty"`
}

func (r ReviewAuthorRequest) ToDecision() (Decision, error) {
	d := Decision{Action: Action(r.Action), Reason: r.Reason}
	if err := d.Validate(); err != nil {
		return Decision{}, err
	}
	return d, nil
}

// ReviewContentRequest - POST /v1/admin/content/:id/review
type ReviewContentRequest struct {
	Action   string `json:"action"`
	Feedback string `json:"feedback,omitempty"`
}

func (r ReviewContentRequest) ToDecision() (Decision, error) {
	d := Decision{Action: Action(r.Action), Reason: r.Feedback}
	if err := d.Validate(); err != nil {
		return Decision{}, err
	}
	return d, nil
}

// ReviewResponse reports the state the target ended up in.
type ReviewResponse struct {
	Status string `json:"status"`
}
