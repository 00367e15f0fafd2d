package entity

import "time"

// HelplineRequest is a support request submitted from the helpline form.
type HelplineRequest struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	PhoneNumber      string    `json:"phone_number"`
	IssueDescription string    `json:"issue_description"`
	CreatedAt        time.Time `json:"created_at"`
}
