package domain

import "time"

const ReasonAlreadyVoted = "already_voted"

type Vote struct {
	Identity  string    `json:"-"`
	ProjectID int64     `json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
}

// VoteResult is the outcome of a vote request. Token must be persisted back to
// the client whether or not the vote was counted.
type VoteResult struct {
	Success     bool
	Reason      string
	Token       string
	TokenIssued bool
	ExpiresAt   time.Time
}
