package dto

// SetMatchRequest represents the payload to match the caller to a problem
type SetMatchRequest struct {
	Role string `json:"role" validate:"required"`
}

// MatchResponse represents a match row in responses
type MatchResponse struct {
	UserID    string `json:"user_id"`
	ProblemID string `json:"problem_id"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// SetMatchResponse envelope
type SetMatchResponse struct {
	OK    bool          `json:"ok"`
	Match MatchResponse `json:"match"`
}

// UnmatchResponse envelope
type UnmatchResponse struct {
	OK bool `json:"ok"`
}

// CollaboratorUser is the matched user's identity in collaborator listings
type CollaboratorUser struct {
	ID          string  `json:"id"`
	DisplayName *string `json:"display_name"`
}

// CollaboratorItem is one match row for a problem, joined with the user
type CollaboratorItem struct {
	User      CollaboratorUser `json:"user"`
	Role      string           `json:"role"`
	CreatedAt string           `json:"created_at"`
}

// ProblemUsersResponse envelope
type ProblemUsersResponse struct {
	ProblemID string             `json:"problemId"`
	Items     []CollaboratorItem `json:"items"`
}

// MyMatchItem is one of the caller's match rows, joined with its problem
type MyMatchItem struct {
	Problem   MatchProblem `json:"problem"`
	Role      string       `json:"role"`
	CreatedAt string       `json:"created_at"`
}

// MyMatchesResponse envelope
type MyMatchesResponse struct {
	Items []MyMatchItem `json:"items"`
}
