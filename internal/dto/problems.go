package dto

// ProblemResponse represents a problem in list responses.
// collaboratorCount is the number of match rows referencing the problem.
type ProblemResponse struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	Category          string  `json:"category"`
	Location          string  `json:"location"`
	CountryCode       *string `json:"country_code"`
	CollaboratorCount int     `json:"collaboratorCount"`
	CreatedAt         string  `json:"created_at"`
}

// ProblemListResponse envelope
type ProblemListResponse struct {
	Items []ProblemResponse `json:"items"`
}

// MatchProblem is a problem embedded in a user's match rows
type MatchProblem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Location    string  `json:"location"`
	CountryCode *string `json:"country_code"`
	CreatedAt   string  `json:"created_at"`
}
