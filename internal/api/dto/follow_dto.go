package dto

type FollowStateDTO struct {
	Count    int64 `json:"count"`
	Followed bool  `json:"followed"`
}

type FollowedIssueDTO struct {
	IssueID    uint64 `json:"issue_id"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	Brand      string `json:"brand"`
	Model      string `json:"model"`
	FollowedAt string `json:"followed_at"`
}
