package consts

const (
	IssueFollowerCountKey = "issue:follower:count:"
	TokenRevokedKey       = "auth:token:revoked:"
)
