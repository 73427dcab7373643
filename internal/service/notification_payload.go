package service

import (
	"github.com/goccy/go-json"
)

// Notification types fanned out to issue followers.
const (
	NotificationTypeComment      = "comment"
	NotificationTypeUpdate       = "update"
	NotificationTypeUpdateEdit   = "update_edit"
	NotificationTypeUpdateDelete = "update_delete"
	NotificationTypeMedia        = "media"
	NotificationTypeStatus       = "status"
)

// CommentPayload accompanies a comment notification.
type CommentPayload struct {
	IssueID    uint64 `json:"issue_id"`
	By         string `json:"by"`
	Content    string `json:"content"`
	IssueTitle string `json:"issue_title"`
}

// UpdatePayload accompanies a new development notification.
type UpdatePayload struct {
	IssueID    uint64  `json:"issue_id"`
	By         string  `json:"by"`
	Title      *string `json:"title"`
	Content    string  `json:"content"`
	IssueTitle string  `json:"issue_title"`
}

// UpdateRefPayload accompanies update_edit and update_delete notifications.
type UpdateRefPayload struct {
	IssueID  uint64 `json:"issue_id"`
	By       string `json:"by"`
	UpdateID uint64 `json:"update_id"`
}

// MediaPayload accompanies a media upload notification.
type MediaPayload struct {
	IssueID    uint64 `json:"issue_id"`
	By         string `json:"by"`
	Count      int    `json:"count"`
	IssueTitle string `json:"issue_title"`
}

// StatusPayload accompanies a status change notification.
type StatusPayload struct {
	IssueID    uint64 `json:"issue_id"`
	By         string `json:"by"`
	From       string `json:"from"`
	To         string `json:"to"`
	IssueTitle string `json:"issue_title"`
}

// DecodePayload turns a stored payload column back into a value suitable for
// the wire. Payloads that were stored as plain strings come back unchanged.
func DecodePayload(raw string) any {
	var decoded map[string]any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return raw
	}
	return decoded
}
