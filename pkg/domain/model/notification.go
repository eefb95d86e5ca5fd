package model

// NotificationPayload is the chat message derived from a published
// release. Title and Description are already formatted and capped to
// the platform limits. Built and sent once, never persisted.
type NotificationPayload struct {
	Title       string
	URL         string
	Description string
	Content     string // optional plain text shown beside the embed
}
