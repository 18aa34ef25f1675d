// internal/models/notification.go
package models

// Notification channels.
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// Notification statuses.
const (
	NotificationSent     = "sent"
	NotificationFailed   = "failed"
	NotificationDisabled = "disabled"
)

// Notification records one attempt to tell a student about their matches.
type Notification struct {
	ID         string `json:"notificationId"`
	Channel    string `json:"channel"`
	Recipient  string `json:"recipient,omitempty"`
	Locale     Locale `json:"locale"`
	Status     string `json:"status"`
	MessageID  string `json:"messageId,omitempty"`
	MatchCount int    `json:"matchCount"`
	SentAt     string `json:"sentAt"`
}

// NotificationTemplate is a localized message layout.
type NotificationTemplate struct {
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	HTMLBody string `json:"htmlBody,omitempty"`
}
