package domain

import "time"

// PresenceStatus indicates whether the end-user side of a conversation is connected.
type PresenceStatus string

const (
	PresenceOnline  PresenceStatus = "online"
	PresenceOffline PresenceStatus = "offline"
)

// ConversationStartedPreview seeds the last-message field of a fresh conversation.
const ConversationStartedPreview = "Conversation started"

// Conversation is a support chat thread. Its ID equals the owning end-user's ID,
// which makes get-or-create an upsert on the primary key.
type Conversation struct {
	ID              string
	UserName        string
	UserProfilePic  string
	LastMessage     string
	LastMessageTime string
	Status          PresenceStatus
	UnreadCount     int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MessageRole identifies which side of the thread authored a message.
type MessageRole string

const (
	RoleUser    MessageRole = "user"
	RoleSupport MessageRole = "support"
)

// ValidMessageRole reports whether r is a known role.
func ValidMessageRole(r MessageRole) bool {
	return r == RoleUser || r == RoleSupport
}

// Message belongs to exactly one conversation and is immutable once created.
type Message struct {
	ID             string
	ConversationID string
	Role           MessageRole
	Text           string
	Sender         string
	Timestamp      string
	CreatedAt      time.Time
}
