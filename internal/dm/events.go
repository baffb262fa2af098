package dm

import "github.com/google/uuid"

// ConversationsUpdatedEvent tells a client to refresh its conversation list.
const ConversationsUpdatedEvent = "conversations_updated"

const (
	PushTitleNewMessage = "New Message"
	pushBodyPrefix      = "New message from "
)

// NewMessageEvent is the realtime event for messages in one conversation.
func NewMessageEvent(conversationID uuid.UUID) string {
	return "new_message_" + conversationID.String()
}

func NewMessagePushBody(displayName string) string {
	return pushBodyPrefix + displayName
}
