package errors

var (
	ErrConversationNotFound         = NotFound("conversation not found")
	ErrConversationRejected         = New(CodeConversationRejected, "conversation has been rejected")
	ErrNotConversationParty         = Forbidden("user is not a party of this conversation")
	ErrSelfConversation             = InvalidArg("cannot start a conversation with yourself")
	ErrCannotReject                 = FailedPrecondition("only a pending conversation can be rejected by its recipient")
	ErrMissingConversationReference = InvalidArg("either conversation or both user1 and user2 are required")
	ErrMessageNotFound              = NotFound("message not found")
	ErrMessageDeleted               = FailedPrecondition("message has been deleted")
	ErrNotMessageSender             = Forbidden("only the sender can change this message")
	ErrEmptyMessage                 = InvalidArg("message needs text or at least one attachment")
)

var ErrMissingTarget = New(CodeMissingTarget, "notification has no resolvable recipient")
