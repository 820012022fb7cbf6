package logging

const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldPlatform  = "platform"
	FieldChatID    = "chat_id"
	FieldSenderID  = "sender_id"
	FieldSender    = "sender"
	FieldCommand   = "command"
	FieldActions   = "actions"
	FieldError     = "error"
)
