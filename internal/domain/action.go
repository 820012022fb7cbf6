package domain

type TextFormat string

const (
	FormatPlain      TextFormat = "plain"
	FormatMarkdownV2 TextFormat = "markdown_v2"
)

type ActionKind string

const (
	ActionSendMessage       ActionKind = "send_message"
	ActionLeaveConversation ActionKind = "leave_conversation"
)

type OutgoingMessage struct {
	Text               string
	Format             TextFormat
	DisableLinkPreview bool
}

// Action es un efecto visible hacia la plataforma. Message solo aplica a ActionSendMessage.
type Action struct {
	Kind    ActionKind
	ChatID  string
	Message OutgoingMessage
}

// ActionPlan se ejecuta en orden; una acción fallida corta las siguientes.
type ActionPlan []Action

func SendMessage(chatID string, msg OutgoingMessage) Action {
	return Action{
		Kind:    ActionSendMessage,
		ChatID:  chatID,
		Message: msg,
	}
}

func LeaveConversation(chatID string) Action {
	return Action{
		Kind:   ActionLeaveConversation,
		ChatID: chatID,
	}
}

// Leaves indica si el plan termina abandonando la conversación.
func (p ActionPlan) Leaves() bool {
	for _, a := range p {
		if a.Kind == ActionLeaveConversation {
			return true
		}
	}
	return false
}
