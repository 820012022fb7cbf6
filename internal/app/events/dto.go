package events

import (
	"strconv"
	"time"

	"etcgBot/internal/domain"
)

// CommandHandledDTO es el payload que se publica por cada comando procesado.
type CommandHandledDTO struct {
	RequestID string      `json:"request_id"`
	Platform  string      `json:"platform"`
	ChatID    string      `json:"chat_id"`
	Command   string      `json:"command"`
	Sender    string      `json:"sender"`
	SenderID  string      `json:"sender_id,omitempty"`
	Actions   []ActionDTO `json:"actions"`
	Error     string      `json:"error,omitempty"`
	Timestamp string      `json:"timestamp"`
}

type ActionDTO struct {
	Kind   string `json:"kind"`
	ChatID string `json:"chat_id"`
	Format string `json:"format,omitempty"`
	Text   string `json:"text,omitempty"`
}

func NewCommandHandledDTO(requestID string, msg domain.Message, command string, sender domain.SenderInfo, plan domain.ActionPlan, err error) CommandHandledDTO {
	dto := CommandHandledDTO{
		RequestID: requestID,
		Platform:  string(msg.Platform),
		ChatID:    msg.ChatID,
		Command:   command,
		Sender:    sender.DisplayName,
		Actions:   make([]ActionDTO, 0, len(plan)),
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if sender.ID != nil {
		dto.SenderID = strconv.FormatInt(*sender.ID, 10)
	}
	if err != nil {
		dto.Error = err.Error()
	}
	for _, a := range plan {
		dto.Actions = append(dto.Actions, ActionDTO{
			Kind:   string(a.Kind),
			ChatID: a.ChatID,
			Format: string(a.Message.Format),
			Text:   a.Message.Text,
		})
	}
	return dto
}
