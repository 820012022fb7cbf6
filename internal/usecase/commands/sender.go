package commands

import "etcgBot/internal/domain"

// AnonymousSender es el nombre usado cuando el mensaje no trae remitente.
const AnonymousSender = "someone"

// ResolveSender obtiene nombre visible e identidad del remitente.
func ResolveSender(msg domain.Message) domain.SenderInfo {
	if msg.Sender == nil {
		return domain.SenderInfo{Platform: msg.Platform, DisplayName: AnonymousSender}
	}

	id := msg.Sender.ID
	name := msg.Sender.FirstName
	if msg.Sender.LastName != "" {
		name += " " + msg.Sender.LastName
	}

	return domain.SenderInfo{
		Platform:    msg.Platform,
		DisplayName: name,
		ID:          &id,
	}
}
