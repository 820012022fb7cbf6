//go:generate go run go.uber.org/mock/mockgen -source=ports.go -destination=../mocks/mock_ports.go -package=mocks
package domain

import "context"

// OutgoingMessagePort es lo que cada plataforma (o el MultiSender) sabe hacer hacia afuera.
type OutgoingMessagePort interface {
	SendMessage(ctx context.Context, platform Platform, chatID string, msg OutgoingMessage) error
	LeaveConversation(ctx context.Context, platform Platform, chatID string) error
}

// EventPublisher recibe los comandos ya resueltos (lo usa el feed de eventos).
type EventPublisher interface {
	Publish(topic string, payload any)
}
