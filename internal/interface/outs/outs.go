package outs

import (
	"context"
	"fmt"
	"sync"

	"etcgBot/internal/domain"
)

// Sender es la interfaz que deben implementar los adapters de salida (Telegram, Twitch).
type Sender interface {
	SendMessage(ctx context.Context, platform domain.Platform, chatID string, msg domain.OutgoingMessage) error
	LeaveConversation(ctx context.Context, platform domain.Platform, chatID string) error
}

// MultiSender enruta las acciones al sender correcto según la plataforma.
type MultiSender struct {
	mu      sync.RWMutex
	senders map[domain.Platform]Sender
}

func NewMultiSender() *MultiSender {
	return &MultiSender{
		senders: make(map[domain.Platform]Sender),
	}
}

// Register asocia una plataforma con un Sender concreto.
func (m *MultiSender) Register(platform domain.Platform, sender Sender) {
	if m == nil || sender == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.senders[platform] = sender
}

func (m *MultiSender) Unregister(platform domain.Platform) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.senders, platform)
}

func (m *MultiSender) SendMessage(ctx context.Context, platform domain.Platform, chatID string, msg domain.OutgoingMessage) error {
	sender, err := m.lookup(platform)
	if err != nil {
		return err
	}
	return sender.SendMessage(ctx, platform, chatID, msg)
}

func (m *MultiSender) LeaveConversation(ctx context.Context, platform domain.Platform, chatID string) error {
	sender, err := m.lookup(platform)
	if err != nil {
		return err
	}
	return sender.LeaveConversation(ctx, platform, chatID)
}

func (m *MultiSender) lookup(platform domain.Platform) (Sender, error) {
	if m == nil {
		return nil, fmt.Errorf("no hay multi sender configurado: %w", domain.ErrUnknownPlatform)
	}
	m.mu.RLock()
	sender, ok := m.senders[platform]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownPlatform, platform)
	}
	return sender, nil
}

var _ domain.OutgoingMessagePort = (*MultiSender)(nil)
