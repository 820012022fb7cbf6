// Package twitchadapter adapter for twitch
package twitchadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/adeithe/go-twitch/irc"

	"etcgBot/internal/domain"
	"etcgBot/internal/infrastructure/logging"
	"etcgBot/internal/usecase/markup"
)

type Config struct {
	Username   string
	OAuthToken string
	Channels   []string
}

// Enabled indica si hay credenciales y canales suficientes para conectar.
func (c Config) Enabled() bool {
	return c.Username != "" && c.OAuthToken != "" && len(c.Channels) > 0
}

type MessageHandler func(ctx context.Context, msg domain.Message) error

type Adapter struct {
	cfg     Config
	log     *slog.Logger
	handler MessageHandler

	mu   sync.RWMutex
	conn *irc.Conn
}

func NewAdapter(cfg Config, log *slog.Logger) *Adapter {
	if log == nil {
		log = slog.Default()
	}
	return &Adapter{cfg: cfg, log: log.With(logging.FieldComponent, "twitch")}
}

func (a *Adapter) SetHandler(h MessageHandler) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handler = h
}

func (a *Adapter) Start(ctx context.Context) error {
	if len(a.cfg.Channels) == 0 {
		return errors.New("twitch: no hay canales configurados")
	}
	if a.cfg.Username == "" || a.cfg.OAuthToken == "" {
		return fmt.Errorf("twitch: username u oauth token vacíos: %w", domain.ErrMissingCredential)
	}

	conn := &irc.Conn{}

	if err := conn.SetLogin(a.cfg.Username, a.cfg.OAuthToken); err != nil {
		return fmt.Errorf("twitch: SetLogin: %w", err)
	}

	conn.OnMessage(func(cm irc.ChatMessage) {
		a.mu.RLock()
		handler := a.handler
		a.mu.RUnlock()
		if handler == nil {
			return
		}

		msg := mapChatMessageToDomain(cm, a.cfg.Username)
		if err := handler(ctx, msg); err != nil {
			a.log.Warn("error en handler", logging.FieldChatID, msg.ChatID, logging.FieldError, err)
		}
	})

	if err := conn.Connect(); err != nil {
		return fmt.Errorf("twitch: Connect: %w", err)
	}

	if err := conn.Join(a.cfg.Channels...); err != nil {
		conn.Close()
		return fmt.Errorf("twitch: Join: %w", err)
	}

	a.mu.Lock()
	a.conn = conn
	a.mu.Unlock()

	a.log.Info("conectado", "username", a.cfg.Username, "channels", a.cfg.Channels)

	<-ctx.Done()

	a.mu.Lock()
	if a.conn != nil {
		a.conn.Close()
		a.conn = nil
	}
	a.mu.Unlock()

	return ctx.Err()
}

// SendMessage envía texto plano: Twitch no interpreta MarkdownV2.
func (a *Adapter) SendMessage(ctx context.Context, platform domain.Platform, chatID string, msg domain.OutgoingMessage) error {
	if platform != domain.PlatformTwitch {
		return fmt.Errorf("twitch adapter no soporta plataforma %s", platform)
	}

	conn, err := a.connected()
	if err != nil {
		return err
	}

	for _, line := range renderLines(msg) {
		if err := conn.Say(chatID, line); err != nil {
			return fmt.Errorf("twitch: Say(%s): %w", chatID, err)
		}
	}
	return nil
}

func (a *Adapter) LeaveConversation(ctx context.Context, platform domain.Platform, chatID string) error {
	if platform != domain.PlatformTwitch {
		return fmt.Errorf("twitch adapter no soporta plataforma %s", platform)
	}

	conn, err := a.connected()
	if err != nil {
		return err
	}

	if err := conn.Leave(chatID); err != nil {
		return fmt.Errorf("twitch: Leave(%s): %w", chatID, err)
	}
	return nil
}

func (a *Adapter) connected() (*irc.Conn, error) {
	a.mu.RLock()
	conn := a.conn
	a.mu.RUnlock()

	if conn == nil || !conn.IsConnected() {
		return nil, fmt.Errorf("twitch: %w", domain.ErrNotConnected)
	}
	return conn, nil
}

// renderLines aplana el formato y parte por líneas: IRC no admite saltos de línea.
func renderLines(msg domain.OutgoingMessage) []string {
	text := msg.Text
	if msg.Format == domain.FormatMarkdownV2 {
		text = markup.PlainText(text)
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func mapChatMessageToDomain(cm irc.ChatMessage, botUsername string) domain.Message {
	sender := cm.Sender

	// DisplayName puede venir vacío si el tag no llegó
	name := sender.DisplayName
	if name == "" {
		name = sender.Username
	}

	return domain.Message{
		Platform:    domain.PlatformTwitch,
		ChatID:      cm.Channel,
		Text:        cm.Text,
		BotUsername: botUsername,
		Sender: &domain.Sender{
			ID:        sender.ID,
			FirstName: name,
		},
	}
}
