// Package telegramadapter adapter for telegram
package telegramadapter

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/samber/lo"

	"etcgBot/internal/domain"
	"etcgBot/internal/infrastructure/logging"
	"etcgBot/internal/usecase/commands"
)

const (
	defaultMaxConcurrentHandlers = 32
	longPollingTimeoutSeconds    = 30
)

type Config struct {
	Token                 string
	MenuCommands          []telego.BotCommand
	MaxConcurrentHandlers int
}

type MessageHandler func(ctx context.Context, msg domain.Message) error

type Adapter struct {
	cfg Config
	bot *telego.Bot
	log *slog.Logger

	mu       sync.RWMutex
	handler  MessageHandler
	username string

	handleSem chan struct{}
	handleWG  sync.WaitGroup
}

func NewAdapter(cfg Config, log *slog.Logger) (*Adapter, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("telegram: %w", domain.ErrMissingCredential)
	}
	if cfg.MaxConcurrentHandlers <= 0 {
		cfg.MaxConcurrentHandlers = defaultMaxConcurrentHandlers
	}
	if log == nil {
		log = slog.Default()
	}

	bot, err := telego.NewBot(cfg.Token, telego.WithDefaultLogger(false, false))
	if err != nil {
		return nil, fmt.Errorf("telegram: crear bot: %w", err)
	}

	return &Adapter{
		cfg:       cfg,
		bot:       bot,
		log:       log.With(logging.FieldComponent, "telegram"),
		handleSem: make(chan struct{}, cfg.MaxConcurrentHandlers),
	}, nil
}

func (a *Adapter) SetHandler(h MessageHandler) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handler = h
}

// Start hace long polling y se bloquea hasta que el contexto se cancela.
func (a *Adapter) Start(ctx context.Context) error {
	me, err := a.bot.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("telegram: GetMe: %w", err)
	}

	a.mu.Lock()
	a.username = me.Username
	a.mu.Unlock()

	if err := a.SyncMenuCommands(ctx); err != nil {
		a.log.Warn("no se pudo registrar el menú de comandos", logging.FieldError, err)
	}

	updates, err := a.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout:        longPollingTimeoutSeconds,
		AllowedUpdates: []string{"message"},
	})
	if err != nil {
		return fmt.Errorf("telegram: long polling: %w", err)
	}

	a.log.Info("conectado", "username", me.Username)

	defer a.handleWG.Wait()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("telegram: canal de updates cerrado")
			}
			if update.Message != nil {
				a.dispatch(ctx, update.Message)
			}
		}
	}
}

// dispatch corre el handler en su propia goroutine; las acciones de un mismo
// mensaje siguen siendo secuenciales dentro del handler.
func (a *Adapter) dispatch(ctx context.Context, message *telego.Message) {
	a.mu.RLock()
	handler := a.handler
	username := a.username
	a.mu.RUnlock()
	if handler == nil {
		return
	}

	select {
	case a.handleSem <- struct{}{}:
	case <-ctx.Done():
		return
	}

	a.handleWG.Add(1)
	go func(msg domain.Message) {
		defer func() {
			<-a.handleSem
			a.handleWG.Done()
		}()
		if err := handler(ctx, msg); err != nil {
			a.log.Warn("error en handler", logging.FieldChatID, msg.ChatID, logging.FieldError, err)
		}
	}(mapMessageToDomain(message, username))
}

func (a *Adapter) SendMessage(ctx context.Context, platform domain.Platform, chatID string, msg domain.OutgoingMessage) error {
	if platform != domain.PlatformTelegram {
		return fmt.Errorf("telegram adapter no soporta plataforma %s", platform)
	}

	params, err := buildSendParams(chatID, msg)
	if err != nil {
		return err
	}

	if _, err := a.bot.SendMessage(ctx, params); err != nil {
		return fmt.Errorf("telegram: SendMessage(%s): %w", chatID, err)
	}
	return nil
}

func (a *Adapter) LeaveConversation(ctx context.Context, platform domain.Platform, chatID string) error {
	if platform != domain.PlatformTelegram {
		return fmt.Errorf("telegram adapter no soporta plataforma %s", platform)
	}

	id, err := parseChatID(chatID)
	if err != nil {
		return err
	}

	if err := a.bot.LeaveChat(ctx, &telego.LeaveChatParams{ChatID: tu.ID(id)}); err != nil {
		return fmt.Errorf("telegram: LeaveChat(%s): %w", chatID, err)
	}
	return nil
}

// SyncMenuCommands registra los comandos en el menú del cliente vía setMyCommands.
func (a *Adapter) SyncMenuCommands(ctx context.Context) error {
	if len(a.cfg.MenuCommands) == 0 {
		return nil
	}
	return a.bot.SetMyCommands(ctx, &telego.SetMyCommandsParams{
		Commands: a.cfg.MenuCommands,
	})
}

// MenuCommands convierte el catálogo al formato de setMyCommands.
func MenuCommands(catalog []commands.CommandDescriptor) []telego.BotCommand {
	return lo.Map(catalog, func(d commands.CommandDescriptor, _ int) telego.BotCommand {
		return telego.BotCommand{Command: d.Name, Description: d.Description}
	})
}

func mapMessageToDomain(m *telego.Message, botUsername string) domain.Message {
	msg := domain.Message{
		Platform:    domain.PlatformTelegram,
		ChatID:      strconv.FormatInt(m.Chat.ID, 10),
		Text:        m.Text,
		BotUsername: botUsername,
	}
	if m.From != nil {
		msg.Sender = &domain.Sender{
			ID:        m.From.ID,
			FirstName: m.From.FirstName,
			LastName:  m.From.LastName,
		}
	}
	return msg
}

func buildSendParams(chatID string, msg domain.OutgoingMessage) (*telego.SendMessageParams, error) {
	id, err := parseChatID(chatID)
	if err != nil {
		return nil, err
	}

	params := tu.Message(tu.ID(id), msg.Text)
	if msg.Format == domain.FormatMarkdownV2 {
		params = params.WithParseMode(telego.ModeMarkdownV2)
	}
	if msg.DisableLinkPreview {
		params.LinkPreviewOptions = &telego.LinkPreviewOptions{IsDisabled: true}
	}
	return params, nil
}

func parseChatID(chatID string) (int64, error) {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidChatID, chatID)
	}
	return id, nil
}
