// Package handle_message
package handle_message

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"etcgBot/internal/app/events"
	"etcgBot/internal/domain"
	"etcgBot/internal/infrastructure/logging"
	"etcgBot/internal/usecase/commands"
)

type Interactor struct {
	parser   *commands.Parser
	router   *commands.Router
	executor *commands.Executor
	events   domain.EventPublisher
	log      *slog.Logger
	newID    func() string
}

// NewInteractor: events es opcional (nil = no se publica nada).
func NewInteractor(parser *commands.Parser, router *commands.Router, executor *commands.Executor, publisher domain.EventPublisher, log *slog.Logger) *Interactor {
	if log == nil {
		log = slog.Default()
	}
	return &Interactor{
		parser:   parser,
		router:   router,
		executor: executor,
		events:   publisher,
		log:      log,
		newID:    uuid.NewString,
	}
}

// Handle procesa un mensaje entrante. Los mensajes que no son comandos se ignoran.
func (uc *Interactor) Handle(ctx context.Context, msg domain.Message) error {
	cmd, ok := uc.parser.Parse(msg.Text, msg.BotUsername)
	if !ok {
		return nil
	}

	sender := commands.ResolveSender(msg)
	plan := uc.router.Route(msg.ChatID, cmd, sender)
	requestID := uc.newID()

	log := uc.log.With(
		logging.FieldRequestID, requestID,
		logging.FieldPlatform, msg.Platform,
		logging.FieldChatID, msg.ChatID,
		logging.FieldCommand, cmd.String(),
		logging.FieldSender, sender.DisplayName,
	)
	if sender.ID != nil {
		log = log.With(logging.FieldSenderID, strconv.FormatInt(*sender.ID, 10))
	}
	log.Info("comando recibido", logging.FieldActions, len(plan), "leave", plan.Leaves())

	err := uc.executor.Execute(ctx, msg.Platform, plan)

	if uc.events != nil {
		uc.events.Publish(events.TopicCommandHandled, events.NewCommandHandledDTO(requestID, msg, cmd.String(), sender, plan, err))
	}

	if err != nil {
		log.Error("no se pudo despachar la respuesta", logging.FieldError, err)
		return err
	}

	if plan.Leaves() {
		log.Info("conversación abandonada")
	}
	return nil
}
