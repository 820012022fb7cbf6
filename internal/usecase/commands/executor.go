package commands

import (
	"context"
	"fmt"

	"etcgBot/internal/domain"
)

// Executor despacha un ActionPlan en orden sobre el puerto de salida.
type Executor struct {
	out domain.OutgoingMessagePort
}

func NewExecutor(out domain.OutgoingMessagePort) *Executor {
	return &Executor{out: out}
}

// Execute corta en la primera acción fallida; las siguientes no se intentan.
func (e *Executor) Execute(ctx context.Context, platform domain.Platform, plan domain.ActionPlan) error {
	for i, action := range plan {
		var err error
		switch action.Kind {
		case domain.ActionSendMessage:
			err = e.out.SendMessage(ctx, platform, action.ChatID, action.Message)
		case domain.ActionLeaveConversation:
			err = e.out.LeaveConversation(ctx, platform, action.ChatID)
		default:
			err = fmt.Errorf("tipo de acción desconocido %q", action.Kind)
		}
		if err != nil {
			return fmt.Errorf("%w: acción %d (%s) en %s/%s: %w", domain.ErrDispatch, i, action.Kind, platform, action.ChatID, err)
		}
	}
	return nil
}
