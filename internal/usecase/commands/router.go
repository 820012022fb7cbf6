package commands

import "etcgBot/internal/domain"

// Router arma el plan de acciones para cada comando. No tiene efectos secundarios.
type Router struct {
	helpText  string
	templates TemplateSet
	policy    AuthorizationPolicy
}

func NewRouter(helpText string, templates TemplateSet, policy AuthorizationPolicy) *Router {
	return &Router{
		helpText:  helpText,
		templates: templates,
		policy:    policy,
	}
}

func (r *Router) Route(chatID string, cmd Command, sender domain.SenderInfo) domain.ActionPlan {
	switch cmd {
	case CommandHelp:
		return domain.ActionPlan{
			domain.SendMessage(chatID, domain.OutgoingMessage{
				Text:   r.helpText,
				Format: domain.FormatPlain,
			}),
		}

	case CommandPrimary:
		return domain.ActionPlan{
			domain.SendMessage(chatID, domain.OutgoingMessage{
				Text:               Render(r.templates.Primary, sender.DisplayName),
				Format:             domain.FormatMarkdownV2,
				DisableLinkPreview: true,
			}),
		}

	case CommandFarewell:
		if !r.policy.Allows(sender.Platform, sender.ID) {
			return domain.ActionPlan{
				domain.SendMessage(chatID, domain.OutgoingMessage{
					Text:               Render(r.templates.Unauthorized, sender.DisplayName),
					Format:             domain.FormatMarkdownV2,
					DisableLinkPreview: true,
				}),
			}
		}

		// el mensaje va antes: después de salir ya no se puede escribir en el chat
		return domain.ActionPlan{
			domain.SendMessage(chatID, domain.OutgoingMessage{
				Text:   Render(r.templates.Farewell, sender.DisplayName),
				Format: domain.FormatMarkdownV2,
			}),
			domain.LeaveConversation(chatID),
		}

	default:
		return nil
	}
}
