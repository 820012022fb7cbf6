package commands

import (
	"strings"

	"github.com/samber/lo"
)

const helpHeader = "These commands are supported:"

// Keywords son los literales con los que se invoca cada comando (sin prefijo).
type Keywords struct {
	Help     string
	Primary  string
	Farewell string
}

func DefaultKeywords() Keywords {
	return Keywords{
		Help:     "help",
		Primary:  "etcg",
		Farewell: "goodbye",
	}
}

// CommandDescriptor expone los metadatos de cada comando para la ayuda y el menú de Telegram.
type CommandDescriptor struct {
	Command     Command
	Name        string
	Aliases     []string
	Description string
}

// BuiltinCommandCatalog describe los comandos que vienen incluidos en el bot.
func BuiltinCommandCatalog(k Keywords) []CommandDescriptor {
	return []CommandDescriptor{
		{
			Command:     CommandHelp,
			Name:        strings.ToLower(k.Help),
			Description: "display this text.",
		},
		{
			Command:     CommandPrimary,
			Name:        strings.ToLower(k.Primary),
			Description: "apply for ETCG, totally legit.",
		},
		{
			Command:     CommandFarewell,
			Name:        strings.ToLower(k.Farewell),
			Description: "wish everyone farewell.",
		},
	}
}

// HelpText arma el texto de /help a partir del catálogo.
func HelpText(prefix string, catalog []CommandDescriptor) string {
	lines := lo.Map(catalog, func(d CommandDescriptor, _ int) string {
		return prefix + d.Name + " - " + d.Description
	})
	return helpHeader + "\n" + strings.Join(lines, "\n")
}
