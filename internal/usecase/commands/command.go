package commands

// Command es el conjunto cerrado de comandos que entiende el bot.
type Command int

const (
	CommandHelp Command = iota + 1
	CommandPrimary
	CommandFarewell
)

func (c Command) String() string {
	switch c {
	case CommandHelp:
		return "help"
	case CommandPrimary:
		return "primary"
	case CommandFarewell:
		return "farewell"
	default:
		return "unknown"
	}
}
