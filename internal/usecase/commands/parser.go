package commands

import "strings"

// Parser traduce el texto crudo de un mensaje a un Command.
type Parser struct {
	prefix   string
	cmdIndex map[string]Command
}

func NewParser(prefix string, catalog []CommandDescriptor) *Parser {
	p := &Parser{
		prefix:   prefix,
		cmdIndex: make(map[string]Command),
	}
	for _, d := range catalog {
		p.register(d)
	}
	return p
}

func (p *Parser) register(d CommandDescriptor) {
	if d.Name != "" {
		p.cmdIndex[strings.ToLower(d.Name)] = d.Command
	}
	for _, alias := range d.Aliases {
		p.cmdIndex[strings.ToLower(alias)] = d.Command
	}
}

// Parse devuelve false si el texto no es un comando conocido. Un sufijo @nombre sólo se
// acepta si coincide con botUsername; si botUsername está vacío ningún sufijo es válido.
func (p *Parser) Parse(text, botUsername string) (Command, bool) {
	text = strings.TrimSpace(text)
	if text == "" || !strings.HasPrefix(text, p.prefix) {
		return 0, false
	}

	rest := strings.TrimPrefix(text, p.prefix)
	parts := strings.Fields(rest)
	if len(parts) == 0 || !strings.HasPrefix(rest, parts[0]) {
		return 0, false
	}

	// en grupos Telegram agrega @nombre_del_bot
	name, mention, addressed := strings.Cut(parts[0], "@")
	if addressed && (botUsername == "" || !strings.EqualFold(mention, botUsername)) {
		return 0, false
	}

	cmd, ok := p.cmdIndex[strings.ToLower(name)]
	return cmd, ok
}
