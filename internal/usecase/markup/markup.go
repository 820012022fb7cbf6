// Package markup escapa y aplana texto en formato MarkdownV2 de Telegram.
package markup

import "strings"

// Caracteres reservados de MarkdownV2 fuera de entidades pre/code.
const reservedChars = "\\_*[]()~`>#+-=|{}.!"

// Marcadores sin equivalente en texto plano.
const emphasisChars = "*_~|`"

var escaper = newEscaper()

func newEscaper() *strings.Replacer {
	pairs := make([]string, 0, 2*len(reservedChars))
	for _, r := range reservedChars {
		pairs = append(pairs, string(r), `\`+string(r))
	}
	return strings.NewReplacer(pairs...)
}

// EscapeMarkdownV2 escapa texto libre para interpolarlo en una plantilla MarkdownV2.
func EscapeMarkdownV2(s string) string {
	return escaper.Replace(s)
}

// PlainText convierte MarkdownV2 en texto plano para plataformas sin formato.
// Los enlaces quedan como "texto (url)".
func PlainText(s string) string {
	runes := []rune(s)

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\' && i+1 < len(runes):
			i++
			b.WriteRune(runes[i])
		case r == '[':
			label, url, next, ok := parseLink(runes, i)
			if !ok {
				b.WriteRune(r)
				continue
			}
			b.WriteString(PlainText(label))
			b.WriteString(" (")
			b.WriteString(unescape(url))
			b.WriteString(")")
			i = next - 1
		case strings.ContainsRune(emphasisChars, r):
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

func parseLink(runes []rune, start int) (label, url string, next int, ok bool) {
	end := closing(runes, start+1, ']')
	if end < 0 || end+1 >= len(runes) || runes[end+1] != '(' {
		return "", "", 0, false
	}
	urlEnd := closing(runes, end+2, ')')
	if urlEnd < 0 {
		return "", "", 0, false
	}
	return string(runes[start+1 : end]), string(runes[end+2 : urlEnd]), urlEnd + 1, true
}

func closing(runes []rune, from int, want rune) int {
	for i := from; i < len(runes); i++ {
		switch runes[i] {
		case '\\':
			i++
		case want:
			return i
		}
	}
	return -1
}

func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	runes := []rune(s)
	var b strings.Builder
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' && i+1 < len(runes) {
			i++
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}
