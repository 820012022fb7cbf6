package commands

import (
	"fmt"
	"strings"

	"etcgBot/internal/domain"
	"etcgBot/internal/usecase/markup"
)

// SenderPlaceholder se reemplaza por el nombre del remitente ya escapado.
const SenderPlaceholder = "{sender}"

const (
	TemplateSetApplication  = "application"
	TemplateSetConfirmation = "confirmation"
)

const (
	signUpFormURL = "https://docs.google.com/forms/d/e/1FAIpQLSdZFf_fOO7uaA8JKeDUwPCRo4e-S-RnPklU_syOGXCMPll9xA/viewform"
	repositoryURL = "https://github.com/o1oo11oo/ETCGBot"
)

const footer = `_This message was sent after actions made by ` + SenderPlaceholder +
	`\. If you receive it by a mistake, please submit a pull request [on GitHub](` + repositoryURL + `)\._`

const (
	farewellText = `Time to leave again\.` + "\n\n" +
		`Thank you everyone for using the ETCGBot, and have fun with the *ESTIEM Trading Card Game*\!` + "\n\n" +
		footer

	unauthorizedText = `Sorry, you are not allowed to use this command\!` + "\n\n" + footer
)

// TemplateSet agrupa las plantillas MarkdownV2 activas en un despliegue.
// Cada plantilla lleva exactamente un SenderPlaceholder.
type TemplateSet struct {
	Name         string
	Primary      string
	Farewell     string
	Unauthorized string
}

var builtinTemplateSets = map[string]TemplateSet{
	TemplateSetApplication: {
		Name: TemplateSetApplication,
		Primary: `Do you want to order your very own cards for the *ESTIEM Trading Card Game*? ` +
			`Then sign up by using [this form](` + signUpFormURL + `)\!` + "\n\n" +
			`If you have any questions, feel free to bother @erikviktor here or personally at CM\.` + "\n\n" +
			footer,
		Farewell:     farewellText,
		Unauthorized: unauthorizedText,
	},
	TemplateSetConfirmation: {
		Name: TemplateSetConfirmation,
		Primary: `Your order for the *ESTIEM Trading Card Game* has been noted\! ` +
			`You can still review it using [this form](` + signUpFormURL + `)\.` + "\n\n" +
			`Cards will be handed out at CM, ask @erikviktor if anything is missing\.` + "\n\n" +
			footer,
		Farewell:     farewellText,
		Unauthorized: unauthorizedText,
	},
}

// TemplateSetByName devuelve uno de los sets incluidos.
func TemplateSetByName(name string) (TemplateSet, error) {
	set, ok := builtinTemplateSets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return TemplateSet{}, fmt.Errorf("%w: set %q desconocido", domain.ErrInvalidTemplate, name)
	}
	return set, nil
}

func (t TemplateSet) Validate() error {
	fields := map[string]string{
		"primary":      t.Primary,
		"farewell":     t.Farewell,
		"unauthorized": t.Unauthorized,
	}
	for field, tpl := range fields {
		if n := strings.Count(tpl, SenderPlaceholder); n != 1 {
			return fmt.Errorf("%w: %s/%s tiene %d marcadores %s", domain.ErrInvalidTemplate, t.Name, field, n, SenderPlaceholder)
		}
	}
	return nil
}

// Render sustituye el marcador escapando el nombre para MarkdownV2.
func Render(tpl, displayName string) string {
	return strings.Replace(tpl, SenderPlaceholder, markup.EscapeMarkdownV2(displayName), 1)
}
