package domain

type Platform string

const (
	PlatformTelegram Platform = "telegram"
	PlatformTwitch   Platform = "twitch"
)

// Sender son los datos de identidad que la plataforma adjunta al mensaje.
type Sender struct {
	ID        int64
	FirstName string
	LastName  string
}

type Message struct {
	Platform Platform
	ChatID   string
	Text     string

	// usuario del bot que recibió el mensaje; se compara con el sufijo @nombre de los comandos
	BotUsername string

	// nil cuando la plataforma no envía remitente (p. ej. posts de canal)
	Sender *Sender
}

// SenderInfo es el remitente ya resuelto para construir respuestas.
// El ID sólo tiene sentido junto con la plataforma de la que viene.
type SenderInfo struct {
	Platform    Platform
	DisplayName string
	ID          *int64
}
