package domain

import "errors"

var (
	ErrUnknownPlatform   = errors.New("plataforma sin sender registrado")
	ErrDispatch          = errors.New("fallo al despachar acción")
	ErrInvalidTemplate   = errors.New("plantilla inválida")
	ErrMissingCredential = errors.New("credencial no configurada")
	ErrInvalidChatID     = errors.New("chat id inválido")
	ErrNotConnected      = errors.New("adapter no conectado")
)
