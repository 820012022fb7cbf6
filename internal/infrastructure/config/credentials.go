package config

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"etcgBot/internal/domain"
)

// CredentialProvider entrega el token del bot de Telegram.
type CredentialProvider interface {
	TelegramToken(ctx context.Context) (string, error)
}

// PromptCredentials usa el token del entorno y, si falta, lo pide por la entrada estándar.
type PromptCredentials struct {
	in  io.Reader
	log *slog.Logger

	mu    sync.Mutex
	token string
}

func NewPromptCredentials(token string, in io.Reader, log *slog.Logger) *PromptCredentials {
	if log == nil {
		log = slog.Default()
	}
	return &PromptCredentials{
		in:    in,
		log:   log,
		token: strings.TrimSpace(token),
	}
}

// TelegramToken se corta si ctx se cancela mientras espera la entrada.
func (p *PromptCredentials) TelegramToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" {
		return p.token, nil
	}
	if p.in == nil {
		return "", fmt.Errorf("TELEGRAM_BOT_TOKEN: %w", domain.ErrMissingCredential)
	}

	p.log.Warn("No se encontró TELEGRAM_BOT_TOKEN, ingresalo aquí:")

	line, err := p.readLine(ctx)
	if err != nil {
		return "", err
	}

	token := strings.TrimSpace(line)
	if token == "" {
		return "", fmt.Errorf("TELEGRAM_BOT_TOKEN: %w", domain.ErrMissingCredential)
	}

	p.token = token
	p.log.Info("Token recibido, continuando el arranque...")
	return token, nil
}

type readResult struct {
	line string
	err  error
}

// readLine lee en otra goroutine: una lectura de stdin no se puede interrumpir.
func (p *PromptCredentials) readLine(ctx context.Context) (string, error) {
	done := make(chan readResult, 1)
	go func() {
		line, err := bufio.NewReader(p.in).ReadString('\n')
		done <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("leer token: %w", ctx.Err())
	case res := <-done:
		if res.err != nil && !errors.Is(res.err, io.EOF) {
			return "", fmt.Errorf("leer token: %w", res.err)
		}
		return res.line, nil
	}
}

var _ CredentialProvider = (*PromptCredentials)(nil)
