package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/samber/lo"

	"etcgBot/internal/domain"
)

type Config struct {
	TelegramToken string `env:"TELEGRAM_BOT_TOKEN"`

	TwitchUsername    string `env:"TWITCH_BOT_USERNAME"`
	TwitchToken       string `env:"TWITCH_BOT_ACCESS_TOKEN"`
	TwitchChannelsRaw string `env:"TWITCH_BOT_CHANNELS"`

	// ALLOWLISTED_IDS son usuarios de Telegram; Twitch tiene su propia lista
	AllowlistedIDsRaw       string `env:"ALLOWLISTED_IDS,default=709158714"`
	TwitchAllowlistedIDsRaw string `env:"TWITCH_ALLOWLISTED_IDS"`
	RequireAuthorization bool   `env:"REQUIRE_AUTHORIZATION,default=true"`
	TemplateSet          string `env:"TEMPLATE_SET,default=application" validate:"oneof=application confirmation"`

	CommandPrefix   string `env:"COMMAND_PREFIX,default=/" validate:"required,max=3"`
	HelpCommand     string `env:"HELP_COMMAND,default=help" validate:"required,printascii,excludesall=/@"`
	PrimaryCommand  string `env:"PRIMARY_COMMAND,default=etcg" validate:"required,printascii,excludesall=/@"`
	FarewellCommand string `env:"FAREWELL_COMMAND,default=goodbye" validate:"required,printascii,excludesall=/@"`

	LogLevel  string `env:"LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`
	LogFormat string `env:"LOG_FORMAT,default=text" validate:"oneof=text json"`

	// vacío = sin feed de eventos
	EventsAddr string `env:"EVENTS_ADDR" validate:"omitempty,hostname_port"`
}

var validate = validator.New()

// Load lee .env (si existe) y luego el entorno del proceso.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return LoadFromEnviron()
}

func LoadFromEnviron() (*Config, error) {
	cfg := &Config{}
	if _, err := env.UnmarshalFromEnviron(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	cfg.TemplateSet = strings.ToLower(strings.TrimSpace(cfg.TemplateSet))

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config inválida: %w", err)
	}

	if _, err := cfg.Allowlist(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// AllowlistedIDs parsea ALLOWLISTED_IDS (lista separada por comas).
func (c *Config) AllowlistedIDs() ([]int64, error) {
	return parseIDs("ALLOWLISTED_IDS", c.AllowlistedIDsRaw)
}

func (c *Config) TwitchAllowlistedIDs() ([]int64, error) {
	return parseIDs("TWITCH_ALLOWLISTED_IDS", c.TwitchAllowlistedIDsRaw)
}

// Allowlist agrupa las identidades permitidas por plataforma.
func (c *Config) Allowlist() (map[domain.Platform][]int64, error) {
	telegram, err := c.AllowlistedIDs()
	if err != nil {
		return nil, err
	}
	twitch, err := c.TwitchAllowlistedIDs()
	if err != nil {
		return nil, err
	}
	return map[domain.Platform][]int64{
		domain.PlatformTelegram: telegram,
		domain.PlatformTwitch:   twitch,
	}, nil
}

func parseIDs(key, raw string) ([]int64, error) {
	ids := make([]int64, 0)
	for _, item := range splitList(raw) {
		id, err := strconv.ParseInt(item, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("config: %s inválido %q: %w", key, item, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// TwitchChannels devuelve los canales sin '#' y en minúsculas, como los espera IRC.
func (c *Config) TwitchChannels() []string {
	return lo.Uniq(lo.Map(splitList(c.TwitchChannelsRaw), func(ch string, _ int) string {
		return strings.ToLower(strings.TrimPrefix(ch, "#"))
	}))
}

func splitList(raw string) []string {
	return lo.Compact(lo.Map(strings.Split(raw, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	}))
}
