package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"etcgBot/internal/domain"
)

var configKeys = []string{
	"TELEGRAM_BOT_TOKEN", "TWITCH_BOT_USERNAME", "TWITCH_BOT_ACCESS_TOKEN", "TWITCH_BOT_CHANNELS",
	"ALLOWLISTED_IDS", "TWITCH_ALLOWLISTED_IDS", "REQUIRE_AUTHORIZATION", "TEMPLATE_SET", "COMMAND_PREFIX",
	"HELP_COMMAND", "PRIMARY_COMMAND", "FAREWELL_COMMAND", "LOG_LEVEL", "LOG_FORMAT", "EVENTS_ADDR",
}

func unsetConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadFromEnviron_Defaults(t *testing.T) {
	req := require.New(t)
	unsetConfigEnv(t)

	cfg, err := LoadFromEnviron()
	req.NoError(err)

	req.Empty(cfg.TelegramToken)
	req.True(cfg.RequireAuthorization)
	req.Equal("application", cfg.TemplateSet)
	req.Equal("/", cfg.CommandPrefix)
	req.Equal("help", cfg.HelpCommand)
	req.Equal("etcg", cfg.PrimaryCommand)
	req.Equal("goodbye", cfg.FarewellCommand)
	req.Equal("info", cfg.LogLevel)
	req.Equal("text", cfg.LogFormat)
	req.Empty(cfg.EventsAddr)
	req.Empty(cfg.TwitchChannels())

	allowlist, err := cfg.Allowlist()
	req.NoError(err)
	req.Equal([]int64{709158714}, allowlist[domain.PlatformTelegram])
	req.Empty(allowlist[domain.PlatformTwitch])
}

func TestLoadFromEnviron(t *testing.T) {
	req := require.New(t)
	unsetConfigEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("ALLOWLISTED_IDS", "709158714, 42")
	t.Setenv("TWITCH_ALLOWLISTED_IDS", "555")
	t.Setenv("REQUIRE_AUTHORIZATION", "false")
	t.Setenv("TEMPLATE_SET", "Confirmation")
	t.Setenv("TWITCH_BOT_CHANNELS", "#ETCG, other,,etcg")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("EVENTS_ADDR", ":8089")

	cfg, err := LoadFromEnviron()
	req.NoError(err)

	req.Equal("123:abc", cfg.TelegramToken)
	req.False(cfg.RequireAuthorization)
	req.Equal("confirmation", cfg.TemplateSet)
	req.Equal("debug", cfg.LogLevel)
	req.Equal("/", cfg.CommandPrefix)
	req.Equal("etcg", cfg.PrimaryCommand)
	req.Equal([]string{"etcg", "other"}, cfg.TwitchChannels())

	allowlist, err := cfg.Allowlist()
	req.NoError(err)
	req.Equal([]int64{709158714, 42}, allowlist[domain.PlatformTelegram])
	req.Equal([]int64{555}, allowlist[domain.PlatformTwitch])
}

func TestLoadFromEnviron_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad id", "ALLOWLISTED_IDS", "709158714,abc"},
		{"bad twitch id", "TWITCH_ALLOWLISTED_IDS", "jan_k"},
		{"unknown template set", "TEMPLATE_SET", "legacy"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
		{"command with slash", "PRIMARY_COMMAND", "/etcg"},
		{"bad events addr", "EVENTS_ADDR", "not an addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetConfigEnv(t)
			t.Setenv(tt.key, tt.val)
			_, err := LoadFromEnviron()
			require.Error(t, err)
		})
	}
}
