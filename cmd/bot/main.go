package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"etcgBot/internal/app/events"
	"etcgBot/internal/domain"
	"etcgBot/internal/infrastructure/config"
	"etcgBot/internal/infrastructure/logging"
	telegramadapter "etcgBot/internal/interface/adapters/telegram"
	twitchadapter "etcgBot/internal/interface/adapters/twitch"
	"etcgBot/internal/interface/api/ws"
	"etcgBot/internal/interface/outs"
	"etcgBot/internal/usecase/commands"
	"etcgBot/internal/usecase/handle_message"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	c, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, c.LogLevel, c.LogFormat)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	logger.Info("Iniciando ETCGBot...")

	// ---------- 1) Comandos, plantillas y política ----------

	keywords := commands.Keywords{
		Help:     c.HelpCommand,
		Primary:  c.PrimaryCommand,
		Farewell: c.FarewellCommand,
	}
	catalog := commands.BuiltinCommandCatalog(keywords)

	templates, err := commands.TemplateSetByName(c.TemplateSet)
	if err != nil {
		return err
	}
	if err := templates.Validate(); err != nil {
		return err
	}

	allowlist, err := c.Allowlist()
	if err != nil {
		return err
	}
	policy := commands.NewAuthorizationPolicy(c.RequireAuthorization, allowlist)
	if !policy.RequiresAuthorization() {
		logger.Warn("REQUIRE_AUTHORIZATION=false: cualquiera puede sacar al bot del chat")
	}

	router := commands.NewRouter(commands.HelpText(c.CommandPrefix, catalog), templates, policy)
	parser := commands.NewParser(c.CommandPrefix, catalog)

	// ---------- 2) Adapters de plataforma ----------

	creds := config.NewPromptCredentials(c.TelegramToken, os.Stdin, logger)
	token, err := creds.TelegramToken(ctx)
	if err != nil {
		return err
	}

	telegramAd, err := telegramadapter.NewAdapter(telegramadapter.Config{
		Token:        token,
		MenuCommands: telegramadapter.MenuCommands(catalog),
	}, logger)
	if err != nil {
		return err
	}

	multiOut := outs.NewMultiSender()
	multiOut.Register(domain.PlatformTelegram, telegramAd)

	twitchCfg := twitchadapter.Config{
		Username:   c.TwitchUsername,
		OAuthToken: c.TwitchToken,
		Channels:   c.TwitchChannels(),
	}
	var twitchAd *twitchadapter.Adapter
	if twitchCfg.Enabled() {
		twitchAd = twitchadapter.NewAdapter(twitchCfg, logger)
		multiOut.Register(domain.PlatformTwitch, twitchAd)
	}

	// ---------- 3) Caso de uso ----------

	bus := events.NewBus(logger)
	defer bus.Close()

	uc := handle_message.NewInteractor(parser, router, commands.NewExecutor(multiOut), bus, logger)

	telegramAd.SetHandler(uc.Handle)
	if twitchAd != nil {
		twitchAd.SetHandler(uc.Handle)
	}

	// ---------- 4) Arranque ----------

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return telegramAd.Start(gctx)
	})

	if twitchAd != nil {
		g.Go(func() error {
			// sin conexión IRC las respuestas a Twitch fallan con ErrUnknownPlatform
			defer multiOut.Unregister(domain.PlatformTwitch)
			return twitchAd.Start(gctx)
		})
	}

	if c.EventsAddr != "" {
		feed := ws.NewServer(ws.Config{Addr: c.EventsAddr}, bus, logger)
		g.Go(func() error {
			return feed.Start(gctx)
		})
	}

	err = g.Wait()

	logger.Info("Bot apagado.")
	return err
}
