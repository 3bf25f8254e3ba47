package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"tempest/internal/adapters/handler"
	"tempest/internal/adapters/metrics"
	"tempest/internal/adapters/sender"
	"tempest/internal/adapters/weather"
	"tempest/internal/config"
	"tempest/internal/core/domain/command"
	"tempest/internal/core/port"
	"tempest/internal/core/service"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var startedAt = time.Now()

var root = &cobra.Command{
	Use:          "tempest",
	Short:        "Discord bot answering prefixed commands in guild channels",
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	root.PersistentFlags().StringP("config", "c", ".", "directory holding config.toml and .env")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error), overrides bot.log_level")
}

func main() {
	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("tempest stopped")
	}
}

func run(cmd *cobra.Command, _ []string) error {
	log.Info().Msg("starting tempest...")

	v := config.New()
	if err := v.BindPFlag("bot.log_level", cmd.Flags().Lookup("log-level")); err != nil {
		return fmt.Errorf("could not bind log level flag: %w", err)
	}

	dir, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	cfg, err := config.Load(v, dir)
	if err != nil {
		return err
	}

	setupLogging(cfg.Bot.LogLevel, cfg.Bot.PrettyLogs)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	appID, _ := config.ApplicationIDFromToken(cfg.Discord.Token)
	log.Info().Str("applicationId", appID).Msg("config loaded")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return fmt.Errorf("failed initializing discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsMessageContent

	s := sender.NewDiscordSender(session)

	var recorder port.Metrics
	if cfg.Metrics.Listen != "" {
		p := metrics.NewPrometheus()
		recorder = p

		go func() {
			if err := p.Serve(ctx, cfg.Metrics.Listen); err != nil {
				log.Error().Err(err).Msg("metrics server failed")
			}
		}()
	}

	prefix := cfg.Bot.Prefix
	commandRegistry := &command.Registry{}

	for _, c := range []port.Command{
		command.NewShutdown(s, s, cancel, cfg.Shutdown.ConfirmationTimeout),
		command.NewHelp(commandRegistry, s, prefix),
		command.NewPing(s),
		command.NewUptime(s, startedAt),
		command.NewWeather(weather.NewOpenWeather(cfg.Weather.Endpoint, cfg.Weather.APIKey, cfg.Weather.Timeout), s),
	} {
		if err := commandRegistry.Register(c); err != nil {
			return fmt.Errorf("failed registering command: %w", err)
		}
	}

	authorizer := service.NewOwnerAuthorizer(s)
	dispatcher := service.NewDispatcher(commandRegistry, authorizer, s, recorder, prefix)
	discordHandler := handler.NewDiscord(ctx, dispatcher, authorizer, prefix)

	session.AddHandler(discordHandler.OnMessageCreate)
	session.AddHandler(discordHandler.OnReady)

	if err := session.Open(); err != nil {
		return fmt.Errorf("failed connecting to discord: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Warn().Err(err).Msg("failed closing discord session")
		}
	}()

	log.Info().Str("prefix", prefix).Msg("bot listening")
	<-ctx.Done()
	log.Info().Msg("shutting down")

	return nil
}

func setupLogging(level string, pretty bool) {
	var logLevel zerolog.Level

	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
