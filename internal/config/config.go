package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var (
	ErrMissingToken  = errors.New("discord token is not set")
	ErrInvalidToken  = errors.New("discord token is malformed")
	ErrMissingAPIKey = errors.New("weather api key is not set")
	ErrInvalidPrefix = errors.New("command prefix must not be empty or contain spaces")
)

type Config struct {
	Bot      BotConfig      `mapstructure:"bot"`
	Discord  DiscordConfig  `mapstructure:"discord"`
	Weather  WeatherConfig  `mapstructure:"weather"`
	Shutdown ShutdownConfig `mapstructure:"shutdown"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

type BotConfig struct {
	Prefix     string `mapstructure:"prefix"`
	LogLevel   string `mapstructure:"log_level"`
	PrettyLogs bool   `mapstructure:"pretty_logs"`
}

type DiscordConfig struct {
	Token string `mapstructure:"token"`
}

type WeatherConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	APIKey   string        `mapstructure:"api_key"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type ShutdownConfig struct {
	ConfirmationTimeout time.Duration `mapstructure:"confirmation_timeout"`
}

// MetricsConfig holds the listen address of the metrics endpoint. Empty disables it.
type MetricsConfig struct {
	Listen string `mapstructure:"listen"`
}

// New returns a viper instance with every default set and the secrets bound to the environment.
func New() *viper.Viper {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	v.SetDefault("bot.prefix", "<")
	v.SetDefault("bot.log_level", "info")
	v.SetDefault("bot.pretty_logs", false)
	v.SetDefault("discord.token", "")
	v.SetDefault("weather.endpoint", "https://api.openweathermap.org/data/2.5/weather")
	v.SetDefault("weather.api_key", "")
	v.SetDefault("weather.timeout", "10s")
	v.SetDefault("shutdown.confirmation_timeout", "60s")
	v.SetDefault("metrics.listen", "")

	_ = v.BindEnv("discord.token", "DISCORD_TOKEN")
	_ = v.BindEnv("weather.api_key", "WEATHER_API_KEY")

	return v
}

// Load reads dir/.env and dir/config.toml into v and decodes the result. Both files are optional.
func Load(v *viper.Viper, dir string) (*Config, error) {
	envFile := filepath.Join(dir, ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not read %s: %w", envFile, err)
	}

	v.AddConfigPath(dir)

	log.Info().Str("dir", dir).Msg("reading config file...")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
		log.Info().Msg("no config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not decode config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return ErrMissingToken
	}

	if _, err := ApplicationIDFromToken(c.Discord.Token); err != nil {
		return err
	}

	if c.Weather.APIKey == "" {
		return ErrMissingAPIKey
	}

	if c.Bot.Prefix == "" || strings.ContainsAny(c.Bot.Prefix, " \t\n") {
		return ErrInvalidPrefix
	}

	if c.Weather.Timeout <= 0 {
		return fmt.Errorf("weather.timeout must be positive, got %s", c.Weather.Timeout)
	}

	if c.Shutdown.ConfirmationTimeout <= 0 {
		return fmt.Errorf("shutdown.confirmation_timeout must be positive, got %s", c.Shutdown.ConfirmationTimeout)
	}

	return nil
}

// ApplicationIDFromToken decodes the application id carried in the first segment of a bot token.
func ApplicationIDFromToken(token string) (string, error) {
	segment, _, found := strings.Cut(token, ".")
	if !found || segment == "" {
		return "", ErrInvalidToken
	}

	segment = strings.TrimRight(segment, "=")

	decoded, err := base64.RawStdEncoding.DecodeString(segment)
	if err != nil {
		decoded, err = base64.RawURLEncoding.DecodeString(segment)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
		}
	}

	id := string(decoded)
	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return "", fmt.Errorf("%w: application id %q is not numeric", ErrInvalidToken, id)
	}

	return id, nil
}
