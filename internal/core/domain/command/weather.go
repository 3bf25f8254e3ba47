package command

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"tempest/internal/core/domain"
	"tempest/internal/core/port"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	textmessage "golang.org/x/text/message"
)

var englishPrinter = textmessage.NewPrinter(language.English)

const (
	clockLayout = "03:04 PM"
	dateLayout  = "Jan 02, 2006, 03:04:05 PM (UTC-07:00)"
)

type Weather struct {
	provider port.WeatherProvider
	sender   port.ReplySender
	now      func() time.Time
}

func NewWeather(provider port.WeatherProvider, sender port.ReplySender) *Weather {
	return &Weather{provider: provider, sender: sender, now: time.Now}
}

func (w *Weather) Name() string              { return "weather" }
func (w *Weather) Aliases() []string         { return nil }
func (w *Weather) Category() domain.Category { return domain.Utility }
func (w *Weather) Description() string       { return "Sends the weather in the specified location" }
func (w *Weather) Usages() [][]string        { return [][]string{{"location"}} }

func (w *Weather) Invoke(ctx context.Context, message *domain.Message, args []string) error {
	if len(args) == 0 {
		return domain.ErrNoArguments
	}

	location := strings.Join(args, " ")

	report, err := w.provider.GetByCity(ctx, location)
	if err != nil {
		if !errors.Is(err, domain.ErrLocationNotFound) {
			log.Warn().Err(err).Str("location", location).Msg("weather lookup failed")
		}
		return domain.ErrLocationNotFound
	}

	bot, err := w.sender.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch bot user: %w", err)
	}

	if _, err := w.sender.SendEmbed(ctx, message.ChannelID, renderWeather(report, bot, w.now())); err != nil {
		return fmt.Errorf("failed to send weather: %w", err)
	}

	return nil
}

func renderWeather(report *domain.WeatherReport, bot *domain.User, now time.Time) *domain.Embed {
	location := report.Name
	if report.Country != "" {
		location = fmt.Sprintf("%s, %s", report.Name, report.Country)
	}

	var fields []domain.EmbedField
	add := func(name, value string, inline bool) {
		fields = append(fields, domain.EmbedField{Name: name, Value: value, Inline: inline})
	}

	if report.Condition != "" {
		add("Condition", report.Condition, true)
	}

	add("Temperature", fmt.Sprintf("%d°C/%d°F",
		int(report.Temperature), int(domain.Fahrenheit(report.Temperature))), true)

	wind := fmt.Sprintf("%d m/s", int(math.Round(report.WindSpeed)))
	if direction, ok := domain.WindDirection(report.WindDegree); ok {
		wind += ", " + direction
	}
	add("Wind", wind, true)

	add("Humidity", fmt.Sprintf("%d%%", int(report.Humidity)), true)

	if report.Cloudiness != nil {
		add("Cloudiness", fmt.Sprintf("%d%%", *report.Cloudiness), true)
	}

	add("Pressure", englishPrinter.Sprintf("%d mbar", int(report.Pressure)), true)

	if report.UTCOffset != nil {
		zone := time.FixedZone("", *report.UTCOffset)

		if !report.Sunrise.IsZero() {
			add("Sunrise", report.Sunrise.In(zone).Format(clockLayout), true)
		}
		if !report.Sunset.IsZero() {
			add("Sunset", report.Sunset.In(zone).Format(clockLayout), true)
		}

		add("Current Date", now.In(zone).Format(dateLayout), false)
	}

	return &domain.Embed{
		Author:     location,
		AuthorIcon: bot.AvatarURL,
		AuthorURL:  fmt.Sprintf("https://openweathermap.org/city/%d", report.ID),
		Color:      domain.SuccessColor,
		Fields:     fields,
		Footer:     "Provided by OpenWeather",
	}
}
