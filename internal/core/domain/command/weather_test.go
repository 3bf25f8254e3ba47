package command

import (
	"context"
	"errors"
	"tempest/internal/core/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWeatherProvider struct {
	mock.Mock
}

func (m *MockWeatherProvider) GetByCity(ctx context.Context, city string) (*domain.WeatherReport, error) {
	args := m.Called(ctx, city)
	report, _ := args.Get(0).(*domain.WeatherReport)
	return report, args.Error(1)
}

func intPtr(v int) *int { return &v }

func berlinReport() *domain.WeatherReport {
	return &domain.WeatherReport{
		ID:          2950159,
		Name:        "Berlin",
		Country:     "DE",
		Condition:   "Clear",
		Temperature: 21.7,
		Humidity:    48,
		Pressure:    1013,
		WindSpeed:   3.6,
		WindDegree:  250,
		Cloudiness:  intPtr(0),
		Sunrise:     time.Unix(1717124400, 0),
		Sunset:      time.Unix(1717183800, 0),
		UTCOffset:   intPtr(7200),
	}
}

func TestWeather_Invoke(t *testing.T) {
	provider := new(MockWeatherProvider)
	sender := new(MockSender)
	msg := guildMessage("<weather new york")

	weather := NewWeather(provider, sender)
	weather.now = func() time.Time { return time.Unix(1717156800, 0) }

	var sent *domain.Embed
	provider.On("GetByCity", mock.Anything, "new york").Return(berlinReport(), nil)
	sender.On("CurrentUser", mock.Anything).Return(botUser, nil)
	sender.On("SendEmbed", mock.Anything, msg.ChannelID, mock.AnythingOfType("*domain.Embed")).
		Run(func(args mock.Arguments) { sent = args.Get(2).(*domain.Embed) }).
		Return(&domain.SentMessage{ID: "2", ChannelID: msg.ChannelID}, nil)

	err := weather.Invoke(t.Context(), msg, []string{"new", "york"})

	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, "Berlin, DE", sent.Author)
	provider.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestWeather_Errors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		providerErr error
		want        error
	}{
		{name: "no arguments", args: nil, want: domain.ErrNoArguments},
		{name: "unknown location", args: []string{"atlantis"}, providerErr: domain.ErrLocationNotFound, want: domain.ErrLocationNotFound},
		{name: "provider outage", args: []string{"berlin"}, providerErr: errors.New("status 500"), want: domain.ErrLocationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := new(MockWeatherProvider)
			sender := new(MockSender)
			if tt.providerErr != nil {
				provider.On("GetByCity", mock.Anything, mock.Anything).Return(nil, tt.providerErr)
			}

			err := NewWeather(provider, sender).Invoke(t.Context(), guildMessage("<weather"), tt.args)

			require.ErrorIs(t, err, tt.want)
			sender.AssertNotCalled(t, "SendEmbed", mock.Anything, mock.Anything, mock.Anything)
			if tt.args == nil {
				provider.AssertNotCalled(t, "GetByCity", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestRenderWeather(t *testing.T) {
	now := time.Unix(1717156800, 0)

	embed := renderWeather(berlinReport(), botUser, now)

	assert.Equal(t, "Berlin, DE", embed.Author)
	assert.Equal(t, botUser.AvatarURL, embed.AuthorIcon)
	assert.Equal(t, "https://openweathermap.org/city/2950159", embed.AuthorURL)
	assert.Equal(t, "Provided by OpenWeather", embed.Footer)
	assert.Equal(t, domain.SuccessColor, embed.Color)
	assert.Equal(t, []domain.EmbedField{
		{Name: "Condition", Value: "Clear", Inline: true},
		{Name: "Temperature", Value: "21°C/71°F", Inline: true},
		{Name: "Wind", Value: "4 m/s, Southwest", Inline: true},
		{Name: "Humidity", Value: "48%", Inline: true},
		{Name: "Cloudiness", Value: "0%", Inline: true},
		{Name: "Pressure", Value: "1,013 mbar", Inline: true},
		{Name: "Sunrise", Value: "05:00 AM", Inline: true},
		{Name: "Sunset", Value: "09:30 PM", Inline: true},
		{Name: "Current Date", Value: "May 31, 2024, 02:00:00 PM (UTC+02:00)", Inline: false},
	}, embed.Fields)
}

func TestRenderWeather_PartialReport(t *testing.T) {
	report := &domain.WeatherReport{
		ID:          1,
		Name:        "Nowhere",
		Temperature: -3.5,
		Humidity:    90,
		Pressure:    998,
		WindSpeed:   0.2,
		WindDegree:  400,
	}

	embed := renderWeather(report, botUser, time.Now())

	assert.Equal(t, "Nowhere", embed.Author)
	assert.Equal(t, []domain.EmbedField{
		{Name: "Temperature", Value: "-3°C/25°F", Inline: true},
		{Name: "Wind", Value: "0 m/s", Inline: true},
		{Name: "Humidity", Value: "90%", Inline: true},
		{Name: "Pressure", Value: "998 mbar", Inline: true},
	}, embed.Fields)
}
