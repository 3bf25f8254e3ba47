package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"tempest/internal/core/domain"
	"time"

	"github.com/rs/zerolog/log"
)

// OpenWeather queries the OpenWeather current weather API in metric units.
type OpenWeather struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewOpenWeather(endpoint, apiKey string, timeout time.Duration) *OpenWeather {
	return &OpenWeather{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

type currentWeatherResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Timezone *int   `json:"timezone"`
	Sys      *struct {
		Country string `json:"country"`
		Sunrise *int64 `json:"sunrise"`
		Sunset  *int64 `json:"sunset"`
	} `json:"sys"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
		Pressure float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Clouds struct {
		All *int `json:"all"`
	} `json:"clouds"`
}

func (o *OpenWeather) GetByCity(ctx context.Context, city string) (*domain.WeatherReport, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", o.apiKey)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating OpenWeather request: %w", err)
	}

	res, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error executing OpenWeather request: %w", err)
	}

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading OpenWeather response: %w", err)
	}

	switch {
	case res.StatusCode == http.StatusNotFound:
		return nil, domain.ErrLocationNotFound
	case res.StatusCode != http.StatusOK:
		log.Debug().Int("status", res.StatusCode).Bytes("body", body).Msg("OpenWeather error response")
		return nil, fmt.Errorf("OpenWeather returned status %d", res.StatusCode)
	}

	var result currentWeatherResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("error unmarshalling OpenWeather response: %w", err)
	}

	return result.toReport(), nil
}

func (r *currentWeatherResponse) toReport() *domain.WeatherReport {
	report := &domain.WeatherReport{
		ID:          r.ID,
		Name:        r.Name,
		Temperature: r.Main.Temp,
		Humidity:    r.Main.Humidity,
		Pressure:    r.Main.Pressure,
		WindSpeed:   r.Wind.Speed,
		WindDegree:  r.Wind.Deg,
		Cloudiness:  r.Clouds.All,
		UTCOffset:   r.Timezone,
	}

	if len(r.Weather) > 0 {
		report.Condition = r.Weather[0].Main
	}

	if r.Sys != nil {
		report.Country = r.Sys.Country
		if r.Sys.Sunrise != nil {
			report.Sunrise = time.Unix(*r.Sys.Sunrise, 0)
		}
		if r.Sys.Sunset != nil {
			report.Sunset = time.Unix(*r.Sys.Sunset, 0)
		}
	}

	return report
}
