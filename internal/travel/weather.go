// README: OpenWeatherMap client for current conditions.
package travel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

// WeatherService handles interactions with the OpenWeatherMap API.
// With an empty API key it serves canned data, so the rest of the service
// keeps working in development and tests.
type WeatherService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewWeatherService creates a WeatherService with the given API key.
// baseURL overrides the production endpoint; pass "" for the default.
func NewWeatherService(apiKey, baseURL string) *WeatherService {
	if baseURL == "" {
		baseURL = defaultWeatherBaseURL
	}
	return &WeatherService{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type owmResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// CurrentWeather fetches current conditions for a location. Without an API
// key it returns plausible placeholder data rather than an error.
func (s *WeatherService) CurrentWeather(ctx context.Context, location string) (*WeatherData, error) {
	if s.apiKey == "" {
		return &WeatherData{
			Location:    location,
			Temperature: 22.0,
			Condition:   "Clouds",
			Description: "partly cloudy",
			Humidity:    65,
			WindSpeed:   3.5,
		}, nil
	}

	q := url.Values{}
	q.Set("q", location)
	q.Set("appid", s.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/weather?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("weather request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather api: status %d for %q", resp.StatusCode, location)
	}

	var body owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("weather decode: %w", err)
	}

	data := &WeatherData{
		Location:    body.Name,
		Temperature: body.Main.Temp,
		Humidity:    body.Main.Humidity,
		WindSpeed:   body.Wind.Speed,
	}
	if len(body.Weather) > 0 {
		data.Condition = body.Weather[0].Main
		data.Description = body.Weather[0].Description
	}
	return data, nil
}
