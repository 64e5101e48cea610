package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// Service proxies the open-meteo daily forecast for the facility's
// coordinates. Upstream trouble never surfaces to clients: the forecast
// is decoration, so failures degrade to an empty forecast.
type Service struct {
	client    *http.Client
	baseURL   string
	latitude  float64
	longitude float64
	timezone  string
}

type Option func(*Service)

func WithBaseURL(baseURL string) Option {
	return func(s *Service) { s.baseURL = baseURL }
}

func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) { s.client = client }
}

func NewService(latitude, longitude float64, timezone string, opts ...Option) *Service {
	s := &Service{
		client:    &http.Client{Timeout: 5 * time.Second},
		baseURL:   defaultBaseURL,
		latitude:  latitude,
		longitude: longitude,
		timezone:  timezone,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Forecast(ctx context.Context) *Forecast {
	forecast, err := s.fetch(ctx)
	if err != nil {
		log.Printf("weather_fetch_failed error=%q", err.Error())
		return emptyForecast(s.latitude, s.longitude, s.timezone)
	}
	return forecast
}

func (s *Service) fetch(ctx context.Context) (*Forecast, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.3f", s.latitude))
	q.Set("longitude", fmt.Sprintf("%.3f", s.longitude))
	q.Set("daily", "weathercode")
	q.Set("timezone", s.timezone)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream status %d", resp.StatusCode)
	}

	var forecast Forecast
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return nil, err
	}
	return &forecast, nil
}

func emptyForecast(latitude, longitude float64, timezone string) *Forecast {
	return &Forecast{
		Latitude:  latitude,
		Longitude: longitude,
		Timezone:  timezone,
		Daily: DailyForecast{
			Time:        []string{},
			WeatherCode: []int{},
		},
	}
}
