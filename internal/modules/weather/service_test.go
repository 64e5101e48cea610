package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForecastProxiesUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "weathercode", r.URL.Query().Get("daily"))
		assert.Equal(t, "Europe/Rome", r.URL.Query().Get("timezone"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"latitude": 43.716,
			"longitude": 13.217,
			"timezone": "Europe/Rome",
			"daily": {"time": ["2025-06-02", "2025-06-03"], "weathercode": [3, 61]}
		}`))
	}))
	defer upstream.Close()

	service := NewService(43.716, 13.217, "Europe/Rome", WithBaseURL(upstream.URL))

	forecast := service.Forecast(context.Background())
	require.NotNil(t, forecast)
	assert.Equal(t, []string{"2025-06-02", "2025-06-03"}, forecast.Daily.Time)
	assert.Equal(t, []int{3, 61}, forecast.Daily.WeatherCode)
}

func TestForecastDegradesOnUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	service := NewService(43.716, 13.217, "Europe/Rome", WithBaseURL(upstream.URL))

	forecast := service.Forecast(context.Background())
	require.NotNil(t, forecast)
	assert.Empty(t, forecast.Daily.Time)
	assert.Empty(t, forecast.Daily.WeatherCode)
	assert.Equal(t, "Europe/Rome", forecast.Timezone)
}

func TestForecastDegradesOnUnreachableUpstream(t *testing.T) {
	service := NewService(43.716, 13.217, "Europe/Rome",
		WithBaseURL("http://127.0.0.1:1/forecast"))

	forecast := service.Forecast(context.Background())
	require.NotNil(t, forecast)
	assert.Empty(t, forecast.Daily.Time)
}
