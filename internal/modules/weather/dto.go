package weather

// Forecast mirrors the subset of the open-meteo response the frontend
// consumes: one weathercode per day.
type Forecast struct {
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Timezone  string        `json:"timezone"`
	Daily     DailyForecast `json:"daily"`
}

type DailyForecast struct {
	Time        []string `json:"time"`
	WeatherCode []int    `json:"weathercode"`
}
