// README: External travel-data types (weather, country facts).
package travel

// WeatherData is a simplified current-weather snapshot for a location.
type WeatherData struct {
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

// CountryInfo holds the country facts surfaced in cultural/practical replies.
type CountryInfo struct {
	Name       string   `json:"name"`
	Capital    string   `json:"capital"`
	Population int64    `json:"population"`
	Currencies []string `json:"currencies"`
	Languages  []string `json:"languages"`
	Region     string   `json:"region"`
}
