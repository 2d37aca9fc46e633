// README: REST Countries client for country facts (no API key needed).
package travel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultCountriesBaseURL = "https://restcountries.com/v3.1"

// CountryService handles interactions with the REST Countries API.
type CountryService struct {
	baseURL string
	client  *http.Client
}

// NewCountryService creates a CountryService. baseURL overrides the
// production endpoint; pass "" for the default.
func NewCountryService(baseURL string) *CountryService {
	if baseURL == "" {
		baseURL = defaultCountriesBaseURL
	}
	return &CountryService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type restCountry struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Capital    []string `json:"capital"`
	Population int64    `json:"population"`
	Region     string   `json:"region"`
	Currencies map[string]struct {
		Name string `json:"name"`
	} `json:"currencies"`
	Languages map[string]string `json:"languages"`
}

// Lookup fetches facts for a country by name, fuzzy-matched by the API.
// Destinations that are cities rather than countries simply miss; callers
// treat a lookup failure as "no data", not a fatal error.
func (s *CountryService) Lookup(ctx context.Context, name string) (*CountryInfo, error) {
	endpoint := fmt.Sprintf("%s/name/%s?fields=name,capital,population,region,currencies,languages",
		s.baseURL, url.PathEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("country request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("country api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("country api: status %d for %q", resp.StatusCode, name)
	}

	var body []restCountry
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("country decode: %w", err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("country api: no match for %q", name)
	}

	c := body[0]
	info := &CountryInfo{
		Name:       c.Name.Common,
		Population: c.Population,
		Region:     c.Region,
	}
	if len(c.Capital) > 0 {
		info.Capital = c.Capital[0]
	}
	for _, cur := range c.Currencies {
		info.Currencies = append(info.Currencies, cur.Name)
	}
	for _, lang := range c.Languages {
		info.Languages = append(info.Languages, lang)
	}
	return info, nil
}
