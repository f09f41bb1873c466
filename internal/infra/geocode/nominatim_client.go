// Package geocode implements the Geocoder domain service against a
// Nominatim-compatible HTTP endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"prwatch/config"
	"prwatch/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// nominatimClient queries the Nominatim search API for postcode localities.
type nominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// nominatimPlace mirrors one element of the provider's search response.
// Nominatim serializes lat/lon and importance-adjacent numerics as strings
// in places; the conversion to domain floats happens here and nowhere else.
type nominatimPlace struct {
	PlaceID     int64             `json:"place_id"`
	Lat         string            `json:"lat"`
	Lon         string            `json:"lon"`
	DisplayName string            `json:"display_name"`
	Class       string            `json:"class"`
	Importance  float64           `json:"importance"`
	Address     *nominatimAddress `json:"address,omitempty"`
}

// nominatimAddress is the optional structured breakdown of a place. Every
// field may be absent; absent fields decode to empty strings, which is the
// default the domain stores.
type nominatimAddress struct {
	County        string `json:"county"`
	City          string `json:"city"`
	Country       string `json:"country"`
	CountryCode   string `json:"country_code"`
	Postcode      string `json:"postcode"`
	StateDistrict string `json:"state_district"`
	State         string `json:"state"`
	Suburb        string `json:"suburb"`
}

// NewNominatimClient is the constructor for nominatimClient.
func NewNominatimClient(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	baseURL := defaultBaseURL
	userAgent := "prwatch"
	timeout := 10 * time.Second
	if cfg != nil && cfg.Geocoding != nil {
		if cfg.Geocoding.BaseURL != "" {
			baseURL = cfg.Geocoding.BaseURL
		}
		if cfg.Geocoding.UserAgent != "" {
			userAgent = cfg.Geocoding.UserAgent
		}
		if cfg.Geocoding.Timeout > 0 {
			timeout = cfg.Geocoding.Timeout
		}
	}

	return &nominatimClient{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Search queries /search with a postcode restricted to one country and the
// full address breakdown requested. The first match wins; an empty result
// slice is ErrNoGeocodeMatch.
func (c *nominatimClient) Search(ctx context.Context, postcode, countryCode string) (*service.GeocodeResult, error) {
	query := url.Values{}
	query.Set("postalcode", postcode)
	query.Set("countrycodes", countryCode)
	query.Set("format", "json")
	query.Set("addressdetails", "1")
	query.Set("limit", "1")

	endpoint := c.baseURL + "/search?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build geocoding request")
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "geocoding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return nil, errors.Errorf("geocoding provider returned status %d: %s", resp.StatusCode, string(body))
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, errors.Wrap(err, "failed to decode geocoding response")
	}
	if len(places) == 0 {
		return nil, service.ErrNoGeocodeMatch
	}

	result, err := toGeocodeResult(&places[0])
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Geocoding match",
		slog.String("postcode", postcode),
		slog.String("countryCode", countryCode),
		slog.Int64("placeID", result.PlaceID))

	return result, nil
}

// toGeocodeResult converts the wire shape into the domain's typed result.
func toGeocodeResult(place *nominatimPlace) (*service.GeocodeResult, error) {
	lat, err := strconv.ParseFloat(place.Lat, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "unparseable latitude %q", place.Lat)
	}
	lon, err := strconv.ParseFloat(place.Lon, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "unparseable longitude %q", place.Lon)
	}

	result := &service.GeocodeResult{
		PlaceID:     place.PlaceID,
		Lat:         lat,
		Lon:         lon,
		DisplayName: place.DisplayName,
		Class:       place.Class,
		Importance:  place.Importance,
	}
	if place.Address != nil {
		result.Address = &service.GeocodeAddress{
			County:        place.Address.County,
			City:          place.Address.City,
			Country:       place.Address.Country,
			CountryCode:   place.Address.CountryCode,
			Postcode:      place.Address.Postcode,
			StateDistrict: place.Address.StateDistrict,
			State:         place.Address.State,
			Suburb:        place.Address.Suburb,
		}
	}

	return result, nil
}
