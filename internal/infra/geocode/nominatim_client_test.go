package geocode

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"prwatch/config"
	"prwatch/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) service.Geocoder {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Geocoding: &config.GeocodingConfig{
			BaseURL:   server.URL,
			UserAgent: "prwatch-test",
			Timeout:   2 * time.Second,
		},
	}

	return NewNominatimClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNominatimClient_Search_FullResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "SW1A 1AA", r.URL.Query().Get("postalcode"))
		assert.Equal(t, "gb", r.URL.Query().Get("countrycodes"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("addressdetails"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "prwatch-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"place_id": 258411454,
			"lat": "51.50101",
			"lon": "-0.14158",
			"display_name": "SW1A 1AA, Westminster, London, England, United Kingdom",
			"class": "place",
			"importance": 0.61,
			"address": {
				"suburb": "Westminster",
				"city": "London",
				"state_district": "Greater London",
				"state": "England",
				"postcode": "SW1A 1AA",
				"country": "United Kingdom",
				"country_code": "gb"
			}
		}]`))
	})

	result, err := client.Search(context.Background(), "SW1A 1AA", "gb")

	require.NoError(t, err)
	assert.Equal(t, int64(258411454), result.PlaceID)
	assert.InDelta(t, 51.50101, result.Lat, 0.00001)
	assert.InDelta(t, -0.14158, result.Lon, 0.00001)
	assert.Equal(t, "place", result.Class)
	require.NotNil(t, result.Address)
	assert.Equal(t, "London", result.Address.City)
	assert.Equal(t, "Greater London", result.Address.StateDistrict)
	assert.Equal(t, "gb", result.Address.CountryCode)
}

func TestNominatimClient_Search_MissingAddressFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"place_id": 7,
			"lat": "48.85",
			"lon": "2.35",
			"display_name": "Paris, France",
			"address": {"city": "Paris"}
		}]`))
	})

	result, err := client.Search(context.Background(), "75001", "fr")

	require.NoError(t, err)
	require.NotNil(t, result.Address)
	assert.Equal(t, "Paris", result.Address.City)
	// Absent breakdown fields arrive as empty strings, never as errors.
	assert.Empty(t, result.Address.County)
	assert.Empty(t, result.Address.Suburb)
	assert.Empty(t, result.Address.State)
	assert.Empty(t, result.Address.Postcode)
}

func TestNominatimClient_Search_NoBreakdown(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"place_id": 9, "lat": "1.0", "lon": "2.0", "display_name": "Somewhere"}]`))
	})

	result, err := client.Search(context.Background(), "12345", "us")

	require.NoError(t, err)
	assert.Nil(t, result.Address)
}

func TestNominatimClient_Search_EmptyResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	result, err := client.Search(context.Background(), "ZZ9 9ZZ", "gb")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, service.ErrNoGeocodeMatch)
}

func TestNominatimClient_Search_ProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	result, err := client.Search(context.Background(), "SW1A 1AA", "gb")

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestNominatimClient_Search_UnparseableCoordinates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"place_id": 1, "lat": "north-ish", "lon": "2.0", "display_name": "Bad"}]`))
	})

	result, err := client.Search(context.Background(), "12345", "us")

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "latitude")
}
