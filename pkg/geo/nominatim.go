package geo

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"geolens/internal/model"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// Nominatim's usage policy requires an identifying User-Agent.
const userAgent = "geolens/1.0 (contact@geolens.dev)"

// Client resolves free-text locations against the Nominatim search endpoint.
// Every failure mode degrades to the zero GeoResult: callers never see an
// error, they see "no geodata".
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Lookup(ctx context.Context, query string) model.GeoResult {
	if strings.TrimSpace(query) == "" {
		return model.GeoResult{}
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return model.GeoResult{}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.GeoResult{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.GeoResult{}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil || strings.TrimSpace(string(body)) == "" {
		return model.GeoResult{}
	}

	var places []nominatimPlace
	if err := json.Unmarshal(body, &places); err != nil || len(places) == 0 {
		return model.GeoResult{}
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return model.GeoResult{}
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return model.GeoResult{}
	}

	return model.GeoResult{
		Lat:         lat,
		Lon:         lon,
		DisplayName: places[0].DisplayName,
	}
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}
