// Package official synthesizes public-indicator data for a location.
//
// The four numeric indicators are deterministic placeholder ramps (the
// upstream statistical sources are not wired yet); results carry
// model.OriginSynthetic so consumers can label them. The flood-risk
// indicator fetches a static geojson layer instead.
package official

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"geolens/internal/model"
)

const defaultFloodURL = "https://raw.githubusercontent.com/giswqs/planetscope-analyses/master/data/us-flood-zones.geojson"

const floodZoom = 10

const (
	MinPeriod = 1
	MaxPeriod = 10
)

// Provider never returns an error: every failure path, including transport
// errors on the flood layer fetch, degrades to the empty result.
type Provider struct {
	floodURL   string
	httpClient *http.Client
	now        func() time.Time
}

func NewProvider() *Provider {
	return &Provider{
		floodURL:   defaultFloodURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		now:        time.Now,
	}
}

// Fetch produces the result for one indicator over the last `period` years.
// An empty geocode or an out-of-range period yields the empty result.
func (p *Provider) Fetch(ctx context.Context, ind model.Indicator, geo model.GeoResult, period int) *model.OfficialResult {
	if geo.Empty() || period < MinPeriod || period > MaxPeriod {
		return model.EmptyOfficial(ind, geo)
	}

	switch ind {
	case model.IndicatorDemographics:
		return p.series(ind, geo, period, 1_000_000, 50_000, model.ChartLine)
	case model.IndicatorMeteorological:
		return p.series(ind, geo, period, 20, 0.2, model.ChartLine)
	case model.IndicatorSeismic:
		return p.series(ind, geo, period, 5, 1, model.ChartBar)
	case model.IndicatorEconomic:
		return p.series(ind, geo, period, 20_000, 1_000, model.ChartLine)
	case model.IndicatorFloodRisk:
		return p.floodLayer(ctx, geo)
	}

	// Unknown indicators are rejected by ParseIndicator before reaching here.
	return model.EmptyOfficial(ind, geo)
}

func (p *Provider) series(ind model.Indicator, geo model.GeoResult, period int, intercept, slope float64, chart model.ChartHint) *model.OfficialResult {
	currentYear := p.now().Year()
	points := make([]model.SeriesPoint, 0, period+1)
	for i := 0; i <= period; i++ {
		points = append(points, model.SeriesPoint{
			Year:  currentYear - period + i,
			Value: intercept + slope*float64(i),
		})
	}
	return &model.OfficialResult{
		Indicator: ind,
		Geo:       geo,
		Kind:      model.OfficialSeries,
		Origin:    model.OriginSynthetic,
		Series:    points,
		Chart:     chart,
	}
}

func (p *Provider) floodLayer(ctx context.Context, geo model.GeoResult) *model.OfficialResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.floodURL, nil)
	if err != nil {
		return model.EmptyOfficial(model.IndicatorFloodRisk, geo)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return model.EmptyOfficial(model.IndicatorFloodRisk, geo)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.EmptyOfficial(model.IndicatorFloodRisk, geo)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil || strings.TrimSpace(string(body)) == "" || !json.Valid(body) {
		return model.EmptyOfficial(model.IndicatorFloodRisk, geo)
	}

	return &model.OfficialResult{
		Indicator: model.IndicatorFloodRisk,
		Geo:       geo,
		Kind:      model.OfficialLayer,
		Origin:    model.OriginRemote,
		Layer: &model.GeoLayer{
			GeoJSON: body,
			View:    model.ViewState{Lat: geo.Lat, Lon: geo.Lon, Zoom: floodZoom},
		},
	}
}
