package agent

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"geolens/internal/model"

	"github.com/go-playground/assert/v2"
)

func seriesResult(n int) *model.OfficialResult {
	points := make([]model.SeriesPoint, n)
	for i := range points {
		points[i] = model.SeriesPoint{Year: 2018 + i, Value: float64(100 + i)}
	}
	return &model.OfficialResult{
		Indicator: model.IndicatorDemographics,
		Kind:      model.OfficialSeries,
		Origin:    model.OriginSynthetic,
		Series:    points,
		Chart:     model.ChartLine,
	}
}

func TestContrast_OfficialSeriesOnly(t *testing.T) {
	enricher := &fakeEnricher{}
	a := NewContrastAgent(enricher)

	snap := model.Snapshot{Official: seriesResult(8)}
	out, err := a.Run(context.Background(), "Mexico City", snap)

	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", out)

	prompt := enricher.analyzeCalls[0]
	assert.Equal(t, true, strings.Contains(prompt, "Mexico City"))

	// Exactly the last five points, ascending by year.
	assert.Equal(t, false, strings.Contains(prompt, "2020: 102"))
	wantLines := "2021: 103\n2022: 104\n2023: 105\n2024: 106\n2025: 107"
	assert.Equal(t, true, strings.Contains(prompt, wantLines))
}

func TestContrast_FloodLayerSentinel(t *testing.T) {
	snap := model.Snapshot{Official: &model.OfficialResult{
		Indicator: model.IndicatorFloodRisk,
		Kind:      model.OfficialLayer,
		Layer: &model.GeoLayer{
			GeoJSON: json.RawMessage(`{"type":"FeatureCollection","features":[]}`),
			View:    model.ViewState{Lat: 19.43, Lon: -99.13, Zoom: 10},
		},
	}}

	digest := BuildDigest(snap)
	assert.Equal(t, officialGeoDigest, digest)
}

func TestContrast_AllSourcesJoined(t *testing.T) {
	news := &model.NewsResult{Records: make([]model.NewsRecord, 7)}
	for i := range news.Records {
		news.Records[i].Summary = "news-" + string(rune('a'+i))
	}
	uploads := &model.UploadResult{Records: []model.UploadRecord{
		{Description: "upload-a"},
		{Description: "upload-b"},
	}}

	digest := BuildDigest(model.Snapshot{News: news, Uploads: uploads, Official: seriesResult(3)})

	sections := strings.Split(digest, contrastSeparator)
	assert.Equal(t, 3, len(sections))
	assert.Equal(t, true, strings.HasPrefix(sections[0], "News:\n"))
	assert.Equal(t, true, strings.HasPrefix(sections[1], "User data:\n"))
	assert.Equal(t, true, strings.HasPrefix(sections[2], "Official data (numeric):\n"))

	// News digest is capped at five summaries.
	assert.Equal(t, true, strings.Contains(sections[0], "news-e"))
	assert.Equal(t, false, strings.Contains(sections[0], "news-f"))
}

func TestContrast_EmptySnapshot(t *testing.T) {
	enricher := &fakeEnricher{}
	a := NewContrastAgent(enricher)

	_, err := a.Run(context.Background(), "Mexico City", model.Snapshot{})

	assert.Equal(t, ErrNoSources, err)
	assert.Equal(t, 0, enricher.totalCalls())
}

func TestContrast_ValueFormatting(t *testing.T) {
	official := &model.OfficialResult{
		Kind:   model.OfficialSeries,
		Series: []model.SeriesPoint{{Year: 2024, Value: 20.2}, {Year: 2025, Value: 1000000}},
	}

	digest := BuildDigest(model.Snapshot{Official: official})
	assert.Equal(t, true, strings.Contains(digest, "2024: 20.2"))
	assert.Equal(t, true, strings.Contains(digest, "2025: 1000000"))
}

func TestOfficialAgent_EmptyGeocodeShortCircuits(t *testing.T) {
	provider := &fakeProvider{}
	a := NewOfficialAgent(&fakeGeocoder{}, provider)

	res := a.Run(context.Background(), "nowhere", model.IndicatorDemographics, 5)

	assert.Equal(t, model.OfficialEmpty, res.Kind)
	assert.Equal(t, 0, provider.calls)
}

func TestOfficialAgent_DelegatesWithGeo(t *testing.T) {
	provider := &fakeProvider{result: seriesResult(4)}
	geo := model.GeoResult{Lat: 19.43, Lon: -99.13, DisplayName: "CDMX"}
	a := NewOfficialAgent(&fakeGeocoder{result: geo}, provider)

	res := a.Run(context.Background(), "Mexico City", model.IndicatorDemographics, 3)

	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, model.OfficialSeries, res.Kind)
}
