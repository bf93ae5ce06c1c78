package model

import (
	"encoding/json"
	"fmt"
)

// Indicator is the closed set of official-data categories. Each selects both
// the data shape (numeric series vs. geo layer) and the synthesis strategy.
type Indicator string

const (
	IndicatorDemographics   Indicator = "Demographics"
	IndicatorMeteorological Indicator = "Meteorological"
	IndicatorSeismic        Indicator = "Seismic"
	IndicatorEconomic       Indicator = "Economic"
	IndicatorFloodRisk      Indicator = "Flood Risks"
)

// Indicators lists every valid indicator; new entries must be added here and
// to ParseIndicator together so nothing falls through to the empty case
// unnoticed.
var Indicators = []Indicator{
	IndicatorDemographics,
	IndicatorMeteorological,
	IndicatorSeismic,
	IndicatorEconomic,
	IndicatorFloodRisk,
}

func ParseIndicator(s string) (Indicator, error) {
	for _, ind := range Indicators {
		if s == string(ind) {
			return ind, nil
		}
	}
	return "", fmt.Errorf("unknown indicator %q", s)
}

type ChartHint string

const (
	ChartLine ChartHint = "line"
	ChartBar  ChartHint = "bar"
)

type SeriesPoint struct {
	Year  int
	Value float64
}

type ViewState struct {
	Lat  float64
	Lon  float64
	Zoom int
}

// GeoLayer is a polygon payload plus the viewport to render it at. Only the
// flood-risk indicator produces one.
type GeoLayer struct {
	GeoJSON json.RawMessage
	View    ViewState
}

// OfficialKind tags the variant held by an OfficialResult.
type OfficialKind string

const (
	OfficialEmpty  OfficialKind = "empty"
	OfficialSeries OfficialKind = "series"
	OfficialLayer  OfficialKind = "layer"
)

// OfficialResult is a tagged variant: a numeric series with a chart hint, a
// geo layer, or the empty result. Series and Layer are mutually exclusive.
// Origin says where the data came from; numeric series are synthetic
// placeholder ramps, not measured data.
type OfficialResult struct {
	Indicator Indicator
	Geo       GeoResult
	Kind      OfficialKind
	Origin    string
	Series    []SeriesPoint
	Chart     ChartHint
	Layer     *GeoLayer
}

const (
	OriginSynthetic = "synthetic"
	OriginRemote    = "remote"
)

// EmptyOfficial is what every failure path of the official-data agent
// degrades to.
func EmptyOfficial(ind Indicator, geo GeoResult) *OfficialResult {
	return &OfficialResult{Indicator: ind, Geo: geo, Kind: OfficialEmpty}
}

func (r *OfficialResult) HasData() bool {
	if r == nil {
		return false
	}
	switch r.Kind {
	case OfficialSeries:
		return len(r.Series) > 0
	case OfficialLayer:
		return r.Layer != nil && len(r.Layer.GeoJSON) > 0
	}
	return false
}
