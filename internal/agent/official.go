package agent

import (
	"context"

	"geolens/internal/model"
)

// Geocoder is implemented by pkg/geo.
type Geocoder interface {
	Lookup(ctx context.Context, query string) model.GeoResult
}

// OfficialProvider is implemented by pkg/official.
type OfficialProvider interface {
	Fetch(ctx context.Context, ind model.Indicator, geo model.GeoResult, period int) *model.OfficialResult
}

type OfficialAgent struct {
	geocoder Geocoder
	provider OfficialProvider
}

func NewOfficialAgent(geocoder Geocoder, provider OfficialProvider) *OfficialAgent {
	return &OfficialAgent{geocoder: geocoder, provider: provider}
}

// Run never fails: a location that does not geocode yields the empty result.
func (a *OfficialAgent) Run(ctx context.Context, location string, ind model.Indicator, period int) *model.OfficialResult {
	geo := a.geocoder.Lookup(ctx, location)
	if geo.Empty() {
		return model.EmptyOfficial(ind, geo)
	}
	return a.provider.Fetch(ctx, ind, geo, period)
}
