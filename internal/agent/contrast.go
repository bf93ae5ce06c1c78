package agent

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"geolens/internal/model"
	"geolens/pkg/llm"
)

// ErrNoSources means the snapshot held no agent output at all; callers are
// expected to check availability before invoking the contrast agent.
var ErrNoSources = errors.New("no agent output available to contrast")

const (
	contrastSeparator    = "\n\n---\n\n"
	contrastPromptFmt    = "Contrast the information from news, user data, and official data for location %s.\n\n%s\n\nSummarize similarities, differences, and possible conclusions."
	newsDigestFmt        = "News:\n%s"
	uploadsDigestFmt     = "User data:\n%s"
	officialNumDigestFmt = "Official data (numeric):\n%s"
	officialGeoDigest    = "Official data (flood GeoJSON) available."
)

// digestLimit caps each per-source digest at five entries.
const digestLimit = 5

// ContrastAgent combines whichever agent outputs exist into one narrative.
// It holds no state: the caller passes a fresh snapshot per request.
type ContrastAgent struct {
	enricher llm.Enricher
}

func NewContrastAgent(enricher llm.Enricher) *ContrastAgent {
	return &ContrastAgent{enricher: enricher}
}

func (a *ContrastAgent) Run(ctx context.Context, location string, snap model.Snapshot) (string, error) {
	if !snap.HasData() {
		return "", ErrNoSources
	}
	return a.enricher.Analyze(ctx, fmt.Sprintf(contrastPromptFmt, location, BuildDigest(snap)))
}

// BuildDigest renders one textual section per available source, joined by a
// separator: top-5 news summaries, top-5 upload descriptions, and either the
// last 5 series points (ascending, "year: value") or the flood-layer line.
func BuildDigest(snap model.Snapshot) string {
	var parts []string

	if snap.News.HasData() {
		summaries := make([]string, 0, digestLimit)
		for _, rec := range snap.News.Records {
			if len(summaries) == digestLimit {
				break
			}
			summaries = append(summaries, rec.Summary)
		}
		parts = append(parts, fmt.Sprintf(newsDigestFmt, strings.Join(summaries, "\n")))
	}

	if snap.Uploads.HasData() {
		descriptions := make([]string, 0, digestLimit)
		for _, rec := range snap.Uploads.Records {
			if len(descriptions) == digestLimit {
				break
			}
			descriptions = append(descriptions, rec.Description)
		}
		parts = append(parts, fmt.Sprintf(uploadsDigestFmt, strings.Join(descriptions, "\n")))
	}

	if snap.Official.HasData() {
		switch snap.Official.Kind {
		case model.OfficialSeries:
			series := snap.Official.Series
			if len(series) > digestLimit {
				series = series[len(series)-digestLimit:]
			}
			lines := make([]string, len(series))
			for i, pt := range series {
				lines[i] = fmt.Sprintf("%d: %s", pt.Year, strconv.FormatFloat(pt.Value, 'f', -1, 64))
			}
			parts = append(parts, fmt.Sprintf(officialNumDigestFmt, strings.Join(lines, "\n")))
		case model.OfficialLayer:
			parts = append(parts, officialGeoDigest)
		}
	}

	return strings.Join(parts, contrastSeparator)
}
