// Package agent holds the four request-driven agents of the dashboard. Each
// run is synchronous and independent; enrichment calls are issued one at a
// time and their failures propagate to the caller.
package agent

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"geolens/internal/model"
	"geolens/pkg/llm"
)

// NewsCollector is implemented by pkg/news.
type NewsCollector interface {
	Fetch(ctx context.Context, location, keywords string, start, end *time.Time) ([]model.NewsRecord, error)
}

const noNewsInsight = "No news found for those parameters."

const insightPromptFmt = "Based on these summaries:\n%s\n\nProvide an overall insight about the situation."

// insightTopN caps how many per-article summaries feed the global insight.
const insightTopN = 10

type NewsAgent struct {
	collector NewsCollector
	enricher  llm.Enricher
}

func NewNewsAgent(collector NewsCollector, enricher llm.Enricher) *NewsAgent {
	return &NewsAgent{collector: collector, enricher: enricher}
}

// Run fetches and enriches news for a location. The returned record set is
// either fully enriched or the explicit empty result; a mid-batch enrichment
// failure aborts the whole run.
func (a *NewsAgent) Run(ctx context.Context, location, keywords string, start, end *time.Time) (*model.NewsResult, error) {
	records, err := a.collector.Fetch(ctx, location, keywords, start, end)
	if err != nil {
		return nil, err
	}

	result := &model.NewsResult{
		Location: location,
		Keywords: keywords,
		Records:  []model.NewsRecord{},
		Trend:    []model.TrendPoint{},
	}

	if len(records) == 0 {
		result.Insight = noNewsInsight
		return result, nil
	}

	summaries := make([]string, 0, len(records))
	for i := range records {
		text := records[i].Title + ". " + records[i].Description
		summary, err := a.enricher.Summarize(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("summarize article %q: %w", records[i].Title, err)
		}
		entities, err := a.enricher.ExtractEntities(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("extract entities for %q: %w", records[i].Title, err)
		}
		records[i].Summary = summary
		records[i].Entities = entities
		summaries = append(summaries, summary)
	}

	top := summaries
	if len(top) > insightTopN {
		top = top[:insightTopN]
	}
	insight, err := a.enricher.Summarize(ctx, fmt.Sprintf(insightPromptFmt, strings.Join(top, "\n")))
	if err != nil {
		return nil, fmt.Errorf("global insight: %w", err)
	}

	result.Records = records
	result.Insight = insight
	result.Trend = dailyTrend(records)
	return result, nil
}

// dailyTrend counts articles per publication day, ascending by day.
func dailyTrend(records []model.NewsRecord) []model.TrendPoint {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.PublishedAt.Format("2006-01-02")]++
	}

	days := make([]string, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Strings(days)

	trend := make([]model.TrendPoint, 0, len(days))
	for _, day := range days {
		trend = append(trend, model.TrendPoint{Day: day, Count: counts[day]})
	}
	return trend
}
