package agent

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"geolens/internal/model"

	"github.com/go-playground/assert/v2"
)

func newsRecords(n int) []model.NewsRecord {
	base := time.Date(2025, time.June, 12, 9, 0, 0, 0, time.UTC)
	records := make([]model.NewsRecord, n)
	for i := range records {
		records[i] = model.NewsRecord{
			Title:       "title",
			Description: "description",
			URL:         "https://example.com",
			Source:      "Example",
			PublishedAt: base.Add(-time.Duration(i) * 6 * time.Hour),
		}
	}
	return records
}

func TestNewsAgent_EnrichesEveryRecord(t *testing.T) {
	enricher := &fakeEnricher{}
	a := NewNewsAgent(&fakeCollector{records: newsRecords(3)}, enricher)

	res, err := a.Run(context.Background(), "Mexico City", "storms", nil, nil)

	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(res.Records))
	for _, rec := range res.Records {
		assert.NotEqual(t, "", rec.Summary)
		assert.NotEqual(t, "", rec.Entities)
	}
	// One summarize per record plus the global insight.
	assert.Equal(t, 4, len(enricher.summarizeCalls))
	assert.Equal(t, 3, len(enricher.entityCalls))
	assert.Equal(t, true, strings.Contains(enricher.summarizeCalls[0], "title. description"))
}

func TestNewsAgent_InsightUsesTopTen(t *testing.T) {
	enricher := &fakeEnricher{}
	a := NewNewsAgent(&fakeCollector{records: newsRecords(12)}, enricher)

	res, err := a.Run(context.Background(), "Mexico City", "storms", nil, nil)

	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", res.Insight)

	insightPrompt := enricher.summarizeCalls[len(enricher.summarizeCalls)-1]
	assert.Equal(t, true, strings.Contains(insightPrompt, "summary-1"))
	assert.Equal(t, true, strings.Contains(insightPrompt, "summary-10"))
	assert.Equal(t, false, strings.Contains(insightPrompt, "summary-11"))
}

func TestNewsAgent_NoResults(t *testing.T) {
	enricher := &fakeEnricher{}
	a := NewNewsAgent(&fakeCollector{records: nil}, enricher)

	res, err := a.Run(context.Background(), "Mexico City", "storms", nil, nil)

	assert.Equal(t, nil, err)
	assert.Equal(t, noNewsInsight, res.Insight)
	assert.Equal(t, 0, len(res.Records))
	assert.Equal(t, 0, len(res.Trend))
	assert.Equal(t, false, res.HasData())
	assert.Equal(t, 0, enricher.totalCalls())
}

func TestNewsAgent_EnrichmentFailurePropagates(t *testing.T) {
	enricher := &fakeEnricher{err: errors.New("llm down")}
	a := NewNewsAgent(&fakeCollector{records: newsRecords(2)}, enricher)

	_, err := a.Run(context.Background(), "Mexico City", "storms", nil, nil)
	assert.NotEqual(t, nil, err)
}

func TestNewsAgent_CollectorFailurePropagates(t *testing.T) {
	a := NewNewsAgent(&fakeCollector{err: errors.New("feed down")}, &fakeEnricher{})

	_, err := a.Run(context.Background(), "Mexico City", "storms", nil, nil)
	assert.NotEqual(t, nil, err)
}

func TestDailyTrend(t *testing.T) {
	records := []model.NewsRecord{
		{PublishedAt: time.Date(2025, time.June, 12, 9, 0, 0, 0, time.UTC)},
		{PublishedAt: time.Date(2025, time.June, 12, 15, 0, 0, 0, time.UTC)},
		{PublishedAt: time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC)},
	}

	trend := dailyTrend(records)

	assert.Equal(t, 2, len(trend))
	assert.Equal(t, "2025-06-10", trend[0].Day)
	assert.Equal(t, 1, trend[0].Count)
	assert.Equal(t, "2025-06-12", trend[1].Day)
	assert.Equal(t, 2, trend[1].Count)
}
