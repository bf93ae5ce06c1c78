package agent

import (
	"context"
	"fmt"
	"time"

	"geolens/internal/model"
)

type fakeEnricher struct {
	summarizeCalls []string
	entityCalls    []string
	analyzeCalls   []string
	err            error
}

func (f *fakeEnricher) Summarize(ctx context.Context, text string) (string, error) {
	f.summarizeCalls = append(f.summarizeCalls, text)
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("summary-%d", len(f.summarizeCalls)), nil
}

func (f *fakeEnricher) ExtractEntities(ctx context.Context, text string) (string, error) {
	f.entityCalls = append(f.entityCalls, text)
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("entities-%d", len(f.entityCalls)), nil
}

func (f *fakeEnricher) Analyze(ctx context.Context, text string) (string, error) {
	f.analyzeCalls = append(f.analyzeCalls, text)
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("analysis-%d", len(f.analyzeCalls)), nil
}

func (f *fakeEnricher) totalCalls() int {
	return len(f.summarizeCalls) + len(f.entityCalls) + len(f.analyzeCalls)
}

type fakeTranscriber struct {
	calls      []string
	transcript string
	err        error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	f.calls = append(f.calls, path)
	return f.transcript, f.err
}

type fakeCollector struct {
	records []model.NewsRecord
	err     error
}

func (f *fakeCollector) Fetch(ctx context.Context, location, keywords string, start, end *time.Time) ([]model.NewsRecord, error) {
	return f.records, f.err
}

type fakeGeocoder struct {
	result model.GeoResult
}

func (f *fakeGeocoder) Lookup(ctx context.Context, query string) model.GeoResult {
	return f.result
}

type fakeProvider struct {
	result *model.OfficialResult
	calls  int
}

func (f *fakeProvider) Fetch(ctx context.Context, ind model.Indicator, geo model.GeoResult, period int) *model.OfficialResult {
	f.calls++
	return f.result
}
