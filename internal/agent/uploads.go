package agent

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"geolens/internal/model"
	"geolens/pkg/llm"
	"geolens/pkg/vision"
)

// Upload is one artifact of a batch. Images and texts arrive as bytes;
// audio files are persisted to disk first because transcription takes a
// file path.
type Upload struct {
	Name string
	Data []byte
	Path string
}

// UploadBatch carries the three independent upload groups plus one combined
// "lat, lon" coordinate string shared by every record of the batch.
type UploadBatch struct {
	Images      []Upload
	Audios      []Upload
	Texts       []Upload
	Coordinates string
}

const noUploadsSummary = "No uploaded data to process."

const uploadsSummaryPromptFmt = "Based on these descriptions of files uploaded at %s: %s\nSummarize the main findings."

type UploadAgent struct {
	enricher    llm.Enricher
	transcriber llm.Transcriber
}

func NewUploadAgent(enricher llm.Enricher, transcriber llm.Transcriber) *UploadAgent {
	return &UploadAgent{enricher: enricher, transcriber: transcriber}
}

// Run normalizes a batch into UploadRecords and produces the overall
// summary. An empty batch returns the sentinel summary without touching the
// enrichment service.
func (a *UploadAgent) Run(ctx context.Context, location string, batch UploadBatch) (*model.UploadResult, error) {
	lat, lon := parseCoordinates(batch.Coordinates)

	records := make([]model.UploadRecord, 0, len(batch.Images)+len(batch.Audios)+len(batch.Texts))

	for _, img := range batch.Images {
		desc, err := vision.Analyze(img.Data)
		if err != nil {
			// A broken image degrades into its record, not the batch.
			desc = fmt.Sprintf("could not analyze image %s: %v", img.Name, err)
		}
		records = append(records, model.UploadRecord{
			Kind:        model.UploadImage,
			Filename:    img.Name,
			Lat:         lat,
			Lon:         lon,
			Description: desc,
		})
	}

	for _, audio := range batch.Audios {
		transcript, err := a.transcriber.Transcribe(ctx, audio.Path)
		if err != nil {
			return nil, fmt.Errorf("transcribe %s: %w", audio.Name, err)
		}
		desc, err := a.enricher.Analyze(ctx, transcript)
		if err != nil {
			return nil, fmt.Errorf("analyze transcript of %s: %w", audio.Name, err)
		}
		records = append(records, model.UploadRecord{
			Kind:        model.UploadAudio,
			Filename:    audio.Name,
			Lat:         lat,
			Lon:         lon,
			Description: desc,
		})
	}

	for _, txt := range batch.Texts {
		content := string(txt.Data)
		if !utf8.Valid(txt.Data) {
			content = ""
		}
		desc, err := a.enricher.Analyze(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("analyze text %s: %w", txt.Name, err)
		}
		records = append(records, model.UploadRecord{
			Kind:        model.UploadText,
			Filename:    txt.Name,
			Lat:         lat,
			Lon:         lon,
			Description: desc,
		})
	}

	result := &model.UploadResult{Location: location, Records: records}

	if len(records) == 0 {
		result.Summary = noUploadsSummary
		return result, nil
	}

	descriptions := make([]string, len(records))
	for i, rec := range records {
		descriptions[i] = rec.Description
	}
	summary, err := a.enricher.Analyze(ctx, fmt.Sprintf(uploadsSummaryPromptFmt, location, strings.Join(descriptions, "\n")))
	if err != nil {
		return nil, fmt.Errorf("overall upload summary: %w", err)
	}
	result.Summary = summary

	return result, nil
}

// parseCoordinates splits one "lat, lon" string; anything unparsable leaves
// both sides nil.
func parseCoordinates(input string) (*float64, *float64) {
	parts := strings.Split(input, ",")
	if len(parts) != 2 {
		return nil, nil
	}
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lon, errLon := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errLat != nil || errLon != nil {
		return nil, nil
	}
	return &lat, &lon
}
