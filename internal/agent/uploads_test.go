package agent

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"geolens/internal/model"

	"github.com/go-playground/assert/v2"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.NRGBA{G: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestUploadAgent_EmptyBatch(t *testing.T) {
	enricher := &fakeEnricher{}
	transcriber := &fakeTranscriber{}
	a := NewUploadAgent(enricher, transcriber)

	res, err := a.Run(context.Background(), "Mexico City", UploadBatch{})

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(res.Records))
	assert.Equal(t, noUploadsSummary, res.Summary)
	assert.Equal(t, false, res.HasData())
	// The sentinel path must not touch any external service.
	assert.Equal(t, 0, enricher.totalCalls())
	assert.Equal(t, 0, len(transcriber.calls))
}

func TestUploadAgent_UnparsableCoordinates(t *testing.T) {
	a := NewUploadAgent(&fakeEnricher{}, &fakeTranscriber{})

	batch := UploadBatch{
		Images:      []Upload{{Name: "photo.png", Data: pngBytes(t)}},
		Coordinates: "abc",
	}
	res, err := a.Run(context.Background(), "Mexico City", batch)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(res.Records))
	assert.Equal(t, (*float64)(nil), res.Records[0].Lat)
	assert.Equal(t, (*float64)(nil), res.Records[0].Lon)
}

func TestUploadAgent_SharedCoordinates(t *testing.T) {
	enricher := &fakeEnricher{}
	a := NewUploadAgent(enricher, &fakeTranscriber{transcript: "spoken words"})

	batch := UploadBatch{
		Images:      []Upload{{Name: "photo.png", Data: pngBytes(t)}},
		Audios:      []Upload{{Name: "clip.mp3", Path: "/tmp/clip.mp3"}},
		Texts:       []Upload{{Name: "notes.txt", Data: []byte("field notes")}},
		Coordinates: "19.43, -99.13",
	}
	res, err := a.Run(context.Background(), "Mexico City", batch)

	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(res.Records))
	for _, rec := range res.Records {
		assert.Equal(t, 19.43, *rec.Lat)
		assert.Equal(t, -99.13, *rec.Lon)
		assert.NotEqual(t, "", rec.Description)
	}
	assert.Equal(t, model.UploadImage, res.Records[0].Kind)
	assert.Equal(t, model.UploadAudio, res.Records[1].Kind)
	assert.Equal(t, model.UploadText, res.Records[2].Kind)

	// Audio pipeline: transcribe then analyze the transcript.
	assert.Equal(t, []string{"/tmp/clip.mp3"}, transcriberCalls(t, a))
	assert.Equal(t, "spoken words", enricher.analyzeCalls[0])

	// Non-empty batch ends with the overall summary call.
	last := enricher.analyzeCalls[len(enricher.analyzeCalls)-1]
	assert.Equal(t, true, strings.Contains(last, "Mexico City"))
	assert.NotEqual(t, "", res.Summary)
}

func transcriberCalls(t *testing.T, a *UploadAgent) []string {
	t.Helper()
	f, ok := a.transcriber.(*fakeTranscriber)
	if !ok {
		t.Fatal("transcriber is not the fake")
	}
	return f.calls
}

func TestUploadAgent_InvalidUTF8TextBecomesEmpty(t *testing.T) {
	enricher := &fakeEnricher{}
	a := NewUploadAgent(enricher, &fakeTranscriber{})

	batch := UploadBatch{Texts: []Upload{{Name: "broken.txt", Data: []byte{0xff, 0xfe, 0xfd}}}}
	_, err := a.Run(context.Background(), "Mexico City", batch)

	assert.Equal(t, nil, err)
	assert.Equal(t, "", enricher.analyzeCalls[0])
}

func TestUploadAgent_BrokenImageDegrades(t *testing.T) {
	a := NewUploadAgent(&fakeEnricher{}, &fakeTranscriber{})

	batch := UploadBatch{Images: []Upload{{Name: "broken.png", Data: []byte("not an image")}}}
	res, err := a.Run(context.Background(), "Mexico City", batch)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(res.Records))
	assert.Equal(t, true, strings.Contains(res.Records[0].Description, "could not analyze image"))
}

func TestUploadAgent_TranscriptionFailurePropagates(t *testing.T) {
	a := NewUploadAgent(&fakeEnricher{}, &fakeTranscriber{err: errors.New("whisper down")})

	batch := UploadBatch{Audios: []Upload{{Name: "clip.mp3", Path: "/tmp/clip.mp3"}}}
	_, err := a.Run(context.Background(), "Mexico City", batch)
	assert.NotEqual(t, nil, err)
}

func TestParseCoordinates(t *testing.T) {
	lat, lon := parseCoordinates("19.43, -99.13")
	assert.Equal(t, 19.43, *lat)
	assert.Equal(t, -99.13, *lon)

	for _, input := range []string{"", "abc", "19.43", "19.43, x", "1,2,3"} {
		lat, lon := parseCoordinates(input)
		assert.Equal(t, (*float64)(nil), lat)
		assert.Equal(t, (*float64)(nil), lon)
	}
}
