package session

import (
	"context"
	"testing"

	"geolens/internal/model"

	"github.com/go-playground/assert/v2"
)

func TestMemoryStore_OverwriteAndIsolation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first := &model.NewsResult{Insight: "first"}
	second := &model.NewsResult{Insight: "second"}

	assert.Equal(t, nil, store.SaveNews(ctx, "s1", first))
	assert.Equal(t, nil, store.SaveNews(ctx, "s1", second))

	got, err := store.News(ctx, "s1")
	assert.Equal(t, nil, err)
	assert.Equal(t, "second", got.Insight)

	// Other sessions see nothing.
	other, err := store.News(ctx, "s2")
	assert.Equal(t, nil, err)
	assert.Equal(t, (*model.NewsResult)(nil), other)
}

func TestBuildSnapshot(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	snap, err := BuildSnapshot(ctx, store, "s1")
	assert.Equal(t, nil, err)
	assert.Equal(t, false, snap.HasData())

	store.SaveOfficial(ctx, "s1", &model.OfficialResult{
		Kind:   model.OfficialSeries,
		Series: []model.SeriesPoint{{Year: 2025, Value: 1}},
	})

	snap, err = BuildSnapshot(ctx, store, "s1")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, snap.HasData())
	assert.Equal(t, (*model.NewsResult)(nil), snap.News)
	assert.Equal(t, (*model.UploadResult)(nil), snap.Uploads)
}
