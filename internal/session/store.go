// Package session keeps the most recent output of each agent per session.
// There is no history: the next run of an agent overwrites its slot.
package session

import (
	"context"

	"geolens/internal/model"
)

type Store interface {
	SaveNews(ctx context.Context, sessionID string, res *model.NewsResult) error
	News(ctx context.Context, sessionID string) (*model.NewsResult, error)
	SaveUploads(ctx context.Context, sessionID string, res *model.UploadResult) error
	Uploads(ctx context.Context, sessionID string) (*model.UploadResult, error)
	SaveOfficial(ctx context.Context, sessionID string, res *model.OfficialResult) error
	Official(ctx context.Context, sessionID string) (*model.OfficialResult, error)
}

// BuildSnapshot assembles the immutable view the contrast agent reads.
// Missing slots stay nil; only store access failures surface.
func BuildSnapshot(ctx context.Context, store Store, sessionID string) (model.Snapshot, error) {
	news, err := store.News(ctx, sessionID)
	if err != nil {
		return model.Snapshot{}, err
	}
	uploads, err := store.Uploads(ctx, sessionID)
	if err != nil {
		return model.Snapshot{}, err
	}
	official, err := store.Official(ctx, sessionID)
	if err != nil {
		return model.Snapshot{}, err
	}
	return model.Snapshot{News: news, Uploads: uploads, Official: official}, nil
}
