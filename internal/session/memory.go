package session

import (
	"context"
	"sync"

	"geolens/internal/model"
)

// MemoryStore backs sessions when no redis is configured. Results are
// treated as immutable once stored, so pointers are shared, not copied.
type MemoryStore struct {
	mu       sync.RWMutex
	news     map[string]*model.NewsResult
	uploads  map[string]*model.UploadResult
	official map[string]*model.OfficialResult
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		news:     make(map[string]*model.NewsResult),
		uploads:  make(map[string]*model.UploadResult),
		official: make(map[string]*model.OfficialResult),
	}
}

func (s *MemoryStore) SaveNews(ctx context.Context, sessionID string, res *model.NewsResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.news[sessionID] = res
	return nil
}

func (s *MemoryStore) News(ctx context.Context, sessionID string) (*model.NewsResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.news[sessionID], nil
}

func (s *MemoryStore) SaveUploads(ctx context.Context, sessionID string, res *model.UploadResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads[sessionID] = res
	return nil
}

func (s *MemoryStore) Uploads(ctx context.Context, sessionID string) (*model.UploadResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uploads[sessionID], nil
}

func (s *MemoryStore) SaveOfficial(ctx context.Context, sessionID string, res *model.OfficialResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.official[sessionID] = res
	return nil
}

func (s *MemoryStore) Official(ctx context.Context, sessionID string) (*model.OfficialResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.official[sessionID], nil
}
