package services

import (
	"context"
	"database/sql"
	"encoding/base64"
	"fmt"
	"sort"

	"github.com/nathanjchan/dothething-backend/internal/server/blob"
	sc "github.com/nathanjchan/dothething-backend/internal/server/config"
	"github.com/nathanjchan/dothething-backend/internal/server/models"
	"github.com/nathanjchan/dothething-backend/internal/server/repositories/repomanager"
)

// feedBatchSize is the fixed pagination window of the home feed.
const feedBatchSize = 33

// FeedService assembles the cross-code home feed and serves the lightweight
// companion reads (code list, interactions snapshot, by-code lookup).
type FeedService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blob        blob.Store
	config      *sc.Config
}

// NewFeedService constructs a FeedService.
func NewFeedService(db *sql.DB, m repomanager.RepositoryManager, store blob.Store, config *sc.Config) *FeedService {
	return &FeedService{
		db:          db,
		repomanager: m,
		blob:        store,
		config:      config,
	}
}

// GetFeed collects every clip across the codes owned by accountID, orders the
// combined set most-recent-first, overwrites the account's interactions
// snapshot with the total count, and returns the batchIndex-th window of 33
// enriched clips. Indices past the end yield an empty batch, never an error.
func (s *FeedService) GetFeed(ctx context.Context, accountID string, batchIndex int) ([]*models.FeedClip, error) {
	clipRepo := s.repomanager.Clips(s.db)
	accountRepo := s.repomanager.Accounts(s.db)

	codes, err := clipRepo.DistinctCodesByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("error listing codes: %v", err)
	}

	var all []*models.Clip
	for _, code := range codes {
		clips, err := clipRepo.ListByCode(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("error listing clips for code %s: %v", code, err)
		}
		all = append(all, clips...)
	}

	// Snapshot semantics: the total collected count, regardless of batch.
	if err := accountRepo.SetInteractions(ctx, accountID, int64(len(all))); err != nil {
		return nil, fmt.Errorf("error updating interactions: %v", err)
	}

	// The authoritative feed order: newest first. The asset key breaks
	// timestamp ties so pagination stays a total order.
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt != all[j].CreatedAt {
			return all[i].CreatedAt > all[j].CreatedAt
		}
		return all[i].ID < all[j].ID
	})

	start := batchIndex * feedBatchSize
	if start < 0 || start >= len(all) {
		return []*models.FeedClip{}, nil
	}
	end := start + feedBatchSize
	if end > len(all) {
		end = len(all)
	}

	batch := make([]*models.FeedClip, 0, end-start)
	for _, clip := range all[start:end] {
		batch = append(batch, &models.FeedClip{
			ID:              clip.ID,
			Code:            clip.Code,
			CreatedAt:       clip.CreatedAt,
			ThumbnailBase64: s.thumbnailBase64(ctx, clip.ID),
		})
	}

	return batch, nil
}

// thumbnailBase64 loads the clip's thumbnail, falling back to the default
// image. A feed page never fails because one thumbnail is unreadable.
func (s *FeedService) thumbnailBase64(ctx context.Context, assetKey string) string {
	data, err := s.blob.Get(ctx, s.config.ThumbnailBucket, assetKey+".jpg")
	if err != nil {
		data, err = s.blob.Get(ctx, s.config.ThumbnailBucket, s.config.DefaultThumbnailKey)
		if err != nil {
			return ""
		}
	}
	return base64.StdEncoding.EncodeToString(data)
}

// GetCodes returns the distinct codes owned by the account. No pagination,
// no thumbnails.
func (s *FeedService) GetCodes(ctx context.Context, accountID string) ([]string, error) {
	repo := s.repomanager.Clips(s.db)
	codes, err := repo.DistinctCodesByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("error listing codes: %v", err)
	}
	return codes, nil
}

// GetClipsForCode returns every clip under a code, ascending by creation
// time, with the owner stripped. Codes are shareable capabilities: any caller
// with a valid session may look one up.
func (s *FeedService) GetClipsForCode(ctx context.Context, code string) ([]*models.FeedClip, error) {
	repo := s.repomanager.Clips(s.db)
	clips, err := repo.ListByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("error listing clips: %v", err)
	}

	result := make([]*models.FeedClip, 0, len(clips))
	for _, clip := range clips {
		result = append(result, &models.FeedClip{
			ID:        clip.ID,
			Code:      clip.Code,
			CreatedAt: clip.CreatedAt,
		})
	}
	return result, nil
}

// GetInteractions returns the account's current interactions snapshot without
// recomputing the feed.
func (s *FeedService) GetInteractions(ctx context.Context, accountID string) (int64, error) {
	repo := s.repomanager.Accounts(s.db)
	account, err := repo.GetByID(ctx, accountID)
	if err != nil {
		return 0, err
	}
	return account.Interactions, nil
}
