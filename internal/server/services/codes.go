package services

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nathanjchan/dothething-backend/internal/common"
	"github.com/nathanjchan/dothething-backend/internal/server/blob"
	sc "github.com/nathanjchan/dothething-backend/internal/server/config"
	"github.com/nathanjchan/dothething-backend/internal/server/models"
	"github.com/nathanjchan/dothething-backend/internal/server/repositories/repomanager"
)

const (
	codeAlphabet = "123456789abcdefABCDEF"
	codeLength   = 8

	// maxCodeAttempts bounds the allocate-retry loop. At 21^8 possible codes
	// a collision is already unlikely; ten straight collisions means
	// something is badly wrong and we surface a conflict instead of looping.
	maxCodeAttempts = 10
)

// CodeService allocates share codes and issues presigned upload/download
// URLs for clips.
type CodeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blob        blob.Store
	config      *sc.Config
}

// NewCodeService constructs a CodeService.
func NewCodeService(db *sql.DB, m repomanager.RepositoryManager, store blob.Store, config *sc.Config) *CodeService {
	return &CodeService{
		db:          db,
		repomanager: m,
		blob:        store,
		config:      config,
	}
}

// Allocate draws candidate codes until one has no clips under it. The
// existence check and the eventual first insert are not one atomic step;
// the alphabet size makes the race window irrelevant in practice.
func (s *CodeService) Allocate(ctx context.Context) (string, error) {
	repo := s.repomanager.Clips(s.db)

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := common.MakeRandString(codeAlphabet, codeLength)
		if err != nil {
			return "", common.ErrorInternal
		}

		exists, err := repo.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("error checking code: %v", err)
		}
		if !exists {
			return code, nil
		}
	}

	return "", fmt.Errorf("%w: no free code after %d attempts", common.ErrorCodeConflict, maxCodeAttempts)
}

// AppendTarget returns a presigned PUT target for adding a clip to code.
// A code whose existing clips belong to a different account cannot be
// appended to. The account's session token is baked into the object key so
// the ingestion pipeline can attribute the upload later.
func (s *CodeService) AppendTarget(ctx context.Context, account *models.Account, code, extension string) (*models.UploadTarget, error) {
	ext := strings.ToLower(strings.Trim(extension, "."))
	if ext == "" {
		return nil, common.ErrorMalformedKey
	}

	repo := s.repomanager.Clips(s.db)
	existing, err := repo.ListByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("error listing clips: %v", err)
	}
	for _, clip := range existing {
		if clip.AccountID != account.ID {
			return nil, common.ErrorCodeConflict
		}
	}

	u := uuid.New()
	key := fmt.Sprintf("%s-%s-%s.%s", code, hex.EncodeToString(u[:]), account.SessionID, ext)

	url, err := s.blob.PresignPut(ctx, s.config.VideoBucket, key)
	if err != nil {
		return nil, err
	}

	return &models.UploadTarget{Key: key, URL: url}, nil
}

// DownloadURL returns a presigned GET URL for a clip's raw media.
func (s *CodeService) DownloadURL(ctx context.Context, assetKey string) (string, error) {
	return s.blob.PresignGet(ctx, s.config.VideoBucket, assetKey)
}
