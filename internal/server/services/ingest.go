package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nathanjchan/dothething-backend/internal/common"
	"github.com/nathanjchan/dothething-backend/internal/logging"
	"github.com/nathanjchan/dothething-backend/internal/server/blob"
	sc "github.com/nathanjchan/dothething-backend/internal/server/config"
	"github.com/nathanjchan/dothething-backend/internal/server/frames"
	"github.com/nathanjchan/dothething-backend/internal/server/models"
	"github.com/nathanjchan/dothething-backend/internal/server/repositories/repomanager"
)

// IngestService reacts to finalized uploads: it derives the thumbnail,
// attributes the upload to an account via the session token in the object
// key, and commits the clip record.
type IngestService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blob        blob.Store
	extractor   frames.Extractor
	config      *sc.Config
	logger      logging.Logger
}

// NewIngestService constructs an IngestService.
func NewIngestService(db *sql.DB, m repomanager.RepositoryManager, store blob.Store,
	extractor frames.Extractor, config *sc.Config, logger logging.Logger) *IngestService {
	return &IngestService{
		db:          db,
		repomanager: m,
		blob:        store,
		extractor:   extractor,
		config:      config,
		logger:      logger.With("module", "ingest"),
	}
}

// ParseAssetKey splits an object key of the form
// "<code>-<disambiguator>-<sessionID>.<ext>" into its code and session token.
// Any other shape is common.ErrorMalformedKey.
func ParseAssetKey(key string) (code, sessionID string, err error) {
	parts := strings.Split(key, "-")
	if len(parts) != 3 {
		return "", "", fmt.Errorf("%w: %q", common.ErrorMalformedKey, key)
	}
	if parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %q", common.ErrorMalformedKey, key)
	}

	dot := strings.Index(parts[2], ".")
	if dot <= 0 || dot == len(parts[2])-1 {
		return "", "", fmt.Errorf("%w: %q", common.ErrorMalformedKey, key)
	}

	return parts[0], parts[2][:dot], nil
}

// ProcessUpload runs the pipeline for one upload-finalized notification.
//
// A malformed key or a collaborator failure aborts the invocation with an
// error; a session that no longer resolves stops the pipeline silently (the
// media and thumbnail stay stored, no clip is committed). The final commit is
// conditional on the asset key, so a redelivered notification is a no-op.
func (s *IngestService) ProcessUpload(ctx context.Context, bucket, key string) error {
	code, sessionID, err := ParseAssetKey(key)
	if err != nil {
		return err
	}

	data, err := s.blob.Get(ctx, bucket, key)
	if err != nil {
		return err
	}

	scratch, err := os.CreateTemp("", "upload-*"+filepath.Ext(key))
	if err != nil {
		return fmt.Errorf("scratch file: %w", err)
	}
	defer os.Remove(scratch.Name())

	if _, err := scratch.Write(data); err != nil {
		scratch.Close()
		return fmt.Errorf("scratch write: %w", err)
	}
	if err := scratch.Close(); err != nil {
		return fmt.Errorf("scratch close: %w", err)
	}

	thumbnail, err := s.extractor.ExtractFrame(ctx, scratch.Name())
	if err != nil {
		return err
	}

	if err := s.blob.Put(ctx, s.config.ThumbnailBucket, key+".jpg", thumbnail); err != nil {
		return err
	}

	account, err := s.repomanager.Accounts(s.db).GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// The session rotated out between upload and processing.
			// Nothing to do: the asset stays orphaned, no error raised.
			s.logger.Info(ctx, "no account for upload session, skipping commit", "key", key)
			return nil
		}
		return err
	}

	written, err := s.repomanager.Clips(s.db).Insert(ctx, &models.Clip{
		ID:        key,
		Code:      code,
		AccountID: account.ID,
		CreatedAt: time.Now().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("error committing clip: %v", err)
	}
	if !written {
		s.logger.Info(ctx, "clip already committed, redelivery ignored", "key", key)
	}

	return nil
}
