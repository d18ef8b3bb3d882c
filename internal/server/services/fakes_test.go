package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"

	"github.com/nathanjchan/dothething-backend/internal/common"
	"github.com/nathanjchan/dothething-backend/internal/dbx"
	"github.com/nathanjchan/dothething-backend/internal/logging"
	"github.com/nathanjchan/dothething-backend/internal/server/models"
	accountsrepo "github.com/nathanjchan/dothething-backend/internal/server/repositories/accounts"
	clipsrepo "github.com/nathanjchan/dothething-backend/internal/server/repositories/clips"
)

// --- shared fakes used across the service tests ---

type fakeAccountsRepo struct {
	upserted  []*models.Account
	upsertErr error

	bySession map[string]*models.Account
	byID      map[string]*models.Account
	getErr    error

	interactions map[string]int64
	setErr       error
}

func (f *fakeAccountsRepo) Upsert(ctx context.Context, a *models.Account) (*models.Account, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	f.upserted = append(f.upserted, a)
	return a, nil
}

func (f *fakeAccountsRepo) GetBySessionID(ctx context.Context, sessionID string) (*models.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if a, ok := f.bySession[sessionID]; ok {
		return a, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeAccountsRepo) GetByID(ctx context.Context, id string) (*models.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if a, ok := f.byID[id]; ok {
		return a, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeAccountsRepo) SetInteractions(ctx context.Context, id string, interactions int64) error {
	if f.setErr != nil {
		return f.setErr
	}
	if f.interactions == nil {
		f.interactions = map[string]int64{}
	}
	f.interactions[id] = interactions
	return nil
}

type fakeClipsRepo struct {
	inserted  []*models.Clip
	insertDup bool
	insertErr error

	byCode  map[string][]*models.Clip
	listErr error

	exists    map[string]bool
	existsErr error

	codesByAccount map[string][]string
	codesErr       error
}

func (f *fakeClipsRepo) Insert(ctx context.Context, clip *models.Clip) (bool, error) {
	if f.insertErr != nil {
		return false, f.insertErr
	}
	if f.insertDup {
		return false, nil
	}
	f.inserted = append(f.inserted, clip)
	return true, nil
}

func (f *fakeClipsRepo) ListByCode(ctx context.Context, code string) ([]*models.Clip, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byCode[code], nil
}

func (f *fakeClipsRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.exists[code], nil
}

func (f *fakeClipsRepo) DistinctCodesByAccount(ctx context.Context, accountID string) ([]string, error) {
	if f.codesErr != nil {
		return nil, f.codesErr
	}
	return f.codesByAccount[accountID], nil
}

type fakeRepoManager struct {
	a accountsrepo.Repository
	c clipsrepo.Repository
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Accounts(db dbx.DBTX) accountsrepo.Repository { return m.a }
func (m *fakeRepoManager) Clips(db dbx.DBTX) clipsrepo.Repository       { return m.c }

type fakeBlob struct {
	objects map[string][]byte // "<bucket>/<key>" -> bytes
	getErr  error

	put    map[string][]byte
	putErr error

	presignURL  string
	presignErr  error
	presignKeys []string
}

func (f *fakeBlob) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if data, ok := f.objects[bucket+"/"+key]; ok {
		return data, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeBlob) Put(ctx context.Context, bucket, key string, data []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	if f.put == nil {
		f.put = map[string][]byte{}
	}
	f.put[bucket+"/"+key] = data
	return nil
}

func (f *fakeBlob) PresignGet(ctx context.Context, bucket, key string) (string, error) {
	if f.presignErr != nil {
		return "", f.presignErr
	}
	f.presignKeys = append(f.presignKeys, bucket+"/"+key)
	return f.presignURL, nil
}

func (f *fakeBlob) PresignPut(ctx context.Context, bucket, key string) (string, error) {
	if f.presignErr != nil {
		return "", f.presignErr
	}
	f.presignKeys = append(f.presignKeys, bucket+"/"+key)
	return f.presignURL, nil
}

type fakeVerifier struct {
	subject string
	err     error
}

func (f *fakeVerifier) Verify(ctx context.Context, idToken string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.subject, nil
}

type fakeExtractor struct {
	frame   []byte
	err     error
	gotPath string
}

func (f *fakeExtractor) ExtractFrame(ctx context.Context, localPath string) ([]byte, error) {
	f.gotPath = localPath
	if f.err != nil {
		return nil, f.err
	}
	return f.frame, nil
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
