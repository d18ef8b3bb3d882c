package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"testing"

	"github.com/nathanjchan/dothething-backend/internal/common"
	"github.com/nathanjchan/dothething-backend/internal/server/models"
)

// seedFeedRepos builds an account with two codes holding 40 and 10 clips.
// Timestamps ascend with the clip index so the expected feed order is the
// reverse of insertion.
func seedFeedRepos() (*fakeAccountsRepo, *fakeClipsRepo) {
	clips := &fakeClipsRepo{
		byCode:         map[string][]*models.Clip{},
		codesByAccount: map[string][]string{"acct": {"codeA", "codeB"}},
	}
	ts := int64(1000)
	for i := 0; i < 40; i++ {
		ts++
		clips.byCode["codeA"] = append(clips.byCode["codeA"], &models.Clip{
			ID:        fmt.Sprintf("codeA-%03d", i),
			Code:      "codeA",
			AccountID: "acct",
			CreatedAt: ts,
		})
	}
	for i := 0; i < 10; i++ {
		ts++
		clips.byCode["codeB"] = append(clips.byCode["codeB"], &models.Clip{
			ID:        fmt.Sprintf("codeB-%03d", i),
			Code:      "codeB",
			AccountID: "acct",
			CreatedAt: ts,
		})
	}
	return &fakeAccountsRepo{}, clips
}

func TestGetFeed_FirstBatch(t *testing.T) {
	accounts, clips := seedFeedRepos()
	svc := NewFeedService(nil, &fakeRepoManager{a: accounts, c: clips}, &fakeBlob{}, testConfig())

	batch, err := svc.GetFeed(context.Background(), "acct", 0)
	if err != nil {
		t.Fatalf("GetFeed error: %v", err)
	}
	if len(batch) != feedBatchSize {
		t.Fatalf("want %d clips, got %d", feedBatchSize, len(batch))
	}

	// Newest overall clip is the last one seeded under codeB.
	if batch[0].ID != "codeB-009" {
		t.Fatalf("unexpected head of feed: %q", batch[0].ID)
	}
	for i := 1; i < len(batch); i++ {
		if batch[i].CreatedAt > batch[i-1].CreatedAt {
			t.Fatalf("feed not descending at index %d", i)
		}
	}

	if accounts.interactions["acct"] != 50 {
		t.Fatalf("want interactions snapshot 50, got %d", accounts.interactions["acct"])
	}
}

func TestGetFeed_SecondBatchIsRemainder(t *testing.T) {
	accounts, clips := seedFeedRepos()
	svc := NewFeedService(nil, &fakeRepoManager{a: accounts, c: clips}, &fakeBlob{}, testConfig())

	batch, err := svc.GetFeed(context.Background(), "acct", 1)
	if err != nil {
		t.Fatalf("GetFeed error: %v", err)
	}
	if len(batch) != 17 {
		t.Fatalf("want 17 clips in the tail batch, got %d", len(batch))
	}

	// Oldest clip overall closes the last batch.
	if batch[len(batch)-1].ID != "codeA-000" {
		t.Fatalf("unexpected tail of feed: %q", batch[len(batch)-1].ID)
	}
}

func TestGetFeed_BatchPastEndIsEmpty(t *testing.T) {
	accounts, clips := seedFeedRepos()
	svc := NewFeedService(nil, &fakeRepoManager{a: accounts, c: clips}, &fakeBlob{}, testConfig())

	for _, idx := range []int{2, 100, -1} {
		batch, err := svc.GetFeed(context.Background(), "acct", idx)
		if err != nil {
			t.Fatalf("GetFeed(%d) error: %v", idx, err)
		}
		if len(batch) != 0 {
			t.Fatalf("GetFeed(%d): want empty batch, got %d clips", idx, len(batch))
		}
	}
}

func TestGetFeed_ThumbnailFallbackChain(t *testing.T) {
	clips := &fakeClipsRepo{
		byCode: map[string][]*models.Clip{
			"codeA": {
				{ID: "with-thumb", Code: "codeA", AccountID: "acct", CreatedAt: 3},
				{ID: "without-thumb", Code: "codeA", AccountID: "acct", CreatedAt: 2},
			},
		},
		codesByAccount: map[string][]string{"acct": {"codeA"}},
	}
	store := &fakeBlob{objects: map[string][]byte{
		"dothethingthumbnails/with-thumb.jpg": []byte("frame"),
		"dothethingthumbnails/obama.jpg":      []byte("default"),
	}}
	svc := NewFeedService(nil, &fakeRepoManager{a: &fakeAccountsRepo{}, c: clips}, store, testConfig())

	batch, err := svc.GetFeed(context.Background(), "acct", 0)
	if err != nil {
		t.Fatalf("GetFeed error: %v", err)
	}
	if got := batch[0].ThumbnailBase64; got != base64.StdEncoding.EncodeToString([]byte("frame")) {
		t.Fatalf("unexpected thumbnail for stored frame: %q", got)
	}
	if got := batch[1].ThumbnailBase64; got != base64.StdEncoding.EncodeToString([]byte("default")) {
		t.Fatalf("unexpected fallback thumbnail: %q", got)
	}
}

func TestGetFeed_MissingDefaultThumbnailYieldsEmpty(t *testing.T) {
	clips := &fakeClipsRepo{
		byCode: map[string][]*models.Clip{
			"codeA": {{ID: "k1", Code: "codeA", AccountID: "acct", CreatedAt: 1}},
		},
		codesByAccount: map[string][]string{"acct": {"codeA"}},
	}
	svc := NewFeedService(nil, &fakeRepoManager{a: &fakeAccountsRepo{}, c: clips}, &fakeBlob{}, testConfig())

	batch, err := svc.GetFeed(context.Background(), "acct", 0)
	if err != nil {
		t.Fatalf("GetFeed error: %v", err)
	}
	if batch[0].ThumbnailBase64 != "" {
		t.Fatalf("want empty thumbnail, got %q", batch[0].ThumbnailBase64)
	}
}

func TestGetFeed_InteractionsWriteFailure(t *testing.T) {
	accounts, clips := seedFeedRepos()
	accounts.setErr = errors.New("db down")
	svc := NewFeedService(nil, &fakeRepoManager{a: accounts, c: clips}, &fakeBlob{}, testConfig())

	if _, err := svc.GetFeed(context.Background(), "acct", 0); err == nil {
		t.Fatal("expected error when interactions update fails")
	}
}

func TestGetCodes(t *testing.T) {
	clips := &fakeClipsRepo{codesByAccount: map[string][]string{"acct": {"codeA", "codeB"}}}
	svc := NewFeedService(nil, &fakeRepoManager{a: &fakeAccountsRepo{}, c: clips}, &fakeBlob{}, testConfig())

	codes, err := svc.GetCodes(context.Background(), "acct")
	if err != nil {
		t.Fatalf("GetCodes error: %v", err)
	}
	if len(codes) != 2 || codes[0] != "codeA" || codes[1] != "codeB" {
		t.Fatalf("unexpected codes: %v", codes)
	}
}

func TestGetClipsForCode_AscendingOwnerStripped(t *testing.T) {
	clips := &fakeClipsRepo{byCode: map[string][]*models.Clip{
		"codeA": {
			{ID: "k1", Code: "codeA", AccountID: "acct", CreatedAt: 1},
			{ID: "k2", Code: "codeA", AccountID: "acct", CreatedAt: 2},
		},
	}}
	svc := NewFeedService(nil, &fakeRepoManager{a: &fakeAccountsRepo{}, c: clips}, &fakeBlob{}, testConfig())

	got, err := svc.GetClipsForCode(context.Background(), "codeA")
	if err != nil {
		t.Fatalf("GetClipsForCode error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "k1" || got[1].ID != "k2" {
		t.Fatalf("unexpected clips: %+v", got)
	}
	for _, clip := range got {
		if clip.ThumbnailBase64 != "" {
			t.Fatalf("by-code read should not carry thumbnails: %+v", clip)
		}
	}
}

func TestGetInteractions(t *testing.T) {
	accounts := &fakeAccountsRepo{byID: map[string]*models.Account{
		"acct": {ID: "acct", Interactions: 50},
	}}
	svc := NewFeedService(nil, &fakeRepoManager{a: accounts, c: &fakeClipsRepo{}}, &fakeBlob{}, testConfig())

	n, err := svc.GetInteractions(context.Background(), "acct")
	if err != nil || n != 50 {
		t.Fatalf("GetInteractions: %d, %v", n, err)
	}

	_, err = svc.GetInteractions(context.Background(), "stranger")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
