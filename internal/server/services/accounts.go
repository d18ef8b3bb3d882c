// Package services contains server-side business logic: login and session
// resolution, code allocation, the ingestion pipeline, and feed assembly.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nathanjchan/dothething-backend/internal/common"
	"github.com/nathanjchan/dothething-backend/internal/server/identity"
	"github.com/nathanjchan/dothething-backend/internal/server/models"
	"github.com/nathanjchan/dothething-backend/internal/server/repositories/repomanager"
)

// sessionTokenBytes is the entropy of a session token; the hex form is twice
// as long.
const sessionTokenBytes = 16

// AccountService handles login against the external identity provider and
// resolution of session tokens to accounts.
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	verifier    identity.Verifier
}

// NewAccountService constructs an AccountService.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, verifier identity.Verifier) *AccountService {
	return &AccountService{
		db:          db,
		repomanager: m,
		verifier:    verifier,
	}
}

// Login verifies an external ID token, creates the account on first contact,
// and mints a fresh session token. The previous token stops resolving the
// moment the upsert lands: one live session per account.
func (s *AccountService) Login(ctx context.Context, idToken string) (string, error) {
	subject, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		return "", err
	}

	sessionID, err := common.MakeRandHexString(sessionTokenBytes)
	if err != nil {
		return "", common.ErrorInternal
	}

	repo := s.repomanager.Accounts(s.db)
	_, err = repo.Upsert(ctx, &models.Account{
		ID:          subject,
		SessionID:   sessionID,
		LastLoginAt: time.Now().UnixMilli(),
	})
	if err != nil {
		return "", fmt.Errorf("error upserting account: %v", err)
	}

	return sessionID, nil
}

// Resolve maps a session token to the single account currently holding it.
// Returns common.ErrorNotFound when the token expired, was replaced, or was
// never issued.
func (s *AccountService) Resolve(ctx context.Context, sessionID string) (*models.Account, error) {
	if sessionID == "" {
		return nil, common.ErrorUnauthenticated
	}

	repo := s.repomanager.Accounts(s.db)
	account, err := repo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return account, nil
}
