package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/nathanjchan/dothething-backend/internal/common"
)

const googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

var validIssuers = map[string]struct{}{
	"accounts.google.com":         {},
	"https://accounts.google.com": {},
}

// GoogleVerifier validates Google ID tokens against the tokeninfo endpoint
// and checks issuer and audience before trusting the subject claim.
type GoogleVerifier struct {
	clientID string
	endpoint string
	client   *http.Client
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{
		clientID: clientID,
		endpoint: googleTokenInfoURL,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type tokenInfo struct {
	Iss string `json:"iss"`
	Aud string `json:"aud"`
	Sub string `json:"sub"`
}

// Verify returns the token's subject id. A token the endpoint rejects maps to
// common.ErrInvalidToken; failure to reach the endpoint is an upstream error.
func (v *GoogleVerifier) Verify(ctx context.Context, idToken string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		v.endpoint+"?id_token="+url.QueryEscape(idToken), nil)
	if err != nil {
		return "", fmt.Errorf("%w: build tokeninfo request: %v", common.ErrorUpstream, err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: tokeninfo request: %v", common.ErrorUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return "", common.ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: tokeninfo status %s", common.ErrorUpstream, resp.Status)
	}

	var info tokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", fmt.Errorf("%w: decode tokeninfo: %v", common.ErrorUpstream, err)
	}

	if _, ok := validIssuers[info.Iss]; !ok {
		return "", common.ErrInvalidToken
	}
	if v.clientID != "" && info.Aud != v.clientID {
		return "", common.ErrInvalidToken
	}
	if info.Sub == "" {
		return "", common.ErrInvalidToken
	}

	return info.Sub, nil
}
