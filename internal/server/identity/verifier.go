// Package identity verifies external ID tokens and maps them to stable
// subject identifiers. The production implementation talks to Google's
// tokeninfo endpoint; an HS256 implementation exists for development.
package identity

import "context"

// Verifier resolves an opaque ID token to the stable external subject id.
// Invalid tokens yield common.ErrInvalidToken; transport failures toward the
// verification service yield common.ErrorUpstream.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (string, error)
}
