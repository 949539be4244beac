package verifier

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"
)

// IdentityVerifier checks an identity provider token before an account is
// created or reused from external auth claims.
type IdentityVerifier interface {
	Verify(ctx context.Context, idToken string) error
}

// GoogleVerifier validates a Google ID token against the configured OAuth client.
type GoogleVerifier struct {
	ClientID string
}

func (v GoogleVerifier) Verify(ctx context.Context, token string) error {
	if _, err := idtoken.Validate(ctx, token, v.ClientID); err != nil {
		return fmt.Errorf("validate google id token: %w", err)
	}
	return nil
}

// InsecureIdentityVerifier trusts client-supplied identity claims without
// cryptographic verification. It matches the original behavior and is only
// acceptable while no Google client id is configured.
type InsecureIdentityVerifier struct{}

func (InsecureIdentityVerifier) Verify(ctx context.Context, token string) error {
	return nil
}
