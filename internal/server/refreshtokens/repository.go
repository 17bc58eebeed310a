// Package refreshtokens stores issued refresh tokens and their expiry.
package refreshtokens

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, deviceID string, token string, validity time.Duration) error
	Find(ctx context.Context, token string) (*RefreshToken, error)
	Delete(ctx context.Context, token string) error
}
