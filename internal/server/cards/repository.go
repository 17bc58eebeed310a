// Package cards stores published contact cards and serves them back
// by their hosted ID.
package cards

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, card *Card) (*Card, error)
	GetByID(ctx context.Context, id string) (*Card, error)
}
