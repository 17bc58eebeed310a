package cards

import (
	"context"

	"github.com/harshpatel958/kontax/internal/client/models"
)

// Repository is the history store for annotated cards. Cards are immutable
// once saved; there is deliberately no update operation.
type Repository interface {
	// Insert adds a new card and returns the store-assigned auto-increment id.
	Insert(ctx context.Context, card *models.Card) (int64, error)

	// GetAll returns all cards in insertion order (ascending id).
	GetAll(ctx context.Context) ([]models.Card, error)

	// GetByID returns one card or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.Card, error)

	// DeleteByID removes one card. Deleting an absent id is a no-op.
	DeleteByID(ctx context.Context, id int64) error
}
