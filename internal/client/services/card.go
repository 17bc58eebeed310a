package services

import (
	"context"
	"fmt"
	"time"

	"github.com/harshpatel958/kontax/internal/client/models"
	"github.com/harshpatel958/kontax/internal/client/repositories/cards"
	"github.com/harshpatel958/kontax/internal/payload"
)

// CardService saves annotated cards and reads the history.
type CardService interface {
	Save(ctx context.Context, rec payload.Record, ann models.Annotation, event payload.Event) (*models.Card, error)
	List(ctx context.Context) ([]models.Card, error)
	Get(ctx context.Context, id int64) (*models.Card, error)
	Delete(ctx context.Context, id int64) error
}

type cardService struct {
	cardRepo cards.Repository
}

// nowFn is a test seam for the save timestamp.
var nowFn = time.Now

func NewCardService(cardRepo cards.Repository) CardService {
	return &cardService{cardRepo: cardRepo}
}

// Save merges the scanned record with the user's annotation and persists the
// result. A card with no event date gets the save date, so every history row
// can answer "when did I meet them".
func (s *cardService) Save(ctx context.Context, rec payload.Record, ann models.Annotation, event payload.Event) (*models.Card, error) {
	card, err := models.BuildCard(rec, ann, event)
	if err != nil {
		return nil, err
	}

	if card.EventDate == "" {
		card.EventDate = nowFn().Format("2006-01-02")
	}

	if _, err := s.cardRepo.Insert(ctx, &card); err != nil {
		return nil, fmt.Errorf("saving card: %w", err)
	}
	return &card, nil
}

func (s *cardService) List(ctx context.Context) ([]models.Card, error) {
	rows, err := s.cardRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}
	return rows, nil
}

func (s *cardService) Get(ctx context.Context, id int64) (*models.Card, error) {
	card, err := s.cardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (s *cardService) Delete(ctx context.Context, id int64) error {
	if err := s.cardRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("deleting card: %w", err)
	}
	return nil
}
