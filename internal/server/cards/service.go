package cards

import (
	"context"
	"fmt"
	"strings"

	sc "github.com/harshpatel958/kontax/internal/server/config"
)

type Service struct {
	repo          Repository
	publicBaseURL string
}

func NewService(repo Repository, config *sc.Config) *Service {
	return &Service{
		repo:          repo,
		publicBaseURL: strings.TrimRight(config.PublicBaseURL, "/"),
	}
}

// Publish stores the card and returns it together with its hosted URL.
func (s *Service) Publish(ctx context.Context, deviceID string, card *Card) (*Card, string, error) {

	card.DeviceID = deviceID

	card, err := s.repo.Create(ctx, card)
	if err != nil {
		return nil, "", fmt.Errorf("error creating card: %v", err)
	}

	return card, s.HostedURL(card.ID), nil
}

func (s *Service) Get(ctx context.Context, id string) (*Card, error) {
	return s.repo.GetByID(ctx, id)
}

// HostedURL builds the public link for a published card.
func (s *Service) HostedURL(id string) string {
	return fmt.Sprintf("%s/c/%s", s.publicBaseURL, id)
}
