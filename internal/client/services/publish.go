package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harshpatel958/kontax/internal/client/client"
	"github.com/harshpatel958/kontax/internal/client/repositories/cards"
	"github.com/harshpatel958/kontax/internal/netx"
)

// PublishService pushes saved cards to the backend so they get a hosted
// shareable URL, and uploads voice notes to object storage via presigned
// URLs issued by the server.
type PublishService interface {
	Publish(ctx context.Context, cardID int64) (string, error)
	UploadVoiceNote(ctx context.Context, path string) (string, error)
	VoiceNoteURL(ctx context.Context, key string) (string, error)
}

type publishService struct {
	client   client.Client
	cardRepo cards.Repository
}

// uploadFn is a test seam for the presigned upload.
var uploadFn = netx.UploadToS3PresignedURL

func NewPublishService(client client.Client, cardRepo cards.Repository) PublishService {
	return &publishService{client: client, cardRepo: cardRepo}
}

// Publish sends the card's contact half to the server and returns the
// hosted URL.
func (s *publishService) Publish(ctx context.Context, cardID int64) (string, error) {
	card, err := s.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		return "", err
	}

	_, url, err := s.client.PublishCard(ctx, card)
	if err != nil {
		return "", fmt.Errorf("publishing card: %w", err)
	}
	return url, nil
}

// UploadVoiceNote reads the local recording, asks the server for a presigned
// PUT URL and uploads the bytes. Returns the storage key.
func (s *publishService) UploadVoiceNote(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading voice note: %w", err)
	}

	key, url, err := s.client.PresignVoiceNote(ctx)
	if err != nil {
		return "", fmt.Errorf("requesting upload url: %w", err)
	}

	if err := uploadFn(url, data, voiceNoteContentType(path)); err != nil {
		return "", fmt.Errorf("uploading voice note: %w", err)
	}
	return key, nil
}

// VoiceNoteURL exchanges a stored voice note key for a short-lived
// playback URL.
func (s *publishService) VoiceNoteURL(ctx context.Context, key string) (string, error) {
	url, err := s.client.VoiceNoteURL(ctx, key)
	if err != nil {
		return "", fmt.Errorf("requesting playback url: %w", err)
	}
	return url, nil
}

func voiceNoteContentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".m4a", ".mp4":
		return "audio/mp4"
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	default:
		return "application/octet-stream"
	}
}
