package client

import (
	"context"

	"github.com/harshpatel958/kontax/internal/client/models"
)

type Client interface {
	Close() error
	Register(ctx context.Context, username string, password string) error
	Login(ctx context.Context, username string, password string) error
	Ping(ctx context.Context) error
	PublishCard(ctx context.Context, card *models.Card) (id string, url string, err error)
	PresignVoiceNote(ctx context.Context) (key string, url string, err error)
	VoiceNoteURL(ctx context.Context, key string) (url string, err error)
}
