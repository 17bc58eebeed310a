package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harshpatel958/kontax/internal/client/repositories/session"
	"github.com/harshpatel958/kontax/internal/payload"
)

const (
	profileKey = "profile"
	eventKey   = "event"
)

// SessionService persists the local user's profile and the active event
// context between runs. A never-saved value comes back as the zero value,
// not an error.
type SessionService interface {
	Profile(ctx context.Context) (payload.Profile, error)
	SaveProfile(ctx context.Context, p payload.Profile) error
	Event(ctx context.Context) (payload.Event, error)
	SaveEvent(ctx context.Context, e payload.Event) error
	ClearEvent(ctx context.Context) error
}

type sessionService struct {
	repo session.Repository
}

func NewSessionService(repo session.Repository) SessionService {
	return &sessionService{repo: repo}
}

func (s *sessionService) Profile(ctx context.Context) (payload.Profile, error) {
	var p payload.Profile
	if err := s.load(ctx, profileKey, &p); err != nil {
		return payload.Profile{}, err
	}
	return p, nil
}

func (s *sessionService) SaveProfile(ctx context.Context, p payload.Profile) error {
	return s.save(ctx, profileKey, p)
}

func (s *sessionService) Event(ctx context.Context) (payload.Event, error) {
	var e payload.Event
	if err := s.load(ctx, eventKey, &e); err != nil {
		return payload.Event{}, err
	}
	return e, nil
}

func (s *sessionService) SaveEvent(ctx context.Context, e payload.Event) error {
	return s.save(ctx, eventKey, e)
}

func (s *sessionService) ClearEvent(ctx context.Context) error {
	if err := s.repo.Delete(ctx, eventKey); err != nil {
		return fmt.Errorf("clearing event: %w", err)
	}
	return nil
}

func (s *sessionService) load(ctx context.Context, key string, out any) error {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("loading %s: %w", key, err)
	}
	if raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding %s: %w", key, err)
	}
	return nil
}

func (s *sessionService) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.repo.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}
