package devices

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/harshpatel958/kontax/internal/common"
	"github.com/harshpatel958/kontax/internal/server/auth"
	"github.com/harshpatel958/kontax/internal/server/config"
	"github.com/harshpatel958/kontax/internal/server/refreshtokens"
)

type fakeDeviceRepo struct {
	devices   map[string]*Device
	createErr error
}

func (f *fakeDeviceRepo) Create(ctx context.Context, device *Device) (*Device, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	device.ID = "d-1"
	f.devices[device.UserName] = device
	return device, nil
}

func (f *fakeDeviceRepo) GetByName(ctx context.Context, userName string) (*Device, error) {
	d, ok := f.devices[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return d, nil
}

type fakeTokenRepo struct {
	tokens map[string]*refreshtokens.RefreshToken
}

func (f *fakeTokenRepo) Create(ctx context.Context, deviceID string, token string, validity time.Duration) error {
	f.tokens[token] = &refreshtokens.RefreshToken{
		DeviceID:  deviceID,
		Token:     token,
		ExpiresAt: time.Now().Add(validity),
	}
	return nil
}

func (f *fakeTokenRepo) Find(ctx context.Context, token string) (*refreshtokens.RefreshToken, error) {
	rt, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return rt, nil
}

func (f *fakeTokenRepo) Delete(ctx context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeDeviceRepo, *fakeTokenRepo, *config.Config) {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                    "test-secret",
		AccessTokenValidityDuration:  time.Minute,
		RefreshTokenValidityDuration: time.Hour,
	}
	dr := &fakeDeviceRepo{devices: map[string]*Device{}}
	tr := &fakeTokenRepo{tokens: map[string]*refreshtokens.RefreshToken{}}
	return NewService(dr, tr, cfg), dr, tr, cfg
}

func TestRegister_HashesPassword(t *testing.T) {
	svc, dr, _, _ := newTestService(t)

	d, err := svc.Register(context.Background(), "phone-1", "secret")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if d.ID == "" {
		t.Fatalf("expected device ID to be set")
	}

	stored := dr.devices["phone-1"]
	if stored.PasswordHash == "secret" {
		t.Fatalf("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	svc, _, tr, cfg := newTestService(t)

	if _, err := svc.Register(context.Background(), "phone-1", "secret"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	pair, err := svc.Login(context.Background(), "phone-1", "secret")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected non-empty token pair: %+v", pair)
	}

	deviceID, err := auth.GetDeviceIDFromToken(pair.AccessToken, []byte(cfg.SecretKey))
	if err != nil {
		t.Fatalf("access token does not validate: %v", err)
	}
	if deviceID != "d-1" {
		t.Fatalf("deviceID mismatch: %q", deviceID)
	}

	if _, ok := tr.tokens[pair.RefreshToken]; !ok {
		t.Fatalf("refresh token was not persisted")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	if _, err := svc.Register(context.Background(), "phone-1", "secret"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, err := svc.Login(context.Background(), "phone-1", "wrong")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected common.ErrorUnauthorized, got %v", err)
	}
}

func TestLogin_UnknownDevice(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "nobody", "secret")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected common.ErrorUnauthorized, got %v", err)
	}
}

func TestRefresh_RotatesToken(t *testing.T) {
	svc, _, tr, _ := newTestService(t)

	if _, err := svc.Register(context.Background(), "phone-1", "secret"); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	pair, err := svc.Login(context.Background(), "phone-1", "secret")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	newPair, err := svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh error: %v", err)
	}
	if newPair.RefreshToken == pair.RefreshToken {
		t.Fatalf("refresh token was not rotated")
	}
	if _, ok := tr.tokens[pair.RefreshToken]; ok {
		t.Fatalf("old refresh token still valid after rotation")
	}

	// the old token must not work twice
	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected common.ErrorUnauthorized on replay, got %v", err)
	}
}

func TestRefresh_Expired(t *testing.T) {
	svc, _, tr, _ := newTestService(t)

	tr.tokens["old"] = &refreshtokens.RefreshToken{
		DeviceID:  "d-1",
		Token:     "old",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	_, err := svc.Refresh(context.Background(), "old")
	if !errors.Is(err, common.ErrRefreshTokenExpired) {
		t.Fatalf("expected common.ErrRefreshTokenExpired, got %v", err)
	}
	if _, ok := tr.tokens["old"]; ok {
		t.Fatalf("expired token must be deleted")
	}
}
