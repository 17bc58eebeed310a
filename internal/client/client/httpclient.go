package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/harshpatel958/kontax/internal/client/models"
	"github.com/harshpatel958/kontax/internal/common"
)

// HTTPClient talks JSON to the backend. It keeps the token pair in memory
// and transparently refreshes an expired access token, retrying the failed
// call once with the new one.
type HTTPClient struct {
	baseURL      string
	httpc        *http.Client
	accessToken  string
	refreshToken string
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *HTTPClient) Close() error {
	c.httpc.CloseIdleConnections()
	return nil
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type pingResponse struct {
	Status string `json:"status"`
}

type publishResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type presignResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// cardPayload is the publish wire format. Field names match the QR query
// keys, including the historical linkedln spelling.
type cardPayload struct {
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Organization string `json:"organization,omitempty"`
	Designation  string `json:"designation,omitempty"`
	LinkedIn     string `json:"linkedln,omitempty"`
	Title        string `json:"title,omitempty"`
	Date         string `json:"date,omitempty"`
	Location     string `json:"location,omitempty"`
	Intent       string `json:"intent,omitempty"`
}

func (c *HTTPClient) Register(ctx context.Context, username string, password string) error {
	return c.call(ctx, http.MethodPost, "/api/register", credentialsRequest{Username: username, Password: password}, nil)
}

func (c *HTTPClient) Login(ctx context.Context, username string, password string) error {
	var resp tokenPairResponse
	if err := c.call(ctx, http.MethodPost, "/api/login", credentialsRequest{Username: username, Password: password}, &resp); err != nil {
		return err
	}
	c.accessToken = resp.AccessToken
	c.refreshToken = resp.RefreshToken
	return nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var resp pingResponse
	if err := c.call(ctx, http.MethodGet, "/api/ping", nil, &resp); err != nil {
		return err
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (c *HTTPClient) PublishCard(ctx context.Context, card *models.Card) (string, string, error) {
	req := cardPayload{
		FirstName:    card.FirstName,
		LastName:     card.LastName,
		Email:        card.Email,
		Phone:        card.Phone,
		Organization: card.Organization,
		Designation:  card.Designation,
		LinkedIn:     card.LinkedIn,
		Title:        card.EventTitle,
		Date:         card.EventDate,
		Location:     card.EventLocation,
		Intent:       card.EventIntent,
	}

	var resp publishResponse
	if err := c.call(ctx, http.MethodPost, "/api/cards", req, &resp); err != nil {
		return "", "", err
	}
	return resp.ID, resp.URL, nil
}

func (c *HTTPClient) PresignVoiceNote(ctx context.Context) (string, string, error) {
	var resp presignResponse
	if err := c.call(ctx, http.MethodPost, "/api/voicenotes/presign", struct{}{}, &resp); err != nil {
		return "", "", err
	}
	return resp.Key, resp.URL, nil
}

// VoiceNoteURL asks the server for a short-lived download URL for a
// previously uploaded voice note.
func (c *HTTPClient) VoiceNoteURL(ctx context.Context, key string) (string, error) {
	var resp presignResponse
	path := "/api/voicenotes/presign?key=" + url.QueryEscape(key)
	if err := c.call(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// call performs one request and, if the server rejected an expired access
// token, refreshes the pair and retries once.
func (c *HTTPClient) call(ctx context.Context, method string, path string, in any, out any) error {
	err := c.do(ctx, method, path, in, out)

	if errors.Is(err, common.ErrTokenExpired) && c.refreshToken != "" {
		if err := c.refresh(ctx); err != nil {
			return err
		}
		return c.do(ctx, method, path, in, out)
	}

	return err
}

func (c *HTTPClient) refresh(ctx context.Context) error {
	var resp tokenPairResponse
	if err := c.do(ctx, http.MethodPost, "/api/refresh", refreshRequest{RefreshToken: c.refreshToken}, &resp); err != nil {
		return err
	}
	c.accessToken = resp.AccessToken
	c.refreshToken = resp.RefreshToken
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method string, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set(common.AccessTokenHeaderName, "Bearer "+c.accessToken)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.mapError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) mapError(resp *http.Response) error {
	var body errorResponse
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		if body.Error == common.ErrTokenExpired.Error() {
			return common.ErrTokenExpired
		}
		return ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrorNotFound
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrUnavailable
	default:
		if body.Error != "" {
			return fmt.Errorf("server error: %s", body.Error)
		}
		return fmt.Errorf("server error: status %d", resp.StatusCode)
	}
}
