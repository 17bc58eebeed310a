package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/harshpatel958/kontax/internal/common"
	"github.com/harshpatel958/kontax/internal/logging"
	"github.com/harshpatel958/kontax/internal/server/cards"
	"github.com/harshpatel958/kontax/internal/server/devices"
)

type deviceService interface {
	Register(ctx context.Context, userName string, password string) (*devices.Device, error)
	Login(ctx context.Context, userName string, password string) (*devices.TokenPair, error)
	Refresh(ctx context.Context, token string) (*devices.TokenPair, error)
}

type cardService interface {
	Publish(ctx context.Context, deviceID string, card *cards.Card) (*cards.Card, string, error)
	Get(ctx context.Context, id string) (*cards.Card, error)
}

type storageService interface {
	GetPresignedPutUrl(ctx context.Context) (string, string, error)
	GetPresignedGetUrl(ctx context.Context, key string) (string, error)
}

type Handler struct {
	devices deviceService
	cards   cardService
	storage storageService
	logger  logging.Logger
}

func NewHandler(ds deviceService, cs cardService, ss storageService, logger logging.Logger) *Handler {
	return &Handler{
		devices: ds,
		cards:   cs,
		storage: ss,
		logger:  logger.With("module", "http_handler"),
	}
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

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	if _, err := h.devices.Register(r.Context(), req.Username, req.Password); err != nil {
		h.logger.Error(r.Context(), "register failed", "error", err)
		writeError(w, http.StatusInternalServerError, "unable to register device")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pair, err := h.devices.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusUnauthorized, common.ErrorUnauthorized.Error())
			return
		}
		h.logger.Error(r.Context(), "login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, tokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pair, err := h.devices.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, common.ErrRefreshTokenExpired) {
			writeError(w, http.StatusUnauthorized, common.ErrRefreshTokenExpired.Error())
			return
		}
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusUnauthorized, common.ErrorUnauthorized.Error())
			return
		}
		h.logger.Error(r.Context(), "refresh failed", "error", err)
		writeError(w, http.StatusInternalServerError, "refresh failed")
		return
	}

	writeJSON(w, http.StatusOK, tokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pingResponse{Status: "OK"})
}

func (h *Handler) publishCard(w http.ResponseWriter, r *http.Request) {
	deviceID := GetDeviceIDFromContext(r.Context())

	var req cardPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card := &cards.Card{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Organization: req.Organization,
		Designation:  req.Designation,
		LinkedIn:     req.LinkedIn,
		Title:        req.Title,
		Date:         req.Date,
		Location:     req.Location,
		Intent:       req.Intent,
	}

	card, url, err := h.cards.Publish(r.Context(), deviceID, card)
	if err != nil {
		h.logger.Error(r.Context(), "publish failed", "error", err)
		writeError(w, http.StatusInternalServerError, "unable to publish card")
		return
	}

	writeJSON(w, http.StatusOK, publishResponse{ID: card.ID, URL: url})
}

func (h *Handler) presignVoiceNote(w http.ResponseWriter, r *http.Request) {
	key, url, err := h.storage.GetPresignedPutUrl(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "presign failed", "error", err)
		writeError(w, http.StatusInternalServerError, "unable to presign upload")
		return
	}

	writeJSON(w, http.StatusOK, presignResponse{Key: key, URL: url})
}

func (h *Handler) presignVoiceNotePlayback(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeError(w, http.StatusBadRequest, "key is required")
		return
	}

	url, err := h.storage.GetPresignedGetUrl(r.Context(), key)
	if err != nil {
		h.logger.Error(r.Context(), "presign failed", "error", err)
		writeError(w, http.StatusInternalServerError, "unable to presign download")
		return
	}

	writeJSON(w, http.StatusOK, presignResponse{Key: key, URL: url})
}

var hostedCardTemplate = template.Must(template.New("card").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.FirstName}} {{.LastName}}</title></head>
<body>
<h1>{{.FirstName}} {{.LastName}}</h1>
{{if .Designation}}<p>{{.Designation}}{{if .Organization}}, {{.Organization}}{{end}}</p>{{else if .Organization}}<p>{{.Organization}}</p>{{end}}
{{if .Email}}<p><a href="mailto:{{.Email}}">{{.Email}}</a></p>{{end}}
{{if .Phone}}<p>{{.Phone}}</p>{{end}}
{{if .LinkedIn}}<p><a href="{{.LinkedIn}}">{{.LinkedIn}}</a></p>{{end}}
{{if .Title}}<p>Met at {{.Title}}{{if .Date}} ({{.Date}}){{end}}</p>{{end}}
</body>
</html>
`))

func (h *Handler) hostedCard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	card, err := h.cards.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error(r.Context(), "hosted card lookup failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := hostedCardTemplate.Execute(w, card); err != nil {
		h.logger.Error(r.Context(), "hosted card render failed", "error", err)
	}
}
