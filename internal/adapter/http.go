package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/avelichko/spellsync/internal/config"
	"github.com/avelichko/spellsync/internal/logger"
	"github.com/avelichko/spellsync/internal/utils"
	"github.com/avelichko/spellsync/models"
)

// Attempt dedupe keys are compared remotely at millisecond precision, so
// query filters must not carry more than that.
const wireTimeLayout = "2006-01-02T15:04:05.000Z"

type httpRemoteService struct {
	client *utils.HTTPClient

	bucket string
	token  string

	logger *logger.Logger
}

// NewHTTPRemoteService constructs an HTTP/REST implementation of
// [RemoteService]. It normalises and validates the base URL from
// adapterCfg.BaseURL, configures the underlying HTTP client with the
// resolved base URL and request timeout, and stores the access token from
// appCfg for the Authorization header of every request.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteService(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (RemoteService, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	svc := &httpRemoteService{
		client: client,
		bucket: adapterCfg.StorageBucket,
		logger: logger,
	}
	svc.SetToken(appCfg.AccessToken)

	return svc, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RemoteService]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpRemoteService) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [RemoteService]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpRemoteService) Token() string {
	return h.token
}

// Ping implements [RemoteService]. It GETs the auth health endpoint and maps
// any non-2xx response to an error.
func (h *httpRemoteService) Ping(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Get("/auth/v1/health")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	return mapHTTPError(resp)
}

// UploadRecording implements [RemoteService]. It POSTs the raw recording
// bytes to POST /storage/v1/object/{bucket}/{key} and returns the stored
// object path relative to the bucket. Returns [ErrConflict] (wrapped) if an
// object already exists under key.
func (h *httpRemoteService) UploadRecording(ctx context.Context, key string, data []byte) (string, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(data).
		Post("/storage/v1/object/" + h.bucket + "/" + key)
	if err != nil {
		return "", fmt.Errorf("upload recording request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var result struct {
		Key string `json:"Key"`
	}
	if err = json.Unmarshal(resp.Body(), &result); err != nil || result.Key == "" {
		// The stored path equals the requested key; the decoded body is
		// only a confirmation.
		return key, nil
	}

	return strings.TrimPrefix(result.Key, h.bucket+"/"), nil
}

// ListRecordings implements [RemoteService]. It POSTs a listing request to
// POST /storage/v1/object/list/{bucket} and decodes the returned object
// entries. An empty listing is returned as an empty slice, not an error.
func (h *httpRemoteService) ListRecordings(ctx context.Context, prefix string) ([]ObjectEntry, error) {
	body := map[string]any{
		"prefix": prefix,
		"limit":  100,
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/storage/v1/object/list/" + h.bucket)
	if err != nil {
		return nil, fmt.Errorf("list recordings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []ObjectEntry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode recordings listing: %w", err)
	}

	return entries, nil
}

// InsertAttempt implements [RemoteService]. It POSTs one attempt row to
// POST /rest/v1/attempts. Returns [ErrConflict] (wrapped) on HTTP 409, which
// the caller treats as an already-recorded attempt.
func (h *httpRemoteService) InsertAttempt(ctx context.Context, attempt models.RemoteAttempt) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=minimal").
		SetBody(attempt).
		Post("/rest/v1/attempts")
	if err != nil {
		return fmt.Errorf("insert attempt request: %w", err)
	}

	return mapHTTPError(resp)
}

// AttemptExists implements [RemoteService]. It queries the remote attempts
// table filtered by the (child, word, startedAt) dedupe key and reports
// whether any row matched.
func (h *httpRemoteService) AttemptExists(ctx context.Context, childID, wordID string, startedAt time.Time) (bool, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{
			"select":     "child_id",
			"child_id":   "eq." + childID,
			"word_id":    "eq." + wordID,
			"started_at": "eq." + startedAt.UTC().Format(wireTimeLayout),
			"limit":      "1",
		}).
		Get("/rest/v1/attempts")
	if err != nil {
		return false, fmt.Errorf("attempt exists request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	var rows []json.RawMessage
	if err = json.Unmarshal(resp.Body(), &rows); err != nil {
		return false, fmt.Errorf("decode attempt exists response: %w", err)
	}

	return len(rows) > 0, nil
}

// GetSchedulerState implements [RemoteService]. It queries the remote
// scheduler table for one (child, word) pair. Returns nil without error when
// no record exists yet.
func (h *httpRemoteService) GetSchedulerState(ctx context.Context, childID, wordID string) (*models.SchedulerState, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{
			"child_id": "eq." + childID,
			"word_id":  "eq." + wordID,
			"limit":    "1",
		}).
		Get("/rest/v1/word_schedule")
	if err != nil {
		return nil, fmt.Errorf("get scheduler state request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var rows []models.SchedulerState
	if err = json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("decode scheduler state response: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return &rows[0], nil
}

// UpsertSchedulerState implements [RemoteService]. It POSTs the record to
// POST /rest/v1/word_schedule with merge-duplicates resolution keyed on
// (child_id, word_id), so replaying the same update is harmless.
func (h *httpRemoteService) UpsertSchedulerState(ctx context.Context, state models.SchedulerState) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "resolution=merge-duplicates,return=minimal").
		SetQueryParam("on_conflict", "child_id,word_id").
		SetBody(state).
		Post("/rest/v1/word_schedule")
	if err != nil {
		return fmt.Errorf("upsert scheduler state request: %w", err)
	}

	return mapHTTPError(resp)
}

// ApplyStarTransaction implements [RemoteService]. It POSTs the reward delta
// to the remote rpc POST /rest/v1/rpc/apply_star_transaction, which adjusts
// the balance atomically server-side.
func (h *httpRemoteService) ApplyStarTransaction(ctx context.Context, tx models.StarTransaction) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(tx).
		Post("/rest/v1/rpc/apply_star_transaction")
	if err != nil {
		return fmt.Errorf("apply star transaction request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteService) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
