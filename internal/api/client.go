package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"promptdeck/internal/catalog"
)

const (
	initDataHeader = "x-telegram-init-data"

	pathProfile  = "/tg/profile"
	pathList     = "/prompt/list"
	pathFavorite = "/prompt/favorite"
	pathCopy     = "/prompt/copy"

	maxBodySize = 4 * 1024 * 1024
)

// ErrNoAuth marks a call that was skipped because no Telegram init data is
// available. The client degrades to anonymous mode instead of failing:
// FetchProfile maps it to a nil profile, the action endpoints surface it so
// the UI can show a local notification and skip the network.
var ErrNoAuth = errors.New("no telegram init data")

// Config carries the gateway settings.
type Config struct {
	BaseURL   string
	BotPrefix string
	Timeout   time.Duration
	PageLimit int

	// InitData is the viewer auth token handed over by the embedding
	// surface. Empty means unauthenticated.
	InitData string
}

// Client talks to the prompt-catalog service. Safe for use from a single
// event loop; calls block until the response or timeout.
type Client struct {
	cfg  Config
	http *http.Client
	log  *zap.Logger
}

// NewClient builds a gateway client. A nil logger is replaced by a no-op one.
func NewClient(cfg Config, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = 200
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log,
	}
}

// Authenticated reports whether the client holds a viewer token.
func (c *Client) Authenticated() bool {
	return c.cfg.InitData != ""
}

// FetchProfile returns the viewer profile, or (nil, nil) when no init data is
// available. A non-success status or a non-JSON body is an error; an envelope
// that unwraps to nothing is a nil profile.
func (c *Client) FetchProfile(ctx context.Context) (*Profile, error) {
	if !c.Authenticated() {
		c.log.Warn("no init data, skipping profile fetch")
		return nil, nil
	}

	body, err := c.post(ctx, pathProfile, map[string]any{})
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%s returned non-JSON", pathProfile)
	}
	record := unwrapProfile(body)
	if record == nil {
		return nil, nil
	}
	var profile Profile
	if err := json.Unmarshal(record, &profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &profile, nil
}

// FetchPrompts returns the full catalog page. A missing or malformed list
// decodes to an empty slice; transport and parse failures are errors.
func (c *Client) FetchPrompts(ctx context.Context) ([]*catalog.Prompt, error) {
	body, err := c.post(ctx, pathList, map[string]any{
		"page":  1,
		"limit": c.cfg.PageLimit,
	})
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%s returned non-JSON", pathList)
	}
	items, err := unwrapList(body)
	if err != nil {
		return nil, err
	}

	prompts := make([]*catalog.Prompt, 0, len(items))
	for _, item := range items {
		var raw rawPrompt
		if err := json.Unmarshal(item, &raw); err != nil {
			c.log.Warn("skipping malformed prompt record", zap.Error(err))
			continue
		}
		prompts = append(prompts, raw.toPrompt())
	}
	return prompts, nil
}

// ToggleFavorite posts a favorite toggle for the prompt. The server may omit
// the new state or the counter; nil fields tell the caller to derive them
// locally.
func (c *Client) ToggleFavorite(ctx context.Context, promptID int) (FavoriteResult, error) {
	if !c.Authenticated() {
		return FavoriteResult{}, ErrNoAuth
	}

	body, err := c.post(ctx, pathFavorite, map[string]any{"prompt_id": promptID})
	if err != nil {
		return FavoriteResult{}, err
	}

	var raw rawFavorite
	if err := json.Unmarshal(body, &raw); err != nil {
		return FavoriteResult{}, fmt.Errorf("%s returned non-JSON: %w", pathFavorite, err)
	}

	res := FavoriteResult{}
	for _, state := range []*bool{raw.IsFavorite, raw.Favorite, raw.Active} {
		if state != nil {
			res.State = state
			break
		}
	}
	for _, count := range []*int{raw.FavoritesCount, raw.Favorites} {
		if count != nil {
			res.Favorites = count
			break
		}
	}
	return res, nil
}

// RecordCopy reports one copy event and returns the authoritative per-viewer
// copy counter. The caller must invoke it only while its local counter is
// still zero.
func (c *Client) RecordCopy(ctx context.Context, promptID int) (int, error) {
	if !c.Authenticated() {
		return 0, ErrNoAuth
	}

	body, err := c.post(ctx, pathCopy, map[string]any{"prompt_id": promptID})
	if err != nil {
		return 0, err
	}

	var raw rawCopy
	if err := json.Unmarshal(body, &raw); err != nil {
		return 0, fmt.Errorf("%s returned non-JSON: %w", pathCopy, err)
	}
	for _, count := range []*int{raw.CopiesByUser, raw.Copies, raw.Count} {
		if count != nil && *count > 0 {
			return *count, nil
		}
	}
	// The server acknowledged but returned no usable number.
	return 1, nil
}

// post sends the init data both as a header and duplicated in the body, the
// way the edge function expects it, and returns the raw response body.
func (c *Client) post(ctx context.Context, path string, payload map[string]any) ([]byte, error) {
	requestID := uuid.NewString()
	start := time.Now()

	body := map[string]any{"initData": c.cfg.InitData}
	for k, v := range payload {
		body[k] = v
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := c.cfg.BaseURL + c.cfg.BotPrefix + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.InitData != "" {
		req.Header.Set(initDataHeader, c.cfg.InitData)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed",
			zap.String("req", requestID), zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response %s: %w", path, err)
	}

	c.log.Debug("request completed",
		zap.String("req", requestID),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Endpoint: path, Status: resp.StatusCode, Body: string(respBody)}
	}
	return respBody, nil
}
