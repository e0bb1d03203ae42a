// Package engine talks to the remote packing-engine service. The engine
// consumes a wall-assembly payload and returns the block packing plan for
// a drawing; this package only ships the payload and interprets status
// codes, it never recomputes placements locally.
package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mverdi/wallplan/internal/config"
	"github.com/mverdi/wallplan/internal/model"
	"github.com/mverdi/wallplan/pkg/errors"
	"github.com/mverdi/wallplan/pkg/httputil"
)

// PackResult is the engine's packing plan for one drawing.
type PackResult struct {
	JobID           string               `json:"job_id"`
	Status          string               `json:"status"`
	Counts          model.CategoryCounts `json:"counts"`
	Rows            int                  `json:"rows"`
	CoveragePercent float64              `json:"coverage_percent"`
	Warnings        []string             `json:"warnings,omitempty"`
}

// RemoteSystem is a block system as published by the engine's catalog
// endpoint.
type RemoteSystem struct {
	System    model.BlockSystem `json:"system"`
	Revision  string            `json:"revision"`
	UpdatedAt string            `json:"updated_at"`
}

// Client is an HTTP client for the packing engine. It caches catalog
// lookups on disk and retries transient failures with exponential backoff.
type Client struct {
	baseURL string
	token   string
	secret  string
	http    *http.Client
	cache   *httputil.Cache
}

// NewClient builds a Client from the process configuration. The cache is
// namespaced so engine responses never collide with other cached data.
func NewClient(cfg config.Config) (*Client, error) {
	cache, err := httputil.NewCache(cfg.CacheDir, cfg.CacheTTL)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to initialize response cache")
	}
	return &Client{
		baseURL: cfg.EngineURL,
		token:   cfg.EngineToken,
		secret:  cfg.EngineSecret,
		http:    &http.Client{Timeout: cfg.EngineTimeout},
		cache:   cache.Namespace("engine"),
	}, nil
}

// Pack submits a wall-assembly payload for the given drawing and returns
// the engine's packing plan.
func (c *Client) Pack(ctx context.Context, drawingID string, payload model.EnginePayload) (*PackResult, error) {
	body := struct {
		DrawingID string              `json:"drawing_id"`
		Assembly  model.EnginePayload `json:"assembly"`
	}{DrawingID: drawingID, Assembly: payload}

	var result PackResult
	err := httputil.RetryWithBackoff(ctx, func() error {
		return c.postJSON(ctx, c.baseURL+"/api/v1/pack", body, &result)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Systems fetches the block systems published by the engine. Results are
// served from the on-disk cache unless refresh is true.
func (c *Client) Systems(ctx context.Context, refresh bool) ([]RemoteSystem, error) {
	var systems []RemoteSystem
	key := c.baseURL + "/api/v1/systems"
	if !refresh {
		if ok, _ := c.cache.Get(key, &systems); ok {
			return systems, nil
		}
	}
	err := httputil.RetryWithBackoff(ctx, func() error {
		return c.getJSON(ctx, key, &systems)
	})
	if err != nil {
		return nil, err
	}
	_ = c.cache.Set(key, systems)
	return systems, nil
}

// Ping checks whether the engine is reachable and healthy.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to build health request")
	}
	if err := c.authorize(req); err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(errors.ErrCodeNetwork, err, "engine is unreachable")
	}
	defer resp.Body.Close()
	return checkStatus(resp.StatusCode)
}

func (c *Client) postJSON(ctx context.Context, url string, body, v any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to encode request body")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, v)
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to build request")
	}
	return c.do(req, v)
}

func (c *Client) do(req *http.Request, v any) error {
	if err := c.authorize(req); err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "engine request failed")}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "engine returned malformed JSON")
	}
	return nil
}

// authorize attaches credentials to the request. A static bearer token
// wins; otherwise a short-lived HS256 token is minted from the shared
// secret. Unauthenticated engines need neither.
func (c *Client) authorize(req *http.Request) error {
	switch {
	case c.token != "":
		req.Header.Set("Authorization", "Bearer "+c.token)
	case c.secret != "":
		now := time.Now()
		claims := jwt.RegisteredClaims{
			Issuer:    "wallplan",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(2 * time.Minute)),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(c.secret))
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "failed to sign engine token")
		}
		req.Header.Set("Authorization", "Bearer "+signed)
	}
	return nil
}

func checkStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "engine resource not found")
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return errors.New(errors.ErrCodeUnauthorized, "engine rejected credentials")
	case code >= 500:
		return &httputil.RetryableError{Err: errors.New(errors.ErrCodeNetwork, "engine returned status %d", code)}
	default:
		return errors.New(errors.ErrCodeNetwork, "engine returned status %d", code)
	}
}

// String renders a compact human-readable summary of the result.
func (r *PackResult) String() string {
	return fmt.Sprintf("job %s (%s): %d rows, %.1f%% coverage", r.JobID, r.Status, r.Rows, r.CoveragePercent)
}
