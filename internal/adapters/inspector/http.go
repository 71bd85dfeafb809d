// Package inspector talks to the local window inspector service over HTTP.
package inspector

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"deskflow/internal/domain"
)

// Client queries the desktop window inspector HTTP API.
type Client struct {
	http *resty.Client
}

// NewClient builds a client for the inspector service at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{http: c}
}

// ActiveWindow returns the currently focused window. The second return is
// false when no window has focus.
func (c *Client) ActiveWindow(ctx context.Context) (domain.WindowObservation, bool, error) {
	var obs domain.WindowObservation

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&obs).
		Get("/active-window")
	if err != nil {
		return domain.WindowObservation{}, false, fmt.Errorf("active window request failed: %w", err)
	}

	if resp.StatusCode() == http.StatusNoContent {
		return domain.WindowObservation{}, false, nil
	}
	if resp.IsError() {
		return domain.WindowObservation{}, false, fmt.Errorf("active window request returned %s", resp.Status())
	}
	if obs.IsZero() {
		return domain.WindowObservation{}, false, nil
	}

	return obs, true, nil
}

// VisibleWindows returns all currently visible windows.
func (c *Client) VisibleWindows(ctx context.Context) (domain.WindowSnapshot, error) {
	var snapshot domain.WindowSnapshot

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&snapshot).
		Get("/visible-windows")
	if err != nil {
		return nil, fmt.Errorf("visible windows request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("visible windows request returned %s", resp.Status())
	}

	return snapshot, nil
}

// InitPosition asks the inspector to reposition its overlay to the default
// corner.
func (c *Client) InitPosition(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Post("/init-position")
	if err != nil {
		return fmt.Errorf("init position request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("init position request returned %s", resp.Status())
	}
	return nil
}
