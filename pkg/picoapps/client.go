package picoapps

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"
)

// Client opens one websocket per prompt and streams the answer back in fragments.
// It is safe for concurrent use.
type Client struct {
	url    string
	appID  string
	dialer *websocket.Dialer
}

// New creates a picoapps client.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		url:   cfg.URL,
		appID: cfg.AppID,
		dialer: &websocket.Dialer{
			Proxy:            websocket.DefaultDialer.Proxy,
			HandshakeTimeout: cfg.HandshakeTimeout,
		},
	}, nil
}

// Stream sends prompt and calls onFragment for every message until the server closes.
// A normal close (1000) is success. Cancelling ctx tears the socket down.
func (c *Client) Stream(ctx context.Context, prompt string, onFragment func(string) error) error {
	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("picoapps: dial: %w", err)
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	if err := conn.WriteJSON(askMessage{AppID: c.appID, Prompt: prompt}); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("picoapps: send: %w", err)
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%w: %v", ErrAbnormalClose, err)
		}
		if err := onFragment(string(data)); err != nil {
			return err
		}
	}
}
