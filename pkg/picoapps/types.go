package picoapps

import (
	"errors"
	"time"
)

// ErrAbnormalClose is returned when the server ends a stream with anything but a normal close.
var ErrAbnormalClose = errors.New("picoapps: stream closed abnormally")

// Config configures a Client.
type Config struct {
	URL              string
	AppID            string
	HandshakeTimeout time.Duration
}

// Validate fills defaults and checks the configuration.
func (c *Config) Validate() error {
	if c.URL == "" {
		c.URL = DefaultURL
	}
	if c.AppID == "" {
		c.AppID = DefaultAppID
	}
	if c.HandshakeTimeout <= 0 {
		c.HandshakeTimeout = DefaultHandshakeTimeout
	}
	return nil
}

// askMessage is the single message a client sends on a fresh stream.
type askMessage struct {
	AppID  string `json:"appId"`
	Prompt string `json:"prompt"`
}
