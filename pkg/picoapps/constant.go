package picoapps

import "time"

const (
	// DefaultURL is the streaming endpoint of the hosted assistant.
	DefaultURL = "wss://backend.buildpicoapps.com/ask_ai_streaming_v2"

	// DefaultAppID identifies the application to the endpoint.
	DefaultAppID = "early-ahead"

	// DefaultHandshakeTimeout bounds the websocket upgrade only. Streams have no deadline.
	DefaultHandshakeTimeout = 15 * time.Second
)
