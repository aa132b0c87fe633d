package params

import "time"

type WebDaemonConfig struct {
	// NetAddr and NetPort define the HTTP listener.
	NetAddr string
	NetPort int

	// CacheTTL bounds how long a smoothed response is served from cache.
	CacheTTL time.Duration
}

func DefaultWebDaemonConfig() *WebDaemonConfig {
	return &WebDaemonConfig{
		NetAddr:  "localhost",
		NetPort:  8080,
		CacheTTL: 10 * time.Minute,
	}
}
