package clients

import "time"

const (
	MAX_RETRIES  = 3
	RETRY_DELAY  = 250 * time.Millisecond
	CLIENT_NAME  = "reviewlens"
	DIAL_TIMEOUT = 5 * time.Second
)
