package http

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 10 * time.Second
	// DefaultRetries is the default number of retries.
	DefaultRetries = 0
	// DefaultRetryWait is the default wait between retries.
	DefaultRetryWait = 500 * time.Millisecond

	contentTypeJSON = "application/json"
)

// DefaultConfig returns default ClientConfig.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	}
}
