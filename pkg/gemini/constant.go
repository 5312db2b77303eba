package gemini

import "time"

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.0-flash"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

// Generation parameters fixed by the service; only temperature is
// caller-controlled.
const (
	TopP            = 0.95
	TopK            = 40
	MaxOutputTokens = 1024
)
