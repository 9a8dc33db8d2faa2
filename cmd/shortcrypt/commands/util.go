package commands

import "github.com/opaquekit/shortcrypt/internal/cliutil"

var requestID string

// cliRequestID lazily mints one correlation id per process invocation so
// every log line emitted by a single command run can be grepped together.
func cliRequestID() string {
	if requestID == "" {
		requestID = cliutil.NewRequestID()
	}
	return requestID
}
