// Package mail delivers outbound email. The workflow layer depends only on
// the Sender interface; SMTP is the shipped implementation.
package mail

import "context"

// Sender delivers a single message. Implementations must honor ctx for
// timeouts and report delivery failure with an error; there are no retries
// at this layer.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}
