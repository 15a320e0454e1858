package inbox

import (
	"context"
)

// Record is one inbox entry as the message store exposes it. Date is epoch
// milliseconds in text form; stores disagree on whether it is a string or a
// number. Err is set when the store could not decode this entry; the rest of
// the batch is still usable.
type Record struct {
	Body string
	Date string
	Err  error
}

// MessageSource is a device message store behind a permission gate.
type MessageSource interface {
	// Supported reports whether this platform can read messages at all.
	Supported() bool
	// Messages returns the inbox entries dated at or after sinceMillis.
	// Entries whose date cannot be read are returned too, with the
	// caller left to decide.
	Messages(ctx context.Context, sinceMillis int64) ([]Record, error)
}

// NullSource is the MessageSource for platforms without SMS access.
type NullSource struct{}

// Supported always reports false.
func (NullSource) Supported() bool { return false }

// Messages always returns no messages.
func (NullSource) Messages(context.Context, int64) ([]Record, error) { return nil, nil }
