package resp

import "errors"

// Error values for codec operations.
// The decoder distinguishes two failure kinds: a buffer that holds only a
// prefix of a valid frame (recoverable, read more and retry) and a buffer
// whose contents can never become a valid frame (fatal for the byte stream).

// ErrIncomplete reports that the buffer ends before a complete frame does.
// No input was consumed; the caller should append more bytes and retry.
//
// Check returns it directly. Decode translates it into a (nil, 0, nil)
// result, so callers of Decode never see it.
var ErrIncomplete = errors.New("resp: incomplete frame")

// ErrInvalidFrame is returned by the encoder when given a nil frame or a
// frame whose Kind is not one of the defined variants (such as a zero-value
// Frame). It never occurs for frames built with the New* constructors or
// returned by Decode.
var ErrInvalidFrame = errors.New("resp: invalid frame")

// ParseError represents a protocol violation in the input buffer.
// Once returned, byte offsets into the stream are meaningless: the caller
// must not retry with more data or attempt to resynchronize by skipping
// bytes. Close the connection instead.
//
// Common causes:
//   - Unknown frame type byte
//   - Invalid decimal syntax in an integer, length or count
//   - Negative bulk-string length or array count (other than the $-1 sentinel)
//   - Simple string or error body that is not valid UTF-8
//   - Missing CRLF after a bulk-string payload
type ParseError struct {
	Message string
	Err     error // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return "resp: " + e.Message + ": " + e.Err.Error()
	}
	return "resp: " + e.Message
}

// Unwrap returns the underlying error for error chain inspection.
func (e *ParseError) Unwrap() error {
	return e.Err
}
