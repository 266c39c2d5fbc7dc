// Package resp implements the RESP wire codec used by a key-value store's
// client/server transport: a line-oriented, length-prefixed, recursively
// structured format.
//
// The package converts between an in-memory tree of typed values (Frame) and
// the byte-buffer wire representation. It additionally recognizes cluster
// redirection signals (MOVED/ASK) embedded in error frames, and computes the
// CRC-16 hash-slot assignment used to route keys across a sharded cluster.
//
// There is no networking here: transport I/O, connection management, command
// semantics and redirection policy all belong to the caller. A transport
// layer accumulates bytes into a buffer, calls Decode until it reports "no
// frame yet", appends more bytes and retries; outgoing frames are appended
// to a write buffer with Encode and flushed by the transport.
//
// # Decoding
//
// Decode parses the first complete frame in a buffer and reports exactly how
// many bytes it occupied. The buffer is never mutated; the caller advances
// it by the consumed count:
//
//	frame, n, err := resp.Decode(buf)
//	if err != nil {
//	    // protocol violation: close the connection, do not retry
//	}
//	if frame == nil {
//	    // incomplete: read more bytes and call Decode again
//	}
//	buf = buf[n:]
//
// The two failure kinds are strictly separated: running out of buffer
// mid-frame yields (nil, 0, nil), while malformed data yields a *ParseError
// that is fatal for the stream. Check performs the same scan without
// building the frame, for callers that want to validate buffered input
// cheaply behind a framing boundary.
//
// # Encoding
//
// Encode appends a frame's wire form to a bytes.Buffer and returns the new
// total length; WriteFrame targets any io.Writer. EncodedLen pre-computes
// the exact encoded size for buffer-sizing code paths:
//
//	buf.Grow(resp.EncodedLen(frame))
//	n, err := resp.Encode(buf, frame)
//
// # Cluster routing
//
// An error frame whose body matches "MOVED <slot> <host>:<port>" or
// "ASK <slot> <host>:<port>" decodes into a Moved or Ask frame instead of a
// plain Error; ParseRedirection exposes the same classification directly.
// Keyslot maps a key (honoring {hash tags}) to one of the 16384 cluster
// slots.
//
// # Concurrency
//
// Decode, Check, Encode and Keyslot are stateless, reentrant pure functions
// over their inputs. Independent buffers can be decoded concurrently without
// coordination; a single connection's buffer must be decoded by one logical
// reader at a time, which is the transport's discipline, not this package's.
// No call blocks, suspends or acquires a resource.
package resp
