package resp

import (
	"bytes"
	"errors"
	"strconv"
	"unicode/utf8"
)

// cursor is a read position into an immutable, caller-owned buffer.
// Lengths and tags are scanned in place; only bulk-string payloads are
// copied out.
type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) remaining() int {
	return len(c.buf) - c.pos
}

func (c *cursor) readByte() (byte, error) {
	if c.pos >= len(c.buf) {
		return 0, ErrIncomplete
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

func (c *cursor) peekByte() (byte, error) {
	if c.pos >= len(c.buf) {
		return 0, ErrIncomplete
	}
	return c.buf[c.pos], nil
}

func (c *cursor) skip(n int) error {
	if c.remaining() < n {
		return ErrIncomplete
	}
	c.pos += n
	return nil
}

// readLine returns the bytes from the cursor up to (not including) the next
// CRLF pair and advances past the terminator. ErrIncomplete when no CRLF
// exists before the buffer ends.
func (c *cursor) readLine() ([]byte, error) {
	i := bytes.Index(c.buf[c.pos:], crlfBytes)
	if i < 0 {
		return nil, ErrIncomplete
	}
	line := c.buf[c.pos : c.pos+i]
	c.pos += i + len(crlfBytes)
	return line, nil
}

// readDecimal reads a CRLF-terminated signed decimal.
func (c *cursor) readDecimal() (int64, error) {
	line, err := c.readLine()
	if err != nil {
		return 0, err
	}
	return parseDecimal(line)
}

// parseDecimal parses a strict ASCII decimal: digits with an optional
// leading '-'. A leading '+' is rejected so that only canonical encodings
// are accepted. Syntax and range failures fold into the same ParseError.
func parseDecimal(line []byte) (int64, error) {
	if len(line) == 0 || line[0] == '+' {
		return 0, &ParseError{Message: "invalid decimal " + strconv.Quote(string(line))}
	}
	v, err := strconv.ParseInt(string(line), 10, 64)
	if err != nil {
		return 0, &ParseError{Message: "invalid decimal " + strconv.Quote(string(line)), Err: err}
	}
	return v, nil
}

// Decode parses the first complete frame in buf, returning the frame and the
// exact number of bytes it occupied. Bytes after the frame are ignored and
// left for the next call; buf itself is never mutated, so the caller is
// responsible for advancing its own buffer by the consumed count.
//
// When buf holds only a prefix of a valid frame, Decode returns (nil, 0, nil):
// append more bytes and call again. A non-nil error means the buffer contents
// can never become a valid frame; decoding on this stream must stop.
func Decode(buf []byte) (*Frame, int, error) {
	cur := cursor{buf: buf}
	f, err := parseFrame(&cur)
	if err != nil {
		if errors.Is(err, ErrIncomplete) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	return f, cur.pos, nil
}

// Check scans buf for one complete frame without materializing it and
// returns the frame's byte length. It is advisory, side-effect-free and
// idempotent: callers can validate buffered input cheaply before committing
// to a full parse. ErrIncomplete when only a prefix is present.
func Check(buf []byte) (int, error) {
	cur := cursor{buf: buf}
	if err := checkFrame(&cur); err != nil {
		return 0, err
	}
	return cur.pos, nil
}

func parseFrame(c *cursor) (*Frame, error) {
	tag, err := c.readByte()
	if err != nil {
		return nil, err
	}

	switch tag {
	case simpleStringByte:
		line, err := c.readLine()
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(line) {
			return nil, &ParseError{Message: "simple string is not valid UTF-8"}
		}
		return NewSimpleString(string(line)), nil

	case errorByte:
		line, err := c.readLine()
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(line) {
			return nil, &ParseError{Message: "error body is not valid UTF-8"}
		}
		body := string(line)
		// A MOVED/ASK body becomes a redirection frame; anything that does
		// not parse as one stays a plain error frame.
		if r, err := ParseRedirection(body); err == nil {
			return r.Frame(), nil
		}
		return NewError(body), nil

	case integerByte:
		v, err := c.readDecimal()
		if err != nil {
			return nil, err
		}
		return NewInteger(v), nil

	case bulkStringByte:
		return parseBulkString(c)

	case arrayByte:
		count, err := c.readDecimal()
		if err != nil {
			return nil, err
		}
		if count < 0 {
			return nil, &ParseError{Message: "negative array count"}
		}
		var children []*Frame
		if count > 0 {
			// Cap the preallocation by what the buffer could actually
			// hold: a child frame is at least three bytes.
			capHint := int(count)
			if limit := c.remaining() / 3; capHint > limit {
				capHint = limit
			}
			children = make([]*Frame, 0, capHint)
		}
		for i := int64(0); i < count; i++ {
			child, err := parseFrame(c)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return NewArray(children...), nil
	}

	return nil, &ParseError{Message: "invalid frame type byte " + strconv.Quote(string(tag))}
}

func parseBulkString(c *cursor) (*Frame, error) {
	b, err := c.peekByte()
	if err != nil {
		return nil, err
	}

	if b == '-' {
		// Only the "$-1\r\n" null sentinel may carry a negative length.
		line, err := c.readLine()
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(line, nullLineBytes) {
			return nil, &ParseError{Message: "negative bulk string length " + strconv.Quote(string(line))}
		}
		return NewNull(), nil
	}

	v, err := c.readDecimal()
	if err != nil {
		return nil, err
	}
	// The length line cannot be negative here (no '-' prefix), but it may
	// declare more payload than the buffer holds yet.
	if v > int64(len(c.buf)) {
		return nil, ErrIncomplete
	}
	n := int(v)
	if c.remaining() < n+2 {
		return nil, ErrIncomplete
	}

	data := make([]byte, n)
	copy(data, c.buf[c.pos:c.pos+n])
	c.pos += n

	if !bytes.Equal(c.buf[c.pos:c.pos+2], crlfBytes) {
		return nil, &ParseError{Message: "bulk string payload not terminated by CRLF"}
	}
	c.pos += 2

	return NewBulkString(data), nil
}

func checkFrame(c *cursor) error {
	tag, err := c.readByte()
	if err != nil {
		return err
	}

	switch tag {
	case simpleStringByte, errorByte:
		_, err := c.readLine()
		return err

	case integerByte:
		_, err := c.readDecimal()
		return err

	case bulkStringByte:
		b, err := c.peekByte()
		if err != nil {
			return err
		}
		if b == '-' {
			// Null sentinel; the scan only needs the line to be terminated.
			_, err := c.readLine()
			return err
		}
		v, err := c.readDecimal()
		if err != nil {
			return err
		}
		if v > int64(len(c.buf)) {
			return ErrIncomplete
		}
		return c.skip(int(v) + 2)

	case arrayByte:
		count, err := c.readDecimal()
		if err != nil {
			return err
		}
		if count < 0 {
			return &ParseError{Message: "negative array count"}
		}
		for i := int64(0); i < count; i++ {
			if err := checkFrame(c); err != nil {
				return err
			}
		}
		return nil
	}

	return &ParseError{Message: "invalid frame type byte " + strconv.Quote(string(tag))}
}
