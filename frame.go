package resp

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/zeebo/xxh3"
)

// Kind identifies a Frame variant.
type Kind byte

const (
	SimpleString Kind = iota + 1
	Error
	Integer
	BulkString
	Array
	Null
	Moved
	Ask
)

var kindNames = map[Kind]string{
	SimpleString: "SimpleString",
	Error:        "Error",
	Integer:      "Integer",
	BulkString:   "BulkString",
	Array:        "Array",
	Null:         "Null",
	Moved:        "Moved",
	Ask:          "Ask",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Frame is one protocol value. Frames are recursively defined to account
// for arrays: an Array frame holds child frames of any kind, including
// nested arrays.
//
// A Frame is a pure value with no shared mutable state. Only the fields
// belonging to Kind are meaningful; use the New* constructors to get a
// consistently populated frame.
type Frame struct {
	Kind Kind

	Str   string   // SimpleString, Error
	Int   int64    // Integer
	Bulk  []byte   // BulkString
	Array []*Frame // Array

	// Moved, Ask
	Slot uint16
	Host string
	Port uint16
}

// NewSimpleString returns a SimpleString frame with the given text.
func NewSimpleString(s string) *Frame {
	return &Frame{Kind: SimpleString, Str: s}
}

// NewError returns an Error frame with the given message text.
func NewError(s string) *Frame {
	return &Frame{Kind: Error, Str: s}
}

// NewInteger returns an Integer frame with the given value.
func NewInteger(v int64) *Frame {
	return &Frame{Kind: Integer, Int: v}
}

// NewBulkString returns a BulkString frame carrying b. The payload is not
// required to be valid text. The slice is kept as-is, not copied.
func NewBulkString(b []byte) *Frame {
	return &Frame{Kind: BulkString, Bulk: b}
}

// NewArray returns an Array frame with the given children, in order.
func NewArray(children ...*Frame) *Frame {
	return &Frame{Kind: Array, Array: children}
}

// NewNull returns a Null frame. Null is wire-distinct from an empty bulk
// string and from an empty array.
func NewNull() *Frame {
	return &Frame{Kind: Null}
}

// NewMoved returns a Moved redirection frame.
func NewMoved(slot uint16, host string, port uint16) *Frame {
	return &Frame{Kind: Moved, Slot: slot, Host: host, Port: port}
}

// NewAsk returns an Ask redirection frame.
func NewAsk(slot uint16, host string, port uint16) *Frame {
	return &Frame{Kind: Ask, Slot: slot, Host: host, Port: port}
}

// Equal reports whether f and o are structurally equal: same kind and, for
// arrays, pairwise-equal children.
func (f *Frame) Equal(o *Frame) bool {
	if f == nil || o == nil {
		return f == o
	}
	if f.Kind != o.Kind {
		return false
	}
	switch f.Kind {
	case SimpleString, Error:
		return f.Str == o.Str
	case Integer:
		return f.Int == o.Int
	case BulkString:
		return bytes.Equal(f.Bulk, o.Bulk)
	case Null:
		return true
	case Array:
		if len(f.Array) != len(o.Array) {
			return false
		}
		for i := range f.Array {
			if !f.Array[i].Equal(o.Array[i]) {
				return false
			}
		}
		return true
	case Moved, Ask:
		return f.Slot == o.Slot && f.Host == o.Host && f.Port == o.Port
	}
	return false
}

// StringValue returns the text carried by a string-bearing frame.
// SimpleString and Error frames always report their text; a BulkString
// reports its payload only when it is valid UTF-8. All other kinds
// report false.
func (f *Frame) StringValue() (string, bool) {
	switch f.Kind {
	case SimpleString, Error:
		return f.Str, true
	case BulkString:
		if utf8.Valid(f.Bulk) {
			return string(f.Bulk), true
		}
	}
	return "", false
}

// MatchesString reports whether a SimpleString, BulkString or Error frame
// carries exactly the text s. Every other kind never matches.
func (f *Frame) MatchesString(s string) bool {
	switch f.Kind {
	case SimpleString, Error:
		return f.Str == s
	case BulkString:
		return string(f.Bulk) == s
	}
	return false
}

// String renders the frame for display (not for the wire; see WriteFrame).
// SimpleString renders verbatim, Error with an "error: " marker, Integer as
// decimal digits, BulkString as text when valid UTF-8 and quoted-escaped
// otherwise, Null as "(nil)", Array as its children separated by single
// spaces, and Moved/Ask as their redirection text.
func (f *Frame) String() string {
	if f == nil {
		return ""
	}
	switch f.Kind {
	case SimpleString:
		return f.Str
	case Error:
		return "error: " + f.Str
	case Integer:
		return strconv.FormatInt(f.Int, 10)
	case BulkString:
		if utf8.Valid(f.Bulk) {
			return string(f.Bulk)
		}
		return strconv.Quote(string(f.Bulk))
	case Null:
		return "(nil)"
	case Array:
		var sb strings.Builder
		for i, child := range f.Array {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(child.String())
		}
		return sb.String()
	case Moved, Ask:
		return redirectionText(f.Kind, f.Slot, f.Host, f.Port)
	}
	return ""
}

// Sum64 returns a 64-bit fingerprint of the frame's encoded wire form.
// Structurally equal frames hash equal, so the result can key dedup or
// routing tables by frame content. Returns 0 for frames that cannot be
// encoded.
func (f *Frame) Sum64() uint64 {
	var buf bytes.Buffer
	buf.Grow(EncodedLen(f))
	if err := WriteFrame(&buf, f); err != nil {
		return 0
	}
	return xxh3.Hash(buf.Bytes())
}
