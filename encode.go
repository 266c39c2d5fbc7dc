package resp

import (
	"bytes"
	"io"
	"strconv"
)

// frameWriter carries a sticky error so the recursive encoding path does not
// have to check every write.
type frameWriter struct {
	w   io.Writer
	err error
}

func (fw *frameWriter) write(p []byte) {
	if fw.err == nil {
		_, fw.err = fw.w.Write(p)
	}
}

func (fw *frameWriter) writeString(s string) {
	if fw.err == nil {
		_, fw.err = io.WriteString(fw.w, s)
	}
}

func (fw *frameWriter) writeByte(b byte) {
	fw.write([]byte{b})
}

func (fw *frameWriter) writeDecimal(v int64) {
	var scratch [20]byte
	fw.write(strconv.AppendInt(scratch[:0], v, 10))
}

// WriteFrame writes the wire representation of f to w. Arrays encode each
// child in order through the same dispatch; nesting depth is bounded only by
// the call stack.
//
// The only failure modes are write faults from w and ErrInvalidFrame for a
// nil frame or an undefined kind.
func WriteFrame(w io.Writer, f *Frame) error {
	fw := &frameWriter{w: w}
	fw.writeFrame(f)
	return fw.err
}

// Encode appends the wire representation of f to buf and returns the
// buffer's new total length. Encoding is purely additive: existing buffer
// contents are never truncated or modified.
func Encode(buf *bytes.Buffer, f *Frame) (int, error) {
	buf.Grow(EncodedLen(f))
	if err := WriteFrame(buf, f); err != nil {
		return buf.Len(), err
	}
	return buf.Len(), nil
}

func (fw *frameWriter) writeFrame(f *Frame) {
	if fw.err != nil {
		return
	}
	if f == nil {
		fw.err = ErrInvalidFrame
		return
	}

	switch f.Kind {
	case SimpleString:
		fw.writeByte(simpleStringByte)
		fw.writeString(f.Str)
		fw.writeString(CRLF)

	case Error:
		fw.writeByte(errorByte)
		fw.writeString(f.Str)
		fw.writeString(CRLF)

	case Integer:
		fw.writeByte(integerByte)
		fw.writeDecimal(f.Int)
		fw.writeString(CRLF)

	case BulkString:
		fw.writeByte(bulkStringByte)
		fw.writeDecimal(int64(len(f.Bulk)))
		fw.writeString(CRLF)
		fw.write(f.Bulk)
		fw.writeString(CRLF)

	case Null:
		fw.writeString(NullBulk)

	case Array:
		fw.writeByte(arrayByte)
		fw.writeDecimal(int64(len(f.Array)))
		fw.writeString(CRLF)
		for _, child := range f.Array {
			fw.writeFrame(child)
		}

	case Moved, Ask:
		fw.writeByte(errorByte)
		fw.writeString(redirectionText(f.Kind, f.Slot, f.Host, f.Port))
		fw.writeString(CRLF)

	default:
		fw.err = ErrInvalidFrame
	}
}
