package resp

// Length-calculation helpers for callers that pre-size buffers before
// encoding. EncodedLen must agree exactly with what WriteFrame writes.

// udigits returns the number of ASCII digits in the decimal rendering of v.
func udigits(v uint64) int {
	n := 1
	for v >= 10 {
		n++
		v /= 10
	}
	return n
}

// decimalLen returns the rendered length of v, including a leading '-' for
// negative values.
func decimalLen(v int64) int {
	if v >= 0 {
		return udigits(uint64(v))
	}
	// Negate via uint64 so MinInt64 does not overflow.
	return 1 + udigits(uint64(-(v+1))+1)
}

// EncodedLen returns the exact number of bytes WriteFrame produces for f:
// the prefix byte, the content and the terminator, recursively for arrays.
// Returns 0 for frames WriteFrame would reject.
func EncodedLen(f *Frame) int {
	if f == nil {
		return 0
	}
	switch f.Kind {
	case SimpleString, Error:
		return 1 + len(f.Str) + len(CRLF)
	case Integer:
		return 1 + decimalLen(f.Int) + len(CRLF)
	case BulkString:
		return 1 + decimalLen(int64(len(f.Bulk))) + len(CRLF) + len(f.Bulk) + len(CRLF)
	case Null:
		return len(NullBulk)
	case Array:
		n := 1 + decimalLen(int64(len(f.Array))) + len(CRLF)
		for _, child := range f.Array {
			n += EncodedLen(child)
		}
		return n
	case Moved, Ask:
		prefix := movedPrefix
		if f.Kind == Ask {
			prefix = askPrefix
		}
		// '-' <prefix> ' ' <slot> ' ' <host> ':' <port> CRLF
		return 1 + len(prefix) + 1 + udigits(uint64(f.Slot)) + 1 + len(f.Host) + 1 + udigits(uint64(f.Port)) + len(CRLF)
	}
	return 0
}
