package resp

// Frame type tag bytes (the first byte of every wire frame).
const (
	simpleStringByte = '+'
	errorByte        = '-'
	integerByte      = ':'
	bulkStringByte   = '$'
	arrayByte        = '*'
)

// Protocol delimiters and sentinels
const (
	// CRLF is the line terminator between frames and frame parts.
	CRLF = "\r\n"

	// NullBulk is the fixed 5-byte wire form of a Null frame.
	NullBulk = "$-1\r\n"
)

// ClusterSlots is the number of hash slots a cluster partitions keys into.
// Keyslot always returns a value in [0, ClusterSlots).
const ClusterSlots = 16384

// Redirection kind literals as they appear in error frame bodies.
const (
	movedPrefix = "MOVED"
	askPrefix   = "ASK"
)

// Pre-allocated byte slices for comparisons (avoid allocation in hot path)
var (
	crlfBytes     = []byte(CRLF)
	nullLineBytes = []byte("-1")
)
