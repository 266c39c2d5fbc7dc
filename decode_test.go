package resp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// padding appended after complete frames; must never change what decodes.
const decodePadding = "FOOBARBAZ"

func bulk(s string) *Frame {
	return NewBulkString([]byte(s))
}

// Valid wire encodings with their expected frames and consumed counts.
// Shared by the decode, padding, truncation and Check tests.
var decodeCases = []struct {
	name  string
	input string
	want  *Frame
	wantN int
}{
	{
		name:  "integer",
		input: ":48293\r\n",
		want:  NewInteger(48293),
		wantN: 8,
	},
	{
		name:  "negative integer",
		input: ":-100\r\n",
		want:  NewInteger(-100),
		wantN: 7,
	},
	{
		name:  "zero integer",
		input: ":0\r\n",
		want:  NewInteger(0),
		wantN: 4,
	},
	{
		name:  "simple string",
		input: "+string\r\n",
		want:  NewSimpleString("string"),
		wantN: 9,
	},
	{
		name:  "empty simple string",
		input: "+\r\n",
		want:  NewSimpleString(""),
		wantN: 3,
	},
	{
		name:  "bulk string",
		input: "$3\r\nfoo\r\n",
		want:  bulk("foo"),
		wantN: 9,
	},
	{
		name:  "empty bulk string",
		input: "$0\r\n\r\n",
		want:  NewBulkString([]byte{}),
		wantN: 6,
	},
	{
		name:  "binary bulk string",
		input: "$2\r\n\xff\xfe\r\n",
		want:  NewBulkString([]byte{0xff, 0xfe}),
		wantN: 8,
	},
	{
		name:  "bulk string containing CRLF",
		input: "$8\r\nfoo\r\nbar\r\n",
		want:  bulk("foo\r\nbar"),
		wantN: 14,
	},
	{
		name:  "null",
		input: "$-1\r\n",
		want:  NewNull(),
		wantN: 5,
	},
	{
		name:  "array",
		input: "*2\r\n+Foo\r\n+Bar\r\n",
		want:  NewArray(NewSimpleString("Foo"), NewSimpleString("Bar")),
		wantN: 16,
	},
	{
		name:  "array with nulls",
		input: "*3\r\n$3\r\nFoo\r\n$-1\r\n$3\r\nBar\r\n",
		want:  NewArray(bulk("Foo"), NewNull(), bulk("Bar")),
		wantN: 27,
	},
	{
		name:  "empty array",
		input: "*0\r\n",
		want:  NewArray(),
		wantN: 4,
	},
	{
		name:  "nested array",
		input: "*2\r\n*3\r\n:1\r\n:2\r\n:3\r\n*2\r\n+Foo\r\n-Bar\r\n",
		want: NewArray(
			NewArray(NewInteger(1), NewInteger(2), NewInteger(3)),
			NewArray(NewSimpleString("Foo"), NewError("Bar")),
		),
		wantN: 36,
	},
	{
		name:  "error",
		input: "-WRONGTYPE Operation against a key holding the wrong kind of value\r\n",
		want:  NewError("WRONGTYPE Operation against a key holding the wrong kind of value"),
		wantN: 68,
	},
	{
		name:  "moved error",
		input: "-MOVED 3999 127.0.0.1:6381\r\n",
		want:  NewMoved(3999, "127.0.0.1", 6381),
		wantN: 28,
	},
	{
		name:  "ask error",
		input: "-ASK 3999 127.0.0.1:6381\r\n",
		want:  NewAsk(3999, "127.0.0.1", 6381),
		wantN: 26,
	},
	{
		name:  "almost-redirection stays plain error",
		input: "-MOVED abc 127.0.0.1:6381\r\n",
		want:  NewError("MOVED abc 127.0.0.1:6381"),
		wantN: 27,
	},
	{
		name:  "redirection with missing address stays plain error",
		input: "-MOVED 3999\r\n",
		want:  NewError("MOVED 3999"),
		wantN: 13,
	},
	{
		name:  "redirection with out-of-range slot stays plain error",
		input: "-MOVED 16384 127.0.0.1:6381\r\n",
		want:  NewError("MOVED 16384 127.0.0.1:6381"),
		wantN: 29,
	},
}

func TestDecode(t *testing.T) {
	for _, tt := range decodeCases {
		t.Run(tt.name, func(t *testing.T) {
			frame, n, err := Decode([]byte(tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.wantN, n)
			require.Equal(t, tt.want, frame)
			require.True(t, frame.Equal(tt.want))
		})
	}
}

func TestDecodeIgnoresPadding(t *testing.T) {
	for _, tt := range decodeCases {
		t.Run(tt.name, func(t *testing.T) {
			frame, n, err := Decode([]byte(tt.input + decodePadding))
			require.NoError(t, err)
			require.Equal(t, tt.wantN, n, "padding must not change the consumed count")
			require.Equal(t, tt.want, frame)
		})
	}
}

func TestDecodeIncomplete(t *testing.T) {
	for _, tt := range decodeCases {
		t.Run(tt.name, func(t *testing.T) {
			// Every strict prefix of a valid encoding is incomplete,
			// never an error.
			for cut := 0; cut < len(tt.input); cut++ {
				frame, n, err := Decode([]byte(tt.input[:cut]))
				require.NoError(t, err, "prefix of %d bytes", cut)
				require.Nil(t, frame, "prefix of %d bytes", cut)
				require.Zero(t, n, "prefix of %d bytes", cut)
			}
		})
	}
}

func TestDecodeDoesNotMutateBuffer(t *testing.T) {
	input := []byte("$3\r\nfoo\r\ntrailing")
	saved := append([]byte(nil), input...)

	frame, n, err := Decode(input)
	require.NoError(t, err)
	require.Equal(t, 9, n)
	require.Equal(t, saved, input)

	// The payload is a copy, not a view into the source buffer.
	input[4] = 'X'
	require.Equal(t, bulk("foo"), frame)
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown type byte", "foobarbazwibblewobble"},
		{"non-decimal integer", ":abc\r\n"},
		{"plus-signed integer", ":+123\r\n"},
		{"empty integer", ":\r\n"},
		{"integer overflow", ":999999999999999999999\r\n"},
		{"negative bulk length", "$-2\r\n"},
		{"junk after bulk length sign", "$-1x\r\n"},
		{"non-decimal bulk length", "$3x\r\nfoo\r\n"},
		{"bulk payload without CRLF", "$3\r\nfooXY"},
		{"negative array count", "*-1\r\n"},
		{"non-decimal array count", "*x\r\n"},
		{"malformed array child", "*1\r\nX\r\n"},
		{"invalid UTF-8 simple string", "+\xff\xfe\r\n"},
		{"invalid UTF-8 error body", "-\xff\xfe\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, n, err := Decode([]byte(tt.input))
			require.Error(t, err)
			require.Nil(t, frame)
			require.Zero(t, n)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			require.NotEmpty(t, parseErr.Message)
			require.NotErrorIs(t, err, ErrIncomplete,
				"malformed data must be fatal, not retryable")
		})
	}
}

func TestCheck(t *testing.T) {
	for _, tt := range decodeCases {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Check([]byte(tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.wantN, n)

			// Padding after the frame is ignored.
			n, err = Check([]byte(tt.input + decodePadding))
			require.NoError(t, err)
			require.Equal(t, tt.wantN, n)

			// Strict prefixes are incomplete.
			for cut := 0; cut < len(tt.input); cut++ {
				_, err := Check([]byte(tt.input[:cut]))
				require.ErrorIs(t, err, ErrIncomplete, "prefix of %d bytes", cut)
			}
		})
	}
}

func TestCheckMalformed(t *testing.T) {
	for _, input := range []string{
		"foobarbazwibblewobble",
		":abc\r\n",
		"*-1\r\n",
		"*2\r\n:1\r\nX\r\n",
	} {
		n, err := Check([]byte(input))
		require.Zero(t, n)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr, "input %q", input)
	}
}

func TestCheckIsAdvisory(t *testing.T) {
	// The scan verifies structure, not content: a negative bulk length other
	// than the -1 sentinel passes Check but fails Decode.
	n, err := Check([]byte("$-9\r\n"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	_, _, err = Decode([]byte("$-9\r\n"))
	require.Error(t, err)
}

func TestDecodeEmptyBuffer(t *testing.T) {
	frame, n, err := Decode(nil)
	require.NoError(t, err)
	require.Nil(t, frame)
	require.Zero(t, n)

	_, err = Check(nil)
	require.True(t, errors.Is(err, ErrIncomplete))
}

func TestDecodeBackToBackFrames(t *testing.T) {
	buf := []byte("+OK\r\n:7\r\n$-1\r\n")
	want := []*Frame{NewSimpleString("OK"), NewInteger(7), NewNull()}

	var got []*Frame
	for len(buf) > 0 {
		frame, n, err := Decode(buf)
		require.NoError(t, err)
		require.NotNil(t, frame)
		got = append(got, frame)
		buf = buf[n:]
	}
	require.Equal(t, want, got)
}
