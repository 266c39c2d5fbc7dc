package resp

import (
	"fmt"
	"strconv"
	"strings"
)

// Redirection is the parsed form of a cluster redirection error body,
// naming the hash slot that moved and the endpoint now serving it. It is an
// intermediate value: the decoder folds it straight into a Moved or Ask
// frame, and callers that construct one usually do the same via Frame.
//
// See https://redis.io/topics/cluster-spec#redirection-and-resharding
type Redirection struct {
	Kind Kind // Moved or Ask
	Slot uint16
	Host string
	Port uint16
}

// ErrNotRedirection reports that an error frame body is not a cluster
// redirection. The decoder swallows it and falls back to a plain Error
// frame; it is surfaced only to direct callers of ParseRedirection.
var ErrNotRedirection = fmt.Errorf("resp: not a redirection")

// ParseRedirection parses an error body of the form
// "MOVED <slot> <host>:<port>" or "ASK <slot> <host>:<port>".
//
// The body must split on single spaces into exactly three tokens, the kind
// is case-sensitive, the slot must be a decimal in [0, ClusterSlots), and
// the address must contain exactly one colon with a decimal uint16 port
// after it.
func ParseRedirection(s string) (Redirection, error) {
	parts := strings.Split(s, " ")
	if len(parts) != 3 {
		return Redirection{}, ErrNotRedirection
	}

	var kind Kind
	switch parts[0] {
	case movedPrefix:
		kind = Moved
	case askPrefix:
		kind = Ask
	default:
		return Redirection{}, fmt.Errorf("%w: unknown kind %q", ErrNotRedirection, parts[0])
	}

	slot, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || slot >= ClusterSlots {
		return Redirection{}, fmt.Errorf("%w: invalid hash slot %q", ErrNotRedirection, parts[1])
	}

	host, portPart, ok := strings.Cut(parts[2], ":")
	if !ok || strings.Contains(portPart, ":") {
		return Redirection{}, fmt.Errorf("%w: invalid address %q", ErrNotRedirection, parts[2])
	}
	port, err := strconv.ParseUint(portPart, 10, 16)
	if err != nil {
		return Redirection{}, fmt.Errorf("%w: invalid port %q", ErrNotRedirection, portPart)
	}

	return Redirection{Kind: kind, Slot: uint16(slot), Host: host, Port: uint16(port)}, nil
}

// Frame folds the redirection back into its Moved or Ask frame variant.
func (r Redirection) Frame() *Frame {
	return &Frame{Kind: r.Kind, Slot: r.Slot, Host: r.Host, Port: r.Port}
}

// redirectionText reconstructs the wire body "<KIND> <slot> <host>:<port>".
func redirectionText(kind Kind, slot uint16, host string, port uint16) string {
	prefix := movedPrefix
	if kind == Ask {
		prefix = askPrefix
	}
	return prefix + " " + strconv.FormatUint(uint64(slot), 10) + " " +
		host + ":" + strconv.FormatUint(uint64(port), 10)
}
