package resp

import (
	"strings"

	"github.com/sigurn/crc16"
)

var xmodemTable = crc16.MakeTable(crc16.CRC16_XMODEM)

func crcSlot(s string) uint16 {
	return crc16.Checksum([]byte(s), xmodemTable) % ClusterSlots
}

// Keyslot maps a key to its cluster hash slot: CRC-16/XMODEM of the key,
// reduced modulo ClusterSlots.
//
// When the key contains a hash tag, only the tag is hashed, so that callers
// can colocate related keys on one slot: the tag is the substring strictly
// between the first '{' and the first '}' after it. The whole key is hashed
// when there is no '{', when '{' is the last character, when no '}' follows
// it, or when the tag would be empty ("{}"). This tie-break order is fixed;
// it determines routing compatibility across cluster clients.
func Keyslot(key string) uint16 {
	i := strings.IndexByte(key, '{')
	if i < 0 || i == len(key)-1 {
		return crcSlot(key)
	}
	j := strings.IndexByte(key[i+1:], '}')
	if j <= 0 {
		// No closing brace, or an empty tag.
		return crcSlot(key)
	}
	return crcSlot(key[i+1 : i+1+j])
}
