// Package checksum implements the running CRC-32 used to protect checkpoint
// records: the IEEE polynomial (0xEDB88320, reflected), zero initial value,
// no output XOR. The stored trailer in a checkpoint file complements the
// running value; the running value itself never is.
package checksum

import (
	"hash/crc32"

	"github.com/golang/glog"
)

const polynomial = 0xEDB88320

// table is generated once at init and cross-checked against the standard
// library's own IEEE table by SelfCheck.
var table [256]uint32

func init() {
	for i := 0; i < 256; i++ {
		c := uint32(i)
		for k := 0; k < 8; k++ {
			if c&1 != 0 {
				c = polynomial ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		table[i] = c
	}
}

// Update1 folds a single byte into the running crc.
func Update1(crc uint32, b byte) uint32 {
	return table[byte(crc)^b] ^ (crc >> 8)
}

// UpdateBuf folds an entire buffer into the running crc.
func UpdateBuf(crc uint32, buf []byte) uint32 {
	for _, b := range buf {
		crc = Update1(crc, b)
	}
	return crc
}

// Checksum computes a one-shot CRC-32 over buf, initializing the running
// value internally.
func Checksum(buf []byte) uint32 {
	return UpdateBuf(0, buf)
}

// SelfCheck verifies the locally generated table against the standard
// library's hash/crc32.IEEETable. A mismatch means the table was corrupted
// at build time and nothing downstream can be trusted; it is fatal.
func SelfCheck() bool {
	ref := crc32.IEEETable
	for i, v := range table {
		if ref[i] != v {
			glog.Fatalf("checksum: corrupted CRC-32 table at entry %d: got %#08x, want %#08x", i, v, ref[i])
			return false
		}
	}
	return true
}
