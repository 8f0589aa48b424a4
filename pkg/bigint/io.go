package bigint

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Panda381/BigInt/pkg/checksum"
)

// Save writes z's binary record to w: an 8-byte little-endian signed size
// header (magnitude is the byte count of the magnitude, sign encodes
// z.Sign()), followed by that many little-endian magnitude bytes. Both
// header and payload are folded into crc, whose updated value is
// returned so callers can chain Save calls into one running checksum.
func (z *BigInt) Save(w io.Writer, crc uint32) (uint32, error) {
	raw := make([]byte, 8*len(z.data))
	for i, word := range z.data {
		binary.LittleEndian.PutUint64(raw[i*8:], word)
	}
	// z is reduced, so the top segment is nonzero: trim only the top
	// segment's high zero bytes, never a lower (interior) segment's.
	n := len(raw)
	for n > 0 && n > (len(z.data)-1)*8+1 && raw[n-1] == 0 {
		n--
	}
	raw = raw[:n]

	size := int64(len(raw))
	if z.neg && size != 0 {
		size = -size
	}

	var header [8]byte
	binary.LittleEndian.PutUint64(header[:], uint64(size))

	if err := writeFull(w, header[:]); err != nil {
		return crc, fmt.Errorf("bigint: save header: %w", err)
	}
	crc = checksum.UpdateBuf(crc, header[:])

	if len(raw) > 0 {
		if err := writeFull(w, raw); err != nil {
			return crc, fmt.Errorf("bigint: save payload: %w", err)
		}
		crc = checksum.UpdateBuf(crc, raw)
	}
	return crc, nil
}

// Load reads a binary record written by Save into z, returning the
// updated running CRC.
func (z *BigInt) Load(r io.Reader, crc uint32) (uint32, error) {
	var header [8]byte
	if err := readFull(r, header[:]); err != nil {
		return crc, fmt.Errorf("bigint: load header: %w", err)
	}
	crc = checksum.UpdateBuf(crc, header[:])

	size := int64(binary.LittleEndian.Uint64(header[:]))
	if size == 0 {
		z.SetZero()
		return crc, nil
	}
	neg := size < 0
	if neg {
		size = -size
	}

	raw := make([]byte, size)
	if err := readFull(r, raw); err != nil {
		return crc, fmt.Errorf("bigint: load payload: %w", err)
	}
	crc = checksum.UpdateBuf(crc, raw)

	n := (len(raw) + 7) / 8
	z.SetSize(n)
	for i := range z.data {
		z.data[i] = 0
	}
	for i, b := range raw {
		z.data[i/8] |= uint64(b) << (8 * uint(i%8))
	}
	z.neg = neg
	z.reduce()
	return crc, nil
}

func writeFull(w io.Writer, buf []byte) error {
	n, err := w.Write(buf)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return fmt.Errorf("short write: wrote %d of %d bytes", n, len(buf))
	}
	return nil
}

func readFull(r io.Reader, buf []byte) error {
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return fmt.Errorf("short read: got %d of %d bytes", n, len(buf))
	}
	return nil
}
