// Package checkpoint persists bernoulli.State to disk as a single binary
// file and restores it, so a long-running generation can survive process
// restarts. The wire format and the write-temp/rename publish protocol
// are grounded on the original generator's own checkpoint file, realized
// in Go the way the WAL checkpoint writer in metricstore stages a ".tmp"
// file before an atomic os.Rename.
package checkpoint

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/Panda381/BigInt/pkg/bernoulli"
	"github.com/Panda381/BigInt/pkg/bigint"
	"github.com/Panda381/BigInt/pkg/checksum"
)

// magic identifies a Bernoulli state file ("Bernoulli Feed 64-bit").
const magic = 0xBEFEED64

// header is the fixed, packed 24-byte preamble: magic, loop, inx, loop1, loop2.
type header struct {
	Magic uint32
	Loop  uint64
	Inx   uint32
	Loop1 uint32
	Loop2 uint32
}

const headerSize = 4 + 8 + 4 + 4 + 4

// Save writes s's full state to path via the atomic publish protocol:
// write to tmpPath, remove path (ignoring not-found), then rename
// tmpPath to path. If the rename fails the error is returned wrapped,
// per the io-rename fatal condition.
func Save(path, tmpPath string, s *bernoulli.State) error {
	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("checkpoint: open %s: %w", tmpPath, err)
	}

	w := bufio.NewWriter(f)
	if err := writeState(w, s); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("checkpoint: write %s: %w", tmpPath, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("checkpoint: flush %s: %w", tmpPath, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("checkpoint: close %s: %w", tmpPath, err)
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("checkpoint: remove stale %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("checkpoint: rename %s to %s: %w", tmpPath, path, err)
	}
	return nil
}

func writeState(w io.Writer, s *bernoulli.State) error {
	h := header{
		Magic: magic,
		Loop:  s.Loop,
		Inx:   uint32(s.Produced),
		Loop1: uint32(s.Outer),
		Loop2: uint32(s.Inner),
	}
	var buf [headerSize]byte
	binary.LittleEndian.PutUint32(buf[0:4], h.Magic)
	binary.LittleEndian.PutUint64(buf[4:12], h.Loop)
	binary.LittleEndian.PutUint32(buf[12:16], h.Inx)
	binary.LittleEndian.PutUint32(buf[16:20], h.Loop1)
	binary.LittleEndian.PutUint32(buf[20:24], h.Loop2)
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("header: %w", err)
	}
	crc := checksum.UpdateBuf(0, buf[:])

	var err error
	crc, err = saveRow(w, s.Num[:s.Outer], crc)
	if err != nil {
		return err
	}
	crc, err = saveRow(w, s.Den[:s.Outer], crc)
	if err != nil {
		return err
	}
	crc, err = saveRow(w, s.OutNum[:s.Produced], crc)
	if err != nil {
		return err
	}
	crc, err = saveRow(w, s.OutDen[:s.Produced], crc)
	if err != nil {
		return err
	}

	var trailer [4]byte
	binary.LittleEndian.PutUint32(trailer[:], ^crc)
	if _, err := w.Write(trailer[:]); err != nil {
		return fmt.Errorf("trailer: %w", err)
	}
	return nil
}

func saveRow(w io.Writer, row []*bigint.BigInt, crc uint32) (uint32, error) {
	for _, v := range row {
		var err error
		crc, err = v.Save(w, crc)
		if err != nil {
			return crc, fmt.Errorf("record: %w", err)
		}
	}
	return crc, nil
}
