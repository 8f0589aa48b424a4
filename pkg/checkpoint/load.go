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

// Load restores a bernoulli.State from path, falling back to tmpPath if
// path doesn't exist. It returns ok=false, err=nil (the recoverable
// load-missing condition) when neither file exists; the caller is
// expected to fall back to bernoulli.NewState. Any other failure
// (magic mismatch, corrupt inx, CRC mismatch, short read) is fatal and
// returned as a non-nil error.
func Load(path, tmpPath string) (s *bernoulli.State, ok bool, err error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		f, err = os.Open(tmpPath)
		if os.IsNotExist(err) {
			return nil, false, nil
		}
	}
	if err != nil {
		return nil, false, fmt.Errorf("checkpoint: open: %w", err)
	}
	defer f.Close()

	s, err = readState(bufio.NewReader(f))
	if err != nil {
		return nil, false, err
	}
	return s, true, nil
}

func readState(r io.Reader) (*bernoulli.State, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, fmt.Errorf("checkpoint: header: %w", err)
	}
	crc := checksum.UpdateBuf(0, buf[:])

	gotMagic := binary.LittleEndian.Uint32(buf[0:4])
	if gotMagic != magic {
		return nil, fmt.Errorf("checkpoint: bad magic %#x, want %#x", gotMagic, uint32(magic))
	}
	loop := binary.LittleEndian.Uint64(buf[4:12])
	inx := binary.LittleEndian.Uint32(buf[12:16])
	loop1 := binary.LittleEndian.Uint32(buf[16:20])
	loop2 := binary.LittleEndian.Uint32(buf[20:24])

	n0 := int(loop1) / 2
	if int(inx) > n0 {
		return nil, fmt.Errorf("checkpoint: corrupt file: inx %d exceeds n %d", inx, n0)
	}

	s := bernoulli.NewState(n0)
	s.Loop = loop
	s.Produced = int(inx)
	s.Outer = int(loop1)
	s.Inner = int(loop2)

	var err error
	crc, err = loadRow(r, s.Num[:loop1], crc)
	if err != nil {
		return nil, err
	}
	crc, err = loadRow(r, s.Den[:loop1], crc)
	if err != nil {
		return nil, err
	}
	crc, err = loadRow(r, s.OutNum[:inx], crc)
	if err != nil {
		return nil, err
	}
	crc, err = loadRow(r, s.OutDen[:inx], crc)
	if err != nil {
		return nil, err
	}

	var trailer [4]byte
	if _, err := io.ReadFull(r, trailer[:]); err != nil {
		return nil, fmt.Errorf("checkpoint: trailer: %w", err)
	}
	wantCRC := binary.LittleEndian.Uint32(trailer[:])
	if wantCRC != ^crc {
		return nil, fmt.Errorf("checkpoint: crc mismatch: file has %#x, computed %#x", wantCRC, ^crc)
	}
	return s, nil
}

func loadRow(r io.Reader, row []*bigint.BigInt, crc uint32) (uint32, error) {
	for _, v := range row {
		var err error
		crc, err = v.Load(r, crc)
		if err != nil {
			return crc, fmt.Errorf("record: %w", err)
		}
	}
	return crc, nil
}
