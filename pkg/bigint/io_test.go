package bigint

import (
	"bytes"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	values := []string{
		"0", "1", "-1", "255", "-255", "18446744073709551615",
		"-18446744073709551615", "123456789012345678901234567890",
		"-123456789012345678901234567890",
	}
	for _, v := range values {
		z := new(BigInt).SetString(v)
		var buf bytes.Buffer
		crc, err := z.Save(&buf, 0)
		if err != nil {
			t.Fatalf("Save(%s): %v", v, err)
		}

		got := new(BigInt)
		loadCRC, err := got.Load(&buf, 0)
		if err != nil {
			t.Fatalf("Load(%s): %v", v, err)
		}
		if Cmp(got, z) != 0 {
			t.Errorf("round trip %s -> %s", v, got.Text())
		}
		if crc != loadCRC {
			t.Errorf("save crc %d != load crc %d for %s", crc, loadCRC, v)
		}
	}
}

func TestSaveLoadChainedCRCMatches(t *testing.T) {
	a := new(BigInt).SetString("42")
	b := new(BigInt).SetString("-99999999999999999999")

	var buf bytes.Buffer
	crc, err := a.Save(&buf, 0)
	if err != nil {
		t.Fatalf("save a: %v", err)
	}
	crc, err = b.Save(&buf, crc)
	if err != nil {
		t.Fatalf("save b: %v", err)
	}

	ga, gb := new(BigInt), new(BigInt)
	loadCRC, err := ga.Load(&buf, 0)
	if err != nil {
		t.Fatalf("load a: %v", err)
	}
	loadCRC, err = gb.Load(&buf, loadCRC)
	if err != nil {
		t.Fatalf("load b: %v", err)
	}
	if Cmp(ga, a) != 0 || Cmp(gb, b) != 0 {
		t.Fatalf("chained round trip mismatch: got %s, %s", ga.Text(), gb.Text())
	}
	if crc != loadCRC {
		t.Errorf("chained crc mismatch: save=%d load=%d", crc, loadCRC)
	}
}

func TestLoadShortReadFails(t *testing.T) {
	buf := bytes.NewReader([]byte{1, 2, 3})
	z := new(BigInt)
	if _, err := z.Load(buf, 0); err == nil {
		t.Fatalf("Load with truncated header should fail")
	}
}
