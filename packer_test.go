package huffpack

import (
	"bytes"
	"errors"
	"testing"
)

func TestBitPacker(t *testing.T) {
	data := []byte("aab")
	root, err := BuildTree(CountFrequencies(data))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	ct := GenerateCodes(root)

	var buf bytes.Buffer
	p := NewBitPacker(&buf, &ct)
	if err := p.Pack(data); err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// a = "1", b = "0"; 110 padded to a byte.
	expect := []byte{0xc0}
	if !bytes.Equal(expect, buf.Bytes()) {
		t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", expect, buf.Bytes())
	}
	if p.BitsWritten() != 3 {
		t.Errorf("expected 3 bits, got %d", p.BitsWritten())
	}
}

func TestBitPacker_MissingSymbol(t *testing.T) {
	root, err := BuildTree(CountFrequencies([]byte("ab")))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	ct := GenerateCodes(root)

	var buf bytes.Buffer
	p := NewBitPacker(&buf, &ct)
	if err := p.Pack([]byte("abc")); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestBitUnpacker(t *testing.T) {
	root, err := BuildTree(makeTestFrequencies())
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	// 5 2 0 4 = "0" "100" "1100" "111", then 5 bits of padding.
	payload := []byte{0x4c, 0xe0}

	var out bytes.Buffer
	if err := NewBitUnpacker(bytes.NewReader(payload), root).Unpack(&out, 4); err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	expect := []byte{5, 2, 0, 4}
	if !bytes.Equal(expect, out.Bytes()) {
		t.Errorf("wrong output:\n\texpect: %#v\n\tactual: %#v", expect, out.Bytes())
	}
}

func TestBitUnpacker_Truncated(t *testing.T) {
	root, err := BuildTree(makeTestFrequencies())
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	var out bytes.Buffer
	err = NewBitUnpacker(bytes.NewReader([]byte{0x4c}), root).Unpack(&out, 4)
	if !errors.Is(err, ErrCorruptArtifact) {
		t.Errorf("expected ErrCorruptArtifact, got %v", err)
	}
}

func TestBitUnpacker_SingleLeaf(t *testing.T) {
	root := &Node{Symbol: 'q'}

	var out bytes.Buffer
	if err := NewBitUnpacker(bytes.NewReader(nil), root).Unpack(&out, 5); err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if out.String() != "qqqqq" {
		t.Errorf("expected %q, got %q", "qqqqq", out.String())
	}
}
