package huffpack

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func encodeBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := Encode(&buf, data); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	return buf.Bytes()
}

func makeRoundTripInputs() map[string][]byte {
	rng := rand.New(rand.NewSource(3))

	random := make([]byte, 4096)
	rng.Read(random)

	skewed := make([]byte, 10000)
	for i := range skewed {
		switch n := rng.Intn(100); {
		case n < 90:
			skewed[i] = 'a'
		case n < 97:
			skewed[i] = 'b'
		default:
			skewed[i] = byte(rng.Intn(256))
		}
	}

	all := make([]byte, 0, 3*NumSymbols)
	for i := 0; i < 3; i++ {
		for symbol := 0; symbol < NumSymbols; symbol++ {
			all = append(all, byte(symbol))
		}
	}

	return map[string][]byte{
		"empty":       {},
		"single byte": {'x'},
		"zero byte":   {0},
		"aab":         []byte("aab"),
		"repeated":    bytes.Repeat([]byte{'a'}, 1000),
		"two symbols": []byte("abababababbbbbbba"),
		"text":        []byte("it was the best of times, it was the worst of times"),
		"random":      random,
		"skewed":      skewed,
		"all symbols": all,
	}
}

func TestRoundTrip(t *testing.T) {
	for name, data := range makeRoundTripInputs() {
		data := data
		t.Run(name, func(t *testing.T) {
			artifact := encodeBytes(t, data)
			actual, err := Decode(bytes.NewReader(artifact))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !bytes.Equal(data, actual) {
				t.Errorf("round trip mismatch: %d bytes in, %d bytes out", len(data), len(actual))
			}
		})
	}
}

func TestEncode_Artifacts(t *testing.T) {
	type testRow struct {
		name   string
		input  []byte
		expect []byte
	}

	testData := [...]testRow{
		{
			name:   "empty",
			input:  nil,
			expect: []byte{0x00, 0x00, 0x00, 0x00},
		},
		{
			name:   "single byte",
			input:  []byte{'x'},
			expect: []byte{0x00, 0x00, 0x00, 0x01, 0x01, 'x'},
		},
		{
			name:   "repeated",
			input:  bytes.Repeat([]byte{'a'}, 1000),
			expect: []byte{0x00, 0x00, 0x03, 0xe8, 0x01, 'a'},
		},
		{
			name:  "aab",
			input: []byte("aab"),
			expect: []byte{
				0x00, 0x00, 0x00, 0x03,
				0x00, 0x01, 'b', 0x01, 'a',
				0xc0,
			},
		},
		{
			name:  "abcd",
			input: []byte("abcd"),
			expect: []byte{
				0x00, 0x00, 0x00, 0x04,
				0x00, 0x00, 0x01, 'a', 0x01, 'b', 0x00, 0x01, 'c', 0x01, 'd',
				0x1b,
			},
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual := encodeBytes(t, row.input)
			if !bytes.Equal(row.expect, actual) {
				t.Errorf("wrong artifact:\n\texpect: %#v\n\tactual: %#v", row.expect, actual)
			}
		})
	}
}

func TestEncode_SizeBound(t *testing.T) {
	inputs := makeRoundTripInputs()
	for _, name := range []string{"random", "skewed", "text", "all symbols"} {
		data := inputs[name]
		artifact := encodeBytes(t, data)
		if len(artifact) >= 4*len(data) {
			t.Errorf("%s: artifact of %d bytes is not smaller than 4 x %d", name, len(artifact), len(data))
		}
	}

	skewed := inputs["skewed"]
	if artifact := encodeBytes(t, skewed); len(artifact) >= len(skewed) {
		t.Errorf("skewed: artifact of %d bytes is not smaller than input of %d", len(artifact), len(skewed))
	}
}

func TestDecode_Truncated(t *testing.T) {
	for name, data := range makeRoundTripInputs() {
		if len(data) == 0 {
			continue
		}
		data := data
		t.Run(name, func(t *testing.T) {
			artifact := encodeBytes(t, data)
			for cut := 1; cut <= len(artifact) && cut <= 8; cut++ {
				out, err := Decode(bytes.NewReader(artifact[:len(artifact)-cut]))
				if !errors.Is(err, ErrCorruptArtifact) {
					t.Fatalf("cut %d: expected ErrCorruptArtifact, got %v", cut, err)
				}
				if out != nil {
					t.Errorf("cut %d: expected no output, got %d bytes", cut, len(out))
				}
			}
		})
	}
}

func TestDecode_TrailingData(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("a"), []byte("aab")} {
		artifact := append(encodeBytes(t, data), 0x00)
		_, err := Decode(bytes.NewReader(artifact))
		if !errors.Is(err, ErrCorruptArtifact) {
			t.Errorf("%q: expected ErrCorruptArtifact, got %v", data, err)
		}
	}
}

func TestDecode_Corrupt(t *testing.T) {
	type testRow struct {
		name  string
		input []byte
	}

	testData := [...]testRow{
		{"no header", nil},
		{"short header", []byte{0x00, 0x00}},
		{"missing tree", []byte{0x00, 0x00, 0x00, 0x01}},
		{"bad tag", []byte{0x00, 0x00, 0x00, 0x01, 0x07, 'a'}},
		{"count too large", []byte{0x00, 0x00, 0x00, 0x09, 0x00, 0x01, 'b', 0x01, 'a', 0xc0}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			_, err := Decode(bytes.NewReader(row.input))
			if !errors.Is(err, ErrCorruptArtifact) {
				t.Errorf("expected ErrCorruptArtifact, got %v", err)
			}
		})
	}
}
