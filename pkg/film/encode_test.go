package film

import (
	"bufio"
	"bytes"
	"fmt"
	"testing"

	"github.com/voxelmade/pathtracer/pkg/core"
)

func TestGammaEncode_ClampsAndRounds(t *testing.T) {
	cases := []struct {
		in   float64
		want byte
	}{
		{-1, 0},
		{0, 0},
		{1, 255},
		{2, 255},
	}
	for _, c := range cases {
		if got := gammaEncode(c.in); got != c.want {
			t.Errorf("gammaEncode(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestWritePPM_HeaderAndPixelCount(t *testing.T) {
	f := New(2, 1)
	f.SetColor(0, 0, core.Splat(1))
	f.SetColor(1, 0, core.Vec3{})

	var buf bytes.Buffer
	if err := f.WritePPM(&buf); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}

	scanner := bufio.NewScanner(&buf)
	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if lines[0] != "P3" || lines[1] != "2 1" || lines[2] != "255" {
		t.Fatalf("unexpected header: %v", lines[:3])
	}
	if len(lines) != 5 {
		t.Fatalf("expected header (3 lines) + 2 pixel lines, got %d lines: %v", len(lines), lines)
	}

	want := fmt.Sprintf("%d  %d  %d", gammaEncode(1), gammaEncode(1), gammaEncode(1))
	if lines[3] != want {
		t.Errorf("expected first pixel line %q, got %q", want, lines[3])
	}
}

func TestWriteBMP_FileSizeMatchesPaddedRows(t *testing.T) {
	f := New(5, 3)
	var buf bytes.Buffer
	if err := f.WriteBMP(&buf); err != nil {
		t.Fatalf("WriteBMP: %v", err)
	}

	paddedRowBytes := (5*3 + 3) &^ 3
	wantSize := 54 + paddedRowBytes*3
	if buf.Len() != wantSize {
		t.Errorf("expected file size %d, got %d", wantSize, buf.Len())
	}

	data := buf.Bytes()
	if data[0] != 'B' || data[1] != 'M' {
		t.Errorf("expected BM magic bytes, got %v", data[:2])
	}
}

func TestWriteHDR_HeaderAndRecordCount(t *testing.T) {
	f := New(3, 2)
	f.SetColor(0, 0, core.Splat(2))

	var buf bytes.Buffer
	if err := f.WriteHDR(&buf); err != nil {
		t.Fatalf("WriteHDR: %v", err)
	}

	data := buf.Bytes()
	headerEnd := bytes.Index(data, []byte("+X 3\n")) + len("+X 3\n")
	if headerEnd <= 0 {
		t.Fatalf("expected to find resolution line in header, got:\n%s", data)
	}

	body := data[headerEnd:]
	if len(body) != 3*2*4 {
		t.Errorf("expected %d bytes of RGBE records, got %d", 3*2*4, len(body))
	}
}

func TestEncodeRGBE_BelowThresholdIsZero(t *testing.T) {
	out := make([]byte, 4)
	encodeRGBE(0, 0, 0, out)
	for i, b := range out {
		if b != 0 {
			t.Errorf("byte %d: expected 0 for black input, got %v", i, b)
		}
	}
}

func TestEncodeRGBE_BrighterInputGetsLargerExponentByte(t *testing.T) {
	dim := make([]byte, 4)
	bright := make([]byte, 4)
	encodeRGBE(0.5, 0.5, 0.5, dim)
	encodeRGBE(100, 100, 100, bright)

	if bright[3] <= dim[3] {
		t.Errorf("expected a brighter pixel to carry a larger exponent byte, dim=%v bright=%v", dim[3], bright[3])
	}
}
