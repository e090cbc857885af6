package film

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
)

// Format names one of the three encoders this package implements.
type Format int

const (
	PPM Format = iota
	BMP
	HDR
)

// extension returns the file extension the reference implementation
// appends for each format.
func (fmtID Format) extension() string {
	switch fmtID {
	case BMP:
		return ".bmp"
	case HDR:
		return ".hdr"
	default:
		return ".ppm"
	}
}

// Write encodes f in the given format to w.
func (f *Film) Write(w io.Writer, fmtID Format) error {
	switch fmtID {
	case PPM:
		return f.WritePPM(w)
	case BMP:
		return f.WriteBMP(w)
	case HDR:
		return f.WriteHDR(w)
	default:
		return fmt.Errorf("film: unknown image format %d", fmtID)
	}
}

// Save encodes f in the given format and writes it to path with that
// format's conventional extension appended, matching the reference
// implementation's SaveAsImage(filename, imgType).
func (f *Film) Save(path string, fmtID Format) error {
	file, err := os.Create(path + fmtID.extension())
	if err != nil {
		return err
	}
	defer file.Close()
	return f.Write(file, fmtID)
}

// gammaEncode converts a linear radiance value to an 8-bit sRGB-gamma byte,
// rounding rather than truncating so repeated encode/decode round-trips
// don't drift low.
func gammaEncode(c float64) byte {
	c = math.Max(0, math.Min(1, c))
	return byte(math.Round(math.Pow(c, 1/2.2) * 255))
}

// WritePPM encodes f as ASCII PPM (P3): a header followed by one "R G B"
// triple per pixel in row-major, top-to-bottom order.
func (f *Film) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", f.width, f.height)

	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.At(x, y)
			fmt.Fprintf(bw, "%d  %d  %d\n", gammaEncode(c.X), gammaEncode(c.Y), gammaEncode(c.Z))
		}
	}

	return bw.Flush()
}

// WriteBMP encodes f as an uncompressed 24-bit BGR bitmap, stored bottom-up
// with each row padded to a multiple of 4 bytes.
func (f *Film) WriteBMP(w io.Writer) error {
	const (
		fileHeaderSize = 14
		infoHeaderSize = 40
		channels       = 3
	)

	lineBytes := (f.width*channels + 3) &^ 3
	imageBytes := lineBytes * f.height
	fileSize := fileHeaderSize + infoHeaderSize + imageBytes

	bw := bufio.NewWriter(w)

	header := make([]byte, fileHeaderSize+infoHeaderSize)
	header[0], header[1] = 'B', 'M'
	putU32(header[2:], uint32(fileSize))
	putU32(header[10:], fileHeaderSize+infoHeaderSize)

	putU32(header[14:], infoHeaderSize)
	putI32(header[18:], int32(f.width))
	putI32(header[22:], int32(f.height))
	putU16(header[26:], 1)                 // color planes
	putU16(header[28:], channels*8)        // bits per pixel
	// compression, image size, ppm x/y, palette fields left zero.

	if _, err := bw.Write(header); err != nil {
		return err
	}

	row := make([]byte, lineBytes)
	for y := f.height - 1; y >= 0; y-- {
		for x := 0; x < f.width; x++ {
			c := f.At(x, y)
			i := x * channels
			row[i+0] = gammaEncode(c.Z) // B
			row[i+1] = gammaEncode(c.Y) // G
			row[i+2] = gammaEncode(c.X) // R
		}
		for i := f.width * channels; i < lineBytes; i++ {
			row[i] = 0
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteHDR encodes f as a Radiance RGBE (.hdr) image: flat, uncompressed
// 4-byte RGBE records in row-major order.
func (f *Film) WriteHDR(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "#?RADIANCE\nFORMAT=32-bit_rle_rgbe\n\n-Y %d +X %d\n", f.height, f.width)

	rgbe := make([]byte, 4)
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.At(x, y)
			encodeRGBE(c.X, c.Y, c.Z, rgbe)
			if _, err := bw.Write(rgbe); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// encodeRGBE packs a linear color into the 4-byte Radiance RGBE format: a
// shared exponent plus three mantissa bytes, following the original
// implementation's frexp-based derivation exactly.
func encodeRGBE(r, g, b float64, out []byte) {
	v := math.Max(r, math.Max(g, b))
	if v < 1e-32 {
		out[0], out[1], out[2], out[3] = 0, 0, 0, 0
		return
	}

	mant, exp := math.Frexp(v)
	m := mant * 256.0 / v

	out[0] = byte(r * m)
	out[1] = byte(g * m)
	out[2] = byte(b * m)
	out[3] = byte(exp + 128)
}

func putU32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func putI32(b []byte, v int32) { putU32(b, uint32(v)) }

func putU16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}
