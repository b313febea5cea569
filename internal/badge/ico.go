package badge

import (
	"bytes"
	"encoding/binary"
)

// ICO encodes the icon as a single-image .ico file. Unlike the CreateIcon
// layout, ICO bitmaps are stored bottom-up with AND rows padded to 4 bytes.
func (ic Icon) ICO() []byte {
	const (
		dirSize    = 6
		entrySize  = 16
		headerSize = 40
	)

	andStride := ((ic.Width + 31) / 32) * 4
	srcAndStride := ((ic.Width + 15) / 16) * 2
	imageSize := headerSize + len(ic.XOR) + andStride*ic.Height

	var buf bytes.Buffer
	w := func(v any) { _ = binary.Write(&buf, binary.LittleEndian, v) }

	// ICONDIR
	w(uint16(0))
	w(uint16(1)) // type: icon
	w(uint16(1)) // image count

	// ICONDIRENTRY
	buf.WriteByte(byte(ic.Width))
	buf.WriteByte(byte(ic.Height))
	buf.WriteByte(0) // palette
	buf.WriteByte(0)
	w(uint16(1))  // planes
	w(uint16(32)) // bpp
	w(uint32(imageSize))
	w(uint32(dirSize + entrySize))

	// BITMAPINFOHEADER; height covers XOR and AND planes
	w(uint32(headerSize))
	w(int32(ic.Width))
	w(int32(ic.Height * 2))
	w(uint16(1))
	w(uint16(32))
	w(uint32(0)) // BI_RGB
	w(uint32(len(ic.XOR) + andStride*ic.Height))
	w(int32(0))
	w(int32(0))
	w(uint32(0))
	w(uint32(0))

	rowBytes := ic.Width * 4
	for y := ic.Height - 1; y >= 0; y-- {
		buf.Write(ic.XOR[y*rowBytes : (y+1)*rowBytes])
	}

	pad := make([]byte, andStride-srcAndStride)
	for y := ic.Height - 1; y >= 0; y-- {
		buf.Write(ic.AND[y*srcAndStride : (y+1)*srcAndStride])
		buf.Write(pad)
	}

	return buf.Bytes()
}
