// Package badge draws the unread indicator and installs it on the platform
// taskbar or dock.
package badge

const (
	// IconSize is the edge length of the overlay icon in pixels.
	IconSize = 16

	dotCenter = 7.5
	dotRadius = 4.0

	andMaskLen = IconSize * IconSize / 8 // 1 bit per pixel, 2 bytes per row
	xorMaskLen = IconSize * IconSize * 4 // BGRA
)

// Icon is a 16x16 icon in the layout CreateIcon expects: a top-down 1bpp
// AND mask (1 = transparent) and a top-down 32bpp BGRA colour plane.
type Icon struct {
	Width  int
	Height int
	AND    []byte
	XOR    []byte
}

// Opaque reports whether pixel (x, y) lies inside the red dot.
func Opaque(x, y int) bool {
	dx := float32(x) - dotCenter
	dy := float32(y) - dotCenter
	return dx*dx+dy*dy <= dotRadius*dotRadius
}

// RedDot rasterizes the unread badge: an opaque red disc on a transparent
// background.
func RedDot() Icon {
	and := make([]byte, andMaskLen)
	for i := range and {
		and[i] = 0xFF
	}
	xor := make([]byte, xorMaskLen)

	for y := 0; y < IconSize; y++ {
		for x := 0; x < IconSize; x++ {
			if !Opaque(x, y) {
				continue
			}

			and[y*2+x/8] &^= 1 << (7 - x%8)

			p := (y*IconSize + x) * 4
			xor[p] = 0     // B
			xor[p+1] = 0   // G
			xor[p+2] = 255 // R
			xor[p+3] = 255 // A
		}
	}

	return Icon{Width: IconSize, Height: IconSize, AND: and, XOR: xor}
}
