package badge

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestRedDotSizes(t *testing.T) {
	ic := RedDot()

	if ic.Width != 16 || ic.Height != 16 {
		t.Errorf("size = %dx%d, want 16x16", ic.Width, ic.Height)
	}
	if len(ic.AND) != 32 {
		t.Errorf("AND mask length = %d, want 32", len(ic.AND))
	}
	if len(ic.XOR) != 1024 {
		t.Errorf("XOR mask length = %d, want 1024", len(ic.XOR))
	}
}

func TestRedDotPixels(t *testing.T) {
	ic := RedDot()

	opaque := 0
	for y := 0; y < IconSize; y++ {
		for x := 0; x < IconSize; x++ {
			dx, dy := float64(x)-7.5, float64(y)-7.5
			inside := dx*dx+dy*dy <= 16

			if Opaque(x, y) != inside {
				t.Fatalf("Opaque(%d,%d) = %v, want %v", x, y, !inside, inside)
			}

			andBit := ic.AND[y*2+x/8] >> (7 - x%8) & 1
			p := (y*IconSize + x) * 4
			bgra := [4]byte{ic.XOR[p], ic.XOR[p+1], ic.XOR[p+2], ic.XOR[p+3]}

			if inside {
				opaque++
				if andBit != 0 {
					t.Errorf("pixel (%d,%d) inside the dot has AND bit set", x, y)
				}
				if bgra != [4]byte{0, 0, 255, 255} {
					t.Errorf("pixel (%d,%d) = %v, want opaque red", x, y, bgra)
				}
			} else {
				if andBit != 1 {
					t.Errorf("pixel (%d,%d) outside the dot has AND bit clear", x, y)
				}
				if bgra != [4]byte{} {
					t.Errorf("pixel (%d,%d) = %v, want zero", x, y, bgra)
				}
			}
		}
	}

	if opaque == 0 {
		t.Fatal("red dot has no opaque pixels")
	}
}

func TestRedDotEdges(t *testing.T) {
	tests := []struct {
		x, y int
		want bool
	}{
		{7, 7, true},
		{8, 8, true},
		{4, 7, true},   // dx = -3.5
		{3, 7, false},  // dx = -4.5
		{11, 8, true},  // dx = 3.5
		{12, 8, false}, // dx = 4.5
		{0, 0, false},
		{15, 15, false},
		{5, 5, true},  // 2.5² + 2.5² = 12.5
		{4, 4, false}, // 3.5² + 3.5² = 24.5
	}

	for _, tt := range tests {
		if got := Opaque(tt.x, tt.y); got != tt.want {
			t.Errorf("Opaque(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRedDotCornersTransparent(t *testing.T) {
	ic := RedDot()
	for _, row := range []int{0, 1, 2, 13, 14, 15} {
		if ic.AND[row*2] != 0xFF || ic.AND[row*2+1] != 0xFF {
			t.Errorf("row %d should be fully transparent, got %08b %08b", row, ic.AND[row*2], ic.AND[row*2+1])
		}
	}
}

func TestICO(t *testing.T) {
	ic := RedDot()
	data := ic.ICO()

	// 6 dir + 16 entry + 40 header + 1024 colour + 16 rows * 4 bytes mask
	if want := 6 + 16 + 40 + 1024 + 64; len(data) != want {
		t.Fatalf("ICO length = %d, want %d", len(data), want)
	}
	if binary.LittleEndian.Uint16(data[2:]) != 1 || binary.LittleEndian.Uint16(data[4:]) != 1 {
		t.Error("ICONDIR should describe one icon image")
	}
	if data[6] != 16 || data[7] != 16 {
		t.Errorf("entry size = %dx%d", data[6], data[7])
	}
	if off := binary.LittleEndian.Uint32(data[18:]); off != 22 {
		t.Errorf("image offset = %d, want 22", off)
	}
	if h := int32(binary.LittleEndian.Uint32(data[22+8:])); h != 32 {
		t.Errorf("bitmap height = %d, want 32 (colour + mask)", h)
	}

	// first stored colour row is the bottom row of the image
	pixels := data[62:]
	bottom := 15 * 16 * 4
	for i := 0; i < 64; i++ {
		if pixels[i] != ic.XOR[bottom+i] {
			t.Fatal("colour rows are not stored bottom-up")
		}
	}
}

type failingRenderer struct{ err error }

func (f failingRenderer) Update(int) error { return f.err }
func (f failingRenderer) Name() string     { return "failing" }

func TestTracking(t *testing.T) {
	tr := NewTracking(Noop())

	for _, n := range []int{3, 0, 7} {
		if err := tr.Update(n); err != nil {
			t.Fatalf("Update(%d) failed: %v", n, err)
		}
	}

	count, updates := tr.Last()
	if count != 7 || updates != 3 {
		t.Errorf("Last() = (%d, %d), want (7, 3)", count, updates)
	}
	if tr.Name() != "noop" {
		t.Errorf("Name() = %q", tr.Name())
	}

	boom := errors.New("boom")
	failing := NewTracking(failingRenderer{boom})
	if err := failing.Update(1); !errors.Is(err, boom) {
		t.Errorf("expected wrapped renderer error, got %v", err)
	}
	if c, _ := failing.Last(); c != 1 {
		t.Errorf("count should be recorded even when the renderer fails")
	}
}

func TestNewNeverNil(t *testing.T) {
	if r := New(Options{}); r == nil || r.Name() == "" {
		t.Fatal("New must return a named renderer")
	}
}
