package sprite

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
	"time"

	"github.com/vovakirdan/arcade-engine/internal/geom"
)

// gridImage returns a (cols*fw)×(rows*fh) image whose cell (row, col) is
// filled with color{R: row, G: col}.
func gridImage(rows, cols, fw, fh int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cols*fw, rows*fh))
	for y := 0; y < rows*fh; y++ {
		for x := 0; x < cols*fw; x++ {
			img.Set(x, y, color.RGBA{R: uint8(y / fh), G: uint8(x / fw), A: 255})
		}
	}
	return img
}

func cellOf(img image.Image) (row, col uint8) {
	b := img.Bounds()
	c := color.RGBAModel.Convert(img.At(b.Min.X, b.Min.Y)).(color.RGBA)
	return c.R, c.G
}

func TestSheetIndexing(t *testing.T) {
	sheet, err := NewSheet(gridImage(2, 3, 8, 4), 2, 3)
	if err != nil {
		t.Fatalf("NewSheet: %v", err)
	}
	if sheet.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", sheet.Len())
	}

	tests := []struct {
		index    int
		row, col uint8
	}{
		{0, 0, 0},
		{2, 0, 2}, // last column of row 0
		{3, 1, 0}, // first column of row 1
		{5, 1, 2},
	}
	for _, tc := range tests {
		row, col := cellOf(sheet.FrameImage(tc.index))
		if row != tc.row || col != tc.col {
			t.Errorf("frame %d is cell (%d,%d), want (%d,%d)", tc.index, row, col, tc.row, tc.col)
		}
	}

	if sheet.At(1, 0) != sheet.Frame(3) {
		t.Error("At(1, 0) should be frame 3")
	}
	if w, h := sheet.Frame(4).Size(); w != 8 || h != 4 {
		t.Errorf("frame size = %dx%d, want 8x4", w, h)
	}
}

func TestSheetInvalidGrid(t *testing.T) {
	for _, g := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		if _, err := NewSheet(gridImage(1, 1, 4, 4), g[0], g[1]); !errors.Is(err, ErrInvalidGrid) {
			t.Errorf("NewSheet(%d, %d) error = %v, want ErrInvalidGrid", g[0], g[1], err)
		}
	}
}

func TestFrameOutOfRangePanics(t *testing.T) {
	sheet := MustSheet(gridImage(2, 2, 4, 4), 2, 2)
	for _, i := range []int{-1, 4} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Frame(%d) did not panic", i)
				}
			}()
			sheet.Frame(i)
		}()
	}
}

func TestSingleFrameIsSelf(t *testing.T) {
	s := New(gridImage(1, 1, 10, 6))
	if s.Frame(0) != s {
		t.Error("frame 0 of an undivided sprite should be the sprite itself")
	}
	r, ok := s.Shape().(geom.Rect)
	if !ok || r != geom.NewRect(-5, -3, 10, 6) {
		t.Errorf("Shape() = %#v, want centered 10x6 rect", s.Shape())
	}

	hit := geom.Circle{R: 2}
	s.SetHitbox(hit)
	if s.Shape() != geom.Shape(hit) {
		t.Error("hitbox override not returned")
	}
}

func TestFramesIterator(t *testing.T) {
	sheet := MustSheet(gridImage(1, 4, 2, 2), 1, 4)
	count := 0
	for i, f := range sheet.Frames() {
		if f != sheet.Frame(i) {
			t.Errorf("iterator frame %d mismatch", i)
		}
		count++
	}
	if count != 4 {
		t.Errorf("iterated %d frames, want 4", count)
	}
}

func TestAnimationAdvancesOneFramePerCall(t *testing.T) {
	sheet := MustSheet(gridImage(1, 4, 2, 2), 1, 4)
	anim := NewAnimation(sheet, 10) // 100ms per frame
	if anim.Delay() != 100*time.Millisecond {
		t.Fatalf("Delay() = %v, want 100ms", anim.Delay())
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	steps := []struct {
		name  string
		at    time.Duration
		frame int
	}{
		{"first call anchors clock", 0, 0},
		{"before delay", 50 * time.Millisecond, 0},
		{"exactly one delay does not advance", 100 * time.Millisecond, 0},
		{"past delay advances", 101 * time.Millisecond, 1},
		{"long stall advances only one", 2 * time.Second, 2},
		{"next call right after stays", 2*time.Second + 10*time.Millisecond, 2},
		{"advance again", 2*time.Second + 150*time.Millisecond, 3},
		{"wraps", 3 * time.Second, 0},
	}
	for _, st := range steps {
		t.Run(st.name, func(t *testing.T) {
			got := anim.Current(start.Add(st.at))
			if got != anim.Frame(st.frame) {
				t.Errorf("Current() is not frame %d (index %d)", st.frame, anim.Index())
			}
		})
	}

	anim.Reset()
	if anim.Index() != 0 {
		t.Error("Reset should rewind to frame 0")
	}
}

func TestAnimationRange(t *testing.T) {
	sheet := MustSheet(gridImage(2, 3, 2, 2), 2, 3)
	anim := NewAnimationRange(sheet, 30, 2, 5)
	if anim.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", anim.Len())
	}
	if anim.Frame(0) != sheet.Frame(2) || anim.Frame(2) != sheet.Frame(4) {
		t.Error("animation frames should map to sheet range [2,5)")
	}
	if anim.Delay() != 33*time.Millisecond {
		t.Errorf("Delay() = %v, want 33ms", anim.Delay())
	}
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestStoreLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"ship.png":   {Data: encodePNG(t, gridImage(1, 2, 16, 16))},
		"broken.png": {Data: []byte("not an image")},
	}
	store := NewStore(fsys, nil)

	img := store.Load("ship")
	if img == nil {
		t.Fatal("Load(ship) returned nil")
	}
	if img.Bounds().Dx() != 32 {
		t.Errorf("width = %d, want 32", img.Bounds().Dx())
	}
	if store.Load("ship.png") == nil {
		t.Error("Load with extension should also work")
	}

	if store.Load("missing") != nil {
		t.Error("missing image should load as nil")
	}
	if store.Load("broken") != nil {
		t.Error("undecodable image should load as nil")
	}

	sheet := store.Sheet("ship", 1, 2)
	if sheet == nil || sheet.Len() != 2 {
		t.Fatal("Sheet(ship, 1, 2) should have two frames")
	}
	if store.Sheet("ship", 1, 2) != sheet {
		t.Error("sheets should be cached")
	}
	if store.Sheet("ship", 0, 2) != nil {
		t.Error("invalid grid should yield nil")
	}
}

func TestStorePut(t *testing.T) {
	store := NewStore(nil, nil)
	if store.Sprite("dot") != nil {
		t.Error("empty store should not find images")
	}
	store.Put("dot", gridImage(1, 1, 3, 3))
	if s := store.Sprite("dot"); s == nil || s.Len() != 1 {
		t.Error("Put image should be available as a sprite")
	}
}

func TestTransformImage(t *testing.T) {
	img := gridImage(1, 1, 10, 4)
	if r := Rotate(img, 90); r.Bounds().Dx() != 4 || r.Bounds().Dy() != 10 {
		t.Errorf("rotated bounds = %v, want 4x10", r.Bounds())
	}
	if s := Scale(img, 2, 3); s.Bounds().Dx() != 20 || s.Bounds().Dy() != 12 {
		t.Errorf("scaled bounds = %v, want 20x12", s.Bounds())
	}
	if TransformImage(img, geom.Scaling(0, 1)) != nil {
		t.Error("singular transform should return nil")
	}
}

func TestImageIsFirstFrame(t *testing.T) {
	sheet := MustSheet(gridImage(1, 2, 8, 4), 1, 2)
	if b := sheet.Image().Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Errorf("Image() bounds = %v, want one 8x4 frame", b)
	}
	if _, col := cellOf(sheet.Image()); col != 0 {
		t.Errorf("Image() shows column %d, want 0", col)
	}
	if b := sheet.SheetImage().Bounds(); b.Dx() != 16 || b.Dy() != 4 {
		t.Errorf("SheetImage() bounds = %v, want 16x4", b)
	}

	plain := New(gridImage(1, 1, 5, 5))
	if plain.Image() != plain.SheetImage() {
		t.Error("a plain sprite is its own frame")
	}
}

func TestNilSprite(t *testing.T) {
	var s *Sprite
	if s.Shape() != nil {
		t.Errorf("Shape() = %v, want nil", s.Shape())
	}
	if w, h := s.Size(); w != 0 || h != 0 {
		t.Errorf("Size() = %d, %d, want 0, 0", w, h)
	}
	if s.Current(time.Now()) != nil {
		t.Error("Current() of a nil sprite should be nil")
	}
	if s.Image() != nil || s.SheetImage() != nil {
		t.Error("a nil sprite has no image")
	}
}
