package render

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/qrsheet/sheet"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.Black)
			} else {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}

func TestPDF_WritesDocument(t *testing.T) {
	geom := sheet.DefaultGeometry()
	renderer := NewPDF(geom)

	if err := renderer.StartPage(); err != nil {
		t.Fatalf("StartPage: %v", err)
	}
	if err := renderer.DrawImage(testImage(), geom.Margin, geom.TopY(), geom.ItemSize, geom.ItemSize); err != nil {
		t.Fatalf("DrawImage: %v", err)
	}
	if err := renderer.DrawLabel("A1", geom.Margin+geom.ItemSize/2, geom.TopY()-geom.LabelOffset); err != nil {
		t.Fatalf("DrawLabel: %v", err)
	}
	if err := renderer.StartPage(); err != nil {
		t.Fatalf("StartPage: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := renderer.Output(path); err != nil {
		t.Fatalf("Output: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Error("expected output to start with a PDF header")
	}
	if len(data) < 500 {
		t.Errorf("expected a non-trivial document, got %d bytes", len(data))
	}
}

func TestPDF_OutputToUnwritablePath(t *testing.T) {
	renderer := NewPDF(sheet.DefaultGeometry())
	if err := renderer.StartPage(); err != nil {
		t.Fatalf("StartPage: %v", err)
	}

	path := filepath.Join(t.TempDir(), "missing", "dir", "out.pdf")
	if err := renderer.Output(path); err == nil {
		t.Fatal("expected error for an unwritable output path")
	}
}
