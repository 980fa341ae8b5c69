package sheet

import (
	"math"
	"testing"
)

func TestDefaultGeometry(t *testing.T) {
	geom := DefaultGeometry()

	if err := geom.Validate(); err != nil {
		t.Fatalf("default geometry must validate, got %v", err)
	}
	if math.Abs(geom.PageWidth-595.2755905511812) > 0.01 {
		t.Errorf("expected A4 width ~595.28pt, got %g", geom.PageWidth)
	}
	if math.Abs(geom.PageHeight-841.8897637795277) > 0.01 {
		t.Errorf("expected A4 height ~841.89pt, got %g", geom.PageHeight)
	}
	if geom.ItemsPerRow != 5 {
		t.Errorf("expected 5 items per row, got %d", geom.ItemsPerRow)
	}
}

func TestGeometry_HorizontalGapSpansUsableWidth(t *testing.T) {
	geom := DefaultGeometry()

	span := float64(geom.ItemsPerRow)*geom.ItemSize +
		float64(geom.ItemsPerRow-1)*geom.HorizontalGap()
	if math.Abs(span-geom.UsableWidth()) > 1e-9 {
		t.Errorf("expected full row span %g to equal usable width %g", span, geom.UsableWidth())
	}
}

func TestGeometry_SingleColumn(t *testing.T) {
	geom := DefaultGeometry()
	geom.ItemsPerRow = 1

	if geom.HorizontalGap() != 0 {
		t.Errorf("expected zero gap for a single column, got %g", geom.HorizontalGap())
	}
	wantX := geom.Margin + (geom.UsableWidth()-geom.ItemSize)/2
	if math.Abs(geom.RowStartX()-wantX) > 1e-9 {
		t.Errorf("expected centered row start %g, got %g", wantX, geom.RowStartX())
	}
}

func TestGeometry_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Geometry)
		valid  bool
	}{
		{"default", func(*Geometry) {}, true},
		{"zero items per row", func(g *Geometry) { g.ItemsPerRow = 0 }, false},
		{"negative margin", func(g *Geometry) { g.Margin = -1 }, false},
		{"zero item size", func(g *Geometry) { g.ItemSize = 0 }, false},
		{"zero page width", func(g *Geometry) { g.PageWidth = 0 }, false},
		{"items exceed usable width", func(g *Geometry) { g.ItemsPerRow = 8 }, false},
		{"row exceeds usable height", func(g *Geometry) { g.ItemSize = g.PageHeight }, false},
		{"single column", func(g *Geometry) { g.ItemsPerRow = 1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geom := DefaultGeometry()
			tt.modify(&geom)
			err := geom.Validate()
			if tt.valid && err != nil {
				t.Errorf("expected valid geometry, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
