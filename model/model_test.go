package model

import (
	"math"
	"reflect"
	"testing"
)

func TestPointDistance(t *testing.T) {
	tests := []struct {
		name     string
		p1, p2   Point
		expected float64
	}{
		{"same point", Point{0, 0}, Point{0, 0}, 0},
		{"horizontal", Point{0, 0}, Point{3, 0}, 3},
		{"vertical", Point{0, 0}, Point{0, 4}, 4},
		{"diagonal 3-4-5", Point{0, 0}, Point{3, 4}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.p1.Distance(tt.p2)
			if math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("Distance() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestBBoxEdges(t *testing.T) {
	bbox := NewBBox(10, 20, 100, 50)

	if bbox.Left() != 10 || bbox.Right() != 110 {
		t.Errorf("expected left 10 and right 110, got %g and %g", bbox.Left(), bbox.Right())
	}
	if bbox.Bottom() != 20 || bbox.Top() != 70 {
		t.Errorf("expected bottom 20 and top 70, got %g and %g", bbox.Bottom(), bbox.Top())
	}
	if center := bbox.Center(); center != (Point{60, 45}) {
		t.Errorf("expected center {60, 45}, got %+v", center)
	}
	if bbox.Area() != 5000 {
		t.Errorf("expected area 5000, got %g", bbox.Area())
	}
}

func TestBBoxContains(t *testing.T) {
	bbox := NewBBox(0, 0, 10, 10)

	if !bbox.Contains(Point{5, 5}) {
		t.Error("expected interior point to be contained")
	}
	if !bbox.Contains(Point{0, 10}) {
		t.Error("expected edge point to be contained")
	}
	if bbox.Contains(Point{11, 5}) {
		t.Error("expected outside point not to be contained")
	}
}

func TestBBoxIntersectsAndOverlaps(t *testing.T) {
	a := NewBBox(0, 0, 10, 10)
	b := NewBBox(5, 5, 10, 10)
	touching := NewBBox(10, 0, 10, 10)
	apart := NewBBox(20, 20, 5, 5)

	if !a.Intersects(b) || !a.Overlaps(b) {
		t.Error("expected overlapping boxes to intersect and overlap")
	}
	if !a.Intersects(touching) {
		t.Error("expected edge-touching boxes to intersect")
	}
	if a.Overlaps(touching) {
		t.Error("expected edge-touching boxes not to overlap")
	}
	if a.Intersects(apart) || a.Overlaps(apart) {
		t.Error("expected disjoint boxes neither to intersect nor overlap")
	}
}

func TestBBoxValidity(t *testing.T) {
	if !NewBBox(0, 0, 1, 1).IsValid() {
		t.Error("expected positive box to be valid")
	}
	if NewBBox(0, 0, 0, 1).IsValid() {
		t.Error("expected zero-width box to be invalid")
	}
	if !NewBBox(0, 0, 0, 1).IsEmpty() {
		t.Error("expected zero-width box to be empty")
	}
}

func TestPageCells(t *testing.T) {
	page := NewPage(595, 842)
	page.AddCell(Cell{Label: "A1", Box: NewBBox(10, 700, 85, 85)})
	page.AddCell(Cell{Label: "B2", Box: NewBBox(110, 700, 85, 85)})

	if page.CellCount() != 2 {
		t.Errorf("expected 2 cells, got %d", page.CellCount())
	}
	if !reflect.DeepEqual(page.Labels(), []string{"A1", "B2"}) {
		t.Errorf("expected labels [A1 B2], got %v", page.Labels())
	}
}

func TestPageCellsInRegion(t *testing.T) {
	page := NewPage(595, 842)
	page.AddCell(Cell{Label: "A1", Bounds: NewBBox(10, 700, 85, 110)})
	page.AddCell(Cell{Label: "B2", Bounds: NewBBox(10, 100, 85, 110)})

	top := page.CellsInRegion(NewBBox(0, 600, 595, 242))
	if len(top) != 1 || top[0].Label != "A1" {
		t.Errorf("expected only A1 in the top region, got %v", top)
	}
}

func TestDocumentPages(t *testing.T) {
	doc := NewDocument()
	doc.AddPage(NewPage(595, 842))
	doc.AddPage(NewPage(595, 842))

	if doc.PageCount() != 2 {
		t.Errorf("expected 2 pages, got %d", doc.PageCount())
	}
	if doc.GetPage(1).Number != 1 || doc.GetPage(2).Number != 2 {
		t.Error("expected pages to be numbered in order of addition")
	}
	if doc.GetPage(0) != nil || doc.GetPage(3) != nil {
		t.Error("expected out-of-range page lookups to return nil")
	}

	doc.GetPage(1).AddCell(Cell{Label: "A1"})
	doc.GetPage(2).AddCell(Cell{Label: "B2"})
	if doc.CellCount() != 2 {
		t.Errorf("expected 2 cells in document, got %d", doc.CellCount())
	}
	if !reflect.DeepEqual(doc.Labels(), []string{"A1", "B2"}) {
		t.Errorf("expected labels [A1 B2], got %v", doc.Labels())
	}
}
