package model

// Cell represents one placed unit on a page: a QR symbol box plus the
// caption printed beneath it.
type Cell struct {
	Label    string  // caption text, also the payload encoded in the symbol
	Box      BBox    // the QR image box
	Caption  Point   // caption anchor: X is the horizontal center, Y the text baseline
	FontSize float64 // caption font size in points
	Bounds   BBox    // full extent of the unit, image box plus the caption band below it
}
