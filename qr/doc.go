// Package qr provides the symbol encoder that turns a label string into a
// square black-on-white raster image.
//
// Encoding is delegated to the skip2/go-qrcode library, which picks the
// smallest symbol version that fits the data at the configured error
// correction level. The module bitmap is rasterized at one pixel per module
// and then upscaled with nearest-neighbor interpolation so module edges stay
// sharp at print resolution.
//
// The [Encoder] satisfies the layout engine's encoder contract: a pure
// string-to-image function with no further state.
package qr
