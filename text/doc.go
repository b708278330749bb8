// Package text lays out bitmap text for pixbuf.
//
// Fonts are fixed-size pixel grids (see PixelFont). A string goes through
// three steps before anything is drawn:
//
//   - Normalize: NFC composition and width folding, so "ｅ" and "e" look alike
//   - Wrap: a WrappingStrategy splits each input line by grapheme columns
//   - Codes: every grapheme becomes a single glyph code (see GlyphCode)
//
// Layout then turns the glyph codes, a Pos and a Format into per-glyph pixel
// positions. The package never touches pixels itself.
package text

const unknownStr = "Unknown"
