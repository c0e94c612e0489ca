// Package category maps noisy label fragments from disclosure tables onto
// the eight canonical loan subjects. Labels arrive mangled by PDF line
// wrapping ("企 業\n金 融" for "企業金融") and OCR noise, and several
// keywords overlap (擔保 is a substring of 無擔保), so resolution is a
// fixed-order rule cascade where the first match wins. Category context is
// threaded through row iteration as an explicit accumulator: a row whose
// first cell is blank inherits the category of the row above it.
package category
