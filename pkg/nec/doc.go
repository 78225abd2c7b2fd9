// Package nec serializes wire models for method-of-moments antenna simulators.
//
// # EZ-NEC ASCII Format
//
// [Write] produces the line-oriented wire table that EZ-NEC imports:
//
//	in
//	98.9827560572969 20.5 26.522349550159525 98.9827560572969 0 26.522349550159525 0.375 21
//	...
//
// Each wire line holds eight space-separated fields: the two endpoints
// (x1 y1 z1 x2 y2 z2), the diameter and the segment count. The optional
// first line "in" declares inch units. Lines end in CRLF on every platform
// because the importer requires it.
//
// Numbers use the shortest decimal representation that round-trips to the
// same float64, without exponent notation.
//
// # JSON Format
//
// [WriteJSON] exports the design summary, element table, and wire list for
// external tools.
//
// # Files
//
// [Export] writes an encoded artifact atomically: the data goes to a
// temporary file next to the destination which is renamed into place, so a
// failed run never leaves a half-written file behind.
package nec
