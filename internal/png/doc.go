// Package png owns the PNG container codec.
//
// Ownership boundary:
// - chunk type tags and their property bits
// - chunk records (length, type, data, crc)
// - the signed chunk sequence and its byte-exact round trip
//
// Pixel data and per-chunk image semantics are out of scope.
package png
