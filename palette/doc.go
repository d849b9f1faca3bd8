// Package palette loads a binary NES palette file and emits it as a constant
// array declaration suitable for inclusion in the emulator's source.
//
// A palette file is a flat sequence of RGB triples with no header or
// delimiters. Only the first 64 triples (192 bytes) are used. Any data after
// that is ignored. A file shorter than 192 bytes is rejected with a
// ValidationError.
//
// Generate() is the complete build step: it loads the palette named by the
// Config, decodes it and writes the declaration. Nothing is written if any
// part of that fails, so a downstream build never sees a partial file.
//
// Parse() reads generated text back into a Palette. Together with Bytes() it
// allows the output to be checked against the palette file.
package palette
