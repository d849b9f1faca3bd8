// Package resources resolves the location of palette files.
//
// Palette files live in a directory named 'palettes' relative to the directory
// the program is invoked from. A palette is identified by its name alone, so
// the palette named "base" is found at:
//
//	palettes/base.pal
//
// The package never creates or modifies files. Reading a palette that does not
// exist is an error.
package resources
