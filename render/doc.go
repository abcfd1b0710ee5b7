// Package render turns search responses into text a person or another program
// can read.
//
// What:
//
//   - Board draws an N×N grid, top rank first. The start cell shows "S", the
//     end cell "E", and every other cell on a path shows the path letter and its
//     1-based step, e.g. "B3". When several paths cross a cell the first path
//     wins. Empty cells show ".".
//   - Encode writes a Response as text, JSON, YAML or TOML.
//
// Errors:
//
//   - ErrUnknownFormat: Encode was asked for a format it does not know.
package render
