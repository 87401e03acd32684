// Package mazefile reads and writes the plain-text maze format.
//
// Format:
//
//   - Each non-blank line is one grid row, top to bottom. Lines holding only
//     whitespace are ignored.
//   - Space characters are stripped from a line before it is split into cells.
//   - Every remaining user-perceived character (grapheme cluster) is one cell:
//     '#' is a wall, anything else is open path. A base letter followed by a
//     combining accent is therefore one cell, not one cell per code point.
//   - Every row must have the same number of cells.
//
// Example:
//
//	# . # # #
//	# . . . #
//	# # # . #
//
// parses to a 3×5 grid with its entrance at (0,1) and exit at (2,3).
//
// Errors:
//
//   - gridgraph.ErrEmptyGrid if the input holds no rows.
//   - gridgraph.ErrNonRectangular, wrapped with the offending line number.
//   - I/O errors from the reader or file system, wrapped.
package mazefile
