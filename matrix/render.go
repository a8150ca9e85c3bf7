// SPDX-License-Identifier: MIT

// Package matrix - boxed text rendering.
//
// Layout (W = widest element text, C = column count):
//
//	┌ <(W+1)*C spaces>┐
//	│ <cell><cell>...│     one line per row, each cell = text right-justified to W + " "
//	└ <(W+1)*C spaces>┘
//
// Lines are joined with "\n"; there is no trailing newline.

package matrix

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ---------- Box-drawing literals ----------
const (
	_boxTopLeft     = "┌ "
	_boxTopRight    = "┐"
	_boxLeft        = "│ "
	_boxRight       = "│"
	_boxBottomLeft  = "└ "
	_boxBottomRight = "┘"
	_lineSep        = "\n"
	_cellSep        = " "
)

// String renders m with the default options. It implements fmt.Stringer.
func (m *Dense[T]) String() string { return m.Render() }

// Render produces an aligned, box-drawn rendering of m.
//
// Implementation:
//   - Stage 1: format every element (row-major) with the configured verb and
//     record the widest text W, measured in runes.
//   - Stage 2: emit the top border: "┌ " + (W+1)*cols spaces + "┐".
//   - Stage 3: emit each row: "│ " + cells + "│", where every cell is its text
//     left-padded with spaces to W, followed by one space.
//   - Stage 4: emit the bottom border mirroring Stage 2.
//
// Behavior highlights:
//   - Read-only: m is never mutated.
//   - An empty matrix (rows == 0 or cols == 0) renders as the two border lines
//     with a zero-length interior ("┌ ┐\n└ ┘"). A nil *Dense renders the same.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the cell texts.
func (m *Dense[T]) Render(opts ...RenderOption) string {
	o := gatherRenderOptions(opts)

	if m == nil || len(m.data) == 0 {
		return _boxTopLeft + _boxTopRight + _lineSep + _boxBottomLeft + _boxBottomRight
	}

	// Stage 1: element texts and widest width.
	cells := make([]string, len(m.data))
	widths := make([]int, len(m.data))
	width := 0
	for idx, v := range m.data {
		cells[idx] = fmt.Sprintf(o.verb, v)
		widths[idx] = utf8.RuneCountInString(cells[idx])
		if widths[idx] > width {
			width = widths[idx]
		}
	}

	interior := strings.Repeat(" ", (width+1)*m.c)

	var b strings.Builder
	b.Grow((m.r + 2) * (len(interior) + 8))

	// Stage 2: top border.
	b.WriteString(_boxTopLeft)
	b.WriteString(interior)
	b.WriteString(_boxTopRight)

	// Stage 3: rows.
	var i, j, off int
	for i = 0; i < m.r; i++ {
		b.WriteString(_lineSep)
		b.WriteString(_boxLeft)
		for j = 0; j < m.c; j++ {
			off = m.offset(i, j)
			b.WriteString(strings.Repeat(" ", width-widths[off]))
			b.WriteString(cells[off])
			b.WriteString(_cellSep)
		}
		b.WriteString(_boxRight)
	}

	// Stage 4: bottom border.
	b.WriteString(_lineSep)
	b.WriteString(_boxBottomLeft)
	b.WriteString(interior)
	b.WriteString(_boxBottomRight)

	return b.String()
}
