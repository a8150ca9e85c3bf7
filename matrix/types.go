// SPDX-License-Identifier: MIT

package matrix

import "strconv"

// Shape is the (rows, columns) pair describing a matrix's dimensions.
type Shape struct {
	Rows int
	Cols int
}

// Size returns Rows*Cols, the number of elements a matrix of this shape holds.
func (s Shape) Size() int { return s.Rows * s.Cols }

// String formats the shape as "RxC".
func (s Shape) String() string {
	return strconv.Itoa(s.Rows) + "x" + strconv.Itoa(s.Cols)
}
