// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Format formats a matrix for printing
func Format(X mat.Matrix) string {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	return fmt.Sprintf("%v", fa)
}

// MaxVec finds and returns the index of the maximum value in a vector.
// If multiple equal max values exist, only the first one is returned.
func MaxVec(values mat.Vector) int {
	max, idx := values.AtVec(0), 0

	for i := 1; i < values.Len(); i++ {
		if values.AtVec(i) > max {
			max = values.AtVec(i)
			idx = i
		}
	}
	return idx
}

// WriteRows writes a matrix to w in row-major order, one row per line,
// with the values of each row separated by single spaces. Values are
// written with at most 6 significant digits.
func WriteRows(w io.Writer, X mat.Matrix) error {
	buf := bufio.NewWriter(w)
	r, c := X.Dims()

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if j > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(strconv.FormatFloat(X.At(i, j), 'g', 6, 64))
		}
		buf.WriteByte('\n')
	}

	return buf.Flush()
}
