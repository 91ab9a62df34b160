// seehuhn.de/go/perspective - perspective projection of layered drawings
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package perspective

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a 4×4 transformation matrix acting on homogeneous column
// vectors (x, y, z, w).  The elements are stored in column-major order,
// as for [mgl64.Mat4].
//
// Matrices compose right to left: in A.Mul(B), B is applied first.
type Matrix mgl64.Mat4

// Identity is the identity transformation.
var Identity = Matrix(mgl64.Ident4())

// Translate returns a matrix which moves points by (dx, dy, dz).
func Translate(dx, dy, dz float64) Matrix {
	return Matrix(mgl64.Translate3D(dx, dy, dz))
}

// Scale returns a matrix which scales the three axes independently.
func Scale(sx, sy, sz float64) Matrix {
	return Matrix(mgl64.Scale3D(sx, sy, sz))
}

// UniformScale returns a matrix which scales all three axes by s.
func UniformScale(s float64) Matrix {
	return Scale(s, s, s)
}

// RotateX returns a rotation around the x axis.  The angle is given in
// degrees; positive angles turn the y axis towards the z axis.
func RotateX(deg float64) Matrix {
	return Matrix(mgl64.HomogRotate3DX(mgl64.DegToRad(deg)))
}

// RotateY returns a rotation around the y axis.  The angle is given in
// degrees; positive angles turn the z axis towards the x axis.
func RotateY(deg float64) Matrix {
	return Matrix(mgl64.HomogRotate3DY(mgl64.DegToRad(deg)))
}

// RotateZ returns a rotation around the z axis.  The angle is given in
// degrees; positive angles turn the x axis towards the y axis.
func RotateZ(deg float64) Matrix {
	return Matrix(mgl64.HomogRotate3DZ(mgl64.DegToRad(deg)))
}

// Perspective returns the projection matrix for a pinhole camera at the
// origin which looks along the positive z axis.  After the homogeneous
// divide, a point (x, y, z) lands at (f·x/z, f·y/z).
//
//	/ f 0 0 0 \
//	| 0 f 0 0 |
//	| 0 0 f 0 |
//	\ 0 0 1 0 /
func Perspective(f float64) Matrix {
	return Matrix{
		f, 0, 0, 0,
		0, f, 0, 0,
		0, 0, f, 1,
		0, 0, 0, 0,
	}
}

// Mul returns the matrix product M·B.
// The result is equivalent to first applying B and then M.
func (M Matrix) Mul(B Matrix) Matrix {
	return Matrix(mgl64.Mat4(M).Mul4(mgl64.Mat4(B)))
}

// Apply multiplies the homogeneous column vector p by M.
func (M Matrix) Apply(p mgl64.Vec4) mgl64.Vec4 {
	return mgl64.Mat4(M).Mul4x1(p)
}

// At returns the element in the given row and column.
func (M Matrix) At(row, col int) float64 {
	return M[col*4+row]
}

// Rows returns the elements of M in row-major order.
// This is the order used when a matrix is stored outside the program.
func (M Matrix) Rows() [16]float64 {
	var res [16]float64
	for row := range 4 {
		for col := range 4 {
			res[row*4+col] = M[col*4+row]
		}
	}
	return res
}

// FromRows constructs a matrix from elements given in row-major order.
// This is the inverse of [Matrix.Rows].
func FromRows(rows [16]float64) Matrix {
	var M Matrix
	for row := range 4 {
		for col := range 4 {
			M[col*4+row] = rows[row*4+col]
		}
	}
	return M
}

// Inv computes the inverse of M.
// If M is singular or too badly conditioned to be inverted reliably,
// an error wrapping [ErrSingular] is returned.
func (M Matrix) Inv() (Matrix, error) {
	rows := M.Rows()
	a := mat.NewDense(4, 4, rows[:])

	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		return Matrix{}, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	var res Matrix
	for row := range 4 {
		for col := range 4 {
			res[col*4+row] = inv.At(row, col)
		}
	}
	return res, nil
}

// ApproxEqual reports whether all elements of M and B differ by at most eps.
func (M Matrix) ApproxEqual(B Matrix, eps float64) bool {
	for i := range M {
		if math.Abs(M[i]-B[i]) > eps {
			return false
		}
	}
	return true
}

// String formats the matrix in row-major order, one row per line.
func (M Matrix) String() string {
	r := M.Rows()
	return fmt.Sprintf("[%g %g %g %g]\n[%g %g %g %g]\n[%g %g %g %g]\n[%g %g %g %g]",
		r[0], r[1], r[2], r[3],
		r[4], r[5], r[6], r[7],
		r[8], r[9], r[10], r[11],
		r[12], r[13], r[14], r[15])
}
