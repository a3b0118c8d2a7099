// SPDX-License-Identifier: MIT

// Package linalg - Mat elementwise arithmetic, transpose and products.
//
// Naming (no operator does two things):
//   - Hadamard / Div / Mod are elementwise between equal shapes.
//   - Mul is the true matrix product R×K · K×C → R×C; MulVec is M·v.
//   - Shapes are type parameters, so mismatched operands do not compile.
package linalg

import "github.com/katalvlaran/lvmath/numeric"

// Add returns m + o.
func (m Mat[R, C, T]) Add(o Mat[R, C, T]) Mat[R, C, T] {
	n := m.size()
	ewAdd(m.e[:n], m.e[:n], o.e[:n])

	return m
}

// Sub returns m - o.
func (m Mat[R, C, T]) Sub(o Mat[R, C, T]) Mat[R, C, T] {
	n := m.size()
	ewSub(m.e[:n], m.e[:n], o.e[:n])

	return m
}

// Hadamard returns the elementwise product. For the matrix product use Mul.
func (m Mat[R, C, T]) Hadamard(o Mat[R, C, T]) Mat[R, C, T] {
	n := m.size()
	ewMul(m.e[:n], m.e[:n], o.e[:n])

	return m
}

// Div returns the elementwise quotient.
func (m Mat[R, C, T]) Div(o Mat[R, C, T]) Mat[R, C, T] {
	n := m.size()
	ewDiv(m.e[:n], m.e[:n], o.e[:n])

	return m
}

// Mod returns the elementwise remainder.
func (m Mat[R, C, T]) Mod(o Mat[R, C, T]) Mat[R, C, T] {
	n := m.size()
	ewMod(m.e[:n], m.e[:n], o.e[:n])

	return m
}

// Scale returns m * s.
func (m Mat[R, C, T]) Scale(s T) Mat[R, C, T] {
	n := m.size()
	ewScale(m.e[:n], m.e[:n], s)

	return m
}

// DivScalar returns m / s.
func (m Mat[R, C, T]) DivScalar(s T) Mat[R, C, T] {
	n := m.size()
	ewDivScalar(m.e[:n], m.e[:n], s)

	return m
}

// ModScalar returns the elementwise remainder of m by s.
func (m Mat[R, C, T]) ModScalar(s T) Mat[R, C, T] {
	n := m.size()
	ewModScalar(m.e[:n], m.e[:n], s)

	return m
}

// Neg returns -m.
func (m Mat[R, C, T]) Neg() Mat[R, C, T] {
	n := m.size()
	ewNeg(m.e[:n], m.e[:n])

	return m
}

// AddAssign performs m += o.
func (m *Mat[R, C, T]) AddAssign(o Mat[R, C, T]) *Mat[R, C, T] {
	*m = m.Add(o)
	return m
}

// SubAssign performs m -= o.
func (m *Mat[R, C, T]) SubAssign(o Mat[R, C, T]) *Mat[R, C, T] {
	*m = m.Sub(o)
	return m
}

// HadamardAssign performs m *= o elementwise.
func (m *Mat[R, C, T]) HadamardAssign(o Mat[R, C, T]) *Mat[R, C, T] {
	*m = m.Hadamard(o)
	return m
}

// DivAssign performs m /= o elementwise.
func (m *Mat[R, C, T]) DivAssign(o Mat[R, C, T]) *Mat[R, C, T] {
	*m = m.Div(o)
	return m
}

// ModAssign performs m %= o elementwise.
func (m *Mat[R, C, T]) ModAssign(o Mat[R, C, T]) *Mat[R, C, T] {
	*m = m.Mod(o)
	return m
}

// ScaleAssign performs m *= s.
func (m *Mat[R, C, T]) ScaleAssign(s T) *Mat[R, C, T] {
	*m = m.Scale(s)
	return m
}

// DivScalarAssign performs m /= s.
func (m *Mat[R, C, T]) DivScalarAssign(s T) *Mat[R, C, T] {
	*m = m.DivScalar(s)
	return m
}

// ModScalarAssign performs m %= s.
func (m *Mat[R, C, T]) ModScalarAssign(s T) *Mat[R, C, T] {
	*m = m.ModScalar(s)
	return m
}

// Transpose returns the C×R matrix with rows and columns swapped.
// Complexity: O(R*C).
func (m Mat[R, C, T]) Transpose() Mat[C, R, T] {
	var out Mat[C, R, T]
	r, c := dimOf[R](), dimOf[C]()
	for col := 0; col < c; col++ {
		for row := 0; row < r; row++ {
			// (row, col) of m becomes (col, row) of out; out has c rows.
			out.e[row*c+col] = m.e[col*r+row]
		}
	}

	return out
}

// Mul returns the matrix product a·b: out(m,k) = Σ_n a(m,n)*b(n,k).
// The shared dimension K is enforced by the type system.
// Complexity: O(R*K*C).
func Mul[R, K, C Dim, T numeric.Number](a Mat[R, K, T], b Mat[K, C, T]) Mat[R, C, T] {
	var out Mat[R, C, T]
	r, k, c := dimOf[R](), dimOf[K](), dimOf[C]()
	for col := 0; col < c; col++ {
		for row := 0; row < r; row++ {
			var sum T
			for n := 0; n < k; n++ {
				sum += a.e[n*r+row] * b.e[col*k+n]
			}
			out.e[col*r+row] = sum
		}
	}

	return out
}

// MulVec returns the matrix-vector product m·v.
func MulVec[R, C Dim, T numeric.Number](m Mat[R, C, T], v Vec[C, T]) Vec[R, T] {
	var out Vec[R, T]
	r, c := dimOf[R](), dimOf[C]()
	for row := 0; row < r; row++ {
		var sum T
		for col := 0; col < c; col++ {
			sum += m.e[col*r+row] * v.e[col]
		}
		out.e[row] = sum
	}

	return out
}

// OuterProduct returns a·bᵀ: a as an N×1 column times b as a 1×N row.
func OuterProduct[N Dim, T numeric.Number](a, b Vec[N, T]) Mat[N, N, T] {
	return Mul(ColumnMatrix(a), RowMatrix(b))
}

// ---------- comparisons & reductions ----------

func (m Mat[R, C, T]) compare(o Mat[R, C, T], op int) Mat[R, C, uint32] {
	var out Mat[R, C, uint32]
	n := m.size()
	ewCompare(out.e[:n], m.e[:n], o.e[:n], op)

	return out
}

// Equal returns the elementwise mask m == o.
func (m Mat[R, C, T]) Equal(o Mat[R, C, T]) Mat[R, C, uint32] { return m.compare(o, cmpEq) }

// NotEqual returns the elementwise mask m != o.
func (m Mat[R, C, T]) NotEqual(o Mat[R, C, T]) Mat[R, C, uint32] { return m.compare(o, cmpNe) }

// Less returns the elementwise mask m < o.
func (m Mat[R, C, T]) Less(o Mat[R, C, T]) Mat[R, C, uint32] { return m.compare(o, cmpLt) }

// Greater returns the elementwise mask m > o.
func (m Mat[R, C, T]) Greater(o Mat[R, C, T]) Mat[R, C, uint32] { return m.compare(o, cmpGt) }

// LessEqual returns the elementwise mask m <= o.
func (m Mat[R, C, T]) LessEqual(o Mat[R, C, T]) Mat[R, C, uint32] { return m.compare(o, cmpLe) }

// GreaterEqual returns the elementwise mask m >= o.
func (m Mat[R, C, T]) GreaterEqual(o Mat[R, C, T]) Mat[R, C, uint32] { return m.compare(o, cmpGe) }

// All reports whether every element is non-zero.
func (m Mat[R, C, T]) All() bool { return ewAll(m.e[:m.size()]) }

// Any reports whether at least one element is non-zero.
func (m Mat[R, C, T]) Any() bool { return ewAny(m.e[:m.size()]) }

// None reports whether every element is zero.
func (m Mat[R, C, T]) None() bool { return !m.Any() }

// ApproxEqualMat reports whether every element pair differs by at most eps.
func ApproxEqualMat[R, C Dim, T numeric.Number](a, b Mat[R, C, T], opts ...Option) bool {
	o := gatherOptions(opts...)
	n := a.size()

	return ewAllClose(a.e[:n], b.e[:n], o.eps)
}
